//go:build linux || darwin

package arena

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_GrowthAndAbsurdRequest pins the canonical workload: a fresh
// allocator with 4 KiB arenas serving 2000 bytes, then a request no arena
// fits, then a request nothing can reserve.
func TestScenario_GrowthAndAbsurdRequest(t *testing.T) {
	al := New(nil)

	// alloc(2000) creates exactly one arena and splits it in two.
	ref0, buf0, err := al.Alloc(2000)
	require.NoError(t, err)
	require.NotEqual(t, Ref(0), ref0)
	require.Equal(t, 1, al.Arenas())
	require.Equal(t, 4096, al.arenas.size)

	blocks := arenaBlocks(t, al, al.arenas)
	require.Len(t, blocks, 2)
	assert.Equal(t, 2000, blocks[0].size)
	assert.False(t, blocks[0].free)
	assert.Equal(t, 2080, blocks[1].size)
	assert.True(t, blocks[1].free)

	for i := range buf0 {
		buf0[i] = byte(i % 251)
	}

	// alloc(8501) fits nowhere, so a second arena is created, sized to at
	// least the aligned request plus its block header.
	ref1, _, err := al.Alloc(8501)
	require.NoError(t, err)
	require.NotEqual(t, Ref(0), ref1)
	require.Equal(t, 2, al.Arenas())
	assert.GreaterOrEqual(t, al.arenas.size, 8504+8)

	// An absurd request fails with the single alloc-path failure signal
	// and leaves every prior allocation byte-for-byte unchanged.
	ref2, buf2, err := al.Alloc(99999999999999999)
	require.ErrorIs(t, err, ErrNoSpace)
	assert.Equal(t, Ref(0), ref2)
	assert.Nil(t, buf2)
	assert.Equal(t, 2, al.Arenas())

	for i := range buf0 {
		require.Equal(t, byte(i%251), buf0[i], "prior allocation mutated at byte %d", i)
	}
	checkInvariants(t, al)
}

// TestScenario_ReallocAndFrees continues the workload with small blocks:
// three 200-byte allocations, an in-place-impossible realloc, and frees
// that must coalesce.
func TestScenario_ReallocAndFrees(t *testing.T) {
	al := New(nil)

	_, _, err := al.Alloc(2000)
	require.NoError(t, err)

	p3, buf3, err := al.Alloc(200)
	require.NoError(t, err)
	p4, _, err := al.Alloc(200)
	require.NoError(t, err)
	p5, _, err := al.Alloc(200)
	require.NoError(t, err)
	checkInvariants(t, al)

	for i := range buf3 {
		buf3[i] = 0x33
	}

	// p4 is busy right behind p3, so growing p3 must relocate it.
	p3b, buf3b, err := al.Realloc(p3, 300)
	require.NoError(t, err)
	require.NotEqual(t, p3, p3b)
	assert.Equal(t, bytes.Repeat([]byte{0x33}, 200), buf3b[:200])

	al.Free(p4)
	al.Free(p5)
	checkInvariants(t, al)
}
