package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexTracksExactlyTheLiveBlocks(t *testing.T) {
	al := New(nil)

	ref, _, err := al.Alloc(300)
	require.NoError(t, err)

	hdr := uintptr(ref) - 8
	require.True(t, al.index.contains(hdr))

	b := al.index.get(hdr)
	require.NotNil(t, b)
	assert.Equal(t, 300, b.size)
	assert.False(t, b.free)
	assert.True(t, b.first)

	// Split registered the remainder too: one busy plus one free block.
	assert.Equal(t, 2, len(al.index))

	// Merging removes the absorbed entry with no stale leftovers.
	remainderHdr := hdr + 8 + 300
	require.True(t, al.index.contains(remainderHdr))
	al.Free(ref)
	assert.False(t, al.index.contains(remainderHdr), "absorbed block must leave the index")
	assert.Equal(t, 1, len(al.index))
	assert.True(t, al.index.contains(hdr))
}

func TestIndexLookupMissesForeignAddresses(t *testing.T) {
	al := New(nil)

	ref, _, err := al.Alloc(64)
	require.NoError(t, err)

	assert.Nil(t, al.index.get(uintptr(ref)), "payload address is not a header address")
	assert.False(t, al.index.contains(uintptr(ref)+1))
	assert.False(t, al.index.contains(0))
}
