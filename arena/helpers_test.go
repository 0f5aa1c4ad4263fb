package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/internal/format"
)

var errReserveRefused = errors.New("reserve refused")

// failingProvider rejects every reservation.
type failingProvider struct{}

func (failingProvider) Reserve(int) ([]byte, error) {
	return nil, errReserveRefused
}

// flakyProvider serves heap-backed reservations until the budget is spent,
// then refuses. Used to fail arena acquisition mid-scenario.
type flakyProvider struct {
	budget int
	calls  int
}

func (p *flakyProvider) Reserve(size int) ([]byte, error) {
	p.calls++
	if p.calls > p.budget {
		return nil, errReserveRefused
	}
	return make([]byte, size), nil
}

// arenaBlocks returns ar's blocks in address order.
func arenaBlocks(t *testing.T, al *Allocator, ar *Arena) []*block {
	t.Helper()
	var out []*block
	addr := ar.base0
	for {
		b := al.index.get(addr)
		require.NotNil(t, b, "missing block at 0x%x", addr)
		out = append(out, b)
		if b.last {
			return out
		}
		addr += uintptr(format.BlockHeaderSize + b.size)
	}
}

// checkInvariants validates the structural invariants after an operation:
// every arena is fully partitioned by its blocks, sizes are aligned,
// exactly one first and one last block exist per arena, no two adjacent
// blocks are both free, the index holds exactly the materialized blocks,
// and the in-band header mirrors agree with the index records.
func checkInvariants(t *testing.T, al *Allocator) {
	t.Helper()
	tracked := 0
	for ar := al.arenas; ar != nil; ar = ar.next {
		firsts, lasts, total := 0, 0, 0
		prevFree := false
		for i, b := range arenaBlocks(t, al, ar) {
			require.Same(t, ar, b.arena)
			require.Zero(t, b.size%format.Alignment, "block size %d not aligned", b.size)
			if b.first {
				firsts++
				require.Zero(t, b.off, "first block must sit at the arena base")
			}
			if b.last {
				lasts++
			}
			if i > 0 && prevFree {
				require.False(t, b.free, "adjacent free blocks at offset %d", b.off)
			}
			prevFree = b.free

			hdr := format.ReadBlockHeader(ar.base[b.off:])
			require.Equal(t, b.size, hdr.Size, "header mirror size at offset %d", b.off)
			require.Equal(t, b.free, hdr.Free, "header mirror free flag at offset %d", b.off)
			require.Equal(t, b.first, hdr.First, "header mirror first flag at offset %d", b.off)
			require.Equal(t, b.last, hdr.Last, "header mirror last flag at offset %d", b.off)

			total += format.BlockHeaderSize + b.size
			tracked++
		}
		require.Equal(t, 1, firsts, "arena must have exactly one first block")
		require.Equal(t, 1, lasts, "arena must have exactly one last block")
		require.Equal(t, ar.size, total, "arena bytes unaccounted for or double-counted")
	}
	require.Equal(t, tracked, len(al.index), "stale index entries after walk")
}
