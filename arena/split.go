package arena

import "github.com/joshuapare/arenakit/internal/format"

// splitThreshold is the smallest remainder worth keeping: it must host a
// header plus the minimum payload. Anything smaller stays attached to the
// block as internal fragmentation.
const splitThreshold = format.BlockHeaderSize + format.MinPayload

// split carves b into a prefix of exactly size payload bytes and a free
// remainder block registered in the index. size must already be 4-byte
// aligned. When the remainder would be too small the block keeps its
// slack; a zero or negative-sized remainder is never created.
func (al *Allocator) split(b *block, size int) {
	if b.size < size+splitThreshold {
		return
	}

	rem := &block{
		arena: b.arena,
		off:   b.off + format.BlockHeaderSize + size,
		size:  b.size - size - format.BlockHeaderSize,
		free:  true,
		first: false,
		last:  b.last,
	}
	al.index.insert(rem)
	rem.writeHeader()

	b.size = size
	b.last = false
	b.writeHeader()
	al.stats.Splits++
}
