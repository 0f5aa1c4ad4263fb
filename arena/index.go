package arena

import "github.com/joshuapare/arenakit/internal/format"

// Ref is the address of a block's payload, as handed out by Alloc and
// Realloc. The zero Ref is the null reference. The block header sits
// format.BlockHeaderSize bytes below the payload.
type Ref uintptr

// block is the side-table metadata record for one block. Blocks of an
// arena partition it contiguously and without gaps; a block is identified
// by the address of its header, which is also its key in the index.
type block struct {
	arena *Arena
	off   int // header offset within the arena
	size  int // payload bytes, excludes the header
	free  bool
	first bool // sits at the arena's base address
	last  bool // payload extends to the arena's end
}

// addr returns the address of the block's header.
func (b *block) addr() uintptr {
	return b.arena.base0 + uintptr(b.off)
}

// ref returns the address of the block's payload.
func (b *block) ref() Ref {
	return Ref(b.addr() + format.BlockHeaderSize)
}

// payload returns the block's payload bytes, capped so callers cannot
// write past the block through the slice.
func (b *block) payload() []byte {
	start := b.off + format.BlockHeaderSize
	return b.arena.base[start : start+b.size : start+b.size]
}

// writeHeader serializes the block's metadata into its in-band header
// mirror. The index stays authoritative; the mirror exists so the layout
// can be audited from the raw bytes.
func (b *block) writeHeader() {
	format.PutBlockHeader(b.arena.base[b.off:], format.BlockHeader{
		Size:  b.size,
		Free:  b.free,
		First: b.first,
		Last:  b.last,
	})
}

// blockIndex maps a block header's address to its metadata record. It is
// used to validate refs passed to Free and Realloc, and to test whether
// the address immediately following a block is itself a tracked free block
// during coalescing.
type blockIndex map[uintptr]*block

func (idx blockIndex) insert(b *block) {
	idx[b.addr()] = b
}

func (idx blockIndex) remove(b *block) {
	delete(idx, b.addr())
}

func (idx blockIndex) get(addr uintptr) *block {
	return idx[addr]
}

func (idx blockIndex) contains(addr uintptr) bool {
	_, ok := idx[addr]
	return ok
}
