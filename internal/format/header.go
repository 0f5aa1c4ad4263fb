package format

// BlockHeader is the serialized form of a block's metadata. The allocator
// keeps the authoritative record in its side-table index; this mirror is
// written into the arena bytes in front of every payload so the layout can
// be audited without the index.
type BlockHeader struct {
	Size  int // payload bytes, excludes the header itself
	Free  bool
	First bool
	Last  bool
}

// PutBlockHeader serializes h into the first BlockHeaderSize bytes of b.
// Reserved bytes after the flag byte are zeroed.
func PutBlockHeader(b []byte, h BlockHeader) {
	PutU32(b, HeaderSizeOffset, uint32(h.Size))
	var flags byte
	if h.Free {
		flags |= FlagFree
	}
	if h.First {
		flags |= FlagFirst
	}
	if h.Last {
		flags |= FlagLast
	}
	b[HeaderFlagsOffset] = flags
	for i := HeaderFlagsOffset + 1; i < BlockHeaderSize; i++ {
		b[i] = 0
	}
}

// ReadBlockHeader decodes the header mirror at the start of b.
func ReadBlockHeader(b []byte) BlockHeader {
	flags := b[HeaderFlagsOffset]
	return BlockHeader{
		Size:  int(ReadU32(b, HeaderSizeOffset)),
		Free:  flags&FlagFree != 0,
		First: flags&FlagFirst != 0,
		Last:  flags&FlagLast != 0,
	}
}
