// Package format houses the low-level block header layout shared by the
// allocator and its diagnostics. The goal is to keep the byte-level
// concerns focused and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
package format

const (
	// BlockHeaderSize is the number of bytes reserved in front of every
	// block payload. The serialized header mirror (payload size plus
	// status flags) lives in these bytes.
	BlockHeaderSize = 8

	// Alignment is the required alignment of block payload sizes.
	Alignment = 4

	// AlignmentMask is the bitmask used for aligning to 4-byte boundaries
	// (Alignment - 1).
	AlignmentMask = Alignment - 1

	// MinPayload is the smallest payload a split remainder may carry.
	// A free block is only split when the remainder can host a header
	// plus at least this many bytes.
	MinPayload = 4

	// Header field offsets.
	HeaderSizeOffset  = 0x00 // uint32, payload bytes (excludes the header)
	HeaderFlagsOffset = 0x04 // 1 byte, status flags
)

// Status flag bits stored at HeaderFlagsOffset.
const (
	FlagFree  = 1 << 0 // block is available for allocation
	FlagFirst = 1 << 1 // block sits at its arena's base address
	FlagLast  = 1 << 2 // block's payload extends to the arena's end
)
