// Package arena implements a first-fit memory allocator over coarse
// page-provider reservations.
//
// # Overview
//
// The allocator owns a singly-linked list of arenas, each one a contiguous
// zero-initialized region obtained from a PageProvider. Every arena is
// partitioned, contiguously and without gaps, into blocks: an 8-byte header
// region followed by a 4-byte-aligned payload. Block metadata (payload size
// plus free/first/last flags) lives in a side-table index keyed by the
// block header's address; a serialized mirror of each header is also kept
// in the arena bytes for diagnostics.
//
// Allocation is first-fit: arenas are searched most-recently-created first,
// and within an arena blocks are walked from the base. An oversized free
// block is split when the remainder can host a header plus a minimum
// payload; freeing a block merges physically adjacent free blocks until no
// adjacent free pair remains.
//
// # Usage
//
//	al := arena.New(nil) // DefaultArenaSize arenas, mmap-backed
//
//	ref, buf, err := al.Alloc(2000)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	ref, buf, err = al.Realloc(ref, 4000)
//	al.Free(ref)
//
// # Failure model
//
// Alloc and the growth path of Realloc report every failure as ErrNoSpace
// with a zero Ref; provider exhaustion and unrepresentable request sizes
// are indistinguishable to the caller. Free silently ignores the zero Ref
// and refs the allocator never produced. Realloc on an unknown ref returns
// ErrBadRef, since a resize cannot proceed without the current size.
//
// # Resource model
//
// Arenas are never unmapped or returned to the page provider, even when
// every block inside becomes free. Reserved memory is held for the life of
// the process.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Concurrent use requires external
// synchronization supplied by the caller; this package provides none.
package arena
