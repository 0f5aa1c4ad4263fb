package arena

import (
	"fmt"
	"math"
	"os"

	"github.com/joshuapare/arenakit/internal/format"
)

// Debug flag - set to true to enable verbose logging (compile-time toggle).
const debugAlloc = false

// Runtime flag for allocation logging - controlled by ARENAKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("ARENAKIT_LOG_ALLOC") != ""

// maxRequest bounds request sizes so that aligning the size and adding the
// header cannot overflow. Anything larger is unreservable anyway.
const maxRequest = math.MaxInt - 2*format.BlockHeaderSize

// Allocator carves, splits, and merges blocks inside page-provider arenas.
// It is an explicit context: callers may hold several independent
// allocators. Not safe for concurrent use.
type Allocator struct {
	cfg    Config
	arenas *Arena // most recently created first
	index  blockIndex
	stats  Stats
}

// New returns an allocator configured by cfg. A nil cfg selects
// DefaultConfig; zero fields fall back to their defaults.
func New(cfg *Config) *Allocator {
	c := DefaultConfig
	if cfg != nil {
		c = *cfg
	}
	if c.ArenaSize <= 0 {
		c.ArenaSize = DefaultArenaSize
	}
	if c.Provider == nil {
		c.Provider = osPages{}
	}
	return &Allocator{
		cfg:   c,
		index: make(blockIndex),
	}
}

// Alloc returns a block of at least size bytes, aligned up to the next
// 4-byte multiple. A size of zero (or less) yields the null Ref with a nil
// error. All failures surface as the null Ref with ErrNoSpace.
func (al *Allocator) Alloc(size int) (Ref, []byte, error) {
	al.stats.AllocCalls++
	if size <= 0 {
		return 0, nil, nil
	}
	if size > maxRequest {
		al.stats.FailedAllocs++
		return 0, nil, ErrNoSpace
	}
	size = format.Align4(size)

	for ar := al.arenas; ar != nil; ar = ar.next {
		if b := al.allocFromArena(ar, size); b != nil {
			return b.ref(), b.payload(), nil
		}
	}

	// No existing arena fits; acquire one sized to the request. The new
	// arena is the only one retried.
	ar, err := al.createArena(size + format.BlockHeaderSize)
	if err != nil {
		al.stats.FailedAllocs++
		return 0, nil, ErrNoSpace
	}
	b := al.allocFromArena(ar, size)
	if b == nil {
		al.stats.FailedAllocs++
		return 0, nil, ErrNoSpace
	}
	return b.ref(), b.payload(), nil
}

// allocFromArena walks ar's blocks from the base and claims the first free
// block large enough for size, splitting off the remainder when it is
// worth keeping. Returns nil when nothing in ar fits.
func (al *Allocator) allocFromArena(ar *Arena, size int) *block {
	addr := ar.base0
	for {
		b := al.index.get(addr)
		if b == nil {
			return nil
		}
		if b.free && b.size >= size {
			al.split(b, size)
			b.free = false
			b.writeHeader()
			al.stats.BytesAllocated += int64(b.size)
			if logAlloc {
				fmt.Fprintf(os.Stderr, "[ALLOC] %d bytes at 0x%x (block size %d)\n", size, b.ref(), b.size)
			}
			return b
		}
		if b.last {
			return nil
		}
		addr += uintptr(format.BlockHeaderSize + b.size)
	}
}

// Free releases the block behind ref and merges adjacent free blocks. The
// null Ref and refs this allocator never produced are silently ignored;
// unknown pointers never crash the allocator.
func (al *Allocator) Free(ref Ref) {
	al.stats.FreeCalls++
	if ref == 0 {
		return
	}
	b := al.index.get(uintptr(ref) - format.BlockHeaderSize)
	if b == nil {
		if debugAlloc {
			fmt.Fprintf(os.Stderr, "[FREE] unknown ref 0x%x ignored\n", ref)
		}
		return
	}
	if !b.free {
		al.stats.BytesFreed += int64(b.size)
	}
	b.free = true
	b.writeHeader()
	al.unite()
}

// Realloc resizes the block behind ref. The null Ref behaves exactly as
// Alloc. When the existing block already covers the aligned request the
// block is split in place and the same ref is returned: the address never
// changes on shrink or no-op paths. Growth allocates a new block, copies
// the old payload, and frees the old block; if that allocation fails the
// original block is left fully intact and still owned by the caller.
func (al *Allocator) Realloc(ref Ref, size int) (Ref, []byte, error) {
	al.stats.ReallocCalls++
	if ref == 0 {
		return al.Alloc(size)
	}
	b := al.index.get(uintptr(ref) - format.BlockHeaderSize)
	if b == nil {
		return 0, nil, ErrBadRef
	}
	if size > maxRequest {
		al.stats.FailedAllocs++
		return 0, nil, ErrNoSpace
	}
	if size < 0 {
		size = 0
	}
	size = format.Align4(size)

	if b.size >= size {
		al.split(b, size)
		// A shrink remainder may sit next to an already-free successor.
		al.unite()
		return b.ref(), b.payload(), nil
	}

	old := b.payload()
	newRef, newBuf, err := al.Alloc(size)
	if err != nil {
		return 0, nil, err
	}
	copy(newBuf, old)
	al.Free(ref)
	return newRef, newBuf, nil
}
