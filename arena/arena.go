package arena

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/joshuapare/arenakit/internal/format"
)

// Arena is one contiguously reserved memory region, subdivided into blocks.
// Arenas form a singly-linked list, most recently created first, and are
// never returned to the page provider for the life of the allocator.
type Arena struct {
	size  int     // total bytes, including block headers
	base  []byte  // zeroed RW memory from the provider
	base0 uintptr // address of base[0]; block addresses key off it
	next  *Arena  // previously created arena
}

// Size returns the arena's total size in bytes, including block headers.
func (a *Arena) Size() int {
	return a.size
}

// createArena reserves a region of at least min bytes (never smaller than
// the configured arena size), prepends it to the arena list, and
// materializes the single free block spanning the whole usable region.
// On provider failure no state is mutated.
func (al *Allocator) createArena(min int) (*Arena, error) {
	size := min
	if size < al.cfg.ArenaSize {
		size = al.cfg.ArenaSize
	}
	size = format.Align4(size)

	base, err := al.cfg.Provider.Reserve(size)
	if err != nil {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ARENA] reserve %d bytes failed: %v\n", size, err)
		}
		return nil, err
	}

	ar := &Arena{
		size:  size,
		base:  base,
		base0: uintptr(unsafe.Pointer(&base[0])),
		next:  al.arenas,
	}
	al.arenas = ar

	b := &block{
		arena: ar,
		off:   0,
		size:  size - format.BlockHeaderSize,
		free:  true,
		first: true,
		last:  true,
	}
	al.index.insert(b)
	b.writeHeader()

	al.stats.ArenasCreated++
	al.stats.BytesReserved += int64(size)
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ARENA] created: %d bytes at 0x%x\n", size, ar.base0)
	}
	return ar, nil
}
