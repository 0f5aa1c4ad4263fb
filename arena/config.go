package arena

import "github.com/joshuapare/arenakit/internal/pagealloc"

// DefaultArenaSize is the smallest region requested from the page provider
// when no existing arena can satisfy an allocation (4 KiB).
const DefaultArenaSize = 4096

// PageProvider reserves zero-initialized, readable and writable memory of
// at least the requested size. Reservations are permanent: the allocator
// never returns a region, so providers need no release operation.
type PageProvider interface {
	Reserve(size int) ([]byte, error)
}

// Config controls arena acquisition.
type Config struct {
	// ArenaSize is the minimum size of a newly created arena. Requests
	// larger than this produce an arena sized to the request. Zero or
	// negative selects DefaultArenaSize.
	ArenaSize int

	// Provider supplies raw memory for arenas. nil selects the platform
	// default (anonymous private mmap on unix).
	Provider PageProvider
}

// DefaultConfig is used when New receives a nil config.
var DefaultConfig = Config{
	ArenaSize: DefaultArenaSize,
}

// osPages is the default PageProvider, backed by internal/pagealloc.
type osPages struct{}

func (osPages) Reserve(size int) ([]byte, error) {
	return pagealloc.Reserve(size)
}
