package arena

// Stats holds allocator counters for instrumentation and testing.
type Stats struct {
	AllocCalls   int // total Alloc() calls (including via Realloc)
	FreeCalls    int // total Free() calls (including via Realloc)
	ReallocCalls int // total Realloc() calls
	FailedAllocs int // allocations that returned ErrNoSpace

	Splits int // blocks carved by the splitter
	Merges int // adjacent free pairs merged by the coalescer

	ArenasCreated int // arenas acquired from the page provider

	BytesReserved  int64 // total bytes obtained from the page provider
	BytesAllocated int64 // payload bytes handed out (including split slack)
	BytesFreed     int64 // payload bytes released by Free
}

// Stats returns a copy of the current counters.
func (al *Allocator) Stats() Stats {
	return al.stats
}

// Arenas returns the number of arenas currently owned by the allocator.
func (al *Allocator) Arenas() int {
	n := 0
	for ar := al.arenas; ar != nil; ar = ar.next {
		n++
	}
	return n
}

// Blocks returns the number of live blocks tracked by the index.
func (al *Allocator) Blocks() int {
	return len(al.index)
}
