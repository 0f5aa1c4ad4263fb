package arena

import "github.com/joshuapare/arenakit/internal/format"

// unite merges physically adjacent free blocks until no adjacent free pair
// remains. A merge can expose a new adjacency (three or more consecutive
// free blocks), so the scan keeps probing the same, now larger, block
// before moving on, and whole passes repeat until one completes without a
// merge. A last block's successor address belongs to the next arena or to
// unmapped memory, so last short-circuits the probe.
func (al *Allocator) unite() {
	for {
		merged := false
		for _, b := range al.index {
			if !b.free {
				continue
			}
			for !b.last {
				succ := al.index.get(b.addr() + uintptr(format.BlockHeaderSize+b.size))
				if succ == nil || !succ.free {
					break
				}
				b.size += format.BlockHeaderSize + succ.size
				b.last = succ.last
				al.index.remove(succ)
				b.writeHeader()
				al.stats.Merges++
				merged = true
			}
		}
		if !merged {
			return
		}
	}
}
