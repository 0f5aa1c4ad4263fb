package arena

import (
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/internal/format"
)

// Dump writes the memory layout: arenas in list order, one line per block
// in address order (free marker, address, payload size, busy/free,
// first/last flags), then a separator line. The line format is a
// compatibility contract with the stress driver and must not change.
func (al *Allocator) Dump(w io.Writer) error {
	for ar := al.arenas; ar != nil; ar = ar.next {
		if _, err := fmt.Fprintf(w, "Arena (%db)\n", ar.size); err != nil {
			return err
		}
		addr := ar.base0
		for {
			b := al.index.get(addr)
			if b == nil {
				return fmt.Errorf("arena: no block tracked at 0x%x during dump", addr)
			}
			marker := " "
			if b.free {
				marker = "*"
			}
			_, err := fmt.Fprintf(w, "%s Block at 0x%x -> Size: %d, Busy: %s, First: %s, Last: %s\n",
				marker, b.addr(), b.size, yesNo(!b.free), yesNo(b.first), yesNo(b.last))
			if err != nil {
				return err
			}
			if b.last {
				break
			}
			addr += uintptr(format.BlockHeaderSize + b.size)
		}
	}
	_, err := fmt.Fprintln(w, "----------")
	return err
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
