// Package printer renders human-readable allocator reports.
//
// A report summarizes the allocator's lifetime counters (calls, splits,
// merges, bytes moved) with locale-aware digit grouping, and can optionally
// append the raw block layout of every arena.
package printer

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/arenakit/arena"
)

// Options controls report output.
type Options struct {
	// ShowLayout appends the per-arena block layout after the counters.
	// Default: false
	ShowLayout bool
}

// DefaultOptions returns sensible defaults for reporting.
func DefaultOptions() Options {
	return Options{
		ShowLayout: false,
	}
}

// Printer handles formatted output of allocator state.
type Printer struct {
	opts   Options
	writer io.Writer
	al     *arena.Allocator
}

// New creates a new Printer.
//
// The Allocator supplies the state to report, the Writer receives the
// output, and Options controls formatting behavior.
//
// Example:
//
//	al := arena.New(nil)
//	p := printer.New(al, os.Stdout, printer.DefaultOptions())
//	p.Report()
func New(al *arena.Allocator, w io.Writer, opts Options) *Printer {
	return &Printer{
		al:     al,
		writer: w,
		opts:   opts,
	}
}

// Report prints the allocator's counters, one per line, followed by the
// block layout when Options.ShowLayout is set.
//
// Large numbers are grouped for readability (1234567 prints as 1,234,567).
func (p *Printer) Report() error {
	mp := message.NewPrinter(language.English)
	st := p.al.Stats()

	rows := []struct {
		label string
		value int64
	}{
		{"Arenas", int64(p.al.Arenas())},
		{"Blocks", int64(p.al.Blocks())},
		{"Alloc calls", int64(st.AllocCalls)},
		{"Free calls", int64(st.FreeCalls)},
		{"Realloc calls", int64(st.ReallocCalls)},
		{"Failed allocs", int64(st.FailedAllocs)},
		{"Splits", int64(st.Splits)},
		{"Merges", int64(st.Merges)},
		{"Arenas created", int64(st.ArenasCreated)},
		{"Bytes reserved", st.BytesReserved},
		{"Bytes allocated", st.BytesAllocated},
		{"Bytes freed", st.BytesFreed},
	}

	for _, row := range rows {
		if _, err := mp.Fprintf(p.writer, "%-16s %d\n", row.label+":", row.value); err != nil {
			return err
		}
	}

	if p.opts.ShowLayout {
		if _, err := io.WriteString(p.writer, "\n"); err != nil {
			return err
		}
		return p.al.Dump(p.writer)
	}
	return nil
}
