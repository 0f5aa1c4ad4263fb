package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/printer"
	"github.com/joshuapare/arenakit/internal/testutil"
	"github.com/spf13/cobra"
)

var (
	stressIterations int
	stressMaxBlock   int
	stressSeed       int64
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressIterations, "iterations", 10, "Number of random operations")
	cmd.Flags().IntVar(&stressMaxBlock, "max-block-size", 1024, "Largest block size to request")
	cmd.Flags().Int64Var(&stressSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Hammer the allocator with randomized traffic",
		Long: `The stress command performs random alloc, free, and realloc calls
with random payloads, verifying before every free that the payload bytes are
still exactly what was written. It finishes by freeing everything and
printing the counter report.

Example:
  arenactl stress
  arenactl stress --iterations 1000 --max-block-size 4096 --seed 42 -q`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
	return cmd
}

type stressBlock struct {
	ref arena.Ref
	buf []byte
	sum uint32
}

func runStress() error {
	seed := stressSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	printVerbose("seed: %d\n", seed)

	al := arena.New(nil)
	rng := rand.New(rand.NewSource(seed))
	var live []stressBlock

	dump := func() error {
		if quiet {
			return nil
		}
		return al.Dump(os.Stdout)
	}

	for i := 0; i < stressIterations; i++ {
		switch rng.Intn(3) {
		case 0:
			size := rng.Intn(stressMaxBlock) + 1
			ref, buf, err := al.Alloc(size)
			if err != nil {
				return fmt.Errorf("step %d: alloc %d: %w", i, size, err)
			}
			testutil.FillRandom(rng, buf)
			live = append(live, stressBlock{ref, buf, testutil.Checksum(buf)})
			printVerbose("step %d: alloc(%d) -> 0x%x\n", i, size, ref)

		case 1:
			if len(live) == 0 {
				continue
			}
			j := rng.Intn(len(live))
			if got := testutil.Checksum(live[j].buf); got != live[j].sum {
				return fmt.Errorf("step %d: block 0x%x corrupted before free", i, live[j].ref)
			}
			al.Free(live[j].ref)
			printVerbose("step %d: free(0x%x)\n", i, live[j].ref)
			live = append(live[:j], live[j+1:]...)

		case 2:
			if len(live) == 0 {
				continue
			}
			j := rng.Intn(len(live))
			size := rng.Intn(stressMaxBlock) + 1
			ref, buf, err := al.Realloc(live[j].ref, size)
			if err != nil {
				return fmt.Errorf("step %d: realloc 0x%x to %d: %w", i, live[j].ref, size, err)
			}
			testutil.FillRandom(rng, buf)
			live[j] = stressBlock{ref, buf, testutil.Checksum(buf)}
			printVerbose("step %d: realloc -> 0x%x size %d\n", i, ref, size)
		}
		if err := dump(); err != nil {
			return err
		}
	}

	for _, b := range live {
		if got := testutil.Checksum(b.buf); got != b.sum {
			return fmt.Errorf("teardown: block 0x%x corrupted", b.ref)
		}
		al.Free(b.ref)
	}
	if err := dump(); err != nil {
		return err
	}

	if !quiet {
		fmt.Println()
		return printer.New(al, os.Stdout, printer.DefaultOptions()).Report()
	}
	return nil
}
