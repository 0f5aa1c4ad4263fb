package main

import (
	"fmt"
	"math"
	"os"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/printer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the canonical allocation workload",
		Long: `The demo command walks the allocator through a fixed sequence that
shows off every code path: an allocation that splits a fresh arena, one too
large for any existing arena, one too large to reserve at all, a relocation
forced by a busy neighbor, and frees that coalesce back together.

Example:
  arenactl demo
  arenactl demo --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	al := arena.New(nil)

	dump := func(step string) error {
		printInfo("%s\n", step)
		if quiet {
			return nil
		}
		return al.Dump(os.Stdout)
	}

	p1, _, err := al.Alloc(2000)
	if err != nil {
		return fmt.Errorf("alloc 2000: %w", err)
	}
	if err := dump("alloc(2000): first arena splits in two"); err != nil {
		return err
	}

	p2, _, err := al.Alloc(8501)
	if err != nil {
		return fmt.Errorf("alloc 8501: %w", err)
	}
	if err := dump("alloc(8501): too big for the first arena, a second appears"); err != nil {
		return err
	}

	// Nothing can reserve this much; the allocator must refuse cleanly.
	if _, _, err := al.Alloc(math.MaxInt - 1024); err == nil {
		return fmt.Errorf("absurd allocation unexpectedly succeeded")
	}
	printVerbose("absurd alloc refused as expected\n")

	p3, buf3, err := al.Alloc(200)
	if err != nil {
		return fmt.Errorf("alloc 200: %w", err)
	}
	p4, _, err := al.Alloc(200)
	if err != nil {
		return fmt.Errorf("alloc 200: %w", err)
	}
	p5, _, err := al.Alloc(200)
	if err != nil {
		return fmt.Errorf("alloc 200: %w", err)
	}
	for i := range buf3 {
		buf3[i] = byte(i)
	}
	if err := dump("alloc(200) x3: small blocks pack behind the first"); err != nil {
		return err
	}

	// p4 sits right behind p3, so growing p3 has to move it.
	p3, _, err = al.Realloc(p3, 300)
	if err != nil {
		return fmt.Errorf("realloc 300: %w", err)
	}
	if err := dump("realloc(p3, 300): busy neighbor forces a relocation"); err != nil {
		return err
	}

	al.Free(p4)
	al.Free(p5)
	al.Free(p3)
	al.Free(p2)
	al.Free(p1)
	if err := dump("free all: each arena collapses to one free block"); err != nil {
		return err
	}

	if verbose && !quiet {
		fmt.Println()
		return printer.New(al, os.Stdout, printer.DefaultOptions()).Report()
	}
	return nil
}
