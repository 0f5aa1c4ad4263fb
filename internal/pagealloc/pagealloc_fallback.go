//go:build !unix

// Package pagealloc reserves zero-initialized, readable and writable memory
// regions directly from the operating system.
package pagealloc

import "fmt"

// maxFallbackReserve caps heap-backed reservations where mmap is not
// available; make would otherwise panic instead of reporting failure.
const maxFallbackReserve = 1 << 34

// Reserve allocates a zeroed heap slice when mmap is not available.
func Reserve(size int) ([]byte, error) {
	if size <= 0 || size > maxFallbackReserve {
		return nil, fmt.Errorf("pagealloc: invalid reservation size %d", size)
	}
	return make([]byte, size), nil
}
