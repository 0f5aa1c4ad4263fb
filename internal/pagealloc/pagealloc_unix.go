//go:build unix

// Package pagealloc reserves zero-initialized, readable and writable memory
// regions directly from the operating system.
package pagealloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve maps size bytes of private anonymous memory. The region is
// zero-filled by the kernel and stays mapped until process exit; callers
// never hand regions back.
func Reserve(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("pagealloc: invalid reservation size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("pagealloc: mmap %d bytes: %w", size, err)
	}
	return data, nil
}
