//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

// Package rawmem provides platform-specific helpers for reserving anonymous,
// read/write memory outside the Go heap.
package rawmem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Map reserves n bytes of zeroed, private, anonymous memory and returns it
// together with a release function. The release function is idempotent.
func Map(n int) ([]byte, func() error, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("rawmem: negative size %d", n)
	}
	if n == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("rawmem: mmap %d bytes: %w", n, err)
	}
	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			err = nil
		}
		if err == nil {
			data = nil
		}
		return err
	}
	return data, release, nil
}
