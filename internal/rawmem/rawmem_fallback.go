//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly) && !windows

// Package rawmem provides platform-specific helpers for reserving anonymous,
// read/write memory outside the Go heap.
package rawmem

import "fmt"

// Map falls back to a Go byte slice when anonymous mappings are not available.
// Callers must still treat the memory as opaque to the garbage collector.
func Map(n int) ([]byte, func() error, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("rawmem: negative size %d", n)
	}
	return make([]byte, n), func() error { return nil }, nil
}
