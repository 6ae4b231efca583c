//go:build windows

package rawmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Map reserves and commits n bytes of zeroed read/write memory and returns it
// together with a release function. The release function is idempotent.
func Map(n int) ([]byte, func() error, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("rawmem: negative size %d", n)
	}
	if n == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(n), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, fmt.Errorf("rawmem: VirtualAlloc %d bytes: %w", n, err)
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
	release := func() error {
		if addr == 0 {
			return nil
		}
		if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
			return err
		}
		addr = 0
		return nil
	}
	return data, release, nil
}
