package mmap

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Region is a memory mapped register window, typically over /dev/gpiomem.
type Region struct {
	mem []byte
}

// Map opens the given device and maps size bytes starting at base.
func Map(device string, base int64, size int) (*Region, error) {
	f, err := os.OpenFile(device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", device, err)
	}
	defer f.Close()

	mem, err := unix.Mmap(int(f.Fd()), base, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap %s: %w", device, err)
	}

	return &Region{mem: mem}, nil
}

// Close unmaps the region. Pointers handed out by Reg32 become invalid.
func (r *Region) Close() error {
	return unix.Munmap(r.mem)
}

// Reg32 returns a pointer to the 32-bit register at the given byte offset.
// The offset must be 4-byte aligned.
func (r *Region) Reg32(offset uintptr) *uint32 {
	return (*uint32)(unsafe.Pointer(&r.mem[offset]))
}

// Read32 reads the 32-bit register at the given byte offset.
func (r *Region) Read32(offset uintptr) uint32 {
	return *r.Reg32(offset)
}

// Write32 writes the 32-bit register at the given byte offset.
func (r *Region) Write32(offset uintptr, value uint32) {
	*r.Reg32(offset) = value
}
