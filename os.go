package arena

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapMemory requests a contiguous, anonymous, read/write mapping of at
// least n bytes from the OS. This is the map(bytes) -> ptr | fail
// collaborator spec §6 names and treats as external.
func mapMemory(n uintptr) (unsafe.Pointer, error) {
	b, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfMemory, n, err)
	}
	return unsafe.Pointer(&b[0]), nil
}

// unmapMemory returns a previously mapped region to the OS. This is
// spec §6's unmap(ptr, bytes).
func unmapMemory(ptr unsafe.Pointer, n uintptr) error {
	b := unsafe.Slice((*byte)(ptr), n)
	return unix.Munmap(b)
}
