//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapReserver reserves every chunk as a private anonymous memory mapping.
// Chunks live outside the Go heap and are returned to the OS with munmap on
// Release, so memory handed out by the arena must not be touched afterwards.
var MmapReserver Reserver = mmapReserver{}

type mmapReserver struct{}

func (mmapReserver) Reserve(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return buf, nil
}

func (mmapReserver) Release(buf []byte) error {
	if err := unix.Munmap(buf); err != nil {
		return fmt.Errorf("munmap %d bytes: %w", len(buf), err)
	}
	return nil
}
