package arena

import (
	"fmt"
	"log"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// Arena is a chunked bump allocator. Not goroutine-safe.
// Use SafeArena for concurrent access.
type Arena struct {
	chunks    []chunk
	chunkSize int // capacity of the next chunk; only the growth step changes it
	reserved  int // sum of chunk capacities

	reserver    Reserver
	maxCapacity int
	logger      *log.Logger
}

// NewArena creates a new Arena and reserves its first chunk.
// If chunkSize <= 0, DefaultChunkSize is used; sizes above MaxChunkSize are
// clamped. NewArena panics if the first chunk cannot be reserved, since no
// usable arena can exist without it.
func NewArena(chunkSize int, opts ...Option) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize > MaxChunkSize {
		chunkSize = MaxChunkSize
	}
	a := &Arena{chunkSize: chunkSize, reserver: HeapReserver}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.addChunk(chunkSize); err != nil {
		a.logf("arena: create failed: %v", err)
		panic(fmt.Errorf("arena: create: %w", err))
	}
	return a
}

// AllocBytes returns n bytes from the arena, or nil if n <= 0 or the arena
// could not grow. The offset inside the chunk is rounded up to a multiple of
// n, not to a fixed alignment; use AllocAligned when placement matters.
// The slice is valid until Reset or Release.
func (a *Arena) AllocBytes(n int) []byte {
	b, _ := a.TryAllocBytes(n)
	return b
}

// AllocAligned returns n bytes whose offset inside the chunk is a multiple of
// alignment, or nil on failure.
func (a *Arena) AllocAligned(n, alignment int) []byte {
	b, _ := a.TryAllocAligned(n, alignment)
	return b
}

// TryAllocBytes is AllocBytes with the failure reason.
func (a *Arena) TryAllocBytes(n int) ([]byte, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return a.allocate(n, func(c *chunk) []byte {
		return c.alloc(n)
	})
}

// TryAllocAligned is AllocAligned with the failure reason.
func (a *Arena) TryAllocAligned(n, alignment int) ([]byte, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	if alignment < 1 || alignment > MaxChunkSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, alignment)
	}
	return a.allocate(n, func(c *chunk) []byte {
		return c.allocAligned(n, alignment)
	})
}

func checkSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if n > MaxChunkSize {
		return fmt.Errorf("%w: %d", ErrTooLarge, n)
	}
	return nil
}

// allocate serves a request first-fit across the chunk chain, growing the
// chain by one chunk when nothing fits. place must succeed on an empty chunk
// of at least n bytes.
func (a *Arena) allocate(n int, place func(c *chunk) []byte) ([]byte, error) {
	if len(a.chunks) == 0 {
		if err := a.addChunk(a.chunkSize); err != nil {
			return nil, err
		}
	}
	for i := range a.chunks {
		if b := place(&a.chunks[i]); b != nil {
			return b, nil
		}
	}
	if err := a.grow(n); err != nil {
		return nil, err
	}
	return place(&a.chunks[len(a.chunks)-1]), nil
}

// EnsureCapacity makes sure the next AllocBytes(n) is served by an existing
// chunk, growing the arena with a new chunk if none has room. Room is checked
// at the size-aligned offset AllocBytes would use, which also covers
// AllocAligned(n, 1).
func (a *Arena) EnsureCapacity(n int) error {
	if err := checkSize(n); err != nil {
		return err
	}
	if len(a.chunks) == 0 {
		if err := a.addChunk(a.chunkSize); err != nil {
			return err
		}
	}
	for i := range a.chunks {
		c := &a.chunks[i]
		if c.fits(alignUp(c.used, n), n) {
			return nil
		}
	}
	return a.grow(n)
}

// grow appends a chunk able to hold n bytes. The chunk size doubles; if n
// still does not fit, the size jumps to the next power of two >= n.
// chunkSize is only committed once the chunk has been reserved.
func (a *Arena) grow(n int) error {
	size := MaxChunkSize
	if a.chunkSize <= MaxChunkSize/2 {
		size = a.chunkSize * 2
	}
	if n > size {
		size = int(nextPow2(uint(n)))
	}
	if err := a.addChunk(size); err != nil {
		return err
	}
	a.chunkSize = size
	return nil
}

func (a *Arena) addChunk(size int) error {
	if a.maxCapacity > 0 && size > a.maxCapacity-a.reserved {
		return fmt.Errorf("%w: %d-byte chunk on top of %d reserved, max %d",
			ErrCapacityExceeded, size, a.reserved, a.maxCapacity)
	}
	buf, err := a.reserver.Reserve(size)
	if err != nil {
		a.logf("arena: reserve %d-byte chunk: %v", size, err)
		return fmt.Errorf("arena: reserve %d-byte chunk: %w", size, err)
	}
	if len(buf) != size {
		_ = a.reserver.Release(buf)
		return fmt.Errorf("arena: reserver returned %d bytes, want %d", len(buf), size)
	}
	a.chunks = append(a.chunks, chunk{buf: buf})
	a.reserved += size
	return nil
}

// Reset rewinds every chunk to empty but keeps the chunks for reuse.
// Everything previously allocated from the arena must no longer be used.
func (a *Arena) Reset() {
	for i := range a.chunks {
		a.chunks[i].used = 0
	}
}

// Release hands every chunk back to the reserver in chain order and empties
// the arena. Releasing an empty arena is a no-op. A released arena can be
// allocated from again; it starts over with one chunk of ChunkSize bytes.
func (a *Arena) Release() {
	for i := range a.chunks {
		if err := a.reserver.Release(a.chunks[i].buf); err != nil {
			a.logf("arena: release chunk %d: %v", i, err)
		}
		a.chunks[i].buf = nil
	}
	a.chunks = nil
	a.reserved = 0
}

func (a *Arena) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}
