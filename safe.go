package arena

import (
	"runtime"

	"github.com/sasha-s/go-deadlock"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Every call holds the lock for its whole duration, including chunk growth.
type SafeArena struct {
	mu deadlock.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena. Arguments are as for NewArena.
func NewSafeArena(chunkSize int, opts ...Option) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize, opts...)}
}

// AllocBytes thread-safely allocates n bytes. Returns nil if n <= 0 or on failure.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// AllocAligned thread-safely allocates n bytes at the given alignment.
func (s *SafeArena) AllocAligned(n, alignment int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocAligned(n, alignment)
}

// TryAllocBytes is AllocBytes with the failure reason.
func (s *SafeArena) TryAllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TryAllocBytes(n)
}

// TryAllocAligned is AllocAligned with the failure reason.
func (s *SafeArena) TryAllocAligned(n, alignment int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TryAllocAligned(n, alignment)
}

// EnsureCapacity thread-safely ensures some chunk has at least n free bytes.
func (s *SafeArena) EnsureCapacity(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds every chunk for reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// SafeAlloc thread-safely returns a pointer to a zeroed T stored inside the arena.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc - provided for API consistency.
func SafeAllocZeroed[T any](s *SafeArena) *T {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n zeroed elements.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	runtime.KeepAlive(s)
	return t
}
