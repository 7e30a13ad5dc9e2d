package arena

import "unsafe"

// Reserver provides the backing memory for chunks. Reserve must return a
// slice of exactly size bytes whose first byte is at least 8-byte aligned.
// Release is called once per reserved buffer when the arena is released.
type Reserver interface {
	Reserve(size int) ([]byte, error)
	Release(buf []byte) error
}

// HeapReserver reserves chunks from the Go heap. It is the default.
var HeapReserver Reserver = heapReserver{}

type heapReserver struct{}

// Reserve backs the buffer with uint64 words so its base is 8-byte aligned
// even for tiny chunks that would otherwise come from the tiny allocator.
func (heapReserver) Reserve(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	words := make([]uint64, (size+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size), nil
}

// Release is a no-op; the garbage collector reclaims the buffer once the
// arena drops it.
func (heapReserver) Release([]byte) error {
	return nil
}
