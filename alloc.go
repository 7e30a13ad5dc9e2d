package arena

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the arena, placed at
// T's natural alignment. It returns nil if the arena could not grow.
//
// T must not contain Go pointers: arena memory is not scanned by the garbage
// collector. The returned pointer is valid until Reset or Release.
func Alloc[T any](a *Arena) *T {
	p := AllocUninitialized[T](a)
	if p != nil {
		var zero T
		*p = zero
	}
	return p
}

// AllocZeroed is identical to Alloc - provided for API consistency.
func AllocZeroed[T any](a *Arena) *T {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in the arena without zeroing memory.
// Memory reused after Reset still holds whatever was written to it before.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	b := a.AllocAligned(size, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil if n <= 0 or on failure.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n)
	}
	if n > MaxChunkSize/elemSize {
		return nil
	}
	b := a.AllocAligned(elemSize*n, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed memory.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This keeps the arena's chunks reachable while t is in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
