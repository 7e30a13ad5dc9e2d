// Package arena implements a chunked bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena reserves memory in large chunks and hands out pieces of them by
// bumping an offset. Nothing is freed individually; the whole arena is
// released at once. This suits:
//
//   - Parser nodes and other batch-lived objects
//   - Per-request or per-frame scratch buffers
//   - Reducing garbage collection pressure
//
// # Basic Usage
//
//	a := arena.NewArena(0) // Use default chunk size
//	defer a.Release()      // Drop every chunk when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate at an explicit alignment
//	hdr := a.AllocAligned(24, 16)
//
//	// Allocate typed values
//	ptr := arena.Alloc[MyStruct](a)
//	slice := arena.AllocSlice[int](a, 100)
//
// # Allocation and Growth
//
// Requests are served first-fit: chunks are tried in creation order and the
// first one with room wins. When none has room, a new chunk is added whose
// size is double the previous chunk size, or the next power of two at or
// above the request if doubling is not enough. The chunk size never shrinks.
//
// AllocBytes places a request of n bytes at the next multiple of n within
// its chunk. AllocAligned takes the alignment explicitly, and the typed
// helpers pass the natural alignment of T.
//
// # Errors
//
// Allocation never panics. AllocBytes and AllocAligned return nil on
// failure; TryAllocBytes and TryAllocAligned also return the reason
// (ErrInvalidSize, ErrInvalidAlignment, ErrTooLarge, ErrCapacityExceeded or
// a wrapped Reserver error). Only NewArena panics, when its first chunk
// cannot be reserved.
//
// # Chunk Memory
//
// Chunks come from a Reserver. HeapReserver (the default) uses the Go heap;
// MmapReserver uses anonymous memory maps that are unmapped on Release.
// WithMaxCapacity caps the total bytes an arena may reserve.
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	s := arena.NewSafeArena(0)
//	defer s.Release()
//
//	buf := s.AllocBytes(1024)
//	ptr := arena.SafeAlloc[MyStruct](s)
//
// # Important Notes
//
//   - Allocated memory is only valid until Reset or Release
//   - Types allocated with Alloc or AllocSlice must not contain Go pointers
//   - Memory is not zeroed after Reset unless using Alloc or AllocSliceZeroed
//   - Returned byte slices have cap == len, so append never overwrites a neighbour
package arena
