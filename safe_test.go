package arena

import (
	"errors"
	"runtime"
	"sort"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSafeArena(t *testing.T) {
	s := NewSafeArena(1024, WithMaxCapacity(4096))
	require.NotNil(t, s)
	require.NotNil(t, s.a)
	assert.Equal(t, 1024, s.Metrics().ChunkSize)
	assert.Equal(t, 4096, s.a.maxCapacity)
}

func TestSafeArenaAllocBytes(t *testing.T) {
	s := NewSafeArena(1024)

	assert.Equal(t, 100, len(s.AllocBytes(100)))
	assert.Nil(t, s.AllocBytes(0))
	assert.Nil(t, s.AllocBytes(-1))

	b := s.AllocAligned(10, 16)
	assert.Equal(t, 10, len(b))
	assert.Zero(t, offsetIn(&s.a.chunks[0], b)%16)

	_, err := s.TryAllocBytes(0)
	assert.True(t, errors.Is(err, ErrInvalidSize))
	_, err = s.TryAllocAligned(8, 0)
	assert.True(t, errors.Is(err, ErrInvalidAlignment))
}

func TestSafeArenaOperations(t *testing.T) {
	s := NewSafeArena(1024)

	s.AllocBytes(100)
	assert.NotZero(t, s.Metrics().SizeInUse)

	require.Nil(t, s.EnsureCapacity(2000))
	assert.Equal(t, 2, s.Metrics().NumChunks)

	s.Reset()
	assert.Equal(t, 0, s.Metrics().SizeInUse)

	s.Release()
	m := s.Metrics()
	assert.Equal(t, 0, m.NumChunks)
	assert.Equal(t, 0, m.Capacity)

	// a released arena starts a fresh chain on demand
	assert.Equal(t, 100, len(s.AllocBytes(100)))
	assert.Equal(t, 1, s.Metrics().NumChunks)
}

func TestSafeAllocFunctions(t *testing.T) {
	s := NewSafeArena(1024)

	ptr := SafeAlloc[int](s)
	require.NotNil(t, ptr)
	assert.Equal(t, 0, *ptr)

	ptr2 := SafeAllocZeroed[int64](s)
	require.NotNil(t, ptr2)
	assert.Equal(t, int64(0), *ptr2)

	ptr3 := SafeAllocUninitialized[int](s)
	require.NotNil(t, ptr3)
	*ptr3 = 42

	assert.Equal(t, 5, len(SafeAllocSlice[int](s, 5)))

	slice2 := SafeAllocSliceZeroed[int](s, 3)
	require.Equal(t, 3, len(slice2))
	for i, v := range slice2 {
		assert.Equal(t, 0, v, "slice2[%d]", i)
	}

	assert.Equal(t, ptr, SafePtrAndKeepAlive(s, ptr))
}

func TestSafeArenaConcurrency(t *testing.T) {
	type span struct{ start, end uintptr }

	s := NewSafeArena(1024)
	const numGoroutines = 10
	const numAllocsPerGoroutine = 100

	var wg sync.WaitGroup
	spans := make([][]span, numGoroutines)
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numAllocsPerGoroutine; j++ {
				var b []byte
				switch j % 4 {
				case 0:
					b = s.AllocBytes(64)
				case 1:
					p := SafeAlloc[int64](s)
					b = unsafe.Slice((*byte)(unsafe.Pointer(p)), 8)
				case 2:
					b = s.AllocAligned(24, 8)
				case 3:
					_ = s.EnsureCapacity(128)
					continue
				}
				start := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
				spans[id] = append(spans[id], span{start, start + uintptr(len(b))})
			}
		}(i)
	}
	wg.Wait()

	var all []span
	for _, ss := range spans {
		all = append(all, ss...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].start < all[j].start })
	for i := 1; i < len(all); i++ {
		require.LessOrEqual(t, all[i-1].end, all[i].start)
	}
	assert.NotZero(t, s.Metrics().SizeInUse)
}

func TestSafeArenaConcurrentResetRelease(t *testing.T) {
	s := NewSafeArena(1024)
	const numWorkers = 5

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers-2; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.AllocBytes(32)
				runtime.Gosched()
			}
		}()
	}

	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			runtime.Gosched()
			s.Reset()
		}
		s.Release()
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			m := s.Metrics()
			assert.Equal(t, m.Capacity-m.SizeInUse, m.Free)
			runtime.Gosched()
		}
	}()

	wg.Wait()
	m := s.Metrics()
	assert.LessOrEqual(t, m.SizeInUse, m.Capacity)
}

func BenchmarkSafeArena(b *testing.B) {
	s := NewSafeArena(1024 * 1024)

	b.Run("AllocBytes", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.AllocBytes(64)
			if i%1000 == 999 {
				s.Reset()
			}
		}
	})

	b.Run("SafeAlloc", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			SafeAlloc[int](s)
			if i%1000 == 999 {
				s.Reset()
			}
		}
	})
}

func BenchmarkSafeArenaConcurrent(b *testing.B) {
	s := NewSafeArena(1024 * 1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.AllocBytes(64)
			i++
			if i%1000 == 999 {
				s.Reset()
			}
		}
	})
}
