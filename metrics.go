package arena

// ArenaMetrics is a point-in-time view of an arena's chunk chain.
type ArenaMetrics struct {
	SizeInUse    int     // bytes handed out, alignment padding included
	Capacity     int     // bytes reserved across all chunks
	Free         int     // Capacity - SizeInUse; not all of it is usable at every alignment
	NumChunks    int     // chunks currently held
	LargestChunk int     // capacity of the biggest chunk, 0 when released
	ChunkSize    int     // capacity the next grown chunk starts from
	Utilization  float64 // SizeInUse / Capacity, 0 when there is no capacity
}

// SizeInUse returns the bytes handed out so far, padding included.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.used
	}
	return sum
}

// NumChunks returns the number of chunks in the chain.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the bytes reserved across all chunks. It drops to 0 after
// Release.
func (a *Arena) Capacity() int {
	return a.reserved
}

// Utilization is SizeInUse over Capacity.
func (a *Arena) Utilization() float64 {
	return utilization(a.SizeInUse(), a.reserved)
}

// ChunkSize returns the capacity the arena will use for its next chunk.
// It starts at the size given to NewArena and never decreases.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics collects every statistic in one walk of the chain.
func (a *Arena) Metrics() ArenaMetrics {
	m := ArenaMetrics{
		Capacity:  a.reserved,
		NumChunks: len(a.chunks),
		ChunkSize: a.chunkSize,
	}
	for _, c := range a.chunks {
		m.SizeInUse += c.used
		m.LargestChunk = max(m.LargestChunk, c.capacity())
	}
	m.Free = m.Capacity - m.SizeInUse
	m.Utilization = utilization(m.SizeInUse, m.Capacity)
	return m
}

func utilization(used, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(used) / float64(capacity)
}

// Metrics returns a snapshot taken under the lock, so every field describes
// the same moment.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
