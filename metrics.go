package stablepool

// Capacity returns the total number of slots across all blocks, used and
// free, excluding sentinels.
func (p *Pool[T]) Capacity() int {
	return p.capacity
}

// NumBlocks returns the number of blocks currently owned by the pool.
func (p *Pool[T]) NumBlocks() int {
	return len(p.blocks)
}

// FreeCount returns the number of slots available without growing.
func (p *Pool[T]) FreeCount() int {
	return p.capacity - p.size
}

// Utilization returns the ratio of live elements to total capacity (0.0 to
// 1.0). Returns 0.0 for a pool with no blocks.
func (p *Pool[T]) Utilization() float64 {
	if p.capacity == 0 {
		return 0
	}
	return float64(p.size) / float64(p.capacity)
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() PoolMetrics {
	return PoolMetrics{
		InUse:       p.size,
		Free:        p.FreeCount(),
		Capacity:    p.capacity,
		NumBlocks:   len(p.blocks),
		Utilization: p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	InUse       int     // Live elements
	Free        int     // Slots available without growth
	Capacity    int     // Total slots across all blocks
	NumBlocks   int     // Number of blocks
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}

// Thread-safe metrics for SafePool

// Capacity thread-safely returns the total slot count.
func (s *SafePool[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Capacity()
}

// NumBlocks thread-safely returns the number of blocks.
func (s *SafePool[T]) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.NumBlocks()
}

// FreeCount thread-safely returns the number of free slots.
func (s *SafePool[T]) FreeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.FreeCount()
}

// Utilization thread-safely returns the live-to-capacity ratio.
func (s *SafePool[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Utilization()
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool[T]) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}
