package stablepool

import "sync"

// SafePool is a mutex-protected wrapper around Pool for concurrent access.
// Every operation takes one coarse lock; allocation and growth both mutate
// pool-wide state (free-list head, block sequence), so there is no finer
// locking granularity to exploit.
type SafePool[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
}

// NewSafe creates a new thread-safe pool.
func NewSafe[T any](opts ...Option) *SafePool[T] {
	return &SafePool[T]{p: New[T](opts...)}
}

// Emplace thread-safely stores v and returns its stable handle.
func (s *SafePool[T]) Emplace(v T) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Emplace(v)
}

// Erase thread-safely destroys the element h refers to.
func (s *SafePool[T]) Erase(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Erase(h)
}

// IsUsed thread-safely reports whether h refers to a live element.
func (s *SafePool[T]) IsUsed(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.IsUsed(h)
}

// Get thread-safely returns a copy of the element h refers to. It panics
// when h does not denote a live element.
func (s *SafePool[T]) Get(h Handle) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.p.At(h)
}

// Update runs fn on the element h refers to while holding the lock. It
// panics when h does not denote a live element.
func (s *SafePool[T]) Update(h Handle, fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.p.At(h))
}

// ForEach visits every live element in traversal order while holding the
// lock. Returning false from fn stops the traversal early. fn must not call
// back into the pool.
func (s *SafePool[T]) ForEach(fn func(Handle, *T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for it := s.p.Begin(); it != s.p.End(); it = it.Next() {
		if !fn(it.Handle(), it.Elem()) {
			return
		}
	}
}

// Size thread-safely returns the number of live elements.
func (s *SafePool[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Size()
}

// Empty thread-safely reports whether the pool holds no live elements.
func (s *SafePool[T]) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Empty()
}

// Clear thread-safely releases all blocks and resets the pool.
func (s *SafePool[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Clear()
}

// Reserve thread-safely pre-grows the pool for at least n more elements.
func (s *SafePool[T]) Reserve(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reserve(n)
}
