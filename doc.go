// Package stablepool implements a block-structured object pool with stable
// handles for Go.
//
// # Overview
//
// The pool stores fixed-layout elements in blocks that are never moved or
// resized, so a handle to a live element stays valid - and keeps pointing to
// the same element - across all future insertions, including those that grow
// the pool. Erased slots are recycled through an intrusive free list before
// any new block is allocated. This makes the pool a suitable storage layer
// beneath data structures that hold long-lived cross-references between
// elements, such as:
//
//   - Triangulations and mesh cell/vertex tables
//   - Graphs whose nodes reference each other by handle
//   - Entity tables with frequent insert/erase churn
//   - Any index that cannot tolerate relocation-on-growth
//
// # Basic Usage
//
//	pool := stablepool.New[Vertex]()
//
//	h := pool.Emplace(Vertex{X: 1, Y: 2})
//	v := pool.At(h)       // stable *Vertex, valid until Erase(h)
//	pool.Erase(h)         // slot returns to the free list
//
//	for it := pool.Begin(); it != pool.End(); it = it.Next() {
//		process(it.Elem())
//	}
//
//	for h, v := range pool.All() { // range-over-func form
//		_ = h
//		process(v)
//	}
//
// # Thread Safety
//
// The basic Pool type is not goroutine-safe. For concurrent access, use
// SafePool, which serializes every operation behind a single lock:
//
//	pool := stablepool.NewSafe[Vertex]()
//	h := pool.Emplace(Vertex{})
//	pool.Update(h, func(v *Vertex) { v.X = 3 })
//
// # Memory Layout
//
// Elements live in slots grouped into blocks. Each block is one contiguous
// allocation bracketed by two sentinel slots whose preset links let
// iteration cross block boundaries without a side index. Each new block
// matches the pool's current capacity, so capacity doubles per growth and
// the block count stays logarithmic in the peak element count. A slot's
// state (free or used) is encoded entirely in its link field; there is no
// per-element flag.
//
// # Performance Characteristics
//
//   - Emplace: O(1) amortized (O(block size) when growth occurs)
//   - Erase: O(1)
//   - IsUsed: O(1)
//   - Iteration: O(1) amortized per step over a full traversal
//   - Space is reclaimed only by slot reuse, never by shrinking
//
// # Important Notes
//
//   - Erasing a handle that is not in use panics; the pool favors
//     precondition discipline over runtime recovery
//   - Clear releases all blocks and invalidates every handle
//   - Pointers obtained from At and Elem are valid until that element is
//     erased or the pool is cleared
//
// # Metrics and Monitoring
//
// The pool provides a statistics snapshot for monitoring occupancy:
//
//	m := pool.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Live elements: %d of %d slots\n", m.InUse, m.Capacity)
//
// A zerolog logger attached with WithLogger reports block growth at debug
// level.
package stablepool
