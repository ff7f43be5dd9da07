package stablepool

import "iter"

// Iterator walks the live elements of a pool in block-creation then
// intra-block order, skipping free slots and sentinels. Iterators are values
// and compare with ==; two iterators are equal iff they sit on the same
// position of the same pool.
//
// Erasing the element an iterator currently sits on is allowed; Next and
// Prev still step correctly from it. Any other concurrent mutation
// invalidates no handles but may change what a traversal visits.
type Iterator[T any] struct {
	p   *Pool[T]
	ref uint64
}

// Begin returns an iterator on the first live element, or End() when the
// pool holds none.
func (p *Pool[T]) Begin() Iterator[T] {
	if len(p.blocks) == 0 {
		return p.End()
	}
	return Iterator[T]{p: p, ref: p.forward(pack(0, 0))}
}

// End returns the canonical past-the-end iterator. It compares equal across
// all traversals of the same pool and is never invalidated by growth.
func (p *Pool[T]) End() Iterator[T] {
	return Iterator[T]{p: p, ref: nilLink}
}

// Next returns the iterator advanced to the following live element, or
// End() when none remains. Advancing End() panics.
func (it Iterator[T]) Next() Iterator[T] {
	if it.ref == nilLink {
		panic("stablepool: increment past end")
	}
	return Iterator[T]{p: it.p, ref: it.p.forward(it.ref)}
}

// Prev returns the iterator stepped back to the preceding live element.
// Stepping back from End() lands on the last live element. Stepping back
// from the first live element panics.
func (it Iterator[T]) Prev() Iterator[T] {
	p := it.p
	from := it.ref
	if from == nilLink {
		if len(p.blocks) == 0 {
			panic("stablepool: decrement past begin")
		}
		last := &p.blocks[len(p.blocks)-1]
		from = pack(uint32(len(p.blocks)-1), last.endOff())
	}
	ref := p.backward(from)
	if ref == nilLink {
		panic("stablepool: decrement past begin")
	}
	return Iterator[T]{p: p, ref: ref}
}

// Elem returns a pointer to the element under the iterator. Dereferencing
// End() panics.
func (it Iterator[T]) Elem() *T {
	if it.ref == nilLink {
		panic("stablepool: dereference of end iterator")
	}
	b, off := unpack(it.ref)
	return &it.p.blocks[b].slots[off].elem
}

// Handle returns the stable handle of the element under the iterator, or
// InvalidHandle for End().
func (it Iterator[T]) Handle() Handle {
	return Handle(it.ref)
}

// All returns a range-over-func iterator over every live element in
// traversal order. Erasing the element currently yielded is allowed; other
// mutation during the range is not.
func (p *Pool[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for it := p.Begin(); it != p.End(); it = it.Next() {
			if !yield(it.Handle(), it.Elem()) {
				return
			}
		}
	}
}

// forward returns the first live slot strictly after ref in traversal order,
// or nilLink when none remains. Crossing a block boundary goes through the
// after-end sentinel's preset link; runs of free slots are skipped, which
// amortizes to O(1) per step over a full traversal.
func (p *Pool[T]) forward(ref uint64) uint64 {
	b, off := unpack(ref)
	off++
	for {
		slots := p.blocks[b].slots
		if int(off) == len(slots)-1 {
			next := slots[off].link
			if next == nilLink {
				return nilLink
			}
			b, off = unpack(next)
			continue
		}
		if slots[off].link == usedMark {
			return pack(b, off)
		}
		off++
	}
}

// backward is the mirror of forward: the last live slot strictly before ref,
// or nilLink. Crossing into the previous block goes through the before-begin
// sentinel's preset link.
func (p *Pool[T]) backward(ref uint64) uint64 {
	b, off := unpack(ref)
	off--
	for {
		slots := p.blocks[b].slots
		if off == 0 {
			prev := slots[0].link
			if prev == nilLink {
				return nilLink
			}
			b, off = unpack(prev)
			continue
		}
		if slots[off].link == usedMark {
			return pack(b, off)
		}
		off--
	}
}
