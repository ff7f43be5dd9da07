package stablepool

// Pool is a block-structured object pool with stable handles. Elements live
// in fixed blocks that are never moved or resized; erased slots are recycled
// through an intrusive free list before any new block is appended. Emplace
// and Erase are O(1) amortized.
//
// Pool is not goroutine-safe. Use SafePool for concurrent access.
type Pool[T any] struct {
	blocks   []block[T]
	freeHead uint64 // packed reference of the first FREE slot, nilLink when none
	size     int
	capacity int
	cfg      config
}

// New creates an empty pool. No block is allocated until the first Emplace
// or Reserve.
func New[T any](opts ...Option) *Pool[T] {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Pool[T]{
		freeHead: nilLink,
		cfg:      cfg,
	}
}

// Emplace stores v in a free slot, reusing an erased slot when one exists and
// appending a block otherwise, and returns the element's stable handle.
func (p *Pool[T]) Emplace(v T) Handle {
	if p.freeHead == nilLink {
		p.appendBlock()
	}
	ref := p.freeHead
	b, off := unpack(ref)
	s := &p.blocks[b].slots[off]
	p.freeHead = s.link
	s.link = usedMark
	s.elem = v
	p.size++
	return Handle(ref)
}

// Erase destroys the element h refers to and recycles its slot. The handle
// must denote a live element; erasing an already-free or foreign handle
// panics. Erasure never moves other elements and never invalidates any other
// handle.
func (p *Pool[T]) Erase(h Handle) {
	s := p.slotOf(h)
	if s.link != usedMark {
		panic("stablepool: erase of a slot that is not in use")
	}
	var zero T
	s.elem = zero
	s.link = p.freeHead
	p.freeHead = uint64(h)
	p.size--
}

// IsUsed reports whether h currently refers to a live element. It is O(1)
// and never panics: out-of-range and sentinel handles report false.
func (p *Pool[T]) IsUsed(h Handle) bool {
	b, off := unpack(uint64(h))
	if int(b) >= len(p.blocks) {
		return false
	}
	slots := p.blocks[b].slots
	if off < 1 || int(off) >= len(slots)-1 {
		return false
	}
	return slots[off].link == usedMark
}

// At returns a pointer to the element h refers to. The pointer stays valid
// until the element is erased. At panics when h does not denote a live
// element.
func (p *Pool[T]) At(h Handle) *T {
	s := p.slotOf(h)
	if s.link != usedMark {
		panic("stablepool: access of a slot that is not in use")
	}
	return &s.elem
}

// Size returns the number of live elements.
func (p *Pool[T]) Size() int {
	return p.size
}

// Empty reports whether the pool holds no live elements.
func (p *Pool[T]) Empty() bool {
	return p.size == 0
}

// Clear destroys every element, releases all blocks and resets the pool to
// its initial empty state. All handles into the pool become invalid.
func (p *Pool[T]) Clear() {
	p.blocks = nil
	p.freeHead = nilLink
	p.size = 0
	p.capacity = 0
	p.cfg.log.Debug().Msg("pool cleared")
}

// Reserve appends blocks until at least n more elements can be emplaced
// without growing.
func (p *Pool[T]) Reserve(n int) {
	for p.capacity-p.size < n {
		p.appendBlock()
	}
}

// Nth returns the handle of the i-th slot in block-creation order, counting
// real slots only. It panics when i is outside [0, Capacity()). Whether the
// slot holds a live element is a separate question; IsUsed answers it.
func (p *Pool[T]) Nth(i int) Handle {
	if i < 0 || i >= p.capacity {
		panic("stablepool: position out of range")
	}
	for b := range p.blocks {
		n := p.blocks[b].size()
		if i < n {
			return Handle(pack(uint32(b), uint32(i+1)))
		}
		i -= n
	}
	panic("stablepool: position out of range")
}

// IsUsedAt reports whether the i-th slot in block-creation order holds a
// live element. It is a derived positional convenience; IsUsed on a Handle
// is the authoritative liveness query. Out-of-range positions report false.
func (p *Pool[T]) IsUsedAt(i int) bool {
	if i < 0 || i >= p.capacity {
		return false
	}
	return p.IsUsed(p.Nth(i))
}

// appendBlock grows the pool by one block sized per the growth policy. The
// block is fully initialized, sentinels included, before it becomes
// reachable from the pool's bookkeeping, so a failed allocation leaves the
// pool untouched.
func (p *Pool[T]) appendBlock() {
	n := nextBlockSize(p.cfg.firstBlockSize, p.capacity)
	bi := uint32(len(p.blocks))
	nb := newBlock[T](n)

	// Thread every real slot onto the free list, last to first, so the new
	// block is consumed in address order.
	next := p.freeHead
	for off := n; off >= 1; off-- {
		nb.slots[off].link = next
		next = pack(bi, uint32(off))
	}

	// Preset the sentinel links tying this block into the traversal chain.
	// The after-end sentinel of the previous block gains its forward target
	// now; the new block's own after-end sentinel is the pool's end until a
	// further block arrives.
	nb.slots[nb.endOff()].link = nilLink
	if bi == 0 {
		nb.slots[0].link = nilLink
	} else {
		prev := &p.blocks[bi-1]
		nb.slots[0].link = pack(bi-1, prev.lastOff())
		prev.slots[prev.endOff()].link = pack(bi, 1)
	}

	p.blocks = append(p.blocks, nb)
	p.freeHead = next
	p.capacity += n

	p.cfg.log.Debug().
		Int("block_size", n).
		Int("num_blocks", len(p.blocks)).
		Int("capacity", p.capacity).
		Msg("appended block")
}

// slotOf resolves h to its slot, panicking when h does not denote a real
// slot of this pool.
func (p *Pool[T]) slotOf(h Handle) *slot[T] {
	b, off := unpack(uint64(h))
	if int(b) >= len(p.blocks) {
		panic("stablepool: handle does not belong to this pool")
	}
	slots := p.blocks[b].slots
	if off < 1 || int(off) >= len(slots)-1 {
		panic("stablepool: handle does not belong to this pool")
	}
	return &slots[off]
}
