package stablepool

// slot is one fixed-size storage cell. The link field is owned exclusively by
// the pool and encodes the slot's state without a separate flag:
//
//   - FREE: link holds the packed reference of the next free slot, or
//     nilLink at the tail of the free list.
//   - USED: link holds usedMark, a value that can never be a valid packed
//     reference.
//
// Sentinel slots (offsets 0 and len-1 of a block) instead carry preset
// cross-block traversal links; they are never FREE or USED.
type slot[T any] struct {
	link uint64
	elem T
}

// block is a contiguous run of slots bracketed by two sentinels: a
// before-begin sentinel at offset 0 and an after-end sentinel at the last
// offset. Once appended to a pool the backing array never moves or resizes;
// that address stability is what keeps handles valid across growth.
type block[T any] struct {
	slots []slot[T]
}

// newBlock allocates a block with n real slots plus the two sentinels.
func newBlock[T any](n int) block[T] {
	return block[T]{slots: make([]slot[T], n+2)}
}

// size returns the number of real slots, excluding sentinels.
func (b *block[T]) size() int {
	return len(b.slots) - 2
}

// lastOff is the offset of the last real slot.
func (b *block[T]) lastOff() uint32 {
	return uint32(len(b.slots) - 2)
}

// endOff is the offset of the after-end sentinel.
func (b *block[T]) endOff() uint32 {
	return uint32(len(b.slots) - 1)
}

// maxBlockSize bounds a single block so slot offsets stay well clear of the
// reserved link values.
const maxBlockSize = 1 << 30

// nextBlockSize is the growth policy: the first block gets firstBlockSize
// slots, and every later block matches the pool's current total capacity,
// doubling it. It is a pure function of current capacity and the only place
// sizing decisions are made.
func nextBlockSize(firstBlockSize, capacity int) int {
	if capacity == 0 {
		return firstBlockSize
	}
	if capacity > maxBlockSize {
		return maxBlockSize
	}
	return capacity
}
