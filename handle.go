package stablepool

import "math"

// Handle is a stable reference to one pool element. A Handle returned by
// Emplace stays valid, and keeps referring to the same element, until that
// element is erased. Growing the pool or erasing other elements never
// invalidates it.
//
// Internally a Handle packs the owning block's index into its high 32 bits
// and the slot offset within that block into its low 32 bits. Blocks are
// never moved or resized, so the packed reference is permanent.
type Handle uint64

// InvalidHandle is the reserved nil handle. It never refers to a slot;
// IsUsed reports false for it and Erase panics on it.
const InvalidHandle Handle = math.MaxUint64

// usedMark is the link value of a slot holding a live element. Block sizes
// are capped below 1<<31, so usedMark can never collide with a packed slot
// reference.
const usedMark uint64 = math.MaxUint64 - 1

// nilLink terminates the free list and marks sentinel links with no
// cross-block target.
const nilLink uint64 = uint64(InvalidHandle)

// pack combines a block index and slot offset into a link/handle value.
func pack(block, off uint32) uint64 {
	return uint64(block)<<32 | uint64(off)
}

// unpack splits a link/handle value back into block index and slot offset.
func unpack(ref uint64) (block, off uint32) {
	return uint32(ref >> 32), uint32(ref)
}
