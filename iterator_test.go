package stablepool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[T any](p *Pool[T]) []T {
	var out []T
	for it := p.Begin(); it != p.End(); it = it.Next() {
		out = append(out, *it.Elem())
	}
	return out
}

func TestIterationVisitsLiveElementsInOrder(t *testing.T) {
	p := New[int]()
	for i := 0; i < 10; i++ {
		p.Emplace(i)
	}

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, collect(p))
}

func TestIterationSkipsErasedSlots(t *testing.T) {
	p := New[int]()
	handles := make([]Handle, 10)
	for i := range handles {
		handles[i] = p.Emplace(i)
	}
	for i := 0; i < 10; i += 2 {
		p.Erase(handles[i])
	}

	require.Equal(t, []int{1, 3, 5, 7, 9}, collect(p))
}

func TestIterationStartsPastErasedHead(t *testing.T) {
	p := New[int]()
	h0 := p.Emplace(0)
	p.Emplace(1)
	p.Erase(h0)

	it := p.Begin()
	require.Equal(t, 1, *it.Elem())
	require.Equal(t, p.End(), it.Next())
}

func TestIterationOrderIsStable(t *testing.T) {
	p := New[int](WithFirstBlockSize(3))
	handles := make([]Handle, 30)
	for i := range handles {
		handles[i] = p.Emplace(i)
	}
	for _, i := range []int{0, 7, 8, 13, 29} {
		p.Erase(handles[i])
	}

	first := collect(p)
	second := collect(p)
	require.Equal(t, first, second)
	require.Len(t, first, 25)
}

func TestIterationCrossesBlockBoundaries(t *testing.T) {
	p := New[int](WithFirstBlockSize(2))
	handles := make([]Handle, 8)
	for i := range handles {
		handles[i] = p.Emplace(i)
	}
	require.Equal(t, 3, p.NumBlocks())

	// empty out the middle block entirely; iteration must hop over it
	p.Erase(handles[2])
	p.Erase(handles[3])

	require.Equal(t, []int{0, 1, 4, 5, 6, 7}, collect(p))
}

func TestBidirectionalIteration(t *testing.T) {
	p := New[int](WithFirstBlockSize(2))
	handles := make([]Handle, 12)
	for i := range handles {
		handles[i] = p.Emplace(i)
	}
	p.Erase(handles[0])
	p.Erase(handles[5])
	p.Erase(handles[11])

	forward := collect(p)

	var backward []int
	for it := p.End(); it != p.Begin(); {
		it = it.Prev()
		backward = append(backward, *it.Elem())
	}

	require.Len(t, backward, len(forward))
	for i, v := range forward {
		require.Equal(t, v, backward[len(backward)-1-i])
	}
}

func TestIteratorBoundaryPanics(t *testing.T) {
	empty := New[int]()
	require.Panics(t, func() { empty.End().Next() })
	require.Panics(t, func() { empty.End().Elem() })
	require.Panics(t, func() { empty.End().Prev() })

	p := New[int]()
	p.Emplace(1)
	require.Panics(t, func() { p.Begin().Prev() })
	require.Panics(t, func() { p.End().Elem() })
}

func TestIteratorHandleAgreesWithPool(t *testing.T) {
	p := New[string]()
	p.Emplace("x")
	p.Emplace("y")

	for it := p.Begin(); it != p.End(); it = it.Next() {
		h := it.Handle()
		require.True(t, p.IsUsed(h))
		require.Equal(t, *it.Elem(), *p.At(h))
	}
	require.Equal(t, InvalidHandle, p.End().Handle())
}

func TestAllRangeFunc(t *testing.T) {
	p := New[int]()
	for i := 0; i < 5; i++ {
		p.Emplace(i * 10)
	}

	var got []int
	for h, v := range p.All() {
		require.True(t, p.IsUsed(h))
		got = append(got, *v)
	}
	require.Equal(t, []int{0, 10, 20, 30, 40}, got)

	// early break stops the traversal
	seen := 0
	for range p.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestEraseDuringIteration(t *testing.T) {
	p := New[int](WithFirstBlockSize(4))
	for i := 0; i < 20; i++ {
		p.Emplace(i)
	}

	// erasing the element under the iterator must not derail the walk
	var visited []int
	for it := p.Begin(); it != p.End(); it = it.Next() {
		visited = append(visited, *it.Elem())
		p.Erase(it.Handle())
	}

	require.Len(t, visited, 20)
	require.True(t, p.Empty())
}
