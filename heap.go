package leoheap

import (
	"cmp"
	"iter"
	"slices"
)

// Heap is an in-place, slice-backed max-priority structure built on Leonardo
// numbers — the engine of smoothsort. Push is amortized O(1), Pop is
// O(log n), and Sort orders the backing slice ascending in O(n·log n) with
// zero auxiliary storage, approaching O(n) on nearly-sorted input.
//
// The order over T is fixed at construction by a strict less predicate; the
// element occupying the last slot of the backing slice is always the maximum.
//
// A Heap is not safe for concurrent use: callers sharing one instance across
// goroutines must serialize every mutating call externally.
type Heap[T any] struct {
	data   []T
	layout layout
	less   func(a, b T) bool
}

// New returns an empty heap ordered by less.
// It panics if less is nil.
func New[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("leoheap: comparator must not be nil")
	}

	return &Heap[T]{less: less}
}

// NewOrdered returns an empty heap over a naturally ordered element type,
// using the ascending order of cmp.Less.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New[T](cmp.Less[T])
}

// WithCapacity returns an empty heap ordered by less, with room for n
// elements before the first reallocation.
// It panics if less is nil.
func WithCapacity[T any](n int, less func(a, b T) bool) *Heap[T] {
	h := New[T](less)
	h.data = make([]T, 0, n)

	return h
}

// FromSlice adopts data (no copy) and heapifies it in place under less.
// The caller must not use the slice afterwards.
// Complexity: O(n·log n) worst case.
func FromSlice[T any](data []T, less func(a, b T) bool) *Heap[T] {
	h := New[T](less)
	h.data = data
	h.Heapify()

	return h
}

// Len reports the number of elements in the heap. O(1).
func (h *Heap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no elements. O(1).
func (h *Heap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Capacity reports how many elements the heap can hold before reallocating.
func (h *Heap[T]) Capacity() int { return cap(h.data) }

// Reserve ensures room for at least n more elements, growing with the usual
// amortized append strategy. No-op if the capacity already suffices.
func (h *Heap[T]) Reserve(n int) {
	h.data = slices.Grow(h.data, n)
}

// ReserveExact ensures room for exactly n more elements, reallocating to the
// precise capacity when the current one falls short. Prefer Reserve unless
// the final size is known: exact sizing defeats amortized growth.
func (h *Heap[T]) ReserveExact(n int) {
	if cap(h.data)-len(h.data) >= n {
		return
	}
	grown := make([]T, len(h.data), len(h.data)+n)
	copy(grown, h.data)
	h.data = grown
}

// ShrinkToFit reallocates the backing slice to exactly Len elements,
// releasing any excess capacity.
func (h *Heap[T]) ShrinkToFit() {
	if cap(h.data) == len(h.data) {
		return
	}
	shrunk := make([]T, len(h.data))
	copy(shrunk, h.data)
	h.data = shrunk
}

// Clear removes every element, keeping the allocated capacity.
func (h *Heap[T]) Clear() {
	var zero T
	for i := range h.data {
		h.data[i] = zero // release references held in the retained capacity
	}
	h.data = h.data[:0]
	h.layout = layout{}
}

// Push inserts v. Amortized O(1), worst-case O(log n).
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.layout.push()
	balanceAfterPush(h.data, h.less, h.layout)
}

// Peek returns the current maximum — the last element of the backing slice —
// without removing it. ok is false on an empty heap. O(1).
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}

	return h.data[len(h.data)-1], true
}

// Pop removes and returns the maximum. ok is false on an empty heap.
// O(log n).
func (h *Heap[T]) Pop() (v T, ok bool) {
	n := len(h.data)
	if n == 0 {
		return v, false
	}

	v = h.data[n-1]
	var zero T
	h.data[n-1] = zero // release the vacated slot
	h.data = h.data[:n-1]

	h.layout.pop()
	balanceAfterPop(h.data, h.less, h.layout)

	return v, true
}

// Sort orders the backing slice ascending, in place. It runs the pop
// rebalancing once per element over ever-shorter prefixes without shrinking
// the slice: each step the prefix maximum already sits at the prefix end,
// exactly where the ascending order wants it. Afterwards the heap is
// untouched in size and still structurally valid — an ascending slice
// satisfies every sub-heap and stringing invariant — so pushes and pops may
// continue immediately.
// Complexity: O(n·log n), approaching O(n) on nearly-sorted input.
func (h *Heap[T]) Sort() {
	l := h.layout
	for l.len() > 1 {
		l.pop()
		balanceAfterPop(h.data[:l.len()], h.less, l)
	}
}

// Heapify rebuilds the heap structure for arbitrarily permuted contents,
// element order preserved on entry: it replays the push rebalancing once per
// prefix, sizes 1 through n.
// Complexity: O(n·log n) worst case.
func (h *Heap[T]) Heapify() {
	h.layout = layout{}
	for i := 1; i <= len(h.data); i++ {
		h.layout.push()
		balanceAfterPush(h.data[:i], h.less, h.layout)
	}
}

// Dedup removes duplicate elements, keeping one representative of each
// equivalence class under the heap's order (a and b are duplicates when
// neither is less than the other). The heap is sorted, compacted, and
// re-heapified. O(n·log n).
func (h *Heap[T]) Dedup() {
	h.Sort()

	kept := 0
	for i := range h.data {
		if i > 0 && !h.less(h.data[kept-1], h.data[i]) && !h.less(h.data[i], h.data[kept-1]) {
			continue
		}
		h.data[kept] = h.data[i]
		kept++
	}
	h.truncate(kept)
	h.Heapify()
}

// Retain keeps only the elements for which keep returns true, then rebuilds
// the heap. O(n·log n).
func (h *Heap[T]) Retain(keep func(T) bool) {
	kept := 0
	for i := range h.data {
		if keep(h.data[i]) {
			h.data[kept] = h.data[i]
			kept++
		}
	}
	h.truncate(kept)
	h.Heapify()
}

// truncate shortens the slice to n elements, zeroing the abandoned tail.
func (h *Heap[T]) truncate(n int) {
	var zero T
	for i := n; i < len(h.data); i++ {
		h.data[i] = zero
	}
	h.data = h.data[:n]
}

// Iter returns a lazy, single-use, largest-first walk over the elements
// without removing them. Advancing the walk sorts the backing slice in place
// exactly as Sort does; a fully consumed walk leaves the heap ascending,
// full-size, and still valid. The heap must not be mutated while the walk is
// live.
func (h *Heap[T]) Iter() iter.Seq[T] {
	l := h.layout

	return func(yield func(T) bool) {
		for l.len() > 0 {
			if !yield(h.data[l.len()-1]) {
				return
			}
			l.pop()
			balanceAfterPop(h.data[:l.len()], h.less, l)
		}
	}
}

// Drain returns a lazy, single-use, largest-first walk that removes elements
// via repeated Pop. Stopping early leaves the undrained remainder as a valid
// heap.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.Pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the heap's elements and structure. The
// comparator is shared.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		data:   slices.Clone(h.data),
		layout: h.layout,
		less:   h.less,
	}
}

// Values returns a copy of the backing slice in its current structural
// order: [largest sub-heap]...[smallest sub-heap], maximum last.
func (h *Heap[T]) Values() []T {
	return slices.Clone(h.data)
}
