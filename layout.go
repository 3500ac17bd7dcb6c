package leoheap

import (
	"fmt"
	"math/bits"
)

// layout records how a size-n backing slice decomposes into a run of
// sub-heaps whose sizes are Leonardo numbers.
//
// orders is a presence bitmask keyed by order: bit k set means one top-level
// sub-heap of size L(k) is present. Memory is organized back-to-front —
// [largest sub-heap]...[smallest sub-heap] — so walking sub-heaps smallest to
// largest peels successive trailing spans off the slice.
//
// Invariants (maintained by push/pop, asserted in tests):
//   - Σ L(k) over all set bits k == size.
//   - At most one pair of adjacent set bits exists, and if present it is the
//     two lowest set bits. This is the Leonardo analogue of a canonical
//     positional numeral system.
//
// The zero value is an empty layout.
type layout struct {
	orders uint64 // presence bitmask, bit k ⇒ an order-k sub-heap
	size   int    // total element count across all sub-heaps
}

// layoutForLen builds the canonical decomposition of n elements by greedily
// claiming the largest Leonardo number that still fits, scanning orders 62→0.
// The greedy scan produces the unique canonical bitmask for n.
// Complexity: O(64).
func layoutForLen(n int) layout {
	var orders uint64
	remaining := uint64(n)

	for order := maxOrder - 2; order >= 0; order-- {
		if leonardoNumbers[order] <= remaining {
			remaining -= leonardoNumbers[order]
			orders |= 1 << order
		}
	}

	return layout{orders: orders, size: n}
}

// len reports the total number of elements the layout accounts for.
func (l layout) len() int { return l.size }

// lowestOrder returns the order of the smallest sub-heap, or -1 when the
// layout is empty.
func (l layout) lowestOrder() int {
	if l.orders == 0 {
		return -1
	}

	return bits.TrailingZeros64(l.orders)
}

// push grows the layout by one element, updating the bitmask in O(1):
//  1. Empty layout → start an order-1 sub-heap.
//  2. Two lowest sub-heaps of adjacent orders k, k+1 → merge them with the
//     new element into a single order-(k+2) sub-heap, mirroring
//     L(k) + L(k+1) + 1 = L(k+2).
//  3. Lowest order is 1 → the new element becomes an order-0 leaf.
//  4. Otherwise → the new element starts a fresh order-1 sub-heap.
func (l *layout) push() {
	l.size++

	lowest := l.lowestOrder()
	switch {
	case lowest < 0:
		l.orders |= 1 << 1
	case l.orders>>lowest&3 == 3:
		l.orders &^= 3 << lowest
		l.orders |= 1 << (lowest + 2)
	case lowest == 1:
		l.orders |= 1
	default:
		l.orders |= 1 << 1
	}
}

// pop shrinks the layout by one element: the root of the smallest sub-heap
// goes away. For orders above 1 the removed root exposes the sub-heap's two
// structural children, which become independent top-level sub-heaps of
// orders k-2 and k-1. Popping an empty layout is a no-op.
func (l *layout) pop() {
	if l.size == 0 {
		return
	}
	l.size--

	lowest := l.lowestOrder()
	if lowest < 0 {
		return
	}
	l.orders &^= 1 << lowest
	if lowest > 1 {
		l.orders |= 3 << (lowest - 2)
	}
}

// subHeaps returns a cursor over the layout's sub-heap spans, smallest to
// largest, each occupying the trailing portion of whatever remains of the
// first n slots. n must equal the layout's size: a mismatch means the caller
// let the slice and the layout drift apart, which is a bug, so it fails fast.
func (l layout) subHeaps(n int) subHeapCursor {
	if n != l.size {
		panic(fmt.Sprintf("leoheap: slice length %d does not match layout size %d", n, l.size))
	}

	return subHeapCursor{orders: l.orders, hi: n}
}

// subHeapCursor is a single-use, finite walk over a layout's sub-heap views.
// Each next call peels the trailing L(order) slots of the unconsumed prefix,
// so the yielded index ranges are disjoint by construction.
type subHeapCursor struct {
	orders uint64 // orders not yet visited
	hi     int    // end of the unconsumed prefix
}

// next yields the view of the smallest unvisited sub-heap, or ok=false when
// all sub-heaps have been visited.
func (c *subHeapCursor) next() (subHeap, bool) {
	if c.orders == 0 {
		return subHeap{}, false
	}

	order := bits.TrailingZeros64(c.orders)
	c.orders &^= 1 << order

	sh := subHeap{lo: c.hi - spanLen(order), hi: c.hi, order: order}
	c.hi = sh.lo

	return sh, true
}

// remaining reports how many sub-heaps the cursor has yet to yield.
func (c subHeapCursor) remaining() int { return bits.OnesCount64(c.orders) }
