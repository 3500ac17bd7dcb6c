package leoheap

// subHeap is an ephemeral structural lens onto one Leonardo-sized span of the
// backing slice: the half-open index range [lo, hi) with hi-lo == L(order).
//
// Views are plain index triples rather than sub-slices so that a parent and
// its children can coexist without aliasing the slice header; every split
// derives child ranges arithmetically from the Leonardo rule, which keeps all
// simultaneously-live views disjoint by construction. Views are never stored;
// they are recomputed on demand and live for one balancing step.
//
// Span anatomy for order > 1 (root always last):
//
//	[lo ............................. hi)
//	[ order-(k-1) child | order-(k-2) child | root ]
//	      L(k-1) slots        L(k-2) slots     1
//
// For order ≤ 1 the span is a single-element leaf.
type subHeap struct {
	lo, hi int // half-open index range into the backing slice
	order  int // Leonardo order; hi-lo == L(order)
}

// root returns the index of the sub-heap's root, the last slot of its span.
func (s subHeap) root() int { return s.hi - 1 }

// isLeaf reports whether the sub-heap has no children.
func (s subHeap) isLeaf() bool { return s.order <= 1 }

// children splits the view into its two child views: large of order k-1
// occupying the first L(k-1) slots and small of order k-2 occupying the
// remaining slots before the root. ok is false for leaves.
// The split is pure index arithmetic — O(1), no copying.
func (s subHeap) children() (large, small subHeap, ok bool) {
	if s.isLeaf() {
		return subHeap{}, subHeap{}, false
	}

	split := s.lo + spanLen(s.order-1)
	large = subHeap{lo: s.lo, hi: split, order: s.order - 1}
	small = subHeap{lo: split, hi: s.hi - 1, order: s.order - 2}

	return large, small, true
}
