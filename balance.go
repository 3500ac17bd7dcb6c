package leoheap

// siftDown restores the max-heap property inside one sub-heap after its root
// value changed, by iterative descent:
//  1. Leaves are trivially in order — stop.
//  2. Pick the child with the larger root. On equality prefer the order-(k-1)
//     child: descending there leaves the array slightly more sorted.
//  3. If the parent already dominates the chosen child, stop.
//  4. Otherwise swap the two roots and descend into the chosen child.
//
// Complexity: O(log L(order)) comparisons and swaps.
func siftDown[T any](data []T, less func(a, b T) bool, sh subHeap) {
	for {
		large, small, ok := sh.children()
		if !ok {
			return
		}

		next := large
		if less(data[large.root()], data[small.root()]) {
			next = small
		}

		if !less(data[sh.root()], data[next.root()]) {
			return
		}

		data[sh.root()], data[next.root()] = data[next.root()], data[sh.root()]
		sh = next
	}
}

// restring restores the stringing property over the cursor's sub-heaps: read
// along the slice, largest sub-heap first, root values are non-decreasing,
// which pins the global maximum to the very end of the slice.
//
// Walking smallest to largest, an out-of-order pair is fixed by swapping the
// two roots; the receiving sub-heap then needs an internal siftDown since its
// root shrank. The walk stops at the first already-ordered pair — everything
// beyond it was ordered before the call and the swaps never disturb it.
//
// Complexity: O(count) comparisons plus one siftDown per swap.
func restring[T any](data []T, less func(a, b T) bool, cur subHeapCursor) {
	this, ok := cur.next()
	if !ok {
		return
	}

	for {
		next, ok := cur.next()
		if !ok {
			return
		}

		if !less(data[this.root()], data[next.root()]) {
			return
		}

		data[this.root()], data[next.root()] = data[next.root()], data[this.root()]
		siftDown(data, less, next)
		this = next
	}
}

// balanceAfterPush restores both heap invariants after one element has been
// appended and l.push() recorded it: the newest (lowest-order) sub-heap gets
// an internal siftDown, then the whole sequence is restrung.
// Amortized O(1), worst-case O(log n).
func balanceAfterPush[T any](data []T, less func(a, b T) bool, l layout) {
	cur := l.subHeaps(len(data))

	newest, ok := cur.next()
	if !ok {
		return
	}
	siftDown(data, less, newest)

	restring(data, less, l.subHeaps(len(data)))
}

// balanceAfterPop restores the stringing property after the maximum has been
// removed from the slice's tail and l.pop() recorded it.
//
// Work is needed only when the two smallest remaining sub-heaps have adjacent
// orders: that is precisely the state left by popping an order-k root (k > 1),
// whose two former children of orders k-2 and k-1 just became top-level and
// may be out of order against their neighbours. Two restring passes run in a
// fixed order: first from the second sub-heap, letting the freshly exposed
// order-(k-1) child settle against its higher neighbours, then the full
// sequence, reconsidering the order-(k-2) child against the settled run.
// Complexity: O(log n).
func balanceAfterPop[T any](data []T, less func(a, b T) bool, l layout) {
	cur := l.subHeaps(len(data))

	fst, ok := cur.next()
	if !ok {
		return
	}
	snd, ok := cur.next()
	if !ok {
		return
	}
	if snd.order != fst.order+1 {
		return
	}

	tail := l.subHeaps(len(data))
	tail.next()
	restring(data, less, tail)

	restring(data, less, l.subHeaps(len(data)))
}
