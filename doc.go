// Package leoheap is an in-place, slice-backed max-priority structure built
// on Leonardo numbers — the engine of smoothsort.
//
// 🚀 What is a Leonardo heap?
//
//	Instead of one binary heap sized to a power of two, the backing slice is
//	partitioned into a short run of nested sub-heaps whose sizes are Leonardo
//	numbers (L(0)=L(1)=1, L(k)=L(k-1)+L(k-2)+1). A 64-bit presence bitmask —
//	the layout — records which orders are live. The partition behaves like a
//	canonical positional numeral system: appending an element updates the
//	mask in O(1), and removing the maximum splits at most one sub-heap into
//	its two children. It's the structure behind:
//	  • amortized O(1) Push, O(log n) Pop
//	  • O(n·log n) in-place Sort with zero auxiliary storage
//	  • near-O(n) sorting of already-mostly-sorted data
//
// ✨ Key features:
//   - generic over any element type, ordered by a less predicate
//     (NewOrdered for cmp.Ordered types)
//   - Push / Peek / Pop / Sort / Heapify / Dedup / Retain / Clone
//   - capacity control: WithCapacity, Reserve, ReserveExact, ShrinkToFit
//   - lazy largest-first walks: Iter (non-destructive) and Drain (removing)
//   - the maximum always sits in the last slot of the backing slice
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/leoheap"
//
//	h := leoheap.NewOrdered[int]()
//	h.Push(4)
//	h.Push(1)
//	h.Push(2)
//	h.Push(3)
//
//	for v := range h.Drain() {
//	  fmt.Println(v) // 4, 3, 2, 1
//	}
//
// Performance:
//
//   - Push:  amortized O(1), worst-case O(log n)
//   - Pop:   O(log n)
//   - Sort:  O(n·log n), approaching O(n) on nearly-sorted input
//   - Memory: the element slice itself — no side arrays, no per-node boxes
//
// Peek and Pop on an empty heap return ok=false — a normal outcome, not an
// error. Invariant violations (nil comparator, slice/layout length drift)
// are programmer errors and panic fast.
//
// A Heap is not safe for concurrent use; callers serialize externally.
package leoheap
