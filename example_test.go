package leoheap_test

import (
	"fmt"

	"github.com/katalvlaran/leoheap"
)

// ExampleNewOrdered demonstrates the priority-queue face of the heap:
// push in any order, drain largest-first.
//
// Complexity: amortized O(1) per Push, O(log n) per drained element.
func ExampleNewOrdered() {
	h := leoheap.NewOrdered[int]()
	h.Push(4)
	h.Push(1)
	h.Push(2)
	h.Push(3)

	for v := range h.Drain() {
		fmt.Println(v)
	}
	// Output:
	// 4
	// 3
	// 2
	// 1
}

// ExampleHeap_Sort demonstrates smoothsort: the backing slice is ordered
// ascending in place, no auxiliary storage, and the heap stays live.
//
// Complexity: O(n·log n), approaching O(n) on nearly-sorted input.
func ExampleHeap_Sort() {
	h := leoheap.FromSlice([]int{5, 3, 8, 1, 9, 2, 7}, func(a, b int) bool { return a < b })

	h.Sort()

	fmt.Println(h.Values())
	// Output:
	// [1 2 3 5 7 8 9]
}

// ExampleHeap_Dedup collapses duplicates down to one representative each.
func ExampleHeap_Dedup() {
	h := leoheap.NewOrdered[int]()
	for _, v := range []int{3, 1, 3, 2, 2, 5} {
		h.Push(v)
	}

	h.Dedup()

	for v := range h.Drain() {
		fmt.Println(v)
	}
	// Output:
	// 5
	// 3
	// 2
	// 1
}

// ExampleHeap_Retain keeps only the elements matching a predicate.
func ExampleHeap_Retain() {
	h := leoheap.NewOrdered[int]()
	for v := 1; v <= 9; v++ {
		h.Push(v)
	}

	h.Retain(func(v int) bool { return v%3 == 0 })

	for v := range h.Drain() {
		fmt.Println(v)
	}
	// Output:
	// 9
	// 6
	// 3
}

// ExampleHeap_Iter walks the elements largest-first without removing them.
func ExampleHeap_Iter() {
	h := leoheap.NewOrdered[string]()
	h.Push("pear")
	h.Push("apple")
	h.Push("quince")

	for v := range h.Iter() {
		fmt.Println(v)
	}
	fmt.Println("len:", h.Len())
	// Output:
	// quince
	// pear
	// apple
	// len: 3
}
