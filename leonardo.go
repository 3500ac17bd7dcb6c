package leoheap

import "fmt"

// maxOrder is the number of Leonardo numbers representable in 64 bits.
// Orders are valid in [0, maxOrder).
const maxOrder = 64

// leonardoNumbers holds L(0)..L(63), where
//
//	L(0) = L(1) = 1
//	L(k) = L(k-1) + L(k-2) + 1
//
// L(63) ≈ 2.1e13, so a heap of any addressable size decomposes into at most
// 64 sub-heaps and a uint64 bitmask can record which orders are present.
var leonardoNumbers = [maxOrder]uint64{
	1, 1, 3, 5, 9, 15, 25, 41, 67, 109, 177, 287, 465, 753, 1219, 1973, 3193,
	5167, 8361, 13529, 21891, 35421, 57313, 92735, 150049, 242785, 392835,
	635621, 1028457, 1664079, 2692537, 4356617, 7049155, 11405773, 18454929,
	29860703, 48315633, 78176337, 126491971, 204668309, 331160281, 535828591,
	866988873, 1402817465, 2269806339, 3672623805, 5942430145, 9615053951,
	15557484097, 25172538049, 40730022147, 65902560197, 106632582345,
	172535142543, 279167724889, 451702867433, 730870592323, 1182573459757,
	1913444052081, 3096017511839, 5009461563921, 8105479075761, 13114940639683,
	21220419715445,
}

// Leonardo returns the order-th Leonardo number.
// It panics if order is outside [0, 64); callers own that precondition.
// Complexity: O(1).
func Leonardo(order int) uint64 {
	if order < 0 || order >= maxOrder {
		panic(fmt.Sprintf("leoheap: Leonardo order %d out of range [0, %d)", order, maxOrder))
	}

	return leonardoNumbers[order]
}

// spanLen returns L(order) as an int, the slot count of an order-sized
// sub-heap span. Internal callers always hold order in range.
func spanLen(order int) int {
	return int(leonardoNumbers[order])
}
