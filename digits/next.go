package digits

import (
	"fmt"

	"github.com/katalvlaran/loopkit/sorting"
	"golang.org/x/exp/constraints"
)

// NextGreater returns the smallest integer greater than n whose digits are
// a permutation of n's digits. When the digits are already in
// non-increasing order no such integer exists and n is returned unchanged.
//
// Steps:
//  1. Split n into digits, most significant first.
//  2. Find the rightmost p with d[p-1] < d[p]; none means n is maximal.
//  3. Swap d[p-1] with the rightmost digit of d[p:] strictly greater than it.
//  4. Sort d[p:] ascending, which makes the increase minimal.
//  5. Join the digits back into a T.
//
// The leading digit either stays or grows, so the result never starts
// with zero.
//
// Errors:
//   - ErrNonPositive if n <= 0.
//   - ErrOverflow if the next permutation does not fit T.
//
// Complexity: O(k²) for k digits (insertion sort of the suffix, k <= 20).
func NextGreater[T constraints.Integer](n T) (T, error) {
	ds, err := Split(n)
	if err != nil {
		return 0, fmt.Errorf("NextGreater: %w", err)
	}

	p := pivot(ds)
	if p < 0 {
		return n, nil
	}

	left := p - 1
	for i := len(ds) - 1; i >= p; i-- {
		if ds[i] > ds[left] {
			ds[left], ds[i] = ds[i], ds[left]
			break
		}
	}
	sorting.InsertionSort(ds[p:])

	out, err := Join[T](ds)
	if err != nil {
		return 0, fmt.Errorf("NextGreater(%d): %w", n, err)
	}

	return out, nil
}

// pivot returns the rightmost index p >= 1 with ds[p-1] < ds[p], or -1.
func pivot(ds []int) int {
	for p := len(ds) - 1; p > 0; p-- {
		if ds[p-1] < ds[p] {
			return p
		}
	}

	return -1
}
