package sorting

import "golang.org/x/exp/constraints"

// InsertionSort sorts s ascending in place and returns s.
//
// For each position i from 1 to len(s)-1 the element is held aside, every
// larger element before it shifts one slot right, and the held value drops
// into the vacated slot. Equal elements keep their relative order.
//
// NaN values compare false against everything and therefore never shift;
// the result is only guaranteed non-decreasing for NaN-free input.
//
// Complexity: O(n²) worst case, O(n) on sorted input, O(1) extra space.
func InsertionSort[S ~[]E, E constraints.Ordered](s S) S {
	for i := 1; i < len(s); i++ {
		held := s[i]
		j := i - 1
		for j >= 0 && s[j] > held {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = held
	}

	return s
}

// InsertionSortFunc is InsertionSort under a caller comparator. cmp(a, b)
// must return a negative number when a < b, zero when equal and a positive
// number when a > b.
func InsertionSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	for i := 1; i < len(s); i++ {
		held := s[i]
		j := i - 1
		for j >= 0 && cmp(s[j], held) > 0 {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = held
	}

	return s
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[S ~[]E, E constraints.Ordered](s S) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}
