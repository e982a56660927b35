package digits

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Split returns the decimal digits of n, most significant first, by
// repeated division.
//
// Errors: ErrNonPositive if n <= 0.
// Complexity: O(log₁₀ n).
func Split[T constraints.Integer](n T) ([]int, error) {
	if n <= 0 {
		return nil, ErrNonPositive
	}

	var ds []int
	for n > 0 {
		ds = append(ds, int(n%10))
		n /= 10
	}
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}

	return ds, nil
}

// Join reassembles most-significant-first digits into a T. An empty slice
// yields zero.
//
// Errors:
//   - ErrBadDigit if a digit is outside 0..9.
//   - ErrOverflow if the value does not fit T.
//
// Complexity: O(len(ds)).
func Join[T constraints.Integer](ds []int) (T, error) {
	var acc T
	for i, d := range ds {
		if d < 0 || d > 9 {
			return 0, fmt.Errorf("Join: position %d: %w", i, ErrBadDigit)
		}
		next := acc*10 + T(d)
		// Without wrap-around next/10 is exactly acc.
		if next/10 != acc {
			return 0, fmt.Errorf("Join: %w", ErrOverflow)
		}
		acc = next
	}

	return acc, nil
}
