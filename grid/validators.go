// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Single place for the shape checks shared by Spiral, Rotate, Transpose
//     and Unwind.
//   - Return sentinels wrapped with the validator tag so call sites can be
//     identified while errors.Is keeps matching.
//
// All checks are pure and allocate nothing.

package grid

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSize ensures a requested grid size is non-negative.
// Returns wrapped ErrNegativeSize otherwise.
// Complexity: O(1).
func ValidateSize(n int) error {
	if n < 0 {
		return validatorErrorf("ValidateSize", ErrNegativeSize)
	}

	return nil
}

// validateSpiralRange ensures size² cells and the last value
// start+size²-1 both fit int. Assumes size >= 0.
func validateSpiralRange(size, start int) error {
	if size == 0 {
		return nil
	}
	if size > math.MaxInt/size {
		return validatorErrorf("validateSpiralRange: cells", ErrSizeTooLarge)
	}
	span := size*size - 1
	if start > 0 && span > math.MaxInt-start {
		return validatorErrorf("validateSpiralRange: last value", ErrSizeTooLarge)
	}

	return nil
}

// ValidateSquare ensures every row of g holds exactly len(g) elements.
// A nil or empty outer slice is the 0×0 grid and is accepted.
// Complexity: O(N).
func ValidateSquare[T any](g [][]T) error {
	n := len(g)
	for r := 0; r < n; r++ {
		if len(g[r]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d", r), ErrNonSquare)
		}
	}

	return nil
}

// validateDirection rejects Direction values outside the declared set.
func validateDirection(d Direction) error {
	switch d {
	case Clockwise, CounterClockwise:
		return nil
	default:
		return validatorErrorf("validateDirection", ErrBadDirection)
	}
}
