// SPDX-License-Identifier: MIT

package grid

// Rotate turns the square grid g by 90° clockwise in place and returns g.
//
// Steps:
//  1. Transpose: swap g[r][c] with g[c][r] for every r < c (each pair once).
//  2. Reverse every row by swapping symmetric index pairs.
//
// No auxiliary grid is allocated.
//
// Errors: ErrNonSquare if g is not square; g is left untouched.
// Complexity: O(N²) time, O(1) extra space.
func Rotate[T any](g [][]T) ([][]T, error) {
	if err := ValidateSquare(g); err != nil {
		return nil, err
	}

	transposeInPlace(g)
	for _, row := range g {
		reverse(row)
	}

	return g, nil
}

// RotateCounterClockwise turns the square grid g by 90° counter-clockwise
// in place and returns g. It transposes g and then reverses the order of
// the rows; only row headers move in the second step.
//
// Errors: ErrNonSquare if g is not square; g is left untouched.
// Complexity: O(N²) time, O(1) extra space.
func RotateCounterClockwise[T any](g [][]T) ([][]T, error) {
	if err := ValidateSquare(g); err != nil {
		return nil, err
	}

	transposeInPlace(g)
	reverse(g)

	return g, nil
}

// Transpose mirrors the square grid g over its main diagonal in place and
// returns g.
//
// Errors: ErrNonSquare if g is not square.
// Complexity: O(N²) time, O(1) extra space.
func Transpose[T any](g [][]T) ([][]T, error) {
	if err := ValidateSquare(g); err != nil {
		return nil, err
	}
	transposeInPlace(g)

	return g, nil
}

// transposeInPlace assumes g is square.
func transposeInPlace[T any](g [][]T) {
	n := len(g)
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			g[r][c], g[c][r] = g[c][r], g[r][c]
		}
	}
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
