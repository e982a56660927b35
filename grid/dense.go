// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxExactInt is 2^53, the largest magnitude float64 holds for every integer.
const maxExactInt = 1 << 53

// ToDense copies a square integer grid into a new *mat.Dense.
// The empty grid maps to an empty (zero-value) Dense, since mat.NewDense
// rejects zero dimensions.
//
// Errors:
//   - ErrNonSquare if g is not square.
//   - ErrPrecisionLoss if a value lies outside ±2^53.
// Complexity: O(N²).
func ToDense(g [][]int) (*mat.Dense, error) {
	if err := ValidateSquare(g); err != nil {
		return nil, err
	}
	n := len(g)
	if n == 0 {
		return &mat.Dense{}, nil
	}

	data := make([]float64, 0, n*n)
	for _, row := range g {
		for _, v := range row {
			if v > maxExactInt || v < -maxExactInt {
				return nil, validatorErrorf("ToDense", ErrPrecisionLoss)
			}
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(n, n, data), nil
}

// FromDense copies a square gonum matrix back into an integer grid.
//
// Errors:
//   - ErrNilGrid if m is nil (or a nil *mat.Dense).
//   - ErrNonSquare if m is not square.
//   - ErrNonIntegral if any value is fractional, NaN or ±Inf.
//   - ErrPrecisionLoss if any value lies outside ±2^53.
//
// Complexity: O(N²).
func FromDense(m mat.Matrix) ([][]int, error) {
	if m == nil {
		return nil, validatorErrorf("FromDense", ErrNilGrid)
	}
	if d, ok := m.(*mat.Dense); ok {
		if d == nil {
			return nil, validatorErrorf("FromDense", ErrNilGrid)
		}
		if d.IsEmpty() {
			return [][]int{}, nil
		}
	}

	r, c := m.Dims()
	if r != c {
		return nil, validatorErrorf("FromDense", ErrNonSquare)
	}

	g := make([][]int, r)
	for i := 0; i < r; i++ {
		g[i] = make([]int, c)
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if !isIntegral(v) {
				return nil, validatorErrorf("FromDense", ErrNonIntegral)
			}
			if math.Abs(v) > maxExactInt {
				return nil, validatorErrorf("FromDense", ErrPrecisionLoss)
			}
			g[i][j] = int(v)
		}
	}

	return g, nil
}

// isIntegral reports whether v is finite and whole.
func isIntegral(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}

	return v == math.Trunc(v)
}

// RotateDense turns a square *mat.Dense by 90° clockwise in place using the
// same transpose-then-reverse scheme as Rotate. An empty Dense is a no-op.
//
// Errors: ErrNilGrid for nil m, ErrNonSquare for a non-square m.
// Complexity: O(N²) time, O(1) extra space.
func RotateDense(m *mat.Dense) error {
	if m == nil {
		return validatorErrorf("RotateDense", ErrNilGrid)
	}
	if m.IsEmpty() {
		return nil
	}
	n, c := m.Dims()
	if n != c {
		return validatorErrorf("RotateDense", ErrNonSquare)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := m.At(i, j), m.At(j, i)
			m.Set(i, j, b)
			m.Set(j, i, a)
		}
	}
	for i := 0; i < n; i++ {
		for lo, hi := 0, n-1; lo < hi; lo, hi = lo+1, hi-1 {
			a, b := m.At(i, lo), m.At(i, hi)
			m.Set(i, lo, b)
			m.Set(i, hi, a)
		}
	}

	return nil
}
