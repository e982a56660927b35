// SPDX-License-Identifier: MIT

package grid

// Spiral builds a size×size grid filled with consecutive integers in spiral
// order, starting at the top-left cell.
//
// Algorithm (clockwise):
//  1. Keep four boundaries top, bottom, left, right and a running value.
//  2. Walk the top row left→right, then shrink top.
//  3. Walk the right column top→bottom, then shrink right.
//  4. Walk the bottom row right→left (only while top <= bottom), shrink bottom.
//  5. Walk the left column bottom→top (only while left <= right), shrink left.
//  6. Stop when the boundaries cross.
//
// Every cell is written exactly once, so the grid holds exactly size²
// values: start, start+1, …, start+size²-1.
// The counter-clockwise spiral is the transpose of the clockwise one.
//
// Errors:
//   - ErrNegativeSize if size < 0.
//   - ErrBadDirection if WithDirection received an unknown value.
//   - ErrSizeTooLarge if size² or start+size²-1 overflows int.
//
// Complexity: O(N²) time, O(N²) memory for the result.
func Spiral(size int, opts ...Option) ([][]int, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if err := validateDirection(o.direction); err != nil {
		return nil, err
	}
	if err := validateSpiralRange(size, o.start); err != nil {
		return nil, err
	}

	g := make([][]int, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	fillClockwise(g, o.start)

	if o.direction == CounterClockwise {
		transposeInPlace(g)
	}

	return g, nil
}

// fillClockwise writes start.. into the square grid g in clockwise order.
func fillClockwise(g [][]int, start int) {
	top, bottom := 0, len(g)-1
	left, right := 0, len(g)-1
	value := start

	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			g[top][c] = value
			value++
		}
		top++

		for r := top; r <= bottom; r++ {
			g[r][right] = value
			value++
		}
		right--

		if top <= bottom {
			for c := right; c >= left; c-- {
				g[bottom][c] = value
				value++
			}
			bottom--
		}

		if left <= right {
			for r := bottom; r >= top; r-- {
				g[r][left] = value
				value++
			}
			left++
		}
	}
}

// Unwind reads a square grid in clockwise spiral order starting at the
// top-left cell. Unwind(Spiral(n)) yields 1, 2, …, n².
//
// Errors: ErrNonSquare if g is not square.
// Complexity: O(N²) time, O(N²) memory for the result.
func Unwind[T any](g [][]T) ([]T, error) {
	if err := ValidateSquare(g); err != nil {
		return nil, err
	}

	n := len(g)
	out := make([]T, 0, n*n)
	top, bottom := 0, n-1
	left, right := 0, n-1

	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			out = append(out, g[top][c])
		}
		top++

		for r := top; r <= bottom; r++ {
			out = append(out, g[r][right])
		}
		right--

		if top <= bottom {
			for c := right; c >= left; c-- {
				out = append(out, g[bottom][c])
			}
			bottom--
		}

		if left <= right {
			for r := bottom; r >= top; r-- {
				out = append(out, g[r][left])
			}
			left++
		}
	}

	return out, nil
}
