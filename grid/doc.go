// Package grid generates and transforms square integer grids.
//
// What it offers:
//   - Spiral: fill an N×N grid with consecutive values in spiral order
//   - Unwind: read a square grid back in clockwise spiral order
//   - Rotate / RotateCounterClockwise: 90° turns in place, O(1) extra space
//   - Transpose: in-place mirror over the main diagonal
//   - ToDense / FromDense / RotateDense: bridges to gonum's *mat.Dense
//
// Grids are plain [][]T values. A grid is square when every row has
// exactly len(g) elements; nil and [][]T{} are the empty 0×0 grid.
// Rotations mutate the caller's grid and return the same slice, so the
// caller must not read or write it concurrently during the call.
//
// Usage:
//
//	g, err := grid.Spiral(3)          // [[1 2 3] [8 9 4] [7 6 5]]
//	_, err = grid.Rotate(g)           // [[7 8 1] [6 9 2] [5 4 3]]
//
// All failures are sentinel errors (ErrNegativeSize, ErrNonSquare, …)
// matched with errors.Is.
package grid
