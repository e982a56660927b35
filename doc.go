// Package loopkit is a small collection of self-contained, in-memory
// algorithms over grids, sequences, strings and digits.
//
// 🚀 What is inside?
//
//	grid/     spiral generation & unwinding, in-place rotation and
//	          transpose, bridges to gonum *mat.Dense
//	sorting/  generic, stable, in-place insertion sort
//	shuffle/  even/odd interleave shuffle with period detection
//	digits/   digit decomposition and next greater permutation
//
// ✨ Guarantees:
//
//   - Pure functions: no globals, no I/O, no logging inside the algorithms
//   - Sentinel errors matched with errors.Is, never panics on user input
//   - In-place operations return the caller's slice, so identity is kept
//
// Quick ASCII example (grid.Spiral(3), then grid.Rotate):
//
//	1 2 3        7 8 1
//	8 9 4   →    6 9 2
//	7 6 5        5 4 3
//
// The cmd/loopkit binary exposes every algorithm on the command line.
//
//	go get github.com/katalvlaran/loopkit
package loopkit
