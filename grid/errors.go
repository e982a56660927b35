// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every operation in this package returns one of these sentinels, either
// directly or wrapped with a validator tag. Callers and tests match them
// via errors.Is. No exported function panics on user input.

package grid

import "errors"

var (
	// ErrNegativeSize is returned when a requested grid size is below zero.
	ErrNegativeSize = errors.New("grid: size must be >= 0")

	// ErrNonSquare signals that a square grid was required but some row
	// length differs from the number of rows.
	ErrNonSquare = errors.New("grid: grid is not square")

	// ErrNilGrid indicates that a nil *mat.Dense was passed into an adapter.
	ErrNilGrid = errors.New("grid: nil dense matrix")

	// ErrNonIntegral indicates a dense value that is not an exact integer
	// (fractional part, NaN or ±Inf).
	ErrNonIntegral = errors.New("grid: value is not an integer")

	// ErrBadDirection indicates an unknown Direction value.
	ErrBadDirection = errors.New("grid: unknown direction")

	// ErrSizeTooLarge indicates a spiral whose cell count or last value
	// does not fit int.
	ErrSizeTooLarge = errors.New("grid: size too large")

	// ErrPrecisionLoss indicates an integer outside ±2^53, which float64
	// cannot hold exactly.
	ErrPrecisionLoss = errors.New("grid: value exceeds exact float64 range")
)
