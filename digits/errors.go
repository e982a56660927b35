package digits

import "errors"

var (
	// ErrNonPositive indicates an input that is zero or negative.
	ErrNonPositive = errors.New("digits: number must be > 0")

	// ErrBadDigit indicates a digit outside 0..9 passed to Join.
	ErrBadDigit = errors.New("digits: digit out of range 0..9")

	// ErrOverflow indicates a reassembled value that does not fit the type.
	ErrOverflow = errors.New("digits: value overflows integer type")
)
