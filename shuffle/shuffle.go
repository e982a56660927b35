package shuffle

import (
	"errors"
	"slices"
	"unicode/utf8"
)

var (
	// ErrNegativeIterations is returned when Interleave receives iterations < 0.
	ErrNegativeIterations = errors.New("shuffle: iterations must be >= 0")

	// ErrInvalidUTF8 is returned when Interleave receives a string that is
	// not valid UTF-8.
	ErrInvalidUTF8 = errors.New("shuffle: input is not valid UTF-8")
)

// Round applies one interleave round to s.
// Invalid UTF-8 bytes are decoded as U+FFFD before the round, so the
// result is always valid UTF-8.
// Complexity: O(n) time and memory.
func Round(s string) string {
	src := []rune(s)
	dst := make([]rune, len(src))
	roundInto(dst, src)

	return string(dst)
}

// Period returns the number of rounds after which s first equals itself
// again. Sequences of length 0 or 1 have period 1. Invalid UTF-8 bytes
// count as U+FFFD, as in Round.
// Complexity: O(n·L) time, O(n) memory.
func Period(s string) int {
	orig := []rune(s)
	if len(orig) < 2 {
		return 1
	}

	cur := slices.Clone(orig)
	next := make([]rune, len(orig))
	for rounds := 1; ; rounds++ {
		roundInto(next, cur)
		cur, next = next, cur
		if slices.Equal(cur, orig) {
			return rounds
		}
	}
}

// Interleave applies Round to s iterations times and returns the result.
//
// Rounds are simulated one by one. When the sequence first returns to s
// after L rounds, the remaining count becomes iterations mod L, which
// leaves the result identical to the naive loop.
//
// Errors:
//   - ErrNegativeIterations if iterations < 0.
//   - ErrInvalidUTF8 if s is not valid UTF-8.
//
// Complexity: O(n·min(iterations, L)) time, O(n) memory.
func Interleave(s string, iterations int) (string, error) {
	out, _, err := InterleavePeriod(s, iterations)

	return out, err
}

// InterleavePeriod is Interleave that also reports the period detected on
// the way. The period is 0 when fewer rounds ran than one full cycle, and
// 1 for sequences of length 0 or 1.
func InterleavePeriod(s string, iterations int) (out string, period int, err error) {
	if iterations < 0 {
		return "", 0, ErrNegativeIterations
	}
	if !utf8.ValidString(s) {
		return "", 0, ErrInvalidUTF8
	}
	orig := []rune(s)
	if len(orig) < 2 {
		return s, 1, nil
	}
	if iterations == 0 {
		return s, 0, nil
	}

	cur := slices.Clone(orig)
	next := make([]rune, len(orig))
	remaining := iterations

	for remaining > 0 {
		roundInto(next, cur)
		cur, next = next, cur
		remaining--

		if period == 0 && slices.Equal(cur, orig) {
			period = iterations - remaining
			remaining = iterations % period
		}
	}

	return string(cur), period, nil
}

// roundInto writes one round of src into dst; len(dst) must equal len(src).
func roundInto(dst, src []rune) {
	half := (len(src) + 1) / 2
	for i, r := range src {
		if i%2 == 0 {
			dst[i/2] = r
		} else {
			dst[half+i/2] = r
		}
	}
}
