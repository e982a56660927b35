// Package shuffle implements the even/odd interleave shuffle of a string.
//
// One round rebuilds the sequence as the characters at even positions,
// in order, followed by the characters at odd positions, in order:
//
//	"012345" → "024135" → "043215" → "031425" → …
//
// A round is a fixed permutation of positions that depends only on the
// length, so repeated rounds are periodic. Interleave finds the period by
// direct simulation the first time the sequence returns to its input and
// then skips every whole cycle, so huge iteration counts cost at most one
// period's worth of rounds.
//
// Characters are runes: multi-byte UTF-8 characters are moved as a unit.
package shuffle
