package digits_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/loopkit/digits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextGreater_Examples(t *testing.T) {
	cases := []struct{ in, want int }{
		{12345, 12354},
		{123450, 123504},
		{12344, 12434},
		{123440, 124034},
		{1203450, 1203504},
		{90822, 92028},
		{321321, 322113},
		{321, 321},
		{1, 1},
		{11, 11},
		{12, 21},
		{1000, 1000},
		{534976, 536479},
	}
	for _, tc := range cases {
		got, err := digits.NextGreater(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "NextGreater(%d)", tc.in)
	}
}

func TestNextGreater_NonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -12345} {
		_, err := digits.NextGreater(n)
		require.ErrorIs(t, err, digits.ErrNonPositive, "n=%d", n)
	}
}

func TestNextGreater_Overflow(t *testing.T) {
	_, err := digits.NextGreater(int8(127))
	require.ErrorIs(t, err, digits.ErrOverflow)

	_, err = digits.NextGreater(int64(math.MaxInt64))
	require.ErrorIs(t, err, digits.ErrOverflow)

	// 255 → 525 does not fit uint8.
	_, err = digits.NextGreater(uint8(255))
	require.ErrorIs(t, err, digits.ErrOverflow)

	// 221 is already the largest permutation of its digits.
	u, err := digits.NextGreater(uint8(221))
	require.NoError(t, err)
	require.Equal(t, uint8(221), u)

	// 56665 → 65566 does not fit uint16.
	_, err = digits.NextGreater(uint16(56665))
	require.ErrorIs(t, err, digits.ErrOverflow)

	fits, err := digits.NextGreater(uint16(65345))
	require.NoError(t, err)
	require.Equal(t, uint16(65354), fits)
}

// permutations returns every ordering of ds (Heap's algorithm).
func permutations(ds []int) [][]int {
	a := slices.Clone(ds)
	var out [][]int
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			out = append(out, slices.Clone(a))
			return
		}
		generate(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
			generate(k - 1)
		}
	}
	generate(len(a))

	return out
}

// bruteNextGreater scans every digit permutation for the smallest value > n.
func bruteNextGreater(t *testing.T, n int) int {
	t.Helper()
	ds, err := digits.Split(n)
	require.NoError(t, err)

	best := n
	for _, p := range permutations(ds) {
		v, err := digits.Join[int](p)
		require.NoError(t, err)
		if v > n && (best == n || v < best) {
			best = v
		}
	}

	return best
}

// TestNextGreater_Minimal compares against exhaustive search on random
// inputs of up to seven digits.
func TestNextGreater_Minimal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		n := 1 + rng.Intn(9_999_999)
		got, err := digits.NextGreater(n)
		require.NoError(t, err)
		require.Equal(t, bruteNextGreater(t, n), got, "n=%d", n)
	}
}

func TestNextGreater_SameDigits(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(math.MaxInt32)
		got, err := digits.NextGreater(n)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, n)

		in, err := digits.Split(n)
		require.NoError(t, err)
		out, err := digits.Split(got)
		require.NoError(t, err)
		slices.Sort(in)
		slices.Sort(out)
		require.Equal(t, in, out, "n=%d got=%d", n, got)
	}
}
