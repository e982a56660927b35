package sorting_test

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/loopkit/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsertionSort_Examples covers the documented examples and edge shapes.
func TestInsertionSort_Examples(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"Nil", nil, nil},
		{"Empty", []int{}, []int{}},
		{"Single", []int{4}, []int{4}},
		{"Three", []int{2, 9, 5}, []int{2, 5, 9}},
		{"Duplicates", []int{2, 9, 5, 9}, []int{2, 5, 9, 9}},
		{"Negatives", []int{-2, 9, 5, -3}, []int{-3, -2, 5, 9}},
		{"Reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"Sorted", []int{1, 2, 3}, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sorting.InsertionSort(tc.in)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInsertionSort_InPlace(t *testing.T) {
	s := []float64{3.5, -1, 2.25, 0}
	got := sorting.InsertionSort(s)
	require.Same(t, &s[0], &got[0])
	require.Equal(t, []float64{-1, 0, 2.25, 3.5}, s)
}

func TestInsertionSort_NamedSliceType(t *testing.T) {
	type scores []int
	s := scores{3, 1, 2}
	got := sorting.InsertionSort(s)
	require.IsType(t, scores{}, got)
	require.Equal(t, scores{1, 2, 3}, got)
}

func TestInsertionSort_Strings(t *testing.T) {
	s := []string{"pear", "apple", "fig"}
	require.Equal(t, []string{"apple", "fig", "pear"}, sorting.InsertionSort(s))
}

// TestInsertionSort_Random checks ordering and multiset preservation on
// seeded random inputs against the standard library sort.
func TestInsertionSort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 200; n += 7 {
		in := make([]int, n)
		for i := range in {
			in[i] = rng.Intn(41) - 20
		}
		want := slices.Clone(in)
		slices.Sort(want)

		got := sorting.InsertionSort(slices.Clone(in))
		require.True(t, sorting.IsSorted(got), "n=%d", n)
		require.Equal(t, want, got, "n=%d", n)
	}
}

func TestInsertionSortFunc_Stable(t *testing.T) {
	type item struct {
		key string
		seq int
	}
	in := []item{{"b", 0}, {"a", 1}, {"b", 2}, {"a", 3}, {"c", 4}}
	got := sorting.InsertionSortFunc(in, func(x, y item) int {
		return strings.Compare(x.key, y.key)
	})
	require.Equal(t, []item{{"a", 1}, {"a", 3}, {"b", 0}, {"b", 2}, {"c", 4}}, got)
}

func TestInsertionSortFunc_Descending(t *testing.T) {
	got := sorting.InsertionSortFunc([]int{1, 3, 2}, func(a, b int) int { return b - a })
	require.Equal(t, []int{3, 2, 1}, got)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, sorting.IsSorted([]int(nil)))
	assert.True(t, sorting.IsSorted([]int{1, 1, 2}))
	assert.False(t, sorting.IsSorted([]int{2, 1}))
}
