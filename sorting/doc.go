// Package sorting provides an in-place, stable insertion sort over any
// ordered element type.
//
// InsertionSort mutates the caller's slice and returns the same slice.
// Its worst case is O(n²) comparisons and moves (reverse-sorted input);
// already-sorted input costs O(n). This is a known limitation: the
// package targets small or nearly sorted inputs, and large inputs should
// go through the standard library's slices.Sort instead.
package sorting
