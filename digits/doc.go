// Package digits decomposes positive integers into their decimal digits
// and computes the next greater permutation of those digits.
//
//	digits.NextGreater(12345)  // 12354
//	digits.NextGreater(321321) // 322113
//	digits.NextGreater(321)    // 321, already the largest permutation
//
// All functions are generic over constraints.Integer. Reassembly detects
// values that do not fit the target type and reports ErrOverflow instead
// of wrapping around.
package digits
