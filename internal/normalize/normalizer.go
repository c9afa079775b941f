// File: internal/normalize/normalizer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified index normalization routines for container indices and sections.
// Negative indices count from the end: -1 is the last item. Normalization is
// pure arithmetic; each call site decides whether it clamps (slicing-style
// operations) or rejects (mutation-style operations) what comes out.
//
// Example usage:
//
//   off := normalize.Offset(length, i)
//   if !normalize.Valid(length, off) { ... }
//   lo, hi := normalize.Section(length, i1, i2)

package normalize

// Offset maps a signed logical index onto an absolute offset. The result is
// not range-checked and may be negative or >= length.
func Offset(length, index int) int {
	if index < 0 {
		return length + index
	}
	return index
}

// Valid reports whether off addresses an existing item.
func Valid(length, off int) bool {
	return off >= 0 && off < length
}

// Bound reports whether off is a legal section end or insertion point,
// that is within [0, length].
func Bound(length, off int) bool {
	return off >= 0 && off <= length
}

// Clamp forces off into [0, length].
func Clamp(length, off int) int {
	return min(max(off, 0), length)
}

// Section normalizes both ends of [i1, i2) and clamps them into [0, length].
// An inverted section collapses to the empty section at lo.
func Section(length, i1, i2 int) (lo, hi int) {
	lo = Clamp(length, Offset(length, i1))
	hi = Clamp(length, Offset(length, i2))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// StrictSection normalizes [i1, i2) without clamping. ok is false when the
// start does not address an item or the end lies outside [0, length].
func StrictSection(length, i1, i2 int) (lo, hi int, ok bool) {
	lo = Offset(length, i1)
	hi = Offset(length, i2)
	return lo, hi, Valid(length, lo) && Bound(length, hi)
}
