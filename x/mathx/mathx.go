package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// WrapInc increments v within [lo, hi], wrapping hi -> lo.
func WrapInc[T constraints.Integer](v, lo, hi T) T {
	if v >= hi {
		return lo
	}
	return v + 1
}

// WrapDec decrements v within [lo, hi], wrapping lo -> hi.
func WrapDec[T constraints.Integer](v, lo, hi T) T {
	if v <= lo {
		return hi
	}
	return v - 1
}
