// Package buf contains overflow-safe size arithmetic used when laying out
// element arrays in raw memory.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, false
	}
	if a < 0 && b < 0 && a < math.MaxInt/b {
		return 0, false
	}
	if a > 0 && b < 0 && b < math.MinInt/a {
		return 0, false
	}
	if a < 0 && b > 0 && a < math.MinInt/b {
		return 0, false
	}
	return a * b, true
}

// ArrayBytes returns count*stride, or an error describing why the product
// cannot describe a memory block (negative input or overflow).
//
//	n, err := buf.ArrayBytes(capacity, int(unsafe.Sizeof(x)))
//	if err != nil {
//	    return fmt.Errorf("layout: %w", err)
//	}
func ArrayBytes(count, stride int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if stride < 0 {
		return 0, fmt.Errorf("negative stride: %d", stride)
	}
	total, ok := MulOverflowSafe(count, stride)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * stride=%d", count, stride)
	}
	return total, nil
}

// AlignUp rounds n up to the next multiple of align, which must be a power of two.
// ok is false when align is not a power of two or the result overflows.
//
// Example:
//
//	AlignUp(1, 8)     = 8
//	AlignUp(8, 8)     = 8
//	AlignUp(4097, 4096) = 8192
func AlignUp(n, align int) (int, bool) {
	if align <= 0 || align&(align-1) != 0 || n < 0 {
		return 0, false
	}
	mask := align - 1
	sum, ok := AddOverflowSafe(n, mask)
	if !ok {
		return 0, false
	}
	return sum &^ mask, true
}
