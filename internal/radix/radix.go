// Package radix holds the mixed-radix arithmetic shared by coordinate
// enumeration and cartesian products: axis 0 is the most significant digit
// and the last axis the least significant.
package radix

import (
	"math"

	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

// Total returns the number of points of a box with the given extents.
// It is 1 for no extents and 0 when any extent is not positive.
func Total(extents ...int) (int, error) {
	total := 1
	for _, e := range extents {
		if e <= 0 {
			return 0, nil
		}
	}
	for _, e := range extents {
		if total > math.MaxInt/e {
			return 0, xerrors.WithStackTrace(xerrors.ErrOverflow)
		}
		total *= e
	}

	return total, nil
}

// Walk splits ordinal into one digit per axis, visiting axes from the last
// to the first. Ordinal must be within [0, Total) of the extents reported
// by extent.
func Walk(ordinal, axes int, extent func(axis int) int, visit func(axis, digit int) error) error {
	for axis := axes - 1; axis >= 0; axis-- {
		e := extent(axis)
		if err := visit(axis, ordinal%e); err != nil {
			return err
		}
		ordinal /= e
	}

	return nil
}

// Increment advances digits by one like an odometer: the last axis first,
// carrying into earlier axes. It reports false when every axis wrapped
// around to zero.
func Increment(digits, extents []int) bool {
	for axis := len(digits) - 1; axis >= 0; axis-- {
		digits[axis]++
		if digits[axis] < extents[axis] {
			return true
		}
		digits[axis] = 0
	}

	return false
}
