// Package product exposes the cartesian product of several lists as a single
// random-access list of tuples.
package product

import (
	"iter"
	"slices"

	"github.com/ydb-platform/ydb-go-seqview/internal/radix"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
	"github.com/ydb-platform/ydb-go-seqview/internal/xlist"
)

var _ xlist.List[[]int] = (*View[int])(nil)

// View is the cartesian product of its axes. Tuples are ordered
// lexicographically with axis 0 as the most significant position, which is
// the order coords.New(len(axis0), ..., len(axisN)) enumerates indexes in.
type View[T any] struct {
	axes []xlist.List[T]
}

// New fails with xerrors.ErrOverflow when the number of tuples does not fit
// into int.
func New[T any](axes ...xlist.List[T]) (*View[T], error) {
	v := &View[T]{
		axes: axes,
	}
	if _, err := radix.Total(v.extents()...); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return v, nil
}

func (v *View[T]) extents() []int {
	extents := make([]int, len(v.axes))
	for i, axis := range v.axes {
		extents[i] = axis.Len()
	}

	return extents
}

func (v *View[T]) extent(axis int) int {
	return v.axes[axis].Len()
}

// Axes returns the number of axes.
func (v *View[T]) Axes() int {
	return len(v.axes)
}

// Len is the product of the axis lengths: 0 when some axis is empty and 1
// for a product without axes.
func (v *View[T]) Len() int {
	total := 1
	for _, axis := range v.axes {
		total *= axis.Len()
	}

	return total
}

// Get returns the tuple at the given flat ordinal.
func (v *View[T]) Get(ordinal int) ([]T, error) {
	if err := xerrors.CheckIndex(ordinal, v.Len()); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	tuple := make([]T, len(v.axes))
	err := radix.Walk(ordinal, len(v.axes), v.extent, func(axis, digit int) (err error) {
		tuple[axis], err = v.axes[axis].Get(digit)

		return err
	})
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return tuple, nil
}

// All yields (ordinal, tuple) pairs in order.
func (v *View[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for ordinal, n := 0, v.Len(); ordinal < n; ordinal++ {
			tuple, err := v.Get(ordinal)
			if err != nil {
				return
			}
			if !yield(ordinal, tuple) {
				return
			}
		}
	}
}

// FlatLen reports how many slots FillFlat needs for the tuple at ordinal.
func (v *View[T]) FlatLen(ordinal int) (n int, _ error) {
	if err := xerrors.CheckIndex(ordinal, v.Len()); err != nil {
		return 0, xerrors.WithStackTrace(err)
	}
	err := radix.Walk(ordinal, len(v.axes), v.extent, func(axis, digit int) error {
		elem, err := v.axes[axis].Get(digit)
		if err != nil {
			return err
		}
		if nested, ok := any(elem).(xlist.List[T]); ok {
			n += nested.Len()
		} else {
			n++
		}

		return nil
	})
	if err != nil {
		return 0, xerrors.WithStackTrace(err)
	}

	return n, nil
}

// FillFlat writes the tuple at ordinal into dst and returns the number of
// written slots. An element that is itself an xlist.List[T] is expanded in
// place instead of being written as a single value.
//
// The capacity of dst is checked before anything is written: a destination
// shorter than FlatLen(ordinal) fails with xerrors.ErrShortBuffer.
func (v *View[T]) FillFlat(ordinal int, dst []T) (int, error) {
	need, err := v.FlatLen(ordinal)
	if err != nil {
		return 0, xerrors.WithStackTrace(err)
	}
	if len(dst) < need {
		return 0, xerrors.WithStackTrace(xerrors.ErrShortBuffer)
	}

	// Digits come out last axis first, so the output is built back to front
	// and reversed once at the end.
	n := 0
	err = radix.Walk(ordinal, len(v.axes), v.extent, func(axis, digit int) error {
		elem, err := v.axes[axis].Get(digit)
		if err != nil {
			return err
		}
		nested, ok := any(elem).(xlist.List[T])
		if !ok {
			dst[n] = elem
			n++

			return nil
		}
		for i := nested.Len() - 1; i >= 0; i-- {
			dst[n], err = nested.Get(i)
			if err != nil {
				return err
			}
			n++
		}

		return nil
	})
	if err != nil {
		return 0, xerrors.WithStackTrace(err)
	}
	slices.Reverse(dst[:n])

	return n, nil
}
