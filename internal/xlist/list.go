package xlist

import (
	"iter"

	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

//go:generate mockgen -source list.go -destination xlistmock/list_mock.go -package xlistmock -write_package_comment=false --typed

// List is a finite ordered sequence with random access.
//
// Len must be O(1) and Get must be O(1) or better. Results must stay stable
// for as long as views are built on top of the list.
type List[T any] interface {
	Len() int
	Get(i int) (T, error)
}

var _ List[int] = Slice[int](nil)

// Slice adapts a Go slice to List without copying it.
type Slice[T any] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Get(i int) (t T, _ error) {
	if err := xerrors.CheckIndex(i, len(s)); err != nil {
		return t, err
	}

	return s[i], nil
}

// All yields (index, element) pairs of l in order. Iteration stops on the
// first Get error.
func All[T any](l List[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, n := 0, l.Len(); i < n; i++ {
			v, err := l.Get(i)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Collect materializes l into a new slice.
func Collect[T any](l List[T]) ([]T, error) {
	out := make([]T, 0, l.Len())
	for i, n := 0, l.Len(); i < n; i++ {
		v, err := l.Get(i)
		if err != nil {
			return nil, xerrors.WithStackTrace(err)
		}
		out = append(out, v)
	}

	return out, nil
}
