// Package concat chains several lists into one without copying them.
package concat

import (
	"iter"

	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
	"github.com/ydb-platform/ydb-go-seqview/internal/xlist"
)

var _ xlist.List[int] = (*View[int])(nil)

// View is the concatenation of its sources, source 0 first.
//
// Lookups scan the sources linearly, so a View is meant for a handful of
// sources rather than many.
type View[T any] struct {
	sources []xlist.List[T]
}

func New[T any](sources ...xlist.List[T]) *View[T] {
	return &View[T]{
		sources: sources,
	}
}

func (v *View[T]) Len() (total int) {
	for _, s := range v.sources {
		total += s.Len()
	}

	return total
}

func (v *View[T]) Get(i int) (t T, _ error) {
	if i < 0 {
		return t, xerrors.IndexOutOfRange(i, v.Len())
	}
	n := 0
	for _, s := range v.sources {
		l := s.Len()
		if i < n+l {
			elem, err := s.Get(i - n)
			if err != nil {
				return t, xerrors.WithStackTrace(err)
			}

			return elem, nil
		}
		n += l
	}

	return t, xerrors.IndexOutOfRange(i, n)
}

// All yields every element in order together with its index in the view.
func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := 0
		for _, s := range v.sources {
			for i, t := range xlist.All(s) {
				if !yield(n+i, t) {
					return
				}
			}
			n += s.Len()
		}
	}
}
