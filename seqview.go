package seqview

import (
	"iter"

	"github.com/ydb-platform/ydb-go-seqview/internal/concat"
	"github.com/ydb-platform/ydb-go-seqview/internal/coords"
	"github.com/ydb-platform/ydb-go-seqview/internal/filter"
	"github.com/ydb-platform/ydb-go-seqview/internal/product"
	"github.com/ydb-platform/ydb-go-seqview/internal/xiter"
	"github.com/ydb-platform/ydb-go-seqview/internal/xlist"
)

type (
	// List is a finite ordered sequence with O(1) Len and Get.
	List[T any] = xlist.List[T]

	// Slice adapts a Go slice to List without copying.
	Slice[T any] = xlist.Slice[T]

	// Iterator is a forward-only pull iterator.
	Iterator[T any] = xiter.Iterator[T]

	// Remover is implemented by iterators which can remove the current element
	// from their source.
	Remover = xiter.Remover

	ConcatView[T any]        = concat.View[T]
	ProductView[T any]       = product.View[T]
	CoordinateEnumerator     = coords.Enumerator
	FilterIterator[S, T any] = filter.Iterator[S, T]
	Match[S, T any]          = filter.Match[S, T]
	PullIterator[T any]      = xiter.Pull[T]
	SliceIterator[T any]     = xiter.SliceIterator[T]
)

// Concat chains lists into a single list, the first list first.
func Concat[T any](lists ...List[T]) *ConcatView[T] {
	return concat.New(lists...)
}

// Product returns the cartesian product of axes. Tuples are ordered with the
// first axis as the most significant position.
//
// Product fails with ErrOverflow if the number of tuples does not fit into int.
func Product[T any](axes ...List[T]) (*ProductView[T], error) {
	return product.New(axes...)
}

// Coordinates enumerates every integer point of the box with the given
// extents, last axis fastest.
func Coordinates(extents ...int) *CoordinateEnumerator {
	return coords.New(extents...)
}

// Filter yields the elements of src accepted by match.
func Filter[S, T any](src Iterator[S], match Match[S, T]) *FilterIterator[S, T] {
	return filter.New(src, match)
}

// OfType accepts elements whose dynamic type is T.
func OfType[T, S any]() Match[S, T] {
	return filter.OfType[T, S]()
}

// FromSeq adapts a range-over-func sequence to Iterator. Call Stop on the
// result when abandoning it early.
func FromSeq[T any](seq iter.Seq[T]) *PullIterator[T] {
	return xiter.FromSeq(seq)
}

// Iterate walks *s and supports removing elements from it while iterating.
func Iterate[T any](s *[]T) *SliceIterator[T] {
	return xiter.FromSlice(s)
}

// All yields (index, element) pairs of l.
func All[T any](l List[T]) iter.Seq2[int, T] {
	return xlist.All(l)
}

// Values drains it.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return xiter.Seq(it)
}

// Collect copies l into a new slice.
func Collect[T any](l List[T]) ([]T, error) {
	return xlist.Collect(l)
}
