package xiter

import (
	"iter"

	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

// Iterator is a forward-only pull iterator.
//
// Next must return an error matching xerrors.ErrExhausted when HasNext
// reports false.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Remover is implemented by iterators able to remove the element most
// recently returned by Next from their source.
type Remover interface {
	Remove() error
}

// Seq drains it into a range-over-func sequence.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

var _ Iterator[int] = (*Pull[int])(nil)

// Pull turns a push sequence into an Iterator. Stop must be called if the
// sequence is abandoned before it is exhausted.
type Pull[T any] struct {
	next    func() (T, bool)
	stop    func()
	v       T
	ok      bool
	fetched bool
}

func FromSeq[T any](seq iter.Seq[T]) *Pull[T] {
	next, stop := iter.Pull(seq)

	return &Pull[T]{
		next: next,
		stop: stop,
	}
}

func (p *Pull[T]) HasNext() bool {
	if !p.fetched {
		p.v, p.ok = p.next()
		p.fetched = true
	}

	return p.ok
}

func (p *Pull[T]) Next() (t T, _ error) {
	if !p.HasNext() {
		return t, xerrors.WithStackTrace(xerrors.ErrExhausted)
	}
	p.fetched = false
	t, p.v = p.v, t

	return t, nil
}

func (p *Pull[T]) Stop() {
	p.stop()
}

var (
	_ Iterator[int] = (*SliceIterator[int])(nil)
	_ Remover       = (*SliceIterator[int])(nil)
)

// SliceIterator walks a slice and supports removing the current element
// from it in place.
type SliceIterator[T any] struct {
	s       *[]T
	i       int
	current int
}

func FromSlice[T any](s *[]T) *SliceIterator[T] {
	return &SliceIterator[T]{
		s:       s,
		current: -1,
	}
}

func (it *SliceIterator[T]) HasNext() bool {
	return it.i < len(*it.s)
}

func (it *SliceIterator[T]) Next() (t T, _ error) {
	if !it.HasNext() {
		return t, xerrors.WithStackTrace(xerrors.ErrExhausted)
	}
	it.current = it.i
	it.i++

	return (*it.s)[it.current], nil
}

// Remove deletes the element most recently returned by Next.
func (it *SliceIterator[T]) Remove() error {
	if it.current < 0 {
		return xerrors.WithStackTrace(xerrors.ErrNoCurrent)
	}
	*it.s = append((*it.s)[:it.current], (*it.s)[it.current+1:]...)
	it.i = it.current
	it.current = -1

	return nil
}
