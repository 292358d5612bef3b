// Package filter narrows an iterator to the elements accepted by a predicate.
package filter

import (
	"iter"

	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
	"github.com/ydb-platform/ydb-go-seqview/internal/xiter"
)

// Match reports whether s is accepted and returns it narrowed to T.
type Match[S, T any] func(s S) (T, bool)

// OfType accepts the elements whose dynamic type is T.
func OfType[T, S any]() Match[S, T] {
	return func(s S) (T, bool) {
		t, ok := any(s).(T)

		return t, ok
	}
}

type state uint8

const (
	stateNotReady = state(iota)
	stateReady
)

var (
	_ xiter.Iterator[int] = (*Iterator[any, int])(nil)
	_ xiter.Remover       = (*Iterator[any, int])(nil)
)

// Iterator yields the elements of src accepted by match, in order. It keeps
// at most one element of lookahead and is not safe for concurrent use.
type Iterator[S, T any] struct {
	src   xiter.Iterator[S]
	match Match[S, T]

	state state
	next  T
	err   error
}

func New[S, T any](src xiter.Iterator[S], match Match[S, T]) *Iterator[S, T] {
	return &Iterator[S, T]{
		src:   src,
		match: match,
		state: stateNotReady,
	}
}

// HasNext buffers the next accepted element if there is none yet. Repeated
// calls do not consume anything. A source error is buffered as well and
// returned by the following Next.
func (it *Iterator[S, T]) HasNext() bool {
	if it.state == stateReady {
		return true
	}
	t, err := it.scan()
	if xerrors.Is(err, xerrors.ErrExhausted) {
		return false
	}
	it.next, it.err = t, err
	it.state = stateReady

	return true
}

func (it *Iterator[S, T]) Next() (t T, _ error) {
	if it.state == stateReady {
		t, it.next = it.next, t
		err := it.err
		it.err = nil
		it.state = stateNotReady

		return t, err
	}
	t, err := it.scan()
	if err != nil {
		return t, xerrors.WithStackTrace(err)
	}

	return t, nil
}

func (it *Iterator[S, T]) scan() (t T, _ error) {
	for it.src.HasNext() {
		s, err := it.src.Next()
		if err != nil {
			return t, xerrors.WithStackTrace(err)
		}
		if t, ok := it.match(s); ok {
			return t, nil
		}
	}

	return t, xerrors.WithStackTrace(xerrors.ErrExhausted)
}

// Remove delegates to the source iterator.
//
// After HasNext has buffered an element the source has already moved past
// it, so Remove then deletes the buffered element from the source rather
// than the one most recently returned by Next.
func (it *Iterator[S, T]) Remove() error {
	r, ok := it.src.(xiter.Remover)
	if !ok {
		return xerrors.WithStackTrace(xerrors.ErrUnsupported)
	}
	if err := r.Remove(); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

// All drains the iterator.
func (it *Iterator[S, T]) All() iter.Seq[T] {
	return xiter.Seq[T](it)
}
