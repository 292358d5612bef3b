// Package coords enumerates every integer point of an n-dimensional box.
package coords

import (
	"iter"
	"slices"

	"github.com/ydb-platform/ydb-go-seqview/internal/radix"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
	"github.com/ydb-platform/ydb-go-seqview/internal/xiter"
)

type state uint8

const (
	stateHasNext = state(iota)
	stateExhausted
)

var _ xiter.Iterator[[]int] = (*Enumerator)(nil)

// Enumerator yields coordinate tuples in row-major order: the last axis
// varies fastest. It is not safe for concurrent use.
type Enumerator struct {
	extents []int
	cursor  []int
	state   state
}

// New copies extents. Any extent <= 0 yields an already exhausted enumerator.
func New(extents ...int) *Enumerator {
	e := &Enumerator{
		extents: slices.Clone(extents),
		cursor:  make([]int, len(extents)),
		state:   stateHasNext,
	}
	for _, extent := range extents {
		if extent <= 0 {
			e.state = stateExhausted

			break
		}
	}

	return e
}

func (e *Enumerator) HasNext() bool {
	return e.state == stateHasNext
}

// Next returns a fresh copy of the current tuple and advances the cursor.
func (e *Enumerator) Next() ([]int, error) {
	if e.state == stateExhausted {
		return nil, xerrors.WithStackTrace(xerrors.ErrExhausted)
	}
	coords := slices.Clone(e.cursor)
	if coords == nil {
		coords = []int{}
	}
	if !radix.Increment(e.cursor, e.extents) {
		e.state = stateExhausted
	}

	return coords, nil
}

func (e *Enumerator) Remove() error {
	return xerrors.WithStackTrace(xerrors.ErrUnsupported)
}

// All drains the enumerator.
func (e *Enumerator) All() iter.Seq[[]int] {
	return xiter.Seq[[]int](e)
}
