package coords

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-seqview/internal/radix"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

func drain(t *testing.T, e *Enumerator) (tuples [][]int) {
	t.Helper()

	for e.HasNext() {
		tuple, err := e.Next()
		require.NoError(t, err)
		tuples = append(tuples, tuple)
	}

	return tuples
}

func TestEnumerator(t *testing.T) {
	e := New(3, 2)
	require.Equal(t, [][]int{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
		{2, 0}, {2, 1},
	}, drain(t, e))

	for i := 0; i < 3; i++ {
		require.False(t, e.HasNext())
		_, err := e.Next()
		require.ErrorIs(t, err, xerrors.ErrExhausted)
	}
}

func TestEnumeratorEmptyAxis(t *testing.T) {
	for _, extents := range [][]int{
		{3, 0},
		{0},
		{2, -1, 4},
	} {
		e := New(extents...)
		require.False(t, e.HasNext(), extents)
		_, err := e.Next()
		require.ErrorIs(t, err, xerrors.ErrExhausted)
	}
}

func TestEnumeratorNoAxes(t *testing.T) {
	require.Equal(t, [][]int{{}}, drain(t, New()))
}

// compose turns a coordinate back into its row-major ordinal.
func compose(tuple, extents []int) (ordinal int) {
	for axis, digit := range tuple {
		ordinal = ordinal*extents[axis] + digit
	}

	return ordinal
}

func TestEnumeratorCount(t *testing.T) {
	for _, extents := range [][]int{
		{1},
		{7},
		{1, 1, 1},
		{2, 3, 4},
		{5, 1, 2},
	} {
		total, err := radix.Total(extents...)
		require.NoError(t, err)

		tuples := drain(t, New(extents...))
		require.Len(t, tuples, total)
		for ordinal, tuple := range tuples {
			require.Equal(t, ordinal, compose(tuple, extents))
		}
	}
}

func TestEnumeratorTuplesDoNotAlias(t *testing.T) {
	e := New(2, 2)
	first, err := e.Next()
	require.NoError(t, err)
	first[0], first[1] = 100, 100

	second, err := e.Next()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, second)
	require.Equal(t, [][]int{{1, 0}, {1, 1}}, drain(t, e))
}

func TestEnumeratorCopiesExtents(t *testing.T) {
	extents := []int{1, 2}
	e := New(extents...)
	extents[1] = 5
	require.Len(t, drain(t, e), 2)
}

func TestEnumeratorRemove(t *testing.T) {
	e := New(2)
	require.ErrorIs(t, e.Remove(), xerrors.ErrUnsupported)
	_, err := e.Next()
	require.NoError(t, err)
	require.ErrorIs(t, e.Remove(), xerrors.ErrUnsupported)
}

func TestEnumeratorAll(t *testing.T) {
	var tuples [][]int
	for tuple := range New(2, 2).All() {
		tuples = append(tuples, tuple)
	}
	require.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, tuples)
}
