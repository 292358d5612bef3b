package product

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ydb-platform/ydb-go-seqview/internal/coords"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
	"github.com/ydb-platform/ydb-go-seqview/internal/xlist"
	"github.com/ydb-platform/ydb-go-seqview/internal/xlist/xlistmock"
)

func newView[T any](t testing.TB, axes ...xlist.List[T]) *View[T] {
	t.Helper()

	v, err := New(axes...)
	require.NoError(t, err)

	return v
}

func TestView(t *testing.T) {
	x := xlist.Slice[string]{"a", "b"}
	y := xlist.Slice[string]{"c", "d", "e"}
	v := newView[string](t, x, y)

	require.Equal(t, 2, v.Axes())
	require.Equal(t, 6, v.Len())

	first, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, first)

	last, err := v.Get(5)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "e"}, last)

	e := coords.New(x.Len(), y.Len())
	for ordinal := 0; ordinal < v.Len(); ordinal++ {
		require.True(t, e.HasNext())
		index, err := e.Next()
		require.NoError(t, err)

		tuple, err := v.Get(ordinal)
		require.NoError(t, err)
		require.Equal(t, []string{x[index[0]], y[index[1]]}, tuple, ordinal)
	}
	require.False(t, e.HasNext())
}

func TestViewOutOfRange(t *testing.T) {
	v := newView[int](t, xlist.Slice[int]{1, 2}, xlist.Slice[int]{3, 4, 5})
	for _, ordinal := range []int{-1, v.Len(), v.Len() + 1} {
		_, err := v.Get(ordinal)
		require.ErrorIs(t, err, xerrors.ErrIndexOutOfRange, ordinal)

		_, err = v.FillFlat(ordinal, make([]int, 10))
		require.ErrorIs(t, err, xerrors.ErrIndexOutOfRange, ordinal)

		_, err = v.FlatLen(ordinal)
		require.ErrorIs(t, err, xerrors.ErrIndexOutOfRange, ordinal)
	}
}

func TestViewEmptyAxis(t *testing.T) {
	v := newView[int](t, xlist.Slice[int]{1, 2}, xlist.Slice[int]{}, xlist.Slice[int]{3})
	require.Zero(t, v.Len())
	_, err := v.Get(0)
	require.ErrorIs(t, err, xerrors.ErrIndexOutOfRange)
	require.Empty(t, collect(t, v))
}

func TestViewNoAxes(t *testing.T) {
	v := newView[int](t)
	require.Equal(t, 1, v.Len())

	tuple, err := v.Get(0)
	require.NoError(t, err)
	require.Empty(t, tuple)
}

func TestViewThreeAxes(t *testing.T) {
	v := newView[int](t,
		xlist.Slice[int]{1, 2},
		xlist.Slice[int]{10},
		xlist.Slice[int]{100, 200},
	)
	require.Equal(t, [][]int{
		{1, 10, 100},
		{1, 10, 200},
		{2, 10, 100},
		{2, 10, 200},
	}, collect(t, v))
}

func TestViewOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	huge := xlistmock.NewMockList[int](ctrl)
	huge.EXPECT().Len().Return(math.MaxInt / 2).AnyTimes()

	_, err := New[int](huge, huge)
	require.ErrorIs(t, err, xerrors.ErrOverflow)

	_, err = New[int](huge, xlist.Slice[int]{1, 2})
	require.NoError(t, err)
}

func TestViewDelegatesLazily(t *testing.T) {
	ctrl := gomock.NewController(t)
	rows := xlistmock.NewMockList[int](ctrl)
	columns := xlistmock.NewMockList[int](ctrl)

	rows.EXPECT().Len().Return(1_000).AnyTimes()
	columns.EXPECT().Len().Return(1_000).AnyTimes()
	rows.EXPECT().Get(123).Return(-123, nil).Times(1)
	columns.EXPECT().Get(456).Return(-456, nil).Times(1)

	v := newView[int](t, rows, columns)
	require.Equal(t, 1_000_000, v.Len())

	tuple, err := v.Get(123_456)
	require.NoError(t, err)
	require.Equal(t, []int{-123, -456}, tuple)
}

func TestViewAxisError(t *testing.T) {
	ctrl := gomock.NewController(t)
	broken := xlistmock.NewMockList[int](ctrl)
	broken.EXPECT().Len().Return(2).AnyTimes()
	broken.EXPECT().Get(gomock.Any()).Return(0, xerrors.ErrUnsupported).AnyTimes()

	v := newView[int](t, xlist.Slice[int]{1}, broken)
	_, err := v.Get(1)
	require.ErrorIs(t, err, xerrors.ErrUnsupported)

	_, err = v.FillFlat(1, make([]int, 2))
	require.ErrorIs(t, err, xerrors.ErrUnsupported)
}

func TestFillFlatRoundTrip(t *testing.T) {
	v := newView[string](t,
		xlist.Slice[string]{"a", "b"},
		xlist.Slice[string]{"c", "d", "e"},
	)
	dst := make([]string, v.Axes())
	for ordinal := 0; ordinal < v.Len(); ordinal++ {
		tuple, err := v.Get(ordinal)
		require.NoError(t, err)

		n, err := v.FillFlat(ordinal, dst)
		require.NoError(t, err)
		require.Equal(t, len(tuple), n)
		require.Equal(t, tuple, dst[:n])
	}
}

func TestFillFlatNested(t *testing.T) {
	v := newView[any](t,
		xlist.Slice[any]{"p", xlist.Slice[any]{"q1", "q2", "q3"}},
		xlist.Slice[any]{xlist.Slice[any]{1, 2}, 3},
		xlist.Slice[any]{xlist.Slice[any]{}, true},
	)
	require.Equal(t, 8, v.Len())

	for _, tt := range []struct {
		ordinal int
		flat    []any
	}{
		{ordinal: 0, flat: []any{"p", 1, 2}},
		{ordinal: 1, flat: []any{"p", 1, 2, true}},
		{ordinal: 2, flat: []any{"p", 3}},
		{ordinal: 3, flat: []any{"p", 3, true}},
		{ordinal: 4, flat: []any{"q1", "q2", "q3", 1, 2}},
		{ordinal: 7, flat: []any{"q1", "q2", "q3", 3, true}},
	} {
		need, err := v.FlatLen(tt.ordinal)
		require.NoError(t, err)
		require.Equal(t, len(tt.flat), need)

		dst := make([]any, need+2)
		n, err := v.FillFlat(tt.ordinal, dst)
		require.NoError(t, err)
		require.Equal(t, need, n)
		require.Equal(t, tt.flat, dst[:n], tt.ordinal)
		require.Equal(t, []any{nil, nil}, dst[n:])
	}
}

func TestFillFlatShortBuffer(t *testing.T) {
	v := newView[any](t,
		xlist.Slice[any]{xlist.Slice[any]{1, 2, 3}},
		xlist.Slice[any]{4},
	)
	dst := make([]any, 3)
	n, err := v.FillFlat(0, dst)
	require.ErrorIs(t, err, xerrors.ErrShortBuffer)
	require.Zero(t, n)
	require.Equal(t, []any{nil, nil, nil}, dst)

	dst = make([]any, 4)
	n, err = v.FillFlat(0, dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []any{1, 2, 3, 4}, dst)
}

func TestViewAll(t *testing.T) {
	v := newView[int](t, xlist.Slice[int]{1, 2}, xlist.Slice[int]{3, 4})
	var ordinals []int
	for ordinal := range v.All() {
		if ordinal == 2 {
			break
		}
		ordinals = append(ordinals, ordinal)
	}
	require.Equal(t, []int{0, 1}, ordinals)
}

func collect[T any](t testing.TB, v *View[T]) (tuples [][]T) {
	t.Helper()

	for _, tuple := range v.All() {
		tuples = append(tuples, tuple)
	}

	return tuples
}
