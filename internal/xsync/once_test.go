package xsync

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-seqview/internal/xtest"
)

func TestOnceValue(t *testing.T) {
	var calls atomic.Int32
	once := OnceValue(func() (int, error) {
		calls.Add(1)

		return 42, nil
	})
	for i := 0; i < 3; i++ {
		v, err := once.Get()
		require.NoError(t, err)
		require.Equal(t, 42, v)
	}
	require.Equal(t, 42, once.Must())
	require.EqualValues(t, 1, calls.Load())
}

func TestOnceValueReplaysError(t *testing.T) {
	errBroken := errors.New("broken")
	var calls int
	once := OnceValue(func() (string, error) {
		calls++

		return "", errBroken
	})
	for i := 0; i < 3; i++ {
		_, err := once.Get()
		require.ErrorIs(t, err, errBroken)
	}
	require.Equal(t, 1, calls)
	require.PanicsWithError(t, "broken", func() {
		once.Must()
	})
}

func TestOnceValueConcurrent(t *testing.T) {
	xtest.TestManyTimes(t, func(t testing.TB) {
		var calls atomic.Int32
		once := OnceValue(func() (int, error) {
			calls.Add(1)

			return 7, nil
		})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				require.Equal(t, 7, once.Must())
			}()
		}
		wg.Wait()
		require.EqualValues(t, 1, calls.Load())
	})
}
