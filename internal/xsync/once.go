package xsync

import (
	"sync"
)

// Once holds the result of f computed on the first Get. Both the value and
// the error are cached: later calls replay the same error without running f
// again.
type Once[T any] struct {
	f    func() (T, error)
	once sync.Once
	t    T
	err  error
}

func OnceValue[T any](f func() (T, error)) *Once[T] {
	return &Once[T]{f: f}
}

func (v *Once[T]) Get() (T, error) {
	v.once.Do(func() {
		v.t, v.err = v.f()
		v.f = nil
	})

	return v.t, v.err
}

func (v *Once[T]) Must() T {
	t, err := v.Get()
	if err != nil {
		panic(err)
	}

	return t
}
