package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

// Buffer returns a pooled bytes.Buffer. Callers must Free it after use.
func Buffer() *buffer {
	return buffersPool.Get().(*buffer) //nolint:forcetypeassert
}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}
