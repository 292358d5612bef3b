package xerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange matches every *IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrExhausted is returned by Next when the iterator has no more elements.
	ErrExhausted = errors.New("iterator exhausted")

	// ErrUnsupported is returned by mutating calls on read-only iterators.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrOverflow is returned when a combinatorial length does not fit into int.
	ErrOverflow = errors.New("length overflows int")

	// ErrNoCurrent is returned by Remove when Next has not been called since the
	// last removal.
	ErrNoCurrent = errors.New("no current element")

	// ErrShortBuffer is returned when a destination slice cannot hold the output.
	ErrShortBuffer = errors.New("short buffer")
)

// IndexOutOfRangeError reports an index outside [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange //nolint:errorlint
}

// IndexOutOfRange builds an *IndexOutOfRangeError wrapped with the caller's stack record.
func IndexOutOfRange(index, length int) error {
	return WithStackTrace(&IndexOutOfRangeError{
		Index: index,
		Len:   length,
	}, WithSkipDepth(1))
}

// CheckIndex returns nil for 0 <= index < length and IndexOutOfRange otherwise.
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return WithStackTrace(&IndexOutOfRangeError{
			Index: index,
			Len:   length,
		}, WithSkipDepth(1))
	}

	return nil
}

// As is a proxy to errors.As
// This need to single import errors
func As(err error, targets ...interface{}) (ok bool) {
	if err == nil {
		return false
	}
	for _, t := range targets {
		if errors.As(err, t) {
			if !ok {
				ok = true
			}
		}
	}

	return ok
}

// Is is a improved proxy to errors.Is
// This need to single import errors
func Is(err error, targets ...error) bool {
	if len(targets) == 0 {
		panic("empty targets")
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
