package seqview

import (
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

var (
	ErrIndexOutOfRange = xerrors.ErrIndexOutOfRange
	ErrExhausted       = xerrors.ErrExhausted
	ErrUnsupported     = xerrors.ErrUnsupported
	ErrNoCurrent       = xerrors.ErrNoCurrent
	ErrOverflow        = xerrors.ErrOverflow
	ErrShortBuffer     = xerrors.ErrShortBuffer
)

// IsIndexOutOfRange reports whether err was caused by an out of range index
// and returns the offending index and the length it was checked against.
func IsIndexOutOfRange(err error) (ok bool, index, length int) {
	var e *xerrors.IndexOutOfRangeError
	if !xerrors.As(err, &e) {
		return false, 0, 0
	}

	return true, e.Index, e.Len
}

func IsExhausted(err error) bool {
	return xerrors.Is(err, xerrors.ErrExhausted)
}

func IsUnsupported(err error) bool {
	return xerrors.Is(err, xerrors.ErrUnsupported)
}
