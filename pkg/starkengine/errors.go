package starkengine

import (
	"errors"

	"github.com/vybium/starkengine/internal/starkengine/core"
)

// ErrorCode identifies one of the engine's error kinds.
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeUnsupportedDomainSize
	CodeWidthMismatch
	CodeTraceFull
	CodeOutOfRange
	CodeOddLength
	CodeDivideByZero
	CodeIndexOutOfRange
	CodeVerificationFailed
)

func (c ErrorCode) String() string {
	switch c {
	case CodeUnsupportedDomainSize:
		return "UnsupportedDomainSize"
	case CodeWidthMismatch:
		return "WidthMismatch"
	case CodeTraceFull:
		return "TraceFull"
	case CodeOutOfRange:
		return "OutOfRange"
	case CodeOddLength:
		return "OddLength"
	case CodeDivideByZero:
		return "DivideByZero"
	case CodeIndexOutOfRange:
		return "IndexOutOfRange"
	case CodeVerificationFailed:
		return "VerificationFailed"
	default:
		return "Unknown"
	}
}

// Sentinel errors re-exported from the internal core package so external
// callers can match with errors.Is(err, starkengine.ErrOutOfRange) without
// reaching into internal packages.
var (
	ErrUnsupportedDomainSize = core.ErrUnsupportedDomainSize
	ErrWidthMismatch         = core.ErrWidthMismatch
	ErrTraceFull             = core.ErrTraceFull
	ErrOutOfRange            = core.ErrOutOfRange
	ErrOddLength             = core.ErrOddLength
	ErrDivideByZero          = core.ErrDivideByZero
	ErrIndexOutOfRange       = core.ErrIndexOutOfRange
	ErrVerificationFailed    = core.ErrVerificationFailed
)

// Error is the public error type: a code plus the wrapped cause.
type Error struct {
	Code  ErrorCode
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Code.String() + ": " + e.Cause.Error()
	}
	return e.Code.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// classify maps an internal sentinel error to its public ErrorCode.
func classify(err error) ErrorCode {
	switch {
	case errors.Is(err, core.ErrUnsupportedDomainSize):
		return CodeUnsupportedDomainSize
	case errors.Is(err, core.ErrWidthMismatch):
		return CodeWidthMismatch
	case errors.Is(err, core.ErrTraceFull):
		return CodeTraceFull
	case errors.Is(err, core.ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, core.ErrOddLength):
		return CodeOddLength
	case errors.Is(err, core.ErrDivideByZero):
		return CodeDivideByZero
	case errors.Is(err, core.ErrIndexOutOfRange):
		return CodeIndexOutOfRange
	case errors.Is(err, core.ErrVerificationFailed):
		return CodeVerificationFailed
	default:
		return CodeUnknown
	}
}

// wrapErr wraps err (if non-nil) into a public *Error with a classified
// code, so external callers can switch on ErrorCode instead of internal
// sentinels.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: classify(err), Cause: err}
}
