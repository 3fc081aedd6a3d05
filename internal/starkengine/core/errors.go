package core

import "errors"

// Sentinel errors for the engine's error kinds. Internal packages wrap
// these with fmt.Errorf("...: %w", err) for context; callers can still
// match with errors.Is.
var (
	ErrUnsupportedDomainSize = errors.New("unsupported domain size")
	ErrWidthMismatch         = errors.New("row width mismatch")
	ErrTraceFull             = errors.New("trace full")
	ErrOutOfRange            = errors.New("index out of range")
	ErrOddLength             = errors.New("odd length")
	ErrDivideByZero          = errors.New("divide by zero polynomial")
	ErrIndexOutOfRange       = errors.New("merkle index out of range")
	ErrVerificationFailed    = errors.New("verification failed")
)
