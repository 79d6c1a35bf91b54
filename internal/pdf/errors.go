package pdf

import "errors"

// Failure taxonomy for a conversion run. Every failure is terminal for the
// invocation; Convert wraps these so callers can test with errors.Is.
var (
	ErrInputNotFound    = errors.New("input file not found")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrWriteFailure     = errors.New("write failure")
)
