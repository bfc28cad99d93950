package cre2

import (
	"errors"
	"fmt"

	"github.com/coregx/cre2/internal/abi"
)

var (
	// ErrInvalidRange is returned when start/end do not satisfy
	// 0 <= start <= end <= len(text).
	ErrInvalidRange = errors.New("cre2: invalid match range")

	// ErrInvalidSlots is returned for a negative number of result slots.
	ErrInvalidSlots = errors.New("cre2: invalid number of result slots")

	// ErrInvalidAnchor is returned for an Anchor outside the defined values.
	ErrInvalidAnchor = errors.New("cre2: invalid anchor")

	// ErrInvalidEncoding is returned when setting an encoding other than
	// UTF-8 or Latin-1.
	ErrInvalidEncoding = errors.New("cre2: invalid encoding")

	// ErrBadPattern is the sentinel behind a MatchError for a pattern the
	// engine could not compile during a one-shot match.
	ErrBadPattern = errors.New("cre2: bad pattern")

	// ErrClosed is the sentinel behind a MatchError for a handle the engine
	// no longer knows, typically one closed while a match was in flight.
	ErrClosed = errors.New("cre2: handle closed")
)

// CompileError describes why a pattern failed to compile.
type CompileError struct {
	Code    ErrorCode
	Message string // engine message, e.g. "missing closing ): (abc"
	Arg     string // offending fragment of the pattern
	Pattern string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Message == "" {
		return "cre2: " + e.Code.String()
	}
	return "cre2: " + e.Message
}

// MatchError reports an engine-level failure during matching. It is never
// used for "no match".
type MatchError struct {
	Code int   // negative engine return code
	Err  error // underlying cause, if known
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cre2: match failed (code %d): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("cre2: match failed (code %d)", e.Code)
}

// Unwrap returns the underlying cause, falling back to the sentinel for
// well-known return codes.
func (e *MatchError) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	switch int32(e.Code) {
	case abi.RCBadPattern:
		errs = append(errs, ErrBadPattern)
	case abi.RCBadHandle:
		errs = append(errs, ErrClosed)
	}
	return errs
}
