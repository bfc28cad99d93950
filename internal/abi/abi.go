// Package abi describes the engine's C-style entry points.
//
// Everything that crosses the engine boundary is expressed here in the shape
// the engine exposes it: opaque handle words, (pointer, length) string
// descriptors and bare int32 ordinals. The root package is the only consumer;
// it converts these into owned Go values before any descriptor can go stale.
package abi

//go:generate mockgen -source=abi.go -destination=mocks/mock_engine.go -package=mocks Engine

import (
	"unsafe"

	"github.com/coregx/cre2/internal/conv"
)

// Handle is an opaque reference to an engine-owned object (compiled pattern
// or options bundle). The zero Handle is never a live object.
type Handle uint64

// String is the engine's byte-range descriptor.
//
// Its layout matches cre2_string_t: a data pointer followed by a C int
// length. A nil Data means "no text for this slot".
//
// Descriptors filled in by the engine alias memory the caller does not own.
// They are valid only until the next call on the same handle, or until the
// handle is deleted, whichever comes first.
type String struct {
	Data   *byte
	Length int32
}

// StringOf returns a descriptor over the bytes of s without copying.
// The descriptor is only valid while s is reachable; it is meant to live for
// the duration of a single engine call.
func StringOf(s string) String {
	if len(s) == 0 {
		return String{}
	}
	return String{Data: unsafe.StringData(s), Length: conv.LenToInt32(len(s))}
}

// IsNull reports whether d carries no text at all.
func (d String) IsNull() bool {
	return d.Data == nil
}

// Copy copies the described bytes into an owned Go string.
// A nil Data or non-positive Length yields "".
func (d String) Copy() string {
	n := conv.Int32ToLen(d.Length)
	if d.Data == nil || n == 0 {
		return ""
	}
	// string(...) of the aliased view is the one-time copy.
	return string(unsafe.Slice(d.Data, n))
}

// View returns a Go string aliasing the described bytes without copying.
// Only the engine side uses it, to read input descriptors for the length of
// a call.
func (d String) View() string {
	n := conv.Int32ToLen(d.Length)
	if d.Data == nil || n == 0 {
		return ""
	}
	return unsafe.String(d.Data, n)
}

// Ordinals exchanged with the engine. These values are part of the ABI and
// must never be renumbered.
const (
	ErrorNone              int32 = 0
	ErrorInternal          int32 = 1
	ErrorBadEscape         int32 = 2
	ErrorBadCharClass      int32 = 3
	ErrorBadCharRange      int32 = 4
	ErrorMissingBracket    int32 = 5
	ErrorMissingParen      int32 = 6
	ErrorTrailingBackslash int32 = 7
	ErrorRepeatArgument    int32 = 8
	ErrorRepeatSize        int32 = 9
	ErrorRepeatOp          int32 = 10
	ErrorBadPerlOp         int32 = 11
	ErrorBadNamedCapture   int32 = 12
	ErrorPatternTooLarge   int32 = 13

	EncodingUnknown int32 = 0
	EncodingUTF8    int32 = 1
	EncodingLatin1  int32 = 2

	Unanchored  int32 = 1
	AnchorStart int32 = 2
	AnchorBoth  int32 = 3
)

// Match return codes. Positive means matched, zero means no match; negative
// codes are engine-level failures that callers must surface.
const (
	RCMatch      int32 = 1
	RCNoMatch    int32 = 0
	RCInternal   int32 = -1
	RCBadPattern int32 = -2
	RCBadHandle  int32 = -3
)

// Version reports the engine's interface version.
type Version struct {
	String   string
	Current  int32
	Revision int32
	Age      int32
}

// Engine is the set of entry points a backend exposes.
//
// Methods mirror the foreign functions one to one. Input text is passed as a
// pointer plus length (or as a descriptor where the foreign signature takes
// one); out is the caller-provided result array and len(out) is nmatch.
//
// The engine guarantees that concurrent match calls on one live pattern
// handle are safe. Deleting a handle must not race with any other use of it.
type Engine interface {
	Version() Version

	OptNew() Handle
	OptDelete(opt Handle)
	OptEncoding(opt Handle) int32
	OptSetEncoding(opt Handle, enc int32)
	OptLogErrors(opt Handle) bool
	OptSetLogErrors(opt Handle, flag bool)
	OptLongestMatch(opt Handle) bool
	OptSetLongestMatch(opt Handle, flag bool)
	OptLiteral(opt Handle) bool
	OptSetLiteral(opt Handle, flag bool)
	OptCaseSensitive(opt Handle) bool
	OptSetCaseSensitive(opt Handle, flag bool)
	OptDotNL(opt Handle) bool
	OptSetDotNL(opt Handle, flag bool)
	OptNeverCapture(opt Handle) bool
	OptSetNeverCapture(opt Handle, flag bool)
	OptMaxMem(opt Handle) int64
	OptSetMaxMem(opt Handle, n int64)

	New(pattern *byte, patternLen int32, opt Handle) Handle
	Delete(rex Handle)
	Pattern(rex Handle) String
	NumCapturingGroups(rex Handle) int32
	ProgramSize(rex Handle) int32
	ErrorCode(rex Handle) int32
	ErrorString(rex Handle) String
	ErrorArg(rex Handle) String

	EasyMatch(pattern *byte, patternLen int32, text *byte, textLen int32, out []String) int32
	Match(rex Handle, text *byte, textLen, start, end, anchor int32, out []String) int32
	FullMatchRe(rex Handle, text *String, out []String) int32
	PartialMatchRe(rex Handle, text *String, out []String) int32
}
