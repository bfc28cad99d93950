package cre2

import (
	"fmt"

	"github.com/coregx/cre2/internal/abi"
)

// ErrorCode classifies a pattern compilation failure.
//
// The numeric values are fixed by the engine ABI.
type ErrorCode int32

const (
	NoError                ErrorCode = ErrorCode(abi.ErrorNone)
	ErrorInternal          ErrorCode = ErrorCode(abi.ErrorInternal)
	ErrorBadEscape         ErrorCode = ErrorCode(abi.ErrorBadEscape)
	ErrorBadCharClass      ErrorCode = ErrorCode(abi.ErrorBadCharClass)
	ErrorBadCharRange      ErrorCode = ErrorCode(abi.ErrorBadCharRange)
	ErrorMissingBracket    ErrorCode = ErrorCode(abi.ErrorMissingBracket)
	ErrorMissingParen      ErrorCode = ErrorCode(abi.ErrorMissingParen)
	ErrorTrailingBackslash ErrorCode = ErrorCode(abi.ErrorTrailingBackslash)
	ErrorRepeatArgument    ErrorCode = ErrorCode(abi.ErrorRepeatArgument)
	ErrorRepeatSize        ErrorCode = ErrorCode(abi.ErrorRepeatSize)
	ErrorRepeatOp          ErrorCode = ErrorCode(abi.ErrorRepeatOp)
	ErrorBadPerlOp         ErrorCode = ErrorCode(abi.ErrorBadPerlOp)
	ErrorBadNamedCapture   ErrorCode = ErrorCode(abi.ErrorBadNamedCapture)
	ErrorPatternTooLarge   ErrorCode = ErrorCode(abi.ErrorPatternTooLarge)
)

var errorCodeNames = [...]string{
	NoError:                "no error",
	ErrorInternal:          "internal error",
	ErrorBadEscape:         "bad escape sequence",
	ErrorBadCharClass:      "bad character class",
	ErrorBadCharRange:      "bad character class range",
	ErrorMissingBracket:    "missing closing ]",
	ErrorMissingParen:      "missing closing )",
	ErrorTrailingBackslash: "trailing \\ at end of regexp",
	ErrorRepeatArgument:    "repetition operator missing argument",
	ErrorRepeatSize:        "bad repetition argument",
	ErrorRepeatOp:          "bad repetition operator",
	ErrorBadPerlOp:         "bad perl operator",
	ErrorBadNamedCapture:   "bad named capture group",
	ErrorPatternTooLarge:   "pattern too large (compile failed)",
}

func (c ErrorCode) String() string {
	if c >= 0 && int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", int32(c))
}

// errorCodeFromABI validates an ordinal returned by the engine.
func errorCodeFromABI(v int32) ErrorCode {
	if v < 0 || int(v) >= len(errorCodeNames) {
		panic(fmt.Sprintf("cre2: engine returned unknown ErrorCode %d", v))
	}
	return ErrorCode(v)
}

// Encoding is the text encoding a pattern and its subjects are read in.
type Encoding int32

const (
	EncodingUnknown Encoding = Encoding(abi.EncodingUnknown)
	EncodingUTF8    Encoding = Encoding(abi.EncodingUTF8)
	EncodingLatin1  Encoding = Encoding(abi.EncodingLatin1)
)

func (e Encoding) String() string {
	switch e {
	case EncodingUnknown:
		return "unknown"
	case EncodingUTF8:
		return "UTF-8"
	case EncodingLatin1:
		return "Latin-1"
	default:
		return fmt.Sprintf("Encoding(%d)", int32(e))
	}
}

func encodingFromABI(v int32) Encoding {
	switch e := Encoding(v); e {
	case EncodingUnknown, EncodingUTF8, EncodingLatin1:
		return e
	default:
		panic(fmt.Sprintf("cre2: engine returned unknown Encoding %d", v))
	}
}

// Anchor constrains where a positioned match may begin and end.
type Anchor int32

const (
	// Unanchored finds the first match anywhere in the range.
	Unanchored Anchor = Anchor(abi.Unanchored)
	// AnchorStart requires the match to begin at the start offset.
	AnchorStart Anchor = Anchor(abi.AnchorStart)
	// AnchorBoth requires the match to span the whole range.
	AnchorBoth Anchor = Anchor(abi.AnchorBoth)
)

func (a Anchor) String() string {
	switch a {
	case Unanchored:
		return "unanchored"
	case AnchorStart:
		return "anchor start"
	case AnchorBoth:
		return "anchor both"
	default:
		return fmt.Sprintf("Anchor(%d)", int32(a))
	}
}

func (a Anchor) valid() bool {
	return a >= Unanchored && a <= AnchorBoth
}
