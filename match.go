package cre2

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/conv"
)

// MatchResult is the owned outcome of a match.
type MatchResult struct {
	// Count is the number of populated slots, the overall match included.
	// It is at least 1 on a match and 0 when nothing matched.
	Count int

	// Groups has one entry per requested slot: Groups[0] is the overall
	// match and Groups[i] is capture group i. Slots that did not take part
	// in the match, or that exceed the pattern's groups, are "".
	Groups []string
}

// Matched reports whether the match succeeded.
func (r MatchResult) Matched() bool {
	return r.Count > 0
}

// Group returns slot i, or "" when i is out of range.
func (r MatchResult) Group(i int) string {
	if i < 0 || i >= len(r.Groups) {
		return ""
	}
	return r.Groups[i]
}

type matchMode int

const (
	modeRange matchMode = iota
	modeFull
	modePartial
)

// EasyMatch compiles pattern with default options, matches it unanchored
// against text and releases it again.
//
// An invalid pattern yields a *MatchError that wraps the *CompileError and
// ErrBadPattern.
func EasyMatch(pattern, text string, nmatch int) (MatchResult, error) {
	if nmatch < 0 {
		return MatchResult{}, fmt.Errorf("%w: %d", ErrInvalidSlots, nmatch)
	}
	eng := currentEngine()
	p := abi.StringOf(pattern)
	t := abi.StringOf(text)
	res, err := extract(nmatch, func(out []abi.String) int32 {
		return eng.EasyMatch(p.Data, p.Length, t.Data, t.Length, out)
	})
	runtime.KeepAlive(pattern)
	runtime.KeepAlive(text)

	var me *MatchError
	if errors.As(err, &me) && me.Code == int(abi.RCBadPattern) {
		me.Err = diagnose(eng, pattern)
	}
	return res, err
}

// diagnose recompiles pattern quietly to recover its compile error.
func diagnose(eng abi.Engine, pattern string) error {
	oh := eng.OptNew()
	defer eng.OptDelete(oh)
	eng.OptSetLogErrors(oh, false)

	p := abi.StringOf(pattern)
	h := eng.New(p.Data, p.Length, oh)
	defer eng.Delete(h)
	runtime.KeepAlive(pattern)

	code := eng.ErrorCode(h)
	if code == abi.ErrorNone {
		return nil
	}
	return &CompileError{
		Code:    errorCodeFromABI(code),
		Message: eng.ErrorString(h).Copy(),
		Arg:     eng.ErrorArg(h).Copy(),
		Pattern: pattern,
	}
}

// Match matches the pattern against text[start:end]. Offsets are in bytes.
// anchor selects whether the match may begin anywhere in the range, must
// begin at start, or must cover the whole range.
//
// nmatch is the number of result slots wanted. It may be 0 to test for a
// match only, and it may exceed NumCapturingGroups()+1.
func (re *Regexp) Match(text string, start, end int, anchor Anchor, nmatch int) (MatchResult, error) {
	if start < 0 || start > end || end > len(text) {
		return MatchResult{}, fmt.Errorf("%w: [%d, %d) of %d bytes", ErrInvalidRange, start, end, len(text))
	}
	if !anchor.valid() {
		return MatchResult{}, fmt.Errorf("%w: %v", ErrInvalidAnchor, anchor)
	}
	return re.exec(modeRange, text, start, end, anchor, nmatch)
}

// FullMatch reports whether the pattern matches all of text.
func (re *Regexp) FullMatch(text string, nmatch int) (MatchResult, error) {
	return re.exec(modeFull, text, 0, len(text), AnchorBoth, nmatch)
}

// PartialMatch finds the first match anywhere in text.
func (re *Regexp) PartialMatch(text string, nmatch int) (MatchResult, error) {
	return re.exec(modePartial, text, 0, len(text), Unanchored, nmatch)
}

// exec is the single path every Regexp match goes through.
func (re *Regexp) exec(mode matchMode, text string, start, end int, anchor Anchor, nmatch int) (MatchResult, error) {
	if nmatch < 0 {
		return MatchResult{}, fmt.Errorf("%w: %d", ErrInvalidSlots, nmatch)
	}
	if err := re.Err(); err != nil {
		return MatchResult{Groups: make([]string, nmatch)}, err
	}
	defer runtime.KeepAlive(re)
	h := re.handle()
	t := abi.StringOf(text)
	defer runtime.KeepAlive(text)

	return extract(nmatch, func(out []abi.String) int32 {
		switch mode {
		case modeFull:
			return re.eng.FullMatchRe(h, &t, out)
		case modePartial:
			return re.eng.PartialMatchRe(h, &t, out)
		default:
			return re.eng.Match(h, t.Data, t.Length,
				conv.LenToInt32(start), conv.LenToInt32(end), int32(anchor), out)
		}
	})
}

// extract owns the descriptor array for one engine call and copies every
// populated slot out before returning.
func extract(nmatch int, call func(out []abi.String) int32) (MatchResult, error) {
	out := make([]abi.String, nmatch)
	res := MatchResult{Groups: make([]string, nmatch)}

	rc := call(out)
	switch {
	case rc < 0:
		return res, &MatchError{Code: int(rc)}
	case rc == 0:
		return res, nil
	}

	populated := 0
	for i, d := range out {
		if d.IsNull() {
			continue
		}
		res.Groups[i] = d.Copy()
		populated++
	}
	res.Count = max(populated, 1)
	return res, nil
}
