package native

import (
	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/latin1"
)

// EasyMatch implements abi.Engine. The pattern is compiled with default
// options for the duration of the call and released before returning.
func (e *Engine) EasyMatch(pat *byte, patternLen int32, text *byte, textLen int32, out []abi.String) int32 {
	rex := e.New(pat, patternLen, 0)
	defer e.Delete(rex)

	if e.ErrorCode(rex) != abi.ErrorNone {
		clear(out)
		return abi.RCBadPattern
	}
	return e.Match(rex, text, textLen, 0, textLen, abi.Unanchored, out)
}

// Match implements abi.Engine.
func (e *Engine) Match(rex abi.Handle, text *byte, textLen, start, end, anchor int32, out []abi.String) int32 {
	p, ok := e.getPattern(rex)
	if !ok {
		clear(out)
		return abi.RCBadHandle
	}
	subject := abi.String{Data: text, Length: textLen}.View()
	return e.exec(p, subject, int(start), int(end), anchor, out)
}

// FullMatchRe implements abi.Engine.
func (e *Engine) FullMatchRe(rex abi.Handle, text *abi.String, out []abi.String) int32 {
	return e.matchWhole(rex, text, abi.AnchorBoth, out)
}

// PartialMatchRe implements abi.Engine.
func (e *Engine) PartialMatchRe(rex abi.Handle, text *abi.String, out []abi.String) int32 {
	return e.matchWhole(rex, text, abi.Unanchored, out)
}

func (e *Engine) matchWhole(rex abi.Handle, text *abi.String, anchor int32, out []abi.String) int32 {
	p, ok := e.getPattern(rex)
	if !ok {
		clear(out)
		return abi.RCBadHandle
	}
	if text == nil {
		clear(out)
		return abi.RCInternal
	}
	subject := text.View()
	return e.exec(p, subject, 0, len(subject), anchor, out)
}

// exec runs p over subject[start:end] and points out at the matched spans.
func (e *Engine) exec(p *pattern, subject string, start, end int, anchor int32, out []abi.String) int32 {
	clear(out)

	if p.errCode != abi.ErrorNone {
		e.log().Error("match on pattern that failed to compile", "pattern", p.text)
		return abi.RCNoMatch
	}
	if start < 0 || start > end || end > len(subject) {
		e.log().Error("invalid start/end pair",
			"start", start, "end", end, "length", len(subject))
		return abi.RCNoMatch
	}
	prog := p.prog(anchor)
	if prog == nil {
		e.log().Error("invalid anchor", "anchor", anchor)
		return abi.RCInternal
	}
	// A pattern pinned to the text edges cannot match inside a subrange
	// that does not reach them.
	if p.anchorStart && start != 0 || p.anchorEnd && end != len(subject) {
		return abi.RCNoMatch
	}

	hay := subject[start:end]
	var txt *latin1.Text
	if p.settings.encoding == abi.EncodingLatin1 {
		t, err := latin1.NewText(hay)
		if err != nil {
			e.log().Error("decode subject", "error", err)
			return abi.RCInternal
		}
		txt = t
		hay = t.UTF8
	}

	if !prog.fast.MatchString(hay) {
		return abi.RCNoMatch
	}
	if len(out) == 0 {
		if !prog.exact.MatchString(hay) {
			return abi.RCNoMatch
		}
		return abi.RCMatch
	}
	idx := prog.exact.FindStringSubmatchIndex(hay)
	if idx == nil {
		return abi.RCNoMatch
	}

	for i := range out {
		if 2*i+1 >= len(idx) || idx[2*i] < 0 {
			continue
		}
		lo, hi := idx[2*i], idx[2*i+1]
		if txt != nil {
			lo, hi = txt.ToLatin1(lo), txt.ToLatin1(hi)
		}
		out[i] = span(subject, start+lo, start+hi)
	}
	return abi.RCMatch
}

// span returns a descriptor over subject[lo:hi].
func span(subject string, lo, hi int) abi.String {
	if lo == hi {
		return abi.String{Data: &emptySpan}
	}
	return abi.StringOf(subject[lo:hi])
}
