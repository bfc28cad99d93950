package native

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"

	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/conv"
	"github.com/coregx/cre2/internal/handles"
	"github.com/coregx/cre2/internal/latin1"
)

// Approximate memory cost of one compiled instruction and of one cached DFA
// state. Two thirds of max_mem go to the program, the rest to the DFA cache.
const (
	instBytes     = 16
	dfaStateBytes = 256

	minDFAStates = 16
	maxDFAStates = 1_000_000
)

// pattern is the engine-side state behind a pattern handle.
type pattern struct {
	text     string
	settings settings

	errCode int32
	errMsg  string
	errArg  string

	groups   int
	progSize int
	// anchorStart and anchorEnd are set when the pattern is pinned to the
	// beginning or end of the text by \A, ^ or \z, $ outside multi-line mode.
	anchorStart bool
	anchorEnd   bool
	// progs is indexed by anchor ordinal - 1.
	progs [3]program
}

// program is one anchored variant of a pattern.
//
// The coregex program rejects non-matching text quickly. It does not track
// submatches with leftmost-first priority, so spans and the final verdict
// come from the regexp program.
type program struct {
	fast  *coregex.Regex
	exact *regexp.Regexp
}

func (p *pattern) prog(anchor int32) *program {
	if anchor < abi.Unanchored || anchor > abi.AnchorBoth {
		return nil
	}
	return &p.progs[anchor-1]
}

// New implements abi.Engine. It always returns a live handle; compile
// failures are recorded on the pattern and read back through ErrorCode.
func (e *Engine) New(pat *byte, patternLen int32, opt abi.Handle) abi.Handle {
	p := &pattern{
		// Own a copy: the caller's bytes are only valid for this call.
		text: abi.String{Data: pat, Length: patternLen}.Copy(),
	}

	switch {
	case opt == 0:
		p.settings = defaultSettings()
		p.compile()
	default:
		o, ok := e.opts.Get(handles.ID(opt))
		if !ok {
			p.settings = defaultSettings()
			p.fail(abi.ErrorInternal, "invalid options handle", "")
			break
		}
		p.settings = o.snapshot()
		p.compile()
	}

	if p.errCode != abi.ErrorNone && p.settings.logErrors {
		e.log().Error("error parsing pattern",
			"pattern", p.text,
			"code", p.errCode,
			"error", p.errMsg)
	}
	return abi.Handle(e.patterns.Insert(p))
}

// Delete implements abi.Engine.
func (e *Engine) Delete(rex abi.Handle) {
	if _, ok := e.patterns.Delete(handles.ID(rex)); !ok {
		e.log().Error("delete of released pattern handle", "handle", uint64(rex))
	}
}

func (e *Engine) getPattern(rex abi.Handle) (*pattern, bool) {
	p, ok := e.patterns.Get(handles.ID(rex))
	if !ok {
		e.log().Error("use of released pattern handle", "handle", uint64(rex))
	}
	return p, ok
}

// Pattern implements abi.Engine. The descriptor aliases engine memory.
func (e *Engine) Pattern(rex abi.Handle) abi.String {
	p, ok := e.getPattern(rex)
	if !ok {
		return abi.String{}
	}
	return abi.StringOf(p.text)
}

// NumCapturingGroups implements abi.Engine. Returns -1 for failed patterns.
func (e *Engine) NumCapturingGroups(rex abi.Handle) int32 {
	p, ok := e.getPattern(rex)
	if !ok || p.errCode != abi.ErrorNone {
		return -1
	}
	return conv.IntToInt32(p.groups)
}

// ProgramSize implements abi.Engine. Returns -1 for failed patterns.
func (e *Engine) ProgramSize(rex abi.Handle) int32 {
	p, ok := e.getPattern(rex)
	if !ok || p.errCode != abi.ErrorNone {
		return -1
	}
	return conv.IntToInt32(p.progSize)
}

// ErrorCode implements abi.Engine.
func (e *Engine) ErrorCode(rex abi.Handle) int32 {
	p, ok := e.getPattern(rex)
	if !ok {
		return abi.ErrorInternal
	}
	return p.errCode
}

// ErrorString implements abi.Engine.
func (e *Engine) ErrorString(rex abi.Handle) abi.String {
	p, ok := e.getPattern(rex)
	if !ok {
		return abi.String{}
	}
	return abi.StringOf(p.errMsg)
}

// ErrorArg implements abi.Engine.
func (e *Engine) ErrorArg(rex abi.Handle) abi.String {
	p, ok := e.getPattern(rex)
	if !ok {
		return abi.String{}
	}
	return abi.StringOf(p.errArg)
}

func (p *pattern) fail(code int32, msg, arg string) {
	p.errCode = code
	p.errMsg = msg
	p.errArg = arg
}

// compile turns p.text into the three anchored programs.
func (p *pattern) compile() {
	src := p.text
	if p.settings.encoding == abi.EncodingLatin1 {
		decoded, err := latin1.Decode(src)
		if err != nil {
			p.fail(abi.ErrorInternal, err.Error(), "")
			return
		}
		src = decoded
	}
	if p.settings.literal {
		src = coregex.QuoteMeta(src)
	}
	src = flagPrefix(p.settings) + src

	re, err := syntax.Parse(src, syntax.Perl)
	if err != nil {
		p.failSyntax(err)
		return
	}
	if p.settings.neverCapture {
		re = stripCaptures(re)
		src = re.String()
	}
	p.groups = re.MaxCap()
	p.anchorStart = anchoredAt(re, syntax.OpBeginText, 0)
	p.anchorEnd = anchoredAt(re, syntax.OpEndText, -1)

	prog, err := syntax.Compile(re.Simplify())
	if err != nil {
		p.failSyntax(err)
		return
	}
	p.progSize = len(prog.Inst)
	if int64(p.progSize)*instBytes > p.settings.maxMem*2/3 {
		p.fail(abi.ErrorPatternTooLarge, "pattern too large - compile failed", "")
		return
	}

	cfg := dfaConfig(p.settings.maxMem)
	variants := [3]string{
		src,
		`^(?:` + src + `)`,
		`^(?:` + src + `)$`,
	}
	for i, v := range variants {
		fast, err := coregex.CompileWithConfig(v, cfg)
		if err != nil {
			p.failSyntax(err)
			return
		}
		exact, err := regexp.Compile(v)
		if err != nil {
			p.failSyntax(err)
			return
		}
		if p.settings.longestMatch {
			fast.Longest()
			exact.Longest()
		}
		p.progs[i] = program{fast: fast, exact: exact}
	}
}

// anchoredAt reports whether re can only match with op at its first (at == 0)
// or last (at == -1) position, looking through captures and concatenations.
func anchoredAt(re *syntax.Regexp, op syntax.Op, at int) bool {
	switch re.Op {
	case op:
		return true
	case syntax.OpCapture:
		return anchoredAt(re.Sub[0], op, at)
	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			return false
		}
		i := 0
		if at < 0 {
			i = len(re.Sub) - 1
		}
		return anchoredAt(re.Sub[i], op, at)
	default:
		return false
	}
}

// dfaConfig sizes the lazy DFA cache from the memory budget.
func dfaConfig(maxMem int64) meta.Config {
	cfg := coregex.DefaultConfig()
	states := min(max(maxMem/3/dfaStateBytes, minDFAStates), maxDFAStates)
	cfg.MaxDFAStates = uint32(states)
	return cfg
}

// flagPrefix renders the option flags that map onto inline pattern flags.
func flagPrefix(s settings) string {
	var b strings.Builder
	if !s.caseSensitive {
		b.WriteByte('i')
	}
	if s.dotNL {
		b.WriteByte('s')
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}

// stripCaptures replaces every capture group with its body.
func stripCaptures(re *syntax.Regexp) *syntax.Regexp {
	for re.Op == syntax.OpCapture {
		re = re.Sub[0]
	}
	for i, sub := range re.Sub {
		re.Sub[i] = stripCaptures(sub)
	}
	return re
}

func (p *pattern) failSyntax(err error) {
	var serr *syntax.Error
	if !errors.As(err, &serr) {
		p.fail(abi.ErrorInternal, err.Error(), "")
		return
	}
	p.fail(classifyExpr(serr.Code, serr.Expr), string(serr.Code)+": "+serr.Expr, serr.Expr)
}

// classifyExpr refines classify for group openers the parser lumps together:
// look-behind is a bad Perl operator even though it starts like a named
// group, and an unfinished (?< or (?P is a bad named capture.
func classifyExpr(code syntax.ErrorCode, expr string) int32 {
	switch {
	case strings.HasPrefix(expr, "(?<=") || strings.HasPrefix(expr, "(?<!"):
		return abi.ErrorBadPerlOp
	case code == syntax.ErrInvalidPerlOp &&
		(strings.HasPrefix(expr, "(?<") || strings.HasPrefix(expr, "(?P")):
		return abi.ErrorBadNamedCapture
	default:
		return classify(code)
	}
}

// classify maps a parser error onto the engine's error ordinals.
func classify(code syntax.ErrorCode) int32 {
	switch code {
	case syntax.ErrInvalidEscape:
		return abi.ErrorBadEscape
	case syntax.ErrInvalidCharClass:
		return abi.ErrorBadCharClass
	case syntax.ErrInvalidCharRange:
		return abi.ErrorBadCharRange
	case syntax.ErrMissingBracket:
		return abi.ErrorMissingBracket
	case syntax.ErrMissingParen, syntax.ErrUnexpectedParen:
		return abi.ErrorMissingParen
	case syntax.ErrTrailingBackslash:
		return abi.ErrorTrailingBackslash
	case syntax.ErrMissingRepeatArgument:
		return abi.ErrorRepeatArgument
	case syntax.ErrInvalidRepeatSize:
		return abi.ErrorRepeatSize
	case syntax.ErrInvalidRepeatOp:
		return abi.ErrorRepeatOp
	case syntax.ErrInvalidPerlOp:
		return abi.ErrorBadPerlOp
	case syntax.ErrInvalidNamedCapture:
		return abi.ErrorBadNamedCapture
	case syntax.ErrLarge, syntax.ErrNestingDepth:
		return abi.ErrorPatternTooLarge
	default:
		return abi.ErrorInternal
	}
}
