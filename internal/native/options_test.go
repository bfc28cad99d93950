package native

import (
	"testing"

	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/logging"
)

func TestOptionDefaults(t *testing.T) {
	e := New(logging.Discard())
	opt := e.OptNew()
	defer e.OptDelete(opt)

	if got := e.OptEncoding(opt); got != abi.EncodingUTF8 {
		t.Errorf("encoding = %d, want UTF-8", got)
	}
	if !e.OptLogErrors(opt) {
		t.Error("log_errors should default to true")
	}
	if !e.OptCaseSensitive(opt) {
		t.Error("case_sensitive should default to true")
	}
	if e.OptLongestMatch(opt) || e.OptLiteral(opt) || e.OptDotNL(opt) || e.OptNeverCapture(opt) {
		t.Error("boolean options other than log_errors/case_sensitive should default to false")
	}
	if got := e.OptMaxMem(opt); got != defaultMaxMem {
		t.Errorf("max_mem = %d, want %d", got, defaultMaxMem)
	}
}

func TestOptionSetters(t *testing.T) {
	e := New(logging.Discard())
	opt := e.OptNew()
	defer e.OptDelete(opt)

	e.OptSetEncoding(opt, abi.EncodingLatin1)
	e.OptSetLongestMatch(opt, true)
	e.OptSetLiteral(opt, true)
	e.OptSetCaseSensitive(opt, false)
	e.OptSetDotNL(opt, true)
	e.OptSetNeverCapture(opt, true)
	e.OptSetMaxMem(opt, 1<<10)

	if e.OptEncoding(opt) != abi.EncodingLatin1 || !e.OptLongestMatch(opt) || !e.OptLiteral(opt) ||
		e.OptCaseSensitive(opt) || !e.OptDotNL(opt) || !e.OptNeverCapture(opt) || e.OptMaxMem(opt) != 1<<10 {
		t.Error("setters did not round-trip")
	}

	e.OptSetEncoding(opt, 99)
	if got := e.OptEncoding(opt); got != abi.EncodingUTF8 {
		t.Errorf("unknown encoding stored as %d, want UTF-8", got)
	}
	e.OptSetMaxMem(opt, 0)
	if got := e.OptMaxMem(opt); got != defaultMaxMem {
		t.Errorf("max_mem reset = %d, want default", got)
	}
}

func TestOptionsSnapshotAtCompile(t *testing.T) {
	e := New(logging.Discard())
	opt := e.OptNew()
	e.OptSetCaseSensitive(opt, false)
	rex := compile(e, "hello", opt)
	defer e.Delete(rex)

	// Later changes and even deleting the options must not affect rex.
	e.OptSetCaseSensitive(opt, true)
	e.OptDelete(opt)

	if rc, got := match(e, rex, "say HELLO", abi.Unanchored, 1); rc != 1 || got[0] != "HELLO" {
		t.Errorf("match = %d %q, want 1 \"HELLO\"", rc, got[0])
	}
}

func TestOptionBehaviour(t *testing.T) {
	tests := []struct {
		name    string
		set     func(e *Engine, opt abi.Handle)
		pattern string
		text    string
		want    string
		groups  int32
	}{
		{
			name:    "literal",
			set:     func(e *Engine, opt abi.Handle) { e.OptSetLiteral(opt, true) },
			pattern: "a.b(c)",
			text:    "axb(c) a.b(c)",
			want:    "a.b(c)",
			groups:  0,
		},
		{
			name:    "case insensitive",
			set:     func(e *Engine, opt abi.Handle) { e.OptSetCaseSensitive(opt, false) },
			pattern: "(wor)ld",
			text:    "hello WORLD",
			want:    "WORLD",
			groups:  1,
		},
		{
			name:    "dot nl",
			set:     func(e *Engine, opt abi.Handle) { e.OptSetDotNL(opt, true) },
			pattern: "a.b",
			text:    "a\nb",
			want:    "a\nb",
			groups:  0,
		},
		{
			name:    "never capture",
			set:     func(e *Engine, opt abi.Handle) { e.OptSetNeverCapture(opt, true) },
			pattern: "(a)(?P<x>b)",
			text:    "zab",
			want:    "ab",
			groups:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(logging.Discard())
			opt := e.OptNew()
			defer e.OptDelete(opt)
			tt.set(e, opt)

			rex := compile(e, tt.pattern, opt)
			defer e.Delete(rex)
			if code := e.ErrorCode(rex); code != abi.ErrorNone {
				t.Fatalf("ErrorCode = %d (%s)", code, e.ErrorString(rex).Copy())
			}
			if got := e.NumCapturingGroups(rex); got != tt.groups {
				t.Errorf("NumCapturingGroups = %d, want %d", got, tt.groups)
			}
			if rc, got := match(e, rex, tt.text, abi.Unanchored, 1); rc != 1 || got[0] != tt.want {
				t.Errorf("match = %d %q, want 1 %q", rc, got[0], tt.want)
			}
		})
	}
}

func TestMaxMemTooSmall(t *testing.T) {
	e := New(logging.Discard())
	opt := e.OptNew()
	defer e.OptDelete(opt)
	e.OptSetMaxMem(opt, 64)

	rex := compile(e, "[a-z]{50}[0-9]{50}", opt)
	defer e.Delete(rex)

	if code := e.ErrorCode(rex); code != abi.ErrorPatternTooLarge {
		t.Errorf("ErrorCode = %d, want %d", code, abi.ErrorPatternTooLarge)
	}
}

func TestLatin1(t *testing.T) {
	e := New(logging.Discard())
	opt := e.OptNew()
	defer e.OptDelete(opt)
	e.OptSetEncoding(opt, abi.EncodingLatin1)

	rex := compile(e, "(.)\xe9", opt)
	defer e.Delete(rex)
	if code := e.ErrorCode(rex); code != abi.ErrorNone {
		t.Fatalf("ErrorCode = %d (%s)", code, e.ErrorString(rex).Copy())
	}

	// Offsets and spans come back in Latin-1 bytes.
	rc, got := match(e, rex, "x\xffcaf\xe9!", abi.Unanchored, 2)
	if rc != 1 || got[0] != "f\xe9" || got[1] != "f" {
		t.Errorf("match = %d %q, want 1 [\"f\\xe9\" \"f\"]", rc, got)
	}

	text := "\xe9\xe9caf\xe9"
	d := abi.StringOf(text)
	out := make([]abi.String, 1)
	if rc := e.Match(rex, d.Data, d.Length, 2, 6, abi.AnchorBoth, out); rc != 0 {
		t.Errorf("anchor both over \"caf\\xe9\" = %d, want 0", rc)
	}
	if rc := e.Match(rex, d.Data, d.Length, 4, 6, abi.AnchorBoth, out); rc != 1 || out[0].Copy() != "f\xe9" {
		t.Errorf("anchor both [4,6) = %d %q", rc, out[0].Copy())
	}
}

func TestDFAConfigFromMaxMem(t *testing.T) {
	tests := []struct {
		maxMem int64
		want   uint32
	}{
		{8 << 20, 10922},
		{1, minDFAStates},
		{1 << 40, maxDFAStates},
	}
	for _, tt := range tests {
		cfg := dfaConfig(tt.maxMem)
		if cfg.MaxDFAStates != tt.want {
			t.Errorf("dfaConfig(%d).MaxDFAStates = %d, want %d", tt.maxMem, cfg.MaxDFAStates, tt.want)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("dfaConfig(%d) invalid: %v", tt.maxMem, err)
		}
	}
}

func TestLongestMatch(t *testing.T) {
	e, _ := newTestEngine(t)
	opt := e.OptNew()
	defer e.OptDelete(opt)

	first := compile(e, `(a|ab)(c|bcd)?`, opt)
	defer e.Delete(first)
	e.OptSetLongestMatch(opt, true)
	longest := compile(e, `(a|ab)(c|bcd)?`, opt)
	defer e.Delete(longest)
	lazy := compile(e, `a+?`, opt)
	defer e.Delete(lazy)

	if _, got := match(e, first, "ab", abi.Unanchored, 2); got[0] != "a" || got[1] != "a" {
		t.Errorf("leftmost-first = %q, want [a a]", got)
	}
	if _, got := match(e, longest, "ab", abi.Unanchored, 2); got[0] != "ab" || got[1] != "ab" {
		t.Errorf("leftmost-longest = %q, want [ab ab]", got)
	}
	if _, got := match(e, lazy, "aaa", abi.Unanchored, 1); got[0] != "aaa" {
		t.Errorf("leftmost-longest lazy = %q, want [aaa]", got)
	}
}
