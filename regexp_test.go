package cre2

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func mustCompile(t *testing.T, pattern string, opts *Options) *Regexp {
	t.Helper()
	re := Compile(pattern, opts)
	t.Cleanup(func() { _ = re.Close() })
	require.NoError(t, re.Err(), "compile %q", pattern)
	return re
}

func TestNumCapturingGroups(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{`abc`, 0},
		{`(world) ([0-9]+)`, 2},
		{`(a(b)(?:c))`, 2},
		{`(?P<name>x)`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := mustCompile(t, tt.pattern, nil)
			assert.Equal(t, tt.want, re.NumCapturingGroups())
			assert.Positive(t, re.ProgramSize())
		})
	}
}

func TestPatternRoundTrip(t *testing.T) {
	for _, pattern := range []string{``, `abc`, `(abc`, `héllo\d+`, "a\x00b"} {
		re := Compile(pattern, nil)
		assert.Equal(t, pattern, re.Pattern())
		assert.Equal(t, pattern, re.String())
		require.NoError(t, re.Close())
	}
}

func TestCompileError(t *testing.T) {
	tests := []struct {
		pattern string
		code    ErrorCode
	}{
		{`(abc`, ErrorMissingParen},
		{`abc)`, ErrorMissingParen},
		{`[abc`, ErrorMissingBracket},
		{`*a`, ErrorRepeatArgument},
		{`a**`, ErrorRepeatOp},
		{`a{2,1}`, ErrorRepeatSize},
		{`x\`, ErrorTrailingBackslash},
		{`\8`, ErrorBadEscape},
		{`[z-a]`, ErrorBadCharRange},
		{`(?P<>x)`, ErrorBadNamedCapture},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := Compile(tt.pattern, nil)
			defer re.Close()

			assert.Equal(t, tt.code, re.ErrorCode())
			assert.NotEmpty(t, re.ErrorString())
			assert.Equal(t, -1, re.NumCapturingGroups())

			var cerr *CompileError
			require.ErrorAs(t, re.Err(), &cerr)
			assert.Equal(t, tt.code, cerr.Code)
			assert.Equal(t, tt.pattern, cerr.Pattern)
			assert.Equal(t, re.ErrorArg(), cerr.Arg)

			// Matching a failed pattern reports the compile error.
			res, err := re.PartialMatch("abc", 2)
			assert.ErrorAs(t, err, &cerr)
			assert.Equal(t, []string{"", ""}, res.Groups)
		})
	}
}

func TestErrorStringEmptyIffNoError(t *testing.T) {
	ok := mustCompile(t, `a+`, nil)
	assert.Equal(t, NoError, ok.ErrorCode())
	assert.Empty(t, ok.ErrorString())
	assert.Empty(t, ok.ErrorArg())
	assert.NoError(t, ok.Err())

	bad := Compile(`(a`, nil)
	defer bad.Close()
	assert.NotEqual(t, NoError, bad.ErrorCode())
	assert.NotEmpty(t, bad.ErrorString())
}

func TestMustCompilePanics(t *testing.T) {
	assert.PanicsWithValue(t,
		"regexp: Compile(`(abc`): cre2: missing closing ): (abc",
		func() { MustCompile(`(abc`, nil) })

	re := MustCompile(`abc`, nil)
	assert.NoError(t, re.Close())
}

func TestEasyMatch(t *testing.T) {
	res, err := EasyMatch(`(world) ([0-9]+)`, "hello world 42!", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, []string{"world 42", "world", "42"}, res.Groups)
	assert.True(t, res.Matched())
	assert.Equal(t, "42", res.Group(2))
	assert.Empty(t, res.Group(3))

	res, err = EasyMatch(`(world) ([0-9]+)`, "hello world!", 3)
	require.NoError(t, err)
	assert.Zero(t, res.Count)
	assert.Equal(t, []string{"", "", ""}, res.Groups)
}

func TestEasyMatchBadPattern(t *testing.T) {
	_, err := EasyMatch(`(abc`, "abc", 1)

	var merr *MatchError
	require.ErrorAs(t, err, &merr)
	assert.Negative(t, merr.Code)
	assert.ErrorIs(t, err, ErrBadPattern)

	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrorMissingParen, cerr.Code)
}

func TestSlotCounts(t *testing.T) {
	re := mustCompile(t, `(\d+)-(\d+)`, nil)

	t.Run("zero slots", func(t *testing.T) {
		res, err := re.PartialMatch("call 555-1234", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
		assert.Empty(t, res.Groups)

		res, err = re.PartialMatch("nothing here", 0)
		require.NoError(t, err)
		assert.Zero(t, res.Count)
	})

	t.Run("truncated", func(t *testing.T) {
		res, err := re.PartialMatch("call 555-1234", 2)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, []string{"555-1234", "555"}, res.Groups)
	})

	t.Run("extra slots", func(t *testing.T) {
		res, err := re.PartialMatch("call 555-1234", 5)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Count)
		assert.Equal(t, []string{"555-1234", "555", "1234", "", ""}, res.Groups)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := re.PartialMatch("x", -1)
		assert.ErrorIs(t, err, ErrInvalidSlots)
		_, err = EasyMatch(`x`, "x", -1)
		assert.ErrorIs(t, err, ErrInvalidSlots)
	})
}

func TestNonParticipatingGroups(t *testing.T) {
	alt := mustCompile(t, `(a)|(b)`, nil)
	res, err := alt.PartialMatch("b", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []string{"b", "", "b"}, res.Groups)

	// An empty group that did participate still counts.
	empty := mustCompile(t, `(a*)b`, nil)
	res, err = empty.PartialMatch("b", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []string{"b", ""}, res.Groups)
}

func TestMatchAnchors(t *testing.T) {
	re := mustCompile(t, `[a-z0-9]{5} world`, nil)
	text := "ciao hello world"

	tests := []struct {
		anchor Anchor
		start  int
		want   string
		count  int
	}{
		{Unanchored, 0, "hello world", 1},
		{AnchorStart, 0, "", 0},
		{AnchorStart, 5, "hello world", 1},
		{AnchorBoth, 5, "hello world", 1},
		{AnchorBoth, 0, "", 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v@%d", tt.anchor, tt.start), func(t *testing.T) {
			res, err := re.Match(text, tt.start, len(text), tt.anchor, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.count, res.Count)
			assert.Equal(t, tt.want, res.Groups[0])
		})
	}
}

func TestMatchSubrange(t *testing.T) {
	re := mustCompile(t, `b+`, nil)
	text := "aabbbcc"

	res, err := re.Match(text, 3, 4, AnchorBoth, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, res.Groups)

	res, err = re.Match(text, 5, 7, Unanchored, 1)
	require.NoError(t, err)
	assert.Zero(t, res.Count)

	res, err = re.Match(text, 2, 2, Unanchored, 1)
	require.NoError(t, err)
	assert.Zero(t, res.Count)
}

func TestMatchSubrangeRespectsTextAnchors(t *testing.T) {
	text := "xxabcxx"
	tests := []struct {
		pattern    string
		start, end int
		count      int
	}{
		{`^abc`, 2, 5, 0},
		{`abc$`, 2, 5, 0},
		{`^xxabc`, 0, 5, 1},
		{`abcxx$`, 2, 7, 1},
		{`(?m)^abc`, 2, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := mustCompile(t, tt.pattern, nil)
			res, err := re.Match(text, tt.start, tt.end, Unanchored, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.count, res.Count)
		})
	}
}

func TestScanLoopMatchesAnchorOnce(t *testing.T) {
	re := mustCompile(t, `^a`, nil)
	text := "aaaa"

	hits := 0
	for start := range len(text) {
		res, err := re.Match(text, start, len(text), Unanchored, 1)
		require.NoError(t, err)
		hits += res.Count
	}
	assert.Equal(t, 1, hits)
}

func TestMatchInvalidArguments(t *testing.T) {
	re := mustCompile(t, `a`, nil)

	for _, r := range [][2]int{{-1, 1}, {2, 1}, {0, 4}} {
		_, err := re.Match("abc", r[0], r[1], Unanchored, 1)
		assert.ErrorIs(t, err, ErrInvalidRange, "range %v", r)
	}

	_, err := re.Match("abc", 0, 3, Anchor(0), 1)
	assert.ErrorIs(t, err, ErrInvalidAnchor)
	_, err = re.Match("abc", 0, 3, Anchor(4), 1)
	assert.ErrorIs(t, err, ErrInvalidAnchor)
}

func TestFullAndPartialMatch(t *testing.T) {
	re := mustCompile(t, `(ciao) salut`, nil)

	res, err := re.FullMatch("ciao salut", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []string{"ciao salut", "ciao"}, res.Groups)

	res, err = re.FullMatch("ciao salut!", 2)
	require.NoError(t, err)
	assert.Zero(t, res.Count)

	res, err = re.PartialMatch("oh, ciao salut!", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"ciao salut", "ciao"}, res.Groups)
}

func TestInlineFlags(t *testing.T) {
	re := mustCompile(t, `(?im:hello[\s]+[\n]?WoRlD)`, nil)

	tests := []struct {
		text string
		want string
	}{
		{"hello WORLD!", "hello WORLD"},
		{"test hello\nWorLd!", "hello\nWorLd"},
	}
	for _, tt := range tests {
		res, err := re.PartialMatch(tt.text, 1)
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.Groups[0])
	}
}

func TestResultsOutliveRegexp(t *testing.T) {
	re := Compile(`(\w+)`, nil)
	res, err := re.PartialMatch("owned text", 2)
	require.NoError(t, err)
	require.NoError(t, re.Close())

	assert.Equal(t, []string{"owned", "owned"}, res.Groups)
}

func TestCloseIsIdempotent(t *testing.T) {
	re := Compile(`a`, nil)
	assert.NoError(t, re.Close())
	assert.NoError(t, re.Close())
	assert.PanicsWithValue(t, "cre2: use of closed Regexp", func() { re.Pattern() })
	assert.PanicsWithValue(t, "cre2: use of closed Regexp", func() { _, _ = re.PartialMatch("a", 1) })

	opts := NewOptions()
	assert.NoError(t, opts.Close())
	assert.NoError(t, opts.Close())
	assert.PanicsWithValue(t, "cre2: use of closed Options", func() { opts.Encoding() })
	assert.PanicsWithValue(t, "cre2: use of closed Options", func() { Compile(`a`, opts) })
}

func TestConcurrentMatch(t *testing.T) {
	re := mustCompile(t, `(\w+)@(\w+)\.com`, nil)

	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			text := fmt.Sprintf("user%d@host%d.com", i, i)
			for range 100 {
				res, err := re.FullMatch(text, 3)
				if err != nil {
					return err
				}
				if res.Groups[1] != fmt.Sprintf("user%d", i) {
					return fmt.Errorf("goroutine %d: got %q", i, res.Groups)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(slog.New(slog.DiscardHandler))

	quiet := NewOptions()
	defer quiet.Close()
	quiet.SetLogErrors(false)
	Compile(`(a`, quiet).Close()
	assert.Zero(t, buf.Len())

	Compile(`(a`, nil).Close()
	assert.Contains(t, buf.String(), "error parsing pattern")
}

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v.String)
	assert.GreaterOrEqual(t, v.Current, v.Age)
}
