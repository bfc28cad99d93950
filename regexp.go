package cre2

import (
	"runtime"
	"sync/atomic"

	"github.com/coregx/cre2/internal/abi"
)

// Regexp is a compiled pattern. It is safe for concurrent use by multiple
// goroutines, except that Close must not race with other methods.
type Regexp struct {
	eng     abi.Engine
	h       atomic.Uint64
	cleanup runtime.Cleanup
}

// Compile compiles pattern with opts, or with the engine defaults when opts is
// nil. It always returns a Regexp; check Err or ErrorCode before matching.
//
// The pattern is copied, and the option values are snapshotted, so both may be
// reused or released as soon as Compile returns.
func Compile(pattern string, opts *Options) *Regexp {
	eng := currentEngine()
	var oh abi.Handle
	if opts != nil {
		eng = opts.eng
		oh = opts.handle()
	}
	p := abi.StringOf(pattern)
	h := eng.New(p.Data, p.Length, oh)
	runtime.KeepAlive(pattern)
	runtime.KeepAlive(opts)

	re := &Regexp{eng: eng}
	re.h.Store(uint64(h))
	re.cleanup = runtime.AddCleanup(re, func(h abi.Handle) { eng.Delete(h) }, h)
	return re
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, opts *Options) *Regexp {
	re := Compile(pattern, opts)
	if err := re.Err(); err != nil {
		_ = re.Close()
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Close releases the compiled pattern. Calling Close more than once is a
// no-op.
func (re *Regexp) Close() error {
	h := re.h.Swap(0)
	if h == 0 {
		return nil
	}
	re.cleanup.Stop()
	re.eng.Delete(abi.Handle(h))
	return nil
}

func (re *Regexp) handle() abi.Handle {
	h := re.h.Load()
	if h == 0 {
		panic("cre2: use of closed Regexp")
	}
	return abi.Handle(h)
}

// Pattern returns the source text the Regexp was compiled from.
func (re *Regexp) Pattern() string {
	defer runtime.KeepAlive(re)
	return re.eng.Pattern(re.handle()).Copy()
}

// String returns the source text. It makes Regexp a fmt.Stringer.
func (re *Regexp) String() string {
	return re.Pattern()
}

// NumCapturingGroups returns the number of parenthesized groups, not counting
// the overall match. It is -1 when the pattern failed to compile.
func (re *Regexp) NumCapturingGroups() int {
	defer runtime.KeepAlive(re)
	return int(re.eng.NumCapturingGroups(re.handle()))
}

// ProgramSize returns the engine's cost measure of the compiled program, or
// -1 when the pattern failed to compile.
func (re *Regexp) ProgramSize() int {
	defer runtime.KeepAlive(re)
	return int(re.eng.ProgramSize(re.handle()))
}

// ErrorCode returns NoError for a usable pattern, or the failure class.
func (re *Regexp) ErrorCode() ErrorCode {
	defer runtime.KeepAlive(re)
	return errorCodeFromABI(re.eng.ErrorCode(re.handle()))
}

// ErrorString returns the engine's error message, or "" for NoError.
func (re *Regexp) ErrorString() string {
	defer runtime.KeepAlive(re)
	return re.eng.ErrorString(re.handle()).Copy()
}

// ErrorArg returns the offending fragment of the pattern, or "".
func (re *Regexp) ErrorArg() string {
	defer runtime.KeepAlive(re)
	return re.eng.ErrorArg(re.handle()).Copy()
}

// Err returns nil for a usable pattern and a *CompileError otherwise.
func (re *Regexp) Err() error {
	code := re.ErrorCode()
	if code == NoError {
		return nil
	}
	return &CompileError{
		Code:    code,
		Message: re.ErrorString(),
		Arg:     re.ErrorArg(),
		Pattern: re.Pattern(),
	}
}
