package cre2

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/coregx/cre2/internal/abi"
)

// Options is a reusable bundle of compile settings.
//
// An Options may be shared by any number of Compile calls. Compile takes a
// snapshot, so changing or closing the Options afterwards does not affect
// patterns already compiled. Setters are not safe to call concurrently with
// Compile on the same Options.
type Options struct {
	eng     abi.Engine
	h       atomic.Uint64
	cleanup runtime.Cleanup
}

// NewOptions allocates an options bundle holding the engine defaults:
// UTF-8 encoding, errors logged, case sensitive, leftmost-first matching and
// an 8 MiB memory budget.
func NewOptions() *Options {
	eng := currentEngine()
	h := eng.OptNew()
	o := &Options{eng: eng}
	o.h.Store(uint64(h))
	o.cleanup = runtime.AddCleanup(o, func(h abi.Handle) { eng.OptDelete(h) }, h)
	return o
}

// Close releases the options. Calling Close more than once is a no-op.
func (o *Options) Close() error {
	h := o.h.Swap(0)
	if h == 0 {
		return nil
	}
	o.cleanup.Stop()
	o.eng.OptDelete(abi.Handle(h))
	return nil
}

func (o *Options) handle() abi.Handle {
	h := o.h.Load()
	if h == 0 {
		panic("cre2: use of closed Options")
	}
	return abi.Handle(h)
}

// Encoding returns the text encoding patterns and subjects are read in.
func (o *Options) Encoding() Encoding {
	defer runtime.KeepAlive(o)
	return encodingFromABI(o.eng.OptEncoding(o.handle()))
}

// SetEncoding selects UTF-8 or Latin-1.
func (o *Options) SetEncoding(enc Encoding) error {
	if enc != EncodingUTF8 && enc != EncodingLatin1 {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, enc)
	}
	defer runtime.KeepAlive(o)
	o.eng.OptSetEncoding(o.handle(), int32(enc))
	return nil
}

// LogErrors reports whether compile failures are logged by the engine.
func (o *Options) LogErrors() bool {
	defer runtime.KeepAlive(o)
	return o.eng.OptLogErrors(o.handle())
}

// SetLogErrors controls whether compile failures are logged by the engine.
func (o *Options) SetLogErrors(flag bool) {
	defer runtime.KeepAlive(o)
	o.eng.OptSetLogErrors(o.handle(), flag)
}

// LongestMatch reports whether leftmost-longest semantics are selected.
func (o *Options) LongestMatch() bool {
	defer runtime.KeepAlive(o)
	return o.eng.OptLongestMatch(o.handle())
}

// SetLongestMatch selects leftmost-longest instead of leftmost-first
// semantics: among matches starting at the leftmost position the longest one
// wins, regardless of alternation order or lazy quantifiers.
func (o *Options) SetLongestMatch(flag bool) {
	defer runtime.KeepAlive(o)
	o.eng.OptSetLongestMatch(o.handle(), flag)
}

// Literal reports whether patterns are matched verbatim.
func (o *Options) Literal() bool {
	defer runtime.KeepAlive(o)
	return o.eng.OptLiteral(o.handle())
}

// SetLiteral makes the pattern match itself verbatim.
func (o *Options) SetLiteral(flag bool) {
	defer runtime.KeepAlive(o)
	o.eng.OptSetLiteral(o.handle(), flag)
}

// CaseSensitive reports whether matching distinguishes letter case.
func (o *Options) CaseSensitive() bool {
	defer runtime.KeepAlive(o)
	return o.eng.OptCaseSensitive(o.handle())
}

// SetCaseSensitive controls whether matching distinguishes letter case.
// Turning it off is equivalent to a leading (?i).
func (o *Options) SetCaseSensitive(flag bool) {
	defer runtime.KeepAlive(o)
	o.eng.OptSetCaseSensitive(o.handle(), flag)
}

// DotNL reports whether . matches a newline.
func (o *Options) DotNL() bool {
	defer runtime.KeepAlive(o)
	return o.eng.OptDotNL(o.handle())
}

// SetDotNL lets . match a newline.
func (o *Options) SetDotNL(flag bool) {
	defer runtime.KeepAlive(o)
	o.eng.OptSetDotNL(o.handle(), flag)
}

// NeverCapture reports whether groups are parsed as non-capturing.
func (o *Options) NeverCapture() bool {
	defer runtime.KeepAlive(o)
	return o.eng.OptNeverCapture(o.handle())
}

// SetNeverCapture parses all groups as non-capturing.
func (o *Options) SetNeverCapture(flag bool) {
	defer runtime.KeepAlive(o)
	o.eng.OptSetNeverCapture(o.handle(), flag)
}

// MaxMem returns the compile memory budget in bytes.
func (o *Options) MaxMem() int64 {
	defer runtime.KeepAlive(o)
	return o.eng.OptMaxMem(o.handle())
}

// SetMaxMem sets the compile memory budget in bytes. Patterns whose program
// exceeds it fail with ErrorPatternTooLarge.
func (o *Options) SetMaxMem(n int64) {
	defer runtime.KeepAlive(o)
	o.eng.OptSetMaxMem(o.handle(), n)
}
