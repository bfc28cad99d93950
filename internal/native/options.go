package native

import (
	"sync"

	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/handles"
)

// defaultMaxMem mirrors RE2's default memory budget.
const defaultMaxMem = 8 << 20

// settings is the value snapshot a pattern takes of its options at compile time.
type settings struct {
	encoding      int32
	logErrors     bool
	longestMatch  bool
	literal       bool
	caseSensitive bool
	dotNL         bool
	neverCapture  bool
	maxMem        int64
}

func defaultSettings() settings {
	return settings{
		encoding:      abi.EncodingUTF8,
		logErrors:     true,
		caseSensitive: true,
		maxMem:        defaultMaxMem,
	}
}

type options struct {
	mu sync.Mutex
	s  settings
}

func (o *options) snapshot() settings {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.s
}

func (o *options) update(f func(*settings)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	f(&o.s)
}

// OptNew implements abi.Engine.
func (e *Engine) OptNew() abi.Handle {
	return abi.Handle(e.opts.Insert(&options{s: defaultSettings()}))
}

// OptDelete implements abi.Engine.
func (e *Engine) OptDelete(opt abi.Handle) {
	if _, ok := e.opts.Delete(handles.ID(opt)); !ok {
		e.log().Error("delete of released options handle", "handle", uint64(opt))
	}
}

func (e *Engine) getOpt(opt abi.Handle) settings {
	o, ok := e.opts.Get(handles.ID(opt))
	if !ok {
		e.log().Error("use of released options handle", "handle", uint64(opt))
		return settings{}
	}
	return o.snapshot()
}

func (e *Engine) setOpt(opt abi.Handle, f func(*settings)) {
	o, ok := e.opts.Get(handles.ID(opt))
	if !ok {
		e.log().Error("use of released options handle", "handle", uint64(opt))
		return
	}
	o.update(f)
}

// OptEncoding implements abi.Engine.
func (e *Engine) OptEncoding(opt abi.Handle) int32 { return e.getOpt(opt).encoding }

// OptSetEncoding implements abi.Engine. Unknown encodings fall back to UTF-8.
func (e *Engine) OptSetEncoding(opt abi.Handle, enc int32) {
	if enc != abi.EncodingLatin1 {
		enc = abi.EncodingUTF8
	}
	e.setOpt(opt, func(s *settings) { s.encoding = enc })
}

// OptLogErrors implements abi.Engine.
func (e *Engine) OptLogErrors(opt abi.Handle) bool { return e.getOpt(opt).logErrors }

// OptSetLogErrors implements abi.Engine.
func (e *Engine) OptSetLogErrors(opt abi.Handle, flag bool) {
	e.setOpt(opt, func(s *settings) { s.logErrors = flag })
}

// OptLongestMatch implements abi.Engine.
func (e *Engine) OptLongestMatch(opt abi.Handle) bool { return e.getOpt(opt).longestMatch }

// OptSetLongestMatch implements abi.Engine.
func (e *Engine) OptSetLongestMatch(opt abi.Handle, flag bool) {
	e.setOpt(opt, func(s *settings) { s.longestMatch = flag })
}

// OptLiteral implements abi.Engine.
func (e *Engine) OptLiteral(opt abi.Handle) bool { return e.getOpt(opt).literal }

// OptSetLiteral implements abi.Engine.
func (e *Engine) OptSetLiteral(opt abi.Handle, flag bool) {
	e.setOpt(opt, func(s *settings) { s.literal = flag })
}

// OptCaseSensitive implements abi.Engine.
func (e *Engine) OptCaseSensitive(opt abi.Handle) bool { return e.getOpt(opt).caseSensitive }

// OptSetCaseSensitive implements abi.Engine.
func (e *Engine) OptSetCaseSensitive(opt abi.Handle, flag bool) {
	e.setOpt(opt, func(s *settings) { s.caseSensitive = flag })
}

// OptDotNL implements abi.Engine.
func (e *Engine) OptDotNL(opt abi.Handle) bool { return e.getOpt(opt).dotNL }

// OptSetDotNL implements abi.Engine.
func (e *Engine) OptSetDotNL(opt abi.Handle, flag bool) {
	e.setOpt(opt, func(s *settings) { s.dotNL = flag })
}

// OptNeverCapture implements abi.Engine.
func (e *Engine) OptNeverCapture(opt abi.Handle) bool { return e.getOpt(opt).neverCapture }

// OptSetNeverCapture implements abi.Engine.
func (e *Engine) OptSetNeverCapture(opt abi.Handle, flag bool) {
	e.setOpt(opt, func(s *settings) { s.neverCapture = flag })
}

// OptMaxMem implements abi.Engine.
func (e *Engine) OptMaxMem(opt abi.Handle) int64 { return e.getOpt(opt).maxMem }

// OptSetMaxMem implements abi.Engine. Non-positive values restore the default.
func (e *Engine) OptSetMaxMem(opt abi.Handle, n int64) {
	if n <= 0 {
		n = defaultMaxMem
	}
	e.setOpt(opt, func(s *settings) { s.maxMem = n })
}
