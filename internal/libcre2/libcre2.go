//go:build cre2 && cgo

// Package libcre2 binds the cre2 C library (the C wrapper around RE2).
//
// Build with: go build -tags cre2
//
// Subject text is copied into C memory for the duration of each call and the
// cre2_string_t result array is allocated with calloc. Before either is freed
// the result descriptors are rebased onto the caller's own text, so nothing
// handed back to Go ever points into C memory.
package libcre2

/*
#cgo LDFLAGS: -lcre2 -lre2
#include <stdlib.h>
#include <cre2.h>
*/
import "C"

import (
	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/handles"
)

// emptySpan backs rebased zero-length spans.
var emptySpan byte

// Engine implements abi.Engine over libcre2.
type Engine struct {
	opts     handles.Table[*C.cre2_options_t]
	patterns handles.Table[*C.cre2_regexp_t]
}

var _ abi.Engine = (*Engine)(nil)

// New returns a libcre2-backed engine.
func New() *Engine {
	return &Engine{}
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// Version implements abi.Engine.
func (e *Engine) Version() abi.Version {
	return abi.Version{
		String:   C.GoString(C.cre2_version_string()),
		Current:  int32(C.cre2_version_interface_current()),
		Revision: int32(C.cre2_version_interface_revision()),
		Age:      int32(C.cre2_version_interface_age()),
	}
}

// OptNew implements abi.Engine.
func (e *Engine) OptNew() abi.Handle {
	return abi.Handle(e.opts.Insert(C.cre2_opt_new()))
}

// OptDelete implements abi.Engine. Deleting twice is a no-op.
func (e *Engine) OptDelete(opt abi.Handle) {
	if o, ok := e.opts.Delete(handles.ID(opt)); ok {
		C.cre2_opt_delete(o)
	}
}

func (e *Engine) opt(opt abi.Handle) *C.cre2_options_t {
	o, _ := e.opts.Get(handles.ID(opt))
	return o
}

// OptEncoding implements abi.Engine.
func (e *Engine) OptEncoding(opt abi.Handle) int32 {
	if o := e.opt(opt); o != nil {
		return int32(C.cre2_opt_encoding(o))
	}
	return abi.EncodingUnknown
}

// OptSetEncoding implements abi.Engine.
func (e *Engine) OptSetEncoding(opt abi.Handle, enc int32) {
	if o := e.opt(opt); o != nil {
		C.cre2_opt_set_encoding(o, C.cre2_encoding_t(enc))
	}
}

// OptLogErrors implements abi.Engine.
func (e *Engine) OptLogErrors(opt abi.Handle) bool {
	o := e.opt(opt)
	return o != nil && C.cre2_opt_log_errors(o) != 0
}

// OptSetLogErrors implements abi.Engine.
func (e *Engine) OptSetLogErrors(opt abi.Handle, flag bool) {
	if o := e.opt(opt); o != nil {
		C.cre2_opt_set_log_errors(o, cbool(flag))
	}
}

// OptLongestMatch implements abi.Engine.
func (e *Engine) OptLongestMatch(opt abi.Handle) bool {
	o := e.opt(opt)
	return o != nil && C.cre2_opt_longest_match(o) != 0
}

// OptSetLongestMatch implements abi.Engine.
func (e *Engine) OptSetLongestMatch(opt abi.Handle, flag bool) {
	if o := e.opt(opt); o != nil {
		C.cre2_opt_set_longest_match(o, cbool(flag))
	}
}

// OptLiteral implements abi.Engine.
func (e *Engine) OptLiteral(opt abi.Handle) bool {
	o := e.opt(opt)
	return o != nil && C.cre2_opt_literal(o) != 0
}

// OptSetLiteral implements abi.Engine.
func (e *Engine) OptSetLiteral(opt abi.Handle, flag bool) {
	if o := e.opt(opt); o != nil {
		C.cre2_opt_set_literal(o, cbool(flag))
	}
}

// OptCaseSensitive implements abi.Engine.
func (e *Engine) OptCaseSensitive(opt abi.Handle) bool {
	o := e.opt(opt)
	return o != nil && C.cre2_opt_case_sensitive(o) != 0
}

// OptSetCaseSensitive implements abi.Engine.
func (e *Engine) OptSetCaseSensitive(opt abi.Handle, flag bool) {
	if o := e.opt(opt); o != nil {
		C.cre2_opt_set_case_sensitive(o, cbool(flag))
	}
}

// OptDotNL implements abi.Engine.
func (e *Engine) OptDotNL(opt abi.Handle) bool {
	o := e.opt(opt)
	return o != nil && C.cre2_opt_dot_nl(o) != 0
}

// OptSetDotNL implements abi.Engine.
func (e *Engine) OptSetDotNL(opt abi.Handle, flag bool) {
	if o := e.opt(opt); o != nil {
		C.cre2_opt_set_dot_nl(o, cbool(flag))
	}
}

// OptNeverCapture implements abi.Engine.
func (e *Engine) OptNeverCapture(opt abi.Handle) bool {
	o := e.opt(opt)
	return o != nil && C.cre2_opt_never_capture(o) != 0
}

// OptSetNeverCapture implements abi.Engine.
func (e *Engine) OptSetNeverCapture(opt abi.Handle, flag bool) {
	if o := e.opt(opt); o != nil {
		C.cre2_opt_set_never_capture(o, cbool(flag))
	}
}

// OptMaxMem implements abi.Engine.
func (e *Engine) OptMaxMem(opt abi.Handle) int64 {
	if o := e.opt(opt); o != nil {
		return int64(C.cre2_opt_max_mem(o))
	}
	return 0
}

// OptSetMaxMem implements abi.Engine.
func (e *Engine) OptSetMaxMem(opt abi.Handle, n int64) {
	if o := e.opt(opt); o != nil {
		C.cre2_opt_set_max_mem(o, C.int64_t(n))
	}
}
