//go:build cre2 && cgo

package libcre2

/*
#include <stdlib.h>
#include <cre2.h>
*/
import "C"

import (
	"unsafe"

	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/handles"
)

// New implements abi.Engine.
func (e *Engine) New(pattern *byte, patternLen int32, opt abi.Handle) abi.Handle {
	cpat := C.CBytes(unsafe.Slice(pattern, max(patternLen, 0)))
	defer C.free(cpat)

	o := e.opt(opt)
	if o == nil {
		o = C.cre2_opt_new()
		defer C.cre2_opt_delete(o)
	}
	// cre2_new copies both the pattern and the options.
	rex := C.cre2_new((*C.char)(cpat), C.int(patternLen), o)
	return abi.Handle(e.patterns.Insert(rex))
}

// Delete implements abi.Engine. Deleting twice is a no-op.
func (e *Engine) Delete(rex abi.Handle) {
	if r, ok := e.patterns.Delete(handles.ID(rex)); ok {
		C.cre2_delete(r)
	}
}

func (e *Engine) rex(rex abi.Handle) *C.cre2_regexp_t {
	r, _ := e.patterns.Get(handles.ID(rex))
	return r
}

// goString copies a NUL-terminated C string owned by the pattern.
func goString(s *C.char) abi.String {
	if s == nil {
		return abi.String{}
	}
	return abi.StringOf(C.GoString(s))
}

// Pattern implements abi.Engine.
func (e *Engine) Pattern(rex abi.Handle) abi.String {
	r := e.rex(rex)
	if r == nil {
		return abi.String{}
	}
	return goString(C.cre2_pattern(r))
}

// NumCapturingGroups implements abi.Engine.
func (e *Engine) NumCapturingGroups(rex abi.Handle) int32 {
	r := e.rex(rex)
	if r == nil {
		return -1
	}
	return int32(C.cre2_num_capturing_groups(r))
}

// ProgramSize implements abi.Engine.
func (e *Engine) ProgramSize(rex abi.Handle) int32 {
	r := e.rex(rex)
	if r == nil {
		return -1
	}
	return int32(C.cre2_program_size(r))
}

// ErrorCode implements abi.Engine.
func (e *Engine) ErrorCode(rex abi.Handle) int32 {
	r := e.rex(rex)
	if r == nil {
		return abi.ErrorInternal
	}
	return int32(C.cre2_error_code(r))
}

// ErrorString implements abi.Engine.
func (e *Engine) ErrorString(rex abi.Handle) abi.String {
	r := e.rex(rex)
	if r == nil || C.cre2_error_code(r) == 0 {
		return abi.String{}
	}
	return goString(C.cre2_error_string(r))
}

// ErrorArg implements abi.Engine.
func (e *Engine) ErrorArg(rex abi.Handle) abi.String {
	r := e.rex(rex)
	if r == nil {
		return abi.String{}
	}
	var arg C.cre2_string_t
	C.cre2_error_arg(r, &arg)
	if arg.data == nil || arg.length <= 0 {
		return abi.String{}
	}
	return abi.StringOf(C.GoStringN(arg.data, arg.length))
}
