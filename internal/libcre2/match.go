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
)

// call is the scratch state of one match call: a C copy of the subject text
// and a C result array.
type call struct {
	text  *byte // caller's text, rebase target
	n     int
	ctext unsafe.Pointer
	cout  *C.cre2_string_t
}

func newCall(text *byte, textLen int32, nmatch int) *call {
	c := &call{text: text, n: int(max(textLen, 0))}
	c.ctext = C.CBytes(unsafe.Slice(text, c.n))
	if nmatch > 0 {
		c.cout = (*C.cre2_string_t)(C.calloc(C.size_t(nmatch), C.size_t(unsafe.Sizeof(C.cre2_string_t{}))))
	}
	return c
}

func (c *call) free() {
	C.free(c.ctext)
	if c.cout != nil {
		C.free(unsafe.Pointer(c.cout))
	}
}

// rebase copies the C descriptors into out, pointing them at the caller's text.
func (c *call) rebase(out []abi.String) {
	if c.cout == nil {
		return
	}
	res := unsafe.Slice(c.cout, len(out))
	base := uintptr(c.ctext)
	for i, d := range res {
		if d.data == nil {
			out[i] = abi.String{}
			continue
		}
		off := int(uintptr(unsafe.Pointer(d.data)) - base)
		n := int(d.length)
		switch {
		case n == 0:
			out[i] = abi.String{Data: &emptySpan}
		case off >= 0 && off+n <= c.n:
			out[i] = abi.String{Data: (*byte)(unsafe.Add(unsafe.Pointer(c.text), off)), Length: int32(n)}
		default:
			// Not inside the subject; keep a Go-owned copy.
			out[i] = abi.StringOf(C.GoStringN(d.data, d.length))
		}
	}
}

// EasyMatch implements abi.Engine.
func (e *Engine) EasyMatch(pattern *byte, patternLen int32, text *byte, textLen int32, out []abi.String) int32 {
	cpat := C.CBytes(unsafe.Slice(pattern, max(patternLen, 0)))
	defer C.free(cpat)
	c := newCall(text, textLen, len(out))
	defer c.free()

	rc := C.cre2_easy_match((*C.char)(cpat), C.int(patternLen),
		(*C.char)(c.ctext), C.int(textLen), c.cout, C.int(len(out)))
	switch rc {
	case 0:
		clear(out)
		return abi.RCNoMatch
	case 1:
		c.rebase(out)
		return abi.RCMatch
	case 2:
		clear(out)
		return abi.RCBadPattern
	default:
		clear(out)
		return abi.RCInternal
	}
}

// Match implements abi.Engine.
func (e *Engine) Match(rex abi.Handle, text *byte, textLen, start, end, anchor int32, out []abi.String) int32 {
	r := e.rex(rex)
	if r == nil {
		clear(out)
		return abi.RCBadHandle
	}
	c := newCall(text, textLen, len(out))
	defer c.free()

	rc := C.cre2_match(r, (*C.char)(c.ctext), C.int(textLen), C.int(start), C.int(end),
		C.cre2_anchor_t(anchor), c.cout, C.int(len(out)))
	if rc <= 0 {
		clear(out)
		return int32(rc)
	}
	c.rebase(out)
	return abi.RCMatch
}

// FullMatchRe implements abi.Engine.
//
// cre2_full_match_re reports capture groups only, so the array handed to C
// starts at slot 1 and slot 0 is the whole subject.
func (e *Engine) FullMatchRe(rex abi.Handle, text *abi.String, out []abi.String) int32 {
	r := e.rex(rex)
	if r == nil {
		clear(out)
		return abi.RCBadHandle
	}
	if text == nil {
		clear(out)
		return abi.RCInternal
	}
	groups := out
	if len(groups) > 0 {
		groups = groups[1:]
	}
	c := newCall(text.Data, text.Length, len(groups))
	defer c.free()

	ctext := C.cre2_string_t{data: (*C.char)(c.ctext), length: C.int(text.Length)}
	rc := C.cre2_full_match_re(r, &ctext, c.cout, C.int(len(groups)))
	if rc <= 0 {
		clear(out)
		return int32(rc)
	}
	c.rebase(groups)
	if len(out) > 0 {
		out[0] = *text
		if text.Data == nil {
			out[0] = abi.String{Data: &emptySpan}
		}
	}
	return abi.RCMatch
}

// PartialMatchRe implements abi.Engine.
//
// The overall span is needed for slot 0, which cre2_partial_match_re does not
// report, so this goes through cre2_match over the whole subject.
func (e *Engine) PartialMatchRe(rex abi.Handle, text *abi.String, out []abi.String) int32 {
	if text == nil {
		clear(out)
		return abi.RCInternal
	}
	return e.Match(rex, text.Data, text.Length, 0, text.Length, abi.Unanchored, out)
}
