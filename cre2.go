// Package cre2 exposes RE2-style regular expressions through the cre2 entry
// points.
//
// A pattern is compiled once into a Regexp and matched many times. Compile
// never fails outright: a malformed pattern still yields a Regexp whose
// ErrorCode, ErrorString and ErrorArg describe the problem. All results are
// copied into Go strings before a call returns, so nothing handed to the
// caller aliases engine memory.
//
// Basic usage:
//
//	re := cre2.MustCompile(`(\w+)@(\w+)\.com`, nil)
//	defer re.Close()
//
//	res, err := re.PartialMatch("mail bob@example.com", 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Groups) // [bob@example.com bob example]
//
// By default the engine is the pure-Go backend. Building with -tags cre2 and
// cgo enabled binds the system libcre2 instead.
//
// A compiled Regexp is safe for concurrent matching. Options must not be
// mutated while another goroutine compiles with them.
package cre2

import (
	"log/slog"
	"sync/atomic"

	"github.com/coregx/cre2/internal/abi"
)

type engineRef struct{ abi.Engine }

var engine atomic.Pointer[engineRef]

func init() {
	engine.Store(&engineRef{defaultEngine()})
}

func currentEngine() abi.Engine {
	return engine.Load().Engine
}

// swapEngine installs e and returns the previous engine.
// Handles keep the engine that created them.
func swapEngine(e abi.Engine) abi.Engine {
	return engine.Swap(&engineRef{e}).Engine
}

// SetLogger routes engine diagnostics, such as compile failures when
// LogErrors is set, to logger. A nil logger restores the default, which
// writes ERROR records as text to stderr.
//
// Backends that log through their own facility ignore it.
func SetLogger(logger *slog.Logger) {
	if l, ok := currentEngine().(interface{ SetLogger(*slog.Logger) }); ok {
		l.SetLogger(logger)
	}
}

// VersionInfo identifies the engine's interface version.
type VersionInfo struct {
	String   string
	Current  int
	Revision int
	Age      int
}

// Version reports the interface version of the active engine.
func Version() VersionInfo {
	v := currentEngine().Version()
	return VersionInfo{
		String:   v.String,
		Current:  int(v.Current),
		Revision: int(v.Revision),
		Age:      int(v.Age),
	}
}
