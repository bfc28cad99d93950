// Package native is the default engine backend: a pure-Go implementation of
// the cre2 entry points on top of the coregex matcher.
//
// Handles are slots in handles.Table, so releasing a handle twice or using a
// released one is caught and logged instead of corrupting memory. Result
// descriptors point back into the caller's subject text; zero-length spans
// point at a package-level sentinel so that "participated but empty" stays
// distinguishable from "did not participate".
package native

import (
	"log/slog"
	"sync/atomic"

	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/handles"
	"github.com/coregx/cre2/internal/logging"
)

// Interface version of this backend.
const (
	versionString   = "1.0.0"
	versionCurrent  = 1
	versionRevision = 0
	versionAge      = 0
)

// emptySpan backs descriptors of zero-length spans.
var emptySpan byte

// Engine implements abi.Engine. The zero value is not usable; call New.
type Engine struct {
	logger   atomic.Pointer[slog.Logger]
	opts     handles.Table[*options]
	patterns handles.Table[*pattern]
}

var _ abi.Engine = (*Engine)(nil)

// New returns an engine that reports diagnostics to logger.
// A nil logger selects the default ERROR-level stderr logger.
func New(logger *slog.Logger) *Engine {
	e := &Engine{}
	e.SetLogger(logger)
	return e
}

// SetLogger replaces the diagnostics logger. A nil logger selects the default ERROR-level stderr logger.
func (e *Engine) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = logging.New(logging.Options{})
	}
	e.logger.Store(logger)
}

func (e *Engine) log() *slog.Logger {
	return e.logger.Load()
}

// Live returns the number of option and pattern handles not yet deleted.
func (e *Engine) Live() (opts, patterns int) {
	return e.opts.Len(), e.patterns.Len()
}

// Version implements abi.Engine.
func (e *Engine) Version() abi.Version {
	return abi.Version{
		String:   versionString,
		Current:  versionCurrent,
		Revision: versionRevision,
		Age:      versionAge,
	}
}
