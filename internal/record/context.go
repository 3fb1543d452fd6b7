// Package record implements the recording-time object model of spec §4:
// a Context shared by every function recorded within it, and a
// FuncRecorder that accumulates one Function's IR as host Go code calls
// its builder methods.
//
// DESIGN CHOICE: spec §9 notes that a faithful port would give each
// recording thread its own implicit FuncRecorder (thread-local storage
// in the original). Go has no equivalent of thread-locals, and the
// spec's own design notes accept the documented alternative: every
// façade value in internal/expr carries an explicit *FuncRecorder
// reference instead of reaching for ambient state. Concurrent recording
// is still safe because each goroutine drives its own Context and
// FuncRecorder instances; nothing here is shared across them.
package record

import (
	"go.uber.org/zap"

	"github.com/hassan/cuj/internal/ir"
)

// Context owns the type interner and logger shared by every function
// recorded from it, and collects finished functions into a Program.
// One Context is meant to back one compilation unit; spec §5 treats
// functions recorded from distinct Contexts as entirely independent, so
// there is no cross-Context sharing of interned types.
type Context struct {
	Types   *ir.Interner
	program *ir.Program
	log     *zap.SugaredLogger
}

// NewContext creates a Context with a fresh interner and program, logging
// through the supplied *zap.Logger (nil uses zap.NewNop(), matching the
// teacher's preference for an always-valid logger over nil checks
// scattered through call sites).
func NewContext(logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	in := ir.NewInterner()
	return &Context{
		Types:   in,
		program: &ir.Program{Types: in},
		log:     logger.Sugar(),
	}
}

// Program returns the functions finalized so far. The returned value is
// the Context's live Program; callers that want a frozen snapshot should
// copy it before recording more functions into this Context.
func (c *Context) Program() *ir.Program { return c.program }

// NewFunction begins recording a new function named name of kind fnType
// (spec §4.6's begin_function(name, type)), returning a FuncRecorder that
// accumulates its body. Parameters are not declared here — following
// spec §4.1's create_arg<T>, the host calls FuncRecorder.Arg once per
// parameter while recording the body, the same way it calls Alloc for an
// ordinary local.
func (c *Context) NewFunction(name string, fnType ir.FunctionType) *FuncRecorder {
	c.log.Debugw("begin recording function", "name", name, "type", fnType)
	root := &ir.Block{}
	fr := &FuncRecorder{
		ctx:    c,
		name:   name,
		fnType: fnType,
		stack:  []*frame{{block: root, kind: framePlain}},
	}
	return fr
}
