package ir

import (
	"fmt"
	"strings"
)

// FunctionType classifies a Function the way the original's
// `ir::Function::Type` enum does (spec §3's Function record, §4.1, §4.6
// `begin_function(name, type)`): Host and Device name which side of a
// kernel/host split a function runs on, Kernel marks an entry point
// callable from outside the recorded program, and Default is used when a
// function belongs to neither distinction (most recorder-internal test
// functions).
type FunctionType int

const (
	FuncDefault FunctionType = iota
	FuncHost
	FuncDevice
	FuncKernel
)

func (t FunctionType) String() string {
	switch t {
	case FuncHost:
		return "host"
	case FuncDevice:
		return "device"
	case FuncKernel:
		return "kernel"
	default:
		return "default"
	}
}

// Alloc is one stack allocation local to a Function, addressed by its
// index in Function.Allocs (spec §3: "stack allocation bookkeeping ...
// separate from SSA temp ids"). A function parameter is simply an Alloc
// whose index also appears in Function.Args (spec §4.1's create_arg<T>:
// "allocate a stack slot, record its index in arg_indices").
type Alloc struct {
	Type Type
	// Name is optional, carried through for readability in String() and
	// cmd/cujdemo output; it plays no role in identity (AllocIndex does).
	Name string
}

// Function is one finalized recorded kernel or device function (spec §3's
// Function record: "{type, name, args: [alloc_index], allocations:
// map<alloc_index, {type, index}>, body}"). NextTempID, Allocs and Args
// are populated during recording and frozen once FuncRecorder.Finish
// returns it.
type Function struct {
	Name string
	Type FunctionType

	Allocs []Alloc
	// Args holds the subset of Allocs' indices that are parameters, in
	// declaration order (spec §4.6's "declare each argument in arg_indices
	// order via add_function_arg(idx)").
	Args []int

	Body *Block

	// NextTempID is the temp id that would be handed out next; retained so
	// Verify can confirm every Assign.TempID fell in [0, NextTempID).
	NextTempID uint32
}

func (f *Function) String() string {
	params := make([]string, len(f.Args))
	for i, idx := range f.Args {
		a := f.Allocs[idx]
		params[i] = fmt.Sprintf("%s %s", a.Name, a.Type)
	}
	allocs := make([]string, len(f.Allocs))
	for i, a := range f.Allocs {
		allocs[i] = fmt.Sprintf("alloc%d %s %s", i, a.Name, a.Type)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "func(%s) %s(%s)", f.Type, f.Name, strings.Join(params, ", "))
	if len(allocs) > 0 {
		fmt.Fprintf(&b, "\n  locals: %s", strings.Join(allocs, ", "))
	}
	fmt.Fprintf(&b, " %s", f.Body)
	return b.String()
}

// Program is a closed set of finalized functions plus the Interner that
// minted every Type reachable from them (spec §3's top-level container;
// spec has no notion of translation units or modules beyond this flat
// set, unlike the teacher's Module which also carries globals).
type Program struct {
	Functions []*Function
	Types     *Interner
}

// NewProgram creates an empty program backed by a fresh interner.
func NewProgram() *Program {
	return &Program{Types: NewInterner()}
}

// AddFunction appends fn to the program.
func (p *Program) AddFunction(fn *Function) {
	p.Functions = append(p.Functions, fn)
}

// Lookup returns the function named name, or nil.
func (p *Program) Lookup(name string) *Function {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

func (p *Program) String() string {
	parts := make([]string, len(p.Functions))
	for i, fn := range p.Functions {
		parts[i] = fn.String()
	}
	return strings.Join(parts, "\n\n")
}
