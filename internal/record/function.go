package record

import (
	"github.com/hassan/cuj/internal/diag"
	"github.com/hassan/cuj/internal/ir"
	"github.com/hassan/cuj/internal/promote"
)

type frameKind int

const (
	framePlain frameKind = iota
	frameIfThen
	frameIfElse
	frameWhileCond
	frameWhileBody
)

// frame is one entry of a FuncRecorder's block stack (spec §3/§9's
// "block/scope stack model... with push/pop invariants"). Only the
// fields relevant to kind are populated; see controlflow.go for the
// push/pop sequencing of each kind.
type frame struct {
	block *ir.Block
	kind  frameKind

	// frameIfThen / frameIfElse
	cond ir.Value
	// frameIfElse only: the already-built then block, carried across the
	// Else() call so EndIf can assemble both branches at once.
	thenBlock *ir.Block

	// frameWhileBody only: the cond block and value recorded by WhileCond,
	// carried here so EndWhile can assemble the full ir.While.
	condBlock *ir.Block
	whileCond ir.Value
}

// FuncRecorder accumulates one Function's IR as the host program calls
// its builder methods (spec §4.1, §4.6). It is not safe for concurrent
// use by multiple goroutines — spec §5 assigns one FuncRecorder per
// recording thread, each driving its own instance.
type FuncRecorder struct {
	ctx        *Context
	name       string
	fnType     ir.FunctionType
	allocs     []ir.Alloc
	argIndices []int
	nextTemp   uint32
	stack      []*frame
	loopDepth  int
	finished   bool
}

// Arg declares a new function parameter as a stack-allocated slot (spec
// §4.1's create_arg<T>: "allocate a stack slot, record its index in
// arg_indices"), returning its address the same way Alloc does. The
// host façade wraps the returned address as a Pointer[T] so a parameter
// can be read via Load and written via Store exactly like any other
// lvalue, instead of arriving as a bare pre-numbered temp.
func (fr *FuncRecorder) Arg(t ir.Type, name string) ir.BasicValue {
	addr := fr.Alloc(t, name)
	fr.argIndices = append(fr.argIndices, len(fr.allocs)-1)
	return addr
}

// Interner exposes the owning Context's type interner so callers building
// on top of FuncRecorder (internal/expr) can mint Types without importing
// Context directly.
func (fr *FuncRecorder) Interner() *ir.Interner { return fr.ctx.Types }

func (fr *FuncRecorder) top() *frame { return fr.stack[len(fr.stack)-1] }

func (fr *FuncRecorder) push(f *frame) { fr.stack = append(fr.stack, f) }

// pop removes and returns the top frame, failing if doing so would empty
// the stack (the root plain frame must always remain until Finish).
func (fr *FuncRecorder) pop(wantKind frameKind, caller string) *frame {
	if len(fr.stack) <= 1 {
		diag.Fail(2, "%s: no matching open block to close", caller)
	}
	top := fr.stack[len(fr.stack)-1]
	if top.kind != wantKind {
		diag.Fail(2, "%s: mismatched block nesting (expected to close %d, found %d)", caller, wantKind, top.kind)
	}
	fr.stack = fr.stack[:len(fr.stack)-1]
	return top
}

func (fr *FuncRecorder) append(s ir.Statement) {
	top := fr.top()
	top.block.Statements = append(top.block.Statements, s)
}

// emit appends an Assign binding a fresh temp to op, returning a
// BasicValue referencing it.
func (fr *FuncRecorder) emit(op ir.Op, t ir.Type) ir.BasicValue {
	id := fr.nextTemp
	fr.nextTemp++
	fr.append(&ir.Assign{TempID: id, Type: t, Rhs: op})
	return ir.Temp(id, t)
}

// emitVoid appends op purely for its side effect, binding no temp.
func (fr *FuncRecorder) emitVoid(op ir.Op) {
	fr.append(&ir.ExprStmt{Op: op})
}

func (fr *FuncRecorder) kindOf(v ir.BasicValue) ir.Kind {
	t := v.Type(fr.ctx.Types)
	bt, ok := t.(*ir.BuiltinType)
	if !ok {
		diag.Fail(2, "expected a scalar operand, got %s", t)
	}
	return bt.Kind
}

func (fr *FuncRecorder) maybeCast(v ir.BasicValue, target ir.Kind, need bool) ir.BasicValue {
	if !need {
		return v
	}
	castOp, ok := promote.Cast(fr.ctx.Types, v, target)
	if !ok {
		return v
	}
	return fr.emit(castOp, fr.ctx.Types.Builtin(target))
}

// Alloc reserves a new stack slot of type t (spec §3's "stack allocation
// bookkeeping, separate from SSA temp ids") and returns its address as a
// usize BasicValue.
func (fr *FuncRecorder) Alloc(t ir.Type, name string) ir.BasicValue {
	idx := len(fr.allocs)
	fr.allocs = append(fr.allocs, ir.Alloc{Type: t, Name: name})
	usizeT := fr.ctx.Types.Builtin(ir.Usize)
	return fr.emit(&ir.AllocAddress{AllocIndex: idx}, usizeT)
}

// Load dereferences addr (which must carry the usize kind) to a value of
// type t (spec §4.4's implicit place-to-rvalue conversion).
func (fr *FuncRecorder) Load(addr ir.BasicValue, t ir.Type) ir.BasicValue {
	if fr.kindOf(addr) != ir.Usize {
		diag.Fail(1, "load address must be usize, got %s", fr.kindOf(addr))
	}
	return fr.emit(&ir.Load{Type: t, Addr: addr}, t)
}

// Store writes value to addr (spec §4.4: the only way a place is ever
// mutated). Panics if addr is not usize — taking the address of an
// rvalue never reaches this call, since internal/expr only ever builds
// usize addresses from Alloc, PointerOffset or MemberPtr.
func (fr *FuncRecorder) Store(addr, value ir.BasicValue) {
	if fr.kindOf(addr) != ir.Usize {
		diag.Fail(1, "store address must be usize, got %s", fr.kindOf(addr))
	}
	fr.append(&ir.Store{Addr: addr, Value: value})
}

// BinaryOp applies kind to lhs and rhs, inserting casts per the promotion
// plan computed by internal/promote and emitting the ir.BinaryOp.
func (fr *FuncRecorder) BinaryOp(kind ir.BinaryOpKind, lhs, rhs ir.BasicValue) ir.BasicValue {
	lhsKind, rhsKind := fr.kindOf(lhs), fr.kindOf(rhs)

	if kind.IsShift() {
		resultKind := promote.ShiftResultKind(lhsKind)
		rt := fr.ctx.Types.Builtin(resultKind)
		return fr.emit(&ir.BinaryOp{Kind: kind, Lhs: lhs, Rhs: rhs, ResultType: rt}, rt)
	}

	plan := promote.BinaryPlan(kind, lhsKind, rhsKind)
	lhs = fr.maybeCast(lhs, plan.OperandKind, plan.CastLhs)
	rhs = fr.maybeCast(rhs, plan.OperandKind, plan.CastRhs)
	rt := fr.ctx.Types.Builtin(plan.ResultKind)
	return fr.emit(&ir.BinaryOp{Kind: kind, Lhs: lhs, Rhs: rhs, ResultType: rt}, rt)
}

// UnaryOp applies kind to operand, following internal/promote's rules.
func (fr *FuncRecorder) UnaryOp(kind ir.UnaryOpKind, operand ir.BasicValue) ir.BasicValue {
	resultKind := promote.UnaryPlan(kind, fr.kindOf(operand))
	rt := fr.ctx.Types.Builtin(resultKind)
	return fr.emit(&ir.UnaryOp{Kind: kind, Operand: operand, ResultType: rt}, rt)
}

// Cast explicitly converts v to target, a no-op (returning v unchanged)
// when v is already of that kind.
func (fr *FuncRecorder) Cast(v ir.BasicValue, target ir.Kind) ir.BasicValue {
	castOp, ok := promote.Cast(fr.ctx.Types, v, target)
	if !ok {
		return v
	}
	return fr.emit(castOp, fr.ctx.Types.Builtin(target))
}

// PointerOffset computes base + index*sizeof(pointee) as a new usize
// address.
func (fr *FuncRecorder) PointerOffset(pointee ir.Type, base, index ir.BasicValue) ir.BasicValue {
	usizeT := fr.ctx.Types.Builtin(ir.Usize)
	return fr.emit(&ir.PointerOffset{PointeeType: pointee, Base: base, Index: index}, usizeT)
}

// MemberPtr computes the address of field fieldIndex of the struct at
// base.
func (fr *FuncRecorder) MemberPtr(structType *ir.StructType, base ir.BasicValue, fieldIndex int) ir.BasicValue {
	if fieldIndex < 0 || fieldIndex >= len(structType.Fields) {
		diag.Fail(1, "field index %d out of range for struct %s", fieldIndex, structType.Name)
	}
	usizeT := fr.ctx.Types.Builtin(ir.Usize)
	return fr.emit(&ir.MemberPtr{StructType: structType, Base: base, FieldIndex: fieldIndex}, usizeT)
}

// Call invokes a non-void function or intrinsic, binding its result to a
// fresh temp. Calling a void-returning name panics; use CallVoid.
func (fr *FuncRecorder) Call(name string, args []ir.BasicValue, retType ir.Type) ir.BasicValue {
	if bt, ok := retType.(*ir.BuiltinType); ok && bt.Kind == ir.KindVoid {
		diag.Fail(1, "call to %s returns void; use CallVoid", name)
	}
	return fr.emit(&ir.Call{Name: name, Args: args, RetType: retType}, retType)
}

// CallVoid invokes a void-returning function purely for its side effect.
func (fr *FuncRecorder) CallVoid(name string, args []ir.BasicValue) {
	voidT := fr.ctx.Types.Builtin(ir.KindVoid)
	fr.emitVoid(&ir.Call{Name: name, Args: args, RetType: voidT})
}

// Finish freezes the recording into an *ir.Function, registers it with
// the owning Context's program, and marks fr unusable for further
// recording. Panics if any If/While block is still open (spec §7:
// "finalize with open blocks" is a fatal recorder usage error).
func (fr *FuncRecorder) Finish() *ir.Function {
	if fr.finished {
		diag.Fail(1, "function %s already finished", fr.name)
	}
	if len(fr.stack) != 1 {
		diag.Fail(1, "function %s finalized with %d block(s) still open", fr.name, len(fr.stack)-1)
	}
	fn := &ir.Function{
		Name:       fr.name,
		Type:       fr.fnType,
		Allocs:     fr.allocs,
		Args:       fr.argIndices,
		Body:       fr.stack[0].block,
		NextTempID: fr.nextTemp,
	}
	fr.finished = true
	fr.ctx.program.AddFunction(fn)
	fr.ctx.log.Debugw("finished recording function", "name", fr.name, "temps", fr.nextTemp, "allocs", len(fr.allocs))
	return fn
}
