package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/cuj/internal/ir"
)

func newTestFunc(t *testing.T, name string, ret ir.Kind) (*Context, *FuncRecorder) {
	ctx := NewContext(nil)
	fr := ctx.NewFunction(name, ir.FuncDefault)
	return ctx, fr
}

func TestSimpleAddFunction(t *testing.T) {
	ctx, fr := newTestFunc(t, "add_one", ir.KindI32)
	a := ir.ImmInt(ir.KindI32, 1)
	b := ir.ImmInt(ir.KindI32, 2)
	sum := fr.BinaryOp(ir.Add, a, b)
	fn := fr.Finish()

	require.Len(t, fn.Body.Statements, 1)
	assign, ok := fn.Body.Statements[0].(*ir.Assign)
	require.True(t, ok)
	assert.Equal(t, sum.TempID, assign.TempID)
	bo, ok := assign.Rhs.(*ir.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ir.Add, bo.Kind)

	errs := ctx.Program().Verify()
	assert.Empty(t, errs)
}

func TestBinaryOpInsertsPromotionCast(t *testing.T) {
	_, fr := newTestFunc(t, "mix", ir.KindI64)
	a := ir.ImmInt(ir.KindI32, 1)
	b := ir.ImmInt(ir.KindI64, 2)
	result := fr.BinaryOp(ir.Add, a, b)
	fn := fr.Finish()

	// a (i32) must be cast to i64 before the add.
	require.Len(t, fn.Body.Statements, 2)
	castAssign := fn.Body.Statements[0].(*ir.Assign)
	_, isCast := castAssign.Rhs.(*ir.Cast)
	assert.True(t, isCast)

	addAssign := fn.Body.Statements[1].(*ir.Assign)
	bo := addAssign.Rhs.(*ir.BinaryOp)
	assert.Equal(t, ir.KindI64, bo.ResultType.(*ir.BuiltinType).Kind)
	assert.Equal(t, result.TempID, addAssign.TempID)
}

func TestComparisonProducesBool(t *testing.T) {
	_, fr := newTestFunc(t, "cmp", ir.KindBool)
	a := ir.ImmInt(ir.KindI32, 1)
	b := ir.ImmInt(ir.KindI32, 2)
	result := fr.BinaryOp(ir.Lt, a, b)
	fn := fr.Finish()
	assign := fn.Body.Statements[len(fn.Body.Statements)-1].(*ir.Assign)
	assert.Equal(t, ir.KindBool, assign.Type.(*ir.BuiltinType).Kind)
	assert.Equal(t, ir.KindBool, result.TempType.(*ir.BuiltinType).Kind)
}

func TestAllocStoreLoadRoundTrip(t *testing.T) {
	ctx, fr := newTestFunc(t, "roundtrip", ir.KindI32)
	i32 := ctx.Types.Builtin(ir.KindI32)
	addr := fr.Alloc(i32, "x")
	fr.Store(addr, ir.ImmInt(ir.KindI32, 42))
	loaded := fr.Load(addr, i32)
	fn := fr.Finish()

	require.Len(t, fn.Allocs, 1)
	assert.Equal(t, "x", fn.Allocs[0].Name)
	assert.False(t, loaded.IsImmediate)

	errs := ctx.Program().Verify()
	assert.Empty(t, errs)
}

func TestStoreToNonUsizeAddressPanics(t *testing.T) {
	_, fr := newTestFunc(t, "bad", ir.KindVoid)
	assert.Panics(t, func() {
		fr.Store(ir.ImmInt(ir.KindI32, 0), ir.ImmInt(ir.KindI32, 1))
	})
}

func TestIfWithoutElse(t *testing.T) {
	ctx, fr := newTestFunc(t, "maybe_store", ir.KindVoid)
	i32 := ctx.Types.Builtin(ir.KindI32)
	addr := fr.Alloc(i32, "x")
	cond := ir.Value{Basic: ir.ImmBool(true), Type: ctx.Types.Builtin(ir.KindBool)}

	fr.BeginIf(cond)
	fr.Store(addr, ir.ImmInt(ir.KindI32, 1))
	fr.EndIf()

	fn := fr.Finish()
	ifStmt := fn.Body.Statements[len(fn.Body.Statements)-1].(*ir.If)
	assert.Nil(t, ifStmt.Else)
	assert.Len(t, ifStmt.Then.Statements, 1)
}

func TestIfElse(t *testing.T) {
	ctx, fr := newTestFunc(t, "if_else", ir.KindVoid)
	i32 := ctx.Types.Builtin(ir.KindI32)
	addr := fr.Alloc(i32, "x")
	cond := ir.Value{Basic: ir.ImmBool(false), Type: ctx.Types.Builtin(ir.KindBool)}

	fr.BeginIf(cond)
	fr.Store(addr, ir.ImmInt(ir.KindI32, 1))
	fr.Else()
	fr.Store(addr, ir.ImmInt(ir.KindI32, 2))
	fr.EndIf()

	fn := fr.Finish()
	ifStmt := fn.Body.Statements[len(fn.Body.Statements)-1].(*ir.If)
	require.NotNil(t, ifStmt.Else)
	assert.Len(t, ifStmt.Then.Statements, 1)
	assert.Len(t, ifStmt.Else.Statements, 1)
}

func TestWhileLoopWithBreak(t *testing.T) {
	ctx, fr := newTestFunc(t, "sum_while", ir.KindI32)
	i32 := ctx.Types.Builtin(ir.KindI32)
	counter := fr.Alloc(i32, "i")
	fr.Store(counter, ir.ImmInt(ir.KindI32, 0))

	fr.BeginWhile()
	loaded := fr.Load(counter, i32)
	cond := fr.BinaryOp(ir.Lt, loaded, ir.ImmInt(ir.KindI32, 10))
	fr.WhileCond(ir.Value{Basic: cond, Type: ctx.Types.Builtin(ir.KindBool)})

	fr.Break(0)
	fr.EndWhile()

	fn := fr.Finish()
	errs := ctx.Program().Verify()
	assert.Empty(t, errs)

	whileStmt := fn.Body.Statements[len(fn.Body.Statements)-1].(*ir.While)
	assert.NotNil(t, whileStmt.CondBlock)
	assert.Len(t, whileStmt.Body.Statements, 1)
}

func TestBreakOutsideLoopPanics(t *testing.T) {
	_, fr := newTestFunc(t, "bad_break", ir.KindVoid)
	assert.Panics(t, func() { fr.Break(0) })
}

func TestContinueTooDeepPanics(t *testing.T) {
	_, fr := newTestFunc(t, "nested", ir.KindVoid)
	fr.BeginWhile()
	fr.WhileCond(ir.Value{Basic: ir.ImmBool(true), Type: fr.ctx.Types.Builtin(ir.KindBool)})
	assert.Panics(t, func() { fr.Continue(1) })
	fr.EndWhile()
}

func TestFinishWithOpenBlockPanics(t *testing.T) {
	_, fr := newTestFunc(t, "unclosed", ir.KindVoid)
	fr.BeginWhile()
	fr.WhileCond(ir.Value{Basic: ir.ImmBool(true), Type: fr.ctx.Types.Builtin(ir.KindBool)})
	assert.Panics(t, func() { fr.Finish() })
}

func TestForRangeDesugaring(t *testing.T) {
	ctx, fr := newTestFunc(t, "for_range", ir.KindVoid)
	i32 := ctx.Types.Builtin(ir.KindI32)
	start := ir.ImmInt(ir.KindI32, 0)
	end := ir.ImmInt(ir.KindI32, 10)

	counterAddr := fr.BeginForRange(ir.KindI32, start, end)
	_ = fr.Load(counterAddr, i32)
	fr.EndForRange(counterAddr, i32, ir.ImmInt(ir.KindI32, 1))

	fn := fr.Finish()
	errs := ctx.Program().Verify()
	assert.Empty(t, errs)
	require.Len(t, fn.Allocs, 1)
}

// TestPointerOffsetNonZeroIndex exercises spec scenario S4 directly at the
// recorder level: computing base + index*sizeof(elem) for a non-zero index
// and then loading through the resulting address.
func TestPointerOffsetNonZeroIndex(t *testing.T) {
	ctx, fr := newTestFunc(t, "offset", ir.KindF32)
	f32 := ctx.Types.Builtin(ir.KindF32)
	base := fr.Alloc(f32, "buf")
	offset := fr.PointerOffset(f32, base, ir.ImmInt(ir.KindI64, 3))
	loaded := fr.Load(offset, f32)
	fn := fr.Finish()

	require.False(t, loaded.IsImmediate)
	last := fn.Body.Statements[len(fn.Body.Statements)-2].(*ir.Assign)
	po, ok := last.Rhs.(*ir.PointerOffset)
	require.True(t, ok)
	assert.Equal(t, uint64(3), po.Index.ImmBits)

	errs := ctx.Program().Verify()
	assert.Empty(t, errs)
}

func TestCallVoidEmitsExprStmt(t *testing.T) {
	_, fr := newTestFunc(t, "side_effect", ir.KindVoid)
	fr.CallVoid("assert", []ir.BasicValue{ir.ImmBool(true)})
	fn := fr.Finish()
	_, ok := fn.Body.Statements[0].(*ir.ExprStmt)
	assert.True(t, ok)
}

func TestCallOnVoidReturnPanics(t *testing.T) {
	ctx, fr := newTestFunc(t, "bad_call", ir.KindVoid)
	voidT := ctx.Types.Builtin(ir.KindVoid)
	assert.Panics(t, func() { fr.Call("assert", nil, voidT) })
}

// TestArgIsAllocPlusArgIndex exercises spec §4.1's create_arg<T>: an
// argument is a stack slot like any other Alloc, read through Load, with
// its alloc index additionally recorded in Function.Args.
func TestArgIsAllocPlusArgIndex(t *testing.T) {
	ctx := NewContext(nil)
	i32 := ctx.Types.Builtin(ir.KindI32)
	fr := ctx.NewFunction("double", ir.FuncDefault)

	xAddr := fr.Arg(i32, "x")
	x := fr.Load(xAddr, i32)
	doubled := fr.BinaryOp(ir.Add, x, x)
	fn := fr.Finish()

	require.Len(t, fn.Allocs, 1)
	assert.Equal(t, "x", fn.Allocs[0].Name)
	require.Len(t, fn.Args, 1)
	assert.Equal(t, 0, fn.Args[0])
	assert.NotEqual(t, uint32(0), doubled.TempID)
	assert.Empty(t, ctx.Program().Verify())
}

// TestMultipleArgsRecordIndicesInDeclarationOrder confirms Args accumulates
// in the order Arg is called, independent of any ordinary Alloc interleaved
// between them.
func TestMultipleArgsRecordIndicesInDeclarationOrder(t *testing.T) {
	ctx, fr := newTestFunc(t, "two_args", ir.KindVoid)
	i32 := ctx.Types.Builtin(ir.KindI32)

	fr.Arg(i32, "a")
	fr.Alloc(i32, "local")
	fr.Arg(i32, "b")
	fn := fr.Finish()

	require.Len(t, fn.Allocs, 3)
	assert.Equal(t, []int{0, 2}, fn.Args)
}

// TestNestedLoopInnerBreak builds two nested while loops where the inner
// loop breaks itself (depth 0) without disturbing the outer loop, then
// confirms the outer loop also runs to completion and the whole program
// still verifies clean.
func TestNestedLoopInnerBreak(t *testing.T) {
	ctx, fr := newTestFunc(t, "nested_break", ir.KindVoid)
	i32 := ctx.Types.Builtin(ir.KindI32)
	boolT := ctx.Types.Builtin(ir.KindBool)
	outer := fr.Alloc(i32, "outer")
	fr.Store(outer, ir.ImmInt(ir.KindI32, 0))

	fr.BeginWhile()
	outerCond := fr.BinaryOp(ir.Lt, fr.Load(outer, i32), ir.ImmInt(ir.KindI32, 5))
	fr.WhileCond(ir.Value{Basic: outerCond, Type: boolT})

	inner := fr.Alloc(i32, "inner")
	fr.Store(inner, ir.ImmInt(ir.KindI32, 0))

	fr.BeginWhile()
	innerCond := fr.BinaryOp(ir.Lt, fr.Load(inner, i32), ir.ImmInt(ir.KindI32, 3))
	fr.WhileCond(ir.Value{Basic: innerCond, Type: boolT})

	fr.BeginIf(ir.Value{Basic: ir.ImmBool(true), Type: boolT})
	fr.Break(0) // breaks the inner loop only
	fr.EndIf()

	fr.EndWhile() // close inner while

	outerNext := fr.BinaryOp(ir.Add, fr.Load(outer, i32), ir.ImmInt(ir.KindI32, 1))
	fr.Store(outer, outerNext)

	fr.EndWhile() // close outer while

	fn := fr.Finish()
	errs := ctx.Program().Verify()
	assert.Empty(t, errs)

	outerWhile := fn.Body.Statements[len(fn.Body.Statements)-1].(*ir.While)
	var innerWhile *ir.While
	for _, s := range outerWhile.Body.Statements {
		if w, ok := s.(*ir.While); ok {
			innerWhile = w
		}
	}
	require.NotNil(t, innerWhile)
	require.Len(t, innerWhile.Body.Statements, 1)
	ifStmt, ok := innerWhile.Body.Statements[0].(*ir.If)
	require.True(t, ok)
	brk, ok := ifStmt.Then.Statements[0].(*ir.Break)
	require.True(t, ok)
	assert.Equal(t, 0, brk.LoopDepth)
}

// TestOuterLoopBreakFromNestedLoop confirms Break(1) from inside the inner
// loop targets the outer loop rather than its own.
func TestOuterLoopBreakFromNestedLoop(t *testing.T) {
	ctx, fr := newTestFunc(t, "nested_outer_break", ir.KindVoid)
	boolT := ctx.Types.Builtin(ir.KindBool)

	fr.BeginWhile()
	fr.WhileCond(ir.Value{Basic: ir.ImmBool(true), Type: boolT})

	fr.BeginWhile()
	fr.WhileCond(ir.Value{Basic: ir.ImmBool(true), Type: boolT})
	fr.Break(1) // targets the outer loop
	fr.EndWhile()

	fr.EndWhile()

	fn := fr.Finish()
	assert.Empty(t, ctx.Program().Verify())

	outerWhile := fn.Body.Statements[len(fn.Body.Statements)-1].(*ir.While)
	innerWhile := outerWhile.Body.Statements[0].(*ir.While)
	brk := innerWhile.Body.Statements[0].(*ir.Break)
	assert.Equal(t, 1, brk.LoopDepth)
}
