package record

import (
	"github.com/hassan/cuj/internal/diag"
	"github.com/hassan/cuj/internal/ir"
)

// BeginIf opens the then-branch of an if statement (spec §4.5). cond
// must already be a bool-typed Value; internal/expr is responsible for
// inserting the bool cast before calling this.
func (fr *FuncRecorder) BeginIf(cond ir.Value) {
	fr.push(&frame{kind: frameIfThen, block: &ir.Block{}, cond: cond})
}

// Else switches from the then-branch to the else-branch of the
// innermost open if. An ElseIf desugars at the call site into Else()
// immediately followed by a nested BeginIf/EndIf pair (spec §4.5).
func (fr *FuncRecorder) Else() {
	then := fr.pop(frameIfThen, "Else")
	fr.push(&frame{kind: frameIfElse, block: &ir.Block{}, cond: then.cond, thenBlock: then.block})
}

// EndIf closes the innermost open if, appending the assembled ir.If to
// the enclosing block.
func (fr *FuncRecorder) EndIf() {
	top := fr.top()
	switch top.kind {
	case frameIfThen:
		f := fr.pop(frameIfThen, "EndIf")
		fr.append(&ir.If{Cond: f.cond, Then: f.block})
	case frameIfElse:
		f := fr.pop(frameIfElse, "EndIf")
		fr.append(&ir.If{Cond: f.cond, Then: f.thenBlock, Else: f.block})
	default:
		diag.Fail(1, "EndIf: no open if block")
	}
}

// BeginWhile opens the condition block of a while loop. Statements
// recorded before the following WhileCond call (e.g. a Load feeding the
// comparison) become the loop's re-evaluated CondBlock (spec §4.5: "a
// condition expression may itself load memory or call a function, so it
// cannot always be folded into a single BasicValue").
func (fr *FuncRecorder) BeginWhile() {
	fr.push(&frame{kind: frameWhileCond, block: &ir.Block{}})
}

// WhileCond supplies the loop's condition value, closing the condition
// block and opening the loop body. loopDepth increases for the duration
// of the body so Break/Continue can validate their depth argument.
func (fr *FuncRecorder) WhileCond(cond ir.Value) {
	condFrame := fr.pop(frameWhileCond, "WhileCond")
	fr.loopDepth++
	fr.push(&frame{
		kind:      frameWhileBody,
		block:     &ir.Block{},
		condBlock: condFrame.block,
		whileCond: cond,
	})
}

// BeginLoop opens an infinite loop (spec §4.5's "infinite Loop"),
// desugared as while(true) with an empty, never-populated cond block.
func (fr *FuncRecorder) BeginLoop() {
	fr.BeginWhile()
	fr.WhileCond(ir.Value{Basic: ir.ImmBool(true), Type: fr.ctx.Types.Builtin(ir.KindBool)})
}

// EndWhile closes the innermost open while (or Loop) body, appending the
// assembled ir.While to the enclosing block.
func (fr *FuncRecorder) EndWhile() {
	f := fr.pop(frameWhileBody, "EndWhile")
	fr.loopDepth--
	var condBlock *ir.Block
	if len(f.condBlock.Statements) > 0 {
		condBlock = f.condBlock
	}
	fr.append(&ir.While{CondBlock: condBlock, Cond: f.whileCond, Body: f.block})
}

// Break records a break out of the loop loopDepth levels up from the
// innermost (0 = innermost), panicking if loopDepth does not name an
// enclosing loop.
func (fr *FuncRecorder) Break(loopDepth int) {
	fr.checkLoopDepth(loopDepth, "Break")
	fr.append(&ir.Break{LoopDepth: loopDepth})
}

// Continue records a continue of the loop loopDepth levels up.
func (fr *FuncRecorder) Continue(loopDepth int) {
	fr.checkLoopDepth(loopDepth, "Continue")
	fr.append(&ir.Continue{LoopDepth: loopDepth})
}

func (fr *FuncRecorder) checkLoopDepth(loopDepth int, caller string) {
	if loopDepth < 0 || loopDepth >= fr.loopDepth {
		diag.Fail(2, "%s(%d): not inside that many enclosing loops (nesting depth %d)", caller, loopDepth, fr.loopDepth)
	}
}

// BeginForRange desugars a counted range loop (spec §4.5's "ForRange
// desugaring") into an alloc'd counter, a priming store of start, and a
// while loop testing counter < end. It returns the counter's address so
// callers can Load it inside the body; EndForRange then records
// counter += step at the end of the body and closes the loop.
//
// kind is the counter's arithmetic kind (typically a signed or unsigned
// integer kind); start, end and step must already share that kind.
func (fr *FuncRecorder) BeginForRange(kind ir.Kind, start, end ir.BasicValue) (counterAddr ir.BasicValue) {
	t := fr.ctx.Types.Builtin(kind)
	counterAddr = fr.Alloc(t, "range_counter")
	fr.Store(counterAddr, start)

	fr.BeginWhile()
	counter := fr.Load(counterAddr, t)
	cond := fr.BinaryOp(ir.Lt, counter, end)
	fr.WhileCond(ir.Value{Basic: cond, Type: fr.ctx.Types.Builtin(ir.KindBool)})
	return counterAddr
}

// EndForRange advances counterAddr by step and closes the loop opened by
// BeginForRange. elemType must be the counter's element type (the same
// kind passed to BeginForRange) — addresses carry no pointee type of
// their own in this IR (spec §3 keeps Load.Type authoritative at each
// use site rather than on the address value).
func (fr *FuncRecorder) EndForRange(counterAddr ir.BasicValue, elemType ir.Type, step ir.BasicValue) {
	counter := fr.Load(counterAddr, elemType)
	next := fr.BinaryOp(ir.Add, counter, step)
	fr.Store(counterAddr, next)
	fr.EndWhile()
}
