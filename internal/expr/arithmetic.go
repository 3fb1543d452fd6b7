package expr

import (
	"github.com/hassan/cuj/internal/ir"
	"github.com/hassan/cuj/internal/record"
)

// ArithmeticValue is a recorded scalar value of static host type T (spec
// §4.2's façade over Value/BasicValue). Every method appends exactly one
// IR op to its FuncRecorder and returns a fresh ArithmeticValue wrapping
// the resulting temp — host code chains calls the way it would chain
// arithmetic on a plain number.
type ArithmeticValue[T Scalar] struct {
	fr  *record.FuncRecorder
	val ir.BasicValue
}

// Lit records an immediate literal of value v.
func Lit[T Scalar](fr *record.FuncRecorder, v T) ArithmeticValue[T] {
	return ArithmeticValue[T]{fr: fr, val: immediateOf(v)}
}

// Wrap adapts an already-recorded BasicValue (for instance the result of
// a Pointer[T].Load) into the typed façade. Callers are responsible for
// v actually carrying kind T; Wrap does not re-check it.
func Wrap[T Scalar](fr *record.FuncRecorder, v ir.BasicValue) ArithmeticValue[T] {
	return ArithmeticValue[T]{fr: fr, val: v}
}

// Value returns the underlying recorded BasicValue.
func (a ArithmeticValue[T]) Value() ir.BasicValue { return a.val }

func (a ArithmeticValue[T]) recorder() *record.FuncRecorder { return a.fr }

func (a ArithmeticValue[T]) binary(kind ir.BinaryOpKind, b ArithmeticValue[T]) ArithmeticValue[T] {
	return ArithmeticValue[T]{fr: a.fr, val: a.fr.BinaryOp(kind, a.val, b.val)}
}

func (a ArithmeticValue[T]) compare(kind ir.BinaryOpKind, b ArithmeticValue[T]) BoolValue {
	return BoolValue{fr: a.fr, val: a.fr.BinaryOp(kind, a.val, b.val)}
}

func (a ArithmeticValue[T]) Add(b ArithmeticValue[T]) ArithmeticValue[T] { return a.binary(ir.Add, b) }
func (a ArithmeticValue[T]) Sub(b ArithmeticValue[T]) ArithmeticValue[T] { return a.binary(ir.Sub, b) }
func (a ArithmeticValue[T]) Mul(b ArithmeticValue[T]) ArithmeticValue[T] { return a.binary(ir.Mul, b) }
func (a ArithmeticValue[T]) Div(b ArithmeticValue[T]) ArithmeticValue[T] { return a.binary(ir.Div, b) }
func (a ArithmeticValue[T]) Mod(b ArithmeticValue[T]) ArithmeticValue[T] { return a.binary(ir.Mod, b) }

func (a ArithmeticValue[T]) Shl(b ArithmeticValue[T]) ArithmeticValue[T] { return a.binary(ir.Shl, b) }
func (a ArithmeticValue[T]) Shr(b ArithmeticValue[T]) ArithmeticValue[T] { return a.binary(ir.Shr, b) }

func (a ArithmeticValue[T]) Eq(b ArithmeticValue[T]) BoolValue { return a.compare(ir.Eq, b) }
func (a ArithmeticValue[T]) Ne(b ArithmeticValue[T]) BoolValue { return a.compare(ir.Ne, b) }
func (a ArithmeticValue[T]) Lt(b ArithmeticValue[T]) BoolValue { return a.compare(ir.Lt, b) }
func (a ArithmeticValue[T]) Le(b ArithmeticValue[T]) BoolValue { return a.compare(ir.Le, b) }
func (a ArithmeticValue[T]) Gt(b ArithmeticValue[T]) BoolValue { return a.compare(ir.Gt, b) }
func (a ArithmeticValue[T]) Ge(b ArithmeticValue[T]) BoolValue { return a.compare(ir.Ge, b) }

// Neg records unary negation.
func (a ArithmeticValue[T]) Neg() ArithmeticValue[T] {
	return ArithmeticValue[T]{fr: a.fr, val: a.fr.UnaryOp(ir.Neg, a.val)}
}

// BitNot records a bitwise complement.
func (a ArithmeticValue[T]) BitNot() ArithmeticValue[T] {
	return ArithmeticValue[T]{fr: a.fr, val: a.fr.UnaryOp(ir.BitNot, a.val)}
}

// BoolValue is the result of a comparison or logical operation, kept
// separate from ArithmeticValue[bool] so If/While condition builders
// have one unambiguous type to accept (spec §4.5's condition operand is
// always bool).
type BoolValue struct {
	fr  *record.FuncRecorder
	val ir.BasicValue
}

// LitBool records an immediate bool literal.
func LitBool(fr *record.FuncRecorder, v bool) BoolValue {
	return BoolValue{fr: fr, val: ir.ImmBool(v)}
}

func (b BoolValue) Value() ir.BasicValue            { return b.val }
func (b BoolValue) recorder() *record.FuncRecorder { return b.fr }

// IRValue adapts b into the ir.Value pair BeginIf/WhileCond expect.
func (b BoolValue) IRValue() ir.Value {
	return ir.Value{Basic: b.val, Type: b.fr.Interner().Builtin(ir.KindBool)}
}

func (b BoolValue) And(o BoolValue) BoolValue {
	return BoolValue{fr: b.fr, val: b.fr.BinaryOp(ir.And, b.val, o.val)}
}
func (b BoolValue) Or(o BoolValue) BoolValue {
	return BoolValue{fr: b.fr, val: b.fr.BinaryOp(ir.Or, b.val, o.val)}
}
func (b BoolValue) Xor(o BoolValue) BoolValue {
	return BoolValue{fr: b.fr, val: b.fr.BinaryOp(ir.Xor, b.val, o.val)}
}
func (b BoolValue) Not() BoolValue {
	return BoolValue{fr: b.fr, val: b.fr.UnaryOp(ir.LogicalNot, b.val)}
}
