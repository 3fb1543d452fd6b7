// Package promote implements the arithmetic promotion and cast-insertion
// rules of spec §4.3: given the operand types of a binary or unary
// operator, decide the common operand type (if any) and the operator's
// result type, so the record package can insert explicit ir.Cast ops
// around operands that don't already match.
//
// DESIGN CHOICE: grounded on the teacher's semantic/expressions.go
// operator-kind-switch style, but where the teacher's type checker
// *rejects* mismatched operand types with a diagnostic, this package's
// job is the opposite — an EDSL recorder has no separate type-checking
// pass, so operand mismatches are resolved by picking a winner and
// casting the loser, the way C's usual arithmetic conversions do, rather
// than reported as an error.
package promote

import (
	"fmt"

	"github.com/hassan/cuj/internal/diag"
	"github.com/hassan/cuj/internal/ir"
)

// Plan describes how to evaluate a binary operator over two possibly
// differently-kinded arithmetic operands.
type Plan struct {
	// OperandKind is the kind both operands must be cast to before the
	// operator applies (spec §4.3's "insert explicit Cast ops").
	OperandKind ir.Kind
	// ResultKind is the kind of the operator's own result: OperandKind for
	// arithmetic and bitwise operators, KindBool for comparisons.
	ResultKind ir.Kind
	CastLhs    bool
	CastRhs    bool
}

// BinaryPlan computes the Plan for applying kind k to operands of kind
// lhs and rhs. Logical operators (And/Or/Xor) cast both operands to bool
// and yield ResultKind KindBool (spec §4.3's "Logical ops ... both
// operands are cast to bool first", and the original's gen_ir casting
// both sides of And/Or/XOr via gen_arithmetic_cast<_, bool>). Comparison
// operators (Eq/Ne/Lt/Le/Gt/Ge) also yield ResultKind KindBool, but over
// the operands' own common arithmetic type. Every other operator's
// ResultKind equals OperandKind. Shift operators are handled separately
// by ShiftResultKind, since their operands are never promoted to a
// common type.
//
// Fails (panics via diag.Fail) if an arithmetic or comparison operator is
// given a non-arithmetic operand, or a logical operator is given an
// operand that cannot cast to bool — both are programmer errors the
// façade in internal/expr is responsible for never producing from
// well-typed Go call sites.
func BinaryPlan(k ir.BinaryOpKind, lhs, rhs ir.Kind) Plan {
	if k.IsShift() {
		diag.Fail(1, "BinaryPlan called with shift operator %s; use ShiftResultKind instead", k)
	}
	if k.IsLogical() {
		if (!lhs.IsArithmetic() && lhs != ir.KindBool) || (!rhs.IsArithmetic() && rhs != ir.KindBool) {
			diag.Fail(1, "operator %s requires bool or arithmetic operands, got %s and %s", k, lhs, rhs)
		}
		return Plan{
			OperandKind: ir.KindBool,
			ResultKind:  ir.KindBool,
			CastLhs:     lhs != ir.KindBool,
			CastRhs:     rhs != ir.KindBool,
		}
	}
	if !lhs.IsArithmetic() || !rhs.IsArithmetic() {
		diag.Fail(1, "operator %s requires arithmetic operands, got %s and %s", k, lhs, rhs)
	}

	common := CommonKind(lhs, rhs)
	result := common
	if k.IsComparison() {
		result = ir.KindBool
	}
	return Plan{
		OperandKind: common,
		ResultKind:  result,
		CastLhs:     lhs != common,
		CastRhs:     rhs != common,
	}
}

// ShiftResultKind returns the result kind of a shift expression, which is
// always the (unpromoted) left operand's kind — spec §4.3: "the right
// operand's width never affects the result type". The record package
// emits ir.Shr as a plain BinaryOp with no arithmetic/logical flag; the
// direction follows the result kind's IsSigned() for whoever consumes it.
func ShiftResultKind(lhs ir.Kind) ir.Kind {
	if !lhs.IsInteger() {
		diag.Fail(1, "shift requires an integer left operand, got %s", lhs)
	}
	return lhs
}

// UnaryPlan computes the result kind of applying k to an operand of kind
// operand. Neg and BitNot preserve the operand kind; Not/LogicalNot
// always yield bool and require a bool operand.
func UnaryPlan(k ir.UnaryOpKind, operand ir.Kind) ir.Kind {
	switch k {
	case ir.Neg:
		if !operand.IsArithmetic() {
			diag.Fail(1, "unary - requires an arithmetic operand, got %s", operand)
		}
		return operand
	case ir.BitNot:
		if !operand.IsInteger() {
			diag.Fail(1, "unary ~ requires an integer operand, got %s", operand)
		}
		return operand
	case ir.Not, ir.LogicalNot:
		if operand != ir.KindBool {
			diag.Fail(1, "unary ! requires a bool operand, got %s", operand)
		}
		return ir.KindBool
	default:
		diag.Fail(1, "unknown unary operator kind %d", int(k))
		panic("unreachable")
	}
}

// CommonKind resolves the usual-arithmetic-conversions winner between two
// arithmetic kinds (spec §4.3):
//
//  1. identical kinds need no promotion.
//  2. if either operand is floating point, the wider of the two floating
//     kinds wins (an integer operand is always promoted to the other's
//     float kind, and between two floats f64 beats f32).
//  3. otherwise both are integers: the operand with the strictly greater
//     rank wins, keeping its own signedness; at equal rank, the unsigned
//     kind wins (matching C's usual arithmetic conversions for same-width
//     mixed-sign operands).
func CommonKind(a, b ir.Kind) ir.Kind {
	if a == b {
		return a
	}
	if a.IsFloat() || b.IsFloat() {
		return commonFloatKind(a, b)
	}
	return commonIntKind(a, b)
}

func commonFloatKind(a, b ir.Kind) ir.Kind {
	af, bf := floatRank(a), floatRank(b)
	if af >= bf {
		if a.IsFloat() {
			return a
		}
		return b // a is int but ranked no lower: b must be the float
	}
	return b
}

// floatRank ranks a kind for float-vs-float and float-vs-int comparisons:
// f64 outranks f32 outranks every integer kind (so any integer mixed with
// any float promotes to that float).
func floatRank(k ir.Kind) int {
	switch k {
	case ir.KindF64:
		return 2
	case ir.KindF32:
		return 1
	default:
		return 0
	}
}

func commonIntKind(a, b ir.Kind) ir.Kind {
	ra, rb := ir.Rank(a), ir.Rank(b)
	switch {
	case ra > rb:
		return a
	case rb > ra:
		return b
	default: // same rank, different signedness
		return unsignedOf(a)
	}
}

func unsignedOf(k ir.Kind) ir.Kind {
	switch k {
	case ir.KindI8, ir.KindU8:
		return ir.KindU8
	case ir.KindI16, ir.KindU16:
		return ir.KindU16
	case ir.KindI32, ir.KindU32:
		return ir.KindU32
	case ir.KindI64, ir.KindU64:
		return ir.KindU64
	default:
		diag.Fail(1, "unsignedOf called with non-integer kind %s", k)
		panic("unreachable")
	}
}

// Cast returns the *ir.Cast op needed to bring v from its current type to
// target, inserting an explicit ir.Cast op unless the kinds already
// match. The caller (internal/record) is responsible for turning the
// returned Op into an Assign with a freshly allocated temp id; Cast
// itself never mutates recorder state.
//
// Returns ok=false when v is already of kind target, signaling the
// caller should use v unchanged rather than emit a no-op cast (spec
// §4.3 invariant: a Cast op's From and To are always distinct).
func Cast(in *ir.Interner, v ir.BasicValue, target ir.Kind) (op *ir.Cast, ok bool) {
	cur := v.Type(in)
	bt, isBuiltin := cur.(*ir.BuiltinType)
	if !isBuiltin {
		diag.Fail(1, "cannot cast non-scalar type %s", cur)
	}
	if bt.Kind == target {
		return nil, false
	}
	return &ir.Cast{From: cur, To: in.Builtin(target), Operand: v}, true
}

// String is a convenience for error messages embedding a Plan.
func (p Plan) String() string {
	return fmt.Sprintf("operand=%s result=%s castLhs=%t castRhs=%t", p.OperandKind, p.ResultKind, p.CastLhs, p.CastRhs)
}
