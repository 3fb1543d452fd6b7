// Package expr is the host-facing expression façade (spec §3's
// "Expression-graph layer", §4.2): typed wrappers that read like ordinary
// Go values but, every time a method is called, record an IR operation
// into a *record.FuncRecorder instead of computing anything themselves.
//
// DESIGN CHOICE: the spec's original operand algebra relies on operator
// overloading that Go does not have. The same-kind fast path is modeled
// with a generic ArithmeticValue[T Scalar] so most kernel code reads as
// a.Add(b) with T inferred and checked at the host's compile time; the
// cross-kind path of spec scenario S2 (an i32 mixed with an i64) cannot
// be expressed as a generic method — Go forbids a method from
// introducing a new type parameter — so it goes through the free
// functions BinaryAny and As[T] instead, trading a little of the
// same-kind path's compile-time safety for the ability to mix kinds at
// all.
package expr

import (
	"github.com/hassan/cuj/internal/diag"
	"github.com/hassan/cuj/internal/ir"
	"github.com/hassan/cuj/internal/record"
)

// Scalar is the set of host Go types that back an ArithmeticValue. The
// approximation elements (~int8, and so on) let a named scalar type
// satisfy the constraint, but kindOf and immediateOf recognize only the
// plain predeclared types by dynamic type switch: `any(zero)` keeps the
// named type as its dynamic type, so recording with a named type fails
// with an "unsupported scalar type" panic.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool
}

// kindOf maps a Scalar type parameter to its ir.Kind. Go has no generic
// method for "the Kind of T" beyond this any()-conversion type switch,
// since type parameters cannot be compared to concrete types directly.
func kindOf[T Scalar]() ir.Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return ir.KindI8
	case int16:
		return ir.KindI16
	case int32:
		return ir.KindI32
	case int64:
		return ir.KindI64
	case uint8:
		return ir.KindU8
	case uint16:
		return ir.KindU16
	case uint32:
		return ir.KindU32
	case uint64:
		return ir.KindU64
	case float32:
		return ir.KindF32
	case float64:
		return ir.KindF64
	case bool:
		return ir.KindBool
	default:
		diag.Fail(1, "unsupported scalar type for T")
		panic("unreachable")
	}
}

// immediateOf converts a host literal of type T into an ir.BasicValue
// immediate of the matching kind.
func immediateOf[T Scalar](v T) ir.BasicValue {
	k := kindOf[T]()
	switch x := any(v).(type) {
	case int8:
		return ir.ImmInt(k, int64(x))
	case int16:
		return ir.ImmInt(k, int64(x))
	case int32:
		return ir.ImmInt(k, int64(x))
	case int64:
		return ir.ImmInt(k, x)
	case uint8:
		return ir.ImmUint(k, uint64(x))
	case uint16:
		return ir.ImmUint(k, uint64(x))
	case uint32:
		return ir.ImmUint(k, uint64(x))
	case uint64:
		return ir.ImmUint(k, x)
	case float32:
		return ir.ImmFloat(k, float64(x))
	case float64:
		return ir.ImmFloat(k, x)
	case bool:
		return ir.ImmBool(x)
	default:
		diag.Fail(1, "unsupported scalar type for T")
		panic("unreachable")
	}
}

// Arithmetic is implemented by every wrapper that carries a single
// recorded scalar value, regardless of its static Go type. It exists
// purely so BinaryAny and As[T] can operate across ArithmeticValue[T]
// instantiations that Go's type system otherwise keeps fully apart.
type Arithmetic interface {
	Value() ir.BasicValue
	recorder() *record.FuncRecorder
}

// Dynamic wraps a BasicValue whose kind is only known at recording time,
// the result of a cross-kind operation via BinaryAny. Use As[T] to bring
// it back into the statically-typed ArithmeticValue[T] world.
type Dynamic struct {
	fr  *record.FuncRecorder
	val ir.BasicValue
}

func (d Dynamic) Value() ir.BasicValue            { return d.val }
func (d Dynamic) recorder() *record.FuncRecorder { return d.fr }

// BinaryAny applies kind to two Arithmetic operands of possibly
// different kinds, following internal/promote's usual-arithmetic-
// conversions rule (spec §4.3, scenario S2). The two operands must share
// the same recorder.
func BinaryAny(kind ir.BinaryOpKind, a, b Arithmetic) Dynamic {
	fr := a.recorder()
	if fr != b.recorder() {
		diag.Fail(1, "mixed-kind operands recorded against different FuncRecorders")
	}
	return Dynamic{fr: fr, val: fr.BinaryOp(kind, a.Value(), b.Value())}
}

// As brings a dynamically-kinded Arithmetic value back into a statically
// typed ArithmeticValue[T], inserting an explicit cast if v's recorded
// kind does not already match T.
func As[T Scalar](v Arithmetic) ArithmeticValue[T] {
	fr := v.recorder()
	target := kindOf[T]()
	casted := fr.Cast(v.Value(), target)
	return ArithmeticValue[T]{fr: fr, val: casted}
}
