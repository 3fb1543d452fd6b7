package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryOpKindClassification(t *testing.T) {
	assert.True(t, Add.IsArithmetic())
	assert.False(t, Add.IsComparison())
	assert.True(t, Eq.IsComparison())
	assert.True(t, Shl.IsShift())
	assert.False(t, Shl.IsArithmetic())
}

func TestOpStringForms(t *testing.T) {
	in := NewInterner()
	i32 := in.Builtin(KindI32)

	bin := &BinaryOp{Kind: Add, Lhs: ImmInt(KindI32, 1), Rhs: ImmInt(KindI32, 2), ResultType: i32}
	assert.Equal(t, "imm(1:i32) + imm(2:i32) : i32", bin.String())

	un := &UnaryOp{Kind: Neg, Operand: ImmInt(KindI32, 5), ResultType: i32}
	assert.Equal(t, "-imm(5:i32) : i32", un.String())

	cast := &Cast{From: i32, To: in.Builtin(KindF64), Operand: ImmInt(KindI32, 5)}
	assert.Equal(t, "cast<f64>(imm(5:i32)) : i32", cast.String())

	alloc := &AllocAddress{AllocIndex: 2}
	assert.Equal(t, "alloc_address(2)", alloc.String())
}

func TestPointerOffsetAndMemberPtrStrings(t *testing.T) {
	in := NewInterner()
	i32 := in.Builtin(KindI32)
	usizeT := in.Builtin(Usize)

	off := &PointerOffset{PointeeType: i32, Base: Temp(0, usizeT), Index: ImmInt(KindI64, 3)}
	assert.Equal(t, "t0 + imm(3:i64)*sizeof(i32)", off.String())

	st := in.Struct("Vec2", []StructField{{Name: "x", Type: i32}, {Name: "y", Type: i32}})
	mp := &MemberPtr{StructType: st, Base: Temp(1, usizeT), FieldIndex: 1}
	assert.Equal(t, "&t1.field1", mp.String())
}

func TestCallString(t *testing.T) {
	in := NewInterner()
	f32 := in.Builtin(KindF32)
	call := &Call{Name: "sqrt", Args: []BasicValue{ImmFloat(KindF32, 4)}, RetType: f32}
	assert.Contains(t, call.String(), "call sqrt(")
	assert.Contains(t, call.String(), ": f32")
}
