package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicValueTypeResolution(t *testing.T) {
	in := NewInterner()

	imm := ImmInt(KindI32, -7)
	require.True(t, imm.IsImmediate)
	assert.Equal(t, in.Builtin(KindI32), imm.Type(in))
	assert.Equal(t, "imm(-7:i32)", imm.String())

	temp := Temp(3, in.Builtin(KindF64))
	assert.False(t, temp.IsImmediate)
	assert.Equal(t, in.Builtin(KindF64), temp.Type(in))
	assert.Equal(t, "t3", temp.String())
}

func TestImmFloatRoundTrips(t *testing.T) {
	v := ImmFloat(KindF32, 3.5)
	assert.Equal(t, "imm(3.5:f32)", v.String())
}

func TestImmBoolString(t *testing.T) {
	assert.Equal(t, "imm(true)", ImmBool(true).String())
	assert.Equal(t, "imm(false)", ImmBool(false).String())
}

func TestImmUintIsUnsigned(t *testing.T) {
	v := ImmUint(KindU8, 200)
	assert.Equal(t, "imm(200:u8)", v.String())
}
