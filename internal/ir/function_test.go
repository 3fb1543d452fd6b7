package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramAddAndLookup(t *testing.T) {
	p := NewProgram()
	i32 := p.Types.Builtin(KindI32)
	fn := &Function{Name: "square", Allocs: []Alloc{{Type: i32, Name: "n"}}, Args: []int{0}, Body: &Block{}}
	p.AddFunction(fn)

	found := p.Lookup("square")
	require.NotNil(t, found)
	assert.Same(t, fn, found)
	assert.Nil(t, p.Lookup("missing"))
}

func TestFunctionStringIncludesNameParamsAndLocals(t *testing.T) {
	in := NewInterner()
	i32 := in.Builtin(KindI32)
	fn := &Function{
		Name: "add",
		Allocs: []Alloc{
			{Type: i32, Name: "a"},
			{Type: i32, Name: "b"},
			{Type: i32, Name: "tmp"},
		},
		Args: []int{0, 1},
		Body: &Block{Statements: []Statement{
			&Assign{TempID: 0, Type: i32, Rhs: &BinaryOp{Kind: Add, Lhs: ImmInt(KindI32, 1), Rhs: ImmInt(KindI32, 2), ResultType: i32}},
		}},
	}
	s := fn.String()
	assert.Contains(t, s, "func(default) add(a i32, b i32)")
	assert.Contains(t, s, "alloc2 tmp i32")
	assert.Contains(t, s, "t0 = imm(1:i32) + imm(2:i32) : i32")
}

func TestBlockAndIfString(t *testing.T) {
	in := NewInterner()
	cond := Value{Basic: ImmBool(true), Type: in.Builtin(KindBool)}
	ifStmt := &If{
		Cond: cond,
		Then: &Block{Statements: []Statement{&Break{LoopDepth: 0}}},
		Else: &Block{Statements: []Statement{&Continue{LoopDepth: 0}}},
	}
	s := ifStmt.String()
	assert.Contains(t, s, "if imm(true)")
	assert.Contains(t, s, "break(0)")
	assert.Contains(t, s, "continue(0)")
}
