package expr

import (
	"github.com/hassan/cuj/internal/diag"
	"github.com/hassan/cuj/internal/ir"
	"github.com/hassan/cuj/internal/record"
)

// ClassValue is a recorded struct value's address (spec §4.1's "get_type
// <T>() creating and caching the struct type on first access"). It is
// intentionally not generic over its field types — a struct typically
// mixes kinds across fields, and Go cannot express "the type of field
// named x" as a type parameter — so field access goes through the free
// functions Field/SetField instead of a generic method.
type ClassValue struct {
	fr         *record.FuncRecorder
	base       ir.BasicValue
	structType *ir.StructType
}

// NewClass interns a named struct type from fields (caching it on first
// use per name) and allocates one instance on the stack.
func NewClass(fr *record.FuncRecorder, name string, fields []ir.StructField) ClassValue {
	st := fr.Interner().Struct(name, fields)
	return ClassValue{fr: fr, base: fr.Alloc(st, name), structType: st}
}

// WrapClass adapts an already-recorded usize address known to hold a
// value of structType.
func WrapClass(fr *record.FuncRecorder, structType *ir.StructType, addr ir.BasicValue) ClassValue {
	return ClassValue{fr: fr, base: addr, structType: structType}
}

// StructType returns the interned type backing c.
func (c ClassValue) StructType() *ir.StructType { return c.structType }

// Field loads field name of c as an ArithmeticValue[F], panicking if the
// field does not exist or its declared kind does not match F.
func Field[F Scalar](c ClassValue, name string) ArithmeticValue[F] {
	idx, fieldType := c.lookupField(name)
	wantKind := kindOf[F]()
	if bt, ok := fieldType.(*ir.BuiltinType); !ok || bt.Kind != wantKind {
		diag.Fail(1, "field %s.%s has type %s, not %s", c.structType.Name, name, fieldType, wantKind)
	}
	addr := c.fr.MemberPtr(c.structType, c.base, idx)
	return ArithmeticValue[F]{fr: c.fr, val: c.fr.Load(addr, fieldType)}
}

// SetField stores v into field name of c.
func SetField[F Scalar](c ClassValue, name string, v ArithmeticValue[F]) {
	idx, fieldType := c.lookupField(name)
	wantKind := kindOf[F]()
	if bt, ok := fieldType.(*ir.BuiltinType); !ok || bt.Kind != wantKind {
		diag.Fail(1, "field %s.%s has type %s, not %s", c.structType.Name, name, fieldType, wantKind)
	}
	addr := c.fr.MemberPtr(c.structType, c.base, idx)
	c.fr.Store(addr, v.val)
}

func (c ClassValue) lookupField(name string) (int, ir.Type) {
	idx := c.structType.FieldIndex(name)
	if idx < 0 {
		diag.Fail(2, "struct %s has no field %s", c.structType.Name, name)
	}
	return idx, c.structType.Fields[idx].Type
}
