// Package ir implements the intermediate representation the recorder emits
// into: types, values, statements, functions and programs (spec §3 "IR
// layer"). It is pure data — no behavior beyond construction, printing,
// the structural invariant checks in verify.go and the explicitly invoked
// TrimUnreachable pass in trim.go.
//
// DESIGN CHOICE: like the teacher's semantic/types package, Type is an
// interface implemented by a handful of concrete structs rather than a
// single struct with a discriminant field, so each kind carries only the
// fields it needs and pattern matching happens via type switches.
package ir

import (
	"fmt"
	"strings"
)

// Kind is the tag of a builtin scalar type.
type Kind int

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindI8
	KindI16
	KindI32
	KindI64
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindF64
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	default:
		return "<invalid>"
	}
}

// IsInteger reports whether k is one of the signed or unsigned integer kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64, KindU8, KindU16, KindU32, KindU64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k is f32 or f64.
func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// IsSigned reports whether k is a signed integer kind. Unsigned and
// floating-point kinds both report false; callers that care about float
// sign should check IsFloat separately.
func (k Kind) IsSigned() bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64:
		return true
	default:
		return false
	}
}

// IsArithmetic reports whether values of this kind participate in the
// arithmetic promotion rules of spec §4.3 (everything but bool and void).
func (k Kind) IsArithmetic() bool {
	return k.IsInteger() || k.IsFloat()
}

// rank orders integer kinds by width for promotion purposes (spec §4.3,
// "wider rank wins"). Floats are handled separately in the promote package.
func (k Kind) rank() int {
	switch k {
	case KindI8, KindU8:
		return 1
	case KindI16, KindU16:
		return 2
	case KindI32, KindU32:
		return 3
	case KindI64, KindU64:
		return 4
	default:
		return 0
	}
}

// Rank exposes rank() to the promote package without making it part of the
// Kind's exported vocabulary used by backends.
func Rank(k Kind) int { return k.rank() }

// Type is implemented by every IR type. Types are interned by structural
// identity (see Interner) and handed out as stable pointers.
type Type interface {
	String() string
	Equals(other Type) bool
	TypeKind() typeTag
}

// typeTag distinguishes the structural shape of a Type (builtin vs
// composite) independent of Kind, which only makes sense for builtins.
type typeTag int

const (
	tagBuiltin typeTag = iota
	tagArray
	tagPointer
	tagStruct
)

// BuiltinType wraps a single scalar Kind.
type BuiltinType struct {
	Kind Kind
}

func (t *BuiltinType) String() string { return t.Kind.String() }
func (t *BuiltinType) Equals(other Type) bool {
	o, ok := other.(*BuiltinType)
	return ok && o.Kind == t.Kind
}
func (t *BuiltinType) TypeKind() typeTag { return tagBuiltin }

// ArrayType is a fixed-length homogeneous sequence.
type ArrayType struct {
	Element Type
	Length  uint64
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("[%d]%s", t.Length, t.Element.String())
}
func (t *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && o.Length == t.Length && o.Element.Equals(t.Element)
}
func (t *ArrayType) TypeKind() typeTag { return tagArray }

// PointerType addresses a value of the pointee type.
type PointerType struct {
	Pointee Type
}

func (t *PointerType) String() string { return "*" + t.Pointee.String() }
func (t *PointerType) Equals(other Type) bool {
	o, ok := other.(*PointerType)
	return ok && o.Pointee.Equals(t.Pointee)
}
func (t *PointerType) TypeKind() typeTag { return tagPointer }

// StructField is one ordered member of a StructType.
type StructField struct {
	Name string
	Type Type
}

// StructType is a named aggregate with ordered fields (nominal typing:
// two structs with identical fields but different names are distinct,
// matching the teacher's semantic/types.StructType).
type StructType struct {
	Name   string
	Fields []StructField
}

func (t *StructType) String() string {
	if t.Name != "" {
		return "struct " + t.Name
	}
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Name + " " + f.Type.String()
	}
	return "struct {" + strings.Join(parts, "; ") + "}"
}
func (t *StructType) Equals(other Type) bool {
	o, ok := other.(*StructType)
	if !ok {
		return false
	}
	if t.Name != "" || o.Name != "" {
		return t.Name == o.Name
	}
	if len(t.Fields) != len(o.Fields) {
		return false
	}
	for i, f := range t.Fields {
		if f.Name != o.Fields[i].Name || !f.Type.Equals(o.Fields[i].Type) {
			return false
		}
	}
	return true
}
func (t *StructType) TypeKind() typeTag { return tagStruct }

// FieldIndex returns the 0-based position of name in the struct, or -1.
func (t *StructType) FieldIndex(name string) int {
	for i, f := range t.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Usize is the canonical pointer-sized integer kind used for addresses
// (spec §3: "an address expression of type usize"). The IR has no distinct
// usize Kind of its own — it reuses U64, matching how PointerOffset and
// Load address operands are typed throughout this implementation.
const Usize = KindU64
