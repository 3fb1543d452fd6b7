package ir

// Interner hands out stable, structurally-deduplicated Type pointers.
// Two calls describing the same shape (same builtin Kind, same array
// element/length, ...) return the identical pointer, so callers can compare
// types with == as well as Equals.
//
// DESIGN CHOICE: keyed by String() representation rather than a recursive
// structural hash — simpler, and type strings are already unique per shape
// given struct nominal typing.
type Interner struct {
	builtins map[Kind]*BuiltinType
	arrays   map[string]*ArrayType
	pointers map[string]*PointerType
	structs  map[string]*StructType
}

// NewInterner creates an empty interner pre-seeded with nothing; builtins
// are created lazily on first request so an Interner with no types touched
// costs nothing.
func NewInterner() *Interner {
	return &Interner{
		builtins: make(map[Kind]*BuiltinType),
		arrays:   make(map[string]*ArrayType),
		pointers: make(map[string]*PointerType),
		structs:  make(map[string]*StructType),
	}
}

// Builtin returns the interned BuiltinType for k.
func (in *Interner) Builtin(k Kind) *BuiltinType {
	if t, ok := in.builtins[k]; ok {
		return t
	}
	t := &BuiltinType{Kind: k}
	in.builtins[k] = t
	return t
}

// ArrayOf returns the interned array type [length]element.
func (in *Interner) ArrayOf(element Type, length uint64) *ArrayType {
	key := (&ArrayType{Element: element, Length: length}).String()
	if t, ok := in.arrays[key]; ok {
		return t
	}
	t := &ArrayType{Element: element, Length: length}
	in.arrays[key] = t
	return t
}

// PointerTo returns the interned pointer-to-pointee type.
func (in *Interner) PointerTo(pointee Type) *PointerType {
	key := "*" + pointee.String()
	if t, ok := in.pointers[key]; ok {
		return t
	}
	t := &PointerType{Pointee: pointee}
	in.pointers[key] = t
	return t
}

// Struct returns the interned named struct type, creating it on first
// access (spec §4.1: "get_type<T>() ... creating and caching the struct
// type on first access"). Re-requesting the same name returns the
// originally cached fields even if a different fields slice is passed —
// callers must define a given struct name's shape once.
func (in *Interner) Struct(name string, fields []StructField) *StructType {
	if t, ok := in.structs[name]; ok {
		return t
	}
	t := &StructType{Name: name, Fields: fields}
	in.structs[name] = t
	return t
}
