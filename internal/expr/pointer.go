package expr

import (
	"github.com/hassan/cuj/internal/diag"
	"github.com/hassan/cuj/internal/ir"
	"github.com/hassan/cuj/internal/record"
)

// Pointer is a recorded address known to point at a value of type T
// (spec §4.4's place semantics: a Pointer is always a place, and Load
// produces the rvalue). Indexing and arithmetic on a Pointer walk the
// address space via record.PointerOffset rather than touching host Go
// memory.
type Pointer[T Scalar] struct {
	fr   *record.FuncRecorder
	addr ir.BasicValue
}

// AllocPointer reserves a new stack slot holding one T and returns a
// Pointer to it.
func AllocPointer[T Scalar](fr *record.FuncRecorder, name string) Pointer[T] {
	t := fr.Interner().Builtin(kindOf[T]())
	return Pointer[T]{fr: fr, addr: fr.Alloc(t, name)}
}

// Param declares a new function parameter of type T (spec §4.1's
// create_arg<T>) and returns a Pointer to its stack slot, the same shape
// AllocPointer returns for an ordinary local. The host calls this once per
// parameter while recording a function's body, not at NewFunction time —
// an argument's slot is structurally identical to AllocPointer's direct
// case, it just also gets listed in the function's Args.
func Param[T Scalar](fr *record.FuncRecorder, name string) Pointer[T] {
	t := fr.Interner().Builtin(kindOf[T]())
	return Pointer[T]{fr: fr, addr: fr.Arg(t, name)}
}

// WrapPointer adapts an already-recorded usize address into a typed
// Pointer; callers must ensure addr really addresses a T.
func WrapPointer[T Scalar](fr *record.FuncRecorder, addr ir.BasicValue) Pointer[T] {
	return Pointer[T]{fr: fr, addr: addr}
}

// Addr returns the underlying usize address value.
func (p Pointer[T]) Addr() ir.BasicValue { return p.addr }

// Load dereferences p (spec §4.4's implicit place-to-rvalue conversion).
func (p Pointer[T]) Load() ArithmeticValue[T] {
	t := p.fr.Interner().Builtin(kindOf[T]())
	return ArithmeticValue[T]{fr: p.fr, val: p.fr.Load(p.addr, t)}
}

// Store writes v through p.
func (p Pointer[T]) Store(v ArithmeticValue[T]) {
	p.fr.Store(p.addr, v.val)
}

// Offset returns a new Pointer index elements further along (spec §3's
// PointerOffset op, "Base + Index*sizeof(PointeeType)").
func (p Pointer[T]) Offset(index ArithmeticValue[int64]) Pointer[T] {
	pointee := p.fr.Interner().Builtin(kindOf[T]())
	addr := p.fr.PointerOffset(pointee, p.addr, index.val)
	return Pointer[T]{fr: p.fr, addr: addr}
}

// Array is a fixed-length sequence of T allocated as one stack slot
// (spec §4.1). Its length lives in a runtime field rather than a type
// parameter: Go generics have no way to parameterize a type by a
// constant integer, so two arrays of different lengths are simply two
// values of the same Array[T] type instead of two distinct types the way
// the original host language could express them.
type Array[T Scalar] struct {
	fr     *record.FuncRecorder
	base   ir.BasicValue
	length uint64
}

// NewArray allocates a [length]T on the recording function's stack.
func NewArray[T Scalar](fr *record.FuncRecorder, length uint64, name string) Array[T] {
	elem := fr.Interner().Builtin(kindOf[T]())
	arrType := fr.Interner().ArrayOf(elem, length)
	return Array[T]{fr: fr, base: fr.Alloc(arrType, name), length: length}
}

// Len returns the array's fixed length.
func (a Array[T]) Len() uint64 { return a.length }

// At returns a Pointer to element index, unchecked against Len when
// index is not a compile-time-known immediate — spec §4.1 places bounds
// checking for non-constant indices out of scope for the recorder
// itself (it is a backend/codegen concern).
func (a Array[T]) At(index ArithmeticValue[int64]) Pointer[T] {
	if imm := index.val; imm.IsImmediate && imm.ImmBits >= a.length {
		diag.Fail(1, "array index %d out of bounds for length %d", int64(imm.ImmBits), a.length)
	}
	pointee := a.fr.Interner().Builtin(kindOf[T]())
	addr := a.fr.PointerOffset(pointee, a.base, index.val)
	return Pointer[T]{fr: a.fr, addr: addr}
}

// PointerVar is a declared `Pointer<T> p;` variable (spec scenario S4): a
// stack slot of its own whose *contents* are a usize address, as opposed
// to Pointer[T] (which already is that address). The original's
// alloc_stack_var<T>(is_pointer<T>) branch gives a pointer-typed variable
// this extra indirection, distinct from AllocPointer's arithmetic/array
// case: consuming p means loading the address out of its slot first, then
// operating on the loaded value, matching S4's "Load p → t0:usize" step.
type PointerVar[T Scalar] struct {
	fr   *record.FuncRecorder
	slot ir.BasicValue
}

// AllocPointerVar reserves a stack slot holding a usize pointer value and
// returns the declared variable backed by it.
func AllocPointerVar[T Scalar](fr *record.FuncRecorder, name string) PointerVar[T] {
	usizeT := fr.Interner().Builtin(ir.Usize)
	return PointerVar[T]{fr: fr, slot: fr.Alloc(usizeT, name)}
}

// SlotAddr returns the address of the variable's own slot (the place that
// holds the pointer value, not the place the pointer value points to).
func (p PointerVar[T]) SlotAddr() ir.BasicValue { return p.slot }

// Load materializes the address currently stored in p's slot and wraps it
// as a Pointer[T] rvalue, ready for Offset/Load/Store against the pointee.
func (p PointerVar[T]) Load() Pointer[T] {
	usizeT := p.fr.Interner().Builtin(ir.Usize)
	addr := p.fr.Load(p.slot, usizeT)
	return Pointer[T]{fr: p.fr, addr: addr}
}

// Store rebinds p to point at v's address.
func (p PointerVar[T]) Store(v Pointer[T]) {
	p.fr.Store(p.slot, v.addr)
}
