package ir

import "fmt"

// Verify mechanically checks every finalized function against the
// structural invariants of spec §8 (1-6): single-definition temps bound
// by a function's declared NextTempID, balanced loop nesting for
// Break/Continue targets, AllocAddress referencing a declared alloc,
// Store/Load addresses always being usize, no Cast between identical
// types, arithmetic BinaryOp operands matching the result type, and bool
// operands for And/Or/Xor. It never mutates the program and
// never panics; violations are returned as a slice, following the
// teacher's Module.Verify() shape rather than a single fail-fast error,
// since a misbuilt program is usually wrong in more than one place at
// once and a caller benefits from seeing all of them.
func (p *Program) Verify() []error {
	var errs []error
	for _, fn := range p.Functions {
		errs = append(errs, fn.verify()...)
	}
	return errs
}

func (fn *Function) verify() []error {
	v := &verifier{fn: fn, defined: make(map[uint32]bool)}
	for _, idx := range fn.Args {
		if idx < 0 || idx >= len(fn.Allocs) {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: arg references alloc index %d out of range (%d allocs)",
				fn.Name, idx, len(fn.Allocs)))
		}
	}
	v.walkBlock(fn.Body, 0)
	if len(v.defined) > 0 && v.maxTemp >= fn.NextTempID {
		v.errs = append(v.errs, fmt.Errorf(
			"function %s: temp t%d used but NextTempID is only %d",
			fn.Name, v.maxTemp, fn.NextTempID))
	}
	// Invariant 1's other half: every temp id in [0, NextTempID) must be
	// the LHS of exactly one Assign — not just "no id exceeds NextTempID",
	// but no id within range is left undefined either.
	for id := uint32(0); id < fn.NextTempID; id++ {
		if !v.defined[id] {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: t%d is never defined by an Assign", fn.Name, id))
		}
	}
	return v.errs
}

type verifier struct {
	fn      *Function
	defined map[uint32]bool
	maxTemp uint32
	errs    []error
}

func (v *verifier) walkBlock(b *Block, loopDepth int) {
	if b == nil {
		return
	}
	for _, s := range b.Statements {
		v.walkStatement(s, loopDepth)
	}
}

func (v *verifier) walkStatement(s Statement, loopDepth int) {
	switch st := s.(type) {
	case *Assign:
		if v.defined[st.TempID] {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: t%d redefined", v.fn.Name, st.TempID))
		}
		v.defined[st.TempID] = true
		if st.TempID > v.maxTemp {
			v.maxTemp = st.TempID
		}
		v.checkOp(st.Rhs)

	case *ExprStmt:
		v.checkOp(st.Op)

	case *Store:
		if !isUsize(st.Addr) {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: store address %s is not usize", v.fn.Name, st.Addr))
		}

	case *Break:
		if st.LoopDepth < 0 || st.LoopDepth >= loopDepth {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: break(%d) outside of enclosing loop nesting (depth %d)",
				v.fn.Name, st.LoopDepth, loopDepth))
		}

	case *Continue:
		if st.LoopDepth < 0 || st.LoopDepth >= loopDepth {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: continue(%d) outside of enclosing loop nesting (depth %d)",
				v.fn.Name, st.LoopDepth, loopDepth))
		}

	case *Block:
		v.walkBlock(st, loopDepth)

	case *If:
		v.walkBlock(st.Then, loopDepth)
		v.walkBlock(st.Else, loopDepth)

	case *While:
		v.walkBlock(st.CondBlock, loopDepth)
		v.walkBlock(st.Body, loopDepth+1)

	default:
		v.errs = append(v.errs, fmt.Errorf(
			"function %s: unknown statement kind %T", v.fn.Name, s))
	}
}

func (v *verifier) checkOp(op Op) {
	switch o := op.(type) {
	case *Load:
		if !isUsize(o.Addr) {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: load address %s is not usize", v.fn.Name, o.Addr))
		}
	case *Cast:
		if o.From != nil && o.To != nil && o.From.Equals(o.To) {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: cast from %s to itself (invariant 3)", v.fn.Name, o.From))
		}
	case *BinaryOp:
		if o.Kind.IsArithmetic() {
			rt, rtOk := o.ResultType.(*BuiltinType)
			lhsKind, lhsOk := scalarKindOf(o.Lhs)
			rhsKind, rhsOk := scalarKindOf(o.Rhs)
			if !rtOk || !lhsOk || !rhsOk || lhsKind != rt.Kind || rhsKind != rt.Kind {
				v.errs = append(v.errs, fmt.Errorf(
					"function %s: %s operands must both have the result type %s (invariant 4), got %s and %s",
					v.fn.Name, o.Kind, o.ResultType, o.Lhs, o.Rhs))
			}
		}
		if o.Kind.IsLogical() {
			lhsKind, lhsOk := scalarKindOf(o.Lhs)
			rhsKind, rhsOk := scalarKindOf(o.Rhs)
			if !lhsOk || lhsKind != KindBool || !rhsOk || rhsKind != KindBool {
				v.errs = append(v.errs, fmt.Errorf(
					"function %s: %s operands must both be bool (invariant 5), got %s and %s",
					v.fn.Name, o.Kind, o.Lhs, o.Rhs))
			}
		}
	case *AllocAddress:
		if o.AllocIndex < 0 || o.AllocIndex >= len(v.fn.Allocs) {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: alloc_address(%d) out of range (%d allocs)",
				v.fn.Name, o.AllocIndex, len(v.fn.Allocs)))
		}
	case *MemberPtr:
		st, ok := o.StructType.(*StructType)
		if !ok {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: member_ptr on non-struct type %s", v.fn.Name, o.StructType))
			return
		}
		if o.FieldIndex < 0 || o.FieldIndex >= len(st.Fields) {
			v.errs = append(v.errs, fmt.Errorf(
				"function %s: member_ptr field index %d out of range for %s",
				v.fn.Name, o.FieldIndex, st.Name))
		}
	}
}

// isUsize reports whether v carries the canonical address type. Temps
// carry their TempType; immediates carry ImmKind.
func isUsize(v BasicValue) bool {
	if v.IsImmediate {
		return v.ImmKind == Usize
	}
	bt, ok := v.TempType.(*BuiltinType)
	return ok && bt.Kind == Usize
}

// scalarKindOf extracts v's builtin Kind without needing an Interner:
// immediates carry ImmKind directly, and temps carry their own TempType.
func scalarKindOf(v BasicValue) (Kind, bool) {
	if v.IsImmediate {
		return v.ImmKind, true
	}
	bt, ok := v.TempType.(*BuiltinType)
	if !ok {
		return KindInvalid, false
	}
	return bt.Kind, true
}
