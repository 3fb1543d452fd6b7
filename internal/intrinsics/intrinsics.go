// Package intrinsics holds the fixed table of math functions callable
// from a recorded kernel (spec §6's external math intrinsics surface):
// each name has one or more fixed-arity overloads, and Resolve maps a
// call site's argument kinds to the matching overload's return kind.
//
// DESIGN CHOICE: a flat table of Signature values keyed by name, grounded
// on the teacher's semantic/expressions.go operator-switch style
// generalized from "one operator, a handful of kind cases" to "one name,
// a handful of overloads" — simpler than a type-class or generic-method
// scheme, and matches how the host recorder only ever needs a yes/no
// answer plus a return kind, never a full signature match against
// argument count ambiguity.
package intrinsics

import (
	"fmt"

	"github.com/hassan/cuj/internal/diag"
	"github.com/hassan/cuj/internal/ir"
)

// Signature is one concrete overload of an intrinsic: fixed argument
// kinds and a return kind.
type Signature struct {
	Name    string
	Args    []ir.Kind
	Returns ir.Kind
}

func (s Signature) String() string {
	return fmt.Sprintf("%s(%v) %s", s.Name, s.Args, s.Returns)
}

var floatKinds = []ir.Kind{ir.KindF32, ir.KindF64}
var arithKinds = []ir.Kind{ir.KindF32, ir.KindF64, ir.KindI32, ir.KindI64}

// table maps an intrinsic name to every overload it supports. Built once
// at init time from the unary/binary helper constructors below.
var table = buildTable()

func buildTable() map[string][]Signature {
	t := make(map[string][]Signature)
	unaryFloat := []string{"sqrt", "sin", "cos", "tan", "exp", "log", "floor", "ceil", "round"}
	for _, name := range unaryFloat {
		for _, k := range floatKinds {
			t[name] = append(t[name], Signature{Name: name, Args: []ir.Kind{k}, Returns: k})
		}
	}
	for _, k := range arithKinds {
		t["abs"] = append(t["abs"], Signature{Name: "abs", Args: []ir.Kind{k}, Returns: k})
	}
	binaryFloat := []string{"pow", "atan2", "min", "max"}
	for _, name := range binaryFloat {
		for _, k := range floatKinds {
			t[name] = append(t[name], Signature{Name: name, Args: []ir.Kind{k, k}, Returns: k})
		}
	}
	for _, k := range arithKinds {
		t["min"] = append(t["min"], Signature{Name: "min", Args: []ir.Kind{k, k}, Returns: k})
		t["max"] = append(t["max"], Signature{Name: "max", Args: []ir.Kind{k, k}, Returns: k})
	}
	return t
}

// Names returns the set of known intrinsic names, for diagnostics. The
// order follows map iteration and is not defined.
func Names() []string {
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	return names
}

// Resolve finds the overload of name matching argKinds exactly, panicking
// (spec §7: an unresolvable intrinsic call is a programmer error in the
// recorded kernel, not recoverable control flow) if name is unknown or no
// overload matches the given argument kinds.
func Resolve(name string, argKinds []ir.Kind) Signature {
	overloads, known := table[name]
	if !known {
		diag.Fail(1, "unknown intrinsic %q", name)
	}
	for _, sig := range overloads {
		if kindsEqual(sig.Args, argKinds) {
			return sig
		}
	}
	diag.Fail(1, "intrinsic %q has no overload matching argument kinds %v", name, argKinds)
	panic("unreachable")
}

func kindsEqual(a, b []ir.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
