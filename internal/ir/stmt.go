package ir

import (
	"fmt"
	"strings"
)

// Statement is one entry in a Block (spec §3's statement kinds: Store,
// Assign, Break, Continue, Block, If, While). A statement never has a
// result value itself; Assign is the only kind that defines a temp.
type Statement interface {
	String() string
	stmt()
}

// Assign defines TempID := Rhs. Every temp has exactly one Assign as its
// definition (spec §8 invariant 1); the builder enforces this by handing
// out monotonically increasing ids.
type Assign struct {
	TempID uint32
	Type   Type
	Rhs    Op
}

func (a *Assign) String() string { return fmt.Sprintf("t%d = %s", a.TempID, a.Rhs) }
func (*Assign) stmt()            {}

// ExprStmt evaluates Op purely for its side effects and discards any
// result, the only way a void-returning Call appears in a Block (spec
// §3: Call's result is either bound by an Assign or, when RetType is
// void, left unbound). Every other Op kind is pure and has no business
// appearing here; the record package only ever constructs one around a
// Call.
type ExprStmt struct {
	Op Op
}

func (e *ExprStmt) String() string { return e.Op.String() }
func (*ExprStmt) stmt()            {}

// Store writes Value to the address Addr. Spec §4.4: the only statement
// that ever writes through an address.
type Store struct {
	Addr  BasicValue
	Value BasicValue
}

func (s *Store) String() string { return fmt.Sprintf("store %s, %s", s.Addr, s.Value) }
func (*Store) stmt()            {}

// Break exits the loop at depth LoopDepth levels up (0 = innermost). Spec
// §4.5: recorded as an explicit statement rather than Go control flow,
// since the recorder cannot use a host break/continue to affect the
// structure being built.
type Break struct {
	LoopDepth int
}

func (b *Break) String() string { return fmt.Sprintf("break(%d)", b.LoopDepth) }
func (*Break) stmt()            {}

// Continue restarts the loop at depth LoopDepth levels up.
type Continue struct {
	LoopDepth int
}

func (c *Continue) String() string { return fmt.Sprintf("continue(%d)", c.LoopDepth) }
func (*Continue) stmt()            {}

// Block is a flat, ordered sequence of statements. If/While bodies are
// Blocks; a Function's top level is also a Block.
type Block struct {
	Statements []Statement
}

func (b *Block) String() string {
	lines := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		lines[i] = "  " + strings.ReplaceAll(s.String(), "\n", "\n  ")
	}
	return "{\n" + strings.Join(lines, "\n") + "\n}"
}
func (*Block) stmt() {}

// If branches on Cond (always bool-typed). Else may be nil (spec §4.5's
// if-without-else, and elseif chains desugar into nested Ifs in Else).
type If struct {
	Cond Value
	Then *Block
	Else *Block
}

func (i *If) String() string {
	s := fmt.Sprintf("if %s %s", i.Cond, i.Then)
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}
func (*If) stmt() {}

// While loops while Cond holds. CondBlock, when non-empty, holds the
// statements that compute Cond and must be re-run each iteration (spec
// §4.5: a condition expression may itself load memory or call a function,
// so it cannot always be folded into a single BasicValue).
type While struct {
	CondBlock *Block
	Cond      Value
	Body      *Block
}

func (w *While) String() string {
	return fmt.Sprintf("while %s %s", w.Cond, w.Body)
}
func (*While) stmt() {}

// Value is a BasicValue paired with the type it was resolved at, used for
// condition operands where callers want the promoted, already-bool type
// readily available without a separate interner lookup.
type Value struct {
	Basic BasicValue
	Type  Type
}

func (v Value) String() string { return v.Basic.String() }
