// Package codegen holds the plain configuration struct a backend
// consuming a finalized ir.Program reads to decide its own optimization
// and math-approximation behavior (spec §6). The recorder and IR layers
// never read Options themselves; a Program is fully formed without any
// choice made here.
//
// DESIGN CHOICE: spec §1 scopes file-backed configuration out entirely,
// so unlike the rest of the ambient stack this package carries no viper
// or yaml dependency — Options is constructed directly by host code, the
// same way the teacher's own cmd/compiler wires flags into a struct
// literal rather than a config file.
package codegen

// Options controls a backend's code generation choices for a Program.
type Options struct {
	// OptLevel is a backend-defined optimization aggressiveness, 0
	// meaning no optimization.
	OptLevel int
	// FastMath permits algebraically-equivalent but not bitwise-identical
	// float rewrites (e.g. reassociation).
	FastMath bool
	// ApproxMathFunc permits approximate implementations of
	// internal/intrinsics entries (e.g. a fast reciprocal-sqrt) in place
	// of their precise form.
	ApproxMathFunc bool
	// EnableAssert keeps CallVoid("assert", ...) intrinsics in the
	// generated output; disabling it is a backend's license to strip
	// them.
	EnableAssert bool
}

// Default returns the conservative, fully-precise option set.
func Default() Options {
	return Options{OptLevel: 0, FastMath: false, ApproxMathFunc: false, EnableAssert: true}
}
