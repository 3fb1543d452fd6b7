package expr

import (
	"github.com/hassan/cuj/internal/diag"
	"github.com/hassan/cuj/internal/intrinsics"
	"github.com/hassan/cuj/internal/ir"
	"github.com/hassan/cuj/internal/record"
)

// CallMath records a call to one of internal/intrinsics' math functions
// (spec §6: "calls materialize as Call IR nodes"). The overload is
// resolved against args' recorded kinds the same way the original's
// builtin math layer picks an overload by argument type, and the result
// is wrapped back into the statically typed ArithmeticValue[T] the
// caller asked for.
func CallMath[T Scalar](fr *record.FuncRecorder, name string, args ...Arithmetic) ArithmeticValue[T] {
	in := fr.Interner()
	argKinds := make([]ir.Kind, len(args))
	vals := make([]ir.BasicValue, len(args))
	for i, a := range args {
		vals[i] = a.Value()
		argKinds[i] = kindOfValue(vals[i], in)
	}
	sig := intrinsics.Resolve(name, argKinds)
	retType := in.Builtin(sig.Returns)
	return ArithmeticValue[T]{fr: fr, val: fr.Call(name, vals, retType)}
}

// kindOfValue extracts v's builtin Kind, resolving immediates and temps
// alike through the Interner the way the recorder's own promotion code
// does internally.
func kindOfValue(v ir.BasicValue, in *ir.Interner) ir.Kind {
	t := v.Type(in)
	bt, ok := t.(*ir.BuiltinType)
	if !ok {
		diag.Fail(2, "intrinsic argument %s is not a scalar", t)
	}
	return bt.Kind
}
