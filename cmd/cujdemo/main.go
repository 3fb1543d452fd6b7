// Package main demonstrates the recorder end to end: it records a
// kernel function by calling the internal/expr façade the way host code
// would, verifies the resulting ir.Program, and prints it.
//
// This mirrors the teacher's cmd/compiler pipeline demo (parse, analyze,
// build IR, verify, print) but with no source file to read — recording
// happens by direct Go calls, since this is an embedded DSL rather than
// a text language with its own front end.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hassan/cuj/internal/expr"
	"github.com/hassan/cuj/internal/ir"
	"github.com/hassan/cuj/internal/record"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := record.NewContext(logger)

	recordSumToN(ctx)
	recordMixedKindScale(ctx)
	recordVectorLength(ctx)

	program := ctx.Program()

	fmt.Println("=== Recorded program ===")
	fmt.Println(program.String())

	if errs := program.Verify(); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "\nverification failed:\n")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %v\n", e)
		}
		os.Exit(1)
	}
	fmt.Println("\n✓ program verified")

	ir.TrimUnreachable(program)
	fmt.Println("\n=== After TrimUnreachable ===")
	fmt.Println(program.String())
}

// recordSumToN builds: sum_to_n(n i32) { total := 0; i := 0; while
// i < n { total += i; i += 1 } }, then loads total. The IR has no return
// statement, so the loaded total is not returned. Spec scenario S3.
func recordSumToN(ctx *record.Context) {
	fr := ctx.NewFunction("sum_to_n", ir.FuncKernel)

	nPtr := expr.Param[int32](fr, "n")
	n := nPtr.Load()
	total := expr.AllocPointer[int32](fr, "total")
	total.Store(expr.Lit[int32](fr, 0))
	i := expr.AllocPointer[int32](fr, "i")
	i.Store(expr.Lit[int32](fr, 0))

	fr.BeginWhile()
	cond := i.Load().Lt(n)
	fr.WhileCond(cond.IRValue())

	total.Store(total.Load().Add(i.Load()))
	i.Store(i.Load().Add(expr.Lit[int32](fr, 1)))

	fr.EndWhile()

	result := total.Load()
	_ = result
	fr.Finish()
}

// recordMixedKindScale builds a function mixing an i32 and an i64
// operand (spec scenario S2), exercising BinaryAny/As.
func recordMixedKindScale(ctx *record.Context) {
	fr := ctx.NewFunction("scale_widen", ir.FuncDefault)

	small := expr.Lit[int32](fr, 7)
	big := expr.Lit[int64](fr, 1000)
	mixed := expr.BinaryAny(ir.Mul, small, big)
	widened := expr.As[int64](mixed)
	_ = widened

	fr.Finish()
}

// recordVectorLength builds vec2_length(x, y f32), which records
// sqrt(x*x + y*y) without returning it (the IR has no return statement),
// exercising expr.CallMath and the intrinsics table
// end to end (spec §6's "calls materialize as Call IR nodes").
func recordVectorLength(ctx *record.Context) {
	fr := ctx.NewFunction("vec2_length", ir.FuncDevice)

	x := expr.Param[float32](fr, "x").Load()
	y := expr.Param[float32](fr, "y").Load()
	sumSq := x.Mul(x).Add(y.Mul(y))
	length := expr.CallMath[float32](fr, "sqrt", sumSq)
	_ = length

	fr.Finish()
}
