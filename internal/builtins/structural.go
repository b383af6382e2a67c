package builtins

import (
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
)

// registerHead implements Head[expr_] and Head[expr_, h_] (spec.md section
// 4.5): the plain form returns expr's head; the two-argument form wraps it
// in h instead of the implicit "default wrapper" — h[Head[expr]].
func registerHead(ctx *context.Context) {
	exprVar := namedBlank("expr")

	plain := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		expr, _ := bindings.Get(symExpr)
		return expr.Head(), true
	}
	mustAddDown(ctx, "Head", context.NewRule(pat("Head", exprVar), context.Replacement{Builtin: plain, Access: context.ReadOnlyAccess}))

	wrapped := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		expr, _ := bindings.Get(symExpr)
		h, _ := bindings.Get(symH)
		return term.NewCompound(h, expr.Head()), true
	}
	mustAddDown(ctx, "Head", context.NewRule(pat("Head", exprVar, namedBlank("h")), context.Replacement{Builtin: wrapped, Access: context.ReadOnlyAccess}))

	lockDown(ctx, "Head", context.Attributes(0), true)
}

// registerLength implements Length[expr_] via Term.Len.
func registerLength(ctx *context.Context) {
	exprVar := namedBlank("expr")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		expr, _ := bindings.Get(symExpr)
		return term.NewIntegerInt64(int64(expr.Len())), true
	}
	mustAddDown(ctx, "Length", context.NewRule(pat("Length", exprVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
	lockDown(ctx, "Length", context.Attributes(0), true)
}

// registerPart implements Part[expr_, n_]: 1-indexed element access,
// $Failed when n is out of range or not an Integer.
func registerPart(ctx *context.Context) {
	exprVar, nVar := namedBlank("expr"), namedBlank("n")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		expr, _ := bindings.Get(symExpr)
		n, _ := bindings.Get(symN)
		idx, ok := n.AsInteger()
		if !ok {
			return failedSym, true
		}
		i := int(idx.Int64())
		element, ok := expr.Element(i - 1)
		if !ok {
			return failedSym, true
		}
		return element, true
	}
	mustAddDown(ctx, "Part", context.NewRule(pat("Part", exprVar, nVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
	lockDown(ctx, "Part", context.Attributes(0), true)
}
