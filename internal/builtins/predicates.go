package builtins

import (
	"math/big"

	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
)

var (
	trueSym  = term.Sym("True")
	falseSym = term.Sym("False")
)

func boolTerm(v bool) term.Term {
	if v {
		return trueSym
	}
	return falseSym
}

// registerSameQ implements SameQ[a_, b_]/UnsameQ[a_, b_] as Term.Equal and
// its negation — pure structural-equality predicates, no coercion between
// Integer and Real.
func registerSameQ(ctx *context.Context) {
	aVar, bVar := namedBlank("a"), namedBlank("b")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		a, _ := bindings.Get(symA)
		b, _ := bindings.Get(symB)
		return boolTerm(a.Equal(b)), true
	}
	mustAddDown(ctx, "SameQ", context.NewRule(pat("SameQ", aVar, bVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
}

func registerUnsameQ(ctx *context.Context) {
	aVar, bVar := namedBlank("a"), namedBlank("b")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		a, _ := bindings.Get(symA)
		b, _ := bindings.Get(symB)
		return boolTerm(!a.Equal(b)), true
	}
	mustAddDown(ctx, "UnsameQ", context.NewRule(pat("UnsameQ", aVar, bVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
}

// toBigFloat promotes an Integer or Real term to a comparable *big.Float,
// for numeric cross-type comparisons (2 == 2.0).
func toBigFloat(t term.Term) (*big.Float, bool) {
	if iv, ok := t.AsInteger(); ok {
		return new(big.Float).SetPrec(realPrecision).SetInt(iv), true
	}
	if rv, ok := t.AsReal(); ok && !rv.IsNaN() {
		return new(big.Float).SetPrec(realPrecision).Set(rv.Float()), true
	}
	return nil, false
}

// valuesEqual reports whether a and b denote the same value: numeric
// cross-type comparison (Integer 2 equals Real 2.0) when both sides are
// numeric, structural Term.Equal otherwise.
func valuesEqual(a, b term.Term) bool {
	fa, aNum := toBigFloat(a)
	fb, bNum := toBigFloat(b)
	if aNum && bNum {
		return fa.Cmp(fb) == 0
	}
	return a.Equal(b)
}

// registerEqual implements Equal[exprs___]: +Associative, Commutative,
// OneIdentity. Folds a chain of operands to True iff every pair is equal
// by valuesEqual, mirroring Plus's variadic fold shape.
func registerEqual(ctx *context.Context) {
	exprsVar := namedBlankNullSequence("exprs")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		seq, _ := bindings.Get(symExprs)
		elements := seq.Elements()
		for i := 1; i < len(elements); i++ {
			if !valuesEqual(elements[0], elements[i]) {
				return falseSym, true
			}
		}
		return trueSym, true
	}
	mustAddDown(ctx, "Equal", context.NewRule(pat("Equal", exprsVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
	lockDown(ctx, "Equal", context.Attributes(0).Set(context.Flat).Set(context.Orderless).Set(context.OneIdentity), false)
}

// registerComparisons implements Less/Greater/LessEqual/GreaterEqual[a_,
// b_] over Integer/Real operands via the numeric promotion above.
func registerComparisons(ctx *context.Context) {
	register := func(name string, accept func(cmp int) bool) {
		aVar, bVar := namedBlank("a"), namedBlank("b")
		fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
			a, _ := bindings.Get(symA)
			b, _ := bindings.Get(symB)
			fa, aOK := toBigFloat(a)
			fb, bOK := toBigFloat(b)
			if !aOK || !bOK {
				return term.Term{}, false
			}
			return boolTerm(accept(fa.Cmp(fb))), true
		}
		mustAddDown(ctx, name, context.NewRule(pat(name, aVar, bVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
	}

	register("Less", func(cmp int) bool { return cmp < 0 })
	register("Greater", func(cmp int) bool { return cmp > 0 })
	register("LessEqual", func(cmp int) bool { return cmp <= 0 })
	register("GreaterEqual", func(cmp int) bool { return cmp >= 0 })
}
