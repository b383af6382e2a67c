package builtins

import (
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/evaluator"
	"github.com/lunalang/luna/internal/term"
)

// registerLogic implements And[a___]/Or[a___] (HoldAll, Flat, Orderless)
// and Not[x_]: a short-circuit-free structural boolean fold — every held
// operand is evaluated regardless of an earlier False/True, demonstrating
// Flat+Orderless on a second head alongside Plus/Times/Equal.
func registerLogic(ctx *context.Context) {
	registerFold(ctx, "And", trueSym, falseSym)
	registerFold(ctx, "Or", falseSym, trueSym)
	registerNot(ctx)
}

// registerFold shares the And/Or shape: identity is the value that drops
// out of the chain (True for And, False for Or); short is the value that,
// once seen among the (eagerly evaluated) operands, decides the whole
// expression.
func registerFold(ctx *context.Context, name string, identity, short term.Term) {
	aVar := namedBlankNullSequence("a")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		seq, _ := bindings.Get(symA)
		held := seq.Elements()

		var rest []term.Term
		sawShort := false
		for _, h := range held {
			v := evaluator.Evaluate(ctx, h)
			switch {
			case v.Equal(short):
				sawShort = true
			case v.Equal(identity):
				// drops out of the chain
			default:
				rest = append(rest, v)
			}
		}

		if sawShort {
			return short, true
		}
		if len(rest) == 0 {
			return identity, true
		}
		if len(rest) == 1 {
			return rest[0], true
		}
		return term.NewCompound(term.Sym(name), rest...), true
	}
	mustAddDown(ctx, name, context.NewRule(pat(name, aVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
	lockDown(ctx, name, context.Attributes(0).Set(context.HoldAll).Set(context.Flat).Set(context.Orderless), false)
}

// registerNot implements Not[x_]: x is evaluated normally (no Hold
// attribute); toggles True/False, otherwise left unevaluated.
func registerNot(ctx *context.Context) {
	xVar := namedBlank("x")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		x, _ := bindings.Get(symX)
		switch {
		case x.Equal(trueSym):
			return falseSym, true
		case x.Equal(falseSym):
			return trueSym, true
		default:
			return term.Term{}, false
		}
	}
	mustAddDown(ctx, "Not", context.NewRule(pat("Not", xVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
}
