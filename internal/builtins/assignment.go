package builtins

import (
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
)

var (
	failedSym = term.Sym("$Failed")
	nullSym   = term.Sym("Null")
)

// define registers rhs as a rule on lhs: an OwnValue if lhs is a bare
// Symbol, a DownValue on lhs's head symbol otherwise. Shared by Set and
// SetDelayed, per spec.md section 4.5's table — both "register a rule on
// lhs's head symbol (DownValue) or on lhs itself (OwnValue if lhs is a
// symbol)".
func define(ctx *context.Context, lhs, rhs term.Term) bool {
	if sym, ok := lhs.AsSymbol(); ok {
		return ctx.AddRule(sym, context.Own, context.NewRule(lhs, context.Replacement{Ground: rhs})) == nil
	}
	name, ok := lhs.Name()
	if !ok {
		return false
	}
	return ctx.AddRule(name, context.Down, context.NewRule(lhs, context.Replacement{Ground: rhs})) == nil
}

// registerSet implements Set[lhs_, rhs_]: HoldFirst leaves lhs unevaluated
// as the literal pattern/symbol to define; rhs is evaluated before being
// stored. Returns rhs on success, $Failed if the definition is denied.
func registerSet(ctx *context.Context) {
	lhsVar, rhsVar := namedBlank("lhs"), namedBlank("rhs")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		lhs, _ := bindings.Get(symLhs)
		rhs, _ := bindings.Get(symRhs)
		if !define(ctx, lhs, rhs) {
			return failedSym, true
		}
		return rhs, true
	}
	mustAddDown(ctx, "Set", context.NewRule(pat("Set", lhsVar, rhsVar), context.Replacement{Builtin: fn, Access: context.ReadWriteAccess}))
	lockDown(ctx, "Set", context.Attributes(0).Set(context.HoldFirst).Set(context.HoldSequence), true)
}

// registerSetDelayed implements SetDelayed[lhs_, rhs_]: HoldAll leaves
// both sides unevaluated, so rhs is stored as a lazy template rather than
// its current value. Returns Null.
func registerSetDelayed(ctx *context.Context) {
	lhsVar, rhsVar := namedBlank("lhs"), namedBlank("rhs")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		lhs, _ := bindings.Get(symLhs)
		rhs, _ := bindings.Get(symRhs)
		if !define(ctx, lhs, rhs) {
			return failedSym, true
		}
		return nullSym, true
	}
	mustAddDown(ctx, "SetDelayed", context.NewRule(pat("SetDelayed", lhsVar, rhsVar), context.Replacement{Builtin: fn, Access: context.ReadWriteAccess}))
	lockDown(ctx, "SetDelayed", context.Attributes(0).Set(context.HoldAll).Set(context.HoldSequence), true)
}
