// Package evaluator implements the fixed-point rewriter described in
// spec.md section 4.4: the twelve-step standard evaluation sequence for a
// single Compound, driven to quiescence by an outer loop gated on both
// term-change and the Context's state_version counter.
package evaluator

import (
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
)

// Evaluate reduces t to a fixed point under ctx: the external "evaluate"
// entry point named in spec.md section 6. Built-ins invoked along the way
// may mutate ctx (Set, SetDelayed, Clear, ...).
func Evaluate(ctx *context.Context, t term.Term) term.Term {
	return evaluate(ctx, t, true)
}

// evaluate is the fixed-point loop, parameterized on whether built-ins
// with ReadWriteAccess may run. mutable is false only while evaluating a
// rule's Condition (spec.md section 9's "read-only evaluation paths"
// design note): a Condition must not be able to Set a variable as a side
// effect of merely being tested.
func evaluate(ctx *context.Context, t term.Term, mutable bool) term.Term {
	for {
		before := ctx.StateVersion()
		result := evalPass(ctx, t, mutable)

		if !result.Equal(t) {
			t = result
			continue
		}
		if ctx.StateVersion() != before {
			// A side effect fired during this pass without changing the
			// term itself (e.g. an assignment whose value equals the old
			// form). Re-evaluate once more in case it unlocked a new
			// rule, per spec.md section 9's state-version gating.
			return evaluate(ctx, t, mutable)
		}
		return result
	}
}

// evalPass applies one full pass of the standard evaluation sequence to t
// and returns the resulting term (unchanged if nothing fired).
func evalPass(ctx *context.Context, t term.Term, mutable bool) term.Term {
	switch t.Kind() {
	case term.KindCompound:
		return evalCompound(ctx, t, mutable)
	case term.KindSymbol:
		sym, _ := t.AsSymbol()
		if result, ok := tryRules(ctx, sym, context.Own, t, mutable); ok {
			return result
		}
		return t
	default:
		return t
	}
}

// evalCompound implements spec.md section 4.4 steps 2 through 12 for a
// Compound h[e1...en].
func evalCompound(ctx *context.Context, t term.Term, mutable bool) term.Term {
	head := t.Head()
	headPrime := evaluate(ctx, head, mutable)

	attrs := context.Attributes(0)
	if sym, ok := headPrime.AsSymbol(); ok {
		attrs = ctx.GetAttributes(sym)
	}

	// Step 3: evaluate every element unless its position is held.
	elements := t.Elements()
	evaluated := make([]term.Term, len(elements))
	for i, e := range elements {
		if attrs.HoldsElement(i) {
			evaluated[i] = e
		} else {
			evaluated[i] = evaluate(ctx, e, mutable)
		}
	}

	// Step 4: splice Sequence[...] children, unless held complete.
	if !attrs.HoldAllComplete() && !attrs.HoldSequence() {
		evaluated = spliceSequences(evaluated)
	}

	// Step 5: strip one layer of Unevaluated[...] wrappers, unless held
	// complete.
	if !attrs.HoldAllComplete() {
		evaluated = stripUnevaluated(evaluated)
	}

	current := term.NewCompound(headPrime, evaluated...)

	// Step 6: Flat flattens nested same-head applications.
	if attrs.Flat() {
		current = flatten(current, headPrime)
	}

	// Step 7: Listable threads over List[...] arguments.
	if attrs.Listable() {
		if threaded, ok := threadListable(ctx, current, mutable); ok {
			return threaded
		}
	}

	// Step 8: Orderless canonicalizes argument order.
	if attrs.Orderless() {
		current = sortOrderless(current)
	}

	// Step 9: OneIdentity collapses a unary application to its argument.
	if attrs.OneIdentity() && current.Len() == 1 {
		arg, _ := current.Element(0)
		return arg
	}

	// Step 10: UpValues of each argument's name, in order of encounter.
	if !attrs.HoldAllComplete() {
		for _, arg := range current.Elements() {
			name, ok := arg.Name()
			if !ok {
				continue
			}
			if result, ok := tryRules(ctx, name, context.Up, current, mutable); ok {
				return result
			}
		}
	}

	// Step 11: DownValues of h' (symbol head), or SubValues of g for h' of
	// the form g[...].
	if name, ok := headPrime.AsSymbol(); ok {
		if result, ok := tryRules(ctx, name, context.Down, current, mutable); ok {
			return result
		}
	} else if headPrime.IsCompound() {
		if name, ok := headPrime.Name(); ok {
			if result, ok := tryRules(ctx, name, context.Sub, current, mutable); ok {
				return result
			}
		}
	}

	return current
}
