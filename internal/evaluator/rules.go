package evaluator

import (
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/pattern"
	"github.com/lunalang/luna/internal/term"
	"github.com/lunalang/luna/pkg/ident"
)

var trueSym = ident.Intern("True")

// tryRules scans sym's vt rule list in insertion order, applying the first
// rule whose pattern matches subject (and whose Condition, if any,
// evaluates to True). Per spec.md section 4.2, earliest matching rule
// wins.
func tryRules(ctx *context.Context, sym ident.Symbol, vt context.ValueType, subject term.Term, mutable bool) (term.Term, bool) {
	for _, rule := range ctx.GetValues(sym, vt) {
		if result, ok := tryRule(ctx, rule, subject, mutable); ok {
			return result, true
		}
	}
	return term.Term{}, false
}

// tryRule enumerates every matcher solution for rule.Pattern against
// subject, accepting the first one whose Condition (if present) evaluates
// to the literal symbol True, and applying rule.Replacement to it.
//
// A Replacement.Builtin that declines (returns ok=false) or that carries
// ReadWriteAccess while mutable is false (spec.md section 9: Condition
// checking is a read-only evaluation path) is treated as a non-match for
// that solution, and the next solution is tried.
func tryRule(ctx *context.Context, rule context.Rule, subject term.Term, mutable bool) (term.Term, bool) {
	m := pattern.NewMatcher(ctx, rule.Pattern, subject)
	for {
		bindings, ok := m.Next()
		if !ok {
			return term.Term{}, false
		}

		if rule.HasCondition() {
			condition := term.Substitute(rule.Condition, bindings)
			result := evaluate(ctx, condition, false)
			sym, isSym := result.AsSymbol()
			if !isSym || !sym.Equal(trueSym) {
				continue
			}
		}

		if !rule.Replacement.IsBuiltin() {
			return term.Substitute(rule.Replacement.Ground, bindings), true
		}

		if rule.Replacement.Access == context.ReadWriteAccess && !mutable {
			continue
		}

		result, applied := rule.Replacement.Builtin(ctx, bindings)
		if !applied {
			continue
		}
		return result, true
	}
}
