// Package builtins implements the native reductions of spec.md section
// 4.5: each built-in is a DownValue rule, registered on its symbol at
// context construction time with a pattern, optional attributes, and
// either a ground template or a native context.BuiltinFunc.
package builtins

import (
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/pkg/ident"
)

// NewGlobal returns a fresh Context with every built-in registered — the
// "Context::new_global()" constructor named in spec.md section 6. Lives
// here rather than in internal/context so that internal/context need not
// import internal/builtins (which itself depends on internal/context and
// internal/evaluator for And/Or's eager operand evaluation).
func NewGlobal() *context.Context {
	ctx := context.New()
	RegisterAll(ctx)
	return ctx
}

// RegisterAll registers every built-in in a fixed order — spec.md section
// 4.5's determinism guarantee ("same registration order across runs") —
// matching the table order in SPEC_FULL.md section 4.5.
func RegisterAll(ctx *context.Context) {
	registerSet(ctx)
	registerSetDelayed(ctx)
	registerHead(ctx)
	registerPlus(ctx)
	registerTimes(ctx)
	registerSubtract(ctx)
	registerAttributes(ctx)
	registerSetAttributes(ctx)
	registerClearAttributes(ctx)
	registerClear(ctx)
	registerSameQ(ctx)
	registerUnsameQ(ctx)
	registerEqual(ctx)
	registerComparisons(ctx)
	registerLength(ctx)
	registerPart(ctx)
	registerLogic(ctx)
}

// mustAddDown registers a DownValue rule on head, panicking on failure:
// at registration time every symbol is still unknown (no ReadOnly bit
// set yet), so AddRule can only fail on a programmer error (e.g.
// registering the same built-in twice).
func mustAddDown(ctx *context.Context, head string, rule context.Rule) {
	if err := ctx.AddRule(ident.Intern(head), context.Down, rule); err != nil {
		panic("builtins: registering " + head + ": " + err.Error())
	}
}

// lockDown applies the attrs and, when protect is true, ReadOnly +
// AttributesReadOnly, to head — applied after its rule is registered, so
// the ReadOnly bit (which would block AddRule) is only set at the end.
func lockDown(ctx *context.Context, head string, attrs context.Attributes, protect bool) {
	if protect {
		attrs = attrs.Set(context.ReadOnly).Set(context.AttributesReadOnly)
	}
	sym := ident.Intern(head)
	if err := ctx.SetAttributes(sym, attrs); err != nil {
		panic("builtins: setting attributes for " + head + ": " + err.Error())
	}
}
