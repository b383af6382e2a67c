package term

import "github.com/lunalang/luna/pkg/ident"

// Bindings maps pattern-variable names to the sub-terms they matched.
// Defined here, rather than in internal/pattern where it is produced, so
// that internal/context's Rule/BuiltinFunc types can reference it without
// importing internal/pattern (which itself depends on internal/context
// for attribute lookups) — avoids an import cycle.
type Bindings map[ident.Symbol]Term

// NewBindings returns an empty Bindings map.
func NewBindings() Bindings {
	return make(Bindings)
}

// Get returns the term bound to name, if any.
func (b Bindings) Get(name ident.Symbol) (Term, bool) {
	t, ok := b[name]
	return t, ok
}

// Set binds name to t, overwriting any previous binding.
func (b Bindings) Set(name ident.Symbol, t Term) {
	b[name] = t
}

// Clone returns a shallow copy, so that a caller can extend it without
// mutating the original (e.g. the matcher branching across alternatives).
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Substitute returns a copy of pattern with every Symbol that has a
// binding replaced by its bound term, recursively. Symbols with no binding
// are left as-is.
func Substitute(pattern Term, b Bindings) Term {
	switch pattern.Kind() {
	case KindSymbol:
		sym, _ := pattern.AsSymbol()
		if bound, ok := b.Get(sym); ok {
			return bound
		}
		return pattern
	case KindCompound:
		parts := pattern.Parts()
		out := make([]Term, len(parts))
		for i, p := range parts {
			out[i] = Substitute(p, b)
		}
		return newCompoundFromParts(out)
	default:
		return pattern
	}
}
