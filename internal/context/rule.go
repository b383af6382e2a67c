package context

import "github.com/lunalang/luna/internal/term"

// ValueType names which of a symbol's four rule containers a Rule lives
// in, per spec.md section 3.
type ValueType int

const (
	Own ValueType = iota
	Up
	Down
	Sub
)

func (v ValueType) String() string {
	switch v {
	case Own:
		return "Own"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Sub:
		return "Sub"
	default:
		return "Unknown"
	}
}

// Access names whether a BuiltinFunc may mutate the context it is given,
// grounded on original_source/luna_lang/src/context.rs's split between
// SymbolValue::BuiltIn (read-only, reusable across threads) and
// SymbolValue::BuiltInMut (read-write, e.g. Set/SetDelayed/Clear).
type Access int

const (
	ReadOnlyAccess Access = iota
	ReadWriteAccess
)

// BuiltinFunc is a native replacement function: given the bindings the
// matcher produced for the rule's pattern and (if ReadWriteAccess) the
// context to mutate, it returns the replacement term and whether it
// actually rewrote anything (spec.md's Unknown-rule-is-not-an-error
// disposition: a built-in that declines should return ok=false).
type BuiltinFunc func(ctx *Context, bindings term.Bindings) (result term.Term, ok bool)

// Replacement is either a ground term substitution or a native function,
// grounded on context.rs's SymbolValue enum (Definitions vs.
// BuiltIn/BuiltInMut — Go's single BuiltinFunc signature collapses the
// Rust split since Go has no separate immutable-closure requirement).
type Replacement struct {
	Ground  term.Term
	Builtin BuiltinFunc
	Access  Access
}

// IsBuiltin reports whether r carries a native function rather than a
// ground substitution term.
func (r Replacement) IsBuiltin() bool {
	return r.Builtin != nil
}

// Rule is { pattern, optional condition, replacement }, per spec.md
// section 3. Two rules are Equal when their pattern and condition match;
// replacements (including native function identity) are ignored, mirroring
// context.rs's SymbolValue::eq, which compares pattern+condition only.
type Rule struct {
	Pattern     term.Term
	Condition   term.Term // only meaningful when hasCond is true
	hasCond     bool
	Replacement Replacement
}

// NewRule constructs a Rule with no condition.
func NewRule(pattern term.Term, replacement Replacement) Rule {
	return Rule{Pattern: pattern, Replacement: replacement}
}

// NewConditionalRule constructs a Rule guarded by condition.
func NewConditionalRule(pattern, condition term.Term, replacement Replacement) Rule {
	return Rule{Pattern: pattern, Condition: condition, hasCond: true, Replacement: replacement}
}

// HasCondition reports whether r carries a guard condition.
func (r Rule) HasCondition() bool {
	return r.hasCond
}

// Equal compares pattern and condition only, per context.rs's
// SymbolValue::eq.
func (r Rule) Equal(o Rule) bool {
	if r.hasCond != o.hasCond {
		return false
	}
	if r.hasCond && !r.Condition.Equal(o.Condition) {
		return false
	}
	return r.Pattern.Equal(o.Pattern)
}
