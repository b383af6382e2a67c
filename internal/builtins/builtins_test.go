package builtins_test

import (
	"testing"

	"github.com/lunalang/luna/internal/builtins"
	"github.com/lunalang/luna/internal/evaluator"
	"github.com/lunalang/luna/internal/term"
)

func sym(name string) term.Term { return term.Sym(name) }

func compound(head term.Term, elems ...term.Term) term.Term {
	return term.NewCompound(head, elems...)
}

func integer(v int64) term.Term { return term.NewIntegerInt64(v) }

// TestSetOwnValue covers Set installing an OwnValue for a bare symbol
// lhs, immediately visible to later evaluations of that symbol.
func TestSetOwnValue(t *testing.T) {
	ctx := builtins.NewGlobal()
	evaluator.Evaluate(ctx, compound(sym("Set"), sym("x"), integer(42)))

	got := evaluator.Evaluate(ctx, sym("x"))
	if !got.Equal(integer(42)) {
		t.Fatalf("x = %s, want 42", got)
	}
}

// TestSetDownValue covers Set installing a DownValue when lhs is itself a
// Compound (e.g. g[1] := ... style immediate definitions).
func TestSetDownValue(t *testing.T) {
	ctx := builtins.NewGlobal()
	evaluator.Evaluate(ctx, compound(sym("Set"), compound(sym("g"), integer(1)), sym("hello")))

	got := evaluator.Evaluate(ctx, compound(sym("g"), integer(1)))
	if !got.Equal(sym("hello")) {
		t.Fatalf("g[1] = %s, want hello", got)
	}
}

// TestHeadOfCompoundAndAtom covers Head[expr_] for both a Compound and a
// bare atom.
func TestHeadOfCompoundAndAtom(t *testing.T) {
	ctx := builtins.NewGlobal()

	h1 := evaluator.Evaluate(ctx, compound(sym("Head"), compound(sym("f"), integer(1), integer(2))))
	if !h1.Equal(sym("f")) {
		t.Fatalf("Head[f[1,2]] = %s, want f", h1)
	}

	h2 := evaluator.Evaluate(ctx, compound(sym("Head"), integer(5)))
	if !h2.Equal(sym("Integer")) {
		t.Fatalf("Head[5] = %s, want Integer", h2)
	}
}

// TestLengthAndPart cover Length[expr_] and the 1-indexed Part[expr_,n_]
// accessor, including its $Failed out-of-range behavior.
func TestLengthAndPart(t *testing.T) {
	ctx := builtins.NewGlobal()
	list := compound(sym("List"), sym("a"), sym("b"), sym("c"))

	length := evaluator.Evaluate(ctx, compound(sym("Length"), list))
	if !length.Equal(integer(3)) {
		t.Fatalf("Length[List[a,b,c]] = %s, want 3", length)
	}

	part := evaluator.Evaluate(ctx, compound(sym("Part"), list, integer(2)))
	if !part.Equal(sym("b")) {
		t.Fatalf("Part[List[a,b,c],2] = %s, want b", part)
	}

	outOfRange := evaluator.Evaluate(ctx, compound(sym("Part"), list, integer(10)))
	if !outOfRange.Equal(sym("$Failed")) {
		t.Fatalf("Part[List[a,b,c],10] = %s, want $Failed", outOfRange)
	}
}

// TestAttributesRoundTrip covers SetAttributes/Attributes/ClearAttributes
// round-tripping a custom symbol's attribute set.
func TestAttributesRoundTrip(t *testing.T) {
	ctx := builtins.NewGlobal()

	evaluator.Evaluate(ctx, compound(sym("SetAttributes"), sym("h"), sym("Flat")))
	attrs := evaluator.Evaluate(ctx, compound(sym("Attributes"), sym("h")))
	if !attrs.Equal(compound(sym("List"), sym("Flat"))) {
		t.Fatalf("Attributes[h] = %s, want List[Flat]", attrs)
	}

	evaluator.Evaluate(ctx, compound(sym("ClearAttributes"), sym("h"), sym("Flat")))
	cleared := evaluator.Evaluate(ctx, compound(sym("Attributes"), sym("h")))
	if !cleared.Equal(compound(sym("List"))) {
		t.Fatalf("Attributes[h] after clear = %s, want List[]", cleared)
	}
}

// TestClearRemovesOwnValue covers Clear[s_] removing a previously Set
// OwnValue, so the symbol reduces back to itself.
func TestClearRemovesOwnValue(t *testing.T) {
	ctx := builtins.NewGlobal()
	evaluator.Evaluate(ctx, compound(sym("Set"), sym("y"), integer(7)))
	evaluator.Evaluate(ctx, compound(sym("Clear"), sym("y")))

	got := evaluator.Evaluate(ctx, sym("y"))
	if !got.Equal(sym("y")) {
		t.Fatalf("y after Clear = %s, want y", got)
	}
}

// TestProtectedBuiltinRejectsRedefinition covers a protected built-in
// (Plus) rejecting an attempted redefinition via Set, per its ReadOnly
// attribute.
func TestProtectedBuiltinRejectsRedefinition(t *testing.T) {
	ctx := builtins.NewGlobal()
	got := evaluator.Evaluate(ctx, compound(sym("Set"), compound(sym("Plus"), integer(1), integer(1)), integer(99)))
	if !got.Equal(sym("$Failed")) {
		t.Fatalf("Set on a protected built-in = %s, want $Failed", got)
	}
}
