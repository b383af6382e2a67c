package pattern

import (
	"testing"

	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
	"github.com/lunalang/luna/pkg/ident"
)

func sym(name string) term.Term { return term.Sym(name) }

func compound(head term.Term, elems ...term.Term) term.Term {
	return term.NewCompound(head, elems...)
}

func blank() term.Term { return compound(sym("Blank")) }

func namedBlank(name string) term.Term {
	return compound(sym("Pattern"), sym(name), blank())
}

func namedBlankSequence(name string) term.Term {
	return compound(sym("Pattern"), sym(name), compound(sym("BlankSequence")))
}

func TestMatcherTrivialAtomEquality(t *testing.T) {
	ctx := context.New()
	m := NewMatcher(ctx, term.NewIntegerInt64(5), term.NewIntegerInt64(5))
	if m.Count() != 1 {
		t.Fatalf("expected exactly one solution, got %d", m.Count())
	}
	b, ok := m.Next()
	if !ok || len(b) != 0 {
		t.Fatalf("expected one empty-bindings solution, got %v, ok=%v", b, ok)
	}
}

func TestMatcherTrivialAtomMismatch(t *testing.T) {
	ctx := context.New()
	m := NewMatcher(ctx, term.NewIntegerInt64(5), term.NewIntegerInt64(6))
	if m.Count() != 0 {
		t.Fatalf("expected zero solutions, got %d", m.Count())
	}
}

func TestMatcherIndividualVariableBindsWhole(t *testing.T) {
	ctx := context.New()
	pattern := namedBlank("x")
	subject := sym("a")
	m := NewMatcher(ctx, pattern, subject)
	if m.Count() != 1 {
		t.Fatalf("expected 1 solution, got %d", m.Count())
	}
	b, _ := m.Next()
	got, ok := b.Get(ident.Intern("x"))
	if !ok || !got.Equal(subject) {
		t.Fatalf("expected x bound to %v, got %v (ok=%v)", subject, got, ok)
	}
}

// TestMatcherFreeDecomposition exercises DNC: a free (non-Flat,
// non-Orderless) head pairs pattern elements against ground elements
// positionally.
func TestMatcherFreeDecomposition(t *testing.T) {
	ctx := context.New()
	head := sym("f")
	pattern := compound(head, namedBlank("x"), namedBlank("y"))
	subject := compound(head, sym("a"), sym("b"))

	m := NewMatcher(ctx, pattern, subject)
	if m.Count() != 1 {
		t.Fatalf("expected 1 solution for a free-head decomposition, got %d", m.Count())
	}
	b, _ := m.Next()
	x, _ := b.Get(ident.Intern("x"))
	y, _ := b.Get(ident.Intern("y"))
	if !x.Equal(sym("a")) || !y.Equal(sym("b")) {
		t.Fatalf("expected x=a, y=b, got x=%v y=%v", x, y)
	}
}

// TestMatcherCommutativeTwoVariables reproduces spec.md section 8
// scenario 3: fc[x_, y_, c] against fc[a, b, c] under Orderless, which
// must yield exactly 2 bindings ({x:a,y:b} and {x:b,y:a}).
func TestMatcherCommutativeTwoVariables(t *testing.T) {
	ctx := context.New()
	fc := ident.Intern("fc")
	ctx.SetAttributes(fc, context.Attributes(0).Set(context.Orderless))

	head := term.NewSymbol(fc)
	pattern := compound(head, namedBlank("x"), namedBlank("y"), sym("c"))
	subject := compound(head, sym("a"), sym("b"), sym("c"))

	m := NewMatcher(ctx, pattern, subject)
	if m.Count() != 2 {
		t.Fatalf("expected exactly 2 solutions, got %d", m.Count())
	}

	seen := map[string]bool{}
	for {
		b, ok := m.Next()
		if !ok {
			break
		}
		x, _ := b.Get(ident.Intern("x"))
		y, _ := b.Get(ident.Intern("y"))
		seen[x.String()+"/"+y.String()] = true
	}
	if !seen["a/b"] || !seen["b/a"] {
		t.Fatalf("expected {x:a,y:b} and {x:b,y:a}, got %v", seen)
	}
}

// TestMatcherAssociativeSequenceDecomposition reproduces spec.md section 8
// scenario 4: fa[xs__, ys__] against fa[a, b, c] under Flat, which must
// yield exactly 20 bindings.
func TestMatcherAssociativeSequenceDecomposition(t *testing.T) {
	ctx := context.New()
	fa := ident.Intern("fa")
	ctx.SetAttributes(fa, context.Attributes(0).Set(context.Flat))

	head := term.NewSymbol(fa)
	pattern := compound(head, namedBlankSequence("xs"), namedBlankSequence("ys"))
	subject := compound(head, sym("a"), sym("b"), sym("c"))

	m := NewMatcher(ctx, pattern, subject)
	if m.Count() != 20 {
		t.Fatalf("expected exactly 20 solutions, got %d", m.Count())
	}
}

// TestAFAGroupingOrderMatchesFixture reproduces spec.md section 8 scenario
// 6's exact 13-grouping order for elements [a, b, c] under head f.
func TestAFAGroupingOrderMatchesFixture(t *testing.T) {
	f := sym("f")
	a, b, c := sym("a"), sym("b"), sym("c")
	elements := []term.Term{a, b, c}

	groupings := afaGroupings(f, elements)
	if len(groupings) != 13 {
		t.Fatalf("expected 13 groupings, got %d", len(groupings))
	}

	expected := [][]term.Term{
		{a, b, c},
		{compound(f, a), b, c},
		{a, compound(f, b), c},
		{a, b, compound(f, c)},
		{compound(f, a), compound(f, b), c},
		{compound(f, a), b, compound(f, c)},
		{a, compound(f, b), compound(f, c)},
		{compound(f, a), compound(f, b), compound(f, c)},
		{compound(f, a, b), c},
		{compound(f, a, b), compound(f, c)},
		{a, compound(f, b, c)},
		{compound(f, a), compound(f, b, c)},
		{compound(f, a, b, c)},
	}

	for i, exp := range expected {
		got := groupings[i]
		if len(got) != len(exp) {
			t.Fatalf("grouping %d: expected length %d, got %d (%v)", i, len(exp), len(got), got)
		}
		for j := range exp {
			if !got[j].Equal(exp[j]) {
				t.Fatalf("grouping %d element %d: expected %v, got %v", i, j, exp[j], got[j])
			}
		}
	}
}

func TestPermutationGeneratorUnsupportedArity(t *testing.T) {
	_, err := allPermutations(MaxPermutationArity + 1)
	if err == nil {
		t.Fatal("expected an unsupported-arity error past MaxPermutationArity")
	}
}

func TestPermutationGeneratorCount(t *testing.T) {
	perms, err := allPermutations(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(perms) != 24 {
		t.Fatalf("expected 4! = 24 permutations, got %d", len(perms))
	}
}

func TestMatcherNoSolutionOnHeadMismatch(t *testing.T) {
	ctx := context.New()
	pattern := compound(sym("f"), namedBlank("x"))
	subject := compound(sym("g"), sym("a"))
	m := NewMatcher(ctx, pattern, subject)
	if m.Count() != 0 {
		t.Fatalf("expected zero solutions on head mismatch, got %d", m.Count())
	}
}
