package context

import (
	"testing"

	"github.com/lunalang/luna/internal/term"
	"github.com/lunalang/luna/pkg/ident"
)

func TestGetAttributesUnknownSymbolIsEmpty(t *testing.T) {
	c := New()
	sym := ident.Intern("Foo")
	if attrs := c.GetAttributes(sym); attrs != 0 {
		t.Fatalf("GetAttributes(unknown) = %v, want 0", attrs)
	}
	if c.Known(sym) {
		t.Fatalf("Known(unknown) should be false")
	}
}

func TestSetAttributesAndReadOnlyGuard(t *testing.T) {
	c := New()
	sym := ident.Intern("x")

	if err := c.SetAttributes(sym, Attributes(0).Set(Flat).Set(Orderless)); err != nil {
		t.Fatalf("SetAttributes failed: %v", err)
	}
	got := c.GetAttributes(sym)
	if !got.Flat() || !got.Orderless() {
		t.Fatalf("GetAttributes = %v, want Flat+Orderless", got)
	}

	if err := c.SetAttributes(sym, got.Set(AttributesReadOnly)); err != nil {
		t.Fatalf("setting AttributesReadOnly itself should succeed: %v", err)
	}
	if err := c.SetAttributes(sym, Attributes(0)); err == nil {
		t.Fatalf("SetAttributes should fail once AttributesReadOnly is held")
	}
}

func TestAddRuleAppendsInOrderAndDedupes(t *testing.T) {
	c := New()
	f := ident.Intern("f")

	r1 := NewRule(term.NewCompound(term.Sym("f"), term.NewIntegerInt64(1)), Replacement{Ground: term.NewString("one")})
	r2 := NewRule(term.NewCompound(term.Sym("f"), term.NewIntegerInt64(2)), Replacement{Ground: term.NewString("two")})

	if err := c.AddRule(f, Down, r1); err != nil {
		t.Fatalf("AddRule r1: %v", err)
	}
	v0 := c.StateVersion()
	if err := c.AddRule(f, Down, r2); err != nil {
		t.Fatalf("AddRule r2: %v", err)
	}
	if c.StateVersion() != v0+1 {
		t.Fatalf("state_version should bump on a new rule")
	}

	values := c.GetValues(f, Down)
	if len(values) != 2 {
		t.Fatalf("GetValues len = %d, want 2", len(values))
	}
	if !values[0].Pattern.Equal(r1.Pattern) || !values[1].Pattern.Equal(r2.Pattern) {
		t.Fatalf("rules should preserve insertion order")
	}

	// Re-adding an equal (pattern+condition) rule replaces the existing one
	// in place rather than appending a duplicate.
	vBefore := c.StateVersion()
	dup := NewRule(term.NewCompound(term.Sym("f"), term.NewIntegerInt64(1)), Replacement{Ground: term.NewString("ONE-DIFFERENT-GROUND")})
	if err := c.AddRule(f, Down, dup); err != nil {
		t.Fatalf("AddRule dup: %v", err)
	}
	if c.StateVersion() != vBefore+1 {
		t.Fatalf("state_version should bump when a duplicate pattern+condition rule replaces the existing one")
	}
	if len(c.GetValues(f, Down)) != 2 {
		t.Fatalf("duplicate rule should not be appended")
	}
}

func TestAddRuleFailsWhenReadOnly(t *testing.T) {
	c := New()
	sym := ident.Intern("Locked1")
	if err := c.SetAttributes(sym, Attributes(0).Set(ReadOnly)); err != nil {
		t.Fatalf("SetAttributes: %v", err)
	}
	rule := NewRule(term.Sym("Locked1"), Replacement{Ground: term.NewIntegerInt64(1)})
	if err := c.AddRule(sym, Own, rule); err == nil {
		t.Fatalf("AddRule should fail on a ReadOnly symbol")
	}
}

func TestClearFailsOnReadOnlyOrProtected(t *testing.T) {
	c := New()

	ro := ident.Intern("ro")
	if err := c.SetAttributes(ro, Attributes(0).Set(ReadOnly)); err != nil {
		t.Fatalf("SetAttributes: %v", err)
	}
	if err := c.Clear(ro); err == nil {
		t.Fatalf("Clear should fail on a ReadOnly symbol")
	}

	prot := ident.Intern("prot")
	if err := c.SetAttributes(prot, Attributes(0).Set(Protected)); err != nil {
		t.Fatalf("SetAttributes: %v", err)
	}
	if err := c.Clear(prot); err == nil {
		t.Fatalf("Clear should fail on a Protected symbol")
	}
}

func TestClearRemovesRecordAndBumpsVersion(t *testing.T) {
	c := New()
	sym := ident.Intern("tmp")
	if err := c.SetAttributes(sym, Attributes(0).Set(Flat)); err != nil {
		t.Fatalf("SetAttributes: %v", err)
	}
	v0 := c.StateVersion()
	if err := c.Clear(sym); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if c.StateVersion() != v0+1 {
		t.Fatalf("state_version should bump on Clear")
	}
	if c.Known(sym) {
		t.Fatalf("symbol should be unknown after Clear")
	}
	if attrs := c.GetAttributes(sym); attrs != 0 {
		t.Fatalf("attributes should reset to empty after Clear")
	}
}

func TestClearAttributesRespectsLocked(t *testing.T) {
	c := New()
	sym := ident.Intern("lockedAttrs")
	if err := c.SetAttributes(sym, Attributes(0).Set(Flat).Set(Locked)); err != nil {
		t.Fatalf("SetAttributes: %v", err)
	}
	if err := c.ClearAttributes(sym); err == nil {
		t.Fatalf("ClearAttributes should fail on a Locked symbol")
	}
	if !c.GetAttributes(sym).Flat() {
		t.Fatalf("attributes should be unchanged after a denied ClearAttributes")
	}
}

func TestRuleEqualityIgnoresReplacement(t *testing.T) {
	pattern := term.NewCompound(term.Sym("f"), term.Sym("x"))
	r1 := NewRule(pattern, Replacement{Ground: term.NewIntegerInt64(1)})
	r2 := NewRule(pattern, Replacement{Ground: term.NewIntegerInt64(2)})
	if !r1.Equal(r2) {
		t.Fatalf("rules with equal pattern+condition should be Equal regardless of replacement")
	}

	cond := term.NewCompound(term.Sym("Greater"), term.Sym("x"), term.NewIntegerInt64(0))
	r3 := NewConditionalRule(pattern, cond, Replacement{Ground: term.NewIntegerInt64(1)})
	if r1.Equal(r3) {
		t.Fatalf("a conditional rule should not equal an unconditional one with the same pattern")
	}
}
