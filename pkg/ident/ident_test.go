package ident

import "testing"

func TestInternReturnsSameHandle(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("Foo")
	b := tbl.Intern("Foo")

	if !a.Equal(b) {
		t.Fatalf("expected repeated Intern of the same name to return equal handles")
	}
}

func TestInternIsCaseSensitive(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("Foo")
	b := tbl.Intern("foo")

	if a.Equal(b) {
		t.Fatalf("expected Foo and foo to intern to distinct symbols")
	}
}

func TestDistinctTablesDoNotShareIdentity(t *testing.T) {
	t1, t2 := NewTable(), NewTable()
	a := t1.Intern("X")
	b := t2.Intern("X")

	if a.Equal(b) {
		t.Fatalf("symbols from distinct tables must never compare equal")
	}
}

func TestLookupMissing(t *testing.T) {
	tbl := NewTable()
	if _, ok := tbl.Lookup("Nope"); ok {
		t.Fatalf("expected Lookup of un-interned name to fail")
	}

	tbl.Intern("Nope")
	if _, ok := tbl.Lookup("Nope"); !ok {
		t.Fatalf("expected Lookup to find name after Intern")
	}
}

func TestCompareAndLess(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("Alpha")
	b := tbl.Intern("Beta")

	if !a.Less(b) {
		t.Fatalf("expected Alpha < Beta")
	}
	if a.Compare(b) >= 0 {
		t.Fatalf("expected Compare(Alpha, Beta) < 0")
	}
	if b.Compare(a) <= 0 {
		t.Fatalf("expected Compare(Beta, Alpha) > 0")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected Compare(Alpha, Alpha) == 0")
	}
}

func TestLen(t *testing.T) {
	tbl := NewTable()
	tbl.Intern("A")
	tbl.Intern("B")
	tbl.Intern("A")

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
}
