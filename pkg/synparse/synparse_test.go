package synparse_test

import (
	"testing"

	"github.com/lunalang/luna/internal/term"
	"github.com/lunalang/luna/pkg/synparse"
)

func TestParseAtoms(t *testing.T) {
	cases := []struct {
		input string
		want  term.Term
	}{
		{"x", term.Sym("x")},
		{"$Failed", term.Sym("$Failed")},
		{"42", term.NewIntegerInt64(42)},
		{"-7", term.NewIntegerInt64(-7)},
		{`"hello"`, term.NewString("hello")},
		{`"a\nb\"c\\d"`, term.NewString("a\nb\"c\\d")},
	}
	for _, c := range cases {
		got, err := synparse.Parse(c.input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.input, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("Parse(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestParseCompound(t *testing.T) {
	got, err := synparse.Parse("Plus[1, 2, 3]")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := term.NewCompound(term.Sym("Plus"), term.NewIntegerInt64(1), term.NewIntegerInt64(2), term.NewIntegerInt64(3))
	if !got.Equal(want) {
		t.Fatalf("Parse(Plus[1,2,3]) = %s, want %s", got, want)
	}
}

func TestParseEmptyArgList(t *testing.T) {
	got, err := synparse.Parse("f[]")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := term.NewCompound(term.Sym("f"))
	if !got.Equal(want) {
		t.Fatalf("Parse(f[]) = %s, want %s", got, want)
	}
}

// TestParseNonSymbolHead covers spec.md section 4.1's "a Compound with a
// non-Symbol head is legal and must round-trip": f[x][y] parses as
// Compound(Compound(f, x), y).
func TestParseNonSymbolHead(t *testing.T) {
	got, err := synparse.Parse("f[x][y]")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	inner := term.NewCompound(term.Sym("f"), term.Sym("x"))
	want := term.NewCompound(inner, term.Sym("y"))
	if !got.Equal(want) {
		t.Fatalf("Parse(f[x][y]) = %s, want %s", got, want)
	}
}

func TestParseNestedCompound(t *testing.T) {
	got, err := synparse.Parse("f[g[1], 2]")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	inner := term.NewCompound(term.Sym("g"), term.NewIntegerInt64(1))
	want := term.NewCompound(term.Sym("f"), inner, term.NewIntegerInt64(2))
	if !got.Equal(want) {
		t.Fatalf("Parse(f[g[1],2]) = %s, want %s", got, want)
	}
}

// TestParseReal covers real-literal lexing of a plain decimal literal
// (no exponent).
func TestParseReal(t *testing.T) {
	got, err := synparse.Parse("3.25")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !got.IsReal() {
		t.Fatalf("Parse(3.25) produced %s, want a Real", got)
	}
}

func TestParseRealExponent(t *testing.T) {
	got, err := synparse.Parse("1.5e10")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !got.IsReal() {
		t.Fatalf("Parse(1.5e10) produced %s, want a Real", got)
	}
}

// TestParseDisplayRoundTrip covers spec.md section 8's round-trip
// property: Parse(Display(t)) == t for a representative term.
func TestParseDisplayRoundTrip(t *testing.T) {
	original := term.NewCompound(term.Sym("f"),
		term.NewIntegerInt64(-3),
		term.NewString("hi\nthere"),
		term.NewCompound(term.Sym("g")),
	)
	text := synparse.Display(original)
	reparsed, err := synparse.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	if !reparsed.Equal(original) {
		t.Fatalf("round trip: got %s, want %s", reparsed, original)
	}
}

func TestParseErrors(t *testing.T) {
	badInputs := []string{
		"",
		"f[1, 2",
		`"unterminated`,
		"f[1 2]",
		"f[1, 2] extra",
		"@",
	}
	for _, in := range badInputs {
		if _, err := synparse.Parse(in); err == nil {
			t.Fatalf("Parse(%q) succeeded, want an error", in)
		}
	}
}
