// Package term implements the immutable, reference-shared symbolic
// expression values ("M-expressions") that are the evaluation core's
// universal currency: strings, arbitrary-precision numbers, interned
// symbols, and compound forms f[e1, e2, ...].
package term

import (
	"math/big"

	"github.com/lunalang/luna/pkg/ident"
)

// Kind tags which of the five Term variants a value holds.
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
	KindReal
	KindSymbol
	KindCompound
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindSymbol:
		return "Symbol"
	case KindCompound:
		return "Compound"
	default:
		return "Unknown"
	}
}

// Term is the sum type described in spec.md section 3. A Term value is
// cheap to copy: atoms carry their payload inline (or via an already-shared
// pointer, for Integer), and Compound shares its backing slice, so copying
// a Term never deep-copies a compound's elements.
//
// Compound terms use the "enum-flat" representation named canonical by the
// spec: parts[0] is the head, parts[1:] are the elements, all living in one
// shared slice — grounded on original_source/luna_lang/src/atom.rs's
// Atom::SExpr(Arc<Vec<Atom>>), which uses the identical layout.
type Term struct {
	kind    Kind
	str     string
	integer *big.Int
	real    Real
	symbol  ident.Symbol
	parts   []Term // only for KindCompound; parts[0] = head
}

// NewString constructs a String atom.
func NewString(s string) Term {
	return Term{kind: KindString, str: s}
}

// NewInteger constructs an Integer atom. v must not be nil.
func NewInteger(v *big.Int) Term {
	return Term{kind: KindInteger, integer: v}
}

// NewIntegerInt64 is a convenience constructor for small integer literals.
func NewIntegerInt64(v int64) Term {
	return NewInteger(big.NewInt(v))
}

// NewRealTerm constructs a Real atom from an already-built Real value.
func NewRealTerm(v Real) Term {
	return Term{kind: KindReal, real: v}
}

// NewSymbol constructs a Symbol atom from an interned handle.
func NewSymbol(s ident.Symbol) Term {
	return Term{kind: KindSymbol, symbol: s}
}

// Sym interns name in the default symbol table and wraps it as a Term.
// Convenience for constructing well-known symbols in Go code.
func Sym(name string) Term {
	return NewSymbol(ident.Intern(name))
}

// NewCompound constructs head[elements...]. The head and elements are
// copied into a single fresh backing slice; subsequent calls to Elements
// or Head on the result share that slice rather than copying it again.
func NewCompound(head Term, elements ...Term) Term {
	parts := make([]Term, 0, len(elements)+1)
	parts = append(parts, head)
	parts = append(parts, elements...)
	return Term{kind: KindCompound, parts: parts}
}

// newCompoundFromParts wraps an already-built parts slice (parts[0] = head)
// without copying. Used internally by code that has already assembled the
// slice (Substitute, WithElements).
func newCompoundFromParts(parts []Term) Term {
	return Term{kind: KindCompound, parts: parts}
}

// Kind reports which variant t holds.
func (t Term) Kind() Kind {
	return t.kind
}

func (t Term) IsString() bool   { return t.kind == KindString }
func (t Term) IsInteger() bool  { return t.kind == KindInteger }
func (t Term) IsReal() bool     { return t.kind == KindReal }
func (t Term) IsSymbol() bool   { return t.kind == KindSymbol }
func (t Term) IsCompound() bool { return t.kind == KindCompound }

// AsString returns the String payload, if t is a String atom.
func (t Term) AsString() (string, bool) {
	if t.kind != KindString {
		return "", false
	}
	return t.str, true
}

// AsInteger returns the Integer payload, if t is an Integer atom.
func (t Term) AsInteger() (*big.Int, bool) {
	if t.kind != KindInteger {
		return nil, false
	}
	return t.integer, true
}

// AsReal returns the Real payload, if t is a Real atom.
func (t Term) AsReal() (Real, bool) {
	if t.kind != KindReal {
		return Real{}, false
	}
	return t.real, true
}

// AsSymbol returns the Symbol payload, if t is a Symbol atom.
func (t Term) AsSymbol() (ident.Symbol, bool) {
	if t.kind != KindSymbol {
		return ident.Symbol{}, false
	}
	return t.symbol, true
}

var (
	headString = ident.Intern("String")
	headInt    = ident.Intern("Integer")
	headReal   = ident.Intern("Real")
	headSymbol = ident.Intern("Symbol")
)

// Head returns the head of t: the symbol named after the atom's variant
// for atoms ("String", "Integer", "Real", "Symbol"), or parts[0] for a
// Compound.
func (t Term) Head() Term {
	switch t.kind {
	case KindString:
		return NewSymbol(headString)
	case KindInteger:
		return NewSymbol(headInt)
	case KindReal:
		return NewSymbol(headReal)
	case KindSymbol:
		return NewSymbol(headSymbol)
	default: // KindCompound
		return t.parts[0]
	}
}

// Name returns the symbol-table key for t: the symbol itself for a Symbol,
// the head's symbol for a Compound whose head is a Symbol, or false
// otherwise.
func (t Term) Name() (ident.Symbol, bool) {
	switch t.kind {
	case KindSymbol:
		return t.symbol, true
	case KindCompound:
		return t.parts[0].AsSymbol()
	default:
		return ident.Symbol{}, false
	}
}

// HasSymbolHead reports whether t's head is the Symbol named head.
func (t Term) HasSymbolHead(head ident.Symbol) bool {
	h, ok := t.Head().AsSymbol()
	return ok && h.Equal(head)
}

// Len returns the number of elements in a Compound (0 for atoms).
func (t Term) Len() int {
	if t.kind != KindCompound {
		return 0
	}
	return len(t.parts) - 1
}

// IsEmpty reports whether a Compound has zero elements; always true for
// atoms.
func (t Term) IsEmpty() bool {
	return t.Len() == 0
}

// Element returns the i'th element (0-indexed) of a Compound.
func (t Term) Element(i int) (Term, bool) {
	if t.kind != KindCompound || i < 0 || i >= len(t.parts)-1 {
		return Term{}, false
	}
	return t.parts[i+1], true
}

// Elements returns the Compound's element slice (excluding the head),
// sharing the backing array: callers must not mutate it.
func (t Term) Elements() []Term {
	if t.kind != KindCompound {
		return nil
	}
	return t.parts[1:]
}

// Parts returns the full backing slice (parts[0] = head, parts[1:] =
// elements) for a Compound, or a single-element slice naming the atom's
// variant head for an atom — mirroring
// original_source/luna_lang/src/atom.rs's Atom::parts().
func (t Term) Parts() []Term {
	if t.kind == KindCompound {
		return t.parts
	}
	return []Term{t.Head()}
}

// WithElements returns a new Compound with the same head as t and the
// given replacement elements. t must be a Compound.
func (t Term) WithElements(elements []Term) Term {
	parts := make([]Term, 0, len(elements)+1)
	parts = append(parts, t.parts[0])
	parts = append(parts, elements...)
	return newCompoundFromParts(parts)
}
