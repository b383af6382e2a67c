// Package ident provides interned symbol handles: the "interned-string
// pool" that the term/pattern/evaluator core treats as an opaque external
// collaborator. Every distinct name is interned exactly once per Table, so
// two Symbol values compare equal in O(1) (pointer identity) rather than by
// comparing their underlying strings.
//
// Unlike the case-insensitive identifier table this package is adapted
// from, M-expression symbol names are case-sensitive: "Foo" and "foo" are
// distinct symbols.
package ident

// Symbol is a handle to an interned name. The zero Symbol is invalid; use
// Table.Intern to obtain one.
type Symbol struct {
	e *entry
}

type entry struct {
	name string
}

// Table interns names to Symbol handles.
type Table struct {
	entries map[string]*entry
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*entry)}
}

// Intern returns the Symbol for name, creating it on first use.
func (t *Table) Intern(name string) Symbol {
	if e, ok := t.entries[name]; ok {
		return Symbol{e}
	}
	e := &entry{name: name}
	t.entries[name] = e
	return Symbol{e}
}

// Lookup returns the Symbol for name without interning it, if it already
// exists.
func (t *Table) Lookup(name string) (Symbol, bool) {
	e, ok := t.entries[name]
	if !ok {
		return Symbol{}, false
	}
	return Symbol{e}, true
}

// Len reports how many distinct names have been interned.
func (t *Table) Len() int {
	return len(t.entries)
}

// Default is the package-level interning table used by the free functions
// below, for callers that don't need isolated symbol namespaces.
var Default = NewTable()

// Intern interns name in the default table.
func Intern(name string) Symbol {
	return Default.Intern(name)
}

// IsZero reports whether s is the zero Symbol (never interned).
func (s Symbol) IsZero() bool {
	return s.e == nil
}

// String returns the interned name.
func (s Symbol) String() string {
	if s.e == nil {
		return ""
	}
	return s.e.name
}

// Equal reports whether s and o name the same interned entry. Symbols from
// different Tables are never equal even if their names match.
func (s Symbol) Equal(o Symbol) bool {
	return s.e == o.e
}

// Less orders symbols lexicographically by name. This is a total order
// usable for deterministic sorting, independent of interning order.
func (s Symbol) Less(o Symbol) bool {
	return s.String() < o.String()
}

// Compare returns -1, 0, or 1 per the lexicographic order of the names.
func (s Symbol) Compare(o Symbol) int {
	a, b := s.String(), o.String()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
