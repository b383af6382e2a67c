package context

import (
	"fmt"

	lerrors "github.com/lunalang/luna/internal/errors"
	"github.com/lunalang/luna/pkg/ident"
)

// record is the per-symbol state: its attribute bitset plus the four
// ordered rule containers, grounded on context.rs's split between the
// attributes map and the definitions map (collapsed here into one entry
// per symbol, since Go has no borrow-checker reason to keep them apart).
type record struct {
	attributes Attributes
	own        []Rule
	up         []Rule
	down       []Rule
	sub        []Rule
}

func (r *record) rules(vt ValueType) *[]Rule {
	switch vt {
	case Own:
		return &r.own
	case Up:
		return &r.up
	case Down:
		return &r.down
	default: // Sub
		return &r.sub
	}
}

// Context is the mutable symbol table: a mapping from symbol to its
// attributes and rule lists, plus a monotonic state_version counter
// bumped on every mutation that may affect evaluation results. Grounded on
// original_source/luna_lang/src/context.rs's Context struct.
type Context struct {
	records      map[ident.Symbol]*record
	stateVersion uint64
}

// New returns an empty Context with no symbols registered.
func New() *Context {
	return &Context{records: make(map[ident.Symbol]*record)}
}

// StateVersion returns the monotonic counter, incremented on every
// mutation (attribute change, rule add, or clear) that may affect
// evaluation results.
func (c *Context) StateVersion() uint64 {
	return c.stateVersion
}

func (c *Context) recordFor(sym ident.Symbol) *record {
	r, ok := c.records[sym]
	if !ok {
		r = &record{}
		c.records[sym] = r
	}
	return r
}

// GetAttributes returns sym's attribute bitset, or the empty bitset if
// sym is unknown.
func (c *Context) GetAttributes(sym ident.Symbol) Attributes {
	r, ok := c.records[sym]
	if !ok {
		return 0
	}
	return r.attributes
}

// SetAttributes replaces sym's attribute bitset, failing if
// AttributesReadOnly is currently held.
func (c *Context) SetAttributes(sym ident.Symbol, attrs Attributes) error {
	current := c.GetAttributes(sym)
	if current.AttributesReadOnly() {
		return lerrors.NewContextDeniedError(sym.String(), fmt.Sprintf("symbol %q has read-only attributes", sym))
	}
	c.recordFor(sym).attributes = attrs
	c.stateVersion++
	return nil
}

// GetValues returns sym's rule list for vt, in insertion order. The
// returned slice shares the Context's backing array; callers must not
// mutate it.
func (c *Context) GetValues(sym ident.Symbol, vt ValueType) []Rule {
	r, ok := c.records[sym]
	if !ok {
		return nil
	}
	return *r.rules(vt)
}

// AddRule appends rule to sym's vt rule list, failing if sym is ReadOnly.
// If a rule with an equal pattern+condition already exists, rule replaces
// it at the same position (no duplicate is appended); either way
// state_version is bumped.
func (c *Context) AddRule(sym ident.Symbol, vt ValueType, rule Rule) error {
	if c.GetAttributes(sym).ReadOnly() {
		return lerrors.NewContextDeniedError(sym.String(), fmt.Sprintf("symbol %q is read-only", sym))
	}

	r := c.recordFor(sym)
	list := r.rules(vt)
	for i, existing := range *list {
		if existing.Equal(rule) {
			(*list)[i] = rule
			c.stateVersion++
			return nil
		}
	}
	*list = append(*list, rule)
	c.stateVersion++
	return nil
}

// Clear removes sym's entire record (attributes and all rule lists),
// failing if sym is ReadOnly or Protected.
func (c *Context) Clear(sym ident.Symbol) error {
	attrs := c.GetAttributes(sym)
	if attrs.ReadOnly() {
		return lerrors.NewContextDeniedError(sym.String(), fmt.Sprintf("symbol %q is read-only", sym))
	}
	if attrs.Protected() {
		return lerrors.NewContextDeniedError(sym.String(), fmt.Sprintf("symbol %q is protected", sym))
	}
	if _, ok := c.records[sym]; ok {
		delete(c.records, sym)
		c.stateVersion++
	}
	return nil
}

// ClearAttributes resets sym's attribute bitset to empty, failing if
// Locked (attributes may not be cleared) or AttributesReadOnly.
func (c *Context) ClearAttributes(sym ident.Symbol) error {
	current := c.GetAttributes(sym)
	if current.Locked() {
		return lerrors.NewContextDeniedError(sym.String(), fmt.Sprintf("symbol %q is locked", sym))
	}
	if current.AttributesReadOnly() {
		return lerrors.NewContextDeniedError(sym.String(), fmt.Sprintf("symbol %q has read-only attributes", sym))
	}
	if r, ok := c.records[sym]; ok {
		r.attributes = 0
		c.stateVersion++
	}
	return nil
}

// Known reports whether sym has any record at all (attributes or rules),
// distinct from GetAttributes returning the empty bitset for an unknown
// symbol.
func (c *Context) Known(sym ident.Symbol) bool {
	_, ok := c.records[sym]
	return ok
}

// Symbols returns every symbol with a record, in unspecified order.
func (c *Context) Symbols() []ident.Symbol {
	out := make([]ident.Symbol, 0, len(c.records))
	for sym := range c.records {
		out = append(out, sym)
	}
	return out
}
