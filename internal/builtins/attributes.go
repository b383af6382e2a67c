package builtins

import (
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
	"github.com/lunalang/luna/pkg/ident"
)

// attributeNames pairs each context.Attribute with its display name, in
// spec.md section 3's table order — used by Attributes[] to render the
// bitset and by SetAttributes/ClearAttributes to parse one back.
var attributeNames = []struct {
	attr context.Attribute
	name string
}{
	{context.ReadOnly, "ReadOnly"},
	{context.AttributesReadOnly, "AttributesReadOnly"},
	{context.Protected, "Protected"},
	{context.HoldFirst, "HoldFirst"},
	{context.HoldRest, "HoldRest"},
	{context.HoldAll, "HoldAll"},
	{context.HoldAllComplete, "HoldAllComplete"},
	{context.HoldSequence, "HoldSequence"},
	{context.Flat, "Flat"},
	{context.Orderless, "Orderless"},
	{context.OneIdentity, "OneIdentity"},
	{context.Listable, "Listable"},
	{context.NumericFunction, "NumericFunction"},
	{context.Locked, "Locked"},
}

func attributeByName(name string) (context.Attribute, bool) {
	for _, a := range attributeNames {
		if a.name == name {
			return a.attr, true
		}
	}
	return 0, false
}

// parseAttributeList accepts either a single attribute-name Symbol or a
// List[...] of them, returning the OR'd bitset.
func parseAttributeList(t term.Term) (context.Attributes, bool) {
	var names []term.Term
	if t.IsCompound() && t.HasSymbolHead(ident.Intern("List")) {
		names = t.Elements()
	} else {
		names = []term.Term{t}
	}

	var bits context.Attributes
	for _, n := range names {
		sym, ok := n.AsSymbol()
		if !ok {
			return 0, false
		}
		attr, ok := attributeByName(sym.String())
		if !ok {
			return 0, false
		}
		bits = bits.Set(attr)
	}
	return bits, true
}

// registerAttributes implements Attributes[s_]: HoldFirst leaves s as the
// literal symbol term; returns List[...] of the symbol's attribute names.
func registerAttributes(ctx *context.Context) {
	sVar := namedBlank("s")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		s, _ := bindings.Get(symS)
		sym, ok := s.AsSymbol()
		if !ok {
			return failedSym, true
		}
		attrs := ctx.GetAttributes(sym)
		var names []term.Term
		for _, a := range attributeNames {
			if attrs.Has(a.attr) {
				names = append(names, term.Sym(a.name))
			}
		}
		return term.NewCompound(term.Sym("List"), names...), true
	}
	mustAddDown(ctx, "Attributes", context.NewRule(pat("Attributes", sVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
	lockDown(ctx, "Attributes", context.Attributes(0).Set(context.HoldFirst), true)
}

// registerSetAttributes implements SetAttributes[s_, a_]: HoldFirst leaves
// s as the literal symbol; a is evaluated and parsed as one or more
// attribute names to union in. $Failed if s is AttributesReadOnly.
func registerSetAttributes(ctx *context.Context) {
	sVar, aVar := namedBlank("s"), namedBlank("a")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		s, _ := bindings.Get(symS)
		a, _ := bindings.Get(symA)
		sym, ok := s.AsSymbol()
		if !ok {
			return failedSym, true
		}
		requested, ok := parseAttributeList(a)
		if !ok {
			return failedSym, true
		}
		current := ctx.GetAttributes(sym)
		if err := ctx.SetAttributes(sym, current.Union(requested)); err != nil {
			return failedSym, true
		}
		return nullSym, true
	}
	mustAddDown(ctx, "SetAttributes", context.NewRule(pat("SetAttributes", sVar, aVar), context.Replacement{Builtin: fn, Access: context.ReadWriteAccess}))
	lockDown(ctx, "SetAttributes", context.Attributes(0).Set(context.HoldFirst), true)
}

// registerClearAttributes implements ClearAttributes[s_, a_]: as
// SetAttributes, but removes the named attributes instead of adding them.
func registerClearAttributes(ctx *context.Context) {
	sVar, aVar := namedBlank("s"), namedBlank("a")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		s, _ := bindings.Get(symS)
		a, _ := bindings.Get(symA)
		sym, ok := s.AsSymbol()
		if !ok {
			return failedSym, true
		}
		requested, ok := parseAttributeList(a)
		if !ok {
			return failedSym, true
		}
		current := ctx.GetAttributes(sym)
		for _, attr := range attributeNames {
			if requested.Has(attr.attr) {
				current = current.Clear(attr.attr)
			}
		}
		if err := ctx.SetAttributes(sym, current); err != nil {
			return failedSym, true
		}
		return nullSym, true
	}
	mustAddDown(ctx, "ClearAttributes", context.NewRule(pat("ClearAttributes", sVar, aVar), context.Replacement{Builtin: fn, Access: context.ReadWriteAccess}))
	lockDown(ctx, "ClearAttributes", context.Attributes(0).Set(context.HoldFirst), true)
}

// registerClear implements Clear[s_]: HoldAll leaves s as the literal
// symbol; removes its entire record. $Failed if ReadOnly or Protected.
func registerClear(ctx *context.Context) {
	sVar := namedBlank("s")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		s, _ := bindings.Get(symS)
		sym, ok := s.AsSymbol()
		if !ok {
			return failedSym, true
		}
		if err := ctx.Clear(sym); err != nil {
			return failedSym, true
		}
		return nullSym, true
	}
	mustAddDown(ctx, "Clear", context.NewRule(pat("Clear", sVar), context.Replacement{Builtin: fn, Access: context.ReadWriteAccess}))
	lockDown(ctx, "Clear", context.Attributes(0).Set(context.HoldAll), true)
}
