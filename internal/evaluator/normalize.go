package evaluator

import (
	"sort"

	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
	"github.com/lunalang/luna/pkg/ident"
)

// Algebraic normalization (Flat/Orderless/OneIdentity) and the Sequence-
// splicing / Unevaluated-stripping passes are kept as pure functions on
// element lists, separate from rule matching and built-ins, per spec.md
// section 9's design note — each is independently testable.

var (
	sequenceSym    = ident.Intern("Sequence")
	unevaluatedSym = ident.Intern("Unevaluated")
	listSym        = ident.Intern("List")
)

// spliceSequences replaces every Sequence[...] element with its own
// elements spliced in place, per spec.md section 4.4 step 4.
func spliceSequences(elements []term.Term) []term.Term {
	hasSequence := false
	for _, e := range elements {
		if e.IsCompound() && e.HasSymbolHead(sequenceSym) {
			hasSequence = true
			break
		}
	}
	if !hasSequence {
		return elements
	}

	out := make([]term.Term, 0, len(elements))
	for _, e := range elements {
		if e.IsCompound() && e.HasSymbolHead(sequenceSym) {
			out = append(out, e.Elements()...)
		} else {
			out = append(out, e)
		}
	}
	return out
}

// stripUnevaluated replaces each Unevaluated[x] element with x, peeling
// exactly one layer, per spec.md section 4.4 step 5.
func stripUnevaluated(elements []term.Term) []term.Term {
	changed := false
	out := make([]term.Term, len(elements))
	for i, e := range elements {
		if e.IsCompound() && e.HasSymbolHead(unevaluatedSym) && e.Len() == 1 {
			inner, _ := e.Element(0)
			out[i] = inner
			changed = true
		} else {
			out[i] = e
		}
	}
	if !changed {
		return elements
	}
	return out
}

// flatten expands any element whose head equals headPrime into its own
// elements, one level deep, per spec.md section 4.4 step 6. Children are
// already fully evaluated (and therefore already flattened under their
// own head) by the time this runs, so one expansion pass over the
// top-level elements suffices.
func flatten(current term.Term, headPrime term.Term) term.Term {
	elements := current.Elements()
	hasNested := false
	for _, e := range elements {
		if e.IsCompound() && e.Head().Equal(headPrime) {
			hasNested = true
			break
		}
	}
	if !hasNested {
		return current
	}

	out := make([]term.Term, 0, len(elements))
	for _, e := range elements {
		if e.IsCompound() && e.Head().Equal(headPrime) {
			out = append(out, e.Elements()...)
		} else {
			out = append(out, e)
		}
	}
	return current.WithElements(out)
}

// sortOrderless sorts current's elements by the Term total order, per
// spec.md section 4.4 step 8.
func sortOrderless(current term.Term) term.Term {
	elements := append([]term.Term(nil), current.Elements()...)
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Less(elements[j])
	})
	return current.WithElements(elements)
}

// threadListable implements spec.md section 4.4 step 7: if any argument is
// a List[...], thread the head over corresponding positions of every List
// argument (non-list arguments are repeated at every position), requiring
// all List arguments share one length. Returns ok=false when no argument
// is a List (the common case, left untouched).
func threadListable(ctx *context.Context, current term.Term, mutable bool) (term.Term, bool) {
	elements := current.Elements()

	length := -1
	anyList := false
	for _, e := range elements {
		if e.IsCompound() && e.HasSymbolHead(listSym) {
			anyList = true
			if length == -1 {
				length = e.Len()
			} else if e.Len() != length {
				// Mismatched list lengths: spec.md leaves this an edge
				// case for the built-in/evaluator to surface; threading
				// does not apply, fall through unmodified.
				return current, false
			}
		}
	}
	if !anyList {
		return current, false
	}

	rows := make([]term.Term, length)
	for row := 0; row < length; row++ {
		rowArgs := make([]term.Term, len(elements))
		for i, e := range elements {
			if e.IsCompound() && e.HasSymbolHead(listSym) {
				el, _ := e.Element(row)
				rowArgs[i] = el
			} else {
				rowArgs[i] = e
			}
		}
		rows[row] = evaluate(ctx, term.NewCompound(current.Head(), rowArgs...), mutable)
	}
	return term.NewCompound(term.NewSymbol(listSym), rows...), true
}
