// Package pattern implements the non-deterministic matcher that enumerates
// every binding of pattern variables to sub-terms of a subject, per
// spec.md section 4.3. It dispatches by the subject head's Flat/Orderless
// attributes (read from internal/context) to the appropriate rule
// generator: free (neither), commutative, associative, or
// associative-commutative.
package pattern

import (
	"github.com/lunalang/luna/internal/term"
	"github.com/lunalang/luna/pkg/ident"
)

var (
	blankSym             = ident.Intern("Blank")
	blankSequenceSym     = ident.Intern("BlankSequence")
	blankNullSequenceSym = ident.Intern("BlankNullSequence")
	patternSym           = ident.Intern("Pattern")
	conditionSym         = ident.Intern("Condition")
	sequenceSym          = ident.Intern("Sequence")
)

// SequenceTerm builds a Sequence[…] term wrapping elements — the internal
// representation a sequence-variable binding takes, per spec.md section
// 4.3's pattern sub-language table.
func SequenceTerm(elements ...term.Term) term.Term {
	return term.NewCompound(term.NewSymbol(sequenceSym), elements...)
}

// blankForm reports whether p is Blank[] or Blank[h], returning the head
// constraint h if present.
func blankForm(p term.Term) (headConstraint term.Term, hasHeadConstraint bool, ok bool) {
	return atomPatternForm(p, blankSym)
}

func blankSequenceForm(p term.Term) (headConstraint term.Term, hasHeadConstraint bool, ok bool) {
	return atomPatternForm(p, blankSequenceSym)
}

func blankNullSequenceForm(p term.Term) (headConstraint term.Term, hasHeadConstraint bool, ok bool) {
	return atomPatternForm(p, blankNullSequenceSym)
}

func atomPatternForm(p term.Term, head ident.Symbol) (headConstraint term.Term, hasHeadConstraint bool, ok bool) {
	if !p.IsCompound() || !p.HasSymbolHead(head) {
		return term.Term{}, false, false
	}
	switch p.Len() {
	case 0:
		return term.Term{}, false, true
	case 1:
		h, _ := p.Element(0)
		return h, true, true
	default:
		return term.Term{}, false, false
	}
}

// unwrapNamed peels off a Pattern[name, inner] wrapper, reporting the bound
// name if present. If p is not a Pattern[…] form, inner is p itself and
// hasName is false.
func unwrapNamed(p term.Term) (name ident.Symbol, hasName bool, inner term.Term) {
	if p.IsCompound() && p.HasSymbolHead(patternSym) && p.Len() == 2 {
		nameTerm, _ := p.Element(0)
		if sym, ok := nameTerm.AsSymbol(); ok {
			innerTerm, _ := p.Element(1)
			return sym, true, innerTerm
		}
	}
	return ident.Symbol{}, false, p
}

// stripCondition unwraps Condition[inner, predicate] to inner. The
// predicate itself is not evaluated here — spec.md section 4.3 directs
// that to the evaluator, which checks a rule's Condition after a match is
// found.
func stripCondition(p term.Term) term.Term {
	if p.IsCompound() && p.HasSymbolHead(conditionSym) && p.Len() == 2 {
		inner, _ := p.Element(0)
		return inner
	}
	return p
}

// individualVar reports whether p (after stripping Condition and Pattern
// wrappers) is an individual-variable pattern: Blank[] / Blank[h] /
// Pattern[x, Blank[…]].
type individualVar struct {
	name          ident.Symbol
	hasName       bool
	headConstr    term.Term
	hasHeadConstr bool
}

func parseIndividualVar(p term.Term) (individualVar, bool) {
	p = stripCondition(p)
	name, hasName, inner := unwrapNamed(p)
	headConstr, hasHeadConstr, ok := blankForm(inner)
	if !ok {
		return individualVar{}, false
	}
	return individualVar{name: name, hasName: hasName, headConstr: headConstr, hasHeadConstr: hasHeadConstr}, true
}

// sequenceVar reports whether p is a sequence-variable pattern:
// BlankSequence[…] / BlankNullSequence[…] / Pattern[x, either].
type sequenceVar struct {
	name          ident.Symbol
	hasName       bool
	matchesEmpty  bool
	headConstr    term.Term
	hasHeadConstr bool
}

func parseSequenceVar(p term.Term) (sequenceVar, bool) {
	p = stripCondition(p)
	name, hasName, inner := unwrapNamed(p)

	if headConstr, hasHeadConstr, ok := blankSequenceForm(inner); ok {
		return sequenceVar{name: name, hasName: hasName, matchesEmpty: false, headConstr: headConstr, hasHeadConstr: hasHeadConstr}, true
	}
	if headConstr, hasHeadConstr, ok := blankNullSequenceForm(inner); ok {
		return sequenceVar{name: name, hasName: hasName, matchesEmpty: true, headConstr: headConstr, hasHeadConstr: hasHeadConstr}, true
	}
	return sequenceVar{}, false
}

// isAnySequenceVariable reports whether p is any sequence-variable form,
// mirroring original_source's is_any_sequence_variable used to decide
// DNC/DC vs SVE-* dispatch.
func isAnySequenceVariable(p term.Term) bool {
	_, ok := parseSequenceVar(p)
	return ok
}

// satisfiesHeadConstraint reports whether t's head matches the given
// constraint, which is always true when there is no constraint.
func satisfiesHeadConstraint(t term.Term, headConstraint term.Term, has bool) bool {
	if !has {
		return true
	}
	return t.Head().Equal(headConstraint)
}
