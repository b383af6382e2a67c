package pattern

import (
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
	"github.com/lunalang/luna/pkg/ident"
)

// equation is a single `pattern ≪ ground` match equation, per spec.md
// section 4.3.
type equation struct {
	Pattern term.Term
	Ground  term.Term
}

// substitution is one variable-to-term binding produced by a rule
// generator step.
type substitution struct {
	Name  ident.Symbol
	Value term.Term
}

// alternative is one output of a rule generator's next() call: the
// bindings and/or follow-up equations it produces, matching spec.md's
// MatchResultList.
type alternative struct {
	Subs      []substitution
	Equations []equation
}

// Matcher enumerates every solution to a match equation against a fixed
// context snapshot. Not safe for concurrent use by multiple goroutines,
// mirroring spec.md section 4.3's "a single matcher is not thread-safe".
//
// Unlike original_source/luna_lang/src/matching/matcher.rs's three-stack
// resumable state machine (equation_stack/match_stack/bindings, built to
// let a systems-language iterator suspend mid-search without recursion),
// this Matcher performs the equivalent backtracking search as a single
// eager depth-first recursion and materializes every solution up front.
// The domain here is always a finite, already-fully-materialized term
// tree — there is no unbounded or external solution stream to stay lazy
// over — so the recursion depth is bounded by the subject's size (see
// DESIGN.md). Next still returns one solution per call in a deterministic
// order; every solution is computed when the Matcher is built, not on
// demand.
type Matcher struct {
	ctx       *context.Context
	solutions []term.Bindings
	pos       int
}

// NewMatcher builds every solution to pattern ≪ subject under ctx's
// current attributes. Subsequent mutation of ctx does not affect an
// already-built Matcher, matching spec.md's "given the same context
// version" determinism contract (a fresh Matcher must be built after any
// state_version change).
func NewMatcher(ctx *context.Context, pattern, subject term.Term) *Matcher {
	m := &Matcher{ctx: ctx}
	m.solutions = solve(ctx, []equation{{Pattern: pattern, Ground: subject}}, term.NewBindings())
	return m
}

// Next returns the next solution's bindings, or ok=false once exhausted.
func (m *Matcher) Next() (term.Bindings, bool) {
	if m.pos >= len(m.solutions) {
		return nil, false
	}
	b := m.solutions[m.pos]
	m.pos++
	return b, true
}

// Count returns the total number of solutions (already materialized).
func (m *Matcher) Count() int {
	return len(m.solutions)
}

// solve performs the backtracking search: pop one equation, enumerate
// every alternative a dispatched rule generator produces, and recurse on
// the remaining equations (original tail plus whatever the alternative
// added) with each alternative's bindings merged in. A binding conflicting
// with an existing one for the same name fails that branch.
func solve(ctx *context.Context, equations []equation, bindings term.Bindings) []term.Bindings {
	if len(equations) == 0 {
		return []term.Bindings{bindings}
	}

	eq := equations[len(equations)-1]
	rest := equations[:len(equations)-1]

	var out []term.Bindings
	for _, alt := range alternatives(ctx, eq) {
		nb := bindings.Clone()
		ok := true
		for _, sub := range alt.Subs {
			if existing, has := nb.Get(sub.Name); has {
				if !existing.Equal(sub.Value) {
					ok = false
					break
				}
				continue
			}
			nb.Set(sub.Name, sub.Value)
		}
		if !ok {
			continue
		}

		newEquations := make([]equation, 0, len(rest)+len(alt.Equations))
		newEquations = append(newEquations, rest...)
		newEquations = append(newEquations, alt.Equations...)

		out = append(out, solve(ctx, newEquations, nb)...)
	}
	return out
}

// alternatives dispatches a single match equation to the one rule
// generator class whose shape it matches, per spec.md section 4.3's
// rule-generator catalog, and enumerates every alternative that generator
// produces.
func alternatives(ctx *context.Context, eq equation) []alternative {
	// T: trivial elimination.
	if eq.Pattern.Equal(eq.Ground) {
		return []alternative{{}}
	}

	// VE (individual): x_ / Blank[h] / Pattern[x, Blank[h]] against any
	// single term.
	if iv, ok := parseIndividualVar(eq.Pattern); ok {
		if !satisfiesHeadConstraint(eq.Ground, iv.headConstr, iv.hasHeadConstr) {
			return nil
		}
		if !iv.hasName {
			return []alternative{{}}
		}
		return []alternative{{Subs: []substitution{{Name: iv.name, Value: eq.Ground}}}}
	}

	// VE (sequence): a bare sequence-variable pattern matched directly
	// against an already-built Sequence[…] ground (the shape DC/SVE-*
	// produce internally when closing out a decomposition).
	if sv, ok := parseSequenceVar(eq.Pattern); ok {
		if elements, isSeq := sequenceElements(eq.Ground); isSeq {
			if !sv.matchesEmpty && len(elements) == 0 {
				return nil
			}
			if sv.hasHeadConstr {
				for _, e := range elements {
					if !e.Head().Equal(sv.headConstr) {
						return nil
					}
				}
			}
			if !sv.hasName {
				return []alternative{{}}
			}
			return []alternative{{Subs: []substitution{{Name: sv.name, Value: eq.Ground}}}}
		}
	}

	if !eq.Pattern.IsCompound() || !eq.Ground.IsCompound() {
		return nil
	}

	pHead, gHead := eq.Pattern.Head(), eq.Ground.Head()

	// FVE: the pattern's head is itself an individual-variable pattern
	// (h_[…]): bind it to the ground's concrete head and re-queue
	// decomposition under that head.
	if iv, ok := parseIndividualVar(pHead); ok {
		patternTail := eq.Pattern.Elements()
		groundTail := eq.Ground.Elements()
		newEq := equation{
			Pattern: term.NewCompound(gHead, patternTail...),
			Ground:  term.NewCompound(gHead, groundTail...),
		}
		alt := alternative{Equations: []equation{newEq}}
		if iv.hasName {
			alt.Subs = []substitution{{Name: iv.name, Value: gHead}}
		}
		return []alternative{alt}
	}

	// Both heads concrete: require equality (no rule otherwise).
	if !pHead.Equal(gHead) {
		return nil
	}

	patternElems := eq.Pattern.Elements()
	groundElems := eq.Ground.Elements()

	if len(patternElems) == 0 {
		return nil // already handled by T above when also ground is empty
	}

	attrs := context.Attributes(0)
	if sym, ok := gHead.AsSymbol(); ok {
		attrs = ctx.GetAttributes(sym)
	}
	commutative := attrs.Orderless()
	associative := attrs.Flat()

	first := patternElems[0]
	rest := patternElems[1:]

	if sv, ok := parseSequenceVar(first); ok {
		switch {
		case associative && commutative:
			return sveAC(gHead, rest, groundElems, sv)
		case associative:
			return sveA(gHead, rest, groundElems, sv)
		case commutative:
			return sveC(gHead, rest, groundElems, sv)
		default:
			return sveF(gHead, rest, groundElems, sv)
		}
	}

	switch {
	case associative && commutative:
		return iveAC(gHead, rest, groundElems, first)
	case associative:
		return iveA(gHead, rest, groundElems, first)
	case commutative:
		return dc(gHead, rest, groundElems, first)
	default:
		return dnc(gHead, rest, groundElems, first)
	}
}

// sequenceElements reports whether t is a Sequence[…] term, returning its
// elements.
func sequenceElements(t term.Term) ([]term.Term, bool) {
	if t.IsCompound() && t.HasSymbolHead(sequenceSym) {
		return t.Elements(), true
	}
	return nil, false
}

func tailEquation(head term.Term, patternRest, groundRest []term.Term) equation {
	return equation{
		Pattern: term.NewCompound(head, patternRest...),
		Ground:  term.NewCompound(head, groundRest...),
	}
}

// dnc: decomposition under a non-commutative, non-associative (free)
// head. Pairs the first pattern element with the first ground element;
// the rest is a tail equation.
func dnc(head term.Term, patternRest, groundElems []term.Term, first term.Term) []alternative {
	if len(groundElems) == 0 {
		return nil
	}
	return []alternative{{
		Equations: []equation{
			{Pattern: first, Ground: groundElems[0]},
			tailEquation(head, patternRest, groundElems[1:]),
		},
	}}
}

// dc: decomposition under a commutative (or associative-commutative,
// for the individual-variable case) head. Pairs the first pattern element
// against every ground element in turn.
func dc(head term.Term, patternRest, groundElems []term.Term, first term.Term) []alternative {
	alts := make([]alternative, 0, len(groundElems))
	for k := range groundElems {
		remainder := make([]term.Term, 0, len(groundElems)-1)
		remainder = append(remainder, groundElems[:k]...)
		remainder = append(remainder, groundElems[k+1:]...)
		alts = append(alts, alternative{
			Equations: []equation{
				{Pattern: first, Ground: groundElems[k]},
				tailEquation(head, patternRest, remainder),
			},
		})
	}
	return alts
}

// sveF: sequence-variable elimination under a free head. Grows the bound
// prefix of groundElems from 0 (if the variable may match empty) or 1 up
// to its full length.
func sveF(head term.Term, patternRest, groundElems []term.Term, sv sequenceVar) []alternative {
	start := 1
	if sv.matchesEmpty {
		start = 0
	}
	var alts []alternative
	for length := start; length <= len(groundElems); length++ {
		prefix := groundElems[:length]
		if sv.hasHeadConstr && !allHeadsMatch(prefix, sv.headConstr) {
			continue
		}
		alts = append(alts, alternative{
			Subs:      sequenceSubs(sv, SequenceTerm(prefix...)),
			Equations: []equation{tailEquation(head, patternRest, groundElems[length:])},
		})
	}
	return alts
}

// dc's commutative counterpart for sequence variables: every subset of
// groundElems, in Gosper order, crossed with every permutation of that
// subset.
func sveC(head term.Term, patternRest, groundElems []term.Term, sv sequenceVar) []alternative {
	n := uint32(len(groundElems))
	if n == 0 && !sv.matchesEmpty {
		return nil
	}
	start := uint32(1)
	if sv.matchesEmpty {
		start = 0
	}

	var alts []alternative
	mask := start
	first := true
	for {
		if !first {
			next, ok := nextSubset(n, mask)
			if !ok {
				break
			}
			mask = next
		}
		first = false

		subset, complement := subsetElements(groundElems, mask)
		if sv.hasHeadConstr && !allHeadsMatch(subset, sv.headConstr) {
			continue
		}
		perms, err := allPermutations(len(subset))
		if err != nil {
			continue
		}
		for _, perm := range perms {
			ordered := make([]term.Term, len(subset))
			for i, idx := range perm {
				ordered[i] = subset[idx]
			}
			alts = append(alts, alternative{
				Subs:      sequenceSubs(sv, SequenceTerm(ordered...)),
				Equations: []equation{tailEquation(head, patternRest, complement)},
			})
		}

		if n == 0 {
			break
		}
	}
	return alts
}

// sveA: sequence-variable elimination under an associative head. Grows a
// prefix of groundElems, enumerating every AFA grouping of that prefix at
// each length.
func sveA(head term.Term, patternRest, groundElems []term.Term, sv sequenceVar) []alternative {
	var alts []alternative
	if sv.matchesEmpty {
		alts = append(alts, alternative{
			Subs:      sequenceSubs(sv, SequenceTerm()),
			Equations: []equation{tailEquation(head, patternRest, groundElems)},
		})
	}

	for length := 1; length <= len(groundElems); length++ {
		prefix := groundElems[:length]
		for _, grouping := range afaGroupings(head, prefix) {
			alts = append(alts, alternative{
				Subs:      sequenceSubs(sv, SequenceTerm(grouping...)),
				Equations: []equation{tailEquation(head, patternRest, groundElems[length:])},
			})
		}
	}
	return alts
}

// sveAC: sequence-variable elimination under an associative-commutative
// head. Every subset of groundElems, crossed with every AFAC grouping of
// that subset.
func sveAC(head term.Term, patternRest, groundElems []term.Term, sv sequenceVar) []alternative {
	var alts []alternative
	if sv.matchesEmpty {
		alts = append(alts, alternative{
			Subs:      sequenceSubs(sv, SequenceTerm()),
			Equations: []equation{tailEquation(head, patternRest, groundElems)},
		})
	}

	n := uint32(len(groundElems))
	mask := uint32(0)
	first := true
	for {
		if !first {
			next, ok := nextSubset(n, mask)
			if !ok {
				break
			}
			mask = next
		}
		first = false
		if mask == 0 {
			if n == 0 {
				break
			}
			continue
		}

		subset, complement := subsetElements(groundElems, mask)
		groupings, err := afacGroupings(head, subset)
		if err != nil {
			continue
		}
		for _, grouping := range groupings {
			alts = append(alts, alternative{
				Subs:      sequenceSubs(sv, SequenceTerm(grouping...)),
				Equations: []equation{tailEquation(head, patternRest, complement)},
			})
		}
	}
	return alts
}

// iveA: individual-variable elimination under an associative head —
// matches the DNC free-function pairing (for a singleton binding)
// plus every 2+-element AFA grouping wrapped in head (for a
// "re-associated" multi-argument binding), per spec.md section 4.3's IVE-A
// description.
func iveA(head term.Term, patternRest, groundElems []term.Term, first term.Term) []alternative {
	var alts []alternative
	alts = append(alts, dnc(head, patternRest, groundElems, first)...)

	// Associative (non-commutative): only a contiguous prefix group may
	// pair against the individual variable, matching DNC/SVE-A's prefix-only
	// decomposition under Flat.
	for length := 2; length <= len(groundElems); length++ {
		group := term.NewCompound(head, groundElems[:length]...)
		remainder := groundElems[length:]
		alts = append(alts, alternative{
			Equations: []equation{
				{Pattern: first, Ground: group},
				tailEquation(head, patternRest, remainder),
			},
		})
	}
	return alts
}

// iveAC: individual-variable elimination under an associative-commutative
// head — as iveA, but any subset (not just a contiguous prefix) of size 2+
// may be re-associated into the binding.
func iveAC(head term.Term, patternRest, groundElems []term.Term, first term.Term) []alternative {
	var alts []alternative
	alts = append(alts, dc(head, patternRest, groundElems, first)...)

	n := uint32(len(groundElems))
	mask := uint32(0)
	for {
		next, ok := nextSubset(n, mask)
		if !ok {
			break
		}
		mask = next
		if uint32(popcountInt(mask)) < 2 {
			continue
		}
		subset, complement := subsetElements(groundElems, mask)
		group := term.NewCompound(head, subset...)
		alts = append(alts, alternative{
			Equations: []equation{
				{Pattern: first, Ground: group},
				tailEquation(head, patternRest, complement),
			},
		})
	}
	return alts
}

func popcountInt(v uint32) int {
	count := 0
	for v != 0 {
		count += int(v & 1)
		v >>= 1
	}
	return count
}

func sequenceSubs(sv sequenceVar, value term.Term) []substitution {
	if !sv.hasName {
		return nil
	}
	return []substitution{{Name: sv.name, Value: value}}
}

func allHeadsMatch(elements []term.Term, head term.Term) bool {
	for _, e := range elements {
		if !e.Head().Equal(head) {
			return false
		}
	}
	return true
}
