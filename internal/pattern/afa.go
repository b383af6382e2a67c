package pattern

import "github.com/lunalang/luna/internal/term"

// afaGroupings enumerates every Associative Function Application grouping
// of elements under head, per spec.md section 4.3's AFA generator: each
// output groups adjacent elements into sub-applications of head and
// independently wraps any remaining singleton in head too. For n=3 this
// produces the 13 groupings listed in spec.md section 8's AFA fixture, in
// that exact order.
//
// Grounded on
// original_source/luna_lang/src/matching/function_application/afa_generator.rs,
// translated from its two-bitmask-state Iterator::next into an eager loop
// since Go has no direct analogue to a struct implementing Iterator and
// the whole domain here is small, already-materialized term slices.
func afaGroupings(head term.Term, elements []term.Term) [][]term.Term {
	n := len(elements)
	if n == 0 {
		return nil
	}

	var out [][]term.Term
	applicationState := uint32(0)

	for {
		// Determine boundary positions (where a group ends) from
		// applicationState: bit (position-1) clear means position is a
		// boundary, matching afa_generator.rs's reading of
		// `!application_state`.
		boundaries := make([]int, 0, n)
		last := 0
		for position := 1; position <= n; position++ {
			if position == n || applicationState&(1<<uint(position-1)) == 0 {
				boundaries = append(boundaries, last)
				boundaries = append(boundaries, position)
				last = position
			}
		}

		// Collect singleton slots (boundary spans of length 1) in order,
		// so singletonState's bits can select which of them get wrapped.
		var singletonSpans [][2]int
		for i := 0; i < len(boundaries); i += 2 {
			start, end := boundaries[i], boundaries[i+1]
			if end-start == 1 {
				singletonSpans = append(singletonSpans, [2]int{start, end})
			}
		}

		singletonState := uint32(0)
		for {
			result := make([]term.Term, 0, n)
			singletonIdx := 0
			for i := 0; i < len(boundaries); i += 2 {
				start, end := boundaries[i], boundaries[i+1]
				if end-start > 1 {
					result = append(result, term.NewCompound(head, elements[start:end]...))
					continue
				}
				if singletonState&(1<<uint(singletonIdx)) != 0 {
					result = append(result, term.NewCompound(head, elements[start]))
				} else {
					result = append(result, elements[start])
				}
				singletonIdx++
			}
			out = append(out, result)

			next, ok := nextSubset(uint32(len(singletonSpans)), singletonState)
			if !ok {
				break
			}
			singletonState = next
		}

		next, ok := nextSubset(uint32(n-1), applicationState)
		if !ok {
			break
		}
		applicationState = next
	}

	return out
}

// afacGroupings enumerates every Associative-Commutative Function
// Application grouping: every permutation of elements, and for each, every
// AFA grouping of that permuted order — grounded on
// .../function_application/afac_generator.rs, whose first permutation is
// always the identity order.
func afacGroupings(head term.Term, elements []term.Term) ([][]term.Term, error) {
	perms, err := allPermutations(len(elements))
	if err != nil {
		return nil, err
	}

	var out [][]term.Term
	for _, perm := range perms {
		permuted := make([]term.Term, len(elements))
		for i, idx := range perm {
			permuted[i] = elements[idx]
		}
		out = append(out, afaGroupings(head, permuted)...)
	}
	return out, nil
}
