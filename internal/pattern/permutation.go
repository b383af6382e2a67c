package pattern

import (
	"github.com/lunalang/luna/internal/errors"
)

// MaxPermutationArity bounds the factoradic permutation generator: 20! is
// the largest factorial that fits in a uint64 (21! overflows), and no
// subset/permutation enumeration over more elements than that is
// computationally reachable regardless, so spec.md section 4.3's
// "unsupported-arity error is acceptable" escape hatch applies past this
// point rather than at the 31-bit subset-generator ceiling.
const MaxPermutationArity = 20

func factorial(n int) uint64 {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f
}

// permutationGenerator enumerates every permutation of [0, n) in
// lexicographic order of index, one per call to next, grounded on
// original_source/luna_lang/src/matching/permute/mod.rs's
// PermutationGenerator32/SinglePermutation32 (a factoradic index-to-rank
// decode that happens to produce exactly this order).
type permutationGenerator struct {
	n       int
	total   uint64
	nextIdx uint64
}

func newPermutationGenerator(n int) (*permutationGenerator, error) {
	if n > MaxPermutationArity {
		return nil, errors.NewUnsupportedArityError("permutation", n, MaxPermutationArity)
	}
	return &permutationGenerator{n: n, total: factorial(n)}, nil
}

// next returns the next permutation as a slice of original indices, or
// ok=false once all n! permutations have been produced.
func (g *permutationGenerator) next() ([]int, bool) {
	if g.nextIdx >= g.total {
		return nil, false
	}
	perm := nthPermutation(g.n, g.nextIdx)
	g.nextIdx++
	return perm, true
}

// nthPermutation decodes idx (0-based) into the idx'th lexicographic
// permutation of [0, n) via the factorial number system.
func nthPermutation(n int, idx uint64) []int {
	available := make([]int, n)
	for i := range available {
		available[i] = i
	}

	result := make([]int, n)
	rem := idx
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		pos := rem / f
		rem = rem % f
		result[i] = available[pos]
		available = append(available[:pos], available[pos+1:]...)
	}
	return result
}

// allPermutations materializes every permutation of [0, n) up front; n is
// always small in practice (arities the matcher encounters), so eager
// materialization keeps the generator code simple without a resumable
// iterator abstraction.
func allPermutations(n int) ([][]int, error) {
	if n == 0 {
		return [][]int{{}}, nil
	}
	gen, err := newPermutationGenerator(n)
	if err != nil {
		return nil, err
	}
	var out [][]int
	for {
		perm, ok := gen.next()
		if !ok {
			break
		}
		out = append(out, perm)
	}
	return out, nil
}
