package builtins

import (
	"math/big"

	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/term"
)

// realPrecision bounds the big.Float accumulators used to fold Real
// operands. Arbitrary precision arithmetic itself is an external
// collaborator per spec.md section 1; this is just enough working
// precision for the core's own folding of already-opaque Real values.
const realPrecision = 256

// foldNumeric splits elements into (non-numeric terms, integer
// accumulator, real accumulator, whether any Real was seen, count of
// numeric terms folded), shared by Plus and Times.
func foldNumeric(elements []term.Term, identity int64, combineInt func(acc, v *big.Int), combineReal func(acc, v *big.Float)) (nonNumeric []term.Term, intAcc *big.Int, realAcc *big.Float, hasReal bool, numericCount int) {
	intAcc = big.NewInt(identity)
	for _, e := range elements {
		if iv, ok := e.AsInteger(); ok {
			combineInt(intAcc, iv)
			numericCount++
			continue
		}
		if rv, ok := e.AsReal(); ok && !rv.IsNaN() {
			if !hasReal {
				realAcc = new(big.Float).SetPrec(realPrecision).SetInt64(identity)
				hasReal = true
			}
			combineReal(realAcc, rv.Float())
			numericCount++
			continue
		}
		nonNumeric = append(nonNumeric, e)
	}
	return nonNumeric, intAcc, realAcc, hasReal, numericCount
}

// registerPlus implements Plus[exprs___]: +Associative (Flat),
// Commutative (Orderless). Folds Integer/Real operands into one
// accumulator and emits 0, the sole remaining non-numeric term, or a
// compact Plus[sum, ...] — spec.md section 4.5 and the scenario-1/2
// fixtures in section 8.
func registerPlus(ctx *context.Context) {
	exprsVar := namedBlankNullSequence("exprs")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		seq, _ := bindings.Get(symExprs)
		elements := seq.Elements()

		nonNumeric, intAcc, realAcc, hasReal, numericCount := foldNumeric(elements, 0,
			func(acc, v *big.Int) { acc.Add(acc, v) },
			func(acc, v *big.Float) { acc.Add(acc, v) },
		)

		var sumTerm term.Term
		sumIsZero := false
		if hasReal {
			combined := new(big.Float).SetPrec(realPrecision).SetInt(intAcc)
			realAcc.Add(realAcc, combined)
			sumTerm = term.NewRealTerm(term.NewReal(realAcc))
			sumIsZero = realAcc.Sign() == 0
		} else {
			sumTerm = term.NewInteger(intAcc)
			sumIsZero = intAcc.Sign() == 0
		}

		if len(nonNumeric) == 0 {
			return sumTerm, true
		}
		if numericCount == 0 {
			return term.Term{}, false
		}
		if sumIsZero {
			if len(nonNumeric) == 1 {
				return nonNumeric[0], true
			}
			return term.NewCompound(term.Sym("Plus"), nonNumeric...), true
		}

		all := make([]term.Term, 0, len(nonNumeric)+1)
		all = append(all, sumTerm)
		all = append(all, nonNumeric...)
		return term.NewCompound(term.Sym("Plus"), all...), true
	}
	mustAddDown(ctx, "Plus", context.NewRule(pat("Plus", exprsVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
	lockDown(ctx, "Plus", context.Attributes(0).Set(context.Flat).Set(context.Orderless), true)
}

// registerTimes implements Times[exprs___]: +Associative, Commutative,
// identity 1. An Integer 0 factor short-circuits the whole product to 0.
func registerTimes(ctx *context.Context) {
	exprsVar := namedBlankNullSequence("exprs")
	fn := func(ctx *context.Context, bindings term.Bindings) (term.Term, bool) {
		seq, _ := bindings.Get(symExprs)
		elements := seq.Elements()

		for _, e := range elements {
			if iv, ok := e.AsInteger(); ok && iv.Sign() == 0 {
				return term.NewIntegerInt64(0), true
			}
		}

		nonNumeric, intAcc, realAcc, hasReal, numericCount := foldNumeric(elements, 1,
			func(acc, v *big.Int) { acc.Mul(acc, v) },
			func(acc, v *big.Float) { acc.Mul(acc, v) },
		)

		var productTerm term.Term
		productIsOne := false
		if hasReal {
			combined := new(big.Float).SetPrec(realPrecision).SetInt(intAcc)
			realAcc.Mul(realAcc, combined)
			productTerm = term.NewRealTerm(term.NewReal(realAcc))
			one := new(big.Float).SetPrec(realPrecision).SetInt64(1)
			productIsOne = realAcc.Cmp(one) == 0
		} else {
			productTerm = term.NewInteger(intAcc)
			productIsOne = intAcc.Cmp(big.NewInt(1)) == 0
		}

		if len(nonNumeric) == 0 {
			return productTerm, true
		}
		if numericCount == 0 {
			return term.Term{}, false
		}
		if productIsOne {
			if len(nonNumeric) == 1 {
				return nonNumeric[0], true
			}
			return term.NewCompound(term.Sym("Times"), nonNumeric...), true
		}

		all := make([]term.Term, 0, len(nonNumeric)+1)
		all = append(all, productTerm)
		all = append(all, nonNumeric...)
		return term.NewCompound(term.Sym("Times"), all...), true
	}
	mustAddDown(ctx, "Times", context.NewRule(pat("Times", exprsVar), context.Replacement{Builtin: fn, Access: context.ReadOnlyAccess}))
	lockDown(ctx, "Times", context.Attributes(0).Set(context.Flat).Set(context.Orderless), false)
}

// registerSubtract implements Subtract[lhs_, rhs_] as a ground rewrite to
// Plus[lhs, Times[-1, rhs]], per spec.md section 4.5 — no native function,
// the fixed-point loop evaluates the produced Plus/Times forms in the next
// pass.
func registerSubtract(ctx *context.Context) {
	lhsVar, rhsVar := namedBlank("lhs"), namedBlank("rhs")
	template := pat("Plus", term.Sym("lhs"), pat("Times", term.NewIntegerInt64(-1), term.Sym("rhs")))
	mustAddDown(ctx, "Subtract", context.NewRule(pat("Subtract", lhsVar, rhsVar), context.Replacement{Ground: template}))
}
