package term

import "math/big"

// Real wraps an arbitrary-precision float with a total order: unlike
// math/big.Float alone, -0 and +0 compare distinct, and NaN is comparable
// (equal to itself, ordered after every other value). math/big.Float has
// no NaN representation at all, so it is modeled explicitly here via the
// nan flag — grounded on original_source/luna_lang/src/expressions/kind.rs,
// which wraps the same bignum float in an OrdBigFloat for exactly this
// reason.
type Real struct {
	val *big.Float
	nan bool
}

// NewReal wraps v in a Real. v must not be nil.
func NewReal(v *big.Float) Real {
	return Real{val: v}
}

// NaN returns the distinguished not-a-number Real value.
func NaN() Real {
	return Real{nan: true}
}

// IsNaN reports whether r is the NaN value.
func (r Real) IsNaN() bool {
	return r.nan
}

// Float returns the underlying big.Float, or nil if r is NaN.
func (r Real) Float() *big.Float {
	return r.val
}

// signBit reports the sign of a zero value: true for -0. Non-zero values
// use their ordinary sign via Cmp, so this is only consulted when both
// operands compare equal-to-zero.
func signBit(v *big.Float) bool {
	return v.Signbit() && v.Sign() == 0
}

// Compare returns -1, 0, or 1, ordering NaN after every other value and
// distinguishing -0 from +0 (-0 sorts before +0).
func (r Real) Compare(o Real) int {
	if r.nan && o.nan {
		return 0
	}
	if r.nan {
		return 1
	}
	if o.nan {
		return -1
	}

	if c := r.val.Cmp(o.val); c != 0 {
		return c
	}

	if r.val.Sign() == 0 && o.val.Sign() == 0 {
		rNeg, oNeg := signBit(r.val), signBit(o.val)
		switch {
		case rNeg == oNeg:
			return 0
		case rNeg:
			return -1
		default:
			return 1
		}
	}

	return 0
}

// Equal reports whether r and o are identical under the total order above.
func (r Real) Equal(o Real) bool {
	return r.Compare(o) == 0
}

// String renders the host float formatting of r, or "NaN".
func (r Real) String() string {
	if r.nan {
		return "NaN"
	}
	return r.val.Text('g', -1)
}
