package term

// variantRank gives the total order across variants specified by spec.md
// section 3's data-model table: String < Integer < Real < Symbol <
// Compound.
func variantRank(k Kind) int {
	switch k {
	case KindString:
		return 0
	case KindInteger:
		return 1
	case KindReal:
		return 2
	case KindSymbol:
		return 3
	default: // KindCompound
		return 4
	}
}

// Compare returns -1, 0, or 1, giving a total order over all Terms: first
// by variant (per variantRank), then by the natural order of the payload
// within a variant. For Compound, head and elements are compared pairwise
// in order (lexicographic over Parts()), with a shorter Compound that is a
// strict prefix of a longer one sorting first.
func (t Term) Compare(o Term) int {
	if rt, ro := variantRank(t.kind), variantRank(o.kind); rt != ro {
		if rt < ro {
			return -1
		}
		return 1
	}

	switch t.kind {
	case KindString:
		switch {
		case t.str < o.str:
			return -1
		case t.str > o.str:
			return 1
		default:
			return 0
		}
	case KindInteger:
		return t.integer.Cmp(o.integer)
	case KindReal:
		return t.real.Compare(o.real)
	case KindSymbol:
		return t.symbol.Compare(o.symbol)
	default: // KindCompound
		a, b := t.parts, o.parts
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		for i := 0; i < n; i++ {
			if c := a[i].Compare(b[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(a) < len(b):
			return -1
		case len(a) > len(b):
			return 1
		default:
			return 0
		}
	}
}

// Less reports whether t sorts strictly before o under Compare.
func (t Term) Less(o Term) bool {
	return t.Compare(o) < 0
}
