package term

import (
	"hash/fnv"
	"io"
)

// Per-variant salt prefixes, so that e.g. Symbol("Foo") and String("Foo")
// hash differently even though their payload bytes coincide. These are the
// same byte values original_source/luna_lang/src/atom.rs borrows from
// expreduce (github.com/corywalker/expreduce) — picked at random there,
// kept here for fidelity rather than re-randomized.
var (
	stringPrefix   = [8]byte{102, 206, 57, 172, 207, 100, 198, 133}
	integerPrefix  = [8]byte{242, 99, 84, 113, 102, 46, 118, 94}
	realPrefix     = [8]byte{195, 244, 76, 249, 227, 115, 88, 251}
	symbolPrefix   = [8]byte{107, 10, 247, 23, 33, 221, 163, 156}
	compoundPrefix = [8]byte{72, 5, 244, 86, 5, 210, 69, 30}
)

// Hash returns a structural hash salted per variant: Hash(a) == Hash(b)
// whenever a.Equal(b).
func (t Term) Hash() uint64 {
	h := fnv.New64a()
	t.writeHash(h)
	return h.Sum64()
}

func (t Term) writeHash(h io.Writer) {
	switch t.kind {
	case KindString:
		h.Write(stringPrefix[:])
		h.Write([]byte(t.str))
	case KindInteger:
		h.Write(integerPrefix[:])
		h.Write([]byte(t.integer.String()))
	case KindReal:
		h.Write(realPrefix[:])
		h.Write([]byte(t.real.String()))
	case KindSymbol:
		h.Write(symbolPrefix[:])
		h.Write([]byte(t.symbol.String()))
	default: // KindCompound
		h.Write(compoundPrefix[:])
		for _, part := range t.parts {
			part.writeHash(h)
		}
	}
}
