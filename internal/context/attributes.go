// Package context implements the mutable symbol table: per-symbol
// attributes and the four ordered rule lists (OwnValues, UpValues,
// DownValues, SubValues), plus the monotonic state_version counter the
// evaluator uses to detect side-effecting mutations.
package context

// Attribute names one bit in an Attributes bitset. Grounded on
// original_source/luna_lang/src/attributes.rs's Attribute enum, expanded
// with Protected/Flat/Orderless/OneIdentity/Listable/NumericFunction/Locked
// per spec.md section 3's table (the Rust source predates those and only
// names the Commutative/Associative pair that spec.md renames to
// Orderless/Flat).
type Attribute uint32

const (
	ReadOnly Attribute = iota
	AttributesReadOnly
	Protected
	HoldFirst
	HoldRest
	HoldAll
	HoldAllComplete
	HoldSequence
	Flat
	Orderless
	OneIdentity
	Listable
	NumericFunction
	Locked
)

// Attributes is a bitset over Attribute, mirroring attributes.rs's
// Attributes(u32) wrapper.
type Attributes uint32

// Has reports whether a is set in the bitset.
func (b Attributes) Has(a Attribute) bool {
	return b&(1<<a) != 0
}

// Set returns the bitset with a added.
func (b Attributes) Set(a Attribute) Attributes {
	return b | (1 << a)
}

// Clear returns the bitset with a removed.
func (b Attributes) Clear(a Attribute) Attributes {
	return b &^ (1 << a)
}

// Union returns the bitset with every bit from other also set, mirroring
// attributes.rs's set_all.
func (b Attributes) Union(other Attributes) Attributes {
	return b | other
}

func (b Attributes) ReadOnly() bool           { return b.Has(ReadOnly) }
func (b Attributes) AttributesReadOnly() bool { return b.Has(AttributesReadOnly) }
func (b Attributes) Protected() bool          { return b.Has(Protected) }
func (b Attributes) HoldFirst() bool          { return b.Has(HoldFirst) }
func (b Attributes) HoldRest() bool           { return b.Has(HoldRest) }
func (b Attributes) HoldAll() bool            { return b.Has(HoldAll) }
func (b Attributes) HoldAllComplete() bool    { return b.Has(HoldAllComplete) }
func (b Attributes) HoldSequence() bool       { return b.Has(HoldSequence) }
func (b Attributes) Flat() bool               { return b.Has(Flat) }
func (b Attributes) Orderless() bool          { return b.Has(Orderless) }
func (b Attributes) OneIdentity() bool        { return b.Has(OneIdentity) }
func (b Attributes) Listable() bool           { return b.Has(Listable) }
func (b Attributes) NumericFunction() bool    { return b.Has(NumericFunction) }
func (b Attributes) Locked() bool             { return b.Has(Locked) }

// HoldsElement reports whether the element at position i (0-indexed) of a
// Compound headed by a symbol with attributes b must be held unevaluated,
// per spec.md section 4.4 step 3: HoldAll/HoldAllComplete hold every
// element, HoldFirst holds only i==0, HoldRest holds every i>0.
func (b Attributes) HoldsElement(i int) bool {
	if b.HoldAll() || b.HoldAllComplete() {
		return true
	}
	if i == 0 {
		return b.HoldFirst()
	}
	return b.HoldRest()
}
