package unitdc

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// BaseUnit is an independently defined dimension, like the meter. Base units
// are identified by their symbols.
type BaseUnit struct {
	Symbol string
}

func (u BaseUnit) String() string {
	return u.Symbol
}

func (BaseUnit) isUnit() {}

// UnitExponent is a base unit raised to a power.
type UnitExponent struct {
	Unit     BaseUnit
	Exponent int
}

// UnitCombo is a product of base units raised to integer powers, i.e. a
// dimension. The order of entries is insignificant.
type UnitCombo []UnitExponent

// Dimension returns the dimension of a single base unit.
func Dimension(u BaseUnit) UnitCombo {
	return UnitCombo{{Unit: u, Exponent: 1}}
}

// Reduce returns a copy of c with exponents of the same base unit summed and
// zero exponents removed. The first occurrence of each unit keeps its place.
func (c UnitCombo) Reduce() UnitCombo {
	r := make(UnitCombo, 0, len(c))
outer:
	for _, e := range c {
		for i := range r {
			if r[i].Unit == e.Unit {
				r[i].Exponent += e.Exponent
				continue outer
			}
		}
		r = append(r, e)
	}
	k := 0
	for _, e := range r {
		if e.Exponent != 0 {
			r[k] = e
			k++
		}
	}
	return r[:k]
}

// Mul returns the product of two dimensions.
func (c UnitCombo) Mul(d UnitCombo) UnitCombo {
	r := make(UnitCombo, 0, len(c)+len(d))
	r = append(r, c...)
	r = append(r, d...)
	return r.Reduce()
}

// Neg returns the reciprocal of a dimension, i.e. c with every exponent
// negated.
func (c UnitCombo) Neg() UnitCombo {
	r := make(UnitCombo, len(c))
	for i, e := range c {
		r[i] = UnitExponent{Unit: e.Unit, Exponent: -e.Exponent}
	}
	return r.Reduce()
}

// Div returns the quotient of two dimensions.
func (c UnitCombo) Div(d UnitCombo) UnitCombo {
	return c.Mul(d.Neg())
}

// IsUnitless returns whether c is the dimension of a pure number.
func (c UnitCombo) IsUnitless() bool {
	return len(c) == 0
}

// Exponent returns the exponent of u in c, summing repeated entries.
func (c UnitCombo) Exponent(u BaseUnit) int {
	n := 0
	for _, e := range c {
		if e.Unit == u {
			n += e.Exponent
		}
	}
	return n
}

// Equal returns whether c and d contain the same unit and exponent pairs,
// regardless of order.
func (c UnitCombo) Equal(d UnitCombo) bool {
	if len(c) != len(d) {
		return false
	}
	a, b := c.sorted(), d.sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (c UnitCombo) sorted() UnitCombo {
	r := append(UnitCombo(nil), c...)
	sort.SliceStable(r, func(i, j int) bool { return r[i].Unit.Symbol < r[j].Unit.Symbol })
	return r
}

// String formats c with higher exponents first. Exponent 1 is written as the
// bare symbol; others are written like (s^-2). A unitless combo is "1".
func (c UnitCombo) String() string {
	var b strings.Builder
	c.fmt(&b)
	return b.String()
}

func (c UnitCombo) fmt(b *strings.Builder) {
	v := make(UnitCombo, 0, len(c))
	for _, e := range c {
		if e.Exponent != 0 {
			v = append(v, e)
		}
	}
	if len(v) == 0 {
		b.WriteByte('1')
		return
	}
	sort.SliceStable(v, func(i, j int) bool { return v[i].Exponent > v[j].Exponent })
	for _, e := range v {
		if e.Exponent == 1 {
			b.WriteString(e.Unit.Symbol)
			continue
		}
		b.WriteByte('(')
		b.WriteString(e.Unit.Symbol)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(e.Exponent))
		b.WriteByte(')')
	}
}

// DerivedUnit is a named affine map onto a dimension. A value v in the derived
// unit is v*Scale + Offset in base units.
//
// The methods of DerivedUnit never modify their receivers or arguments, so
// derived units can be shared freely.
type DerivedUnit struct {
	Symbol    string
	Scale     *big.Rat
	Offset    *big.Rat
	Exponents UnitCombo
}

func (u *DerivedUnit) String() string {
	return u.Symbol
}

func (*DerivedUnit) isUnit() {}

// Mul composes two derived units as a product. The symbol of the result is
// the two symbols joined with *; no check is made that it is unique.
func (u *DerivedUnit) Mul(v *DerivedUnit) *DerivedUnit {
	off := new(big.Rat).Mul(u.Offset, v.Scale)
	return &DerivedUnit{
		Symbol:    u.Symbol + "*" + v.Symbol,
		Scale:     new(big.Rat).Mul(u.Scale, v.Scale),
		Offset:    off.Add(off, v.Offset),
		Exponents: u.Exponents.Mul(v.Exponents),
	}
}

// Div composes two derived units as a quotient. The symbol of the result is
// the two symbols joined with /.
func (u *DerivedUnit) Div(v *DerivedUnit) *DerivedUnit {
	off := new(big.Rat).Mul(u.Offset, v.Scale)
	return &DerivedUnit{
		Symbol:    u.Symbol + "/" + v.Symbol,
		Scale:     new(big.Rat).Quo(u.Scale, v.Scale),
		Offset:    off.Sub(off, v.Offset),
		Exponents: u.Exponents.Div(v.Exponents),
	}
}

// Equal returns whether two derived units have the same symbol, affine map,
// and dimension.
func (u *DerivedUnit) Equal(v *DerivedUnit) bool {
	return u.Symbol == v.Symbol &&
		u.Scale.Cmp(v.Scale) == 0 &&
		u.Offset.Cmp(v.Offset) == 0 &&
		u.Exponents.Equal(v.Exponents)
}

// ToBase converts a value in u to base units.
func (u *DerivedUnit) ToBase(x *big.Rat) *big.Rat {
	r := new(big.Rat).Mul(x, u.Scale)
	return r.Add(r, u.Offset)
}

// FromBase converts a value in base units to u.
func (u *DerivedUnit) FromBase(x *big.Rat) *big.Rat {
	r := new(big.Rat).Sub(x, u.Offset)
	return r.Quo(r, u.Scale)
}
