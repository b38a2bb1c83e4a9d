package unitdc

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Quantity is an exact number with a dimension. Number is always in base
// units; Display lists derived units in which to show the number, at most one
// per dimension by convention.
type Quantity struct {
	Number  *big.Rat
	Unit    UnitCombo
	Display []*DerivedUnit
}

// NewQuantity creates a quantity with no display units.
func NewQuantity(n *big.Rat, u UnitCombo) Quantity {
	return Quantity{Number: n, Unit: u}
}

// Clone returns a deep copy of q, except that derived units are shared.
func (q Quantity) Clone() Quantity {
	return Quantity{
		Number:  new(big.Rat).Set(q.Number),
		Unit:    append(UnitCombo(nil), q.Unit...),
		Display: append([]*DerivedUnit(nil), q.Display...),
	}
}

// DisplayUnit returns the display unit matching q's dimension, or nil if
// there is none.
func (q Quantity) DisplayUnit() *DerivedUnit {
	for _, d := range q.Display {
		if d.Exponents.Equal(q.Unit) {
			return d
		}
	}
	return nil
}

// NumberInDerived returns q's number as it is displayed, i.e. converted to
// its display unit if it has one.
func (q Quantity) NumberInDerived() *big.Rat {
	if d := q.DisplayUnit(); d != nil {
		return d.FromBase(q.Number)
	}
	return new(big.Rat).Set(q.Number)
}

// String formats q as its displayed number followed by its unit in
// parentheses, e.g. "2 (km)".
func (q Quantity) String() string {
	var b strings.Builder
	b.WriteString(formatRat(q.NumberInDerived()))
	b.WriteString(" (")
	if d := q.DisplayUnit(); d != nil {
		b.WriteString(d.Symbol)
	} else {
		q.Unit.fmt(&b)
	}
	b.WriteByte(')')
	return b.String()
}

// formatRat renders x as a decimal through float64.
func formatRat(x *big.Rat) string {
	f, _ := x.Float64()
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Add returns q + r. The dimensions must be equal.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	if !q.Unit.Equal(r.Unit) {
		return Quantity{}, &IncompatibleError{Unit: r.Unit}
	}
	return Quantity{
		Number:  new(big.Rat).Add(q.Number, r.Number),
		Unit:    append(UnitCombo(nil), q.Unit...),
		Display: unionDisplay(q.Display, r.Display),
	}, nil
}

// Sub returns q - r. The dimensions must be equal.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	if !q.Unit.Equal(r.Unit) {
		return Quantity{}, &IncompatibleError{Unit: r.Unit}
	}
	return Quantity{
		Number:  new(big.Rat).Sub(q.Number, r.Number),
		Unit:    append(UnitCombo(nil), q.Unit...),
		Display: unionDisplay(q.Display, r.Display),
	}, nil
}

// Mul returns q * r. The display units of the result are every product of a
// display unit of q with one of r, so the list grows multiplicatively over
// repeated products.
func (q Quantity) Mul(r Quantity) Quantity {
	var disp []*DerivedUnit
	for _, a := range q.Display {
		for _, b := range r.Display {
			disp = append(disp, a.Mul(b))
		}
	}
	return Quantity{
		Number:  new(big.Rat).Mul(q.Number, r.Number),
		Unit:    q.Unit.Mul(r.Unit),
		Display: disp,
	}
}

// Div returns q / r. Display units combine as for Mul. Returns a
// *DomainError if r is zero.
func (q Quantity) Div(r Quantity) (Quantity, error) {
	if r.Number.Sign() == 0 {
		return Quantity{}, &DomainError{X: r.String(), Func: "/"}
	}
	var disp []*DerivedUnit
	for _, a := range q.Display {
		for _, b := range r.Display {
			disp = append(disp, a.Div(b))
		}
	}
	return Quantity{
		Number:  new(big.Rat).Quo(q.Number, r.Number),
		Unit:    q.Unit.Div(r.Unit),
		Display: disp,
	}, nil
}

// unionDisplay concatenates display units, dropping duplicates.
func unionDisplay(a, b []*DerivedUnit) []*DerivedUnit {
	seen := set.New[string](len(a) + len(b))
	var r []*DerivedUnit
	for _, v := range [][]*DerivedUnit{a, b} {
		for _, d := range v {
			if seen.Insert(d.key()) {
				r = append(r, d)
			}
		}
	}
	return r
}

// key identifies a derived unit by everything Equal compares.
func (u *DerivedUnit) key() string {
	return u.Symbol + "|" + u.Scale.RatString() + "|" + u.Offset.RatString() + "|" + u.Exponents.sorted().String()
}

// offsetWarnings checks the display units of quantities about to be combined.
// Derived units with offsets, like degrees Celsius, do not combine the way
// one might expect: 0 °C + 0 °C is 273.15 °C. For each base unit that
// appears under more than one offset unit, the result has a warning.
func offsetWarnings(qs ...Quantity) []string {
	type use struct {
		unit    BaseUnit
		derived []string
	}
	var uses []*use
	find := func(u BaseUnit) *use {
		for _, v := range uses {
			if v.unit == u {
				return v
			}
		}
		v := &use{unit: u}
		uses = append(uses, v)
		return v
	}
	for _, q := range qs {
		for _, d := range q.Display {
			if d.Offset.Sign() == 0 {
				continue
			}
			for _, e := range d.Exponents.Reduce() {
				v := find(e.Unit)
				v.derived = append(v.derived, d.Symbol)
			}
		}
	}
	var r []string
	for _, v := range uses {
		if len(v.derived) > 1 {
			r = append(r, "warning: "+v.unit.Symbol+" is used in multiple quantities with an offset, which may give unexpected results; affected derived units: ["+strings.Join(v.derived, ", ")+"]")
		}
	}
	return r
}

type unitExponentYAML struct {
	Unit     string `yaml:"unit"`
	Exponent int    `yaml:"exponent"`
}

type derivedYAML struct {
	Symbol string             `yaml:"symbol"`
	Scale  string             `yaml:"scale"`
	Offset string             `yaml:"offset"`
	Unit   []unitExponentYAML `yaml:"unit"`
}

type quantityYAML struct {
	Str            string             `yaml:"str"`
	NumberFloat    float64            `yaml:"number_float"`
	Number         string             `yaml:"number"`
	Unit           []unitExponentYAML `yaml:"unit"`
	UseDerivedUnit []derivedYAML      `yaml:"use_derived_unit,omitempty"`
}

func unitYAML(c UnitCombo) []unitExponentYAML {
	r := make([]unitExponentYAML, 0, len(c))
	for _, e := range c {
		r = append(r, unitExponentYAML{Unit: e.Unit.Symbol, Exponent: e.Exponent})
	}
	return r
}

// MarshalYAML implements yaml.Marshaler. The exact number is written as a
// fraction alongside a float64 approximation.
func (q Quantity) MarshalYAML() (interface{}, error) {
	f, _ := q.Number.Float64()
	r := quantityYAML{
		Str:         q.String(),
		NumberFloat: f,
		Number:      q.Number.RatString(),
		Unit:        unitYAML(q.Unit),
	}
	for _, d := range q.Display {
		r.UseDerivedUnit = append(r.UseDerivedUnit, derivedYAML{
			Symbol: d.Symbol,
			Scale:  d.Scale.RatString(),
			Offset: d.Offset.RatString(),
			Unit:   unitYAML(d.Exponents),
		})
	}
	return r, nil
}
