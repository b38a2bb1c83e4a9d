package unitdc

import (
	"sort"
)

// Unit is either a BaseUnit or a *DerivedUnit.
type Unit interface {
	String() string
	isUnit()
}

// UnitSystem is a namespace of base and derived units. A symbol names at most
// one unit of either kind. It is not safe to use a UnitSystem concurrently.
type UnitSystem struct {
	units map[string]Unit
}

// NewUnitSystem creates an empty unit system.
func NewUnitSystem() *UnitSystem {
	return &UnitSystem{units: make(map[string]Unit)}
}

// Lookup returns the unit with the given symbol, or nil if there is none.
func (s *UnitSystem) Lookup(symbol string) Unit {
	return s.units[symbol]
}

// DefineBase adds a base unit. Returns a *DefinedError if the symbol is taken.
func (s *UnitSystem) DefineBase(symbol string) (BaseUnit, error) {
	if _, ok := s.units[symbol]; ok {
		return BaseUnit{}, &DefinedError{Symbol: symbol}
	}
	u := BaseUnit{Symbol: symbol}
	s.units[symbol] = u
	return u, nil
}

// DefineDerived adds a derived unit. Returns a *DefinedError if the symbol is
// taken. The unit must not be modified afterward.
func (s *UnitSystem) DefineDerived(u *DerivedUnit) error {
	if _, ok := s.units[u.Symbol]; ok {
		return &DefinedError{Symbol: u.Symbol}
	}
	s.units[u.Symbol] = u
	return nil
}

// BaseUnits returns the base units sorted by symbol.
func (s *UnitSystem) BaseUnits() []BaseUnit {
	var r []BaseUnit
	for _, u := range s.units {
		if b, ok := u.(BaseUnit); ok {
			r = append(r, b)
		}
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Symbol < r[j].Symbol })
	return r
}

// DerivedUnits returns the derived units sorted by the text of their
// dimensions, then by symbol.
func (s *UnitSystem) DerivedUnits() []*DerivedUnit {
	var r []*DerivedUnit
	for _, u := range s.units {
		if d, ok := u.(*DerivedUnit); ok {
			r = append(r, d)
		}
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Symbol < r[j].Symbol })
	sort.SliceStable(r, func(i, j int) bool { return r[i].Exponents.String() < r[j].Exponents.String() })
	return r
}
