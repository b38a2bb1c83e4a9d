package unitdc_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/zephyrtronium/unitdc"
)

func TestUnitSystem(t *testing.T) {
	sys := unitdc.NewUnitSystem()
	for _, sym := range []string{"s", "m", "K"} {
		u, err := sys.DefineBase(sym)
		if err != nil {
			t.Fatalf("defining %s: %v", sym, err)
		}
		if got := sys.Lookup(sym); got != u {
			t.Errorf("lookup %s: want %v, got %v", sym, u, got)
		}
		_, err = sys.DefineBase(sym)
		var derr *unitdc.DefinedError
		if !errors.As(err, &derr) || derr.Symbol != sym {
			t.Errorf("redefining %s: want DefinedError, got %v", sym, err)
		}
	}
	if sys.Lookup("km") != nil {
		t.Error("lookup of undefined unit succeeded")
	}

	derived := []*unitdc.DerivedUnit{
		{Symbol: "min", Scale: big.NewRat(60, 1), Offset: new(big.Rat), Exponents: combo(s, 1)},
		{Symbol: "km", Scale: big.NewRat(1000, 1), Offset: new(big.Rat), Exponents: combo(m, 1)},
		{Symbol: "h", Scale: big.NewRat(3600, 1), Offset: new(big.Rat), Exponents: combo(s, 1)},
		{Symbol: "cm", Scale: big.NewRat(1, 100), Offset: new(big.Rat), Exponents: combo(m, 1)},
	}
	for _, u := range derived {
		if err := sys.DefineDerived(u); err != nil {
			t.Fatalf("defining %s: %v", u.Symbol, err)
		}
		if got := sys.Lookup(u.Symbol); got != unitdc.Unit(u) {
			t.Errorf("lookup %s: want %v, got %v", u.Symbol, u, got)
		}
	}
	err := sys.DefineDerived(&unitdc.DerivedUnit{Symbol: "m", Scale: big.NewRat(1, 1), Offset: new(big.Rat), Exponents: combo(m, 1)})
	if !errAs[*unitdc.DefinedError](err) {
		t.Errorf("defining derived m over base m: want DefinedError, got %v", err)
	}
	if _, ok := sys.Lookup("m").(unitdc.BaseUnit); !ok {
		t.Error("base m was replaced")
	}

	var base []string
	for _, u := range sys.BaseUnits() {
		base = append(base, u.Symbol)
	}
	if want := []string{"K", "m", "s"}; !equalStrings(base, want) {
		t.Errorf("base units: want %q, got %q", want, base)
	}
	var der []string
	for _, u := range sys.DerivedUnits() {
		der = append(der, u.Symbol)
	}
	if want := []string{"cm", "km", "h", "min"}; !equalStrings(der, want) {
		t.Errorf("derived units: want %q, got %q", want, der)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
