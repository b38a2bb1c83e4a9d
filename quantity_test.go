package unitdc_test

import (
	"math/big"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/unitdc"
)

func TestQuantityAddExact(t *testing.T) {
	x := unitdc.BaseUnit{Symbol: "x"}
	a := unitdc.NewQuantity(big.NewRat(2, 3), unitdc.Dimension(x))
	b := unitdc.NewQuantity(big.NewRat(1, 3), unitdc.Dimension(x))
	r, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if r.Number.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("2/3 + 1/3 = %s", r.Number.RatString())
	}
	if s := r.String(); s != "1 (x)" {
		t.Errorf("want 1 (x), got %q", s)
	}
	r, err = r.Sub(a)
	if err != nil {
		t.Fatal(err)
	}
	if r.Number.Cmp(big.NewRat(1, 3)) != 0 {
		t.Errorf("1 - 2/3 = %s", r.Number.RatString())
	}
	if a.Number.Cmp(big.NewRat(2, 3)) != 0 || b.Number.Cmp(big.NewRat(1, 3)) != 0 {
		t.Error("operands were modified")
	}
}

func TestQuantityIncompatible(t *testing.T) {
	dims := []unitdc.UnitCombo{
		nil,
		combo(m, 1),
		combo(s, 1),
		combo(m, 1, s, -1),
		combo(m, 2),
	}
	for i, a := range dims {
		for j, b := range dims {
			qa := unitdc.NewQuantity(big.NewRat(1, 1), a)
			qb := unitdc.NewQuantity(big.NewRat(2, 1), b)
			_, aerr := qa.Add(qb)
			_, serr := qa.Sub(qb)
			if i == j {
				if aerr != nil || serr != nil {
					t.Errorf("%v and %v: %v, %v", a, b, aerr, serr)
				}
				continue
			}
			if !errAs[*unitdc.IncompatibleError](aerr) || !errAs[*unitdc.IncompatibleError](serr) {
				t.Errorf("%v and %v: want IncompatibleError, got %v, %v", a, b, aerr, serr)
			}
		}
	}
}

func TestQuantityDisplay(t *testing.T) {
	km := &unitdc.DerivedUnit{Symbol: "km", Scale: big.NewRat(1000, 1), Offset: new(big.Rat), Exponents: combo(m, 1)}
	mi := &unitdc.DerivedUnit{Symbol: "mi", Scale: big.NewRat(1609344, 1000), Offset: new(big.Rat), Exponents: combo(m, 1)}
	h := &unitdc.DerivedUnit{Symbol: "h", Scale: big.NewRat(3600, 1), Offset: new(big.Rat), Exponents: combo(s, 1)}
	mn := &unitdc.DerivedUnit{Symbol: "min", Scale: big.NewRat(60, 1), Offset: new(big.Rat), Exponents: combo(s, 1)}

	d := unitdc.Quantity{Number: big.NewRat(3000, 1), Unit: combo(m, 1), Display: []*unitdc.DerivedUnit{km, mi}}
	if u := d.DisplayUnit(); u != km {
		t.Errorf("want km display, got %v", u)
	}
	if n := d.NumberInDerived(); n.Cmp(big.NewRat(3, 1)) != 0 {
		t.Errorf("want 3, got %s", n.RatString())
	}
	tm := unitdc.Quantity{Number: big.NewRat(7200, 1), Unit: combo(s, 1), Display: []*unitdc.DerivedUnit{h, mn}}

	v, err := d.Div(tm)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Display) != 4 {
		t.Fatalf("want 4 display units, got %v", v.Display)
	}
	want := []string{"km/h", "km/min", "mi/h", "mi/min"}
	for i, u := range v.Display {
		if u.Symbol != want[i] {
			t.Errorf("display %d: want %s, got %s", i, want[i], u.Symbol)
		}
	}
	if s := v.String(); s != "1.5 (km/h)" {
		t.Errorf("want 1.5 (km/h), got %q", s)
	}
	a := d.Mul(tm)
	if len(a.Display) != 4 || a.Display[0].Symbol != "km*h" {
		t.Errorf("wrong product display %v", a.Display)
	}
	plain := unitdc.NewQuantity(big.NewRat(2, 1), nil)
	if p := d.Mul(plain); len(p.Display) != 0 {
		t.Errorf("product with no display units has display %v", p.Display)
	}

	u, err := d.Add(unitdc.Quantity{Number: big.NewRat(1, 1), Unit: combo(m, 1), Display: []*unitdc.DerivedUnit{mi, km}})
	if err != nil {
		t.Fatal(err)
	}
	if len(u.Display) != 2 || u.Display[0] != km || u.Display[1] != mi {
		t.Errorf("wrong union %v", u.Display)
	}

	if _, err := d.Div(unitdc.NewQuantity(new(big.Rat), nil)); !errAs[*unitdc.DomainError](err) {
		t.Errorf("want DomainError dividing by zero, got %v", err)
	}
}

func TestQuantityClone(t *testing.T) {
	q := unitdc.NewQuantity(big.NewRat(5, 1), combo(m, 1))
	c := q.Clone()
	c.Number.SetInt64(6)
	c.Unit[0].Exponent = 2
	if q.Number.Cmp(big.NewRat(5, 1)) != 0 || q.Unit[0].Exponent != 1 {
		t.Errorf("clone shares state: %v", q)
	}
}

func TestQuantityYAML(t *testing.T) {
	km := &unitdc.DerivedUnit{Symbol: "km", Scale: big.NewRat(1000, 1), Offset: new(big.Rat), Exponents: combo(m, 1)}
	q := unitdc.Quantity{Number: big.NewRat(2500, 3), Unit: combo(m, 1), Display: []*unitdc.DerivedUnit{km}}
	b, err := yaml.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Str         string  `yaml:"str"`
		NumberFloat float64 `yaml:"number_float"`
		Number      string  `yaml:"number"`
		Unit        []struct {
			Unit     string `yaml:"unit"`
			Exponent int    `yaml:"exponent"`
		} `yaml:"unit"`
		UseDerivedUnit []struct {
			Symbol string `yaml:"symbol"`
			Scale  string `yaml:"scale"`
		} `yaml:"use_derived_unit"`
	}
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatalf("couldn't read back %s: %v", b, err)
	}
	if got.Number != "2500/3" {
		t.Errorf("wrong number %q", got.Number)
	}
	if got.NumberFloat < 833.33 || got.NumberFloat > 833.34 {
		t.Errorf("wrong float %v", got.NumberFloat)
	}
	if got.Str != q.String() {
		t.Errorf("want str %q, got %q", q.String(), got.Str)
	}
	if len(got.Unit) != 1 || got.Unit[0].Unit != "m" || got.Unit[0].Exponent != 1 {
		t.Errorf("wrong unit %+v", got.Unit)
	}
	if len(got.UseDerivedUnit) != 1 || got.UseDerivedUnit[0].Symbol != "km" || got.UseDerivedUnit[0].Scale != "1000" {
		t.Errorf("wrong display units %+v", got.UseDerivedUnit)
	}
}
