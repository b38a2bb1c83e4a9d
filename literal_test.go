package unitdc_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/zephyrtronium/unitdc"
)

func TestParseRat(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"-42", "-42"},
		{"0.1", "1/10"},
		{"3.14", "157/50"},
		{"1e3", "1000"},
		{"1E3", "1000"},
		{"1e-3", "1/1000"},
		{"-2.5e-2", "-1/40"},
		{"6_789", "6789"},
		{"1_0.0_5", "201/20"},
		{"273.15", "5463/20"},
		{"1.", "1"},
		{"1e", "1"},
		{"0.000", "0"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"1e40", "10000000000000000000000000000000000000000"},
	}
	for _, c := range cases {
		r, err := unitdc.ParseRat(c.src)
		if err != nil {
			t.Errorf("parsing %q: %v", c.src, err)
			continue
		}
		want, _ := new(big.Rat).SetString(c.want)
		if r.Cmp(want) != 0 {
			t.Errorf("parsing %q: want %s, got %s", c.src, c.want, r.RatString())
		}
	}
}

func TestParseRatErrors(t *testing.T) {
	cases := []struct {
		src string
		col int
	}{
		{"1.2.3", 4},
		{"1e2e3", 4},
		{"1e2.5", 4},
		{"1-2", 2},
		{"1e--2", 4},
		{"12a", 3},
		{"_", 1},
		{"-", 1},
	}
	for _, c := range cases {
		r, err := unitdc.ParseRat(c.src)
		if err == nil {
			t.Errorf("parsing %q: want error, got %s", c.src, r.RatString())
			continue
		}
		var lerr *unitdc.LexError
		if !errors.As(err, &lerr) {
			t.Errorf("parsing %q: want LexError, got %#v", c.src, err)
			continue
		}
		if lerr.Kind != "number" {
			t.Errorf("parsing %q: want kind number, got %q", c.src, lerr.Kind)
		}
		if lerr.Col != c.col {
			t.Errorf("parsing %q: want column %d, got %d", c.src, c.col, lerr.Col)
		}
	}
}
