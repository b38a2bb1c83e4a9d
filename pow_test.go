package unitdc

import (
	"errors"
	"math/big"
	"testing"
)

func TestPowRat(t *testing.T) {
	cases := []struct {
		x, y string
		want string
	}{
		{"2", "10", "1024"},
		{"2", "-2", "1/4"},
		{"2/3", "3", "8/27"},
		{"0", "5", "0"},
		{"0", "1/2", "0"},
		{"5", "0", "1"},
		{"8", "1/3", "2"},
		{"-8", "1/3", "-2"},
		{"-8", "2/3", "4"},
		{"4", "-1/2", "1/2"},
		{"9/4", "3/2", "27/8"},
		{"1/1024", "1/10", "1/2"},
		{"1000000000000000000000000000000", "1/3", "10000000000"},
	}
	for _, c := range cases {
		x, _ := new(big.Rat).SetString(c.x)
		y, _ := new(big.Rat).SetString(c.y)
		want, _ := new(big.Rat).SetString(c.want)
		r, err := powRat(x, y, 128)
		if err != nil {
			t.Errorf("%s^%s: %v", c.x, c.y, err)
			continue
		}
		if r.Cmp(want) != 0 {
			t.Errorf("%s^%s: want %s, got %s", c.x, c.y, c.want, r.RatString())
		}
	}
}

func TestPowRatInexact(t *testing.T) {
	cases := []struct {
		x, y string
		want float64
	}{
		{"2", "1/2", 1.4142135623730951},
		{"10", "1/3", 2.154434690031884},
		{"3/2", "-5/7", 0.7485495079957005},
	}
	for _, c := range cases {
		x, _ := new(big.Rat).SetString(c.x)
		y, _ := new(big.Rat).SetString(c.y)
		r, err := powRat(x, y, 256)
		if err != nil {
			t.Errorf("%s^%s: %v", c.x, c.y, err)
			continue
		}
		f, _ := r.Float64()
		if d := f - c.want; d > 1e-12 || d < -1e-12 {
			t.Errorf("%s^%s: want %v, got %v", c.x, c.y, c.want, f)
		}
	}
}

func TestPowRatDomain(t *testing.T) {
	cases := []struct {
		x, y string
	}{
		{"0", "-1"},
		{"0", "-1/2"},
		{"-4", "1/2"},
		{"-2", "3/4"},
	}
	for _, c := range cases {
		x, _ := new(big.Rat).SetString(c.x)
		y, _ := new(big.Rat).SetString(c.y)
		r, err := powRat(x, y, 64)
		var derr *DomainError
		if !errors.As(err, &derr) {
			t.Errorf("%s^%s: want DomainError, got %v, %v", c.x, c.y, r, err)
		}
	}
}
