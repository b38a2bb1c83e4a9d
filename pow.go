package unitdc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// powRat computes x^y. The result is exact when y is an integer or when x has
// an exact root of y's denominator; otherwise it is computed with bigfloat to
// prec bits and converted back to a rational. Returns a *DomainError for 0 to
// a negative power or a negative number to a power with an even denominator.
func powRat(x, y *big.Rat, prec uint) (*big.Rat, error) {
	if y.Sign() < 0 && x.Sign() == 0 {
		return nil, &DomainError{X: formatRat(x), Func: "^" + y.RatString()}
	}
	if y.IsInt() {
		return powInt(x, y.Num()), nil
	}
	if !y.Denom().IsInt64() {
		return powFloat(x, y, prec)
	}
	q := y.Denom().Int64()
	// An odd root of a negative number is the negated root of its magnitude.
	neg := x.Sign() < 0
	if neg && q%2 == 0 {
		return nil, &DomainError{X: formatRat(x), Func: "^" + y.RatString()}
	}
	ax := new(big.Rat).Abs(x)
	n, okn := rootInt(ax.Num(), q)
	d, okd := rootInt(ax.Denom(), q)
	var r *big.Rat
	if okn && okd {
		r = new(big.Rat).SetFrac(n, d)
	} else {
		v, err := powFloat(ax, big.NewRat(1, q), prec)
		if err != nil {
			return nil, err
		}
		r = v
	}
	if neg {
		r.Neg(r)
	}
	return powInt(r, y.Num()), nil
}

// powInt computes x^n exactly. x must be nonzero if n is negative.
func powInt(x *big.Rat, n *big.Int) *big.Rat {
	e := new(big.Int).Abs(n)
	num := new(big.Int).Exp(x.Num(), e, nil)
	den := new(big.Int).Exp(x.Denom(), e, nil)
	if n.Sign() < 0 {
		num, den = den, num
	}
	return new(big.Rat).SetFrac(num, den)
}

// rootInt returns the q-th root of a non-negative integer if it is an integer.
func rootInt(n *big.Int, q int64) (*big.Int, bool) {
	if n.Sign() == 0 || n.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(n), true
	}
	if int64(n.BitLen()) <= q {
		// 1 < root < 2.
		return nil, false
	}
	// Estimate with a float and check the neighbors.
	prec := uint(n.BitLen()) + 64
	f := new(big.Float).SetPrec(prec).SetInt(n)
	f = bigfloat.Pow(new(big.Float).SetPrec(prec), f, new(big.Float).SetPrec(prec).SetRat(big.NewRat(1, q)))
	c, _ := f.Int(nil)
	e := big.NewInt(q)
	var p big.Int
	for _, d := range []int64{0, 1, -1} {
		r := new(big.Int).Add(c, big.NewInt(d))
		if r.Sign() < 0 {
			continue
		}
		if p.Exp(r, e, nil).Cmp(n) == 0 {
			return r, true
		}
	}
	return nil, false
}

// powFloat approximates x^y for x > 0.
func powFloat(x, y *big.Rat, prec uint) (*big.Rat, error) {
	if x.Sign() < 0 {
		return nil, &DomainError{X: formatRat(x), Func: "^" + y.RatString()}
	}
	if x.Sign() == 0 {
		return new(big.Rat), nil
	}
	fx := new(big.Float).SetPrec(prec).SetRat(x)
	fy := new(big.Float).SetPrec(prec).SetRat(y)
	z := bigfloat.Pow(new(big.Float).SetPrec(prec), fx, fy)
	r, _ := z.Rat(nil)
	return r, nil
}
