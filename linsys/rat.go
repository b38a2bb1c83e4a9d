package linsys

import "math/big"

// Rat is an exact rational Field. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat wraps x. x must not be modified afterward.
func NewRat(x *big.Rat) Rat {
	return Rat{x}
}

// RatInt returns the Rat n.
func RatInt(n int64) Rat {
	return Rat{big.NewRat(n, 1)}
}

// Big returns a copy of r as a *big.Rat.
func (r Rat) Big() *big.Rat {
	if r.r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r.r)
}

func (r Rat) get() *big.Rat {
	if r.r == nil {
		return new(big.Rat)
	}
	return r.r
}

func (r Rat) Add(s Rat) Rat { return Rat{new(big.Rat).Add(r.get(), s.get())} }
func (r Rat) Sub(s Rat) Rat { return Rat{new(big.Rat).Sub(r.get(), s.get())} }
func (r Rat) Mul(s Rat) Rat { return Rat{new(big.Rat).Mul(r.get(), s.get())} }

// Quo returns r/s. Panics if s is zero.
func (r Rat) Quo(s Rat) Rat { return Rat{new(big.Rat).Quo(r.get(), s.get())} }

func (r Rat) Neg() Rat { return Rat{new(big.Rat).Neg(r.get())} }
func (Rat) Zero() Rat { return Rat{new(big.Rat)} }
func (Rat) One() Rat { return Rat{big.NewRat(1, 1)} }
func (r Rat) Equal(s Rat) bool { return r.get().Cmp(s.get()) == 0 }
func (r Rat) String() string { return r.get().RatString() }

var _ Field[Rat] = Rat{}
