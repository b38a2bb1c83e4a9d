package unitdc

import (
	"math/big"

	"github.com/hashicorp/go-set/v3"

	"github.com/zephyrtronium/unitdc/linsys"
)

// opSolve is the unit solver. The top of the stack is the target: its
// dimension is the one wanted, and its displayed number is the count of known
// values beneath it. The solver finds the power of each known such that the
// product of the powers has the target dimension, then replaces the target
// and the knowns with that product, displayed like the target.
//
// On failure, the stack is unchanged.
func (in *Interpreter) opSolve() error {
	if err := in.need("s", 1); err != nil {
		return err
	}
	t := *in.top()
	nr := t.NumberInDerived()
	if !nr.IsInt() || nr.Sign() < 0 || !nr.Num().IsInt64() || nr.Num().Int64() > int64(len(in.stack)-1) {
		return &StackError{Op: "s", Need: count(nr), Have: len(in.stack)}
	}
	n := int(nr.Num().Int64())
	knowns := in.stack[len(in.stack)-1-n : len(in.stack)-1]
	dst := t.Unit.Reduce()

	// Rows are the base units of the knowns, in order of first appearance.
	seen := set.New[BaseUnit](len(dst))
	var involved []BaseUnit
	for _, k := range knowns {
		for _, e := range k.Unit.Reduce() {
			if seen.Insert(e.Unit) {
				involved = append(involved, e.Unit)
			}
		}
	}
	for _, e := range dst {
		if !seen.Contains(e.Unit) {
			return &IncompatibleError{Unit: dst}
		}
	}

	coef, err := solveExponents(knowns, involved, dst)
	if err != nil {
		return err
	}
	r := big.NewRat(1, 1)
	for i, k := range knowns {
		p, err := powRat(k.Number, coef[i], in.prec)
		if err != nil {
			return err
		}
		r.Mul(r, p)
	}
	in.stack = in.stack[:len(in.stack)-1-n]
	in.push(Quantity{
		Number:  r,
		Unit:    dst,
		Display: append([]*DerivedUnit(nil), t.Display...),
	})
	return nil
}

// count describes a requested number of knowns for a stack error.
func count(x *big.Rat) int {
	if !x.IsInt() || !x.Num().IsInt64() {
		return -1
	}
	return int(x.Num().Int64()) + 1
}

// solveExponents finds the coefficient of each known so that the weighted sum
// of their exponents equals the exponents of dst.
func solveExponents(knowns []Quantity, involved []BaseUnit, dst UnitCombo) ([]*big.Rat, error) {
	if len(knowns) == 0 {
		if !dst.IsUnitless() {
			return nil, &IncompatibleError{Unit: dst}
		}
		return nil, nil
	}
	if len(involved) == 0 {
		// Only unitless knowns, so every power is free.
		return nil, &SolveError{Reason: "Linear system is overdetermined"}
	}
	cols := make([][]linsys.Rat, len(knowns))
	for i, k := range knowns {
		cols[i] = make([]linsys.Rat, len(involved))
		for j, u := range involved {
			cols[i][j] = linsys.RatInt(int64(k.Unit.Exponent(u)))
		}
	}
	rhs := make([]linsys.Rat, len(involved))
	for j, u := range involved {
		rhs[j] = linsys.RatInt(int64(dst.Exponent(u)))
	}
	sys := linsys.NewEquations(linsys.Transpose(cols), rhs)
	x, ok := sys.Solve()
	switch {
	case !ok:
		return nil, &SolveError{Reason: "failed to solve unit conversion"}
	case sys.Overdetermined():
		return nil, &SolveError{Reason: "Linear system is overdetermined"}
	case sys.Underdetermined():
		return nil, &SolveError{Reason: "Linear system is underdetermined"}
	}
	// Pivoted rows are not necessarily in column order, so place each value
	// by its pivot column.
	coef := make([]*big.Rat, len(knowns))
	k := 0
	for i := 0; i < sys.Rows(); i++ {
		c := sys.PivotColumn(i)
		if c < 0 {
			continue
		}
		if c >= len(knowns) || k >= len(x) {
			return nil, &SolveError{Reason: "failed to solve unit conversion"}
		}
		coef[c] = x[k].Big()
		k++
	}
	for _, c := range coef {
		if c == nil {
			return nil, &SolveError{Reason: "failed to solve unit conversion"}
		}
	}
	return coef, nil
}
