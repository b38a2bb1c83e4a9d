package unitdc

import (
	"strings"
)

// opUnit attaches a unit to the top of the stack. A base unit gives a unitless
// value its dimension, or resets a value of that dimension to display in base
// units. A derived unit converts a unitless value into base units, or changes
// the display unit of a value of the same dimension. The unit "1" strips the
// dimension and display units without changing the number.
func (in *Interpreter) opUnit(sym string) error {
	if err := in.need("("+sym+")", 1); err != nil {
		return err
	}
	q := in.top()
	if sym == "1" {
		q.Unit = nil
		q.Display = nil
		return nil
	}
	u := in.units.Lookup(sym)
	if u == nil {
		return &UnitError{Symbol: sym}
	}
	switch u := u.(type) {
	case BaseUnit:
		d := Dimension(u)
		switch {
		case q.Unit.IsUnitless():
			q.Unit = d
		case q.Unit.Equal(d):
			q.Display = nil
		default:
			return &IncompatibleError{Unit: q.Unit}
		}
	case *DerivedUnit:
		switch {
		case q.Unit.Equal(u.Exponents):
			q.Display = setDisplay(q.Display, u)
		case q.Unit.IsUnitless():
			q.Number = u.ToBase(q.Number)
			q.Unit = append(UnitCombo(nil), u.Exponents...)
			q.Display = setDisplay(q.Display, u)
		default:
			return &IncompatibleError{Unit: q.Unit}
		}
	default:
		panic("unitdc: unknown unit type")
	}
	return nil
}

// setDisplay replaces the display unit for u's dimension with u.
func setDisplay(disp []*DerivedUnit, u *DerivedUnit) []*DerivedUnit {
	r := make([]*DerivedUnit, 0, len(disp)+1)
	for _, d := range disp {
		if !d.Exponents.Equal(u.Exponents) {
			r = append(r, d)
		}
	}
	return append(r, u)
}

// opArith pops two values and pushes the result of an arithmetic operator.
// On failure, the stack is unchanged.
func (in *Interpreter) opArith(op string) error {
	if err := in.need(op, 2); err != nil {
		return err
	}
	lhs, rhs := in.stack[len(in.stack)-2], in.stack[len(in.stack)-1]
	if (op == "+" || op == "-") && !lhs.Unit.Equal(rhs.Unit) {
		return &IncompatibleError{Unit: rhs.Unit}
	}
	for _, w := range offsetWarnings(lhs, rhs) {
		in.emit(&MessageOutput{Text: w})
	}
	var (
		r   Quantity
		err error
	)
	switch op {
	case "+":
		r, err = lhs.Add(rhs)
	case "-":
		r, err = lhs.Sub(rhs)
	case "*":
		r = lhs.Mul(rhs)
	case "/":
		r, err = lhs.Div(rhs)
	default:
		panic("unitdc: unknown operator " + op)
	}
	if err != nil {
		return err
	}
	in.pop()
	in.pop()
	in.push(r)
	return nil
}

func (in *Interpreter) opPrint() error {
	if err := in.need("p", 1); err != nil {
		return err
	}
	in.emit(&QuantityOutput{Quantity: in.top().Clone()})
	return nil
}

func (in *Interpreter) opPop() error {
	if err := in.need("n", 1); err != nil {
		return err
	}
	in.emit(&QuantityOutput{Quantity: in.pop()})
	return nil
}

func (in *Interpreter) opFull() {
	in.emit(&ListOutput{Quantities: in.Stack()})
}

func (in *Interpreter) opDup() error {
	if err := in.need("d", 1); err != nil {
		return err
	}
	in.push(in.top().Clone())
	return nil
}

func (in *Interpreter) opSwap() error {
	if err := in.need("r", 2); err != nil {
		return err
	}
	n := len(in.stack)
	in.stack[n-1], in.stack[n-2] = in.stack[n-2], in.stack[n-1]
	return nil
}

// opUnits lists the unit system.
func (in *Interpreter) opUnits() {
	var b strings.Builder
	b.WriteString("base units:")
	for _, u := range in.units.BaseUnits() {
		b.WriteByte(' ')
		b.WriteString(u.Symbol)
	}
	b.WriteString("\nderived units:")
	for _, u := range in.units.DerivedUnits() {
		b.WriteString("\n  ")
		b.WriteString(u.Symbol)
		b.WriteString(" = ")
		b.WriteString(formatRat(u.Scale))
		b.WriteString(" (")
		u.Exponents.fmt(&b)
		b.WriteString(") + ")
		b.WriteString(formatRat(u.Offset))
	}
	in.emit(&MessageOutput{Text: b.String()})
}

func (in *Interpreter) opStore(name string) error {
	if err := in.need(">"+name, 1); err != nil {
		return err
	}
	in.vars[name] = in.pop()
	return nil
}

func (in *Interpreter) opRecall(name string) error {
	q, ok := in.vars[name]
	if !ok {
		return &NameError{Name: name}
	}
	in.push(q.Clone())
	return nil
}

// opBase defines a base unit.
//
// For example, to define a unit for US dollars: @base(usd)
func (in *Interpreter) opBase(arg string) error {
	_, err := in.units.DefineBase(strings.TrimSpace(arg))
	return err
}

// opDerived pops a scale and then an offset and defines a derived unit with
// the dimension of the offset.
//
// For example, to define miles per gallon:
// 0 (mi) 1 (gal) / 1 (mi) 1 (gal) / @derived(mpg)
func (in *Interpreter) opDerived(arg string) error {
	sym := strings.TrimSpace(arg)
	if err := in.need("@derived("+sym+")", 2); err != nil {
		return err
	}
	if in.units.Lookup(sym) != nil {
		return &DefinedError{Symbol: sym}
	}
	scale, offset := in.stack[len(in.stack)-1], in.stack[len(in.stack)-2]
	if scale.Number.Sign() == 0 {
		return &DomainError{X: scale.String(), Func: "@derived"}
	}
	u := &DerivedUnit{
		Symbol:    sym,
		Scale:     scale.Number,
		Offset:    offset.Number,
		Exponents: offset.Unit.Reduce(),
	}
	if err := in.units.DefineDerived(u); err != nil {
		return err
	}
	in.pop()
	in.pop()
	return nil
}
