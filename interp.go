package unitdc

import (
	"io"
	"strings"

	perrors "github.com/pkg/errors"
)

// Interpreter evaluates commands against a stack of quantities, a table of
// variables, and a unit system. State persists across calls to Eval; an error
// stops evaluation but does not undo the effects of earlier tokens. It is not
// safe to use an Interpreter concurrently.
type Interpreter struct {
	stack []Quantity
	vars  map[string]Quantity
	units *UnitSystem
	out   func(Output)
	prec  uint
}

// Output is an event produced during evaluation: a *QuantityOutput,
// *ListOutput, or *MessageOutput.
type Output interface {
	output()
}

// QuantityOutput is the output of p and n.
type QuantityOutput struct {
	Quantity Quantity
}

// ListOutput is the output of f. Quantities is ordered from the bottom of the
// stack to the top.
type ListOutput struct {
	Quantities []Quantity
}

// MessageOutput is text for the user, like warnings and the unit listing.
type MessageOutput struct {
	Text string
}

func (*QuantityOutput) output() {}
func (*ListOutput) output()     {}
func (*MessageOutput) output()  {}

// InterpOption is an option used when creating an interpreter.
type InterpOption interface {
	interpOption()
}

type (
	preludeopt struct {
		src string
	}
	precopt uint
)

func (preludeopt) interpOption() {}
func (precopt) interpOption()    {}

// Prelude sets the script evaluated when the interpreter is created. The
// default is StandardPrelude.
func Prelude(src string) InterpOption {
	return preludeopt{src}
}

// NoPrelude creates the interpreter with no units defined.
func NoPrelude() InterpOption {
	return preludeopt{}
}

// Prec sets the precision in bits of powers that can't be computed exactly
// by the unit solver. The default is 256.
func Prec(prec uint) InterpOption {
	return precopt(prec)
}

// New creates an interpreter which sends output events to out. out is called
// synchronously during evaluation and must not use the interpreter. If out is
// nil, output is discarded. The prelude is evaluated before New returns; if
// it fails, the result is a nil interpreter and the error.
func New(out func(Output), opts ...InterpOption) (*Interpreter, error) {
	if out == nil {
		out = func(Output) {}
	}
	in := Interpreter{
		vars:  make(map[string]Quantity),
		units: NewUnitSystem(),
		out:   out,
		prec:  256,
	}
	prelude := StandardPrelude
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case preludeopt:
			prelude = opt.src
		case precopt:
			in.prec = uint(opt)
		default:
			panic("unitdc: unknown option type")
		}
	}
	if err := in.Eval(prelude); err != nil {
		return nil, perrors.Wrap(err, "evaluating prelude")
	}
	return &in, nil
}

// Eval evaluates a command string.
func (in *Interpreter) Eval(src string) error {
	return in.EvalReader(strings.NewReader(src))
}

// EvalReader evaluates commands read from src until the end of the input or
// the first error. Invalid characters produce a *LexError, which implements
// InputError.
func (in *Interpreter) EvalReader(src io.RuneScanner) error {
	l := lex(src)
	for {
		tok, err := l.next()
		if err != nil {
			return err
		}
		if tok.kind == tokenEOF {
			return nil
		}
		if err := in.exec(tok); err != nil {
			return err
		}
	}
}

// exec executes a single token.
func (in *Interpreter) exec(tok lexToken) error {
	switch tok.kind {
	case tokenNum:
		in.push(NewQuantity(tok.num, nil))
	case tokenUnit:
		return in.opUnit(tok.text)
	case tokenArith:
		return in.opArith(tok.text)
	case tokenCmd:
		switch tok.text {
		case "p":
			return in.opPrint()
		case "n":
			return in.opPop()
		case "f":
			in.opFull()
		case "d":
			return in.opDup()
		case "c":
			in.stack = in.stack[:0]
		case "r":
			return in.opSwap()
		case "s":
			return in.opSolve()
		case "U":
			in.opUnits()
		default:
			panic("unitdc: unknown command " + tok.text)
		}
	case tokenStore:
		return in.opStore(tok.text)
	case tokenRecall:
		return in.opRecall(tok.text)
	case tokenMacro:
		switch tok.text {
		case "base":
			return in.opBase(tok.arg)
		case "derived":
			return in.opDerived(tok.arg)
		default:
			return &MacroError{Name: tok.text}
		}
	case tokenComment:
		// do nothing
	default:
		panic("unitdc: invalid token " + tok.String())
	}
	return nil
}

// Stack returns a copy of the stack, bottom first.
func (in *Interpreter) Stack() []Quantity {
	r := make([]Quantity, len(in.stack))
	for i, q := range in.stack {
		r[i] = q.Clone()
	}
	return r
}

// Lookup returns a copy of the value of a variable. If there is no such
// variable, the result is false.
func (in *Interpreter) Lookup(name string) (Quantity, bool) {
	q, ok := in.vars[name]
	if !ok {
		return Quantity{}, false
	}
	return q.Clone(), true
}

// Units returns the interpreter's unit system. The caller must not define
// units while the interpreter is evaluating.
func (in *Interpreter) Units() *UnitSystem {
	return in.units
}

// push pushes a quantity.
func (in *Interpreter) push(q Quantity) {
	in.stack = append(in.stack, q)
}

// pop removes the top from the stack and returns it. The stack must not be
// empty.
func (in *Interpreter) pop() Quantity {
	q := in.stack[len(in.stack)-1]
	in.stack[len(in.stack)-1] = Quantity{}
	in.stack = in.stack[:len(in.stack)-1]
	return q
}

// top returns a pointer to the top of the stack, which must not be empty.
func (in *Interpreter) top() *Quantity {
	return &in.stack[len(in.stack)-1]
}

// need returns a *StackError if the stack has fewer than n values.
func (in *Interpreter) need(op string, n int) error {
	if len(in.stack) < n {
		return &StackError{Op: op, Need: n, Have: len(in.stack)}
	}
	return nil
}

// emit sends an output event.
func (in *Interpreter) emit(o Output) {
	in.out(o)
}
