package unitdc

import (
	"strconv"
)

// StackError is an error indicating that an operation needed more values than
// were on the stack.
type StackError struct {
	// Op is the token that underflowed.
	Op string
	// Need is the number of values the operation needed.
	Need int
	// Have is the number of values that were on the stack.
	Have int
}

func (err *StackError) Error() string {
	return "stack underflow: " + err.Op + " needs " + strconv.Itoa(err.Need) + " values, have " + strconv.Itoa(err.Have)
}

// UnitError is an error from a lookup for a unit that is not defined.
type UnitError struct {
	// Symbol is the unit that was missing.
	Symbol string
}

func (err *UnitError) Error() string {
	return "undefined unit: " + strconv.Quote(err.Symbol)
}

// MacroError is an error from invoking a macro that does not exist.
type MacroError struct {
	// Name is the macro name.
	Name string
}

func (err *MacroError) Error() string {
	return "undefined macro: " + strconv.Quote(err.Name)
}

// NameError is an error from a lookup for a variable that has not been
// stored.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// IncompatibleError is an error indicating an operation on a value whose
// dimension does not fit.
type IncompatibleError struct {
	// Unit is the offending dimension.
	Unit UnitCombo
}

func (err *IncompatibleError) Error() string {
	return "incompatible units: " + err.Unit.String()
}

// SolveError is an error indicating that the unit solver found no unique
// conversion.
type SolveError struct {
	// Reason describes why.
	Reason string
}

func (err *SolveError) Error() string {
	return "no solution: " + err.Reason
}

// DefinedError is an error indicating an attempt to redefine a unit.
type DefinedError struct {
	// Symbol is the unit that already exists.
	Symbol string
}

func (err *DefinedError) Error() string {
	return "already defined: " + strconv.Quote(err.Symbol)
}

// DomainError is an error returned when an operation is applied to a value
// outside its domain, e.g. division by zero.
type DomainError struct {
	// X is the out-of-domain argument, formatted.
	X string
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// InputError is an error with position information. Every error resulting from
// invalid characters in the input implements InputError.
type InputError interface {
	error
	// Pos returns the line and column of the offending character.
	Pos() Position
}

var _ InputError = (*LexError)(nil)
