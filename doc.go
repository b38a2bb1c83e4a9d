// Package unitdc implements a reverse Polish notation calculator whose values
// carry physical units.
//
// Numbers are exact rationals. Every value is stored in terms of base units,
// like meters or kelvin, together with the derived units it should be shown
// in, like kilometers or degrees Celsius. "2 (km) 1 (m) + p" prints 2.001 km.
// Derived units are affine, so temperature scales work too.
//
// Commands are flat sequences of tokens. Each token does one thing to the
// stack:
//
//	1.5e3      push a number
//	(km)       attach a unit to the top value, or convert it
//	+ - * /    arithmetic
//	p n f      print top, pop and print top, print the whole stack
//	d r c      duplicate, swap, clear
//	>x <x      store and recall variables
//	@base(m)   define a base unit
//	@derived(km) pop a scale and an offset and define a derived unit
//	s          solve for a unit conversion
//	U          list units
//	# ...      comment
//
// The solver takes a target value whose number is the count of known values
// beneath it and finds the powers of the knowns that multiply to the target's
// dimension. "3 (m) 2 (s) 2 (m) 1 (s) / s" divides the meters by the seconds
// and gives 1.5 m/s.
package unitdc
