package unitdc

import (
	"math/big"
)

var bigTen = big.NewInt(10)

// ParseRat parses a number literal exactly. The literal is an optional leading
// minus sign, then digits with at most one decimal point, then optionally an
// exponent marker e or E with an optional minus sign and more digits.
// Underscores may appear anywhere and are ignored. No rounding occurs, so
// "0.1" is exactly 1/10.
//
// An invalid literal produces a *LexError with Kind "number" and Col set to
// the 1-based index of the offending rune.
func ParseRat(s string) (*big.Rat, error) {
	// le is true immediately after the exponent marker, where a minus sign
	// is allowed.
	var (
		mant, exp       big.Int
		neg, eneg       bool
		dot, e, dig, le bool
		places          int64
	)
	col := 0
	for i, r := range s {
		col++
		switch {
		case r == '_':
			continue
		case r == '-':
			switch {
			case !dig && !neg && !dot && !e:
				neg = true
			case le:
				eneg = true
				le = false
			default:
				return nil, literalError(s[:i], r, col)
			}
			continue
		case '0' <= r && r <= '9':
			d := big.NewInt(int64(r - '0'))
			if e {
				exp.Mul(&exp, bigTen)
				exp.Add(&exp, d)
			} else {
				mant.Mul(&mant, bigTen)
				mant.Add(&mant, d)
				if dot {
					places++
				}
			}
			dig = true
		case r == '.':
			if dot || e {
				return nil, literalError(s[:i], r, col)
			}
			dot = true
		case r == 'e', r == 'E':
			if e {
				return nil, literalError(s[:i], r, col)
			}
			e = true
			le = true
			continue
		default:
			return nil, literalError(s[:i], r, col)
		}
		le = false
	}
	if !dig {
		return nil, &LexError{Text: s, Kind: "number", Col: col}
	}
	if neg {
		mant.Neg(&mant)
	}
	if eneg {
		exp.Neg(&exp)
	}
	exp.Sub(&exp, big.NewInt(places))
	r := new(big.Rat).SetInt(&mant)
	if exp.Sign() == 0 {
		return r, nil
	}
	var p big.Int
	p.Exp(bigTen, new(big.Int).Abs(&exp), nil)
	if exp.Sign() > 0 {
		return r.Mul(r, new(big.Rat).SetInt(&p)), nil
	}
	// SetFrac normalizes to lowest terms.
	return r.SetFrac(&mant, &p), nil
}

func literalError(prefix string, r rune, col int) error {
	return &LexError{Text: prefix + string(r), Kind: "number", Col: col}
}
