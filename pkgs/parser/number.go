package parser

import (
	"github.com/nathanbarta/go-eml/pkgs/ast"
	"github.com/nathanbarta/go-eml/pkgs/errors"
)

// numberBuilder reads an unsigned fixed-point decimal one byte at a
// time, as the single-token parser feeds it digit and '.' bytes. It
// does not own the cursor.
//
// States: before any radix (magnitude accumulates as a plain integer),
// just after a radix with zero fractional digits read (fractional with
// dcount 0 — a flush here is a missing-digit-after-radix error), one
// fractional digit read (dcount 1, the tenths place), and two (dcount 2,
// the hundredths place; a third digit is too-many-fractional-digits).
type numberBuilder struct {
	magnitude  uint32
	fractional bool
	dcount     int
}

// digit folds one '0'-'9' byte into the accumulator, applying the
// integral or fixed-point overflow bound depending on state.
func (b *numberBuilder) digit(at int, input string, d byte) error {
	v := uint32(d - '0')

	switch {
	case !b.fractional:
		t := b.magnitude*10 + v
		if t > ast.MaxInteger {
			return errors.New(errors.ErrIntegralOverflow, at, input, "integral value overflows")
		}
		b.magnitude = t
	case b.dcount == 0:
		t := b.magnitude + v*10
		if t > ast.MaxFixedPoint {
			return errors.New(errors.ErrFixedPointOverflow, at, input, "fixed-point value overflows")
		}
		b.magnitude = t
		b.dcount++
	case b.dcount == 1:
		t := b.magnitude + v
		if t > ast.MaxFixedPoint {
			return errors.New(errors.ErrFixedPointOverflow, at, input, "fixed-point value overflows")
		}
		b.magnitude = t
		b.dcount++
	default:
		return errors.New(errors.ErrTooManyFractionalDigits, at, input, "more than two fractional digits")
	}
	return nil
}

// value packs the accumulated magnitude into an ast.Number, failing if
// a radix was read but no fractional digit followed it.
func (b *numberBuilder) value(at int, input string) (ast.Number, error) {
	if b.fractional && b.dcount == 0 {
		return 0, errors.New(errors.ErrMissingDigitAfterRadix, at, input, "missing digit after radix point")
	}
	if b.fractional {
		return ast.NewFixedPoint(b.magnitude)
	}
	return ast.NewInteger(b.magnitude)
}

// sets returns the plain integer magnitude for a "NxM" sets count,
// which never carries a radix point (callers reject '.' before reaching
// here — see single.go's handling of '.' when kind == none, and of 'x'
// after a fractional number).
func (b *numberBuilder) sets() uint32 {
	return b.magnitude
}

func (b *numberBuilder) reset() {
	*b = numberBuilder{}
}
