package parser

import (
	"testing"

	"github.com/nathanbarta/go-eml/pkgs/errors"
)

func feedDigits(t *testing.T, b *numberBuilder, digits string) {
	t.Helper()
	for i := 0; i < len(digits); i++ {
		if err := b.digit(i, digits, digits[i]); err != nil {
			t.Fatalf("digit(%q) at %d: %v", digits, i, err)
		}
	}
}

func TestNumberBuilderPlainInteger(t *testing.T) {
	var b numberBuilder
	feedDigits(t, &b, "120")

	n, err := b.value(0, "120")
	if err != nil {
		t.Fatalf("value() unexpected error: %v", err)
	}
	if n.HasFraction() {
		t.Error("plain integer unexpectedly has fraction bit")
	}
	if n.Masked() != 120 {
		t.Errorf("Masked() = %d, want 120", n.Masked())
	}
}

func TestNumberBuilderFixedPoint(t *testing.T) {
	var b numberBuilder
	feedDigits(t, &b, "120")
	b.fractional = true
	b.magnitude *= 100
	feedDigits(t, &b, "5")

	n, err := b.value(0, "")
	if err != nil {
		t.Fatalf("value() unexpected error: %v", err)
	}
	if !n.HasFraction() {
		t.Error("fixed point value has no fraction bit")
	}
	if n.Masked() != 12050 {
		t.Errorf("Masked() = %d, want 12050", n.Masked())
	}
}

func TestNumberBuilderMissingDigitAfterRadix(t *testing.T) {
	var b numberBuilder
	feedDigits(t, &b, "5")
	b.fractional = true
	b.magnitude *= 100

	_, err := b.value(0, "5.")
	code, ok := errors.CodeOf(err)
	if !ok || code != errors.ErrMissingDigitAfterRadix {
		t.Errorf("value() code = %v, want %v", code, errors.ErrMissingDigitAfterRadix)
	}
}

func TestNumberBuilderTooManyFractionalDigits(t *testing.T) {
	var b numberBuilder
	b.fractional = true

	if err := b.digit(0, "0", '1'); err != nil {
		t.Fatalf("first fractional digit: %v", err)
	}
	if err := b.digit(1, "01", '2'); err != nil {
		t.Fatalf("second fractional digit: %v", err)
	}

	err := b.digit(2, "012", '3')
	code, ok := errors.CodeOf(err)
	if !ok || code != errors.ErrTooManyFractionalDigits {
		t.Errorf("third fractional digit code = %v, want %v", code, errors.ErrTooManyFractionalDigits)
	}
}

func TestNumberBuilderIntegralOverflow(t *testing.T) {
	var b numberBuilder
	feedDigits(t, &b, "21474835")

	if err := b.digit(8, "214748356", '6'); err == nil {
		t.Fatal("digit() succeeded past the integral bound, want error")
	} else if code, ok := errors.CodeOf(err); !ok || code != errors.ErrIntegralOverflow {
		t.Errorf("digit() code = %v, want %v", code, errors.ErrIntegralOverflow)
	}
}

func TestNumberBuilderReset(t *testing.T) {
	var b numberBuilder
	feedDigits(t, &b, "42")
	b.fractional = true
	b.dcount = 1

	b.reset()

	if b.magnitude != 0 || b.fractional || b.dcount != 0 {
		t.Errorf("reset() left state = %+v, want zero value", b)
	}
}
