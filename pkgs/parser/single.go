package parser

import (
	"github.com/nathanbarta/go-eml/pkgs/ast"
	"github.com/nathanbarta/go-eml/pkgs/errors"
)

// workKind tracks what shape of work a singleBuilder is currently
// assembling, prior to any asymmetric split.
type workKind int

const (
	kindNone workKind = iota
	kindStandard
	kindStandardVaried
)

// singleBuilder accumulates one side of an exercise token (or the whole
// token, for symmetric work) as the byte-driven state machine in
// parseSingle runs over it.
type singleBuilder struct {
	kind     workKind
	modifier ast.ModifierKind
	num      numberBuilder

	sets   uint32
	rep    ast.Reps
	vReps  []ast.Reps
	vcount uint32

	asymmetric bool
	left       ast.Side
}

// currentSide packs whatever has been accumulated so far into the Side
// it represents. It is the terminal conversion used both at the ':'
// split and at the closing ';'.
func (b *singleBuilder) currentSide() ast.Side {
	switch b.kind {
	case kindStandard:
		return ast.StandardWork{Sets: b.sets, Reps: b.rep}
	case kindStandardVaried:
		return ast.StandardVariedWork{Sets: b.sets, Reps: b.vReps}
	default:
		return ast.NoWork{}
	}
}

// resetSide clears accumulated work state for the start of a new side,
// after an asymmetric split. The asymmetric flag itself is left alone.
func (b *singleBuilder) resetSide() {
	b.kind = kindNone
	b.modifier = ast.NoModifier
	b.sets = 0
	b.rep = ast.Reps{}
	b.vReps = nil
	b.vcount = 0
	b.num.reset()
}

// flush packs whatever number the numberBuilder is currently holding
// into the rep(s) it belongs to, applying the active modifier.
//
// macro selects which reps a pending weight/RPE modifier applies to:
// false writes a single indexed slot (',' and ')' inside a varied set
// list); true applies the "trailing macro" rule at ':' and ';' — a
// modifier written after the closing ')' fills every rep whose modifier
// slot is still empty, never overwriting a rep's own local modifier.
func (b *singleBuilder) flush(p *Parser, macro bool) error {
	if b.num.fractional && b.num.dcount == 0 {
		return errors.New(errors.ErrMissingDigitAfterRadix, p.pos, p.input, "missing digit after radix point")
	}

	switch b.kind {
	case kindNone:
		if b.modifier != ast.NoModifier {
			return p.errorf(errors.ErrModifierOnNoneWork, "modifier on work with no sets")
		}

	case kindStandard:
		value, err := b.num.value(p.pos, p.input)
		if err != nil {
			return err
		}
		switch b.modifier {
		case ast.NoModifier:
			b.rep.Value = value
		case ast.WeightModifier, ast.RPEModifier:
			b.rep.Modifier = b.modifier
			b.rep.ModValue = value
		}

	case kindStandardVaried:
		if macro {
			if b.modifier == ast.NoModifier {
				break
			}
			value, err := b.num.value(p.pos, p.input)
			if err != nil {
				return err
			}
			for i := range b.vReps {
				if b.vReps[i].Modifier == ast.NoModifier {
					b.vReps[i].Modifier = b.modifier
					b.vReps[i].ModValue = value
				}
			}
		} else {
			value, err := b.num.value(p.pos, p.input)
			if err != nil {
				return err
			}
			switch b.modifier {
			case ast.NoModifier:
				b.vReps[b.vcount].Value = value
			case ast.WeightModifier, ast.RPEModifier:
				b.vReps[b.vcount].Modifier = b.modifier
				b.vReps[b.vcount].ModValue = value
			}
		}
	}

	b.num.reset()
	b.modifier = ast.NoModifier
	return nil
}

// parseSingle reads one exercise token: a quoted name, ':', and a work
// body driven byte by byte through a small state machine. The cursor
// must be on the opening '"' of the name.
func (p *Parser) parseSingle() (*ast.Single, error) {
	name, err := p.parseString()
	if err != nil {
		return nil, err
	}

	if p.atEnd() || p.current() != ':' {
		return nil, p.errorf(errors.ErrNameWorkSeparator, "expected ':' between exercise name and work")
	}
	p.advance()

	b := &singleBuilder{}

	for !p.atEnd() {
		c := p.current()
		switch c {
		case '"':
			p.advance()

		case 'x':
			if b.num.fractional {
				return nil, p.errorf(errors.ErrFractionalSets, "fractional value in sets count")
			}
			b.sets = b.num.sets()
			b.num.reset()
			b.kind = kindStandard
			b.rep = ast.Reps{}
			p.advance()

		case '(':
			if b.kind != kindStandard {
				return nil, p.errorf(errors.ErrUnexpectedCharacter, "'(' requires a preceding sets count")
			}
			b.vReps = make([]ast.Reps, b.sets)
			b.vcount = 0
			b.kind = kindStandardVaried
			b.num.reset()
			p.advance()

		case ',':
			if b.kind != kindStandardVaried {
				return nil, p.errorf(errors.ErrUnexpectedCharacter, "',' outside a varied set list")
			}
			if b.vcount >= b.sets {
				return nil, p.errorf(errors.ErrExtraVariableReps, "too many entries in varied set list")
			}
			if err := b.flush(p, false); err != nil {
				return nil, err
			}
			b.vcount++
			p.advance()

		case ')':
			if b.kind != kindStandardVaried {
				return nil, p.errorf(errors.ErrUnexpectedCharacter, "')' outside a varied set list")
			}
			if b.vcount >= b.sets {
				return nil, p.errorf(errors.ErrExtraVariableReps, "too many entries in varied set list")
			}
			if err := b.flush(p, false); err != nil {
				return nil, err
			}
			b.vcount++
			if b.vcount < b.sets {
				return nil, p.errorf(errors.ErrMissingVariableReps, "too few entries in varied set list")
			}
			p.advance()

		case 'F':
			switch b.kind {
			case kindNone:
				return nil, p.errorf(errors.ErrNoneWorkToFailure, "'F' on work with no sets")
			case kindStandard:
				b.rep.ToFailure = true
			case kindStandardVaried:
				if b.vcount >= b.sets {
					return nil, p.errorf(errors.ErrFailureMacro, "'F' cannot trail a closed varied set list")
				}
				b.vReps[b.vcount].ToFailure = true
			}
			p.advance()

		case 'T':
			switch b.kind {
			case kindNone:
				return nil, p.errorf(errors.ErrModifierOnNoneWork, "'T' on work with no sets")
			case kindStandard:
				b.rep.IsTime = true
			case kindStandardVaried:
				if b.vcount >= b.sets {
					return nil, p.errorf(errors.ErrTimeMacro, "'T' cannot trail a closed varied set list")
				}
				b.vReps[b.vcount].IsTime = true
			}
			p.advance()

		case '@', '%':
			modifier := ast.WeightModifier
			if c == '%' {
				modifier = ast.RPEModifier
			}
			switch b.kind {
			case kindNone:
				return nil, p.errorf(errors.ErrModifierOnNoneWork, "modifier on work with no sets")
			case kindStandard:
				value, err := b.num.value(p.pos, p.input)
				if err != nil {
					return nil, err
				}
				b.rep.Value = value
			case kindStandardVaried:
				if b.vcount < b.sets {
					value, err := b.num.value(p.pos, p.input)
					if err != nil {
						return nil, err
					}
					b.vReps[b.vcount].Value = value
				}
			}
			b.num.reset()
			b.modifier = modifier
			p.advance()

		case '.':
			if b.kind == kindNone {
				return nil, p.errorf(errors.ErrFractionalSets, "fractional value in sets count")
			}
			if b.num.fractional {
				return nil, p.errorf(errors.ErrDuplicateRadix, "multiple radix points in one number")
			}
			if b.modifier == ast.NoModifier {
				return nil, p.errorf(errors.ErrFractionalNoneModifier, "fractional value without a modifier")
			}
			b.num.fractional = true
			b.num.magnitude *= 100
			p.advance()

		case ':':
			if b.asymmetric {
				return nil, p.errorf(errors.ErrDuplicateAsymmetric, "work is already asymmetric")
			}
			if err := b.flush(p, true); err != nil {
				return nil, err
			}
			b.left = b.currentSide()
			b.asymmetric = true
			b.resetSide()
			p.advance()

		case ';':
			if err := b.flush(p, true); err != nil {
				return nil, err
			}
			side := b.currentSide()
			p.advance()

			var work ast.Work
			if b.asymmetric {
				work = ast.AsymmetricWork{Left: b.left, Right: side}
			} else {
				work = side
			}
			return &ast.Single{Name: name, Work: work}, nil

		default:
			if c < '0' || c > '9' {
				return nil, p.errorf(errors.ErrUnexpectedCharacter, unexpectedCharMessage(c))
			}
			if err := b.num.digit(p.pos, p.input, c); err != nil {
				return nil, err
			}
			p.advance()
		}
	}

	return nil, p.errorf(errors.ErrUnexpected, "unterminated exercise token")
}
