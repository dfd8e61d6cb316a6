package parser

import "github.com/nathanbarta/go-eml/pkgs/errors"

// parseString reads a quoted ASCII string. The cursor must be on the
// opening '"'; on return it sits just past the closing '"'. Errors:
// empty string ("") and length exceeded (>128 bytes before the closing quote).
func (p *Parser) parseString() (string, error) {
	start := p.pos
	p.advance() // skip opening '"'

	contentStart := p.pos
	for !p.atEnd() {
		if p.current() == '"' {
			s := p.input[contentStart:p.pos]
			p.advance() // skip closing '"'
			if len(s) == 0 {
				return "", errors.New(errors.ErrEmptyString, start, p.input, "string must not be empty")
			}
			return s, nil
		}
		if p.pos-contentStart >= maxNameLength {
			return "", errors.New(errors.ErrStringTooLong, start, p.input, "string exceeds 128 bytes")
		}
		p.advance()
	}

	return "", errors.New(errors.ErrUnexpected, start, p.input, "unterminated string")
}
