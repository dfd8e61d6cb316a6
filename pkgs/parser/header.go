package parser

import (
	"github.com/nathanbarta/go-eml/pkgs/ast"
	"github.com/nathanbarta/go-eml/pkgs/errors"
)

const (
	maxVersionLength = 12
	maxWeightLength  = 3
)

// parseHeader reads the "{key:value,...}" header section. The cursor
// must be on the opening '{'; on return it sits just past the closing
// '}'. It returns every entry in input order plus the truncated
// recognized "version"/"weight" values.
func (p *Parser) parseHeader() ([]ast.HeaderEntry, string, string, error) {
	if p.atEnd() || p.current() != '{' {
		return nil, "", "", p.errorf(errors.ErrMissingHeaderStart, "expected '{' to start header")
	}
	p.advance()

	var entries []ast.HeaderEntry
	var version, weight string

	for !p.atEnd() {
		switch p.current() {
		case '}':
			p.advance()
			return entries, version, weight, nil
		case ',':
			p.advance()
		case '"':
			entry, err := p.parseHeaderEntry()
			if err != nil {
				return nil, "", "", err
			}
			entries = append(entries, entry)

			switch entry.Parameter {
			case "version":
				version = truncate(entry.Value, maxVersionLength)
			case "weight":
				weight = truncate(entry.Value, maxWeightLength)
			}
		default:
			return nil, "", "", p.errorf(errors.ErrUnexpectedCharacter, unexpectedCharMessage(p.current()))
		}
	}

	return nil, "", "", p.errorf(errors.ErrUnexpected, "unterminated header")
}

// parseHeaderEntry reads one "param":"value" pair. The cursor must be
// on the opening '"' of the parameter string.
func (p *Parser) parseHeaderEntry() (ast.HeaderEntry, error) {
	parameter, err := p.parseString()
	if err != nil {
		return ast.HeaderEntry{}, err
	}

	if p.atEnd() || p.current() != ':' {
		return ast.HeaderEntry{}, p.errorf(errors.ErrUnexpectedCharacter, "expected ':' between header key and value")
	}
	p.advance()

	if p.atEnd() || p.current() != '"' {
		return ast.HeaderEntry{}, p.errorf(errors.ErrUnexpectedCharacter, "expected string header value")
	}
	value, err := p.parseString()
	if err != nil {
		return ast.HeaderEntry{}, err
	}

	return ast.HeaderEntry{Parameter: parameter, Value: value}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
