package parser

import (
	"strings"

	"github.com/nathanbarta/go-eml/pkgs/ast"
	"github.com/nathanbarta/go-eml/pkgs/errors"
)

const (
	superKeyword   = "super"
	circuitKeyword = "circuit"
)

// parseGroup reads "super(...)" or "circuit(...)" — a non-empty ordered
// list of single tokens. The cursor must be on the leading 's' or 'c'.
// The full keyword is verified before the '(', not just its first letter.
func (p *Parser) parseGroup() (*ast.Group, error) {
	var kind ast.GroupKind
	var keyword string
	if p.current() == 's' {
		kind = ast.GroupSuper
		keyword = superKeyword
	} else {
		kind = ast.GroupCircuit
		keyword = circuitKeyword
	}

	if !strings.HasPrefix(p.input[p.pos:], keyword) {
		return nil, p.errorf(errors.ErrInvalidGroupKeyword, "expected keyword \""+keyword+"\"")
	}
	p.pos += len(keyword)

	if p.atEnd() || p.current() != '(' {
		return nil, p.errorf(errors.ErrInvalidGroupKeyword, "expected '(' after \""+keyword+"\"")
	}
	p.advance()

	var singles []ast.Single
	for {
		if p.atEnd() {
			return nil, p.errorf(errors.ErrUnexpected, "unterminated "+keyword+" group")
		}
		switch p.current() {
		case '"':
			single, err := p.parseSingle()
			if err != nil {
				return nil, err
			}
			singles = append(singles, *single)
		case ')':
			p.advance()
			if len(singles) == 0 {
				return nil, p.errorf(errors.ErrEmptyGroup, keyword+" must contain at least one exercise")
			}
			return &ast.Group{Kind: kind, Singles: singles}, nil
		default:
			return nil, p.errorf(errors.ErrUnexpectedCharacter, unexpectedCharMessage(p.current()))
		}
	}
}
