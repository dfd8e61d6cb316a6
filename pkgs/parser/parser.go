// Package parser implements a fast recursive-descent recognizer for
// EML (Exercise Markup Language). Unlike a conventional lexer+parser
// pipeline, it runs in a single pass directly over the input bytes: the
// top-level driver dispatches on the current byte and each sub-parser
// advances a shared cursor, never rewinding it.
//
// The parser carries no process-wide state — every call to Parse gets
// its own *Parser, so concurrent parses need no external locking.
package parser

import (
	"github.com/nathanbarta/go-eml/pkgs/ast"
	"github.com/nathanbarta/go-eml/pkgs/errors"
)

const maxNameLength = 128

// Parser holds the cursor over one parse's input. It is not safe for
// concurrent use by multiple goroutines — create one Parser per Parse call.
type Parser struct {
	input string
	pos   int

	headerSeen bool
	sawObject  bool
}

// Parse recognizes a complete EML program and builds its AST.
// On any error, no partial result is returned.
func Parse(input string) (*ast.Result, error) {
	p := &Parser{input: input}
	return p.parseProgram()
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) current() byte {
	return p.input[p.pos]
}

func (p *Parser) advance() {
	p.pos++
}

// errorf builds an *errors.Error anchored at the current cursor position.
func (p *Parser) errorf(code errors.Code, message string) error {
	return errors.New(code, p.pos, p.input, message)
}

// parseProgram is the top-level driver: it iterates the input byte by
// byte, dispatching '{' to the header parser (once, before any work
// token), '"' to the single-token parser, 's'/'c' to the group parser,
// and ';' as a bare top-level separator. An input that never contains a
// header is rejected with ErrMissingHeaderStart, anchored at byte 0.
func (p *Parser) parseProgram() (*ast.Result, error) {
	result := &ast.Result{}

	for !p.atEnd() {
		switch p.current() {
		case '{':
			if p.headerSeen {
				return nil, p.errorf(errors.ErrHeaderMustBeFirst, "header may appear only once")
			}
			if p.sawObject {
				return nil, p.errorf(errors.ErrHeaderMustBeFirst, "header must precede every work token")
			}
			entries, version, weight, err := p.parseHeader()
			if err != nil {
				return nil, err
			}
			result.Headers = entries
			result.Version = version
			result.Weight = weight
			p.headerSeen = true
		case 's', 'c':
			group, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			result.Objects = append(result.Objects, ast.Object{Kind: ast.ObjectGroup, Group: *group})
			p.sawObject = true
		case '"':
			single, err := p.parseSingle()
			if err != nil {
				return nil, err
			}
			result.Objects = append(result.Objects, ast.Object{Kind: ast.ObjectSingle, Single: *single})
			p.sawObject = true
		case ';':
			p.advance()
		default:
			return nil, p.errorf(errors.ErrUnexpectedCharacter, unexpectedCharMessage(p.current()))
		}
	}

	if !p.headerSeen {
		return nil, errors.New(errors.ErrMissingHeaderStart, 0, p.input, "expected '{' to start header")
	}
	return result, nil
}

func unexpectedCharMessage(c byte) string {
	return "unexpected character '" + string(c) + "'"
}
