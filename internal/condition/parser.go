package condition

import (
	"fmt"
	"strconv"
	"strings"

	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

// Parse compiles a condition string into an AST, per the grammar in
// spec.md §4.1. An empty string is not a valid condition; callers should
// check Conditional.HasCondition first.
func Parse(input string) (Node, error) {
	p := &parser{lex: newLexer(input), input: input}
	if err := p.advance(); err != nil {
		return nil, p.syntaxError(err)
	}
	node, err := p.parseCondition()
	if err != nil {
		return nil, p.syntaxError(err)
	}
	if p.tok.kind != tokEOF {
		return nil, p.syntaxError(fmt.Errorf("unexpected trailing input %q", p.tok.text))
	}
	return node, nil
}

type parser struct {
	lex   *lexer
	tok   token
	input string
}

func (p *parser) syntaxError(cause error) *ordinatorerrors.OrdinatorError {
	return ordinatorerrors.NewConditionSyntax(p.input, cause.Error(), ordinatorerrors.WithCause(cause))
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	if p.tok.kind != kind {
		return token{}, fmt.Errorf("expected %s at position %d, found %q", what, p.tok.pos, p.tok.text)
	}
	tok := p.tok
	return tok, p.advance()
}

// parseCondition := term ( ('or' | 'and') term )*
func (p *parser) parseCondition() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokIdent && (p.tok.text == "or" || p.tok.text == "and") {
		op := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == "or" {
			left = OrNode{Left: left, Right: right}
		} else {
			left = AndNode{Left: left, Right: right}
		}
	}
	return left, nil
}

// parseTerm := 'not'? ( '(' condition ')' | function )
func (p *parser) parseTerm() (Node, error) {
	if p.tok.kind == tokIdent && p.tok.text == "not" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return NotNode{Operand: operand}, nil
	}

	if p.tok.kind == tokLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return p.parseFunction()
}

func (p *parser) parseFunction() (Node, error) {
	if p.tok.kind != tokIdent {
		return nil, fmt.Errorf("expected a function name at position %d, found %q", p.tok.pos, p.tok.text)
	}
	name := p.tok.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}

	var node Node
	var err error
	switch name {
	case "file":
		node, err = p.parseOneStringArg(func(s string) Node { return FileCall{Path: s} })
	case "active":
		node, err = p.parseOneStringArg(func(s string) Node { return ActiveCall{Plugin: s} })
	case "many":
		node, err = p.parseOneStringArg(func(s string) Node { return ManyCall{Regex: s} })
	case "many_active":
		node, err = p.parseOneStringArg(func(s string) Node { return ManyActiveCall{Regex: s} })
	case "is_master":
		node, err = p.parseOneStringArg(func(s string) Node { return IsMasterCall{Plugin: s} })
	case "checksum":
		node, err = p.parseChecksum()
	case "version":
		node, err = p.parseVersion()
	default:
		return nil, fmt.Errorf("unknown function %q at position %d", name, p.tok.pos)
	}
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseOneStringArg(build func(string) Node) (Node, error) {
	s, err := p.expect(tokString, "a quoted string")
	if err != nil {
		return nil, err
	}
	return build(s.text), nil
}

func (p *parser) parseChecksum() (Node, error) {
	path, err := p.expect(tokString, "a quoted string")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma, "','"); err != nil {
		return nil, err
	}
	hexTok, err := p.expect(tokIdent, "a hex32 literal")
	if err != nil {
		return nil, err
	}
	crc, err := strconv.ParseUint(hexTok.text, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex32 literal %q at position %d", hexTok.text, hexTok.pos)
	}
	return ChecksumCall{Path: path.text, CRC: uint32(crc)}, nil
}

func (p *parser) parseVersion() (Node, error) {
	path, err := p.expect(tokString, "a quoted string")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma, "','"); err != nil {
		return nil, err
	}
	version, err := p.expect(tokString, "a quoted string")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma, "','"); err != nil {
		return nil, err
	}
	cmp, err := p.parseComparator()
	if err != nil {
		return nil, err
	}
	return VersionCall{Path: path.text, Version: version.text, Comparator: cmp}, nil
}

func (p *parser) parseComparator() (Comparator, error) {
	if p.tok.kind != tokCmp {
		return "", fmt.Errorf("expected a comparator at position %d, found %q", p.tok.pos, p.tok.text)
	}
	text := p.tok.text
	if err := p.advance(); err != nil {
		return "", err
	}
	switch strings.TrimSpace(text) {
	case "==":
		return CmpEQ, nil
	case "!=":
		return CmpNE, nil
	case "<":
		return CmpLT, nil
	case ">":
		return CmpGT, nil
	case "<=":
		return CmpLE, nil
	case ">=":
		return CmpGE, nil
	default:
		return "", fmt.Errorf("unknown comparator %q", text)
	}
}
