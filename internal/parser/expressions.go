package parser

import (
	"strconv"

	"github.com/hnrie/Laminax-KPL/internal/ast"
	"github.com/hnrie/Laminax-KPL/internal/errors"
	"github.com/hnrie/Laminax-KPL/pkg/token"
)

// Expression precedence, lowest to highest: or, and, equality, comparison,
// additive, multiplicative, power, unary prefix, call postfix, primary.
// Each tier gets its own parse function; binary tiers are left-associative,
// power is right-associative, unary is right-associative by recursion.

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}

	for p.cur().Type == token.OR {
		opTok := p.cur()
		p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
	}

	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	for p.cur().Type == token.AND {
		opTok := p.cur()
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
	}

	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.cur().Type == token.EQ || p.cur().Type == token.NOT_EQ {
		opTok := p.cur()
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
	}

	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ:
			opTok := p.cur()
			p.advance()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.cur().Type == token.PLUS || p.cur().Type == token.MINUS {
		opTok := p.cur()
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
	}

	return left, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case token.ASTERISK, token.SLASH, token.PERCENT:
			opTok := p.cur()
			p.advance()
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
		default:
			return left, nil
		}
	}
}

// parsePower handles `**`, right-associative and binding tighter than the
// other multiplicative operators.
func (p *Parser) parsePower() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if p.cur().Type == token.POWER {
		opTok := p.cur()
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok.Type, Right: right}, nil
	}

	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur().Type {
	case token.MINUS, token.NOT:
		opTok := p.cur()
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Token: opTok, Operator: opTok.Type, Operand: operand}, nil
	}
	return p.parseCall()
}

// parseCall parses a primary expression followed by any number of chained
// call suffixes: f(1)(2).
func (p *Parser) parseCall() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.cur().Type == token.LPAREN {
		parenTok := p.cur()
		p.advance()
		p.skipSeparators()

		var args []ast.Expression
		for p.cur().Type != token.RPAREN {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			p.skipSeparators()
			if p.cur().Type != token.COMMA {
				break
			}
			p.advance()
			p.skipSeparators()
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}

		expr = &ast.CallExpression{Token: parenTok, Function: expr, Arguments: args}
	}

	if p.cur().Type == token.LBRACK {
		return nil, errors.NewParseError(p.cur().Pos, "Indexing is not supported")
	}

	return expr, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()

	switch tok.Type {
	case token.NUMBER:
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, errors.NewParseError(tok.Pos, "Invalid number literal: %s", tok.Literal)
		}
		p.advance()
		return &ast.NumberLiteral{Token: tok, Value: value}, nil

	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil

	case token.TRUE:
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: true}, nil

	case token.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: false}, nil

	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Token: tok}, nil

	case token.IDENT:
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Literal}, nil

	case token.LPAREN:
		p.advance()
		p.skipSeparators()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.skipSeparators()
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBRACK:
		return p.parseListLiteral()

	case token.EOF:
		return nil, errors.NewParseError(tok.Pos, "Unexpected end of input")

	default:
		return nil, errors.NewParseError(tok.Pos, "Unexpected token: %s", tok.Type)
	}
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	brackTok := p.cur()
	p.advance()
	p.skipSeparators()

	list := &ast.ListLiteral{Token: brackTok}
	for p.cur().Type != token.RBRACK {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, elem)

		p.skipSeparators()
		if p.cur().Type != token.COMMA {
			break
		}
		p.advance()
		p.skipSeparators()
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}

	return list, nil
}
