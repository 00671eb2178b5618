// Package parser builds a Kyaro AST from a token sequence by recursive
// descent with one level per precedence tier.
package parser

import (
	"github.com/hnrie/Laminax-KPL/internal/ast"
	"github.com/hnrie/Laminax-KPL/internal/errors"
	"github.com/hnrie/Laminax-KPL/pkg/token"
)

// Parser consumes a token sequence produced by the lexer. The sequence is
// always terminated by an EOF token, so cur() is total.
type Parser struct {
	tokens   []token.Token
	position int
}

// New creates a Parser over a token sequence. The sequence must end with an
// EOF token (the lexer guarantees this).
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{{Type: token.EOF}}
	}
	return &Parser{tokens: tokens}
}

// cur returns the current token. Past the end it keeps returning the final
// EOF token.
func (p *Parser) cur() token.Token {
	if p.position < len(p.tokens) {
		return p.tokens[p.position]
	}
	return p.tokens[len(p.tokens)-1]
}

// peek returns the token n positions ahead without consuming it.
func (p *Parser) peek(n int) token.Token {
	pos := p.position + n
	if pos < len(p.tokens) {
		return p.tokens[pos]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() {
	if p.position < len(p.tokens)-1 {
		p.position++
	}
}

// expect consumes and returns the current token if it has the given type,
// or fails with a positioned parse error.
func (p *Parser) expect(tt token.TokenType) (token.Token, error) {
	tok := p.cur()
	if tok.Type != tt {
		return token.Token{}, errors.NewParseError(tok.Pos, "Expected %s, got %s", tt, tok.Type)
	}
	p.advance()
	return tok, nil
}

// skipSeparators consumes newline and semicolon tokens. Both separate
// statements; neither carries semantic weight.
func (p *Parser) skipSeparators() {
	for p.cur().Type == token.NEWLINE || p.cur().Type == token.SEMICOLON {
		p.advance()
	}
}

// ParseProgram parses the whole token sequence into the top-level block.
// The first unexpected token aborts the parse.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}

	p.skipSeparators()
	for p.cur().Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
		p.skipSeparators()
	}

	return program, nil
}
