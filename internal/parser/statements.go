package parser

import (
	"github.com/hnrie/Laminax-KPL/internal/ast"
	"github.com/hnrie/Laminax-KPL/internal/errors"
	"github.com/hnrie/Laminax-KPL/pkg/token"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.LET:
		return p.parseLetStatement()
	case token.FUNC:
		return p.parseFunctionStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		tok := p.cur()
		p.advance()
		return &ast.BreakStatement{Token: tok}, nil
	case token.CONTINUE:
		tok := p.cur()
		p.advance()
		return &ast.ContinueStatement{Token: tok}, nil
	case token.IDENT:
		switch p.peek(1).Type {
		case token.ASSIGN:
			return p.parseBareAssignment()
		case token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.TIMES_ASSIGN, token.DIVIDE_ASSIGN:
			op := p.peek(1)
			return nil, errors.NewParseError(op.Pos, "Compound assignment %s is not supported", op.Literal)
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let <Ident> = <Expr>`.
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	letTok := p.cur()
	p.advance()

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.AssignmentStatement{
		Token: letTok,
		Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
		Value: value,
	}, nil
}

// parseBareAssignment parses `<Ident> = <Expr>`. It produces the same node
// as a let statement: both define in the current scope.
func (p *Parser) parseBareAssignment() (ast.Statement, error) {
	nameTok := p.cur()
	p.advance()
	p.advance() // consume '='

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.AssignmentStatement{
		Token: nameTok,
		Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
		Value: value,
	}, nil
}

// parseFunctionStatement parses `func <Ident>(<params>) { <stmts> }`.
func (p *Parser) parseFunctionStatement() (ast.Statement, error) {
	funcTok := p.cur()
	p.advance()

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []*ast.Identifier
	for p.cur().Type != token.RPAREN {
		paramTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Identifier{Token: paramTok, Value: paramTok.Literal})

		if p.cur().Type != token.COMMA {
			break
		}
		p.advance()
		// A trailing comma after the last parameter is not permitted.
		if p.cur().Type == token.RPAREN {
			return nil, errors.NewParseError(p.cur().Pos, "Expected %s, got %s", token.IDENT, p.cur().Type)
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionStatement{
		Token:      funcTok,
		Name:       &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
		Parameters: params,
		Body:       body,
	}, nil
}

// parseBlock parses `{ <stmts> }`. Newlines and semicolons inside the braces
// separate statements.
func (p *Parser) parseBlock() (*ast.BlockStatement, error) {
	braceTok, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	block := &ast.BlockStatement{Token: braceTok}
	p.skipSeparators()
	for p.cur().Type != token.RBRACE {
		if p.cur().Type == token.EOF {
			return nil, errors.NewParseError(p.cur().Pos, "Expected %s, got %s", token.RBRACE, token.EOF)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.skipSeparators()
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}

	return block, nil
}

// parseIfStatement parses `if <Expr> { }` with any number of elif arms and
// at most one trailing else.
func (p *Parser) parseIfStatement() (ast.Statement, error) {
	ifTok := p.cur()
	p.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	consequence, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Token: ifTok, Condition: cond, Consequence: consequence}

	for {
		// elif/else may sit on the next line; separators between the closing
		// brace and the keyword are insignificant either way.
		mark := p.position
		p.skipSeparators()

		switch p.cur().Type {
		case token.ELIF:
			p.advance()
			elifCond, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elifBody, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Elifs = append(stmt.Elifs, ast.ElifBranch{Condition: elifCond, Body: elifBody})
		case token.ELSE:
			p.advance()
			alt, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Alternative = alt
			return stmt, nil
		default:
			p.position = mark
			return stmt, nil
		}
	}
}

// parseWhileStatement parses `while <Expr> { <stmts> }`.
func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	whileTok := p.cur()
	p.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStatement{Token: whileTok, Condition: cond, Body: body}, nil
}

// parseForStatement parses `for <Ident> in <Expr> { <stmts> }`.
func (p *Parser) parseForStatement() (ast.Statement, error) {
	forTok := p.cur()
	p.advance()

	varTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForInStatement{
		Token:    forTok,
		Variable: &ast.Identifier{Token: varTok, Value: varTok.Literal},
		Iterable: iterable,
		Body:     body,
	}, nil
}

// parseReturnStatement parses `return [<Expr>]`. The expression is absent
// when the statement ends at a separator, a closing brace, or EOF.
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	retTok := p.cur()
	p.advance()

	switch p.cur().Type {
	case token.NEWLINE, token.SEMICOLON, token.RBRACE, token.EOF:
		return &ast.ReturnStatement{Token: retTok}, nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Token: retTok, Value: value}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	tok := p.cur()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}, nil
}
