package ast

import (
	"testing"

	"github.com/hnrie/Laminax-KPL/pkg/token"
)

func ident(name string, line, col int) *Identifier {
	return &Identifier{
		Token: token.Token{Type: token.IDENT, Literal: name, Pos: token.Position{Line: line, Column: col}},
		Value: name,
	}
}

func number(lit string, v float64) *NumberLiteral {
	return &NumberLiteral{
		Token: token.Token{Type: token.NUMBER, Literal: lit},
		Value: v,
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		node     Node
		expected string
	}{
		{ident("x", 1, 1), "x"},
		{number("5", 5), "5"},
		{&StringLiteral{Value: "hi"}, `"hi"`},
		{&BooleanLiteral{Token: token.Token{Literal: "true"}, Value: true}, "true"},
		{&NullLiteral{}, "null"},
		{
			&BinaryExpression{
				Token:    token.Token{Type: token.PLUS, Literal: "+"},
				Left:     number("1", 1),
				Operator: token.PLUS,
				Right:    number("2", 2),
			},
			"(1 + 2)",
		},
		{
			&UnaryExpression{
				Token:    token.Token{Type: token.NOT, Literal: "not"},
				Operator: token.NOT,
				Operand:  ident("x", 1, 5),
			},
			"(not x)",
		},
		{
			&UnaryExpression{
				Token:    token.Token{Type: token.MINUS, Literal: "-"},
				Operator: token.MINUS,
				Operand:  number("3", 3),
			},
			"(-3)",
		},
		{
			&CallExpression{
				Function:  ident("f", 1, 1),
				Arguments: []Expression{number("1", 1), number("2", 2)},
			},
			"f(1, 2)",
		},
		{
			&ListLiteral{Elements: []Expression{number("1", 1), number("2", 2)}},
			"[1, 2]",
		},
		{
			&AssignmentStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name:  ident("x", 1, 5),
				Value: number("5", 5),
			},
			"let x = 5",
		},
		{
			&AssignmentStatement{
				Token: token.Token{Type: token.IDENT, Literal: "x"},
				Name:  ident("x", 1, 1),
				Value: number("5", 5),
			},
			"x = 5",
		},
		{
			&ReturnStatement{Token: token.Token{Literal: "return"}},
			"return",
		},
		{
			&ReturnStatement{Token: token.Token{Literal: "return"}, Value: number("1", 1)},
			"return 1",
		},
		{&BreakStatement{}, "break"},
		{&ContinueStatement{}, "continue"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&ExpressionStatement{Expression: number("1", 1)},
			&ExpressionStatement{Expression: number("2", 2)},
		},
	}
	if got := program.String(); got != "1\n2\n" {
		t.Errorf("Program.String() = %q, want %q", got, "1\n2\n")
	}
}

func TestPos(t *testing.T) {
	id := ident("x", 3, 9)
	if pos := id.Pos(); pos.Line != 3 || pos.Column != 9 {
		t.Errorf("Pos() = %d:%d, want 3:9", pos.Line, pos.Column)
	}

	empty := &Program{}
	if pos := empty.Pos(); pos.Line != 1 || pos.Column != 1 {
		t.Errorf("empty Program.Pos() = %d:%d, want 1:1", pos.Line, pos.Column)
	}

	program := &Program{Statements: []Statement{
		&ExpressionStatement{Token: token.Token{Pos: token.Position{Line: 2, Column: 4}}},
	}}
	if pos := program.Pos(); pos.Line != 2 || pos.Column != 4 {
		t.Errorf("Program.Pos() = %d:%d, want 2:4", pos.Line, pos.Column)
	}
}
