package ast

import (
	"bytes"
	"strings"

	"github.com/hnrie/Laminax-KPL/pkg/token"
)

// NumberLiteral represents a numeric literal. All Kyaro numbers are
// double-precision floats; integer-looking literals are doubles too.
type NumberLiteral struct {
	Token token.Token // the NUMBER token
	Value float64
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string       { return nl.Token.Literal }
func (nl *NumberLiteral) Pos() token.Position  { return nl.Token.Pos }

// StringLiteral represents a string literal value.
type StringLiteral struct {
	Token token.Token // the STRING token
	Value string      // decoded body, without quotes
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }
func (sl *StringLiteral) Pos() token.Position  { return sl.Token.Pos }

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Token token.Token // the TRUE or FALSE token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() token.Position  { return bl.Token.Pos }

// NullLiteral represents the null literal.
type NullLiteral struct {
	Token token.Token // the NULL token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) String() string       { return "null" }
func (nl *NullLiteral) Pos() token.Position  { return nl.Token.Pos }

// ListLiteral represents a bracketed list of element expressions.
type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Literal }
func (ll *ListLiteral) Pos() token.Position  { return ll.Token.Pos }
func (ll *ListLiteral) String() string {
	var out bytes.Buffer
	elements := make([]string, 0, len(ll.Elements))
	for _, el := range ll.Elements {
		elements = append(elements, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}
