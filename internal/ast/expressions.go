package ast

import (
	"bytes"
	"strings"

	"github.com/hnrie/Laminax-KPL/pkg/token"
)

// BinaryExpression represents a binary operation (e.g. a + b, x < y).
// The operator is the lexical token type, so the evaluator dispatches on
// exactly what the lexer classified.
type BinaryExpression struct {
	Token    token.Token     // the operator token
	Left     Expression      // left operand
	Operator token.TokenType // PLUS, MINUS, EQ, AND, ...
	Right    Expression      // right operand
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() token.Position  { return be.Token.Pos }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Token.Literal + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

// UnaryExpression represents a prefix operation (-x, not b).
type UnaryExpression struct {
	Token    token.Token     // the operator token
	Operator token.TokenType // MINUS or NOT
	Operand  Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) Pos() token.Position  { return ue.Token.Pos }
func (ue *UnaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ue.Token.Literal)
	if ue.Operator == token.NOT {
		out.WriteString(" ")
	}
	out.WriteString(ue.Operand.String())
	out.WriteString(")")
	return out.String()
}

// CallExpression represents a function invocation.
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression  // callee: identifier or any call-producing expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// IndexExpression represents obj[index]. Reserved: the lexer produces the
// bracket tokens but the parser does not yet build this node.
type IndexExpression struct {
	Token token.Token // the '[' token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() token.Position  { return ie.Token.Pos }
func (ie *IndexExpression) String() string {
	return "(" + ie.Left.String() + "[" + ie.Index.String() + "])"
}

// MemberAccessExpression represents obj.member. Reserved, like
// IndexExpression.
type MemberAccessExpression struct {
	Token  token.Token // the '.' token
	Object Expression
	Member string
}

func (ma *MemberAccessExpression) expressionNode()      {}
func (ma *MemberAccessExpression) TokenLiteral() string { return ma.Token.Literal }
func (ma *MemberAccessExpression) Pos() token.Position  { return ma.Token.Pos }
func (ma *MemberAccessExpression) String() string {
	return "(" + ma.Object.String() + "." + ma.Member + ")"
}
