package ast

import (
	"bytes"
	"strings"

	"github.com/hnrie/Laminax-KPL/pkg/token"
)

// AssignmentStatement binds a name in the current scope. Both `let x = e`
// and a bare `x = e` produce this node; both use define-semantics.
type AssignmentStatement struct {
	Token token.Token // the 'let' token, or the name token for bare form
	Name  *Identifier
	Value Expression
}

func (as *AssignmentStatement) statementNode()       {}
func (as *AssignmentStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignmentStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AssignmentStatement) String() string {
	var out bytes.Buffer
	if as.Token.Type == token.LET {
		out.WriteString("let ")
	}
	out.WriteString(as.Name.String())
	out.WriteString(" = ")
	if as.Value != nil {
		out.WriteString(as.Value.String())
	}
	return out.String()
}

// CompoundAssignmentStatement represents `x += e` and friends. Reserved:
// the lexer produces the operator tokens but the parser rejects the form.
type CompoundAssignmentStatement struct {
	Token    token.Token // the operator token
	Name     *Identifier
	Operator token.TokenType
	Value    Expression
}

func (cs *CompoundAssignmentStatement) statementNode()       {}
func (cs *CompoundAssignmentStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CompoundAssignmentStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *CompoundAssignmentStatement) String() string {
	return cs.Name.String() + " " + cs.Token.Literal + " " + cs.Value.String()
}

// FunctionStatement declares a named function and binds it in the current
// scope.
type FunctionStatement struct {
	Token      token.Token // the 'func' token
	Name       *Identifier
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fs *FunctionStatement) statementNode()       {}
func (fs *FunctionStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FunctionStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *FunctionStatement) String() string {
	var out bytes.Buffer
	params := make([]string, 0, len(fs.Parameters))
	for _, p := range fs.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("func ")
	out.WriteString(fs.Name.String())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fs.Body.String())
	return out.String()
}

// ReturnStatement returns from the nearest enclosing function. Value is nil
// for a bare `return`.
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String()
	}
	return "return"
}

// ElifBranch is one `elif <cond> { ... }` arm of an if statement.
type ElifBranch struct {
	Condition Expression
	Body      *BlockStatement
}

// IfStatement represents if / elif* / else?.
type IfStatement struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Elifs       []ElifBranch
	Alternative *BlockStatement // nil when there is no else
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(is.Condition.String())
	out.WriteString(" ")
	out.WriteString(is.Consequence.String())
	for _, e := range is.Elifs {
		out.WriteString(" elif ")
		out.WriteString(e.Condition.String())
		out.WriteString(" ")
		out.WriteString(e.Body.String())
	}
	if is.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

// WhileStatement loops while the condition is truthy.
type WhileStatement struct {
	Token     token.Token // the 'while' token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	return "while " + ws.Condition.String() + " " + ws.Body.String()
}

// ForInStatement iterates over the elements of a list, binding the loop
// variable in the current scope on each iteration.
type ForInStatement struct {
	Token    token.Token // the 'for' token
	Variable *Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (fs *ForInStatement) statementNode()       {}
func (fs *ForInStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForInStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *ForInStatement) String() string {
	return "for " + fs.Variable.String() + " in " + fs.Iterable.String() + " " + fs.Body.String()
}

// BreakStatement exits the nearest enclosing loop.
type BreakStatement struct {
	Token token.Token // the 'break' token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BreakStatement) String() string       { return "break" }

// ContinueStatement resumes the next iteration of the nearest enclosing
// loop.
type ContinueStatement struct {
	Token token.Token // the 'continue' token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ContinueStatement) String() string       { return "continue" }
