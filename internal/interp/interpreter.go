package interp

import (
	"bufio"
	"io"
	"math"
	"os"

	"github.com/hnrie/Laminax-KPL/internal/ast"
	"github.com/hnrie/Laminax-KPL/internal/errors"
	"github.com/hnrie/Laminax-KPL/pkg/token"
)

// Interpreter executes a Kyaro AST against a persistent root environment.
// Program output (print) goes to out; input() reads from in. A single
// Interpreter serves a whole REPL session, so bindings survive across
// Interpret calls.
type Interpreter struct {
	env      *Environment
	builtins map[string]builtinFn
	out      io.Writer
	in       *bufio.Reader

	// currentNode tracks the node being evaluated when a builtin runs, so
	// builtin errors carry the call site position.
	currentNode ast.Node
}

// New creates an interpreter writing program output to out and reading
// input() lines from standard input.
func New(out io.Writer) *Interpreter {
	i := &Interpreter{
		env: NewEnvironment(),
		out: out,
		in:  bufio.NewReader(os.Stdin),
	}
	i.builtins = i.registerBuiltins()
	return i
}

// SetInput redirects the input() builtin to read from r.
func (i *Interpreter) SetInput(r io.Reader) {
	i.in = bufio.NewReader(r)
}

// Interpret evaluates a program and returns its value: the value of the
// final statement, or Null when the program is empty. The value is nil
// only when an error is returned.
func (i *Interpreter) Interpret(program *ast.Program) (Value, error) {
	result := i.evalProgram(program, i.env)
	if err, ok := result.(*ErrorValue); ok {
		return nil, err.Err
	}
	return result, nil
}

// eval dispatches on the node type. The result is a Value, an ErrorValue,
// or one of the control signals (return, break, continue); callers check
// for errors and signals before using the result as a plain value.
func (i *Interpreter) eval(node ast.Node, env *Environment) Value {
	switch node := node.(type) {
	case *ast.Program:
		return i.evalProgram(node, env)

	case *ast.ExpressionStatement:
		return i.eval(node.Expression, env)

	case *ast.BlockStatement:
		return i.evalBlock(node, env)

	case *ast.NumberLiteral:
		return &NumberValue{Value: node.Value}

	case *ast.StringLiteral:
		return &StringValue{Value: node.Value}

	case *ast.BooleanLiteral:
		return boolValue(node.Value)

	case *ast.NullLiteral:
		return Null

	case *ast.ListLiteral:
		elements, errVal := i.evalExpressions(node.Elements, env)
		if errVal != nil {
			return errVal
		}
		return &ListValue{Elements: elements}

	case *ast.Identifier:
		return i.evalIdentifier(node, env)

	case *ast.BinaryExpression:
		return i.evalBinary(node, env)

	case *ast.UnaryExpression:
		return i.evalUnary(node, env)

	case *ast.AssignmentStatement:
		value := i.eval(node.Value, env)
		if isError(value) {
			return value
		}
		env.Define(node.Name.Value, value)
		return value

	case *ast.FunctionStatement:
		fn := &FunctionValue{
			Name:       node.Name.Value,
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        env,
		}
		env.Define(node.Name.Value, fn)
		return fn

	case *ast.ReturnStatement:
		if node.Value == nil {
			return &ReturnSignal{Value: Null}
		}
		value := i.eval(node.Value, env)
		if isError(value) {
			return value
		}
		return &ReturnSignal{Value: value}

	case *ast.BreakStatement:
		return breakSignal

	case *ast.ContinueStatement:
		return continueSignal

	case *ast.IfStatement:
		return i.evalIf(node, env)

	case *ast.WhileStatement:
		return i.evalWhile(node, env)

	case *ast.ForInStatement:
		return i.evalForIn(node, env)

	case *ast.CallExpression:
		return i.evalCall(node, env)

	default:
		return i.newError(node.Pos(), "Unsupported AST node")
	}
}

// evalProgram evaluates the top-level block. Control signals escaping the
// program are runtime errors: there is no frame left to consume them.
func (i *Interpreter) evalProgram(program *ast.Program, env *Environment) Value {
	var result Value = Null

	for _, stmt := range program.Statements {
		result = i.eval(stmt, env)

		switch result.(type) {
		case *ErrorValue:
			return result
		case *ReturnSignal:
			return i.newError(stmt.Pos(), "Return outside function")
		case *signalValue:
			return i.newError(stmt.Pos(), "%s outside loop", result.Type())
		}
	}

	return result
}

// evalBlock runs the statements of a block in the given environment. Blocks
// are transparent to variable visibility: no new scope is opened. Signals
// and errors propagate immediately; otherwise the block's value is the
// value of its last statement.
func (i *Interpreter) evalBlock(block *ast.BlockStatement, env *Environment) Value {
	var result Value = Null

	for _, stmt := range block.Statements {
		result = i.eval(stmt, env)

		switch result.(type) {
		case *ErrorValue, *ReturnSignal, *signalValue:
			return result
		}
	}

	return result
}

func (i *Interpreter) evalIdentifier(node *ast.Identifier, env *Environment) Value {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if fn, ok := i.builtins[node.Value]; ok {
		return &BuiltinValue{Name: node.Value, Fn: fn}
	}
	return i.newError(node.Pos(), "Undefined variable '%s'", node.Value)
}

func (i *Interpreter) evalBinary(node *ast.BinaryExpression, env *Environment) Value {
	// and/or evaluate lazily: the right operand only runs when the left
	// does not decide the result.
	if node.Operator == token.AND || node.Operator == token.OR {
		return i.evalLogical(node, env)
	}

	left := i.eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := i.eval(node.Right, env)
	if isError(right) {
		return right
	}

	pos := node.Pos()

	switch node.Operator {
	case token.PLUS:
		if l, ok := left.(*NumberValue); ok {
			if r, ok := right.(*NumberValue); ok {
				return &NumberValue{Value: l.Value + r.Value}
			}
		}
		if l, ok := left.(*StringValue); ok {
			if r, ok := right.(*StringValue); ok {
				return &StringValue{Value: l.Value + r.Value}
			}
		}
		return i.newError(pos, "Invalid operands for +: %s and %s", left.Type(), right.Type())

	case token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT, token.POWER:
		l, lok := left.(*NumberValue)
		r, rok := right.(*NumberValue)
		if !lok || !rok {
			return i.newError(pos, "Invalid operands for %s: %s and %s", node.Token.Literal, left.Type(), right.Type())
		}
		switch node.Operator {
		case token.MINUS:
			return &NumberValue{Value: l.Value - r.Value}
		case token.ASTERISK:
			return &NumberValue{Value: l.Value * r.Value}
		case token.SLASH:
			if r.Value == 0.0 {
				return i.newError(pos, "Division by zero")
			}
			return &NumberValue{Value: l.Value / r.Value}
		case token.PERCENT:
			if r.Value == 0.0 {
				return i.newError(pos, "Division by zero")
			}
			return &NumberValue{Value: math.Mod(l.Value, r.Value)}
		default: // POWER
			return &NumberValue{Value: math.Pow(l.Value, r.Value)}
		}

	case token.EQ:
		return boolValue(valuesEqual(left, right))
	case token.NOT_EQ:
		return boolValue(!valuesEqual(left, right))

	case token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ:
		l, lok := left.(*NumberValue)
		r, rok := right.(*NumberValue)
		if !lok || !rok {
			return i.newError(pos, "Invalid operands for %s: %s and %s", node.Token.Literal, left.Type(), right.Type())
		}
		switch node.Operator {
		case token.LESS:
			return boolValue(l.Value < r.Value)
		case token.LESS_EQ:
			return boolValue(l.Value <= r.Value)
		case token.GREATER:
			return boolValue(l.Value > r.Value)
		default:
			return boolValue(l.Value >= r.Value)
		}

	default:
		return i.newError(pos, "Unsupported binary operator %s", node.Token.Literal)
	}
}

// evalLogical implements short-circuit and/or. The result is always a
// boolean: the truthiness of whichever operand decided the outcome.
func (i *Interpreter) evalLogical(node *ast.BinaryExpression, env *Environment) Value {
	left := i.eval(node.Left, env)
	if isError(left) {
		return left
	}

	if node.Operator == token.AND {
		if !isTruthy(left) {
			return False
		}
	} else {
		if isTruthy(left) {
			return True
		}
	}

	right := i.eval(node.Right, env)
	if isError(right) {
		return right
	}
	return boolValue(isTruthy(right))
}

func (i *Interpreter) evalUnary(node *ast.UnaryExpression, env *Environment) Value {
	operand := i.eval(node.Operand, env)
	if isError(operand) {
		return operand
	}

	switch node.Operator {
	case token.MINUS:
		n, ok := operand.(*NumberValue)
		if !ok {
			return i.newError(node.Pos(), "Invalid operand for unary -: %s", operand.Type())
		}
		return &NumberValue{Value: -n.Value}
	case token.NOT:
		return boolValue(!isTruthy(operand))
	default:
		return i.newError(node.Pos(), "Unsupported unary operator %s", node.Token.Literal)
	}
}

func (i *Interpreter) evalIf(node *ast.IfStatement, env *Environment) Value {
	cond := i.eval(node.Condition, env)
	if isError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return i.evalBlock(node.Consequence, env)
	}

	for _, elif := range node.Elifs {
		cond := i.eval(elif.Condition, env)
		if isError(cond) {
			return cond
		}
		if isTruthy(cond) {
			return i.evalBlock(elif.Body, env)
		}
	}

	if node.Alternative != nil {
		return i.evalBlock(node.Alternative, env)
	}
	return Null
}

func (i *Interpreter) evalWhile(node *ast.WhileStatement, env *Environment) Value {
	var result Value = Null

	for {
		cond := i.eval(node.Condition, env)
		if isError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			return result
		}

		body := i.eval(node.Body, env)
		switch body := body.(type) {
		case *ErrorValue, *ReturnSignal:
			return body
		case *signalValue:
			if body == breakSignal {
				return Null
			}
			// continue: next iteration
		default:
			result = body
		}
	}
}

func (i *Interpreter) evalForIn(node *ast.ForInStatement, env *Environment) Value {
	iterable := i.eval(node.Iterable, env)
	if isError(iterable) {
		return iterable
	}
	list, ok := iterable.(*ListValue)
	if !ok {
		return i.newError(node.Iterable.Pos(), "For loop requires a list, got %s", iterable.Type())
	}

	var result Value = Null
	for _, element := range list.Elements {
		env.Define(node.Variable.Value, element)

		body := i.eval(node.Body, env)
		switch body := body.(type) {
		case *ErrorValue, *ReturnSignal:
			return body
		case *signalValue:
			if body == breakSignal {
				return Null
			}
		default:
			result = body
		}
	}

	return result
}

func (i *Interpreter) evalCall(node *ast.CallExpression, env *Environment) Value {
	callee := i.eval(node.Function, env)
	if isError(callee) {
		return callee
	}

	args, errVal := i.evalExpressions(node.Arguments, env)
	if errVal != nil {
		return errVal
	}

	switch callee := callee.(type) {
	case *FunctionValue:
		return i.applyFunction(node, callee, args)
	case *BuiltinValue:
		i.currentNode = node
		return callee.Fn(args)
	default:
		return i.newError(node.Pos(), "Not callable: %s", callee.Type())
	}
}

// applyFunction runs a user function in a fresh frame on top of its
// captured environment. A Return signal produced inside unwinds to this
// frame; a body that finishes without Return yields Null. Break and
// continue must not cross the call boundary.
func (i *Interpreter) applyFunction(node *ast.CallExpression, fn *FunctionValue, args []Value) Value {
	if len(args) != len(fn.Parameters) {
		return i.newError(node.Pos(), "Expected %d arguments, got %d", len(fn.Parameters), len(args))
	}

	frame := NewEnclosedEnvironment(fn.Env)
	for idx, param := range fn.Parameters {
		frame.Define(param.Value, args[idx])
	}

	result := i.eval(fn.Body, frame)
	switch result := result.(type) {
	case *ErrorValue:
		return result
	case *ReturnSignal:
		return result.Value
	case *signalValue:
		return i.newError(node.Pos(), "%s outside loop", result.Type())
	default:
		return Null
	}
}

// evalExpressions evaluates a list of expressions left to right, stopping
// at the first error.
func (i *Interpreter) evalExpressions(exprs []ast.Expression, env *Environment) ([]Value, Value) {
	values := make([]Value, 0, len(exprs))
	for _, expr := range exprs {
		value := i.eval(expr, env)
		if isError(value) {
			return nil, value
		}
		values = append(values, value)
	}
	return values, nil
}

// newError creates a runtime error value at the given position.
func (i *Interpreter) newError(pos token.Position, format string, args ...any) *ErrorValue {
	return &ErrorValue{Err: errors.NewRuntimeError(pos, format, args...)}
}

// errorAtCurrent creates a runtime error at the call site of the builtin
// currently running.
func (i *Interpreter) errorAtCurrent(format string, args ...any) *ErrorValue {
	var pos token.Position
	if i.currentNode != nil {
		pos = i.currentNode.Pos()
	}
	return &ErrorValue{Err: errors.NewRuntimeError(pos, format, args...)}
}
