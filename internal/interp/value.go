// Package interp implements the tree-walking evaluator for Kyaro: the
// runtime value system, the scope chain, and the builtin registry.
package interp

import (
	"math"
	"strconv"
	"strings"

	"github.com/hnrie/Laminax-KPL/internal/ast"
	"github.com/hnrie/Laminax-KPL/internal/errors"
)

// Value type names as reported by Type() and the type() builtin.
const (
	NullType     = "null"
	BooleanType  = "boolean"
	NumberType   = "number"
	StringType   = "string"
	ListType     = "list"
	FunctionType = "function"
	BuiltinType  = "builtin"

	errorType    = "error"
	returnType   = "return"
	breakType    = "break"
	continueType = "continue"
)

// Value represents a runtime value in the Kyaro interpreter. String()
// returns the user-visible stringification used by print, the REPL echo,
// and the str() builtin.
type Value interface {
	Type() string
	String() string
}

// Shared instances. Null, True and False are immutable; allocating them
// once keeps evaluation allocation-free for the common cases.
var (
	Null  = &NullValue{}
	True  = &BooleanValue{Value: true}
	False = &BooleanValue{Value: false}

	breakSignal    = &signalValue{kind: breakType}
	continueSignal = &signalValue{kind: continueType}
)

// NullValue is the null value.
type NullValue struct{}

func (n *NullValue) Type() string   { return NullType }
func (n *NullValue) String() string { return "None" }

// BooleanValue is true or false.
type BooleanValue struct {
	Value bool
}

func (b *BooleanValue) Type() string { return BooleanType }
func (b *BooleanValue) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// NumberValue is a double-precision number. Integer-like values are those
// whose fractional part is zero.
type NumberValue struct {
	Value float64
}

func (n *NumberValue) Type() string   { return NumberType }
func (n *NumberValue) String() string { return formatNumber(n.Value) }

// StringValue is a UTF-8 string.
type StringValue struct {
	Value string
}

func (s *StringValue) Type() string   { return StringType }
func (s *StringValue) String() string { return s.Value }

// ListValue is an ordered sequence of values.
type ListValue struct {
	Elements []Value
}

func (l *ListValue) Type() string { return ListType }
func (l *ListValue) String() string {
	elements := make([]string, 0, len(l.Elements))
	for _, el := range l.Elements {
		// String elements are quoted inside list stringification only.
		if s, ok := el.(*StringValue); ok {
			elements = append(elements, "'"+s.Value+"'")
			continue
		}
		elements = append(elements, el.String())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// FunctionValue is a user-declared function. Env references the environment
// active at declaration time, so nested functions keep seeing the outer
// bindings after the declaring frame returns.
type FunctionValue struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *FunctionValue) Type() string   { return FunctionType }
func (f *FunctionValue) String() string { return "<function " + f.Name + ">" }

// BuiltinValue wraps a native function resolved from the registry.
type BuiltinValue struct {
	Name string
	Fn   builtinFn
}

func (b *BuiltinValue) Type() string   { return BuiltinType }
func (b *BuiltinValue) String() string { return "<builtin " + b.Name + ">" }

// ErrorValue carries a runtime error through the evaluation tree. It is
// never visible to the language; the interpreter boundary converts it back
// to an ordinary Go error.
type ErrorValue struct {
	Err *errors.Error
}

func (e *ErrorValue) Type() string   { return errorType }
func (e *ErrorValue) String() string { return e.Err.Error() }

// ReturnSignal unwinds to the nearest enclosing call frame. It is a control
// signal, not an error: only Call frames consume it.
type ReturnSignal struct {
	Value Value
}

func (r *ReturnSignal) Type() string   { return returnType }
func (r *ReturnSignal) String() string { return "return" }

// signalValue implements the break and continue signals. Only loops consume
// them.
type signalValue struct {
	kind string
}

func (s *signalValue) Type() string   { return s.kind }
func (s *signalValue) String() string { return s.kind }

// isError reports whether a value is an error carrier.
func isError(v Value) bool {
	_, ok := v.(*ErrorValue)
	return ok
}

// isTruthy implements the Boolean coercion rule: false, null, 0, the empty
// string, and the empty list are falsy; everything else is truthy.
func isTruthy(v Value) bool {
	switch v := v.(type) {
	case *BooleanValue:
		return v.Value
	case *NullValue:
		return false
	case *NumberValue:
		return v.Value != 0.0
	case *StringValue:
		return v.Value != ""
	case *ListValue:
		return len(v.Elements) > 0
	default:
		return true
	}
}

// boolValue maps a Go bool to the shared boolean instances.
func boolValue(b bool) *BooleanValue {
	if b {
		return True
	}
	return False
}

// valuesEqual implements == and !=. Scalars compare by value; lists and
// functions compare unequal across distinct instances.
func valuesEqual(a, b Value) bool {
	switch a := a.(type) {
	case *NumberValue:
		if b, ok := b.(*NumberValue); ok {
			return a.Value == b.Value
		}
	case *StringValue:
		if b, ok := b.(*StringValue); ok {
			return a.Value == b.Value
		}
	case *BooleanValue:
		if b, ok := b.(*BooleanValue); ok {
			return a.Value == b.Value
		}
	case *NullValue:
		_, ok := b.(*NullValue)
		return ok
	}
	return false
}

// formatNumber renders a number the way the language prints it: values with
// zero fractional part take their integer form, everything else the default
// double-to-text conversion.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		if math.Abs(n) < 1e15 {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
