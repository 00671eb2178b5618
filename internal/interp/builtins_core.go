package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// builtinPrint implements print(). It is variadic: arguments are
// stringified and joined with single spaces, followed by a newline.
func (i *Interpreter) builtinPrint(args []Value) Value {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, arg.String())
	}
	fmt.Fprintln(i.out, strings.Join(parts, " "))
	return Null
}

// builtinInput implements input(). An optional prompt argument is printed
// without a newline; the result is the next input line with surrounding
// whitespace trimmed.
func (i *Interpreter) builtinInput(args []Value) Value {
	if len(args) > 1 {
		return i.errorAtCurrent("input() takes at most one argument")
	}
	if len(args) == 1 {
		fmt.Fprint(i.out, args[0].String())
	}

	line, err := i.in.ReadString('\n')
	if err != nil && line == "" {
		return i.errorAtCurrent("Input error: %s", err)
	}
	return &StringValue{Value: strings.TrimSpace(line)}
}

func (i *Interpreter) builtinStr(args []Value) Value {
	if len(args) != 1 {
		return i.errorAtCurrent("str() takes exactly one argument")
	}
	return &StringValue{Value: args[0].String()}
}

// builtinInt truncates a number toward zero or parses an integer string.
// The result is still a double; the language has no separate integer type.
func (i *Interpreter) builtinInt(args []Value) Value {
	if len(args) != 1 {
		return i.errorAtCurrent("int() takes exactly one argument")
	}

	switch v := args[0].(type) {
	case *NumberValue:
		return &NumberValue{Value: float64(int64(v.Value))}
	case *StringValue:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return i.errorAtCurrent("Invalid integer")
		}
		return &NumberValue{Value: float64(n)}
	default:
		return i.errorAtCurrent("Cannot convert %s to int", args[0].Type())
	}
}

func (i *Interpreter) builtinFloat(args []Value) Value {
	if len(args) != 1 {
		return i.errorAtCurrent("float() takes exactly one argument")
	}

	switch v := args[0].(type) {
	case *NumberValue:
		return v
	case *StringValue:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return i.errorAtCurrent("Invalid float")
		}
		return &NumberValue{Value: n}
	default:
		return i.errorAtCurrent("Cannot convert %s to float", args[0].Type())
	}
}

func (i *Interpreter) builtinType(args []Value) Value {
	if len(args) != 1 {
		return i.errorAtCurrent("type() takes exactly one argument")
	}
	return &StringValue{Value: args[0].Type()}
}

func (i *Interpreter) builtinLen(args []Value) Value {
	if len(args) != 1 {
		return i.errorAtCurrent("len() takes exactly one argument")
	}

	switch v := args[0].(type) {
	case *StringValue:
		return &NumberValue{Value: float64(len(v.Value))}
	case *ListValue:
		return &NumberValue{Value: float64(len(v.Elements))}
	default:
		return i.errorAtCurrent("len() not supported for %s", args[0].Type())
	}
}

// builtinRange implements range(end), range(start, end), and
// range(start, end, step). The step's sign selects the direction; a zero
// step yields an empty list.
func (i *Interpreter) builtinRange(args []Value) Value {
	var start, end, step float64

	switch len(args) {
	case 1:
		n, ok := args[0].(*NumberValue)
		if !ok {
			return i.errorAtCurrent("range() argument must be a number")
		}
		start, end, step = 0, n.Value, 1
	case 2:
		a, aok := args[0].(*NumberValue)
		b, bok := args[1].(*NumberValue)
		if !aok || !bok {
			return i.errorAtCurrent("range() arguments must be numbers")
		}
		start, end, step = a.Value, b.Value, 1
	case 3:
		a, aok := args[0].(*NumberValue)
		b, bok := args[1].(*NumberValue)
		c, cok := args[2].(*NumberValue)
		if !aok || !bok || !cok {
			return i.errorAtCurrent("range() arguments must be numbers")
		}
		start, end, step = a.Value, b.Value, c.Value
	default:
		return i.errorAtCurrent("range() takes 1 to 3 arguments")
	}

	var elements []Value
	switch {
	case step > 0:
		for cur := start; cur < end; cur += step {
			elements = append(elements, &NumberValue{Value: cur})
		}
	case step < 0:
		for cur := start; cur > end; cur += step {
			elements = append(elements, &NumberValue{Value: cur})
		}
	}

	return &ListValue{Elements: elements}
}
