package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hnrie/Laminax-KPL/internal/lexer"
	"github.com/hnrie/Laminax-KPL/internal/parser"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print(1 + 2 * 3)", "7\n"},
		{`print("hello")`, "hello\n"},
		{"print(true)", "True\n"},
		{"print(null)", "None\n"},
		{"print()", "\n"},
		// print is variadic, joining with single spaces.
		{`print(1, "two", [3])`, "1 two [3]\n"},
		{`print([1, "a"])`, "[1, 'a']\n"},
	}

	for _, tt := range tests {
		output := evalOutput(t, tt.input)
		if output != tt.expected {
			t.Errorf("eval(%q) printed %q, want %q", tt.input, output, tt.expected)
		}
	}
}

func TestPrintReturnsNull(t *testing.T) {
	value := evalValue(t, "print(1)")
	if _, ok := value.(*NullValue); !ok {
		t.Errorf("print returned %T, want *NullValue", value)
	}
}

func TestInput(t *testing.T) {
	var out bytes.Buffer
	i := New(&out)
	i.SetInput(strings.NewReader("  hello world  \nsecond\n"))

	tokens, err := lexer.New(`let line = input("? ")` + "\nprint(line)\nprint(input())").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	program, err := parser.New(tokens).ParseProgram()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := i.Interpret(program); err != nil {
		t.Fatal(err)
	}

	if out.String() != "? hello world\nsecond\n" {
		t.Errorf("output = %q, want %q", out.String(), "? hello world\nsecond\n")
	}
}

func TestStrBuiltin(t *testing.T) {
	expectString(t, "str(7)", "7")
	expectString(t, "str(2.5)", "2.5")
	expectString(t, "str(true)", "True")
	expectString(t, "str(null)", "None")
	expectString(t, `str("already")`, "already")
	expectString(t, `str([1, "a"])`, "[1, 'a']")
}

func TestIntBuiltin(t *testing.T) {
	expectNumber(t, "int(3.9)", 3)
	expectNumber(t, "int(-3.9)", -3)
	expectNumber(t, `int("42")`, 42)
	expectRuntimeError(t, `int("x")`, "Invalid integer")
	expectRuntimeError(t, "int([1])", "Cannot convert")
	expectRuntimeError(t, "int()", "exactly one argument")
}

func TestFloatBuiltin(t *testing.T) {
	expectNumber(t, "float(3)", 3)
	expectNumber(t, `float("2.5")`, 2.5)
	expectRuntimeError(t, `float("x")`, "Invalid float")
	expectRuntimeError(t, "float(null)", "Cannot convert")
}

func TestTypeBuiltin(t *testing.T) {
	expectString(t, "type(1)", "number")
	expectString(t, `type("s")`, "string")
	expectString(t, "type(true)", "boolean")
	expectString(t, "type(null)", "null")
	expectString(t, "type([1])", "list")
	expectString(t, "func f() { }\ntype(f)", "function")
	expectString(t, "type(print)", "builtin")
}

func TestLenBuiltin(t *testing.T) {
	expectNumber(t, `len("hello")`, 5)
	expectNumber(t, `len("")`, 0)
	expectNumber(t, "len([1, 2, 3])", 3)
	expectNumber(t, "len([])", 0)
	expectRuntimeError(t, "len(5)", "not supported")
	expectRuntimeError(t, `len("a", "b")`, "exactly one argument")
}

func TestRangeBuiltin(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"range(4)", "[0, 1, 2, 3]"},
		{"range(2, 5)", "[2, 3, 4]"},
		{"range(0, 10, 3)", "[0, 3, 6, 9]"},
		{"range(5, 0, -2)", "[5, 3, 1]"},
		{"range(0)", "[]"},
		{"range(3, 3)", "[]"},
		{"range(1, 5, 0)", "[]"},
	}

	for _, tt := range tests {
		value := evalValue(t, tt.input)
		if value.String() != tt.expected {
			t.Errorf("eval(%q) = %s, want %s", tt.input, value.String(), tt.expected)
		}
	}

	expectRuntimeError(t, "range()", "1 to 3 arguments")
	expectRuntimeError(t, `range("x")`, "must be a number")
}

func TestStubbedCollectionBuiltins(t *testing.T) {
	expectRuntimeError(t, "append([1], 2)", "append() is not implemented")
	expectRuntimeError(t, "pop([1])", "pop() is not implemented")
	expectRuntimeError(t, "push([1], 2)", "push() is not implemented")
}

func TestBuiltinResolutionAfterScope(t *testing.T) {
	// A user binding shadows the registry entry of the same name.
	src := `
func len(x) {
	return 42
}
len("hello")
`
	expectNumber(t, src, 42)
}
