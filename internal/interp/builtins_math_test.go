package interp

import (
	"math"
	"testing"
)

func expectNumberNear(t *testing.T, input string, expected float64) {
	t.Helper()
	value := evalValue(t, input)
	n, ok := value.(*NumberValue)
	if !ok {
		t.Fatalf("eval(%q) = %T, want *NumberValue", input, value)
	}
	if math.Abs(n.Value-expected) > 1e-9 {
		t.Errorf("eval(%q) = %v, want %v", input, n.Value, expected)
	}
}

func TestMathBasics(t *testing.T) {
	expectNumber(t, "abs(-5)", 5)
	expectNumber(t, "abs(5)", 5)
	expectNumber(t, "abs(-2.5)", 2.5)

	expectNumber(t, "min(3, 1, 2)", 1)
	expectNumber(t, "min([3, 1, 2])", 1)
	expectNumber(t, "max(3, 1, 2)", 3)
	expectNumber(t, "max([3, 1, 2])", 3)
	expectNumber(t, "min(5)", 5)

	expectNumber(t, "sum([1, 2, 3])", 6)
	expectNumber(t, "sum([])", 0)

	expectNumber(t, "sqrt(16)", 4)
	expectNumber(t, "pow(2, 10)", 1024)
	expectNumberNear(t, "exp(1)", math.E)

	expectRuntimeError(t, "min()", "at least one argument")
	expectRuntimeError(t, "min([])", "empty list")
	expectRuntimeError(t, `min("a", "b")`, "requires numbers")
	expectRuntimeError(t, "sum(1)", "requires a list")
	expectRuntimeError(t, `sum([1, "x"])`, "list of numbers")
	expectRuntimeError(t, "sqrt(-1)", "negative number")
}

func TestLogarithms(t *testing.T) {
	expectNumberNear(t, "log(e())", 1)
	expectNumberNear(t, "log(8, 2)", 3)
	expectNumberNear(t, "log10(1000)", 3)
	expectNumberNear(t, "log2(8)", 3)
	expectNumberNear(t, "ln(1)", 0)

	expectRuntimeError(t, "log(0)", "non-positive")
	expectRuntimeError(t, "log(-1)", "non-positive")
	expectRuntimeError(t, "log(10, 1)", "Invalid log arguments")
	expectRuntimeError(t, "log10(0)", "non-positive")
	expectRuntimeError(t, "ln(0)", "non-positive")
}

func TestRounding(t *testing.T) {
	expectNumber(t, "floor(2.7)", 2)
	expectNumber(t, "floor(-2.1)", -3)
	expectNumber(t, "ceil(2.1)", 3)
	expectNumber(t, "ceil(-2.7)", -2)
	expectNumber(t, "round(2.5)", 3)
	expectNumber(t, "round(2.4)", 2)
	expectNumberNear(t, "round(2.346, 2)", 2.35)
	expectNumber(t, "trunc(2.9)", 2)
	expectNumber(t, "trunc(-2.9)", -2)
}

func TestTrigonometry(t *testing.T) {
	expectNumberNear(t, "sin(0)", 0)
	expectNumberNear(t, "cos(0)", 1)
	expectNumberNear(t, "tan(0)", 0)
	expectNumberNear(t, "sin(pi() / 2)", 1)
	expectNumberNear(t, "asin(1)", math.Pi/2)
	expectNumberNear(t, "acos(1)", 0)
	expectNumberNear(t, "atan(1)", math.Pi/4)
	expectNumberNear(t, "atan2(1, 1)", math.Pi/4)

	expectRuntimeError(t, "asin(2)", "domain error")
	expectRuntimeError(t, "acos(-2)", "domain error")
}

func TestHyperbolics(t *testing.T) {
	expectNumberNear(t, "sinh(0)", 0)
	expectNumberNear(t, "cosh(0)", 1)
	expectNumberNear(t, "tanh(0)", 0)
	expectNumberNear(t, "asinh(0)", 0)
	expectNumberNear(t, "acosh(1)", 0)
	expectNumberNear(t, "atanh(0)", 0)

	expectRuntimeError(t, "acosh(0)", "domain error")
	expectRuntimeError(t, "atanh(1)", "domain error")
}

func TestAngleConversionAndAdvanced(t *testing.T) {
	expectNumberNear(t, "degrees(pi())", 180)
	expectNumberNear(t, "radians(180)", math.Pi)
	expectNumber(t, "hypot(3, 4)", 5)
	expectNumberNear(t, "hypot(1, 2, 2)", 3)
	expectNumber(t, "factorial(0)", 1)
	expectNumber(t, "factorial(5)", 120)
	expectNumber(t, "gcd(12, 18)", 6)
	expectNumber(t, "gcd(12, 18, 8)", 2)
	expectNumber(t, "gcd(-12, 18)", 6)

	expectRuntimeError(t, "hypot(1)", "at least 2 arguments")
	expectRuntimeError(t, "factorial(-1)", "non-negative integer")
	expectRuntimeError(t, "factorial(2.5)", "non-negative integer")
	expectRuntimeError(t, "gcd(5)", "at least 2 arguments")
}

func TestConstants(t *testing.T) {
	expectNumberNear(t, "pi()", math.Pi)
	expectNumberNear(t, "e()", math.E)
	expectRuntimeError(t, "pi(1)", "no arguments")
}

func TestRandomBuiltins(t *testing.T) {
	for k := 0; k < 20; k++ {
		value := evalValue(t, "random()")
		n := value.(*NumberValue).Value
		if n < 0 || n >= 1 {
			t.Fatalf("random() = %v, want [0, 1)", n)
		}
	}

	for k := 0; k < 20; k++ {
		value := evalValue(t, "randint(1, 6)")
		n := value.(*NumberValue).Value
		if n < 1 || n > 6 || n != math.Trunc(n) {
			t.Fatalf("randint(1, 6) = %v, want integer in [1, 6]", n)
		}
	}

	for k := 0; k < 20; k++ {
		value := evalValue(t, "uniform(2, 3)")
		n := value.(*NumberValue).Value
		if n < 2 || n >= 3 {
			t.Fatalf("uniform(2, 3) = %v, want [2, 3)", n)
		}
	}

	value := evalValue(t, "choice([42])")
	if value.(*NumberValue).Value != 42 {
		t.Errorf("choice([42]) = %v, want 42", value)
	}

	expectRuntimeError(t, "random(1)", "no arguments")
	expectRuntimeError(t, "choice([])", "empty list")
	expectRuntimeError(t, "choice(5)", "requires a list")
}

func TestStatistics(t *testing.T) {
	expectNumber(t, "mean([1, 2, 3, 4])", 2.5)
	expectNumber(t, "median([3, 1, 2])", 2)
	expectNumber(t, "median([4, 1, 3, 2])", 2.5)
	expectNumberNear(t, "variance([1, 2, 3, 4])", 5.0/3.0)
	expectNumberNear(t, "stdev([1, 2, 3, 4])", math.Sqrt(5.0/3.0))

	expectRuntimeError(t, "mean([])", "empty list")
	expectRuntimeError(t, "median([])", "empty list")
	expectRuntimeError(t, "stdev([1])", "at least 2 values")
	expectRuntimeError(t, "variance([1])", "at least 2 values")
	expectRuntimeError(t, `mean(["x"])`, "list of numbers")
}

func TestTimeBuiltin(t *testing.T) {
	value := evalValue(t, "time()")
	n := value.(*NumberValue).Value
	// Sanity bound: after mid-2017, before 2100.
	if n < 1.5e9 || n > 4.1e9 {
		t.Errorf("time() = %v, out of plausible range", n)
	}
	expectRuntimeError(t, "time(1)", "no arguments")
}
