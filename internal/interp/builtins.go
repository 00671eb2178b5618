package interp

// builtinFn is the signature of every native function in the registry.
// Builtins do their own arity and type checking and report violations as
// error values.
type builtinFn func(args []Value) Value

// registerBuiltins builds the name → native function table. The table is
// built once at interpreter construction and read-only afterwards; the
// evaluator consults it when an identifier misses the scope chain.
func (i *Interpreter) registerBuiltins() map[string]builtinFn {
	fns := map[string]builtinFn{
		// I/O
		"print": i.builtinPrint,
		"input": i.builtinInput,

		// Type conversion
		"str":   i.builtinStr,
		"int":   i.builtinInt,
		"float": i.builtinFloat,
		"type":  i.builtinType,

		// Collections
		"len":    i.builtinLen,
		"range":  i.builtinRange,
		"append": i.notImplemented("append"),
		"pop":    i.notImplemented("pop"),
		"push":   i.notImplemented("push"),

		// Math
		"abs":  i.builtinAbs,
		"min":  i.builtinMin,
		"max":  i.builtinMax,
		"sum":  i.builtinSum,
		"sqrt": i.builtinSqrt,
		"pow":  i.builtinPow,
		"exp":  i.builtinExp,

		// Logarithms
		"log":   i.builtinLog,
		"log10": i.builtinLog10,
		"log2":  i.builtinLog2,
		"ln":    i.builtinLn,

		// Rounding
		"floor": i.builtinFloor,
		"ceil":  i.builtinCeil,
		"round": i.builtinRound,
		"trunc": i.builtinTrunc,

		// Trigonometry
		"sin":   i.builtinSin,
		"cos":   i.builtinCos,
		"tan":   i.builtinTan,
		"asin":  i.builtinAsin,
		"acos":  i.builtinAcos,
		"atan":  i.builtinAtan,
		"atan2": i.builtinAtan2,

		// Hyperbolics
		"sinh":  i.builtinSinh,
		"cosh":  i.builtinCosh,
		"tanh":  i.builtinTanh,
		"asinh": i.builtinAsinh,
		"acosh": i.builtinAcosh,
		"atanh": i.builtinAtanh,

		// Angle conversion and advanced math
		"degrees":   i.builtinDegrees,
		"radians":   i.builtinRadians,
		"hypot":     i.builtinHypot,
		"factorial": i.builtinFactorial,
		"gcd":       i.builtinGcd,

		// Randomness
		"random":  i.builtinRandom,
		"randint": i.builtinRandint,
		"uniform": i.builtinUniform,
		"choice":  i.builtinChoice,

		// Statistics
		"mean":     i.builtinMean,
		"median":   i.builtinMedian,
		"stdev":    i.builtinStdev,
		"variance": i.builtinVariance,

		// Constants
		"pi": i.builtinPi,
		"e":  i.builtinE,

		// Process utilities
		"exit":  i.builtinExit,
		"time":  i.builtinTime,
		"sleep": i.builtinSleep,
	}

	i.registerHelpers(fns)
	return fns
}

// notImplemented returns a builtin that reports a declared-but-stubbed
// registry entry.
func (i *Interpreter) notImplemented(name string) builtinFn {
	return func(args []Value) Value {
		return i.errorAtCurrent("%s() is not implemented", name)
	}
}

// oneNumber checks the single-number-argument pattern shared by most math
// builtins.
func (i *Interpreter) oneNumber(name string, args []Value) (float64, *ErrorValue) {
	if len(args) != 1 {
		return 0, i.errorAtCurrent("%s() takes exactly one argument", name)
	}
	n, ok := args[0].(*NumberValue)
	if !ok {
		return 0, i.errorAtCurrent("%s() requires a number", name)
	}
	return n.Value, nil
}

// twoNumbers checks the two-number-argument pattern.
func (i *Interpreter) twoNumbers(name string, args []Value) (float64, float64, *ErrorValue) {
	if len(args) != 2 {
		return 0, 0, i.errorAtCurrent("%s() takes exactly two arguments", name)
	}
	a, aok := args[0].(*NumberValue)
	b, bok := args[1].(*NumberValue)
	if !aok || !bok {
		return 0, 0, i.errorAtCurrent("%s() requires numbers", name)
	}
	return a.Value, b.Value, nil
}

// numberList unpacks a single list-of-numbers argument.
func (i *Interpreter) numberList(name string, args []Value) ([]float64, *ErrorValue) {
	if len(args) != 1 {
		return nil, i.errorAtCurrent("%s() takes exactly one argument", name)
	}
	list, ok := args[0].(*ListValue)
	if !ok {
		return nil, i.errorAtCurrent("%s() requires a list", name)
	}
	numbers := make([]float64, 0, len(list.Elements))
	for _, el := range list.Elements {
		n, ok := el.(*NumberValue)
		if !ok {
			return nil, i.errorAtCurrent("%s() requires a list of numbers", name)
		}
		numbers = append(numbers, n.Value)
	}
	return numbers, nil
}

// numberListValue wraps a float slice back into a list value.
func numberListValue(numbers []float64) *ListValue {
	elements := make([]Value, 0, len(numbers))
	for _, n := range numbers {
		elements = append(elements, &NumberValue{Value: n})
	}
	return &ListValue{Elements: elements}
}
