package interp

import (
	"math"
	"os"
	"sort"
	"time"
)

func (i *Interpreter) builtinMean(args []Value) Value {
	numbers, errVal := i.numberList("mean", args)
	if errVal != nil {
		return errVal
	}
	if len(numbers) == 0 {
		return i.errorAtCurrent("mean() of empty list")
	}
	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return &NumberValue{Value: sum / float64(len(numbers))}
}

func (i *Interpreter) builtinMedian(args []Value) Value {
	numbers, errVal := i.numberList("median", args)
	if errVal != nil {
		return errVal
	}
	if len(numbers) == 0 {
		return i.errorAtCurrent("median() of empty list")
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return &NumberValue{Value: (sorted[mid-1] + sorted[mid]) / 2}
	}
	return &NumberValue{Value: sorted[mid]}
}

func (i *Interpreter) builtinStdev(args []Value) Value {
	v, errVal := i.sampleVariance("stdev", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Sqrt(v)}
}

func (i *Interpreter) builtinVariance(args []Value) Value {
	v, errVal := i.sampleVariance("variance", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: v}
}

// sampleVariance computes the sample (n−1) variance of a list of at least
// two numbers.
func (i *Interpreter) sampleVariance(name string, args []Value) (float64, *ErrorValue) {
	numbers, errVal := i.numberList(name, args)
	if errVal != nil {
		return 0, errVal
	}
	if len(numbers) < 2 {
		return 0, i.errorAtCurrent("%s() requires at least 2 values", name)
	}

	mean := 0.0
	for _, n := range numbers {
		mean += n
	}
	mean /= float64(len(numbers))

	sumSquares := 0.0
	for _, n := range numbers {
		d := n - mean
		sumSquares += d * d
	}
	return sumSquares / float64(len(numbers)-1), nil
}

func (i *Interpreter) builtinPi(args []Value) Value {
	if len(args) != 0 {
		return i.errorAtCurrent("pi() takes no arguments")
	}
	return &NumberValue{Value: math.Pi}
}

func (i *Interpreter) builtinE(args []Value) Value {
	if len(args) != 0 {
		return i.errorAtCurrent("e() takes no arguments")
	}
	return &NumberValue{Value: math.E}
}

// builtinExit terminates the process with the given code (default 0).
func (i *Interpreter) builtinExit(args []Value) Value {
	code := 0
	if len(args) > 0 {
		if n, ok := args[0].(*NumberValue); ok {
			code = int(n.Value)
		}
	}
	os.Exit(code)
	return Null
}

func (i *Interpreter) builtinTime(args []Value) Value {
	if len(args) != 0 {
		return i.errorAtCurrent("time() takes no arguments")
	}
	return &NumberValue{Value: float64(time.Now().UnixNano()) / float64(time.Second)}
}

// builtinSleep blocks the interpreter thread for the given number of
// seconds.
func (i *Interpreter) builtinSleep(args []Value) Value {
	n, errVal := i.oneNumber("sleep", args)
	if errVal != nil {
		return errVal
	}
	time.Sleep(time.Duration(n * float64(time.Second)))
	return Null
}
