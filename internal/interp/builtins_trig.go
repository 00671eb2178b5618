package interp

import "math"

func (i *Interpreter) builtinSin(args []Value) Value {
	n, errVal := i.oneNumber("sin", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Sin(n)}
}

func (i *Interpreter) builtinCos(args []Value) Value {
	n, errVal := i.oneNumber("cos", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Cos(n)}
}

func (i *Interpreter) builtinTan(args []Value) Value {
	n, errVal := i.oneNumber("tan", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Tan(n)}
}

func (i *Interpreter) builtinAsin(args []Value) Value {
	n, errVal := i.oneNumber("asin", args)
	if errVal != nil {
		return errVal
	}
	if n < -1 || n > 1 {
		return i.errorAtCurrent("asin() domain error")
	}
	return &NumberValue{Value: math.Asin(n)}
}

func (i *Interpreter) builtinAcos(args []Value) Value {
	n, errVal := i.oneNumber("acos", args)
	if errVal != nil {
		return errVal
	}
	if n < -1 || n > 1 {
		return i.errorAtCurrent("acos() domain error")
	}
	return &NumberValue{Value: math.Acos(n)}
}

func (i *Interpreter) builtinAtan(args []Value) Value {
	n, errVal := i.oneNumber("atan", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Atan(n)}
}

func (i *Interpreter) builtinAtan2(args []Value) Value {
	y, x, errVal := i.twoNumbers("atan2", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Atan2(y, x)}
}

func (i *Interpreter) builtinSinh(args []Value) Value {
	n, errVal := i.oneNumber("sinh", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Sinh(n)}
}

func (i *Interpreter) builtinCosh(args []Value) Value {
	n, errVal := i.oneNumber("cosh", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Cosh(n)}
}

func (i *Interpreter) builtinTanh(args []Value) Value {
	n, errVal := i.oneNumber("tanh", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Tanh(n)}
}

func (i *Interpreter) builtinAsinh(args []Value) Value {
	n, errVal := i.oneNumber("asinh", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Asinh(n)}
}

func (i *Interpreter) builtinAcosh(args []Value) Value {
	n, errVal := i.oneNumber("acosh", args)
	if errVal != nil {
		return errVal
	}
	if n < 1 {
		return i.errorAtCurrent("acosh() domain error")
	}
	return &NumberValue{Value: math.Acosh(n)}
}

func (i *Interpreter) builtinAtanh(args []Value) Value {
	n, errVal := i.oneNumber("atanh", args)
	if errVal != nil {
		return errVal
	}
	if n <= -1 || n >= 1 {
		return i.errorAtCurrent("atanh() domain error")
	}
	return &NumberValue{Value: math.Atanh(n)}
}

func (i *Interpreter) builtinDegrees(args []Value) Value {
	n, errVal := i.oneNumber("degrees", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: n * 180 / math.Pi}
}

func (i *Interpreter) builtinRadians(args []Value) Value {
	n, errVal := i.oneNumber("radians", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: n * math.Pi / 180}
}

// builtinHypot returns sqrt(a² + b² + ...) over two or more numbers.
func (i *Interpreter) builtinHypot(args []Value) Value {
	if len(args) < 2 {
		return i.errorAtCurrent("hypot() requires at least 2 arguments")
	}
	sumSquares := 0.0
	for _, arg := range args {
		n, ok := arg.(*NumberValue)
		if !ok {
			return i.errorAtCurrent("hypot() requires numbers")
		}
		sumSquares += n.Value * n.Value
	}
	return &NumberValue{Value: math.Sqrt(sumSquares)}
}

func (i *Interpreter) builtinFactorial(args []Value) Value {
	n, errVal := i.oneNumber("factorial", args)
	if errVal != nil {
		return errVal
	}
	if n < 0 || n != math.Trunc(n) {
		return i.errorAtCurrent("factorial() requires a non-negative integer")
	}
	result := 1.0
	for k := int64(2); k <= int64(n); k++ {
		result *= float64(k)
	}
	return &NumberValue{Value: result}
}

func (i *Interpreter) builtinGcd(args []Value) Value {
	if len(args) < 2 {
		return i.errorAtCurrent("gcd() requires at least 2 arguments")
	}
	var result int64
	for idx, arg := range args {
		n, ok := arg.(*NumberValue)
		if !ok {
			return i.errorAtCurrent("gcd() requires integers")
		}
		v := int64(n.Value)
		if v < 0 {
			v = -v
		}
		if idx == 0 {
			result = v
			continue
		}
		result = gcd(result, v)
	}
	return &NumberValue{Value: float64(result)}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
