package interp

import "testing"

func TestWhileLoop(t *testing.T) {
	src := `
let i = 0
let total = 0
while i < 5 {
	total = total + i
	i = i + 1
}
total
`
	expectNumber(t, src, 10)
}

func TestWhileFalseNeverRuns(t *testing.T) {
	output := evalOutput(t, `while false { print("never") }`)
	if output != "" {
		t.Errorf("output = %q, want empty", output)
	}
}

func TestWhileBreak(t *testing.T) {
	src := `
let i = 0
while true {
	if i == 3 {
		break
	}
	print(i)
	i = i + 1
}
`
	output := evalOutput(t, src)
	if output != "0\n1\n2\n" {
		t.Errorf("output = %q, want %q", output, "0\n1\n2\n")
	}
}

func TestWhileContinue(t *testing.T) {
	src := `
let i = 0
while i < 5 {
	i = i + 1
	if i % 2 == 0 {
		continue
	}
	print(i)
}
`
	output := evalOutput(t, src)
	if output != "1\n3\n5\n" {
		t.Errorf("output = %q, want %q", output, "1\n3\n5\n")
	}
}

func TestForLoop(t *testing.T) {
	src := `
let xs = [1, 2, 3]
let t = 0
for x in xs {
	t = t + x
}
t
`
	expectNumber(t, src, 6)
}

func TestForLoopOverEmptyList(t *testing.T) {
	output := evalOutput(t, `for x in [] { print(x) }`)
	if output != "" {
		t.Errorf("output = %q, want empty", output)
	}
}

func TestForBreakAndContinue(t *testing.T) {
	src := `
for x in [1, 2, 3, 4, 5] {
	if x == 2 {
		continue
	}
	if x == 4 {
		break
	}
	print(x)
}
`
	output := evalOutput(t, src)
	if output != "1\n3\n" {
		t.Errorf("output = %q, want %q", output, "1\n3\n")
	}
}

func TestForLoopVariableVisibleAfterLoop(t *testing.T) {
	// The loop variable is defined in the current scope, so it survives
	// the loop with its last value.
	expectNumber(t, "for x in [1, 2, 3] { }\nx", 3)
}

func TestNestedLoops(t *testing.T) {
	src := `
for a in [1, 2] {
	for b in [10, 20] {
		if b == 20 {
			break
		}
		print(a * b)
	}
}
`
	output := evalOutput(t, src)
	if output != "10\n20\n" {
		t.Errorf("output = %q, want %q", output, "10\n20\n")
	}
}

func TestReturnInsideLoop(t *testing.T) {
	src := `
func firstEven(xs) {
	for x in xs {
		if x % 2 == 0 {
			return x
		}
	}
	return null
}
firstEven([1, 3, 6, 8])
`
	expectNumber(t, src, 6)
}

func TestWhileValueIsLastBodyValue(t *testing.T) {
	expectNumber(t, "let i = 0\nwhile i < 3 { i = i + 1 }", 3)
}

func TestBrokenLoopYieldsNull(t *testing.T) {
	value := evalValue(t, "while true { break }")
	if _, ok := value.(*NullValue); !ok {
		t.Errorf("broken loop produced %T, want *NullValue", value)
	}
}
