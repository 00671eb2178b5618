// Package kyaro is the embeddable entry point to the Kyaro interpreter.
// It wires the pipeline (lexer → parser → evaluator) behind a small API:
// one-shot execution with Run, or a Session whose environment persists
// across Eval calls the way a REPL needs.
package kyaro

import (
	"io"

	"github.com/hnrie/Laminax-KPL/internal/interp"
	"github.com/hnrie/Laminax-KPL/internal/lexer"
	"github.com/hnrie/Laminax-KPL/internal/parser"
)

// Session runs Kyaro source against a persistent interpreter. Bindings
// created by one Eval call are visible to the next.
type Session struct {
	interp *interp.Interpreter
}

// NewSession creates a session writing program output to out.
func NewSession(out io.Writer) *Session {
	return &Session{interp: interp.New(out)}
}

// SetInput redirects the input() builtin to read from r.
func (s *Session) SetInput(r io.Reader) {
	s.interp.SetInput(r)
}

// Eval runs one chunk of source through the pipeline. On success it returns
// the stringified value of the final statement; hasValue is false when the
// program produced no value or ended in null.
func (s *Session) Eval(source string) (result string, hasValue bool, err error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return "", false, err
	}

	program, err := parser.New(tokens).ParseProgram()
	if err != nil {
		return "", false, err
	}

	value, err := s.interp.Interpret(program)
	if err != nil {
		return "", false, err
	}
	if value == nil {
		return "", false, nil
	}
	if _, isNull := value.(*interp.NullValue); isNull {
		return "", false, nil
	}
	return value.String(), true, nil
}

// Run executes a whole program once, writing output to out.
func Run(source string, out io.Writer) error {
	_, _, err := NewSession(out).Eval(source)
	return err
}
