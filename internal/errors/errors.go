// Package errors defines the error values produced by the Kyaro pipeline.
// Every error carries a kind, a message, and the source position it was
// raised at. Lexer, parser and runtime errors format as
// "<Kind> error at line L, column C: <message>"; Generic errors format as
// "Error: <message>".
package errors

import (
	"fmt"
	"strings"

	"github.com/hnrie/Laminax-KPL/pkg/token"
)

// Kind classifies a pipeline error.
type Kind int

const (
	// Generic is the fallback for messages that do not classify.
	Generic Kind = iota
	// Lex covers malformed tokens and unterminated strings.
	Lex
	// Parse covers unexpected tokens and premature EOF.
	Parse
	// Runtime covers all evaluation failures: wrong operand types, arity
	// mismatches, unbound names, division by zero, domain errors, and
	// registry entries that are declared but not yet functional.
	Runtime
)

// String returns the user-visible name of the kind.
func (k Kind) String() string {
	switch k {
	case Lex:
		return "Lexer"
	case Parse:
		return "Parser"
	case Runtime:
		return "Runtime"
	default:
		return "Generic"
	}
}

// Error is a single pipeline error with position information.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

// New creates an error of the given kind.
func New(kind Kind, pos token.Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// NewLexError creates a lexer error at the given position.
func NewLexError(pos token.Position, format string, args ...any) *Error {
	return New(Lex, pos, format, args...)
}

// NewParseError creates a parser error at the given position.
func NewParseError(pos token.Position, format string, args ...any) *Error {
	return New(Parse, pos, format, args...)
}

// NewRuntimeError creates a runtime error at the given position.
func NewRuntimeError(pos token.Position, format string, args ...any) *Error {
	return New(Runtime, pos, format, args...)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == Generic {
		return fmt.Sprintf("Error: %s", e.Message)
	}
	return fmt.Sprintf("%s error at line %d, column %d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
}

// FormatWithSource formats the error together with the offending source line
// and a caret pointing at the error column. If color is true, ANSI color
// codes are used for terminal output.
func (e *Error) FormatWithSource(source string, color bool) string {
	var sb strings.Builder

	sb.WriteString(e.Error())

	line := sourceLine(source, e.Pos.Line)
	if line == "" {
		return sb.String()
	}

	sb.WriteString("\n")
	lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")

	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// sourceLine extracts a specific line from the source code. Lines are
// 1-indexed.
func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[lineNum-1], "\r")
}
