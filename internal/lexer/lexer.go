// Package lexer turns Kyaro source text into a token stream.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/hnrie/Laminax-KPL/internal/errors"
	"github.com/hnrie/Laminax-KPL/pkg/token"
)

// Lexer is a lexical scanner for Kyaro source code.
//
// Column positions are reported as rune counts from the start of the line,
// not byte offsets. Multi-byte UTF-8 sequences each count as 1 column.
type Lexer struct {
	input        string
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
}

// New creates a new Lexer for the given input string. A UTF-8 BOM at the
// start of the input is stripped.
func New(input string) *Lexer {
	if len(input) >= 3 &&
		input[0] == 0xEF &&
		input[1] == 0xBB &&
		input[2] == 0xBF {
		input = input[3:]
	}

	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// eof marks end of input; the rune 0 never occurs in valid source.
const eof rune = 0

// readChar advances the lexer to the next character in the input.
// Crossing a newline bumps the line counter and restarts the column count.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = eof
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
}

// peekChar returns the next character without advancing the position.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// currentPos returns the current Position for token creation.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// skipWhitespace consumes spaces, tabs, and carriage returns. Newlines are
// significant and are not skipped here.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment consumes a '#' line comment up to (but not including) the
// terminating newline.
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != eof {
		l.readChar()
	}
}

// Tokenize scans the entire input and returns the token sequence,
// terminated by exactly one EOF token. The first lexical error aborts the
// scan.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for l.ch != eof {
		l.skipWhitespace()

		if l.ch == eof {
			break
		}

		if l.ch == '#' {
			l.skipComment()
			continue
		}

		if l.ch == '\n' {
			tokens = append(tokens, token.Token{Type: token.NEWLINE, Literal: "\n", Pos: l.currentPos()})
			l.readChar()
			continue
		}

		if isDigit(l.ch) {
			tokens = append(tokens, l.readNumber())
			continue
		}

		if l.ch == '"' || l.ch == '\'' {
			tok, err := l.readString(l.ch)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			continue
		}

		if isIdentStart(l.ch) {
			tokens = append(tokens, l.readIdentifier())
			continue
		}

		tok, err := l.readOperator()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, token.Token{Type: token.EOF, Literal: "", Pos: l.currentPos()})
	return tokens, nil
}

// readNumber reads a run of ASCII digits containing at most one '.'.
// The literal keeps the raw text; the parser converts it to a double.
func (l *Lexer) readNumber() token.Token {
	pos := l.currentPos()
	start := l.position
	hasDot := false

	for {
		if isDigit(l.ch) {
			l.readChar()
		} else if l.ch == '.' && !hasDot {
			hasDot = true
			l.readChar()
		} else {
			break
		}
	}

	return token.Token{Type: token.NUMBER, Literal: l.input[start:l.position], Pos: pos}
}

// readString reads a quoted string, decoding escape sequences. The opening
// and closing quote must match. Recognized escapes: \n, \t, \r, \\, and the
// active quote character; any other escaped character passes through
// literally.
func (l *Lexer) readString(quote rune) (token.Token, error) {
	pos := l.currentPos()
	l.readChar() // skip opening quote

	var sb []rune
	for l.ch != quote {
		if l.ch == eof || l.ch == '\n' {
			return token.Token{}, errors.NewLexError(pos, "Unterminated string")
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb = append(sb, '\n')
			case 't':
				sb = append(sb, '\t')
			case 'r':
				sb = append(sb, '\r')
			case '\\':
				sb = append(sb, '\\')
			case quote:
				sb = append(sb, quote)
			case eof:
				return token.Token{}, errors.NewLexError(pos, "Unterminated string")
			default:
				sb = append(sb, l.ch)
			}
			l.readChar()
			continue
		}
		sb = append(sb, l.ch)
		l.readChar()
	}

	l.readChar() // skip closing quote
	return token.Token{Type: token.STRING, Literal: string(sb), Pos: pos}, nil
}

// readIdentifier reads an identifier or keyword starting with a letter
// or '_'.
func (l *Lexer) readIdentifier() token.Token {
	pos := l.currentPos()
	start := l.position

	for isIdentStart(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}

	word := l.input[start:l.position]
	return token.Token{Type: token.LookupIdent(word), Literal: word, Pos: pos}
}

// readOperator reads an operator or delimiter token with maximal munch:
// two-character operators take precedence over their one-character prefixes.
func (l *Lexer) readOperator() (token.Token, error) {
	pos := l.currentPos()
	ch := l.ch

	sym := func(tt token.TokenType, lit string) (token.Token, error) {
		return token.Token{Type: tt, Literal: lit, Pos: pos}, nil
	}

	switch ch {
	case '+':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return sym(token.PLUS_ASSIGN, "+=")
		}
		return sym(token.PLUS, "+")
	case '-':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return sym(token.MINUS_ASSIGN, "-=")
		}
		if l.ch == '>' {
			l.readChar()
			return sym(token.ARROW, "->")
		}
		return sym(token.MINUS, "-")
	case '*':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return sym(token.TIMES_ASSIGN, "*=")
		}
		if l.ch == '*' {
			l.readChar()
			return sym(token.POWER, "**")
		}
		return sym(token.ASTERISK, "*")
	case '/':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return sym(token.DIVIDE_ASSIGN, "/=")
		}
		return sym(token.SLASH, "/")
	case '%':
		l.readChar()
		return sym(token.PERCENT, "%")
	case '=':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return sym(token.EQ, "==")
		}
		return sym(token.ASSIGN, "=")
	case '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return sym(token.NOT_EQ, "!=")
		}
		return token.Token{}, errors.NewLexError(pos, "Unexpected character: %c", ch)
	case '<':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return sym(token.LESS_EQ, "<=")
		}
		return sym(token.LESS, "<")
	case '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return sym(token.GREATER_EQ, ">=")
		}
		return sym(token.GREATER, ">")
	case '(':
		l.readChar()
		return sym(token.LPAREN, "(")
	case ')':
		l.readChar()
		return sym(token.RPAREN, ")")
	case '{':
		l.readChar()
		return sym(token.LBRACE, "{")
	case '}':
		l.readChar()
		return sym(token.RBRACE, "}")
	case '[':
		l.readChar()
		return sym(token.LBRACK, "[")
	case ']':
		l.readChar()
		return sym(token.RBRACK, "]")
	case ',':
		l.readChar()
		return sym(token.COMMA, ",")
	case '.':
		l.readChar()
		return sym(token.DOT, ".")
	case ':':
		l.readChar()
		return sym(token.COLON, ":")
	case ';':
		l.readChar()
		return sym(token.SEMICOLON, ";")
	default:
		return token.Token{}, errors.NewLexError(pos, "Unexpected character: %c", ch)
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}
