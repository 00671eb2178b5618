package lexer

import (
	"testing"

	"github.com/hnrie/Laminax-KPL/pkg/token"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return tokens
}

func TestNextToken(t *testing.T) {
	input := `let x = 5
x = x + 10
`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.NUMBER, "10"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}

	tokens := tokenize(t, input)
	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `let func if else elif while for in return break continue true false null and or not class import`

	expected := []token.TokenType{
		token.LET, token.FUNC, token.IF, token.ELSE, token.ELIF,
		token.WHILE, token.FOR, token.IN, token.RETURN, token.BREAK,
		token.CONTINUE, token.TRUE, token.FALSE, token.NULL,
		token.AND, token.OR, token.NOT, token.CLASS, token.IMPORT,
		token.EOF,
	}

	tokens := tokenize(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d] = %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % ** = == != < <= > >= += -= *= /= ( ) { } [ ] , . : ; ->`

	expected := []struct {
		tt  token.TokenType
		lit string
	}{
		{token.PLUS, "+"},
		{token.MINUS, "-"},
		{token.ASTERISK, "*"},
		{token.SLASH, "/"},
		{token.PERCENT, "%"},
		{token.POWER, "**"},
		{token.ASSIGN, "="},
		{token.EQ, "=="},
		{token.NOT_EQ, "!="},
		{token.LESS, "<"},
		{token.LESS_EQ, "<="},
		{token.GREATER, ">"},
		{token.GREATER_EQ, ">="},
		{token.PLUS_ASSIGN, "+="},
		{token.MINUS_ASSIGN, "-="},
		{token.TIMES_ASSIGN, "*="},
		{token.DIVIDE_ASSIGN, "/="},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.LBRACK, "["},
		{token.RBRACK, "]"},
		{token.COMMA, ","},
		{token.DOT, "."},
		{token.COLON, ":"},
		{token.SEMICOLON, ";"},
		{token.ARROW, "->"},
		{token.EOF, ""},
	}

	tokens := tokenize(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt.tt || tokens[i].Literal != tt.lit {
			t.Errorf("tokens[%d] = (%v, %q), want (%v, %q)",
				i, tokens[i].Type, tokens[i].Literal, tt.tt, tt.lit)
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	// == must win over two =, -> over -, ** over two *.
	tokens := tokenize(t, "a==b->c**d")

	expected := []token.TokenType{
		token.IDENT, token.EQ, token.IDENT, token.ARROW,
		token.IDENT, token.POWER, token.IDENT, token.EOF,
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d] = %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"0", "0"},
		{"42", "42"},
		{"3.14", "3.14"},
		{"0.5", "0.5"},
		{"10.", "10."},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if tokens[0].Type != token.NUMBER {
			t.Errorf("tokenize(%q)[0].Type = %v, want NUMBER", tt.input, tokens[0].Type)
		}
		if tokens[0].Literal != tt.literal {
			t.Errorf("tokenize(%q)[0].Literal = %q, want %q", tt.input, tokens[0].Literal, tt.literal)
		}
	}
}

func TestNumberWithTwoDots(t *testing.T) {
	// The second dot ends the number and lexes as DOT.
	tokens := tokenize(t, "1.2.3")

	expected := []struct {
		tt  token.TokenType
		lit string
	}{
		{token.NUMBER, "1.2"},
		{token.DOT, "."},
		{token.NUMBER, "3"},
		{token.EOF, ""},
	}
	for i, tt := range expected {
		if tokens[i].Type != tt.tt || tokens[i].Literal != tt.lit {
			t.Errorf("tokens[%d] = (%v, %q), want (%v, %q)",
				i, tokens[i].Type, tokens[i].Literal, tt.tt, tt.lit)
		}
	}
}

func TestLoneDotIsNotANumber(t *testing.T) {
	tokens := tokenize(t, ".")
	if tokens[0].Type != token.DOT {
		t.Errorf("tokenize(\".\")[0].Type = %v, want DOT", tokens[0].Type)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\rb"`, "a\rb"},
		{`"a\\b"`, `a\b`},
		{`"say \"hi\""`, `say "hi"`},
		{`'it\'s'`, "it's"},
		{`"mixed 'quotes'"`, "mixed 'quotes'"},
		{`"unknown \q escape"`, "unknown q escape"},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if tokens[0].Type != token.STRING {
			t.Fatalf("tokenize(%s)[0].Type = %v, want STRING", tt.input, tokens[0].Type)
		}
		if tokens[0].Literal != tt.expected {
			t.Errorf("tokenize(%s) literal = %q, want %q", tt.input, tokens[0].Literal, tt.expected)
		}
	}
}

func TestComments(t *testing.T) {
	input := "let x = 1 # this is a comment\nlet y = 2"

	tokens := tokenize(t, input)
	expected := []token.TokenType{
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER,
		token.NEWLINE,
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER,
		token.EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d] = %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestCarriageReturnsAreWhitespace(t *testing.T) {
	tokens := tokenize(t, "let x = 1\r\nlet y = 2")

	expected := []token.TokenType{
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER,
		token.NEWLINE,
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER,
		token.EOF,
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d] = %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []string{"x", "_x", "snake_case", "camelCase", "x2", "_", "ml_mse"}

	for _, input := range tests {
		tokens := tokenize(t, input)
		if tokens[0].Type != token.IDENT || tokens[0].Literal != input {
			t.Errorf("tokenize(%q)[0] = (%v, %q), want (IDENT, %q)",
				input, tokens[0].Type, tokens[0].Literal, input)
		}
	}
}

func TestEndsWithSingleEOF(t *testing.T) {
	inputs := []string{"", "let x = 1", "\n\n\n", "# only a comment"}

	for _, input := range inputs {
		tokens := tokenize(t, input)
		eofs := 0
		for _, tok := range tokens {
			if tok.Type == token.EOF {
				eofs++
			}
		}
		if eofs != 1 {
			t.Errorf("tokenize(%q) produced %d EOF tokens, want exactly 1", input, eofs)
		}
		if tokens[len(tokens)-1].Type != token.EOF {
			t.Errorf("tokenize(%q) does not end with EOF", input)
		}
	}
}

func TestUTF8BOMIsStripped(t *testing.T) {
	tokens := tokenize(t, "\xEF\xBB\xBFlet x = 1")
	if tokens[0].Type != token.LET {
		t.Errorf("tokens[0].Type = %v, want LET", tokens[0].Type)
	}
	if tokens[0].Pos.Column != 1 {
		t.Errorf("tokens[0].Pos.Column = %d, want 1", tokens[0].Pos.Column)
	}
}
