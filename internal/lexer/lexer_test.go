package lexer

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `var a = "hi"; // comment
	var b = 3.5;
	if (a != nil) { print a + b; } else { print !b; }
	`

	tests := []struct {
		expectedType   token.Type
		expectedLexeme string
	}{
		{token.VAR, "var"},
		{token.IDENTIFIER, "a"},
		{token.EQUAL, "="},
		{token.STRING, "hi"},
		{token.SEMICOLON, ";"},
		{token.VAR, "var"},
		{token.IDENTIFIER, "b"},
		{token.EQUAL, "="},
		{token.NUMBER, "3.5"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.LEFT_PAREN, "("},
		{token.IDENTIFIER, "a"},
		{token.BANG_EQUAL, "!="},
		{token.NIL, "nil"},
		{token.RIGHT_PAREN, ")"},
		{token.LEFT_BRACE, "{"},
		{token.PRINT, "print"},
		{token.IDENTIFIER, "a"},
		{token.PLUS, "+"},
		{token.IDENTIFIER, "b"},
		{token.SEMICOLON, ";"},
		{token.RIGHT_BRACE, "}"},
		{token.ELSE, "else"},
		{token.LEFT_BRACE, "{"},
		{token.PRINT, "print"},
		{token.BANG, "!"},
		{token.IDENTIFIER, "b"},
		{token.SEMICOLON, ";"},
		{token.RIGHT_BRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected unterminated string error")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
}

func TestMultilineString(t *testing.T) {
	l := New("\"a\nb\";")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Lexeme != "a\nb" {
		t.Fatalf("expected lexeme %q, got %q", "a\nb", tok.Lexeme)
	}
	semi, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if semi.Line != 2 {
		t.Fatalf("expected line 2 after multi-line string, got %d", semi.Line)
	}
}

func TestTokenizeProducesEOF(t *testing.T) {
	toks, err := New("1 + 2;").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected last token to be EOF, got %s", toks[len(toks)-1].Type)
	}
}

func TestNumberNoTrailingDot(t *testing.T) {
	// "123." should lex as NUMBER("123") then DOT, not a malformed number.
	toks, err := New("123.").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.NUMBER || toks[0].Lexeme != "123" {
		t.Fatalf("expected NUMBER(123), got %s(%q)", toks[0].Type, toks[0].Lexeme)
	}
	if toks[1].Type != token.DOT {
		t.Fatalf("expected DOT after 123, got %s", toks[1].Type)
	}
}
