package lexer

import (
	"testing"

	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

func TestTokenize(t *testing.T) {
	input := `module Main exposing (..)

{- block {- nested -} comment -}
import Json.Decode as D -- trailing

type alias Model = { count : Int, name : String }

view : Model -> Html.Html msg
view m = List.map .name [ 1, 2.5, 0x1F ] |> f 'a' "s\"q" """multi
line"""
`
	expected := []struct {
		typ    token.TokenType
		lexeme string
	}{
		{token.MODULE, "module"}, {token.IDENT_UPPER, "Main"}, {token.EXPOSING, "exposing"},
		{token.LPAREN, "("}, {token.DOT_DOT, ".."}, {token.RPAREN, ")"},
		{token.IMPORT, "import"}, {token.IDENT_UPPER, "Json.Decode"}, {token.AS, "as"}, {token.IDENT_UPPER, "D"},
		{token.TYPE, "type"}, {token.IDENT_LOWER, "alias"}, {token.IDENT_UPPER, "Model"}, {token.ASSIGN, "="},
		{token.LBRACE, "{"}, {token.IDENT_LOWER, "count"}, {token.COLON, ":"}, {token.IDENT_UPPER, "Int"},
		{token.COMMA, ","}, {token.IDENT_LOWER, "name"}, {token.COLON, ":"}, {token.IDENT_UPPER, "String"},
		{token.RBRACE, "}"},
		{token.IDENT_LOWER, "view"}, {token.COLON, ":"}, {token.IDENT_UPPER, "Model"}, {token.ARROW, "->"},
		{token.IDENT_UPPER, "Html.Html"}, {token.IDENT_LOWER, "msg"},
		{token.IDENT_LOWER, "view"}, {token.IDENT_LOWER, "m"}, {token.ASSIGN, "="},
		{token.IDENT_LOWER, "List.map"}, {token.DOT, "."}, {token.IDENT_LOWER, "name"},
		{token.LBRACKET, "["}, {token.INT, "1"}, {token.COMMA, ","}, {token.FLOAT, "2.5"}, {token.COMMA, ","},
		{token.INT, "0x1F"}, {token.RBRACKET, "]"}, {token.OPERATOR, "|>"}, {token.IDENT_LOWER, "f"},
		{token.CHAR, "'a'"}, {token.STRING, `"s\"q"`}, {token.STRING, "\"\"\"multi\nline\"\"\""},
		{token.EOF, ""},
	}

	toks := Tokenize(input)
	if len(toks) != len(expected) {
		for _, tok := range toks {
			t.Logf("%s %q", tok.Type, tok.Lexeme)
		}
		t.Fatalf("expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, want := range expected {
		if toks[i].Type != want.typ || toks[i].Lexeme != want.lexeme {
			t.Errorf("token %d: got %s %q, want %s %q", i, toks[i].Type, toks[i].Lexeme, want.typ, want.lexeme)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	toks := Tokenize("type X\n    = Y")
	want := []struct{ line, col, offset, end int }{
		{1, 1, 0, 4},
		{1, 6, 5, 6},
		{2, 5, 11, 12},
		{2, 7, 13, 14},
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Line != w.line || tok.Column != w.col || tok.Offset != w.offset || tok.End != w.end {
			t.Errorf("token %d (%q): got %d:%d [%d,%d), want %d:%d [%d,%d)",
				i, tok.Lexeme, tok.Line, tok.Column, tok.Offset, tok.End, w.line, w.col, w.offset, w.end)
		}
	}
}

func TestIllegal(t *testing.T) {
	testCases := []string{"\"unterminated", "'ab'", "`"}
	for _, input := range testCases {
		toks := Tokenize(input)
		if toks[0].Type != token.ILLEGAL {
			t.Errorf("Tokenize(%q)[0] = %s, want ILLEGAL", input, toks[0].Type)
		}
	}
}
