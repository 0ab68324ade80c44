package token

type TokenType string

// Token is a single lexeme. Offset/End are byte offsets into the source.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
	Offset  int
	End     int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers. A qualified name like Json.Decode.Value is a single token.
	IDENT_UPPER TokenType = "IDENT_UPPER"
	IDENT_LOWER TokenType = "IDENT_LOWER"

	INT    TokenType = "INT"
	FLOAT  TokenType = "FLOAT"
	STRING TokenType = "STRING"
	CHAR   TokenType = "CHAR"

	ARROW    TokenType = "->"
	COLON    TokenType = ":"
	ASSIGN   TokenType = "="
	PIPE     TokenType = "|"
	DOT      TokenType = "."
	DOT_DOT  TokenType = ".."
	OPERATOR TokenType = "OPERATOR"

	COMMA      TokenType = ","
	LPAREN     TokenType = "("
	RPAREN     TokenType = ")"
	LBRACE     TokenType = "{"
	RBRACE     TokenType = "}"
	LBRACKET   TokenType = "["
	RBRACKET   TokenType = "]"
	BACKSLASH  TokenType = "\\"
	UNDERSCORE TokenType = "_"

	// Reserved words. `alias`, `effect` and `infix` are contextual and
	// arrive as IDENT_LOWER.
	MODULE   TokenType = "MODULE"
	PORT     TokenType = "PORT"
	WHERE    TokenType = "WHERE"
	EXPOSING TokenType = "EXPOSING"
	IMPORT   TokenType = "IMPORT"
	AS       TokenType = "AS"
	TYPE     TokenType = "TYPE"
	IF       TokenType = "IF"
	THEN     TokenType = "THEN"
	ELSE     TokenType = "ELSE"
	CASE     TokenType = "CASE"
	OF       TokenType = "OF"
	LET      TokenType = "LET"
	IN       TokenType = "IN"
)

var keywords = map[string]TokenType{
	"module":   MODULE,
	"port":     PORT,
	"where":    WHERE,
	"exposing": EXPOSING,
	"import":   IMPORT,
	"as":       AS,
	"type":     TYPE,
	"if":       IF,
	"then":     THEN,
	"else":     ELSE,
	"case":     CASE,
	"of":       OF,
	"let":      LET,
	"in":       IN,
}

// LookupIdent classifies a lower-case identifier as a keyword or plain name.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT_LOWER
}

// IsKeyword reports whether t is one of the reserved words.
func IsKeyword(t TokenType) bool {
	for _, kw := range keywords {
		if kw == t {
			return true
		}
	}
	return false
}
