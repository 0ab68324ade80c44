package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

// Tokenize runs the lexer to completion. The final token is always EOF.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

// NextToken skips whitespace and comments and returns the next token with
// its line, column and byte range filled in.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	start, line, col := l.position, l.line, l.column
	tok := l.scan()
	tok.Offset = start
	tok.End = l.position
	tok.Line = line
	tok.Column = col
	if tok.Lexeme == "" && tok.Type != token.EOF {
		tok.Lexeme = l.input[start:l.position]
	}
	return tok
}

func (l *Lexer) scan() token.Token {
	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF}
	case '(':
		return l.single(token.LPAREN)
	case ')':
		return l.single(token.RPAREN)
	case '{':
		return l.single(token.LBRACE)
	case '}':
		return l.single(token.RBRACE)
	case '[':
		return l.single(token.LBRACKET)
	case ']':
		return l.single(token.RBRACKET)
	case ',':
		return l.single(token.COMMA)
	case '\\':
		return l.single(token.BACKSLASH)
	case '"':
		return l.readString()
	case '\'':
		return l.readCharLiteral()
	case '_':
		if !isLetter(l.peekChar()) && !isDigit(l.peekChar()) {
			return l.single(token.UNDERSCORE)
		}
		return l.readName()
	}

	if isLetter(l.ch) {
		return l.readName()
	}
	if isDigit(l.ch) {
		return l.readNumber()
	}
	if isSymbol(l.ch) {
		return l.readOperator()
	}

	return l.single(token.ILLEGAL)
}

func (l *Lexer) single(t token.TokenType) token.Token {
	lexeme := string(l.ch)
	l.readChar()
	return token.Token{Type: t, Lexeme: lexeme, Literal: lexeme}
}

// readName reads an identifier and, when it starts with an upper-case
// segment, any directly attached `.Segment` continuations, so that
// `Json.Decode.Value` and `List.map` arrive as one token.
func (l *Lexer) readName() token.Token {
	position := l.position
	segment := l.readIdentifier()
	last := segment
	for isUpperName(segment) && l.ch == '.' && isLetter(l.peekChar()) {
		l.readChar() // .
		segment = l.readIdentifier()
		last = segment
	}
	lexeme := l.input[position:l.position]
	return token.Token{Type: l.determineIdentifierType(lexeme, last), Lexeme: lexeme, Literal: lexeme}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) determineIdentifierType(ident, last string) token.TokenType {
	if len(ident) == 0 {
		return token.ILLEGAL
	}
	if isUpperName(last) {
		return token.IDENT_UPPER
	}
	if ident != last {
		// Qualified value reference such as List.map.
		return token.IDENT_LOWER
	}
	return token.LookupIdent(ident)
}

func (l *Lexer) readOperator() token.Token {
	position := l.position
	for isSymbol(l.ch) {
		l.readChar()
	}
	lexeme := l.input[position:l.position]

	var t token.TokenType
	switch lexeme {
	case "->":
		t = token.ARROW
	case ":":
		t = token.COLON
	case "=":
		t = token.ASSIGN
	case "|":
		t = token.PIPE
	case ".":
		t = token.DOT
	case "..":
		t = token.DOT_DOT
	default:
		t = token.OPERATOR
	}
	return token.Token{Type: t, Lexeme: lexeme, Literal: lexeme}
}

func (l *Lexer) readString() token.Token {
	position := l.position
	triple := strings.HasPrefix(l.input[position:], `"""`)
	if triple {
		l.readChar()
		l.readChar()
	}
	var sb strings.Builder
	for {
		l.readChar()
		if l.ch == 0 {
			return token.Token{Type: token.ILLEGAL, Literal: "unterminated string literal"}
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return token.Token{Type: token.ILLEGAL, Literal: "unterminated string literal"}
			}
			sb.WriteRune(unescape(l.ch))
			continue
		}
		if l.ch == '"' {
			if !triple {
				break
			}
			if l.peekChar() == '"' && l.peekChar2() == '"' {
				l.readChar()
				l.readChar()
				break
			}
		}
		if l.ch == '\n' && !triple {
			return token.Token{Type: token.ILLEGAL, Literal: "newline in string literal"}
		}
		sb.WriteRune(l.ch)
	}
	l.readChar() // closing "
	return token.Token{Type: token.STRING, Literal: sb.String(), Lexeme: l.input[position:l.position]}
}

func (l *Lexer) readCharLiteral() token.Token {
	position := l.position
	l.readChar() // consume '
	var val rune
	switch l.ch {
	case 0, '\n':
		return token.Token{Type: token.ILLEGAL, Literal: "unterminated character literal"}
	case '\\':
		l.readChar()
		if l.ch == 'u' && l.peekChar() == '{' {
			l.readChar() // u
			l.readChar() // {
			hexStart := l.position
			for isHexDigit(l.ch) {
				l.readChar()
			}
			code, _ := strconv.ParseInt(l.input[hexStart:l.position], 16, 32)
			val = rune(code)
		} else {
			val = unescape(l.ch)
		}
	default:
		val = l.ch
	}
	l.readChar() // last char of the literal body (or the closing } of \u{...})
	if l.ch != '\'' {
		return token.Token{Type: token.ILLEGAL, Literal: "unterminated character literal, expected '"}
	}
	l.readChar()
	return token.Token{Type: token.CHAR, Literal: val, Lexeme: l.input[position:l.position]}
}

func (l *Lexer) readNumber() token.Token {
	position := l.position

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
		lexeme := l.input[position:l.position]
		val, err := strconv.ParseInt(lexeme, 0, 64)
		if err != nil {
			return token.Token{Type: token.ILLEGAL, Literal: err.Error()}
		}
		return token.Token{Type: token.INT, Literal: val}
	}

	isFloat := false
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.input[position:l.position]
	if isFloat {
		val, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return token.Token{Type: token.ILLEGAL, Literal: err.Error()}
		}
		return token.Token{Type: token.FLOAT, Literal: val}
	}
	val, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return token.Token{Type: token.ILLEGAL, Literal: "integer overflow"}
	}
	return token.Token{Type: token.INT, Literal: val}
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return ch
	}
}

func isUpperName(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isSymbol(ch rune) bool {
	return strings.ContainsRune("+-/*=.<>:&|^?%!~", ch)
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekChar2() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	_, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	pos2 := l.readPosition + w
	if pos2 >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos2:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		// -- line comment
		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		// {- block comment -}, nestable
		if l.ch == '{' && l.peekChar() == '-' {
			depth := 0
			for l.ch != 0 {
				if l.ch == '{' && l.peekChar() == '-' {
					depth++
					l.readChar()
					l.readChar()
					continue
				}
				if l.ch == '-' && l.peekChar() == '}' {
					depth--
					l.readChar()
					l.readChar()
					if depth == 0 {
						break
					}
					continue
				}
				l.readChar()
			}
			continue
		}
		break
	}
}
