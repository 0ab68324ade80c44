package diagnostics

import (
	"fmt"

	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal token

	// Parser
	ErrP000 ErrorCode = "P000" // internal parser failure
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected token
	ErrP003 ErrorCode = "P003" // malformed module header
	ErrP004 ErrorCode = "P004" // malformed import
	ErrP005 ErrorCode = "P005" // malformed type declaration
	ErrP006 ErrorCode = "P006" // malformed type expression
)

var messages = map[ErrorCode]string{
	ErrL001: "illegal token: %s",
	ErrP000: "parser: %s",
	ErrP001: "unexpected token %s",
	ErrP002: "expected %s, got %s",
	ErrP003: "malformed module declaration: %s",
	ErrP004: "malformed import: %s",
	ErrP005: "malformed type declaration: %s",
	ErrP006: "malformed type expression: %s",
}

// DiagnosticError is a positioned, recoverable problem found while reading
// a source file.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string
}

// NewError formats the message registered for code with args.
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	format, ok := messages[code]
	msg := ""
	if ok {
		msg = fmt.Sprintf(format, args...)
	} else {
		msg = fmt.Sprint(args...)
	}
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

func (e *DiagnosticError) Error() string {
	loc := fmt.Sprintf("%d:%d", e.Token.Line, e.Token.Column)
	if e.File != "" {
		loc = e.File + ":" + loc
	}
	return fmt.Sprintf("%s: [%s] %s", loc, e.Code, e.Message)
}
