package parser

import (
	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/lexer"
	"github.com/dsimunic/elm-wrap-sub004/internal/pipeline"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

// Parser reads the top level of an Elm module. Declarations start in column
// one; everything indented belongs to the declaration above it. Value
// bodies are skipped, only headers, imports, type declarations and type
// annotations are parsed.
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	// layout enables the column-one declaration boundary.
	layout bool

	ctx *pipeline.PipelineContext
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		end := len(ctx.SourceCode)
		tokens = append(tokens, token.Token{Type: token.EOF, Offset: end, End: end})
	}
	p := &Parser{tokens: tokens, ctx: ctx, layout: true}
	p.pos = -2
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.pos++
	p.curToken = p.at(p.pos)
	p.peekToken = p.at(p.pos + 1)
}

func (p *Parser) at(i int) token.Token {
	if i < 0 {
		return token.Token{}
	}
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// atBoundary reports whether the current token ends the declaration being
// parsed: end of input, or a token starting a new top-level declaration.
func (p *Parser) atBoundary() bool {
	if p.curTokenIs(token.EOF) {
		return true
	}
	return p.layout && p.curToken.Column == 1
}

// expectCur checks the current token's type, records a diagnostic when it
// does not match, and advances past it on success.
func (p *Parser) expectCur(t token.TokenType) (token.Token, bool) {
	tok := p.curToken
	if tok.Type != t || p.atBoundary() {
		p.addError(diagnostics.NewError(diagnostics.ErrP002, tok, string(t), describe(tok)))
		return tok, false
	}
	p.nextToken()
	return tok, true
}

func (p *Parser) addError(err *diagnostics.DiagnosticError) {
	err.File = p.ctx.FilePath
	p.ctx.Errors = append(p.ctx.Errors, err)
}

// skipDeclaration advances to the next top-level boundary and returns an
// ERROR node covering what was skipped, or nil when nothing was.
func (p *Parser) skipDeclaration() *ast.Node {
	start := p.curToken.Offset
	end := start
	moved := false
	for !p.curTokenIs(token.EOF) && (!moved || !p.atBoundary()) {
		end = p.curToken.End
		p.nextToken()
		moved = true
	}
	if !moved {
		return nil
	}
	return ast.NewLeaf(ast.KindError, true, start, end)
}

func leaf(tok token.Token, kind ast.Kind, named bool) *ast.Node {
	return ast.NewLeaf(kind, named, tok.Offset, tok.End)
}

func anon(tok token.Token) *ast.Node {
	return ast.NewLeaf(ast.Kind(tok.Lexeme), false, tok.Offset, tok.End)
}

func describe(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}

// ParseFile lexes and parses a whole module.
func ParseFile(path, src string) (*ast.File, []*diagnostics.DiagnosticError) {
	ctx := &pipeline.PipelineContext{FilePath: path, SourceCode: src}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &ParserProcessor{}).Run(ctx)
	return ctx.AstRoot, ctx.Errors
}

// ParseType parses a lone type expression such as `Maybe (List a) -> Int`.
// The returned node is always a type_expression, or nil on error.
func ParseType(src string) (*ast.Node, []*diagnostics.DiagnosticError) {
	ctx := &pipeline.PipelineContext{SourceCode: src}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	p := New(ctx.TokenStream, ctx)
	p.layout = false
	node := p.parseTypeExpression()
	if node != nil && !p.curTokenIs(token.EOF) {
		p.addError(diagnostics.NewError(diagnostics.ErrP001, p.curToken, describe(p.curToken)))
		node = nil
	}
	return node, ctx.Errors
}
