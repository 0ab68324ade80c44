package parser

import (
	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

// parseModuleDeclaration parses
//
//	module A.B exposing (..)
//	port module Ports exposing (send)
//	effect module Task where { command = MyCmd } exposing (Task)
func (p *Parser) parseModuleDeclaration() *ast.ModuleDeclaration {
	decl := &ast.ModuleDeclaration{}
	children := []*ast.Node{}

	if p.curTokenIs(token.PORT) {
		decl.Port = true
		children = append(children, anon(p.curToken))
		p.nextToken()
	} else if p.isContextual("effect") {
		decl.Effect = true
		children = append(children, anon(p.curToken))
		p.nextToken()
	}
	children = append(children, anon(p.curToken)) // module
	p.nextToken()

	if !p.curTokenIs(token.IDENT_UPPER) || p.atBoundary() {
		p.addError(diagnostics.NewError(diagnostics.ErrP003, p.curToken, "expected module name, got "+describe(p.curToken)))
		return nil
	}
	decl.Name = p.curToken.Lexeme
	children = append(children, p.parseUpperCaseQid())

	if p.curTokenIs(token.WHERE) && !p.atBoundary() {
		p.skipBalanced(token.LBRACE, token.RBRACE)
	}

	if !p.curTokenIs(token.EXPOSING) || p.atBoundary() {
		p.addError(diagnostics.NewError(diagnostics.ErrP003, p.curToken, "expected exposing, got "+describe(p.curToken)))
		return nil
	}
	exposing, node := p.parseExposingList()
	if exposing == nil {
		return nil
	}
	decl.Exposing = exposing
	children = append(children, node)

	decl.Node = ast.NewNode(ast.KindModuleDeclaration, children...)
	return decl
}

// parseImport parses `import A.B [as C] [exposing (...)]`.
func (p *Parser) parseImport() *ast.Import {
	imp := &ast.Import{}
	children := []*ast.Node{anon(p.curToken)}
	p.nextToken()

	if !p.curTokenIs(token.IDENT_UPPER) || p.atBoundary() {
		p.addError(diagnostics.NewError(diagnostics.ErrP004, p.curToken, "expected module name, got "+describe(p.curToken)))
		return nil
	}
	imp.Module = p.curToken.Lexeme
	children = append(children, p.parseUpperCaseQid())

	if p.curTokenIs(token.AS) && !p.atBoundary() {
		asTok := p.curToken
		p.nextToken()
		aliasTok, ok := p.expectCur(token.IDENT_UPPER)
		if !ok {
			return nil
		}
		imp.Alias = aliasTok.Lexeme
		children = append(children, ast.NewNode(ast.KindAsClause,
			anon(asTok),
			leaf(aliasTok, ast.KindUpperCaseIdentifier, true),
		))
	}

	if p.curTokenIs(token.EXPOSING) && !p.atBoundary() {
		exposing, node := p.parseExposingList()
		if exposing == nil {
			return nil
		}
		imp.Exposing = exposing
		children = append(children, node)
	}

	imp.Node = ast.NewNode(ast.KindImportClause, children...)
	return imp
}

// parseExposingList parses `exposing (..)` or `exposing (a, B, C(..), (+))`.
func (p *Parser) parseExposingList() (*ast.Exposing, *ast.Node) {
	exposing := &ast.Exposing{}
	children := []*ast.Node{anon(p.curToken)} // exposing
	p.nextToken()

	open, ok := p.expectCur(token.LPAREN)
	if !ok {
		return nil, nil
	}
	children = append(children, anon(open))

	if p.curTokenIs(token.DOT_DOT) && !p.atBoundary() {
		exposing.All = true
		children = append(children, leaf(p.curToken, ast.KindDoubleDot, true))
		p.nextToken()
	} else {
		for {
			item, node := p.parseExposedItem()
			if node == nil {
				return nil, nil
			}
			exposing.Items = append(exposing.Items, item)
			children = append(children, node)
			if p.curTokenIs(token.COMMA) && !p.atBoundary() {
				children = append(children, anon(p.curToken))
				p.nextToken()
				continue
			}
			break
		}
	}

	closeTok, ok := p.expectCur(token.RPAREN)
	if !ok {
		return nil, nil
	}
	children = append(children, anon(closeTok))
	return exposing, ast.NewNode(ast.KindExposingList, children...)
}

func (p *Parser) parseExposedItem() (ast.ExposedItem, *ast.Node) {
	if p.atBoundary() {
		p.addError(diagnostics.NewError(diagnostics.ErrP002, p.curToken, "exposed name", describe(p.curToken)))
		return ast.ExposedItem{}, nil
	}

	switch p.curToken.Type {
	case token.IDENT_LOWER:
		tok := p.curToken
		p.nextToken()
		return ast.ExposedItem{Name: tok.Lexeme, Kind: ast.ExposedValue},
			ast.NewNode(ast.KindExposedValue, leaf(tok, ast.KindLowerCaseIdentifier, true))

	case token.IDENT_UPPER:
		tok := p.curToken
		p.nextToken()
		item := ast.ExposedItem{Name: tok.Lexeme, Kind: ast.ExposedType}
		children := []*ast.Node{leaf(tok, ast.KindUpperCaseIdentifier, true)}
		if p.curTokenIs(token.LPAREN) && p.peekTokenIs(token.DOT_DOT) && !p.atBoundary() {
			open := anon(p.curToken)
			p.nextToken()
			dots := leaf(p.curToken, ast.KindDoubleDot, true)
			p.nextToken()
			closeTok, ok := p.expectCur(token.RPAREN)
			if !ok {
				return ast.ExposedItem{}, nil
			}
			item.Open = true
			children = append(children, ast.NewNode(ast.KindExposedUnionCtors, open, dots, anon(closeTok)))
		}
		return item, ast.NewNode(ast.KindExposedType, children...)

	case token.LPAREN:
		open := p.curToken
		p.nextToken()
		if p.atBoundary() || p.curTokenIs(token.RPAREN) {
			p.addError(diagnostics.NewError(diagnostics.ErrP002, p.curToken, "operator", describe(p.curToken)))
			return ast.ExposedItem{}, nil
		}
		opTok := p.curToken
		p.nextToken()
		closeTok, ok := p.expectCur(token.RPAREN)
		if !ok {
			return ast.ExposedItem{}, nil
		}
		return ast.ExposedItem{Name: opTok.Lexeme, Kind: ast.ExposedOperator},
			ast.NewNode(ast.KindExposedOperator,
				anon(open),
				leaf(opTok, ast.KindOperatorIdentifier, true),
				anon(closeTok),
			)
	}

	p.addError(diagnostics.NewError(diagnostics.ErrP002, p.curToken, "exposed name", describe(p.curToken)))
	return ast.ExposedItem{}, nil
}

// skipBalanced skips an `open ... close` group following the current token.
func (p *Parser) skipBalanced(open, close token.TokenType) {
	p.nextToken()
	if !p.curTokenIs(open) {
		return
	}
	depth := 0
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case open:
			depth++
		case close:
			depth--
		}
		p.nextToken()
		if depth == 0 {
			return
		}
	}
}
