package parser

import (
	"strings"

	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

// parseTypeDeclaration parses a custom type or a type alias:
//
//	type alias Pair a = ( a, a )
//	type Shape = Circle Float | Rect Float Float
func (p *Parser) parseTypeDeclaration() *ast.TypeDeclaration {
	decl := &ast.TypeDeclaration{}
	children := []*ast.Node{anon(p.curToken)} // type
	p.nextToken()

	kind := ast.KindTypeDeclaration
	if p.isContextual("alias") && !p.atBoundary() {
		decl.IsAlias = true
		kind = ast.KindTypeAliasDeclaration
		children = append(children, anon(p.curToken))
		p.nextToken()
	}

	nameTok := p.curToken
	if !p.curTokenIs(token.IDENT_UPPER) || p.atBoundary() {
		p.addError(diagnostics.NewError(diagnostics.ErrP005, nameTok, "expected type name, got "+describe(nameTok)))
		return nil
	}
	if len(nameTok.Lexeme) == 0 || strings.Contains(nameTok.Lexeme, ".") {
		p.addError(diagnostics.NewError(diagnostics.ErrP005, nameTok, "qualified type name "+describe(nameTok)))
		return nil
	}
	decl.Name = nameTok.Lexeme
	children = append(children, leaf(nameTok, ast.KindUpperCaseIdentifier, true))
	p.nextToken()

	for p.curTokenIs(token.IDENT_LOWER) && !p.atBoundary() {
		decl.Params = append(decl.Params, p.curToken.Lexeme)
		children = append(children, ast.NewNode(ast.KindLowerTypeName,
			leaf(p.curToken, ast.KindLowerCaseIdentifier, true)))
		p.nextToken()
	}

	eqTok, ok := p.expectCur(token.ASSIGN)
	if !ok {
		return nil
	}
	children = append(children, anon(eqTok))

	if decl.IsAlias {
		body := p.parseTypeExpression()
		if body == nil {
			return nil
		}
		decl.Body = body
		children = append(children, body)
	} else {
		for {
			variant := p.parseUnionVariant()
			if variant == nil {
				return nil
			}
			decl.Variants = append(decl.Variants, variant)
			children = append(children, variant.Node)
			if p.curTokenIs(token.PIPE) && !p.atBoundary() {
				children = append(children, anon(p.curToken))
				p.nextToken()
				continue
			}
			break
		}
	}

	decl.Node = ast.NewNode(kind, children...)
	return decl
}

// parseUnionVariant parses `Ctor arg1 arg2 ...`. Each argument is a
// self-delimiting type; a parenthesized argument contributes its `(` and `)`
// tokens as anonymous siblings.
func (p *Parser) parseUnionVariant() *ast.UnionVariant {
	nameTok := p.curToken
	if !p.curTokenIs(token.IDENT_UPPER) || p.atBoundary() || strings.Contains(nameTok.Lexeme, ".") {
		p.addError(diagnostics.NewError(diagnostics.ErrP005, nameTok, "expected constructor, got "+describe(nameTok)))
		return nil
	}
	p.nextToken()

	v := &ast.UnionVariant{Name: nameTok.Lexeme}
	children := []*ast.Node{leaf(nameTok, ast.KindUpperCaseIdentifier, true)}
	for p.startsTypeArgument() {
		arg := p.parseTypeArgument()
		if arg == nil {
			return nil
		}
		for _, n := range arg {
			if n.Named {
				v.Arity++
			}
		}
		children = append(children, arg...)
	}
	v.Node = ast.NewNode(ast.KindUnionVariant, children...)
	return v
}

// parseAnnotation parses `name : Type`. The caller has checked that the
// current token is the name, which normally sits in column one.
func (p *Parser) parseAnnotation() *ast.Annotation {
	nameTok := p.curToken
	p.nextToken()
	colonTok, ok := p.expectCur(token.COLON)
	if !ok {
		return nil
	}
	typ := p.parseTypeExpression()
	if typ == nil {
		return nil
	}
	return &ast.Annotation{
		Name: nameTok.Lexeme,
		Type: typ,
		Node: ast.NewNode(ast.KindTypeAnnotation,
			leaf(nameTok, ast.KindLowerCaseIdentifier, true),
			anon(colonTok),
			typ,
		),
	}
}
