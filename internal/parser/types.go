package parser

import (
	"strings"

	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

// parseTypeExpression parses `operand (-> operand)*`.
//
// A parenthesized type does not get a node of its own: the `(` and `)`
// tokens become anonymous children of the enclosing node, around the inner
// type_expression, the same shape tree-sitter-elm produces.
func (p *Parser) parseTypeExpression() *ast.Node {
	first := p.parseTypeOperand()
	if first == nil {
		return nil
	}
	children := first
	for p.curTokenIs(token.ARROW) && !p.atBoundary() {
		children = append(children, leaf(p.curToken, ast.KindArrow, true))
		p.nextToken()
		next := p.parseTypeOperand()
		if next == nil {
			return nil
		}
		children = append(children, next...)
	}
	return ast.NewNode(ast.KindTypeExpression, children...)
}

// parseTypeOperand parses one operand of an arrow chain: a type reference
// with its arguments, a type variable, a record, a tuple, the unit type, or
// a parenthesized type expression.
func (p *Parser) parseTypeOperand() []*ast.Node {
	if p.atBoundary() {
		p.addError(diagnostics.NewError(diagnostics.ErrP006, p.curToken, "unexpected "+describe(p.curToken)))
		return nil
	}
	if p.curTokenIs(token.IDENT_UPPER) {
		qid := p.parseUpperCaseQid()
		children := []*ast.Node{qid}
		for p.startsTypeArgument() {
			arg := p.parseTypeArgument()
			if arg == nil {
				return nil
			}
			children = append(children, arg...)
		}
		return []*ast.Node{ast.NewNode(ast.KindTypeRef, children...)}
	}
	return p.parseTypeArgument()
}

// startsTypeArgument reports whether the current token can begin a type
// constructor argument.
func (p *Parser) startsTypeArgument() bool {
	if p.atBoundary() {
		return false
	}
	switch p.curToken.Type {
	case token.IDENT_UPPER, token.IDENT_LOWER, token.LBRACE, token.LPAREN:
		return true
	}
	return false
}

// parseTypeArgument parses a self-delimiting type: an unapplied type
// reference, a type variable, a record, a tuple or unit, or a
// parenthesized type expression (returned as three sibling nodes).
func (p *Parser) parseTypeArgument() []*ast.Node {
	switch p.curToken.Type {
	case token.IDENT_UPPER:
		qid := p.parseUpperCaseQid()
		return []*ast.Node{ast.NewNode(ast.KindTypeRef, qid)}
	case token.IDENT_LOWER:
		if strings.Contains(p.curToken.Lexeme, ".") {
			break
		}
		n := leaf(p.curToken, ast.KindTypeVariable, true)
		p.nextToken()
		return []*ast.Node{n}
	case token.LBRACE:
		if n := p.parseRecordType(); n != nil {
			return []*ast.Node{n}
		}
		return nil
	case token.LPAREN:
		return p.parseParenthesizedType()
	}
	p.addError(diagnostics.NewError(diagnostics.ErrP006, p.curToken, "unexpected "+describe(p.curToken)))
	return nil
}

// parseUpperCaseQid splits a qualified upper-case token such as
// `Json.Decode.Value` into upper_case_identifier and `.` leaves.
func (p *Parser) parseUpperCaseQid() *ast.Node {
	tok := p.curToken
	p.nextToken()

	var children []*ast.Node
	offset := tok.Offset
	for i, seg := range strings.Split(tok.Lexeme, ".") {
		if i > 0 {
			children = append(children, ast.NewLeaf(ast.KindDot, false, offset, offset+1))
			offset++
		}
		children = append(children, ast.NewLeaf(ast.KindUpperCaseIdentifier, true, offset, offset+len(seg)))
		offset += len(seg)
	}
	return ast.NewNode(ast.KindUpperCaseQid, children...)
}

// parseParenthesizedType handles `()`, `( a, b )` and `( T )`.
func (p *Parser) parseParenthesizedType() []*ast.Node {
	open := anon(p.curToken)
	p.nextToken()

	if p.curTokenIs(token.RPAREN) && !p.atBoundary() {
		closeTok := p.curToken
		p.nextToken()
		unit := ast.NewLeaf(ast.KindUnitExpr, true, open.StartByte, closeTok.End)
		return []*ast.Node{ast.NewNode(ast.KindTupleType, unit)}
	}

	first := p.parseTypeExpression()
	if first == nil {
		return nil
	}

	if p.curTokenIs(token.COMMA) && !p.atBoundary() {
		children := []*ast.Node{open, first}
		for p.curTokenIs(token.COMMA) && !p.atBoundary() {
			children = append(children, anon(p.curToken))
			p.nextToken()
			elem := p.parseTypeExpression()
			if elem == nil {
				return nil
			}
			children = append(children, elem)
		}
		closeTok, ok := p.expectCur(token.RPAREN)
		if !ok {
			return nil
		}
		children = append(children, anon(closeTok))
		return []*ast.Node{ast.NewNode(ast.KindTupleType, children...)}
	}

	closeTok, ok := p.expectCur(token.RPAREN)
	if !ok {
		return nil
	}
	return []*ast.Node{open, first, anon(closeTok)}
}

// parseRecordType handles `{}`, `{ f : T, ... }` and `{ r | f : T, ... }`.
func (p *Parser) parseRecordType() *ast.Node {
	children := []*ast.Node{anon(p.curToken)}
	p.nextToken()

	if p.curTokenIs(token.RBRACE) && !p.atBoundary() {
		children = append(children, anon(p.curToken))
		p.nextToken()
		return ast.NewNode(ast.KindRecordType, children...)
	}

	if p.curTokenIs(token.IDENT_LOWER) && p.peekTokenIs(token.PIPE) && !p.atBoundary() {
		children = append(children, leaf(p.curToken, ast.KindRecordBaseIdentifier, true))
		p.nextToken()
		children = append(children, anon(p.curToken))
		p.nextToken()
	}

	for {
		field := p.parseFieldType()
		if field == nil {
			return nil
		}
		children = append(children, field)
		if p.curTokenIs(token.COMMA) && !p.atBoundary() {
			children = append(children, anon(p.curToken))
			p.nextToken()
			continue
		}
		break
	}

	closeTok, ok := p.expectCur(token.RBRACE)
	if !ok {
		return nil
	}
	children = append(children, anon(closeTok))
	return ast.NewNode(ast.KindRecordType, children...)
}

func (p *Parser) parseFieldType() *ast.Node {
	nameTok, ok := p.expectCur(token.IDENT_LOWER)
	if !ok {
		return nil
	}
	colonTok, ok := p.expectCur(token.COLON)
	if !ok {
		return nil
	}
	typ := p.parseTypeExpression()
	if typ == nil {
		return nil
	}
	return ast.NewNode(ast.KindFieldType,
		leaf(nameTok, ast.KindLowerCaseIdentifier, true),
		anon(colonTok),
		typ,
	)
}
