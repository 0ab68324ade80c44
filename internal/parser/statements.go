package parser

import (
	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

// ParseProgram parses the whole token stream into an ast.File.
func (p *Parser) ParseProgram() *ast.File {
	file := &ast.File{Path: p.ctx.FilePath, Source: p.ctx.SourceCode}
	var children []*ast.Node

	for !p.curTokenIs(token.EOF) {
		if p.curToken.Column != 1 {
			// Indented text with no declaration above it.
			if n := p.skipDeclaration(); n != nil {
				children = append(children, n)
			}
			continue
		}

		start := p.pos
		var node *ast.Node
		switch {
		case p.curTokenIs(token.MODULE),
			p.curTokenIs(token.PORT) && p.peekTokenIs(token.MODULE),
			p.isContextual("effect") && p.peekTokenIs(token.MODULE):
			decl := p.parseModuleDeclaration()
			if decl != nil {
				if file.Module == nil {
					file.Module = decl
				}
				node = decl.Node
			}
		case p.curTokenIs(token.IMPORT):
			imp := p.parseImport()
			if imp != nil {
				file.Imports = append(file.Imports, imp)
				node = imp.Node
			}
		case p.curTokenIs(token.TYPE):
			decl := p.parseTypeDeclaration()
			if decl != nil {
				file.Types = append(file.Types, decl)
				node = decl.Node
			}
		case p.curTokenIs(token.PORT) && p.peekTokenIs(token.IDENT_LOWER):
			// port send : String -> Cmd msg
			p.nextToken()
			if ann := p.parseAnnotation(); ann != nil {
				file.Annotations = append(file.Annotations, ann)
				node = ann.Node
			}
		case p.curTokenIs(token.IDENT_LOWER) && p.peekTokenIs(token.COLON):
			ann := p.parseAnnotation()
			if ann != nil {
				file.Annotations = append(file.Annotations, ann)
				node = ann.Node
			}
		default:
			// Value definitions, infix declarations: nothing to document
			// beyond their annotation.
			p.skipDeclaration()
			continue
		}

		if node != nil {
			children = append(children, node)
		}
		// Resynchronise on the next top-level declaration after a malformed
		// or trailing-garbage declaration.
		if p.pos == start || !p.atBoundary() {
			if n := p.skipDeclaration(); n != nil {
				children = append(children, n)
			}
		}
	}

	file.Root = ast.NewNode(ast.KindFile, children...)
	file.Root.StartByte = 0
	file.Root.EndByte = len(p.ctx.SourceCode)
	return file
}

// isContextual reports whether the current token is the lower-case word w.
func (p *Parser) isContextual(w string) bool {
	return p.curTokenIs(token.IDENT_LOWER) && p.curToken.Lexeme == w
}
