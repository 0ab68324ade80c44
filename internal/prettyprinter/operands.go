package prettyprinter

import "github.com/dsimunic/elm-wrap-sub004/internal/ast"

// operand is one element of an arrow chain or of a type constructor's
// argument list. parens marks a `( node )` wrap, whose tokens are siblings
// of node in the tree rather than a node of their own.
type operand struct {
	node   *ast.Node
	parens bool
}

// operands groups a child list into operands, skipping arrows and
// separators.
func operands(children []*ast.Node) []operand {
	var ops []operand
	for i := 0; i < len(children); i++ {
		c := children[i]
		if !c.Named {
			if c.Kind != ast.KindLParen {
				continue
			}
			var inner *ast.Node
			j := i + 1
			for ; j < len(children); j++ {
				if !children[j].Named && children[j].Kind == ast.KindRParen {
					break
				}
				if children[j].Named && inner == nil {
					inner = children[j]
				}
			}
			if inner != nil {
				ops = append(ops, operand{node: inner, parens: true})
			}
			i = j
			continue
		}
		if c.Kind == ast.KindArrow {
			continue
		}
		ops = append(ops, operand{node: c})
	}
	return ops
}

// splitTypeRef returns the head name and the argument operands of a type_ref.
func splitTypeRef(n *ast.Node) (*ast.Node, []operand) {
	for i, c := range n.Children {
		if c.Kind == ast.KindUpperCaseQid {
			return c, operands(n.Children[i+1:])
		}
	}
	return nil, operands(n.Children)
}

// splitVariant returns the constructor name and argument operands of a
// union_variant.
func splitVariant(n *ast.Node) (*ast.Node, []operand) {
	if n == nil {
		return nil, nil
	}
	for i, c := range n.Children {
		if c.Kind == ast.KindUpperCaseIdentifier {
			return c, operands(n.Children[i+1:])
		}
	}
	return nil, operands(n.Children)
}

// core strips single-operand type_expression layers and the parentheses
// between them, so `((Maybe a))` yields the type_ref `Maybe a`.
func core(n *ast.Node) *ast.Node {
	for n.Kind == ast.KindTypeExpression {
		ops := operands(n.Children)
		if len(ops) != 1 {
			return n
		}
		n = ops[0].node
	}
	return n
}

// isFunction reports whether a core node has a top-level arrow.
func isFunction(n *ast.Node) bool {
	return n.Kind == ast.KindTypeExpression && len(operands(n.Children)) >= 2
}

// isApplication reports whether a core node is a type constructor applied
// to arguments.
func isApplication(n *ast.Node) bool {
	if n.Kind != ast.KindTypeRef {
		return false
	}
	_, args := splitTypeRef(n)
	return len(args) > 0
}

// isSimple reports whether a core node never needs parentheses.
func isSimple(n *ast.Node) bool {
	switch n.Kind {
	case ast.KindTypeRef:
		return !isApplication(n)
	case ast.KindTypeVariable, ast.KindRecordType, ast.KindUpperCaseQid, ast.KindUpperCaseIdentifier:
		return true
	}
	return false
}
