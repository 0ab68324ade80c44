package ast

import "strings"

// Kind tags a node of the concrete syntax tree. Named kinds follow the
// tree-sitter-elm grammar; anonymous nodes use their literal text as kind.
type Kind string

// Named node kinds.
const (
	KindFile                 Kind = "file"
	KindModuleDeclaration    Kind = "module_declaration"
	KindImportClause         Kind = "import_clause"
	KindAsClause             Kind = "as_clause"
	KindExposingList         Kind = "exposing_list"
	KindExposedType          Kind = "exposed_type"
	KindExposedValue         Kind = "exposed_value"
	KindExposedOperator      Kind = "exposed_operator"
	KindExposedUnionCtors    Kind = "exposed_union_constructors"
	KindDoubleDot            Kind = "double_dot"
	KindTypeDeclaration      Kind = "type_declaration"
	KindTypeAliasDeclaration Kind = "type_alias_declaration"
	KindUnionVariant         Kind = "union_variant"
	KindTypeAnnotation       Kind = "type_annotation"
	KindLowerTypeName        Kind = "lower_type_name"

	KindTypeExpression       Kind = "type_expression"
	KindTypeRef              Kind = "type_ref"
	KindTypeVariable         Kind = "type_variable"
	KindRecordType           Kind = "record_type"
	KindFieldType            Kind = "field_type"
	KindRecordBaseIdentifier Kind = "record_base_identifier"
	KindTupleType            Kind = "tuple_type"
	KindUnitExpr             Kind = "unit_expr"

	KindUpperCaseQid        Kind = "upper_case_qid"
	KindUpperCaseIdentifier Kind = "upper_case_identifier"
	KindLowerCaseIdentifier Kind = "lower_case_identifier"
	KindArrow               Kind = "arrow"
	KindOperatorIdentifier  Kind = "operator_identifier"

	KindError Kind = "ERROR"
)

// Anonymous token kinds.
const (
	KindLParen Kind = "("
	KindRParen Kind = ")"
	KindLBrace Kind = "{"
	KindRBrace Kind = "}"
	KindComma  Kind = ","
	KindColon  Kind = ":"
	KindPipe   Kind = "|"
	KindDot    Kind = "."
	KindEq     Kind = "="
)

// Node is an immutable concrete syntax tree node. StartByte and EndByte
// delimit the node's span in the source it was parsed from.
type Node struct {
	Kind      Kind
	Named     bool
	StartByte int
	EndByte   int
	Children  []*Node
}

// NewNode creates a named node spanning its children.
func NewNode(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind, Named: true, Children: children}
	if len(children) > 0 {
		n.StartByte = children[0].StartByte
		n.EndByte = children[len(children)-1].EndByte
	}
	return n
}

// NewLeaf creates a leaf node covering [start, end).
func NewLeaf(kind Kind, named bool, start, end int) *Node {
	return &Node{Kind: kind, Named: named, StartByte: start, EndByte: end}
}

// Text returns the node's source text.
func (n *Node) Text(src string) string {
	if n == nil || n.StartByte < 0 || n.EndByte > len(src) || n.StartByte > n.EndByte {
		return ""
	}
	return src[n.StartByte:n.EndByte]
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// NamedChildren returns the named children in order.
func (n *Node) NamedChildren() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Named {
			out = append(out, c)
		}
	}
	return out
}

// ChildOfKind returns the first direct child of the given kind.
func (n *Node) ChildOfKind(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns every direct child of the given kind.
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// SExpr renders the tree's named structure, e.g.
// (type_expression (type_ref (upper_case_qid (upper_case_identifier)))).
// Used by parser tests.
func (n *Node) SExpr() string {
	var sb strings.Builder
	n.writeSExpr(&sb)
	return sb.String()
}

func (n *Node) writeSExpr(sb *strings.Builder) {
	sb.WriteString("(")
	sb.WriteString(string(n.Kind))
	for _, c := range n.Children {
		if !c.Named {
			continue
		}
		sb.WriteString(" ")
		c.writeSExpr(sb)
	}
	sb.WriteString(")")
}
