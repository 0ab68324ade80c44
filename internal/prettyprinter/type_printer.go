package prettyprinter

import (
	"strings"

	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
)

// --- Type Printer (canonical, optionally qualified, type signatures) ---

// NameResolver maps a type name as written to the name to print. arity is
// the number of arguments applied at the use site.
type NameResolver interface {
	Qualify(qualifier, name string, arity int) string
}

// TypePrinter renders type expressions the way the formatter prints them.
// With a NameResolver every type name is fully qualified on the way; with
// none, names are copied as written.
type TypePrinter struct {
	src      string
	resolver NameResolver
	buf      strings.Builder
}

func NewTypePrinter(src string, resolver NameResolver) *TypePrinter {
	return &TypePrinter{src: src, resolver: resolver}
}

// Canonical renders n without qualification.
func Canonical(n *ast.Node, src string) string {
	return NewTypePrinter(src, nil).Print(n)
}

// Qualified renders n, qualifying every type name through r.
func Qualified(n *ast.Node, src string, r NameResolver) string {
	return NewTypePrinter(src, r).Print(n)
}

// Print renders a type node (normally a type_expression).
func (p *TypePrinter) Print(n *ast.Node) string {
	p.buf.Reset()
	if n != nil {
		p.printType(n, false)
	}
	return p.buf.String()
}

// PrintVariant renders a union_variant as it appears in a declaration,
// e.g. `Poly (List Point)`.
func (p *TypePrinter) PrintVariant(variant *ast.Node) string {
	p.buf.Reset()
	name, args := splitVariant(variant)
	if name != nil {
		p.write(name.Text(p.src))
	}
	for _, arg := range args {
		p.write(" ")
		p.printArgument(arg)
	}
	return p.buf.String()
}

// PrintVariantArgs renders each constructor argument on its own, without
// the parentheses it needs inside the declaration.
func (p *TypePrinter) PrintVariantArgs(variant *ast.Node) []string {
	_, args := splitVariant(variant)
	out := make([]string, 0, len(args))
	for _, arg := range args {
		p.buf.Reset()
		p.printType(core(arg.node), false)
		out = append(out, p.buf.String())
	}
	return out
}

func (p *TypePrinter) write(s string) {
	p.buf.WriteString(s)
}

// printType renders n. argPos is set for an operand left of an arrow and
// for a type constructor argument.
func (p *TypePrinter) printType(n *ast.Node, argPos bool) {
	switch n.Kind {
	case ast.KindTypeExpression:
		p.printTypeExpression(n, argPos)
	case ast.KindTypeRef:
		p.printTypeRef(n)
	case ast.KindTypeVariable, ast.KindLowerCaseIdentifier:
		p.write(p.resolve("", n.Text(p.src), 0))
	case ast.KindUpperCaseQid:
		p.printQid(n, 0)
	case ast.KindUpperCaseIdentifier:
		p.write(p.resolve("", n.Text(p.src), 0))
	case ast.KindRecordType:
		p.printRecord(n)
	case ast.KindTupleType:
		p.printTuple(n)
	case ast.KindUnitExpr:
		p.write("()")
	default:
		p.printGeneric(n)
	}
}

func (p *TypePrinter) printTypeExpression(n *ast.Node, argPos bool) {
	ops := operands(n.Children)
	switch len(ops) {
	case 0:
		p.printGeneric(n)
	case 1:
		p.printOperand(ops[0], argPos)
	default:
		for i, op := range ops {
			if i > 0 {
				p.write(" -> ")
			}
			// Arrows associate to the right: only the last operand may be
			// a bare function type.
			p.printOperand(op, i < len(ops)-1)
		}
	}
}

func (p *TypePrinter) printOperand(op operand, argPos bool) {
	if op.parens {
		p.printParenthesized(op.node, argPos)
		return
	}
	p.printType(op.node, argPos)
}

// printParenthesized renders a `( inner )` wrap. Nested wraps collapse to
// one; the wrap is dropped around a simple type in argument position and
// around a function type outside argument position.
func (p *TypePrinter) printParenthesized(inner *ast.Node, argPos bool) {
	c := core(inner)
	keep := true
	switch {
	case isFunction(c):
		keep = argPos
	case isSimple(c):
		keep = !argPos
	}
	if keep {
		p.write("(")
		p.printType(c, false)
		p.write(")")
		return
	}
	p.printType(c, argPos)
}

// printArgument renders one type constructor argument.
func (p *TypePrinter) printArgument(arg operand) {
	if arg.parens {
		p.printParenthesized(arg.node, true)
		return
	}
	c := core(arg.node)
	if isFunction(c) || isApplication(c) {
		p.write("(")
		p.printType(c, false)
		p.write(")")
		return
	}
	p.printType(arg.node, true)
}

func (p *TypePrinter) printTypeRef(n *ast.Node) {
	qid, args := splitTypeRef(n)
	// The arity decides between an alias and a real module of the same
	// name, so it is known before the head is resolved.
	arity := len(args)
	if qid != nil {
		p.printQid(qid, arity)
	}
	for _, arg := range args {
		p.write(" ")
		p.printArgument(arg)
	}
}

func (p *TypePrinter) printQid(qid *ast.Node, arity int) {
	segments := qid.ChildrenOfKind(ast.KindUpperCaseIdentifier)
	if len(segments) == 0 {
		p.write(p.resolveDotted(qid.Text(p.src), arity))
		return
	}
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.Text(p.src)
	}
	last := len(parts) - 1
	p.write(p.resolve(strings.Join(parts[:last], "."), parts[last], arity))
}

func (p *TypePrinter) printRecord(n *ast.Node) {
	base := n.ChildOfKind(ast.KindRecordBaseIdentifier)
	fields := n.ChildrenOfKind(ast.KindFieldType)
	if base == nil && len(fields) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	if base != nil {
		p.write(base.Text(p.src))
		p.write(" | ")
	}
	for i, f := range fields {
		if i > 0 {
			p.write(", ")
		}
		p.printField(f)
	}
	p.write(" }")
}

func (p *TypePrinter) printField(f *ast.Node) {
	var typ *ast.Node
	for _, c := range f.NamedChildren() {
		switch c.Kind {
		case ast.KindLowerCaseIdentifier:
			p.write(c.Text(p.src))
		default:
			typ = c
		}
	}
	p.write(" : ")
	if typ != nil {
		p.printType(typ, false)
	}
}

func (p *TypePrinter) printTuple(n *ast.Node) {
	elems := n.NamedChildren()
	if len(elems) == 0 || (len(elems) == 1 && elems[0].Kind == ast.KindUnitExpr) {
		p.write("()")
		return
	}
	p.write("( ")
	for i, e := range elems {
		if i > 0 {
			p.write(", ")
		}
		p.printType(e, false)
	}
	p.write(" )")
}

// printGeneric copies leaves and recurses into anything else, separating
// the non-empty parts with single spaces.
func (p *TypePrinter) printGeneric(n *ast.Node) {
	if n.IsLeaf() {
		p.write(n.Text(p.src))
		return
	}
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		sub := &TypePrinter{src: p.src, resolver: p.resolver}
		sub.printType(c, false)
		if s := sub.buf.String(); s != "" {
			parts = append(parts, s)
		}
	}
	p.write(strings.Join(parts, " "))
}

func (p *TypePrinter) resolve(qualifier, name string, arity int) string {
	if p.resolver == nil {
		if qualifier == "" {
			return name
		}
		return qualifier + "." + name
	}
	return p.resolver.Qualify(qualifier, name, arity)
}

func (p *TypePrinter) resolveDotted(text string, arity int) string {
	i := strings.LastIndexByte(text, '.')
	if i < 0 {
		return p.resolve("", text, arity)
	}
	return p.resolve(text[:i], text[i+1:], arity)
}
