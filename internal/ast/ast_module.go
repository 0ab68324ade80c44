package ast

// File is a parsed module: the syntax tree plus a summary of the top-level
// declarations that documentation generation needs.
type File struct {
	Path   string
	Source string
	Root   *Node

	Module      *ModuleDeclaration
	Imports     []*Import
	Types       []*TypeDeclaration
	Annotations []*Annotation
}

// ModuleName returns the declared module name, or "Main" for files without
// a module header (the compiler's default).
func (f *File) ModuleName() string {
	if f == nil || f.Module == nil || f.Module.Name == "" {
		return "Main"
	}
	return f.Module.Name
}

// LocalTypeNames returns the names of every type and type alias declared in
// the file, in declaration order.
func (f *File) LocalTypeNames() []string {
	names := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		names = append(names, t.Name)
	}
	return names
}

// ModuleDeclaration is `[port|effect] module A.B exposing (...)`.
type ModuleDeclaration struct {
	Name     string
	Port     bool
	Effect   bool
	Exposing *Exposing
	Node     *Node
}

// ExposedKind distinguishes entries of an exposing list.
type ExposedKind int

const (
	ExposedValue ExposedKind = iota
	ExposedType
	ExposedOperator
)

// ExposedItem is one entry of an exposing list. Open is set for `Type(..)`.
type ExposedItem struct {
	Name string
	Kind ExposedKind
	Open bool
}

// Exposing is an exposing list. All is set for `exposing (..)`.
type Exposing struct {
	All   bool
	Items []ExposedItem
}

// Exposes reports whether name is visible through the list.
func (e *Exposing) Exposes(name string) bool {
	if e == nil {
		return false
	}
	if e.All {
		return true
	}
	for _, it := range e.Items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// IsOpen reports whether a type's constructors are exposed (`Type(..)` or `..`).
func (e *Exposing) IsOpen(name string) bool {
	if e == nil {
		return false
	}
	if e.All {
		return true
	}
	for _, it := range e.Items {
		if it.Name == name && it.Kind == ExposedType {
			return it.Open
		}
	}
	return false
}

// TypeNames returns the upper-case names listed explicitly, in order.
func (e *Exposing) TypeNames() []string {
	if e == nil {
		return nil
	}
	var out []string
	for _, it := range e.Items {
		if it.Kind == ExposedType {
			out = append(out, it.Name)
		}
	}
	return out
}

// Import is `import A.B [as C] [exposing (...)]`.
type Import struct {
	Module   string
	Alias    string
	Exposing *Exposing
	Node     *Node
}

// TypeDeclaration is either `type alias N a = T` or `type N a = C T | D`.
type TypeDeclaration struct {
	Name     string
	Params   []string
	IsAlias  bool
	Body     *Node // type_expression, aliases only
	Variants []*UnionVariant
	Node     *Node
}

// UnionVariant is one constructor of a custom type. Node is the
// union_variant node; its children after the constructor name are the
// argument operands, with parenthesis tokens kept as anonymous children.
type UnionVariant struct {
	Name  string
	Arity int
	Node  *Node
}

// Annotation is a top-level `name : Type`.
type Annotation struct {
	Name string
	Type *Node // type_expression
	Node *Node
}
