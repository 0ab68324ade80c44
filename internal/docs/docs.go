// Package docs assembles the documented surface of an Elm module: its
// exposed custom types, type aliases and annotated values, with every type
// rendered canonically and fully qualified.
package docs

import (
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
)

// Module is the documentation of one module. Entries keep source order.
type Module struct {
	Name    string
	Path    string
	Unions  []Union
	Aliases []Alias
	Values  []Value

	// Diagnostics are the recoverable problems met while parsing.
	Diagnostics []*diagnostics.DiagnosticError
}

// Union is an exposed custom type. Cases is empty for an opaque type.
type Union struct {
	Name   string
	Params []string
	Cases  []Case
}

// Case is one constructor. Args are rendered individually; Text is the
// constructor as it reads in the declaration.
type Case struct {
	Name string
	Args []string
	Text string
}

// Alias is an exposed type alias.
type Alias struct {
	Name   string
	Params []string
	Type   string
}

// Value is an exposed value with a type annotation.
type Value struct {
	Name string
	Type string
}

// IsEmpty reports whether nothing was documented.
func (m *Module) IsEmpty() bool {
	return len(m.Unions) == 0 && len(m.Aliases) == 0 && len(m.Values) == 0
}
