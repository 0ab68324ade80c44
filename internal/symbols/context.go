package symbols

import (
	"go.uber.org/zap"

	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/config"
	"github.com/dsimunic/elm-wrap-sub004/internal/logger"
	"github.com/dsimunic/elm-wrap-sub004/internal/modules"
)

// ImportEntry records that TypeName is visible unqualified and comes from
// Module. Several entries may share a TypeName; the last one wins.
type ImportEntry struct {
	TypeName string
	Module   string
}

// AliasEntry maps an `import X as Alias` name to its candidate modules in
// registration order.
type AliasEntry struct {
	Alias   string
	Modules []string
}

// Ambiguous reports whether the alias names more than one module.
func (a AliasEntry) Ambiguous() bool {
	return len(a.Modules) >= 2
}

// Context is the qualification context of one module: which type names
// and module qualifiers its source can use, and where they point. It is
// built once by NewContext and only read afterwards, so a Context may be
// shared between goroutines.
type Context struct {
	module string

	imports    []ImportEntry
	aliases    []AliasEntry
	aliasIndex map[string]int
	locals     map[string]bool
	direct     map[string]bool

	exports modules.ExportSource
	log     *zap.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithLogger overrides the global logger for ambiguity warnings.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) { c.log = l }
}

// NewContext builds the qualification context for module. imports are in
// source order; locals are the names of the module's own type
// declarations. exports is queried for `exposing (..)` imports and for
// alias disambiguation; it is not owned by the Context.
func NewContext(module string, imports []*ast.Import, locals []string, exports modules.ExportSource, opts ...Option) *Context {
	if module == "" {
		module = config.DefaultModuleName
	}
	c := &Context{
		module:     module,
		aliasIndex: make(map[string]int),
		locals:     make(map[string]bool, len(locals)),
		direct:     make(map[string]bool),
		exports:    exports,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.L()
	}
	if c.exports == nil {
		c.exports = modules.StaticSource(nil)
	}

	for _, name := range locals {
		c.locals[name] = true
	}
	c.seedImplicit()
	for _, imp := range imports {
		if imp != nil {
			c.addImport(imp)
		}
	}
	return c
}

// NewContextFromFile builds the context for a parsed module.
func NewContextFromFile(file *ast.File, exports modules.ExportSource, opts ...Option) *Context {
	return NewContext(file.ModuleName(), file.Imports, file.LocalTypeNames(), exports, opts...)
}

// ModuleName returns the name of the module the context belongs to.
func (c *Context) ModuleName() string {
	return c.module
}

// Imports returns a copy of the import entries in registration order.
func (c *Context) Imports() []ImportEntry {
	return append([]ImportEntry(nil), c.imports...)
}

// Aliases returns a copy of the alias entries in registration order.
func (c *Context) Aliases() []AliasEntry {
	out := make([]AliasEntry, len(c.aliases))
	for i, a := range c.aliases {
		out[i] = AliasEntry{Alias: a.Alias, Modules: append([]string(nil), a.Modules...)}
	}
	return out
}

// LookupAlias returns the alias entry for name.
func (c *Context) LookupAlias(name string) (AliasEntry, bool) {
	i, ok := c.aliasIndex[name]
	if !ok {
		return AliasEntry{}, false
	}
	return c.aliases[i], true
}

// LookupImport returns the module of the last import exposing typeName.
func (c *Context) LookupImport(typeName string) (string, bool) {
	for i := len(c.imports) - 1; i >= 0; i-- {
		if c.imports[i].TypeName == typeName {
			return c.imports[i].Module, true
		}
	}
	return "", false
}

// IsDirect reports whether module can be used as a qualifier as written.
func (c *Context) IsDirect(module string) bool {
	return c.direct[module]
}

// IsLocal reports whether the module declares a type called name.
func (c *Context) IsLocal(name string) bool {
	return c.locals[name]
}
