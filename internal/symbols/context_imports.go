package symbols

import (
	"go.uber.org/zap"

	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/config"
	"github.com/dsimunic/elm-wrap-sub004/internal/logger"
)

// seedImplicit registers the compiler's default imports.
func (c *Context) seedImplicit() {
	for _, imp := range config.ImplicitImports {
		c.addImportEntry(imp.TypeName, imp.Module)
	}
	for _, m := range config.ImplicitModules {
		c.direct[m] = true
	}
	for _, a := range config.ImplicitAliases {
		c.addAlias(a.Alias, a.Module)
	}
}

func (c *Context) addImport(imp *ast.Import) {
	if imp.Alias == "" {
		c.direct[imp.Module] = true
	} else {
		c.addAlias(imp.Alias, imp.Module)
		// `import Foo as Foo` supersedes a plain `import Foo`. An alias
		// spelled like a different module leaves that module direct.
		if imp.Alias == imp.Module {
			delete(c.direct, imp.Module)
		}
	}

	if imp.Exposing == nil {
		return
	}
	if imp.Exposing.All {
		rec := c.exports.Exports(imp.Module)
		if !rec.Parsed {
			c.log.Debug("exposing (..) from unavailable module",
				zap.String(logger.FieldModule, c.module),
				zap.String("import", imp.Module))
			return
		}
		for _, name := range rec.Types {
			c.addImportEntry(name, imp.Module)
		}
		return
	}
	for _, name := range imp.Exposing.TypeNames() {
		c.addImportEntry(name, imp.Module)
	}
}

// addImportEntry appends an entry. An identical earlier entry is dropped
// so the list never holds duplicates and the newest entry stays last.
func (c *Context) addImportEntry(typeName, module string) {
	for i, e := range c.imports {
		if e.TypeName == typeName && e.Module == module {
			c.imports = append(c.imports[:i], c.imports[i+1:]...)
			break
		}
	}
	c.imports = append(c.imports, ImportEntry{TypeName: typeName, Module: module})
}

// addAlias registers module as a candidate for alias. Registering the same
// pair twice is a no-op.
func (c *Context) addAlias(alias, module string) {
	i, ok := c.aliasIndex[alias]
	if !ok {
		c.aliasIndex[alias] = len(c.aliases)
		c.aliases = append(c.aliases, AliasEntry{Alias: alias, Modules: []string{module}})
		return
	}
	for _, m := range c.aliases[i].Modules {
		if m == module {
			return
		}
	}
	c.aliases[i].Modules = append(c.aliases[i].Modules, module)
}
