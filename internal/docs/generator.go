package docs

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/config"
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/logger"
	"github.com/dsimunic/elm-wrap-sub004/internal/modules"
	"github.com/dsimunic/elm-wrap-sub004/internal/parser"
	"github.com/dsimunic/elm-wrap-sub004/internal/prettyprinter"
	"github.com/dsimunic/elm-wrap-sub004/internal/symbols"
)

// Generator documents modules against a shared export source. It holds no
// per-module state and may be used from several goroutines when its
// export source may.
type Generator struct {
	locator modules.Locator
	exports modules.ExportSource
	raw     bool
	log     *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRaw disables qualification: types are canonicalized but names stay
// as written.
func WithRaw(raw bool) Option {
	return func(g *Generator) { g.raw = raw }
}

// WithLogger overrides the global logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

func NewGenerator(locator modules.Locator, exports modules.ExportSource, opts ...Option) *Generator {
	g := &Generator{locator: locator, exports: exports}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.L()
	}
	return g
}

// Document locates, parses and documents the named module.
func (g *Generator) Document(name string) (*Module, error) {
	if g.locator == nil {
		return nil, errors.Wrapf(modules.ErrModuleNotFound, "%s: no locator configured", name)
	}
	path, src, err := g.locator.Locate(name)
	if err != nil {
		return nil, errors.Wrapf(err, "documenting %s", name)
	}
	return g.DocumentSource(path, string(src)), nil
}

// DocumentSource documents a module given as source text.
func (g *Generator) DocumentSource(path, src string) *Module {
	file, errs := parser.ParseFile(path, src)
	return g.DocumentFile(file, errs)
}

// DocumentFile documents an already parsed module.
func (g *Generator) DocumentFile(file *ast.File, errs []*diagnostics.DiagnosticError) *Module {
	if file == nil {
		return &Module{Name: config.DefaultModuleName, Diagnostics: errs}
	}
	m := &Module{Name: file.ModuleName(), Path: file.Path, Diagnostics: errs}
	log := g.log.With(zap.String(logger.FieldModule, m.Name))
	if len(errs) > 0 {
		log.Warn("module has syntax errors",
			zap.String(logger.FieldFile, file.Path),
			zap.Int(logger.FieldCount, len(errs)))
	}

	var resolver prettyprinter.NameResolver
	if !g.raw {
		resolver = symbols.NewContextFromFile(file, g.exports, symbols.WithLogger(g.log))
	}
	printer := prettyprinter.NewTypePrinter(file.Source, resolver)

	var exposing *ast.Exposing
	if file.Module != nil {
		exposing = file.Module.Exposing
	}
	exposed := func(name string) bool {
		return exposing == nil || exposing.Exposes(name)
	}
	open := func(name string) bool {
		return exposing == nil || exposing.IsOpen(name)
	}

	for _, decl := range file.Types {
		if !exposed(decl.Name) {
			continue
		}
		if decl.IsAlias {
			m.Aliases = append(m.Aliases, Alias{
				Name:   decl.Name,
				Params: decl.Params,
				Type:   printer.Print(decl.Body),
			})
			continue
		}
		u := Union{Name: decl.Name, Params: decl.Params}
		if open(decl.Name) {
			for _, v := range decl.Variants {
				u.Cases = append(u.Cases, Case{
					Name: v.Name,
					Args: printer.PrintVariantArgs(v.Node),
					Text: printer.PrintVariant(v.Node),
				})
			}
		}
		m.Unions = append(m.Unions, u)
	}

	for _, ann := range file.Annotations {
		if !exposed(ann.Name) {
			continue
		}
		m.Values = append(m.Values, Value{Name: ann.Name, Type: printer.Print(ann.Type)})
	}

	log.Debug("documented module",
		zap.Int("unions", len(m.Unions)),
		zap.Int("aliases", len(m.Aliases)),
		zap.Int("values", len(m.Values)))
	return m
}
