package symbols

import (
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dsimunic/elm-wrap-sub004/internal/logger"
)

// Tier says which rule produced a Resolution.
type Tier int

const (
	// Qualified names.
	TierVerbatim          Tier = iota // unknown qualifier, kept as written
	TierDirect                        // qualifier is a directly imported module
	TierAlias                         // single-candidate alias expanded
	TierDirectByArity                 // qualifier is both alias and real module; the module's export matched
	TierAliasByExports                // ambiguous alias, exactly one candidate exports the name
	TierAmbiguousFallback             // ambiguous alias, first candidate used

	// Bare names.
	TierTypeVariable
	TierLocal
	TierImported
	TierUnresolved
)

var tierNames = [...]string{
	TierVerbatim:          "verbatim",
	TierDirect:            "direct",
	TierAlias:             "alias",
	TierDirectByArity:     "direct-by-arity",
	TierAliasByExports:    "alias-by-exports",
	TierAmbiguousFallback: "ambiguous-fallback",
	TierTypeVariable:      "type-variable",
	TierLocal:             "local",
	TierImported:          "imported",
	TierUnresolved:        "unresolved",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return "unknown"
	}
	return tierNames[t]
}

// Resolution is the outcome of resolving one type name.
type Resolution struct {
	// Qualified is the text to print: "Module.Name", or the name as
	// written when it stays unqualified.
	Qualified string
	// Module is the module the name was attributed to, if any.
	Module string
	Name   string
	Tier   Tier
	// Candidates lists the alias candidates considered for ambiguous
	// aliases.
	Candidates []string
}

func (r Resolution) String() string {
	return r.Qualified
}

// Resolve qualifies the type name `qualifier.name` (qualifier may be empty)
// used with arity type arguments. A negative arity means unknown. Resolve
// is total: names it cannot attribute come back unchanged.
func (c *Context) Resolve(qualifier, name string, arity int) Resolution {
	if qualifier != "" {
		return c.resolveQualified(qualifier, name, arity)
	}
	return c.resolveBare(name)
}

// Qualify is Resolve reduced to the text to print.
func (c *Context) Qualify(qualifier, name string, arity int) string {
	return c.Resolve(qualifier, name, arity).Qualified
}

func (c *Context) resolveQualified(qualifier, name string, arity int) Resolution {
	if alias, ok := c.LookupAlias(qualifier); ok {
		if !alias.Ambiguous() {
			if c.direct[qualifier] && c.exports.Exports(qualifier).ExportsWithArity(name, arity) {
				return qualified(qualifier, name, TierDirectByArity)
			}
			return qualified(alias.Modules[0], name, TierAlias)
		}
		return c.resolveAmbiguous(qualifier, name, alias)
	}
	if c.direct[qualifier] {
		return qualified(qualifier, name, TierDirect)
	}
	return qualified(qualifier, name, TierVerbatim)
}

func (c *Context) resolveAmbiguous(qualifier, name string, alias AliasEntry) Resolution {
	var exporters []string
	for _, m := range alias.Modules {
		if c.exports.Exports(m).Exports(name) {
			exporters = append(exporters, m)
		}
	}

	candidates := append([]string(nil), alias.Modules...)
	if len(exporters) == 1 {
		r := qualified(exporters[0], name, TierAliasByExports)
		r.Candidates = candidates
		return r
	}

	chosen := alias.Modules[0]
	c.log.Warn("ambiguous module alias",
		zap.String(logger.FieldModule, c.module),
		zap.String(logger.FieldQualifier, qualifier),
		zap.String(logger.FieldName, name),
		zap.Strings(logger.FieldCandidates, candidates),
		zap.Int("exporters", len(exporters)),
		zap.String(logger.FieldChosen, chosen))
	r := qualified(chosen, name, TierAmbiguousFallback)
	r.Candidates = candidates
	return r
}

func (c *Context) resolveBare(name string) Resolution {
	if isLowerLeading(name) {
		return Resolution{Qualified: name, Name: name, Tier: TierTypeVariable}
	}
	if c.locals[name] {
		return qualified(c.module, name, TierLocal)
	}
	if m, ok := c.LookupImport(name); ok {
		return qualified(m, name, TierImported)
	}
	return Resolution{Qualified: name, Name: name, Tier: TierUnresolved}
}

func qualified(module, name string, tier Tier) Resolution {
	return Resolution{Qualified: module + "." + name, Module: module, Name: name, Tier: tier}
}

func isLowerLeading(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r) || r == '_'
}
