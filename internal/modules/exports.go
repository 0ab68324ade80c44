package modules

import (
	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
)

// ExtractExports computes the export record of a parsed module.
//
// With `exposing (..)`, or without a module header, every declared type is
// exported in declaration order. Otherwise the exposing list's upper-case
// entries are exported in list order; an entry with no matching declaration
// in the file gets UnknownArity.
func ExtractExports(file *ast.File) ExportRecord {
	rec := ExportRecord{Module: file.ModuleName(), Parsed: true}

	declared := make(map[string]int, len(file.Types))
	for _, t := range file.Types {
		declared[t.Name] = len(t.Params)
	}

	var exposing *ast.Exposing
	if file.Module != nil {
		exposing = file.Module.Exposing
	}

	if exposing == nil || exposing.All {
		for _, t := range file.Types {
			rec.Types = append(rec.Types, t.Name)
			rec.Arities = append(rec.Arities, len(t.Params))
		}
		return rec
	}

	seen := make(map[string]bool)
	for _, name := range exposing.TypeNames() {
		if seen[name] {
			continue
		}
		seen[name] = true
		arity, ok := declared[name]
		if !ok {
			arity = UnknownArity
		}
		rec.Types = append(rec.Types, name)
		rec.Arities = append(rec.Arities, arity)
	}
	return rec
}
