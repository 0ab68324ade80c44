package modules

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
)

// UnknownArity marks an exported name whose parameter count could not be
// determined.
const UnknownArity = -1

// ExportRecord lists the type names a module makes visible to importers.
// Types and Arities are parallel slices in exposing order. Parsed is false
// when the module could not be located or parsed; such a record exports
// nothing.
type ExportRecord struct {
	Module  string
	Types   []string
	Arities []int
	Parsed  bool
}

// Arity returns the arity recorded for name and whether name is exported.
func (r ExportRecord) Arity(name string) (int, bool) {
	for i, t := range r.Types {
		if t == name {
			return r.Arities[i], true
		}
	}
	return 0, false
}

// Exports reports whether the module exports a type called name.
func (r ExportRecord) Exports(name string) bool {
	_, ok := r.Arity(name)
	return ok
}

// ExportsWithArity reports whether name is exported with the given arity.
// An unknown arity on either side matches.
func (r ExportRecord) ExportsWithArity(name string, arity int) bool {
	a, ok := r.Arity(name)
	if !ok {
		return false
	}
	return arity < 0 || a < 0 || a == arity
}

// ExportSource answers export queries by module name. Implementations
// never fail: an unknown module yields a record with Parsed == false.
type ExportSource interface {
	Exports(module string) ExportRecord
}

// Module is a located and parsed source file.
type Module struct {
	Name        string
	Path        string
	Source      string
	Fingerprint string
	File        *ast.File
}

// Fingerprint returns the hex SHA-256 of a module's source.
func Fingerprint(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}
