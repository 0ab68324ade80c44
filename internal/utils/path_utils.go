package utils

import (
	"path"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dsimunic/elm-wrap-sub004/internal/config"
)

// ModuleToPath maps a module name to its slash-separated source path
// relative to a source root: "Json.Decode" -> "Json/Decode.elm".
func ModuleToPath(module string) string {
	return strings.ReplaceAll(module, ".", "/") + config.SourceFileExt
}

// ModuleToFilePath is ModuleToPath with OS separators, joined to root.
func ModuleToFilePath(root, module string) string {
	return filepath.Join(root, filepath.FromSlash(ModuleToPath(module)))
}

// PathToModule derives a module name from a source path relative to a
// source root. It returns "" when the path is not a module file.
func PathToModule(rel string) string {
	rel = filepath.ToSlash(rel)
	if !config.HasSourceExt(rel) {
		return ""
	}
	name := strings.ReplaceAll(config.TrimSourceExt(path.Clean(rel)), "/", ".")
	if !IsModuleName(name) {
		return ""
	}
	return name
}

// IsModuleName reports whether s is a dotted sequence of capitalised
// identifiers such as "Platform.Cmd".
func IsModuleName(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		r, size := utf8.DecodeRuneInString(seg)
		if size == 0 || !unicode.IsUpper(r) {
			return false
		}
		for _, c := range seg[size:] {
			if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
				return false
			}
		}
	}
	return true
}

// SplitQualified splits "Json.Decode.Value" into ("Json.Decode", "Value").
// An unqualified name returns an empty qualifier.
func SplitQualified(name string) (qualifier, base string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}
