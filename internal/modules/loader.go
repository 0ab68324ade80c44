package modules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/txtar"

	"github.com/dsimunic/elm-wrap-sub004/internal/utils"
)

// ErrModuleNotFound is returned by a Locator that has no source for a module.
var ErrModuleNotFound = errors.New("module not found")

// Locator maps a module name to its source text.
type Locator interface {
	Locate(module string) (path string, src []byte, err error)
}

// DirLocator finds modules under source roots. Package roots are unpacked
// package directories whose modules live in their src/ subdirectory.
type DirLocator struct {
	Roots        []string
	PackageRoots []string
}

func NewDirLocator(roots, packageRoots []string) *DirLocator {
	return &DirLocator{Roots: roots, PackageRoots: packageRoots}
}

func (l *DirLocator) Locate(module string) (string, []byte, error) {
	if !utils.IsModuleName(module) {
		return "", nil, errors.Wrapf(ErrModuleNotFound, "invalid module name %q", module)
	}
	candidates := make([]string, 0, len(l.Roots)+len(l.PackageRoots))
	for _, root := range l.Roots {
		candidates = append(candidates, utils.ModuleToFilePath(root, module))
	}
	for _, root := range l.PackageRoots {
		candidates = append(candidates, utils.ModuleToFilePath(filepath.Join(root, "src"), module))
	}

	for _, path := range candidates {
		src, err := os.ReadFile(path)
		if err == nil {
			return path, src, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return path, nil, errors.Wrapf(err, "reading %s", path)
		}
	}
	return "", nil, errors.Wrapf(ErrModuleNotFound, "%s", module)
}

// Modules lists every module under the source roots (not the package
// roots), sorted by path.
func (l *DirLocator) Modules() ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	for _, root := range l.Roots {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if name := utils.PathToModule(rel); name != "" && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			return nil
		})
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "scanning %s", root)
		}
	}
	return names, nil
}

// TxtarLocator serves modules from a txtar archive. A file named
// "Json/Decode.elm" or "src/Json/Decode.elm" provides module Json.Decode.
type TxtarLocator struct {
	files map[string]txtar.File
	order []string
}

func NewTxtarLocator(archive *txtar.Archive) *TxtarLocator {
	l := &TxtarLocator{files: make(map[string]txtar.File)}
	for _, f := range archive.Files {
		rel := strings.TrimPrefix(f.Name, "src/")
		name := utils.PathToModule(rel)
		if name == "" {
			continue
		}
		if _, dup := l.files[name]; !dup {
			l.order = append(l.order, name)
		}
		l.files[name] = f
	}
	return l
}

// ParseTxtarLocator parses archive bytes into a TxtarLocator.
func ParseTxtarLocator(data []byte) *TxtarLocator {
	return NewTxtarLocator(txtar.Parse(data))
}

func (l *TxtarLocator) Locate(module string) (string, []byte, error) {
	f, ok := l.files[module]
	if !ok {
		return "", nil, errors.Wrapf(ErrModuleNotFound, "%s", module)
	}
	return f.Name, f.Data, nil
}

// Modules lists the archive's modules in archive order.
func (l *TxtarLocator) Modules() []string {
	return append([]string(nil), l.order...)
}

// MultiLocator tries each locator in turn.
type MultiLocator []Locator

func (m MultiLocator) Locate(module string) (string, []byte, error) {
	for _, l := range m {
		path, src, err := l.Locate(module)
		if err == nil {
			return path, src, nil
		}
		if !errors.Is(err, ErrModuleNotFound) {
			return path, nil, err
		}
	}
	return "", nil, errors.Wrapf(ErrModuleNotFound, "%s", module)
}
