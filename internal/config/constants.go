package config

// Version is the elmdoc release. Set at build time with
// -ldflags "-X github.com/dsimunic/elm-wrap-sub004/internal/config.Version=..."
var Version = "0.3.0"

const SourceFileExt = ".elm"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".elm"}

// Config and manifest file names
const (
	ConfigFileName    = "elmdoc.yaml"
	ConfigFileNameAlt = "elmdoc.yml"
	ElmJSONFileName   = "elm.json"
)

// DefaultModuleName is what the compiler calls a file without a module header.
const DefaultModuleName = "Main"

// Built-in type names
const (
	IntTypeName     = "Int"
	FloatTypeName   = "Float"
	BoolTypeName    = "Bool"
	OrderTypeName   = "Order"
	NeverTypeName   = "Never"
	ListTypeName    = "List"
	MaybeTypeName   = "Maybe"
	ResultTypeName  = "Result"
	StringTypeName  = "String"
	CharTypeName    = "Char"
	ProgramTypeName = "Program"
	CmdTypeName     = "Cmd"
	SubTypeName     = "Sub"
)

// ImplicitImport is one type every Elm module sees unqualified.
type ImplicitImport struct {
	TypeName string
	Module   string
}

// ImplicitImports are the types brought into scope by the compiler's
// default imports, in the order they are seeded.
var ImplicitImports = []ImplicitImport{
	{IntTypeName, "Basics"},
	{FloatTypeName, "Basics"},
	{BoolTypeName, "Basics"},
	{OrderTypeName, "Basics"},
	{NeverTypeName, "Basics"},
	{ListTypeName, "List"},
	{MaybeTypeName, "Maybe"},
	{ResultTypeName, "Result"},
	{StringTypeName, "String"},
	{CharTypeName, "Char"},
	{ProgramTypeName, "Platform"},
	{CmdTypeName, "Platform.Cmd"},
	{SubTypeName, "Platform.Sub"},
}

// ImplicitModules can always be referenced by their full name.
var ImplicitModules = []string{
	"Basics",
	"List",
	"Maybe",
	"Result",
	"String",
	"Char",
	"Tuple",
	"Debug",
	"Platform",
}

// ImplicitAliases are the `import Platform.Cmd as Cmd` style default imports.
var ImplicitAliases = []struct {
	Alias  string
	Module string
}{
	{"Cmd", "Platform.Cmd"},
	{"Sub", "Platform.Sub"},
}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// TrimSourceExt removes a recognized source extension from name.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}
