package cli

import (
	"io"
	"path/filepath"

	"github.com/spf13/pflag"
)

// Options are the parsed command line arguments.
type Options struct {
	ConfigPath  string
	SourceDirs  []string
	PackageDirs []string
	IndexPath   string
	JSONLog     bool
	Verbose     bool
	Raw         bool
	ShowVersion bool

	// Targets are module names (Json.Decode) or .elm file paths. Empty
	// means every module under the source directories.
	Targets []string
}

// ParseArgs parses command line arguments into Options. Usage and parse
// errors are written to errOut.
func ParseArgs(args []string, errOut io.Writer) (*Options, error) {
	opts := &Options{}

	fs := pflag.NewFlagSet("elmdoc", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "path to elmdoc.yaml (default: search upwards from the working directory)")
	fs.StringArrayVarP(&opts.SourceDirs, "src", "s", nil, "source directory (repeatable)")
	fs.StringArrayVarP(&opts.PackageDirs, "packages", "p", nil, "unpacked package directory (repeatable)")
	fs.StringVar(&opts.IndexPath, "index", "", "SQLite export index path")
	fs.BoolVar(&opts.JSONLog, "json-log", false, "log as JSON")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	fs.BoolVar(&opts.Raw, "raw", false, "print types as written, without qualifying names")
	fs.BoolVar(&opts.ShowVersion, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.Targets = fs.Args()
	return opts, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func absAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, absPath(p))
	}
	return out
}
