package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsimunic/elm-wrap-sub004/internal/config"
)

const userModule = `module Api.User exposing (User, Id)


type Id
    = Id String


type alias User =
    { id : Id, name : String }
`

const mainModule = `module Main exposing (Model, init)

import Api.User as User exposing (User)


type alias Model =
    { users : List User, selected : Maybe User.Id }


init : Model
init =
    { users = [], selected = Nothing }
`

const projectConfig = `source_directories: [src]
index: .elmdoc/exports.db
log:
  level: warn
`

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"elmdoc.yaml":      projectConfig,
		"src/Main.elm":     mainModule,
		"src/Api/User.elm": userModule,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunModule(t *testing.T) {
	dir := writeProject(t)
	code, out, errOut := run("--config", filepath.Join(dir, "elmdoc.yaml"), "Main")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, errOut)
	}
	want := `module Main
type alias Model = { users : List.List Api.User.User, selected : Maybe.Maybe Api.User.Id }
init : Main.Model
`
	if out != want {
		t.Errorf("stdout =\n%s\nwant\n%s", out, want)
	}
}

func TestRunAllModules(t *testing.T) {
	dir := writeProject(t)
	cfgPath := filepath.Join(dir, "elmdoc.yaml")
	want := `module Api.User
type Id
type alias User = { id : Api.User.Id, name : String.String }

module Main
type alias Model = { users : List.List Api.User.User, selected : Maybe.Maybe Api.User.Id }
init : Main.Model
`
	// The second run is served from the export index.
	for i := 0; i < 2; i++ {
		code, out, errOut := run("--config", cfgPath)
		if code != 0 {
			t.Fatalf("run %d: exit code %d, stderr:\n%s", i, code, errOut)
		}
		if out != want {
			t.Errorf("run %d: stdout =\n%s\nwant\n%s", i, out, want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, ".elmdoc", "exports.db")); err != nil {
		t.Errorf("export index not created: %v", err)
	}
}

func TestRunRaw(t *testing.T) {
	dir := writeProject(t)
	code, out, errOut := run("--config", filepath.Join(dir, "elmdoc.yaml"), "--raw", "Main")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "type alias Model = { users : List User, selected : Maybe User.Id }") {
		t.Errorf("raw output not as written:\n%s", out)
	}
}

func TestRunSourceFile(t *testing.T) {
	dir := writeProject(t)
	bad := filepath.Join(dir, "Bad.elm")
	src := "module Bad exposing (..)\n\nbad : Int ->\nbad =\n    1\n\ngood : String\ngood =\n    \"\"\n"
	if err := os.WriteFile(bad, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := run("--config", filepath.Join(dir, "elmdoc.yaml"), bad)
	if code != 1 {
		t.Errorf("exit code %d, want 1 for a file with syntax errors", code)
	}
	if out != "module Bad\ngood : String.String\n" {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "Bad.elm") {
		t.Errorf("stderr does not mention the file:\n%s", errOut)
	}
}

func TestRunErrors(t *testing.T) {
	dir := writeProject(t)
	cfgPath := filepath.Join(dir, "elmdoc.yaml")

	if code, _, errOut := run("--config", cfgPath, "Does.Not.Exist"); code != 1 || !strings.Contains(errOut, "Does.Not.Exist") {
		t.Errorf("missing module: exit %d, stderr %q", code, errOut)
	}
	if code, _, _ := run("--no-such-flag"); code != 2 {
		t.Errorf("unknown flag: exit %d, want 2", code)
	}
	if code, _, _ := run("--config", filepath.Join(dir, "missing.yaml")); code != 1 {
		t.Errorf("missing config: exit %d, want 1", code)
	}

	badLevel := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badLevel, []byte("log:\n  level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, errOut := run("--config", badLevel)
	if code != 1 || !strings.Contains(errOut, "hint: use one of debug, info, warn, error") {
		t.Errorf("bad log level: exit %d, stderr %q", code, errOut)
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := run("--version")
	if code != 0 || out != "elmdoc "+config.Version+"\n" {
		t.Errorf("--version: exit %d, stdout %q", code, out)
	}
}

func TestParseArgs(t *testing.T) {
	var errOut bytes.Buffer
	opts, err := ParseArgs([]string{"-s", "src", "--src", "lib", "--packages", "pkgs", "--raw", "--json-log", "Json.Decode", "Main.elm"}, &errOut)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if len(opts.SourceDirs) != 2 || opts.SourceDirs[1] != "lib" {
		t.Errorf("SourceDirs = %v", opts.SourceDirs)
	}
	if len(opts.PackageDirs) != 1 || !opts.Raw || !opts.JSONLog {
		t.Errorf("unexpected options %+v", opts)
	}
	if len(opts.Targets) != 2 || opts.Targets[0] != "Json.Decode" || opts.Targets[1] != "Main.elm" {
		t.Errorf("Targets = %v", opts.Targets)
	}
}
