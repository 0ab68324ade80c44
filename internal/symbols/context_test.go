package symbols

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dsimunic/elm-wrap-sub004/internal/modules"
	"github.com/dsimunic/elm-wrap-sub004/internal/parser"
)

// contextFor parses a module header and builds its context.
func contextFor(t *testing.T, src string, exports modules.ExportSource, opts ...Option) *Context {
	t.Helper()
	file, errs := parser.ParseFile("Test.elm", src)
	if len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	if len(opts) == 0 {
		opts = []Option{WithLogger(zap.NewNop())}
	}
	return NewContextFromFile(file, exports, opts...)
}

func parserExports() modules.StaticSource {
	return modules.NewStaticSource(
		modules.ExportRecord{Module: "Parser", Types: []string{"Parser", "DeadEnd", "Problem"}, Arities: []int{1, 0, 0}},
		modules.ExportRecord{Module: "Parser.Advanced", Types: []string{"Parser", "DeadEnd"}, Arities: []int{3, 2}},
	)
}

func TestImplicitImports(t *testing.T) {
	c := contextFor(t, "module Main exposing (..)\n", nil)
	testCases := []struct {
		qualifier, name string
		want            string
		tier            Tier
	}{
		{"", "Int", "Basics.Int", TierImported},
		{"", "Maybe", "Maybe.Maybe", TierImported},
		{"", "Result", "Result.Result", TierImported},
		{"", "Program", "Platform.Program", TierImported},
		{"", "Cmd", "Platform.Cmd.Cmd", TierImported},
		{"Cmd", "Cmd", "Platform.Cmd.Cmd", TierAlias},
		{"Sub", "Sub", "Platform.Sub.Sub", TierAlias},
		{"List", "List", "List.List", TierDirect},
		{"Platform", "Task", "Platform.Task", TierDirect},
		{"Json.Decode", "Value", "Json.Decode.Value", TierVerbatim},
		{"", "msg", "msg", TierTypeVariable},
		{"", "Html", "Html", TierUnresolved},
	}
	for _, tc := range testCases {
		r := c.Resolve(tc.qualifier, tc.name, 0)
		if r.Qualified != tc.want || r.Tier != tc.tier {
			t.Errorf("Resolve(%q, %q) = %q [%s], want %q [%s]", tc.qualifier, tc.name, r.Qualified, r.Tier, tc.want, tc.tier)
		}
		if q := c.Qualify(tc.qualifier, tc.name, 0); q != r.Qualified {
			t.Errorf("Qualify(%q, %q) = %q, Resolve gave %q", tc.qualifier, tc.name, q, r.Qualified)
		}
	}
}

func TestLastImportWins(t *testing.T) {
	c := contextFor(t, `module Main exposing (..)

import A exposing (T)
import B exposing (T)
`, nil)
	if got := c.Qualify("", "T", 0); got != "B.T" {
		t.Errorf("T = %q, want B.T", got)
	}

	c = contextFor(t, `module Main exposing (..)

import A exposing (T)
import B exposing (T)
import A exposing (T)
`, nil)
	if got := c.Qualify("", "T", 0); got != "A.T" {
		t.Errorf("T = %q, want A.T", got)
	}
}

func TestExplicitImportOverridesImplicitWithoutDuplicating(t *testing.T) {
	c := contextFor(t, `module Main exposing (..)

import Maybe exposing (Maybe(..))
import MyPrelude exposing (Int)
`, nil)
	count := 0
	for _, e := range c.Imports() {
		if e.TypeName == "Maybe" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Maybe registered %d times", count)
	}
	if got := c.Qualify("", "Int", 0); got != "MyPrelude.Int" {
		t.Errorf("Int = %q", got)
	}
}

func TestLocalTypePrecedence(t *testing.T) {
	c := contextFor(t, `module Page.Home exposing (Model)

import Other exposing (Model, Msg)

type alias Model = { count : Int }
`, nil)
	r := c.Resolve("", "Model", 0)
	if r.Qualified != "Page.Home.Model" || r.Tier != TierLocal {
		t.Errorf("Model = %q [%s]", r.Qualified, r.Tier)
	}
	if got := c.Qualify("", "Msg", 0); got != "Other.Msg" {
		t.Errorf("Msg = %q", got)
	}
}

func TestAliasRealModulePrecedenceByArity(t *testing.T) {
	c := contextFor(t, `module Main exposing (..)

import Parser
import Parser.Advanced as Parser
`, parserExports())

	r := c.Resolve("Parser", "DeadEnd", 0)
	if r.Qualified != "Parser.DeadEnd" || r.Tier != TierDirectByArity {
		t.Errorf("arity 0: %q [%s]", r.Qualified, r.Tier)
	}
	r = c.Resolve("Parser", "DeadEnd", 2)
	if r.Qualified != "Parser.Advanced.DeadEnd" || r.Tier != TierAlias {
		t.Errorf("arity 2: %q [%s]", r.Qualified, r.Tier)
	}
	// Only the alias target declares Token.
	r = c.Resolve("Parser", "Token", 1)
	if r.Qualified != "Parser.Advanced.Token" || r.Tier != TierAlias {
		t.Errorf("Token: %q [%s]", r.Qualified, r.Tier)
	}
	if !c.IsDirect("Parser") {
		t.Error("Parser should stay direct")
	}
}

func TestUnknownArityMatchesRealModule(t *testing.T) {
	exports := modules.NewStaticSource(
		modules.ExportRecord{Module: "Http", Types: []string{"Error"}, Arities: []int{modules.UnknownArity}},
	)
	c := contextFor(t, "module Main exposing (..)\n\nimport Http\nimport Http.Detailed as Http\n", exports)
	if r := c.Resolve("Http", "Error", 3); r.Tier != TierDirectByArity {
		t.Errorf("Http.Error = %q [%s]", r.Qualified, r.Tier)
	}
}

func TestAliasSupersedesSameModule(t *testing.T) {
	c := contextFor(t, "module Main exposing (..)\n\nimport Foo\nimport Foo as Foo\n", nil)
	if c.IsDirect("Foo") {
		t.Error("Foo should no longer be direct")
	}
	if r := c.Resolve("Foo", "T", 0); r.Qualified != "Foo.T" || r.Tier != TierAlias {
		t.Errorf("Foo.T = %q [%s]", r.Qualified, r.Tier)
	}
}

func TestAliasExpansion(t *testing.T) {
	c := contextFor(t, `module Main exposing (..)

import Json.Decode as D exposing (Decoder)
import Json.Decode as D
`, nil)
	a, ok := c.LookupAlias("D")
	if !ok || a.Ambiguous() || !reflect.DeepEqual(a.Modules, []string{"Json.Decode"}) {
		t.Fatalf("alias D = %+v, %v", a, ok)
	}
	if got := c.Qualify("D", "Value", 0); got != "Json.Decode.Value" {
		t.Errorf("D.Value = %q", got)
	}
	if got := c.Qualify("", "Decoder", 1); got != "Json.Decode.Decoder" {
		t.Errorf("Decoder = %q", got)
	}
	if c.IsDirect("Json.Decode") {
		t.Error("aliased import should not be direct")
	}
}

func TestAmbiguousAlias(t *testing.T) {
	exports := modules.NewStaticSource(
		modules.ExportRecord{Module: "Element", Types: []string{"Element", "Attribute", "Color"}, Arities: []int{1, 1, 0}},
		modules.ExportRecord{Module: "Element.Font", Types: []string{"Font", "Color"}, Arities: []int{0, 0}},
	)
	core, logs := observer.New(zapcore.WarnLevel)
	c := contextFor(t, `module Main exposing (..)

import Element as E
import Element.Font as E
`, exports, WithLogger(zap.New(core)))

	testCases := []struct {
		name string
		want string
		tier Tier
	}{
		{"Element", "Element.Element", TierAliasByExports},
		{"Font", "Element.Font.Font", TierAliasByExports},
		{"Color", "Element.Color", TierAmbiguousFallback},
		{"Missing", "Element.Missing", TierAmbiguousFallback},
	}
	for _, tc := range testCases {
		r := c.Resolve("E", tc.name, 0)
		if r.Qualified != tc.want || r.Tier != tc.tier {
			t.Errorf("E.%s = %q [%s], want %q [%s]", tc.name, r.Qualified, r.Tier, tc.want, tc.tier)
		}
		if !reflect.DeepEqual(r.Candidates, []string{"Element", "Element.Font"}) {
			t.Errorf("E.%s candidates = %v", tc.name, r.Candidates)
		}
	}

	warnings := logs.FilterMessage("ambiguous module alias").All()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	fields := warnings[0].ContextMap()
	if fields["qualifier"] != "E" || fields["name"] != "Color" || fields["chosen"] != "Element" {
		t.Errorf("warning fields = %v", fields)
	}
}

func TestAliasCollidingWithOtherModuleKeepsBoth(t *testing.T) {
	c := contextFor(t, "module Main exposing (..)\n\nimport Html\nimport Html.Styled as Html\n", nil)
	if !c.IsDirect("Html") {
		t.Error("Html should stay direct")
	}
	if a, ok := c.LookupAlias("Html"); !ok || a.Modules[0] != "Html.Styled" {
		t.Errorf("alias Html = %+v", a)
	}
	// Neither module is known to the export source: the alias wins.
	if got := c.Qualify("Html", "Html", 1); got != "Html.Styled.Html" {
		t.Errorf("Html.Html = %q", got)
	}
}

func TestExposeAll(t *testing.T) {
	exports := modules.NewStaticSource(
		modules.ExportRecord{Module: "Html", Types: []string{"Html", "Attribute"}, Arities: []int{1, 1}},
	)
	c := contextFor(t, `module Main exposing (..)

import Html exposing (..)
import Missing exposing (..)
`, exports)
	if got := c.Qualify("", "Attribute", 1); got != "Html.Attribute" {
		t.Errorf("Attribute = %q", got)
	}
	if r := c.Resolve("", "Thing", 0); r.Tier != TierUnresolved {
		t.Errorf("Thing = %q [%s]", r.Qualified, r.Tier)
	}
	if !c.IsDirect("Missing") {
		t.Error("Missing should still be direct")
	}
}

func TestValuesInExposingAreIgnored(t *testing.T) {
	c := contextFor(t, "module Main exposing (..)\n\nimport Parser exposing (run, (|.), Step(..))\n", nil)
	for _, e := range c.Imports() {
		if e.TypeName == "run" || e.TypeName == "|." {
			t.Errorf("value imported as type: %+v", e)
		}
	}
	if got := c.Qualify("", "Step", 2); got != "Parser.Step" {
		t.Errorf("Step = %q", got)
	}
}

func TestDefaultModuleName(t *testing.T) {
	c := NewContext("", nil, []string{"Msg"}, nil, WithLogger(zap.NewNop()))
	if c.ModuleName() != "Main" {
		t.Errorf("module = %q", c.ModuleName())
	}
	if got := c.Qualify("", "Msg", 0); got != "Main.Msg" {
		t.Errorf("Msg = %q", got)
	}
}

func TestTierString(t *testing.T) {
	if TierDirectByArity.String() != "direct-by-arity" || Tier(99).String() != "unknown" {
		t.Errorf("unexpected tier names")
	}
}
