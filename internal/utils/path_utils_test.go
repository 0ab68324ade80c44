package utils

import (
	"path/filepath"
	"testing"
)

func TestModuleToPath(t *testing.T) {
	if got := ModuleToPath("Json.Decode"); got != "Json/Decode.elm" {
		t.Errorf("ModuleToPath = %q", got)
	}
	want := filepath.Join("root", "Json", "Decode.elm")
	if got := ModuleToFilePath("root", "Json.Decode"); got != want {
		t.Errorf("ModuleToFilePath = %q, want %q", got, want)
	}
}

func TestPathToModule(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Main.elm", "Main"},
		{"Json/Decode.elm", "Json.Decode"},
		{"./Parser/Advanced.elm", "Parser.Advanced"},
		{"lower/Case.elm", ""},
		{"README.md", ""},
	}
	for _, tc := range testCases {
		if got := PathToModule(tc.in); got != tc.want {
			t.Errorf("PathToModule(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitQualified(t *testing.T) {
	testCases := []struct {
		in, qualifier, base string
	}{
		{"Int", "", "Int"},
		{"Maybe.Maybe", "Maybe", "Maybe"},
		{"Json.Decode.Value", "Json.Decode", "Value"},
	}
	for _, tc := range testCases {
		q, b := SplitQualified(tc.in)
		if q != tc.qualifier || b != tc.base {
			t.Errorf("SplitQualified(%q) = (%q, %q)", tc.in, q, b)
		}
	}
}
