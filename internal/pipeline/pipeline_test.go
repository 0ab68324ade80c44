package pipeline_test

import (
	"testing"

	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/pipeline"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

func TestRunContinuesPastDiagnostics(t *testing.T) {
	var order []string
	failing := pipeline.ProcessorFunc(func(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
		order = append(order, "lex")
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(diagnostics.ErrL001, token.Token{Line: 1, Column: 3}, "`"))
		return ctx
	})
	next := pipeline.ProcessorFunc(func(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
		order = append(order, "parse")
		return ctx
	})

	ctx := pipeline.New(failing, next).Run(&pipeline.PipelineContext{FilePath: "Main.elm"})

	if len(order) != 2 || order[1] != "parse" {
		t.Fatalf("stages run = %v, want [lex parse]", order)
	}
	if !ctx.HasErrors() {
		t.Fatal("expected the lexer diagnostic to be kept")
	}
	if ctx.Errors[0].File != "Main.elm" {
		t.Errorf("diagnostic file = %q, want Main.elm", ctx.Errors[0].File)
	}
}

func TestRunKeepsExplicitFile(t *testing.T) {
	stage := pipeline.ProcessorFunc(func(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
		err := diagnostics.NewError(diagnostics.ErrP000, token.Token{}, "boom")
		err.File = "Other.elm"
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	})
	ctx := pipeline.New(stage).Run(&pipeline.PipelineContext{FilePath: "Main.elm"})
	if got := ctx.Errors[0].File; got != "Other.elm" {
		t.Errorf("diagnostic file = %q, want Other.elm", got)
	}
}
