package pipeline

import (
	"github.com/dsimunic/elm-wrap-sub004/internal/ast"
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one source file through the stages.
type PipelineContext struct {
	FilePath    string
	SourceCode  string
	TokenStream []token.Token
	AstRoot     *ast.File
	Errors      []*diagnostics.DiagnosticError
}

// HasErrors reports whether any stage recorded a diagnostic.
func (c *PipelineContext) HasErrors() bool {
	return len(c.Errors) > 0
}
