package parser

import (
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/pipeline"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		err := diagnostics.NewError(diagnostics.ErrP000, token.Token{}, "token stream is nil")
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	ctx.AstRoot = parser.ParseProgram()

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}
