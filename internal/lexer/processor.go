package lexer

import (
	"github.com/dsimunic/elm-wrap-sub004/internal/diagnostics"
	"github.com/dsimunic/elm-wrap-sub004/internal/pipeline"
	"github.com/dsimunic/elm-wrap-sub004/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = Tokenize(ctx.SourceCode)
	for _, tok := range ctx.TokenStream {
		if tok.Type == token.ILLEGAL {
			err := diagnostics.NewError(diagnostics.ErrL001, tok, tok.Literal)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
		}
	}
	return ctx
}
