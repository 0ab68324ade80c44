package pipeline

// Pipeline runs one source file through its stages, normally the lexer
// then the parser.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order. Diagnostics never stop the run, so a
// file with one broken declaration still yields the rest of its tree.
// Diagnostics recorded without a file are attributed to ctx.FilePath.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}

// ProcessorFunc adapts a function to a Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext {
	return f(ctx)
}
