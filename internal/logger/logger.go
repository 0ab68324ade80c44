// Package logger holds the process-wide diagnostic logger.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It discards everything until Initialize
	// is called.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON encoding.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Options configures Initialize.
type Options struct {
	JSON bool
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Output receives log entries; defaults to stderr so that documentation
	// on stdout stays clean.
	Output zapcore.WriteSyncer
}

// Initialize builds the global logger.
func Initialize(opts Options) error {
	level := zap.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return errors.Wrapf(err, "log level %q", opts.Level)
		}
	}

	out := opts.Output
	colour := false
	if out == nil {
		out = zapcore.Lock(os.Stderr)
		colour = isTerminal(os.Stderr)
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		if colour {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	JSONOutput = opts.JSON
	Logger = zap.New(zapcore.NewCore(encoder, out, level)).Sugar()
	return nil
}

// L returns the structured form of the global logger.
func L() *zap.Logger {
	return Logger.Desugar()
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
