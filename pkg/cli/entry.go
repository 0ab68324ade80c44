// Package cli implements the elmdoc command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/dsimunic/elm-wrap-sub004/internal/config"
	"github.com/dsimunic/elm-wrap-sub004/internal/docs"
	"github.com/dsimunic/elm-wrap-sub004/internal/logger"
	"github.com/dsimunic/elm-wrap-sub004/internal/modules"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Run executes elmdoc with args (without the program name) and returns the
// process exit code. Documentation goes to stdout, logs and diagnostics to
// stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	opts, err := ParseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "elmdoc: %v\n", err)
		return exitUsage
	}
	if opts.ShowVersion {
		fmt.Fprintln(stdout, "elmdoc "+config.Version)
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		printError(stderr, err)
		return exitError
	}

	logOpts := logger.Options{JSON: cfg.Log.JSON || opts.JSONLog, Level: cfg.Log.Level}
	if opts.Verbose {
		logOpts.Level = "debug"
	}
	if f, ok := stderr.(*os.File); !ok || f != os.Stderr {
		logOpts.Output = zapcore.AddSync(stderr)
	}
	if err := logger.Initialize(logOpts); err != nil {
		printError(stderr, err)
		return exitError
	}
	defer logger.Cleanup()

	log := logger.L().With(zap.String(logger.FieldRunID, uuid.NewString()))

	code, err := document(cfg, opts, log, stdout, stderr)
	if err != nil {
		log.Error("elmdoc failed", zap.Error(err))
		printError(stderr, err)
		return exitError
	}
	return code
}

func loadConfig(opts *Options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadConfig(opts.ConfigPath)
	} else {
		wd, werr := os.Getwd()
		if werr != nil {
			return nil, errors.Wrap(werr, "resolving working directory")
		}
		cfg, err = config.Load(wd)
	}
	if err != nil {
		return nil, err
	}

	// Paths given on the command line are taken as they are, relative to
	// the working directory.
	if len(opts.SourceDirs) > 0 {
		cfg.SourceDirectories = absAll(opts.SourceDirs)
	}
	if len(opts.PackageDirs) > 0 {
		cfg.PackageDirectories = absAll(opts.PackageDirs)
	}
	if opts.IndexPath != "" {
		cfg.Index = absPath(opts.IndexPath)
	}
	return cfg, nil
}

func document(cfg *config.Config, opts *Options, log *zap.Logger, stdout, stderr io.Writer) (int, error) {
	locator := modules.NewDirLocator(cfg.SourceRoots(), cfg.PackageRoots())

	cacheOpts := []modules.CacheOption{modules.WithLogger(log)}
	if path := cfg.IndexPath(); path != "" {
		ix, err := modules.OpenIndex(path)
		if err != nil {
			return exitError, err
		}
		defer ix.Close()
		cacheOpts = append(cacheOpts, modules.WithIndex(ix))
	}
	cache := modules.NewCache(locator, cacheOpts...)
	gen := docs.NewGenerator(locator, cache, docs.WithRaw(opts.Raw), docs.WithLogger(log))

	targets := opts.Targets
	if len(targets) == 0 {
		all, err := locator.Modules()
		if err != nil {
			return exitError, err
		}
		targets = all
	}
	log.Info("documenting modules",
		zap.Int(logger.FieldCount, len(targets)),
		zap.Strings("roots", cfg.SourceRoots()))

	results := make([]*docs.Module, len(targets))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			m, err := documentTarget(gen, target)
			if err != nil {
				return err
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return exitError, err
	}

	code := exitOK
	for i, m := range results {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := m.WriteText(stdout); err != nil {
			return exitError, errors.Wrap(err, "writing output")
		}
		for _, d := range m.Diagnostics {
			fmt.Fprintln(stderr, d.Error())
			code = exitError
		}
	}
	log.Debug("export cache", zap.Int(logger.FieldCount, cache.Len()))
	return code, nil
}

// documentTarget accepts either a module name or a path to a source file.
func documentTarget(gen *docs.Generator, target string) (*docs.Module, error) {
	if !config.HasSourceExt(target) {
		return gen.Document(target)
	}
	src, err := os.ReadFile(target)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", target)
	}
	return gen.DocumentSource(target, string(src)), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "elmdoc: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
