// Package app implements the application layer for scan.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/scan/internal/core/domain"
	"go.trai.ch/scan/internal/core/ports"
	"go.trai.ch/scan/internal/engine/generator"
	"go.trai.ch/zerr"
)

// App resolves options and turns them into an xcodebuild pipeline.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.ProjectResolver
	env          ports.Environment
	fs           ports.FileSystem
	logger       ports.Logger
	clock        clockwork.Clock
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.ProjectResolver,
	env ports.Environment,
	fsys ports.FileSystem,
	log ports.Logger,
	clock clockwork.Clock,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		env:          env,
		fs:           fsys,
		logger:       log,
		clock:        clock,
	}
}

// Request identifies one invocation.
type Request struct {
	// Dir is the project directory. Empty means the working directory.
	Dir string
	// Overrides are option values set on the command line, keyed by option name.
	Overrides map[string]any
}

// Result is a generated pipeline.
type Result struct {
	Tokens  []string
	Command string
}

// Paths are the filesystem locations derived for one invocation.
type Paths struct {
	Log          string `yaml:"log"`
	Build        string `yaml:"build"`
	ResultBundle string `yaml:"result_bundle"`
}

// Generate builds the xcodebuild pipeline for req.
func (a *App) Generate(ctx context.Context, req Request) (*Result, error) {
	gen, err := a.generator(ctx, req)
	if err != nil {
		return nil, err
	}

	tokens, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	return &Result{Tokens: tokens, Command: strings.Join(tokens, " ")}, nil
}

// Paths reports the log, archive and result bundle locations for req.
// Like the pipeline itself, it creates the log and archive directories.
func (a *App) Paths(ctx context.Context, req Request) (*Paths, error) {
	gen, err := a.generator(ctx, req)
	if err != nil {
		return nil, err
	}

	logPath, err := gen.LogPath()
	if err != nil {
		return nil, err
	}
	buildPath, err := gen.BuildPath()
	if err != nil {
		return nil, err
	}
	bundlePath, err := gen.ResultBundlePath()
	if err != nil {
		return nil, err
	}

	return &Paths{Log: logPath, Build: buildPath, ResultBundle: bundlePath}, nil
}

// Options returns the merged options for req.
func (a *App) Options(ctx context.Context, req Request) (*domain.Options, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := resolveDir(req.Dir)
	if err != nil {
		return nil, err
	}

	return a.load(dir, req)
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// SetLogOutput redirects the logger when it supports it.
func (a *App) SetLogOutput(w io.Writer) {
	if l, ok := a.logger.(interface{ SetOutput(io.Writer) }); ok {
		l.SetOutput(w)
	}
}

func (a *App) generator(ctx context.Context, req Request) (*generator.Generator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := resolveDir(req.Dir)
	if err != nil {
		return nil, err
	}

	opts, err := a.load(dir, req)
	if err != nil {
		return nil, err
	}

	project, err := a.resolver.Resolve(dir, opts)
	if err != nil {
		return nil, err
	}

	return generator.New(opts, project, generator.NewCache(), a.env, a.fs, a.clock, a.logger), nil
}

// load resolves the options. With an explicit directory, relative paths
// are anchored there so the pipeline works from any working directory.
func (a *App) load(dir string, req Request) (*domain.Options, error) {
	opts, err := a.configLoader.Load(dir, req.Overrides)
	if err != nil {
		return nil, err
	}
	if req.Dir != "" {
		opts.Rebase(dir)
	}
	return opts, nil
}

func resolveDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrPathExpandFailed.Error())
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathExpandFailed.Error()), "path", dir)
	}
	return abs, nil
}
