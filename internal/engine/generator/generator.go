// Package generator assembles the xcodebuild test pipeline from resolved options.
package generator

import (
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/scan/internal/core/domain"
	"go.trai.ch/scan/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	pipefailPrefix  = "set -o pipefail &&"
	invocation      = "env NSUnbufferedIO=YES xcodebuild"
	formatterBinary = "xcpretty"
	travisFormatter = "xcpretty-travis-formatter"
)

// Action verbs understood by xcodebuild.
const (
	ActionClean               = "clean"
	ActionBuild               = "build"
	ActionTest                = "test"
	ActionBuildForTesting     = "build-for-testing"
	ActionTestWithoutBuilding = "test-without-building"
)

// Generator builds the shell pipeline for one invocation.
type Generator struct {
	options *domain.Options
	project *domain.Project
	cache   *Cache
	env     ports.Environment
	fs      ports.FileSystem
	clock   clockwork.Clock
	logger  ports.Logger
}

// New creates a Generator. A nil cache is replaced by a fresh one.
func New(
	opts *domain.Options,
	project *domain.Project,
	cache *Cache,
	env ports.Environment,
	fsys ports.FileSystem,
	clock clockwork.Clock,
	logger ports.Logger,
) *Generator {
	if cache == nil {
		cache = NewCache()
	}
	if project == nil {
		project = &domain.Project{}
	}
	return &Generator{
		options: opts,
		project: project,
		cache:   cache,
		env:     env,
		fs:      fsys,
		clock:   clock,
		logger:  logger,
	}
}

// Generate returns the full pipeline as ordered tokens:
// prefix, invocation, options, actions, suffix and pipe.
func (g *Generator) Generate() ([]string, error) {
	options, err := g.Options()
	if err != nil {
		return nil, err
	}

	pipe, err := g.Pipe()
	if err != nil {
		return nil, err
	}

	actions := g.Actions()
	suffix := g.Suffix()

	parts := g.Prefix()
	parts = append(parts, invocation)
	parts = append(parts, options...)
	parts = append(parts, actions...)
	parts = append(parts, suffix...)
	parts = append(parts, pipe...)
	return parts, nil
}

// Prefix returns the shell-safety preamble.
func (g *Generator) Prefix() []string {
	return []string{pipefailPrefix}
}

// ProjectPathArray returns the workspace/project/scheme tokens.
func (g *Generator) ProjectPathArray() ([]string, error) {
	if g.project.Empty() {
		return nil, domain.ErrNoProject
	}
	return g.project.Parameters, nil
}

// Options translates the configuration into xcodebuild flags, in a fixed order.
//
//nolint:cyclop // one branch per option
func (g *Generator) Options() ([]string, error) {
	o := g.options
	var flags []string

	if o.XCTestRun == "" {
		params, err := g.ProjectPathArray()
		if err != nil {
			return nil, err
		}
		flags = append(flags, params...)
	}

	if o.SDK != "" {
		f, err := domain.Flag("-sdk", o.SDK)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}

	destination, err := g.Destination()
	if err != nil {
		return nil, err
	}
	// No destination configured means no token, not an empty one.
	if destination != "" {
		flags = append(flags, destination)
	}

	if o.DerivedDataPath != "" {
		f, err := domain.Flag("-derivedDataPath", o.DerivedDataPath)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}

	if o.ResultBundle {
		path, err := g.ResultBundlePath()
		if err != nil {
			return nil, err
		}
		f, err := domain.Flag("-resultBundlePath", path)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}

	flags = appendTristate(flags, "-enableCodeCoverage", o.CodeCoverage)
	flags = appendTristate(flags, "-enableAddressSanitizer", o.AddressSanitizer)
	flags = appendTristate(flags, "-enableThreadSanitizer", o.ThreadSanitizer)

	if o.XCConfig != "" {
		f, err := domain.Flag("-xcconfig", o.XCConfig)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}

	if o.XCTestRun != "" {
		f, err := domain.Flag("-xctestrun", o.XCTestRun)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}

	if o.XCArgs != "" {
		flags = append(flags, o.XCArgs)
	}

	flags, err = appendTestIdentifiers(flags, "-only-testing:", o.OnlyTesting)
	if err != nil {
		return nil, err
	}
	flags, err = appendTestIdentifiers(flags, "-skip-testing:", o.SkipTesting)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

// Actions returns the xcodebuild verbs: an optional clean followed by exactly one action group.
func (g *Generator) Actions() []string {
	var actions []string
	if g.options.Clean {
		actions = append(actions, ActionClean)
	}

	switch g.options.RunMode() {
	case domain.RunModeBuildForTesting:
		actions = append(actions, ActionBuildForTesting)
	case domain.RunModeTestWithoutBuilding:
		actions = append(actions, ActionTestWithoutBuilding)
	case domain.RunModeBuildAndTest:
		if !g.options.SkipBuild {
			actions = append(actions, ActionBuild)
		}
		actions = append(actions, ActionTest)
	}

	return actions
}

// Suffix is reserved for tokens placed after the actions. It is currently empty.
func (g *Generator) Suffix() []string {
	return []string{}
}

// Pipe tees raw output to the log file and, unless the style is raw,
// pipes it through xcpretty.
func (g *Generator) Pipe() ([]string, error) {
	logPath, err := g.LogPath()
	if err != nil {
		return nil, err
	}
	quoted, err := domain.Quote(logPath)
	if err != nil {
		return nil, err
	}

	pipe := []string{"| tee " + quoted}
	if !g.options.OutputStyle.UsesFormatter() {
		return pipe, nil
	}

	formatter := append([]string{formatterBinary}, g.formatterFlags()...)
	return append(pipe, "| "+strings.Join(formatter, " ")), nil
}

func (g *Generator) formatterFlags() []string {
	var flags []string

	switch {
	case g.options.Formatter != "":
		flags = append(flags, "-f `"+g.options.Formatter+"`")
	case g.env.CI():
		flags = append(flags, "-f `"+travisFormatter+"`")
		g.logger.Success("Automatically switched to Travis formatter")
	}

	if g.env.ColorsDisabled() {
		flags = append(flags, "--no-color")
	}

	switch g.options.OutputStyle {
	case domain.OutputStyleBasic:
		flags = append(flags, "--no-utf")
	case domain.OutputStyleRSpec:
		flags = append(flags, "--test")
	case domain.OutputStyleStandard, domain.OutputStyleRaw:
	}

	return flags
}

// LogPath returns the raw xcodebuild log file and makes sure its directory exists.
// It is recomputed on every call.
func (g *Generator) LogPath() (string, error) {
	dir, err := g.fs.ExpandPath(g.options.BuildlogPath)
	if err != nil {
		return "", err
	}
	if err := g.fs.MkdirAll(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, domain.LogFileName(g.project.AppName, g.options.Scheme)), nil
}

// Destination returns the -destination flags, joined by single spaces.
func (g *Generator) Destination() (string, error) {
	return memo(&g.cache.destination, func() (string, error) {
		parts := make([]string, 0, len(g.options.Destination))
		for _, d := range g.options.Destination {
			f, err := domain.Flag("-destination", d)
			if err != nil {
				return "", err
			}
			parts = append(parts, f)
		}
		return strings.Join(parts, " "), nil
	})
}

// BuildPath returns today's archive directory, creating it on first use.
func (g *Generator) BuildPath() (string, error) {
	return memo(&g.cache.buildPath, func() (string, error) {
		base, err := g.fs.ExpandPath(domain.ArchivesPath)
		if err != nil {
			return "", err
		}
		path := filepath.Join(base, g.clock.Now().Format(domain.ArchiveDayLayout))
		if err := g.fs.MkdirAll(path); err != nil {
			return "", err
		}
		return path, nil
	})
}

// ResultBundlePath returns <output_directory>/<scheme>.test_result.
func (g *Generator) ResultBundlePath() (string, error) {
	return memo(&g.cache.resultBundlePath, func() (string, error) {
		return domain.ResultBundleName(g.options.OutputDirectory, g.options.Scheme), nil
	})
}

func appendTristate(flags []string, name string, v *bool) []string {
	if value, ok := domain.YesNo(v); ok {
		return append(flags, name+" "+value)
	}
	return flags
}

func appendTestIdentifiers(flags []string, prefix string, ids []string) ([]string, error) {
	for _, id := range ids {
		word, err := domain.QuoteWord(id)
		if err != nil {
			return nil, zerr.With(err, "flag", strings.TrimSuffix(prefix, ":"))
		}
		flags = append(flags, prefix+word)
	}
	return flags, nil
}
