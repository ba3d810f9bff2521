// Package config resolves scan options from Scanfiles, dotenv files,
// SCAN_* environment variables and command line overrides.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/scan/internal/core/domain"
	"go.trai.ch/scan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	lookup LookupFunc
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithLookup(logger, os.LookupEnv)
}

// NewLoaderWithLookup creates a Loader with a custom environment lookup.
func NewLoaderWithLookup(logger ports.Logger, lookup LookupFunc) *Loader {
	return &Loader{Logger: logger, lookup: lookup}
}

// Load merges every configuration layer for cwd. Later layers win:
// defaults, Scanfile, dotenv files, process environment, overrides.
func (l *Loader) Load(cwd string, overrides map[string]any) (*domain.Options, error) {
	merged := defaults()

	scanfile, err := l.loadScanfile(cwd)
	if err != nil {
		return nil, err
	}
	maps.Copy(merged, scanfile)

	dotenv, err := readDotenv(cwd)
	if err != nil {
		return nil, err
	}
	// Empty variables count as unset, so tri-state options stay unset.
	for _, key := range OptionKeys() {
		if v := dotenv[envKey(key)]; v != "" {
			merged[key] = v
		}
		if v, ok := l.lookup(envKey(key)); ok && v != "" {
			merged[key] = v
		}
	}

	maps.Copy(merged, overrides)

	return decode(merged)
}

// loadScanfile returns the first Scanfile found in cwd, then cwd/fastlane.
// No Scanfile is not an error.
func (l *Loader) loadScanfile(cwd string) (map[string]any, error) {
	for _, dir := range []string{cwd, filepath.Join(cwd, domain.FastlaneDirName)} {
		for _, name := range domain.ScanfileNames {
			path := filepath.Join(dir, name)
			content, err := os.ReadFile(path) // #nosec G304 -- path is built from known names
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
			}

			values, err := parseScanfile(path, content)
			if err != nil {
				return nil, zerr.With(err, "path", path)
			}
			if l.Logger != nil {
				l.Logger.Info("Using " + path)
			}
			return values, nil
		}
	}
	return nil, nil
}

func parseScanfile(path string, content []byte) (map[string]any, error) {
	values := map[string]any{}

	var err error
	if strings.HasSuffix(path, ".toml") {
		err = toml.Unmarshal(content, &values)
	} else {
		err = yaml.Unmarshal(content, &values)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if values == nil {
		values = map[string]any{}
	}

	known := OptionKeys()
	for key := range values {
		if !slices.Contains(known, key) {
			return nil, zerr.With(domain.ErrConfigParseFailed, "unknown_key", key)
		}
	}
	return values, nil
}

// readDotenv parses the dotenv files in cwd without touching the process environment.
// .env overrides .env.default.
func readDotenv(cwd string) (map[string]string, error) {
	merged := map[string]string{}
	for _, name := range slices.Backward(domain.DotenvFileNames) {
		path := filepath.Join(cwd, name)
		content, err := os.ReadFile(path) // #nosec G304 -- path is built from known names
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDotenvReadFailed.Error()), "path", path)
		}

		values, err := godotenv.Parse(bytes.NewReader(content))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDotenvReadFailed.Error()), "path", path)
		}
		maps.Copy(merged, values)
	}
	return merged, nil
}

func decode(values map[string]any) (*domain.Options, error) {
	var sf Scanfile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(commaListHook),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &sf,
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigDecodeFailed.Error())
	}
	if err := decoder.Decode(values); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigDecodeFailed.Error())
	}

	return sf.toOptions()
}

// commaListHook splits "A,B" into a commaList and drops empty items.
func commaListHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(commaList{}) {
		return data, nil
	}

	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}

func (sf *Scanfile) toOptions() (*domain.Options, error) {
	style, err := domain.ParseOutputStyle(sf.OutputStyle)
	if err != nil {
		return nil, err
	}

	return &domain.Options{
		Workspace:           sf.Workspace,
		Project:             sf.Project,
		Scheme:              sf.Scheme,
		SDK:                 sf.SDK,
		Destination:         sf.Destination,
		DerivedDataPath:     sf.DerivedDataPath,
		ResultBundle:        sf.ResultBundle,
		OutputDirectory:     sf.OutputDirectory,
		CodeCoverage:        sf.CodeCoverage,
		AddressSanitizer:    sf.AddressSanitizer,
		ThreadSanitizer:     sf.ThreadSanitizer,
		XCConfig:            sf.XCConfig,
		XCTestRun:           sf.XCTestRun,
		XCArgs:              sf.XCArgs,
		OnlyTesting:         sf.OnlyTesting,
		SkipTesting:         sf.SkipTesting,
		Clean:               sf.Clean,
		BuildForTesting:     sf.BuildForTesting,
		TestWithoutBuilding: sf.TestWithoutBuilding,
		SkipBuild:           sf.SkipBuild,
		OutputStyle:         style,
		Formatter:           sf.Formatter,
		BuildlogPath:        sf.BuildlogPath,
	}, nil
}
