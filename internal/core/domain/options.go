package domain

import (
	"path/filepath"
	"strings"
)

// Options is the resolved configuration of a single test run.
// Empty strings, nil slices and nil pointers mean the option is unset.
type Options struct {
	Workspace string `yaml:"workspace,omitempty"`
	Project   string `yaml:"project,omitempty"`
	Scheme    string `yaml:"scheme,omitempty"`

	SDK             string   `yaml:"sdk,omitempty"`
	Destination     []string `yaml:"destination,omitempty"`
	DerivedDataPath string   `yaml:"derived_data_path,omitempty"`
	ResultBundle    bool     `yaml:"result_bundle,omitempty"`
	OutputDirectory string   `yaml:"output_directory,omitempty"`

	// CodeCoverage, AddressSanitizer and ThreadSanitizer are tri-state:
	// nil leaves the xcodebuild default untouched.
	CodeCoverage     *bool `yaml:"code_coverage,omitempty"`
	AddressSanitizer *bool `yaml:"address_sanitizer,omitempty"`
	ThreadSanitizer  *bool `yaml:"thread_sanitizer,omitempty"`

	XCConfig  string `yaml:"xcconfig,omitempty"`
	XCTestRun string `yaml:"xctestrun,omitempty"`
	XCArgs    string `yaml:"xcargs,omitempty"`

	OnlyTesting []string `yaml:"only_testing,omitempty"`
	SkipTesting []string `yaml:"skip_testing,omitempty"`

	Clean               bool `yaml:"clean,omitempty"`
	BuildForTesting     bool `yaml:"build_for_testing,omitempty"`
	TestWithoutBuilding bool `yaml:"test_without_building,omitempty"`
	SkipBuild           bool `yaml:"skip_build,omitempty"`

	OutputStyle  OutputStyle `yaml:"output_style"`
	Formatter    string      `yaml:"formatter,omitempty"`
	BuildlogPath string      `yaml:"buildlog_path,omitempty"`
}

// Bool returns a pointer to v, for setting tri-state options.
func Bool(v bool) *bool {
	return &v
}

// YesNo renders a tri-state flag the way xcodebuild expects it.
// The second return value is false when the flag is unset.
func YesNo(v *bool) (string, bool) {
	if v == nil {
		return "", false
	}
	if *v {
		return "YES", true
	}
	return "NO", true
}

// Rebase anchors every relative path option at dir.
// Home-relative and absolute paths are left alone.
func (o *Options) Rebase(dir string) {
	for _, p := range []*string{
		&o.Workspace,
		&o.Project,
		&o.DerivedDataPath,
		&o.OutputDirectory,
		&o.XCConfig,
		&o.XCTestRun,
		&o.BuildlogPath,
	} {
		*p = rebase(dir, *p)
	}
}

func rebase(dir, path string) string {
	if path == "" || filepath.IsAbs(path) || path == "~" || strings.HasPrefix(path, "~/") {
		return path
	}
	return filepath.Join(dir, path)
}
