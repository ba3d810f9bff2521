package config

import (
	"reflect"
	"strings"

	"go.trai.ch/scan/internal/core/domain"
)

// Scanfile is the decoded form of every configuration layer.
// Keys are the snake_case option names used in Scanfiles, SCAN_* variables and overrides.
type Scanfile struct {
	Workspace string `mapstructure:"workspace"`
	Project   string `mapstructure:"project"`
	Scheme    string `mapstructure:"scheme"`

	SDK             string   `mapstructure:"sdk"`
	Destination     []string `mapstructure:"destination"`
	DerivedDataPath string   `mapstructure:"derived_data_path"`
	ResultBundle    bool     `mapstructure:"result_bundle"`
	OutputDirectory string   `mapstructure:"output_directory"`

	CodeCoverage     *bool `mapstructure:"code_coverage"`
	AddressSanitizer *bool `mapstructure:"address_sanitizer"`
	ThreadSanitizer  *bool `mapstructure:"thread_sanitizer"`

	XCConfig  string `mapstructure:"xcconfig"`
	XCTestRun string `mapstructure:"xctestrun"`
	XCArgs    string `mapstructure:"xcargs"`

	OnlyTesting commaList `mapstructure:"only_testing"`
	SkipTesting commaList `mapstructure:"skip_testing"`

	Clean               bool `mapstructure:"clean"`
	BuildForTesting     bool `mapstructure:"build_for_testing"`
	TestWithoutBuilding bool `mapstructure:"test_without_building"`
	SkipBuild           bool `mapstructure:"skip_build"`

	OutputStyle  string `mapstructure:"output_style"`
	Formatter    string `mapstructure:"formatter"`
	BuildlogPath string `mapstructure:"buildlog_path"`
}

// commaList is a list that may also be written as one comma-separated string.
// Destinations contain commas themselves, so they use a plain []string.
type commaList []string

// OptionKeys returns every recognised option name in declaration order.
func OptionKeys() []string {
	t := reflect.TypeOf(Scanfile{})
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		keys = append(keys, t.Field(i).Tag.Get("mapstructure"))
	}
	return keys
}

// envKey maps an option name to its SCAN_ environment variable.
func envKey(option string) string {
	return "SCAN_" + strings.ToUpper(option)
}

func defaults() map[string]any {
	return map[string]any{
		"output_directory": domain.DefaultOutputDirectory,
		"buildlog_path":    domain.DefaultBuildlogPath,
		"output_style":     domain.OutputStyleStandard.String(),
	}
}
