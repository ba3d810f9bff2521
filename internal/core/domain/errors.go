package domain

import "go.trai.ch/zerr"

var (
	// ErrNoProject is returned when no project or workspace can be resolved for xcodebuild.
	ErrNoProject = zerr.New("No project/workspace found")

	// ErrUnquotable is returned when a value cannot be represented as a shell word.
	ErrUnquotable = zerr.New("value cannot be quoted for the shell")

	// ErrInvalidOutputStyle is returned when an output style is not one of standard, basic, rspec or raw.
	ErrInvalidOutputStyle = zerr.New("invalid output style, expected 'standard', 'basic', 'rspec' or 'raw'")

	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigDecodeFailed is returned when merged configuration values cannot be decoded into options.
	ErrConfigDecodeFailed = zerr.New("failed to decode configuration")

	// ErrDotenvReadFailed is returned when a dotenv file exists but cannot be parsed.
	ErrDotenvReadFailed = zerr.New("failed to read dotenv file")

	// ErrProjectDiscoveryFailed is returned when searching for a workspace or project fails.
	ErrProjectDiscoveryFailed = zerr.New("failed to search for project or workspace")

	// ErrDirCreateFailed is returned when a directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create directory")

	// ErrPathExpandFailed is returned when a path cannot be made absolute.
	ErrPathExpandFailed = zerr.New("failed to expand path")
)
