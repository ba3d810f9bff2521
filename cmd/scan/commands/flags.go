package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

type flagKind int

const (
	kindString flagKind = iota
	kindBool
	kindArray
	kindSlice
)

type optionFlag struct {
	name  string
	kind  flagKind
	usage string
}

// optionFlags are shared by every command that resolves options.
// A flag's option name is its name with dashes replaced by underscores.
var optionFlags = []optionFlag{
	{"workspace", kindString, "Path to the .xcworkspace"},
	{"project", kindString, "Path to the .xcodeproj"},
	{"scheme", kindString, "Scheme to test"},
	{"sdk", kindString, "SDK to build against"},
	{"destination", kindArray, "Destination to test on (repeatable)"},
	{"derived-data-path", kindString, "Custom DerivedData directory"},
	{"result-bundle", kindBool, "Write a result bundle into the output directory"},
	{"output-directory", kindString, "Directory for reports and the result bundle"},
	{"code-coverage", kindBool, "Enable code coverage"},
	{"address-sanitizer", kindBool, "Enable the address sanitizer"},
	{"thread-sanitizer", kindBool, "Enable the thread sanitizer"},
	{"xcconfig", kindString, "Path to an .xcconfig file"},
	{"xctestrun", kindString, "Path to an .xctestrun file"},
	{"xcargs", kindString, "Extra arguments passed to xcodebuild verbatim"},
	{"only-testing", kindSlice, "Only run these test identifiers"},
	{"skip-testing", kindSlice, "Skip these test identifiers"},
	{"clean", kindBool, "Clean before building"},
	{"build-for-testing", kindBool, "Only build for testing"},
	{"test-without-building", kindBool, "Test an existing build"},
	{"skip-build", kindBool, "Run test without a separate build action"},
	{"output-style", kindString, "Output style: standard, basic, rspec or raw"},
	{"formatter", kindString, "Custom xcpretty formatter"},
	{"buildlog-path", kindString, "Directory for the raw xcodebuild log"},
}

func addOptionFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	for _, f := range optionFlags {
		switch f.kind {
		case kindString:
			flags.String(f.name, "", f.usage)
		case kindBool:
			flags.Bool(f.name, false, f.usage)
		case kindArray:
			flags.StringArray(f.name, nil, f.usage)
		case kindSlice:
			flags.StringSlice(f.name, nil, f.usage)
		}
	}
}

// overridesFrom collects the flags the user actually set, so unset
// tri-state options keep their configured value.
func overridesFrom(cmd *cobra.Command) (map[string]any, error) {
	flags := cmd.Flags()
	overrides := map[string]any{}

	for _, f := range optionFlags {
		if !flags.Changed(f.name) {
			continue
		}

		var (
			v   any
			err error
		)
		switch f.kind {
		case kindString:
			v, err = flags.GetString(f.name)
		case kindBool:
			v, err = flags.GetBool(f.name)
		case kindArray:
			v, err = flags.GetStringArray(f.name)
		case kindSlice:
			v, err = flags.GetStringSlice(f.name)
		}
		if err != nil {
			return nil, err
		}
		overrides[optionKey(f.name)] = v
	}

	return overrides, nil
}

func optionKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}
