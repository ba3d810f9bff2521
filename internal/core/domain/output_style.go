package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// OutputStyle selects how xcodebuild output is presented.
type OutputStyle int

const (
	// OutputStyleStandard pipes output through xcpretty with its default formatter.
	OutputStyleStandard OutputStyle = iota
	// OutputStyleBasic pipes output through xcpretty without unicode glyphs.
	OutputStyleBasic
	// OutputStyleRSpec pipes output through xcpretty's test formatter.
	OutputStyleRSpec
	// OutputStyleRaw writes the raw xcodebuild output without a formatter.
	OutputStyleRaw
)

var outputStyleNames = [...]string{
	OutputStyleStandard: "standard",
	OutputStyleBasic:    "basic",
	OutputStyleRSpec:    "rspec",
	OutputStyleRaw:      "raw",
}

// ParseOutputStyle converts a configuration value into an OutputStyle.
// The empty string selects the standard style.
func ParseOutputStyle(s string) (OutputStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return OutputStyleStandard, nil
	}
	for style, styleName := range outputStyleNames {
		if styleName == name {
			return OutputStyle(style), nil
		}
	}
	return OutputStyleStandard, zerr.With(ErrInvalidOutputStyle, "output_style", s)
}

// String returns the configuration name of the style.
func (s OutputStyle) String() string {
	if s < 0 || int(s) >= len(outputStyleNames) {
		return "unknown"
	}
	return outputStyleNames[s]
}

// UsesFormatter reports whether output is piped through xcpretty.
func (s OutputStyle) UsesFormatter() bool {
	return s != OutputStyleRaw
}

// MarshalYAML renders the style by name.
func (s OutputStyle) MarshalYAML() (any, error) {
	return s.String(), nil
}
