// Package detector provides execution environment detection for the command generator.
package detector

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/scan/internal/core/ports"
)

const (
	// TravisEnv marks a Travis CI build.
	TravisEnv = "TRAVIS"
	// DisableColorsEnv turns coloured formatter output off.
	DisableColorsEnv = "SCAN_DISABLE_COLORS"
	// NoColorEnv is the cross-tool convention for turning colours off.
	NoColorEnv = "NO_COLOR"
)

var _ ports.Environment = (*Environment)(nil)

// LookupFunc retrieves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Environment implements ports.Environment.
type Environment struct {
	lookup  LookupFunc
	noColor func() bool
}

// New creates an Environment reading the process environment.
func New() *Environment {
	return &Environment{lookup: os.LookupEnv, noColor: termenv.EnvNoColor}
}

// NewWithLookup creates an Environment backed by the given lookup only.
func NewWithLookup(lookup LookupFunc) *Environment {
	return &Environment{lookup: lookup, noColor: func() bool { return false }}
}

// CI reports whether the build runs on Travis CI.
func (e *Environment) CI() bool {
	return e.truthy(TravisEnv)
}

// ColorsDisabled reports whether coloured output has been turned off.
func (e *Environment) ColorsDisabled() bool {
	if e.truthy(DisableColorsEnv) {
		return true
	}
	if _, ok := e.lookup(NoColorEnv); ok {
		return true
	}
	return e.noColor()
}

// truthy reports whether key is set to anything but an explicit "off" value.
func (e *Environment) truthy(key string) bool {
	v, ok := e.lookup(key)
	if !ok {
		return false
	}
	return Truthy(v)
}

// Truthy interprets an environment value: everything except no, false, off and 0 is true.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "no", "false", "off", "0":
		return false
	default:
		return true
	}
}
