package detector_test

import (
	"testing"

	"go.trai.ch/scan/internal/adapters/detector"
)

func lookupFrom(vars map[string]string) detector.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestEnvironment_CI(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		expected bool
	}{
		{name: "unset", vars: map[string]string{}, expected: false},
		{name: "TRAVIS=true", vars: map[string]string{"TRAVIS": "true"}, expected: true},
		{name: "TRAVIS=1", vars: map[string]string{"TRAVIS": "1"}, expected: true},
		{name: "TRAVIS=yes", vars: map[string]string{"TRAVIS": "yes"}, expected: true},
		{name: "TRAVIS empty is truthy", vars: map[string]string{"TRAVIS": ""}, expected: true},
		{name: "TRAVIS=false", vars: map[string]string{"TRAVIS": "false"}, expected: false},
		{name: "TRAVIS=NO", vars: map[string]string{"TRAVIS": "NO"}, expected: false},
		{name: "TRAVIS=off", vars: map[string]string{"TRAVIS": "off"}, expected: false},
		{name: "TRAVIS=0", vars: map[string]string{"TRAVIS": "0"}, expected: false},
		{name: "generic CI is not Travis", vars: map[string]string{"CI": "true"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := detector.NewWithLookup(lookupFrom(tt.vars))
			if got := env.CI(); got != tt.expected {
				t.Errorf("CI() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEnvironment_ColorsDisabled(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		expected bool
	}{
		{name: "nothing set", vars: map[string]string{}, expected: false},
		{name: "NO_COLOR present", vars: map[string]string{"NO_COLOR": ""}, expected: true},
		{name: "NO_COLOR=1", vars: map[string]string{"NO_COLOR": "1"}, expected: true},
		{name: "SCAN_DISABLE_COLORS=true", vars: map[string]string{"SCAN_DISABLE_COLORS": "true"}, expected: true},
		{name: "SCAN_DISABLE_COLORS=false", vars: map[string]string{"SCAN_DISABLE_COLORS": "false"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := detector.NewWithLookup(lookupFrom(tt.vars))
			if got := env.ColorsDisabled(); got != tt.expected {
				t.Errorf("ColorsDisabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEnvironment_ProcessEnvironment(t *testing.T) {
	t.Setenv("TRAVIS", "true")
	t.Setenv("NO_COLOR", "1")

	env := detector.New()
	if !env.CI() {
		t.Error("expected CI() to be true with TRAVIS=true")
	}
	if !env.ColorsDisabled() {
		t.Error("expected ColorsDisabled() to be true with NO_COLOR=1")
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "anything", " On "} {
		if !detector.Truthy(v) {
			t.Errorf("Truthy(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"false", "0", "no", "off", " OFF "} {
		if detector.Truthy(v) {
			t.Errorf("Truthy(%q) = true, want false", v)
		}
	}
}
