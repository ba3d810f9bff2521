package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/scan/internal/core/domain"
)

func TestLayoutNames(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "LogFileName",
			got:      domain.LogFileName("App", "AppTests"),
			expected: "App-AppTests.log",
		},
		{
			name:     "ResultBundleName",
			got:      domain.ResultBundleName("./test_output", "App"),
			expected: filepath.Join("test_output", "App") + ".test_result",
		},
		{
			name:     "ResultBundleName absolute",
			got:      domain.ResultBundleName("/tmp/out", "App"),
			expected: "/tmp/out/App.test_result",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
