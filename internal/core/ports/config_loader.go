// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/scan/internal/core/domain"

// ConfigLoader defines the interface for resolving the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the options for the given working directory.
	// Overrides are keyed by option name (e.g. "only_testing") and take precedence over every other source.
	Load(cwd string, overrides map[string]any) (*domain.Options, error)
}
