package ports

import "go.trai.ch/scan/internal/core/domain"

// ProjectResolver defines the interface for resolving the workspace or project to test.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_resolver.go -destination=mocks/mock_project_resolver.go -package=mocks
type ProjectResolver interface {
	// Resolve returns the project descriptor for the options.
	// A descriptor without parameters means nothing could be resolved; that is not an error here.
	Resolve(cwd string, opts *domain.Options) (*domain.Project, error)
}
