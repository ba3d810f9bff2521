// Package project resolves the Xcode workspace or project a test run operates on.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/scan/internal/core/domain"
	"go.trai.ch/scan/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	workspacePattern = "*.xcworkspace"
	projectPattern   = "*.xcodeproj"
)

var _ ports.ProjectResolver = (*Resolver)(nil)

// Resolver implements ports.ProjectResolver.
// Explicit workspace or project options win; otherwise the working directory is searched.
type Resolver struct {
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve builds the project descriptor for the options.
func (r *Resolver) Resolve(cwd string, opts *domain.Options) (*domain.Project, error) {
	flag, path, err := r.container(cwd, opts)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{}
	if path == "" {
		return project, nil
	}

	containerParam, err := domain.Flag(flag, path)
	if err != nil {
		return nil, err
	}
	project.Parameters = append(project.Parameters, containerParam)
	project.AppName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if opts.Scheme != "" {
		schemeParam, err := domain.Flag("-scheme", opts.Scheme)
		if err != nil {
			return nil, err
		}
		project.Parameters = append(project.Parameters, schemeParam)
	}

	return project, nil
}

// container returns the xcodebuild flag and path of the workspace or project to use.
// An empty path means nothing could be resolved.
func (r *Resolver) container(cwd string, opts *domain.Options) (flag, path string, err error) {
	switch {
	case opts.Workspace != "":
		return "-workspace", opts.Workspace, nil
	case opts.Project != "":
		return "-project", opts.Project, nil
	}

	workspaces, err := discover(cwd, workspacePattern)
	if err != nil {
		return "", "", err
	}
	if found, ok := r.single(workspaces, "workspaces", "--workspace"); ok {
		return "-workspace", found, nil
	}
	if len(workspaces) > 1 {
		return "", "", nil
	}

	projects, err := discover(cwd, projectPattern)
	if err != nil {
		return "", "", err
	}
	if found, ok := r.single(projects, "projects", "--project"); ok {
		return "-project", found, nil
	}
	return "", "", nil
}

func (r *Resolver) single(candidates []string, kind, flag string) (string, bool) {
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	default:
		r.logger.Warn(fmt.Sprintf("Multiple %s found (%s), pass %s to choose one",
			kind, strings.Join(candidates, ", "), flag))
		return "", false
	}
}

// discover returns the directories in cwd matching pattern as absolute paths, sorted.
func discover(cwd, pattern string) ([]string, error) {
	fsys := os.DirFS(cwd)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectDiscoveryFailed.Error()), "cwd", cwd)
	}

	// Workspaces and projects are bundles, so plain files with a matching name are skipped.
	dirs := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := fs.Stat(fsys, match)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, filepath.Join(cwd, match))
	}
	slices.Sort(dirs)
	return dirs, nil
}
