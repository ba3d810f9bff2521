// Package fs implements filesystem access for log and build directories.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go.trai.ch/scan/internal/core/domain"
	"go.trai.ch/scan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	home string
	wd   func() (string, error)
}

// New creates a FileSystem that expands "~" to the user's home directory.
func New() *FileSystem {
	return &FileSystem{home: xdg.Home, wd: os.Getwd}
}

// NewWithHome creates a FileSystem with a fixed home and working directory.
func NewWithHome(home, wd string) *FileSystem {
	return &FileSystem{
		home: home,
		wd:   func() (string, error) { return wd, nil },
	}
}

// ExpandPath resolves "~" and relative paths to a clean absolute path.
func (f *FileSystem) ExpandPath(path string) (string, error) {
	switch {
	case path == "~":
		return filepath.Clean(f.home), nil
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(f.home, path[2:]), nil
	case filepath.IsAbs(path):
		return filepath.Clean(path), nil
	}

	wd, err := f.wd()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathExpandFailed.Error()), "path", path)
	}
	return filepath.Join(wd, path), nil
}

// MkdirAll creates the directory and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirCreateFailed.Error()), "path", path)
	}
	return nil
}
