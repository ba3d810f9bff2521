package ports

// FileSystem defines the filesystem operations needed to place logs and build products.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ExpandPath resolves "~" and relative paths to a clean absolute path.
	ExpandPath(path string) (string, error)
	// MkdirAll creates the directory and any missing parents. It is idempotent.
	MkdirAll(path string) error
}
