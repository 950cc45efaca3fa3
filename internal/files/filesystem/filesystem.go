package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// Provider gives read and write access to files below a root directory.
type Provider interface {
	// ReadFile reads the file at the given root-relative path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at the given root-relative path,
	// creating parent directories as needed.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Stat returns file information for the given root-relative path.
	Stat(path string) (FileInfo, error)
}
