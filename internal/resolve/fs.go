package resolve

import (
	"os"

	"github.com/bmatcuk/doublestar"
)

// FS is the filesystem surface the resolver probes.
type FS interface {
	// Exists reports whether path names an existing regular file.
	Exists(path string) bool
	// Glob expands a wildcard pattern.
	Glob(pattern string) ([]string, error)
}

// OSFS probes the local filesystem.
type OSFS struct{}

func (OSFS) Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func (OSFS) Glob(pattern string) ([]string, error) {
	return doublestar.Glob(pattern)
}
