package fs

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultFigureExt is appended to figure names given without an extension.
const DefaultFigureExt = ".png"

// EnsureDir creates directory with parents when it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "could not create directory %q", dir)
	}
	return nil
}

// FigurePath returns path of figure called name inside dir.
// Name is always treated as relative to dir. Names without extension get DefaultFigureExt.
func FigurePath(dir, name string) string {
	if filepath.Ext(name) == "" {
		name += DefaultFigureExt
	}
	return filepath.Join(dir, name)
}

// ResolveRelative returns path unchanged when it is absolute, otherwise joined with base.
func ResolveRelative(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
