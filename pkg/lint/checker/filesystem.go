package checker

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem answers existence queries for FileExists.
type FileSystem interface {
	// Exists reports whether an entry exists at path.
	Exists(path string) bool
	// Abs renders path in absolute form for diagnostics.
	Abs(path string) string
}

// OSFileSystem resolves paths on the local disk.
// Relative paths are taken relative to BaseDir, or the working directory
// when BaseDir is empty.
type OSFileSystem struct {
	BaseDir string
}

func (o OSFileSystem) resolve(path string) string {
	if o.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.BaseDir, path)
}

// Exists reports whether path can be stat'ed. Any stat failure, including
// permission errors, counts as missing.
func (o OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(o.resolve(path))
	return err == nil
}

// Abs returns the absolute form of path, or path itself if it cannot be
// made absolute.
func (o OSFileSystem) Abs(path string) string {
	abs, err := filepath.Abs(o.resolve(path))
	if err != nil {
		return path
	}
	return abs
}

// FileExists returns a Checker that passes when the value names an existing
// file system entry. The failure message carries the absolute path.
func FileExists(fsys FileSystem) Checker {
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	return New("existing file", func(value any) (bool, string) {
		s, ok := value.(string)
		if !ok {
			return false, msgStringExpected
		}
		if s != "" && fsys.Exists(s) {
			return true, ""
		}
		return false, fmt.Sprintf("file %s does not exist", fsys.Abs(s))
	})
}
