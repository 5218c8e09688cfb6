package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"lexstat/internal/port"
)

// ErrNotFound is returned when a requested file or folder does not exist.
var ErrNotFound = errors.New("not found")

// Walker lists the regular files of a single folder, non-recursively,
// in lexical name order.
type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// List returns files of folder whose name ends with extension and that pass
// the include/exclude patterns. An empty extension accepts every file.
func (w *Walker) List(folder, extension string) ([]port.FileInfo, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("folder %s: %w", folder, ErrNotFound)
		}
		return nil, err
	}

	var files []port.FileInfo
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, extension) {
			continue
		}
		if !w.shouldInclude(name) || w.shouldExclude(name) {
			continue
		}

		path := filepath.Join(folder, name)
		// os.Stat follows symlinks so linked texts are listed like regular ones
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		files = append(files, port.FileInfo{
			Name:    name,
			Path:    path,
			ModTime: info.ModTime().Unix(),
			Size:    info.Size(),
		})
	}

	return files, nil
}

func (w *Walker) shouldInclude(name string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(name string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}
