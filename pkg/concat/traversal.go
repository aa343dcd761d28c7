// File: pkg/concat/traversal.go
package concat

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// walker visits a directory tree top-down, writing each directory's code
// files before descending into its surviving subdirectories.
type walker struct {
	outputName string
	out        *outputWriter
	logger     *zap.Logger
	files      []FileResult
}

// walk processes dir, whose path relative to the root is relDir ("" for
// the root itself). A directory that cannot be listed contributes nothing.
func (w *walker) walk(dir, relDir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn("Skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		entryPath := filepath.Join(dir, name)

		if entry.IsDir() {
			if !ShouldInclude(name, w.outputName) {
				glob, _ := matchExclusion(name)
				w.logger.Debug("Pruning excluded directory",
					zap.String("path", entryPath),
					zap.String("pattern", glob))
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}
		if isSymlinkedDir(entry, entryPath) {
			w.logger.Debug("Not following directory symlink", zap.String("path", entryPath))
			continue
		}
		if !ShouldInclude(name, w.outputName) || !IsCodeFile(name) {
			continue
		}

		if err := w.processFile(entryPath, filepath.Join(relDir, name)); err != nil {
			return err
		}
	}

	for _, name := range subdirs {
		if err := w.walk(filepath.Join(dir, name), filepath.Join(relDir, name)); err != nil {
			return err
		}
	}
	return nil
}

// processFile appends one file block, or an error line when the file cannot
// be read. Only output write failures are returned.
func (w *walker) processFile(path, relPath string) error {
	content, err := readSourceFile(path, w.logger)
	if err != nil {
		w.logger.Warn("Failed to read file", zap.String("path", relPath), zap.Error(err))
		w.out.writeReadError(relPath, err)
	} else {
		w.out.writeFile(relPath, content)
	}
	w.files = append(w.files, FileResult{Path: relPath, Err: err})

	if w.out.err != nil {
		return fmt.Errorf("failed to write output: %w", w.out.err)
	}
	return nil
}

// isSymlinkedDir reports whether entry is a symlink that resolves to a
// directory. Such links are never descended.
func isSymlinkedDir(entry fs.DirEntry, path string) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
