package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"quire/internal/domain"
)

// Repository implements ports.LibraryRepository using the filesystem
type Repository struct {
	root string
}

// NewRepository creates a filesystem repository bound to root
func NewRepository(root string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Repository{root: root}
}

// Root returns the absolute root the repository is bound to
func (r *Repository) Root() string {
	return r.root
}

// FindLeafDirs walks the tree in lexical order and returns every
// directory, the root included, with no file anywhere below its
// subdirectories. Hidden directories are traversed like any other;
// hidden files still count as files here.
func (r *Repository) FindLeafDirs() ([]string, error) {
	var dirs []string
	nonLeaf := make(map[string]bool)

	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == r.root {
				return err
			}
			// An unreadable subtree stays a candidate; listing it
			// later surfaces the real error.
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
			return nil
		}
		if path == r.root {
			// The root is a file; there are no directories to report.
			return nil
		}
		// A file disqualifies every ancestor above its own directory.
		for dir := filepath.Dir(path); dir != r.root; dir = filepath.Dir(dir) {
			nonLeaf[filepath.Dir(dir)] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", r.root, err)
	}

	leafs := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if !nonLeaf[dir] {
			leafs = append(leafs, dir)
		}
	}
	return leafs, nil
}

// IsLeafDir reports whether path is a directory none of whose
// subdirectories contain a file. Non-directories and missing paths are
// not leaves, not errors.
func (r *Repository) IsLeafDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}

	leaf := true
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == path {
				return err
			}
			return nil
		}
		if !d.IsDir() && filepath.Dir(p) != path {
			leaf = false
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to walk %s: %w", path, err)
	}
	return leaf, nil
}

// ListFiles returns the direct, non-hidden files of dir sorted by name
func (r *Repository) ListFiles(dir string) ([]domain.FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	files := make([]domain.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", filepath.Join(dir, entry.Name()), err)
		}
		files = append(files, domain.FileEntry{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Size: info.Size(),
		})
	}

	domain.SortFiles(files)
	return files, nil
}
