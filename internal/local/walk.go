package local

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File pairs a file's absolute location on disk with its forward-slash path
// relative to the walked root.
type File struct {
	Path     string
	RepoPath string
}

// Walk collects every regular file under root in lexical order. Hidden files
// and directories (name prefix ".") are skipped at every depth, so .git and
// .DS_Store never end up in a commit. RepoPath uses forward slashes regardless
// of the platform separator.
func Walk(root string) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("could not stat folder '%s': %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("'%s' is not a folder", root)
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, File{Path: path, RepoPath: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk folder '%s': %w", root, err)
	}
	return files, nil
}
