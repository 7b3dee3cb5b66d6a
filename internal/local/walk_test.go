package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	tests := []struct {
		name string
		do   func(*testing.T)
	}{
		{
			name: "collects regular files with forward-slash repo paths",
			do: func(t *testing.T) {
				root := t.TempDir()
				writeFile(t, root, "a/b/c.txt")
				writeFile(t, root, "top.txt")

				files, err := Walk(root)
				require.NoError(t, err)
				require.Len(t, files, 2)
				require.Equal(t, "a/b/c.txt", files[0].RepoPath)
				require.Equal(t, "top.txt", files[1].RepoPath)
				require.Equal(t, filepath.Join(root, "a", "b", "c.txt"), files[0].Path)
			},
		},
		{
			name: "skips hidden files at every depth",
			do: func(t *testing.T) {
				root := t.TempDir()
				writeFile(t, root, ".hidden")
				writeFile(t, root, "a/.secret.txt")
				writeFile(t, root, "a/b/.DS_Store")
				writeFile(t, root, "a/b/kept.txt")

				files, err := Walk(root)
				require.NoError(t, err)
				require.Len(t, files, 1)
				require.Equal(t, "a/b/kept.txt", files[0].RepoPath)
			},
		},
		{
			name: "skips hidden directories entirely",
			do: func(t *testing.T) {
				root := t.TempDir()
				writeFile(t, root, ".git/config")
				writeFile(t, root, ".git/objects/pack/data")
				writeFile(t, root, "kept.txt")

				files, err := Walk(root)
				require.NoError(t, err)
				require.Len(t, files, 1)
				require.Equal(t, "kept.txt", files[0].RepoPath)
			},
		},
		{
			name: "empty folder yields no files",
			do: func(t *testing.T) {
				files, err := Walk(t.TempDir())
				require.NoError(t, err)
				require.Empty(t, files)
			},
		},
		{
			name: "missing folder is an error",
			do: func(t *testing.T) {
				_, err := Walk(filepath.Join(t.TempDir(), "nope"))
				require.Error(t, err)
			},
		},
		{
			name: "file instead of folder is an error",
			do: func(t *testing.T) {
				root := t.TempDir()
				writeFile(t, root, "file.txt")

				_, err := Walk(filepath.Join(root, "file.txt"))
				require.Error(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t)
		})
	}
}

func writeFile(t *testing.T, root, rel string) {
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(rel), 0644))
}
