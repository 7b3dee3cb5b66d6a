package client

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jebin2/hfsync/internal/config"
	"github.com/jebin2/hfsync/internal/hub"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	uploads     []hub.FileUpload
	folderCalls [][]hub.FileUpload
	deleted     []string

	listFiles []string
	listErr   error

	uploadErr   func(repoPath string) error
	folderErr   error
	downloadErr error
	content     string
}

var _ hub.API = (*fakeAPI)(nil)

func (f *fakeAPI) UploadFile(_ context.Context, localPath, repoPath, _ string) error {
	if f.uploadErr != nil {
		if err := f.uploadErr(repoPath); err != nil {
			return err
		}
	}
	f.uploads = append(f.uploads, hub.FileUpload{LocalPath: localPath, RepoPath: repoPath})
	return nil
}

func (f *fakeAPI) UploadFolder(_ context.Context, files []hub.FileUpload, _ string) error {
	if f.folderErr != nil {
		return f.folderErr
	}
	f.folderCalls = append(f.folderCalls, files)
	return nil
}

func (f *fakeAPI) DownloadFile(_ context.Context, _ string, dst io.Writer) error {
	if f.downloadErr != nil {
		return f.downloadErr
	}
	_, err := io.WriteString(dst, f.content)
	return err
}

func (f *fakeAPI) ListFiles(context.Context) ([]string, error) {
	return f.listFiles, f.listErr
}

func (f *fakeAPI) DeleteFile(_ context.Context, repoPath, _ string) error {
	f.deleted = append(f.deleted, repoPath)
	return nil
}

func validConfig() config.Config {
	return config.Config{Token: "secret", RepoID: "user/data", CommitMessage: "Upload media"}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr error
	}{
		{
			name:    "missing token fails even when repo id is set",
			cfg:     config.Config{RepoID: "user/data"},
			wantErr: config.ErrMissingToken,
		},
		{
			name:    "missing repo id fails even when token is set",
			cfg:     config.Config{Token: "secret"},
			wantErr: config.ErrMissingRepoID,
		},
		{
			name: "valid config constructs a client",
			cfg:  validConfig(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg, &fakeAPI{})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

// writeTree creates files under root; keys use forward slashes.
func writeTree(t *testing.T, root string, files map[string]string) {
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestUploadFolder(t *testing.T) {
	tests := []struct {
		name string
		do   func(*testing.T)
	}{
		{
			name: "bulk mode sends the whole tree in one call",
			do: func(t *testing.T) {
				root := t.TempDir()
				writeTree(t, root, map[string]string{
					"a/b/c.txt":   "deep",
					"top.txt":     "flat",
					".hidden":     "skip",
					"a/.secret":   "skip",
					".git/config": "skip",
				})

				api := &fakeAPI{}
				c, err := New(validConfig(), api)
				require.NoError(t, err)

				require.NoError(t, c.UploadFolder(context.Background(), root, "media"))
				require.Empty(t, api.uploads)
				require.Len(t, api.folderCalls, 1)

				var repoPaths []string
				for _, f := range api.folderCalls[0] {
					repoPaths = append(repoPaths, f.RepoPath)
				}
				require.Equal(t, []string{"media/a/b/c.txt", "media/top.txt"}, repoPaths)
			},
		},
		{
			name: "per-file mode uploads each file separately",
			do: func(t *testing.T) {
				root := t.TempDir()
				writeTree(t, root, map[string]string{
					"a/b/c.txt": "deep",
					"top.txt":   "flat",
				})

				cfg := validConfig()
				cfg.PerFileUpload = true
				api := &fakeAPI{}
				c, err := New(cfg, api)
				require.NoError(t, err)

				require.NoError(t, c.UploadFolder(context.Background(), root, "media"))
				require.Empty(t, api.folderCalls)
				require.Len(t, api.uploads, 2)
				require.Equal(t, "media/a/b/c.txt", api.uploads[0].RepoPath)
				require.Equal(t, "media/top.txt", api.uploads[1].RepoPath)
			},
		},
		{
			name: "empty repo base keeps relative paths",
			do: func(t *testing.T) {
				root := t.TempDir()
				writeTree(t, root, map[string]string{"a/b/c.txt": "deep"})

				api := &fakeAPI{}
				c, err := New(validConfig(), api)
				require.NoError(t, err)

				require.NoError(t, c.UploadFolder(context.Background(), root, ""))
				require.Len(t, api.folderCalls, 1)
				require.Equal(t, "a/b/c.txt", api.folderCalls[0][0].RepoPath)
			},
		},
		{
			name: "per-file mode stops at the first failed file",
			do: func(t *testing.T) {
				root := t.TempDir()
				writeTree(t, root, map[string]string{
					"a-ok.txt":  "fine",
					"z-bad.txt": "boom",
				})

				cfg := validConfig()
				cfg.PerFileUpload = true
				injected := errors.New("injected upload failure")
				api := &fakeAPI{
					uploadErr: func(repoPath string) error {
						if strings.HasSuffix(repoPath, "z-bad.txt") {
							return injected
						}
						return nil
					},
				}
				c, err := New(cfg, api)
				require.NoError(t, err)

				err = c.UploadFolder(context.Background(), root, "")
				require.ErrorIs(t, err, injected)

				// The file before the failure was already uploaded.
				require.Len(t, api.uploads, 1)
				require.Equal(t, "a-ok.txt", api.uploads[0].RepoPath)
			},
		},
		{
			name: "missing folder fails without any call",
			do: func(t *testing.T) {
				api := &fakeAPI{}
				c, err := New(validConfig(), api)
				require.NoError(t, err)

				err = c.UploadFolder(context.Background(), filepath.Join(t.TempDir(), "nope"), "")
				require.Error(t, err)
				require.Empty(t, api.uploads)
				require.Empty(t, api.folderCalls)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t)
		})
	}
}

func TestDownload(t *testing.T) {
	tests := []struct {
		name string
		do   func(*testing.T)
	}{
		{
			name: "creates missing directories and moves content in place",
			do: func(t *testing.T) {
				api := &fakeAPI{content: "payload"}
				c, err := New(validConfig(), api)
				require.NoError(t, err)

				dst := filepath.Join(t.TempDir(), "out", "new", "deep", "file.bin")
				require.NoError(t, c.Download(context.Background(), "data/file.bin", dst))

				b, err := os.ReadFile(dst)
				require.NoError(t, err)
				require.Equal(t, "payload", string(b))

				requireNoTempFiles(t, filepath.Dir(dst))
			},
		},
		{
			name: "failed download leaves no temp file behind",
			do: func(t *testing.T) {
				api := &fakeAPI{downloadErr: &hub.Error{Kind: hub.KindNotFound, Op: "download", Err: errors.New("missing")}}
				c, err := New(validConfig(), api)
				require.NoError(t, err)

				dst := filepath.Join(t.TempDir(), "out", "file.bin")
				err = c.Download(context.Background(), "data/file.bin", dst)
				require.Error(t, err)
				require.True(t, hub.IsNotFound(err))

				_, err = os.Stat(dst)
				require.ErrorIs(t, err, os.ErrNotExist)
				requireNoTempFiles(t, filepath.Dir(dst))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t)
		})
	}
}

func requireNoTempFiles(t *testing.T, dir string) {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), ".hfsync-download-"), "leftover temp file: %s", e.Name())
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		do   func(*testing.T)
	}{
		{
			name: "empty repo yields empty listing without error",
			do: func(t *testing.T) {
				c, err := New(validConfig(), &fakeAPI{listFiles: []string{}})
				require.NoError(t, err)

				files, err := c.List(context.Background())
				require.NoError(t, err)
				require.Empty(t, files)
			},
		},
		{
			name: "failed fetch is an error, not an empty listing",
			do: func(t *testing.T) {
				injected := &hub.Error{Kind: hub.KindNetwork, Op: "list", Err: errors.New("connection refused")}
				c, err := New(validConfig(), &fakeAPI{listErr: injected})
				require.NoError(t, err)

				_, err = c.List(context.Background())
				require.ErrorIs(t, err, injected)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t)
		})
	}
}

func TestDelete(t *testing.T) {
	api := &fakeAPI{}
	c, err := New(validConfig(), api)
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), "media/old.mp4"))
	require.Equal(t, []string{"media/old.mp4"}, api.deleted)
}

func TestJoinRepoPath(t *testing.T) {
	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{name: "empty base", base: "", rel: "a/b.txt", want: "a/b.txt"},
		{name: "plain base", base: "media", rel: "a/b.txt", want: "media/a/b.txt"},
		{name: "base with stray slashes", base: "/media/", rel: "a/b.txt", want: "media/a/b.txt"},
		{name: "slash-only base", base: "/", rel: "a.txt", want: "a.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, JoinRepoPath(tt.base, tt.rel))
		})
	}
}
