// Package client is the dataset sync client: it translates local filesystem
// paths to repo paths and issues upload, download, list and delete calls
// through the hub API. Each call is a single blocking request with no retries
// and no cross-call ordering guarantees.
package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jebin2/hfsync/internal/config"
	"github.com/jebin2/hfsync/internal/hub"
	"github.com/jebin2/hfsync/internal/local"
)

type Client struct {
	cfg config.Config
	api hub.API
}

// New fails fast when the credential or the repo id is missing; there is no
// partially constructed client.
func New(cfg config.Config, api hub.API) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, api: api}, nil
}

func (c *Client) Upload(ctx context.Context, localPath, repoPath string) error {
	return c.api.UploadFile(ctx, localPath, repoPath, c.cfg.CommitMessage)
}

// UploadFolder uploads every non-hidden regular file under localDir to
// repoBase, preserving the relative layout with forward slashes. The default
// mode sends the whole tree in one commit; with PerFileUpload set each file
// is committed on its own and the first failure stops the walk, leaving
// earlier files uploaded.
func (c *Client) UploadFolder(ctx context.Context, localDir, repoBase string) error {
	files, err := local.Walk(localDir)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Upload folder: %s", localDir)

	if c.cfg.PerFileUpload {
		for _, f := range files {
			if err = c.api.UploadFile(ctx, f.Path, JoinRepoPath(repoBase, f.RepoPath), message); err != nil {
				return fmt.Errorf("could not upload '%s': %w", f.Path, err)
			}
		}
		return nil
	}

	uploads := make([]hub.FileUpload, 0, len(files))
	for _, f := range files {
		uploads = append(uploads, hub.FileUpload{LocalPath: f.Path, RepoPath: JoinRepoPath(repoBase, f.RepoPath)})
	}
	return c.api.UploadFolder(ctx, uploads, message)
}

// Download fetches repoPath into a temp file next to the destination, creates
// any missing parent directories and renames the temp file onto localPath.
// The temp file is removed on every failure path.
func (c *Client) Download(ctx context.Context, repoPath, localPath string) error {
	dir := filepath.Dir(localPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".hfsync-download-*")
	if err != nil {
		return fmt.Errorf("could not create temp file in '%s': %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err = c.api.DownloadFile(ctx, repoPath, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp file '%s': %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), localPath); err != nil {
		return fmt.Errorf("could not move download to '%s': %w", localPath, err)
	}
	return nil
}

// List returns the repo's file paths at the fixed revision, fetched fresh on
// every call. A failed fetch is an error, distinct from an empty repo.
func (c *Client) List(ctx context.Context) ([]string, error) {
	return c.api.ListFiles(ctx)
}

func (c *Client) Delete(ctx context.Context, repoPath string) error {
	return c.api.DeleteFile(ctx, repoPath, fmt.Sprintf("Delete %s", repoPath))
}

// JoinRepoPath joins a repo base path and a forward-slash relative path,
// tolerating empty bases and stray slashes.
func JoinRepoPath(base, rel string) string {
	base = strings.Trim(base, "/")
	if base == "" {
		return rel
	}
	return base + "/" + rel
}
