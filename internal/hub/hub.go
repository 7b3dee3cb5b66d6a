// Package hub talks to the Hugging Face Hub REST API for a single dataset
// repository at a fixed revision. It is the remote storage capability behind
// the sync client; everything above it deals in local and repo paths only.
package hub

import (
	"context"
	"io"
)

// Fixed for every repository this tool touches.
const (
	RepoType = "dataset"
	Revision = "main"
)

// FileUpload pairs a local file with its destination path inside the repo.
type FileUpload struct {
	LocalPath string
	RepoPath  string
}

// API is the remote storage capability. Implementations must be safe for
// sequential use; concurrent calls follow the underlying transport's contract.
type API interface {
	UploadFile(ctx context.Context, localPath, repoPath, message string) error
	UploadFolder(ctx context.Context, files []FileUpload, message string) error
	DownloadFile(ctx context.Context, repoPath string, dst io.Writer) error
	ListFiles(ctx context.Context) ([]string, error)
	DeleteFile(ctx context.Context, repoPath, message string) error
}
