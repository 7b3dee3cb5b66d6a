package hub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// The commit endpoint takes NDJSON: a header line followed by one line per
// file operation, file contents base64-encoded inline.
type commitOp struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type commitHeader struct {
	Summary string `json:"summary"`
}

type commitFile struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type deletedFile struct {
	Path string `json:"path"`
}

func fileOp(localPath, repoPath string) (commitOp, error) {
	b, err := os.ReadFile(localPath)
	if err != nil {
		return commitOp{}, &Error{Kind: KindLocalIO, Op: "upload", Path: localPath, Err: err}
	}
	return commitOp{
		Key: "file",
		Value: commitFile{
			Path:     repoPath,
			Content:  base64.StdEncoding.EncodeToString(b),
			Encoding: "base64",
		},
	}, nil
}

func (c *Client) commit(ctx context.Context, op, path, message string, ops []commitOp) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(commitOp{Key: "header", Value: commitHeader{Summary: message}}); err != nil {
		return &Error{Kind: KindRemote, Op: op, Path: path, Err: fmt.Errorf("could not encode commit header: %w", err)}
	}
	for _, o := range ops {
		if err := enc.Encode(o); err != nil {
			return &Error{Kind: KindRemote, Op: op, Path: path, Err: fmt.Errorf("could not encode commit operation: %w", err)}
		}
	}

	url := fmt.Sprintf("%s/api/%ss/%s/commit/%s", c.endpoint, RepoType, c.repoID, Revision)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Path: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-ndjson")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(op, path, resp)
	}
	return nil
}
