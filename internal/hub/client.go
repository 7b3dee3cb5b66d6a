package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// Client implements API against the Hub's HTTP endpoints. Uploads and deletes
// go through the commit endpoint, listings through the repo info endpoint and
// downloads through resolve URLs.
type Client struct {
	endpoint string
	repoID   string
	http     *http.Client
}

var _ API = (*Client)(nil)

func NewClient(endpoint, repoID, token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		repoID:   repoID,
		http:     oauth2.NewClient(context.Background(), src),
	}
}

func (c *Client) UploadFile(ctx context.Context, localPath, repoPath, message string) error {
	op, err := fileOp(localPath, repoPath)
	if err != nil {
		return err
	}
	return c.commit(ctx, "upload", repoPath, message, []commitOp{op})
}

func (c *Client) UploadFolder(ctx context.Context, files []FileUpload, message string) error {
	ops := make([]commitOp, 0, len(files))
	for _, f := range files {
		op, err := fileOp(f.LocalPath, f.RepoPath)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	return c.commit(ctx, "upload folder", "", message, ops)
}

func (c *Client) DeleteFile(ctx context.Context, repoPath, message string) error {
	op := commitOp{Key: "deletedFile", Value: deletedFile{Path: repoPath}}
	return c.commit(ctx, "delete", repoPath, message, []commitOp{op})
}

// repoInfo is the subset of the repo metadata response we care about.
type repoInfo struct {
	Siblings []struct {
		Rfilename string `json:"rfilename"`
	} `json:"siblings"`
}

func (c *Client) ListFiles(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/api/%ss/%s/revision/%s", c.endpoint, RepoType, c.repoID, Revision)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: "list", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: "list", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError("list", "", resp)
	}

	var info repoInfo
	if err = json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, &Error{Kind: KindRemote, Op: "list", Err: fmt.Errorf("could not decode repo info: %w", err)}
	}

	files := make([]string, 0, len(info.Siblings))
	for _, s := range info.Siblings {
		files = append(files, s.Rfilename)
	}
	return files, nil
}

func (c *Client) DownloadFile(ctx context.Context, repoPath string, dst io.Writer) error {
	url := fmt.Sprintf("%s/%ss/%s/resolve/%s/%s", c.endpoint, RepoType, c.repoID, Revision, repoPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: "download", Path: repoPath, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: "download", Path: repoPath, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError("download", repoPath, resp)
	}

	if _, err = io.Copy(dst, resp.Body); err != nil {
		return &Error{Kind: KindLocalIO, Op: "download", Path: repoPath, Err: err}
	}
	return nil
}

func (c *Client) statusError(op, path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))

	kind := KindRemote
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthorized
	case http.StatusNotFound:
		kind = KindNotFound
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}
