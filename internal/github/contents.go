package github

import (
	"context"
	"io"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
)

// RemoteFile is one entry from a contents-API directory listing.
type RemoteFile struct {
	Name        string
	Type        string
	DownloadURL string
	HTMLURL     string
}

// ListDirectory fetches the contents-API listing for a repository folder on
// the given branch. A non-2xx response yields a *DirectoryError carrying the
// HTTP status. One attempt, no caching.
func ListDirectory(ctx context.Context, client Client, owner, repo, folder, branch string) ([]RemoteFile, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: branch}
	file, dir, resp, err := client.GetContents(ctx, owner, repo, folder, opts)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, &DirectoryError{Owner: owner, Repo: repo, Folder: folder, Status: status, Err: err}
	}
	if dir == nil {
		// The path resolved to a single file, not a folder.
		if file != nil {
			dir = []*gh.RepositoryContent{file}
		} else {
			return nil, &DirectoryError{Owner: owner, Repo: repo, Folder: folder, Err: errEmptyListing}
		}
	}

	files := make([]RemoteFile, 0, len(dir))
	for _, item := range dir {
		files = append(files, RemoteFile{
			Name:        item.GetName(),
			Type:        item.GetType(),
			DownloadURL: item.GetDownloadURL(),
			HTMLURL:     item.GetHTMLURL(),
		})
	}
	return files, nil
}

// rawClient fetches raw file content outside the API client.
var rawClient = &http.Client{Timeout: 30 * time.Second}

// FetchFileText issues a single GET against a raw-content URL and returns
// the body text. A non-2xx response yields a *FileError with the status.
func FetchFileText(ctx context.Context, url, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", &FileError{URL: url, Err: err}
	}
	if token != "" {
		req.Header.Set("Authorization", "token "+token)
	}
	resp, err := rawClient.Do(req)
	if err != nil {
		return "", &FileError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FileError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FileError{URL: url, Err: err}
	}
	return string(body), nil
}
