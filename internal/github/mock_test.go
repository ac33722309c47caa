package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements Client for testing.
type mockClient struct {
	getContentsFn   func(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	listByUserFn    func(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)
	getRepositoryFn func(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
}

func (m *mockClient) GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error) {
	return m.getContentsFn(ctx, owner, repo, path, opts)
}

func (m *mockClient) ListByUser(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error) {
	return m.listByUserFn(ctx, user, opts)
}

func (m *mockClient) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error) {
	return m.getRepositoryFn(ctx, owner, repo)
}

// emptyResponse returns a *gh.Response that signals no more pages.
func emptyResponse() *gh.Response {
	return &gh.Response{
		Response: &http.Response{StatusCode: 200},
	}
}

// statusResponse returns a *gh.Response carrying the given HTTP status.
func statusResponse(code int) *gh.Response {
	return &gh.Response{
		Response: &http.Response{StatusCode: code},
	}
}

// makeContent builds a directory-listing entry.
func makeContent(name, typ, downloadURL, htmlURL string) *gh.RepositoryContent {
	return &gh.RepositoryContent{
		Name:        gh.Ptr(name),
		Type:        gh.Ptr(typ),
		DownloadURL: gh.Ptr(downloadURL),
		HTMLURL:     gh.Ptr(htmlURL),
	}
}

// makeRepo builds a repository listing entry.
func makeRepo(name string, stars int, fork bool) *gh.Repository {
	return &gh.Repository{
		Name:            gh.Ptr(name),
		StargazersCount: gh.Ptr(stars),
		Fork:            gh.Ptr(fork),
	}
}
