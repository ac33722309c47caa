package github

import (
	"errors"
	"fmt"
	"net/http"
)

var errEmptyListing = errors.New("empty listing response")

// DirectoryError reports a failed directory listing. Status is the HTTP
// status code when one was received, zero otherwise.
type DirectoryError struct {
	Owner  string
	Repo   string
	Folder string
	Status int
	Err    error
}

func (e *DirectoryError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("listing %s/%s/%s: HTTP %d", e.Owner, e.Repo, e.Folder, e.Status)
	}
	return fmt.Sprintf("listing %s/%s/%s: %v", e.Owner, e.Repo, e.Folder, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// IsNotFound reports whether the listing failed because the repository or
// folder does not exist.
func (e *DirectoryError) IsNotFound() bool { return e.Status == http.StatusNotFound }

// FileError reports a failed raw-content fetch for a single file. These are
// isolated per file: the caller logs and drops the file rather than failing
// the whole load.
type FileError struct {
	URL    string
	Status int
	Err    error
}

func (e *FileError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
