package blob

import (
	"context"
	"errors"
)

var (
	ErrFetchFailed = errors.New("Blob fetch failed.") //nolint
	ErrEmpty       = errors.New("Blob empty.")        //nolint
)

// Fetcher retrieves the document a pointer URL refers to.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
