package blob

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	blobRepository "github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/blob"
)

// HTTPFetcher downloads blobs with a single GET request.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher. A zero timeout leaves requests bounded
// only by the caller's context.
func NewHTTPFetcher(cfg HTTPConfig) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("blob fetch failed", "url", url, "status", resp.StatusCode)

		return nil, blobRepository.ErrFetchFailed
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return nil, blobRepository.ErrEmpty
	}

	return body, nil
}
