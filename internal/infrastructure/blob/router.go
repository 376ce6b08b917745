package blob

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"

	blobRepository "github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/blob"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/pkg/utils"
)

// Router picks a fetcher by the pointer's URL scheme. Bodies that do not sniff
// as JSON are logged and still returned; parsing them is the caller's job.
type Router struct {
	fetchers map[string]blobRepository.Fetcher
}

// NewRouter serves http and https through httpFetcher and s3 through
// s3Fetcher. s3Fetcher may be nil when object storage is not configured.
func NewRouter(httpFetcher, s3Fetcher blobRepository.Fetcher) *Router {
	fetchers := map[string]blobRepository.Fetcher{
		"http":  httpFetcher,
		"https": httpFetcher,
	}
	if s3Fetcher != nil {
		fetchers["s3"] = s3Fetcher
	}

	return &Router{
		fetchers: fetchers,
	}
}

func (r *Router) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	scheme := strings.ToLower(u.Scheme)
	fetcher, ok := r.fetchers[scheme]
	if !ok {
		return nil, fmt.Errorf("unsupported blob url scheme %q", scheme)
	}

	body, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if !utils.IsJSON(body) {
		logger.Warn("blob does not look like json", "url", rawURL, "type", utils.DetectedType(body))
	}

	return body, nil
}
