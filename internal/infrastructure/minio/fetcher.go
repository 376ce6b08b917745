package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	blobRepository "github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/blob"
)

// Fetcher reads blobs addressed as s3://<bucket>/<object>.
type Fetcher struct {
	minioClient *minio.Client
	cfg         *FetcherConfig
}

func NewFetcher(minioClient *minio.Client, config *FetcherConfig) *Fetcher {
	return &Fetcher{
		minioClient: minioClient,
		cfg:         config,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	bucket, object, err := parseObjectURL(rawURL)
	if err != nil {
		return nil, err
	}

	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(f.cfg.Timeout)*time.Millisecond)
		defer cancel()
	}

	obj, err := f.minioClient.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		logger.Warn("blob fetch failed", "bucket", bucket, "object", object, "err", err)

		return nil, blobRepository.ErrFetchFailed
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).StatusCode != 0 {
			logger.Warn("blob fetch failed", "bucket", bucket, "object", object, "err", err)

			return nil, blobRepository.ErrFetchFailed
		}

		return nil, err
	}

	if len(body) == 0 {
		return nil, blobRepository.ErrEmpty
	}

	return body, nil
}

func parseObjectURL(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}

	object := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || object == "" {
		return "", "", fmt.Errorf("invalid object url %q", rawURL)
	}

	return u.Host, object, nil
}
