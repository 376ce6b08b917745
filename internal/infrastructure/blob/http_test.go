package blob

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blobRepository "github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/blob"
)

func TestHTTPFetcher(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/chars.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"21":{"name":"Miku"}}`))
	})
	mux.HandleFunc("/empty.json", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/gone.json", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"success", "/chars.json", `{"21":{"name":"Miku"}}`, nil},
		{"empty body", "/empty.json", "", blobRepository.ErrEmpty},
		{"non success status", "/gone.json", "", blobRepository.ErrFetchFailed},
		{"not found", "/missing.json", "", blobRepository.ErrFetchFailed},
	}

	f := NewHTTPFetcher(HTTPConfig{Timeout: 2000})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := f.Fetch(context.Background(), srv.URL+tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, body)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(HTTPConfig{}).Fetch(context.Background(), url+"/chars.json")
	assert.Error(t, err)
}
