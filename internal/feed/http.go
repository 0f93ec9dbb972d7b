package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pgEdge/pgedge-warehouse/internal/logging"
	"github.com/pgEdge/pgedge-warehouse/internal/table"
)

// DefaultHTTPTimeout bounds a single feed download.
const DefaultHTTPTimeout = 60 * time.Second

// HTTPSource fetches a CSV feed from a URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTP feed source for the given URL.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// Fetch downloads and decodes the CSV feed. A non-2xx response is fatal.
func (s *HTTPSource) Fetch(ctx context.Context) (*table.Table, error) {
	url := RewriteGithubURL(s.URL)

	logging.Info().Str("url", url).Msg("Fetching raw feed")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching feed: HTTP status %d from %s", resp.StatusCode, url)
	}

	tbl, err := ReadCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}

	logging.Info().
		Int("rows", tbl.NumRows()).
		Int("columns", len(tbl.Columns)).
		Msg("Fetched raw feed")

	return tbl, nil
}

// RewriteGithubURL converts a github.com blob URL to its raw content form.
// Other URLs pass through unchanged.
func RewriteGithubURL(url string) string {
	if strings.Contains(url, "github.com") && strings.Contains(url, "/blob/") {
		url = strings.Replace(url, "github.com", "raw.githubusercontent.com", 1)
		url = strings.Replace(url, "/blob/", "/", 1)
	}
	return url
}
