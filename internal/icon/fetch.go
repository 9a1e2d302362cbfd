package icon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Fetcher downloads SVG content for descriptors over HTTP.
type Fetcher struct {
	// HTTPClient is the HTTP client used for raw-content requests.
	HTTPClient *http.Client
	logger     *zerolog.Logger
}

// NewFetcher creates a Fetcher with a 30 second request timeout.
func NewFetcher(logger *zerolog.Logger) *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Fetch downloads the SVG for the descriptor and caches it on the
// descriptor. It is idempotent: a descriptor that already holds SVG
// text is left untouched and no request is made. There are no retries;
// a failure is returned to the caller as a typed FetchError.
func (f *Fetcher) Fetch(ctx context.Context, d *Descriptor) error {
	if d.Fetched() {
		f.logger.Debug().Str("icon", d.Name).Msg("svg already fetched, skipping download")
		return nil
	}

	url := d.URL()
	f.logger.Debug().Str("icon", d.Name).Str("url", url).Msg("downloading icon")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewRequestError(d.Name, url, err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return NewRequestError(d.Name, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewHTTPStatusError(d.Name, url, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewRequestError(d.Name, url, fmt.Errorf("failed to read response body: %w", err))
	}

	d.setSVG(string(body))
	f.logger.Debug().Str("icon", d.Name).Int("bytes", len(body)).Msg("icon downloaded")
	return nil
}
