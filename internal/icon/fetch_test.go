package icon

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconfetch/iconfetch/internal/repos"
)

func testDescriptor() *Descriptor {
	return &Descriptor{
		Name:      "arrow-right",
		OutputDir: ".",
		Filename:  "arrow-right",
		Variant:   "outline",
		Repository: repos.Repository{
			Name:         "heroicons",
			Owner:        "tailwindlabs",
			Repo:         "heroicons",
			Branch:       "master",
			PathTemplate: "optimized/24/{variant}/{iconName}.svg",
		},
	}
}

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	logger := zerolog.New(io.Discard)
	f := NewFetcher(&logger)
	httpmock.ActivateNonDefault(f.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return f
}

func TestFetchStoresSVG(t *testing.T) {
	f := newTestFetcher(t)
	d := testDescriptor()

	const svg = `<svg stroke-width="2"><path/></svg>`
	httpmock.RegisterResponder("GET",
		"https://raw.githubusercontent.com/tailwindlabs/heroicons/master/optimized/24/outline/arrow-right.svg",
		httpmock.NewStringResponder(200, svg))

	require.NoError(t, f.Fetch(context.Background(), d))
	assert.True(t, d.Fetched())

	got, err := d.SVG()
	require.NoError(t, err)
	assert.Equal(t, svg, got)
}

func TestFetchIsIdempotent(t *testing.T) {
	f := newTestFetcher(t)
	d := testDescriptor()

	httpmock.RegisterResponder("GET", d.URL(),
		httpmock.NewStringResponder(200, "<svg/>"))

	require.NoError(t, f.Fetch(context.Background(), d))
	require.NoError(t, f.Fetch(context.Background(), d))

	assert.Equal(t, 1, httpmock.GetTotalCallCount(),
		"second fetch must not perform a network call")
}

func TestFetchBadStatus(t *testing.T) {
	f := newTestFetcher(t)
	d := testDescriptor()

	httpmock.RegisterResponder("GET", d.URL(),
		httpmock.NewStringResponder(404, "not found"))

	err := f.Fetch(context.Background(), d)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, FetchBadStatus, fetchErr.Type)
	assert.Equal(t, "arrow-right", fetchErr.Icon)
	assert.Equal(t, d.URL(), fetchErr.URL)
	assert.Equal(t, 404, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "arrow-right")
	assert.Contains(t, err.Error(), d.URL())
	assert.Contains(t, err.Error(), "404")

	assert.False(t, d.Fetched(), "failed fetch must not mark the descriptor as fetched")
}

func TestFetchNetworkError(t *testing.T) {
	f := newTestFetcher(t)
	d := testDescriptor()

	httpmock.RegisterResponder("GET", d.URL(),
		httpmock.NewErrorResponder(errors.New("connection refused")))

	err := f.Fetch(context.Background(), d)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, FetchRequestFailed, fetchErr.Type)
}

func TestSVGBeforeFetch(t *testing.T) {
	d := testDescriptor()

	_, err := d.SVG()
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, FetchNotDownloaded, fetchErr.Type)
}

func TestDescriptorOutputPath(t *testing.T) {
	d := testDescriptor()
	d.OutputDir = "icons"

	assert.Equal(t, "icons/arrow-right.svg", d.OutputPath(".svg"))
	assert.Equal(t, "icons/arrow-right.tsx", d.OutputPath(".tsx"))
}
