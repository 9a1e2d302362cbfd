package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iconfetch/iconfetch/internal/config"
	"github.com/iconfetch/iconfetch/internal/icon"
	"github.com/iconfetch/iconfetch/internal/repos"
	"github.com/iconfetch/iconfetch/internal/transform"
	"github.com/iconfetch/iconfetch/internal/writer"
)

// DefaultConcurrency bounds the download fan-out when the caller does
// not set one.
const DefaultConcurrency = 8

// RunOptions contains options for a fetch run.
type RunOptions struct {
	// ConfigFile is the path to the icons input file.
	ConfigFile string
	// Concurrency bounds the number of parallel downloads.
	Concurrency int
	// Logger receives structured progress and error output.
	Logger *zerolog.Logger
	// Table is the repository preset table. Defaults to the built-in table.
	Table *repos.Table
	// Fetcher downloads SVG content. Defaults to an HTTP fetcher.
	Fetcher *icon.Fetcher
	// Writer writes files to disk. Defaults to a filesystem writer.
	Writer writer.Writer
}

// IconResult is the outcome for one icon in a run.
type IconResult struct {
	// Name is the icon name from the config.
	Name string
	// Repository is the preset the icon was fetched from.
	Repository string
	// Path is the output file path (empty on failure before write).
	Path string
	// Err is the failure, if any.
	Err error
}

// Failed reports whether this icon's pipeline returned an error.
func (r IconResult) Failed() bool {
	return r.Err != nil
}

// RunResult aggregates per-icon outcomes of a run.
type RunResult struct {
	// Requested is the number of icons in the config.
	Requested int
	// Written is the number of files successfully written.
	Written int
	// Failed is the number of icons whose pipeline errored.
	Failed int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Results holds per-icon outcomes in config order.
	Results []IconResult
}

// Run loads the config and executes the full download pipeline for
// every icon with a bounded worker pool. Config errors abort the run
// before any download; per-icon errors are isolated and collected into
// the result so callers can aggregate a deterministic exit status.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.ConfigFile == "" {
		opts.ConfigFile = config.DefaultConfigFile
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	if opts.Table == nil {
		opts.Table = repos.DefaultTable()
	}
	if opts.Fetcher == nil {
		opts.Fetcher = icon.NewFetcher(opts.Logger)
	}
	if opts.Writer == nil {
		opts.Writer = writer.NewFileWriter(opts.Logger)
	}

	descriptors, err := config.NewLoader(opts.Table).Load(opts.ConfigFile)
	if err != nil {
		return nil, NewLoadError("failed to load icon configuration", err)
	}

	opts.Logger.Debug().
		Int("icons", len(descriptors)).
		Int("concurrency", opts.Concurrency).
		Msg("starting download run")

	start := time.Now()
	results := make([]IconResult, len(descriptors))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < opts.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				d := descriptors[i]
				path, err := processIcon(ctx, opts.Fetcher, opts.Writer, d)
				results[i] = IconResult{
					Name:       d.Name,
					Repository: d.Repository.Name,
					Path:       path,
					Err:        err,
				}
			}
		}()
	}
	for i := range descriptors {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	result := &RunResult{
		Requested: len(descriptors),
		Duration:  time.Since(start),
		Results:   results,
	}
	for _, r := range results {
		if r.Failed() {
			result.Failed++
			opts.Logger.Debug().Err(r.Err).Str("icon", r.Name).Msg("icon pipeline failed")
		} else {
			result.Written++
		}
	}
	return result, nil
}

// processIcon runs the fetch, optional transform and write steps for
// one descriptor. Returns the output path on success.
func processIcon(ctx context.Context, f *icon.Fetcher, w writer.Writer, d *icon.Descriptor) (string, error) {
	if err := f.Fetch(ctx, d); err != nil {
		return "", err
	}

	svg, err := d.SVG()
	if err != nil {
		return "", err
	}

	if d.TSX {
		path := d.OutputPath(".tsx")
		return path, w.WriteFile(path, []byte(transform.Component(d.Filename, svg)))
	}

	path := d.OutputPath(".svg")
	return path, w.WriteFile(path, []byte(svg))
}
