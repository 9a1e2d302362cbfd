package icon

import (
	"path/filepath"

	"github.com/iconfetch/iconfetch/internal/repos"
)

// Descriptor is the resolved, ready-to-fetch specification for one
// icon. Descriptors are created by the config loader, filled in by the
// fetcher and consumed by the writer; they live for the duration of one
// run and hold no shared state.
type Descriptor struct {
	// Name is the icon name as known to the upstream repository.
	Name string
	// OutputDir is the directory the file is written into.
	OutputDir string
	// Filename is the target filename without extension.
	Filename string
	// Variant is the resolved variant path segment ("" when unused).
	Variant string
	// Size is the icon size substituted into the URL template (0 when unused).
	Size int
	// Repository is the preset the icon is fetched from.
	Repository repos.Repository
	// Overwrite is carried from the config entry. Writes currently
	// always replace existing files regardless of this value.
	Overwrite bool
	// TSX enables the SVG to TSX component transformation.
	TSX bool

	svg     string
	fetched bool
}

// URL returns the raw-content URL this descriptor downloads from.
func (d *Descriptor) URL() string {
	return d.Repository.RawURL(d.Name, d.Variant, d.Size)
}

// Fetched reports whether the SVG text has been downloaded.
func (d *Descriptor) Fetched() bool {
	return d.fetched
}

// SVG returns the downloaded SVG text. Calling it before a successful
// fetch is a sequencing mistake and returns a typed error.
func (d *Descriptor) SVG() (string, error) {
	if !d.fetched {
		return "", NewNotFetchedError(d.Name)
	}
	return d.svg, nil
}

// setSVG caches the downloaded SVG text on the descriptor.
func (d *Descriptor) setSVG(svg string) {
	d.svg = svg
	d.fetched = true
}

// OutputPath returns the full target path for the given extension
// (".svg" or ".tsx").
func (d *Descriptor) OutputPath(ext string) string {
	return filepath.Join(d.OutputDir, d.Filename+ext)
}
