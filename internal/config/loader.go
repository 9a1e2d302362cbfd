package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iconfetch/iconfetch/internal/icon"
	"github.com/iconfetch/iconfetch/internal/repos"
)

// Loader reads an icons input file and resolves it into fetch-ready
// descriptors against an injected preset table.
type Loader struct {
	table    *repos.Table
	validate *validator.Validate
}

// NewLoader creates a Loader bound to the given preset table.
func NewLoader(table *repos.Table) *Loader {
	return &Loader{
		table:    table,
		validate: validator.New(),
	}
}

// Load reads, validates and resolves the input file at path. The
// returned descriptors preserve input order. Any schema violation or
// unknown repository fails the whole load before any network access.
func (l *Loader) Load(path string) ([]*icon.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	if violations := l.collectViolations(&file); len(violations) > 0 {
		return nil, NewValidationError(path, violations)
	}

	descriptors := make([]*icon.Descriptor, 0, len(file.Icons))
	for i, spec := range file.Icons {
		desc, err := l.resolve(path, i, &file, spec)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, desc)
	}
	return descriptors, nil
}

// collectViolations runs schema validation and returns every violation
// found, rather than stopping at the first.
func (l *Loader) collectViolations(file *File) []string {
	var violations []string

	if err := l.validate.Struct(file); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				field := strings.TrimPrefix(fe.Namespace(), "File.")
				violations = append(violations, fmt.Sprintf("%s failed %q validation", field, fe.Tag()))
			}
		} else {
			violations = append(violations, err.Error())
		}
	}

	// Repository may default from the file level but must resolve somewhere.
	for i, spec := range file.Icons {
		if spec.Repository == "" && file.Repository == "" {
			violations = append(violations,
				fmt.Sprintf("Icons[%d].Repository is required when no default repository is set", i))
		}
	}

	return violations
}

// resolve turns one validated icon entry into a descriptor.
func (l *Loader) resolve(path string, index int, file *File, spec IconSpec) (*icon.Descriptor, error) {
	repoName := spec.Repository
	if repoName == "" {
		repoName = file.Repository
	}

	preset, err := l.table.Lookup(repoName)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigUnknownRepository, path,
			fmt.Sprintf("icons[%d] (%s)", index, spec.Name), err)
	}

	variant, err := preset.ResolveVariant(spec.Variant)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigValidationFailed, path,
			fmt.Sprintf("icons[%d] (%s)", index, spec.Name), err)
	}

	outputDir := spec.Output
	if outputDir == "" {
		outputDir = file.Output
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	filename := spec.SaveAs
	if filename == "" {
		filename = SanitizeFilename(spec.Name)
	}

	return &icon.Descriptor{
		Name:       spec.Name,
		OutputDir:  outputDir,
		Filename:   filename,
		Variant:    variant,
		Size:       spec.Size,
		Repository: preset,
		Overwrite:  spec.Overwrite,
		TSX:        spec.TSXTransform,
	}, nil
}
