package config

// File is the shape of the declarative icons input file.
type File struct {
	// Repository is the default repository preset for icons that do
	// not name one themselves.
	Repository string `json:"repository,omitempty"`
	// Output is the default output directory for icons that do not
	// set one themselves. Defaults to ".".
	Output string `json:"output,omitempty"`
	// Icons is the ordered list of icons to fetch.
	Icons []IconSpec `json:"icons" validate:"required,min=1,dive"`
}

// IconSpec is one icon entry as given in the input file.
type IconSpec struct {
	// Name is the icon name as known to the upstream repository.
	Name string `json:"name" validate:"required"`
	// Repository overrides the file-level default preset.
	Repository string `json:"repository,omitempty"`
	// Variant selects a repository-specific variant (e.g. outline).
	Variant string `json:"variant,omitempty"`
	// Size is substituted into size-aware URL templates.
	Size int `json:"size,omitempty" validate:"omitempty,gt=0"`
	// Output overrides the file-level output directory.
	Output string `json:"output,omitempty"`
	// SaveAs overrides the sanitized icon name as target filename.
	SaveAs string `json:"saveAs,omitempty"`
	// Overwrite is carried onto the descriptor as-is.
	Overwrite bool `json:"overwrite,omitempty"`
	// TSXTransform rewrites the SVG into a typed React component.
	TSXTransform bool `json:"tsxTransform,omitempty"`
}
