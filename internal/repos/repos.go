package repos

import "sort"

// Repository describes how to construct a raw-content URL for a named
// open-source icon set hosted on GitHub.
type Repository struct {
	// Name is the preset name used in configuration files.
	Name string
	// Owner is the GitHub account owning the repository.
	Owner string
	// Repo is the GitHub repository name.
	Repo string
	// Branch is the git branch to fetch from. Empty means "main".
	Branch string
	// PathTemplate is the in-repo path with {variant}, {size} and
	// {iconName} placeholders.
	PathTemplate string
	// Variants maps accepted variant names to the path segment used in
	// the template. A nil map means the preset accepts any variant
	// value (including none).
	Variants map[string]string
	// DefaultVariant is used when a config entry omits the variant.
	DefaultVariant string
	// DemoURL points at the icon set's browsable gallery, if any.
	DemoURL string
}

// VariantNames returns the accepted variant names in sorted order.
// Returns nil for presets without a variant restriction.
func (r Repository) VariantNames() []string {
	if len(r.Variants) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.Variants))
	for name := range r.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveVariant maps a config-level variant name to the path segment
// substituted into the URL template. An empty variant resolves to the
// preset default. Presets without a variant map pass the value through.
func (r Repository) ResolveVariant(variant string) (string, error) {
	if variant == "" {
		variant = r.DefaultVariant
	}
	if len(r.Variants) == 0 {
		return variant, nil
	}
	segment, ok := r.Variants[variant]
	if !ok {
		return "", NewInvalidVariantError(r.Name, variant, r.VariantNames())
	}
	return segment, nil
}

// Table is an immutable lookup of repository presets, constructed once
// at startup and injected into the config loader.
type Table struct {
	presets map[string]Repository
}

// NewTable builds a Table from the given presets, keyed by name.
func NewTable(presets ...Repository) *Table {
	m := make(map[string]Repository, len(presets))
	for _, p := range presets {
		m[p.Name] = p
	}
	return &Table{presets: m}
}

// Lookup returns the preset registered under name.
func (t *Table) Lookup(name string) (Repository, error) {
	preset, ok := t.presets[name]
	if !ok {
		return Repository{}, NewUnknownRepositoryError(name, t.Names())
	}
	return preset, nil
}

// Names returns all registered preset names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.presets))
	for name := range t.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered presets sorted by name.
func (t *Table) All() []Repository {
	all := make([]Repository, 0, len(t.presets))
	for _, name := range t.Names() {
		all = append(all, t.presets[name])
	}
	return all
}
