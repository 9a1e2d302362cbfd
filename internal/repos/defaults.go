package repos

// DefaultTable returns the built-in preset table. Presets are not
// user-extensible at runtime; adding an icon set means adding an entry
// here.
func DefaultTable() *Table {
	return NewTable(
		Repository{
			Name:         "heroicons",
			Owner:        "tailwindlabs",
			Repo:         "heroicons",
			Branch:       "master",
			PathTemplate: "optimized/{size}/{variant}/{iconName}.svg",
			Variants: map[string]string{
				"outline": "outline",
				"solid":   "solid",
			},
			DefaultVariant: "outline",
			DemoURL:        "https://heroicons.com",
		},
		Repository{
			Name:         "feather",
			Owner:        "feathericons",
			Repo:         "feather",
			Branch:       "master",
			PathTemplate: "icons/{iconName}.svg",
			DemoURL:      "https://feathericons.com",
		},
		Repository{
			Name:         "lucide",
			Owner:        "lucide-icons",
			Repo:         "lucide",
			PathTemplate: "icons/{iconName}.svg",
			DemoURL:      "https://lucide.dev/icons",
		},
		Repository{
			Name:         "bootstrap",
			Owner:        "twbs",
			Repo:         "icons",
			PathTemplate: "icons/{iconName}.svg",
			DemoURL:      "https://icons.getbootstrap.com",
		},
		Repository{
			Name:         "tabler",
			Owner:        "tabler",
			Repo:         "tabler-icons",
			PathTemplate: "icons/{variant}/{iconName}.svg",
			Variants: map[string]string{
				"outline": "outline",
				"filled":  "filled",
			},
			DefaultVariant: "outline",
			DemoURL:        "https://tabler.io/icons",
		},
		Repository{
			Name:         "octicons",
			Owner:        "primer",
			Repo:         "octicons",
			PathTemplate: "icons/{iconName}-{size}.svg",
			DemoURL:      "https://primer.style/octicons",
		},
		Repository{
			Name:         "ionicons",
			Owner:        "ionic-team",
			Repo:         "ionicons",
			PathTemplate: "src/svg/{iconName}.svg",
			DemoURL:      "https://ionic.io/ionicons",
		},
		Repository{
			Name:         "mdi",
			Owner:        "Templarian",
			Repo:         "MaterialDesign",
			Branch:       "master",
			PathTemplate: "svg/{iconName}.svg",
			DemoURL:      "https://pictogrammers.com/library/mdi",
		},
	)
}
