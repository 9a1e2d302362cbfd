package repos

import "testing"

func TestRawURL(t *testing.T) {
	tests := []struct {
		name     string
		repo     Repository
		iconName string
		variant  string
		size     int
		want     string
	}{
		{
			name: "heroicons with variant and size",
			repo: Repository{
				Name:         "heroicons",
				Owner:        "tailwindlabs",
				Repo:         "heroicons",
				Branch:       "master",
				PathTemplate: "optimized/24/{variant}/{iconName}.svg",
			},
			iconName: "arrow-right",
			variant:  "outline",
			want:     "https://raw.githubusercontent.com/tailwindlabs/heroicons/master/optimized/24/outline/arrow-right.svg",
		},
		{
			name: "missing branch defaults to main",
			repo: Repository{
				Owner:        "feathericons",
				Repo:         "feather",
				PathTemplate: "icons/{iconName}.svg",
			},
			iconName: "activity",
			want:     "https://raw.githubusercontent.com/feathericons/feather/main/icons/activity.svg",
		},
		{
			name: "size substituted when positive",
			repo: Repository{
				Owner:        "primer",
				Repo:         "octicons",
				PathTemplate: "icons/{iconName}-{size}.svg",
			},
			iconName: "alert",
			size:     16,
			want:     "https://raw.githubusercontent.com/primer/octicons/main/icons/alert-16.svg",
		},
		{
			name: "absent size and variant substitute empty strings",
			repo: Repository{
				Owner:        "acme",
				Repo:         "icons",
				PathTemplate: "svg/{size}{variant}{iconName}.svg",
			},
			iconName: "star",
			want:     "https://raw.githubusercontent.com/acme/icons/main/svg/star.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.repo.RawURL(tt.iconName, tt.variant, tt.size)
			if got != tt.want {
				t.Errorf("RawURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
