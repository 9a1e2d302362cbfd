package repos

import (
	"errors"
	"testing"
)

func TestTableLookup(t *testing.T) {
	table := DefaultTable()

	preset, err := table.Lookup("heroicons")
	if err != nil {
		t.Fatalf("Lookup(heroicons) error = %v", err)
	}
	if preset.Owner != "tailwindlabs" {
		t.Errorf("Owner = %q, want %q", preset.Owner, "tailwindlabs")
	}
	if preset.Branch != "master" {
		t.Errorf("Branch = %q, want %q", preset.Branch, "master")
	}
}

func TestTableLookupUnknown(t *testing.T) {
	table := DefaultTable()

	_, err := table.Lookup("nope")
	if err == nil {
		t.Fatal("Lookup(nope) expected error")
	}

	var unknownErr *UnknownRepositoryError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownRepositoryError", err)
	}
	if unknownErr.Name != "nope" {
		t.Errorf("Name = %q, want %q", unknownErr.Name, "nope")
	}
	if len(unknownErr.Known) == 0 {
		t.Error("Known should list registered presets")
	}
}

func TestResolveVariant(t *testing.T) {
	heroicons := Repository{
		Name: "heroicons",
		Variants: map[string]string{
			"outline": "outline",
			"solid":   "solid",
		},
		DefaultVariant: "outline",
	}

	tests := []struct {
		name    string
		repo    Repository
		variant string
		want    string
		wantErr bool
	}{
		{name: "accepted variant", repo: heroicons, variant: "solid", want: "solid"},
		{name: "empty variant resolves default", repo: heroicons, variant: "", want: "outline"},
		{name: "rejected variant", repo: heroicons, variant: "duotone", wantErr: true},
		{name: "unrestricted preset passes variant through", repo: Repository{Name: "feather"}, variant: "anything", want: "anything"},
		{name: "unrestricted preset with empty variant", repo: Repository{Name: "feather"}, variant: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.repo.ResolveVariant(tt.variant)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var invalidErr *InvalidVariantError
				if !errors.As(err, &invalidErr) {
					t.Fatalf("error type = %T, want *InvalidVariantError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveVariant() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveVariant() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultTableNames(t *testing.T) {
	names := DefaultTable().Names()
	if len(names) == 0 {
		t.Fatal("DefaultTable should register presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
