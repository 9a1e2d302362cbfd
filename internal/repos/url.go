package repos

import (
	"strconv"
	"strings"
)

// rawContentHost is the GitHub raw content endpoint all presets fetch from.
const rawContentHost = "https://raw.githubusercontent.com"

// defaultBranch is substituted when a preset does not pin a branch.
const defaultBranch = "main"

// RawURL builds the raw-content URL for one icon of this repository.
// The path template's {variant}, {size} and {iconName} placeholders are
// replaced by the resolved variant segment, the stringified size (empty
// when zero) and the icon name. No URL-encoding is applied beyond what
// the template literally contains; callers supply path-safe icon names.
func (r Repository) RawURL(iconName, variantSegment string, size int) string {
	sizeStr := ""
	if size > 0 {
		sizeStr = strconv.Itoa(size)
	}

	path := strings.NewReplacer(
		"{variant}", variantSegment,
		"{size}", sizeStr,
		"{iconName}", iconName,
	).Replace(r.PathTemplate)

	branch := r.Branch
	if branch == "" {
		branch = defaultBranch
	}

	return rawContentHost + "/" + r.Owner + "/" + r.Repo + "/" + branch + "/" + path
}
