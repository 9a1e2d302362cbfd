package cli

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/iconfetch/iconfetch/internal/repos"
)

// reposCmd represents the repos command
var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List the built-in icon repository presets",
	Long: `List the icon repository presets compiled into iconfetch.

Each preset maps a repository name used in the icons input file to a
GitHub repository and raw-content URL template.

Examples:
  iconfetch repos`,
	RunE: runRepos,
}

func runRepos(cmd *cobra.Command, args []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "GitHub", "Branch", "Variants", "Demo"})
	for _, preset := range repos.DefaultTable().All() {
		branch := preset.Branch
		if branch == "" {
			branch = "main"
		}
		variants := strings.Join(preset.VariantNames(), ", ")
		if variants == "" {
			variants = "-"
		}
		t.AppendRow(table.Row{
			preset.Name,
			preset.Owner + "/" + preset.Repo,
			branch,
			variants,
			preset.DemoURL,
		})
	}
	t.Render()
	return nil
}
