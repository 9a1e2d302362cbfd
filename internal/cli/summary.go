package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/iconfetch/iconfetch/internal/app"
)

// summaryDurationUnit is the rounding applied to the reported duration.
const summaryDurationUnit = time.Millisecond

// printSummary renders the per-icon run outcome as a table, followed by
// the aggregate counts.
func printSummary(result *app.RunResult) {
	if globalQuiet {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Icon", "Repository", "Status", "File"})
	for _, r := range result.Results {
		status := "ok"
		file := r.Path
		if r.Failed() {
			status = "failed"
			file = "-"
		}
		t.AppendRow(table.Row{r.Name, r.Repository, status, file})
	}
	t.Render()

	printInfo(fmt.Sprintf("%d written, %d failed of %d requested in %s",
		result.Written, result.Failed, result.Requested, result.Duration.Round(summaryDurationUnit)))
}
