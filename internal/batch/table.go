package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders the batch results as a text table for the terminal.
func (s Summary) Table() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"File", "Status", "Time"})

	for _, r := range s.Results {
		detail := r.Status
		if r.Err != nil {
			detail = fmt.Sprintf("%s: %v", r.Status, r.Err)
		}
		t.AppendRow(table.Row{
			filepath.Base(r.File),
			detail,
			r.Elapsed.Truncate(time.Second).String(),
		})
	}

	t.AppendFooter(table.Row{
		fmt.Sprintf("%d files", len(s.Results)),
		fmt.Sprintf("%d ok / %d skipped / %d failed", s.Processed, s.Skipped, s.Failed),
		"",
	})

	return t.Render()
}
