package harness

import (
	"fmt"
	"strings"
	"time"

	"github.com/zoobzio/fathom/tabular"
)

// summaryRow is the shape of one line in the pass/fail table.
type summaryRow struct {
	Scope   string
	Tag     string
	Status  string
	Elapsed string
	Detail  string
}

// Summary renders results as an aligned pass/fail table with a trailing
// count line.
func Summary(results []Result) string {
	rows := make([]summaryRow, 0, len(results))
	passed := 0
	for _, res := range results {
		row := summaryRow{
			Scope:   res.Scope,
			Tag:     res.Tag,
			Status:  "pass",
			Elapsed: res.Elapsed.Round(time.Microsecond).String(),
		}
		if res.Passed {
			passed++
		} else {
			row.Status = "FAIL"
			if res.Err != nil {
				row.Detail = res.Err.Error()
			}
		}
		rows = append(rows, row)
	}

	var buf strings.Builder
	table, err := tabular.Table(rows, tabular.Options{})
	if err == nil {
		buf.WriteString(table)
	}
	fmt.Fprintf(&buf, "%d passed, %d failed\n", passed, len(results)-passed)
	return buf.String()
}
