package timer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// ErrNoRecords is returned when a report or export is requested before any
// scope has completed.
var ErrNoRecords = errors.New("no timing records")

// maxNameWidth caps indent+name length so deeply nested or long names cannot
// blow up the table width.
const maxNameWidth = 40

// Report renders the timing table: one row per record in call order, names
// indented two spaces per nesting level, durations in scientific notation.
func (t *Timer) Report() (string, error) {
	if len(t.records) == 0 {
		return "", ErrNoRecords
	}

	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.Header("function", "time (s)")

	for _, i := range SortByCallOrder(t.depths()) {
		r := t.records[i]
		name := strings.Repeat("  ", r.Depth) + r.Name
		if len(name) > maxNameWidth {
			name = name[:maxNameWidth]
		}
		table.Append(name, fmt.Sprintf("%.8E", r.Seconds))
	}

	table.Render()
	return buf.String(), nil
}
