package timer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes the hierarchical CSV form of the log: the header labels
// column 0 "function names" and the last column "time (s)"; every data row
// places the region name in the column matching its depth and the duration
// in the last column, all other cells blank.
func (t *Timer) WriteCSV(w io.Writer) error {
	if len(t.records) == 0 {
		return ErrNoRecords
	}

	cols := t.MaxDepth() + 2
	cw := csv.NewWriter(w)

	header := make([]string, cols)
	header[0] = "function names"
	header[cols-1] = "time (s)"
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, i := range SortByCallOrder(t.depths()) {
		r := t.records[i]
		row := make([]string, cols)
		row[r.Depth] = r.Name
		row[cols-1] = strconv.FormatFloat(r.Seconds, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the CSV form to path, overwriting any existing file.
func (t *Timer) ExportCSV(path string) error {
	if len(t.records) == 0 {
		return ErrNoRecords
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := t.WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}
