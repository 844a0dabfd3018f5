package timer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// buildDepth2Timer records a workload with max depth 2:
// root > child > leaf, then a second top-level region.
func buildDepth2Timer() *Timer {
	tm := New()
	root := tm.Time("root", nil)
	child := tm.Time("child", nil)
	leaf := tm.Time("leaf", nil)
	leaf.End()
	child.End()
	root.End()
	tail := tm.Time("tail", nil)
	tail.End()
	return tm
}

func TestWriteCSVEmptyTimer(t *testing.T) {
	tm := New()
	var buf bytes.Buffer
	if err := tm.WriteCSV(&buf); !errors.Is(err, ErrNoRecords) {
		t.Errorf("WriteCSV on empty timer should fail with ErrNoRecords, got %v", err)
	}
}

func TestWriteCSVColumnLayout(t *testing.T) {
	tm := buildDepth2Timer()

	var buf bytes.Buffer
	if err := tm.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse exported csv: %v", err)
	}

	// Max depth 2 means 4 columns: one per depth level plus the duration.
	if len(rows) != 5 {
		t.Fatalf("Expected header plus 4 data rows, got %d rows", len(rows))
	}
	for i, row := range rows {
		if len(row) != 4 {
			t.Errorf("Row %d should have 4 columns, got %d", i, len(row))
		}
	}

	header := rows[0]
	if header[0] != "function names" {
		t.Errorf("Header column 0 should be %q, got %q", "function names", header[0])
	}
	if header[3] != "time (s)" {
		t.Errorf("Last header column should be %q, got %q", "time (s)", header[3])
	}
	if header[1] != "" || header[2] != "" {
		t.Errorf("Middle header columns should be blank, got %v", header)
	}

	// Call order: root, child, leaf, tail. Name sits in the column matching
	// depth, every other name column stays blank.
	wantNames := []struct {
		name string
		col  int
	}{
		{"root", 0},
		{"child", 1},
		{"leaf", 2},
		{"tail", 0},
	}
	for i, want := range wantNames {
		row := rows[i+1]
		if row[want.col] != want.name {
			t.Errorf("Row %d column %d should be %q, got %v", i+1, want.col, want.name, row)
		}
		for col := 0; col < 3; col++ {
			if col != want.col && row[col] != "" {
				t.Errorf("Row %d column %d should be blank, got %q", i+1, col, row[col])
			}
		}
		if row[3] == "" {
			t.Errorf("Row %d missing duration cell: %v", i+1, row)
		}
	}
}

func TestExportCSVWritesFile(t *testing.T) {
	tm := buildDepth2Timer()
	path := filepath.Join(t.TempDir(), "timings.csv")

	if err := tm.ExportCSV(path); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}
	if len(data) == 0 {
		t.Error("Exported file is empty")
	}
}

func TestExportCSVOverwrites(t *testing.T) {
	tm := buildDepth2Timer()
	path := filepath.Join(t.TempDir(), "timings.csv")
	if err := os.WriteFile(path, []byte("stale contents"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := tm.ExportCSV(path); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte("stale contents")) {
		t.Error("ExportCSV should overwrite existing files")
	}
}

func TestExportCSVBadPath(t *testing.T) {
	tm := buildDepth2Timer()
	path := filepath.Join(t.TempDir(), "missing", "dir", "timings.csv")
	if err := tm.ExportCSV(path); err == nil {
		t.Error("ExportCSV into a missing directory should fail")
	}
}
