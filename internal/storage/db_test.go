package storage

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLedger(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "fundrank.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	err = db.InsertRun("trace-1", "partners.csv", "",
		map[string]float64{"totalMs": 12},
		map[string]int{"rows": 5, "skipped": 1})
	if err != nil {
		t.Fatal(err)
	}
	err = db.InsertRun("trace-2", "partners.csv", "out/report.xlsx",
		map[string]float64{"totalMs": 9},
		map[string]int{"rows": 5, "skipped": 0})
	if err != nil {
		t.Fatal(err)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("len=%d", len(runs))
	}
	if runs[0].TraceID != "trace-2" || runs[0].OutputPath != "out/report.xlsx" {
		t.Fatalf("latest=%+v", runs[0])
	}
	if runs[1].OutputPath != "" {
		t.Fatalf("outputPath=%q", runs[1].OutputPath)
	}
	if !strings.Contains(runs[0].CountsJSON, `"rows":5`) {
		t.Fatalf("counts=%s", runs[0].CountsJSON)
	}

	limited, err := db.ListRuns(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].TraceID != "trace-2" {
		t.Fatalf("limited=%+v", limited)
	}
}
