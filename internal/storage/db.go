package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"fundrank/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  inputPath TEXT NOT NULL,
  outputPath TEXT,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_createdAt ON runs(createdAt);
`
	_, err := d.conn.Exec(schema)
	return err
}

// InsertRun records one pipeline run for the history view.
func (d *DB) InsertRun(traceID, inputPath, outputPath string, timings map[string]float64, counts map[string]int) error {
	timingsJSON, err := json.Marshal(timings)
	if err != nil {
		return err
	}
	countsJSON, err := json.Marshal(counts)
	if err != nil {
		return err
	}

	_, err = d.conn.Exec(
		`INSERT INTO runs (traceId, inputPath, outputPath, timingsJson, countsJson) VALUES (?, ?, ?, ?, ?)`,
		traceID, inputPath, nullable(outputPath), string(timingsJSON), string(countsJSON),
	)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	rows, err := d.conn.Query(
		`SELECT id, traceId, inputPath, COALESCE(outputPath, ''), timingsJson, countsJson, createdAt
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []internal.RunRow{}
	for rows.Next() {
		var run internal.RunRow
		if err := rows.Scan(&run.ID, &run.TraceID, &run.InputPath, &run.OutputPath,
			&run.TimingsJSON, &run.CountsJSON, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
