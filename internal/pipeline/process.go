package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"fundrank/internal/config"
	"fundrank/internal/dataset"
	"fundrank/internal/storage"
)

type ProcessingService struct {
	db  *storage.DB
	cfg config.Config
}

// NewProcessingService wires the ranking pipeline to its config and the
// run ledger. db may be nil; runs are then not recorded.
func NewProcessingService(db *storage.DB, cfg config.Config) *ProcessingService {
	return &ProcessingService{db: db, cfg: cfg}
}

type ProcessResult struct {
	Report    *dataset.Dataset
	TotalRows int
	Skipped   int
	Companies int
}

// ProcessFile runs the whole transform: load, validate columns,
// normalize, rank, render, optionally write the report. Structural
// failures abort with no partial output; row-level junk follows the
// configured lenient/strict policy.
func (s *ProcessingService) ProcessFile(inputPath, outputPath string, topN int) (ProcessResult, error) {
	start := time.Now()

	ds, err := dataset.Load(inputPath)
	if err != nil {
		return ProcessResult{}, err
	}

	required := []string{s.cfg.CompanyColumn, s.cfg.FundingColumn}
	if s.cfg.MarketplaceRequired {
		required = append(required, s.cfg.MarketplaceColumn)
	}
	if err := ds.Require(required...); err != nil {
		return ProcessResult{}, err
	}

	loaded := time.Now()

	records, skipped, err := NormalizeRows(ds, s.cfg)
	if err != nil {
		return ProcessResult{}, err
	}

	aggs := Aggregate(records)
	ranked := TopN(aggs, topN)
	report := BuildReport(ranked, ds.HasColumn(s.cfg.MarketplaceColumn), s.cfg)

	if outputPath != "" {
		if err := dataset.Write(report, outputPath); err != nil {
			return ProcessResult{}, err
		}
	}

	if s.db != nil {
		_ = s.db.InsertRun(traceID(), inputPath, outputPath,
			map[string]float64{
				"loadMs":  float64(loaded.Sub(start).Milliseconds()),
				"totalMs": float64(time.Since(start).Milliseconds()),
			},
			map[string]int{
				"rows":      len(ds.Rows),
				"skipped":   skipped,
				"companies": len(aggs),
				"reported":  len(ranked),
			})
	}

	return ProcessResult{
		Report:    report,
		TotalRows: len(ds.Rows),
		Skipped:   skipped,
		Companies: len(aggs),
	}, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
