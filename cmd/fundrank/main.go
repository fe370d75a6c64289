package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"fundrank/internal/config"
	"fundrank/internal/dataset"
	"fundrank/internal/pipeline"
	"fundrank/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	fs := flag.NewFlagSet("fundrank", flag.ExitOnError)
	var output string
	fs.StringVar(&output, "o", "", "write the result to this file (csv/xlsx)")
	fs.StringVar(&output, "output", "", "write the result to this file (csv/xlsx)")
	var topN int
	fs.IntVar(&topN, "n", cfg.TopDefault, "how many companies to list")
	fs.IntVar(&topN, "top", cfg.TopDefault, "how many companies to list")
	history := fs.Int("history", 0, "print the last N recorded runs and exit")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: fundrank [flags] [input-file]")
		fmt.Fprintln(os.Stderr, "Show the most-recently funded partner companies and whether they sell on cloud marketplaces.")
		fmt.Fprintln(os.Stderr, "If the input file is omitted, exactly one data file is expected in the data directory.")
		fs.PrintDefaults()
	}
	must(fs.Parse(os.Args[1:]))

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	if *history > 0 {
		must(printHistory(os.Stdout, db, *history))
		return
	}

	inputPath := fs.Arg(0)
	if inputPath == "" {
		inputPath, err = dataset.Discover(cfg.DataDir)
		must(err)
	}

	svc := pipeline.NewProcessingService(db, cfg)
	res, err := svc.ProcessFile(inputPath, output, topN)
	must(err)

	fmt.Printf("\nUsing data file: %s\n", filepath.Base(inputPath))
	fmt.Printf("Top %d companies by recent funding:\n\n", topN)
	renderTable(os.Stdout, res.Report)
	if res.Skipped > 0 {
		fmt.Printf("\nskipped %d row(s) with unusable company or funding values\n", res.Skipped)
	}
	if output != "" {
		fmt.Printf("\nwrote %d row(s) to %s\n", len(res.Report.Rows), output)
	}
	fmt.Println()
}

func renderTable(w io.Writer, ds *dataset.Dataset) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(ds.Headers)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, row := range ds.Rows {
		cells := make([]string, 0, len(ds.Headers))
		for _, h := range ds.Headers {
			cells = append(cells, row[h])
		}
		table.Append(cells)
	}
	table.Render()
}

func printHistory(w io.Writer, db *storage.DB, limit int) error {
	runs, err := db.ListRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no recorded runs")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"id", "trace", "input", "output", "counts", "created"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, run := range runs {
		table.Append([]string{
			strconv.Itoa(run.ID), run.TraceID, run.InputPath, run.OutputPath,
			run.CountsJSON, run.CreatedAt,
		})
	}
	table.Render()
	return nil
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
