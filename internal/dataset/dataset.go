package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

// Row maps a trimmed column name to the raw cell text.
type Row map[string]string

// Dataset is an in-memory tabular file: header names (leading/trailing
// whitespace stripped at load, lookup case-sensitive) plus one Row per
// data line.
type Dataset struct {
	Headers []string
	Rows    []Row
}

// Load reads a tabular file into memory, dispatching on the lowercased
// extension.
func Load(path string) (*Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(path)
	case ".xls", ".xlsx":
		return loadWorkbook(path)
	case ".html", ".htm":
		return loadHTMLTable(path)
	default:
		return nil, &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// Write saves the dataset to path, dispatching on the extension the same
// way Load does. HTML output is not supported.
func Write(ds *Dataset, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return writeCSV(ds, path)
	case ".xls", ".xlsx":
		return writeWorkbook(ds, path)
	default:
		return &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// Require verifies the named columns are all present, reporting every
// absent one at once.
func (d *Dataset) Require(columns ...string) error {
	present := map[string]struct{}{}
	for _, h := range d.Headers {
		present[h] = struct{}{}
	}
	missing := []string{}
	for _, c := range columns {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}

func (d *Dataset) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

func loadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Dataset{}, nil
	}
	return fromCells(records[0], records[1:]), nil
}

// loadWorkbook reads every sheet that carries the same header row as the
// first non-empty sheet; sheets with a different layout are skipped.
func loadWorkbook(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var headers []string
	var body [][]string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		head := trimCells(rows[0])
		if headers == nil {
			headers = head
			body = append(body, rows[1:]...)
			continue
		}
		if equalCells(head, headers) {
			body = append(body, rows[1:]...)
		}
	}
	if headers == nil {
		return &Dataset{}, nil
	}
	return fromCells(headers, body), nil
}

// loadHTMLTable reads the first <table> of a saved HTML export, treating
// the first row as the header.
func loadHTMLTable(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return &Dataset{}, nil
	}

	headers := []string{}
	rows.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, cell.Text())
	})

	body := [][]string{}
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := []string{}
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cell.Text())
		})
		if len(cells) > 0 {
			body = append(body, cells)
		}
	})

	return fromCells(headers, body), nil
}

func writeCSV(ds *Dataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := w.Write(rowCells(ds.Headers, row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeWorkbook(ds *Dataset, path string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range ds.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, row := range ds.Rows {
		for c, value := range rowCells(ds.Headers, row) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func fromCells(header []string, rows [][]string) *Dataset {
	headers := trimCells(header)
	ds := &Dataset{Headers: headers, Rows: make([]Row, 0, len(rows))}
	for _, cells := range rows {
		row := Row{}
		for i, name := range headers {
			if name == "" {
				continue
			}
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

func rowCells(headers []string, row Row) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		out = append(out, row[h])
	}
	return out
}

func trimCells(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, strings.TrimSpace(c))
	}
	return out
}

func equalCells(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
