package dataset

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError reports an input or output extension outside
// the supported set.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: %s", e.Ext, e.Path)
}

// MissingColumnsError enumerates every required column absent from the
// header row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Columns, ", "))
}

type NoInputError struct {
	Dir string
}

func (e *NoInputError) Error() string {
	return fmt.Sprintf("no .csv or .xls/.xlsx file found in %s; pass the input file explicitly", e.Dir)
}

type AmbiguousInputError struct {
	Dir        string
	Candidates []string
}

func (e *AmbiguousInputError) Error() string {
	return fmt.Sprintf("multiple data files found in %s, specify which one to use:\n  - %s",
		e.Dir, strings.Join(e.Candidates, "\n  - "))
}
