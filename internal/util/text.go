package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCompany trims and title-cases a raw company cell so that
// "ACME INC", " acme inc" and "Acme Inc" all group under the same key.
func NormalizeCompany(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return cases.Title(language.English).String(trimmed)
}
