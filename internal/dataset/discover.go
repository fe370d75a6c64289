package dataset

import (
	"os"
	"path/filepath"
	"strings"
)

var discoverExtensions = map[string]struct{}{
	".csv":  {},
	".xls":  {},
	".xlsx": {},
}

// Discover returns the single candidate data file in dir. Zero or more
// than one candidate is a loud failure so the wrong file is never picked
// silently.
func Discover(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	candidates := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := discoverExtensions[ext]; ok {
			candidates = append(candidates, entry.Name())
		}
	}

	switch len(candidates) {
	case 0:
		return "", &NoInputError{Dir: dir}
	case 1:
		return filepath.Join(dir, candidates[0]), nil
	default:
		return "", &AmbiguousInputError{Dir: dir, Candidates: candidates}
	}
}
