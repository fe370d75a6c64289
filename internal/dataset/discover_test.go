package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverSingleCandidate(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Partner Leads.csv")
	touch(t, dir, "notes.txt")

	path, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "Partner Leads.csv" {
		t.Fatalf("path=%q", path)
	}
}

func TestDiscoverNoCandidates(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")

	_, err := Discover(dir)
	var nie *NoInputError
	if !errors.As(err, &nie) {
		t.Fatalf("err=%v", err)
	}
}

func TestDiscoverAmbiguous(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.csv")
	touch(t, dir, "b.xlsx")

	_, err := Discover(dir)
	var aie *AmbiguousInputError
	if !errors.As(err, &aie) {
		t.Fatalf("err=%v", err)
	}
	if len(aie.Candidates) != 2 {
		t.Fatalf("candidates=%v", aie.Candidates)
	}
}
