package brdfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenAndBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.brd")
	want := []byte("cadence-board-fixture-data")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fm, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer fm.Close()

	if got := fm.Bytes(); string(got) != string(want) {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
	if fm.Size() != len(want) {
		t.Errorf("Size() = %d, want %d", fm.Size(), len(want))
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.brd"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if err.Error() != "Failed to open file." {
		t.Errorf("error = %q, want %q", err.Error(), "Failed to open file.")
	}
}

func TestOpenEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.brd")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}
