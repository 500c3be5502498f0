package common

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseListFlag(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"plain", "name,ssn", []string{"name", "ssn"}},
		{"whitespace", " name , ssn ", []string{"name", "ssn"}},
		{"empty entries", "name,,ssn,", []string{"name", "ssn"}},
		{"empty string", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseListFlag(tt.value); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseListFlag(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestContentHash_Stable(t *testing.T) {
	a := ContentHash([]byte("document body"))
	b := ContentHash([]byte("document body"))
	if a != b {
		t.Error("same content produced different hashes")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if a == ContentHash([]byte("other body")) {
		t.Error("different content produced the same hash")
	}
}

func TestCollectInputFiles_Dir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.md", "skip.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}

	files, err := CollectInputFiles(nil, dir)
	if err != nil {
		t.Fatalf("CollectInputFiles() error: %v", err)
	}
	want := []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.txt")}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want sorted supported files %v", files, want)
	}
}

func TestCollectInputFiles_ExplicitUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := CollectInputFiles([]string{path}, ""); err == nil {
		t.Error("explicitly named unsupported file should error")
	}
}

func TestCollectInputFiles_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	files, err := CollectInputFiles([]string{path}, dir)
	if err != nil {
		t.Fatalf("CollectInputFiles() error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("files = %v, want one entry", files)
	}
}

func TestCollectInputFiles_MissingFile(t *testing.T) {
	if _, err := CollectInputFiles([]string{"/nonexistent/doc.txt"}, ""); err == nil {
		t.Error("expected an error for a missing input")
	}
}
