package textextract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestFromFile_Text(t *testing.T) {
	path := writeFile(t, "doc.txt", "Name: Jane Doe\nSSN: 123-45-6789\n")

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error: %v", err)
	}
	if doc.Kind != "text" {
		t.Errorf("kind = %q, want text", doc.Kind)
	}
	if doc.Text != doc.Plain {
		t.Error("text and plain views should be identical for .txt")
	}
	if !strings.Contains(doc.Text, "Jane Doe") {
		t.Errorf("text missing content: %q", doc.Text)
	}
}

func TestFromFile_MarkdownKeepsRawText(t *testing.T) {
	path := writeFile(t, "doc.md", "# Record\n\n**Employee ID**: EMP001234\n")

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error: %v", err)
	}
	// The raw view must keep the bold markers so label patterns can match
	// them; only the plain view loses them.
	if !strings.Contains(doc.Text, "**Employee ID**") {
		t.Errorf("raw text lost markdown markers: %q", doc.Text)
	}
	if strings.Contains(doc.Plain, "**") {
		t.Errorf("plain text kept markdown markers: %q", doc.Plain)
	}
}

func TestFromFile_HTML(t *testing.T) {
	html := `<html><body><article>
		<h1>Employee Record</h1>
		<p>Name: Jane Doe</p>
		<table><tr><td>Department</td><td>Engineering</td></tr></table>
	</article></body></html>`
	path := writeFile(t, "doc.html", html)

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error: %v", err)
	}
	if !strings.Contains(doc.Text, "Name: Jane Doe") {
		t.Errorf("html text missing paragraph line: %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Department: Engineering") {
		t.Errorf("two-cell row should read as a label pair: %q", doc.Text)
	}
}

func TestFromFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "doc.pdf", "%PDF-1.4")
	if _, err := FromFile(path); err == nil {
		t.Error("expected an error for unsupported file type")
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"header", "## Section Title", "Section Title"},
		{"bold", "**Name**: Jane", "Name: Jane"},
		{"italic", "an *important* note", "an important note"},
		{"underscore bold", "__Total__: $12", "Total: $12"},
		{"inline code", "run `docfield extract`", "run docfield extract"},
		{"link keeps label", "see [the policy](https://example.com/p)", "see the policy"},
		{"image removed", "before ![logo](logo.png) after", "before  after"},
		{"list marker", "- first item", "first item"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdown(tt.in); got != tt.want {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripMarkdown_RemovesCodeFences(t *testing.T) {
	got := StripMarkdown("before\n```\nsecret = 1\n```\nafter")
	if strings.Contains(got, "secret") {
		t.Errorf("code fence content survived: %q", got)
	}
	if !strings.Contains(got, "before") || !strings.Contains(got, "after") {
		t.Errorf("surrounding text lost: %q", got)
	}
}
