// Package textextract turns document files into plain text suitable for field
// extraction. Dispatch is by file extension; unsupported types are an error,
// not a silent fallthrough.
package textextract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is the extracted view of one input file. Text is the raw content
// used for field matching; Plain is the markup-stripped variant used for
// classification and keyword analysis. For .txt the two are identical.
type Document struct {
	Path  string `json:"path" yaml:"path"`
	Kind  string `json:"kind" yaml:"kind"`
	Text  string `json:"-" yaml:"-"`
	Plain string `json:"-" yaml:"-"`
}

// FromFile reads and extracts one document. The raw text is kept unmodified
// so label patterns like "**Name:**" still match; markup stripping only feeds
// the Plain view.
func FromFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", "":
		text := string(raw)
		return &Document{Path: path, Kind: "text", Text: text, Plain: text}, nil
	case ".md", ".markdown":
		text := string(raw)
		return &Document{Path: path, Kind: "markdown", Text: text, Plain: StripMarkdown(text)}, nil
	case ".html", ".htm":
		text, err := fromHTML(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing html %s: %w", path, err)
		}
		return &Document{Path: path, Kind: "html", Text: text, Plain: text}, nil
	default:
		return nil, fmt.Errorf("unsupported file type %q for %s", ext, path)
	}
}
