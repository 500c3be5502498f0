package common

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supportedExtensions are the file types the extractor can read.
var supportedExtensions = map[string]struct{}{
	".txt":      {},
	".md":       {},
	".markdown": {},
	".html":     {},
	".htm":      {},
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// ParseListFlag splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func ParseListFlag(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsSupportedFile reports whether the path has a readable document extension.
func IsSupportedFile(path string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// CollectInputFiles resolves explicit paths plus every supported file in dir
// (non-recursive). Explicit paths are validated as-is; unsupported files in a
// directory are silently skipped, but an explicitly named unsupported file is
// an error. Returns the sorted, de-duplicated list.
func CollectInputFiles(paths []string, dir string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, dup := seen[path]; !dup {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read input %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory; use --dir", path)
		}
		if !IsSupportedFile(path) {
			return nil, fmt.Errorf("unsupported file type: %s", path)
		}
		add(path)
	}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if IsSupportedFile(path) {
				add(path)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
