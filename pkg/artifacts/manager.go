// Package artifacts stores per-document extraction output on disk. The
// database holds pointers and summaries; the artifact tree holds the actual
// text and field values.
//
// Layout: <base>/<document_id>/text.txt, fields.yaml.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultBaseDir = "docfield-results"

	TextArtifact   = "text.txt"
	FieldsArtifact = "fields.yaml"
)

// Manager handles storage and retrieval of extraction artifacts.
type Manager struct {
	baseDir string
	maxAge  time.Duration // Max age for a stored artifact before it's considered stale
}

// NewManager creates a Manager and ensures the base directory exists.
// maxAge <= 0 means artifacts never go stale by age.
func NewManager(baseDir string, maxAge time.Duration) (*Manager, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &Manager{baseDir: baseDir, maxAge: maxAge}, nil
}

// BaseDir returns the artifact tree root.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// MaxAge returns the staleness window.
func (m *Manager) MaxAge() time.Duration {
	return m.maxAge
}

// DocumentDir returns the directory for a document ID.
// Example: docfield-results/42/
func (m *Manager) DocumentDir(docID int64) string {
	return filepath.Join(m.baseDir, fmt.Sprintf("%d", docID))
}

// ArtifactPath returns the full path for one artifact of a document.
func (m *Manager) ArtifactPath(docID int64, name string) string {
	return filepath.Join(m.DocumentDir(docID), name)
}

// EnsureDocumentDir creates the per-document directory.
func (m *Manager) EnsureDocumentDir(docID int64) error {
	if err := os.MkdirAll(m.DocumentDir(docID), 0750); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	return nil
}

// Get retrieves an artifact if present and fresh. The second return is false
// on a miss, whether absent or stale.
func (m *Manager) Get(docID int64, name string) ([]byte, bool, error) {
	filePath := m.ArtifactPath(docID, name)

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error statting artifact: %w", err)
	}

	if m.maxAge > 0 && time.Since(info.ModTime()) > m.maxAge {
		return nil, false, nil // Stale
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false, fmt.Errorf("error reading artifact: %w", err)
	}
	return data, true, nil
}

// Set writes an artifact, creating the document directory as needed.
func (m *Manager) Set(docID int64, name string, data []byte) error {
	if err := m.EnsureDocumentDir(docID); err != nil {
		return err
	}
	if err := os.WriteFile(m.ArtifactPath(docID, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}
