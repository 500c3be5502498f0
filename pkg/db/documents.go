package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DocumentInfo represents one stored document.
type DocumentInfo struct {
	DocumentID  int64
	Path        string
	ContentHash string
	Kind        string
	SizeBytes   int64
	DocType     sql.NullString
	TypeScore   int
	Language    sql.NullString
	CreatedAt   time.Time
}

// InsertDocument inserts a document keyed by content hash, returning the
// document_id. A document with the same hash keeps its row; only path and
// size are refreshed (the file may have moved).
func (db *DB) InsertDocument(path, contentHash, kind string, sizeBytes int64) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT document_id FROM documents WHERE content_hash = ?", contentHash).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE documents SET path = ?, size_bytes = ?, updated_at = CURRENT_TIMESTAMP
			WHERE document_id = ?
		`, path, sizeBytes, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to refresh document: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing document: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO documents (path, content_hash, kind, size_bytes)
		VALUES (?, ?, ?, ?)
	`, path, contentHash, kind, sizeBytes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	docID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return docID, nil
}

// UpdateDocumentClassification records type and language detection results.
func (db *DB) UpdateDocumentClassification(docID int64, docType string, typeScore int, language string) error {
	_, err := db.Exec(`
		UPDATE documents SET
			doc_type = ?,
			type_score = ?,
			language = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE document_id = ?
	`, NewNullString(docType), typeScore, NewNullString(language), docID)
	if err != nil {
		return fmt.Errorf("failed to update classification: %w", err)
	}
	return nil
}

// GetDocumentID returns the document_id for a content hash.
func (db *DB) GetDocumentID(contentHash string) (int64, error) {
	var docID int64
	err := db.QueryRow("SELECT document_id FROM documents WHERE content_hash = ?", contentHash).Scan(&docID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("document not found: %s", contentHash)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return docID, nil
}

// GetDocument returns the stored document row.
func (db *DB) GetDocument(docID int64) (*DocumentInfo, error) {
	var info DocumentInfo
	err := db.QueryRow(`
		SELECT document_id, path, content_hash, kind, size_bytes, doc_type, type_score, language, created_at
		FROM documents
		WHERE document_id = ?
	`, docID).Scan(
		&info.DocumentID, &info.Path, &info.ContentHash, &info.Kind,
		&info.SizeBytes, &info.DocType, &info.TypeScore, &info.Language, &info.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document not found: %d", docID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &info, nil
}

// SetDocumentMetadata sets a metadata key-value pair for a document (upsert).
func (db *DB) SetDocumentMetadata(docID int64, namespace, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO document_metadata (document_id, namespace, key, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(document_id, namespace, key) DO UPDATE SET value = excluded.value
	`, docID, namespace, key, value)
	if err != nil {
		return fmt.Errorf("failed to set document metadata: %w", err)
	}
	return nil
}

// GetDocumentMetadata returns all metadata pairs for a document in one
// namespace.
func (db *DB) GetDocumentMetadata(docID int64, namespace string) (map[string]string, error) {
	rows, err := db.Query(`
		SELECT key, value FROM document_metadata
		WHERE document_id = ? AND namespace = ?
	`, docID, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to get document metadata: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

// NewNullString creates a sql.NullString from a string value.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
