package db

import (
	"database/sql"
	"fmt"
	"time"
)

// RunInfo represents one extract invocation.
type RunInfo struct {
	RunID         int64
	CreatedAt     time.Time
	DocumentCount int
	SuccessCount  int
	FailedCount   int
	Fields        sql.NullString
	OutputDir     string
	TopKeywords   sql.NullString // JSON array of "word:count" strings
}

// RunResultInfo is the per-document outcome within a run.
type RunResultInfo struct {
	ResultID     int64
	DocumentID   int64
	Path         string
	Status       string
	ErrorMessage sql.NullString
	Confidence   float64
	OverallScore float64
	Grade        sql.NullString
	ManualReview bool
}

// FieldValueInfo is one stored field value for a run/document pair.
type FieldValueInfo struct {
	FieldName string
	Value     sql.NullString
	Found     bool
	Source    sql.NullString
}

// CreateRun inserts a new run row and returns its ID.
func (db *DB) CreateRun(documentCount int, fields, outputDir string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (document_count, fields, output_dir)
		VALUES (?, ?, ?)
	`, documentCount, NewNullString(fields), outputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// AddRunDocument links a document to a run.
func (db *DB) AddRunDocument(runID, docID int64) error {
	_, err := db.Exec(`
		INSERT OR IGNORE INTO run_documents (run_id, document_id)
		VALUES (?, ?)
	`, runID, docID)
	if err != nil {
		return fmt.Errorf("failed to add run document: %w", err)
	}
	return nil
}

// RecordRunResult stores the outcome for one document in a run (upsert).
func (db *DB) RecordRunResult(runID, docID int64, status, errorMessage string, confidence, overallScore float64, grade string, manualReview bool) error {
	_, err := db.Exec(`
		INSERT INTO run_results (run_id, document_id, status, error_message, confidence, overall_score, grade, manual_review)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, document_id) DO UPDATE SET
			status = excluded.status,
			error_message = excluded.error_message,
			confidence = excluded.confidence,
			overall_score = excluded.overall_score,
			grade = excluded.grade,
			manual_review = excluded.manual_review
	`, runID, docID, status, NewNullString(errorMessage), confidence, overallScore, NewNullString(grade), manualReview)
	if err != nil {
		return fmt.Errorf("failed to record run result: %w", err)
	}
	return nil
}

// InsertFieldValue stores one extracted field for a run/document pair.
func (db *DB) InsertFieldValue(runID, docID int64, fieldName, value string, found bool, source string) error {
	_, err := db.Exec(`
		INSERT INTO field_values (run_id, document_id, field_name, value, found, source)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, document_id, field_name) DO UPDATE SET
			value = excluded.value,
			found = excluded.found,
			source = excluded.source
	`, runID, docID, fieldName, NewNullString(value), found, NewNullString(source))
	if err != nil {
		return fmt.Errorf("failed to insert field value: %w", err)
	}
	return nil
}

// FinishRun writes the final counters and keyword summary for a run.
func (db *DB) FinishRun(runID int64, successCount, failedCount int, topKeywordsJSON string) error {
	_, err := db.Exec(`
		UPDATE runs SET
			success_count = ?,
			failed_count = ?,
			top_keywords = ?
		WHERE run_id = ?
	`, successCount, failedCount, NewNullString(topKeywordsJSON), runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunInfo, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, created_at, document_count, success_count, failed_count, fields, output_dir, top_keywords
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var run RunInfo
		err := rows.Scan(&run.RunID, &run.CreatedAt, &run.DocumentCount, &run.SuccessCount,
			&run.FailedCount, &run.Fields, &run.OutputDir, &run.TopKeywords)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one run row.
func (db *DB) GetRun(runID int64) (*RunInfo, error) {
	var run RunInfo
	err := db.QueryRow(`
		SELECT run_id, created_at, document_count, success_count, failed_count, fields, output_dir, top_keywords
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(&run.RunID, &run.CreatedAt, &run.DocumentCount, &run.SuccessCount,
		&run.FailedCount, &run.Fields, &run.OutputDir, &run.TopKeywords)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %d", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// GetRunResults returns every per-document outcome for a run.
func (db *DB) GetRunResults(runID int64) ([]RunResultInfo, error) {
	rows, err := db.Query(`
		SELECT r.result_id, r.document_id, d.path, r.status, r.error_message,
			r.confidence, r.overall_score, r.grade, r.manual_review
		FROM run_results r
		JOIN documents d ON r.document_id = d.document_id
		WHERE r.run_id = ?
		ORDER BY r.result_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}
	defer rows.Close()

	var results []RunResultInfo
	for rows.Next() {
		var r RunResultInfo
		err := rows.Scan(&r.ResultID, &r.DocumentID, &r.Path, &r.Status, &r.ErrorMessage,
			&r.Confidence, &r.OverallScore, &r.Grade, &r.ManualReview)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetFieldValues returns the stored field values for one run/document pair.
func (db *DB) GetFieldValues(runID, docID int64) ([]FieldValueInfo, error) {
	rows, err := db.Query(`
		SELECT field_name, value, found, source
		FROM field_values
		WHERE run_id = ? AND document_id = ?
		ORDER BY field_name
	`, runID, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to get field values: %w", err)
	}
	defer rows.Close()

	var values []FieldValueInfo
	for rows.Next() {
		var v FieldValueInfo
		if err := rows.Scan(&v.FieldName, &v.Value, &v.Found, &v.Source); err != nil {
			return nil, fmt.Errorf("failed to scan field value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
