package extract

import (
	"github.com/docstack/docfield/models"
	"github.com/docstack/docfield/pkg/classify"
	"github.com/docstack/docfield/pkg/confidence"
)

type Job struct {
	Path string
}

// Result holds the outcome of a processed document.
type Result struct {
	Path           string
	DocumentID     int64
	Extraction     *models.ExtractionResult
	Report         confidence.Report
	Classification classify.Classification
	WordCounts     map[string]int
	FileSizeBytes  int64
	Error          error
	ErrorType      string
}

// ResultSummary is the per-document block in the final output.
type ResultSummary struct {
	Path       string `json:"path" yaml:"path"`
	DocumentID int64  `json:"document_id,omitempty" yaml:"document_id,omitempty"`
	Status     string `json:"status" yaml:"status"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType  string `json:"error_type,omitempty" yaml:"error_type,omitempty"`

	Fields     map[string]models.FieldValue `json:"fields,omitempty" yaml:"fields,omitempty"`
	Confidence float64                      `json:"confidence" yaml:"confidence"`

	Quality  *confidence.Report `json:"quality,omitempty" yaml:"quality,omitempty"`
	DocType  string             `json:"doc_type,omitempty" yaml:"doc_type,omitempty"`
	Language string             `json:"language,omitempty" yaml:"language,omitempty"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalDocuments   int      `json:"total_documents" yaml:"total_documents"`
	Successful       int      `json:"successful" yaml:"successful"`
	Failed           int      `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64  `json:"total_time_seconds" yaml:"total_time_seconds"`
	TopKeywords      []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string          `json:"status" yaml:"status"`
	RunID   int64           `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Results []ResultSummary `json:"results" yaml:"results"`
	Stats   Stats           `json:"stats" yaml:"stats"`
}

// BuildSummary converts a worker result into its output block.
func BuildSummary(r Result) ResultSummary {
	summary := ResultSummary{
		Path:       r.Path,
		DocumentID: r.DocumentID,
		Status:     "success",
	}
	if r.Error != nil {
		summary.Status = "failed"
		summary.Error = r.Error.Error()
		summary.ErrorType = r.ErrorType
		return summary
	}

	if r.Extraction != nil {
		summary.Fields = r.Extraction.Fields
		summary.Confidence = r.Extraction.Confidence
	}
	report := r.Report
	summary.Quality = &report
	summary.DocType = r.Classification.DocType
	summary.Language = r.Classification.Language
	return summary
}
