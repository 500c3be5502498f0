package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/docstack/docfield/internal/common"
	"github.com/docstack/docfield/models"
	"github.com/docstack/docfield/pkg/analytics"
	"github.com/docstack/docfield/pkg/artifacts"
	"github.com/docstack/docfield/pkg/classify"
	"github.com/docstack/docfield/pkg/confidence"
	"github.com/docstack/docfield/pkg/db"
	"github.com/docstack/docfield/pkg/fields"
	"github.com/docstack/docfield/pkg/textextract"
	"gopkg.in/yaml.v3"
)

// fieldsArtifact is the on-disk fields.yaml payload. RequestedFields is kept
// so a cached artifact is only reused when the same fields are asked for.
type fieldsArtifact struct {
	Path            string                       `yaml:"path"`
	RequestedFields []string                     `yaml:"requested_fields"`
	Fields          map[string]models.FieldValue `yaml:"fields"`
	Confidence      float64                      `yaml:"confidence"`
	Quality         confidence.Report            `yaml:"quality"`
	DocType         string                       `yaml:"doc_type,omitempty"`
	Language        string                       `yaml:"language,omitempty"`
}

// formatKeywordsAsJSON formats word counts as a JSON object for database
// storage, limited to the top N words.
func formatKeywordsAsJSON(counts map[string]int, limit int) string {
	top := analytics.TopKeywords(counts, limit)
	jsonBytes, err := json.Marshal(top)
	if err != nil {
		return ""
	}
	return string(jsonBytes)
}

func run(logger *slog.Logger, config *models.ExtractConfig, extractor *fields.Extractor, manager *artifacts.Manager, force bool, database *db.DB, runID int64) ([]Result, map[string]int, error) {
	logger.Info("Starting concurrent extract phase", "document_count", len(config.Paths), "workers", config.WorkerCount, "force", force, "max_age", manager.MaxAge())
	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.Paths))
	results := make(chan Result, len(config.Paths))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(w, logger, config, extractor, manager, &wg, jobs, results, force, database, runID)
	}

	for _, path := range config.Paths {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extract workers finished")

	allResults := make([]Result, 0, len(config.Paths))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more documents failed")
		}
	}

	intermediate := []map[string]int{}
	for _, result := range allResults {
		if result.WordCounts != nil {
			intermediate = append(intermediate, result.WordCounts)
		}
	}
	finalWordCounts := analytics.Merge(intermediate)

	return allResults, finalWordCounts, runErr
}

func worker(id int, logger *slog.Logger, config *models.ExtractConfig, extractor *fields.Extractor, manager *artifacts.Manager, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, force bool, database *db.DB, runID int64) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "path", job.Path)
		results <- processDocument(id, logger, job.Path, config, extractor, manager, force, database, runID)
	}
}

func processDocument(id int, logger *slog.Logger, path string, config *models.ExtractConfig, extractor *fields.Extractor, manager *artifacts.Manager, force bool, database *db.DB, runID int64) Result {
	result := Result{Path: path}

	doc, err := textextract.FromFile(path)
	if err != nil {
		logger.Error("Error reading document", "worker_id", id, "path", path, "error", err)
		result.Error = err
		result.ErrorType = "read_error"
		return result
	}

	hash := common.ContentHash([]byte(doc.Text))
	result.FileSizeBytes = int64(len(doc.Text))

	var docID int64
	if database != nil {
		docID, err = database.InsertDocument(path, hash, doc.Kind, result.FileSizeBytes)
		if err != nil {
			logger.Warn("Failed to insert document to DB", "path", path, "error", err)
		}
		result.DocumentID = docID
	}

	// Reuse a fresh artifact when the same fields were asked for last time.
	if !force && docID > 0 {
		if cached, ok := reuseArtifact(logger, manager, docID, config.Fields); ok {
			logger.Info("Fields artifact found in storage, using it", "worker_id", id, "path", path)
			result.Extraction = &models.ExtractionResult{
				Fields:     cached.Fields,
				Requested:  cached.RequestedFields,
				Confidence: cached.Confidence,
			}
			result.Report = cached.Quality
			result.Classification = classify.Classification{DocType: cached.DocType, Language: cached.Language}
			result.WordCounts = analytics.Frequencies(doc.Plain)
			recordResult(logger, database, runID, docID, result)
			return result
		}
	}

	classification := classify.Analyze(doc.Plain)
	result.Classification = classification
	if database != nil && docID > 0 {
		if err := database.UpdateDocumentClassification(docID, classification.DocType, classification.TypeScore, classification.Language); err != nil {
			logger.Warn("Failed to update classification", "path", path, "error", err)
		}
	}

	extraction, err := extractor.Extract(models.ExtractionRequest{Text: doc.Text, Fields: config.Fields})
	if err != nil {
		logger.Error("Error extracting fields", "worker_id", id, "path", path, "error", err)
		result.Error = err
		result.ErrorType = "extract_error"
		recordResult(logger, database, runID, docID, result)
		return result
	}
	result.Extraction = extraction
	result.Report = confidence.Score(extraction)
	result.WordCounts = analytics.Frequencies(doc.Plain)

	if docID > 0 {
		storeArtifacts(logger, manager, docID, path, doc, config.Fields, result)
	}
	recordResult(logger, database, runID, docID, result)

	logger.Info("Worker finished processing", "worker_id", id, "path", path)
	return result
}

// reuseArtifact loads a fresh fields.yaml if its requested field list matches.
func reuseArtifact(logger *slog.Logger, manager *artifacts.Manager, docID int64, requested []string) (*fieldsArtifact, bool) {
	data, fresh, err := manager.Get(docID, artifacts.FieldsArtifact)
	if err != nil {
		logger.Warn("Error checking artifact storage, extracting fresh", "document_id", docID, "error", err)
		return nil, false
	}
	if !fresh {
		return nil, false
	}

	var cached fieldsArtifact
	if err := yaml.Unmarshal(data, &cached); err != nil {
		logger.Warn("Failed to parse cached fields artifact", "document_id", docID, "error", err)
		return nil, false
	}
	if !reflect.DeepEqual(cached.RequestedFields, requested) {
		return nil, false
	}
	return &cached, true
}

func storeArtifacts(logger *slog.Logger, manager *artifacts.Manager, docID int64, path string, doc *textextract.Document, requested []string, result Result) {
	if err := manager.Set(docID, artifacts.TextArtifact, []byte(doc.Text)); err != nil {
		logger.Warn("Failed to store text artifact", "path", path, "error", err)
	}

	payload := fieldsArtifact{
		Path:            path,
		RequestedFields: requested,
		Fields:          result.Extraction.Fields,
		Confidence:      result.Extraction.Confidence,
		Quality:         result.Report,
		DocType:         result.Classification.DocType,
		Language:        result.Classification.Language,
	}
	yamlData, err := yaml.Marshal(payload)
	if err != nil {
		logger.Warn("Failed to marshal fields artifact", "path", path, "error", err)
		return
	}
	if err := manager.Set(docID, artifacts.FieldsArtifact, yamlData); err != nil {
		logger.Warn("Failed to store fields artifact", "path", path, "error", err)
	}
}

func recordResult(logger *slog.Logger, database *db.DB, runID, docID int64, result Result) {
	if database == nil || runID == 0 || docID == 0 {
		return
	}

	if err := database.AddRunDocument(runID, docID); err != nil {
		logger.Warn("Failed to add run document", "path", result.Path, "error", err)
	}

	status := "success"
	errorMessage := ""
	var conf, overall float64
	grade := ""
	manualReview := false
	if result.Error != nil {
		status = "failed"
		errorMessage = result.Error.Error()
	} else {
		if result.Extraction != nil {
			conf = result.Extraction.Confidence
		}
		overall = result.Report.Overall
		grade = result.Report.Grade
		manualReview = result.Report.ManualReview
	}

	if err := database.RecordRunResult(runID, docID, status, errorMessage, conf, overall, grade, manualReview); err != nil {
		logger.Warn("Failed to record run result", "path", result.Path, "error", err)
	}

	if result.Extraction != nil {
		for _, name := range result.Extraction.Requested {
			fv := result.Extraction.Fields[name]
			if err := database.InsertFieldValue(runID, docID, name, fv.Value, fv.Found, fv.Source); err != nil {
				logger.Warn("Failed to insert field value", "path", result.Path, "field", name, "error", err)
			}
		}
	}
}
