// Package confidence grades extraction output beyond the raw found/requested
// ratio: field importance weighting plus per-field format validation, rolled
// into a quality grade and a manual-review flag.
package confidence

import (
	"regexp"
	"strings"

	"github.com/docstack/docfield/models"
)

// fieldWeights biases completion scoring toward identity-critical fields.
// Unlisted fields get defaultWeight.
var fieldWeights = map[string]float64{
	"name":           0.15,
	"ssn":            0.20,
	"date_of_birth":  0.15,
	"employee_id":    0.18,
	"policy_number":  0.18,
	"account_number": 0.18,

	"address": 0.10,
	"phone":   0.08,
	"email":   0.08,
	"salary":  0.12,
	"amount":  0.10,

	"department":   0.06,
	"company":      0.05,
	"organization": 0.05,
	"date":         0.05,
	"title":        0.04,
	"position":     0.04,
}

const defaultWeight = 0.05

// validationPatterns accept only well-formed values for fields whose shape is
// known. A found-but-malformed value drags the validation score down.
var validationPatterns = map[string]*regexp.Regexp{
	"ssn":            regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`),
	"phone":          regexp.MustCompile(`^\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`),
	"email":          regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`),
	"employee_id":    regexp.MustCompile(`^[A-Z]{2,4}\d{3,8}$|^\d{6,10}$`),
	"policy_number":  regexp.MustCompile(`^[A-Z]{2,3}\d{6,10}$|^POL-?\d{6,8}$`),
	"account_number": regexp.MustCompile(`^\d{8,15}$|^ACC\d{6,10}$`),
	"date_of_birth":  regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{4}$|^\d{4}[/-]\d{1,2}[/-]\d{1,2}$`),
	"salary":         regexp.MustCompile(`^\$?[\d,]+(?:\.\d{2})?$`),
	"amount":         regexp.MustCompile(`^\$?[\d,]+(?:\.\d{2})?$`),
}

// Report is the scored view of one extraction result.
type Report struct {
	Overall       float64  `json:"overall" yaml:"overall"`
	Completion    float64  `json:"completion" yaml:"completion"`
	Validation    float64  `json:"validation" yaml:"validation"`
	Grade         string   `json:"grade" yaml:"grade"`
	ManualReview  bool     `json:"manual_review" yaml:"manual_review"`
	InvalidFields []string `json:"invalid_fields,omitempty" yaml:"invalid_fields,omitempty"`
}

// Score computes the weighted report for an extraction result. Pure function;
// the result is never modified.
func Score(result *models.ExtractionResult) Report {
	report := Report{
		Completion: completionScore(result),
		Validation: 1.0,
	}

	validated, invalid := validate(result)
	if validated > 0 {
		report.Validation = 1.0 - float64(len(invalid))/float64(validated)
	}
	report.InvalidFields = invalid

	report.Overall = 0.6*report.Completion + 0.4*report.Validation
	report.Grade = grade(report.Overall)
	report.ManualReview = report.Overall < 0.75

	return report
}

// completionScore is the importance-weighted fraction of requested fields
// that resolved. Zero requested fields scores zero, matching the extractor's
// confidence convention.
func completionScore(result *models.ExtractionResult) float64 {
	var total, found float64
	for _, name := range result.Requested {
		w := weightFor(name)
		total += w
		if fv, ok := result.Fields[name]; ok && fv.Found {
			found += w
		}
	}
	if total == 0 {
		return 0
	}
	return found / total
}

// validate checks every found field with a known shape. Returns how many
// fields were checkable and which of them failed.
func validate(result *models.ExtractionResult) (checked int, invalid []string) {
	for _, name := range result.Requested {
		fv, ok := result.Fields[name]
		if !ok || !fv.Found {
			continue
		}
		p, ok := validationPatterns[normalize(name)]
		if !ok {
			continue
		}
		checked++
		if !p.MatchString(fv.Value) {
			invalid = append(invalid, name)
		}
	}
	return checked, invalid
}

func weightFor(name string) float64 {
	if w, ok := fieldWeights[normalize(name)]; ok {
		return w
	}
	return defaultWeight
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func grade(overall float64) string {
	switch {
	case overall >= 0.9:
		return "A"
	case overall >= 0.8:
		return "B"
	case overall >= 0.65:
		return "C"
	case overall >= 0.5:
		return "D"
	default:
		return "F"
	}
}
