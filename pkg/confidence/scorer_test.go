package confidence

import (
	"testing"

	"github.com/docstack/docfield/models"
)

func result(requested []string, found map[string]string) *models.ExtractionResult {
	r := &models.ExtractionResult{
		Fields:    make(map[string]models.FieldValue, len(requested)),
		Requested: requested,
	}
	for _, name := range requested {
		if v, ok := found[name]; ok {
			r.Fields[name] = models.FieldValue{Value: v, Found: true}
		} else {
			r.Fields[name] = models.FieldValue{}
		}
	}
	return r
}

func TestScore_AllFoundAndValid(t *testing.T) {
	r := result(
		[]string{"ssn", "email"},
		map[string]string{"ssn": "123-45-6789", "email": "a@b.co"},
	)
	report := Score(r)

	if report.Completion != 1.0 {
		t.Errorf("completion = %v, want 1.0", report.Completion)
	}
	if report.Validation != 1.0 {
		t.Errorf("validation = %v, want 1.0", report.Validation)
	}
	if report.Overall != 1.0 {
		t.Errorf("overall = %v, want 1.0", report.Overall)
	}
	if report.Grade != "A" {
		t.Errorf("grade = %q, want A", report.Grade)
	}
	if report.ManualReview {
		t.Error("manual review flagged on a perfect result")
	}
}

func TestScore_MalformedValueLowersValidation(t *testing.T) {
	r := result(
		[]string{"ssn", "email"},
		map[string]string{"ssn": "not-an-ssn", "email": "a@b.co"},
	)
	report := Score(r)

	if report.Validation != 0.5 {
		t.Errorf("validation = %v, want 0.5", report.Validation)
	}
	if len(report.InvalidFields) != 1 || report.InvalidFields[0] != "ssn" {
		t.Errorf("invalid fields = %v, want [ssn]", report.InvalidFields)
	}
	if report.Overall >= 1.0 {
		t.Errorf("overall = %v, want < 1.0", report.Overall)
	}
}

func TestScore_WeightsFavorCriticalFields(t *testing.T) {
	// Missing the SSN (weight 0.20) must hurt more than missing a
	// low-importance field like title (0.04).
	missingSSN := Score(result(
		[]string{"ssn", "title"},
		map[string]string{"title": "Engineer"},
	))
	missingTitle := Score(result(
		[]string{"ssn", "title"},
		map[string]string{"ssn": "123-45-6789"},
	))

	if missingSSN.Completion >= missingTitle.Completion {
		t.Errorf("completion: missing ssn %v, missing title %v; want ssn miss to score lower",
			missingSSN.Completion, missingTitle.Completion)
	}
}

func TestScore_EmptyResult(t *testing.T) {
	report := Score(result(nil, nil))

	if report.Completion != 0 {
		t.Errorf("completion = %v, want 0", report.Completion)
	}
	if report.Grade != "F" {
		t.Errorf("grade = %q, want F", report.Grade)
	}
	if !report.ManualReview {
		t.Error("empty result should require manual review")
	}
}

func TestScore_UncheckableFieldsKeepValidationNeutral(t *testing.T) {
	r := result(
		[]string{"department"},
		map[string]string{"department": "Engineering"},
	)
	report := Score(r)

	if report.Validation != 1.0 {
		t.Errorf("validation = %v, want neutral 1.0 with nothing checkable", report.Validation)
	}
}
