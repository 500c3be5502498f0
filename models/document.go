// Package models defines the data structures shared between the extraction
// pipeline, the CLI, and storage.
package models

// FieldValue is the outcome for a single requested field. Found=false is the
// absent marker: the field was requested but no recognizer matched.
type FieldValue struct {
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Found  bool   `json:"found" yaml:"found"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"` // strategy, contextual
}

// ExtractionRequest pairs document text with the fields to pull out of it.
type ExtractionRequest struct {
	Text   string   `json:"text" yaml:"text"`
	Fields []string `json:"fields" yaml:"fields"`
}

// ExtractionResult maps every requested field to its value or absent marker.
// Requested holds the deduplicated field names in first-seen order, so
// confidence can be recomputed from the result alone. Results are built once
// per call and never mutated afterwards.
type ExtractionResult struct {
	Fields     map[string]FieldValue `json:"fields" yaml:"fields"`
	Requested  []string              `json:"requested" yaml:"requested"`
	Confidence float64               `json:"confidence" yaml:"confidence"`
}

// FoundCount returns the number of fields that resolved to a value.
func (r *ExtractionResult) FoundCount() int {
	n := 0
	for _, fv := range r.Fields {
		if fv.Found {
			n++
		}
	}
	return n
}

// Values flattens the result to a plain name→value map, skipping absent
// fields. Convenient for YAML output and for the confidence scorer.
func (r *ExtractionResult) Values() map[string]string {
	out := make(map[string]string, len(r.Fields))
	for name, fv := range r.Fields {
		if fv.Found {
			out[name] = fv.Value
		}
	}
	return out
}
