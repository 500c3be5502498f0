// Package fields maps free-form document text plus a list of requested field
// names to structured key-value output with a confidence score.
//
// Resolution is three-tiered per field: alias resolution, canonical strategy
// lookup, then a contextual "label: value" fallback built from the literal
// field name. Misses are absent results in the output, never errors. An
// Extractor is immutable after construction and safe for concurrent use.
package fields

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/docstack/docfield/models"
)

// ErrInvalidArgument reports a malformed call: a blank requested field name
// or an unparseable custom pattern. Pattern misses are never errors.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	sourceStrategy   = "strategy"
	sourceContextual = "contextual"
)

// Extractor resolves requested fields against document text. The zero value
// is not usable; construct with New or NewWithOptions.
type Extractor struct {
	strategies   map[string]recognizer
	extraAliases map[string]string
}

// Options customizes the strategy table, typically from a fields file.
type Options struct {
	// DisableBuiltins drops the built-in canonical strategies, leaving only
	// custom fields and the contextual fallback.
	DisableBuiltins bool

	// Aliases adds synonym -> canonical mappings on top of the built-ins.
	Aliases map[string]string

	// Fields adds custom recognizer sets keyed by canonical name.
	Fields []models.CustomField
}

// New returns an extractor with the built-in canonical field set.
func New() *Extractor {
	e, _ := NewWithOptions(Options{})
	return e
}

// NewWithOptions builds an extractor from the built-in set plus the given
// customizations. Custom patterns are compiled here, once, so Extract stays
// allocation-light and safely shareable.
func NewWithOptions(opts Options) (*Extractor, error) {
	strategies := make(map[string]recognizer)
	if !opts.DisableBuiltins {
		for name, r := range builtinStrategies {
			strategies[name] = r
		}
	}

	extraAliases := make(map[string]string)
	for synonym, canonical := range opts.Aliases {
		extraAliases[normalizeFieldName(synonym)] = normalizeFieldName(canonical)
	}

	for _, cf := range opts.Fields {
		name := normalizeFieldName(cf.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: custom field with blank name", ErrInvalidArgument)
		}
		compiled := make([]*regexp.Regexp, 0, len(cf.Patterns))
		for _, raw := range cf.Patterns {
			p, err := regexp.Compile(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: custom pattern for %q: %v", ErrInvalidArgument, cf.Name, err)
			}
			compiled = append(compiled, p)
		}
		strategies[name] = patternListRecognizer(compiled)
		for _, alias := range cf.Aliases {
			extraAliases[normalizeFieldName(alias)] = name
		}
	}

	return &Extractor{strategies: strategies, extraAliases: extraAliases}, nil
}

// FromFieldsFile builds an extractor from a parsed fields file.
func FromFieldsFile(ff *models.FieldsFile) (*Extractor, error) {
	if ff == nil {
		return New(), nil
	}
	return NewWithOptions(Options{
		DisableBuiltins: ff.DisableBuiltins,
		Aliases:         ff.Aliases,
		Fields:          ff.Fields,
	})
}

// Extract resolves every requested field against the document text.
//
// Requested names are deduplicated preserving first-seen order; every
// surviving name appears as a key in the result, with Found=false as the
// absent marker. Confidence is found / distinct-requested, and 0.0 when no
// fields were requested. Empty text is valid and yields all-absent results.
func (e *Extractor) Extract(req models.ExtractionRequest) (*models.ExtractionResult, error) {
	requested, err := dedupeFields(req.Fields)
	if err != nil {
		return nil, err
	}

	result := &models.ExtractionResult{
		Fields:    make(map[string]models.FieldValue, len(requested)),
		Requested: requested,
	}

	for _, field := range requested {
		result.Fields[field] = e.resolve(req.Text, field)
	}

	if len(requested) > 0 {
		result.Confidence = float64(result.FoundCount()) / float64(len(requested))
	}

	return result, nil
}

// resolve runs the tiers for one field: canonical strategy first, contextual
// fallback when no strategy exists or the strategy found nothing.
func (e *Extractor) resolve(text, field string) models.FieldValue {
	canonical := canonicalName(field, e.extraAliases)

	if strat, ok := e.strategies[canonical]; ok {
		if value, found := strat(text); found {
			return models.FieldValue{Value: value, Found: true, Source: sourceStrategy}
		}
	}

	if value, found := extractContextual(text, strings.TrimSpace(field)); found {
		return models.FieldValue{Value: value, Found: true, Source: sourceContextual}
	}

	return models.FieldValue{}
}

// dedupeFields trims and deduplicates requested names, preserving first-seen
// order. Comparison is case-insensitive to match lookup semantics, but the
// first spelling seen is kept as the result key.
func dedupeFields(fieldNames []string) ([]string, error) {
	seen := make(map[string]struct{}, len(fieldNames))
	out := make([]string, 0, len(fieldNames))
	for i, raw := range fieldNames {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("%w: blank field name at position %d", ErrInvalidArgument, i)
		}
		key := normalizeFieldName(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}

// KnownFields returns the canonical strategy names in sorted order, for the
// fields reference output.
func (e *Extractor) KnownFields() []string {
	names := make([]string, 0, len(e.strategies))
	for name := range e.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases returns the alias table (built-ins plus custom), synonym -> canonical.
func (e *Extractor) Aliases() map[string]string {
	out := make(map[string]string, len(aliases)+len(e.extraAliases))
	for k, v := range aliases {
		out[k] = v
	}
	for k, v := range e.extraAliases {
		out[k] = v
	}
	return out
}
