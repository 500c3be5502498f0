// Package classify assigns a document type from keyword evidence and detects
// the document language. Type scores are plain keyword hit counts; the label
// with the most hits wins.
package classify

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// TypeUnknown is returned when no keyword set matches at all.
const TypeUnknown = "unknown"

// typeKeywords maps each document type to its evidence terms.
var typeKeywords = map[string][]string{
	"employment_document": {
		"employment", "employee", "employment contract", "job offer", "work agreement",
		"salary", "wage", "position", "department", "employer", "hire", "staff",
	},
	"financial_document": {
		"bank statement", "financial", "account", "balance", "transaction",
		"deposit", "withdrawal", "investment", "loan", "credit", "debit",
	},
	"legal_document": {
		"contract", "agreement", "legal", "terms", "conditions", "clause",
		"party", "witness", "notary", "court", "jurisdiction",
	},
	"medical_document": {
		"medical", "health", "patient", "doctor", "physician", "treatment",
		"diagnosis", "prescription", "hospital", "clinic", "healthcare",
	},
	"insurance_document": {
		"insurance", "policy", "coverage", "premium", "deductible", "claim",
		"beneficiary", "insured", "insurer", "protection",
	},
	"educational_document": {
		"education", "school", "university", "student", "course", "grade",
		"transcript", "diploma", "certificate", "academic",
	},
	"identification_document": {
		"identification", "passport", "license", "permit", "certificate",
		"registration", "official", "government", "issued",
	},
}

// Classification is the combined type and language verdict for a document.
type Classification struct {
	DocType            string  `json:"doc_type" yaml:"doc_type"`
	TypeScore          int     `json:"type_score" yaml:"type_score"`
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
}

// languageDetector is built once; lingua model loading is expensive and the
// detector is safe for concurrent use.
var languageDetector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Portuguese,
			lingua.Italian,
		).
		Build()
})

// Analyze runs both type and language detection.
func Analyze(text string) Classification {
	c := Classification{}
	c.DocType, c.TypeScore = DetectType(text)
	c.Language, c.LanguageConfidence = DetectLanguage(text)
	return c
}

// DetectType counts keyword hits per document type and returns the winner
// with its score. No hits at all yields TypeUnknown with score 0. Ties break
// lexicographically so repeated runs stay deterministic.
func DetectType(text string) (string, int) {
	lower := strings.ToLower(text)

	bestType := TypeUnknown
	bestScore := 0
	for docType, keywords := range typeKeywords {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && docType < bestType) {
			bestType = docType
			bestScore = score
		}
	}

	return bestType, bestScore
}

// DetectLanguage returns the lowercased language name and lingua's confidence
// for it. Very short or empty text comes back empty rather than guessed.
func DetectLanguage(text string) (string, float64) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 20 {
		return "", 0
	}

	detector := languageDetector()
	lang, ok := detector.DetectLanguageOf(trimmed)
	if !ok {
		return "", 0
	}

	conf := detector.ComputeLanguageConfidence(trimmed, lang)
	return strings.ToLower(lang.String()), conf
}
