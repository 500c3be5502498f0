package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// recognizer scans document text for one canonical field. The boolean is
// false when nothing matched; that is a legitimate absent result, not an
// error.
type recognizer func(text string) (string, bool)

// Shared patterns, compiled once at startup. Recognizers are read-only after
// construction so concurrent Extract calls can share them freely.
var (
	ssnPattern   = regexp.MustCompile(`\b\d{3}[-.\s]?\d{2}[-.\s]?\d{4}\b`)
	phonePattern = regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})\b`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Date forms in priority order: MM/DD/YYYY, MM-DD-YYYY, YYYY-MM-DD,
	// DD Month YYYY. First form that matches anywhere wins.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
		regexp.MustCompile(`\b\d{1,2}\s+[A-Za-z]+\s+\d{4}\b`),
	}

	currencyPattern = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)

	// Labeled-value contexts. The label group is case-insensitive but the
	// captured value keeps its own casing rules.
	nameContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i:name|insured|policyholder|policy\s*owner|customer)\s*:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\s*,\s*(?i:the\s*)?(?i:insured|policyholder)`),
	}
	generalNamePattern = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)

	birthContextPattern = regexp.MustCompile(`(?i)(?:date\s*of\s*birth|dob|born)[:\s]*([^\n]{0,30})`)

	addressPattern = regexp.MustCompile(`(?i)\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Circle|Cir|Court|Ct)[,\s]+[A-Za-z\s]+[,\s]+[A-Z]{2}[,\s]*\d{5}`)

	policyContextPattern = regexp.MustCompile(`(?i)policy\s*(?:number|#|no)[:\s]*([A-Za-z0-9\-_]{6,15})`)
	policyPatterns       = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z]{2,3}\d{6,10}\b`),
		regexp.MustCompile(`(?i)\bPOL[-_]?\d{6,8}\b`),
		regexp.MustCompile(`\b\d{8,12}\b`),
		regexp.MustCompile(`\b[A-Z]\d{7,9}\b`),
	}

	accountContextPattern = regexp.MustCompile(`(?i)(?:account|employee|customer|member)\s*(?:id|number|#|no)[:\s]*([A-Za-z0-9][A-Za-z0-9\-_]{3,14})`)

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Za-z\s]+(?:Inc|LLC|Corp|Corporation|Company|Co\.|Insurance))`),
		regexp.MustCompile(`([A-Z][A-Za-z\s]+ Insurance)`),
	}
)

// builtinStrategies maps canonical field names to their recognizer.
// Alias resolution happens before this lookup (see aliases.go).
var builtinStrategies = map[string]recognizer{
	"name":           extractName,
	"ssn":            extractSSN,
	"phone":          extractPhone,
	"email":          extractEmail,
	"date_of_birth":  extractDateOfBirth,
	"address":        extractAddress,
	"policy_number":  extractPolicyNumber,
	"account_number": extractAccountNumber,
	"amount":         extractCurrencyAmount,
	"date":           extractDate,
	"company":        extractCompany,
}

func extractName(text string) (string, bool) {
	for _, p := range nameContextPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	if m := generalNamePattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// extractSSN normalizes any separator style to XXX-XX-XXXX.
func extractSSN(text string) (string, bool) {
	m := ssnPattern.FindString(text)
	if m == "" {
		return "", false
	}
	var digits strings.Builder
	for _, r := range m {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 9 {
		return "", false
	}
	return d[:3] + "-" + d[3:5] + "-" + d[5:], true
}

// extractPhone normalizes to (AAA) BBB-CCCC.
func extractPhone(text string) (string, bool) {
	m := phonePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return "(" + m[1] + ") " + m[2] + "-" + m[3], true
}

func extractEmail(text string) (string, bool) {
	m := emailPattern.FindString(text)
	return m, m != ""
}

// extractDateOfBirth only accepts dates that appear right after a
// birth-related label, so an unrelated document date never leaks in.
func extractDateOfBirth(text string) (string, bool) {
	m := birthContextPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	for _, p := range datePatterns {
		if d := p.FindString(m[1]); d != "" {
			return d, true
		}
	}
	return "", false
}

func extractAddress(text string) (string, bool) {
	m := addressPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

func extractPolicyNumber(text string) (string, bool) {
	if m := policyContextPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	for _, p := range policyPatterns {
		if m := p.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

func extractAccountNumber(text string) (string, bool) {
	if m := accountContextPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// extractCurrencyAmount returns the largest dollar amount in the document;
// on benefit and coverage fields the headline figure is what callers want.
func extractCurrencyAmount(text string) (string, bool) {
	matches := currencyPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return "", false
	}
	best := matches[0]
	bestVal := currencyValue(best)
	for _, m := range matches[1:] {
		if v := currencyValue(m); v > bestVal {
			best, bestVal = m, v
		}
	}
	return best, true
}

func currencyValue(s string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(s)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

func extractDate(text string) (string, bool) {
	for _, p := range datePatterns {
		if m := p.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

func extractCompany(text string) (string, bool) {
	for _, p := range companyPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// patternListRecognizer builds a recognizer from an ordered pattern list, the
// shape custom fields files use. The first capture group wins; patterns
// without a group yield the whole match.
func patternListRecognizer(patterns []*regexp.Regexp) recognizer {
	return func(text string) (string, bool) {
		for _, p := range patterns {
			m := p.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			value := m[0]
			if len(m) > 1 {
				value = m[1]
			}
			value = strings.TrimSpace(value)
			if value != "" {
				return value, true
			}
		}
		return "", false
	}
}
