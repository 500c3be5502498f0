package fields

import (
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// patternCache memoizes compiled contextual pattern sets per field name.
// Ad-hoc field names repeat heavily across documents in a batch, and regexp
// compilation is the dominant cost of the fallback path. go-cache is safe for
// concurrent workers.
var patternCache = gocache.New(30*time.Minute, 10*time.Minute)

const maxContextualValueLen = 200

var trailingPunct = regexp.MustCompile(`[.,;]+$`)

// contextualPatterns builds the fallback pattern set for a literal field
// name, most specific form first: markdown-bold label, then "label: value"
// up to end of line, then comma/semicolon-bounded, then flexible spacing.
// Each form is tried with the literal name and, when it differs, with
// underscores rendered as spaces.
func contextualPatterns(fieldName string) []*regexp.Regexp {
	key := strings.ToLower(fieldName)
	if cached, ok := patternCache.Get(key); ok {
		return cached.([]*regexp.Regexp)
	}

	variants := []string{fieldName}
	if spaced := strings.ReplaceAll(fieldName, "_", " "); spaced != fieldName {
		variants = append(variants, spaced)
	}

	forms := []string{
		`(?i)\*\*%s\*\*\s*:\s*([^\n\r]+)`,
		`(?i)\*\*%s\s*:\s*\*\*\s*([^\n\r]+)`,
		`(?i)%s[:\s]+([^\n\r]+?)(?:\r|\n|$)`,
		`(?i)%s[:\s]+([^,;\n\r]+)`,
		`(?i)%s\s*:\s*([^\n]+)`,
	}

	patterns := make([]*regexp.Regexp, 0, len(forms)*len(variants))
	for _, form := range forms {
		for _, v := range variants {
			label := regexp.QuoteMeta(v)
			// Spaces inside the label tolerate any run of whitespace.
			label = strings.ReplaceAll(label, ` `, `\s+`)
			patterns = append(patterns, regexp.MustCompile(strings.Replace(form, "%s", label, 1)))
		}
	}

	patternCache.Set(key, patterns, gocache.DefaultExpiration)
	return patterns
}

// extractContextual is the tier-3 fallback: search for the literal field name
// as a label and take everything up to the line break. First pattern in
// priority order wins, even if a later one would capture more.
func extractContextual(text, fieldName string) (string, bool) {
	for _, p := range contextualPatterns(fieldName) {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[1])
		value = trailingPunct.ReplaceAllString(value, "")
		value = strings.TrimSpace(value)
		if value != "" && len(value) < maxContextualValueLen {
			return value, true
		}
	}
	return "", false
}
