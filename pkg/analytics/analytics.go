// Package analytics computes keyword statistics over extracted document text.
// Frequencies feed the per-run keyword summary stored alongside extraction
// results.
package analytics

import (
	"fmt"
	"sort"
	"strings"
)

// stopwords are skipped during frequency counting. Deliberately short; the
// goal is readable keyword lists, not linguistic completeness.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "been": {}, "but": {}, "by": {},
	"can": {}, "could": {},
	"do": {}, "does": {},
	"for": {}, "from": {},
	"had": {}, "has": {}, "have": {}, "he": {}, "her": {}, "his": {},
	"if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"may": {}, "must": {}, "my": {},
	"no": {}, "not": {},
	"of": {}, "on": {}, "or": {}, "our": {},
	"per": {},
	"shall": {}, "she": {}, "should": {}, "so": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {}, "to": {},
	"under": {}, "upon": {},
	"was": {}, "we": {}, "were": {}, "which": {}, "who": {}, "will": {},
	"with": {}, "within": {}, "without": {}, "would": {},
	"you": {}, "your": {},
}

// IsStopword reports whether a word is filtered from frequency results.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// Frequencies counts word occurrences in one document's text. Tokens are
// lowercased and stripped of surrounding punctuation; stopwords and empty
// tokens are skipped.
func Frequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if word == "" {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		freq[word]++
	}
	return freq
}

// Merge folds per-document frequency maps into one aggregate.
func Merge(perDoc []map[string]int) map[string]int {
	total := make(map[string]int)
	for _, freq := range perDoc {
		for word, count := range freq {
			total[word] += count
		}
	}
	return total
}

// TopKeywords returns the n most frequent words as "word:count" strings,
// ordered by count descending with alphabetical tie-break so output is
// stable across runs.
func TopKeywords(freq map[string]int, n int) []string {
	type kv struct {
		word  string
		count int
	}

	pairs := make([]kv, 0, len(freq))
	for word, count := range freq {
		pairs = append(pairs, kv{word, count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].word < pairs[j].word
	})

	if n > len(pairs) {
		n = len(pairs)
	}
	if n < 0 {
		n = 0
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = fmt.Sprintf("%s:%d", pairs[i].word, pairs[i].count)
	}
	return out
}
