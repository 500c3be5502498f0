package analytics

import (
	"reflect"
	"testing"
)

func TestFrequencies(t *testing.T) {
	freq := Frequencies("The policy covers the insured. Policy: active!")

	if freq["policy"] != 2 {
		t.Errorf("policy count = %d, want 2", freq["policy"])
	}
	if freq["insured"] != 1 {
		t.Errorf("insured count = %d, want 1", freq["insured"])
	}
	if _, ok := freq["the"]; ok {
		t.Error("stopword 'the' should be filtered")
	}
	if _, ok := freq[""]; ok {
		t.Error("empty token should never be counted")
	}
}

func TestFrequencies_StripsPunctuation(t *testing.T) {
	freq := Frequencies("(salary), salary. \"salary\"")
	if freq["salary"] != 3 {
		t.Errorf("salary count = %d, want 3", freq["salary"])
	}
}

func TestMerge(t *testing.T) {
	got := Merge([]map[string]int{
		{"policy": 2, "claim": 1},
		{"policy": 1, "premium": 4},
	})
	want := map[string]int{"policy": 3, "claim": 1, "premium": 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestTopKeywords(t *testing.T) {
	freq := map[string]int{"claim": 1, "policy": 3, "premium": 2}

	got := TopKeywords(freq, 2)
	want := []string{"policy:3", "premium:2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywords_TieBreaksAlphabetically(t *testing.T) {
	freq := map[string]int{"zeta": 2, "alpha": 2, "mid": 2}

	got := TopKeywords(freq, 3)
	want := []string{"alpha:2", "mid:2", "zeta:2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywords_NLargerThanVocabulary(t *testing.T) {
	got := TopKeywords(map[string]int{"only": 1}, 10)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("The") {
		t.Error("IsStopword should be case-insensitive")
	}
	if IsStopword("policy") {
		t.Error("'policy' is not a stopword")
	}
}
