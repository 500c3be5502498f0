package classify

import "testing"

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "employment",
			text: "Employment contract for the employee. Salary and position are set by the employer.",
			want: "employment_document",
		},
		{
			name: "insurance",
			text: "This insurance policy provides coverage. The premium is due monthly and the insured may file a claim.",
			want: "insurance_document",
		},
		{
			name: "medical",
			text: "Patient seen by physician at the clinic. Diagnosis and treatment recorded; prescription issued.",
			want: "medical_document",
		},
		{
			name: "no keywords",
			text: "the quick brown fox jumps over the lazy dog",
			want: TypeUnknown,
		},
		{
			name: "empty",
			text: "",
			want: TypeUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := DetectType(tt.text)
			if got != tt.want {
				t.Errorf("DetectType() = %q (score %d), want %q", got, score, tt.want)
			}
			if tt.want == TypeUnknown && score != 0 {
				t.Errorf("score = %d, want 0 for unknown", score)
			}
			if tt.want != TypeUnknown && score == 0 {
				t.Error("score = 0 for a matched type")
			}
		})
	}
}

func TestDetectType_CaseInsensitive(t *testing.T) {
	upper, upperScore := DetectType("INSURANCE POLICY COVERAGE PREMIUM")
	lower, lowerScore := DetectType("insurance policy coverage premium")
	if upper != lower || upperScore != lowerScore {
		t.Errorf("case changed the verdict: %q/%d vs %q/%d", upper, upperScore, lower, lowerScore)
	}
}

func TestDetectLanguage(t *testing.T) {
	lang, conf := DetectLanguage("The insurance policy provides coverage for the named insured person and their dependents.")
	if lang != "english" {
		t.Errorf("language = %q, want english", lang)
	}
	if conf <= 0 {
		t.Errorf("confidence = %v, want > 0", conf)
	}
}

func TestDetectLanguage_ShortTextSkipped(t *testing.T) {
	lang, conf := DetectLanguage("ok")
	if lang != "" || conf != 0 {
		t.Errorf("DetectLanguage(short) = %q, %v; want empty verdict", lang, conf)
	}
}
