package fields

import (
	"strings"
	"testing"
)

func TestExtractContextual_Forms(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
		want  string
	}{
		{"plain label", "Position: Senior Engineer\nnext line", "position", "Senior Engineer"},
		{"uppercase label", "TITLE: Staff Engineer", "title", "Staff Engineer"},
		{"flexible spacing", "grade : A", "grade", "A"},
		{"underscores as spaces", "Job Title: Analyst", "job_title", "Analyst"},
		{"markdown bold outside colon", "**Employee ID**: EMP5", "employee_id", "EMP5"},
		{"markdown bold inside colon", "**Premium:** $120.00", "premium", "$120.00"},
		{"value stops at newline", "notes: first line\nsecond line", "notes", "first line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractContextual(tt.text, tt.field)
			if !found {
				t.Fatalf("extractContextual(%q) found nothing", tt.field)
			}
			if got != tt.want {
				t.Errorf("extractContextual(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestExtractContextual_TrimsTrailingPunctuation(t *testing.T) {
	got, found := extractContextual("Status: approved.;", "status")
	if !found || got != "approved" {
		t.Errorf("extractContextual() = %q, %v; want approved", got, found)
	}
}

func TestExtractContextual_Misses(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
	}{
		{"label absent", "nothing relevant", "position"},
		{"value too long", "summary: " + strings.Repeat("x", 400), "summary"},
		{"empty text", "", "position"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, found := extractContextual(tt.text, tt.field); found {
				t.Errorf("extractContextual(%q) = %q, want absent", tt.field, got)
			}
		})
	}
}

func TestContextualPatterns_Cached(t *testing.T) {
	first := contextualPatterns("warehouse_code")
	second := contextualPatterns("warehouse_code")
	if len(first) == 0 {
		t.Fatal("contextualPatterns() returned no patterns")
	}
	if first[0] != second[0] {
		// Identical compiled patterns mean the cache served the second call.
		t.Error("contextualPatterns() recompiled instead of using the cache")
	}
}
