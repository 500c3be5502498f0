package fields

import "testing"

func TestExtractSSN_Normalization(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "SSN: 123-45-6789", "123-45-6789"},
		{"spaced", "social security 123 45 6789 on file", "123-45-6789"},
		{"dotted", "ssn 123.45.6789", "123-45-6789"},
		{"bare digits", "id 123456789 end", "123-45-6789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractSSN(tt.text)
			if !found {
				t.Fatal("extractSSN() found nothing")
			}
			if got != tt.want {
				t.Errorf("extractSSN() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, found := extractSSN("no numbers here"); found {
		t.Error("extractSSN() matched text without an SSN")
	}
}

func TestExtractPhone_Normalization(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "Phone: 555-123-4567", "(555) 123-4567"},
		{"parenthesized", "call (555) 123-4567 today", "(555) 123-4567"},
		{"country code", "tel +1 555.123.4567", "(555) 123-4567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractPhone(tt.text)
			if !found {
				t.Fatal("extractPhone() found nothing")
			}
			if got != tt.want {
				t.Errorf("extractPhone() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labeled", "Name: John Smith\nDOB: 01/01/1990", "John Smith"},
		{"policyholder label", "policyholder: Jane Marie Doe", "Jane Marie Doe"},
		{"suffix form", "John Smith, the insured, agrees", "John Smith"},
		{"bare capitalized pair", "prepared for Mary Jones yesterday", "Mary Jones"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractName(tt.text)
			if !found {
				t.Fatal("extractName() found nothing")
			}
			if got != tt.want {
				t.Errorf("extractName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractDateOfBirth_RequiresBirthContext(t *testing.T) {
	got, found := extractDateOfBirth("Date of Birth: 01/15/1980\nEffective: 02/01/2020")
	if !found || got != "01/15/1980" {
		t.Errorf("extractDateOfBirth() = %q, %v; want 01/15/1980", got, found)
	}

	// A date with no birth label nearby must not count.
	if got, found := extractDateOfBirth("Effective: 02/01/2020"); found {
		t.Errorf("extractDateOfBirth() = %q, want absent without context", got)
	}
}

func TestExtractDate_PriorityOrder(t *testing.T) {
	// Both forms present: the slash form is first in the priority list and
	// wins even though the ISO form appears earlier in the text.
	got, found := extractDate("archived 2020-03-05, signed 04/06/2021")
	if !found || got != "04/06/2021" {
		t.Errorf("extractDate() = %q, %v; want 04/06/2021", got, found)
	}
}

func TestExtractCurrencyAmount_PicksLargest(t *testing.T) {
	got, found := extractCurrencyAmount("fee $1,200.50, coverage $85,000, copay $300")
	if !found || got != "$85,000" {
		t.Errorf("extractCurrencyAmount() = %q, %v; want $85,000", got, found)
	}
}

func TestExtractPolicyNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labeled", "Policy Number: POL-123456", "POL-123456"},
		{"letters digits", "ref LIF1234567 attached", "LIF1234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractPolicyNumber(tt.text)
			if !found {
				t.Fatal("extractPolicyNumber() found nothing")
			}
			if got != tt.want {
				t.Errorf("extractPolicyNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractAccountNumber_Contexts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"account", "Account Number: 987654321", "987654321"},
		{"employee id", "Employee ID: EMP001234", "EMP001234"},
		{"customer no", "customer no: C-10042", "C-10042"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractAccountNumber(tt.text)
			if !found {
				t.Fatal("extractAccountNumber() found nothing")
			}
			if got != tt.want {
				t.Errorf("extractAccountNumber() = %q, want %q", got, tt.want)
			}
		})
	}

	if got, found := extractAccountNumber("balance due 12345"); found {
		t.Errorf("extractAccountNumber() = %q, want absent without label", got)
	}
}

func TestExtractCompany(t *testing.T) {
	got, found := extractCompany("underwritten by Acme Insurance on behalf of the insured")
	if !found || got != "Acme Insurance" {
		t.Errorf("extractCompany() = %q, %v; want Acme Insurance", got, found)
	}

	if _, found := extractCompany("Department: Engineering"); found {
		t.Error("extractCompany() matched text without a corporate suffix")
	}
}

func TestExtractAddress(t *testing.T) {
	got, found := extractAddress("Mail to 123 Main Street, Anytown, CA 90210 with a copy")
	if !found || got != "123 Main Street, Anytown, CA 90210" {
		t.Errorf("extractAddress() = %q, %v", got, found)
	}
}
