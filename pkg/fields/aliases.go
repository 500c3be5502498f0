package fields

import "strings"

// aliases maps common synonyms onto canonical field names. Resolution happens
// before strategy lookup, so "ssn" and "social_security_number" always hit
// the same recognizer set.
var aliases = map[string]string{
	"person_name":   "name",
	"full_name":     "name",
	"customer_name": "name",
	"manager":       "name",
	"supervisor":    "name",

	"social_security":        "ssn",
	"social_security_number": "ssn",

	"phone_number": "phone",
	"telephone":    "phone",
	"mobile":       "phone",

	"email_address": "email",

	"dob":        "date_of_birth",
	"birth_date": "date_of_birth",

	"street_address":  "address",
	"mailing_address": "address",

	"policy_id": "policy_number",

	"employee_id": "account_number",
	"customer_id": "account_number",
	"id_number":   "account_number",

	"coverage_amount": "amount",
	"benefit_amount":  "amount",
	"premium":         "amount",
	"salary":          "amount",
	"wage":            "amount",

	"effective_date":  "date",
	"expiration_date": "date",
	"start_date":      "date",
	"end_date":        "date",
	"hire_date":       "date",

	"organization": "company",
	"employer":     "company",
	"department":   "company",
	"business":     "company",
	"firm":         "company",
}

// normalizeFieldName lowercases a requested field name and folds spaces to
// underscores so "Social Security Number" and "social_security_number" look
// the same to the lookup tables.
func normalizeFieldName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.Join(strings.Fields(n), "_")
	return n
}

// canonicalName resolves a requested field name to its canonical strategy
// key. Unknown names resolve to themselves.
func canonicalName(name string, extra map[string]string) string {
	n := normalizeFieldName(name)
	if extra != nil {
		if c, ok := extra[n]; ok {
			return c
		}
	}
	if c, ok := aliases[n]; ok {
		return c
	}
	return n
}
