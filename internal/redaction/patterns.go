package redaction

import "regexp"

// Category pairs a PII category label with its detection pattern.
// Detection order is the order of the slice handed to the engine.
type Category struct {
	Label   string
	Pattern *regexp.Regexp
}

// DefaultCategories returns the recognized PII categories in their fixed
// detection order: Aadhaar number, PAN, mobile phone, email address.
func DefaultCategories() []Category {
	return []Category{
		{Label: "AADHAAR", Pattern: regexp.MustCompile(`\b\d{4}[ -]?\d{4}[ -]?\d{4}\b`)},
		{Label: "PAN", Pattern: regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`)},
		{Label: "PHONE", Pattern: regexp.MustCompile(`(?:\+?91[- ]?)?[6-9]\d{9}\b`)},
		{Label: "EMAIL", Pattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	}
}
