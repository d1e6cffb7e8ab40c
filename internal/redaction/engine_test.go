package redaction

import (
	"testing"

	"legaldraft-backend/internal/templates"
)

func TestRedactFieldFlaggedPII(t *testing.T) {
	engine := NewEngine(DefaultCategories())
	fields := []templates.Field{
		{Name: "complainant_name", Label: "Complainant Name", IsPII: true},
		{Name: "incident", Label: "Incident"},
	}
	inputs := map[string]any{
		"complainant_name": "Jane Doe",
		"incident":         "theft of a bicycle",
	}

	redacted, mapping := engine.Redact(fields, inputs)

	if got := redacted["complainant_name"]; got != "[[COMPLAINANT_NAME]]" {
		t.Fatalf("complainant_name = %v, want [[COMPLAINANT_NAME]]", got)
	}
	if got := redacted["incident"]; got != "theft of a bicycle" {
		t.Fatalf("incident changed: %v", got)
	}
	if mapping["[[COMPLAINANT_NAME]]"] != "Jane Doe" {
		t.Fatalf("mapping = %v, want [[COMPLAINANT_NAME]] -> Jane Doe", mapping)
	}
	if inputs["complainant_name"] != "Jane Doe" {
		t.Fatal("input map was mutated")
	}
}

func TestRedactPatternPAN(t *testing.T) {
	engine := NewEngine(DefaultCategories())
	inputs := map[string]any{"details": "PAN is ABCDE1234F for the accused"}

	redacted, mapping := engine.Redact(nil, inputs)

	if got := redacted["details"]; got != "PAN is [[PAN_1]] for the accused" {
		t.Fatalf("details = %v", got)
	}
	if mapping["[[PAN_1]]"] != "ABCDE1234F" {
		t.Fatalf("mapping = %v, want [[PAN_1]] -> ABCDE1234F", mapping)
	}
}

func TestRedactCountersPerCall(t *testing.T) {
	engine := NewEngine(DefaultCategories())
	inputs := map[string]any{
		"a": "mail one@example.com",
		"b": "mail two@example.com",
	}

	_, mapping := engine.Redact(nil, inputs)

	if mapping["[[EMAIL_1]]"] != "one@example.com" {
		t.Fatalf("mapping = %v, want [[EMAIL_1]] -> one@example.com", mapping)
	}
	if mapping["[[EMAIL_2]]"] != "two@example.com" {
		t.Fatalf("mapping = %v, want [[EMAIL_2]] -> two@example.com", mapping)
	}
}

func TestRedactPhoneWithCountryCode(t *testing.T) {
	engine := NewEngine(DefaultCategories())
	inputs := map[string]any{"contact": "call +91-9876543210 after hours"}

	redacted, mapping := engine.Redact(nil, inputs)

	if got := redacted["contact"]; got != "call [[PHONE_1]] after hours" {
		t.Fatalf("contact = %v", got)
	}
	if mapping["[[PHONE_1]]"] != "+91-9876543210" {
		t.Fatalf("mapping = %v, want full literal including prefix", mapping)
	}
}

func TestRedactAadhaarSpacedGroups(t *testing.T) {
	engine := NewEngine(DefaultCategories())
	inputs := map[string]any{"id": "aadhaar 1234 5678 9012 on file"}

	redacted, mapping := engine.Redact(nil, inputs)

	if got := redacted["id"]; got != "aadhaar [[AADHAAR_1]] on file" {
		t.Fatalf("id = %v", got)
	}
	if mapping["[[AADHAAR_1]]"] != "1234 5678 9012" {
		t.Fatalf("mapping = %v", mapping)
	}
}

func TestRedactIdempotentOnTokens(t *testing.T) {
	engine := NewEngine(DefaultCategories())
	inputs := map[string]any{"details": "reach me at jane@example.com"}

	once, _ := engine.Redact(nil, inputs)
	twice, mapping := engine.Redact(nil, once)

	if twice["details"] != once["details"] {
		t.Fatalf("second pass changed text: %v vs %v", twice["details"], once["details"])
	}
	if len(mapping) != 0 {
		t.Fatalf("second pass produced mappings: %v", mapping)
	}
}

func TestRedactSkipsFieldRedactedValues(t *testing.T) {
	engine := NewEngine(DefaultCategories())
	fields := []templates.Field{{Name: "email", IsPII: true}}
	inputs := map[string]any{"email": "jane@example.com"}

	redacted, mapping := engine.Redact(fields, inputs)

	if got := redacted["email"]; got != "[[EMAIL]]" {
		t.Fatalf("email = %v, want field token only", got)
	}
	if len(mapping) != 1 {
		t.Fatalf("mapping = %v, want a single field entry", mapping)
	}
}

func TestRedactNonStringValuesPassThrough(t *testing.T) {
	engine := NewEngine(DefaultCategories())
	fields := []templates.Field{{Name: "count", IsPII: true}}
	inputs := map[string]any{"count": 3, "flag": true}

	redacted, mapping := engine.Redact(fields, inputs)

	if redacted["count"] != 3 || redacted["flag"] != true {
		t.Fatalf("non-string values changed: %v", redacted)
	}
	if len(mapping) != 0 {
		t.Fatalf("mapping = %v, want empty", mapping)
	}
}
