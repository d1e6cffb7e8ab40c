package redaction

import "time"

// MappingRecord is a persisted reversible placeholder mapping. ExpiresAt
// is advisory metadata; nothing purges expired records.
type MappingRecord struct {
	ID           string
	UserID       string
	Placeholders Mapping
	CreatedAt    time.Time
	ExpiresAt    time.Time
}
