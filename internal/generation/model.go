package generation

import "time"

// GeneratedDocument is the persisted record of one render. GeneratedText
// holds the rendered output verbatim; InputsHash fingerprints the inputs
// for audit without storing them.
type GeneratedDocument struct {
	ID              string
	UserID          string
	TemplateID      string
	TemplateName    string
	TemplateVersion string
	GeneratedText   string
	InputsHash      string
	MappingID       *string
	PlaceholderKeys []string
	OutputFormat    string
	StorageKey      *string
	CreatedAt       time.Time
}
