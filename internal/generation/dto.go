package generation

import "time"

type renderRequest struct {
	TemplateID   string         `json:"templateId" binding:"required"`
	Inputs       map[string]any `json:"inputs"`
	OutputFormat string         `json:"outputFormat"`
}

// GenerationResult is the public shape of a generated document.
type GenerationResult struct {
	DocumentID      string             `json:"documentId"`
	TemplateID      string             `json:"templateId"`
	TemplateName    string             `json:"templateName"`
	TemplateVersion string             `json:"templateVersion"`
	GeneratedText   string             `json:"generatedText"`
	InputsHash      string             `json:"inputsHash"`
	GeneratedAt     time.Time          `json:"generatedAt"`
	Metadata        GenerationMetadata `json:"metadata"`
}

// GenerationMetadata carries the redaction and storage byproducts of a
// render.
type GenerationMetadata struct {
	MappingID       *string  `json:"mappingId"`
	PlaceholderKeys []string `json:"placeholderKeys"`
	OutputFormat    string   `json:"outputFormat"`
	StorageKey      *string  `json:"storageKey,omitempty"`
}

func toResult(doc GeneratedDocument) GenerationResult {
	keys := doc.PlaceholderKeys
	if keys == nil {
		keys = []string{}
	}
	return GenerationResult{
		DocumentID:      doc.ID,
		TemplateID:      doc.TemplateID,
		TemplateName:    doc.TemplateName,
		TemplateVersion: doc.TemplateVersion,
		GeneratedText:   doc.GeneratedText,
		InputsHash:      doc.InputsHash,
		GeneratedAt:     doc.CreatedAt,
		Metadata: GenerationMetadata{
			MappingID:       doc.MappingID,
			PlaceholderKeys: keys,
			OutputFormat:    doc.OutputFormat,
			StorageKey:      doc.StorageKey,
		},
	}
}
