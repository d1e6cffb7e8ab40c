package templates

import "time"

// TemplateResponse is the outward-facing representation of a template.
type TemplateResponse struct {
	TemplateID  string    `json:"templateId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Version     string    `json:"version"`
	Fields      []Field   `json:"fields"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toResponse(t Template) TemplateResponse {
	fields := t.Fields
	if fields == nil {
		fields = []Field{}
	}
	return TemplateResponse{
		TemplateID:  t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Version:     t.Version,
		Fields:      fields,
		Body:        t.Body,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type createRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Version     string  `json:"version"`
	Fields      []Field `json:"fields"`
	Body        string  `json:"body"`
}

// updateRequest distinguishes omitted fields (nil) from fields set to empty.
type updateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Version     *string  `json:"version"`
	Fields      *[]Field `json:"fields"`
	Body        *string  `json:"body"`
}

func (req updateRequest) toPatch() Patch {
	return Patch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Version:     req.Version,
		Fields:      req.Fields,
		Body:        req.Body,
	}
}
