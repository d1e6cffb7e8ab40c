package templates

import "time"

// Field is a single input declared by a template.
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
	IsPII       bool     `json:"is_pii"`
}

// Template represents a reusable legal document template.
type Template struct {
	ID          string
	Name        string
	Description string
	Category    string
	Version     string
	Fields      []Field
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
