package redaction

import (
	"fmt"
	"sort"
	"strings"

	"legaldraft-backend/internal/templates"
)

// Mapping associates placeholder tokens with the original literal values
// they replaced. It is the reversible half of a redaction pass.
type Mapping map[string]string

// Engine applies field-based and pattern-based PII redaction to a
// generation context. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	categories []Category
}

// NewEngine constructs an Engine with an explicit ordered category list.
func NewEngine(categories []Category) *Engine {
	return &Engine{categories: categories}
}

// Redact returns a redacted copy of inputs plus the merged mapping.
//
// Two passes, in this order: first every field flagged is_pii whose value
// is a non-empty string is replaced by a token derived from the field
// name; then the remaining string values are scanned with the category
// patterns in their fixed order. Later categories see the already
// substituted text, so no literal span is claimed twice. The input map is
// never mutated; non-string values pass through untouched.
func (e *Engine) Redact(fields []templates.Field, inputs map[string]any) (map[string]any, Mapping) {
	redacted := make(map[string]any, len(inputs))
	for k, v := range inputs {
		redacted[k] = v
	}
	mapping := make(Mapping)

	fieldRedacted := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !f.IsPII {
			continue
		}
		raw, ok := inputs[f.Name]
		if !ok {
			continue
		}
		value, isString := raw.(string)
		if !isString || strings.TrimSpace(value) == "" {
			continue
		}
		token := "[[" + strings.ToUpper(f.Name) + "]]"
		mapping[token] = value
		redacted[f.Name] = token
		fieldRedacted[f.Name] = true
	}

	// Counters are per category and per call, so tokens stay unique
	// within a single pass even across fields.
	counters := make([]int, len(e.categories))
	for _, key := range scanOrder(fields, inputs) {
		if fieldRedacted[key] {
			continue
		}
		value, isString := redacted[key].(string)
		if !isString {
			continue
		}
		for i, cat := range e.categories {
			value = substituteMatches(value, cat, &counters[i], mapping)
		}
		redacted[key] = value
	}

	return redacted, mapping
}

// scanOrder fixes the pattern-pass iteration order: declared template
// fields first, then any extra input keys sorted lexicographically.
func scanOrder(fields []templates.Field, inputs map[string]any) []string {
	order := make([]string, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, f := range fields {
		if _, ok := inputs[f.Name]; ok && !seen[f.Name] {
			order = append(order, f.Name)
			seen[f.Name] = true
		}
	}
	var extras []string
	for key := range inputs {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return append(order, extras...)
}

func substituteMatches(text string, cat Category, counter *int, mapping Mapping) string {
	spans := cat.Pattern.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		*counter++
		token := fmt.Sprintf("[[%s_%d]]", cat.Label, *counter)
		mapping[token] = text[span[0]:span[1]]
		b.WriteString(text[last:span[0]])
		b.WriteString(token)
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
