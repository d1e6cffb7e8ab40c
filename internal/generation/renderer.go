package generation

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"time"
)

// bareMarker matches shorthand markers like {{name}} or {{ name }} where
// the body is a single identifier. Template authors write these instead
// of the dotted form; the renderer rewrites them before parsing.
var bareMarker = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// templateKeywords are identifiers that stand alone in native template
// actions; the shorthand rewrite must leave them untouched.
var templateKeywords = map[string]bool{
	"if": true, "else": true, "end": true, "range": true, "with": true,
	"template": true, "block": true, "define": true, "break": true,
	"continue": true, "nil": true, "true": true, "false": true,
}

// Renderer substitutes inputs into a template body. Helpers (now, today)
// keep their bare form and are resolved as functions; every other
// shorthand marker is rewritten to a data lookup, and a lookup with no
// matching input fails the render.
type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: func() time.Time { return time.Now().UTC() }}
}

func (r *Renderer) helpers() template.FuncMap {
	return template.FuncMap{
		"now":   func() string { return r.now().Format("02 January 2006 15:04") },
		"today": func() string { return r.now().Format("02 January 2006") },
	}
}

// Render executes body against data. Parse and execution errors both
// surface as ErrRenderFailed.
func (r *Renderer) Render(body string, data map[string]any) (string, error) {
	helpers := r.helpers()

	prepared := bareMarker.ReplaceAllStringFunc(body, func(marker string) string {
		name := bareMarker.FindStringSubmatch(marker)[1]
		if templateKeywords[name] {
			return marker
		}
		if _, isHelper := helpers[name]; isHelper {
			return "{{" + name + "}}"
		}
		return "{{." + name + "}}"
	})

	tmpl, err := template.New("body").Funcs(helpers).Option("missingkey=error").Parse(prepared)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return b.String(), nil
}
