// Package web builds the HookHub catalog page: the category filter, the
// hook cards and the html/template rendering of both.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "page.html"

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New(pageTemplate).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page for view to w.
// Output is buffered: nothing reaches w when the template fails.
func (r *Renderer) Render(w io.Writer, view PageView) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, pageTemplate, view); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
