package posters

import (
	"fmt"
	"html/template"
	"io"

	"iscol-site/templates"
)

type pageData struct {
	Sessions []Session
}

// Render writes the posters page for the given posters. The template engine
// escapes titles and author lists, so raw CSV content is safe to pass
// through.
func Render(w io.Writer, posters []Poster) error {
	t, err := template.ParseFS(templates.FS, "posters.html")
	if err != nil {
		return fmt.Errorf("parsing posters template: %w", err)
	}

	data := pageData{Sessions: BySession(posters)}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("rendering posters page: %w", err)
	}
	return nil
}
