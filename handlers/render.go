// Package handlers maps HTTP routes to the services. Page handlers render
// the embedded templates; the form handlers follow POST-redirect-GET with
// a signed flash cookie; /api/events serves the raw JSON array.
package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path"
	"time"

	"github.com/zambiatennis/ztaweb/models"
	"github.com/zambiatennis/ztaweb/pkg/flash"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageData is the single view model handed to every template. Each page
// fills the fields it needs; the layout reads Title, Year and Flash.
type pageData struct {
	Title    string
	Year     int
	Flash    *flash.Message
	News     []models.NewsPost
	Events   []models.Event
	Rankings []models.RankingEntry
	Images   []string
}

// Renderer executes the embedded page templates. Every page is parsed
// together with the shared layout once, at construction.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range names {
		base := path.Base(name)
		if base == "layout.html" {
			continue
		}
		t, err := template.ParseFS(templatesFS, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", base, err)
		}
		pages[base] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the named page. The page is executed into a buffer first
// so a template error yields a clean 500 instead of a half-written body.
func (r *Renderer) Render(w http.ResponseWriter, page string, data pageData) {
	t, ok := r.pages[page]
	if !ok {
		log.Printf("[render] unknown template: %s", page)
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}

	data.Year = time.Now().UTC().Year()

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Printf("[render] failed to execute %s: %v", page, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[render] failed to write %s: %v", page, err)
	}
}
