package api

import (
	"html/template"
	"net/http"
	"path/filepath"

	nuts "github.com/vaudience/go-nuts"
)

// PageHandlers serves the HTML page shells. The pages poll the JSON API
// for their data.
type PageHandlers struct {
	tmpl *template.Template
}

func NewPageHandlers(templateDir string) (*PageHandlers, error) {
	tmpl, err := template.ParseGlob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &PageHandlers{tmpl: tmpl}, nil
}

func (p *PageHandlers) Index(w http.ResponseWriter, r *http.Request) {
	p.render(w, "index.html")
}

func (p *PageHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	p.render(w, "dashboard.html")
}

func (p *PageHandlers) Analytics(w http.ResponseWriter, r *http.Request) {
	p.render(w, "analytics.html")
}

func (p *PageHandlers) Devices(w http.ResponseWriter, r *http.Request) {
	p.render(w, "devices.html")
}

func (p *PageHandlers) render(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, name, nil); err != nil {
		nuts.L.Errorf("[Pages] Error executing template %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
