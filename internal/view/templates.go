package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// Template names.
const (
	PageTemplate    = "page"
	ContentTemplate = "content"
	ErrorTemplate   = "error"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

var templates = template.Must(template.New("site").ParseFS(templateFiles, "templates/*.html"))

// ErrorPage is the data for the error template.
type ErrorPage struct {
	Status    int
	Title     string
	Message   string
	RequestID string
}

// Templates returns the parsed page templates.
func Templates() *template.Template {
	return templates
}

// Render executes the named template into w.
func Render(w io.Writer, name string, data any) error {
	return templates.ExecuteTemplate(w, name, data)
}

// Static serves the stylesheet and script referenced by the page.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
