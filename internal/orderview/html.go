package orderview

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/order.html.tmpl"))

type htmlData struct {
	Lang string
	Page Page
}

// RenderHTML writes p as a standalone HTML document.
func RenderHTML(w io.Writer, p Page, lang string) error {
	if lang == "" {
		lang = "es"
	}
	return pageTemplate.ExecuteTemplate(w, "order.html.tmpl", htmlData{Lang: lang, Page: p})
}
