package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/report.html
var templateFS embed.FS

var printTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html"))

// RenderHTML writes the print view of r.
func RenderHTML(w io.Writer, r *Report) error {
	if err := printTemplate.ExecuteTemplate(w, "report.html", r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
