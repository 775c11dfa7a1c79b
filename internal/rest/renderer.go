package rest

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer renders the embedded html templates for echo.
type TemplateRenderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*TemplateRenderer)(nil)

func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"gaugeSVG": gaugeSVG}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
