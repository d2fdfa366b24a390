package generator

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/goliatone/go-funnel/internal/pages"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// RenderContext carries everything the public page template needs besides the
// document itself.
type RenderContext struct {
	ProjectID  string
	FormAction string
	Theme      ThemeContext
}

// PageRenderer renders validated page documents into standalone HTML pages.
// Every optional section is gated on the document's visibility rules; an
// empty section never emits its wrapper markup.
type PageRenderer struct {
	once sync.Once
	tmpl *template.Template
	err  error
}

// NewPageRenderer creates a renderer. Templates are parsed lazily on first
// use so construction never fails.
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{}
}

func (r *PageRenderer) templates() (*template.Template, error) {
	r.once.Do(func() {
		r.tmpl, r.err = template.New("public").Funcs(template.FuncMap{
			// html_fragment emits a narrative field verbatim. PageDocument
			// documents those fields as pre-rendered trusted HTML; the
			// markdown importer escapes raw HTML on the way in, and callers
			// filling them directly own sanitization.
			"html_fragment": func(s string) template.HTML { return template.HTML(s) },
		}).ParseFS(templateFS, "templates/*.tmpl")
	})
	return r.tmpl, r.err
}

type pageTemplateData struct {
	Doc        *pages.PageDocument
	ProjectID  string
	FormAction string
	Theme      ThemeContext
}

// RenderPage produces the full HTML document for a page. The document must
// pass validation; renderers never emit a page missing its hero contract.
func (r *PageRenderer) RenderPage(doc *pages.PageDocument, renderCtx RenderContext) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("generator: document required")
	}
	if err := doc.Validate(); err != nil {
		return "", err
	}

	tmpl, err := r.templates()
	if err != nil {
		return "", fmt.Errorf("generator: parse templates: %w", err)
	}

	formAction := renderCtx.FormAction
	if formAction == "" {
		formAction = "/api/leads"
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "page.tmpl", pageTemplateData{
		Doc:        doc,
		ProjectID:  renderCtx.ProjectID,
		FormAction: formAction,
		Theme:      renderCtx.Theme,
	})
	if err != nil {
		return "", fmt.Errorf("generator: render page: %w", err)
	}
	return buf.String(), nil
}
