package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/goliatone/go-funnel/internal/blocks"
	"github.com/goliatone/go-funnel/internal/documents"
	"github.com/google/uuid"
)

//go:embed templates/*.tmpl
var canvasTemplates embed.FS

// Canvas renders authoring documents into HTML fragments for the editing
// surface. Rendering is pure: the canvas never mutates the document it is
// given, and an unknown block type degrades to a visible error marker instead
// of failing the render.
type Canvas struct {
	once sync.Once
	tpl  *template.Template
	err  error
}

// NewCanvas constructs a canvas renderer. Template parsing is deferred to the
// first render so construction stays cheap.
func NewCanvas() *Canvas {
	return &Canvas{}
}

type blockView struct {
	ID       uuid.UUID
	Type     blocks.Type
	Selected bool
	Content  blocks.Content
}

// RenderBlock renders a single block fragment. Unrecognized types produce the
// unknown-block marker; the returned error only reports template execution
// failures, never content issues.
func (c *Canvas) RenderBlock(block documents.Block, selected bool) (template.HTML, error) {
	tpl, err := c.templates()
	if err != nil {
		return "", err
	}

	name := templateFor(block.Type)
	view := blockView{ID: block.ID, Type: block.Type, Selected: selected, Content: block.Content}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("render: execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderDocument renders every block in document order, marking the selected
// block. Blocks that fail individually are replaced with the error marker so
// sibling blocks keep rendering.
func (c *Canvas) RenderDocument(doc documents.Document) (template.HTML, error) {
	var out strings.Builder
	out.WriteString(`<div class="funnel-canvas">`)
	for _, block := range doc.Blocks {
		fragment, err := c.RenderBlock(block, block.ID == doc.SelectedBlockID)
		if err != nil {
			fragment = unknownMarker(block)
		}
		out.WriteString(string(fragment))
	}
	out.WriteString(`</div>`)
	return template.HTML(out.String()), nil
}

func (c *Canvas) templates() (*template.Template, error) {
	c.once.Do(func() {
		c.tpl, c.err = template.New("canvas").ParseFS(canvasTemplates, "templates/*.tmpl")
	})
	return c.tpl, c.err
}

func templateFor(t blocks.Type) string {
	switch t {
	case blocks.TypeHero:
		return "block_hero.tmpl"
	case blocks.TypeFeatures:
		return "block_features.tmpl"
	case blocks.TypePricing:
		return "block_pricing.tmpl"
	case blocks.TypeCTA, blocks.TypeTestimonials, blocks.TypeFAQ:
		return "block_placeholder.tmpl"
	default:
		return "block_unknown.tmpl"
	}
}

func unknownMarker(block documents.Block) template.HTML {
	escaped := template.HTMLEscapeString(string(block.Type))
	return template.HTML(`<div class="block block-error" data-block-id="` +
		template.HTMLEscapeString(block.ID.String()) + `">Unknown Block Type: ` + escaped + `</div>`)
}

// Reordered builds the full permutation handed to Store.Reorder after a drag
// moves the block at index from to index to. Out-of-range indexes return the
// order unchanged.
func Reordered(order []uuid.UUID, from, to int) []uuid.UUID {
	result := append([]uuid.UUID(nil), order...)
	if from < 0 || from >= len(result) || to < 0 || to >= len(result) {
		return result
	}
	moved := result[from]
	result = append(result[:from], result[from+1:]...)
	result = append(result[:to], append([]uuid.UUID{moved}, result[to:]...)...)
	return result
}
