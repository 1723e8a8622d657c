package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown to HTML. It is safe to reuse across documents.
type Renderer struct {
	md goldmark.Markdown
}

// Option adjusts the goldmark instance built by NewRenderer.
type Option func(*[]goldmark.Option)

// WithHeadingIDs adds id attributes to headings.
func WithHeadingIDs() Option {
	return func(opts *[]goldmark.Option) {
		*opts = append(*opts, goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	}
}

// NewRenderer returns a CommonMark renderer with the GFM extensions enabled.
// Raw HTML is passed through so site chrome written in Markdown can embed markup.
func NewRenderer(options ...Option) *Renderer {
	opts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	}
	for _, o := range options {
		o(&opts)
	}
	return &Renderer{md: goldmark.New(opts...)}
}

// Render converts a Markdown document body (front matter already removed) to HTML.
func (r *Renderer) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
