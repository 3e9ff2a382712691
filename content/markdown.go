package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

type Heading struct {
	Level int
	ID    string
	Text  string
}

type Rendered struct {
	HTML     string
	Headings []Heading
}

// TOC returns the headings shown in a page's table of contents.
func (r Rendered) TOC() []Heading {
	var toc []Heading
	for _, h := range r.Headings {
		if h.Level >= 2 && h.Level <= 3 && h.ID != "" {
			toc = append(toc, h)
		}
	}
	return toc
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	// documents are authored in-repo and may embed raw HTML
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Render converts a document body to HTML and collects its headings.
func Render(body []byte) (Rendered, error) {
	ctx := parser.NewContext()
	doc := markdown.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: h.Level,
			ID:    headingID(h),
			Text:  strings.TrimSpace(inlineText(h, body)),
		})
		return ast.WalkSkipChildren, nil
	})

	var buf bytes.Buffer
	if err := markdown.Renderer().Render(&buf, body, doc); err != nil {
		return Rendered{}, fmt.Errorf("render markdown: %w", err)
	}

	return Rendered{HTML: buf.String(), Headings: headings}, nil
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
