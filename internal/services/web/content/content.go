// Package content renders the embedded markdown copy of the site pages.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed home.md
var homeMarkdown []byte

var (
	homeOnce sync.Once
	homeHTML string
	homeErr  error
)

// NewMarkdown returns the converter used for site copy. Raw HTML in the
// source is dropped.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// Render converts markdown source to HTML.
func Render(md goldmark.Markdown, source []byte) (string, error) {
	if md == nil {
		md = NewMarkdown()
	}
	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// HomeHTML returns the rendered home page copy. It renders once per process.
func HomeHTML() (string, error) {
	homeOnce.Do(func() {
		homeHTML, homeErr = Render(NewMarkdown(), homeMarkdown)
	})
	return homeHTML, homeErr
}
