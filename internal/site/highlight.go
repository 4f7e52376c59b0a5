package site

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the chroma style used for source pages.
const highlightStyle = "github"

// highlighter renders source files as HTML with numbered, linkable lines.
// Colors live in a shared stylesheet, so pages only carry class names.
type highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

func newHighlighter() *highlighter {
	return &highlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.WithLineNumbers(true),
			chromahtml.LineNumbersInTable(true),
			chromahtml.WithLinkableLineNumbers(true, "line"),
		),
		style: styles.Get(highlightStyle),
	}
}

// Highlight writes source as highlighted HTML. The lexer is picked from the
// file name, then from the content, then falls back to plain text.
func (h *highlighter) Highlight(w io.Writer, filename, source string) error {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenising %s: %w", filename, err)
	}
	if err := h.formatter.Format(w, h.style, iterator); err != nil {
		return fmt.Errorf("formatting %s: %w", filename, err)
	}
	return nil
}

// WriteCSS writes the stylesheet matching the highlighted markup.
func (h *highlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}
