package highlight

import (
	"bytes"
	"io"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Highlighter turns Go source snippets into HTML.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	// Defaults to [PlainStyle].
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
	lexer     chroma.Lexer
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.WithClasses(h.UseClasses),
		)
		h.lexer = chroma.Coalesce(lexers.Get("go"))
		if h.Style == nil {
			h.Style = PlainStyle
		}
	})
}

// WriteCSS writes the style classes for this highlighter to w.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return errtrace.Wrap(h.formatter.WriteCSS(w, h.Style))
}

// Go renders src as a highlighted Go code block.
func (h *Highlighter) Go(src string) (string, error) {
	h.init()

	tokens, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.Style, tokens); err != nil {
		return "", errtrace.Wrap(err)
	}
	return buf.String(), nil
}
