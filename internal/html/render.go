// Package html renders document models as standalone HTML pages.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/Masterminds/sprig/v3"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/stoewer/go-strcase"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.abhg.dev/docu/internal/docitem"
	"go.abhg.dev/docu/internal/docstyle"
	"go.abhg.dev/docu/internal/highlight"
	"go.abhg.dev/docu/internal/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	//go:embed templates/*.html
	_tmplFS embed.FS

	// Function references are unusable at parse time.
	// Render time clones the set and installs live ones.
	// Parsing here still verifies template validity at init.
	_pageTmpl = template.Must(
		template.New("docu").
			Funcs((*render)(nil).FuncMap()).
			ParseFS(_tmplFS, "templates/*.html"),
	)

	_goldmark = goldmark.New(
		goldmark.WithExtensions(extension.Table),
	)
)

// Highlighter renders Go source snippets into HTML.
type Highlighter interface {
	Go(string) (string, error)
	WriteCSS(io.Writer) error
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer renders a document model as a standalone HTML page.
type Renderer struct {
	// Template names the embedded page template to use.
	// Defaults to [DefaultTemplate].
	Template string

	// DocStyle names the docstring convention used to split
	// documentation text into sections.
	// Defaults to [docstyle.Google].
	DocStyle string

	// Highlighter renders code snippets on the page.
	// If nil, a class-based highlighter using the
	// template's preferred style is built.
	Highlighter Highlighter
}

// pageData is the payload available to page templates.
type pageData struct {
	// Title of the page. Empty if the file has no module
	// documentation; templates supply their own fallback.
	Title string

	// Content is the file's full Markdown documentation
	// converted to HTML.
	Content template.HTML

	// Items is the full document model keyed by item name.
	Items map[string]*docitem.Item

	// Module is the module item, or nil.
	Module *docitem.Item

	// Types and Functions are sorted alphabetically.
	Types     []*docitem.Item
	Functions []*docitem.Item

	// Parsed holds docstring sections for documented items.
	// Methods are keyed "Type.Method".
	Parsed map[string]*docstyle.Sections

	// CSS holds the highlighter's style classes.
	CSS template.CSS
}

// Render writes the documentation for items to w
// as a complete HTML page.
func (r *Renderer) Render(w io.Writer, items map[string]*docitem.Item) error {
	name := r.Template
	if name == "" {
		name = DefaultTemplate
	}
	tmpl, err := lookupTemplate(name)
	if err != nil {
		return errtrace.Wrap(err)
	}

	style := r.DocStyle
	if style == "" {
		style = docstyle.Google
	}
	parser, err := docstyle.New(style)
	if err != nil {
		return errtrace.Wrap(err)
	}

	hl := r.Highlighter
	if hl == nil {
		hl = &highlight.Highlighter{
			Style:      styles.Get(tmpl.Style),
			UseClasses: true,
		}
	}

	var md bytes.Buffer
	if err := new(markdown.Renderer).Render(&md, items); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	var content bytes.Buffer
	if err := _goldmark.Convert(md.Bytes(), &content); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	var css bytes.Buffer
	if err := hl.WriteCSS(&css); err != nil {
		return fmt.Errorf("write style classes: %w", err)
	}

	data := pageData{
		Items:     items,
		Content:   template.HTML(content.String()),
		Types:     docitem.Select(items, docitem.KindType),
		Functions: docitem.Select(items, docitem.KindFunction),
		Parsed:    parseDocs(items, parser),
		CSS:       template.CSS(css.String()),
	}
	if mods := docitem.Select(items, docitem.KindModule); len(mods) > 0 {
		data.Module = mods[0]
		data.Title = mods[0].Name
	}

	render := render{Highlighter: hl}
	return errtrace.Wrap(template.Must(_pageTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, name+".html", &data))
}

// parseDocs splits the documentation of every documented item into
// sections. Methods are keyed by their qualified "Type.Method" name.
func parseDocs(items map[string]*docitem.Item, parser docstyle.Parser) map[string]*docstyle.Sections {
	parsed := make(map[string]*docstyle.Sections)
	for name, item := range items {
		if item.Doc != "" {
			s := parser.Parse(item.Doc)
			parsed[name] = &s
		}
		for _, method := range item.Methods {
			if method.Doc == "" {
				continue
			}
			s := parser.Parse(method.Doc)
			parsed[item.Name+"."+method.Name] = &s
		}
	}
	return parsed
}

// render carries per-page state made available to template functions.
type render struct {
	Highlighter Highlighter
}

func (r *render) FuncMap() template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	funcs["highlight"] = r.highlight
	funcs["markdown"] = renderMarkdown
	funcs["anchor"] = anchor
	funcs["kindTitle"] = kindTitle
	funcs["byName"] = docitem.ByName
	return funcs
}

func (r *render) highlight(src string) (template.HTML, error) {
	out, err := r.Highlighter.Go(src)
	return template.HTML(out), errtrace.Wrap(err)
}

// renderMarkdown converts Markdown text to HTML.
func renderMarkdown(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := _goldmark.Convert([]byte(text), &buf); err != nil {
		return "", errtrace.Wrap(err)
	}
	return template.HTML(buf.String()), nil
}

// anchor derives a URL fragment from the given name parts.
func anchor(parts ...string) string {
	joined := strings.ReplaceAll(strings.Join(parts, "-"), ".", "-")
	return strcase.KebabCase(joined)
}

// kindTitle renders an item kind as a display label.
func kindTitle(kind docitem.Kind) string {
	return cases.Title(language.English).String(string(kind))
}
