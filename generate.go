package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/docu/internal/docitem"
	"go.abhg.dev/docu/internal/errdefer"
	"go.abhg.dev/docu/internal/gosrc"
	"go.abhg.dev/docu/internal/html"
	"go.abhg.dev/docu/internal/markdown"
	"go.abhg.dev/docu/internal/marker"
	"go.abhg.dev/docu/internal/siteindex"
)

// Output formats accepted by the -format flag.
const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

// _formats lists the accepted output formats in alphabetical order.
var _formats = []string{formatHTML, formatMarkdown}

// Scanner extracts marker comments from raw source text.
type Scanner interface {
	Scan(src []byte) []marker.Comment
}

var _ Scanner = (*marker.Scanner)(nil)

// Parser parses a single Go source file.
type Parser interface {
	ParseFile(path string, src []byte) (*gosrc.File, error)
}

var _ Parser = (*gosrc.Parser)(nil)

// Assembler joins marker comments with the declarations they document.
type Assembler interface {
	Assemble(src *gosrc.File, comments []marker.Comment) map[string]*docitem.Item
}

var _ Assembler = (*docitem.Assembler)(nil)

// Renderer writes a document model in some output format.
type Renderer interface {
	Render(w io.Writer, items map[string]*docitem.Item) error
}

var (
	_ Renderer = (*markdown.Renderer)(nil)
	_ Renderer = (*html.Renderer)(nil)
)

// Generator generates documentation for a single annotated source file.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log       *log.Logger
	Scanner   Scanner
	Parser    Parser
	Assembler Assembler
	Markdown  Renderer
	HTML      Renderer

	// Format selects the renderer: markdown or html.
	Format string

	// Template names the page template used for HTML output.
	// It becomes part of the output file name.
	Template string

	// OutputDir receives the generated file.
	// If empty, ProcessFile returns the content instead.
	OutputDir string

	// Index, if set, refreshes the OutputDir listing
	// after every write.
	Index *siteindex.Writer
}

// ProcessFile generates documentation for the file at path.
//
// With OutputDir set, the result is written there and the path
// to the written file is returned.
// Otherwise the rendered document itself is returned.
func (g *Generator) ProcessFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("file not found: %s", path)
		}
		return "", errtrace.Wrap(err)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	f, err := g.Parser.ParseFile(path, src)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}

	comments := g.Scanner.Scan(src)
	items := g.Assembler.Assemble(f, comments)
	g.Log.Printf("Found %d documented items in %v", len(items), path)

	var buff bytes.Buffer
	if err := g.render(&buff, items); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if g.OutputDir == "" {
		return buff.String(), nil
	}

	out, err := g.writeFile(path, buff.Bytes())
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	g.Log.Printf("Wrote %v", out)

	if g.Index != nil {
		if _, _, err := g.Index.Refresh(g.OutputDir); err != nil {
			return "", fmt.Errorf("index: %w", err)
		}
	}

	return out, nil
}

func (g *Generator) render(w io.Writer, items map[string]*docitem.Item) error {
	switch g.Format {
	case formatMarkdown:
		return errtrace.Wrap(g.Markdown.Render(w, items))
	case formatHTML:
		return errtrace.Wrap(g.HTML.Render(w, items))
	default:
		return errtrace.Wrap(fmt.Errorf("unknown format %q: valid formats are %q", g.Format, _formats))
	}
}

// writeFile writes the rendered body under OutputDir,
// deriving the file name from the source file and the format.
func (g *Generator) writeFile(src string, body []byte) (_ string, err error) {
	if err := os.MkdirAll(g.OutputDir, 0o1755); err != nil {
		return "", errtrace.Wrap(err)
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	name := base + ".md"
	if g.Format == formatHTML {
		tmpl := g.Template
		if tmpl == "" {
			tmpl = html.DefaultTemplate
		}
		name = fmt.Sprintf("%s_%s.html", base, tmpl)
	}

	out := filepath.Join(g.OutputDir, name)
	f, err := os.Create(out)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	if _, err := f.Write(body); err != nil {
		return "", errtrace.Wrap(err)
	}
	return out, nil
}
