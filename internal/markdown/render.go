// Package markdown renders a document model as Markdown text.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/docu/internal/docitem"
)

// Renderer writes the Markdown view of a document model.
// The output is purely structural: a module heading when module
// documentation exists, a Types section, and a Functions section.
// Sections without items are omitted.
type Renderer struct{}

// Render writes the documentation for items to w.
//
// Types and functions are listed alphabetically. Methods are listed
// alphabetically under their owning type.
func (*Renderer) Render(w io.Writer, items map[string]*docitem.Item) error {
	var entries []string

	if mods := docitem.Select(items, docitem.KindModule); len(mods) > 0 && mods[0].Doc != "" {
		entries = append(entries,
			"# Module "+mods[0].Name,
			mods[0].Doc,
			"",
		)
	}

	if types := docitem.Select(items, docitem.KindType); len(types) > 0 {
		entries = append(entries, "## Types")
		for _, typ := range types {
			entries = append(entries, "\n### type "+typ.Name)

			if len(typ.Fields) > 0 {
				entries = append(entries, "\n#### Fields")
				for _, field := range typ.Fields {
					entries = append(entries, fmt.Sprintf("- **%s**: %s", field.Name, field.Type))
				}
			}

			if typ.Doc != "" {
				entries = append(entries, "\n"+typ.Doc)
			}

			if len(typ.Methods) > 0 {
				entries = append(entries, "\n#### Methods")
				for _, method := range docitem.ByName(typ.Methods) {
					entries = append(entries, "\n##### "+method.Name)
					entries = append(entries, body(method)...)
				}
			}

			entries = append(entries, "")
		}
	}

	if funcs := docitem.Select(items, docitem.KindFunction); len(funcs) > 0 {
		entries = append(entries, "## Functions")
		for _, fn := range funcs {
			entries = append(entries, "\n### "+fn.Name)
			entries = append(entries, body(fn)...)
			entries = append(entries, "")
		}
	}

	_, err := io.WriteString(w, strings.Join(entries, "\n"))
	return errtrace.Wrap(err)
}

// body renders the shared shape of functions and methods:
// signature, doc text, argument list, and return line.
func body(item *docitem.Item) []string {
	entries := []string{"```go\n" + item.Signature() + "\n```"}

	if item.Doc != "" {
		entries = append(entries, item.Doc)
	}

	if len(item.Args) > 0 {
		entries = append(entries, "**Arguments**")
		for _, arg := range item.Args {
			entries = append(entries, "- "+bullet(arg))
		}
	}

	if item.Return != "" {
		entries = append(entries, "**Returns**\n- "+item.Return)
	}

	return entries
}

func bullet(arg docitem.Argument) string {
	typ := arg.Type
	if typ == "" {
		typ = "any"
	}
	if arg.Name == "" {
		return typ
	}
	return arg.Name + ": " + typ
}
