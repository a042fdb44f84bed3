// Package docitem defines the documentation model and the engine
// that attaches marker comments to the declarations they precede.
package docitem

import (
	"sort"
	"strings"
)

// Kind classifies a documentation item.
type Kind string

// The supported item kinds.
const (
	KindModule   Kind = "module"
	KindType     Kind = "type"
	KindFunction Kind = "function"
	KindMethod   Kind = "method"
)

// Argument is a declared parameter of a function or method.
type Argument struct {
	// Name is empty for unnamed parameters.
	Name string
	// Type is the canonical type string.
	Type string
}

// Field is a named struct field with its canonical type.
type Field struct {
	Name string
	Type string
}

// Item is one documented construct.
type Item struct {
	Name string
	// Doc is the attached marker comment text, newline-joined.
	// Empty when the construct is undocumented.
	Doc  string
	Kind Kind
	// Line is the 1-based declaration line.
	// Module items use line 1.
	Line int

	// Parent is the owning type's name. Methods only.
	Parent string
	// Recv is the receiver as written, e.g. "c *Calculator".
	// Methods only.
	Recv string

	Args   []Argument
	Return string
	// Fields preserves source order.
	Fields []Field

	// Methods holds the type's methods ordered by declaration line.
	// Populated only for type items.
	Methods []*Item
}

// Signature reconstructs the declaration of a function or method
// from its canonical type strings.
func (i *Item) Signature() string {
	args := make([]string, len(i.Args))
	for idx, arg := range i.Args {
		typ := arg.Type
		if typ == "" {
			typ = "any"
		}
		if arg.Name == "" {
			args[idx] = typ
		} else {
			args[idx] = arg.Name + " " + typ
		}
	}

	var sb strings.Builder
	sb.WriteString("func ")
	if i.Recv != "" {
		sb.WriteString("(" + i.Recv + ") ")
	}
	sb.WriteString(i.Name + "(" + strings.Join(args, ", ") + ")")
	if i.Return != "" {
		sb.WriteString(" " + i.Return)
	}
	return sb.String()
}

// Select returns the items of the given kind sorted by name.
// Methods live on their owning type item and are never selected here.
func Select(items map[string]*Item, kind Kind) []*Item {
	var picked []*Item
	for _, item := range items {
		if item.Kind == kind {
			picked = append(picked, item)
		}
	}
	return ByName(picked)
}

// ByName returns items sorted alphabetically
// without disturbing the original slice.
func ByName(items []*Item) []*Item {
	sorted := make([]*Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
