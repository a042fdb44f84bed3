package docitem

import (
	"go/ast"
	"path/filepath"
	"sort"
	"strings"

	"go.abhg.dev/docu/internal/gosrc"
	"go.abhg.dev/docu/internal/marker"
	"go.abhg.dev/docu/internal/slices"
	"go.abhg.dev/docu/internal/typestr"
)

// maxLookback bounds how far above a declaration
// the assembler searches for its comment run.
const maxLookback = 20

// moduleGap is the number of lines that must separate a module-level
// comment block from the first declaration. Anything closer belongs
// to the declaration, or to nothing at all.
const moduleGap = 3

// Assembler builds the documentation model for parsed files.
type Assembler struct{}

// Assemble attaches the collected marker comments to the file's
// declarations and returns the resulting items keyed by bare name.
//
// The module item, present only when leading comments qualify as
// module documentation, is keyed by the file's base name without its
// extension. Methods are attached to their owning type item rather
// than keyed at top level; a method whose receiver type is not
// declared in this file is dropped.
func (*Assembler) Assemble(src *gosrc.File, comments []marker.Comment) map[string]*Item {
	as := assembly{
		src:      src,
		byLine:   make(map[int]string, len(comments)),
		consumed: make(map[int]bool),
	}
	for _, c := range comments {
		as.byLine[c.Line] = c.Text
	}
	return as.build(comments)
}

// assembly is the working state of one Assemble call.
type assembly struct {
	src      *gosrc.File
	byLine   map[int]string
	consumed map[int]bool
}

func (as *assembly) build(comments []marker.Comment) map[string]*Item {
	items := make(map[string]*Item)

	if doc, ok := as.moduleDoc(comments); ok {
		name := moduleName(as.src.Path)
		items[name] = &Item{
			Name: name,
			Doc:  doc,
			Kind: KindModule,
			Line: 1,
		}
	}

	decls := make([]*gosrc.Decl, len(as.src.Decls))
	copy(decls, as.src.Decls)
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Line < decls[j].Line
	})

	methods := make(map[string][]*Item)
	for _, d := range decls {
		item := as.item(d)
		if item.Kind == KindMethod {
			methods[item.Parent] = append(methods[item.Parent], item)
			continue
		}
		items[item.Name] = item
	}

	for owner, ms := range methods {
		parent, ok := items[owner]
		if !ok || parent.Kind != KindType {
			// The receiver type lives in another file.
			continue
		}
		sort.Slice(ms, func(i, j int) bool {
			return ms[i].Line < ms[j].Line
		})
		parent.Methods = ms
	}

	return items
}

// moduleDoc applies the module attribution policy.
//
// The candidate block is the line-contiguous front run of the comment
// sequence. It qualifies as module documentation, all or nothing,
// when more than moduleGap lines separate its last line from the
// first declaration; a closer block is attached to that declaration
// or orphaned, never split. A file with no declarations at all turns
// every comment into module documentation.
func (as *assembly) moduleDoc(comments []marker.Comment) (string, bool) {
	if len(comments) == 0 {
		return "", false
	}

	if len(as.src.Decls) == 0 {
		return as.consume(comments), true
	}

	firstDecl := as.src.Decls[0].Line
	for _, d := range as.src.Decls[1:] {
		firstDecl = min(firstDecl, d.Line)
	}

	run := comments[:1]
	for i := 1; i < len(comments); i++ {
		if comments[i].Line != comments[i-1].Line+1 {
			break
		}
		run = comments[:i+1]
	}

	if firstDecl-run[len(run)-1].Line <= moduleGap {
		return "", false
	}
	return as.consume(run), true
}

func (as *assembly) consume(run []marker.Comment) string {
	lines := make([]string, len(run))
	for i, c := range run {
		lines[i] = c.Text
		as.consumed[c.Line] = true
	}
	return strings.Join(lines, "\n")
}

func (as *assembly) item(d *gosrc.Decl) *Item {
	item := &Item{
		Name: d.Name,
		Doc:  as.attached(d.Line),
		Line: d.Line,
	}

	switch d.Kind {
	case gosrc.KindType:
		item.Kind = KindType
		item.Fields = slices.Transform(d.Fields, func(f gosrc.Field) Field {
			return Field{Name: f.Name, Type: typestr.String(f.Type)}
		})
	case gosrc.KindFunc:
		item.Kind = KindFunction
		if d.Recv != "" {
			item.Kind = KindMethod
			item.Parent = d.Recv
			item.Recv = d.RecvText
		}
		item.Args = slices.Transform(d.Params, func(p gosrc.Param) Argument {
			return Argument{Name: p.Name, Type: typestr.String(p.Type)}
		})
		item.Return = returnType(d.Results)
	}
	return item
}

// attached collects the contiguous run of unconsumed marker comments
// directly above the declaration line.
//
// Blank source lines are scanned past without being consumed. Any
// other gap ends the run, as does a comment already claimed by an
// earlier attribution. At most maxLookback lines above the
// declaration are considered.
func (as *assembly) attached(declLine int) string {
	var run []string
	for line := declLine - 1; line >= 1 && line >= declLine-maxLookback; line-- {
		text, ok := as.byLine[line]
		if !ok {
			if as.src.Blank(line) {
				continue
			}
			break
		}
		if as.consumed[line] {
			break
		}
		if line != declLine-1 {
			if _, contiguous := as.byLine[line+1]; !contiguous {
				break
			}
		}
		run = append(run, text)
		as.consumed[line] = true
	}

	for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
		run[i], run[j] = run[j], run[i]
	}
	return strings.Join(run, "\n")
}

func returnType(results []ast.Expr) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return typestr.String(results[0])
	default:
		return typestr.Tuple(results)
	}
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
