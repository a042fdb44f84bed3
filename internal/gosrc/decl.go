package gosrc

import (
	"go/ast"
	"strings"
)

// Kind distinguishes the declaration forms the documentation model
// cares about.
type Kind int

const (
	// KindType is a type declaration.
	KindType Kind = iota
	// KindFunc is a function or method declaration.
	KindFunc
)

// Param is one declared parameter.
type Param struct {
	// Name is empty for unnamed parameters.
	Name string
	Type ast.Expr
}

// Field is a named struct field.
// Embedded fields carry no name and are not extracted.
type Field struct {
	Name string
	Type ast.Expr
}

// Decl is one top-level declaration extracted from a file.
type Decl struct {
	Name string
	// Line is the 1-based line of the declaring spec or func keyword.
	Line int
	Kind Kind

	// Recv is the receiver's base type name,
	// empty when the declaration is not a method.
	Recv string
	// RecvText is the receiver as written, e.g. "c *Calculator".
	RecvText string

	Params  []Param
	Results []ast.Expr
	Fields  []Field
}

// File is one parsed source file.
type File struct {
	Path string
	// Lines holds the raw source lines.
	Lines []string
	// Decls lists the file's declarations in source order.
	Decls []*Decl
}

// Blank reports whether the 1-based source line is blank or
// whitespace-only. Lines outside the file count as blank.
func (f *File) Blank(line int) bool {
	if line < 1 || line > len(f.Lines) {
		return true
	}
	return strings.TrimSpace(f.Lines[line-1]) == ""
}
