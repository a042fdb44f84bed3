package gosrc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/docu/internal/typestr"
)

// Parser parses Go source files.
type Parser struct{}

// ParseFile parses the source text of a single file.
//
// Syntax errors are returned as-is; go/parser's error list carries
// position information for every failure it recovers from.
func (*Parser) ParseFile(path string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	astf, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	f := &File{
		Path:  path,
		Lines: strings.Split(string(src), "\n"),
	}
	for _, decl := range astf.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					f.Decls = append(f.Decls, typeDecl(fset, ts))
				}
			}
		case *ast.FuncDecl:
			f.Decls = append(f.Decls, funcDecl(fset, d))
		}
	}
	return f, nil
}

func typeDecl(fset *token.FileSet, ts *ast.TypeSpec) *Decl {
	d := &Decl{
		Name: ts.Name.Name,
		Line: fset.Position(ts.Pos()).Line,
		Kind: KindType,
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return d
	}
	for _, field := range st.Fields.List {
		// Embedded fields have no names.
		for _, name := range field.Names {
			d.Fields = append(d.Fields, Field{
				Name: name.Name,
				Type: field.Type,
			})
		}
	}
	return d
}

func funcDecl(fset *token.FileSet, fd *ast.FuncDecl) *Decl {
	d := &Decl{
		Name: fd.Name.Name,
		Line: fset.Position(fd.Pos()).Line,
		Kind: KindFunc,
	}

	if fd.Recv != nil && len(fd.Recv.List) > 0 {
		recv := fd.Recv.List[0]
		d.Recv = recvBaseName(recv.Type)
		d.RecvText = recvText(recv)
	}

	if params := fd.Type.Params; params != nil {
		for _, field := range params.List {
			if len(field.Names) == 0 {
				d.Params = append(d.Params, Param{Type: field.Type})
				continue
			}
			for _, name := range field.Names {
				d.Params = append(d.Params, Param{
					Name: name.Name,
					Type: field.Type,
				})
			}
		}
	}

	if results := fd.Type.Results; results != nil {
		for _, field := range results.List {
			n := max(len(field.Names), 1)
			for i := 0; i < n; i++ {
				d.Results = append(d.Results, field.Type)
			}
		}
	}

	return d
}

// recvBaseName unwraps pointers, parentheses, and type parameters
// down to the receiver's defined type name.
func recvBaseName(expr ast.Expr) string {
	for {
		switch t := expr.(type) {
		case *ast.StarExpr:
			expr = t.X
		case *ast.ParenExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}

func recvText(f *ast.Field) string {
	typ := typestr.String(f.Type)
	if len(f.Names) == 0 {
		return typ
	}
	return f.Names[0].Name + " " + typ
}
