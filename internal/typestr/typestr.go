// Package typestr renders type expressions into canonical display
// strings for documentation output.
package typestr

import (
	"go/ast"
	"strings"
)

// Fallback is the display form for type expressions
// that have no better rendering.
const Fallback = "any"

// String renders a type expression in canonical display form.
//
// It is a total function: expression shapes it does not recognize
// degrade to [Fallback] instead of failing.
func String(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return String(t.X) + "." + t.Sel.Name
	case *ast.IndexExpr:
		return String(t.X) + "[" + String(t.Index) + "]"
	case *ast.IndexListExpr:
		return String(t.X) + "[" + join(t.Indices) + "]"
	case *ast.BasicLit:
		return t.Value
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + String(t.Elt)
		}
		return "[" + String(t.Len) + "]" + String(t.Elt)
	case *ast.MapType:
		return "map[" + String(t.Key) + "]" + String(t.Value)
	case *ast.StarExpr:
		return "*" + String(t.X)
	case *ast.Ellipsis:
		return "..." + String(t.Elt)
	case *ast.ChanType:
		switch t.Dir {
		case ast.RECV:
			return "<-chan " + String(t.Value)
		case ast.SEND:
			return "chan<- " + String(t.Value)
		default:
			return "chan " + String(t.Value)
		}
	case *ast.FuncType:
		return "func(" + fieldTypes(t.Params) + ")" + resultSuffix(t.Results)
	case *ast.ParenExpr:
		return String(t.X)
	case *ast.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return "any"
		}
	}
	return Fallback
}

// Tuple renders a sequence of type expressions as a parenthesized,
// comma-separated tuple, the display form for multiple results.
func Tuple(exprs []ast.Expr) string {
	return "(" + join(exprs) + ")"
}

func join(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = String(e)
	}
	return strings.Join(parts, ", ")
}

// fieldTypes renders a parameter list by type only,
// expanding name groups that share one type.
func fieldTypes(fields *ast.FieldList) string {
	if fields == nil {
		return ""
	}
	var parts []string
	for _, f := range fields.List {
		n := len(f.Names)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			parts = append(parts, String(f.Type))
		}
	}
	return strings.Join(parts, ", ")
}

func resultSuffix(results *ast.FieldList) string {
	if results == nil || len(results.List) == 0 {
		return ""
	}
	s := fieldTypes(results)
	if len(results.List) == 1 && len(results.List[0].Names) <= 1 {
		return " " + s
	}
	return " (" + s + ")"
}
