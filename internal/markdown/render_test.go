package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/docu/internal/docitem"
)

const fence = "```"

func render(t *testing.T, items map[string]*docitem.Item) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, new(Renderer).Render(&sb, items))
	return sb.String()
}

func TestRender_empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, render(t, nil))
	assert.Empty(t, render(t, map[string]*docitem.Item{}))
}

func TestRender_moduleWithoutDocOmitted(t *testing.T) {
	t.Parallel()

	got := render(t, map[string]*docitem.Item{
		"calc": {Name: "calc", Kind: docitem.KindModule},
		"Add": {
			Name: "Add",
			Kind: docitem.KindFunction,
			Doc:  "Add adds.",
		},
	})

	assert.NotContains(t, got, "# Module")
	assert.Contains(t, got, "## Functions")
}

func TestRender_document(t *testing.T) {
	t.Parallel()

	num := docitem.Argument{Name: "number", Type: "float64"}
	items := map[string]*docitem.Item{
		"calc": {
			Name: "calc",
			Kind: docitem.KindModule,
			Doc:  "Calculator helpers.",
		},
		"Calculator": {
			Name:   "Calculator",
			Kind:   docitem.KindType,
			Doc:    "Accumulates totals.",
			Fields: []docitem.Field{{Name: "total", Type: "float64"}},
			Methods: []*docitem.Item{
				// Declaration order; rendering sorts by name.
				{
					Name:   "Sub",
					Kind:   docitem.KindMethod,
					Doc:    "Sub subtracts.",
					Parent: "Calculator",
					Recv:   "c *Calculator",
					Args:   []docitem.Argument{num},
					Return: "float64",
				},
				{
					Name:   "Add",
					Kind:   docitem.KindMethod,
					Doc:    "Add adds.",
					Parent: "Calculator",
					Recv:   "c *Calculator",
					Args:   []docitem.Argument{num},
					Return: "float64",
				},
			},
		},
		"New": {
			Name:   "New",
			Kind:   docitem.KindFunction,
			Doc:    "New builds a calculator.",
			Return: "*Calculator",
		},
	}

	want := strings.Join([]string{
		"# Module calc",
		"Calculator helpers.",
		"",
		"## Types",
		"",
		"### type Calculator",
		"",
		"#### Fields",
		"- **total**: float64",
		"",
		"Accumulates totals.",
		"",
		"#### Methods",
		"",
		"##### Add",
		fence + "go",
		"func (c *Calculator) Add(number float64) float64",
		fence,
		"Add adds.",
		"**Arguments**",
		"- number: float64",
		"**Returns**",
		"- float64",
		"",
		"##### Sub",
		fence + "go",
		"func (c *Calculator) Sub(number float64) float64",
		fence,
		"Sub subtracts.",
		"**Arguments**",
		"- number: float64",
		"**Returns**",
		"- float64",
		"",
		"## Functions",
		"",
		"### New",
		fence + "go",
		"func New() *Calculator",
		fence,
		"New builds a calculator.",
		"**Returns**",
		"- *Calculator",
		"",
	}, "\n")

	assert.Equal(t, want, render(t, items))
}

func TestRender_fallbackArgumentTypes(t *testing.T) {
	t.Parallel()

	got := render(t, map[string]*docitem.Item{
		"dump": {
			Name: "dump",
			Kind: docitem.KindFunction,
			Args: []docitem.Argument{
				{Type: "io.Writer"},
				{Name: "x"},
			},
		},
	})

	assert.Contains(t, got, "func dump(io.Writer, x any)")
	assert.Contains(t, got, "- io.Writer\n")
	assert.Contains(t, got, "- x: any")
}

func TestRender_signatureFences(t *testing.T) {
	t.Parallel()

	got := render(t, map[string]*docitem.Item{
		"Log": {
			Name: "Log",
			Kind: docitem.KindFunction,
			Args: []docitem.Argument{
				{Name: "format", Type: "string"},
				{Name: "args", Type: "...any"},
			},
		},
	})

	assert.Contains(t, got,
		fence+"go\nfunc Log(format string, args ...any)\n"+fence)
}
