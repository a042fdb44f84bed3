package html

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"braces.dev/errtrace"
	"go.abhg.dev/docu/internal/must"
	"gopkg.in/yaml.v3"
)

// ErrTemplateNotFound is reported when a page template
// with the requested name doesn't exist.
var ErrTemplateNotFound = errors.New("unknown template")

// DefaultTemplate is the page template used
// when no other template is requested.
const DefaultTemplate = "default"

// Template describes one of the embedded page templates.
type Template struct {
	// Name identifies the template on the command line.
	Name string `yaml:"name"`

	// Description is a one-line summary shown in help output.
	Description string `yaml:"description"`

	// Style names the Chroma style used
	// to highlight code on the page.
	Style string `yaml:"style"`
}

//go:embed templates/manifest.yaml
var _manifestRaw []byte

var _templates = mustTemplates()

func mustTemplates() []Template {
	var m struct {
		Templates []Template `yaml:"templates"`
	}
	must.NotErrorf(yaml.Unmarshal(_manifestRaw, &m),
		"templates/manifest.yaml is invalid")

	sort.Slice(m.Templates, func(i, j int) bool {
		return m.Templates[i].Name < m.Templates[j].Name
	})
	return m.Templates
}

// Templates lists the embedded page templates in alphabetical order.
func Templates() []Template {
	return _templates
}

// TemplateNames lists the names of the embedded page templates
// in alphabetical order.
func TemplateNames() []string {
	names := make([]string, len(_templates))
	for i, t := range _templates {
		names[i] = t.Name
	}
	return names
}

func lookupTemplate(name string) (Template, error) {
	for _, t := range _templates {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, errtrace.Wrap(fmt.Errorf("%w %q: valid templates are %q", ErrTemplateNotFound, name, TemplateNames()))
}
