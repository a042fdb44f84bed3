// Package docstyle parses structured docstrings.
//
// Documentation comments frequently follow one of a few informal
// conventions for describing arguments, return values, and failure
// modes. This package recognizes the Google, NumPy, and Sphinx
// conventions and splits a raw comment block into its sections.
package docstyle

import (
	"fmt"
	"strings"
	"unicode"

	"braces.dev/errtrace"
)

// Supported documentation styles.
const (
	Google = "google"
	Numpy  = "numpy"
	Sphinx = "sphinx"
)

// Styles reports the supported style names in alphabetical order.
func Styles() []string {
	return []string{Google, Numpy, Sphinx}
}

// Sections is a docstring split into its structural parts.
// Parts that the docstring does not contain are left empty.
type Sections struct {
	// Description is the free-form text of the docstring.
	Description string

	// Args holds one entry per documented argument.
	Args []string

	// Returns describes the return value.
	Returns string

	// Raises holds one entry per documented failure mode.
	Raises []string
}

// Parser splits a raw docstring into sections.
type Parser interface {
	Parse(docstring string) Sections
}

// New builds a parser for the named style.
func New(style string) (Parser, error) {
	switch style {
	case Google:
		return googleParser{}, nil
	case Numpy:
		return numpyParser{}, nil
	case Sphinx:
		return sphinxParser{}, nil
	}
	return nil, errtrace.Wrap(fmt.Errorf("unsupported documentation style %q: valid styles are %q", style, Styles()))
}

type section int

const (
	sectionDescription section = iota
	sectionArgs
	sectionReturns
	sectionRaises
)

// googleParser handles Google style docstrings,
// where "Args:", "Returns:", and "Raises:" headers
// introduce indented blocks.
type googleParser struct{}

var _ Parser = googleParser{}

func (googleParser) Parse(docstring string) Sections {
	var s Sections
	if docstring == "" {
		return s
	}

	lines := strings.Split(docstring, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	// Base indentation comes from the first non-empty line.
	base := -1
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			base = indentOf(line)
			break
		}
	}
	if base < 0 {
		return s
	}

	var desc []string
	sec := sectionDescription
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			if sec == sectionDescription {
				desc = append(desc, "")
			}
			continue
		}

		// Dedent relative to the base indentation. Lines indented
		// deeper than the base belong to the current section body.
		var rel int
		if indent := indentOf(line); indent > base {
			line = line[base:]
			rel = indent - base
		} else {
			line = strings.TrimLeftFunc(line, unicode.IsSpace)
		}

		switch strings.ToLower(stripped) {
		case "args:":
			sec = sectionArgs
			continue
		case "returns:":
			sec = sectionReturns
			continue
		case "raises:":
			sec = sectionRaises
			continue
		}

		switch sec {
		case sectionDescription:
			desc = append(desc, line)
		case sectionArgs:
			if rel > 0 {
				s.Args = append(s.Args, stripped)
			}
		case sectionReturns:
			if rel > 0 {
				s.Returns += stripped + "\n"
			}
		case sectionRaises:
			if rel > 0 {
				s.Raises = append(s.Raises, stripped)
			}
		}
	}

	s.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	s.Returns = strings.TrimSpace(s.Returns)
	return s
}

// indentOf counts the leading whitespace of line.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
}

// numpyParser handles NumPy style docstrings, where "Parameters",
// "Returns", and "Raises" headers sit on their own lines above
// underlined blocks. Argument entries must contain a colon.
type numpyParser struct{}

var _ Parser = numpyParser{}

func (numpyParser) Parse(docstring string) Sections {
	var s Sections
	if docstring == "" {
		return s
	}

	sec := sectionDescription
	for _, line := range strings.Split(docstring, "\n") {
		line = strings.TrimSpace(line)

		switch strings.ToLower(line) {
		case "parameters":
			sec = sectionArgs
			continue
		case "returns":
			sec = sectionReturns
			continue
		case "raises":
			sec = sectionRaises
			continue
		}

		switch {
		case sec == sectionDescription:
			s.Description += line + "\n"
		case sec == sectionArgs && strings.Contains(line, ":"):
			s.Args = append(s.Args, line)
		case sec == sectionReturns && line != "":
			s.Returns += line + "\n"
		case sec == sectionRaises && strings.Contains(line, ":"):
			s.Raises = append(s.Raises, line)
		}
	}
	return s
}

// sphinxParser handles Sphinx style docstrings built from
// ":param", ":returns:", and ":raises:" field directives.
type sphinxParser struct{}

var _ Parser = sphinxParser{}

func (sphinxParser) Parse(docstring string) Sections {
	var s Sections
	if docstring == "" {
		return s
	}

	sec := sectionDescription
	for _, line := range strings.Split(docstring, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, ":param"):
			sec = sectionArgs
			s.Args = append(s.Args, strings.TrimSpace(line[len(":param"):]))
		case strings.HasPrefix(line, ":returns:"):
			sec = sectionReturns
			s.Returns += strings.TrimSpace(line[len(":returns:"):]) + "\n"
		case strings.HasPrefix(line, ":raises:"):
			sec = sectionRaises
			s.Raises = append(s.Raises, strings.TrimSpace(line[len(":raises:"):]))
		case sec == sectionDescription:
			s.Description += line + "\n"
		}
	}
	return s
}
