// Package flagvalue provides flag.Value implementations.
package flagvalue

import (
	"flag"
	"fmt"

	"braces.dev/errtrace"
)

// Enum is a string flag that accepts only a fixed set of values.
type Enum struct {
	// Value is the currently selected value.
	// Set it before flag parsing to pick a default.
	Value string

	// Choices lists the values this flag accepts.
	Choices []string
}

var _ flag.Getter = (*Enum)(nil)

// Get returns the currently selected value.
func (e *Enum) Get() any { return e.Value }

// String returns the currently selected value.
func (e *Enum) String() string {
	if e == nil {
		return ""
	}
	return e.Value
}

// Set receives a command line value,
// rejecting anything outside the accepted set.
func (e *Enum) Set(s string) error {
	for _, c := range e.Choices {
		if s == c {
			e.Value = s
			return nil
		}
	}
	return errtrace.Wrap(fmt.Errorf("expected one of %q", e.Choices))
}
