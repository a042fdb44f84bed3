// Package gosrc parses single Go source files
// into the flat declaration records the documentation model needs.
package gosrc
