// Package highlight renders source code snippets as HTML.
// It uses the Chroma library to do this work.
package highlight
