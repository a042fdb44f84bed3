// Package marker scans source text for documentation marker comments.
//
// A marker comment is a line whose content begins with the "///"
// prefix, in the style of Rust's documentation comments.
// Only the raw line text matters: the scanner has no knowledge of Go
// syntax, so markers inside string literals are collected too.
package marker

import "strings"

// Prefix marks a line as a documentation comment.
const Prefix = "///"

// Comment is a single marker comment line.
type Comment struct {
	// Line is the 1-based line number the comment was found on.
	Line int

	// Text is the comment body with the marker
	// and at most one following space removed.
	// Indentation beyond that one space is preserved.
	Text string
}

// Scanner scans source text for marker comments.
// The zero value is ready to use.
type Scanner struct{}

// Scan collects the marker comments in src, ordered by line.
func (*Scanner) Scan(src []byte) []Comment {
	return Scan(src)
}

// Scan collects the marker comments in src, ordered by line.
// Lines without the marker have no representation in the result.
func Scan(src []byte) []Comment {
	var comments []Comment
	for i, raw := range strings.Split(string(src), "\n") {
		text := strings.TrimSpace(raw)
		if !strings.HasPrefix(text, Prefix) {
			continue
		}
		comments = append(comments, Comment{
			Line: i + 1,
			Text: strings.TrimPrefix(text[len(Prefix):], " "),
		})
	}
	return comments
}
