// Package iotest provides I/O helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"

	"go.abhg.dev/docu/internal/linebuf"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that writes to the given testing.TB.
// Output captured this way shows up with the test's own logs
// and only when the test fails or runs with -v.
//
// Writes are line-buffered:
// a partial line is held until its newline arrives or the test ends.
func Writer(t testing.TB) io.Writer {
	w, flush := linebuf.Writer(func(line []byte) {
		// Logf appends its own newline.
		t.Logf("%s", bytes.TrimSuffix(line, _newline))
	})
	t.Cleanup(flush)
	return w
}
