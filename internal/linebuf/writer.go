// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

// Writer returns an io.Writer that splits its input on newlines,
// calling fn once per line, trailing newline included.
// done flushes any leftover partial line; call it when writing stops.
//
// The slice passed to fn is only valid for the duration of the call.
func Writer(fn func([]byte)) (_ io.Writer, done func()) {
	w := writer{emit: fn}
	return &w, w.flush
}

type writer struct {
	emit func([]byte)

	mu   sync.Mutex
	rest []byte // partial line carried over from prior writes
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.rest = append(w.rest, bs...)
	for {
		idx := bytes.IndexByte(w.rest, '\n')
		if idx < 0 {
			break
		}
		w.emit(w.rest[:idx+1])
		w.rest = w.rest[idx+1:]
	}
	return len(bs), nil
}

// flush emits buffered text even if it doesn't end with a newline.
func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.rest) > 0 {
		w.emit(w.rest)
		w.rest = nil
	}
}
