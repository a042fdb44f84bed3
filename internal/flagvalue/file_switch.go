package flagvalue

import (
	"flag"
	"io"
	"os"
)

// FileSwitch is a flag that may be passed bare, "-x",
// or with a file name, "-x=log.txt".
// Bare turns the switch on with a caller-provided fallback writer;
// a file name sends output to that file instead.
type FileSwitch struct {
	path string
	on   bool
}

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the file name, or "-" if the switch is bare.
func (fs *FileSwitch) Get() any { return fs.String() }

// String returns the file name, or "-" if the switch is bare.
// An unset switch renders as the empty string.
func (fs *FileSwitch) String() string {
	switch {
	case fs == nil || !fs.on:
		return ""
	case fs.path == "":
		return "-"
	default:
		return fs.path
	}
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool { return true }

// Set turns the switch on.
// The flag package reports a bare switch as the value "true".
// That and "-" select the fallback writer;
// any other value names the output file.
func (fs *FileSwitch) Set(v string) error {
	fs.on = true
	fs.path = ""
	if v != "true" && v != "-" {
		fs.path = v
	}
	return nil
}

// Bool reports whether the switch was passed at all.
func (fs *FileSwitch) Bool() bool { return fs != nil && fs.on }

// Create opens the destination the switch selects:
// [io.Discard] when the switch is off,
// the fallback writer when it is bare,
// and the named file, created fresh, otherwise.
// close is a no-op unless a file was opened.
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	nop := func() error { return nil }
	switch {
	case !fs.Bool():
		return io.Discard, nop, nil
	case fs.path == "":
		return fallback, nop, nil
	default:
		f, err := os.Create(fs.path)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
}
