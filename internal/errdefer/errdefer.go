// Package errdefer helps functions report errors from cleanup work
// that runs in a defer, where a plain return would lose them.
package errdefer

import (
	"errors"
	"io"
)

// Close closes the Closer and folds its error, if any,
// into *err alongside whatever is already there.
//
// err must point at a named return.
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}
