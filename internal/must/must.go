// Package must enforces invariants the program cannot continue
// without. A violation panics.
package must

import "fmt"

// NotErrorf panics with the formatted message and the error
// if err is not nil.
func NotErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf(format, args...) + ": " + err.Error())
	}
}
