package debug

import (
	"fmt"
	"runtime"
)

// Assert panics with the caller's location when truth does not hold.
// Used for precondition checks (undersized buffers and the like) that
// indicate a bug in the calling code rather than a recoverable error.
func Assert(truth bool, msg ...string) {
	if len(msg) > 1 {
		panic("invalid assert args")
	}
	if !truth {
		msg := fmt.Sprintf("assertion failed(%s)", msg)
		// include information about the assertion location. due to
		// panic recovery, this location is otherwise buried in the
		// middle of the panicking stack.
		if _, file, line, ok := runtime.Caller(1); ok {
			msg = fmt.Sprintf("%s:%d: %s", file, line, msg)
		}
		panic(msg)
	}
}
