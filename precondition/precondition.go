// Package precondition implements the hard-fault half of the core's error
// model (spec §7): a violated input invariant is never downgraded to a
// negative boolean, it panics immediately with a typed error the caller can
// recover() and inspect if it chooses to.
package precondition

import "fmt"

// Error marks a violated precondition — a malformed input shape, an
// unpopulated CRS, a size mismatch — as distinct from a cryptographic
// rejection, which is always a plain bool or empty slice, never an Error.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "precondition violated: " + e.Msg
}

// Require panics with an *Error if cond is false.
func Require(cond bool, format string, args ...any) {
	if !cond {
		panic(&Error{Msg: fmt.Sprintf(format, args...)})
	}
}
