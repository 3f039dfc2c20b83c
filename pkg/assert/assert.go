// Package assert backs the Unchecked entry points of the containers.
// Assertions are compiled in only with the bounded_debug build tag; in
// regular builds a violated precondition leaves behavior unspecified.
package assert

import "fmt"

// That panics with the formatted message if cond is false and assertions
// are enabled.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Errorf("assertion failed: "+format, args...))
	}
}
