package abi

import "fmt"

// Unreachable aborts the current driver: malformed bytecode, an
// out-of-range reference kind, or a tag-byte width outside {1,2,4,8} are
// all programmer errors per the interpreter's failure semantics, not
// conditions it recovers from. It panics with a formatted message rather
// than returning an error, matching the "no exceptions propagate, no
// error channel" design of the traversal drivers.
func Unreachable(format string, args ...any) {
	panic(fmt.Sprintf("valuewit: unreachable: "+format, args...))
}
