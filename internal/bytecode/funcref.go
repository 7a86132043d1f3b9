package bytecode

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/abi"
)

// TagFunc is the Go-native stand-in for the "PC-relative function
// pointer, stripped and re-signed at the read site" abstraction of the
// source runtime. Every embedded function reference — an enum's tag
// accessor or a resilient field's metadata accessor — reduces to this one
// shape: given the address of the value, return a 64-bit result. A
// resilient accessor is also called with the value's address, not with a
// generic-argument vector; any generic-argument context it needs must be
// captured by the registered closure.
type TagFunc func(addr unsafe.Pointer) uint64

// FuncTable is the registry a caller supplies alongside a layout string:
// bytecode never stores a raw address, only an opaque token indexing into
// this table. This sidesteps both the lack of an address-stable callable
// byte sequence in Go and the absence of pointer authentication, while
// preserving the original's invariant that a token is turned into a
// callable only at the exact site that is about to call it.
type FuncTable struct {
	fns []TagFunc
}

// NewFuncTable returns an empty table; callers populate it via Register
// before instantiating any layout string that references it.
func NewFuncTable() *FuncTable {
	return &FuncTable{}
}

// Register adds fn to the table and returns its token.
func (t *FuncTable) Register(fn TagFunc) uint64 {
	t.fns = append(t.fns, fn)
	return uint64(len(t.fns) - 1)
}

// Resolve returns the function registered for token. An out-of-range
// token is malformed bytecode or a caller/compiler mismatch; it aborts
// rather than returning an error, consistent with every other decode-time
// violation in the driver loops.
func (t *FuncTable) Resolve(token uint64) TagFunc {
	if token >= uint64(len(t.fns)) {
		abi.Unreachable("function token %d out of range (table has %d entries)", token, len(t.fns))
	}
	return t.fns[token]
}
