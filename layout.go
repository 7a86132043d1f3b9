package valuewit

import (
	"github.com/wippyai/valuewit/errors"
	"github.com/wippyai/valuewit/internal/bytecode"
)

// LayoutString is an instantiated, immutable layout bytecode buffer
// attached to one type's metadata (§3.1, §3.4). Once Instantiate returns a
// LayoutString it is safe to share read-only across any number of driver
// calls and goroutines operating on distinct values; the only permitted
// mutation is the one-time ResolveResilientAccessors rewrite.
type LayoutString struct {
	buf  []byte
	size uint64
}

// Instantiate attaches buf as a type's layout bytecode, after validating
// that it is at least long enough to hold the fixed header and a
// terminating End instruction. This is one of the interpreter's two
// fallible entry points (generic_instantiateLayoutString, §6); every
// narrower malformation discovered later, during traversal, is a
// programmer error and aborts instead.
func Instantiate(buf []byte, size uint64) (*LayoutString, error) {
	needed := bytecode.HeaderSize + 8
	if len(buf) < needed {
		return nil, errors.Truncated(errors.PhaseCompile, nil, needed, len(buf))
	}
	return &LayoutString{buf: buf, size: size}, nil
}

// Bytes returns the underlying instruction stream, header included. It is
// read-only; callers must not mutate it outside of
// ResolveResilientAccessors.
func (l *LayoutString) Bytes() []byte { return l.buf }

// Size is the value size this layout string was instantiated for, the
// figure every driver's Run loop must terminate having advanced addrOffset
// to exactly.
func (l *LayoutString) Size() uint64 { return l.size }
