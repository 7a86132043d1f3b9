// Package abi provides the low-level, collaborator-independent arithmetic
// the interpreter needs at its edges: the unreachable-abort helper that
// realizes the "no recoverable errors" failure semantics, the tag-byte
// codec, and the bit-packing formulas for the single-payload-simple enum
// header.
//
// This package is internal to valuewit.
package abi
