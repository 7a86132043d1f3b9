package valuewit

import (
	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/witness"
)

// Collaborator is the black-box object-lifecycle runtime this package
// consumes: ref-count primitives, ABI masks, inline reference-slot
// witnesses, existential-container witnesses, and a metadata-token lookup.
// See internal/witness.Collaborator for the full method set; it is
// re-exported here rather than duplicated so callers never import
// internal/witness directly.
type Collaborator = witness.Collaborator

// Metadata is a single type's own value-witness table, consulted whenever
// a Metatype, Resilient, or generic-enum instruction needs to delegate to
// a dynamically-identified type.
type Metadata = witness.Metadata

// FuncTable resolves the tokens a Resilient instruction's embedded
// accessor and an enum's embedded tag function reduce to, in place of the
// source runtime's PC-relative, pointer-authenticated function pointers.
// Register a TagFunc once per distinct accessor/tag function at layout
// construction time; the token embedded in the bytecode is the index
// Register returns. See SPEC_FULL.md §15 for why this indirection replaces
// raw relative pointers.
type FuncTable = bytecode.FuncTable

// TagFunc is the shape every resilient-accessor and enum-tag-accessor
// function must have: given the address of a value, return the token
// (a resolved metadata token, or a payload tag) the caller embedded it to
// produce.
type TagFunc = bytecode.TagFunc

// NewFuncTable returns an empty FuncTable ready for Register calls.
func NewFuncTable() *FuncTable {
	return bytecode.NewFuncTable()
}
