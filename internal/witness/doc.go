// Package witness defines the collaborator and metadata interfaces the
// interpreter treats as black boxes, implements the 13 non-enum
// reference-kind primitives each of the four traversal modes dispatches
// to, and runs the
// shared driver loop both the root package's top-level entry points and
// the enumlayout package's recursive payload handlers execute bytecode
// through.
//
// # Contents
//
//   - collaborator.go: Collaborator and Metadata interfaces, the Mode enum.
//   - primitives.go: one function per reference kind, parameterized by Mode.
//   - tables.go: the dispatch table construction (enum slots left for
//     enumlayout to fill in).
//   - driver.go: the branchless instruction loop shared by every entry point.
//   - memcopy.go: the small unsafe core isolating raw byte copies.
//
// This package is internal to valuewit.
package witness
