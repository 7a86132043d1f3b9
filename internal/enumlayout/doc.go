// Package enumlayout implements the enum handlers of §4.3 for the seven
// enum instruction kinds: single-payload × {simple, function,
// resolved-function, generic} and multi-payload × {function,
// resolved-function, generic}. Each handler is
// a witness.Primitive, recursing back into witness.Run on its payload
// sub-stream under the same Mode its caller is running, which is how a
// driver and an arbitrarily nested enum-of-enum layout share one
// traversal without this package needing to know about drivers at all.
//
// # Contents
//
//   - header.go: shared header-field packing (the generic-header layout
//     every *Header type follows) and the multi-payload offset table.
//   - single.go: SinglePayloadEnumSimple/FN/FNResolved/Generic.
//   - multi.go: MultiPayloadEnumFN/FNResolved/Generic.
//   - tag.go: the five tag get/set entry-point families of §4.6.
//   - build.go: BuildTables, which layers these handlers onto a fresh
//     witness.Tables.
//   - resolve.go: the resilience-resolution pass (§4.5), which rewrites
//     Resilient and *FN instructions in place and recurses into nested
//     payload sub-streams the same way the handlers above do.
//
// This package is internal to valuewit.
package enumlayout
