// Package valuewit implements a bytecode-driven value-witness interpreter:
// a runtime subsystem that performs generic value operations (destroy,
// copy-initialize, take-initialize, copy-assign, take-assign, buffer-copy)
// and enum tag manipulation on opaque in-memory values whose
// reference-bearing substructure is described by a compact instruction
// stream attached to the value's type.
//
// # Architecture Overview
//
// The package is organized leaves-first:
//
//	valuewit/                  Root package: driver entry points, tag
//	                            get/set entry points, resilience resolution
//	├── internal/bytecode/      Instruction encoding, byte-stream readers,
//	│                           the function-token registry
//	├── internal/abi/           Tag-byte widths, bit-packing helpers, the
//	│                           unreachable-abort primitive
//	├── internal/witness/       The 13 non-enum reference-kind primitives,
//	│                           the Collaborator/Metadata interfaces, the
//	│                           one shared driver loop
//	├── internal/enumlayout/    The six enum-handler families and the
//	│                           resilience-resolution pass
//	├── errors/                 Structured errors for the two fallible
//	│                           entry points, Instantiate and
//	│                           ResolveResilientAccessors
//	└── cmd/layoutdump/         Interactive bytecode disassembler
//
// # Quick start
//
//	layout, err := valuewit.Instantiate(bytecodeBytes, typeSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := valuewit.ResolveResilientAccessors(layout); err != nil {
//	    log.Fatal(err)
//	}
//
//	valuewit.InitWithCopy(layout, collaborator, funcTable, dst, src)
//	valuewit.Destroy(layout, collaborator, funcTable, dst)
//
// # Collaborator
//
// The interpreter never implements a reference-count primitive, a
// metadata lookup, or an existential-container operation itself; it only
// calls out to a Collaborator and a per-type Metadata the embedding
// runtime supplies (see collaborator.go). Every method on both interfaces
// is assumed infallible, matching the source runtime's "collaborator
// calls are treated as total" stance.
//
// # Failure semantics
//
// Only Instantiate and ResolveResilientAccessors return an error; every
// other malformation a driver encounters during traversal — an unknown
// reference kind, an illegal tag-byte width, a reserved dispatch slot — is
// a programming error and aborts via an unreachable marker instead of
// propagating an error value.
//
// # Thread safety
//
// A LayoutString is read-only and safe to share across goroutines once
// instantiated and (if needed) resolved. Every driver entry point is
// re-entrant and safe to call concurrently on distinct value instances;
// concurrent operations on the same value instance are the caller's
// responsibility. ResolveResilientAccessors is the one exception: it
// mutates the layout string and must complete, with its result published,
// before any driver observes that layout.
package valuewit
