package valuewit

import (
	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/enumlayout"
)

// ResolveResilientAccessors runs the one-time resilience pre-pass
// (resolve_resilientAccessors, §6 and §4.5) over layout, rewriting every
// Resilient instruction to Metatype and every *FN instruction to its
// *FNResolved counterpart, recursing into nested enum payload sub-streams.
// It is the interpreter's second fallible entry point, alongside
// Instantiate; every other malformation a driver might later discover is a
// programmer error instead (§4.7).
//
// The pass is idempotent (§8): calling it twice on the same layout
// produces a byte-identical result to calling it once, since an
// already-resolved instruction is read and re-skipped unchanged rather
// than rewritten again. Callers must not run a driver over layout
// concurrently with this call, and must ensure any driver that follows
// observes the rewrite (§5's publication requirement) — this package
// assumes that handshake is the caller's responsibility, exactly as the
// surrounding metadata system provides it in the source runtime.
func ResolveResilientAccessors(layout *LayoutString) error {
	_, err := enumlayout.Resolve(layout.Bytes(), bytecode.HeaderSize)
	return err
}
