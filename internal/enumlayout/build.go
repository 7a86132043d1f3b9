package enumlayout

import (
	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/witness"
)

// BuildTables layers this package's five enum handlers onto the seven enum
// slots of a fresh witness.Tables, producing the table every driver entry
// point in the root package runs against. FNResolved reuses the same
// handler as FN: the
// resolution pass only ever rewrites an instruction's Kind byte, never the
// shape of the header that follows it.
func BuildTables() *witness.Tables {
	t := witness.NewTables()
	t.Install(bytecode.SinglePayloadEnumSimple, SimplePrimitive)
	t.Install(bytecode.SinglePayloadEnumFN, fnTagPrimitive)
	t.Install(bytecode.SinglePayloadEnumFNResolved, fnTagPrimitive)
	t.Install(bytecode.SinglePayloadEnumGeneric, GenericPrimitive)
	t.Install(bytecode.MultiPayloadEnumFN, MultiFNPrimitive)
	t.Install(bytecode.MultiPayloadEnumFNResolved, MultiFNPrimitive)
	t.Install(bytecode.MultiPayloadEnumGeneric, MultiGenericPrimitive)
	return t
}
