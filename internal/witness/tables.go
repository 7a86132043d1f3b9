package witness

import "github.com/wippyai/valuewit/internal/bytecode"

// Tables is the dense, Kind-indexed array of per-instruction primitives
// every driver and enum-handler recursion dispatches through. End never
// dispatches (the driver loop returns on sight of it); Custom and Generic
// are permanently nil, matching the source runtime's own reserved, always
// absent dispatch-table slots.
type Tables struct {
	Primitives [bytecode.NumKinds]Primitive
}

// NewTables builds a Tables with every non-enum reference kind filled in.
// The enumlayout package is responsible for filling the seven
// SinglePayloadEnum*/MultiPayloadEnum* slots via Install before the tables
// are handed to any driver; see enumlayout.BuildTables.
func NewTables() *Tables {
	t := &Tables{}
	t.Primitives[bytecode.Error] = errorPrimitive
	t.Primitives[bytecode.NativeStrong] = nativeStrongPrimitive
	t.Primitives[bytecode.Unowned] = unownedPrimitive
	t.Primitives[bytecode.Weak] = weakPrimitive
	t.Primitives[bytecode.Unknown] = unknownPrimitive
	t.Primitives[bytecode.UnknownUnowned] = unknownUnownedPrimitive
	t.Primitives[bytecode.UnknownWeak] = unknownWeakPrimitive
	t.Primitives[bytecode.Bridge] = bridgePrimitive
	t.Primitives[bytecode.Block] = blockPrimitive
	t.Primitives[bytecode.ObjCStrong] = objcStrongPrimitive
	t.Primitives[bytecode.Metatype] = metatypePrimitive
	t.Primitives[bytecode.Existential] = existentialPrimitive
	t.Primitives[bytecode.Resilient] = resilientPrimitive
	return t
}

// Install registers prim as the handler for kind. Used by enumlayout to
// populate the enum slots this package leaves empty, and by tests that
// exercise a single kind in isolation.
func (t *Tables) Install(kind bytecode.Kind, prim Primitive) {
	t.Primitives[kind] = prim
}
