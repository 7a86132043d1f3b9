package witness

import "unsafe"

// Mode identifies which of the four traversal flavors a primitive or a
// recursive enum handler is running under. assign-with-take and
// buffer-copy-of-buffer are implemented compositionally in the root
// package (destroy+InitTake, and delegate-to-InitCopy respectively) and so
// need no dedicated Mode of their own.
type Mode uint8

const (
	Destroy Mode = iota
	InitCopy
	InitTake
	AssignCopy
)

func (m Mode) String() string {
	switch m {
	case Destroy:
		return "Destroy"
	case InitCopy:
		return "InitCopy"
	case InitTake:
		return "InitTake"
	case AssignCopy:
		return "AssignCopy"
	default:
		return "Mode(?)"
	}
}

// copyFlavored reports whether mode requires the driver to bulk-copy the
// in-value gap preceding each instruction's field. Destroy never touches
// bytes it doesn't own a reference-count call for.
func (m Mode) copyFlavored() bool {
	return m != Destroy
}

// Metadata is the black-box handle to a type's own value-witness table,
// consulted whenever a Metatype, Resilient, Existential, or generic-XI
// instruction delegates to a dynamically-identified type instead of a
// statically-known reference kind. The interpreter never implements these
// operations itself; it only calls them.
type Metadata interface {
	// Size reports the type's value size in bytes, i.e. the number of
	// value-buffer bytes a Metatype/Resilient instruction's primitive
	// must advance addrOffset by.
	Size() uint64
	NumExtraInhabitants() uint32
	IsBitwiseTakable() bool
	IsValueInline() bool

	Destroy(addr unsafe.Pointer)
	InitWithCopy(dst, src unsafe.Pointer)
	InitWithTake(dst, src unsafe.Pointer)
	AssignWithCopy(dst, src unsafe.Pointer)
	AssignWithTake(dst, src unsafe.Pointer)

	GetEnumTagSinglePayload(addr unsafe.Pointer, numEmptyCases uint32) uint32
	StoreEnumTagSinglePayload(addr unsafe.Pointer, tag uint32, numEmptyCases uint32)
}

// Collaborator is the full set of black-box operations the interpreter
// consumes from the surrounding object-lifecycle runtime: per-kind
// ref-count primitives, the ABI masks applied before those calls, the
// inline reference-slot witnesses for Weak/UnknownUnowned/UnknownWeak, the
// existential-container witnesses, and a lookup from an embedded metadata
// token to the Metadata it names.
//
// Every method here is assumed infallible; none returns an error, matching
// §7's "collaborator calls are treated as total."
type Collaborator interface {
	NativeStrongRetain(ptr unsafe.Pointer)
	NativeStrongRelease(ptr unsafe.Pointer)
	UnownedRetain(ptr unsafe.Pointer)
	UnownedRelease(ptr unsafe.Pointer)
	ErrorRetain(ptr unsafe.Pointer)
	ErrorRelease(ptr unsafe.Pointer)
	UnknownRetain(ptr unsafe.Pointer)
	UnknownRelease(ptr unsafe.Pointer)
	BridgeRetain(ptr unsafe.Pointer)
	BridgeRelease(ptr unsafe.Pointer)
	BlockCopy(ptr unsafe.Pointer) unsafe.Pointer
	BlockRelease(ptr unsafe.Pointer)
	ObjCStrongRetain(ptr unsafe.Pointer)
	ObjCStrongRelease(ptr unsafe.Pointer)

	// SpareBitsMask masks off the ABI-reserved tag bits of a native
	// reference word before it reaches a ref-count call.
	SpareBitsMask() uint64
	// ObjCReservedBitsMask identifies tagged-pointer ObjC references;
	// when set in the raw word, the ref-count call is skipped entirely.
	ObjCReservedBitsMask() uint64

	WeakSize() uint64
	WeakCopyInit(dst, src unsafe.Pointer)
	WeakTakeInit(dst, src unsafe.Pointer)
	WeakDestroy(ptr unsafe.Pointer)
	WeakCopyAssign(dst, src unsafe.Pointer)

	UnknownUnownedSize() uint64
	UnknownUnownedCopyInit(dst, src unsafe.Pointer)
	UnknownUnownedTakeInit(dst, src unsafe.Pointer)
	UnknownUnownedDestroy(ptr unsafe.Pointer)
	UnknownUnownedCopyAssign(dst, src unsafe.Pointer)

	UnknownWeakSize() uint64
	UnknownWeakCopyInit(dst, src unsafe.Pointer)
	UnknownWeakTakeInit(dst, src unsafe.Pointer)
	UnknownWeakDestroy(ptr unsafe.Pointer)
	UnknownWeakCopyAssign(dst, src unsafe.Pointer)

	// ExistentialWordCount is the fixed inline buffer size, in
	// pointer-sized words, of an existential container.
	ExistentialWordCount() int
	ExistentialDestroy(addr unsafe.Pointer)
	ExistentialCopyInit(dst, src unsafe.Pointer)
	ExistentialTakeInit(dst, src unsafe.Pointer)
	ExistentialAssignWithCopy(dst, src unsafe.Pointer)

	// Metadata resolves a token embedded by a Metatype or (post-resolution)
	// Resilient instruction to the type it names.
	Metadata(token uint64) Metadata
}
