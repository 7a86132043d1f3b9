package witness

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/abi"
	"github.com/wippyai/valuewit/internal/bytecode"
)

// Primitive is the uniform shape every reference-kind dispatch-table entry
// implements. dst is always valid; src is only meaningful for InitCopy,
// InitTake, and AssignCopy — Destroy primitives ignore it. r is positioned
// just past the instruction's tagged word, so a primitive that embeds
// extra bytecode fields (Metatype's token, Resilient's token) reads them
// itself. The return value is the number of value-buffer bytes the field
// occupies, which the driver loop adds to addrOffset.
type Primitive func(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64

const wordSize = 8

// wordPrimitive builds a Primitive for the single-word reference kinds
// that only differ in which collaborator retain/release pair they call
// and whether their raw word is masked first.
func wordPrimitive(mask uint64, retain, release func(c Collaborator, ptr unsafe.Pointer)) Primitive {
	return func(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
		switch mode {
		case Destroy:
			release(c, maskedPointer(loadWord(dst), mask))
		case InitCopy:
			memcpy(dst, src, wordSize)
			retain(c, maskedPointer(loadWord(src), mask))
		case InitTake:
			memcpy(dst, src, wordSize)
		case AssignCopy:
			release(c, maskedPointer(loadWord(dst), mask))
			retain(c, maskedPointer(loadWord(src), mask))
			memcpy(dst, src, wordSize)
		}
		return wordSize
	}
}

// maskedPointer strips mask from a raw pointer-sized word and reinterprets
// the result as the pointer it names, matching the source runtime's
// practice of masking reserved ABI bits out of a reference word before
// ever treating it as an address.
func maskedPointer(raw, mask uint64) unsafe.Pointer {
	return unsafe.Pointer(uintptr(abi.MaskWord(raw, mask)))
}

var errorPrimitive = wordPrimitive(0,
	func(c Collaborator, p unsafe.Pointer) { c.ErrorRetain(p) },
	func(c Collaborator, p unsafe.Pointer) { c.ErrorRelease(p) },
)

var unknownPrimitive = wordPrimitive(0,
	func(c Collaborator, p unsafe.Pointer) { c.UnknownRetain(p) },
	func(c Collaborator, p unsafe.Pointer) { c.UnknownRelease(p) },
)

var bridgePrimitive = wordPrimitive(0,
	func(c Collaborator, p unsafe.Pointer) { c.BridgeRetain(p) },
	func(c Collaborator, p unsafe.Pointer) { c.BridgeRelease(p) },
)

func nativeStrongPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	mask := c.SpareBitsMask()
	switch mode {
	case Destroy:
		c.NativeStrongRelease(maskedPointer(loadWord(dst), mask))
	case InitCopy:
		memcpy(dst, src, wordSize)
		c.NativeStrongRetain(maskedPointer(loadWord(src), mask))
	case InitTake:
		memcpy(dst, src, wordSize)
	case AssignCopy:
		c.NativeStrongRelease(maskedPointer(loadWord(dst), mask))
		c.NativeStrongRetain(maskedPointer(loadWord(src), mask))
		memcpy(dst, src, wordSize)
	}
	return wordSize
}

func unownedPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	mask := c.SpareBitsMask()
	switch mode {
	case Destroy:
		c.UnownedRelease(maskedPointer(loadWord(dst), mask))
	case InitCopy:
		memcpy(dst, src, wordSize)
		c.UnownedRetain(maskedPointer(loadWord(src), mask))
	case InitTake:
		memcpy(dst, src, wordSize)
	case AssignCopy:
		c.UnownedRelease(maskedPointer(loadWord(dst), mask))
		c.UnownedRetain(maskedPointer(loadWord(src), mask))
		memcpy(dst, src, wordSize)
	}
	return wordSize
}

// blockPrimitive copies the foreign block by invoking the platform's
// Block_copy (whose return value may differ from its argument) rather
// than a plain retain, matching foreign-block reference counting.
func blockPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	switch mode {
	case Destroy:
		c.BlockRelease(unsafe.Pointer(uintptr(loadWord(dst))))
	case InitCopy:
		copied := c.BlockCopy(unsafe.Pointer(uintptr(loadWord(src))))
		storeWord(dst, uint64(uintptr(copied)))
	case InitTake:
		memcpy(dst, src, wordSize)
	case AssignCopy:
		c.BlockRelease(unsafe.Pointer(uintptr(loadWord(dst))))
		copied := c.BlockCopy(unsafe.Pointer(uintptr(loadWord(src))))
		storeWord(dst, uint64(uintptr(copied)))
	}
	return wordSize
}

// objcStrongPrimitive honors the foreign-object tagged-pointer fast path:
// when the raw word has the reserved-bits mask set, no ref-count call
// happens at all, in either direction.
func objcStrongPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	reserved := c.ObjCReservedBitsMask()
	isTagged := func(raw uint64) bool { return reserved != 0 && raw&reserved != 0 }

	switch mode {
	case Destroy:
		raw := loadWord(dst)
		if !isTagged(raw) {
			c.ObjCStrongRelease(unsafe.Pointer(uintptr(raw)))
		}
	case InitCopy:
		memcpy(dst, src, wordSize)
		raw := loadWord(src)
		if !isTagged(raw) {
			c.ObjCStrongRetain(unsafe.Pointer(uintptr(raw)))
		}
	case InitTake:
		memcpy(dst, src, wordSize)
	case AssignCopy:
		oldRaw := loadWord(dst)
		if !isTagged(oldRaw) {
			c.ObjCStrongRelease(unsafe.Pointer(uintptr(oldRaw)))
		}
		newRaw := loadWord(src)
		if !isTagged(newRaw) {
			c.ObjCStrongRetain(unsafe.Pointer(uintptr(newRaw)))
		}
		memcpy(dst, src, wordSize)
	}
	return wordSize
}

// weakPrimitive, unknownUnownedPrimitive, and unknownWeakPrimitive cover
// the three inline reference slots: their width is collaborator-defined
// and their copy/take/destroy/assign operations are full field witnesses
// rather than a bare retain/release pair, since dereferencing a weak or
// foreign-unowned slot is not simply incrementing a counter.
func weakPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	switch mode {
	case Destroy:
		c.WeakDestroy(dst)
	case InitCopy:
		c.WeakCopyInit(dst, src)
	case InitTake:
		c.WeakTakeInit(dst, src)
	case AssignCopy:
		c.WeakCopyAssign(dst, src)
	}
	return c.WeakSize()
}

func unknownUnownedPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	switch mode {
	case Destroy:
		c.UnknownUnownedDestroy(dst)
	case InitCopy:
		c.UnknownUnownedCopyInit(dst, src)
	case InitTake:
		// No dedicated take witness exists for foreign-unowned slots in
		// the source runtime either; unknown-unowned references are
		// assumed trivially movable (see the open question recorded in
		// SPEC_FULL.md §14), so take degenerates to a raw word move.
		memcpy(dst, src, c.UnknownUnownedSize())
	case AssignCopy:
		c.UnknownUnownedCopyAssign(dst, src)
	}
	return c.UnknownUnownedSize()
}

func unknownWeakPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	switch mode {
	case Destroy:
		c.UnknownWeakDestroy(dst)
	case InitCopy:
		c.UnknownWeakCopyInit(dst, src)
	case InitTake:
		c.UnknownWeakTakeInit(dst, src)
	case AssignCopy:
		c.UnknownWeakCopyAssign(dst, src)
	}
	return c.UnknownWeakSize()
}

// metatypePrimitive reads a trailing metadata token from the bytecode and
// delegates entirely to the referenced type's own value-witness table;
// its advance is that type's reported size, not a fixed word count.
func metatypePrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	token := r.ReadU64()
	md := c.Metadata(token)
	runMetadataWitness(md, mode, dst, src)
	return md.Size()
}

// resilientPrimitive resolves the embedded accessor — a token into the
// same FuncTable used for enum tag functions — to obtain the dynamically
// resolved metadata token, then behaves exactly like Metatype. The
// accessor closure is expected to already have captured whatever
// generic-argument context it needs; see funcref.go and SPEC_FULL.md §15.
func resilientPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	accessorToken := r.ReadU64()
	accessor := ft.Resolve(accessorToken)
	metadataToken := accessor(dst)
	md := c.Metadata(metadataToken)
	runMetadataWitness(md, mode, dst, src)
	return md.Size()
}

func runMetadataWitness(md Metadata, mode Mode, dst, src unsafe.Pointer) {
	switch mode {
	case Destroy:
		md.Destroy(dst)
	case InitCopy:
		md.InitWithCopy(dst, src)
	case InitTake:
		md.InitWithTake(dst, src)
	case AssignCopy:
		md.AssignWithCopy(dst, src)
	}
}

// existentialPrimitive manipulates a fixed-size inline existential buffer,
// whose trailing slot tells the collaborator whether the contained value
// is stored in-line or boxed on the heap; either way the advance is the
// buffer's fixed word count, never the contained type's own size.
func existentialPrimitive(c Collaborator, ft *bytecode.FuncTable, tbl *Tables, r *bytecode.Reader, mode Mode, dst, src unsafe.Pointer) uint64 {
	switch mode {
	case Destroy:
		c.ExistentialDestroy(dst)
	case InitCopy:
		c.ExistentialCopyInit(dst, src)
	case InitTake:
		c.ExistentialTakeInit(dst, src)
	case AssignCopy:
		c.ExistentialAssignWithCopy(dst, src)
	}
	return uint64(c.ExistentialWordCount()) * wordSize
}
