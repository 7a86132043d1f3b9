package valuewit

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/enumlayout"
	"github.com/wippyai/valuewit/internal/witness"
)

var tables = enumlayout.BuildTables()

// memcpy and addPtr are this package's own small unsafe core (§9 design
// note: "isolate all such arithmetic in a small unsafe core with a typed
// wrapper at its edges"), kept local rather than exported from
// internal/witness so every package that needs raw byte motion owns its
// own copy instead of reaching across an internal boundary for it.
func memcpy(dst, src unsafe.Pointer, n uint64) {
	if n == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}

func addPtr(p unsafe.Pointer, n uint64) unsafe.Pointer {
	return unsafe.Pointer(uintptr(p) + uintptr(n))
}

// Destroy drives the destroy loop (generic_destroy, §6) over value,
// releasing every reference-bearing field the layout string names.
func Destroy(layout *LayoutString, c Collaborator, ft *FuncTable, value unsafe.Pointer) {
	witness.Run(witness.Destroy, c, ft, tables, layout.Bytes(), bytecode.HeaderSize, value, value)
}

// InitWithCopy drives init-with-copy (generic_initWithCopy, §6):
// copy-initializes dst from src, retaining every reference field src
// contributes to dst.
func InitWithCopy(layout *LayoutString, c Collaborator, ft *FuncTable, dst, src unsafe.Pointer) unsafe.Pointer {
	witness.Run(witness.InitCopy, c, ft, tables, layout.Bytes(), bytecode.HeaderSize, dst, src)
	return dst
}

// InitWithTake drives init-with-take (generic_initWithTake, §6). When md
// reports the type bitwise-takable, the whole traversal degenerates to a
// single raw memcpy with no bytecode read at all (§4.4); otherwise it runs
// the normal loop, which itself falls back to a one-word memcpy for any
// individual kind absent from the take table.
func InitWithTake(layout *LayoutString, c Collaborator, ft *FuncTable, md Metadata, dst, src unsafe.Pointer) unsafe.Pointer {
	if md.IsBitwiseTakable() {
		memcpy(dst, src, md.Size())
		return dst
	}
	witness.Run(witness.InitTake, c, ft, tables, layout.Bytes(), bytecode.HeaderSize, dst, src)
	return dst
}

// AssignWithCopy drives assign-with-copy (generic_assignWithCopy, §6):
// releases dst's stale references, retains src's, then overwrites dst's
// bytes, in the retire-before-retain order that makes self-assignment safe
// by construction (§5, §7).
func AssignWithCopy(layout *LayoutString, c Collaborator, ft *FuncTable, dst, src unsafe.Pointer) unsafe.Pointer {
	witness.Run(witness.AssignCopy, c, ft, tables, layout.Bytes(), bytecode.HeaderSize, dst, src)
	return dst
}

// AssignWithTake composes destroy and init-with-take (generic_assignWithTake,
// §6, §4.4): no dedicated driver exists for it.
func AssignWithTake(layout *LayoutString, c Collaborator, ft *FuncTable, md Metadata, dst, src unsafe.Pointer) unsafe.Pointer {
	Destroy(layout, c, ft, dst)
	return InitWithTake(layout, c, ft, md, dst, src)
}

// InitializeBufferWithCopyOfBuffer drives generic_initializeBufferWithCopyOfBuffer
// (§6, §4.4): when md reports the value stored inline in its existential-style
// buffer, it delegates to InitWithCopy on the buffer as if it were the
// value; otherwise it copies the single shared heap-object pointer and
// retains it through the collaborator's native strong witness.
func InitializeBufferWithCopyOfBuffer(layout *LayoutString, c Collaborator, ft *FuncTable, md Metadata, dstBuf, srcBuf unsafe.Pointer) unsafe.Pointer {
	if md.IsValueInline() {
		return InitWithCopy(layout, c, ft, dstBuf, srcBuf)
	}
	memcpy(dstBuf, srcBuf, 8)
	c.NativeStrongRetain(maskedWord(c, srcBuf))
	return dstBuf
}

func maskedWord(c Collaborator, p unsafe.Pointer) unsafe.Pointer {
	raw := *(*uint64)(p)
	return unsafe.Pointer(uintptr(raw &^ c.SpareBitsMask()))
}

// ArrayDestroy drives generic_arrayDestroy: count elements spaced stride
// bytes apart, each destroyed with its own fresh traversal of layout
// (§4.4 array variants — the bytecode is re-entrant, never mutated, so a
// single LayoutString serves every element).
func ArrayDestroy(layout *LayoutString, c Collaborator, ft *FuncTable, value unsafe.Pointer, count int, stride uint64) {
	for i := 0; i < count; i++ {
		Destroy(layout, c, ft, addPtr(value, uint64(i)*stride))
	}
}

// ArrayInitWithCopy drives generic_arrayInitWithCopy.
func ArrayInitWithCopy(layout *LayoutString, c Collaborator, ft *FuncTable, dst, src unsafe.Pointer, count int, stride uint64) unsafe.Pointer {
	for i := 0; i < count; i++ {
		off := uint64(i) * stride
		InitWithCopy(layout, c, ft, addPtr(dst, off), addPtr(src, off))
	}
	return dst
}

// ArrayAssignWithCopy drives generic_arrayAssignWithCopy.
func ArrayAssignWithCopy(layout *LayoutString, c Collaborator, ft *FuncTable, dst, src unsafe.Pointer, count int, stride uint64) unsafe.Pointer {
	for i := 0; i < count; i++ {
		off := uint64(i) * stride
		AssignWithCopy(layout, c, ft, addPtr(dst, off), addPtr(src, off))
	}
	return dst
}
