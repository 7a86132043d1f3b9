package enumlayout

import "unsafe"

// memcpy and addPtr mirror the tiny unsafe core in witness/memcopy.go.
// Keeping raw pointer arithmetic duplicated-but-contained in each package
// that needs it, rather than exported across a package boundary, keeps
// every unsafe site local to the file that owns its invariants.
func memcpy(dst, src unsafe.Pointer, n uint64) {
	if n == 0 {
		return
	}
	d := unsafe.Slice((*byte)(dst), n)
	s := unsafe.Slice((*byte)(src), n)
	copy(d, s)
}

func addPtr(p unsafe.Pointer, n uint64) unsafe.Pointer {
	return unsafe.Pointer(uintptr(p) + uintptr(n))
}

// tailCopy bulk-copies the bytes of an enum's extent not covered by a
// nested payload sub-stream's own traversal, i.e. [covered, enumSize).
func tailCopy(dst, src unsafe.Pointer, covered, enumSize uint64) {
	if covered >= enumSize {
		return
	}
	memcpy(addPtr(dst, covered), addPtr(src, covered), enumSize-covered)
}

func bulkCopy(dst, src unsafe.Pointer, enumSize uint64) {
	memcpy(dst, src, enumSize)
}
