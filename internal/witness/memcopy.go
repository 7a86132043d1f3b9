package witness

import "unsafe"

// memcpy copies n bytes from src to dst. It is the one place in the
// package that reaches for unsafe.Slice over raw pointers; every other
// file manipulates values through Collaborator/Metadata calls or through
// this helper, never through direct pointer arithmetic of its own.
func memcpy(dst, src unsafe.Pointer, n uint64) {
	if n == 0 {
		return
	}
	d := unsafe.Slice((*byte)(dst), n)
	s := unsafe.Slice((*byte)(src), n)
	copy(d, s)
}

// addPtr offsets a pointer by n bytes. Callers are responsible for
// keeping the result within the bounds of the value it addresses.
func addPtr(p unsafe.Pointer, n uint64) unsafe.Pointer {
	return unsafe.Pointer(uintptr(p) + uintptr(n))
}

// loadWord reads the 8-byte word at p, the shape every single-word
// reference kind (NativeStrong, Unowned, Error, Unknown, Bridge, Block,
// ObjCStrong) stores its payload as.
func loadWord(p unsafe.Pointer) uint64 {
	return *(*uint64)(p)
}

func storeWord(p unsafe.Pointer, v uint64) {
	*(*uint64)(p) = v
}
