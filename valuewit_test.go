package valuewit

import (
	"testing"
	"unsafe"

	"github.com/wippyai/valuewit/internal/bytecode"
)

// fakeCollaborator is a minimal Collaborator that only instruments the
// native-strong retain/release pair, since that is all the tests in this
// file exercise; every other method is a no-op satisfying the interface.
type fakeCollaborator struct {
	retained, released []uintptr
}

func (f *fakeCollaborator) NativeStrongRetain(ptr unsafe.Pointer) {
	f.retained = append(f.retained, uintptr(ptr))
}
func (f *fakeCollaborator) NativeStrongRelease(ptr unsafe.Pointer) {
	f.released = append(f.released, uintptr(ptr))
}
func (f *fakeCollaborator) UnownedRetain(unsafe.Pointer)                    {}
func (f *fakeCollaborator) UnownedRelease(unsafe.Pointer)                   {}
func (f *fakeCollaborator) ErrorRetain(unsafe.Pointer)                      {}
func (f *fakeCollaborator) ErrorRelease(unsafe.Pointer)                     {}
func (f *fakeCollaborator) UnknownRetain(unsafe.Pointer)                    {}
func (f *fakeCollaborator) UnknownRelease(unsafe.Pointer)                   {}
func (f *fakeCollaborator) BridgeRetain(unsafe.Pointer)                     {}
func (f *fakeCollaborator) BridgeRelease(unsafe.Pointer)                    {}
func (f *fakeCollaborator) BlockCopy(ptr unsafe.Pointer) unsafe.Pointer     { return ptr }
func (f *fakeCollaborator) BlockRelease(unsafe.Pointer)                     {}
func (f *fakeCollaborator) ObjCStrongRetain(unsafe.Pointer)                 {}
func (f *fakeCollaborator) ObjCStrongRelease(unsafe.Pointer)                {}
func (f *fakeCollaborator) SpareBitsMask() uint64                           { return 0 }
func (f *fakeCollaborator) ObjCReservedBitsMask() uint64                    { return 0 }
func (f *fakeCollaborator) WeakSize() uint64                                { return 8 }
func (f *fakeCollaborator) WeakCopyInit(dst, src unsafe.Pointer)            {}
func (f *fakeCollaborator) WeakTakeInit(dst, src unsafe.Pointer)            {}
func (f *fakeCollaborator) WeakDestroy(unsafe.Pointer)                     {}
func (f *fakeCollaborator) WeakCopyAssign(dst, src unsafe.Pointer)          {}
func (f *fakeCollaborator) UnknownUnownedSize() uint64                      { return 8 }
func (f *fakeCollaborator) UnknownUnownedCopyInit(dst, src unsafe.Pointer)  {}
func (f *fakeCollaborator) UnknownUnownedTakeInit(dst, src unsafe.Pointer)  {}
func (f *fakeCollaborator) UnknownUnownedDestroy(unsafe.Pointer)            {}
func (f *fakeCollaborator) UnknownUnownedCopyAssign(dst, src unsafe.Pointer) {}
func (f *fakeCollaborator) UnknownWeakSize() uint64                         { return 8 }
func (f *fakeCollaborator) UnknownWeakCopyInit(dst, src unsafe.Pointer)     {}
func (f *fakeCollaborator) UnknownWeakTakeInit(dst, src unsafe.Pointer)     {}
func (f *fakeCollaborator) UnknownWeakDestroy(unsafe.Pointer)               {}
func (f *fakeCollaborator) UnknownWeakCopyAssign(dst, src unsafe.Pointer)   {}
func (f *fakeCollaborator) ExistentialWordCount() int                       { return 4 }
func (f *fakeCollaborator) ExistentialDestroy(unsafe.Pointer)               {}
func (f *fakeCollaborator) ExistentialCopyInit(dst, src unsafe.Pointer)     {}
func (f *fakeCollaborator) ExistentialTakeInit(dst, src unsafe.Pointer)     {}
func (f *fakeCollaborator) ExistentialAssignWithCopy(dst, src unsafe.Pointer) {}
func (f *fakeCollaborator) Metadata(token uint64) Metadata                  { return nil }

func writeWord(buf []byte, pos int, word uint64) {
	for i := 0; i < 8; i++ {
		buf[pos+i] = byte(word >> (8 * i))
	}
}

// nativeStrongLayout builds a single-field layout string: one
// NativeStrong reference at offset 0, nothing else.
func nativeStrongLayout(t *testing.T) *LayoutString {
	t.Helper()
	buf := make([]byte, bytecode.HeaderSize+16)
	pos := bytecode.HeaderSize
	writeWord(buf, pos, bytecode.PackInstruction(bytecode.NativeStrong, 0))
	writeWord(buf, pos+8, bytecode.PackInstruction(bytecode.End, 0))

	layout, err := Instantiate(buf, 8)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	return layout
}

func TestInstantiateRejectsTruncatedBuffer(t *testing.T) {
	if _, err := Instantiate(make([]byte, 4), 8); err == nil {
		t.Error("expected an error for a buffer shorter than the header")
	}
}

func TestDestroyReleasesNativeStrongField(t *testing.T) {
	layout := nativeStrongLayout(t)
	ft := NewFuncTable()
	c := &fakeCollaborator{}

	value := make([]byte, 8)
	*(*uint64)(unsafe.Pointer(&value[0])) = 0xCAFE
	ptr := unsafe.Pointer(&value[0])

	Destroy(layout, c, ft, ptr)

	if len(c.released) != 1 || c.released[0] != 0xCAFE {
		t.Errorf("released = %v, want [0xcafe]", c.released)
	}
}

func TestInitWithCopyRetainsAndCopiesBytes(t *testing.T) {
	layout := nativeStrongLayout(t)
	ft := NewFuncTable()
	c := &fakeCollaborator{}

	src := make([]byte, 8)
	*(*uint64)(unsafe.Pointer(&src[0])) = 0xBEEF
	dst := make([]byte, 8)

	InitWithCopy(layout, c, ft, unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]))

	if *(*uint64)(unsafe.Pointer(&dst[0])) != 0xBEEF {
		t.Errorf("dst bytes = %#x, want 0xbeef", *(*uint64)(unsafe.Pointer(&dst[0])))
	}
	if len(c.retained) != 1 || c.retained[0] != 0xBEEF {
		t.Errorf("retained = %v, want [0xbeef]", c.retained)
	}
}

func TestAssignWithCopyReleasesOldAndRetainsNew(t *testing.T) {
	layout := nativeStrongLayout(t)
	ft := NewFuncTable()
	c := &fakeCollaborator{}

	dst := make([]byte, 8)
	*(*uint64)(unsafe.Pointer(&dst[0])) = 0x1111
	src := make([]byte, 8)
	*(*uint64)(unsafe.Pointer(&src[0])) = 0x2222

	AssignWithCopy(layout, c, ft, unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]))

	if len(c.released) != 1 || c.released[0] != 0x1111 {
		t.Errorf("released = %v, want [0x1111]", c.released)
	}
	if len(c.retained) != 1 || c.retained[0] != 0x2222 {
		t.Errorf("retained = %v, want [0x2222]", c.retained)
	}
}

func TestInitWithTakeBitwiseTakableSkipsBytecode(t *testing.T) {
	layout := nativeStrongLayout(t)
	ft := NewFuncTable()
	c := &fakeCollaborator{}
	md := &fakeMetadata{bitwiseTakable: true, size: 8}

	src := make([]byte, 8)
	*(*uint64)(unsafe.Pointer(&src[0])) = 0x3333
	dst := make([]byte, 8)

	InitWithTake(layout, c, ft, md, unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]))

	if *(*uint64)(unsafe.Pointer(&dst[0])) != 0x3333 {
		t.Errorf("dst bytes = %#x, want 0x3333", *(*uint64)(unsafe.Pointer(&dst[0])))
	}
	if len(c.retained) != 0 || len(c.released) != 0 {
		t.Error("bitwise-takable init-with-take should never call the collaborator")
	}
}

func TestArrayDestroyVisitsEachStride(t *testing.T) {
	layout := nativeStrongLayout(t)
	ft := NewFuncTable()
	c := &fakeCollaborator{}

	values := make([]byte, 24)
	*(*uint64)(unsafe.Pointer(&values[0])) = 1
	*(*uint64)(unsafe.Pointer(&values[8])) = 2
	*(*uint64)(unsafe.Pointer(&values[16])) = 3

	ArrayDestroy(layout, c, ft, unsafe.Pointer(&values[0]), 3, 8)

	if len(c.released) != 3 {
		t.Fatalf("released %d elements, want 3", len(c.released))
	}
	for i, want := range []uintptr{1, 2, 3} {
		if c.released[i] != want {
			t.Errorf("released[%d] = %d, want %d", i, c.released[i], want)
		}
	}
}

type fakeMetadata struct {
	bitwiseTakable, valueInline bool
	size                        uint64
}

func (m *fakeMetadata) Size() uint64              { return m.size }
func (m *fakeMetadata) NumExtraInhabitants() uint32 { return 0 }
func (m *fakeMetadata) IsBitwiseTakable() bool     { return m.bitwiseTakable }
func (m *fakeMetadata) IsValueInline() bool        { return m.valueInline }
func (m *fakeMetadata) Destroy(unsafe.Pointer)     {}
func (m *fakeMetadata) InitWithCopy(dst, src unsafe.Pointer)   {}
func (m *fakeMetadata) InitWithTake(dst, src unsafe.Pointer)   {}
func (m *fakeMetadata) AssignWithCopy(dst, src unsafe.Pointer) {}
func (m *fakeMetadata) AssignWithTake(dst, src unsafe.Pointer) {}
func (m *fakeMetadata) GetEnumTagSinglePayload(addr unsafe.Pointer, numEmptyCases uint32) uint32 {
	return 0
}
func (m *fakeMetadata) StoreEnumTagSinglePayload(addr unsafe.Pointer, tag, numEmptyCases uint32) {}
