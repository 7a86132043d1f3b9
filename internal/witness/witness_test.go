package witness

import (
	"testing"
	"unsafe"

	"github.com/wippyai/valuewit/internal/bytecode"
)

// fakeCollaborator records every retain/release call it receives so tests
// can assert on call counts and the masked pointer each call actually saw.
type fakeCollaborator struct {
	retained, released []unsafe.Pointer
	spareBitsMask       uint64
	objcReservedMask     uint64
}

func (f *fakeCollaborator) NativeStrongRetain(ptr unsafe.Pointer)  { f.retained = append(f.retained, ptr) }
func (f *fakeCollaborator) NativeStrongRelease(ptr unsafe.Pointer) { f.released = append(f.released, ptr) }
func (f *fakeCollaborator) UnownedRetain(unsafe.Pointer)           {}
func (f *fakeCollaborator) UnownedRelease(unsafe.Pointer)          {}
func (f *fakeCollaborator) ErrorRetain(unsafe.Pointer)             {}
func (f *fakeCollaborator) ErrorRelease(unsafe.Pointer)            {}
func (f *fakeCollaborator) UnknownRetain(unsafe.Pointer)           {}
func (f *fakeCollaborator) UnknownRelease(unsafe.Pointer)          {}
func (f *fakeCollaborator) BridgeRetain(unsafe.Pointer)            {}
func (f *fakeCollaborator) BridgeRelease(unsafe.Pointer)           {}
func (f *fakeCollaborator) BlockCopy(ptr unsafe.Pointer) unsafe.Pointer { return ptr }
func (f *fakeCollaborator) BlockRelease(unsafe.Pointer)            {}
func (f *fakeCollaborator) ObjCStrongRetain(ptr unsafe.Pointer)    { f.retained = append(f.retained, ptr) }
func (f *fakeCollaborator) ObjCStrongRelease(ptr unsafe.Pointer)   { f.released = append(f.released, ptr) }

func (f *fakeCollaborator) SpareBitsMask() uint64       { return f.spareBitsMask }
func (f *fakeCollaborator) ObjCReservedBitsMask() uint64 { return f.objcReservedMask }

func (f *fakeCollaborator) WeakSize() uint64                     { return 8 }
func (f *fakeCollaborator) WeakCopyInit(dst, src unsafe.Pointer)  {}
func (f *fakeCollaborator) WeakTakeInit(dst, src unsafe.Pointer)  {}
func (f *fakeCollaborator) WeakDestroy(unsafe.Pointer)            {}
func (f *fakeCollaborator) WeakCopyAssign(dst, src unsafe.Pointer) {}

func (f *fakeCollaborator) UnknownUnownedSize() uint64                     { return 8 }
func (f *fakeCollaborator) UnknownUnownedCopyInit(dst, src unsafe.Pointer)  {}
func (f *fakeCollaborator) UnknownUnownedTakeInit(dst, src unsafe.Pointer)  {}
func (f *fakeCollaborator) UnknownUnownedDestroy(unsafe.Pointer)            {}
func (f *fakeCollaborator) UnknownUnownedCopyAssign(dst, src unsafe.Pointer) {}

func (f *fakeCollaborator) UnknownWeakSize() uint64                     { return 8 }
func (f *fakeCollaborator) UnknownWeakCopyInit(dst, src unsafe.Pointer)  {}
func (f *fakeCollaborator) UnknownWeakTakeInit(dst, src unsafe.Pointer)  {}
func (f *fakeCollaborator) UnknownWeakDestroy(unsafe.Pointer)            {}
func (f *fakeCollaborator) UnknownWeakCopyAssign(dst, src unsafe.Pointer) {}

func (f *fakeCollaborator) ExistentialWordCount() int                        { return 4 }
func (f *fakeCollaborator) ExistentialDestroy(unsafe.Pointer)                {}
func (f *fakeCollaborator) ExistentialCopyInit(dst, src unsafe.Pointer)      {}
func (f *fakeCollaborator) ExistentialTakeInit(dst, src unsafe.Pointer)      {}
func (f *fakeCollaborator) ExistentialAssignWithCopy(dst, src unsafe.Pointer) {}

func (f *fakeCollaborator) Metadata(token uint64) Metadata { return nil }

func TestModeCopyFlavored(t *testing.T) {
	if Destroy.copyFlavored() {
		t.Error("Destroy should not be copy-flavored")
	}
	for _, m := range []Mode{InitCopy, InitTake, AssignCopy} {
		if !m.copyFlavored() {
			t.Errorf("%v should be copy-flavored", m)
		}
	}
}

func TestNewTablesLeavesEnumSlotsNil(t *testing.T) {
	tbl := NewTables()
	enumKinds := []bytecode.Kind{
		bytecode.SinglePayloadEnumSimple,
		bytecode.SinglePayloadEnumFN,
		bytecode.SinglePayloadEnumFNResolved,
		bytecode.SinglePayloadEnumGeneric,
		bytecode.MultiPayloadEnumFN,
		bytecode.MultiPayloadEnumFNResolved,
		bytecode.MultiPayloadEnumGeneric,
	}
	for _, k := range enumKinds {
		if tbl.Primitives[k] != nil {
			t.Errorf("expected %v to be nil until enumlayout.BuildTables installs it", k)
		}
	}
	if tbl.Primitives[bytecode.NativeStrong] == nil {
		t.Error("NativeStrong should be pre-installed")
	}
}

func TestRunDestroyNativeStrong(t *testing.T) {
	tbl := NewTables()
	ft := bytecode.NewFuncTable()
	c := &fakeCollaborator{}

	buf := make([]byte, bytecode.HeaderSize+16)
	pos := bytecode.HeaderSize
	writeWord(buf, pos, bytecode.PackInstruction(bytecode.NativeStrong, 0))
	writeWord(buf, pos+8, bytecode.PackInstruction(bytecode.End, 0))

	value := make([]byte, 8)
	*(*uint64)(unsafe.Pointer(&value[0])) = 0x1000
	ptr := unsafe.Pointer(&value[0])

	covered := Run(Destroy, c, ft, tbl, buf, pos, ptr, ptr)
	if covered != 8 {
		t.Errorf("covered = %d, want 8", covered)
	}
	if len(c.released) != 1 {
		t.Fatalf("expected 1 release call, got %d", len(c.released))
	}
	if uintptr(c.released[0]) != 0x1000 {
		t.Errorf("released pointer = %#x, want 0x1000", c.released[0])
	}
}

func TestRunObjCStrongSkipsTaggedPointer(t *testing.T) {
	tbl := NewTables()
	ft := bytecode.NewFuncTable()
	c := &fakeCollaborator{objcReservedMask: 0x1}

	buf := make([]byte, bytecode.HeaderSize+16)
	pos := bytecode.HeaderSize
	writeWord(buf, pos, bytecode.PackInstruction(bytecode.ObjCStrong, 0))
	writeWord(buf, pos+8, bytecode.PackInstruction(bytecode.End, 0))

	value := make([]byte, 8)
	*(*uint64)(unsafe.Pointer(&value[0])) = 0x1 // tagged pointer bit set
	ptr := unsafe.Pointer(&value[0])

	Run(Destroy, c, ft, tbl, buf, pos, ptr, ptr)
	if len(c.released) != 0 {
		t.Errorf("expected tagged pointer to skip the release call, got %d calls", len(c.released))
	}
}

func writeWord(buf []byte, pos int, word uint64) {
	for i := 0; i < 8; i++ {
		buf[pos+i] = byte(word >> (8 * i))
	}
}
