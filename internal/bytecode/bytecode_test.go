package bytecode

import (
	"testing"
	"unsafe"
)

func TestPackUnpackInstruction(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		gap  uint64
	}{
		{"end, no gap", End, 0},
		{"native strong, small gap", NativeStrong, 16},
		{"resilient, large gap", Resilient, kindGapMask - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := PackInstruction(tt.kind, tt.gap)
			gotKind, gotGap := UnpackInstruction(word)
			if gotKind != tt.kind {
				t.Errorf("kind = %v, want %v", gotKind, tt.kind)
			}
			if gotGap != tt.gap {
				t.Errorf("gap = %d, want %d", gotGap, tt.gap)
			}
		})
	}
}

func TestKindReservedAndValid(t *testing.T) {
	if !Custom.Reserved() {
		t.Error("Custom should be reserved")
	}
	if !Generic.Reserved() {
		t.Error("Generic should be reserved")
	}
	if NativeStrong.Reserved() {
		t.Error("NativeStrong should not be reserved")
	}
	if !NativeStrong.Valid() {
		t.Error("NativeStrong should be valid")
	}
	if Kind(numKinds).Valid() {
		t.Error("numKinds itself should not be a valid slot")
	}
}

func TestReaderLinearRead(t *testing.T) {
	buf := make([]byte, HeaderSize+16)
	word := PackInstruction(NativeStrong, 4)
	r := NewReader(buf)
	if r.Pos() != HeaderSize {
		t.Fatalf("NewReader position = %d, want %d", r.Pos(), HeaderSize)
	}

	// write the word straight into buf at the reader's position, since
	// Reader has no write path of its own.
	for i := 0; i < 8; i++ {
		buf[HeaderSize+i] = byte(word >> (8 * i))
	}

	gotWord := r.ReadU64()
	if gotWord != word {
		t.Errorf("ReadU64 = %#x, want %#x", gotWord, word)
	}
	if r.Pos() != HeaderSize+8 {
		t.Errorf("Pos after ReadU64 = %d, want %d", r.Pos(), HeaderSize+8)
	}
}

func TestReaderSkipAndLen(t *testing.T) {
	buf := make([]byte, 32)
	r := NewReaderAt(buf, 4)
	if r.Len() != 28 {
		t.Errorf("Len = %d, want 28", r.Len())
	}
	r.Skip(10)
	if r.Pos() != 14 {
		t.Errorf("Pos after Skip = %d, want 14", r.Pos())
	}
}

func TestFuncTableRegisterResolve(t *testing.T) {
	ft := NewFuncTable()
	var calledWith unsafe.Pointer
	token := ft.Register(func(addr unsafe.Pointer) uint64 {
		calledWith = addr
		return 42
	})

	var v int
	addr := unsafe.Pointer(&v)
	got := ft.Resolve(token)(addr)
	if got != 42 {
		t.Errorf("Resolve(token)(addr) = %d, want 42", got)
	}
	if calledWith != addr {
		t.Error("registered function was not called with the address passed to the resolved function")
	}
}

func TestFuncTableResolveOutOfRangeAborts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range token")
		}
	}()
	ft := NewFuncTable()
	ft.Resolve(0)
}
