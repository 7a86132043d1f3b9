package enumlayout

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/abi"
	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/witness"
)

// multiPosFor builds the posFor closure every multi-payload handler shares:
// a tag in [0, numPayloads) names one of the table's pre-computed payload
// positions, anything else is an empty case.
func multiPosFor(positions []int) func(tag uint64) (int, bool) {
	numPayloads := uint64(len(positions))
	return func(tag uint64) (int, bool) {
		if tag >= numPayloads {
			return 0, false
		}
		return positions[tag], true
	}
}

// MultiFNPrimitive backs both MultiPayloadEnumFN and
// MultiPayloadEnumFNResolved, for the same reason fnTagPrimitive serves
// both single-payload function variants: resolution only ever rewrites the
// instruction's Kind byte, never the token width the header carries.
func MultiFNPrimitive(c witness.Collaborator, ft *bytecode.FuncTable, tbl *witness.Tables, r *bytecode.Reader, mode witness.Mode, dst, src unsafe.Pointer) uint64 {
	h := readMultiFuncHeader(r)
	fn := ft.Resolve(h.FuncToken)
	positions := payloadOffsetTable(r, h.NumPayloads)
	r.Skip(int(h.RefCountBytes))

	dstTag := fn(dst)
	srcTag := fn(src)
	posFor := multiPosFor(positions)
	return runEnumDispatch(mode, c, ft, tbl, r.Bytes(), dst, src, dstTag, srcTag, h.EnumSize, posFor)
}

// MultiGenericPrimitive handles MultiPayloadEnumGeneric: the tag is a raw
// fixed-width field at enumSize-tagBytes, read directly out of the value
// rather than through any embedded accessor.
func MultiGenericPrimitive(c witness.Collaborator, ft *bytecode.FuncTable, tbl *witness.Tables, r *bytecode.Reader, mode witness.Mode, dst, src unsafe.Pointer) uint64 {
	h := readMultiHeader(r)
	positions := payloadOffsetTable(r, h.NumPayloads)
	r.Skip(int(h.RefCountBytes))

	tagOf := func(addr unsafe.Pointer) uint64 {
		return abi.ReadTagBytes(sliceAt(addr, h.EnumSize-h.TagBytes, int(h.TagBytes)), int(h.TagBytes))
	}

	dstTag := tagOf(dst)
	srcTag := tagOf(src)
	posFor := multiPosFor(positions)
	return runEnumDispatch(mode, c, ft, tbl, r.Bytes(), dst, src, dstTag, srcTag, h.EnumSize, posFor)
}
