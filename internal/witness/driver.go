package witness

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/abi"
	"github.com/wippyai/valuewit/internal/bytecode"
)

// Run executes the instruction stream in buf starting at byte offset pos
// against dst/src under mode, until it reads an End instruction, and
// returns the total number of value bytes consumed (addrOffset at
// return). It is the one driver loop in the package: the root package's
// six top-level entry points and the enumlayout package's recursive
// payload handlers both call it, the former over the whole layout
// string, the latter over a single payload's sub-stream.
//
// Run owns neither dst nor src past the call; dst must always be
// addressable, src only needs to be valid when mode != Destroy.
func Run(mode Mode, c Collaborator, ft *bytecode.FuncTable, tbl *Tables, buf []byte, pos int, dst, src unsafe.Pointer) uint64 {
	r := bytecode.NewReaderAt(buf, pos)
	var addrOffset uint64

	for {
		word := r.ReadU64()
		kind, gap := bytecode.UnpackInstruction(word)

		if mode.copyFlavored() && gap > 0 {
			memcpy(addPtr(dst, addrOffset), addPtr(src, addrOffset), gap)
		}
		addrOffset += gap

		if kind == bytecode.End {
			return addrOffset
		}
		if kind.Reserved() || !kind.Valid() {
			abi.Unreachable("reference kind %s is not dispatchable", kind)
		}

		prim := tbl.Primitives[kind]
		if prim == nil {
			abi.Unreachable("no primitive installed for reference kind %s", kind)
		}

		advance := prim(c, ft, tbl, r, mode, addPtr(dst, addrOffset), addPtr(src, addrOffset))
		addrOffset += advance
	}
}
