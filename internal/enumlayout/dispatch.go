package enumlayout

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/witness"
)

// runEnumDispatch is the one dispatch core every enum handler family
// below reduces to, after it has done its kind-specific work of
// extracting dstTag/srcTag and building posFor. It realizes §4.3 point 3
// (single-payload: tag 0 is the payload case, anything else is empty;
// multi-payload: a tag in [0, numPayloads) selects a payload, anything
// else is empty) uniformly, plus the four-way AssignCopy branch recovered
// from the source runtime (SPEC_FULL.md §13): same payload on both sides
// assigns in place, differing payloads destroy-then-init, and either side
// being empty degenerates to destroy-only or init-only or a raw copy.
//
// posFor(tag) returns the absolute bytecode position of that tag's
// sub-stream and whether tag actually names a payload at all.
func runEnumDispatch(
	mode witness.Mode,
	c witness.Collaborator,
	ft *bytecode.FuncTable,
	tbl *witness.Tables,
	buf []byte,
	dst, src unsafe.Pointer,
	dstTag, srcTag uint64,
	enumSize uint64,
	posFor func(tag uint64) (pos int, ok bool),
) uint64 {
	switch mode {
	case witness.Destroy:
		if pos, ok := posFor(dstTag); ok {
			witness.Run(witness.Destroy, c, ft, tbl, buf, pos, dst, dst)
		}

	case witness.InitCopy, witness.InitTake:
		if pos, ok := posFor(srcTag); ok {
			covered := witness.Run(mode, c, ft, tbl, buf, pos, dst, src)
			tailCopy(dst, src, covered, enumSize)
		} else {
			bulkCopy(dst, src, enumSize)
		}

	case witness.AssignCopy:
		dstPos, dstOK := posFor(dstTag)
		srcPos, srcOK := posFor(srcTag)
		switch {
		case dstOK && srcOK && dstTag == srcTag:
			covered := witness.Run(witness.AssignCopy, c, ft, tbl, buf, srcPos, dst, src)
			tailCopy(dst, src, covered, enumSize)
		default:
			if dstOK {
				witness.Run(witness.Destroy, c, ft, tbl, buf, dstPos, dst, dst)
			}
			if srcOK {
				covered := witness.Run(witness.InitCopy, c, ft, tbl, buf, srcPos, dst, src)
				tailCopy(dst, src, covered, enumSize)
			} else {
				bulkCopy(dst, src, enumSize)
			}
		}
	}

	return enumSize
}
