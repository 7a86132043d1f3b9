package enumlayout

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/abi"
	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/witness"
)

func sliceAt(addr unsafe.Pointer, offset uint64, n int) []byte {
	return unsafe.Slice((*byte)(addPtr(addr, offset)), n)
}

// simpleGetTag implements the shared get/inject formula of §4.6 for
// SinglePayloadEnumSimple: tag 0 is the payload case; tags in
// [1, xiTagValues] are recovered from the fixed extra-inhabitant field,
// but only when the raw XI bit pattern actually falls inside that range —
// a raw value below zeroTagValue, or one that reaches or exceeds
// zeroTagValue+xiTagValues, is still the payload case (tag 0), since the
// XI field overlaps live payload bytes; larger tags spill into the
// extra-tag-byte field, optionally packing their low bits into the
// payload area itself when the payload is narrower than 4 bytes.
func simpleGetTag(addr unsafe.Pointer, h SimpleHeader) uint64 {
	extraTagBytes, xiTagBytes, xiOffset := abi.UnpackByteCountsAndOffset(h.ByteCountsAndOffset)

	extraTagValue := abi.ReadTagBytes(sliceAt(addr, h.PayloadSize, extraTagBytes), extraTagBytes)
	if extraTagValue == 0 {
		xiValue := abi.ReadTagBytes(sliceAt(addr, uint64(xiOffset), xiTagBytes), xiTagBytes)
		if xiValue >= h.ZeroTagValue {
			if tagBytes := xiValue - h.ZeroTagValue; tagBytes < h.XITagValues {
				return tagBytes + 1
			}
		}
		return 0
	}

	payloadBits := payloadPackingBits(h.PayloadSize)
	var payloadLow uint64
	if payloadBits > 0 {
		payloadLow = abi.ReadPayloadBits(sliceAt(addr, 0, int(h.PayloadSize)), int(h.PayloadSize)) & (1<<payloadBits - 1)
	}
	caseIndex := (extraTagValue-1)<<payloadBits | payloadLow
	return h.XITagValues + 1 + caseIndex
}

// simpleSetTag is the inverse of simpleGetTag, used by
// enumSimple_destructiveInjectEnumTag. Injecting tag 0 (the payload case)
// leaves the tag fields untouched; the caller owns writing the payload
// itself.
func simpleSetTag(addr unsafe.Pointer, h SimpleHeader, tag uint64) {
	extraTagBytes, xiTagBytes, xiOffset := abi.UnpackByteCountsAndOffset(h.ByteCountsAndOffset)
	if tag == 0 {
		return
	}

	if tag <= h.XITagValues {
		abi.WriteTagBytes(sliceAt(addr, h.PayloadSize, extraTagBytes), extraTagBytes, 0)
		abi.WriteTagBytes(sliceAt(addr, uint64(xiOffset), xiTagBytes), xiTagBytes, h.ZeroTagValue+tag-1)
		return
	}

	payloadBits := payloadPackingBits(h.PayloadSize)
	caseIndex := tag - h.XITagValues - 1
	extraTagValue := 1 + caseIndex>>payloadBits
	abi.WriteTagBytes(sliceAt(addr, h.PayloadSize, extraTagBytes), extraTagBytes, extraTagValue)
	if payloadBits > 0 {
		payloadLow := caseIndex & (1<<payloadBits - 1)
		abi.WritePayloadBits(sliceAt(addr, 0, int(h.PayloadSize)), int(h.PayloadSize), payloadLow)
	}
}

func payloadPackingBits(payloadSize uint64) uint64 {
	if payloadSize < 4 {
		return payloadSize * 8
	}
	return 0
}

// SimplePrimitive handles SinglePayloadEnumSimple: no function call, the
// tag is recovered from bit patterns alone (simpleGetTag).
func SimplePrimitive(c witness.Collaborator, ft *bytecode.FuncTable, tbl *witness.Tables, r *bytecode.Reader, mode witness.Mode, dst, src unsafe.Pointer) uint64 {
	h := readSimpleHeader(r)
	subPos := r.Pos()
	r.Skip(int(h.RefCountBytes))
	dstTag := simpleGetTag(dst, h)
	srcTag := simpleGetTag(src, h)
	posFor := func(tag uint64) (int, bool) { return subPos, tag == 0 }
	return runEnumDispatch(mode, c, ft, tbl, r.Bytes(), dst, src, dstTag, srcTag, h.EnumSize, posFor)
}

// fnTagPrimitive backs both SinglePayloadEnumFN and
// SinglePayloadEnumFNResolved: in both cases the tag comes from calling
// the embedded accessor through the FuncTable, which is exactly how
// resolution (§4.5) collapses the two into one code path here — the
// resolve pass only ever changes the instruction's Kind byte, never the
// token width or meaning.
func fnTagPrimitive(c witness.Collaborator, ft *bytecode.FuncTable, tbl *witness.Tables, r *bytecode.Reader, mode witness.Mode, dst, src unsafe.Pointer) uint64 {
	h := readFuncHeader(r)
	subPos := r.Pos()
	r.Skip(int(h.RefCountBytes))
	fn := ft.Resolve(h.FuncToken)
	dstTag := fn(dst)
	srcTag := fn(src)
	posFor := func(tag uint64) (int, bool) { return subPos, tag == 0 }
	return runEnumDispatch(mode, c, ft, tbl, r.Bytes(), dst, src, dstTag, srcTag, h.EnumSize, posFor)
}

// GenericPrimitive handles SinglePayloadEnumGeneric: the XI-hosting type
// is only known dynamically. Non-zero extra-tag bytes are read directly;
// otherwise the tag comes from the embedded metadata's own
// GetEnumTagSinglePayload witness instead of the static bit-pattern
// arithmetic simpleGetTag uses.
func GenericPrimitive(c witness.Collaborator, ft *bytecode.FuncTable, tbl *witness.Tables, r *bytecode.Reader, mode witness.Mode, dst, src unsafe.Pointer) uint64 {
	h := readGenericHeader(r)
	subPos := r.Pos()
	r.Skip(int(h.RefCountBytes))
	md := c.Metadata(h.MetadataToken)

	tagOf := func(addr unsafe.Pointer) uint64 {
		if h.ExtraTagBytes != 0 {
			extraTagValue := abi.ReadTagBytes(sliceAt(addr, h.PayloadSize, int(h.ExtraTagBytes)), int(h.ExtraTagBytes))
			if extraTagValue != 0 {
				return uint64(md.NumExtraInhabitants()) + extraTagValue
			}
		}
		return uint64(md.GetEnumTagSinglePayload(addr, uint32(h.NumEmptyCases)))
	}

	dstTag := tagOf(dst)
	srcTag := tagOf(src)
	posFor := func(tag uint64) (int, bool) { return subPos, tag == 0 }
	return runEnumDispatch(mode, c, ft, tbl, r.Bytes(), dst, src, dstTag, srcTag, h.EnumSize, posFor)
}
