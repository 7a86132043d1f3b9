package enumlayout

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/abi"
	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/witness"
)

// SingletonGetTag always returns 0: a singleton enum has exactly one case,
// so there is nothing to read.
func SingletonGetTag(unsafe.Pointer) uint64 { return 0 }

// SingletonSetTag is a no-op for the same reason.
func SingletonSetTag(unsafe.Pointer, uint64) {}

// EnumSimpleGetTag decodes a SinglePayloadEnumSimple header at headerPos
// and recovers the active tag (§4.6). It is the same formula the driver
// uses internally (simpleGetTag), exposed here as a standalone entry point
// that skips the full traversal.
func EnumSimpleGetTag(buf []byte, headerPos int, addr unsafe.Pointer) uint64 {
	h := readSimpleHeader(bytecode.NewReaderAt(buf, headerPos))
	return simpleGetTag(addr, h)
}

// EnumSimpleSetTag is the destructive-inject counterpart of
// EnumSimpleGetTag: it writes tag into the fields simpleGetTag reads. Tag 0
// writes nothing; an empty-case tag overwrites the XI field or, for a
// payload narrower than 4 bytes, the payload bytes themselves.
func EnumSimpleSetTag(buf []byte, headerPos int, addr unsafe.Pointer, tag uint64) {
	h := readSimpleHeader(bytecode.NewReaderAt(buf, headerPos))
	simpleSetTag(addr, h, tag)
}

// EnumFnGetTag is a single call-through to the embedded tag accessor,
// shared by the get-tag entry point for both FN and resolved-FN single- and
// multi-payload enums: the header layout differs, but the caller has
// already read the token out of the header; this resolves it through ft
// and calls it.
func EnumFnGetTag(ft *bytecode.FuncTable, token uint64, addr unsafe.Pointer) uint64 {
	return ft.Resolve(token)(addr)
}

// SinglePayloadGenericGetTag mirrors SimplePrimitive's tag extraction but
// delegates the extra-inhabitant half of the computation to the embedded
// XI-type's own witness, since that type is only known dynamically here.
func SinglePayloadGenericGetTag(buf []byte, headerPos int, c witness.Collaborator, addr unsafe.Pointer) uint64 {
	h := readGenericHeader(bytecode.NewReaderAt(buf, headerPos))
	md := c.Metadata(h.MetadataToken)

	if h.ExtraTagBytes != 0 {
		extraTagValue := abi.ReadTagBytes(sliceAt(addr, h.PayloadSize, int(h.ExtraTagBytes)), int(h.ExtraTagBytes))
		if extraTagValue != 0 {
			return uint64(md.NumExtraInhabitants()) + extraTagValue
		}
	}
	return uint64(md.GetEnumTagSinglePayload(addr, uint32(h.NumEmptyCases)))
}

// SinglePayloadGenericSetTag is the inverse of SinglePayloadGenericGetTag.
func SinglePayloadGenericSetTag(buf []byte, headerPos int, c witness.Collaborator, addr unsafe.Pointer, tag uint64) {
	h := readGenericHeader(bytecode.NewReaderAt(buf, headerPos))
	md := c.Metadata(h.MetadataToken)

	numXI := uint64(md.NumExtraInhabitants())
	if tag <= numXI {
		if h.ExtraTagBytes != 0 {
			abi.WriteTagBytes(sliceAt(addr, h.PayloadSize, int(h.ExtraTagBytes)), int(h.ExtraTagBytes), 0)
		}
		md.StoreEnumTagSinglePayload(addr, uint32(tag), uint32(h.NumEmptyCases))
		return
	}
	if h.ExtraTagBytes != 0 {
		abi.WriteTagBytes(sliceAt(addr, h.PayloadSize, int(h.ExtraTagBytes)), int(h.ExtraTagBytes), tag-numXI)
	}
}

// MultiPayloadGenericGetTag reads the raw tagBytes field at
// enumSize-tagBytes. Tags in [0, numPayloads) name the active payload
// directly; larger values are empty cases whose excess splits between the
// tag field and the leading payload bytes exactly as the single-payload
// simple form splits extra-tag/XI bytes (§13), using the shared payload
// area preceding the tag field in place of a fixed payload slot.
func MultiPayloadGenericGetTag(buf []byte, headerPos int, addr unsafe.Pointer) uint64 {
	h := readMultiHeader(bytecode.NewReaderAt(buf, headerPos))
	raw := abi.ReadTagBytes(sliceAt(addr, h.EnumSize-h.TagBytes, int(h.TagBytes)), int(h.TagBytes))
	if raw < h.NumPayloads {
		return raw
	}

	payloadAreaSize := h.EnumSize - h.TagBytes
	payloadBits := payloadPackingBits(payloadAreaSize)
	var payloadLow uint64
	if payloadBits > 0 {
		payloadLow = abi.ReadPayloadBits(sliceAt(addr, 0, int(payloadAreaSize)), int(payloadAreaSize)) & (1<<payloadBits - 1)
	}
	caseIndex := (raw-h.NumPayloads)<<payloadBits | payloadLow
	return h.NumPayloads + caseIndex
}

// MultiPayloadGenericSetTag is the inverse of MultiPayloadGenericGetTag.
func MultiPayloadGenericSetTag(buf []byte, headerPos int, addr unsafe.Pointer, tag uint64) {
	h := readMultiHeader(bytecode.NewReaderAt(buf, headerPos))
	if tag < h.NumPayloads {
		abi.WriteTagBytes(sliceAt(addr, h.EnumSize-h.TagBytes, int(h.TagBytes)), int(h.TagBytes), tag)
		return
	}

	payloadAreaSize := h.EnumSize - h.TagBytes
	payloadBits := payloadPackingBits(payloadAreaSize)
	caseIndex := tag - h.NumPayloads
	raw := h.NumPayloads + caseIndex>>payloadBits
	abi.WriteTagBytes(sliceAt(addr, h.EnumSize-h.TagBytes, int(h.TagBytes)), int(h.TagBytes), raw)
	if payloadBits > 0 {
		payloadLow := caseIndex & (1<<payloadBits - 1)
		abi.WritePayloadBits(sliceAt(addr, 0, int(payloadAreaSize)), int(payloadAreaSize), payloadLow)
	}
}
