package enumlayout

import (
	"github.com/wippyai/valuewit/internal/bytecode"
)

// SimpleHeader is the parameter block a SinglePayloadEnumSimple
// instruction carries, in on-disk order. See abi.PackByteCountsAndOffset
// for the bit layout packed into ByteCountsAndOffset.
type SimpleHeader struct {
	ByteCountsAndOffset uint64
	PayloadSize         uint64
	ZeroTagValue        uint64
	XITagValues         uint64
	RefCountBytes       uint64
	EnumSize            uint64
}

// SimpleHeaderWidth is the fixed on-disk width of a SimpleHeader,
// matching abi.SinglePayloadSimpleHeaderWidth.
const SimpleHeaderWidth = 6 * 8

func readSimpleHeader(r *bytecode.Reader) SimpleHeader {
	return SimpleHeader{
		ByteCountsAndOffset: r.ReadU64(),
		PayloadSize:         r.ReadU64(),
		ZeroTagValue:        r.ReadU64(),
		XITagValues:         r.ReadU64(),
		RefCountBytes:       r.ReadU64(),
		EnumSize:            r.ReadU64(),
	}
}

// FuncHeader is the parameter block shared by SinglePayloadEnumFN and
// SinglePayloadEnumFNResolved: a tag-accessor token (resolved at call
// time through the same FuncTable embedded Resilient instructions use)
// plus the sub-stream size and overall enum extent.
type FuncHeader struct {
	FuncToken     uint64
	RefCountBytes uint64
	EnumSize      uint64
}

const FuncHeaderWidth = 3 * 8

func readFuncHeader(r *bytecode.Reader) FuncHeader {
	return FuncHeader{
		FuncToken:     r.ReadU64(),
		RefCountBytes: r.ReadU64(),
		EnumSize:      r.ReadU64(),
	}
}

// GenericHeader is the parameter block for SinglePayloadEnumGeneric: the
// XI-hosting type's metadata token stands in for the fixed XI field the
// Simple variant reads directly, since here it is only known dynamically.
type GenericHeader struct {
	MetadataToken uint64
	PayloadSize   uint64
	ExtraTagBytes uint64
	NumEmptyCases uint64
	RefCountBytes uint64
	EnumSize      uint64
}

const GenericHeaderWidth = 6 * 8

func readGenericHeader(r *bytecode.Reader) GenericHeader {
	return GenericHeader{
		MetadataToken: r.ReadU64(),
		PayloadSize:   r.ReadU64(),
		ExtraTagBytes: r.ReadU64(),
		NumEmptyCases: r.ReadU64(),
		RefCountBytes: r.ReadU64(),
		EnumSize:      r.ReadU64(),
	}
}

// MultiHeader is the parameter block of a MultiPayloadEnumGeneric
// instruction: the payload-offset table (§3.3) immediately follows this
// header in the bytecode stream, one uint64 entry per payload.
type MultiHeader struct {
	NumPayloads   uint64
	TagBytes      uint64
	EnumSize      uint64
	RefCountBytes uint64
}

const MultiHeaderWidth = 4 * 8

func readMultiHeader(r *bytecode.Reader) MultiHeader {
	return MultiHeader{
		NumPayloads:   r.ReadU64(),
		TagBytes:      r.ReadU64(),
		EnumSize:      r.ReadU64(),
		RefCountBytes: r.ReadU64(),
	}
}

// MultiFuncHeader is the header for MultiPayloadEnumFN/FNResolved: like
// MultiHeader but a tag-accessor token stands in for the raw tagBytes
// field, mirroring the FuncHeader/SimpleHeader split on the single-payload
// side.
type MultiFuncHeader struct {
	NumPayloads   uint64
	FuncToken     uint64
	EnumSize      uint64
	RefCountBytes uint64
}

const MultiFuncHeaderWidth = 4 * 8

func readMultiFuncHeader(r *bytecode.Reader) MultiFuncHeader {
	return MultiFuncHeader{
		NumPayloads:   r.ReadU64(),
		FuncToken:     r.ReadU64(),
		EnumSize:      r.ReadU64(),
		RefCountBytes: r.ReadU64(),
	}
}

// payloadOffsetTable reads the numPayloads-entry offset table that
// follows a MultiHeader and returns, for each payload k, its absolute
// position in buf: the table's own end plus its k-th entry, per §3.3
// ("the byte offset from the table's end to the start of payload k's
// stream").
func payloadOffsetTable(r *bytecode.Reader, numPayloads uint64) []int {
	tableEnd := r.Pos() + int(numPayloads)*8
	positions := make([]int, numPayloads)
	for k := range positions {
		off := r.ReadU64()
		positions[k] = tableEnd + int(off)
	}
	return positions
}
