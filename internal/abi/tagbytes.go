package abi

import "encoding/binary"

// ReadTagBytes reads width bytes at the start of buf by unaligned
// little-endian load and zero-extends to 64 bits. width outside
// {1, 2, 4, 8} is illegal and aborts the caller.
func ReadTagBytes(buf []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	case 8:
		return binary.LittleEndian.Uint64(buf)
	default:
		Unreachable("illegal tag byte width %d", width)
		return 0
	}
}

// WriteTagBytes writes the low width bytes of value into buf by unaligned
// little-endian store. width outside {1, 2, 4, 8} is illegal and aborts.
func WriteTagBytes(buf []byte, width int, value uint64) {
	switch width {
	case 1:
		buf[0] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(value))
	case 8:
		binary.LittleEndian.PutUint64(buf, value)
	default:
		Unreachable("illegal tag byte width %d", width)
	}
}

// ReadPayloadBits reads the low n bytes (n in [0,8], any value, not just
// the tag-width set) of buf as a little-endian unsigned integer. Used for
// the packed-low-bits payload area single-payload-simple and
// multi-payload-generic tag codecs read when the payload is narrower than
// the fixed {1,2,4,8} tag-byte widths call for.
func ReadPayloadBits(buf []byte, n int) uint64 {
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v
}

// WritePayloadBits is the inverse of ReadPayloadBits.
func WritePayloadBits(buf []byte, n int, value uint64) {
	for i := 0; i < n; i++ {
		buf[i] = byte(value)
		value >>= 8
	}
}

// MaskWord clears the bits of word set in mask. Used to strip ABI spare
// bits and reserved bits from a raw pointer word before it is handed to a
// ref-count collaborator call.
func MaskWord(word, mask uint64) uint64 {
	return word &^ mask
}

// AlignTo rounds offset up to the next multiple of align. align of zero
// is treated as 1 (no alignment requirement).
func AlignTo(offset, align uint64) uint64 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}
