package valuewit

import (
	"unsafe"

	"github.com/wippyai/valuewit/internal/enumlayout"
)

// SingletonGetEnumTag always returns 0 (a singleton enum has one case).
func SingletonGetEnumTag(addr unsafe.Pointer) uint64 { return enumlayout.SingletonGetTag(addr) }

// SingletonDestructiveInjectEnumTag is a no-op.
func SingletonDestructiveInjectEnumTag(addr unsafe.Pointer, tag uint64) {
	enumlayout.SingletonSetTag(addr, tag)
}

// EnumSimpleGetEnumTag decodes the SinglePayloadEnumSimple header embedded
// in layout at headerOffset and recovers addr's active tag (§4.6) without
// running a full traversal.
func EnumSimpleGetEnumTag(layout *LayoutString, headerOffset int, addr unsafe.Pointer) uint64 {
	return enumlayout.EnumSimpleGetTag(layout.Bytes(), headerOffset, addr)
}

// EnumSimpleDestructiveInjectEnumTag is the inverse of
// EnumSimpleGetEnumTag: it writes tag into addr's tag fields. Tag 0 writes
// nothing; an empty-case tag overwrites the XI field or, for a payload
// narrower than 4 bytes, the payload bytes themselves.
func EnumSimpleDestructiveInjectEnumTag(layout *LayoutString, headerOffset int, addr unsafe.Pointer, tag uint64) {
	enumlayout.EnumSimpleSetTag(layout.Bytes(), headerOffset, addr, tag)
}

// EnumFnGetEnumTag is a single call-through to the embedded tag accessor
// token, which it resolves through ft.
func EnumFnGetEnumTag(ft *FuncTable, token uint64, addr unsafe.Pointer) uint64 {
	return enumlayout.EnumFnGetTag(ft, token, addr)
}

// SinglePayloadEnumGenericGetEnumTag mirrors EnumSimpleGetEnumTag but
// delegates extra-inhabitant handling to the dynamically-identified
// XI-type's own witness through c.
func SinglePayloadEnumGenericGetEnumTag(layout *LayoutString, headerOffset int, c Collaborator, addr unsafe.Pointer) uint64 {
	return enumlayout.SinglePayloadGenericGetTag(layout.Bytes(), headerOffset, c, addr)
}

// SinglePayloadEnumGenericDestructiveInjectEnumTag is the inverse of
// SinglePayloadEnumGenericGetEnumTag.
func SinglePayloadEnumGenericDestructiveInjectEnumTag(layout *LayoutString, headerOffset int, c Collaborator, addr unsafe.Pointer, tag uint64) {
	enumlayout.SinglePayloadGenericSetTag(layout.Bytes(), headerOffset, c, addr, tag)
}

// MultiPayloadEnumGenericGetEnumTag reads the raw tagBytes field the
// MultiPayloadEnumGeneric header at headerOffset describes.
func MultiPayloadEnumGenericGetEnumTag(layout *LayoutString, headerOffset int, addr unsafe.Pointer) uint64 {
	return enumlayout.MultiPayloadGenericGetTag(layout.Bytes(), headerOffset, addr)
}

// MultiPayloadEnumGenericDestructiveInjectEnumTag is the inverse of
// MultiPayloadEnumGenericGetEnumTag.
func MultiPayloadEnumGenericDestructiveInjectEnumTag(layout *LayoutString, headerOffset int, addr unsafe.Pointer, tag uint64) {
	enumlayout.MultiPayloadGenericSetTag(layout.Bytes(), headerOffset, addr, tag)
}

