package enumlayout

import (
	"fmt"

	"github.com/wippyai/valuewit/errors"
	"github.com/wippyai/valuewit/internal/bytecode"
)

// maxResolveDepth bounds the recursion resolveFrom performs into nested
// enum payload sub-streams. Well-formed bytecode nests only a handful of
// enum levels deep; a chain this long is almost certainly a corrupt
// payload-offset table pointing back into its own ancestor stream rather
// than a legitimately deep type.
const maxResolveDepth = 64

// rewriteKind overwrites the top byte of the tagged instruction word at
// pos — the kind byte PackInstruction placed there — leaving the gap bits
// untouched. Only Resolve ever calls this; it is the one permitted
// post-emit mutation of a layout string (§3.4).
func rewriteKind(buf []byte, pos int, kind bytecode.Kind) {
	buf[pos+7] = byte(kind)
}

// Resolve walks the instruction stream in buf starting at pos, rewriting
// every Resilient instruction to Metatype and every *FN instruction to its
// *FNResolved counterpart, recursing into nested single- and multi-payload
// enum sub-streams exactly as the driver traversal itself would. It
// returns the position just past the stream's terminating End.
//
// The pass only ever changes a kind byte (§13): in this package's token
// model a Resilient/FN instruction's trailing accessor token is already
// the opaque value its resolved counterpart expects, so there is no
// separate pointer to compute — see SPEC_FULL.md §15. Running Resolve
// twice over the same buffer is therefore a byte-identical no-op the
// second time.
func Resolve(buf []byte, pos int) (int, error) {
	return resolveFrom(buf, pos, 0)
}

func resolveFrom(buf []byte, pos int, depth int) (int, error) {
	if depth > maxResolveDepth {
		return 0, errors.SelfReferential(errors.PhaseResolve, nil)
	}

	for {
		r := bytecode.NewReaderAt(buf, pos)
		if r.Len() < 8 {
			return 0, errors.Truncated(errors.PhaseResolve, nil, pos+8, len(buf))
		}
		word := r.ReadU64()
		kind, _ := bytecode.UnpackInstruction(word)

		switch kind {
		case bytecode.End:
			return r.Pos(), nil

		case bytecode.Error, bytecode.NativeStrong, bytecode.Unowned, bytecode.Weak,
			bytecode.Unknown, bytecode.UnknownUnowned, bytecode.UnknownWeak,
			bytecode.Bridge, bytecode.Block, bytecode.ObjCStrong, bytecode.Existential:
			// No trailing bytecode fields to read or recurse into.

		case bytecode.Metatype:
			r.Skip(8)

		case bytecode.Resilient:
			rewriteKind(buf, pos, bytecode.Metatype)
			r.Skip(8)

		case bytecode.SinglePayloadEnumSimple:
			h := readSimpleHeader(r)
			if _, err := resolveFrom(buf, r.Pos(), depth+1); err != nil {
				return 0, err
			}
			r.Skip(int(h.RefCountBytes))

		case bytecode.SinglePayloadEnumFN, bytecode.SinglePayloadEnumFNResolved:
			if kind == bytecode.SinglePayloadEnumFN {
				rewriteKind(buf, pos, bytecode.SinglePayloadEnumFNResolved)
			}
			h := readFuncHeader(r)
			if _, err := resolveFrom(buf, r.Pos(), depth+1); err != nil {
				return 0, err
			}
			r.Skip(int(h.RefCountBytes))

		case bytecode.SinglePayloadEnumGeneric:
			h := readGenericHeader(r)
			if _, err := resolveFrom(buf, r.Pos(), depth+1); err != nil {
				return 0, err
			}
			r.Skip(int(h.RefCountBytes))

		case bytecode.MultiPayloadEnumFN, bytecode.MultiPayloadEnumFNResolved:
			if kind == bytecode.MultiPayloadEnumFN {
				rewriteKind(buf, pos, bytecode.MultiPayloadEnumFNResolved)
			}
			h := readMultiFuncHeader(r)
			positions := payloadOffsetTable(r, h.NumPayloads)
			for _, p := range positions {
				if _, err := resolveFrom(buf, p, depth+1); err != nil {
					return 0, err
				}
			}
			r.Skip(int(h.RefCountBytes))

		case bytecode.MultiPayloadEnumGeneric:
			h := readMultiHeader(r)
			positions := payloadOffsetTable(r, h.NumPayloads)
			for _, p := range positions {
				if _, err := resolveFrom(buf, p, depth+1); err != nil {
					return 0, err
				}
			}
			r.Skip(int(h.RefCountBytes))

		default:
			return 0, errors.Malformed(errors.PhaseResolve, nil, fmt.Sprintf("unexpected reference kind %s at offset %d", kind, pos))
		}

		pos = r.Pos()
	}
}
