package enumlayout

import (
	"fmt"

	"github.com/wippyai/valuewit/errors"
	"github.com/wippyai/valuewit/internal/bytecode"
)

// Instruction is one disassembled bytecode instruction, used by the
// layoutdump tool. Depth counts nesting inside enum payload sub-streams,
// so a caller can indent a flat listing instead of reconstructing tree
// structure itself.
type Instruction struct {
	Offset int
	Depth  int
	Kind   string
	Gap    uint64
	Detail string
}

// Disassemble walks the instruction stream in buf starting at pos the
// same way Resolve does, but only describes what it reads instead of
// rewriting anything.
func Disassemble(buf []byte, pos int) ([]Instruction, error) {
	return disasmFrom(buf, pos, 0)
}

func disasmFrom(buf []byte, pos int, depth int) ([]Instruction, error) {
	var out []Instruction
	for {
		start := pos
		r := bytecode.NewReaderAt(buf, pos)
		if r.Len() < 8 {
			return nil, errors.Truncated(errors.PhaseValidate, nil, pos+8, len(buf))
		}
		word := r.ReadU64()
		kind, gap := bytecode.UnpackInstruction(word)

		switch kind {
		case bytecode.End:
			out = append(out, Instruction{Offset: start, Depth: depth, Kind: kind.String(), Gap: gap})
			return out, nil

		case bytecode.Error, bytecode.NativeStrong, bytecode.Unowned, bytecode.Weak,
			bytecode.Unknown, bytecode.UnknownUnowned, bytecode.UnknownWeak,
			bytecode.Bridge, bytecode.Block, bytecode.ObjCStrong, bytecode.Existential:
			out = append(out, Instruction{Offset: start, Depth: depth, Kind: kind.String(), Gap: gap})

		case bytecode.Metatype:
			token := r.ReadU64()
			out = append(out, Instruction{start, depth, kind.String(), gap, fmt.Sprintf("metadata=%d", token)})

		case bytecode.Resilient:
			token := r.ReadU64()
			out = append(out, Instruction{start, depth, kind.String(), gap, fmt.Sprintf("accessor=%d", token)})

		case bytecode.SinglePayloadEnumSimple:
			h := readSimpleHeader(r)
			out = append(out, Instruction{start, depth, kind.String(), gap,
				fmt.Sprintf("enumSize=%d payloadSize=%d zeroTag=%d", h.EnumSize, h.PayloadSize, h.ZeroTagValue)})
			sub, err := disasmFrom(buf, r.Pos(), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			r.Skip(int(h.RefCountBytes))

		case bytecode.SinglePayloadEnumFN, bytecode.SinglePayloadEnumFNResolved:
			h := readFuncHeader(r)
			out = append(out, Instruction{start, depth, kind.String(), gap,
				fmt.Sprintf("enumSize=%d accessor=%d", h.EnumSize, h.FuncToken)})
			sub, err := disasmFrom(buf, r.Pos(), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			r.Skip(int(h.RefCountBytes))

		case bytecode.SinglePayloadEnumGeneric:
			h := readGenericHeader(r)
			out = append(out, Instruction{start, depth, kind.String(), gap,
				fmt.Sprintf("enumSize=%d metadata=%d numEmptyCases=%d", h.EnumSize, h.MetadataToken, h.NumEmptyCases)})
			sub, err := disasmFrom(buf, r.Pos(), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			r.Skip(int(h.RefCountBytes))

		case bytecode.MultiPayloadEnumFN, bytecode.MultiPayloadEnumFNResolved:
			h := readMultiFuncHeader(r)
			out = append(out, Instruction{start, depth, kind.String(), gap,
				fmt.Sprintf("enumSize=%d numPayloads=%d accessor=%d", h.EnumSize, h.NumPayloads, h.FuncToken)})
			positions := payloadOffsetTable(r, h.NumPayloads)
			for _, p := range positions {
				sub, err := disasmFrom(buf, p, depth+1)
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)
			}
			r.Skip(int(h.RefCountBytes))

		case bytecode.MultiPayloadEnumGeneric:
			h := readMultiHeader(r)
			out = append(out, Instruction{start, depth, kind.String(), gap,
				fmt.Sprintf("enumSize=%d numPayloads=%d tagBytes=%d", h.EnumSize, h.NumPayloads, h.TagBytes)})
			positions := payloadOffsetTable(r, h.NumPayloads)
			for _, p := range positions {
				sub, err := disasmFrom(buf, p, depth+1)
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)
			}
			r.Skip(int(h.RefCountBytes))

		default:
			return nil, errors.Malformed(errors.PhaseValidate, nil, fmt.Sprintf("unexpected reference kind %s at offset %d", kind, pos))
		}

		pos = r.Pos()
	}
}
