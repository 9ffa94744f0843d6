package riscv

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

// liSpans maps the li mnemonics to the immediate width they load. li picks the shortest
// sequence; the suffixed forms always emit the full sequence for their width.
var liSpans = map[string]int{"li": 0, "li.12": 12, "li.32": 32, "li.43": 43, "li.54": 54}

const liForm = " xN, imm"

// li loads a constant into an integer register with ADDI, LUI and ADDI(W), and for wider
// constants pairs of SLLI and ADDI shifting in 11 bits at a time.
//
//	li.12  addi
//	li.32  lui, addi(w)
//	li.43  lui, addi(w), slli, addi
//	li.54  lui, addi(w), slli, addi, slli, addi
func (e *Encoder) li(em dynasm.Emitter, name string, span int, args []Arg) error {
	if len(args) != 2 {
		return e.mismatch(name)
	}
	rd, ok := args[0].(Reg)
	v, isImm := args[1].(Imm)
	if !ok || !isImm || rd.Kind() != KindX {
		return e.mismatch(name)
	}
	if err := rd.validate(e.profile.Embedded); err != nil {
		return errors.Wrap(err, name)
	}
	is64 := e.profile.is64()
	value := int64(v)
	if !is64 {
		if span > 32 {
			return errors.Wrapf(dynasm.ErrUnknownMnemonic, "%q is not available for %s", name, e.profile)
		}
		if value > math.MaxInt32 && value <= math.MaxUint32 {
			value = int64(int32(uint32(value)))
		}
	}
	width := uint(span)
	if span == 0 {
		width = 64
		if !is64 {
			width = 32
		}
	}
	if !dynasm.FitsSigned(value, width) {
		return errors.Wrapf(dynasm.ErrImmediateOutOfRange, "%s: immediate %d", name, int64(v))
	}

	words := liSeq(e.seq[:0], uint32(rd.Num()), value, span, is64)
	for i, w := range words {
		binary.LittleEndian.PutUint32(e.buf[4*i:], w)
	}
	return em.Append(e.buf[:4*len(words)])
}

func liSeq(dst []uint32, rd uint32, v int64, span int, is64 bool) []uint32 {
	switch {
	case span == 12 || span == 0 && dynasm.FitsSigned(v, 12):
		return append(dst, itype(0x13, rd, 0, v))
	case span == 32 || span == 0 && dynasm.FitsSigned(v, 32):
		lo := signExtend(uint64(v)&0xfff, 12)
		hi := uint32((v-lo)>>12) & 0xfffff
		dst = append(dst, 0x37|rd<<7|hi<<12)
		if lo != 0 || span == 32 {
			op := uint32(0x13)
			if is64 {
				op = 0x1b
			}
			dst = append(dst, itype(op, rd, rd, lo))
		}
		return dst
	}
	inner := 0
	if span != 0 {
		inner = span - 11
	}
	dst = liSeq(dst, rd, v>>11, inner, is64)
	dst = append(dst, itype(0x1013, rd, rd, 11))
	if low := v & 0x7ff; low != 0 || span != 0 {
		dst = append(dst, itype(0x13, rd, rd, low))
	}
	return dst
}

func itype(op, rd, rs uint32, v int64) uint32 {
	return op | rd<<7 | rs<<15 | fieldI.place(uint32(v))
}
