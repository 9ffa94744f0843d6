package riscv

import (
	"encoding/binary"

	"github.com/wdamron/dynasm"
)

// RelocKind selects the field a Reloc patches.
type RelocKind uint8

const (
	// RelB is the 13-bit offset of a conditional branch.
	RelB RelocKind = iota
	// RelJ is the 21-bit offset of JAL.
	RelJ
	// RelBC is the 9-bit offset of C.BEQZ and C.BNEZ.
	RelBC
	// RelJC is the 12-bit offset of C.J and C.JAL.
	RelJC
	// RelHI20 is the upper immediate of AUIPC, rounded so that adding the sign-extended low
	// 12 bits yields the displacement.
	RelHI20
	// RelLO12 is the I-type immediate holding the low 12 bits of the displacement. The
	// displacement is measured from the AUIPC immediately before the instruction.
	RelLO12
	// RelLO12S is the S-type immediate holding the low 12 bits of the displacement, measured
	// like RelLO12.
	RelLO12S
	// RelSPLIT32 is an AUIPC followed by an I-type instruction, covering a 32-bit displacement.
	RelSPLIT32
	// RelSPLIT32S is an AUIPC followed by a store.
	RelSPLIT32S
	relPlain
)

// Reloc describes a PC-relative field. The PC is the address of the instruction holding the
// field, of the AUIPC of a split pair or preceding a LO12 field, or of the first byte of a
// plain data field.
type Reloc struct {
	kind RelocKind
	size uint8
}

var _ dynasm.Relocation = Reloc{}

// NewReloc describes the field of the instruction, or instruction pair, ending at the
// reference's anchor.
func NewReloc(kind RelocKind) Reloc {
	switch kind {
	case RelBC, RelJC:
		return Reloc{kind: kind, size: 2}
	case RelSPLIT32, RelSPLIT32S:
		return Reloc{kind: kind, size: 8}
	case RelB, RelJ, RelHI20, RelLO12, RelLO12S:
		return Reloc{kind: kind, size: 4}
	}
	return Reloc{kind: RelB, size: 4}
}

// Plain describes a little-endian data field of size bytes (1, 2, 4 or 8) ending at the
// reference's anchor.
func Plain(size uint8) Reloc { return Reloc{kind: relPlain, size: size} }

// Get the field kind. Plain data fields have no RelocKind of their own.
func (r Reloc) RelocKind() (RelocKind, bool) { return r.kind, r.kind < relPlain }

func (r Reloc) Size() int                   { return int(r.size) }
func (r Reloc) FieldOffset() int            { return int(r.size) }
func (r Reloc) Kind() dynasm.RelocationKind { return dynasm.Relative }

func (r Reloc) StartOffset() int {
	if r.kind == RelLO12 || r.kind == RelLO12S {
		return 8
	}
	return int(r.size)
}

// branch and jump fields
var offsetFields = [...]*field{RelB: &fieldB, RelJ: &fieldJ, RelBC: &fieldCB, RelJC: &fieldCJ}

// hi20 splits a displacement into the rounded upper 20 bits of AUIPC and the sign-extended
// low 12 bits.
func hi20(v int64) (hi uint32, lo int64, ok bool) {
	h := (v + 0x800) >> 12
	if !dynasm.FitsSigned(h, 20) {
		return 0, 0, false
	}
	return uint32(h) & 0xfffff, v - h<<12, true
}

func (r Reloc) Write(buf []byte, value int64) error {
	switch r.kind {
	case relPlain:
		return dynasm.WriteSigned(buf, value)
	case RelB, RelJ, RelBC, RelJC:
		f := offsetFields[r.kind]
		if value&1 != 0 {
			return &dynasm.ImpossibleRelocationError{Value: value, Reason: "misaligned target"}
		}
		if !dynasm.FitsSigned(value, uint(f.bits)) {
			return &dynasm.ImpossibleRelocationError{Value: value, Reason: "target out of range"}
		}
		if r.size == 2 {
			half := uint32(binary.LittleEndian.Uint16(buf))
			binary.LittleEndian.PutUint16(buf, uint16(half&^f.mask()|f.place(uint32(value))))
			return nil
		}
		word := binary.LittleEndian.Uint32(buf)
		binary.LittleEndian.PutUint32(buf, word&^f.mask()|f.place(uint32(value)))
		return nil
	case RelLO12:
		patch(buf, &fieldI, value)
		return nil
	case RelLO12S:
		patch(buf, &fieldS, value)
		return nil
	}

	hi, lo, ok := hi20(value)
	if !ok {
		return &dynasm.ImpossibleRelocationError{Value: value, Reason: "target out of range of auipc"}
	}
	word := binary.LittleEndian.Uint32(buf)
	binary.LittleEndian.PutUint32(buf, word&0xfff|hi<<12)
	switch r.kind {
	case RelSPLIT32:
		patch(buf[4:], &fieldI, lo)
	case RelSPLIT32S:
		patch(buf[4:], &fieldS, lo)
	}
	return nil
}

func patch(buf []byte, f *field, v int64) {
	word := binary.LittleEndian.Uint32(buf)
	binary.LittleEndian.PutUint32(buf, word&^f.mask()|f.place(uint32(v)))
}

func (r Reloc) Read(buf []byte) int64 {
	switch r.kind {
	case relPlain:
		return dynasm.ReadSigned(buf)
	case RelB, RelJ:
		return offsetFields[r.kind].gather(binary.LittleEndian.Uint32(buf))
	case RelBC, RelJC:
		return offsetFields[r.kind].gather(uint32(binary.LittleEndian.Uint16(buf)))
	case RelLO12:
		return fieldI.gather(binary.LittleEndian.Uint32(buf))
	case RelLO12S:
		return fieldS.gather(binary.LittleEndian.Uint32(buf))
	}
	hi := fieldU.gather(binary.LittleEndian.Uint32(buf))
	switch r.kind {
	case RelSPLIT32:
		return hi + fieldI.gather(binary.LittleEndian.Uint32(buf[4:]))
	case RelSPLIT32S:
		return hi + fieldS.gather(binary.LittleEndian.Uint32(buf[4:]))
	}
	return hi
}

// Encode returns the field kind as a single byte: 0 to 8 for instruction fields and
// 9 plus the size code for plain data.
func (r Reloc) Encode() []byte {
	if r.kind == relPlain {
		code, _ := dynasm.SizeCode(int(r.size))
		return []byte{9 + code}
	}
	return []byte{byte(r.kind)}
}
