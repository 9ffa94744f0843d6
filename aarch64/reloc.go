package aarch64

import (
	"encoding/binary"

	"github.com/wdamron/dynasm"
)

// RelocKind selects the field of an instruction word a Reloc patches.
type RelocKind uint8

const (
	// RelB is the 26-bit word offset of B and BL.
	RelB RelocKind = iota
	// RelBCond is the 19-bit word offset at bit 5 of B.cond, CBZ, CBNZ and literal loads.
	RelBCond
	// RelADR is the 21-bit byte offset of ADR, split into immlo and immhi.
	RelADR
	// RelADRP is the 21-bit page offset of ADRP, laid out like RelADR.
	RelADRP
	// RelTBZ is the 14-bit word offset at bit 5 of TBZ and TBNZ.
	RelTBZ
	relPlain
)

// field layout of the word-sized kinds: value scale, width and position
var relocFields = [...]struct{ scale, bits, pos uint8 }{
	RelB:     {2, 26, 0},
	RelBCond: {2, 19, 5},
	RelADR:   {0, 21, 0},
	RelADRP:  {12, 21, 0},
	RelTBZ:   {2, 14, 5},
}

// Reloc describes a PC-relative field. The PC is the address of the instruction word
// holding the field, or of the first byte of a plain data field.
type Reloc struct {
	kind RelocKind
	size uint8
}

var _ dynasm.PageRelocation = Reloc{}

// NewReloc describes the branch or address field of the 4-byte instruction ending at the
// reference's anchor.
func NewReloc(kind RelocKind) Reloc {
	if kind >= relPlain {
		kind = RelB
	}
	return Reloc{kind: kind, size: 4}
}

// Plain describes a little-endian data field of size bytes (1, 2, 4 or 8) ending at the
// reference's anchor.
func Plain(size uint8) Reloc { return Reloc{kind: relPlain, size: size} }

// Get the field kind. Plain data fields have no RelocKind of their own.
func (r Reloc) RelocKind() (RelocKind, bool) { return r.kind, r.kind < relPlain }

func (r Reloc) Size() int                   { return int(r.size) }
func (r Reloc) FieldOffset() int            { return int(r.size) }
func (r Reloc) StartOffset() int            { return int(r.size) }
func (r Reloc) Kind() dynasm.RelocationKind { return dynasm.Relative }
func (r Reloc) PageRelative() bool          { return r.kind == RelADRP }

func (r Reloc) Write(buf []byte, value int64) error {
	if r.kind == relPlain {
		return dynasm.WriteSigned(buf, value)
	}
	f := relocFields[r.kind]
	if value&(1<<f.scale-1) != 0 {
		return &dynasm.ImpossibleRelocationError{Value: value, Reason: "misaligned target"}
	}
	imm := value >> f.scale
	if !dynasm.FitsSigned(imm, uint(f.bits)) {
		return &dynasm.ImpossibleRelocationError{Value: value, Reason: "target out of range"}
	}
	word := binary.LittleEndian.Uint32(buf)
	mask := uint32(1)<<f.bits - 1
	if r.kind == RelADR || r.kind == RelADRP {
		word = word&^(3<<29|0x7ffff<<5) | splitAdr(uint32(imm)&mask)
	} else {
		word = word&^(mask<<f.pos) | (uint32(imm)&mask)<<f.pos
	}
	binary.LittleEndian.PutUint32(buf, word)
	return nil
}

func (r Reloc) Read(buf []byte) int64 {
	if r.kind == relPlain {
		return dynasm.ReadSigned(buf)
	}
	f := relocFields[r.kind]
	word := binary.LittleEndian.Uint32(buf)
	var imm uint32
	if r.kind == RelADR || r.kind == RelADRP {
		imm = word>>29&3 | (word>>5&0x7ffff)<<2
	} else {
		imm = word >> f.pos & (1<<f.bits - 1)
	}
	return signExtend(uint64(imm), uint(f.bits)) << f.scale
}

// Encode returns the field kind as a single byte: 0 to 4 for instruction fields and
// 5 plus the size code for plain data.
func (r Reloc) Encode() []byte {
	if r.kind == relPlain {
		code, _ := dynasm.SizeCode(int(r.size))
		return []byte{5 + code}
	}
	return []byte{byte(r.kind)}
}

// splitAdr places a 21-bit ADR immediate into immlo (bits 29-30) and immhi (bits 5-23).
func splitAdr(imm uint32) uint32 { return (imm&3)<<29 | (imm>>2&0x7ffff)<<5 }

func signExtend(v uint64, bits uint) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}
