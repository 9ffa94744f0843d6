package x64

import (
	"encoding/binary"

	"github.com/wdamron/dynasm"
)

// User prefixes
const (
	lockPrefix  byte = 0xf0
	repnePrefix byte = 0xf2
	repPrefix   byte = 0xf3
)

// Recommended multi-byte NOP sequences, indexed by length-1.
var nops = [...][9]byte{
	{0x90},
	{0x66, 0x90},
	{0x0f, 0x1f, 0x00},
	{0x0f, 0x1f, 0x40, 0x00},
	{0x0f, 0x1f, 0x44, 0x00, 0x00},
	{0x66, 0x0f, 0x1f, 0x44, 0x00, 0x00},
	{0x0f, 0x1f, 0x80, 0x00, 0x00, 0x00, 0x00},
	{0x0f, 0x1f, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x66, 0x0f, 0x1f, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// fieldRef is a displacement or immediate to be patched with a label reference. at is the
// offset of the field within the instruction.
type fieldRef struct {
	at     int
	size   uint8
	kind   dynasm.RelocationKind
	target dynasm.Target
	addend int64
}

// buffer holds one encoded instruction.
type buffer struct {
	b    []byte
	refs []fieldRef

	_b    [32]byte
	_refs [2]fieldRef
}

func (b *buffer) reset() {
	b.b = b._b[:0]
	b.refs = b._refs[:0]
}

func (b *buffer) Len() int    { return len(b.b) }
func (b *buffer) Get() []byte { return b.b }

func (b *buffer) Byte(v byte)       { b.b = append(b.b, v) }
func (b *buffer) Byte2(v1, v2 byte) { b.b = append(b.b, v1, v2) }
func (b *buffer) Bytes(v []byte)    { b.b = append(b.b, v...) }
func (b *buffer) Int8(v int8)       { b.b = append(b.b, byte(v)) }
func (b *buffer) Int16(v int16)     { b.b = binary.LittleEndian.AppendUint16(b.b, uint16(v)) }
func (b *buffer) Int32(v int32)     { b.b = binary.LittleEndian.AppendUint32(b.b, uint32(v)) }
func (b *buffer) Int64(v int64)     { b.b = binary.LittleEndian.AppendUint64(b.b, uint64(v)) }

// Field appends a zeroed field of size bytes to be patched with a reference to target.
func (b *buffer) Field(size uint8, kind dynasm.RelocationKind, target dynasm.Target, addend int64) {
	b.refs = append(b.refs, fieldRef{at: len(b.b), size: size, kind: kind, target: target, addend: addend})
	for i := uint8(0); i < size; i++ {
		b.b = append(b.b, 0)
	}
}

// Refs converts the recorded fields into references anchored at the end of the instruction.
func (b *buffer) Refs() []dynasm.Ref {
	if len(b.refs) == 0 {
		return nil
	}
	refs := make([]dynasm.Ref, len(b.refs))
	for i, f := range b.refs {
		offset := uint8(len(b.b) - f.at - int(f.size))
		refs[i] = dynasm.Ref{Target: f.target, Addend: f.addend, Rel: NewReloc(offset, f.size, f.kind)}
	}
	return refs
}

// Nop appends length bytes of NOP instructions.
func (b *buffer) Nop(length int) {
	maxNop := len(nops)
	for length > 0 {
		n := length
		if n > maxNop {
			n = maxNop
		}
		b.b = append(b.b, nops[n-1][:n]...)
		length -= n
	}
}

// appendNops returns length bytes of NOP instructions.
func appendNops(dst []byte, length int) []byte {
	var b buffer
	b.b = dst
	b.Nop(length)
	return b.b
}
