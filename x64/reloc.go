package x64

import (
	"encoding/binary"
	"math"

	"github.com/wdamron/dynasm"
)

// Reloc describes a little-endian displacement or immediate field of an x86 instruction.
//
// The offset counts the bytes between the end of the field and the end of the instruction,
// which is also the PC relative values are measured from.
type Reloc struct {
	offset uint8
	size   uint8
	kind   dynasm.RelocationKind
}

var _ dynasm.Relocation = Reloc{}

// NewReloc describes a field of size bytes (1, 2, 4 or 8) ending offset bytes before the
// end of its instruction.
func NewReloc(offset, size uint8, kind dynasm.RelocationKind) Reloc {
	return Reloc{offset: offset, size: size, kind: kind}
}

func (r Reloc) Size() int                   { return int(r.size) }
func (r Reloc) FieldOffset() int            { return int(r.offset) + int(r.size) }
func (r Reloc) StartOffset() int            { return 0 }
func (r Reloc) Kind() dynasm.RelocationKind { return r.kind }

func (r Reloc) Write(buf []byte, value int64) error {
	if r.kind == dynasm.AbsToRel && len(buf) == 4 {
		if value < math.MinInt32 || value > math.MaxUint32 {
			return &dynasm.ImpossibleRelocationError{Value: value, Reason: "address does not fit a dword"}
		}
		binary.LittleEndian.PutUint32(buf, uint32(value))
		return nil
	}
	return dynasm.WriteSigned(buf, value)
}

func (r Reloc) Read(buf []byte) int64 { return dynasm.ReadSigned(buf) }

// Encode returns the offset, size code and kind as three bytes.
func (r Reloc) Encode() []byte {
	code, _ := dynasm.SizeCode(int(r.size))
	return []byte{r.offset, code, byte(r.kind)}
}
