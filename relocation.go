package dynasm

import (
	"encoding/binary"
	"math"
)

// RelocationKind selects how a resolved reference is turned into the value
// written into its field, and whether the field must be rewritten when the
// executable buffer moves.
type RelocationKind uint8

const (
	// Relative values are target minus PC. Label targets never need adjustment;
	// extern targets are adjusted when the buffer moves.
	Relative RelocationKind = iota
	// AbsToRel fields hold the absolute address of a buffer offset.
	AbsToRel
	// RelToAbs fields hold a PC-relative displacement to an absolute address.
	RelToAbs
)

func (k RelocationKind) String() string {
	switch k {
	case Relative:
		return "relative"
	case AbsToRel:
		return "abs-to-rel"
	case RelToAbs:
		return "rel-to-abs"
	}
	return "unknown"
}

// Relocation describes the shape of a field holding a reference.
//
// Offsets are counted backwards from the reference's anchor, which is the
// assembly offset at the time the reference was recorded (the end of the
// emitted instruction for references produced by Emit). The bytes patched by
// Write are buf[anchor-FieldOffset() : anchor-FieldOffset()+Size()] and the
// PC used for relative values is anchor-StartOffset().
type Relocation interface {
	Size() int
	FieldOffset() int
	StartOffset() int
	Kind() RelocationKind

	// Write packs value into buf (len(buf) == Size()), preserving the
	// non-field bits already present.
	Write(buf []byte, value int64) error
	// Read extracts the sign-extended value of the field.
	Read(buf []byte) int64
	// Encode returns the architecture's fixed encoding of the descriptor.
	Encode() []byte
}

// PageRelocation is implemented by relocations whose value is the distance
// between the 4096-byte pages of the target and the PC.
type PageRelocation interface {
	Relocation
	PageRelative() bool
}

func isPageRelative(rel Relocation) bool {
	p, ok := rel.(PageRelocation)
	return ok && p.PageRelative()
}

// SizeCode returns the two-bit size code (0: byte, 1: word, 2: dword, 3: qword).
func SizeCode(size int) (uint8, bool) {
	switch size {
	case 1:
		return 0, true
	case 2:
		return 1, true
	case 4:
		return 2, true
	case 8:
		return 3, true
	}
	return 0, false
}

// SizeFromCode is the inverse of SizeCode.
func SizeFromCode(code uint8) int { return 1 << (code & 3) }

// WriteSigned stores value into a little-endian field of len(buf) bytes,
// failing if it does not fit the signed range of the field. Eight-byte fields
// accept any value.
func WriteSigned(buf []byte, value int64) error {
	switch len(buf) {
	case 1:
		if value < math.MinInt8 || value > math.MaxInt8 {
			return &ImpossibleRelocationError{Value: value, Reason: "does not fit a signed byte"}
		}
		buf[0] = byte(value)
	case 2:
		if value < math.MinInt16 || value > math.MaxInt16 {
			return &ImpossibleRelocationError{Value: value, Reason: "does not fit a signed word"}
		}
		binary.LittleEndian.PutUint16(buf, uint16(value))
	case 4:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return &ImpossibleRelocationError{Value: value, Reason: "does not fit a signed dword"}
		}
		binary.LittleEndian.PutUint32(buf, uint32(value))
	case 8:
		binary.LittleEndian.PutUint64(buf, uint64(value))
	default:
		return &ImpossibleRelocationError{Value: value, Reason: "unsupported field size"}
	}
	return nil
}

// ReadSigned is the inverse of WriteSigned.
func ReadSigned(buf []byte) int64 {
	switch len(buf) {
	case 1:
		return int64(int8(buf[0]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(buf)))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(buf)))
	case 8:
		return int64(binary.LittleEndian.Uint64(buf))
	}
	return 0
}

// FitsSigned reports whether value fits a two's complement field of the given width.
func FitsSigned(value int64, bits uint) bool {
	if bits >= 64 {
		return true
	}
	lim := int64(1) << (bits - 1)
	return value >= -lim && value < lim
}

// FitsUnsigned reports whether value fits an unsigned field of the given width.
func FitsUnsigned(value int64, bits uint) bool {
	if value < 0 {
		return false
	}
	if bits >= 63 {
		return true
	}
	return value < int64(1)<<bits
}
