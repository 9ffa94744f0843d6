package aarch64

import (
	"math"
	"math/bits"
)

// EncodeLogicalImm finds the (N, immr, imms) encoding of a bitmask immediate for the
// logical instructions. For 32-bit instructions only the low 32 bits of v are used.
//
// A bitmask immediate is a run of ones, rotated within an element of 2, 4, 8, 16, 32 or
// 64 bits, repeated to fill the register. All-zero and all-one values are not encodable.
func EncodeLogicalImm(v uint64, is64 bool) (n, immr, imms uint32, ok bool) {
	if !is64 {
		v &= math.MaxUint32
		v |= v << 32
	}
	if v == 0 || v == math.MaxUint64 {
		return 0, 0, 0, false
	}

	size := uint32(64)
	for size > 2 {
		half := size / 2
		mask := uint64(1)<<half - 1
		if v&mask != v>>half&mask {
			break
		}
		size = half
	}
	elemMask := uint64(math.MaxUint64)
	if size < 64 {
		elemMask = uint64(1)<<size - 1
	}
	elem := v & elemMask
	ones := uint32(bits.OnesCount64(elem))
	run := uint64(1)<<ones - 1

	// find the right rotation bringing the run down to bit 0
	for r := uint32(0); r < size; r++ {
		if rotr(elem, r, size) == run {
			if size == 64 {
				n = 1
			}
			immr = (size - r) & (size - 1)
			imms = ^(size<<1-1)&0x3f | (ones - 1)
			return n, immr, imms, true
		}
	}
	return 0, 0, 0, false
}

// DecodeLogicalImm expands an (N, immr, imms) bitmask immediate. It is the inverse of
// EncodeLogicalImm.
func DecodeLogicalImm(n, immr, imms uint32, is64 bool) (uint64, bool) {
	if n > 1 || immr > 63 || imms > 63 || (!is64 && n != 0) {
		return 0, false
	}
	combined := n<<6 | ^imms&0x3f
	if combined == 0 {
		return 0, false
	}
	length := uint32(bits.Len32(combined)) - 1
	if length < 1 {
		return 0, false
	}
	size := uint32(1) << length
	levels := size - 1
	s, r := imms&levels, immr&levels
	if s == levels {
		return 0, false
	}
	elem := rotr(uint64(1)<<(s+1)-1, r, size)
	v := elem
	for w := size; w < 64; w *= 2 {
		v |= v << w
	}
	if !is64 {
		v &= math.MaxUint32
	}
	return v, true
}

// rotr rotates the low size bits of v right by r.
func rotr(v uint64, r, size uint32) uint64 {
	if size == 64 {
		return bits.RotateLeft64(v, -int(r))
	}
	mask := uint64(1)<<size - 1
	v &= mask
	return (v>>r | v<<(size-r)) & mask
}

// wideImm finds the 16-bit chunk and its position (hw) for MOVZ and MOVK.
func wideImm(v uint64, is64 bool) (imm16, hw uint32, ok bool) {
	chunks := uint32(4)
	if !is64 {
		chunks = 2
	}
	for hw = 0; hw < chunks; hw++ {
		if v&^(0xffff<<(16*hw)) == 0 {
			return uint32(v >> (16 * hw) & 0xffff), hw, true
		}
	}
	return 0, 0, false
}

// immBits truncates an immediate to the width of the register, accepting values which are
// valid as either signed or unsigned.
func immBits(v int64, is64 bool) (uint64, bool) {
	if is64 {
		return uint64(v), true
	}
	if v < math.MinInt32 || v > math.MaxUint32 {
		return 0, false
	}
	return uint64(v) & math.MaxUint32, true
}

// stretchedImm packs a 64-bit value whose bytes are each 0x00 or 0xff into 8 bits, one
// per byte, for MOVI.
func stretchedImm(v uint64) (uint32, bool) {
	var imm uint32
	for i := uint(0); i < 8; i++ {
		switch byte(v >> (8 * i)) {
		case 0xff:
			imm |= 1 << i
		case 0:
		default:
			return 0, false
		}
	}
	return imm, true
}

// fp8Values holds the value of each 8-bit floating point immediate: a sign bit, a 3-bit
// exponent in the range -3 to 4 and a 4-bit fraction.
var fp8Values = func() (t [256]float64) {
	for i := range t {
		sign := 1.0
		if i&0x80 != 0 {
			sign = -1
		}
		exp := (i>>4)&3 + 1
		if i&0x40 != 0 {
			exp = (i>>4)&3 - 3
		}
		t[i] = sign * math.Ldexp(float64(16+i&15)/16, exp)
	}
	return
}()

// EncodeFP8 finds the 8-bit FMOV immediate for f.
func EncodeFP8(f float64) (uint32, bool) {
	for i, v := range fp8Values {
		if v == f {
			return uint32(i), true
		}
	}
	return 0, false
}

// DecodeFP8 expands an 8-bit FMOV immediate.
func DecodeFP8(imm8 uint8) float64 { return fp8Values[imm8] }
