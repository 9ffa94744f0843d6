package x64

import (
	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

func errBadMem(format string, args ...interface{}) error {
	return errors.Wrapf(dynasm.ErrInvalidRegister, format, args...)
}

// Go through the arguments, check for impossible to encode memory arguments, fill in displacement
// size information and return the effective address size
func (m *InstMatcher) sanitizeMemArg() (addrSize int8, err error) {
	if m.memOffset < 0 {
		return -1, nil
	}
	mem := &m.mem
	if mem.Seg != 0 && mem.Seg.Family() != REG_SEGMENT {
		return -1, errBadMem("%s is not a segment register", mem.Seg)
	}
	if addrSize, err = sanitizeMem(mem); err != nil {
		return
	}
	if d, ok := mem.Disp.(Rel); ok && d == 0 {
		mem.Disp = nil
	}
	if mem.Base != 0 && mem.Base.Family() == REG_RIP {
		// RIP-relative addressing always uses a 32-bit displacement
		switch d := mem.Disp.(type) {
		case nil:
			mem.Disp = Rel32(0)
		case Label:
			mem.Disp = d.Rel32()
		default:
			mem.Disp = Rel32(d.Int32())
		}
		return
	}
	if mem.Disp == nil {
		return
	}

	short := addrSize == 2
	switch d := mem.Disp.(type) {
	case Rel:
		switch {
		case int32(int8(d)) == int32(d):
			mem.Disp = Rel8(d)
		case short && int32(int16(d)) == int32(d):
			mem.Disp = Rel16(d)
		case short:
			return addrSize, errors.Wrapf(dynasm.ErrImmediateOutOfRange, "displacement %d does not fit 16-bit addressing", int32(d))
		default:
			mem.Disp = Rel32(d)
		}
	case Label:
		if d.size == 0 {
			if short {
				mem.Disp = d.Rel16()
			} else {
				mem.Disp = d.Rel32()
			}
		}
	}

	dispsz := mem.Disp.width()
	if short {
		if dispsz != 1 && dispsz != 2 {
			return addrSize, errBadMem("only 8/16-bit displacements are allowed with 16-bit addressing")
		}
	} else if dispsz != 1 && dispsz != 4 {
		return addrSize, errBadMem("only 8/32-bit displacements are allowed without 16-bit addressing")
	}
	return
}

// Validates that the base/index combination can actually be encoded and returns the effective address size.
// If the address size can't be determined (purely displacement, or VSIB without base), -1 is returned.
func sanitizeMem(mem *Mem) (int8, error) {
	b, i, scale := mem.Base, mem.Index, mem.Scale
	if scale < 1 {
		scale = 1
		mem.Scale = scale
	}
	bsz, bfam := b.width(), b.Family()
	isz, ifam := i.width(), i.Family()
	// figure out the addressing size/mode used.
	// size can be 16, 32, or 64-bit.
	// mode can be legacy, rip-relative, or vsib
	// note that rip-relative and vsib only support 32 and 64-bit
	size := uint8(0)
	family := uint8(0)
	vsibMode := false

	// figure out the addressing mode and size
	switch {
	case b == 0 && i == 0:
		return -1, nil
	case b != 0 && i == 0:
		size, family = bsz, bfam
	case b == 0 && i != 0:
		size, family = isz, ifam
	default:
		switch {
		case bfam == ifam:
			if bsz != isz {
				return -1, errBadMem("registers of differing sizes for base/index: %v/%v", bsz, isz)
			}
			size, family = bsz, bfam
		// allow only vsib addressing
		case b.isVector():
			vsibMode, size, family = true, isz, ifam
		case i.isVector():
			vsibMode, size, family = true, bsz, bfam
		default:
			return -1, errBadMem("register combination not supported for base/index: %s/%s", b, i)
		}
	}

	// filter out combinations that are impossible to encode
	switch family {
	case REG_RIP:
		if b != 0 && i != 0 {
			return -1, errBadMem("base and index registers not supported for RIP")
		}
	case REG_LEGACY:
		switch size {
		case 4, 8: // allowed
		case 2:
			if vsibMode {
				return -1, errBadMem("16-bit addressing is unsupported with VSIB mode")
			}
		default:
			return -1, errBadMem("unsupported address size for legacy register: %v", size)
		}
	case REG_XMM, REG_YMM:
		if b != 0 && i != 0 {
			return -1, errBadMem("base and index registers not supported for XMM/YMM")
		}
	default:
		return -1, errBadMem("unsupported register family for memory operation: %v", family)
	}

	if family == REG_RIP {
		if scale != 1 {
			return -1, errBadMem("scale is not supported for RIP-relative encoding")
		}
		if i != 0 {
			mem.Base = i
			mem.Index = 0
		}
		return int8(size), nil
	}

	// VSIB without base
	if family == REG_XMM || family == REG_YMM {
		if b != 0 {
			if scale != 1 {
				return -1, errBadMem("VSIB addressing requires the vector register as index")
			}
			mem.Index = b
			mem.Base = 0
		}
		if !validScale(mem.Scale) {
			return -1, errBadMem("invalid scale %d", mem.Scale)
		}
		return -1, nil
	}

	// VSIB with base
	if vsibMode {
		// we're guaranteed that the other register is a legacy register, either DWORD or QWORD size
		// so we just have to check if an index/base swap is necessary
		if b.isVector() {
			// try to swap if possible
			if scale == 1 {
				mem.Base, mem.Index = mem.Index, mem.Base
			} else {
				return -1, errBadMem("VSIB addressing requires a general purpose register as base")
			}
		}
		if !validScale(mem.Scale) {
			return -1, errBadMem("invalid scale %d", mem.Scale)
		}
		return int8(size), nil
	}

	// 16-bit legacy addressing
	if size == 2 {
		// 16-bit addressing has no concept of index
		if i != 0 && scale != 1 {
			return -1, errBadMem("16-bit addressing does not support a scaled index")
		}
		if b == 0 {
			b, i = i, 0
		}

		// the base register carries the r/m value of the combination
		var encodedBase Reg
		bn, in := b.Num(), i.Num()
		pair := func(x, y uint8) bool { return (bn == x && in == y) || (bn == y && in == x) }
		switch {
		case i != 0 && pair(BX.Num(), SI.Num()):
			encodedBase = AX
		case i != 0 && pair(BX.Num(), DI.Num()):
			encodedBase = CX
		case i != 0 && pair(BP.Num(), SI.Num()):
			encodedBase = DX
		case i != 0 && pair(BP.Num(), DI.Num()):
			encodedBase = BX
		case i == 0 && bn == SI.Num():
			encodedBase = SP
		case i == 0 && bn == DI.Num():
			encodedBase = BP
		case i == 0 && bn == BP.Num():
			encodedBase = SI
		case i == 0 && bn == BX.Num():
			encodedBase = DI
		default:
			if i != 0 {
				return -1, errBadMem("impossible 16-bit base/index combination: %s/%s", b, i)
			}
			return -1, errBadMem("impossible 16-bit base register: %s", b)
		}

		mem.Base, mem.Index, mem.Scale = encodedBase, 0, 1
		return int8(size), nil
	}

	// normal addressing

	// optimize indexes if a base is not present
	if b == 0 && i != 0 && !mem.NoSplit {
		switch scale {
		case 1:
			b, i = i, 0
			mem.Base, mem.Index = b, i
		case 2, 3, 5, 9:
			b, scale = i, scale-1
			mem.Base, mem.Scale = b, scale
		}
	}
	if !validScale(scale) {
		return -1, errBadMem("invalid scale %d", scale)
	}

	// RSP as index field can not be represented. Check if we can swap it with base
	if i != 0 && i.Num() == RSP.Num() {
		if b == 0 || b.Num() == RSP.Num() || scale != 1 {
			return -1, errBadMem("%s cannot be used as index", i)
		}
		mem.Base, mem.Index, mem.Scale = i, b, 1
		b, i = mem.Base, mem.Index
	}

	// RSP or R12 as base without index (add an index so we escape into SIB)
	if i == 0 && (b.Num() == RSP.Num() || b.Num() == R12.Num()) {
		mem.Scale = 1
		switch size {
		case 4:
			mem.Index = ESP
		default:
			mem.Index = RSP
		}
	}

	// RBP as base field just requires a mandatory MOD_DISP8, so we only process that at encoding time
	return int8(size), nil
}

func validScale(scale uint8) bool {
	return scale == 1 || scale == 2 || scale == 4 || scale == 8
}
