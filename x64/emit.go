package x64

import (
	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

const (
	modDirect uint8 = 3
	modNoDisp uint8 = 0 // normal addressing
	modDisp8  uint8 = 1
	modDisp32 uint8 = 2
)

// segment override prefixes, indexed by segment register number
var segPrefixes = [...]byte{0x26, 0x2e, 0x36, 0x3e, 0x64, 0x65}

func (e *Encoder) checkRex(rexW bool) (bool, error) {
	match := &e.match
	argp := match.argp
	plen := len(argp)
	args := match.args
	argc := len(args)
	requiresRex := rexW
	requiresNoRex := false

	// scan arg-pattern:
	for pi, ai := 0, 0; pi+1 < plen && ai < argc; pi, ai = pi+2, ai+1 {
		t, arg := argp[pi], args[ai]

		if t >= 'a' && t <= 'z' {
			switch v := arg.(type) {
			case Reg:
				if v.Family() == REG_HIGHBYTE {
					requiresNoRex = true
				} else if v.IsExtended() || v.isLowByte() {
					requiresRex = true
				}
			case memArgPlaceholder:
				mem := match.mem
				if mem.Base != 0 {
					requiresRex = requiresRex || mem.Base.IsExtended()
				}
				if mem.Index != 0 {
					requiresRex = requiresRex || mem.Index.IsExtended()
				}
			}
		}
	}

	if requiresRex && requiresNoRex {
		return requiresRex, errors.Wrap(dynasm.ErrInvalidRegister, "high-byte register combined with extended registers or 64-bit operand size")
	}

	return requiresRex, nil
}

// regNums returns the numbers of the ModRM.reg register and the base and index of the r/m operand.
func (e *Encoder) regNums(r, rm Arg) (regN, indexN, baseN uint8) {
	if reg, ok := r.(Reg); ok {
		regN = reg.Num()
	}
	switch v := rm.(type) {
	case Reg:
		baseN = v.Num()
	case memArgPlaceholder:
		mem := &e.match.mem
		if mem.Base != 0 {
			baseN = mem.Base.Num()
		}
		if mem.Index != 0 {
			indexN = mem.Index.Num()
		}
	}
	return
}

func (e *Encoder) emitRex(buf *buffer, r, rm Arg, rexW bool) {
	regN, indexN, baseN := e.regNums(r, rm)
	bitW := uint8(0)
	if rexW {
		bitW = 1
	}
	rex := byte(0x40 | (bitW << 3) | (regN&8)>>1 | (indexN&8)>>2 | (baseN&8)>>3)
	buf.Byte(rex)
}

func emitMSIB(buf *buffer, mode, r, rm uint8) {
	buf.Byte(byte(mode<<6) | byte((r&7)<<3) | byte(rm&7))
}

func (e *Encoder) emitVexXop(buf *buffer, mapSel, pref uint8, rexW, vexL bool) {
	match := &e.match
	regN, indexN, baseN := e.regNums(match.r, match.m)

	var vvvv uint8
	if r, ok := match.v.(Reg); ok {
		vvvv = r.Num()
	}

	b1 := (mapSel & 0x1f) | ((^regN)&8)<<4 | ((^indexN)&8)<<3 | ((^baseN)&8)<<2

	rexWb := uint8(0)
	if rexW {
		rexWb = 1
	}
	vexLb := uint8(0)
	if vexL {
		vexLb = 1
	}
	b2 := (pref & 0x3) | rexWb<<7 | ((^vvvv)&0xf)<<3 | vexLb<<2

	if hasFlag(match.enc.flags, flags.VEX_OP) && b1&0x7f == 0x61 && b2&0x80 == 0 {
		// 2-byte vex
		buf.Byte2(0xc5, (b1&0x80)|(b2&0x7f))
		return
	}

	if hasFlag(match.enc.flags, flags.VEX_OP) {
		buf.Byte(0xc4)
	} else {
		buf.Byte(0x8f)
	}

	buf.Byte2(b1, b2)
}

// emitDisp writes a displacement field of size bytes. Label references become fields
// patched with kind.
func emitDisp(buf *buffer, d DispArg, size uint8, kind dynasm.RelocationKind) {
	if l, ok := d.(Label); ok {
		buf.Field(size, kind, l.target, int64(l.disp))
		return
	}
	var v int32
	if d != nil {
		v = d.Int32()
	}
	switch size {
	case 1:
		buf.Int8(int8(v))
	case 2:
		buf.Int16(int16(v))
	default:
		buf.Int32(v)
	}
}
