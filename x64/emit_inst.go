package x64

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

func errBadSize(inst Inst, format string, args ...interface{}) error {
	return errors.Wrapf(ErrNoMatch, "%s: "+format, append([]interface{}{inst.Name()}, args...)...)
}

// emitInst encodes the matched instruction into e.b.
func (e *Encoder) emitInst(prefix byte) error {
	buf := &e.b
	match := &e.match
	addrSize, opSize := match.addrSize, match.opSize
	inst := match.inst
	enc := match.enc
	encFlags := enc.flags
	op := enc.op[:enc.oplen()]
	x86 := e.mode == X86
	vex := hasFlag(encFlags, flags.VEX_OP) || hasFlag(encFlags, flags.XOP_OP)

	switch prefix {
	case 0:
	case lockPrefix:
		if !hasFlag(encFlags, flags.LOCK) {
			return errors.Wrapf(ErrNoMatch, "LOCK prefix unsupported for %s", inst.Name())
		}
	case repPrefix:
		if !hasFlag(encFlags, flags.REP|flags.REPE) {
			return errors.Wrapf(ErrNoMatch, "REP/REPE/REPZ prefix unsupported for %s", inst.Name())
		}
	case repnePrefix:
		if !hasFlag(encFlags, flags.REPE) {
			return errors.Wrapf(ErrNoMatch, "REPNE/REPNZ prefix unsupported for %s", inst.Name())
		}
	default:
		return errors.Errorf("unknown prefix %#x", prefix)
	}

	// determine if we need an address size override prefix
	prefAddr := (!x86 && addrSize == 4) || (x86 && addrSize == 2)

	var prefMod byte
	var prefSize bool
	var rexW bool
	var vexL bool

	// determine if size prefixes are necessary
	if hasFlag(encFlags, flags.AUTO_SIZE|flags.AUTO_NO32|flags.AUTO_REXW|flags.AUTO_VEXL) {
		if opSize < 0 {
			return errBadSize(inst, "no wildcard sizes")
		}

		switch {
		case hasFlag(encFlags, flags.AUTO_NO32):
			switch {
			case opSize == 2:
				prefSize = true
			case opSize == 8 && !x86, opSize == 4 && x86:
				// ok
			default:
				return errBadSize(inst, "unsupported operand size %d in %s mode", opSize, e.mode)
			}
		case hasFlag(encFlags, flags.AUTO_REXW):
			switch opSize {
			case 8:
				rexW = true
			case 4:
			default:
				return errBadSize(inst, "%d-byte arguments are not supported", opSize)
			}
		case hasFlag(encFlags, flags.AUTO_VEXL):
			switch opSize {
			case 32:
				vexL = true
			case 16:
			default:
				return errBadSize(inst, "bad operand size %d for AUTO_VEXL", opSize)
			}
		default:
			switch opSize {
			case 2:
				prefSize = true
			case 8:
				rexW = true
			case 4:
			default:
				return errBadSize(inst, "bad operand size %d", opSize)
			}
		}
	}

	prefSize = prefSize || hasFlag(encFlags, flags.WORD_SIZE|flags.PREF_66)
	rexW = rexW || hasFlag(encFlags, flags.WITH_REXW)
	vexL = vexL || hasFlag(encFlags, flags.WITH_VEXL)
	prefAddr = prefAddr || hasFlag(encFlags, flags.PREF_67)

	switch {
	case hasFlag(encFlags, flags.PREF_F0):
		prefMod = 0xf0
	case hasFlag(encFlags, flags.PREF_F2):
		prefMod = 0xf2
	case hasFlag(encFlags, flags.PREF_F3):
		prefMod = 0xf3
	}

	needRex, err := e.checkRex(rexW)
	if err != nil {
		return err
	}
	if needRex && x86 && !vex {
		return errors.Wrapf(dynasm.ErrInvalidRegister, "%s requires a REX prefix, which is unavailable in 32-bit mode", inst.Name())
	}

	var immOp byte
	var hasImmOp bool
	if hasFlag(encFlags, flags.IMM_OP) {
		immOp = op[len(op)-1]
		op = op[:len(op)-1]
		hasImmOp = true
	}

	if prefix != 0 {
		buf.Byte(prefix)
	}
	if match.memOffset >= 0 && match.mem.Seg != 0 {
		buf.Byte(segPrefixes[match.mem.Seg.Num()])
	}
	if prefAddr {
		buf.Byte(0x67)
	}

	if vex {
		var pref uint8
		switch {
		case prefSize:
			pref = 1
		case prefMod == 0xf3:
			pref = 2
		case prefMod == 0xf2:
			pref = 3
		}
		// map_sel is stored in the first byte of the opcode
		mapSel := uint8(op[0])
		op = op[1:]
		e.emitVexXop(buf, mapSel, pref, rexW, vexL)
	} else {
		if prefMod != 0 {
			buf.Byte(prefMod)
		}
		if prefSize {
			buf.Byte(0x66)
		}
		if needRex {
			e.emitRex(buf, match.r, match.m, rexW)
		}
	}

	// if rm is embedded in the last opcode byte, push it here
	if hasFlag(encFlags, flags.SHORT_ARG) {
		last := op[len(op)-1]
		op = op[:len(op)-1]
		buf.Bytes(op)

		reg, ok := match.m.(Reg)
		if !ok {
			return errors.Errorf("bad formatting data for %s", inst.Name())
		}
		match.m = nil
		buf.Byte(last + byte(reg.Num())&7)
	} else {
		buf.Bytes(op)
	}

	if match.m != nil {
		// the ModRM.reg field holds either a register or an opcode extension
		rNum := uint8(enc.reg())
		if r, ok := match.r.(Reg); ok {
			rNum = r.Num()
		}

		if r2, ok := match.m.(Reg); ok {
			// Direct ModRM addressing
			emitMSIB(buf, modDirect, rNum, r2.Num())
		} else {
			// Indirect ModRM (+SIB) addressing
			e.emitMem(buf, rNum, addrSize == 2)
		}
	}

	// opcode encoded after the displacement
	if hasImmOp {
		buf.Byte(immOp)
	}

	imms := match.imms

	// register in immediate argument
	if match.i != nil {
		ireg := match.i.(Reg)
		b := ireg.Num() << 4

		if len(imms) > 0 {
			// if immediates are present, the register argument will be merged into the
			// first immediate byte.
			imm, ok := imms[0].(Imm8)
			if !ok {
				return errors.Errorf("bad formatting data for %s", inst.Name())
			}
			imms = imms[1:]
			b = b | (uint8(imm) & 0xf)
		}
		buf.Byte(byte(b))
	}

	// immediates
	for _, arg := range imms {
		switch v := arg.(type) {
		case AddrArg:
			// patched with the absolute address of the target
			buf.Field(v.size, dynasm.AbsToRel, v.target, v.addend)
		case ImmArg:
			switch v.width() {
			case 1:
				buf.Int8(int8(v.Int64()))
			case 2:
				buf.Int16(int16(v.Int64()))
			case 4:
				buf.Int32(int32(v.Int64()))
			case 8:
				buf.Int64(v.Int64())
			}
		case Label:
			switch v.size {
			case 1, 2, 4:
			default:
				return errors.Wrapf(dynasm.ErrImpossibleRelocation, "invalid label displacement size %d for %s", v.size, inst.Name())
			}
			buf.Field(v.size, v.kind(), v.target, int64(v.disp))
		case RelArg:
			emitDisp(buf, v, v.width(), dynasm.Relative)
		}
	}

	return nil
}

// emitMem encodes the ModRM, SIB and displacement for the memory argument.
func (e *Encoder) emitMem(buf *buffer, r uint8, mode16 bool) {
	m := &e.match.mem
	x86 := e.mode == X86
	dispWidth := uint8(0)
	if m.Disp != nil {
		dispWidth = m.Disp.width()
	}

	if mode16 {
		// 16-bit mode: the index/base combination has been encoded in the base register.
		// this register is guaranteed to be present.
		mode := modNoDisp
		switch {
		case dispWidth == 1:
			mode = modDisp8
		case dispWidth != 0:
			mode = modDisp32
		case m.Base.Num() == 6:
			// [bp] can only be encoded with a displacement
			mode = modDisp8
		}

		// only need a mod.r/m byte for 16-bit addressing
		emitMSIB(buf, mode, r, m.Base.Num())

		switch mode {
		case modDisp8:
			emitDisp(buf, m.Disp, 1, dynasm.AbsToRel)
		case modDisp32:
			emitDisp(buf, m.Disp, 2, dynasm.AbsToRel)
		}
		return
	}

	if m.Base != 0 && m.Base.Family() == REG_RIP {
		emitMSIB(buf, modNoDisp, r, 5)
		kind := dynasm.Relative
		if l, ok := m.Disp.(Label); ok {
			kind = l.kind()
		}
		emitDisp(buf, m.Disp, 4, kind)
		return
	}

	// normal addressing, including VSIB
	base, index := m.Base, m.Index
	noBase := base == 0
	mode := modDisp32
	switch {
	case noBase:
		// mode_nodisp if no base is to be encoded. note that in these scenarions a 32-bit disp has to be emitted
		mode = modNoDisp
	case dispWidth == 0 && base.Num()&7 == 5:
		// RBP and R13 can only be encoded as base if a displacement is present.
		mode = modDisp8
	case dispWidth == 0:
		mode = modNoDisp
	case dispWidth == 1:
		mode = modDisp8
	}

	// if there's an index we need to escape into the SIB byte
	switch {
	case index != 0:
		baseNum := uint8(5)
		if !noBase {
			baseNum = base.Num()
		}
		emitMSIB(buf, mode, r, 4)
		emitMSIB(buf, uint8(bits.TrailingZeros8(m.Scale)), index.Num(), baseNum)
	case !noBase:
		emitMSIB(buf, mode, r, base.Num())
	case x86:
		// absolute disp32
		emitMSIB(buf, modNoDisp, r, 5)
	default:
		// absolute disp32 (r/m=5 would be RIP-relative)
		emitMSIB(buf, modNoDisp, r, 4)
		emitMSIB(buf, 0, 4, 5)
	}

	switch {
	case noBase || mode == modDisp32:
		emitDisp(buf, m.Disp, 4, dynasm.AbsToRel)
	case mode == modDisp8:
		emitDisp(buf, m.Disp, 1, dynasm.AbsToRel)
	}
}
