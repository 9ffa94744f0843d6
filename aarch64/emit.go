package aarch64

import (
	"math"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

type flatKind uint8

const (
	fNone flatKind = iota
	fReg
	fImm
	fFloat
	fMod
	fCond
	fLabel
)

// flatArg is a primitive argument consumed by one encoding command.
type flatArg struct {
	kind  flatKind
	reg   Reg
	arr   Arrangement
	elem  ElemSize
	lane  uint8
	count uint8
	imm   int64
	fimm  float64
	mod   Mod
	cond  Cond
	label Label
}

// flatten lowers matched arguments into the primitive arguments consumed by the template's
// commands, checking register numbers and normalizing register lists.
func flatten(dst []flatArg, t *template, args []Arg) ([]flatArg, error) {
	for i, m := range t.args {
		if i >= len(args) {
			dst = append(dst, flatArg{})
			continue
		}
		switch a := args[i].(type) {
		case Reg:
			if err := checkReg(a, m.kind); err != nil {
				return nil, err
			}
			dst = append(dst, flatArg{kind: fReg, reg: a})
		case Vec:
			if err := a.Reg.validate(); err != nil {
				return nil, err
			}
			dst = append(dst, flatArg{kind: fReg, reg: a.Reg, arr: a.Arr})
		case Elem:
			if err := a.Reg.validate(); err != nil {
				return nil, err
			}
			if a.Lane >= a.Size.lanes() {
				return nil, errors.Wrapf(dynasm.ErrImmediateOutOfRange, "lane %d of %s elements", a.Lane, a.Size)
			}
			dst = append(dst, flatArg{kind: fReg, reg: a.Reg, elem: a.Size, lane: a.Lane})
		case VList:
			for j, vv := range a {
				if err := vv.Reg.validate(); err != nil {
					return nil, err
				}
				if vv.Reg.Num() != (a[0].Reg.Num()+uint8(j))&31 {
					return nil, errors.Wrapf(dynasm.ErrInvalidRegister, "registers of %s are not consecutive", a)
				}
			}
			dst = append(dst, flatArg{kind: fReg, reg: a[0].Reg, arr: a[0].Arr, count: uint8(len(a))})
		case Imm:
			dst = append(dst, flatArg{kind: fImm, imm: int64(a)})
		case FImm:
			dst = append(dst, flatArg{kind: fFloat, fimm: float64(a)})
		case Mod:
			dst = append(dst, flatArg{kind: fMod, mod: a})
		case Cond:
			dst = append(dst, flatArg{kind: fCond, cond: a})
		case Label:
			dst = append(dst, flatArg{kind: fLabel, label: a})
		case SysReg:
			dst = append(dst, flatArg{kind: fImm, imm: int64(a)})
		case Barrier:
			dst = append(dst, flatArg{kind: fImm, imm: int64(a)})
		case Mem:
			if err := a.Base.validate(); err != nil {
				return nil, err
			}
			dst = append(dst, flatArg{kind: fReg, reg: a.Base})
			switch m.kind {
			case mMemIdx:
				if err := a.Index.validate(); err != nil {
					return nil, err
				}
				dst = append(dst, flatArg{kind: fReg, reg: a.Index})
				if a.Mod.Kind != 0 {
					dst = append(dst, flatArg{kind: fMod, mod: a.Mod})
				} else {
					dst = append(dst, flatArg{})
				}
			case mMemBase:
			default:
				dst = append(dst, flatArg{kind: fImm, imm: a.Offset})
			}
		default:
			return nil, errors.Errorf("unsupported argument type %T", a)
		}
	}
	return dst, nil
}

func checkReg(r Reg, m matchKind) error {
	if err := r.validate(); err != nil {
		return err
	}
	if r.IsDynamic() && r.Num() == 31 && (m == mWSP || m == mXSP) && (r.Kind() == KindW || r.Kind() == KindX) {
		return errInvalidReg(r, "the zero register can not be used in place of the stack pointer")
	}
	return nil
}

// cmdOp is an encoding step. Most steps consume one flat argument and insert its bits into
// the instruction word; steps marked as peeking read the next argument without consuming it.
type cmdOp uint8

const (
	cReg        cmdOp = iota + 1 // register number at pos
	cRegPeek                     // register number of the next argument at pos (peeks)
	cUImm                        // unsigned immediate >> scale, bits wide at pos
	cSImm                        // signed immediate >> scale, bits wide at pos
	cAddImm                      // 12-bit immediate with optional lsl #12
	cLogical                     // bitmask immediate; aux is the register width
	cWide                        // MOVZ/MOVN/MOVK 16-bit immediate with optional lsl
	cMovWide                     // mov alias of MOVZ (aux 32/64) or MOVN (aux 33/65)
	cShift                       // optional shift: type at 22, amount at 10; aux is the width
	cExtend                      // optional extend: option at 13, amount at 10; aux is the default option
	cMemIndex                    // index register at 16 and its extend, scaled by scale
	cCond                        // condition at pos
	cCondInv                     // inverted condition at pos
	cRel                         // label reference; aux is the RelocKind
	cBfx                         // lsb and width as immr and imms of an extract; aux is the width
	cBfi                         // lsb and width as immr and imms of an insert; aux is the width
	cLslImm                      // shift as immr and imms of UBFM; aux is the width
	cLsrImm                      // shift as immr; aux is the width
	cFP8                         // 8-bit floating point immediate at pos
	cStretched                   // 64-bit byte mask immediate as abc:defgh
	cVImm8                       // 8-bit immediate as abc:defgh
	cQ                           // Q bit of the next argument's arrangement at pos (peeks)
	cSize                        // element size of the next argument's arrangement at pos (peeks)
	cSz                          // sz bit of a floating point arrangement at pos (peeks)
	cArrImm5                     // imm5 selecting the element size of the next argument (peeks)
	cElemImm5                    // element register at pos with its imm5 at 16
	cList                        // first register of a list at pos with the multiple structure opcode
	cListPost                    // post-index immediate, equal to the bytes transferred by the list
	cTestBit                     // bit number split into b5 and b40; aux is the width
	cSkip                        // consume an argument without encoding it
)

type command struct {
	op    cmdOp
	pos   uint8
	bits  uint8
	scale uint8
	aux   uint32
}

// encoding accumulates one instruction word.
type encoding struct {
	name string
	word uint32
	args []flatArg
	next int
	refs []dynasm.Ref
	list int // bytes transferred by the last register list
}

func (e *encoding) peek() flatArg {
	if e.next < len(e.args) {
		return e.args[e.next]
	}
	return flatArg{}
}

func (e *encoding) pop() flatArg {
	a := e.peek()
	e.next++
	return a
}

func (e *encoding) rangeErr(v int64, what string) error {
	return errors.Wrapf(dynasm.ErrImmediateOutOfRange, "%s: %s %d", e.name, what, v)
}

func (e *encoding) alignErr(v int64, scale uint8) error {
	return errors.Wrapf(dynasm.ErrMisalignedTarget, "%s: %d is not a multiple of %d", e.name, v, 1<<scale)
}

func (e *encoding) run(cmds []command) error {
	for _, c := range cmds {
		if err := e.step(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoding) step(c command) error {
	switch c.op {
	case cReg:
		e.word |= uint32(e.pop().reg.Num()&31) << c.pos
	case cRegPeek:
		e.word |= uint32(e.peek().reg.Num()&31) << c.pos
	case cUImm, cSImm:
		v := e.pop().imm
		if v&(1<<c.scale-1) != 0 {
			return e.alignErr(v, c.scale)
		}
		f := v >> c.scale
		if c.op == cUImm && !dynasm.FitsUnsigned(f, uint(c.bits)) || c.op == cSImm && !dynasm.FitsSigned(f, uint(c.bits)) {
			return e.rangeErr(v, "immediate")
		}
		e.word |= uint32(f) & (1<<c.bits - 1) << c.pos
	case cAddImm:
		v, mod := e.pop().imm, e.pop()
		sh := uint32(0)
		switch {
		case mod.kind == fMod && mod.mod.Amount == 12:
			sh = 1
		case mod.kind == fMod && mod.mod.Amount != 0:
			return e.rangeErr(int64(mod.mod.Amount), "shift")
		case mod.kind == fNone && v >= 4096 && v&0xfff == 0:
			sh, v = 1, v>>12
		}
		if !dynasm.FitsUnsigned(v, 12) {
			return e.rangeErr(v, "immediate")
		}
		e.word |= sh<<22 | uint32(v)<<10
	case cLogical:
		v := e.pop().imm
		is64 := c.aux == 64
		u, ok := immBits(v, is64)
		if !ok {
			return e.rangeErr(v, "immediate")
		}
		n, immr, imms, ok := EncodeLogicalImm(u, is64)
		if !ok {
			return errors.Wrapf(dynasm.ErrImmediateOutOfRange, "%s: %#x is not a bitmask immediate", e.name, u)
		}
		e.word |= n<<22 | immr<<16 | imms<<10
	case cWide:
		v, mod := e.pop().imm, e.pop()
		if !dynasm.FitsUnsigned(v, 16) {
			return e.rangeErr(v, "immediate")
		}
		hw := uint32(0)
		if mod.kind == fMod {
			amount := uint32(mod.mod.Amount)
			if amount%16 != 0 || amount/16 >= c.aux/16 {
				return e.rangeErr(int64(amount), "shift")
			}
			hw = amount / 16
		}
		e.word |= uint32(v)<<5 | hw<<21
	case cMovWide:
		v := e.pop().imm
		is64 := c.aux&^1 == 64
		u, _ := immBits(v, is64)
		if c.aux&1 != 0 {
			u = ^u
			if !is64 {
				u &= math.MaxUint32
			}
		}
		imm16, hw, ok := wideImm(u, is64)
		if !ok {
			return e.rangeErr(v, "immediate")
		}
		e.word |= imm16<<5 | hw<<21
	case cShift:
		mod := e.pop()
		if mod.kind != fMod {
			break
		}
		if uint32(mod.mod.Amount) >= c.aux {
			return e.rangeErr(int64(mod.mod.Amount), "shift")
		}
		e.word |= uint32(mod.mod.Kind-ModLSL)<<22 | uint32(mod.mod.Amount)<<10
	case cExtend:
		mod := e.pop()
		option := c.aux
		if mod.kind == fMod {
			if mod.mod.Amount > 4 {
				return e.rangeErr(int64(mod.mod.Amount), "extend amount")
			}
			if mod.mod.Kind != ModLSL {
				option = mod.mod.Kind.extendOption()
			}
			e.word |= uint32(mod.mod.Amount) << 10
		}
		e.word |= option << 13
	case cMemIndex:
		return e.memIndex(c.scale)
	case cCond:
		e.word |= uint32(e.pop().cond&15) << c.pos
	case cCondInv:
		e.word |= uint32(e.pop().cond.Invert()&15) << c.pos
	case cRel:
		l := e.pop().label
		e.refs = append(e.refs, dynasm.Ref{Target: l.Target, Addend: l.Addend, Rel: NewReloc(RelocKind(c.aux))})
	case cBfx, cBfi:
		lsb, width := e.pop().imm, e.pop().imm
		size := int64(c.aux)
		if lsb < 0 || lsb >= size {
			return e.rangeErr(lsb, "lsb")
		}
		if width < 1 || lsb+width > size {
			return e.rangeErr(width, "width")
		}
		immr, imms := lsb, lsb+width-1
		if c.op == cBfi {
			immr, imms = (size-lsb)%size, width-1
		}
		e.word |= uint32(immr)<<16 | uint32(imms)<<10
	case cLslImm, cLsrImm:
		sh := e.pop().imm
		size := int64(c.aux)
		if sh < 0 || sh >= size {
			return e.rangeErr(sh, "shift")
		}
		if c.op == cLsrImm {
			e.word |= uint32(sh) << 16
			break
		}
		e.word |= uint32((size-sh)%size)<<16 | uint32(size-1-sh)<<10
	case cFP8:
		f := e.pop().fimm
		imm8, ok := EncodeFP8(f)
		if !ok {
			return errors.Wrapf(dynasm.ErrImmediateOutOfRange, "%s: %v is not an 8-bit floating point immediate", e.name, f)
		}
		e.word |= imm8 << c.pos
	case cStretched:
		v := e.pop().imm
		imm8, ok := stretchedImm(uint64(v))
		if !ok {
			return errors.Wrapf(dynasm.ErrImmediateOutOfRange, "%s: %#x has bytes other than 0x00 and 0xff", e.name, uint64(v))
		}
		e.word |= abcdefgh(imm8)
	case cVImm8:
		v := e.pop().imm
		if v < -128 || v > 255 {
			return e.rangeErr(v, "immediate")
		}
		e.word |= abcdefgh(uint32(v) & 0xff)
	case cQ:
		e.word |= e.peek().arr.q() << c.pos
	case cSize:
		e.word |= e.peek().arr.size() << c.pos
	case cSz:
		e.word |= (e.peek().arr.size() & 1) << c.pos
	case cArrImm5:
		e.word |= 1 << e.peek().arr.size() << 16
	case cElemImm5:
		a := e.pop()
		e.word |= uint32(a.reg.Num()&31)<<c.pos | (1<<a.elem|uint32(a.lane)<<(a.elem+1))<<16
	case cList:
		a := e.pop()
		opcode := [...]uint32{1: 0x7, 2: 0xa, 3: 0x6, 4: 0x2}[a.count]
		e.word |= uint32(a.reg.Num()&31)<<c.pos | opcode<<12
		e.list = int(a.count) * a.arr.Bytes()
	case cListPost:
		v := e.pop().imm
		if v != int64(e.list) {
			return errors.Wrapf(dynasm.ErrImmediateOutOfRange, "%s: post-index %d must equal the %d bytes transferred", e.name, v, e.list)
		}
	case cTestBit:
		v := e.pop().imm
		if v < 0 || v >= int64(c.aux) {
			return e.rangeErr(v, "bit number")
		}
		e.word |= uint32(v>>5)<<31 | uint32(v&31)<<19
	case cSkip:
		e.pop()
	}
	return nil
}

// memIndex encodes the index register of a register-offset load or store with its extend
// option and S bit. A W index must be extended with UXTW or SXTW; an X index may be shifted
// with LSL or extended with SXTX. The amount, when given, is 0 or the log2 of the access size.
func (e *encoding) memIndex(scale uint8) error {
	index, mod := e.pop(), e.pop()
	isW := index.reg.Kind() == KindW
	option := uint32(0b011)
	if mod.kind == fMod {
		switch k := mod.mod.Kind; {
		case isW && (k == ModUXTW || k == ModSXTW), !isW && k == ModSXTX:
			option = k.extendOption()
		case !isW && k == ModLSL:
		default:
			return errors.Wrapf(dynasm.ErrOperandMismatch, "%s: %s index can not be modified by %s", e.name, index.reg, k)
		}
	} else if isW {
		return errors.Wrapf(dynasm.ErrOperandMismatch, "%s: %s index must be extended with uxtw or sxtw", e.name, index.reg)
	}
	var s uint32
	if mod.kind == fMod && !mod.mod.noAmount {
		switch {
		case mod.mod.Amount == scale:
			s = 1
		case mod.mod.Amount != 0:
			return e.rangeErr(int64(mod.mod.Amount), "index shift")
		}
	}
	e.word |= uint32(index.reg.Num()&31)<<16 | option<<13 | s<<12
	return nil
}

// abcdefgh splits an 8-bit SIMD immediate into bits 16-18 and 5-9.
func abcdefgh(imm8 uint32) uint32 { return (imm8>>5&7)<<16 | (imm8&31)<<5 }
