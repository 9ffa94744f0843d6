package riscv

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
	fLabel
	fList
)

// flatArg is a primitive argument consumed by one encoding command.
type flatArg struct {
	kind  flatKind
	reg   Reg
	imm   int64
	label Label
	list  RList
}

// flatten lowers matched arguments into the primitive arguments consumed by the template's
// commands, checking registers against the profile and the slot.
func flatten(dst []flatArg, t *template, args []Arg, p Profile) ([]flatArg, error) {
	for i, m := range t.args {
		if i >= len(args) {
			dst = append(dst, flatArg{})
			continue
		}
		switch a := args[i].(type) {
		case Reg:
			if err := checkReg(a, m.kind, p); err != nil {
				return nil, err
			}
			dst = append(dst, flatArg{kind: fReg, reg: a})
		case Mem:
			if err := checkReg(a.Base, baseKinds[m.kind], p); err != nil {
				return nil, err
			}
			dst = append(dst, flatArg{kind: fReg, reg: a.Base})
			if m.kind != mAddr {
				dst = append(dst, flatArg{kind: fImm, imm: a.Offset})
			}
		case LabelMem:
			if err := checkReg(a.Base, mX, p); err != nil {
				return nil, err
			}
			dst = append(dst, flatArg{kind: fReg, reg: a.Base}, flatArg{kind: fLabel, label: a.Label})
		case Imm:
			dst = append(dst, flatArg{kind: fImm, imm: int64(a)})
		case Label:
			dst = append(dst, flatArg{kind: fLabel, label: a})
		case RoundingMode:
			if a > RMM && a != DYN {
				return nil, errors.Wrapf(dynasm.ErrImmediateOutOfRange, "invalid rounding mode %d", uint8(a))
			}
			dst = append(dst, flatArg{kind: fImm, imm: int64(a)})
		case CSR:
			dst = append(dst, flatArg{kind: fImm, imm: int64(a)})
		case FenceSet:
			dst = append(dst, flatArg{kind: fImm, imm: int64(a)})
		case RList:
			for _, r := range a {
				if err := r.validate(p.Embedded); err != nil {
					return nil, err
				}
			}
			dst = append(dst, flatArg{kind: fList, list: a})
		default:
			return nil, errors.Errorf("unsupported argument type %T", a)
		}
	}
	return dst, nil
}

func checkReg(r Reg, m matchKind, p Profile) error {
	if err := r.validate(p.Embedded); err != nil {
		return err
	}
	if !regAllowed(r, m) {
		return errInvalidReg(r, "register not allowed as "+matchNames[m])
	}
	return nil
}

// cmdOp is an encoding step. Most steps consume one flat argument and insert its bits into
// one of the template's words; steps marked as peeking read the next argument without
// consuming it.
type cmdOp uint8

const (
	cReg      cmdOp = iota + 1 // register number at pos
	cRegPeek                   // register number of the next argument at pos (peeks)
	cRegC                      // compressed register number, x8-x15 as 0-7, at pos
	cSReg                      // s0-s7 as 0-7 at pos; aux 1 requires a different register than the last
	cImm                       // immediate into field
	cUpper                     // upper immediate of lui or auipc, as a full 32-bit value
	cRel                       // label reference; aux is the RelocKind
	cRM                        // optional rounding mode at 12, DYN when omitted
	cFence                     // optional fence set at pos, iorw when omitted
	cRList                     // Zcmp register list at 4
	cStackAdj                  // Zcmp stack adjustment at 2, negative when aux is 1
	cSkip                      // consume an argument without encoding it
)

type command struct {
	op   cmdOp
	word uint8
	pos  uint8
	f    *field
	aux  uint32
}

// encoding accumulates the words of one template.
type encoding struct {
	name  string
	xlen  int
	words [2]uint32
	args  []flatArg
	next  int
	refs  []dynasm.Ref
	rlist uint32
	lastS int
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

func (e *encoding) run(cmds []command) error {
	for _, c := range cmds {
		if err := e.step(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoding) step(c command) error {
	w := &e.words[c.word]
	switch c.op {
	case cReg:
		*w |= uint32(e.pop().reg.Num()&31) << c.pos
	case cRegPeek:
		*w |= uint32(e.peek().reg.Num()&31) << c.pos
	case cRegC:
		*w |= uint32(e.pop().reg.Num()-8) & 7 << c.pos
	case cSReg:
		n := int(e.pop().reg.Num())
		s := n - 8
		if n >= 18 {
			s = n - 16
		}
		if c.aux == 1 && s == e.lastS {
			return errors.Wrapf(dynasm.ErrInvalidRegister, "%s: source and destination must differ", e.name)
		}
		e.lastS = s
		*w |= uint32(s) << c.pos
	case cImm:
		bits, err := e.imm(c.f, e.pop().imm)
		if err != nil {
			return err
		}
		*w |= bits
	case cUpper:
		v := e.pop().imm
		if e.xlen == 32 && v > math.MaxInt32 && v <= math.MaxUint32 {
			v = int64(int32(uint32(v)))
		}
		bits, err := e.imm(&fieldU, v)
		if err != nil {
			return err
		}
		*w |= bits
	case cRel:
		l := e.pop().label
		e.refs = append(e.refs, dynasm.Ref{Target: l.Target, Addend: l.Addend, Rel: NewReloc(RelocKind(c.aux))})
	case cRM:
		rm := uint32(DYN)
		if a := e.pop(); a.kind == fImm {
			rm = uint32(a.imm)
		}
		*w |= rm << 12
	case cFence:
		set := uint32(FenceIORW)
		if a := e.pop(); a.kind == fImm {
			set = uint32(a.imm) & 15
		}
		*w |= set << c.pos
	case cRList:
		v, err := rlistValue(e.pop().list)
		if err != nil {
			return errors.Wrap(err, e.name)
		}
		e.rlist = v
		*w |= v << 4
	case cStackAdj:
		spimm, err := e.stackAdj(e.pop().imm, c.aux == 1)
		if err != nil {
			return err
		}
		*w |= spimm << 2
	case cSkip:
		e.pop()
	}
	return nil
}

// imm checks v against f and returns its bits.
func (e *encoding) imm(f *field, v int64) (uint32, error) {
	if v&(1<<f.scale-1) != 0 {
		return 0, errors.Wrapf(dynasm.ErrMisalignedTarget, "%s: %d is not a multiple of %d", e.name, v, 1<<f.scale)
	}
	if f.nonzero && v == 0 {
		return 0, e.rangeErr(v, "immediate must be nonzero, got")
	}
	if f.signed && !dynasm.FitsSigned(v, uint(f.bits)) || !f.signed && !dynasm.FitsUnsigned(v, uint(f.bits)) {
		return 0, e.rangeErr(v, "immediate")
	}
	return f.place(uint32(v)), nil
}

// rlistValue returns the encoding of a Zcmp register list: {ra} is 4, {ra, s0} is 5 and
// {ra, s0-sN} is 5+N, except that {ra, s0-s11} is 15 and {ra, s0-s10} has no encoding.
func rlistValue(l RList) (uint32, error) {
	if len(l) == 0 || len(l) > 3 || l[0].Kind() != KindX || l[0].Num() != 1 {
		return 0, errors.Wrapf(dynasm.ErrInvalidRegister, "register list %s must start with ra", l)
	}
	if len(l) == 1 {
		return 4, nil
	}
	if l[1].Kind() != KindX || l[1].Num() != 8 {
		return 0, errors.Wrapf(dynasm.ErrInvalidRegister, "register list %s must continue with s0", l)
	}
	if len(l) == 2 {
		return 5, nil
	}
	last := l[2]
	var s int
	switch n := int(last.Num()); {
	case last.Kind() != KindX:
		s = -1
	case n == 9:
		s = 1
	case n >= 18 && n <= 27:
		s = n - 16
	default:
		s = -1
	}
	switch {
	case s < 1:
		return 0, errors.Wrapf(dynasm.ErrInvalidRegister, "register list %s must end with a saved register", l)
	case s == 10:
		return 0, errors.Wrapf(dynasm.ErrInvalidRegister, "register list %s can not be encoded; use s11", l)
	case s == 11:
		return 15, nil
	}
	return uint32(5 + s), nil
}

// stackAdjBase returns the bytes needed to save the registers of an rlist value, rounded up
// to 16.
func stackAdjBase(rlist uint32, xlen int) int64 {
	if xlen == 32 {
		switch {
		case rlist <= 7:
			return 16
		case rlist <= 11:
			return 32
		case rlist <= 14:
			return 48
		}
		return 64
	}
	if rlist == 15 {
		return 112
	}
	return 16 * int64((rlist-4)/2+1)
}

// stackAdj encodes the stack adjustment of a push (negative) or pop as spimm.
func (e *encoding) stackAdj(v int64, negative bool) (uint32, error) {
	adj := v
	if negative {
		adj = -v
	}
	base := stackAdjBase(e.rlist, e.xlen)
	extra := adj - base
	if extra < 0 || extra%16 != 0 || extra > 48 {
		return 0, errors.Wrapf(dynasm.ErrImmediateOutOfRange, "%s: stack adjustment of %d bytes, want %d to %d in steps of 16", e.name, adj, base, base+48)
	}
	return uint32(extra / 16), nil
}
