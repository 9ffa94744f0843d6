package aarch64

import (
	"fmt"
	"strings"
)

// matchKind identifies the argument shape accepted by a template slot.
type matchKind uint8

const (
	mW    matchKind = iota + 1 // W0-W30, WZR
	mX                         // X0-X30, XZR
	mWSP                       // W0-W30, WSP
	mXSP                       // X0-X30, SP
	mB                         // B0-B31
	mH                         // H0-H31
	mS                         // S0-S31
	mD                         // D0-D31
	mQ                         // Q0-Q31
	mV                         // arranged vector, arrangement in mask
	mElem                      // vector element, element sizes in mask
	mList                      // vector list, arrangements in mask
	mImm                       // any integer
	mWideImm                   // integer encodable by MOVZ
	mWideInvImm                // integer encodable by MOVN
	mLogicalImm                // integer encodable as a bitmask immediate
	mFImm                      // floating point
	mFZero                     // #0.0
	mMod                       // shift or extend, kinds in mask
	mCond                      // any condition
	mCondInv                   // condition other than AL and NV
	mLabel                     // label reference
	mMemU12                    // [Xn|SP{, #uimm12 << aux}]
	mMemImm                    // [Xn|SP{, #simm}]
	mMemPre                    // [Xn|SP, #simm]!
	mMemPost                   // [Xn|SP], #simm
	mMemIdx                    // [Xn|SP, Wm|Xm{, extend}]
	mMemBase                   // [Xn|SP]
	mSysReg                    // system register
	mBarrier                   // barrier option
)

// matcher is a template slot. For mV, aux set to sameArr requires the arrangement of the
// first vector argument.
type matcher struct {
	kind matchKind
	mask uint16
	aux  uint8
	opt  bool
}

const sameArr = 1

func (m matcher) optional() matcher { m.opt = true; return m }

// matchArgs checks args against the template slots. Optional slots may only be omitted
// at the end.
func (t *template) matchArgs(args []Arg) bool {
	if len(args) > len(t.args) {
		return false
	}
	firstArr := -1
	for i, m := range t.args {
		if i >= len(args) {
			return m.opt
		}
		if !m.match(args[i]) {
			return false
		}
		if vv, ok := args[i].(Vec); ok && m.kind == mV {
			if firstArr < 0 {
				firstArr = int(vv.Arr)
			} else if m.aux == sameArr && int(vv.Arr) != firstArr {
				return false
			}
		}
	}
	return true
}

func (m matcher) match(arg Arg) bool {
	switch m.kind {
	case mW, mX, mWSP, mXSP, mB, mH, mS, mD, mQ:
		r, ok := arg.(Reg)
		return ok && m.matchReg(r)
	case mV:
		vv, ok := arg.(Vec)
		return ok && vv.Reg.Kind() == KindV && m.mask&(1<<vv.Arr) != 0
	case mElem:
		e, ok := arg.(Elem)
		return ok && e.Reg.Kind() == KindV && m.mask&(1<<e.Size) != 0
	case mList:
		l, ok := arg.(VList)
		if !ok || len(l) == 0 || len(l) > 4 {
			return false
		}
		for _, vv := range l {
			if vv.Reg.Kind() != KindV || vv.Arr != l[0].Arr || m.mask&(1<<vv.Arr) == 0 {
				return false
			}
		}
		return true
	case mImm:
		_, ok := arg.(Imm)
		return ok
	case mWideImm, mWideInvImm, mLogicalImm:
		i, ok := arg.(Imm)
		if !ok {
			return false
		}
		is64 := m.aux == 64
		v, ok := immBits(int64(i), is64)
		if !ok {
			return false
		}
		switch m.kind {
		case mWideImm:
			_, _, ok = wideImm(v, is64)
		case mWideInvImm:
			inv := ^v
			if !is64 {
				inv &= 0xffffffff
			}
			_, _, ok = wideImm(inv, is64)
		default:
			_, _, _, ok = EncodeLogicalImm(v, is64)
		}
		return ok
	case mFImm:
		_, ok := arg.(FImm)
		return ok
	case mFZero:
		switch a := arg.(type) {
		case FImm:
			return a == 0
		case Imm:
			return a == 0
		}
		return false
	case mMod:
		mod, ok := arg.(Mod)
		return ok && m.mask&(1<<mod.Kind) != 0
	case mCond:
		_, ok := arg.(Cond)
		return ok
	case mCondInv:
		c, ok := arg.(Cond)
		return ok && c < AL
	case mLabel:
		_, ok := arg.(Label)
		return ok
	case mMemU12, mMemImm, mMemPre, mMemPost, mMemIdx, mMemBase:
		mem, ok := arg.(Mem)
		return ok && m.matchMem(mem)
	case mSysReg:
		_, ok := arg.(SysReg)
		return ok
	case mBarrier:
		_, ok := arg.(Barrier)
		return ok
	}
	return false
}

func (m matcher) matchReg(r Reg) bool {
	k, zr := r.Kind(), r.Num() == 31 && !r.IsDynamic()
	switch m.kind {
	case mW:
		return k == KindW
	case mX:
		return k == KindX
	case mWSP:
		return (k == KindW && !zr) || k == KindWSP
	case mXSP:
		return (k == KindX && !zr) || k == KindSP
	case mB:
		return k == KindB
	case mH:
		return k == KindH
	case mS:
		return k == KindS
	case mD:
		return k == KindD
	case mQ:
		return k == KindQ
	}
	return false
}

func (m matcher) matchMem(mem Mem) bool {
	if k := mem.Base.Kind(); k != KindX && k != KindSP {
		return false
	}
	if m.kind == mMemIdx {
		k := mem.Index.Kind()
		return (k == KindW || k == KindX) && mem.Mode == Offset && mem.Offset == 0
	}
	if mem.Index != 0 || mem.Mod.Kind != 0 {
		return false
	}
	switch m.kind {
	case mMemU12:
		scale := int64(1) << m.aux
		return mem.Mode == Offset && mem.Offset >= 0 && mem.Offset%scale == 0 && mem.Offset/scale < 4096
	case mMemImm:
		return mem.Mode == Offset
	case mMemPre:
		return mem.Mode == PreIndex
	case mMemPost:
		return mem.Mode == PostIndex
	case mMemBase:
		return mem.Mode == Offset && mem.Offset == 0
	}
	return false
}

var regMatchNames = map[matchKind]string{
	mW: "Wn", mX: "Xn", mWSP: "Wn|WSP", mXSP: "Xn|SP",
	mB: "Bn", mH: "Hn", mS: "Sn", mD: "Dn", mQ: "Qn",
}

func (m matcher) String() string {
	var str string
	switch m.kind {
	case mV:
		str = "Vn." + arrList(m.mask)
	case mElem:
		var sizes []string
		for e := ElemB; e <= ElemD; e++ {
			if m.mask&(1<<e) != 0 {
				sizes = append(sizes, e.String())
			}
		}
		str = "Vn." + strings.Join(sizes, "|") + "[i]"
	case mList:
		str = "{Vn." + arrList(m.mask) + ", ...}"
	case mImm, mWideImm, mWideInvImm, mLogicalImm:
		str = "#imm"
	case mFImm:
		str = "#fimm"
	case mFZero:
		str = "#0.0"
	case mMod:
		var kinds []string
		for k := ModLSL; k <= ModSXTX; k++ {
			if m.mask&(1<<k) != 0 {
				kinds = append(kinds, k.String())
			}
		}
		str = strings.Join(kinds, "|") + " #n"
	case mCond, mCondInv:
		str = "cond"
	case mLabel:
		str = "label"
	case mMemU12:
		str = fmt.Sprintf("[Xn|SP{, #uimm*%d}]", 1<<m.aux)
	case mMemImm:
		str = "[Xn|SP{, #simm}]"
	case mMemPre:
		str = "[Xn|SP, #simm]!"
	case mMemPost:
		str = "[Xn|SP], #simm"
	case mMemIdx:
		str = "[Xn|SP, Wm|Xm{, extend #n}]"
	case mMemBase:
		str = "[Xn|SP]"
	case mSysReg:
		str = "sysreg"
	case mBarrier:
		str = "option"
	default:
		str = regMatchNames[m.kind]
	}
	return str
}

func arrList(mask uint16) string {
	var arrs []string
	for a := Arr8B; a <= Arr2D; a++ {
		if mask&(1<<a) != 0 {
			arrs = append(arrs, a.String())
		}
	}
	if len(arrs) == 1 {
		return arrs[0]
	}
	return "<" + strings.Join(arrs, "|") + ">"
}

// form renders the template for diagnostics, as in "add Xn|SP, Xn|SP, #imm{, lsl #n}".
func (t *template) form(name string) string {
	var sb strings.Builder
	sb.WriteString(name)
	for i, m := range t.args {
		switch {
		case m.opt:
			sb.WriteString("{, " + m.String() + "}")
		case i == 0:
			sb.WriteString(" " + m.String())
		default:
			sb.WriteString(", " + m.String())
		}
	}
	return sb.String()
}
