package riscv

import "strings"

// matchKind identifies the argument shape accepted by a template slot.
type matchKind uint8

const (
	mX        matchKind = iota + 1 // x0-x31
	mXNZ                           // x1-x31
	mXNZSP                         // x1-x31 other than sp
	mXC                            // x8-x15
	mSP                            // sp
	mSReg                          // s0-s7
	mF                             // f0-f31
	mFC                            // f8-f15
	mImm                           // integer
	mMem                           // offset(xN)
	mMemC                          // offset(x8-x15)
	mMemSP                         // offset(sp)
	mAddr                          // (xN)
	mLabelMem                      // %pcrel_lo(label)(xN)
	mLabel                         // label reference
	mRM                            // rounding mode
	mCSR                           // CSR number
	mFence                         // fence set
	mRList                         // Zcmp register list
)

// matcher is a template slot. Optional slots may only be omitted at the end.
type matcher struct {
	kind matchKind
	opt  bool
}

func (m matcher) optional() matcher { m.opt = true; return m }

func (t *template) matchArgs(args []Arg) bool {
	if len(args) > len(t.args) {
		return false
	}
	for i, m := range t.args {
		if i >= len(args) {
			return m.opt
		}
		if !m.match(args[i]) {
			return false
		}
	}
	return true
}

func (m matcher) match(arg Arg) bool {
	switch m.kind {
	case mX, mXNZ, mXNZSP, mXC, mSP, mSReg, mF, mFC:
		r, ok := arg.(Reg)
		return ok && matchReg(r, m.kind)
	case mImm:
		_, ok := arg.(Imm)
		return ok
	case mMem, mMemC, mMemSP:
		mem, ok := arg.(Mem)
		return ok && matchReg(mem.Base, baseKinds[m.kind])
	case mAddr:
		mem, ok := arg.(Mem)
		return ok && mem.Offset == 0 && matchReg(mem.Base, mX)
	case mLabelMem:
		mem, ok := arg.(LabelMem)
		return ok && matchReg(mem.Base, mX)
	case mLabel:
		_, ok := arg.(Label)
		return ok
	case mRM:
		_, ok := arg.(RoundingMode)
		return ok
	case mCSR:
		_, ok := arg.(CSR)
		return ok
	case mFence:
		_, ok := arg.(FenceSet)
		return ok
	case mRList:
		_, ok := arg.(RList)
		return ok
	}
	return false
}

var baseKinds = map[matchKind]matchKind{mMem: mX, mMemC: mXC, mMemSP: mSP}

// matchReg checks the register file of r and, for static registers, the numbers allowed in
// the slot. Dynamic registers are checked by regAllowed when the instruction is encoded.
func matchReg(r Reg, m matchKind) bool {
	want := KindX
	if m == mF || m == mFC {
		want = KindF
	}
	if r.Kind() != want {
		return false
	}
	return r.IsDynamic() || regAllowed(r, m)
}

func regAllowed(r Reg, m matchKind) bool {
	n := r.Num()
	switch m {
	case mXNZ:
		return n != 0
	case mXNZSP:
		return n != 0 && n != 2
	case mXC, mFC:
		return n >= 8 && n <= 15
	case mSP:
		return n == 2
	case mSReg:
		return n == 8 || n == 9 || n >= 18 && n <= 23
	}
	return true
}

var matchNames = map[matchKind]string{
	mX: "xN", mXNZ: "xN!=x0", mXNZSP: "xN!=x0,sp", mXC: "x8-x15", mSP: "sp", mSReg: "s0-s7",
	mF: "fN", mFC: "f8-f15", mImm: "imm",
	mMem: "off(xN)", mMemC: "off(x8-x15)", mMemSP: "off(sp)", mAddr: "(xN)",
	mLabelMem: "%pcrel_lo(label)(xN)", mLabel: "label",
	mRM: "rm", mCSR: "csr", mFence: "iorw", mRList: "{ra, s0-sN}",
}

func (m matcher) String() string { return matchNames[m.kind] }

// form renders the template for diagnostics, as in "fadd.s fN, fN, fN{, rm}".
func (t *template) form(name string) string {
	var sb strings.Builder
	sb.WriteString(name)
	for i, m := range t.args {
		switch {
		case m.opt && i == 0:
			sb.WriteString(" {" + m.String() + "}")
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
