package aarch64

import (
	"fmt"
	"strings"

	"github.com/wdamron/dynasm"
)

// Arg represents an instruction argument.
type Arg interface {
	isArg()
}

// Arrangement is the element size and lane count of a vector register.
type Arrangement uint8

const (
	Arr8B Arrangement = iota
	Arr16B
	Arr4H
	Arr8H
	Arr2S
	Arr4S
	Arr1D
	Arr2D
)

var arrNames = [...]string{"8b", "16b", "4h", "8h", "2s", "4s", "1d", "2d"}

func (a Arrangement) String() string {
	if int(a) < len(arrNames) {
		return arrNames[a]
	}
	return fmt.Sprintf("Arrangement(%d)", uint8(a))
}

// q returns the Q bit selecting 128-bit vectors.
func (a Arrangement) q() uint32 { return uint32(a) & 1 }

// size returns the log2 of the element size in bytes.
func (a Arrangement) size() uint32 { return uint32(a) >> 1 }

// Bytes returns the width of the vector in bytes.
func (a Arrangement) Bytes() int { return 8 << a.q() }

func arrMask(arrs ...Arrangement) uint16 {
	var m uint16
	for _, a := range arrs {
		m |= 1 << a
	}
	return m
}

// ElemSize is the size of a vector element selected by a lane index.
type ElemSize uint8

const (
	ElemB ElemSize = iota
	ElemH
	ElemS
	ElemD
)

func (e ElemSize) String() string { return [...]string{"b", "h", "s", "d"}[e&3] }

// lanes returns the number of elements of this size in a 128-bit register.
func (e ElemSize) lanes() uint8 { return 16 >> e }

// Vec is a vector register with an arrangement, as in v1.4s.
//
// Vec implements Arg.
type Vec struct {
	Reg Reg
	Arr Arrangement
}

func (v Vec) isArg() {}

func (v Vec) String() string { return fmt.Sprintf("%s.%s", v.Reg, v.Arr) }

// Arr arranges a vector register, as in V1.Arr(Arr4S) for v1.4s.
func (r Reg) Arr(a Arrangement) Vec { return Vec{Reg: r, Arr: a} }

// Elem is a single element of a vector register, as in v1.s[2].
//
// Elem implements Arg.
type Elem struct {
	Reg  Reg
	Size ElemSize
	Lane uint8
}

func (e Elem) isArg() {}

func (e Elem) String() string { return fmt.Sprintf("%s.%s[%d]", e.Reg, e.Size, e.Lane) }

// Elem selects a vector element, as in V1.Elem(ElemS, 2) for v1.s[2].
func (r Reg) Elem(size ElemSize, lane uint8) Elem { return Elem{Reg: r, Size: size, Lane: lane} }

// VList is a list of consecutive vector registers sharing an arrangement, as in
// {v0.16b, v1.16b}. Lists may wrap from v31 to v0.
//
// VList implements Arg.
type VList []Vec

func (l VList) isArg() {}

func (l VList) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// List builds a list of count consecutive vector registers starting at first.
func List(first Reg, arr Arrangement, count int) VList {
	l := make(VList, count)
	for i := range l {
		l[i] = Vec{Reg: first&^0xff | (first+Reg(i))&31, Arr: arr}
	}
	return l
}

// Imm is an integer immediate argument.
//
// Imm implements Arg.
type Imm int64

func (i Imm) isArg() {}

// FImm is a floating point immediate argument.
//
// FImm implements Arg.
type FImm float64

func (f FImm) isArg() {}

// ModKind selects a shift or extend applied to a register argument.
type ModKind uint8

const (
	ModLSL ModKind = iota + 1
	ModLSR
	ModASR
	ModROR
	ModUXTB
	ModUXTH
	ModUXTW
	ModUXTX
	ModSXTB
	ModSXTH
	ModSXTW
	ModSXTX
)

var modNames = [...]string{"", "lsl", "lsr", "asr", "ror", "uxtb", "uxth", "uxtw", "uxtx", "sxtb", "sxth", "sxtw", "sxtx"}

func (k ModKind) String() string {
	if int(k) < len(modNames) {
		return modNames[k]
	}
	return fmt.Sprintf("ModKind(%d)", uint8(k))
}

func (k ModKind) isShift() bool  { return k >= ModLSL && k <= ModROR }
func (k ModKind) isExtend() bool { return k >= ModUXTB && k <= ModSXTX }

// extendOption returns the 3-bit option field of an extend, LSL excluded.
func (k ModKind) extendOption() uint32 { return uint32(k - ModUXTB) }

// Mod is a shift or extend argument, as in lsl #12 or uxtw #2. Shifts and extends
// follow the register they modify.
//
// Mod implements Arg.
type Mod struct {
	Kind   ModKind
	Amount uint8
	// set when an extend is written without an amount
	noAmount bool
}

func (m Mod) isArg() {}

func (m Mod) String() string {
	if m.noAmount {
		return m.Kind.String()
	}
	return fmt.Sprintf("%s #%d", m.Kind, m.Amount)
}

func LSL(n uint8) Mod { return Mod{Kind: ModLSL, Amount: n} }
func LSR(n uint8) Mod { return Mod{Kind: ModLSR, Amount: n} }
func ASR(n uint8) Mod { return Mod{Kind: ModASR, Amount: n} }
func ROR(n uint8) Mod { return Mod{Kind: ModROR, Amount: n} }

// Extends take an optional amount; without one the amount is zero.
func UXTB(n ...uint8) Mod { return extend(ModUXTB, n) }
func UXTH(n ...uint8) Mod { return extend(ModUXTH, n) }
func UXTW(n ...uint8) Mod { return extend(ModUXTW, n) }
func UXTX(n ...uint8) Mod { return extend(ModUXTX, n) }
func SXTB(n ...uint8) Mod { return extend(ModSXTB, n) }
func SXTH(n ...uint8) Mod { return extend(ModSXTH, n) }
func SXTW(n ...uint8) Mod { return extend(ModSXTW, n) }
func SXTX(n ...uint8) Mod { return extend(ModSXTX, n) }

func extend(k ModKind, n []uint8) Mod {
	if len(n) == 0 {
		return Mod{Kind: k, noAmount: true}
	}
	return Mod{Kind: k, Amount: n[0]}
}

// AddrMode selects how a memory argument's offset is applied to its base.
type AddrMode uint8

const (
	// [base, #offset]
	Offset AddrMode = iota
	// [base, #offset]!: the base is updated before the access
	PreIndex
	// [base], #offset: the base is updated after the access
	PostIndex
)

// Mem is a memory-reference argument. Base is an X register or SP. Index is either zero
// or a W or X register, optionally modified by Mod (LSL, UXTW, SXTW or SXTX); an index
// excludes an offset.
//
// Mem implements Arg.
type Mem struct {
	Base   Reg
	Index  Reg
	Mod    Mod
	Offset int64
	Mode   AddrMode
}

func (m Mem) isArg() {}

func (m Mem) String() string {
	switch {
	case m.Index != 0 && m.Mod.Kind != 0:
		return fmt.Sprintf("[%s, %s, %s]", m.Base, m.Index, m.Mod)
	case m.Index != 0:
		return fmt.Sprintf("[%s, %s]", m.Base, m.Index)
	case m.Mode == PreIndex:
		return fmt.Sprintf("[%s, #%d]!", m.Base, m.Offset)
	case m.Mode == PostIndex:
		return fmt.Sprintf("[%s], #%d", m.Base, m.Offset)
	case m.Offset != 0:
		return fmt.Sprintf("[%s, #%d]", m.Base, m.Offset)
	}
	return fmt.Sprintf("[%s]", m.Base)
}

// Ptr references [base, #offset].
func Ptr(base Reg, offset int64) Mem { return Mem{Base: base, Offset: offset} }

// Pre references [base, #offset]! with pre-index writeback.
func Pre(base Reg, offset int64) Mem { return Mem{Base: base, Offset: offset, Mode: PreIndex} }

// Post references [base], #offset with post-index writeback.
func Post(base Reg, offset int64) Mem { return Mem{Base: base, Offset: offset, Mode: PostIndex} }

// Idx references [base, index{, mod}].
func Idx(base, index Reg, mod ...Mod) Mem {
	m := Mem{Base: base, Index: index}
	if len(mod) > 0 {
		m.Mod = mod[0]
	}
	return m
}

// Label is a label-reference argument for branches, literal loads and address
// computations. Addend is added to the label's address.
//
// Label implements Arg.
type Label struct {
	Target dynasm.Target
	Addend int64
}

func (l Label) isArg() {}

// To references the label selected by t.
func To(t dynasm.Target) Label { return Label{Target: t} }

// Add returns a reference n bytes past the label.
func (l Label) Add(n int64) Label { l.Addend += n; return l }

// Barrier is the option of a DMB, DSB or ISB instruction.
//
// Barrier implements Arg.
type Barrier uint8

func (b Barrier) isArg() {}

const (
	OSHLD Barrier = 1
	OSHST Barrier = 2
	OSH   Barrier = 3
	NSHLD Barrier = 5
	NSHST Barrier = 6
	NSH   Barrier = 7
	ISHLD Barrier = 9
	ISHST Barrier = 10
	ISH   Barrier = 11
	LD    Barrier = 13
	ST    Barrier = 14
	SY    Barrier = 15
)

// SysReg is a system register for MRS and MSR, packed as o0:op1:CRn:CRm:op2.
//
// SysReg implements Arg.
type SysReg uint16

func (r SysReg) isArg() {}

// SystemReg builds a system register from its op0, op1, CRn, CRm and op2 fields.
// op0 must be 2 or 3.
func SystemReg(op0, op1, crn, crm, op2 uint8) SysReg {
	return SysReg(uint16(op0&1)<<14 | uint16(op1&7)<<11 | uint16(crn&15)<<7 | uint16(crm&15)<<3 | uint16(op2&7))
}

var (
	NZCV       = SystemReg(3, 3, 4, 2, 0)
	DAIF       = SystemReg(3, 3, 4, 2, 1)
	FPCR       = SystemReg(3, 3, 4, 4, 0)
	FPSR       = SystemReg(3, 3, 4, 4, 1)
	CTR_EL0    = SystemReg(3, 3, 0, 0, 1)
	DCZID_EL0  = SystemReg(3, 3, 0, 0, 7)
	TPIDR_EL0  = SystemReg(3, 3, 13, 0, 2)
	CNTFRQ_EL0 = SystemReg(3, 3, 14, 0, 0)
	CNTVCT_EL0 = SystemReg(3, 3, 14, 0, 2)
	MIDR_EL1   = SystemReg(3, 0, 0, 0, 0)
)
