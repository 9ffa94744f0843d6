package riscv

import (
	"fmt"
	"strings"

	"github.com/wdamron/dynasm"
)

// Arg represents an instruction argument.
type Arg interface {
	isArg()
}

// Imm is an integer immediate.
//
// Imm implements Arg.
type Imm int64

func (i Imm) isArg() {}

// Mem is a memory argument, offset(base).
//
// Mem implements Arg.
type Mem struct {
	Base   Reg
	Offset int64
}

func (m Mem) isArg() {}

func (m Mem) String() string {
	if m.Offset == 0 {
		return fmt.Sprintf("(%s)", m.Base)
	}
	return fmt.Sprintf("%d(%s)", m.Offset, m.Base)
}

// Ptr builds the memory argument offset(base).
func Ptr(base Reg, offset int64) Mem { return Mem{Base: base, Offset: offset} }

// Label references a label, optionally displaced by Addend bytes.
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

// LabelMem is a memory argument whose 12-bit offset holds the low bits of a label's
// PC-relative displacement, as in %pcrel_lo(label)(base).
//
// LabelMem implements Arg.
type LabelMem struct {
	Base  Reg
	Label Label
}

func (m LabelMem) isArg() {}

// PtrLabel builds a memory argument offset by the low 12 bits of the displacement to l.
func PtrLabel(base Reg, l Label) LabelMem { return LabelMem{Base: base, Label: l} }

// RoundingMode is the rounding mode of a floating point instruction. Instructions written
// without one use DYN, the mode held in the frm CSR.
//
// RoundingMode implements Arg.
type RoundingMode uint8

func (m RoundingMode) isArg() {}

const (
	RNE RoundingMode = 0 // to nearest, ties to even
	RTZ RoundingMode = 1 // towards zero
	RDN RoundingMode = 2 // down
	RUP RoundingMode = 3 // up
	RMM RoundingMode = 4 // to nearest, ties to max magnitude
	DYN RoundingMode = 7 // dynamic
)

func (m RoundingMode) String() string {
	switch m {
	case RNE:
		return "rne"
	case RTZ:
		return "rtz"
	case RDN:
		return "rdn"
	case RUP:
		return "rup"
	case RMM:
		return "rmm"
	case DYN:
		return "dyn"
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// FenceSet is the predecessor or successor set of a fence: device input and output and
// memory reads and writes.
//
// FenceSet implements Arg.
type FenceSet uint8

func (s FenceSet) isArg() {}

const (
	FenceW FenceSet = 1 << iota
	FenceR
	FenceO
	FenceI

	FenceRW   = FenceR | FenceW
	FenceIORW = FenceI | FenceO | FenceR | FenceW
)

func (s FenceSet) String() string {
	var sb strings.Builder
	for i, c := range "iorw" {
		if s&(FenceI>>i) != 0 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// CSR is a control and status register number.
//
// CSR implements Arg.
type CSR uint16

func (c CSR) isArg() {}

const (
	FFLAGS   CSR = 0x001
	FRM      CSR = 0x002
	FCSR     CSR = 0x003
	CYCLE    CSR = 0xc00
	TIME     CSR = 0xc01
	INSTRET  CSR = 0xc02
	CYCLEH   CSR = 0xc80
	TIMEH    CSR = 0xc81
	INSTRETH CSR = 0xc82
	MSTATUS  CSR = 0x300
	MISA     CSR = 0x301
	MIE      CSR = 0x304
	MTVEC    CSR = 0x305
	MSCRATCH CSR = 0x340
	MEPC     CSR = 0x341
	MCAUSE   CSR = 0x342
	MTVAL    CSR = 0x343
	MIP      CSR = 0x344
	MHARTID  CSR = 0xf14
)

// RList is the register list of a Zcmp push or pop: ra, optionally followed by s0 and
// the last saved register of the range s0-sN. For example RList{RA, S0, S3} is
// {ra, s0-s3}. The range s0-s10 has no encoding.
//
// RList implements Arg.
type RList []Reg

func (l RList) isArg() {}

func (l RList) String() string {
	switch len(l) {
	case 0:
		return "{}"
	case 1:
		return fmt.Sprintf("{%s}", l[0])
	case 2:
		return fmt.Sprintf("{%s, %s}", l[0], l[1])
	}
	return fmt.Sprintf("{%s, %s-%s}", l[0], l[1], l[len(l)-1])
}
