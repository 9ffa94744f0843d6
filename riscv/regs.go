package riscv

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

// RegKind is the register file of a register.
type RegKind uint8

const (
	KindX RegKind = iota + 1 // integer
	KindF                    // floating point
)

// Reg is a register argument.
//
//	[0..7] bits hold the number
//	[8..15] bits hold the kind
//	bit 16 marks a dynamic register
//
// The zero Reg is not a register. Reg implements Arg.
type Reg uint32

const dynamic Reg = 1 << 16

func (r Reg) isArg() {}

// Get the kind of the register.
func (r Reg) Kind() RegKind { return RegKind(r >> 8) }

// Get the number of the register.
func (r Reg) Num() uint8 { return uint8(r) }

// Check if the register was built by Dyn.
func (r Reg) IsDynamic() bool { return r&dynamic != 0 }

var (
	xNames = [32]string{"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2", "s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6"}
	fNames = [32]string{"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7", "fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5", "fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7", "fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11"}
)

// String returns the ABI name of the register.
func (r Reg) String() string {
	switch {
	case r == 0:
		return "none"
	case r.Num() > 31:
	case r.Kind() == KindX:
		return xNames[r.Num()]
	case r.Kind() == KindF:
		return fNames[r.Num()]
	}
	return fmt.Sprintf("Reg(%#x)", uint32(r))
}

// Dyn builds a register of kind whose number is chosen at runtime, for example by a
// register allocator. The number is checked when an instruction using the register is
// encoded, against the register file and the restrictions of the instruction: compressed
// instructions only reach x8-x15 in most fields, and the embedded profiles only have x0-x15.
func Dyn(kind RegKind, num int) Reg {
	n := uint32(0xff)
	if num >= 0 && num < 0xff {
		n = uint32(num)
	}
	return dynamic | Reg(kind)<<8 | Reg(n)
}

func (r Reg) validate(embedded bool) error {
	k := r.Kind()
	if k < KindX || k > KindF || r&^(dynamic|0xffff) != 0 {
		return errInvalidReg(r, "unknown register kind")
	}
	if r.Num() > 31 {
		return errInvalidReg(r, "register number out of range")
	}
	if embedded && k == KindX && r.Num() > 15 {
		return errInvalidReg(r, "the embedded profiles only have x0-x15")
	}
	return nil
}

func errInvalidReg(r Reg, reason string) error {
	return errors.Wrapf(dynasm.ErrInvalidRegister, "%s: %s", r, reason)
}

const (
	intReg   Reg = Reg(KindX) << 8
	floatReg Reg = Reg(KindF) << 8
)

// Integer registers
const (
	X0 = intReg | iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30
	X31
)

// Integer registers by ABI name
const (
	ZERO = X0
	RA   = X1
	SP   = X2
	GP   = X3
	TP   = X4
	T0   = X5
	T1   = X6
	T2   = X7
	S0   = X8
	S1   = X9
	A0   = X10
	A1   = X11
	A2   = X12
	A3   = X13
	A4   = X14
	A5   = X15
	A6   = X16
	A7   = X17
	S2   = X18
	S3   = X19
	S4   = X20
	S5   = X21
	S6   = X22
	S7   = X23
	S8   = X24
	S9   = X25
	S10  = X26
	S11  = X27
	T3   = X28
	T4   = X29
	T5   = X30
	T6   = X31
	FP   = S0
)

// Floating point registers
const (
	F0 = floatReg | iota
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	F25
	F26
	F27
	F28
	F29
	F30
	F31
)

// Floating point registers by ABI name
const (
	FT0  = F0
	FT1  = F1
	FT2  = F2
	FT3  = F3
	FT4  = F4
	FT5  = F5
	FT6  = F6
	FT7  = F7
	FS0  = F8
	FS1  = F9
	FA0  = F10
	FA1  = F11
	FA2  = F12
	FA3  = F13
	FA4  = F14
	FA5  = F15
	FA6  = F16
	FA7  = F17
	FS2  = F18
	FS3  = F19
	FS4  = F20
	FS5  = F21
	FS6  = F22
	FS7  = F23
	FS8  = F24
	FS9  = F25
	FS10 = F26
	FS11 = F27
	FT8  = F28
	FT9  = F29
	FT10 = F30
	FT11 = F31
)
