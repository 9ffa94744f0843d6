package aarch64

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

// RegKind is the family and width of a register.
type RegKind uint8

const (
	KindW   RegKind = iota + 1 // 32-bit general purpose; number 31 is WZR
	KindX                      // 64-bit general purpose; number 31 is XZR
	KindWSP                    // 32-bit stack pointer
	KindSP                     // 64-bit stack pointer
	KindB                      // 8-bit SIMD&FP scalar
	KindH                      // 16-bit SIMD&FP scalar
	KindS                      // 32-bit SIMD&FP scalar
	KindD                      // 64-bit SIMD&FP scalar
	KindQ                      // 128-bit SIMD&FP scalar
	KindV                      // SIMD&FP vector, arranged with Reg.Arr or indexed with Reg.Elem
)

var kindPrefix = [...]string{KindW: "w", KindX: "x", KindB: "b", KindH: "h", KindS: "s", KindD: "d", KindQ: "q", KindV: "v"}

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

// Get the number of the register. The zero registers and the stack pointers are numbered 31.
func (r Reg) Num() uint8 { return uint8(r) }

// Check if the register was built by Dyn.
func (r Reg) IsDynamic() bool { return r&dynamic != 0 }

func (r Reg) isGeneral() bool {
	switch r.Kind() {
	case KindW, KindX, KindWSP, KindSP:
		return true
	}
	return false
}

func (r Reg) String() string {
	k := r.Kind()
	switch {
	case r == 0:
		return "none"
	case k == KindWSP:
		return "wsp"
	case k == KindSP:
		return "sp"
	case k == KindW && r.Num() == 31:
		return "wzr"
	case k == KindX && r.Num() == 31:
		return "xzr"
	case int(k) < len(kindPrefix) && kindPrefix[k] != "":
		return fmt.Sprintf("%s%d", kindPrefix[k], r.Num())
	}
	return fmt.Sprintf("Reg(%#x)", uint32(r))
}

// Dyn builds a register of kind whose number is chosen at runtime, for example by a
// register allocator. The number is checked when an instruction using the register is
// encoded: general purpose and SIMD&FP registers are numbered 0 to 31, and the stack
// pointer kinds only accept 31.
func Dyn(kind RegKind, num int) Reg {
	n := uint32(0xff)
	if num >= 0 && num < 0xff {
		n = uint32(num)
	}
	return dynamic | Reg(kind)<<8 | Reg(n)
}

func (r Reg) validate() error {
	k := r.Kind()
	if k < KindW || k > KindV || r&^(dynamic|0xffff) != 0 {
		return errInvalidReg(r, "unknown register kind")
	}
	if r.Num() > 31 {
		return errInvalidReg(r, "register number out of range")
	}
	if (k == KindWSP || k == KindSP) && r.Num() != 31 {
		return errInvalidReg(r, "the stack pointer is numbered 31")
	}
	return nil
}

func errInvalidReg(r Reg, reason string) error {
	return errors.Wrapf(dynasm.ErrInvalidRegister, "%s (kind %d, number %d)", reason, r.Kind(), r.Num())
}

// register-building blocks
const (
	gpW Reg = Reg(KindW) << 8
	gpX Reg = Reg(KindX) << 8
	fpB Reg = Reg(KindB) << 8
	fpH Reg = Reg(KindH) << 8
	fpS Reg = Reg(KindS) << 8
	fpD Reg = Reg(KindD) << 8
	fpQ Reg = Reg(KindQ) << 8
	vec Reg = Reg(KindV) << 8
)

// General purpose registers
const (
	W0 = gpW | iota
	W1
	W2
	W3
	W4
	W5
	W6
	W7
	W8
	W9
	W10
	W11
	W12
	W13
	W14
	W15
	W16
	W17
	W18
	W19
	W20
	W21
	W22
	W23
	W24
	W25
	W26
	W27
	W28
	W29
	W30
	WZR
)

const (
	X0 = gpX | iota
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
	XZR
)

const (
	WSP = Reg(KindWSP)<<8 | 31
	SP  = Reg(KindSP)<<8 | 31

	IP0 = X16
	IP1 = X17
	FP  = X29
	LR  = X30
)

// SIMD&FP scalar registers
const (
	B0 = fpB | iota
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
	B10
	B11
	B12
	B13
	B14
	B15
	B16
	B17
	B18
	B19
	B20
	B21
	B22
	B23
	B24
	B25
	B26
	B27
	B28
	B29
	B30
	B31
)

const (
	H0 = fpH | iota
	H1
	H2
	H3
	H4
	H5
	H6
	H7
	H8
	H9
	H10
	H11
	H12
	H13
	H14
	H15
	H16
	H17
	H18
	H19
	H20
	H21
	H22
	H23
	H24
	H25
	H26
	H27
	H28
	H29
	H30
	H31
)

const (
	S0 = fpS | iota
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	S10
	S11
	S12
	S13
	S14
	S15
	S16
	S17
	S18
	S19
	S20
	S21
	S22
	S23
	S24
	S25
	S26
	S27
	S28
	S29
	S30
	S31
)

const (
	D0 = fpD | iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	D10
	D11
	D12
	D13
	D14
	D15
	D16
	D17
	D18
	D19
	D20
	D21
	D22
	D23
	D24
	D25
	D26
	D27
	D28
	D29
	D30
	D31
)

const (
	Q0 = fpQ | iota
	Q1
	Q2
	Q3
	Q4
	Q5
	Q6
	Q7
	Q8
	Q9
	Q10
	Q11
	Q12
	Q13
	Q14
	Q15
	Q16
	Q17
	Q18
	Q19
	Q20
	Q21
	Q22
	Q23
	Q24
	Q25
	Q26
	Q27
	Q28
	Q29
	Q30
	Q31
)

// SIMD&FP vector registers
const (
	V0 = vec | iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	V10
	V11
	V12
	V13
	V14
	V15
	V16
	V17
	V18
	V19
	V20
	V21
	V22
	V23
	V24
	V25
	V26
	V27
	V28
	V29
	V30
	V31
)
