package x64

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

// Reg is a register argument with a specific width and family. All registers have a number
// which distinguishes them within their family, with the exception of the IP/EIP/RIP registers.
//
//	[0..3] bits hold the number
//	[8..15] bits hold the family
//	[16..21] bits hold the width in bytes
//
// Reg implements RegArg.
type Reg uint32

var _ RegArg = Reg(0)

func (r Reg) isArg() {}
func (r Reg) isReg() {}

// Get the family for the register.
//
// If the register is valid, the return value will be REG_LEGACY, REG_RIP, REG_HIGHBYTE, REG_FP,
// REG_MMX, REG_XMM, REG_YMM, REG_SEGMENT, REG_CONTROL, REG_DEBUG or REG_BOUND.
func (r Reg) Family() uint8 { return uint8(r >> 8) }

// Get the number which distinguishes the register within its family. The IP/EIP/RIP registers
// have no meaningful number, so they will return 0.
func (r Reg) Num() uint8 { return uint8(r) & 0xf }

// Get the width of the register in bytes.
func (r Reg) Width() uint8 { return r.width() }
func (r Reg) width() uint8 { return uint8(r>>16) & 0x3f }

// Check if the register is numbered 8 or higher. The IP/EIP/RIP registers have no meaningful number,
// so they will return false.
func (r Reg) IsExtended() bool { return r.Num() > 7 }

// isLowByte reports whether r is SPL, BPL, SIL or DIL, which are only reachable with a REX prefix.
func (r Reg) isLowByte() bool {
	return r.Family() == REG_LEGACY && r.width() == 1 && r.Num() >= 4 && r.Num() <= 7
}

func (r Reg) isVector() bool { return r.Family() == REG_XMM || r.Family() == REG_YMM }

func (r Reg) String() string {
	if name, ok := regNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reg(%#x)", uint32(r))
}

// Register families
const (
	REG_LEGACY = iota
	REG_RIP      // IP, EIP, RIP
	REG_HIGHBYTE // AH, CH, DH, BH
	REG_FP
	REG_MMX
	REG_XMM
	REG_YMM
	REG_SEGMENT
	REG_CONTROL
	REG_DEBUG
	REG_BOUND
)

// regWidths lists the widths each family accepts for DynReg.
var regWidths = [...][]uint8{
	REG_LEGACY:   {1, 2, 4, 8},
	REG_RIP:      {2, 4, 8},
	REG_HIGHBYTE: {1},
	REG_FP:       {10},
	REG_MMX:      {8},
	REG_XMM:      {16},
	REG_YMM:      {32},
	REG_SEGMENT:  {2},
	REG_CONTROL:  {4},
	REG_DEBUG:    {4},
	REG_BOUND:    {16},
}

// regCounts is the number of registers in each family.
var regCounts = [...]uint8{
	REG_LEGACY:   16,
	REG_RIP:      1,
	REG_HIGHBYTE: 8,
	REG_FP:       8,
	REG_MMX:      8,
	REG_XMM:      16,
	REG_YMM:      16,
	REG_SEGMENT:  6,
	REG_CONTROL:  16,
	REG_DEBUG:    16,
	REG_BOUND:    4,
}

// DynReg builds a register from a family, width and number chosen at runtime,
// for example by a register allocator. The combination is validated.
func DynReg(family, width, num uint8) (Reg, error) {
	if num > 0xf || width > 0x3f {
		return 0, errors.Wrapf(dynasm.ErrInvalidRegister, "register out of range (family %d, width %d, number %d)", family, width, num)
	}
	r := mkReg(family, width, num)
	if err := r.validate(); err != nil {
		return 0, err
	}
	return r, nil
}

func mkReg(family, width, num uint8) Reg {
	return Reg(uint32(width&0x3f)<<16 | uint32(family)<<8 | uint32(num&0xf))
}

func (r Reg) validate() error {
	fam := r.Family()
	if int(fam) >= len(regWidths) || uint32(r)&0xffc0_00f0 != 0 {
		return errInvalidReg(r, "unknown register family")
	}
	if fam == REG_HIGHBYTE && (r.Num() < 4 || r.Num() > 7) {
		return errInvalidReg(r, "high-byte registers are numbered 4 to 7")
	}
	if fam != REG_HIGHBYTE && r.Num() >= regCounts[fam] {
		return errInvalidReg(r, "register number out of range")
	}
	for _, w := range regWidths[fam] {
		if w == r.width() {
			return nil
		}
	}
	return errInvalidReg(r, "unsupported register width")
}

func errInvalidReg(r Reg, reason string) error {
	return errors.Wrapf(dynasm.ErrInvalidRegister, "%s (family %d, width %d, number %d)", reason, r.Family(), r.width(), r.Num())
}

// register-building blocks
const (
	w8   Reg = 1 << 16
	w16  Reg = 2 << 16
	w32  Reg = 4 << 16
	w64  Reg = 8 << 16
	w80  Reg = 10 << 16
	w128 Reg = 16 << 16
	w256 Reg = 32 << 16

	legacy   Reg = REG_LEGACY << 8
	rip      Reg = REG_RIP << 8
	highbyte Reg = REG_HIGHBYTE << 8
	fp       Reg = REG_FP << 8
	mmx      Reg = REG_MMX << 8
	xmm      Reg = REG_XMM << 8
	ymm      Reg = REG_YMM << 8
	segment  Reg = REG_SEGMENT << 8
	control  Reg = REG_CONTROL << 8
	debug    Reg = REG_DEBUG << 8
	bound    Reg = REG_BOUND << 8
)

// Registers
const (
	// 8-bit
	AH   = w8 | highbyte | 4
	CH   = w8 | highbyte | 5
	DH   = w8 | highbyte | 6
	BH   = w8 | highbyte | 7
	AL   = w8 | legacy | 0
	CL   = w8 | legacy | 1
	DL   = w8 | legacy | 2
	BL   = w8 | legacy | 3
	SPB  = w8 | legacy | 4
	BPB  = w8 | legacy | 5
	SIB  = w8 | legacy | 6
	DIB  = w8 | legacy | 7
	R8B  = w8 | legacy | 8
	R9B  = w8 | legacy | 9
	R10B = w8 | legacy | 10
	R11B = w8 | legacy | 11
	R12B = w8 | legacy | 12
	R13B = w8 | legacy | 13
	R14B = w8 | legacy | 14
	R15B = w8 | legacy | 15

	// 16-bit
	AX   = w16 | legacy | 0
	CX   = w16 | legacy | 1
	DX   = w16 | legacy | 2
	BX   = w16 | legacy | 3
	SP   = w16 | legacy | 4
	BP   = w16 | legacy | 5
	SI   = w16 | legacy | 6
	DI   = w16 | legacy | 7
	R8W  = w16 | legacy | 8
	R9W  = w16 | legacy | 9
	R10W = w16 | legacy | 10
	R11W = w16 | legacy | 11
	R12W = w16 | legacy | 12
	R13W = w16 | legacy | 13
	R14W = w16 | legacy | 14
	R15W = w16 | legacy | 15

	// 32-bit
	EAX  = w32 | legacy | 0
	ECX  = w32 | legacy | 1
	EDX  = w32 | legacy | 2
	EBX  = w32 | legacy | 3
	ESP  = w32 | legacy | 4
	EBP  = w32 | legacy | 5
	ESI  = w32 | legacy | 6
	EDI  = w32 | legacy | 7
	R8L  = w32 | legacy | 8
	R9L  = w32 | legacy | 9
	R10L = w32 | legacy | 10
	R11L = w32 | legacy | 11
	R12L = w32 | legacy | 12
	R13L = w32 | legacy | 13
	R14L = w32 | legacy | 14
	R15L = w32 | legacy | 15

	// 64-bit
	RAX = w64 | legacy | 0
	RCX = w64 | legacy | 1
	RDX = w64 | legacy | 2
	RBX = w64 | legacy | 3
	RSP = w64 | legacy | 4
	RBP = w64 | legacy | 5
	RSI = w64 | legacy | 6
	RDI = w64 | legacy | 7
	R8  = w64 | legacy | 8
	R9  = w64 | legacy | 9
	R10 = w64 | legacy | 10
	R11 = w64 | legacy | 11
	R12 = w64 | legacy | 12
	R13 = w64 | legacy | 13
	R14 = w64 | legacy | 14
	R15 = w64 | legacy | 15

	// Instruction pointer.
	IP  = w16 | rip | 0
	EIP = w32 | rip | 0
	RIP = w64 | rip | 0

	// 387 floating point registers.
	F0 = w80 | fp | 0
	F1 = w80 | fp | 1
	F2 = w80 | fp | 2
	F3 = w80 | fp | 3
	F4 = w80 | fp | 4
	F5 = w80 | fp | 5
	F6 = w80 | fp | 6
	F7 = w80 | fp | 7

	// MMX registers.
	M0 = w64 | mmx | 0
	M1 = w64 | mmx | 1
	M2 = w64 | mmx | 2
	M3 = w64 | mmx | 3
	M4 = w64 | mmx | 4
	M5 = w64 | mmx | 5
	M6 = w64 | mmx | 6
	M7 = w64 | mmx | 7

	// XMM registers.
	X0  = w128 | xmm | 0
	X1  = w128 | xmm | 1
	X2  = w128 | xmm | 2
	X3  = w128 | xmm | 3
	X4  = w128 | xmm | 4
	X5  = w128 | xmm | 5
	X6  = w128 | xmm | 6
	X7  = w128 | xmm | 7
	X8  = w128 | xmm | 8
	X9  = w128 | xmm | 9
	X10 = w128 | xmm | 10
	X11 = w128 | xmm | 11
	X12 = w128 | xmm | 12
	X13 = w128 | xmm | 13
	X14 = w128 | xmm | 14
	X15 = w128 | xmm | 15

	// YMM registers.
	Y0  = w256 | ymm | 0
	Y1  = w256 | ymm | 1
	Y2  = w256 | ymm | 2
	Y3  = w256 | ymm | 3
	Y4  = w256 | ymm | 4
	Y5  = w256 | ymm | 5
	Y6  = w256 | ymm | 6
	Y7  = w256 | ymm | 7
	Y8  = w256 | ymm | 8
	Y9  = w256 | ymm | 9
	Y10 = w256 | ymm | 10
	Y11 = w256 | ymm | 11
	Y12 = w256 | ymm | 12
	Y13 = w256 | ymm | 13
	Y14 = w256 | ymm | 14
	Y15 = w256 | ymm | 15

	// Segment registers.
	ES = w16 | segment | 0
	CS = w16 | segment | 1
	SS = w16 | segment | 2
	DS = w16 | segment | 3
	FS = w16 | segment | 4
	GS = w16 | segment | 5

	// Control registers.
	CR0  = w32 | control | 0
	CR1  = w32 | control | 1
	CR2  = w32 | control | 2
	CR3  = w32 | control | 3
	CR4  = w32 | control | 4
	CR5  = w32 | control | 5
	CR6  = w32 | control | 6
	CR7  = w32 | control | 7
	CR8  = w32 | control | 8
	CR9  = w32 | control | 9
	CR10 = w32 | control | 10
	CR11 = w32 | control | 11
	CR12 = w32 | control | 12
	CR13 = w32 | control | 13
	CR14 = w32 | control | 14
	CR15 = w32 | control | 15

	// Debug registers.
	DR0  = w32 | debug | 0
	DR1  = w32 | debug | 1
	DR2  = w32 | debug | 2
	DR3  = w32 | debug | 3
	DR4  = w32 | debug | 4
	DR5  = w32 | debug | 5
	DR6  = w32 | debug | 6
	DR7  = w32 | debug | 7
	DR8  = w32 | debug | 8
	DR9  = w32 | debug | 9
	DR10 = w32 | debug | 10
	DR11 = w32 | debug | 11
	DR12 = w32 | debug | 12
	DR13 = w32 | debug | 13
	DR14 = w32 | debug | 14
	DR15 = w32 | debug | 15

	// MPX bound registers.
	BND0 = w128 | bound | 0
	BND1 = w128 | bound | 1
	BND2 = w128 | bound | 2
	BND3 = w128 | bound | 3
)

var regNames = map[Reg]string{
	AH:   "ah",
	CH:   "ch",
	DH:   "dh",
	BH:   "bh",
	AL:   "al",
	CL:   "cl",
	DL:   "dl",
	BL:   "bl",
	SPB:  "spb",
	BPB:  "bpb",
	SIB:  "sib",
	DIB:  "dib",
	R8B:  "r8b",
	R9B:  "r9b",
	R10B: "r10b",
	R11B: "r11b",
	R12B: "r12b",
	R13B: "r13b",
	R14B: "r14b",
	R15B: "r15b",
	AX:   "ax",
	CX:   "cx",
	DX:   "dx",
	BX:   "bx",
	SP:   "sp",
	BP:   "bp",
	SI:   "si",
	DI:   "di",
	R8W:  "r8w",
	R9W:  "r9w",
	R10W: "r10w",
	R11W: "r11w",
	R12W: "r12w",
	R13W: "r13w",
	R14W: "r14w",
	R15W: "r15w",
	EAX:  "eax",
	ECX:  "ecx",
	EDX:  "edx",
	EBX:  "ebx",
	ESP:  "esp",
	EBP:  "ebp",
	ESI:  "esi",
	EDI:  "edi",
	R8L:  "r8l",
	R9L:  "r9l",
	R10L: "r10l",
	R11L: "r11l",
	R12L: "r12l",
	R13L: "r13l",
	R14L: "r14l",
	R15L: "r15l",
	RAX:  "rax",
	RCX:  "rcx",
	RDX:  "rdx",
	RBX:  "rbx",
	RSP:  "rsp",
	RBP:  "rbp",
	RSI:  "rsi",
	RDI:  "rdi",
	R8:   "r8",
	R9:   "r9",
	R10:  "r10",
	R11:  "r11",
	R12:  "r12",
	R13:  "r13",
	R14:  "r14",
	R15:  "r15",
	IP:   "ip",
	EIP:  "eip",
	RIP:  "rip",
	F0:   "f0",
	F1:   "f1",
	F2:   "f2",
	F3:   "f3",
	F4:   "f4",
	F5:   "f5",
	F6:   "f6",
	F7:   "f7",
	M0:   "m0",
	M1:   "m1",
	M2:   "m2",
	M3:   "m3",
	M4:   "m4",
	M5:   "m5",
	M6:   "m6",
	M7:   "m7",
	X0:   "x0",
	X1:   "x1",
	X2:   "x2",
	X3:   "x3",
	X4:   "x4",
	X5:   "x5",
	X6:   "x6",
	X7:   "x7",
	X8:   "x8",
	X9:   "x9",
	X10:  "x10",
	X11:  "x11",
	X12:  "x12",
	X13:  "x13",
	X14:  "x14",
	X15:  "x15",
	Y0:   "y0",
	Y1:   "y1",
	Y2:   "y2",
	Y3:   "y3",
	Y4:   "y4",
	Y5:   "y5",
	Y6:   "y6",
	Y7:   "y7",
	Y8:   "y8",
	Y9:   "y9",
	Y10:  "y10",
	Y11:  "y11",
	Y12:  "y12",
	Y13:  "y13",
	Y14:  "y14",
	Y15:  "y15",
	ES:   "es",
	CS:   "cs",
	SS:   "ss",
	DS:   "ds",
	FS:   "fs",
	GS:   "gs",
	CR0:  "cr0",
	CR1:  "cr1",
	CR2:  "cr2",
	CR3:  "cr3",
	CR4:  "cr4",
	CR5:  "cr5",
	CR6:  "cr6",
	CR7:  "cr7",
	CR8:  "cr8",
	CR9:  "cr9",
	CR10: "cr10",
	CR11: "cr11",
	CR12: "cr12",
	CR13: "cr13",
	CR14: "cr14",
	CR15: "cr15",
	DR0:  "dr0",
	DR1:  "dr1",
	DR2:  "dr2",
	DR3:  "dr3",
	DR4:  "dr4",
	DR5:  "dr5",
	DR6:  "dr6",
	DR7:  "dr7",
	DR8:  "dr8",
	DR9:  "dr9",
	DR10: "dr10",
	DR11: "dr11",
	DR12: "dr12",
	DR13: "dr13",
	DR14: "dr14",
	DR15: "dr15",
	BND0: "bnd0",
	BND1: "bnd1",
	BND2: "bnd2",
	BND3: "bnd3",
}
