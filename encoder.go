package dynasm

import "fmt"

// Arch identifies an instruction set.
type Arch uint8

const (
	ArchX86 Arch = iota + 1
	ArchX64
	ArchAArch64
	ArchRISCV32
	ArchRISCV64
)

func (a Arch) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchX64:
		return "x64"
	case ArchAArch64:
		return "aarch64"
	case ArchRISCV32:
		return "riscv32"
	case ArchRISCV64:
		return "riscv64"
	}
	return fmt.Sprintf("Arch(%d)", uint8(a))
}

// AlignFill returns the byte used to pad alignment gaps in code: a one-byte
// NOP on x86, zero otherwise.
func (a Arch) AlignFill() byte {
	if a == ArchX86 || a == ArchX64 {
		return 0x90
	}
	return 0
}

// Operand is an instruction operand. Each architecture package defines the
// concrete operand types its Encoder accepts.
type Operand interface{}

// Ref is a reference produced by an Encoder for the instruction it is
// appending. The reference is anchored at the end of the appended bytes.
type Ref struct {
	Target Target
	Addend int64
	Rel    Relocation
}

// Emitter receives encoded instructions.
type Emitter interface {
	// Offset returns the assembly offset the next appended byte lands at.
	Offset() AssemblyOffset
	// Append adds code and its references atomically: if any reference
	// cannot be recorded nothing is appended.
	Append(code []byte, refs ...Ref) error
}

// Encoder turns a mnemonic with operands into machine code for one
// architecture.
type Encoder interface {
	Arch() Arch
	Encode(e Emitter, mnemonic string, operands []Operand) error
}
