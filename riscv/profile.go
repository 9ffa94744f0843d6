package riscv

import (
	"strings"

	"github.com/wdamron/dynasm"
)

// Extension is a set of standard ISA extensions.
type Extension uint32

const (
	ExtM        Extension = 1 << iota // integer multiplication and division
	ExtA                              // atomics
	ExtF                              // single precision floating point
	ExtD                              // double precision floating point
	ExtC                              // compressed instructions
	ExtZicsr                          // control and status registers
	ExtZifencei                       // instruction fetch fence
	ExtZba                            // address generation
	ExtZbb                            // basic bit manipulation
	ExtZcb                            // additional compressed instructions
	ExtZcmp                           // compressed push, pop and register moves

	// ExtG is the general purpose set, IMAFD with Zicsr and Zifencei.
	ExtG = ExtM | ExtA | ExtF | ExtD | ExtZicsr | ExtZifencei
)

var extNames = []struct {
	ext  Extension
	name string
}{
	{ExtM, "m"}, {ExtA, "a"}, {ExtF, "f"}, {ExtD, "d"}, {ExtC, "c"},
	{ExtZicsr, "_zicsr"}, {ExtZifencei, "_zifencei"}, {ExtZba, "_zba"}, {ExtZbb, "_zbb"},
	{ExtZcb, "_zcb"}, {ExtZcmp, "_zcmp"},
}

// Profile selects the instructions available to an Encoder.
type Profile struct {
	// XLEN is the width of the integer registers, 32 or 64.
	XLEN int
	// Embedded restricts the integer registers to x0-x15.
	Embedded bool
	// Extensions enables instructions beyond the base integer set.
	Extensions Extension
}

var (
	RV32I  = Profile{XLEN: 32}
	RV32E  = Profile{XLEN: 32, Embedded: true}
	RV64I  = Profile{XLEN: 64}
	RV64E  = Profile{XLEN: 64, Embedded: true}
	RV32GC = Profile{XLEN: 32, Extensions: ExtG | ExtC}
	RV64GC = Profile{XLEN: 64, Extensions: ExtG | ExtC}
)

// Check if all extensions in e are enabled.
func (p Profile) Has(e Extension) bool { return p.Extensions&e == e }

// With returns the profile with the extensions in e enabled.
func (p Profile) With(e Extension) Profile { p.Extensions |= e; return p }

// Without returns the profile with the extensions in e disabled.
func (p Profile) Without(e Extension) Profile { p.Extensions &^= e; return p }

func (p Profile) is64() bool { return p.XLEN == 64 }

// Arch returns the architecture identifier for the profile.
func (p Profile) Arch() dynasm.Arch {
	if p.is64() {
		return dynasm.ArchRISCV64
	}
	return dynasm.ArchRISCV32
}

// String returns the ISA string of the profile, as in "rv64imafdc_zicsr_zifencei".
func (p Profile) String() string {
	var sb strings.Builder
	if p.is64() {
		sb.WriteString("rv64")
	} else {
		sb.WriteString("rv32")
	}
	if p.Embedded {
		sb.WriteString("e")
	} else {
		sb.WriteString("i")
	}
	for _, e := range extNames {
		if p.Has(e.ext) {
			sb.WriteString(e.name)
		}
	}
	return sb.String()
}
