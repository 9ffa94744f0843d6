package riscv

import (
	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

// An Assembler encodes RISC-V instructions into a dynasm.Assembler. Labels, data
// directives, commits and executable buffers are provided by the embedded dynasm.Assembler.
//
// The Inst family of methods stops at the first error: once an instruction fails to
// encode, later calls return the same error until ClearErr is called.
type Assembler struct {
	*dynasm.Assembler
	enc *Encoder
	err error
}

// Create a new Assembler for p. A nil cfg selects the default configuration.
func NewAssembler(p Profile, cfg *dynasm.Config) *Assembler {
	enc := NewEncoder(p)
	return &Assembler{Assembler: dynasm.New(enc, cfg), enc: enc}
}

// Get the encoder bound to the assembler.
func (a *Assembler) Encoder() *Encoder { return a.enc }

// Get the profile of the assembler.
func (a *Assembler) Profile() Profile { return a.enc.profile }

// Get the first error which occured while encoding instructions with Inst or its variants.
func (a *Assembler) Err() error { return a.err }

// Clear the error returned by Err.
func (a *Assembler) ClearErr() { a.err = nil }

// Encode the instruction named by mnemonic with args. If no encoding accepts args, an error
// matching dynasm.ErrOperandMismatch will be returned.
func (a *Assembler) Inst(mnemonic string, args ...Arg) error {
	if a.err != nil {
		return a.err
	}
	a.err = a.enc.EncodeInst(a, mnemonic, args...)
	return a.err
}

const (
	nopWord  = 0x00000013 // addi zero, zero, 0
	cNopWord = 0x0001     // c.nop
)

// Encode length bytes of NOP instructions. length must be even; a remainder of 2 bytes is
// filled with c.nop and requires the C extension.
func (a *Assembler) Nop(length int) error {
	if a.err != nil {
		return a.err
	}
	if length < 0 || length%2 != 0 || length%4 != 0 && !a.enc.profile.Has(ExtC) {
		a.err = errors.Errorf("nop length %d is not a multiple of the instruction size", length)
		return a.err
	}
	for ; length >= 4; length -= 4 {
		if a.err = a.PushU32(nopWord); a.err != nil {
			return a.err
		}
	}
	if length == 2 {
		a.err = a.PushU16(cNopWord)
	}
	return a.err
}

// Align the assembly offset to a multiple of n, filling with NOP instructions. n must be a
// power of two of at least 2, or 4 without the C extension.
func (a *Assembler) AlignPC(n int) error {
	if a.err != nil {
		return a.err
	}
	if n < 2 || n&(n-1) != 0 || n < 4 && !a.enc.profile.Has(ExtC) {
		return errors.Errorf("invalid alignment %d", n)
	}
	if rem := int(a.Offset()) % n; rem != 0 {
		return a.Nop(n - rem)
	}
	return nil
}

// Load the constant v into rd with the shortest li sequence.
func (a *Assembler) LoadImm(rd Reg, v int64) error {
	return a.Inst("li", rd, Imm(v))
}

// Call target with auipc and jalr, linking ra.
func (a *Assembler) Call(target dynasm.Target) error {
	return a.Inst("call", To(target))
}
