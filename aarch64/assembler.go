package aarch64

import (
	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

// An Assembler encodes AArch64 instructions into a dynasm.Assembler. Labels, data
// directives, commits and executable buffers are provided by the embedded dynasm.Assembler.
//
// The Inst family of methods stops at the first error: once an instruction fails to
// encode, later calls return the same error until ClearErr is called.
type Assembler struct {
	*dynasm.Assembler
	enc *Encoder
	err error
}

// Create a new Assembler. A nil cfg selects the default configuration.
func NewAssembler(cfg *dynasm.Config) *Assembler {
	enc := NewEncoder()
	return &Assembler{Assembler: dynasm.New(enc, cfg), enc: enc}
}

// Get the encoder bound to the assembler.
func (a *Assembler) Encoder() *Encoder { return a.enc }

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

// Encode length bytes of NOP instructions. length must be a multiple of 4.
func (a *Assembler) Nop(length int) error {
	if a.err != nil {
		return a.err
	}
	if length%4 != 0 {
		a.err = errors.Errorf("nop length %d is not a multiple of 4", length)
		return a.err
	}
	for i := 0; i < length; i += 4 {
		if a.err = a.PushU32(nopWord); a.err != nil {
			break
		}
	}
	return a.err
}

const nopWord = 0xd503201f

// Align the assembly offset to a multiple of n, filling with NOP instructions. n must be a
// multiple of 4 and the offset must already be word-aligned.
func (a *Assembler) AlignPC(n int) error {
	if a.err != nil {
		return a.err
	}
	if n <= 0 || n%4 != 0 {
		return errors.Errorf("invalid alignment %d", n)
	}
	if rem := int(a.Offset()) % n; rem != 0 {
		return a.Nop(n - rem)
	}
	return nil
}

// Branch to target if cond holds.
func (a *Assembler) BranchIf(cond Cond, target dynasm.Target) error {
	return a.Inst("b.cond", cond, To(target))
}
