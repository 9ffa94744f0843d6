package x64

import (
	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
	"github.com/wdamron/dynasm/x64/feats"
)

// An Assembler encodes x86 or x86-64 instructions into a dynasm.Assembler. Labels, data
// directives, commits and executable buffers are provided by the embedded dynasm.Assembler.
//
// The Inst family of methods stops at the first error: once an instruction fails to
// encode, later calls return the same error until ClearErr is called.
type Assembler struct {
	*dynasm.Assembler
	enc *Encoder
	err error
}

// Create a new Assembler for mode. A nil cfg selects the default configuration.
//
// All CPU features will be enabled by default, for instruction-matching.
func NewAssembler(mode Mode, cfg *dynasm.Config) *Assembler {
	enc := NewEncoder(mode)
	return &Assembler{Assembler: dynasm.New(enc, cfg), enc: enc}
}

// Get the encoder bound to the assembler.
func (a *Assembler) Encoder() *Encoder { return a.enc }

// Get the processor mode instructions are encoded for.
func (a *Assembler) Mode() Mode { return a.enc.mode }

// Get the current, allowable CPU feature-set for instruction-matching.
//
// See package x64/feats for all available CPU features.
func (a *Assembler) Features() feats.Feature { return a.enc.Features() }

// Restrict the allowable CPU feature-set for instruction-matching. This will not affect
// instructions which have already been encoded.
//
// See package x64/feats for all available CPU features.
func (a *Assembler) SetFeatures(enabledFeatures feats.Feature) { a.enc.SetFeatures(enabledFeatures) }

// Control the allowable CPU feature-set for instruction-matching. This will not affect
// instructions which have already been encoded.
//
// See package x64/feats for all available CPU features.
func (a *Assembler) DisableFeature(feature feats.Feature) { a.enc.DisableFeature(feature) }

// Control the allowable CPU feature-set for instruction-matching. This will not affect
// instructions which have already been encoded.
//
// See package x64/feats for all available CPU features.
func (a *Assembler) EnableFeature(feature feats.Feature) { a.enc.EnableFeature(feature) }

// Get the first error which occured while encoding instructions with Inst or its variants.
func (a *Assembler) Err() error { return a.err }

// Clear the error returned by Err.
func (a *Assembler) ClearErr() { a.err = nil }

func (a *Assembler) encode(prefix byte, inst Inst, args ...Arg) error {
	if a.err != nil {
		return a.err
	}
	a.err = a.enc.EncodeInst(a, prefix, inst, args...)
	return a.err
}

// Encode inst with args. If no matching instruction-encoding is found, an error matching
// ErrNoMatch will be returned.
func (a *Assembler) Inst(inst Inst, args ...Arg) error { return a.encode(0, inst, args...) }

// Encode a previously matched instruction.
func (a *Assembler) InstFrom(matcher *InstMatcher) error {
	if a.err != nil {
		return a.err
	}
	a.err = a.enc.EncodeMatched(a, 0, matcher)
	return a.err
}

// Encode length bytes of NOP instructions.
func (a *Assembler) Nop(length int) error {
	if a.err != nil {
		return a.err
	}
	a.err = a.Extend(appendNops(nil, length))
	return a.err
}

// Align the assembly offset to a multiple of n, filling with NOP instructions.
func (a *Assembler) AlignPC(n int) error {
	if a.err != nil {
		return a.err
	}
	if n <= 0 {
		return errors.Errorf("invalid alignment %d", n)
	}
	if rem := int(a.Offset()) % n; rem != 0 {
		return a.Nop(n - rem)
	}
	return nil
}

// Encode inst with args, prefixed with LOCK. If no matching instruction-encoding is found,
// an error matching ErrNoMatch will be returned.
func (a *Assembler) Lock(inst Inst, args ...Arg) error { return a.encode(lockPrefix, inst, args...) }

// Encode inst with args, prefixed with REP. If no matching instruction-encoding is found,
// an error matching ErrNoMatch will be returned.
func (a *Assembler) Rep(inst Inst, args ...Arg) error { return a.encode(repPrefix, inst, args...) }

// Encode inst with args, prefixed with REPE.
func (a *Assembler) Repe(inst Inst, args ...Arg) error { return a.Rep(inst, args...) }

// Encode inst with args, prefixed with REPZ.
func (a *Assembler) Repz(inst Inst, args ...Arg) error { return a.Rep(inst, args...) }

// Encode inst with args, prefixed with REPNE. If no matching instruction-encoding is found,
// an error matching ErrNoMatch will be returned.
func (a *Assembler) Repne(inst Inst, args ...Arg) error { return a.encode(repnePrefix, inst, args...) }

// Encode inst with args, prefixed with REPNZ.
func (a *Assembler) Repnz(inst Inst, args ...Arg) error { return a.Repne(inst, args...) }

func (a *Assembler) matched(err error, inst Inst) error {
	if err != nil {
		a.err = mismatch(inst, err)
		return a.err
	}
	a.err = a.enc.emit(a, 0)
	return a.err
}

// Encode inst with a register destination and register source.
// If no matching instruction-encoding is found, an error matching ErrNoMatch will be returned.
func (a *Assembler) RR(inst Inst, dst, src Reg) error {
	if a.err != nil {
		return a.err
	}
	return a.matched(a.enc.match.RR(inst, dst, src), inst)
}

// Encode inst with a register destination, register source, and immediate.
// If no matching instruction-encoding is found, an error matching ErrNoMatch will be returned.
func (a *Assembler) RRI(inst Inst, dst, src Reg, imm ImmArg) error {
	if a.err != nil {
		return a.err
	}
	return a.matched(a.enc.match.RRI(inst, dst, src, imm), inst)
}

// Encode inst with a register destination and memory source.
// If no matching instruction-encoding is found, an error matching ErrNoMatch will be returned.
func (a *Assembler) RM(inst Inst, dst Reg, src Mem) error {
	if a.err != nil {
		return a.err
	}
	return a.matched(a.enc.match.RM(inst, dst, src), inst)
}

// Encode inst with a memory destination and register source.
// If no matching instruction-encoding is found, an error matching ErrNoMatch will be returned.
func (a *Assembler) MR(inst Inst, dst Mem, src Reg) error {
	if a.err != nil {
		return a.err
	}
	return a.matched(a.enc.match.MR(inst, dst, src), inst)
}

// Encode inst with a register destination, memory source, and immediate.
// If no matching instruction-encoding is found, an error matching ErrNoMatch will be returned.
func (a *Assembler) RMI(inst Inst, dst Reg, src Mem, imm ImmArg) error {
	if a.err != nil {
		return a.err
	}
	return a.matched(a.enc.match.RMI(inst, dst, src, imm), inst)
}

// Encode inst with a memory destination, register source, and immediate.
// If no matching instruction-encoding is found, an error matching ErrNoMatch will be returned.
func (a *Assembler) MRI(inst Inst, dst Mem, src Reg, imm ImmArg) error {
	if a.err != nil {
		return a.err
	}
	return a.matched(a.enc.match.MRI(inst, dst, src, imm), inst)
}

// Encode inst with a register destination and immediate.
// If no matching instruction-encoding is found, an error matching ErrNoMatch will be returned.
func (a *Assembler) RI(inst Inst, dst Reg, imm ImmArg) error {
	if a.err != nil {
		return a.err
	}
	return a.matched(a.enc.match.RI(inst, dst, imm), inst)
}

// Encode inst with a memory destination and immediate.
// If no matching instruction-encoding is found, an error matching ErrNoMatch will be returned.
func (a *Assembler) MI(inst Inst, dst Mem, imm ImmArg) error {
	if a.err != nil {
		return a.err
	}
	return a.matched(a.enc.match.MI(inst, dst, imm), inst)
}

// Encode a conditional jump to target.
func (a *Assembler) JumpIf(cc ConditionCode, target dynasm.Target) error {
	return a.Inst(Jcc(cc), To(target))
}
