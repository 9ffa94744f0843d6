package x64

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
	"github.com/wdamron/dynasm/x64/feats"
)

// Mode selects the processor mode instructions are encoded for.
type Mode uint8

const (
	// X64 is 64-bit long mode.
	X64 Mode = iota
	// X86 is 32-bit protected mode. Registers introduced with the REX prefix and 64-bit
	// operands are rejected, and instructions removed from long mode become available.
	X86
)

func (m Mode) String() string {
	if m == X86 {
		return "x86"
	}
	return "x64"
}

// Arch returns the architecture identifier for the mode.
func (m Mode) Arch() dynasm.Arch {
	if m == X86 {
		return dynasm.ArchX86
	}
	return dynasm.ArchX64
}

func (m Mode) addrSize() int8 {
	if m == X86 {
		return 4
	}
	return 8
}

func (m Mode) validAddrSize(size int8) bool {
	if m == X86 {
		return size == 2 || size == 4
	}
	return size == 4 || size == 8
}

// Encoder encodes x86 and x86-64 instructions for a dynasm.Assembler. An Encoder is not safe for
// concurrent use.
//
// Mnemonics are case-insensitive and may be preceded by a prefix word: lock, rep, repe, repz,
// repne or repnz. Operands must implement Arg.
type Encoder struct {
	mode  Mode
	match InstMatcher
	b     buffer
}

var _ dynasm.Encoder = (*Encoder)(nil)

// Create an encoder for mode with all CPU features enabled.
func NewEncoder(mode Mode) *Encoder {
	e := &Encoder{mode: mode}
	e.match = *NewInstMatcher(mode)
	e.b.reset()
	return e
}

func (e *Encoder) Arch() dynasm.Arch { return e.mode.Arch() }
func (e *Encoder) Mode() Mode        { return e.mode }

// Get the current, allowable CPU feature-set for instruction-matching.
func (e *Encoder) Features() feats.Feature { return e.match.feats }

// Restrict the allowable CPU feature-set for instruction-matching.
func (e *Encoder) SetFeatures(enabledFeatures feats.Feature) { e.match.feats = enabledFeatures }

// Control the allowable CPU feature-set for instruction-matching.
func (e *Encoder) EnableFeature(feature feats.Feature) { e.match.feats |= feature }

// Control the allowable CPU feature-set for instruction-matching.
func (e *Encoder) DisableFeature(feature feats.Feature) { e.match.feats &^= feature }

var prefixWords = map[string]byte{
	"lock":  lockPrefix,
	"rep":   repPrefix,
	"repe":  repPrefix,
	"repz":  repPrefix,
	"repne": repnePrefix,
	"repnz": repnePrefix,
}

// Encode implements dynasm.Encoder.
func (e *Encoder) Encode(em dynasm.Emitter, mnemonic string, operands []dynasm.Operand) error {
	var prefix byte
	name := strings.TrimSpace(mnemonic)
	if i := strings.IndexAny(name, " \t"); i > 0 {
		p, ok := prefixWords[strings.ToLower(name[:i])]
		if !ok {
			return errors.Wrapf(dynasm.ErrUnknownMnemonic, "unknown prefix in %q", mnemonic)
		}
		prefix, name = p, strings.TrimSpace(name[i:])
	}
	inst, ok := Lookup(name)
	if !ok {
		return errors.Wrapf(dynasm.ErrUnknownMnemonic, "%q", name)
	}

	var args [4]Arg
	if len(operands) > len(args) {
		return &dynasm.OperandMismatchError{Mnemonic: strings.ToLower(name), Forms: inst.Forms()}
	}
	for i, op := range operands {
		arg, ok := op.(Arg)
		if !ok {
			return errors.Wrapf(&dynasm.OperandMismatchError{Mnemonic: strings.ToLower(name), Forms: inst.Forms()}, "operand %d has type %T", i, op)
		}
		args[i] = arg
	}
	return e.EncodeInst(em, prefix, inst, args[:len(operands)]...)
}

// EncodeInst encodes inst with args, preceded by a LOCK (0xf0), REP (0xf3) or
// REPNE (0xf2) prefix when prefix is non-zero.
func (e *Encoder) EncodeInst(em dynasm.Emitter, prefix byte, inst Inst, args ...Arg) error {
	if err := e.match.Match(inst, args...); err != nil {
		return mismatch(inst, err)
	}
	return e.emit(em, prefix)
}

// EncodeMatched encodes an instruction previously matched in the encoder's mode.
func (e *Encoder) EncodeMatched(em dynasm.Emitter, prefix byte, matcher *InstMatcher) error {
	if matcher.mode != e.mode {
		return errors.Errorf("%s was matched for %s mode", matcher.inst.Name(), matcher.mode)
	}
	if e.match.feats&matcher.enc.feats != matcher.enc.feats {
		return errors.Errorf("encoder does not support CPU features %s for previously matched %s instruction",
			matcher.enc.feats, matcher.inst.Name())
	}
	enabled := e.match.feats
	e.match = *matcher
	e.match.args = e.match._args[:len(matcher.args)]
	e.match.imms = e.match._imms[:len(matcher.imms)]
	e.match.feats = enabled
	return e.emit(em, prefix)
}

func (e *Encoder) emit(em dynasm.Emitter, prefix byte) error {
	e.b.reset()
	err := e.emitInst(prefix)
	e.match.reset()
	if err != nil {
		return err
	}
	return em.Append(e.b.Get(), e.b.Refs()...)
}

// mismatch lists the accepted forms when no encoding matched.
func mismatch(inst Inst, err error) error {
	if err != ErrNoMatch {
		return err
	}
	return &dynasm.OperandMismatchError{Mnemonic: strings.ToLower(inst.Name()), Forms: inst.Forms()}
}
