package riscv

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

// Encoder encodes RISC-V instructions for a dynasm.Assembler. Only the instructions of its
// Profile are available. An Encoder is not safe for concurrent use.
//
// Mnemonics are case-insensitive and use the assembler names, with ordering and format
// suffixes as in "amoadd.w.aqrl" and "fcvt.w.d". Operands must implement Arg.
type Encoder struct {
	profile Profile
	flat    [8]flatArg
	buf     [32]byte
	seq     [8]uint32
	refs    []dynasm.Ref
}

var _ dynasm.Encoder = (*Encoder)(nil)

// Create an encoder for p. An XLEN other than 32 selects RV64.
func NewEncoder(p Profile) *Encoder {
	if p.XLEN != 32 {
		p.XLEN = 64
	}
	return &Encoder{profile: p}
}

// Get the profile of the encoder.
func (e *Encoder) Profile() Profile { return e.profile }

func (e *Encoder) Arch() dynasm.Arch { return e.profile.Arch() }

// Encode implements dynasm.Encoder.
func (e *Encoder) Encode(em dynasm.Emitter, mnemonic string, operands []dynasm.Operand) error {
	args := make([]Arg, 0, len(operands))
	for i, op := range operands {
		arg, ok := op.(Arg)
		if !ok {
			return errors.Wrapf(e.mismatch(strings.ToLower(mnemonic)), "operand %d has type %T", i, op)
		}
		args = append(args, arg)
	}
	return e.EncodeInst(em, mnemonic, args...)
}

// EncodeInst encodes the instruction named by mnemonic with args.
func (e *Encoder) EncodeInst(em dynasm.Emitter, mnemonic string, args ...Arg) error {
	name := strings.ToLower(strings.TrimSpace(mnemonic))
	if span, ok := liSpans[name]; ok {
		return e.li(em, name, span, args)
	}
	ts, ok := templates[name]
	if !ok {
		return errors.Wrapf(dynasm.ErrUnknownMnemonic, "%q", mnemonic)
	}
	available := false
	for i := range ts {
		t := &ts[i]
		if !t.availableIn(e.profile) {
			continue
		}
		available = true
		if !t.matchArgs(args) {
			continue
		}
		n, err := e.encode(name, t, args)
		if err != nil {
			return err
		}
		return em.Append(e.buf[:n], e.refs...)
	}
	if !available {
		return errors.Wrapf(dynasm.ErrUnknownMnemonic, "%q is not available for %s", mnemonic, e.profile)
	}
	return e.mismatch(name)
}

func (e *Encoder) encode(name string, t *template, args []Arg) (int, error) {
	flat, err := flatten(e.flat[:0], t, args, e.profile)
	if err != nil {
		return 0, errors.Wrap(err, name)
	}
	enc := encoding{name: name, xlen: e.profile.XLEN, words: t.words, args: flat, refs: e.refs[:0], lastS: -1}
	if err := enc.run(t.cmds); err != nil {
		return 0, err
	}
	e.refs = enc.refs
	for i := 0; i < int(t.n); i++ {
		if t.size == 2 {
			binary.LittleEndian.PutUint16(e.buf[2*i:], uint16(enc.words[i]))
		} else {
			binary.LittleEndian.PutUint32(e.buf[4*i:], enc.words[i])
		}
	}
	return t.bytes(), nil
}

// Forms lists the operand forms of mnemonic available in the encoder's profile.
func (e *Encoder) Forms(mnemonic string) []string {
	name := strings.ToLower(mnemonic)
	if _, ok := liSpans[name]; ok {
		return []string{name + liForm}
	}
	ts := templates[name]
	forms := make([]string, 0, len(ts))
	seen := make(map[string]bool, len(ts))
	for i := range ts {
		if !ts[i].availableIn(e.profile) {
			continue
		}
		f := ts[i].form(name)
		if !seen[f] {
			seen[f] = true
			forms = append(forms, f)
		}
	}
	return forms
}

func (e *Encoder) mismatch(name string) error {
	return &dynasm.OperandMismatchError{Mnemonic: name, Forms: e.Forms(name)}
}
