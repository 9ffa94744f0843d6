package aarch64

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
)

// Encoder encodes AArch64 instructions for a dynasm.Assembler. An Encoder is not safe for
// concurrent use.
//
// Mnemonics are case-insensitive. Conditional branches are written as b.<cond>, as in
// "b.ne". Operands must implement Arg.
type Encoder struct {
	flat [8]flatArg
	buf  [4]byte
	refs []dynasm.Ref
}

var _ dynasm.Encoder = (*Encoder)(nil)

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) Arch() dynasm.Arch { return dynasm.ArchAArch64 }

// Encode implements dynasm.Encoder.
func (e *Encoder) Encode(em dynasm.Emitter, mnemonic string, operands []dynasm.Operand) error {
	args := make([]Arg, 0, len(operands)+1)
	for i, op := range operands {
		arg, ok := op.(Arg)
		if !ok {
			return errors.Wrapf(mismatch(strings.ToLower(mnemonic)), "operand %d has type %T", i, op)
		}
		args = append(args, arg)
	}
	return e.EncodeInst(em, mnemonic, args...)
}

// EncodeInst encodes the instruction named by mnemonic with args.
func (e *Encoder) EncodeInst(em dynasm.Emitter, mnemonic string, args ...Arg) error {
	name := strings.ToLower(strings.TrimSpace(mnemonic))
	key := name
	if strings.HasPrefix(name, "b.") && name != "b.cond" {
		c, ok := ParseCond(name[2:])
		if !ok {
			return errors.Wrapf(dynasm.ErrUnknownMnemonic, "%q", mnemonic)
		}
		key = "b.cond"
		args = append([]Arg{c}, args...)
	}
	ts, ok := templates[key]
	if !ok {
		return errors.Wrapf(dynasm.ErrUnknownMnemonic, "%q", mnemonic)
	}
	for i := range ts {
		t := &ts[i]
		if !t.matchArgs(args) {
			continue
		}
		word, err := e.encode(name, t, args)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(e.buf[:], word)
		return em.Append(e.buf[:], e.refs...)
	}
	return mismatch(key)
}

func (e *Encoder) encode(name string, t *template, args []Arg) (uint32, error) {
	flat, err := flatten(e.flat[:0], t, args)
	if err != nil {
		return 0, errors.Wrap(err, name)
	}
	enc := encoding{name: name, word: t.base, args: flat, refs: e.refs[:0]}
	if err := enc.run(t.cmds); err != nil {
		return 0, err
	}
	e.refs = enc.refs
	return enc.word, nil
}

// Forms lists the operand forms accepted by mnemonic.
func Forms(mnemonic string) []string {
	name := strings.ToLower(mnemonic)
	ts := templates[name]
	forms := make([]string, 0, len(ts))
	seen := make(map[string]bool, len(ts))
	for i := range ts {
		f := ts[i].form(name)
		if !seen[f] {
			seen[f] = true
			forms = append(forms, f)
		}
	}
	return forms
}

func mismatch(name string) error {
	return &dynasm.OperandMismatchError{Mnemonic: name, Forms: Forms(name)}
}
