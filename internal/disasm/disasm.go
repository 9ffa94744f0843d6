// Package disasm decodes assembled code for inspection in tests and debugging. x86 uses
// the x86asm decoder in Intel syntax and AArch64 the arm64asm decoder in GNU syntax; RISC-V
// has no decoder.
package disasm

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/x86/x86asm"

	"github.com/wdamron/dynasm"
)

// Inst is one decoded instruction.
type Inst struct {
	Offset int
	Len    int
	Text   string
}

// Decode disassembles code from its start. pc is the address of code[0], used to print
// relative branch targets.
func Decode(arch dynasm.Arch, code []byte, pc uint64) ([]Inst, error) {
	var insts []Inst
	for n := 0; n < len(code); {
		inst, err := decodeOne(arch, code[n:], pc+uint64(n))
		if err != nil {
			return insts, errors.Wrapf(err, "offset %d", n)
		}
		inst.Offset = n
		insts = append(insts, inst)
		n += inst.Len
	}
	return insts, nil
}

func decodeOne(arch dynasm.Arch, code []byte, pc uint64) (Inst, error) {
	switch arch {
	case dynasm.ArchX86, dynasm.ArchX64:
		mode := 64
		if arch == dynasm.ArchX86 {
			mode = 32
		}
		inst, err := x86asm.Decode(code, mode)
		if err != nil {
			return Inst{}, err
		}
		return Inst{Len: inst.Len, Text: x86asm.IntelSyntax(inst, pc, nil)}, nil
	case dynasm.ArchAArch64:
		if len(code) < 4 {
			return Inst{}, errors.New("truncated instruction")
		}
		inst, err := arm64asm.Decode(code[:4])
		if err != nil {
			return Inst{}, err
		}
		return Inst{Len: 4, Text: arm64asm.GNUSyntax(inst)}, nil
	}
	return Inst{}, errors.Errorf("no decoder for %s", arch)
}

// Text disassembles code and returns the text of each instruction.
func Text(arch dynasm.Arch, code []byte) ([]string, error) {
	insts, err := Decode(arch, code, 0)
	if err != nil {
		return nil, err
	}
	text := make([]string, len(insts))
	for i, inst := range insts {
		text[i] = inst.Text
	}
	return text, nil
}

// Func disassembles the first n bytes of the code funcValue runs. This function is entirely
// unsafe: the n bytes must be mapped.
//
// funcValue must be a non-nil Go function-value, such as one set by dynasm.SetFunctionCode.
func Func(arch dynasm.Arch, funcValue interface{}, n int) ([]Inst, error) {
	// the data word of the interface is the closure pointer, and the closure's
	// first word is the code pointer
	type interfaceHeader struct {
		typ     uintptr
		closure *unsafe.Pointer
	}
	v := reflect.ValueOf(funcValue)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, errors.New("argument for Func must be a non-nil function-value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&funcValue))
	entry := *header.closure
	code := unsafe.Slice((*byte)(entry), n)
	return Decode(arch, code, uint64(uintptr(entry)))
}
