// Package riscv encodes RISC-V instructions (RV32 and RV64) for a dynasm.Assembler.
//
// usage example:
//
//	package example
//
//	import (
//		"github.com/wdamron/dynasm"
//
//		. "github.com/wdamron/dynasm/riscv"
//	)
//
//	// CompileSum returns a function summing the integers 1 to n.
//	func CompileSum() (func(n int) int, *dynasm.ExecutableBuffer, error) {
//		asm := NewAssembler(RV64GC, nil)
//		asm.Inst("mv", A1, A0)
//		asm.Inst("li", A0, Imm(0))
//		asm.LocalLabel("loop")
//		asm.Inst("beqz", A1, To(dynasm.Forward("done")))
//		asm.Inst("add", A0, A0, A1)
//		asm.Inst("addi", A1, A1, Imm(-1))
//		asm.Inst("j", To(dynasm.Backward("loop")))
//		asm.LocalLabel("done")
//		asm.Inst("ret")
//		if asm.Err() != nil {
//			return nil, nil, asm.Err()
//		}
//
//		buf, err := asm.Finalize()
//		if err != nil {
//			return nil, nil, err
//		}
//
//		sum := (func(n int) int)(nil) // placeholder value
//		if err := dynasm.SetFunctionCode(&sum, buf.Ptr(0)); err != nil {
//			buf.Close()
//			return nil, nil, err
//		}
//		return sum, buf, nil
//	}
//
// The instructions available to an Encoder are selected by its Profile: the register width,
// the embedded register file and the enabled extensions. Mnemonics of other extensions fail
// with dynasm.ErrUnknownMnemonic. Compressed instructions are only emitted when named, as in
// "c.addi"; full-size mnemonics are never shortened.
//
// Integer and floating point registers are named by number (X0, F0) or ABI name (A0, FA0).
// Memory operands are offset(base), built with Ptr. Floating point instructions take an
// optional trailing RoundingMode, and fence takes optional FenceSet predecessor and successor
// sets.
//
// Labels are referenced with To. Branches and jumps patch their offset field. The
// pseudo-instructions call, tail, la and the pc-relative loads and stores emit an AUIPC pair
// which reaches any target within 2GiB; stores and floating point accesses take a scratch
// register for the address, as in
//
//	asm.Inst("sw", A0, To(dynasm.Global("counter")), T0)
//
// The pair may also be written by hand with auipc and a PtrLabel operand, which reads the
// low bits of the displacement measured from the AUIPC immediately before it.
//
// li loads any constant with at most eight instructions. li.12, li.32, li.43 and li.54 always
// emit the sequence for their width, for code which is patched later.
package riscv
