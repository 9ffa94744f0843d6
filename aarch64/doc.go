// Package aarch64 encodes AArch64 (ARMv8-A, A64) instructions for a dynasm.Assembler.
//
// usage example:
//
//	package example
//
//	import (
//		"github.com/wdamron/dynasm"
//
//		. "github.com/wdamron/dynasm/aarch64"
//	)
//
//	// CompileAdder returns a function adding a constant to its argument.
//	func CompileAdder(n uint16) (func(x int) int, *dynasm.ExecutableBuffer, error) {
//		asm := NewAssembler(nil)
//		asm.Inst("mov", X1, Imm(int64(n)))
//		asm.Inst("add", X0, X0, X1)
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
//		adder := (func(x int) int)(nil) // placeholder value
//		if err := dynasm.SetFunctionCode(&adder, buf.Ptr(0)); err != nil {
//			buf.Close()
//			return nil, nil, err
//		}
//		return adder, buf, nil
//	}
//
// Instructions are selected by mnemonic and operand shapes. Registers are typed by their
// view: W and X for the general purpose registers, with WSP and SP as the stack pointer and
// WZR and XZR as the zero register; B, H, S, D and Q for the scalar SIMD&FP registers; and
// V for vectors, arranged with Arr or indexed with Elem. Immediate shifts and extends follow
// the register they modify, as in
//
//	asm.Inst("add", X0, X1, W2, SXTW(2))
//	asm.Inst("ldr", X0, Idx(X1, X2, LSL(3)))
//
// Memory operands are built with Ptr, Pre, Post and Idx. Loads and stores with an offset
// which is negative or not a multiple of the access size fall back to the unscaled forms.
//
// mov accepts any integer which fits a single MOVZ, MOVN or ORR instruction. Wider constants
// must be built with movz and movk.
//
// Registers chosen at runtime are created with Dyn and checked when the instruction is
// encoded.
package aarch64
