// Package dynasm is a runtime assembler: it encodes machine instructions into
// a growable buffer, resolves labels and hands out executable memory in the
// same process.
//
// The root package is architecture independent. Encoders for x86 and x86-64
// (package x64), AArch64 (package aarch64) and RISC-V (package riscv) plug
// into an Assembler through the Encoder interface.
//
// usage example:
//
//	package example
//
//	import (
//		"github.com/wdamron/dynasm"
//		. "github.com/wdamron/dynasm/x64"
//	)
//
//	func CompileAnswer() (func() int, *dynasm.ExecutableBuffer, error) {
//		asm := NewAssembler(X64, nil)
//
//		// Go passes the first integer result in RAX.
//		asm.Inst(MOV, RAX, Imm32(42))
//		asm.Inst(RET)
//		if asm.Err() != nil {
//			return nil, nil, asm.Err()
//		}
//
//		buf, err := asm.Finalize()
//		if err != nil {
//			return nil, nil, err
//		}
//
//		answer := (func() int)(nil) // placeholder value
//		if err := dynasm.SetFunctionCode(&answer, buf.Ptr(0)); err != nil {
//			buf.Close()
//			return nil, nil, err
//		}
//		return answer, buf, nil
//	}
//
// Labels come in four flavors. Global labels are defined once and may be
// referenced from anywhere. Local labels may be redefined; references select
// either the next definition (Forward) or the latest one (Backward). Dynamic
// labels are issued at runtime by NewDynamicLabel. Extern targets name an
// absolute address outside the buffer.
//
// Code is staged in a scratch buffer and copied into executable memory by
// Commit. Memory is never writable and executable at the same time. When a
// commit outgrows the current region, a larger region is mapped and the
// committed code moves; references whose encoding depends on the base address
// are rewritten automatically. Readers obtained from Reader may execute
// committed code concurrently with the owner, which keeps appending.
package dynasm
