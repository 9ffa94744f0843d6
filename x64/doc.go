// Package x64 encodes x86 and x86-64 instructions for a dynasm.Assembler.
//
// usage example:
//
//	package example
//
//	import (
//		"github.com/wdamron/dynasm"
//
//		// Importing everything from the package into the current scope
//		// makes for less noise:
//		. "github.com/wdamron/dynasm/x64"
//	)
//
//	// CompileCountdown returns a function counting its argument down to zero.
//	func CompileCountdown() (func(n int) int, *dynasm.ExecutableBuffer, error) {
//		asm := NewAssembler(X64, nil)
//
//		// Go passes the first integer argument and result in RAX.
//		asm.LocalLabel("loop")
//		asm.Inst(TEST, RAX, RAX)
//		asm.Inst(JZ, To(dynasm.Forward("done")))
//		asm.Inst(DEC, RAX)
//		asm.Inst(JMP, To(dynasm.Backward("loop")))
//		asm.LocalLabel("done")
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
//		countdown := (func(n int) int)(nil) // placeholder value
//		if err := dynasm.SetFunctionCode(&countdown, buf.Ptr(0)); err != nil {
//			buf.Close()
//			return nil, nil, err
//		}
//		return countdown, buf, nil
//	}
//
// Instructions are selected by mnemonic and operands: the first encoding of the mnemonic
// accepting the operand types and sizes is used. Immediates and displacements without an
// explicit size (Imm, Rel and To(...)) are fitted to the encoding. Jumps to labels default
// to 32-bit displacements; use To(t).Rel8() for the short forms.
//
// The same operations are available as text through the dynasm.Encoder interface:
//
//	asm.Emit("lock add", Mem{Base: RDI, Width: 8}, RAX)
package x64
