//go:build unix

package dynasm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdamron/dynasm"
	. "github.com/wdamron/dynasm/aarch64"
)

func TestExecuteAArch64Sum(t *testing.T) {
	asm := NewAssembler(nil)
	asm.Inst("mov", X1, X0)
	asm.Inst("mov", X0, XZR)
	asm.LocalLabel("loop")
	asm.Inst("cbz", X1, To(dynasm.Forward("done")))
	asm.Inst("add", X0, X0, X1)
	asm.Inst("sub", X1, X1, Imm(1))
	asm.Inst("b", To(dynasm.Backward("loop")))
	asm.LocalLabel("done")
	asm.Inst("ret")
	require.NoError(t, asm.Err())

	buf, err := asm.Finalize()
	require.NoError(t, err)
	defer buf.Close()

	sum := (func(n int) int)(nil) // placeholder value
	require.NoError(t, dynasm.SetFunctionCode(&sum, buf.Ptr(0)))
	require.Equal(t, 0, sum(0))
	require.Equal(t, 55, sum(10))
	require.Equal(t, 5050, sum(100))
}

func TestExecuteAArch64Literal(t *testing.T) {
	asm := NewAssembler(nil)
	asm.Inst("ldr", X0, To(dynasm.Forward("value")))
	asm.Inst("ret")
	asm.LocalLabel("value")
	asm.PushU64(0x0123456789abcdef)
	require.NoError(t, asm.Err())

	buf, err := asm.Finalize()
	require.NoError(t, err)
	defer buf.Close()

	load := (func() uint64)(nil) // placeholder value
	require.NoError(t, dynasm.SetFunctionCode(&load, buf.Ptr(0)))
	require.Equal(t, uint64(0x0123456789abcdef), load())
}
