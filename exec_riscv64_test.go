//go:build unix

package dynasm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdamron/dynasm"
	. "github.com/wdamron/dynasm/riscv"
)

func TestExecuteRISCV64Sum(t *testing.T) {
	asm := NewAssembler(RV64GC, nil)
	asm.Inst("mv", A1, A0)
	asm.Inst("li", A0, Imm(0))
	asm.LocalLabel("loop")
	asm.Inst("beqz", A1, To(dynasm.Forward("done")))
	asm.Inst("c.add", A0, A1)
	asm.Inst("addi", A1, A1, Imm(-1))
	asm.Inst("j", To(dynasm.Backward("loop")))
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

func TestExecuteRISCV64Constant(t *testing.T) {
	asm := NewAssembler(RV64GC, nil)
	asm.LoadImm(A0, 0x0123456789abcdef)
	asm.Inst("ld", A1, To(dynasm.Forward("value")))
	asm.Inst("xor", A0, A0, A1)
	asm.Inst("ret")
	asm.AlignPC(8)
	asm.LocalLabel("value")
	asm.PushU64(0x0123456789abcdef)
	require.NoError(t, asm.Err())

	buf, err := asm.Finalize()
	require.NoError(t, err)
	defer buf.Close()

	check := (func() uint64)(nil) // placeholder value
	require.NoError(t, dynasm.SetFunctionCode(&check, buf.Ptr(0)))
	require.Equal(t, uint64(0), check())
}
