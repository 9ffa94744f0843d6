package disasm_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/dynasm"
	"github.com/wdamron/dynasm/aarch64"
	"github.com/wdamron/dynasm/internal/disasm"
	"github.com/wdamron/dynasm/riscv"
	"github.com/wdamron/dynasm/x64"
)

func finalize(t *testing.T, a *dynasm.Assembler) *dynasm.ExecutableBuffer {
	t.Helper()
	buf, err := a.Finalize()
	require.NoError(t, err)
	t.Cleanup(func() { buf.Close() })
	return buf
}

func TestDecodeX64(t *testing.T) {
	asm := x64.NewAssembler(x64.X64, nil)
	asm.Inst(x64.MOV, x64.RAX, x64.RBX)
	asm.Inst(x64.ADD, x64.RAX, x64.RBX)
	asm.Inst(x64.RET)
	require.NoError(t, asm.Err())

	text, err := disasm.Text(dynasm.ArchX64, finalize(t, asm.Assembler).Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"mov rax, rbx", "add rax, rbx", "ret"}, text)
}

func TestDecodeAArch64(t *testing.T) {
	asm := aarch64.NewAssembler(nil)
	asm.Inst("add", aarch64.X0, aarch64.X1, aarch64.X2)
	asm.Inst("nop")
	asm.Inst("ret")
	require.NoError(t, asm.Err())

	insts, err := disasm.Decode(dynasm.ArchAArch64, finalize(t, asm.Assembler).Bytes(), 0)
	require.NoError(t, err)
	require.Len(t, insts, 3)
	assert.Equal(t, "add x0, x1, x2", insts[0].Text)
	assert.Equal(t, 8, insts[2].Offset)
	assert.Equal(t, "ret", insts[2].Text)

	_, err = disasm.Decode(dynasm.ArchAArch64, []byte{0x1f, 0x20, 0x03}, 0)
	assert.Error(t, err)
}

func TestDecodeRISCV(t *testing.T) {
	asm := riscv.NewAssembler(riscv.RV64GC, nil)
	asm.Inst("ret")
	_, err := disasm.Text(dynasm.ArchRISCV64, finalize(t, asm.Assembler).Bytes())
	assert.Error(t, err)
}

func TestFunc(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("requires amd64")
	}
	// The register ABI passes a in RAX and b in RBX and returns in RAX.
	asm := x64.NewAssembler(x64.X64, nil)
	asm.Inst(x64.ADD, x64.RAX, x64.RBX)
	asm.Inst(x64.RET)
	require.NoError(t, asm.Err())
	buf := finalize(t, asm.Assembler)

	sum := (func(a, b int) int)(nil)
	require.NoError(t, dynasm.SetFunctionCode(&sum, buf.Ptr(0)))
	require.Equal(t, 3, sum(1, 2))

	insts, err := disasm.Func(dynasm.ArchX64, sum, buf.Len())
	require.NoError(t, err)
	require.Len(t, insts, 2)
	assert.Equal(t, "add rax, rbx", insts[0].Text)
	assert.Equal(t, "ret", insts[1].Text)
	assert.Equal(t, 3, insts[1].Offset)

	_, err = disasm.Func(dynasm.ArchX64, nil, 1)
	assert.Error(t, err)
}
