//go:build unix

package dynasm_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/dynasm"
	. "github.com/wdamron/dynasm/x64"
)

func TestExecuteAnswer(t *testing.T) {
	asm := NewAssembler(X64, nil)
	asm.Inst(MOV, RAX, Imm32(42))
	asm.Inst(RET)
	require.NoError(t, asm.Err())

	buf, err := asm.Finalize()
	require.NoError(t, err)
	defer buf.Close()

	answer := (func() int)(nil) // placeholder value
	require.NoError(t, dynasm.SetFunctionCode(&answer, buf.Ptr(0)))
	require.Equal(t, 42, answer())
}

func TestExecuteSum(t *testing.T) {
	asm := NewAssembler(X64, nil)
	asm.Inst(MOV, RCX, RAX)
	asm.Inst(XOR, EAX, EAX)
	asm.LocalLabel("loop")
	asm.Inst(TEST, RCX, RCX)
	asm.Inst(JZ, To(dynasm.Forward("done")).Rel8())
	asm.Inst(ADD, RAX, RCX)
	asm.Inst(DEC, RCX)
	asm.Inst(JMP, To(dynasm.Backward("loop")).Rel8())
	asm.LocalLabel("done")
	asm.Inst(RET)
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

func TestExecuteGlobalCall(t *testing.T) {
	asm := NewAssembler(X64, nil)
	asm.Inst(CALL, To(dynasm.Global("double")))
	asm.Inst(ADD, RAX, Imm8(1))
	asm.Inst(RET)
	asm.AlignPC(16)
	asm.GlobalLabel("double")
	asm.Inst(ADD, RAX, RAX)
	asm.Inst(RET)
	require.NoError(t, asm.Err())

	buf, err := asm.Finalize()
	require.NoError(t, err)
	defer buf.Close()

	f := (func(n int) int)(nil) // placeholder value
	require.NoError(t, dynasm.SetFunctionCode(&f, buf.Ptr(0)))
	require.Equal(t, 21, f(10))

	off, ok := asm.LabelOffset(dynasm.Global("double"))
	require.True(t, ok)
	double := (func(n int) int)(nil) // placeholder value
	require.NoError(t, dynasm.SetFunctionCode(&double, buf.Ptr(off)))
	require.Equal(t, 20, double(10))
}

func TestConcurrentReaders(t *testing.T) {
	asm := NewAssembler(X64, dynasm.NewConfig().WithInitialCapacity(1))
	defer asm.Close()
	asm.Inst(MOV, RAX, Imm32(42))
	asm.Inst(RET)
	require.NoError(t, asm.Err())
	require.NoError(t, asm.Commit())

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			for ctx.Err() == nil {
				guard, err := asm.Reader().Lock()
				if err != nil {
					return err
				}
				answer := (func() int)(nil) // placeholder value
				if err := dynasm.SetFunctionCode(&answer, guard.Ptr(0)); err != nil {
					guard.Unlock()
					return err
				}
				v := answer()
				guard.Unlock()
				if v != 42 {
					return errors.Errorf("answer() = %d", v)
				}
			}
			return nil
		})
	}

	// keep appending while readers execute; the buffer moves several times
	var err error
	for i := 0; i < 64 && err == nil; i++ {
		if err = asm.Nop(1024); err == nil {
			err = asm.Commit()
		}
	}
	cancel()
	require.NoError(t, err)
	require.NoError(t, g.Wait())
}
