package riscv

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/dynasm"
)

func finalize(t *testing.T, a *Assembler) []byte {
	t.Helper()
	require.NoError(t, a.Err())
	buf, err := a.Finalize()
	require.NoError(t, err)
	t.Cleanup(func() { buf.Close() })
	return append([]byte(nil), buf.Bytes()...)
}

func words(code []byte) []uint32 {
	ws := make([]uint32, len(code)/4)
	for i := range ws {
		ws[i] = binary.LittleEndian.Uint32(code[4*i:])
	}
	return ws
}

func TestBranches(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	a.LocalLabel("top")
	a.Inst("addi", A0, A0, Imm(-1))
	a.Inst("bnez", A0, To(dynasm.Backward("top")))
	a.Inst("c.beqz", A0, To(dynasm.Forward("end")))
	a.Inst("c.j", To(dynasm.Backward("top")))
	a.Inst("jal", To(dynasm.Forward("end")))
	a.LocalLabel("end")
	a.Inst("c.jr", RA)

	assert.Equal(t, []byte{
		0x13, 0x05, 0xf5, 0xff, // addi a0, a0, -1
		0xe3, 0x1e, 0x05, 0xfe, // bnez a0, -4
		0x01, 0xc5,             // c.beqz a0, +8
		0xdd, 0xbf,             // c.j -10
		0xef, 0x00, 0x40, 0x00, // jal +4
		0x82, 0x80,             // c.jr ra
	}, finalize(t, a))
}

func TestPCRelative(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	a.Inst("la", A0, To(dynasm.Forward("data")))
	a.Inst("lw", A1, To(dynasm.Forward("data")))
	a.Inst("ret")
	a.LocalLabel("data")
	a.PushU32(0x11223344)

	assert.Equal(t, []uint32{
		0x00000517, // auipc a0, 0
		0x01450513, // addi a0, a0, 20
		0x00000597, // auipc a1, 0
		0x00c5a583, // lw a1, 12(a1)
		0x00008067,
		0x11223344,
	}, words(finalize(t, a)))
}

func TestPCRelativeStore(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	a.LocalLabel("slot")
	a.Extend(make([]byte, 16))
	a.Inst("sd", A0, To(dynasm.Backward("slot")), T0)

	ws := words(finalize(t, a))
	assert.Equal(t, []uint32{0x00000297, 0xfea2b823}, ws[4:]) // auipc t0, 0; sd a0, -16(t0)
}

func TestCallAndTail(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	require.NoError(t, a.Call(dynasm.Global("fn")))
	a.Inst("tail", To(dynasm.Global("fn")))
	a.GlobalLabel("fn")
	a.Inst("ret")

	assert.Equal(t, []uint32{
		0x00000097, // auipc ra, 0
		0x010080e7, // jalr ra, 16(ra)
		0x00000317, // auipc t1, 0
		0x00830067, // jr 8(t1)
		0x00008067,
	}, words(finalize(t, a)))
}

func TestHiLoPair(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	a.Inst("auipc", A0, To(dynasm.Forward("far")))
	a.Inst("lw", A0, PtrLabel(A0, To(dynasm.Forward("far"))))
	a.Extend(make([]byte, 0x1800-8))
	a.LocalLabel("far")
	a.PushU32(0)

	ws := words(finalize(t, a))
	assert.Equal(t, uint32(0x00002517), ws[0]) // auipc a0, 2
	assert.Equal(t, uint32(0x80052503), ws[1]) // lw a0, -2048(a0)
}

func TestDynamicLabels(t *testing.T) {
	a := NewAssembler(RV32GC, nil)
	id := a.NewDynamicLabel()
	a.Inst("c.jal", To(dynasm.Dynamic(id)))
	a.Inst("c.nop")
	require.NoError(t, a.DynamicLabel(id))
	a.Inst("c.jr", RA)

	assert.Equal(t, []byte{
		0x11, 0x20, // c.jal +4
		0x01, 0x00,
		0x82, 0x80,
	}, finalize(t, a))
}

func TestAlignment(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	a.Inst("c.jr", RA)
	require.NoError(t, a.AlignPC(8))
	a.PushU32(0xcafebabe)

	assert.Equal(t, []byte{
		0x82, 0x80,
		0x13, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0xbe, 0xba, 0xfe, 0xca,
	}, finalize(t, a))

	b := NewAssembler(RV64I, nil)
	require.Error(t, b.AlignPC(2))
	require.Error(t, b.AlignPC(12))
	require.True(t, errors.Is(b.Inst("c.nop"), dynasm.ErrUnknownMnemonic))
	b.ClearErr()
	require.Error(t, b.Nop(2))
}

func TestStickyError(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	err := a.Inst("frob", A0)
	require.True(t, errors.Is(err, dynasm.ErrUnknownMnemonic))
	require.Equal(t, err, a.Inst("nop"))
	require.Equal(t, err, a.Nop(4))
	require.Equal(t, err, a.LoadImm(A0, 1))
	require.Equal(t, dynasm.AssemblyOffset(0), a.Offset())

	a.ClearErr()
	require.NoError(t, a.Inst("nop"))
	require.Error(t, a.Nop(3))
}

func TestEmitThroughRoot(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	require.NoError(t, a.Emit("add", A0, A1, A2))
	require.NoError(t, a.Emit("ret"))
	assert.Equal(t, []uint32{0x00c58533, 0x00008067}, words(finalize(t, a)))
	assert.Equal(t, dynasm.ArchRISCV64, a.Encoder().Arch())
	assert.Equal(t, RV64GC, a.Profile())
}

func TestLoadImmTooLarge(t *testing.T) {
	a := NewAssembler(RV32I, nil)
	require.NoError(t, a.LoadImm(A0, -1))
	require.True(t, errors.Is(a.LoadImm(A0, 1<<33), dynasm.ErrImmediateOutOfRange))
}

func TestBranchOutOfRange(t *testing.T) {
	a := NewAssembler(RV64GC, nil)
	a.Inst("c.beqz", A0, To(dynasm.Global("end")))
	a.Extend(make([]byte, 256))
	a.GlobalLabel("end")

	var impossible *dynasm.ImpossibleRelocationError
	_, err := a.Finalize()
	require.True(t, errors.As(err, &impossible), "%v", err)
	require.Equal(t, "target out of range", impossible.Reason)
}

func TestRelocRange(t *testing.T) {
	var buf [8]byte
	b := NewReloc(RelB)
	require.NoError(t, b.Write(buf[:], 4094))
	require.Equal(t, int64(4094), b.Read(buf[:]))
	require.NoError(t, b.Write(buf[:], -4096))
	require.Equal(t, int64(-4096), b.Read(buf[:]))

	var impossible *dynasm.ImpossibleRelocationError
	require.True(t, errors.As(b.Write(buf[:], 4096), &impossible))
	require.True(t, errors.As(b.Write(buf[:], 3), &impossible))
	require.Equal(t, "misaligned target", impossible.Reason)

	for _, kind := range []RelocKind{RelB, RelJ, RelBC, RelJC} {
		r := NewReloc(kind)
		v := int64(-64)
		require.NoError(t, r.Write(buf[:], v), "kind %d", kind)
		assert.Equal(t, v, r.Read(buf[:]), "kind %d", kind)
		assert.Equal(t, []byte{byte(kind)}, r.Encode())
	}

	split := NewReloc(RelSPLIT32)
	for _, c := range []struct {
		v          int64
		hi, lo     uint32
		outOfRange bool
	}{
		{v: 0x7ffff7ff, hi: 0x7ffff517, lo: 0x7ff50513},
		{v: 0x800, hi: 0x00001517, lo: 0x80050513},
		{v: -0x80000800, hi: 0x80000517, lo: 0x80050513},
		{v: 0x7ffff800, outOfRange: true},
		{v: -0x80000801, outOfRange: true},
	} {
		binary.LittleEndian.PutUint32(buf[:], 0x00000517)  // auipc a0, 0
		binary.LittleEndian.PutUint32(buf[4:], 0x00050513) // addi a0, a0, 0
		err := split.Write(buf[:], c.v)
		if c.outOfRange {
			require.True(t, errors.As(err, &impossible), "%#x", c.v)
			continue
		}
		require.NoError(t, err, "%#x", c.v)
		assert.Equal(t, []uint32{c.hi, c.lo}, words(buf[:]), "%#x", c.v)
		assert.Equal(t, c.v, split.Read(buf[:]), "%#x", c.v)
	}

	binary.LittleEndian.PutUint32(buf[:], 0x00000297)  // auipc t0, 0
	binary.LittleEndian.PutUint32(buf[4:], 0x00a2a023) // sw a0, 0(t0)
	store := NewReloc(RelSPLIT32S)
	require.NoError(t, store.Write(buf[:], -0x80000800))
	assert.Equal(t, []uint32{0x80000297, 0x80a2a023}, words(buf[:]))
	assert.Equal(t, int64(-0x80000800), store.Read(buf[:]))

	require.Equal(t, 8, NewReloc(RelLO12).StartOffset())
	require.Equal(t, 4, NewReloc(RelHI20).StartOffset())
	require.Equal(t, 2, NewReloc(RelJC).Size())
	require.Equal(t, []byte{9 + 2}, Plain(4).Encode())
	_, ok := Plain(4).RelocKind()
	require.False(t, ok)
}
