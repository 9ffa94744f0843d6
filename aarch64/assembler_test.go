package aarch64

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/dynasm"
)

func finalizeWords(t *testing.T, a *Assembler) []uint32 {
	t.Helper()
	require.NoError(t, a.Err())
	buf, err := a.Finalize()
	require.NoError(t, err)
	t.Cleanup(func() { buf.Close() })
	code := buf.Bytes()
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[4*i:])
	}
	return words
}

func TestBranches(t *testing.T) {
	a := NewAssembler(nil)
	a.LocalLabel("top")
	a.Inst("nop")
	a.Inst("b", To(dynasm.Backward("top")))
	a.Inst("cbz", X0, To(dynasm.Forward("end")))
	a.Inst("tbnz", X1, Imm(40), To(dynasm.Forward("end")))
	a.BranchIf(GE, dynasm.Backward("top"))
	a.Inst("bl", To(dynasm.Forward("end")))
	a.LocalLabel("end")
	a.Inst("ret")

	assert.Equal(t, []uint32{
		0xd503201f,
		0x17ffffff, // b -4
		0xb4000080, // cbz x0, +16
		0xb7400061, // tbnz x1, #40, +12
		0x54ffff8a, // b.ge -16
		0x94000001, // bl +4
		0xd65f03c0,
	}, finalizeWords(t, a))
}

func TestAddresses(t *testing.T) {
	a := NewAssembler(nil)
	a.Inst("adrp", X0, To(dynasm.Forward("data")))
	a.Inst("adr", X1, To(dynasm.Forward("data")))
	a.Inst("ldr", X2, To(dynasm.Forward("data")))
	a.Inst("ret")
	a.LocalLabel("data")
	a.PushU64(0x1122334455667788)

	words := finalizeWords(t, a)
	assert.Equal(t, uint32(0x90000000), words[0])
	assert.Equal(t, uint32(0x10000061), words[1]) // adr x1, +12
	assert.Equal(t, uint32(0x58000042), words[2]) // ldr x2, +8
	assert.Equal(t, uint32(0x55667788), words[4])
}

func TestAlignment(t *testing.T) {
	a := NewAssembler(nil)
	a.PushByte(0xaa)
	require.NoError(t, a.Align(4, dynasm.ArchAArch64.AlignFill()))
	a.Inst("ret")
	require.NoError(t, a.AlignPC(16))
	a.PushU32(0xcafebabe)

	assert.Equal(t, []uint32{0xaa, 0xd65f03c0, nopWord, nopWord, 0xcafebabe}, finalizeWords(t, a))
}

func TestStickyError(t *testing.T) {
	a := NewAssembler(nil)
	err := a.Inst("frob", X0)
	require.True(t, errors.Is(err, dynasm.ErrUnknownMnemonic))
	require.Equal(t, err, a.Inst("nop"))
	require.Equal(t, err, a.Nop(4))
	require.Equal(t, dynasm.AssemblyOffset(0), a.Offset())

	a.ClearErr()
	require.NoError(t, a.Inst("nop"))
	require.Error(t, a.Nop(2))
}

func TestEmitThroughRoot(t *testing.T) {
	a := NewAssembler(nil)
	require.NoError(t, a.Emit("mov", X0, Imm(7)))
	require.NoError(t, a.Emit("ret"))
	assert.Equal(t, []uint32{0xd28000e0, 0xd65f03c0}, finalizeWords(t, a))
}

func TestRelocRange(t *testing.T) {
	var buf [4]byte
	b := NewReloc(RelB)
	require.NoError(t, b.Write(buf[:], 0x07fffffc))
	require.Equal(t, int64(0x07fffffc), b.Read(buf[:]))
	require.NoError(t, b.Write(buf[:], -0x08000000))
	require.Equal(t, int64(-0x08000000), b.Read(buf[:]))

	var impossible *dynasm.ImpossibleRelocationError
	require.True(t, errors.As(b.Write(buf[:], 0x08000000), &impossible))
	require.True(t, errors.As(b.Write(buf[:], 2), &impossible))
	require.Equal(t, "misaligned target", impossible.Reason)

	// writes keep the opcode bits outside the field
	binary.LittleEndian.PutUint32(buf[:], 0x54000001)
	c := NewReloc(RelBCond)
	require.NoError(t, c.Write(buf[:], -8))
	require.Equal(t, uint32(0x54ffffc1), binary.LittleEndian.Uint32(buf[:]))
	require.Equal(t, int64(-8), c.Read(buf[:]))

	for _, kind := range []RelocKind{RelB, RelBCond, RelADR, RelADRP, RelTBZ} {
		r := NewReloc(kind)
		v := int64(-4096)
		require.NoError(t, r.Write(buf[:], v), "kind %d", kind)
		assert.Equal(t, v, r.Read(buf[:]), "kind %d", kind)
		assert.Equal(t, []byte{byte(kind)}, r.Encode())
	}
	require.True(t, NewReloc(RelADRP).PageRelative())
	require.False(t, NewReloc(RelADR).PageRelative())
	require.Equal(t, []byte{5 + 3}, Plain(8).Encode())
}

func TestLogicalImmediateRoundTrip(t *testing.T) {
	valid := 0
	for n := uint32(0); n < 2; n++ {
		for immr := uint32(0); immr < 64; immr++ {
			for imms := uint32(0); imms < 64; imms++ {
				for _, is64 := range []bool{false, true} {
					v, ok := DecodeLogicalImm(n, immr, imms, is64)
					if !ok {
						continue
					}
					valid++
					en, er, es, ok := EncodeLogicalImm(v, is64)
					require.True(t, ok, "%#x", v)
					got, ok := DecodeLogicalImm(en, er, es, is64)
					require.True(t, ok)
					require.Equal(t, v, got, "n=%d immr=%d imms=%d", n, immr, imms)
				}
			}
		}
	}
	require.NotZero(t, valid)

	for _, v := range []uint64{0, ^uint64(0), 0x1234} {
		_, _, _, ok := EncodeLogicalImm(v, true)
		assert.False(t, ok, "%#x", v)
	}
}

func TestFP8(t *testing.T) {
	for _, c := range []struct {
		f    float64
		imm8 uint32
	}{{1.0, 0x70}, {2.0, 0x00}, {-1.0, 0xf0}, {0.5, 0x60}, {31.0, 0x3f}, {0.125, 0x40}} {
		imm8, ok := EncodeFP8(c.f)
		require.True(t, ok, "%v", c.f)
		assert.Equal(t, c.imm8, imm8, "%v", c.f)
		assert.Equal(t, c.f, DecodeFP8(uint8(imm8)))
	}
	_, ok := EncodeFP8(0)
	assert.False(t, ok)
}
