package riscv

import (
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/dynasm"
)

// recorder collects appended code without an assembler.
type recorder struct {
	code []byte
	refs []dynasm.Ref
}

func (r *recorder) Offset() dynasm.AssemblyOffset { return dynasm.AssemblyOffset(len(r.code)) }

func (r *recorder) Append(code []byte, refs ...dynasm.Ref) error {
	r.code = append(r.code, code...)
	r.refs = append(r.refs, refs...)
	return nil
}

var (
	full64 = RV64GC.With(ExtZba | ExtZbb | ExtZcb | ExtZcmp)
	full32 = RV32GC.With(ExtZba | ExtZbb | ExtZcb | ExtZcmp)
)

// encode returns the single instruction encoded for mnemonic, widened to 32 bits.
func encode(t *testing.T, p Profile, mnemonic string, args ...Arg) uint32 {
	t.Helper()
	var r recorder
	require.NoError(t, NewEncoder(p).EncodeInst(&r, mnemonic, args...), "%s %v", mnemonic, args)
	switch len(r.code) {
	case 2:
		return uint32(binary.LittleEndian.Uint16(r.code))
	case 4:
		return binary.LittleEndian.Uint32(r.code)
	}
	t.Fatalf("%s %v: encoded %d bytes", mnemonic, args, len(r.code))
	return 0
}

type wordCase struct {
	mnemonic string
	args     []Arg
	want     uint32
}

func inst(mnemonic string, want uint32, args ...Arg) wordCase {
	return wordCase{mnemonic: mnemonic, args: args, want: want}
}

var rv64Cases = []wordCase{
	inst("add", 0x00c58533, A0, A1, A2),
	inst("sub", 0x407302b3, T0, T1, T2),
	inst("addi", 0xfff58513, A0, A1, Imm(-1)),
	inst("addi", 0xff010113, SP, SP, Imm(-16)),
	inst("slli", 0x03f51513, A0, A0, Imm(63)),
	inst("srai", 0x4035d513, A0, A1, Imm(3)),
	inst("lw", 0x00812503, A0, Ptr(SP, 8)),
	inst("ld", 0xff843083, RA, Ptr(S0, -8)),
	inst("sw", 0x00b52623, A1, Ptr(A0, 12)),
	inst("sd", 0x80113023, RA, Ptr(SP, -2048)),
	inst("jalr", 0x004280e7, RA, Ptr(T0, 4)),
	inst("jalr", 0x004280e7, RA, T0, Imm(4)),
	inst("lui", 0x789ab2b7, X5, Imm(0x789ab000)),
	inst("lui", 0x7ffff337, X6, Imm(0x7ffff000)),
	inst("sext.w", 0x0005851b, A0, A1),
	inst("mv", 0x00058513, A0, A1),
	inst("not", 0xfff5c513, A0, A1),
	inst("neg", 0x40b00533, A0, A1),
	inst("seqz", 0x0015b513, A0, A1),
	inst("snez", 0x00b03533, A0, A1),
	inst("nop", 0x00000013),
	inst("ret", 0x00008067),
	inst("ecall", 0x00000073),
	inst("ebreak", 0x00100073),
	inst("fence", 0x0ff0000f),
	inst("fence", 0x0310000f, FenceRW, FenceW),
	inst("fence.tso", 0x8330000f),
	inst("fence.i", 0x0000100f),

	inst("mul", 0x02c58533, A0, A1, A2),
	inst("divuw", 0x02c5d53b, A0, A1, A2),
	inst("amoadd.w.aqrl", 0x06b6252f, A0, A1, Ptr(A2, 0)),
	inst("lr.d.aq", 0x140532af, T0, Ptr(A0, 0)),
	inst("sc.w", 0x18e7a6af, A3, A4, Ptr(A5, 0)),

	inst("fadd.s", 0x003170d3, F1, F2, F3),
	inst("fadd.d", 0x02c59553, FA0, FA1, FA2, RTZ),
	inst("fmadd.d", 0x223100c3, F1, F2, F3, F4, RNE),
	inst("fcvt.w.d", 0xc2051553, A0, FA0, RTZ),
	inst("fcvt.d.w", 0xd2050553, FA0, A0),
	inst("fmv.x.d", 0xe2050553, A0, FA0),
	inst("fmv.d", 0x22b58553, FA0, FA1),
	inst("fneg.s", 0x20b59553, FA0, FA1),
	inst("feq.s", 0xa0b52553, A0, FA0, FA1),
	inst("flw", 0x0045a507, FA0, Ptr(A1, 4)),
	inst("fsd", 0x00a13827, FA0, Ptr(SP, 16)),
	inst("frflags", 0x00102573, A0),
	inst("fsrm", 0x00251073, A0),

	inst("csrrs", 0xc0002573, A0, CYCLE, ZERO),
	inst("csrr", 0xc0002573, A0, CYCLE),
	inst("rdcycle", 0xc0002573, A0),
	inst("csrrwi", 0x3002d073, ZERO, MSTATUS, Imm(5)),
	inst("csrwi", 0x3002d073, MSTATUS, Imm(5)),

	inst("sh2add", 0x20c5c533, A0, A1, A2),
	inst("zext.w", 0x0805853b, A0, A1),
	inst("andn", 0x40c5f533, A0, A1, A2),
	inst("rori", 0x6285d513, A0, A1, Imm(40)),
}

var compressedCases = []wordCase{
	inst("c.nop", 0x0001),
	inst("c.ebreak", 0x9002),
	inst("c.addi", 0x157d, A0, Imm(-1)),
	inst("c.li", 0x47fd, A5, Imm(31)),
	inst("c.lui", 0x657d, A0, Imm(0x1f000)),
	inst("c.lui", 0x757d, A0, Imm(-4096)),
	inst("c.addi16sp", 0x7139, SP, Imm(-64)),
	inst("c.addi4spn", 0x0800, S0, SP, Imm(16)),
	inst("c.lw", 0x41c8, A0, Ptr(A1, 4)),
	inst("c.ld", 0x6588, A0, Ptr(A1, 8)),
	inst("c.sd", 0xffe4, S1, Ptr(A5, 248)),
	inst("c.lwsp", 0x40b2, RA, Ptr(SP, 12)),
	inst("c.ldsp", 0x60a2, RA, Ptr(SP, 8)),
	inst("c.swsp", 0xde2a, A0, Ptr(SP, 60)),
	inst("c.sdsp", 0xff86, RA, Ptr(SP, 504)),
	inst("c.mv", 0x852e, A0, A1),
	inst("c.add", 0x952e, A0, A1),
	inst("c.jr", 0x8082, RA),
	inst("c.srli", 0x800d, S0, Imm(3)),
	inst("c.srai", 0x9785, A5, Imm(33)),
	inst("c.andi", 0x9979, A0, Imm(-2)),
	inst("c.sub", 0x8c05, S0, S1),
	inst("c.and", 0x8f7d, A4, A5),
	inst("c.addw", 0x9d2d, A0, A1),
	inst("c.slli", 0x050a, A0, Imm(2)),

	inst("c.lbu", 0x81e8, A0, Ptr(A1, 3)),
	inst("c.lh", 0x85e8, A0, Ptr(A1, 2)),
	inst("c.sh", 0x8da8, A0, Ptr(A1, 2)),
	inst("c.mul", 0x9d4d, A0, A1),
	inst("c.zext.b", 0x9d61, A0),

	inst("cm.push", 0xb84e, RList{RA}, Imm(-64)),
	inst("cm.popret", 0xbef2, RList{RA, S0, S11}, Imm(112)),
	inst("cm.mvsa01", 0xac26, S0, S1),
	inst("cm.mva01s", 0xad7e, S2, S7),
}

var rv32Cases = []wordCase{
	inst("lui", 0xfffff537, A0, Imm(0xfffff000)),
	inst("lui", 0xfffff537, A0, Imm(-4096)),
	inst("rev8", 0x6985d513, A0, A1),
	inst("rdcycleh", 0xc8002573, A0),
	inst("cm.push", 0xb862, RList{RA, S0, S1}, Imm(-16)),
	inst("cm.pop", 0xba82, RList{RA, S0, S3}, Imm(32)),
	inst("cm.popret", 0xbef2, RList{RA, S0, S11}, Imm(64)),
}

func runCases(t *testing.T, p Profile, cases []wordCase) {
	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%s %v", c.mnemonic, c.args), func(t *testing.T) {
			assert.Equal(t, fmt.Sprintf("%#08x", c.want), fmt.Sprintf("%#08x", encode(t, p, c.mnemonic, c.args...)))
		})
	}
}

func TestRV64Instructions(t *testing.T)       { runCases(t, full64, rv64Cases) }
func TestCompressedInstructions(t *testing.T) { runCases(t, full64, compressedCases) }
func TestRV32Instructions(t *testing.T)       { runCases(t, full32, rv32Cases) }

func TestCompressedSize(t *testing.T) {
	var r recorder
	e := NewEncoder(full64)
	require.NoError(t, e.EncodeInst(&r, "c.mv", A0, A1))
	require.Len(t, r.code, 2)
	require.NoError(t, e.EncodeInst(&r, "C.ADD", A0, A1))
	require.Equal(t, []byte{0x2e, 0x85, 0x2e, 0x95}, r.code)
}

func TestEncodeErrors(t *testing.T) {
	rv32e := RV32E.With(ExtC | ExtZcmp)
	for _, c := range []struct {
		p        Profile
		mnemonic string
		args     []Arg
		want     error
	}{
		{full64, "frob", []Arg{A0}, dynasm.ErrUnknownMnemonic},
		{RV32I, "mul", []Arg{A0, A1, A2}, dynasm.ErrUnknownMnemonic},
		{RV32GC, "ld", []Arg{A0, Ptr(A1, 0)}, dynasm.ErrUnknownMnemonic},
		{RV64I, "c.addi", []Arg{A0, Imm(1)}, dynasm.ErrUnknownMnemonic},
		{RV32GC, "li.43", []Arg{A0, Imm(1)}, dynasm.ErrUnknownMnemonic},
		{full64, "add", []Arg{A0, A1}, dynasm.ErrOperandMismatch},
		{full64, "add", []Arg{A0, A1, F2}, dynasm.ErrOperandMismatch},
		{full64, "addi", []Arg{A0, A0, Imm(2047)}, nil},
		{full64, "addi", []Arg{A0, A0, Imm(2048)}, dynasm.ErrImmediateOutOfRange},
		{full64, "addi", []Arg{A0, A0, Imm(-2049)}, dynasm.ErrImmediateOutOfRange},
		{full64, "slli", []Arg{A0, A0, Imm(64)}, dynasm.ErrImmediateOutOfRange},
		{full32, "slli", []Arg{A0, A0, Imm(32)}, dynasm.ErrImmediateOutOfRange},
		{full64, "lui", []Arg{A0, Imm(0x12345)}, dynasm.ErrMisalignedTarget},
		{full64, "lui", []Arg{A0, Imm(0x80000000)}, dynasm.ErrImmediateOutOfRange},
		{full64, "lw", []Arg{A0, Ptr(A1, 2048)}, dynasm.ErrImmediateOutOfRange},
		{full64, "amoswap.w", []Arg{A0, A1, Ptr(A2, 4)}, dynasm.ErrOperandMismatch},
		{full64, "fadd.s", []Arg{F0, F1, F2, RoundingMode(5)}, dynasm.ErrImmediateOutOfRange},
		{full64, "csrrwi", []Arg{A0, MSTATUS, Imm(32)}, dynasm.ErrImmediateOutOfRange},

		{full64, "c.lw", []Arg{A0, Ptr(A1, 3)}, dynasm.ErrMisalignedTarget},
		{full64, "c.lw", []Arg{A0, Ptr(A1, 128)}, dynasm.ErrImmediateOutOfRange},
		{full64, "c.lw", []Arg{A6, Ptr(A1, 0)}, dynasm.ErrOperandMismatch},
		{full64, "c.lw", []Arg{Dyn(KindX, 16), Ptr(A1, 0)}, dynasm.ErrInvalidRegister},
		{full64, "c.addi", []Arg{A0, Imm(0)}, dynasm.ErrImmediateOutOfRange},
		{full64, "c.add", []Arg{Dyn(KindX, 0), A1}, dynasm.ErrInvalidRegister},
		{full64, "c.lui", []Arg{SP, Imm(4096)}, dynasm.ErrOperandMismatch},
		{full64, "c.addi4spn", []Arg{S0, SP, Imm(0)}, dynasm.ErrImmediateOutOfRange},
		{full64, "c.lwsp", []Arg{A0, Ptr(A1, 0)}, dynasm.ErrOperandMismatch},

		{full64, "cm.push", []Arg{RList{RA, S0, S10}, Imm(-64)}, dynasm.ErrInvalidRegister},
		{full64, "cm.push", []Arg{RList{S0}, Imm(-16)}, dynasm.ErrInvalidRegister},
		{full64, "cm.push", []Arg{RList{RA}, Imm(-8)}, dynasm.ErrImmediateOutOfRange},
		{full64, "cm.push", []Arg{RList{RA}, Imm(16)}, dynasm.ErrImmediateOutOfRange},
		{full64, "cm.mvsa01", []Arg{S0, S0}, dynasm.ErrInvalidRegister},

		{full64, "li", []Arg{A0}, dynasm.ErrOperandMismatch},
		{full64, "li", []Arg{F0, Imm(1)}, dynasm.ErrOperandMismatch},
		{full64, "li.12", []Arg{A0, Imm(2048)}, dynasm.ErrImmediateOutOfRange},
		{full64, "li.32", []Arg{A0, Imm(math.MaxInt32 + 1)}, dynasm.ErrImmediateOutOfRange},
		{full32, "li", []Arg{A0, Imm(math.MaxUint32 + 1)}, dynasm.ErrImmediateOutOfRange},

		{rv32e, "add", []Arg{A0, A1, A6}, dynasm.ErrInvalidRegister},
		{rv32e, "add", []Arg{A0, A1, Dyn(KindX, 16)}, dynasm.ErrInvalidRegister},
		{rv32e, "add", []Arg{A5, A5, Dyn(KindX, 15)}, nil},
		{rv32e, "lw", []Arg{A0, Ptr(S2, 0)}, dynasm.ErrInvalidRegister},
		{rv32e, "li", []Arg{A6, Imm(1)}, dynasm.ErrInvalidRegister},
		{rv32e, "cm.push", []Arg{RList{RA, S0, S2}, Imm(-32)}, dynasm.ErrInvalidRegister},
		{rv32e, "cm.push", []Arg{RList{RA, S0, S1}, Imm(-16)}, nil},
	} {
		var r recorder
		err := NewEncoder(c.p).EncodeInst(&r, c.mnemonic, c.args...)
		if c.want == nil {
			assert.NoError(t, err, "%s %s %v", c.p, c.mnemonic, c.args)
			continue
		}
		assert.True(t, errors.Is(err, c.want), "%s %s %v: got %v, want %v", c.p, c.mnemonic, c.args, err, c.want)
		assert.Empty(t, r.code, "%s %s %v", c.p, c.mnemonic, c.args)
	}
}

func TestOperandMismatchListsForms(t *testing.T) {
	var r recorder
	err := NewEncoder(full64).EncodeInst(&r, "FADD.S", F0, F1)
	var mismatch *dynasm.OperandMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, "fadd.s", mismatch.Mnemonic)
	require.Equal(t, []string{"fadd.s fN, fN, fN{, rm}"}, mismatch.Forms)

	// forms outside the profile are not listed
	require.Equal(t, []string{"slli xN, xN, imm"}, NewEncoder(RV32I).Forms("slli"))
	require.Equal(t, []string{"li xN, imm"}, NewEncoder(RV32I).Forms("li"))
	require.Empty(t, NewEncoder(RV32I).Forms("mul"))
}

func TestDynamicRegisters(t *testing.T) {
	for n := 0; n < 32; n++ {
		r := Dyn(KindX, n)
		assert.Equal(t, uint32(0x33|n<<7|n<<15|n<<20), encode(t, RV64I, "add", r, r, r))
	}
	for n := 8; n < 16; n++ {
		assert.Equal(t, uint32(0x8c61|(n-8)<<7|(n-8)<<2), encode(t, full64, "c.and", Dyn(KindX, n), Dyn(KindX, n)))
	}
	assert.Equal(t, uint32(0x003170d3), encode(t, full64, "fadd.s", Dyn(KindF, 1), Dyn(KindF, 2), Dyn(KindF, 3)))

	var r recorder
	err := NewEncoder(full64).EncodeInst(&r, "add", A0, A1, Dyn(KindX, 32))
	require.True(t, errors.Is(err, dynasm.ErrInvalidRegister))
	err = NewEncoder(full64).EncodeInst(&r, "fadd.s", F0, F1, Dyn(KindX, 2))
	require.True(t, errors.Is(err, dynasm.ErrOperandMismatch))
}

func TestReferences(t *testing.T) {
	l := To(dynasm.Global("l"))
	for _, c := range []struct {
		mnemonic string
		args     []Arg
		kind     RelocKind
		size     int
	}{
		{"beq", []Arg{A0, A1, l}, RelB, 4},
		{"bgt", []Arg{A0, A1, l}, RelB, 4},
		{"jal", []Arg{l}, RelJ, 4},
		{"j", []Arg{l}, RelJ, 4},
		{"c.j", []Arg{l}, RelJC, 2},
		{"c.beqz", []Arg{S0, l}, RelBC, 2},
		{"auipc", []Arg{A0, l}, RelHI20, 4},
		{"lw", []Arg{A0, PtrLabel(A1, l)}, RelLO12, 4},
		{"sw", []Arg{A0, PtrLabel(A1, l)}, RelLO12S, 4},
		{"la", []Arg{A0, l}, RelSPLIT32, 8},
		{"lw", []Arg{A0, l}, RelSPLIT32, 8},
		{"fld", []Arg{FA0, l, T0}, RelSPLIT32, 8},
		{"sd", []Arg{A0, l, T0}, RelSPLIT32S, 8},
		{"call", []Arg{l}, RelSPLIT32, 8},
		{"tail", []Arg{l}, RelSPLIT32, 8},
		{"jump", []Arg{l, T1}, RelSPLIT32, 8},
	} {
		var r recorder
		require.NoError(t, NewEncoder(full64).EncodeInst(&r, c.mnemonic, c.args...), c.mnemonic)
		require.Len(t, r.code, c.size, c.mnemonic)
		require.Len(t, r.refs, 1, c.mnemonic)
		assert.Equal(t, NewReloc(c.kind), r.refs[0].Rel, c.mnemonic)
		assert.Equal(t, dynasm.Global("l"), r.refs[0].Target, c.mnemonic)
	}
}

func TestPseudoPairs(t *testing.T) {
	var r recorder
	e := NewEncoder(full64)
	require.NoError(t, e.EncodeInst(&r, "jump", To(dynasm.Global("l")), T1))
	require.NoError(t, e.EncodeInst(&r, "fsw", FA1, To(dynasm.Global("l")).Add(8), T2))
	words := make([]uint32, len(r.code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(r.code[4*i:])
	}
	assert.Equal(t, []uint32{
		0x00000317, // auipc t1, 0
		0x00030067, // jr t1
		0x00000397, // auipc t2, 0
		0x00b3a027, // fsw fa1, 0(t2)
	}, words)
	assert.Equal(t, int64(8), r.refs[1].Addend)
}

// runLI interprets the instructions emitted by li.
func runLI(t *testing.T, code []byte, xlen int) int64 {
	var x [32]int64
	for i := 0; i < len(code); i += 4 {
		w := binary.LittleEndian.Uint32(code[i:])
		rd, rs := w>>7&31, w>>15&31
		imm := int64(int32(w) >> 20)
		switch {
		case w&0x7f == 0x37:
			x[rd] = int64(int32(w & 0xfffff000))
		case w&0x707f == 0x13:
			x[rd] = x[rs] + imm
		case w&0x707f == 0x1b:
			x[rd] = int64(int32(x[rs] + imm))
		case w&0xfc00707f == 0x1013:
			x[rd] = x[rs] << (w >> 20 & 63)
		default:
			t.Fatalf("unexpected instruction %#08x", w)
		}
		if xlen == 32 {
			x[rd] = int64(int32(x[rd]))
		}
		x[0] = 0
	}
	return x[10]
}

func TestLoadImmediate(t *testing.T) {
	values := []int64{
		0, 1, -1, 2047, -2048, 2048, 0x800, 0x1000, 0x12345678, 0x7ffff800, math.MaxInt32, math.MinInt32,
		0x80000000, 1 << 40, 0x3ff_ffff_ffff, -0x400_0000_0000, 0x1f_ffff_ffff_ffff, 0x123456789abcdef0,
		-0x123456789abcdef0, math.MaxInt64, math.MinInt64,
	}
	for _, v := range values {
		var r recorder
		require.NoError(t, NewEncoder(RV64I).EncodeInst(&r, "li", A0, Imm(v)), "%#x", v)
		assert.Equal(t, v, runLI(t, r.code, 64), "%#x", v)
		assert.LessOrEqual(t, len(r.code), 32, "%#x", v)

		for _, span := range []int{12, 32, 43, 54} {
			if !dynasm.FitsSigned(v, uint(span)) {
				continue
			}
			var r recorder
			mnemonic := fmt.Sprintf("li.%d", span)
			require.NoError(t, NewEncoder(RV64I).EncodeInst(&r, mnemonic, A0, Imm(v)), "%s %#x", mnemonic, v)
			assert.Equal(t, v, runLI(t, r.code, 64), "%s %#x", mnemonic, v)
			assert.Len(t, r.code, 4*[...]int{12: 1, 32: 2, 43: 4, 54: 6}[span], "%s %#x", mnemonic, v)
		}
	}

	for _, v := range []int64{0, -1, 0x7ff, 0x12345678, 0xdeadbeef, math.MaxUint32, math.MinInt32} {
		var r recorder
		require.NoError(t, NewEncoder(RV32I).EncodeInst(&r, "li", A0, Imm(v)), "%#x", v)
		assert.Equal(t, int64(int32(v)), runLI(t, r.code, 32), "%#x", v)
	}
}

func TestLoadImmediateSequences(t *testing.T) {
	for _, c := range []struct {
		p        Profile
		mnemonic string
		v        int64
		want     []uint32
	}{
		{RV64I, "li", -1, []uint32{0xfff00513}},
		{RV64I, "li", 0x1000, []uint32{0x00001537}},
		{RV64I, "li", 0x12345678, []uint32{0x12345537, 0x6785051b}},
		{RV64I, "li", 0x7ffff800, []uint32{0x80000537, 0x8005051b}},
		{RV64I, "li.32", 0x1000, []uint32{0x00001537, 0x0005051b}},
		{RV64I, "li", 1 << 40, []uint32{0x20000537, 0x00b51513}},
		{RV32I, "li", 0xdeadbeef, []uint32{0xdeadc537, 0xeef50513}},
	} {
		var r recorder
		require.NoError(t, NewEncoder(c.p).EncodeInst(&r, c.mnemonic, A0, Imm(c.v)))
		got := make([]uint32, len(r.code)/4)
		for i := range got {
			got[i] = binary.LittleEndian.Uint32(r.code[4*i:])
		}
		assert.Equal(t, c.want, got, "%s %s %#x", c.p, c.mnemonic, c.v)
	}
}

func TestEncodeOperands(t *testing.T) {
	var r recorder
	e := NewEncoder(RV64GC)
	require.NoError(t, e.Encode(&r, "add", []dynasm.Operand{A0, A1, A2}))
	require.Equal(t, uint32(0x00c58533), binary.LittleEndian.Uint32(r.code))

	err := e.Encode(&r, "add", []dynasm.Operand{A0, A1, 2})
	require.True(t, errors.Is(err, dynasm.ErrOperandMismatch))
	require.Equal(t, dynasm.ArchRISCV64, e.Arch())
	require.Equal(t, dynasm.ArchRISCV32, NewEncoder(RV32E).Arch())
}

func TestProfileString(t *testing.T) {
	assert.Equal(t, "rv64imafdc_zicsr_zifencei", RV64GC.String())
	assert.Equal(t, "rv32e", RV32E.String())
	assert.Equal(t, "rv64imafdc_zicsr_zifencei_zba_zbb_zcb_zcmp", full64.String())
	assert.False(t, RV64GC.Without(ExtC).Has(ExtC))
	assert.Equal(t, 64, NewEncoder(Profile{}).Profile().XLEN)
}
