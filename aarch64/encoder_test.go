package aarch64

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/arm64/arm64asm"

	"github.com/wdamron/dynasm"
)

// recorder collects appended words without an assembler.
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

func encodeWord(t *testing.T, mnemonic string, args ...Arg) uint32 {
	t.Helper()
	var r recorder
	require.NoError(t, NewEncoder().EncodeInst(&r, mnemonic, args...), "%s %v", mnemonic, args)
	require.Len(t, r.code, 4)
	return binary.LittleEndian.Uint32(r.code)
}

type wordCase struct {
	mnemonic string
	args     []Arg
	want     uint32
}

func inst(mnemonic string, want uint32, args ...Arg) wordCase {
	return wordCase{mnemonic: mnemonic, args: args, want: want}
}

var integerCases = []wordCase{
	inst("add", 0x8b020020, X0, X1, X2),
	inst("add", 0x910043e0, X0, SP, Imm(16)),
	inst("add", 0x11400420, W0, W1, Imm(1), LSL(12)),
	inst("add", 0x11400420, W0, W1, Imm(0x1000)),
	inst("add", 0x8b22c020, X0, X1, W2, SXTW()),
	inst("add", 0x8b020c20, X0, X1, X2, LSL(3)),
	inst("sub", 0xd10083ff, SP, SP, Imm(32)),
	inst("subs", 0xeb020020, X0, X1, X2),
	inst("cmp", 0xf100001f, X0, Imm(0)),
	inst("cmp", 0x6b02003f, W1, W2),
	inst("cmn", 0xb100041f, X0, Imm(1)),
	inst("neg", 0xcb0103e0, X0, X1),

	inst("and", 0x92401c20, X0, X1, Imm(0xff)),
	inst("orr", 0xb200f3e0, X0, XZR, Imm(0x5555555555555555)),
	inst("eor", 0xca020020, X0, X1, X2),
	inst("tst", 0xf240001f, X0, Imm(1)),
	inst("mvn", 0x2a2103e0, W0, W1),

	inst("mov", 0xaa0103e0, X0, X1),
	inst("mov", 0x2a0103e0, W0, W1),
	inst("mov", 0x910003e0, X0, SP),
	inst("mov", 0x9100001f, SP, X0),
	inst("mov", 0x52a00020, W0, Imm(0x10000)),
	inst("mov", 0x92800000, X0, Imm(-1)),
	inst("mov", 0x12800020, W0, Imm(-2)),
	inst("mov", 0xb200f3e0, X0, Imm(0x5555555555555555)),
	inst("movz", 0xd2800540, X0, Imm(42)),
	inst("movk", 0xf2a24680, X0, Imm(0x1234), LSL(16)),

	inst("lsl", 0xd37cec20, X0, X1, Imm(4)),
	inst("lsr", 0x53037c20, W0, W1, Imm(3)),
	inst("lsr", 0xd344fc20, X0, X1, Imm(4)),
	inst("asr", 0x937ffc20, X0, X1, Imm(63)),
	inst("lsl", 0x9ac22020, X0, X1, X2),
	inst("ubfx", 0xd3483c20, X0, X1, Imm(8), Imm(8)),
	inst("sxtw", 0x93407c20, X0, W1),
	inst("uxtb", 0x53001c20, W0, W1),

	inst("mul", 0x9b027c20, X0, X1, X2),
	inst("madd", 0x9b020c20, X0, X1, X2, X3),
	inst("sdiv", 0x1ac20c20, W0, W1, W2),
	inst("umulh", 0x9bc27c20, X0, X1, X2),
	inst("clz", 0xdac01020, X0, X1),
	inst("rev", 0xdac00c20, X0, X1),

	inst("csel", 0x9a820020, X0, X1, X2, EQ),
	inst("cset", 0x1a9f17e0, W0, EQ),
	inst("cinc", 0x9a81a420, X0, X1, LT),
	inst("ccmp", 0xfa451804, X0, Imm(5), Imm(4), NE),

	inst("ret", 0xd65f03c0),
	inst("ret", 0xd65f0020, X1),
	inst("br", 0xd61f0200, X16),
	inst("blr", 0xd63f0020, X1),
	inst("svc", 0xd4000001, Imm(0)),
	inst("brk", 0xd4200020, Imm(1)),
	inst("nop", 0xd503201f),
	inst("dmb", 0xd5033bbf, ISH),
	inst("isb", 0xd5033fdf),
	inst("mrs", 0xd53b4200, X0, NZCV),
	inst("mrs", 0xd53bd040, X0, TPIDR_EL0),
	inst("msr", 0xd51b4201, NZCV, X1),
}

var memoryCases = []wordCase{
	inst("ldr", 0xf9400020, X0, Ptr(X1, 0)),
	inst("ldr", 0xf9400420, X0, Ptr(X1, 8)),
	inst("ldr", 0xf8404020, X0, Ptr(X1, 4)),
	inst("ldr", 0xb85fc020, W0, Ptr(X1, -4)),
	inst("ldur", 0xb85fc020, W0, Ptr(X1, -4)),
	inst("ldr", 0xf8408c20, X0, Pre(X1, 8)),
	inst("ldr", 0xf8408420, X0, Post(X1, 8)),
	inst("str", 0xb9000fe0, W0, Ptr(SP, 12)),
	inst("ldrb", 0x38626820, W0, Idx(X1, X2)),
	inst("ldr", 0xf86c5962, X2, Idx(X11, W12, UXTW(3))),
	inst("ldr", 0xf8627820, X0, Idx(X1, X2, LSL(3))),
	inst("stp", 0xa9bf7bfd, X29, X30, Pre(SP, -16)),
	inst("ldp", 0xa8c17bfd, X29, X30, Post(SP, 16)),
	inst("ldr", 0x3dc00000, Q0, Ptr(X0, 0)),
	inst("ldr", 0xfd4007e1, D1, Ptr(SP, 8)),
	inst("ldxr", 0xc85f7c20, X0, Ptr(X1, 0)),
	inst("stxr", 0xc8027c20, W2, X0, Ptr(X1, 0)),
}

var vectorCases = []wordCase{
	inst("fadd", 0x1e622820, D0, D1, D2),
	inst("fmov", 0x1e6e1000, D0, FImm(1.0)),
	inst("fmov", 0x9e660020, X0, D1),
	inst("fcmp", 0x1e202008, S0, FImm(0)),
	inst("scvtf", 0x9e620020, D0, X1),
	inst("fcvtzs", 0x1e780020, W0, D1),
	inst("fcvt", 0x1e22c020, D0, S1),

	inst("add", 0x4ea28420, V0.Arr(Arr4S), V1.Arr(Arr4S), V2.Arr(Arr4S)),
	inst("fmul", 0x6e62dc20, V0.Arr(Arr2D), V1.Arr(Arr2D), V2.Arr(Arr2D)),
	inst("eor", 0x6e201c00, V0.Arr(Arr16B), V0.Arr(Arr16B), V0.Arr(Arr16B)),
	inst("mov", 0x4ea11c20, V0.Arr(Arr16B), V1.Arr(Arr16B)),
	inst("dup", 0x4e040c20, V0.Arr(Arr4S), W1),
	inst("mov", 0x0e0c3c20, W0, V1.Elem(ElemS, 1)),
	inst("ins", 0x4e181c20, V0.Elem(ElemD, 1), X1),
	inst("movi", 0x4f07e7e0, V0.Arr(Arr16B), Imm(0xff)),
	inst("movi", 0x2f05e540, D0, Imm(-0xff00ff00ff0100)),
	inst("ld1", 0x4c407000, List(V0, Arr16B, 1), Ptr(X0, 0)),
	inst("st1", 0x4c9fa820, List(V0, Arr4S, 2), Post(X1, 32)),
}

func runCases(t *testing.T, cases []wordCase) {
	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%s %v", c.mnemonic, c.args), func(t *testing.T) {
			assert.Equal(t, fmt.Sprintf("%#08x", c.want), fmt.Sprintf("%#08x", encodeWord(t, c.mnemonic, c.args...)))
		})
	}
}

func TestIntegerInstructions(t *testing.T) { runCases(t, integerCases) }
func TestMemoryInstructions(t *testing.T)  { runCases(t, memoryCases) }
func TestVectorInstructions(t *testing.T)  { runCases(t, vectorCases) }

func TestDecodesAsValidInstructions(t *testing.T) {
	for _, cases := range [][]wordCase{integerCases, memoryCases} {
		for _, c := range cases {
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], c.want)
			_, err := arm64asm.Decode(buf[:])
			assert.NoError(t, err, "%s %v", c.mnemonic, c.args)
		}
	}
}

func TestConditionalBranchMnemonics(t *testing.T) {
	var r recorder
	e := NewEncoder()
	require.NoError(t, e.EncodeInst(&r, "b.ne", To(dynasm.Global("l"))))
	require.NoError(t, e.EncodeInst(&r, "B.HS", To(dynasm.Global("l"))))
	require.Equal(t, uint32(0x54000001), binary.LittleEndian.Uint32(r.code))
	require.Equal(t, uint32(0x54000002), binary.LittleEndian.Uint32(r.code[4:]))
	require.Len(t, r.refs, 2)
	require.Equal(t, NewReloc(RelBCond), r.refs[0].Rel)

	err := e.EncodeInst(&r, "b.xx", To(dynasm.Global("l")))
	require.True(t, errors.Is(err, dynasm.ErrUnknownMnemonic))
}

func TestEncodeErrors(t *testing.T) {
	e := NewEncoder()
	for _, c := range []struct {
		mnemonic string
		args     []Arg
		want     error
	}{
		{"frob", []Arg{X0}, dynasm.ErrUnknownMnemonic},
		{"add", []Arg{X0, X1}, dynasm.ErrOperandMismatch},
		{"add", []Arg{X0, W1, X2}, dynasm.ErrOperandMismatch},
		{"add", []Arg{X0, X1, Imm(4097)}, dynasm.ErrImmediateOutOfRange},
		{"add", []Arg{X0, X1, Imm(1), LSL(3)}, dynasm.ErrImmediateOutOfRange},
		{"and", []Arg{X0, X1, Imm(0)}, dynasm.ErrImmediateOutOfRange},
		{"and", []Arg{W0, W1, Imm(0x1_0000_0000)}, dynasm.ErrImmediateOutOfRange},
		{"mov", []Arg{X0, Imm(0x1234_5678)}, dynasm.ErrOperandMismatch},
		{"movz", []Arg{X0, Imm(1), LSL(8)}, dynasm.ErrImmediateOutOfRange},
		{"lsl", []Arg{W0, W1, Imm(32)}, dynasm.ErrImmediateOutOfRange},
		{"tbz", []Arg{W0, Imm(32), To(dynasm.Global("l"))}, dynasm.ErrImmediateOutOfRange},
		{"ldr", []Arg{X0, Ptr(X1, 256)}, nil},
		{"ldr", []Arg{X0, Ptr(X1, 32761)}, dynasm.ErrImmediateOutOfRange},
		{"ldr", []Arg{X0, Idx(X1, W2)}, dynasm.ErrOperandMismatch},
		{"ldr", []Arg{X0, Idx(X1, X2, LSL(2))}, dynasm.ErrImmediateOutOfRange},
		{"stp", []Arg{X0, X1, Ptr(SP, 4)}, dynasm.ErrMisalignedTarget},
		{"fmov", []Arg{D0, FImm(0.1)}, dynasm.ErrImmediateOutOfRange},
		{"ld1", []Arg{VList{V0.Arr(Arr16B), V2.Arr(Arr16B)}, Ptr(X0, 0)}, dynasm.ErrInvalidRegister},
		{"st1", []Arg{List(V0, Arr4S, 2), Post(X1, 16)}, dynasm.ErrImmediateOutOfRange},
		{"mov", []Arg{W0, V1.Elem(ElemS, 4)}, dynasm.ErrImmediateOutOfRange},
		{"add", []Arg{X0, Dyn(KindX, 31), Imm(1)}, dynasm.ErrInvalidRegister},
		{"add", []Arg{X0, Dyn(KindX, 32), X1}, dynasm.ErrInvalidRegister},
		{"add", []Arg{V0.Arr(Arr4S), V1.Arr(Arr4S), V2.Arr(Arr2S)}, dynasm.ErrOperandMismatch},
	} {
		var r recorder
		err := e.EncodeInst(&r, c.mnemonic, c.args...)
		if c.want == nil {
			assert.NoError(t, err, "%s %v", c.mnemonic, c.args)
			continue
		}
		assert.True(t, errors.Is(err, c.want), "%s %v: got %v, want %v", c.mnemonic, c.args, err, c.want)
		assert.Empty(t, r.code, "%s %v", c.mnemonic, c.args)
	}
}

func TestOperandMismatchListsForms(t *testing.T) {
	var r recorder
	err := NewEncoder().EncodeInst(&r, "ADD", X0, X1)
	var mismatch *dynasm.OperandMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, "add", mismatch.Mnemonic)
	require.Contains(t, mismatch.Forms, "add Xn|SP, Xn|SP, #imm{, lsl #n}")
	require.Contains(t, mismatch.Forms, "add Xn, Xn, Xn{, lsl|lsr|asr #n}")
}

func TestDynamicRegisters(t *testing.T) {
	for n := 0; n < 31; n++ {
		got := encodeWord(t, "add", Dyn(KindX, n), Dyn(KindX, n), Imm(1))
		assert.Equal(t, uint32(0x91000400|n<<5|n), got)
	}
	// a dynamic stack pointer in a register slot
	assert.Equal(t, uint32(0x910003e0), encodeWord(t, "add", X0, Dyn(KindSP, 31), Imm(0)))
}

func TestEncodeOperands(t *testing.T) {
	var r recorder
	e := NewEncoder()
	require.NoError(t, e.Encode(&r, "add", []dynasm.Operand{X0, X1, X2}))
	require.Equal(t, uint32(0x8b020020), binary.LittleEndian.Uint32(r.code))

	err := e.Encode(&r, "add", []dynasm.Operand{X0, X1, 2})
	require.True(t, errors.Is(err, dynasm.ErrOperandMismatch))
	require.Equal(t, dynasm.ArchAArch64, e.Arch())
}
