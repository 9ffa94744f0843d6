package x64

import (
	"encoding/binary"
	"fmt"
	"strings"
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"

	"github.com/wdamron/dynasm"
	"github.com/wdamron/dynasm/x64/feats"
	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

// Hard-coded instruction sequences are manually verified through the following tools:
//   * ODA: https://onlinedisassembler.com/odaweb/
//   * Shell-Storm: http://shell-storm.org/online/Online-Assembler-and-Disassembler/

// assemble runs build against a fresh assembler and returns the finalized code.
func assemble(t *testing.T, mode Mode, build func(asm *Assembler) error) []byte {
	t.Helper()
	asm := NewAssembler(mode, nil)
	defer asm.Close()
	if err := build(asm); err != nil {
		t.Fatal(err)
	}
	buf, err := asm.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Close()
	return append([]byte(nil), buf.Bytes()...)
}

func TestInstName(t *testing.T) {
	if ADC.Name() != "ADC" {
		t.Fatalf("ADC.Name() = %s", ADC.Name())
	}
	if MOV.Name() != "MOV" {
		t.Fatalf("MOV.Name() = %s", MOV.Name())
	}
	if VZEROUPPER.Name() != "VZEROUPPER" {
		t.Fatalf("VZEROUPPER.Name() = %s", VZEROUPPER.Name())
	}
	for _, name := range []string{"adc", "Mov", "VZEROUPPER"} {
		inst, ok := Lookup(name)
		if !ok || !strings.EqualFold(inst.Name(), name) {
			t.Fatalf("Lookup(%q) = %s, %v", name, inst, ok)
		}
	}
	if _, ok := Lookup("frobnicate"); ok {
		t.Fatalf("Lookup(frobnicate) succeeded")
	}
}

func TestStaticDataSize(t *testing.T) {
	if unsafe.Sizeof(enc{}) != 16 {
		t.Fatalf("sizeof(enc) = %v", unsafe.Sizeof(enc{}))
	}
	size := len(encs) * int(unsafe.Sizeof(enc{}))
	// for each mnemonic: 4 bytes for the Inst + 2 bytes for the entry in instNameOffsets:
	size += len(instNameOffsets) * int(unsafe.Sizeof(ADD)+unsafe.Sizeof(instNameOffsets[0]))
	// packed string containing all instruction names:
	size += len(instNames)
	// for each arg-pattern: 8 bytes for the format + 1 byte for the argp constant:
	size += len(argpFormats) * int(unsafe.Sizeof(argpFormats[0])+unsafe.Sizeof(argp_))
	t.Logf("static data size %v", size)
	if size > 0xffff { // this can be revisited if the layout changes
		t.Fatalf("static data size exceeds %v", 0xffff)
	}
}

func TestEncode(t *testing.T) {
	_expect := func(s string, code []byte) {
		t.Helper()
		decoded, err := x86asm.Decode(code, 64)
		if err != nil {
			t.Fatal(err)
		}
		intel := x86asm.IntelSyntax(decoded, 0, nil)
		if intel != s {
			t.Logf("encoded inst = %#x\n", code)
			t.Fatalf("decoded inst = %s != %s", intel, s)
		}
		if decoded.Len != len(code) {
			t.Fatalf("decoded %d of %d bytes for %s", decoded.Len, len(code), s)
		}
	}
	check := func(expect string, inst Inst, args ...Arg) {
		t.Helper()
		_expect(expect, assemble(t, X64, func(asm *Assembler) error { return asm.Inst(inst, args...) }))
	}
	checkregreg := func(expect string, inst Inst, dst, src Reg) {
		t.Helper()
		_expect(expect, assemble(t, X64, func(asm *Assembler) error { return asm.RR(inst, dst, src) }))
	}
	checkregmem := func(expect string, inst Inst, dst Reg, src Mem) {
		t.Helper()
		_expect(expect, assemble(t, X64, func(asm *Assembler) error { return asm.RM(inst, dst, src) }))
	}
	checkmemreg := func(expect string, inst Inst, dst Mem, src Reg) {
		t.Helper()
		_expect(expect, assemble(t, X64, func(asm *Assembler) error { return asm.MR(inst, dst, src) }))
	}
	checkregimm := func(expect string, inst Inst, dst Reg, imm ImmArg) {
		t.Helper()
		_expect(expect, assemble(t, X64, func(asm *Assembler) error { return asm.RI(inst, dst, imm) }))
	}
	checkmemimm := func(expect string, inst Inst, dst Mem, imm ImmArg) {
		t.Helper()
		_expect(expect, assemble(t, X64, func(asm *Assembler) error { return asm.MI(inst, dst, imm) }))
	}
	checkhex := func(expect string, inst Inst, args ...Arg) {
		t.Helper()
		code := assemble(t, X64, func(asm *Assembler) error { return asm.Inst(inst, args...) })
		if fmt.Sprintf("%#x", code) != expect {
			t.Fatalf("%s %v = %#x != %s", inst, args, code, expect)
		}
	}

	check("mov al, 0x1", MOV, AL, Imm8(1))
	checkregimm("mov al, 0x1", MOV, AL, Imm8(1))
	check("mov ah, 0x1", MOV, AH, Imm8(1))
	checkregimm("mov ah, 0x1", MOV, AH, Imm8(1))
	check("mov ax, 0x1", MOV, AX, Imm8(1)) // Imm8 will be auto-expanded to Imm16
	checkregimm("mov ax, 0x1", MOV, AX, Imm8(1))
	check("mov ax, 0x1", MOV, AX, Imm16(1))
	checkregimm("mov ax, 0x1", MOV, AX, Imm16(1))
	check("mov rax, 0x7fffffffffffffff", MOV, RAX, Imm64(0x7fffffffffffffff))
	checkregimm("mov rax, 0x7fffffffffffffff", MOV, RAX, Imm64(0x7fffffffffffffff))
	check("mov rax, r13", MOV, RAX, R13)
	checkregreg("mov rax, r13", MOV, RAX, R13)
	check("add rax, rbx", ADD, RAX, RBX)
	checkregreg("add rax, rbx", ADD, RAX, RBX)
	check("add rax, 0x1", ADD, RAX, Imm8(1))
	checkregimm("add rax, 0x1", ADD, RAX, Imm8(1))
	check("add qword ptr [rax], 0x1", ADD, Mem{Base: RAX, Width: 8}, Imm8(1))
	checkmemimm("add qword ptr [rax], 0x1", ADD, Mem{Base: RAX, Width: 8}, Imm8(1))
	check("add byte ptr [rax], 0x1", ADD, Mem{Base: RAX}, Imm(1))
	check("xor rax, rbx", XOR, RAX, RBX)
	checkregreg("xor rax, rbx", XOR, RAX, RBX)
	check("pxor xmm1, xmm2", PXOR, X1, X2)
	checkregreg("pxor xmm1, xmm2", PXOR, X1, X2)
	check("mov rax, qword ptr [rbx]", MOV, RAX, Mem{Base: RBX})
	checkregmem("mov rax, qword ptr [rbx]", MOV, RAX, Mem{Base: RBX})
	check("mov qword ptr [rax], rbx", MOV, Mem{Base: RAX}, RBX)
	checkmemreg("mov qword ptr [rax], rbx", MOV, Mem{Base: RAX}, RBX)
	check("mov qword ptr [r13], rbx", MOV, Mem{Base: R13}, RBX)
	checkmemreg("mov qword ptr [r13], rbx", MOV, Mem{Base: R13}, RBX)
	check("mov qword ptr [rsp], rbx", MOV, Mem{Base: RSP}, RBX)
	check("mov qword ptr [r12+0x8], rbx", MOV, Mem{Base: R12, Disp: Rel(8)}, RBX)
	check("mov qword ptr [rbp], rbx", MOV, Mem{Base: RBP}, RBX)
	check("mov rax, qword ptr [rbx+r15*1]", MOV, RAX, Mem{Base: RBX, Index: R15})
	checkregmem("mov rax, qword ptr [rbx+r15*1]", MOV, RAX, Mem{Base: RBX, Index: R15})
	check("mov rax, qword ptr [rbx+r15*2]", MOV, RAX, Mem{Base: RBX, Index: R15, Scale: 2})
	checkregmem("mov rax, qword ptr [rbx+r15*2]", MOV, RAX, Mem{Base: RBX, Index: R15, Scale: 2})
	check("mov rax, qword ptr [rbx+r15*2+0x8]", MOV, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: Rel8(8)})
	checkregmem("mov rax, qword ptr [rbx+r15*2+0x8]", MOV, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: Rel8(8)})
	check("mov rax, qword ptr [rbx+r15*2+0x8]", MOV, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: Rel32(8)})
	checkregmem("mov rax, qword ptr [rbx+r15*2+0x8]", MOV, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: Rel32(8)})
	check("lea rax, ptr [rbx+r15*2+0x8]", LEA, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: Rel8(8)})
	checkregmem("lea rax, ptr [rbx+r15*2+0x8]", LEA, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: Rel8(8)})
	check("lea rax, ptr [rbx+r15*2+0x8]", LEA, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: Rel32(8)})
	checkregmem("lea rax, ptr [rbx+r15*2+0x8]", LEA, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: Rel32(8)})
	check("jz .+0x4", JZ, Rel8(4))
	check("jz .-0x4", JZ, Rel8(-4))
	check("jz .+0x8000", JZ, Rel32(32768))
	check("jz .-0x8000", JZ, Rel32(-32768))
	check("jmp qword ptr [rax]", JMP, Mem{Base: RAX})
	check("push qword ptr [rax]", PUSH, Mem{Base: RAX})
	check("lea rax, ptr [rip+0x10]", LEA, RAX, Mem{Base: RIP, Disp: Rel8(16)})
	checkregmem("lea rax, ptr [rip+0x10]", LEA, RAX, Mem{Base: RIP, Disp: Rel8(16)})

	// immediates without an explicit size
	checkhex("0x48c7c02a000000", MOV, RAX, Imm32(42))
	checkhex("0x48c7c02a000000", MOV, RAX, Imm(42))
	checkhex("0xb82a000000", MOV, EAX, Imm(42))
	checkhex("0x48c7c0ffffffff", MOV, RAX, Imm(-1))
	checkhex("0x48b80000000000010000", MOV, RAX, Imm(1<<40))
	checkhex("0x4883c005", ADD, RAX, Imm8(5))
	checkhex("0x480505000000", ADD, RAX, Imm(5))

	// memory operands
	checkhex("0xff44c310", INC, Mem{Base: RBX, Index: RAX, Scale: 8, Disp: Rel(16), Width: 4})
	checkhex("0x488b04c5f0ffffff", MOV, RAX, Mem{Index: RAX, Scale: 8, Disp: Rel(-16)})
	checkhex("0x488b0440", MOV, RAX, Mem{Index: RAX, Scale: 3}) // [rax+rax*2]
	checkhex("0x488b044500000000", MOV, RAX, Mem{Index: RAX, Scale: 2, NoSplit: true})
	checkhex("0xff242500100000", JMP, Mem{Disp: Rel(0x1000)})
	checkhex("0x64488b042528000000", MOV, RAX, Mem{Seg: FS, Disp: Rel(0x28)})
	checkhex("0x678b00", MOV, EAX, Mem{Base: EAX})

	// VEX encodings:

	checkhex("0xc5f1c60302", VSHUFPD, X0, X1, Mem{Base: RBX, Width: 16}, Imm8(2))
	checkhex("0xc5f5c6c301", VSHUFPD, Y0, Y1, Y3, Imm8(1))
	checkhex("0xc4c171efc2", VPXOR, X0, X1, X10)

	// VSIB addressing:

	checkhex("0xc4e26992040a", VGATHERDPS, X0, Mem{Base: RDX, Index: X1}, X2)
	checkhex("0xc4e26993448a40", VGATHERQPS, X0, Mem{Base: RDX, Index: X1, Disp: Rel8(64), Scale: 4}, X2)

	// With CPU features disabled:

	asm := NewAssembler(X64, nil)
	defer asm.Close()
	if err := asm.Inst(VSHUFPD, X0, X1, X3, Imm8(1)); err != nil {
		t.Fatal(err)
	}
	asm.DisableFeature(feats.AVX)
	if err := asm.Inst(VSHUFPD, X0, X1, X3, Imm8(1)); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("Expected no matching instruction for VSHUFPD with AVX disabled, got %v", err)
	}
}

func TestWildcardSizes(t *testing.T) {
	checkhex := func(mode Mode, expect string, inst Inst, args ...Arg) {
		t.Helper()
		code := assemble(t, mode, func(asm *Assembler) error { return asm.Inst(inst, args...) })
		if fmt.Sprintf("%#x", code) != expect {
			t.Fatalf("%s %v = %#x != %s", inst, args, code, expect)
		}
	}
	checkhex(X64, "0xff44c310", INC, Mem{Base: RBX, Index: RAX, Scale: 8, Disp: Rel(16), Width: 4})
	checkhex(X64, "0x48ffc0", INC, RAX)
	checkhex(X64, "0xffc0", INC, EAX)
	checkhex(X64, "0x66ffc0", INC, AX)
	checkhex(X64, "0x4889d8", MOV, RAX, RBX)
	checkhex(X86, "0x40", INC, EAX)
	checkhex(X86, "0x89d8", MOV, EAX, EBX)
	checkhex(X64, "0xc5f5efc2", VPXOR, Y0, Y1, Y2)
	checkhex(X64, "0xc5f1efc2", VPXOR, X0, X1, X2)

	code := assemble(t, X64, func(asm *Assembler) error { return asm.Inst(ADD, EAX, EBX) })
	decoded, err := x86asm.Decode(code, 64)
	if err != nil {
		t.Fatal(err)
	}
	if intel := x86asm.IntelSyntax(decoded, 0, nil); intel != "add eax, ebx" || decoded.Len != len(code) {
		t.Fatalf("add eax, ebx = %#x (%s)", code, intel)
	}

	// jmp byte >l; inc rax; l: dec rax; jmp byte <l
	code = assemble(t, X64, func(asm *Assembler) error {
		asm.Inst(JMP, To(dynasm.Forward("l")).Rel8())
		asm.Inst(INC, RAX)
		asm.LocalLabel("l")
		asm.Inst(DEC, RAX)
		return asm.Inst(JMP, To(dynasm.Backward("l")).Rel8())
	})
	if code[1] != 3 || int8(code[len(code)-1]) != -5 {
		t.Fatalf("label displacements = %#x", code)
	}

	if Y0.Width() != 32 || Y15.Width() != 32 || X15.Width() != 16 {
		t.Fatalf("vector widths = %d, %d, %d", Y0.Width(), Y15.Width(), X15.Width())
	}
}

func TestAlignPC(t *testing.T) {
	code := assemble(t, X64, func(asm *Assembler) error {
		if err := asm.Inst(MOV, RAX, RBX); err != nil {
			return err
		}
		return asm.AlignPC(16)
	})
	if len(code) != 16 {
		t.Fatalf("len(code) = %d", len(code))
	}
	// decode mov
	decoded, err := x86asm.Decode(code, 64)
	if err != nil {
		t.Fatal(err)
	}
	intel := x86asm.IntelSyntax(decoded, 0, nil)
	if intel != "mov rax, rbx" {
		t.Logf("encoded inst = %#x\n", code)
		t.Fatalf("decoded inst = %s != mov rax, rbx", intel)
	}
	// decode nops
	for rest := code[decoded.Len:]; len(rest) > 0; rest = rest[decoded.Len:] {
		decoded, err = x86asm.Decode(rest, 64)
		if err != nil {
			t.Fatal(err)
		}
		intel = x86asm.IntelSyntax(decoded, 0, nil)
		if !strings.HasPrefix(intel, "nop") {
			t.Logf("encoded inst = %#x\n", code)
			t.Fatalf("decoded inst = %s != nop ...", intel)
		}
	}
}

func TestNop(t *testing.T) {
	for n := 1; n <= 20; n++ {
		code := appendNops(nil, n)
		if len(code) != n {
			t.Fatalf("len(nop %d) = %d", n, len(code))
		}
		for rest := code; len(rest) > 0; {
			decoded, err := x86asm.Decode(rest, 64)
			if err != nil {
				t.Fatal(err)
			}
			if decoded.Op != x86asm.NOP {
				t.Fatalf("nop %d decoded as %s", n, x86asm.IntelSyntax(decoded, 0, nil))
			}
			rest = rest[decoded.Len:]
		}
	}
}

func TestRelocs(t *testing.T) {
	expect := func(want string, code []byte) {
		t.Helper()
		t.Logf("%#x", code)
		if fmt.Sprintf("%#x", code) != want {
			t.Fatalf("encoded = %#x != %s", code, want)
		}
	}

	// 8-bit displacements
	code := assemble(t, X64, func(asm *Assembler) error {
		asm.LocalLabel("a")
		asm.Inst(MOV, RAX, RBX)
		asm.Inst(ADD, RAX, Imm8(5))
		asm.LocalLabel("b")
		asm.Inst(ADD, RBX, Imm8(1))
		asm.Inst(JMP, To(dynasm.Backward("a")).Rel8())
		asm.LocalLabel("c")
		asm.Inst(ADD, RBX, Imm8(1))
		asm.Inst(JMP, To(dynasm.Backward("b")).Rel8())
		return asm.Inst(JMP, To(dynasm.Backward("c")).Rel8())
	})
	expect("0x4889d84883c0054883c301ebf34883c301ebf4ebf8", code)

	// 32-bit displacement
	code = assemble(t, X64, func(asm *Assembler) error {
		asm.LocalLabel("a")
		asm.Inst(MOV, RAX, RBX)
		asm.Inst(ADD, RAX, Imm8(5))
		asm.Inst(ADD, RBX, Imm8(1))
		return asm.Inst(JMP, To(dynasm.Backward("a")).Rel32())
	})
	expect("0x4889d84883c0054883c301e9f0ffffff", code)

	// auto 32-bit displacement
	code = assemble(t, X64, func(asm *Assembler) error {
		asm.LocalLabel("a")
		asm.Inst(MOV, RAX, RBX)
		asm.Inst(ADD, RAX, Imm8(5))
		asm.Inst(ADD, RBX, Imm8(1))
		return asm.Inst(JMP, To(dynasm.Backward("a")))
	})
	expect("0x4889d84883c0054883c301e9f0ffffff", code)

	// label reference with additional 8-bit displacement
	code = assemble(t, X64, func(asm *Assembler) error {
		asm.LocalLabel("a")
		asm.Inst(MOV, RAX, RBX)
		asm.Inst(ADD, RAX, Imm8(5))
		delta := asm.Offset()
		asm.Inst(ADD, RBX, Imm8(1))
		return asm.Inst(JMP, To(dynasm.Backward("a")).Disp8(int8(delta))) // jump to middle of block
	})
	expect("0x4889d84883c0054883c301ebfa", code)

	// label reference with additional 32-bit displacement
	code = assemble(t, X64, func(asm *Assembler) error {
		asm.LocalLabel("a")
		asm.Inst(MOV, RAX, RBX)
		asm.Inst(ADD, RAX, Imm8(5))
		delta := asm.Offset()
		asm.Inst(ADD, RBX, Imm8(1))
		return asm.Inst(JMP, To(dynasm.Backward("a")).Disp32(int32(delta))) // jump to middle of block
	})
	expect("0x4889d84883c0054883c301e9f7ffffff", code)

	// label reference with RIP-relative addressing
	code = assemble(t, X64, func(asm *Assembler) error {
		asm.LocalLabel("a")
		asm.Inst(MOV, RAX, RBX)
		delta := asm.Offset()
		asm.Inst(MOV, RBX, RAX)
		return asm.Inst(LEA, RAX, Mem{Base: RIP, Disp: To(dynasm.Backward("a")).Disp32(int32(delta))})
	})
	expect("0x4889d84889c3488d05f6ffffff", code)

	// forward references are patched when the label is defined
	code = assemble(t, X64, func(asm *Assembler) error {
		asm.Inst(JMP, To(dynasm.Forward("skip")).Rel8())
		asm.Inst(INC, RAX)
		asm.LocalLabel("skip")
		asm.Inst(DEC, RAX)
		return asm.Inst(JMP, To(dynasm.Backward("skip")).Rel8())
	})
	expect("0xeb0348ffc048ffc8ebfb", code)

	// global and dynamic labels are bound at commit
	code = assemble(t, X64, func(asm *Assembler) error {
		id := asm.NewDynamicLabel()
		asm.Inst(JMP, To(id.Target()))
		asm.Inst(JZ, To(dynasm.Global("end")))
		asm.DynamicLabel(id)
		asm.GlobalLabel("end")
		return asm.Inst(RET)
	})
	expect("0xe9060000000f8400000000c3", code)
}

func TestRelocErrors(t *testing.T) {
	asm := NewAssembler(X64, nil)
	defer asm.Close()
	require.NoError(t, asm.Inst(JMP, To(dynasm.Forward("far")).Rel8()))
	require.NoError(t, asm.Nop(200))
	err := asm.LocalLabel("far")
	require.ErrorIs(t, err, dynasm.ErrImpossibleRelocation)

	asm = NewAssembler(X64, nil)
	defer asm.Close()
	require.NoError(t, asm.Inst(CALL, To(dynasm.Global("missing"))))
	_, err = asm.Finalize()
	var unknown *dynasm.UnknownLabelError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "missing", unknown.Name)
}

func TestAddr(t *testing.T) {
	asm := NewAssembler(X64, nil)
	defer asm.Close()
	require.NoError(t, asm.Inst(MOV, RAX, Addr(dynasm.Global("data"))))
	require.NoError(t, asm.Inst(RET))
	require.NoError(t, asm.Align(8, 0))
	require.NoError(t, asm.GlobalLabel("data"))
	require.NoError(t, asm.PushU64(0x1122334455667788))
	buf, err := asm.Finalize()
	require.NoError(t, err)
	defer buf.Close()

	code := buf.Bytes()
	require.Equal(t, []byte{0x48, 0xb8}, code[:2])
	require.Equal(t, uint64(buf.Ptr(16)), binary.LittleEndian.Uint64(code[2:10]))
	require.Equal(t, uint64(0x1122334455667788), binary.LittleEndian.Uint64(code[16:]))
}

func TestPrefixes(t *testing.T) {
	code := assemble(t, X64, func(asm *Assembler) error {
		if err := asm.Emit("lock add", Mem{Base: RDI, Width: 8}, RAX); err != nil {
			return err
		}
		if err := asm.Emit("rep movsb"); err != nil {
			return err
		}
		return asm.Lock(INC, Mem{Base: RAX, Width: 4})
	})
	require.Equal(t, []byte{0xf0, 0x48, 0x01, 0x07, 0xf3, 0xa4, 0xf0, 0xff, 0x00}, code)

	asm := NewAssembler(X64, nil)
	defer asm.Close()
	require.ErrorIs(t, asm.Lock(MOV, RAX, RBX), ErrNoMatch)
	require.ErrorIs(t, asm.Emit("frob add", RAX, RBX), dynasm.ErrUnknownMnemonic)
}

func TestErrors(t *testing.T) {
	asm := NewAssembler(X64, nil)
	defer asm.Close()

	err := asm.Emit("frobnicate")
	require.ErrorIs(t, err, dynasm.ErrUnknownMnemonic)

	err = asm.Emit("mov", RAX, "rbx")
	require.ErrorIs(t, err, dynasm.ErrOperandMismatch)

	err = asm.Inst(MOV, Imm8(1), RAX)
	var mismatch *dynasm.OperandMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "mov", mismatch.Mnemonic)
	require.Equal(t, "mov v*, r*", mismatch.Forms[0])
	require.ErrorIs(t, err, ErrNoMatch)

	// errors from Inst are sticky
	require.Equal(t, err, asm.Inst(RET))
	asm.ClearErr()
	require.NoError(t, asm.Inst(RET))

	err = asm.Inst(MOV, EAX, Imm(1<<40))
	require.ErrorIs(t, err, dynasm.ErrImmediateOutOfRange)
	asm.ClearErr()

	err = asm.Inst(MOV, RAX, Mem{Base: RAX, Index: RSP, Scale: 2})
	require.ErrorIs(t, err, dynasm.ErrInvalidRegister)
	asm.ClearErr()

	err = asm.Inst(MOV, RAX, Mem{Base: RAX, Index: RBX, Scale: 3})
	require.ErrorIs(t, err, dynasm.ErrInvalidRegister)
	asm.ClearErr()

	err = asm.Inst(MOV, AH, R8B)
	require.ErrorIs(t, err, dynasm.ErrInvalidRegister)
	asm.ClearErr()

	err = asm.Inst(PUSH, EAX)
	require.ErrorIs(t, err, ErrNoMatch)
	asm.ClearErr()
}

func TestX86Mode(t *testing.T) {
	check := func(want []byte, inst Inst, args ...Arg) {
		t.Helper()
		code := assemble(t, X86, func(asm *Assembler) error { return asm.Inst(inst, args...) })
		require.Equal(t, want, code, "%s %v", inst, args)
	}
	check([]byte{0x40}, INC, EAX)
	check([]byte{0x4b}, DEC, EBX)
	check([]byte{0x50}, PUSH, EAX)
	check([]byte{0x8b, 0x03}, MOV, EAX, Mem{Base: EBX})
	check([]byte{0x66, 0x8b, 0x03}, MOV, AX, Mem{Base: EBX})
	check([]byte{0xff, 0x25, 0x00, 0x10, 0x00, 0x00}, JMP, Mem{Disp: Rel(0x1000)})
	check([]byte{0xff, 0x20}, JMP, Mem{Base: EAX})
	check([]byte{0x37}, AAA)

	// 16-bit addressing
	check([]byte{0x67, 0x66, 0x8b, 0x00}, MOV, AX, Mem{Base: BX, Index: SI})
	check([]byte{0x67, 0x8b, 0x46, 0x00}, MOV, EAX, Mem{Base: BP})
	check([]byte{0x67, 0x8b, 0x47, 0x10}, MOV, EAX, Mem{Base: BX, Disp: Rel(16)})
	check([]byte{0x67, 0x8b, 0x87, 0x00, 0x10}, MOV, EAX, Mem{Base: BX, Disp: Rel(0x1000)})

	code := assemble(t, X86, func(asm *Assembler) error { return asm.Inst(MOV, ECX, Mem{Base: ESP, Disp: Rel8(4)}) })
	decoded, err := x86asm.Decode(code, 32)
	require.NoError(t, err)
	require.Equal(t, "mov ecx, dword ptr [esp+0x4]", x86asm.IntelSyntax(decoded, 0, nil))

	asm := NewAssembler(X86, nil)
	defer asm.Close()
	for _, args := range [][]Arg{
		{R8},
		{RAX},
		{SPB},
		{Mem{Base: RAX, Width: 4}},
		{Mem{Base: RIP, Width: 4}},
	} {
		require.ErrorIs(t, asm.Inst(INC, args...), dynasm.ErrInvalidRegister, "inc %v", args)
		asm.ClearErr()
	}
	require.ErrorIs(t, asm.Inst(MOV, AX, Mem{Base: SI, Index: DI}), dynasm.ErrInvalidRegister)
	asm.ClearErr()
	require.ErrorIs(t, asm.Inst(MOV, AX, Mem{Base: BX, Index: SI, Scale: 2}), dynasm.ErrInvalidRegister)
	asm.ClearErr()

	// long-mode only instructions
	asm64 := NewAssembler(X64, nil)
	defer asm64.Close()
	require.ErrorIs(t, asm64.Inst(AAA), ErrNoMatch)
	asm64.ClearErr()
	require.ErrorIs(t, asm64.Inst(MOV, AX, Mem{Base: BX}), dynasm.ErrInvalidRegister)
}

func TestMatcher(t *testing.T) {
	m := NewInstMatcher(X64)
	require.NoError(t, m.Match(ADD, RAX, Imm8(1)))
	require.Equal(t, "add r*, ib", m.Encoding())
	require.Equal(t, 8, m.OperandSize())
	require.Equal(t, []byte{0x83}, m.Opcode())
	require.False(t, m.IsVEX())

	matches, err := m.AllMatches(ADD, RAX, RBX)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, "add r*, r*", matches[0].Encoding())
	require.Equal(t, "add r*, v*", matches[1].Encoding())

	_, err = m.AllMatches(ADD, Imm8(1), RAX)
	require.ErrorIs(t, err, ErrNoMatch)

	code := assemble(t, X64, func(asm *Assembler) error { return asm.InstFrom(matches[1]) })
	require.Equal(t, []byte{0x48, 0x03, 0xc3}, code)

	asm := NewAssembler(X86, nil)
	defer asm.Close()
	require.Error(t, asm.InstFrom(matches[0]))

	require.NoError(t, m.Match(VPXOR, Y0, Y1, Y2))
	require.True(t, m.IsVEX())
	require.Equal(t, feats.AVX, m.InstFeatures())
}

func TestRoleOrder(t *testing.T) {
	require.Equal(t, orderM, roleOrder(1, 0, -1, 0))
	require.Equal(t, orderRM, roleOrder(2, 1, -1, 0))
	require.Equal(t, orderMR, roleOrder(2, 0, -1, 0))
	require.Equal(t, orderMR, roleOrder(2, 1, -1, flags.ENC_MR))
	require.Equal(t, orderVM, roleOrder(2, 1, -1, flags.ENC_VM))
	require.Equal(t, orderRVM, roleOrder(3, 2, -1, 0))
	require.Equal(t, orderRMV, roleOrder(3, 1, -1, 0))
	require.Equal(t, orderMVR, roleOrder(3, 0, -1, 0))
	require.Equal(t, orderRVIM, roleOrder(4, 3, -1, 0))
	require.Equal(t, orderRVMI, roleOrder(4, 2, -1, 0))
	require.Equal(t, orderMR, roleOrder(2, 0, 1, flags.ENC_VM))
	require.Equal(t, orderRM, roleOrder(2, 1, 0, flags.ENC_MR))
}

func TestConditionCodes(t *testing.T) {
	require.Equal(t, JZ, Jcc(CCEq))
	require.Equal(t, JNZ, Jcc(CCNeq))
	require.Equal(t, JL, Jcc(CCSignedLT))
	require.Equal(t, SETL, Setcc(CCSignedLT))
	require.Equal(t, CMOVNBE, Cmovcc(CCUnsignedGT))
	for cc := ConditionCode(0); cc < 16; cc++ {
		require.Equal(t, cc, Invcc(Invcc(cc)))
		require.NotEqual(t, Jcc(cc), Jcc(Invcc(cc)))
	}

	code := assemble(t, X64, func(asm *Assembler) error {
		asm.LocalLabel("top")
		return asm.JumpIf(CCNeq, dynasm.Backward("top"))
	})
	require.Equal(t, []byte{0x0f, 0x85, 0xfa, 0xff, 0xff, 0xff}, code)
}

func TestTypeMap(t *testing.T) {
	tm := TypeMap{Base: RDI, Index: RCX, ElemSize: 8}
	code := assemble(t, X64, func(asm *Assembler) error {
		asm.Inst(MOV, RAX, tm.Field(8, 8))
		return asm.Inst(MOV, EAX, tm.Elem(2, 4, 4))
	})
	require.Equal(t, []byte{0x48, 0x8b, 0x44, 0xcf, 0x08, 0x8b, 0x47, 0x14}, code)
}

func TestDynReg(t *testing.T) {
	r, err := DynReg(REG_LEGACY, 8, 3)
	require.NoError(t, err)
	require.Equal(t, RBX, r)
	r, err = DynReg(REG_HIGHBYTE, 1, 4)
	require.NoError(t, err)
	require.Equal(t, AH, r)
	r, err = DynReg(REG_XMM, 16, 9)
	require.NoError(t, err)
	require.Equal(t, X9, r)

	r, err = DynReg(REG_YMM, 32, 5)
	require.NoError(t, err)
	require.Equal(t, Y5, r)

	_, err = DynReg(REG_XMM, 16, 16)
	require.ErrorIs(t, err, dynasm.ErrInvalidRegister)
	_, err = DynReg(REG_LEGACY, 8, 16)
	require.ErrorIs(t, err, dynasm.ErrInvalidRegister)
	_, err = DynReg(REG_YMM, 32+64, 0)
	require.ErrorIs(t, err, dynasm.ErrInvalidRegister)
	_, err = DynReg(REG_LEGACY, 3, 0)
	require.ErrorIs(t, err, dynasm.ErrInvalidRegister)
	_, err = DynReg(REG_HIGHBYTE, 1, 0)
	require.ErrorIs(t, err, dynasm.ErrInvalidRegister)
}

func TestFeatures(t *testing.T) {
	f, err := feats.Parse("sse2|avx, bmi1")
	require.NoError(t, err)
	require.Equal(t, feats.SSE2|feats.AVX|feats.BMI1, f)
	require.Equal(t, "SSE2|AVX|BMI1", f.String())
	require.True(t, f.Has(feats.AVX|feats.SSE2))
	require.False(t, f.Has(feats.AVX2))
	_, err = feats.Parse("avx1024")
	require.Error(t, err)

	code := assemble(t, X64, func(asm *Assembler) error {
		asm.SetFeatures(feats.SSE2)
		if err := asm.Inst(PXOR, X1, X2); err != nil {
			return err
		}
		if err := asm.Inst(VPXOR, X1, X2, X3); !errors.Is(err, ErrNoMatch) {
			return errors.Errorf("vpxor with AVX disabled: %v", err)
		}
		asm.ClearErr()
		asm.EnableFeature(feats.AVX)
		return asm.Inst(VPXOR, X1, X2, X3)
	})
	require.Equal(t, []byte{0x66, 0x0f, 0xef, 0xca, 0xc5, 0xe9, 0xef, 0xcb}, code)
}

func TestReloc(t *testing.T) {
	rel := NewReloc(1, 4, dynasm.Relative)
	require.Equal(t, 4, rel.Size())
	require.Equal(t, 5, rel.FieldOffset())
	require.Equal(t, 0, rel.StartOffset())
	require.Equal(t, []byte{1, 2, byte(dynasm.Relative)}, rel.Encode())

	buf := make([]byte, 4)
	require.NoError(t, rel.Write(buf, -2))
	require.Equal(t, int64(-2), rel.Read(buf))
	require.ErrorIs(t, rel.Write(buf, 1<<31), dynasm.ErrImpossibleRelocation)

	abs := NewReloc(0, 4, dynasm.AbsToRel)
	require.NoError(t, abs.Write(buf, 0xffffffff))
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf)
	require.ErrorIs(t, abs.Write(buf, 1<<32), dynasm.ErrImpossibleRelocation)

	require.Equal(t, []byte{0, 2, 1}, abs.Encode())
	require.Equal(t, []byte{0, 3, 2}, NewReloc(0, 8, dynasm.RelToAbs).Encode())

	short := NewReloc(0, 1, dynasm.Relative)
	b := make([]byte, 1)
	require.NoError(t, short.Write(b, -128))
	require.ErrorIs(t, short.Write(b, 128), dynasm.ErrImpossibleRelocation)
}

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

func TestRelocKinds(t *testing.T) {
	enc := NewEncoder(X64)
	rec := &recorder{}

	// absolute address of a label in the buffer
	require.NoError(t, enc.EncodeInst(rec, 0, MOV, RAX, Addr(dynasm.Global("data"))))
	// pc-relative call to an absolute address
	require.NoError(t, enc.EncodeInst(rec, 0, CALL, To(dynasm.Extern(0x1000))))
	// pc-relative jump within the buffer
	require.NoError(t, enc.EncodeInst(rec, 0, JMP, To(dynasm.Global("data"))))

	require.Len(t, rec.refs, 3)
	require.Equal(t, dynasm.AbsToRel, rec.refs[0].Rel.Kind())
	require.Equal(t, []byte{0, 3, 1}, rec.refs[0].Rel.Encode())
	require.Equal(t, dynasm.RelToAbs, rec.refs[1].Rel.Kind())
	require.Equal(t, []byte{0, 2, 2}, rec.refs[1].Rel.Encode())
	require.Equal(t, dynasm.Relative, rec.refs[2].Rel.Kind())
	require.Equal(t, []byte{0, 2, 0}, rec.refs[2].Rel.Encode())
}
