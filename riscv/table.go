package riscv

// template is one encoding of a mnemonic: the argument slots it accepts, the fixed bits of
// its instruction words and the commands filling in the rest. Most templates are a single
// word; the pc-relative pseudo-instructions are an AUIPC followed by a second instruction.
type template struct {
	args  []matcher
	words [2]uint32
	n     uint8 // words
	size  uint8 // bytes per word
	ext   Extension
	xlen  uint8 // 0 for both
	cmds  []command
}

// templates maps each mnemonic to its encodings, in matching order.
var templates = map[string][]template{}

func def(name string, ts ...template) { templates[name] = append(templates[name], ts...) }

func tpl(base uint32, args []matcher, cmds ...command) template {
	return template{args: args, words: [2]uint32{base}, n: 1, size: 4, cmds: cmds}
}

// pair is an AUIPC template with its follow-up instruction.
func pair(first, second uint32, args []matcher, cmds ...command) template {
	return template{args: args, words: [2]uint32{first, second}, n: 2, size: 4, cmds: cmds}
}

// ctpl is a compressed template.
func ctpl(base uint32, args []matcher, cmds ...command) template {
	return template{args: args, words: [2]uint32{base}, n: 1, size: 2, ext: ExtC, cmds: cmds}
}

func slots(ms ...matcher) []matcher { return ms }

func (t template) rv32() template { t.xlen = 32; return t }
func (t template) rv64() template { t.xlen = 64; return t }

// gate restricts templates to an XLEN and a set of extensions.
func gate(xlen uint8, ext Extension, ts ...template) []template {
	for i := range ts {
		if xlen != 0 {
			ts[i].xlen = xlen
		}
		ts[i].ext |= ext
	}
	return ts
}

func (t *template) availableIn(p Profile) bool {
	return p.Has(t.ext) && (t.xlen == 0 || int(t.xlen) == p.XLEN)
}

func (t *template) bytes() int { return int(t.n) * int(t.size) }

// argument slots
var (
	rX     = matcher{kind: mX}
	rXNZ   = matcher{kind: mXNZ}
	rXNZSP = matcher{kind: mXNZSP}
	rXC    = matcher{kind: mXC}
	rSP    = matcher{kind: mSP}
	rS     = matcher{kind: mSReg}
	rF     = matcher{kind: mF}
	rFC    = matcher{kind: mFC}

	imm      = matcher{kind: mImm}
	mem      = matcher{kind: mMem}
	memC     = matcher{kind: mMemC}
	memSP    = matcher{kind: mMemSP}
	addr     = matcher{kind: mAddr}
	memLabel = matcher{kind: mLabelMem}
	label    = matcher{kind: mLabel}
	rmOpt    = matcher{kind: mRM, opt: true}
	csr      = matcher{kind: mCSR}
	fenceOpt = matcher{kind: mFence, opt: true}
	rlist    = matcher{kind: mRList}
)

// commands
var (
	rd  = reg(7)
	rs1 = reg(15)
	rs2 = reg(20)
	rs3 = reg(27)

	immI   = immf(&fieldI)
	immS   = immf(&fieldS)
	csrNum = immf(&fieldCSR)
	zimm   = immf(&fieldZimm)
	upper  = command{op: cUpper}
	rm     = command{op: cRM}
	skip   = command{op: cSkip}
)

func reg(pos uint8) command      { return command{op: cReg, pos: pos} }
func peek(pos uint8) command     { return command{op: cRegPeek, pos: pos} }
func regC(pos uint8) command     { return command{op: cRegC, pos: pos} }
func immf(f *field) command      { return command{op: cImm, f: f} }
func rel(kind RelocKind) command { return command{op: cRel, aux: uint32(kind)} }
func fence(pos uint8) command    { return command{op: cFence, pos: pos} }

// in applies c to the second word of a pair.
func in(word uint8, c command) command { c.word = word; return c }

func init() {
	integer()
	pseudos()
	multiply()
	atomics()
	floatingPoint()
	csrs()
	bitManip()
	compressed()
	compressedExtra()
}

type funct struct {
	name string
	bits uint32
}

func rtype(base uint32) template {
	return tpl(base, slots(rX, rX, rX), rd, rs1, rs2)
}

func integer() {
	def("lui", tpl(0x37, slots(rX, imm), rd, upper))
	def("auipc",
		tpl(0x17, slots(rX, imm), rd, upper),
		tpl(0x17, slots(rX, label), rd, rel(RelHI20)))
	def("jal",
		tpl(0x6f, slots(rX, label), rd, rel(RelJ)),
		tpl(0xef, slots(label), rel(RelJ)))
	def("jalr",
		tpl(0xe7, slots(rX), rs1),
		tpl(0x67, slots(rX, mem), rd, rs1, immI),
		tpl(0x67, slots(rX, rX, imm), rd, rs1, immI))

	for _, b := range []funct{{"beq", 0}, {"bne", 1}, {"blt", 4}, {"bge", 5}, {"bltu", 6}, {"bgeu", 7}} {
		def(b.name, tpl(0x63|b.bits<<12, slots(rX, rX, label), rs1, rs2, rel(RelB)))
	}

	loads := []struct {
		funct
		xlen uint8
	}{{funct{"lb", 0}, 0}, {funct{"lh", 1}, 0}, {funct{"lw", 2}, 0}, {funct{"ld", 3}, 64}, {funct{"lbu", 4}, 0}, {funct{"lhu", 5}, 0}, {funct{"lwu", 6}, 64}}
	for _, l := range loads {
		load(l.name, 0x03|l.bits<<12, rX, l.xlen, 0)
	}
	for _, s := range []struct {
		funct
		xlen uint8
	}{{funct{"sb", 0}, 0}, {funct{"sh", 1}, 0}, {funct{"sw", 2}, 0}, {funct{"sd", 3}, 64}} {
		store(s.name, 0x23|s.bits<<12, rX, s.xlen, 0)
	}

	for _, o := range []funct{{"addi", 0}, {"slti", 2}, {"sltiu", 3}, {"xori", 4}, {"ori", 6}, {"andi", 7}} {
		def(o.name, tpl(0x13|o.bits<<12, slots(rX, rX, imm), rd, rs1, immI))
	}
	shiftImm("slli", 0x1013)
	shiftImm("srli", 0x5013)
	shiftImm("srai", 0x40005013)

	for _, o := range []funct{
		{"add", 0x33}, {"sub", 0x40000033}, {"sll", 0x1033}, {"slt", 0x2033}, {"sltu", 0x3033},
		{"xor", 0x4033}, {"srl", 0x5033}, {"sra", 0x40005033}, {"or", 0x6033}, {"and", 0x7033},
	} {
		def(o.name, rtype(o.bits))
	}

	def("addiw", tpl(0x1b, slots(rX, rX, imm), rd, rs1, immI).rv64())
	for _, o := range []funct{{"slliw", 0x101b}, {"srliw", 0x501b}, {"sraiw", 0x4000501b}} {
		def(o.name, tpl(o.bits, slots(rX, rX, imm), rd, rs1, immf(&fieldShamt5)).rv64())
	}
	for _, o := range []funct{{"addw", 0x3b}, {"subw", 0x4000003b}, {"sllw", 0x103b}, {"srlw", 0x503b}, {"sraw", 0x4000503b}} {
		def(o.name, rtype(o.bits).rv64())
	}

	def("fence", tpl(0x0f, slots(fenceOpt, fenceOpt), fence(24), fence(20)))
	def("fence.tso", tpl(0x8330000f, nil))
	def("fence.i", gate(0, ExtZifencei, tpl(0x100f, nil))...)
	def("pause", tpl(0x0100000f, nil))
	def("ecall", tpl(0x73, nil))
	def("ebreak", tpl(0x100073, nil))
}

// load defines the register-offset, %pcrel_lo and pc-relative forms of a load. The
// pc-relative form of an integer load computes the address in the destination register;
// floating point loads take a scratch integer register.
func load(name string, base uint32, dst matcher, xlen uint8, ext Extension) {
	ts := []template{
		tpl(base, slots(dst, mem), rd, rs1, immI),
		tpl(base, slots(dst, memLabel), rd, rs1, rel(RelLO12)),
	}
	if dst.kind == mX {
		ts = append(ts, pair(0x17, base, slots(rXNZ, label), peek(7), in(1, peek(7)), in(1, rs1), rel(RelSPLIT32)))
	} else {
		ts = append(ts, pair(0x17, base, slots(dst, label, rXNZ), in(1, rd), rel(RelSPLIT32), peek(7), in(1, rs1)))
	}
	def(name, gate(xlen, ext, ts...)...)
}

// store defines the forms of a store. The pc-relative form takes a scratch register.
func store(name string, base uint32, src matcher, xlen uint8, ext Extension) {
	def(name, gate(xlen, ext,
		tpl(base, slots(src, mem), rs2, rs1, immS),
		tpl(base, slots(src, memLabel), rs2, rs1, rel(RelLO12S)),
		pair(0x17, base, slots(src, label, rXNZ), in(1, rs2), rel(RelSPLIT32S), peek(7), in(1, rs1)))...)
}

func shiftImm(name string, base uint32) {
	def(name,
		tpl(base, slots(rX, rX, imm), rd, rs1, immf(&fieldShamt5)).rv32(),
		tpl(base, slots(rX, rX, imm), rd, rs1, immf(&fieldShamt6)).rv64())
}

func pseudos() {
	def("nop", tpl(0x13, nil))
	def("mv", tpl(0x13, slots(rX, rX), rd, rs1))
	def("not", tpl(0xfff04013, slots(rX, rX), rd, rs1))
	def("neg", tpl(0x40000033, slots(rX, rX), rd, rs2))
	def("negw", tpl(0x4000003b, slots(rX, rX), rd, rs2).rv64())
	def("sext.w", tpl(0x1b, slots(rX, rX), rd, rs1).rv64())
	def("seqz", tpl(0x00103013, slots(rX, rX), rd, rs1))
	def("snez", tpl(0x3033, slots(rX, rX), rd, rs2))
	def("sltz", tpl(0x2033, slots(rX, rX), rd, rs1))
	def("sgtz", tpl(0x2033, slots(rX, rX), rd, rs2))

	for _, b := range []struct {
		funct
		reg command
	}{
		{funct{"beqz", 0}, rs1}, {funct{"bnez", 1}, rs1}, {funct{"blez", 5}, rs2},
		{funct{"bgez", 5}, rs1}, {funct{"bltz", 4}, rs1}, {funct{"bgtz", 4}, rs2},
	} {
		def(b.name, tpl(0x63|b.bits<<12, slots(rX, label), b.reg, rel(RelB)))
	}
	// operands swapped
	for _, b := range []funct{{"bgt", 4}, {"ble", 5}, {"bgtu", 6}, {"bleu", 7}} {
		def(b.name, tpl(0x63|b.bits<<12, slots(rX, rX, label), rs2, rs1, rel(RelB)))
	}

	def("j", tpl(0x6f, slots(label), rel(RelJ)))
	def("jr", tpl(0x67, slots(rX), rs1))
	def("ret", tpl(0x8067, nil))

	// auipc ra, %pcrel_hi(label); jalr ra, %pcrel_lo(label)(ra)
	def("call",
		pair(0x97, 0x80e7, slots(label), rel(RelSPLIT32)),
		pair(0x17, 0x67, slots(rXNZ, label), peek(7), in(1, peek(7)), in(1, rs1), rel(RelSPLIT32)))
	// auipc t1, %pcrel_hi(label); jalr zero, %pcrel_lo(label)(t1)
	def("tail", pair(0x317, 0x30067, slots(label), rel(RelSPLIT32)))
	def("jump", pair(0x17, 0x67, slots(label, rXNZ), rel(RelSPLIT32), peek(7), in(1, rs1)))
	for _, name := range []string{"la", "lla"} {
		def(name, pair(0x17, 0x13, slots(rXNZ, label), peek(7), in(1, peek(7)), in(1, rs1), rel(RelSPLIT32)))
	}
}

func multiply() {
	for _, o := range []funct{
		{"mul", 0x02000033}, {"mulh", 0x02001033}, {"mulhsu", 0x02002033}, {"mulhu", 0x02003033},
		{"div", 0x02004033}, {"divu", 0x02005033}, {"rem", 0x02006033}, {"remu", 0x02007033},
	} {
		def(o.name, gate(0, ExtM, rtype(o.bits))...)
	}
	for _, o := range []funct{
		{"mulw", 0x0200003b}, {"divw", 0x0200403b}, {"divuw", 0x0200503b}, {"remw", 0x0200603b}, {"remuw", 0x0200703b},
	} {
		def(o.name, gate(64, ExtM, rtype(o.bits))...)
	}
}

func atomics() {
	ops := []funct{
		{"amoswap", 1}, {"amoadd", 0}, {"amoxor", 4}, {"amoand", 12}, {"amoor", 8},
		{"amomin", 16}, {"amomax", 20}, {"amominu", 24}, {"amomaxu", 28},
	}
	for _, w := range []struct {
		funct
		xlen uint8
	}{{funct{".w", 2}, 0}, {funct{".d", 3}, 64}} {
		base := 0x2f | w.bits<<12
		for _, o := range ops {
			amo(o.name+w.name, base|o.bits<<27, slots(rX, rX, addr), w.xlen, rd, rs2, rs1)
		}
		amo("lr"+w.name, base|2<<27, slots(rX, addr), w.xlen, rd, rs1)
		amo("sc"+w.name, base|3<<27, slots(rX, rX, addr), w.xlen, rd, rs2, rs1)
	}
}

// amo defines an atomic instruction with its .aq, .rl and .aqrl orderings.
func amo(name string, base uint32, args []matcher, xlen uint8, cmds ...command) {
	for _, o := range []funct{{"", 0}, {".aq", 1 << 26}, {".rl", 1 << 25}, {".aqrl", 3 << 25}} {
		def(name+o.name, gate(xlen, ExtA, tpl(base|o.bits, args, cmds...))...)
	}
}

// fpFormat is the single or double precision variant of a floating point instruction.
type fpFormat struct {
	suffix string
	fmt    uint32 // bits 25-26
	ext    Extension
	width  string // flw, fld
	access uint32 // funct3 of loads and stores
}

var (
	fpS = fpFormat{suffix: ".s", ext: ExtF, width: "w", access: 2}
	fpD = fpFormat{suffix: ".d", fmt: 1 << 25, ext: ExtD, width: "d", access: 3}
)

func floatingPoint() {
	for _, p := range []fpFormat{fpS, fpD} {
		fdef := func(name string, xlen uint8, t template) {
			t.words[0] |= p.fmt
			def(name, gate(xlen, p.ext, t)...)
		}
		for _, o := range []funct{{"fadd", 0x00000053}, {"fsub", 0x08000053}, {"fmul", 0x10000053}, {"fdiv", 0x18000053}} {
			fdef(o.name+p.suffix, 0, tpl(o.bits, slots(rF, rF, rF, rmOpt), rd, rs1, rs2, rm))
		}
		fdef("fsqrt"+p.suffix, 0, tpl(0x58000053, slots(rF, rF, rmOpt), rd, rs1, rm))
		for _, o := range []funct{
			{"fsgnj", 0x20000053}, {"fsgnjn", 0x20001053}, {"fsgnjx", 0x20002053},
			{"fmin", 0x28000053}, {"fmax", 0x28001053},
		} {
			fdef(o.name+p.suffix, 0, tpl(o.bits, slots(rF, rF, rF), rd, rs1, rs2))
		}
		for _, o := range []funct{{"fmv", 0x20000053}, {"fneg", 0x20001053}, {"fabs", 0x20002053}} {
			fdef(o.name+p.suffix, 0, tpl(o.bits, slots(rF, rF), rd, peek(15), rs2))
		}
		for _, o := range []funct{{"feq", 0xa0002053}, {"flt", 0xa0001053}, {"fle", 0xa0000053}} {
			fdef(o.name+p.suffix, 0, tpl(o.bits, slots(rX, rF, rF), rd, rs1, rs2))
		}
		fdef("fclass"+p.suffix, 0, tpl(0xe0001053, slots(rX, rF), rd, rs1))
		for _, o := range []funct{{"fmadd", 0x43}, {"fmsub", 0x47}, {"fnmsub", 0x4b}, {"fnmadd", 0x4f}} {
			fdef(o.name+p.suffix, 0, tpl(o.bits, slots(rF, rF, rF, rF, rmOpt), rd, rs1, rs2, rs3, rm))
		}

		for i, iv := range []string{".w", ".wu", ".l", ".lu"} {
			var xlen uint8
			if i >= 2 {
				xlen = 64
			}
			sel := uint32(i) << 20
			fdef("fcvt"+iv+p.suffix, xlen, tpl(0xc0000053|sel, slots(rX, rF, rmOpt), rd, rs1, rm))
			if p == fpD && i < 2 {
				// exact
				fdef("fcvt"+p.suffix+iv, xlen, tpl(0xd0000053|sel, slots(rF, rX), rd, rs1))
			} else {
				fdef("fcvt"+p.suffix+iv, xlen, tpl(0xd0000053|sel, slots(rF, rX, rmOpt), rd, rs1, rm))
			}
		}

		load("fl"+p.width, 0x07|p.access<<12, rF, 0, p.ext)
		store("fs"+p.width, 0x27|p.access<<12, rF, 0, p.ext)
	}

	def("fcvt.s.d", gate(0, ExtD, tpl(0x40100053, slots(rF, rF, rmOpt), rd, rs1, rm))...)
	def("fcvt.d.s", gate(0, ExtD, tpl(0x42000053, slots(rF, rF), rd, rs1))...)
	for _, name := range []string{"fmv.x.w", "fmv.x.s"} {
		def(name, gate(0, ExtF, tpl(0xe0000053, slots(rX, rF), rd, rs1))...)
	}
	for _, name := range []string{"fmv.w.x", "fmv.s.x"} {
		def(name, gate(0, ExtF, tpl(0xf0000053, slots(rF, rX), rd, rs1))...)
	}
	def("fmv.x.d", gate(64, ExtD, tpl(0xe2000053, slots(rX, rF), rd, rs1))...)
	def("fmv.d.x", gate(64, ExtD, tpl(0xf2000053, slots(rF, rX), rd, rs1))...)

	// fcsr accessors
	for _, o := range []struct {
		read, write string
		csr         uint32
	}{{"frcsr", "fscsr", 3}, {"frrm", "fsrm", 2}, {"frflags", "fsflags", 1}} {
		def(o.read, gate(0, ExtF, tpl(0x2073|o.csr<<20, slots(rX), rd))...)
		def(o.write, gate(0, ExtF,
			tpl(0x1073|o.csr<<20, slots(rX), rs1),
			tpl(0x1073|o.csr<<20, slots(rX, rX), rd, rs1))...)
	}
}

func csrs() {
	zicsr := func(name string, ts ...template) { def(name, gate(0, ExtZicsr, ts...)...) }
	for _, o := range []funct{{"csrrw", 0x1073}, {"csrrs", 0x2073}, {"csrrc", 0x3073}} {
		zicsr(o.name, tpl(o.bits, slots(rX, csr, rX), rd, csrNum, rs1))
		zicsr(o.name+"i", tpl(o.bits|0x4000, slots(rX, csr, imm), rd, csrNum, zimm))
	}
	zicsr("csrr", tpl(0x2073, slots(rX, csr), rd, csrNum))
	for _, o := range []funct{{"csrw", 0x1073}, {"csrs", 0x2073}, {"csrc", 0x3073}} {
		zicsr(o.name, tpl(o.bits, slots(csr, rX), csrNum, rs1))
		zicsr(o.name+"i", tpl(o.bits|0x4000, slots(csr, imm), csrNum, zimm))
	}
	for _, o := range []funct{{"rdcycle", uint32(CYCLE)}, {"rdtime", uint32(TIME)}, {"rdinstret", uint32(INSTRET)}} {
		zicsr(o.name, tpl(0x2073|o.bits<<20, slots(rX), rd))
		zicsr(o.name+"h", tpl(0x2073|(o.bits|0x80)<<20, slots(rX), rd).rv32())
	}
}

func bitManip() {
	zba := func(name string, xlen uint8, t template) { def(name, gate(xlen, ExtZba, t)...) }
	zbb := func(name string, xlen uint8, t template) { def(name, gate(xlen, ExtZbb, t)...) }
	unary := func(base uint32) template { return tpl(base, slots(rX, rX), rd, rs1) }

	for _, o := range []funct{{"sh1add", 0x20002033}, {"sh2add", 0x20004033}, {"sh3add", 0x20006033}} {
		zba(o.name, 0, rtype(o.bits))
	}
	for _, o := range []funct{{"add.uw", 0x0800003b}, {"sh1add.uw", 0x2000203b}, {"sh2add.uw", 0x2000403b}, {"sh3add.uw", 0x2000603b}} {
		zba(o.name, 64, rtype(o.bits))
	}
	zba("slli.uw", 64, tpl(0x0800101b, slots(rX, rX, imm), rd, rs1, immf(&fieldShamt6)))
	zba("zext.w", 64, unary(0x0800003b))

	for _, o := range []funct{
		{"andn", 0x40007033}, {"orn", 0x40006033}, {"xnor", 0x40004033},
		{"max", 0x0a006033}, {"maxu", 0x0a007033}, {"min", 0x0a004033}, {"minu", 0x0a005033},
		{"rol", 0x60001033}, {"ror", 0x60005033},
	} {
		zbb(o.name, 0, rtype(o.bits))
	}
	for _, o := range []funct{
		{"clz", 0x60001013}, {"ctz", 0x60101013}, {"cpop", 0x60201013},
		{"sext.b", 0x60401013}, {"sext.h", 0x60501013}, {"orc.b", 0x28705013},
	} {
		zbb(o.name, 0, unary(o.bits))
	}
	zbb("zext.h", 32, unary(0x08004033))
	zbb("zext.h", 64, unary(0x0800403b))
	zbb("rev8", 32, unary(0x69805013))
	zbb("rev8", 64, unary(0x6b805013))
	zbb("rori", 32, tpl(0x60005013, slots(rX, rX, imm), rd, rs1, immf(&fieldShamt5)))
	zbb("rori", 64, tpl(0x60005013, slots(rX, rX, imm), rd, rs1, immf(&fieldShamt6)))
	for _, o := range []funct{{"clzw", 0x6000101b}, {"ctzw", 0x6010101b}, {"cpopw", 0x6020101b}} {
		zbb(o.name, 64, unary(o.bits))
	}
	zbb("rolw", 64, rtype(0x6000103b))
	zbb("rorw", 64, rtype(0x6000503b))
	zbb("roriw", 64, tpl(0x6000501b, slots(rX, rX, imm), rd, rs1, immf(&fieldShamt5)))
}

func compressed() {
	c := func(name string, xlen uint8, ext Extension, ts ...template) { def(name, gate(xlen, ext, ts...)...) }

	// quadrant 0
	c("c.addi4spn", 0, 0, ctpl(0x0000, slots(rXC, rSP, imm), regC(2), skip, immf(&fieldC4SPN)))
	for _, o := range []struct {
		name string
		base uint32
		r    matcher
		f    *field
		xlen uint8
		ext  Extension
	}{
		{"c.fld", 0x2000, rFC, &fieldCLD, 0, ExtD},
		{"c.lw", 0x4000, rXC, &fieldCLW, 0, 0},
		{"c.flw", 0x6000, rFC, &fieldCLW, 32, ExtF},
		{"c.ld", 0x6000, rXC, &fieldCLD, 64, 0},
		{"c.fsd", 0xa000, rFC, &fieldCLD, 0, ExtD},
		{"c.sw", 0xc000, rXC, &fieldCLW, 0, 0},
		{"c.fsw", 0xe000, rFC, &fieldCLW, 32, ExtF},
		{"c.sd", 0xe000, rXC, &fieldCLD, 64, 0},
	} {
		c(o.name, o.xlen, o.ext, ctpl(o.base, slots(o.r, memC), regC(2), regC(7), immf(o.f)))
	}

	// quadrant 1
	c("c.nop", 0, 0, ctpl(0x0001, nil))
	c("c.addi", 0, 0, ctpl(0x0001, slots(rXNZ, imm), rd, immf(&fieldCINZ)))
	c("c.jal", 32, 0, ctpl(0x2001, slots(label), rel(RelJC)))
	c("c.addiw", 64, 0, ctpl(0x2001, slots(rXNZ, imm), rd, immf(&fieldCI)))
	c("c.li", 0, 0, ctpl(0x4001, slots(rXNZ, imm), rd, immf(&fieldCI)))
	c("c.addi16sp", 0, 0, ctpl(0x6101, slots(rSP, imm), skip, immf(&fieldC16SP)))
	c("c.lui", 0, 0, ctpl(0x6001, slots(rXNZSP, imm), rd, immf(&fieldCLUI)))
	for _, o := range []funct{{"c.srli", 0x8001}, {"c.srai", 0x8401}} {
		c(o.name, 32, 0, ctpl(o.bits, slots(rXC, imm), regC(7), immf(&fieldCShamt5)))
		c(o.name, 64, 0, ctpl(o.bits, slots(rXC, imm), regC(7), immf(&fieldCShamt6)))
	}
	c("c.andi", 0, 0, ctpl(0x8801, slots(rXC, imm), regC(7), immf(&fieldCI)))
	for _, o := range []funct{{"c.sub", 0x8c01}, {"c.xor", 0x8c21}, {"c.or", 0x8c41}, {"c.and", 0x8c61}} {
		c(o.name, 0, 0, ctpl(o.bits, slots(rXC, rXC), regC(7), regC(2)))
	}
	for _, o := range []funct{{"c.subw", 0x9c01}, {"c.addw", 0x9c21}} {
		c(o.name, 64, 0, ctpl(o.bits, slots(rXC, rXC), regC(7), regC(2)))
	}
	c("c.j", 0, 0, ctpl(0xa001, slots(label), rel(RelJC)))
	c("c.beqz", 0, 0, ctpl(0xc001, slots(rXC, label), regC(7), rel(RelBC)))
	c("c.bnez", 0, 0, ctpl(0xe001, slots(rXC, label), regC(7), rel(RelBC)))

	// quadrant 2
	c("c.slli", 32, 0, ctpl(0x0002, slots(rXNZ, imm), rd, immf(&fieldCShamt5)))
	c("c.slli", 64, 0, ctpl(0x0002, slots(rXNZ, imm), rd, immf(&fieldCShamt6)))
	c("c.fldsp", 0, ExtD, ctpl(0x2002, slots(rF, memSP), rd, skip, immf(&fieldCLDSP)))
	c("c.lwsp", 0, 0, ctpl(0x4002, slots(rXNZ, memSP), rd, skip, immf(&fieldCLWSP)))
	c("c.flwsp", 32, ExtF, ctpl(0x6002, slots(rF, memSP), rd, skip, immf(&fieldCLWSP)))
	c("c.ldsp", 64, 0, ctpl(0x6002, slots(rXNZ, memSP), rd, skip, immf(&fieldCLDSP)))
	c("c.jr", 0, 0, ctpl(0x8002, slots(rXNZ), rd))
	c("c.mv", 0, 0, ctpl(0x8002, slots(rXNZ, rXNZ), rd, reg(2)))
	c("c.ebreak", 0, 0, ctpl(0x9002, nil))
	c("c.jalr", 0, 0, ctpl(0x9002, slots(rXNZ), rd))
	c("c.add", 0, 0, ctpl(0x9002, slots(rXNZ, rXNZ), rd, reg(2)))
	c("c.fsdsp", 0, ExtD, ctpl(0xa002, slots(rF, memSP), reg(2), skip, immf(&fieldCSDSP)))
	c("c.swsp", 0, 0, ctpl(0xc002, slots(rX, memSP), reg(2), skip, immf(&fieldCSWSP)))
	c("c.fswsp", 32, ExtF, ctpl(0xe002, slots(rF, memSP), reg(2), skip, immf(&fieldCSWSP)))
	c("c.sdsp", 64, 0, ctpl(0xe002, slots(rX, memSP), reg(2), skip, immf(&fieldCSDSP)))
}

// compressedExtra defines the Zcb and Zcmp instructions.
func compressedExtra() {
	zcb := func(name string, xlen uint8, ext Extension, t template) { def(name, gate(xlen, ExtZcb|ext, t)...) }
	for _, o := range []struct {
		funct
		f *field
	}{
		{funct{"c.lbu", 0x8000}, &fieldCLBU}, {funct{"c.lhu", 0x8400}, &fieldCLH}, {funct{"c.lh", 0x8440}, &fieldCLH},
		{funct{"c.sb", 0x8800}, &fieldCLBU}, {funct{"c.sh", 0x8c00}, &fieldCLH},
	} {
		zcb(o.name, 0, 0, ctpl(o.bits, slots(rXC, memC), regC(2), regC(7), immf(o.f)))
	}
	unary := func(base uint32) template { return ctpl(base, slots(rXC), regC(7)) }
	zcb("c.zext.b", 0, 0, unary(0x9c61))
	zcb("c.sext.b", 0, ExtZbb, unary(0x9c65))
	zcb("c.zext.h", 0, ExtZbb, unary(0x9c69))
	zcb("c.sext.h", 0, ExtZbb, unary(0x9c6d))
	zcb("c.zext.w", 64, ExtZba, unary(0x9c71))
	zcb("c.not", 0, 0, unary(0x9c75))
	zcb("c.mul", 0, ExtM, ctpl(0x9c41, slots(rXC, rXC), regC(7), regC(2)))

	zcmp := func(name string, t template) { def(name, gate(0, ExtZcmp, t)...) }
	zcmp("cm.push", ctpl(0xb802, slots(rlist, imm), command{op: cRList}, command{op: cStackAdj, aux: 1}))
	for _, o := range []funct{{"cm.pop", 0xba02}, {"cm.popretz", 0xbc02}, {"cm.popret", 0xbe02}} {
		zcmp(o.name, ctpl(o.bits, slots(rlist, imm), command{op: cRList}, command{op: cStackAdj}))
	}
	zcmp("cm.mvsa01", ctpl(0xac22, slots(rS, rS), command{op: cSReg, pos: 7}, command{op: cSReg, pos: 2, aux: 1}))
	zcmp("cm.mva01s", ctpl(0xac62, slots(rS, rS), command{op: cSReg, pos: 7}, command{op: cSReg, pos: 2}))
}
