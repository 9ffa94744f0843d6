package aarch64

// template is one encoding of a mnemonic: the argument slots it accepts, the fixed bits of
// its instruction word and the commands filling in the rest.
type template struct {
	args []matcher
	base uint32
	cmds []command
}

// templates maps each mnemonic to its encodings, in matching order.
var templates = map[string][]template{}

func def(name string, ts ...template) { templates[name] = append(templates[name], ts...) }

func tpl(base uint32, args []matcher, cmds ...command) template {
	return template{args: args, base: base, cmds: cmds}
}

func slots(ms ...matcher) []matcher { return ms }

// argument slots
var (
	rW   = matcher{kind: mW}
	rX   = matcher{kind: mX}
	rWSP = matcher{kind: mWSP}
	rXSP = matcher{kind: mXSP}
	rB   = matcher{kind: mB}
	rH   = matcher{kind: mH}
	rS   = matcher{kind: mS}
	rD   = matcher{kind: mD}
	rQ   = matcher{kind: mQ}

	imm     = matcher{kind: mImm}
	fimm    = matcher{kind: mFImm}
	fzero   = matcher{kind: mFZero}
	cond    = matcher{kind: mCond}
	condInv = matcher{kind: mCondInv}
	label   = matcher{kind: mLabel}
	sysreg  = matcher{kind: mSysReg}
	barrier = matcher{kind: mBarrier}

	memImm  = matcher{kind: mMemImm}
	memPre  = matcher{kind: mMemPre}
	memPost = matcher{kind: mMemPost}
	memIdx  = matcher{kind: mMemIdx}
	memBase = matcher{kind: mMemBase}

	modLSL     = mods(ModLSL)
	modShift   = mods(ModLSL, ModLSR, ModASR)
	modShiftRo = mods(ModLSL, ModLSR, ModASR, ModROR)
	modExtW    = mods(ModUXTB, ModUXTH, ModUXTW, ModSXTB, ModSXTH, ModSXTW)
	modExtX    = mods(ModLSL, ModUXTX, ModSXTX)
	modExt     = mods(ModLSL, ModUXTB, ModUXTH, ModUXTW, ModUXTX, ModSXTB, ModSXTH, ModSXTW, ModSXTX)

	vInt    = arrs(Arr8B, Arr16B, Arr4H, Arr8H, Arr2S, Arr4S, Arr2D)
	vBytes  = arrs(Arr8B, Arr16B)
	vFloat  = arrs(Arr2S, Arr4S, Arr2D)
	vDupW   = arrs(Arr8B, Arr16B, Arr4H, Arr8H, Arr2S, Arr4S)
	v2D     = arrs(Arr2D)
	elemBHS = elems(ElemB, ElemH, ElemS)
	elemBH  = elems(ElemB, ElemH)
	elemS   = elems(ElemS)
	elemD   = elems(ElemD)
	elemAll = elems(ElemB, ElemH, ElemS, ElemD)
	listAll = matcher{kind: mList, mask: arrMask(Arr8B, Arr16B, Arr4H, Arr8H, Arr2S, Arr4S, Arr1D, Arr2D)}
)

func mods(kinds ...ModKind) matcher {
	var m uint16
	for _, k := range kinds {
		m |= 1 << k
	}
	return matcher{kind: mMod, mask: m}
}

func arrs(a ...Arrangement) matcher { return matcher{kind: mV, mask: arrMask(a...)} }

func elems(sizes ...ElemSize) matcher {
	var m uint16
	for _, e := range sizes {
		m |= 1 << e
	}
	return matcher{kind: mElem, mask: m}
}

// same requires the arrangement of the first vector argument.
func same(m matcher) matcher { m.aux = sameArr; return m }

func memU12(scale uint8) matcher { return matcher{kind: mMemU12, aux: scale} }

func valueImm(kind matchKind, width uint8) matcher { return matcher{kind: kind, aux: width} }

// commands
var (
	rd  = command{op: cReg, pos: 0}
	rn  = command{op: cReg, pos: 5}
	rm  = command{op: cReg, pos: 16}
	ra  = command{op: cReg, pos: 10}
	rt2 = command{op: cReg, pos: 10}

	q30     = command{op: cQ, pos: 30}
	addImm  = command{op: cAddImm}
	arrImm5 = command{op: cArrImm5}
	skip    = command{op: cSkip}
)

func peekReg(pos uint8) command { return command{op: cRegPeek, pos: pos} }

func uimm(pos, bits, scale uint8) command {
	return command{op: cUImm, pos: pos, bits: bits, scale: scale}
}

func simm(pos, bits, scale uint8) command {
	return command{op: cSImm, pos: pos, bits: bits, scale: scale}
}

func op(o cmdOp, aux uint32) command { return command{op: o, aux: aux} }
func at(o cmdOp, pos uint8) command  { return command{op: o, pos: pos} }
func rel(kind RelocKind) command     { return command{op: cRel, aux: uint32(kind)} }
func memIndex(scale uint8) command   { return command{op: cMemIndex, scale: scale} }
func elemImm5(regPos uint8) command  { return command{op: cElemImm5, pos: regPos} }

// gp describes the 32-bit (W) or 64-bit (X) variant of a general purpose instruction.
type gp struct {
	r, rsp matcher
	sf     uint32 // bit 31
	n      uint32 // N bit of bitfield and EXTR encodings
	bits   uint32
	shb    uint8 // bits of a shift amount
}

var (
	gp32 = gp{r: rW, rsp: rWSP, bits: 32, shb: 5}
	gp64 = gp{r: rX, rsp: rXSP, sf: 1 << 31, n: 1 << 22, bits: 64, shb: 6}
)

// both defines the 32-bit and 64-bit variants of each form.
func both(name string, forms ...func(g gp) template) {
	for _, f := range forms {
		def(name, f(gp32), f(gp64))
	}
}

func init() {
	dataProcessing()
	moves()
	branches()
	system()
	loadsAndStores()
	floatingPoint()
	simd()
}

func addSub(name string, sub, setFlags uint32) {
	bits := sub<<30 | setFlags<<29
	dst := func(g gp) matcher {
		if setFlags != 0 {
			return g.r
		}
		return g.rsp
	}
	both(name,
		func(g gp) template {
			return tpl(0x11000000|bits|g.sf, slots(dst(g), g.rsp, imm, modLSL.optional()), rd, rn, addImm)
		},
		func(g gp) template {
			return tpl(0x0b000000|bits|g.sf, slots(g.r, g.r, g.r, modShift.optional()), rd, rn, rm, op(cShift, g.bits))
		})
	def(name,
		tpl(0x0b200000|bits, slots(dst(gp32), rWSP, rW, modExt.optional()), rd, rn, rm, op(cExtend, 0b010)),
		tpl(0x8b200000|bits, slots(dst(gp64), rXSP, rW, modExtW), rd, rn, rm, op(cExtend, 0b010)),
		tpl(0x8b200000|bits, slots(dst(gp64), rXSP, rX, modExtX.optional()), rd, rn, rm, op(cExtend, 0b011)))
}

func compare(name string, sub uint32) {
	bits := sub<<30 | 1<<29 | 31
	both(name,
		func(g gp) template {
			return tpl(0x11000000|bits|g.sf, slots(g.rsp, imm, modLSL.optional()), rn, addImm)
		},
		func(g gp) template {
			return tpl(0x0b000000|bits|g.sf, slots(g.r, g.r, modShift.optional()), rn, rm, op(cShift, g.bits))
		})
	def(name,
		tpl(0x0b200000|bits, slots(rWSP, rW, modExt.optional()), rn, rm, op(cExtend, 0b010)),
		tpl(0x8b200000|bits, slots(rXSP, rW, modExtW), rn, rm, op(cExtend, 0b010)),
		tpl(0x8b200000|bits, slots(rXSP, rX, modExtX.optional()), rn, rm, op(cExtend, 0b011)))
}

func logical(name string, opc, invert uint32, hasImm bool) {
	if hasImm {
		both(name, func(g gp) template {
			dst := g.rsp
			if opc == 3 {
				dst = g.r
			}
			return tpl(0x12000000|opc<<29|g.sf, slots(dst, g.r, imm), rd, rn, op(cLogical, g.bits))
		})
	}
	both(name, func(g gp) template {
		return tpl(0x0a000000|opc<<29|invert<<21|g.sf, slots(g.r, g.r, g.r, modShiftRo.optional()), rd, rn, rm, op(cShift, g.bits))
	})
}

func dataProcessing() {
	addSub("add", 0, 0)
	addSub("adds", 0, 1)
	addSub("sub", 1, 0)
	addSub("subs", 1, 1)
	compare("cmn", 0)
	compare("cmp", 1)
	both("neg", func(g gp) template {
		return tpl(0x4b0003e0|g.sf, slots(g.r, g.r, modShift.optional()), rd, rm, op(cShift, g.bits))
	})
	both("negs", func(g gp) template {
		return tpl(0x6b0003e0|g.sf, slots(g.r, g.r, modShift.optional()), rd, rm, op(cShift, g.bits))
	})

	logical("and", 0, 0, true)
	logical("orr", 1, 0, true)
	logical("eor", 2, 0, true)
	logical("ands", 3, 0, true)
	logical("bic", 0, 1, false)
	logical("orn", 1, 1, false)
	logical("eon", 2, 1, false)
	logical("bics", 3, 1, false)
	both("tst",
		func(g gp) template { return tpl(0x7200001f|g.sf, slots(g.r, imm), rn, op(cLogical, g.bits)) },
		func(g gp) template {
			return tpl(0x6a00001f|g.sf, slots(g.r, g.r, modShiftRo.optional()), rn, rm, op(cShift, g.bits))
		})
	both("mvn", func(g gp) template {
		return tpl(0x2a2003e0|g.sf, slots(g.r, g.r, modShiftRo.optional()), rd, rm, op(cShift, g.bits))
	})

	// bitfield moves
	for _, bf := range []struct {
		name string
		base uint32
	}{{"sbfm", 0x13000000}, {"bfm", 0x33000000}, {"ubfm", 0x53000000}} {
		base := bf.base
		both(bf.name, func(g gp) template {
			return tpl(base|g.sf|g.n, slots(g.r, g.r, imm, imm), rd, rn, uimm(16, g.shb, 0), uimm(10, g.shb, 0))
		})
	}
	for _, bf := range []struct {
		name string
		base uint32
		op   cmdOp
	}{
		{"sbfx", 0x13000000, cBfx}, {"bfxil", 0x33000000, cBfx}, {"ubfx", 0x53000000, cBfx},
		{"sbfiz", 0x13000000, cBfi}, {"bfi", 0x33000000, cBfi}, {"ubfiz", 0x53000000, cBfi},
	} {
		bf := bf
		both(bf.name, func(g gp) template {
			return tpl(bf.base|g.sf|g.n, slots(g.r, g.r, imm, imm), rd, rn, op(bf.op, g.bits))
		})
	}
	def("sxtb", tpl(0x13001c00, slots(rW, rW), rd, rn), tpl(0x93401c00, slots(rX, rW), rd, rn))
	def("sxth", tpl(0x13003c00, slots(rW, rW), rd, rn), tpl(0x93403c00, slots(rX, rW), rd, rn))
	def("sxtw", tpl(0x93407c00, slots(rX, rW), rd, rn))
	def("uxtb", tpl(0x53001c00, slots(rW, rW), rd, rn))
	def("uxth", tpl(0x53003c00, slots(rW, rW), rd, rn))

	// shifts
	for _, sh := range []struct {
		name   string
		reg    uint32
		imm    func(g gp) template
		suffix string
	}{
		{"lsl", 0x1ac02000, func(g gp) template {
			return tpl(0x53000000|g.sf|g.n, slots(g.r, g.r, imm), rd, rn, op(cLslImm, g.bits))
		}, "lslv"},
		{"lsr", 0x1ac02400, func(g gp) template {
			return tpl(0x53007c00|g.sf|g.n|g.sf>>16, slots(g.r, g.r, imm), rd, rn, op(cLsrImm, g.bits))
		}, "lsrv"},
		{"asr", 0x1ac02800, func(g gp) template {
			return tpl(0x13007c00|g.sf|g.n|g.sf>>16, slots(g.r, g.r, imm), rd, rn, op(cLsrImm, g.bits))
		}, "asrv"},
		{"ror", 0x1ac02c00, func(g gp) template {
			return tpl(0x13800000|g.sf|g.n, slots(g.r, g.r, imm), rd, peekReg(16), rn, uimm(10, g.shb, 0))
		}, "rorv"},
	} {
		reg := sh.reg
		regForm := func(g gp) template { return tpl(reg|g.sf, slots(g.r, g.r, g.r), rd, rn, rm) }
		both(sh.name, regForm, sh.imm)
		both(sh.suffix, regForm)
	}
	both("extr", func(g gp) template {
		return tpl(0x13800000|g.sf|g.n, slots(g.r, g.r, g.r, imm), rd, rn, rm, uimm(10, g.shb, 0))
	})

	// multiply and divide
	for _, m := range []struct {
		name string
		base uint32
	}{{"madd", 0x1b000000}, {"msub", 0x1b008000}} {
		base := m.base
		both(m.name, func(g gp) template { return tpl(base|g.sf, slots(g.r, g.r, g.r, g.r), rd, rn, rm, ra) })
	}
	for _, m := range []struct {
		name string
		base uint32
	}{
		{"mul", 0x1b007c00}, {"mneg", 0x1b00fc00}, {"udiv", 0x1ac00800}, {"sdiv", 0x1ac00c00},
	} {
		base := m.base
		both(m.name, func(g gp) template { return tpl(base|g.sf, slots(g.r, g.r, g.r), rd, rn, rm) })
	}
	def("smaddl", tpl(0x9b200000, slots(rX, rW, rW, rX), rd, rn, rm, ra))
	def("smsubl", tpl(0x9b208000, slots(rX, rW, rW, rX), rd, rn, rm, ra))
	def("umaddl", tpl(0x9ba00000, slots(rX, rW, rW, rX), rd, rn, rm, ra))
	def("umsubl", tpl(0x9ba08000, slots(rX, rW, rW, rX), rd, rn, rm, ra))
	def("smull", tpl(0x9b207c00, slots(rX, rW, rW), rd, rn, rm))
	def("umull", tpl(0x9ba07c00, slots(rX, rW, rW), rd, rn, rm))
	def("smulh", tpl(0x9b407c00, slots(rX, rX, rX), rd, rn, rm))
	def("umulh", tpl(0x9bc07c00, slots(rX, rX, rX), rd, rn, rm))

	// one source
	for _, m := range []struct {
		name string
		base uint32
	}{{"rbit", 0x5ac00000}, {"rev16", 0x5ac00400}, {"clz", 0x5ac01000}, {"cls", 0x5ac01400}} {
		base := m.base
		both(m.name, func(g gp) template { return tpl(base|g.sf, slots(g.r, g.r), rd, rn) })
	}
	def("rev", tpl(0x5ac00800, slots(rW, rW), rd, rn), tpl(0xdac00c00, slots(rX, rX), rd, rn))
	def("rev32", tpl(0xdac00800, slots(rX, rX), rd, rn))

	// conditional select and compare
	for _, m := range []struct {
		name  string
		base  uint32
		alias string
		one   string
	}{
		{"csel", 0x1a800000, "", ""},
		{"csinc", 0x1a800400, "cinc", "cset"},
		{"csinv", 0x5a800000, "cinv", "csetm"},
		{"csneg", 0x5a800400, "cneg", ""},
	} {
		base := m.base
		both(m.name, func(g gp) template {
			return tpl(base|g.sf, slots(g.r, g.r, g.r, cond), rd, rn, rm, at(cCond, 12))
		})
		if m.alias != "" {
			both(m.alias, func(g gp) template {
				return tpl(base|g.sf, slots(g.r, g.r, condInv), rd, peekReg(16), rn, at(cCondInv, 12))
			})
		}
		if m.one != "" {
			both(m.one, func(g gp) template {
				return tpl(base|g.sf|31<<16|31<<5, slots(g.r, condInv), rd, at(cCondInv, 12))
			})
		}
	}
	for _, m := range []struct {
		name string
		base uint32
	}{{"ccmn", 0x3a400000}, {"ccmp", 0x7a400000}} {
		base := m.base
		both(m.name,
			func(g gp) template {
				return tpl(base|0x800|g.sf, slots(g.r, imm, imm, cond), rn, uimm(16, 5, 0), uimm(0, 4, 0), at(cCond, 12))
			},
			func(g gp) template {
				return tpl(base|g.sf, slots(g.r, g.r, imm, cond), rn, rm, uimm(0, 4, 0), at(cCond, 12))
			})
	}
}

func moves() {
	for _, m := range []struct {
		name string
		base uint32
	}{{"movn", 0x12800000}, {"movz", 0x52800000}, {"movk", 0x72800000}} {
		base := m.base
		both(m.name, func(g gp) template {
			return tpl(base|g.sf, slots(g.r, imm, modLSL.optional()), rd, op(cWide, g.bits))
		})
	}

	def("mov",
		tpl(0x2a0003e0, slots(rW, rW), rd, rm),
		tpl(0x11000000, slots(rWSP, rWSP), rd, rn),
		tpl(0xaa0003e0, slots(rX, rX), rd, rm),
		tpl(0x91000000, slots(rXSP, rXSP), rd, rn),
		tpl(0x52800000, slots(rW, valueImm(mWideImm, 32)), rd, op(cMovWide, 32)),
		tpl(0x12800000, slots(rW, valueImm(mWideInvImm, 32)), rd, op(cMovWide, 33)),
		tpl(0x320003e0, slots(rWSP, valueImm(mLogicalImm, 32)), rd, op(cLogical, 32)),
		tpl(0xd2800000, slots(rX, valueImm(mWideImm, 64)), rd, op(cMovWide, 64)),
		tpl(0x92800000, slots(rX, valueImm(mWideInvImm, 64)), rd, op(cMovWide, 65)),
		tpl(0xb20003e0, slots(rXSP, valueImm(mLogicalImm, 64)), rd, op(cLogical, 64)),
		tpl(0x0ea01c00, slots(vBytes, same(vBytes)), q30, rd, peekReg(16), rn),
		tpl(0x4e001c00, slots(elemBHS, rW), elemImm5(0), rn),
		tpl(0x4e001c00, slots(elemD, rX), elemImm5(0), rn),
		tpl(0x0e003c00, slots(rW, elemS), rd, elemImm5(5)),
		tpl(0x4e003c00, slots(rX, elemD), rd, elemImm5(5)))

	def("adr", tpl(0x10000000, slots(rX, label), rd, rel(RelADR)))
	def("adrp", tpl(0x90000000, slots(rX, label), rd, rel(RelADRP)))
}

func branches() {
	def("b", tpl(0x14000000, slots(label), rel(RelB)))
	def("bl", tpl(0x94000000, slots(label), rel(RelB)))
	def("b.cond", tpl(0x54000000, slots(cond, label), at(cCond, 0), rel(RelBCond)))
	both("cbz", func(g gp) template { return tpl(0x34000000|g.sf, slots(g.r, label), rd, rel(RelBCond)) })
	both("cbnz", func(g gp) template { return tpl(0x35000000|g.sf, slots(g.r, label), rd, rel(RelBCond)) })
	both("tbz", func(g gp) template {
		return tpl(0x36000000, slots(g.r, imm, label), rd, op(cTestBit, g.bits), rel(RelTBZ))
	})
	both("tbnz", func(g gp) template {
		return tpl(0x37000000, slots(g.r, imm, label), rd, op(cTestBit, g.bits), rel(RelTBZ))
	})
	def("br", tpl(0xd61f0000, slots(rX), rn))
	def("blr", tpl(0xd63f0000, slots(rX), rn))
	def("ret", tpl(0xd65f03c0, nil), tpl(0xd65f0000, slots(rX), rn))
}

func system() {
	def("nop", tpl(0xd503201f, nil))
	def("yield", tpl(0xd503203f, nil))
	def("wfe", tpl(0xd503205f, nil))
	def("wfi", tpl(0xd503207f, nil))
	def("sev", tpl(0xd503209f, nil))
	def("brk", tpl(0xd4200000, slots(imm), uimm(5, 16, 0)))
	def("hlt", tpl(0xd4400000, slots(imm), uimm(5, 16, 0)))
	def("svc", tpl(0xd4000001, slots(imm), uimm(5, 16, 0)))
	def("dmb", tpl(0xd50330bf, slots(barrier), uimm(8, 4, 0)))
	def("dsb", tpl(0xd503309f, slots(barrier), uimm(8, 4, 0)))
	def("isb", tpl(0xd5033fdf, nil), tpl(0xd50330df, slots(barrier), uimm(8, 4, 0)))
	def("mrs", tpl(0xd5300000, slots(rX, sysreg), rd, uimm(5, 15, 0)))
	def("msr", tpl(0xd5100000, slots(sysreg, rX), uimm(5, 15, 0), rd))
}

// ldst is a load or store with an unsigned offset form; the other addressing forms are
// derived from its encoding.
type ldst struct {
	name  string
	rt    matcher
	base  uint32 // unsigned offset form
	scale uint8
	lit   uint32 // literal form, zero if none
}

func (l ldst) unscaled() uint32 { return l.base &^ (1 << 24) }

func loadsAndStores() {
	for _, l := range []ldst{
		{"ldr", rW, 0xb9400000, 2, 0x18000000},
		{"ldr", rX, 0xf9400000, 3, 0x58000000},
		{"ldr", rB, 0x3d400000, 0, 0},
		{"ldr", rH, 0x7d400000, 1, 0},
		{"ldr", rS, 0xbd400000, 2, 0x1c000000},
		{"ldr", rD, 0xfd400000, 3, 0x5c000000},
		{"ldr", rQ, 0x3dc00000, 4, 0x9c000000},
		{"str", rW, 0xb9000000, 2, 0},
		{"str", rX, 0xf9000000, 3, 0},
		{"str", rB, 0x3d000000, 0, 0},
		{"str", rH, 0x7d000000, 1, 0},
		{"str", rS, 0xbd000000, 2, 0},
		{"str", rD, 0xfd000000, 3, 0},
		{"str", rQ, 0x3d800000, 4, 0},
		{"ldrb", rW, 0x39400000, 0, 0},
		{"strb", rW, 0x39000000, 0, 0},
		{"ldrh", rW, 0x79400000, 1, 0},
		{"strh", rW, 0x79000000, 1, 0},
		{"ldrsb", rW, 0x39c00000, 0, 0},
		{"ldrsb", rX, 0x39800000, 0, 0},
		{"ldrsh", rW, 0x79c00000, 1, 0},
		{"ldrsh", rX, 0x79800000, 1, 0},
		{"ldrsw", rX, 0xb9800000, 2, 0x98000000},
	} {
		def(l.name,
			tpl(l.base, slots(l.rt, memU12(l.scale)), rd, rn, uimm(10, 12, l.scale)),
			tpl(l.unscaled()|0xc00, slots(l.rt, memPre), rd, rn, simm(12, 9, 0)),
			tpl(l.unscaled()|0x400, slots(l.rt, memPost), rd, rn, simm(12, 9, 0)),
			tpl(l.unscaled()|0x200800, slots(l.rt, memIdx), rd, rn, memIndex(l.scale)))
		if l.lit != 0 {
			def(l.name, tpl(l.lit, slots(l.rt, label), rd, rel(RelBCond)))
		}
		// offsets which are negative or not a multiple of the access size
		unscaled := tpl(l.unscaled(), slots(l.rt, memImm), rd, rn, simm(12, 9, 0))
		def(l.name, unscaled)
		def(l.name[:2]+"u"+l.name[2:], unscaled)
	}

	for _, p := range []struct {
		rt    matcher
		base  uint32 // store pair, signed offset
		scale uint8
	}{
		{rW, 0x29000000, 2}, {rX, 0xa9000000, 3},
		{rS, 0x2d000000, 2}, {rD, 0x6d000000, 3}, {rQ, 0xad000000, 4},
	} {
		for _, l := range []struct {
			name string
			load uint32
		}{{"stp", 0}, {"ldp", 1 << 22}} {
			base := p.base | l.load
			def(l.name,
				tpl(base, slots(p.rt, p.rt, memImm), rd, rt2, rn, simm(15, 7, p.scale)),
				tpl(base|1<<23, slots(p.rt, p.rt, memPre), rd, rt2, rn, simm(15, 7, p.scale)),
				tpl(base&^(1<<24)|1<<23, slots(p.rt, p.rt, memPost), rd, rt2, rn, simm(15, 7, p.scale)))
		}
	}
	def("ldpsw",
		tpl(0x69400000, slots(rX, rX, memImm), rd, rt2, rn, simm(15, 7, 2)),
		tpl(0x69c00000, slots(rX, rX, memPre), rd, rt2, rn, simm(15, 7, 2)),
		tpl(0x68c00000, slots(rX, rX, memPost), rd, rt2, rn, simm(15, 7, 2)))

	// exclusive and ordered accesses
	def("ldxr", tpl(0x885f7c00, slots(rW, memBase), rd, rn), tpl(0xc85f7c00, slots(rX, memBase), rd, rn))
	def("ldaxr", tpl(0x885ffc00, slots(rW, memBase), rd, rn), tpl(0xc85ffc00, slots(rX, memBase), rd, rn))
	def("stxr", tpl(0x88007c00, slots(rW, rW, memBase), rm, rd, rn), tpl(0xc8007c00, slots(rW, rX, memBase), rm, rd, rn))
	def("stlxr", tpl(0x8800fc00, slots(rW, rW, memBase), rm, rd, rn), tpl(0xc800fc00, slots(rW, rX, memBase), rm, rd, rn))
	def("ldar", tpl(0x88dffc00, slots(rW, memBase), rd, rn), tpl(0xc8dffc00, slots(rX, memBase), rd, rn))
	def("stlr", tpl(0x889ffc00, slots(rW, memBase), rd, rn), tpl(0xc89ffc00, slots(rX, memBase), rd, rn))
}

// fp describes the single (S) or double (D) precision variant of a floating point instruction.
type fp struct {
	r     matcher
	ftype uint32 // bits 22-23
}

var (
	fp32 = fp{r: rS}
	fp64 = fp{r: rD, ftype: 1 << 22}
)

func bothFP(name string, forms ...func(f fp) template) {
	for _, form := range forms {
		def(name, form(fp32), form(fp64))
	}
}

func floatingPoint() {
	bothFP("fmov",
		func(f fp) template { return tpl(0x1e204000|f.ftype, slots(f.r, f.r), rd, rn) },
		func(f fp) template { return tpl(0x1e201000|f.ftype, slots(f.r, fimm), rd, at(cFP8, 13)) })
	def("fmov",
		tpl(0x1e260000, slots(rW, rS), rd, rn),
		tpl(0x1e270000, slots(rS, rW), rd, rn),
		tpl(0x9e660000, slots(rX, rD), rd, rn),
		tpl(0x9e670000, slots(rD, rX), rd, rn))

	for _, m := range []struct {
		name string
		base uint32
	}{
		{"fmul", 0x1e200800}, {"fdiv", 0x1e201800}, {"fadd", 0x1e202800}, {"fsub", 0x1e203800},
		{"fmax", 0x1e204800}, {"fmin", 0x1e205800}, {"fnmul", 0x1e208800},
	} {
		base := m.base
		bothFP(m.name, func(f fp) template { return tpl(base|f.ftype, slots(f.r, f.r, f.r), rd, rn, rm) })
	}
	for _, m := range []struct {
		name string
		base uint32
	}{
		{"fabs", 0x1e20c000}, {"fneg", 0x1e214000}, {"fsqrt", 0x1e21c000},
		{"frintn", 0x1e244000}, {"frintm", 0x1e254000}, {"frintp", 0x1e24c000}, {"frintz", 0x1e25c000},
	} {
		base := m.base
		bothFP(m.name, func(f fp) template { return tpl(base|f.ftype, slots(f.r, f.r), rd, rn) })
	}
	for _, m := range []struct {
		name string
		base uint32
	}{{"fcmp", 0x1e202000}, {"fcmpe", 0x1e202010}} {
		base := m.base
		bothFP(m.name,
			func(f fp) template { return tpl(base|f.ftype, slots(f.r, f.r), rn, rm) },
			func(f fp) template { return tpl(base|f.ftype|8, slots(f.r, fzero), rn, skip) })
	}
	bothFP("fcsel", func(f fp) template {
		return tpl(0x1e200c00|f.ftype, slots(f.r, f.r, f.r, cond), rd, rn, rm, at(cCond, 12))
	})

	def("fcvt",
		tpl(0x1e22c000, slots(rD, rS), rd, rn),
		tpl(0x1e624000, slots(rS, rD), rd, rn),
		tpl(0x1e23c000, slots(rH, rS), rd, rn),
		tpl(0x1ee24000, slots(rS, rH), rd, rn),
		tpl(0x1e63c000, slots(rH, rD), rd, rn),
		tpl(0x1ee2c000, slots(rD, rH), rd, rn))

	// integer conversions; rmode and opcode in bits 16-20
	for _, m := range []struct {
		name   string
		opcode uint32
		toInt  bool
	}{
		{"scvtf", 0x02 << 16, false}, {"ucvtf", 0x03 << 16, false},
		{"fcvtzs", 0x18 << 16, true}, {"fcvtzu", 0x19 << 16, true},
		{"fcvtns", 0x00 << 16, true}, {"fcvtnu", 0x01 << 16, true},
		{"fcvtms", 0x10 << 16, true}, {"fcvtmu", 0x11 << 16, true},
	} {
		for _, g := range []gp{gp32, gp64} {
			for _, f := range []fp{fp32, fp64} {
				base := 0x1e200000 | m.opcode | g.sf | f.ftype
				if m.toInt {
					def(m.name, tpl(base, slots(g.r, f.r), rd, rn))
				} else {
					def(m.name, tpl(base, slots(f.r, g.r), rd, rn))
				}
			}
		}
	}
}

func simd() {
	vec3 := func(name string, base uint32, m matcher, size ...command) {
		cmds := append(append([]command{q30}, size...), rd, rn, rm)
		def(name, tpl(base, slots(m, same(m), same(m)), cmds...))
	}
	vec3("add", 0x0e208400, vInt, at(cSize, 22))
	vec3("sub", 0x2e208400, vInt, at(cSize, 22))
	vec3("mul", 0x0e209c00, arrs(Arr8B, Arr16B, Arr4H, Arr8H, Arr2S, Arr4S), at(cSize, 22))
	vec3("cmeq", 0x2e208c00, vInt, at(cSize, 22))
	vec3("cmgt", 0x0e203400, vInt, at(cSize, 22))
	vec3("and", 0x0e201c00, vBytes)
	vec3("bic", 0x0e601c00, vBytes)
	vec3("orr", 0x0ea01c00, vBytes)
	vec3("orn", 0x0ee01c00, vBytes)
	vec3("eor", 0x2e201c00, vBytes)
	vec3("fadd", 0x0e20d400, vFloat, at(cSz, 22))
	vec3("fsub", 0x0ea0d400, vFloat, at(cSz, 22))
	vec3("fmul", 0x2e20dc00, vFloat, at(cSz, 22))
	vec3("fdiv", 0x2e20fc00, vFloat, at(cSz, 22))
	def("not", tpl(0x2e205800, slots(vBytes, same(vBytes)), q30, rd, rn))
	def("mvn", tpl(0x2e205800, slots(vBytes, same(vBytes)), q30, rd, rn))
	def("cnt", tpl(0x0e205800, slots(vBytes, same(vBytes)), q30, rd, rn))

	def("dup",
		tpl(0x0e000c00, slots(vDupW, rW), q30, arrImm5, rd, rn),
		tpl(0x4e080c00, slots(v2D, rX), rd, rn),
		tpl(0x0e000400, slots(vInt, elemAll), q30, rd, elemImm5(5)))
	def("ins",
		tpl(0x4e001c00, slots(elemBHS, rW), elemImm5(0), rn),
		tpl(0x4e001c00, slots(elemD, rX), elemImm5(0), rn))
	def("umov",
		tpl(0x0e003c00, slots(rW, elemBHS), rd, elemImm5(5)),
		tpl(0x4e003c00, slots(rX, elemD), rd, elemImm5(5)))
	def("smov",
		tpl(0x0e002c00, slots(rW, elemBH), rd, elemImm5(5)),
		tpl(0x4e002c00, slots(rX, elemBHS), rd, elemImm5(5)))

	def("movi",
		tpl(0x0f00e400, slots(vBytes, imm), q30, rd, op(cVImm8, 0)),
		tpl(0x2f00e400, slots(rD, imm), rd, op(cStretched, 0)),
		tpl(0x6f00e400, slots(v2D, imm), rd, op(cStretched, 0)))

	def("ld1",
		tpl(0x0c400000, slots(listAll, memBase), q30, at(cSize, 10), at(cList, 0), rn),
		tpl(0x0cdf0000, slots(listAll, memPost), q30, at(cSize, 10), at(cList, 0), rn, op(cListPost, 0)))
	def("st1",
		tpl(0x0c000000, slots(listAll, memBase), q30, at(cSize, 10), at(cList, 0), rn),
		tpl(0x0c9f0000, slots(listAll, memPost), q30, at(cSize, 10), at(cList, 0), rn, op(cListPost, 0)))
}
