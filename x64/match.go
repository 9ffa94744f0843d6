package x64

import (
	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

// Operand type/size patterns
//
// i : immediate
// o : instruction offset
//
// m : memory
// k : vsib addressing, 32 bit result, size determines xmm or ymm
// l : vsib addressing, 64 bit result, size determines xmm or ymm
//
// r : legacy reg
// f : fp reg
// x : mmx reg
// y : xmm/ymm reg
// s : segment reg
// c : control reg
// d : debug reg
// b : bound reg
//
// v : r and m
// u : x and m
// w : y and m
//
// A ... P: match rax - r15
// Q ... V: match es, cs, ss, ds, fs, gs
// W: matches CR8
// X: matches st0
//
// b, w, d, q, o, h match a byte, word, doubleword, quadword, octword and hexadecword
// p matches a PWORD (10 bytes)
// f matches an FWORD (6 bytes)
// * matches all possible sizes for this operand (w/d for i, w/d/q for r/v, o/h for y/w and everything for m)
// ! matches a lack of size, only useful in combination with m
//
// Arguments without a size (Imm, Rel, To(...) and memory without a Width) match sized
// patterns when the value fits, but never match the byte forms of EXACT_SIZE encodings.
// Memory without a Width does not match any sized pattern of an EXACT_SIZE encoding.
func (m *InstMatcher) matchInst(encodingStartOffset uint16) bool {
	inst := m.inst
	o := inst.offset()
	c := uint16(inst.count())
	for ei := encodingStartOffset; ei < c; ei++ {
		e := encs[o+ei]
		if e.feats&m.feats != e.feats {
			continue
		}
		if hasFlag(e.flags, flags.X86_ONLY) && m.mode != X86 {
			continue
		}
		p := e.pattern()
		if len(p)/2 != len(m.args) || !m.matchArgs(e, p) {
			continue
		}

		if uint16(e.offset()) != ei || e.instid() != inst.Id() {
			panic("unexpected encoding at offset")
		}

		// all arguments match for the current encoding
		m.enc, m.encId, m.argp = e, uint(o+ei), p
		return true
	}
	return false
}

func (m *InstMatcher) matchArgs(e enc, p []byte) bool {
	exact := hasFlag(e.flags, flags.EXACT_SIZE)
	for pi, ai := 0, 0; pi+1 < len(p) && ai < len(m.args); pi, ai = pi+2, ai+1 {
		t, sz, arg := p[pi], p[pi+1], m.args[ai]
		if !m.matchType(t, arg) || !m.matchSize(t, sz, arg, exact) {
			return false
		}
	}
	return true
}

func (m *InstMatcher) matchType(t byte, arg Arg) bool {
	_, isMem := arg.(memArgPlaceholder)
	vsib := isMem && m.mem.hasVSIB()
	r, isReg := arg.(Reg)

	switch t {
	case 'i': // immediate
		return isImm(arg)
	case 'o': // displacement
		return isDisp(arg)
	case 'm': // memory
		return isMem && !vsib
	case 'k', 'l': // vsib memory
		return vsib
	case 'r': // legacy reg
		return isReg && (r.Family() == REG_LEGACY || r.Family() == REG_HIGHBYTE)
	case 'v': // legacy reg or memory
		return (isMem && !vsib) || (isReg && (r.Family() == REG_LEGACY || r.Family() == REG_HIGHBYTE))
	case 'x': // mmx reg
		return isReg && r.Family() == REG_MMX
	case 'u': // mmx reg or memory
		return (isMem && !vsib) || (isReg && r.Family() == REG_MMX)
	case 'y': // xmm/ymm reg
		return isReg && r.isVector()
	case 'w': // xmm/ymm reg or memory
		return (isMem && !vsib) || (isReg && r.isVector())
	case 'f': // fp reg
		return isReg && r.Family() == REG_FP
	case 's': // segment reg
		return isReg && r.Family() == REG_SEGMENT
	case 'c': // control reg
		return isReg && r.Family() == REG_CONTROL
	case 'd': // debug reg
		return isReg && r.Family() == REG_DEBUG
	case 'b': // bound reg
		return isReg && r.Family() == REG_BOUND
	case 'W': // CR8
		return isReg && r == CR8
	case 'X': // st0
		return isReg && r == F0
	}
	switch {
	case t >= 'A' && t <= 'P': // rax - r15 (fixed reg)
		return isReg && r.Family() == REG_LEGACY && r.Num() == t-'A'
	case t >= 'Q' && t <= 'V': // es, cs, ss, ds, fs, gs (fixed reg)
		return isReg && r.Family() == REG_SEGMENT && r.Num() == t-'Q'
	}
	return false
}

func patternSize(sz byte) uint8 {
	switch sz {
	case 'b':
		return 1
	case 'w':
		return 2
	case 'd':
		return 4
	case 'q':
		return 8
	case 'f':
		return 6
	case 'p':
		return 10
	case 'o':
		return 16
	case 'h':
		return 32
	}
	return 0
}

func (m *InstMatcher) matchSize(t, sz byte, arg Arg, exact bool) bool {
	switch v := arg.(type) {
	case Imm:
		switch sz {
		case 'b':
			return !exact && immFits(int64(v), 1)
		case 'w':
			return immFits(int64(v), 2)
		case 'd':
			return immFits(int64(v), 4)
		case 'q', '*': // wildcard immediates are range-checked once the operand size is known
			return true
		}
		return false
	case AddrArg:
		return patternSize(sz) == v.size
	case Rel:
		switch sz {
		case 'b':
			return !exact && int32(int8(v)) == int32(v)
		case 'd':
			return true
		}
		return false
	case Label:
		if v.size != 0 {
			return patternSize(sz) == v.size
		}
		return sz == 'd' || (sz == 'b' && !exact)
	case memArgPlaceholder:
		mem := &m.mem
		if t == 'k' || t == 'l' {
			argsz := mem.Index.width()
			if sz == '*' {
				return argsz == 16 || argsz == 32
			}
			return patternSize(sz) == argsz
		}
		switch sz {
		case '!':
			return t == 'm'
		case '*':
			switch t {
			case 'm':
				return true
			case 'v':
				return mem.Width == 0 || mem.Width == 2 || mem.Width == 4 || mem.Width == 8
			case 'w':
				return mem.Width == 0 || mem.Width == 16 || mem.Width == 32
			}
			return false
		}
		if mem.Width == 0 {
			return !exact
		}
		return patternSize(sz) == mem.Width
	}

	argsz := arg.width()
	switch sz {
	case '*': // matches all possible sizes for this operand (w/d for i, w/d/q for r/v, o/h for y/w and everything for m)
		switch {
		case t == 'i':
			return argsz <= 4
		case t == 'y' || t == 'w':
			return argsz == 16 || argsz == 32
		case t == 'r' || t == 'v' || (t >= 'A' && t <= 'P'):
			return argsz == 2 || argsz == 4 || argsz == 8
		}
		return false
	case '!':
		return false
	}
	return patternSize(sz) == argsz
}
