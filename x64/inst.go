package x64

import (
	"strings"

	"github.com/wdamron/dynasm/x64/feats"
	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

func hasFlag(flags, flag uint32) bool { return flags&flag != 0 }

// Inst represents an instruction-mnemonic.
//
//	[0..12] bits are a uint16 offset into an internal array of instruction-encodings
//	[16..20] bits specify the number of supported encodings for the instruction
//	[21..31] bits identify the unique mnemonic
type Inst uint32

// Get the unique numeric identifier for the instruction mnemonic. This is an arbitrary value.
func (inst Inst) Id() uint16     { return uint16(inst >> 21) }
func (inst Inst) offset() uint16 { return uint16(inst) & 0x1fff }
func (inst Inst) count() uint8   { return uint8(inst>>16) & 0x1f }

// Get the name of the instruction mnemonic.
func (inst Inst) Name() string {
	if inst.Id() == 0 || int(inst.Id()) > len(instNameOffsets) {
		return ""
	}
	idOffset := inst.Id() - 1
	nmOffset := instNameOffsets[idOffset]
	var nmLength uint16
	if idOffset < uint16(len(instNameOffsets))-1 {
		nmLength = instNameOffsets[idOffset+1] - nmOffset
	} else {
		nmLength = uint16(len(instNames)) - nmOffset
	}
	return instNames[nmOffset : nmOffset+nmLength]
}

func (inst Inst) String() string { return inst.Name() }

func (inst Inst) encs() []enc {
	off := inst.offset()
	return encs[off : off+uint16(inst.count())]
}

// Forms lists the operand patterns accepted by the instruction, one per encoding.
func (inst Inst) Forms() []string {
	es := inst.encs()
	forms := make([]string, len(es))
	for i, e := range es {
		forms[i] = e.String()
	}
	return forms
}

// enc represents an instruction encoding.
//
//   - opcode: [4]byte
//   - flags: uint32
//   - feats: uint32
//   - mnemonic: uint16
//   - [0..10] bits identify the unique mnemonic (reverse mapping to the mnemonic)
//   - [11..15] bits identify the offset of this encoding w.r.t. the starting offset for the mnemonic within the encodings array
//   - reg + opcode-length: byte
//   - [0..3] bits identify the reg (15 when the ModRM.reg field holds an operand)
//   - [4..6] bits specify the opcode length in bytes
//   - arg-pattern: byte
type enc struct {
	op       [4]byte
	flags    uint32
	feats    feats.Feature
	mne      uint16
	regoplen uint8
	argp     uint8
}

func (e enc) reg() int8 {
	r := e.regoplen & 0xf
	if r == 0xf {
		return -1
	}
	return int8(r)
}

func (e enc) oplen() uint8    { return (e.regoplen >> 4) }
func (e enc) instid() uint16  { return e.mne & 0x7ff }
func (e enc) offset() uint8   { return uint8(e.mne >> 11) }
func (e enc) format() [8]byte { return argpFormats[e.argp] }

// pattern returns the arg-pattern without trailing padding.
func (e enc) pattern() []byte {
	p := argpFormats[e.argp]
	n := 0
	for n < len(p) && p[n] != 0 {
		n++
	}
	return p[:n]
}

func (e enc) String() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(insts[e.instid()-1].Name()))
	p := e.pattern()
	for i := 0; i+1 < len(p); i += 2 {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.Write(p[i : i+2])
	}
	if e.flags&flags.X86_ONLY != 0 {
		b.WriteString(" (x86 only)")
	}
	if e.feats != feats.X64_IMPLICIT {
		b.WriteString(" [")
		b.WriteString(e.feats.String())
		b.WriteByte(']')
	}
	return b.String()
}

// insts is indexed by Inst.Id()-1.
var insts []Inst

var instsByName map[string]Inst

func init() {
	insts = make([]Inst, len(instNameOffsets))
	instsByName = make(map[string]Inst, len(instNameOffsets))
	for i := 0; i < len(encs); {
		id := encs[i].instid()
		j := i
		for j < len(encs) && encs[j].instid() == id {
			j++
		}
		inst := Inst(uint32(id)<<21 | uint32(j-i)<<16 | uint32(i))
		insts[id-1] = inst
		instsByName[inst.Name()] = inst
		i = j
	}
}

const maxMnemonicLength = 24

// Lookup the instruction for a mnemonic. The mnemonic will be converted to uppercase if necessary.
func Lookup(mnemonic string) (Inst, bool) {
	if len(mnemonic) == 0 || len(mnemonic) > maxMnemonicLength {
		return Inst(0), false
	}
	inst, ok := instsByName[upperCase(mnemonic)]
	return inst, ok
}

func upperCase(s string) string {
	var b [maxMnemonicLength]byte
	changed := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
			changed = true
		}
		b[i] = ch
	}
	if !changed {
		return s
	}
	return string(b[:len(s)])
}
