package x64

import (
	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
	"github.com/wdamron/dynasm/x64/feats"
	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

// ErrNoMatch is returned when no encoding of an instruction accepts the given arguments.
var ErrNoMatch = dynasm.ErrOperandMismatch

// Placeholder for memory arguments, to avoid allocations when converting Mem to an interface
type memArgPlaceholder struct{}

func (m memArgPlaceholder) isArg()       {}
func (m memArgPlaceholder) width() uint8 { return 0 }

// InstMatcher finds valid encodings for an instruction with arguments.
type InstMatcher struct {
	mode Mode

	// enabled CPU features:
	feats feats.Feature

	// scratch space for current instruction, arguments, and matched encoding:

	addrSize int
	opSize   int

	memOffset int   // -1 if no memory argument is present
	mem       Mem   // memory argument if memOffset >= 0
	args      []Arg // sized reference to _args
	_args     [4]Arg

	inst  Inst
	encId uint   // offset of the matched encoding
	enc   enc    // matched encoding
	argp  []byte // arg-pattern for the matched encoding

	// extracted arguments:

	r Arg
	m Arg
	v Arg
	i Arg

	imms  []Arg
	_imms [4]Arg
}

// Create an instruction matcher for mode with all CPU features enabled by default.
func NewInstMatcher(mode Mode) *InstMatcher {
	return &InstMatcher{
		mode:      mode,
		feats:     feats.AllFeatures,
		memOffset: -1,
		addrSize:  -1,
		opSize:    -1,
	}
}

func (m *InstMatcher) reset() {
	*m = InstMatcher{mode: m.mode, feats: m.feats, addrSize: -1, opSize: -1, memOffset: -1}
}

// Get the processor mode instructions are matched for.
func (m *InstMatcher) Mode() Mode { return m.mode }

// Get the current, allowable CPU feature-set for instruction-matching.
//
// See package x64/feats for all available CPU features.
func (m *InstMatcher) Features() feats.Feature { return m.feats }

// Restrict the allowable CPU feature-set for instruction-matching.
//
// See package x64/feats for all available CPU features.
func (m *InstMatcher) SetFeatures(enabledFeatures feats.Feature) { m.feats = enabledFeatures }

// Control the allowable CPU feature-set for instruction-matching.
//
// See package x64/feats for all available CPU features.
func (m *InstMatcher) DisableFeature(feature feats.Feature) { m.feats &^= feature }

// Control the allowable CPU feature-set for instruction-matching.
//
// See package x64/feats for all available CPU features.
func (m *InstMatcher) EnableFeature(feature feats.Feature) { m.feats |= feature }

// Get the matched instruction.
func (m *InstMatcher) Inst() Inst { return m.inst }

// Get the instruction's unique encoding ID.
func (m *InstMatcher) EncodingId() uint { return m.encId }

// Get a description of the matched encoding, such as "add r*, ib".
func (m *InstMatcher) Encoding() string { return m.enc.String() }

// Get CPU features required by the instruction.
func (m *InstMatcher) InstFeatures() feats.Feature { return m.enc.feats }

// Get the instruction's address size.
func (m *InstMatcher) AddrSize() int { return m.addrSize }

// Get the instruction's operand size.
func (m *InstMatcher) OperandSize() int { return m.opSize }

// Get the instruction's opcode
func (m *InstMatcher) Opcode() []byte { return m.enc.op[:m.enc.oplen()] }

// Check if a register argument will be encoded in the last byte of the instruction's opcode.
func (m *InstMatcher) HasOpcodeRegArg() bool { return m.enc.flags&flags.SHORT_ARG != 0 }

// Check if the instruction is part of the VEX instruction set.
func (m *InstMatcher) IsVEX() bool { return m.enc.flags&flags.VEX_OP != 0 }

// Check if the instruction is part of the XOP instruction set.
func (m *InstMatcher) IsXOP() bool { return m.enc.flags&flags.XOP_OP != 0 }

// Check if the instruction encodes the final opcode byte in the immediate position, like 3DNow! ops.
func (m *InstMatcher) HasOpcodeInImmediate() bool { return m.enc.flags&flags.IMM_OP != 0 }

// Find the first encoding of inst accepting args. If none is found, ErrNoMatch is returned;
// other errors report arguments which can never be encoded.
func (m *InstMatcher) Match(inst Inst, args ...Arg) error {
	if err := m.prepare(inst, args...); err != nil {
		return err
	}
	return m.match(0)
}

// Find all matching encodings for an instruction. If no matches are found, ErrNoMatch will be returned.
func (m *InstMatcher) AllMatches(inst Inst, args ...Arg) ([]*InstMatcher, error) {
	var matches []*InstMatcher
	start := uint16(inst.offset())
	count := uint16(inst.count())
	offset := uint16(0)
	var err error
	for offset < count {
		if err = m.prepare(inst, args...); err != nil {
			return nil, err
		}
		if err = m.match(offset); err != nil {
			break
		}
		matches = append(matches, m.clone())
		offset = uint16(m.EncodingId()) + 1 - start
	}
	m.reset()
	if len(matches) == 0 {
		if err == nil {
			err = ErrNoMatch
		}
		return nil, err
	}
	return matches, nil
}

func (m *InstMatcher) clone() *InstMatcher {
	c := new(InstMatcher)
	*c = *m
	c.args = c._args[:len(m.args)]
	c.imms = c._imms[:len(m.imms)]
	return c
}

func (m *InstMatcher) prepare(inst Inst, args ...Arg) error {
	m.reset()
	if inst.Id() == 0 || int(inst.Id()) > len(insts) {
		return errors.Wrapf(dynasm.ErrUnknownMnemonic, "invalid instruction %#x", uint32(inst))
	}
	if len(args) > len(m._args) {
		return errors.Wrapf(ErrNoMatch, "%s accepts at most %d arguments", inst.Name(), len(m._args))
	}
	m.inst = inst
	for i, arg := range args {
		if arg == nil {
			m.reset()
			return errors.Wrapf(ErrNoMatch, "nil argument %d for %s", i, inst.Name())
		}
		if mem, ok := arg.(Mem); ok {
			if m.memOffset >= 0 {
				m.reset()
				return errors.Wrapf(ErrNoMatch, "multiple memory arguments for %s", inst.Name())
			}
			m._args[i] = memArgPlaceholder{}
			m.memOffset = i
			m.mem = mem
			continue
		}
		m._args[i] = arg
	}
	m.args = m._args[:len(args)]
	return nil
}

func (m *InstMatcher) match(encodingStartOffset uint16) error {
	if err := m.checkMode(); err != nil {
		m.reset()
		return err
	}

	addrSize, err := m.sanitizeMemArg()
	if err != nil {
		m.reset()
		return err
	}
	if addrSize < 0 {
		addrSize = m.mode.addrSize()
	}
	if !m.mode.validAddrSize(addrSize) {
		m.reset()
		return errors.Wrapf(dynasm.ErrInvalidRegister, "%d-bit addressing is unavailable in %s mode", int(addrSize)*8, m.mode)
	}

	// find a matching encoding; an encoding whose arguments cannot be resized
	// yields to the next candidate
	args, mem := m._args, m.mem
	var firstErr error
	for offset := encodingStartOffset; ; {
		if ok := m.matchInst(offset); !ok {
			m.reset()
			if firstErr != nil {
				return firstErr
			}
			return ErrNoMatch
		}
		opSize, err := m.resizeArgs()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			offset = uint16(m.encId) + 1 - m.inst.offset()
			m._args, m.mem = args, mem
			continue
		}
		if err := m.extractArgs(); err != nil {
			m.reset()
			return err
		}
		m.addrSize, m.opSize = int(addrSize), int(opSize)
		return nil
	}
}

// checkMode rejects registers which do not exist in 32-bit mode.
func (m *InstMatcher) checkMode() error {
	if m.mode != X86 {
		return nil
	}
	for _, arg := range m.args {
		if r, ok := arg.(Reg); ok {
			if err := checkReg32(r); err != nil {
				return err
			}
		}
	}
	if m.memOffset >= 0 {
		for _, r := range [...]Reg{m.mem.Base, m.mem.Index} {
			if r == 0 {
				continue
			}
			if err := checkReg32(r); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkReg32(r Reg) error {
	switch {
	case r.Family() == REG_RIP:
	case r.IsExtended():
	case r.isLowByte():
	case r.Family() == REG_LEGACY && r.width() == 8:
	default:
		return nil
	}
	return errors.Wrapf(dynasm.ErrInvalidRegister, "%s is unavailable in 32-bit mode", r)
}

// Find an encoding for inst with a register destination and register source.
// If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) RR(inst Inst, dst, src Reg) error {
	return m.regRegImm(inst, dst, src, nil)
}

// Find an encoding for inst with a register destination, register source, and immediate.
// If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) RRI(inst Inst, dst, src Reg, imm ImmArg) error {
	return m.regRegImm(inst, dst, src, imm)
}

// Find an encoding for inst with a register destination and memory source.
// If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) RM(inst Inst, dst Reg, src Mem) error {
	return m.regMemImm(inst, dst, src, nil, false)
}

// Find an encoding for inst with a memory destination and register source.
// If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) MR(inst Inst, dst Mem, src Reg) error {
	return m.regMemImm(inst, src, dst, nil, true)
}

// Find an encoding for inst with a register destination, memory source, and immediate.
// If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) RMI(inst Inst, dst Reg, src Mem, imm ImmArg) error {
	return m.regMemImm(inst, dst, src, imm, false)
}

// Find an encoding for inst with a memory destination, register source, and immediate.
// If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) MRI(inst Inst, dst Mem, src Reg, imm ImmArg) error {
	return m.regMemImm(inst, src, dst, imm, true)
}

// Find an encoding for inst with a register destination and immediate.
// If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) RI(inst Inst, dst Reg, imm ImmArg) error {
	m.reset()
	m.inst = inst
	m._args[0], m._args[1] = dst, imm
	if imm != nil {
		m.args = m._args[:2]
	} else {
		m.args = m._args[:1]
	}
	return m.match(0)
}

// Find an encoding for inst with a memory destination and immediate.
// If no matching instruction-encoding is found, ErrNoMatch will be returned.
func (m *InstMatcher) MI(inst Inst, dst Mem, imm ImmArg) error {
	m.reset()
	m.inst, m.memOffset, m.mem, m._args[0], m._args[1] = inst, 0, dst, memArgPlaceholder{}, imm
	if imm != nil {
		m.args = m._args[:2]
	} else {
		m.args = m._args[:1]
	}
	return m.match(0)
}

func (m *InstMatcher) regRegImm(inst Inst, dst, src Reg, imm ImmArg) error {
	m.reset()
	m.inst, m._args[0], m._args[1], m._args[2] = inst, dst, src, imm
	if imm != nil {
		m.args = m._args[:3]
	} else {
		m.args = m._args[:2]
	}
	return m.match(0)
}

func (m *InstMatcher) regMemImm(inst Inst, r Reg, mem Mem, imm ImmArg, swap bool) error {
	m.reset()
	m.inst, m.mem = inst, mem
	if swap {
		m.memOffset = 0
		m._args[0], m._args[1] = memArgPlaceholder{}, r
	} else {
		m.memOffset = 1
		m._args[0], m._args[1] = r, memArgPlaceholder{}
	}
	if imm != nil {
		m._args[2] = imm
		m.args = m._args[:3]
	} else {
		m.args = m._args[:2]
	}
	return m.match(0)
}
