package x64

import (
	"github.com/pkg/errors"

	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

// role is the field of the encoded instruction an operand is placed in.
type role uint8

const (
	roleM role = iota // ModRM.rm, or the low bits of the opcode for SHORT_ARG
	roleR             // ModRM.reg
	roleV             // VEX/XOP vvvv
	roleI             // high nibble of the immediate byte
)

// Role orders for the register and memory operands of an encoding.
var (
	orderM    = []role{roleM}
	orderRM   = []role{roleR, roleM}
	orderMR   = []role{roleM, roleR}
	orderVM   = []role{roleV, roleM}
	orderRVM  = []role{roleR, roleV, roleM}
	orderRMV  = []role{roleR, roleM, roleV}
	orderMVR  = []role{roleM, roleV, roleR}
	orderRVIM = []role{roleR, roleV, roleI, roleM}
	orderRVMI = []role{roleR, roleV, roleM, roleI}
)

// roleOrder picks the placement of n operands. A segment, control or debug register always
// goes into ModRM.reg. Otherwise the encoding flags choose between m, rm, rvm and rvim (the
// default), mr (ENC_MR) and vm or mvr (ENC_VM); the position of a memory operand overrides
// the flags, except for vm.
func roleOrder(n, memArg, specialArg int, encFlags uint32) []role {
	if specialArg >= 0 {
		if specialArg == 0 {
			return orderRM
		}
		return orderMR
	}
	switch n {
	case 1:
		return orderM
	case 2:
		switch {
		case hasFlag(encFlags, flags.ENC_MR) || memArg == 0:
			return orderMR
		case hasFlag(encFlags, flags.ENC_VM):
			return orderVM
		}
		return orderRM
	case 3:
		switch {
		case memArg == 1:
			return orderRMV
		case hasFlag(encFlags, flags.ENC_VM) || memArg == 0:
			return orderMVR
		}
		return orderRVM
	case 4:
		if memArg == 2 {
			return orderRVMI
		}
		return orderRVIM
	}
	return nil
}

// extractArgs assigns the matched arguments to their roles and collects the immediates and
// displacements in order. Fixed registers are implied by the opcode and take no role.
func (m *InstMatcher) extractArgs() error {
	var operands [4]Arg
	n, memArg, specialArg := 0, -1, -1
	m.r, m.m, m.v, m.i = nil, nil, nil, nil
	m.imms = m._imms[:0]

	for pi, ai := 0, 0; pi+1 < len(m.argp) && ai < len(m.args); pi, ai = pi+2, ai+1 {
		t, arg := m.argp[pi], m.args[ai]
		switch t {
		case 'i', 'o':
			m.imms = append(m.imms, arg)
			continue
		case 'm', 'u', 'v', 'w', 'k', 'l':
			if memArg >= 0 {
				return errors.Errorf("encoding %s has more than one memory operand", m.enc)
			}
			memArg = n
		case 'c', 'd', 's':
			if specialArg >= 0 {
				return errors.Errorf("encoding %s has more than one segment, control or debug register", m.enc)
			}
			specialArg = n
		case 'f', 'x', 'r', 'y', 'b':
		default:
			continue
		}
		operands[n] = arg
		n++
	}

	order := roleOrder(n, memArg, specialArg, m.enc.flags)
	for i := 0; i < n && i < len(order); i++ {
		switch order[i] {
		case roleM:
			m.m = operands[i]
		case roleR:
			m.r = operands[i]
		case roleV:
			m.v = operands[i]
		case roleI:
			m.i = operands[i]
		}
	}
	return nil
}
