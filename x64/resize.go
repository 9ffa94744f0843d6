package x64

import (
	"github.com/pkg/errors"

	"github.com/wdamron/dynasm"
	flags "github.com/wdamron/dynasm/x64/internal/flags"
)

// Resize all arguments to match the arg-pattern for the matched encoding. Only arguments in
// wildcard positions determine the operand size.
func (m *InstMatcher) resizeArgs() (int8, error) {
	argp := m.argp
	plen := len(argp)
	args := m.args
	argc := len(args)
	hasArg := false
	opSize := int8(-1)
	immSize := int8(-1)

	// scan arg-pattern:
	for pi, ai := 0, 0; pi+1 < plen && ai < argc; pi, ai = pi+2, ai+1 {
		t, sz, arg := argp[pi], argp[pi+1], args[ai]
		if sz != '*' {
			continue
		}

		width := int8(-1)
		switch v := arg.(type) {
		case Reg:
			hasArg = true
			width = int8(v.width())
		case memArgPlaceholder:
			hasArg = true
			switch {
			case t == 'k' || t == 'l':
				width = int8(m.mem.Index.width())
			case m.mem.Width != 0:
				width = int8(m.mem.Width)
			}
		default:
			if arg.width() == 0 {
				continue
			}
			w := int8(arg.width())
			if immSize >= 0 && immSize != w {
				return -1, errors.Wrapf(ErrNoMatch, "conflicting immediate sizes for %s", m.inst.Name())
			}
			immSize = w
			continue
		}
		if width < 0 {
			continue
		}
		if opSize >= 0 && opSize != width {
			return -1, errors.Wrapf(ErrNoMatch, "conflicting argument sizes for %s: %d/%d", m.inst.Name(), opSize, width)
		}
		opSize = width
	}

	if opSize < 0 && hasArg && hasFlag(m.enc.flags, flags.AUTO_NO32) {
		// near branches and stack operations default to the native width
		opSize = m.mode.addrSize()
	}

	if opSize >= 0 {
		refImmSize := opSize
		if opSize > 4 {
			refImmSize = 4
		}
		if immSize >= 0 && immSize > refImmSize {
			return -1, errors.Wrapf(ErrNoMatch, "immediate size mismatch for %s", m.inst.Name())
		}
		immSize = refImmSize
	} else if hasArg {
		return -1, errors.Wrapf(ErrNoMatch, "unknown operand size for %s", m.inst.Name())
	} else if immSize < 0 {
		immSize = 4
	}

	for pi, ai := 0, 0; pi+1 < plen && ai < argc; pi, ai = pi+2, ai+1 {
		t, sz, arg := argp[pi], argp[pi+1], args[ai]
		size := patternSize(sz)
		switch {
		case sz == '*' && t == 'i':
			size = uint8(immSize)
		case sz == '*':
			size = uint8(opSize)
		}

		switch v := arg.(type) {
		case Imm:
			if sz == '*' {
				fits := immFits(int64(v), size)
				if size == 4 && opSize == 8 {
					// sign-extended to the operand size
					fits = immFitsSigned(int64(v), 4)
				}
				if !fits {
					return -1, errors.Wrapf(dynasm.ErrImmediateOutOfRange, "%d does not fit the %d-byte immediate of %s", int64(v), size, m.inst.Name())
				}
			}
			args[ai] = immOfSize(int64(v), size)
		case Imm8, Imm16, Imm32, Imm64:
			if arg.width() != size {
				args[ai] = immOfSize(arg.(ImmArg).Int64(), size)
			}
		case Rel:
			args[ai] = relOfSize(int32(v), size)
		case Label:
			if v.size == 0 {
				v.size = size
				args[ai] = v
			}
		}
	}

	return opSize, nil
}

func immOfSize(v int64, size uint8) ImmArg {
	switch size {
	case 1:
		return Imm8(v)
	case 2:
		return Imm16(v)
	case 4:
		return Imm32(v)
	}
	return Imm64(v)
}
