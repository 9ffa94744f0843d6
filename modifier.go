package dynasm

import (
	"github.com/pkg/errors"
)

var errModifierDone = errors.New("modifier used after its alteration returned")

// Modifier overwrites committed code in place. It is only valid inside the
// function passed to Assembler.Alter.
type Modifier struct {
	a    *Assembler
	base uintptr
	buf  []byte
	pos  int
	done bool

	// touched range, synchronized with the instruction cache on return
	lo, hi int
	// references recorded through Append
	added []reference
}

// Offset returns the cursor position.
func (m *Modifier) Offset() AssemblyOffset { return AssemblyOffset(m.pos) }

// Goto moves the cursor to off.
func (m *Modifier) Goto(off AssemblyOffset) error {
	if m.done {
		return errModifierDone
	}
	if off < 0 || int(off) > len(m.buf) {
		return errors.Wrapf(ErrOutOfBounds, "goto %d in %d committed bytes", off, len(m.buf))
	}
	m.pos = int(off)
	return nil
}

// Check fails if the cursor has moved past off.
func (m *Modifier) Check(off AssemblyOffset) error {
	if m.pos > int(off) {
		return errors.Wrapf(ErrOutOfBounds, "cursor %d past %d", m.pos, off)
	}
	return nil
}

// CheckExact fails unless the cursor is at off.
func (m *Modifier) CheckExact(off AssemblyOffset) error {
	if m.pos != int(off) {
		return errors.Wrapf(ErrOutOfBounds, "cursor %d, expected %d", m.pos, off)
	}
	return nil
}

// PushByte overwrites the byte at the cursor.
func (m *Modifier) PushByte(b byte) error { return m.Extend([]byte{b}) }

// Extend overwrites len(data) bytes at the cursor.
func (m *Modifier) Extend(data []byte) error {
	if m.done {
		return errModifierDone
	}
	end := m.pos + len(data)
	if end > len(m.buf) {
		return errors.Wrapf(ErrOutOfBounds, "write [%d, %d) past %d committed bytes", m.pos, end, len(m.buf))
	}
	copy(m.buf[m.pos:], data)
	m.touch(m.pos, end)
	m.pos = end
	return nil
}

func (m *Modifier) touch(lo, hi int) {
	if lo < m.lo {
		m.lo = lo
	}
	if hi > m.hi {
		m.hi = hi
	}
}

// Append overwrites code at the cursor and patches its references at once.
// Targets must already be bound; forward references are not allowed.
func (m *Modifier) Append(code []byte, refs ...Ref) error {
	if m.done {
		return errModifierDone
	}
	start := m.pos
	end := start + len(code)
	if end > len(m.buf) {
		return errors.Wrapf(ErrOutOfBounds, "write [%d, %d) past %d committed bytes", start, end, len(m.buf))
	}
	staged := make([]byte, len(code))
	copy(staged, code)

	var added []reference
	for _, r := range refs {
		if !r.Target.IsValid() || r.Rel == nil {
			return errors.Errorf("invalid reference to %s", r.Target)
		}
		ref := reference{anchor: AssemblyOffset(end), target: r.Target, addend: r.Addend, rel: r.Rel}
		at := int(ref.fieldStart())
		if at < start || at+r.Rel.Size() > end {
			return errors.Wrapf(ErrOutOfBounds, "relocation field at %d outside [%d, %d)", at, start, end)
		}
		switch r.Target.kind {
		case targetForward:
			return errors.Errorf("forward reference to %s in committed code", r.Target)
		case targetExtern:
		default:
			off, ok := m.a.labels.lookup(r.Target)
			if !ok {
				return r.Target.unknown()
			}
			ref.resolved, ref.offset = true, off
		}
		field := staged[at-start : at-start+r.Rel.Size()]
		if err := r.Rel.Write(field, ref.value(m.base)); err != nil {
			return errors.Wrapf(err, "reference to %s at offset %d", ref.target, at)
		}
		if ref.baseDependent() {
			added = append(added, ref)
		}
	}
	copy(m.buf[start:], staged)
	m.touch(start, end)
	m.pos = end
	m.added = append(m.added, added...)
	return nil
}

// Emit encodes one instruction at the cursor through the assembler's encoder.
func (m *Modifier) Emit(mnemonic string, operands ...Operand) error {
	if m.done {
		return errModifierDone
	}
	if m.a.enc == nil {
		return errors.Wrapf(ErrUnknownMnemonic, "%s: no encoder", mnemonic)
	}
	return m.a.enc.Encode(m, mnemonic, operands)
}

// finish drops managed references whose fields were overwritten and
// invalidates the modifier.
func (m *Modifier) finish() {
	if m.hi > m.lo {
		kept := m.a.managed[:0]
		for _, ref := range m.a.managed {
			at := int(ref.fieldStart())
			if at+ref.rel.Size() <= m.lo || at >= m.hi {
				kept = append(kept, ref)
			}
		}
		m.a.managed = kept
	}
	m.a.managed = append(m.a.managed, m.added...)
	if m.lo > m.hi {
		m.lo, m.hi = 0, 0
	}
	m.buf, m.done = nil, true
}

// UncommittedModifier overwrites bytes that have not been committed yet. It is
// only valid inside the function passed to Assembler.AlterUncommitted.
// Offsets are assembly offsets.
type UncommittedModifier struct {
	a     *Assembler
	start AssemblyOffset
	pos   int
}

// Offset returns the cursor position.
func (m *UncommittedModifier) Offset() AssemblyOffset { return m.start + AssemblyOffset(m.pos) }

// Goto moves the cursor to off, which must lie in the uncommitted region.
func (m *UncommittedModifier) Goto(off AssemblyOffset) error {
	if m.a == nil {
		return errModifierDone
	}
	p := int(off - m.start)
	if p < 0 || p > len(m.a.ops) {
		return errors.Wrapf(ErrOutOfBounds, "goto %d outside uncommitted code [%d, %d)", off, m.start, m.start+AssemblyOffset(len(m.a.ops)))
	}
	m.pos = p
	return nil
}

// Check fails if the cursor has moved past off.
func (m *UncommittedModifier) Check(off AssemblyOffset) error {
	if m.Offset() > off {
		return errors.Wrapf(ErrOutOfBounds, "cursor %d past %d", m.Offset(), off)
	}
	return nil
}

// CheckExact fails unless the cursor is at off.
func (m *UncommittedModifier) CheckExact(off AssemblyOffset) error {
	if m.Offset() != off {
		return errors.Wrapf(ErrOutOfBounds, "cursor %d, expected %d", m.Offset(), off)
	}
	return nil
}

// PushByte overwrites the byte at the cursor.
func (m *UncommittedModifier) PushByte(b byte) error { return m.Extend([]byte{b}) }

// Extend overwrites len(data) bytes at the cursor.
func (m *UncommittedModifier) Extend(data []byte) error {
	if m.a == nil {
		return errModifierDone
	}
	end := m.pos + len(data)
	if end > len(m.a.ops) {
		return errors.Wrapf(ErrOutOfBounds, "write past %d uncommitted bytes", len(m.a.ops))
	}
	copy(m.a.ops[m.pos:], data)
	m.pos = end
	return nil
}

// Append overwrites code at the cursor. Label references are rejected.
func (m *UncommittedModifier) Append(code []byte, refs ...Ref) error {
	if len(refs) > 0 {
		return errors.New("label references are not allowed in uncommitted alterations")
	}
	return m.Extend(code)
}

// Emit encodes one instruction at the cursor through the assembler's encoder.
func (m *UncommittedModifier) Emit(mnemonic string, operands ...Operand) error {
	if m.a == nil {
		return errModifierDone
	}
	if m.a.enc == nil {
		return errors.Wrapf(ErrUnknownMnemonic, "%s: no encoder", mnemonic)
	}
	return m.a.enc.Encode(m, mnemonic, operands)
}
