package dynasm

import (
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Assembler accumulates code in a scratch buffer, resolves labels and commits
// the result to executable memory.
//
// An Assembler is owned by a single goroutine. Executors returned by Reader
// may be used concurrently with the owner.
type Assembler struct {
	enc Encoder
	log logrus.FieldLogger

	ops    []byte
	labels *labelRegistry

	pending []reference // references resolved at commit
	managed []reference // committed references rewritten when the buffer moves

	mem       *memory
	exec      *Executor
	finalized bool
}

// New returns an assembler emitting instructions through enc. enc may be nil
// when only data directives and raw relocations are used. A nil cfg selects
// NewConfig.
func New(enc Encoder, cfg *Config) *Assembler {
	if cfg == nil {
		cfg = NewConfig()
	}
	if cfg.logger == nil {
		cfg = cfg.WithLogger(nil)
	}
	log := cfg.logger
	if enc != nil {
		log = log.WithField("arch", enc.Arch().String())
	}
	mem := newMemory(cfg)
	mem.log = log
	return &Assembler{
		enc:    enc,
		log:    log,
		labels: newLabelRegistry(),
		mem:    mem,
		exec:   &Executor{mem: mem},
	}
}

// Encoder returns the encoder bound to the assembler.
func (a *Assembler) Encoder() Encoder { return a.enc }

// Offset returns the assembly offset of the next byte.
func (a *Assembler) Offset() AssemblyOffset {
	return AssemblyOffset(a.mem.committed() + len(a.ops))
}

func (a *Assembler) checkOpen() error {
	if a.finalized {
		return ErrFinalized
	}
	return nil
}

// PushByte appends a single byte.
func (a *Assembler) PushByte(b byte) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	a.ops = append(a.ops, b)
	return nil
}

// Extend appends raw bytes.
func (a *Assembler) Extend(data []byte) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	a.ops = append(a.ops, data...)
	return nil
}

// PushU16 appends a little-endian 16-bit value.
func (a *Assembler) PushU16(v uint16) error {
	return a.Extend(binary.LittleEndian.AppendUint16(nil, v))
}

// PushU32 appends a little-endian 32-bit value.
func (a *Assembler) PushU32(v uint32) error {
	return a.Extend(binary.LittleEndian.AppendUint32(nil, v))
}

// PushU64 appends a little-endian 64-bit value.
func (a *Assembler) PushU64(v uint64) error {
	return a.Extend(binary.LittleEndian.AppendUint64(nil, v))
}

// Align pads with fill until the offset is a multiple of n.
func (a *Assembler) Align(n int, fill byte) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	if n <= 0 {
		return errors.Errorf("invalid alignment %d", n)
	}
	for int(a.Offset())%n != 0 {
		a.ops = append(a.ops, fill)
	}
	return nil
}

// NewDynamicLabel issues a fresh, undefined dynamic label.
func (a *Assembler) NewDynamicLabel() DynamicLabel { return a.labels.newDynamic() }

// GlobalLabel binds name to the current offset. Global labels are defined at
// most once.
func (a *Assembler) GlobalLabel(name string) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	return a.labels.defineGlobal(name, a.Offset())
}

// DynamicLabel binds id to the current offset.
func (a *Assembler) DynamicLabel(id DynamicLabel) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	return a.labels.defineDynamic(id, a.Offset())
}

// LocalLabel binds name to the current offset, patching every forward
// reference waiting on it. Local labels may be redefined; backward references
// see the latest definition.
//
// If any waiting reference can not be patched the label is left unbound and
// the failures are returned together.
func (a *Assembler) LocalLabel(name string) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	off := a.Offset()
	waiting := a.labels.forward[name]

	var (
		errs    *multierror.Error
		writes  []fieldWrite
		resolve []reference
	)
	for _, ref := range waiting {
		ref.resolved, ref.offset = true, off
		if ref.baseDependent() {
			resolve = append(resolve, ref)
			continue
		}
		w, err := a.stage(nil, ref, ref.value(0))
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "local label %q", name))
			continue
		}
		writes = append(writes, w)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	a.apply(writes)
	a.pending = append(a.pending, resolve...)
	a.labels.defineLocal(name, off)
	return nil
}

// LabelOffset returns the offset currently bound to t. Forward targets never
// have an offset.
func (a *Assembler) LabelOffset(t Target) (AssemblyOffset, bool) {
	return a.labels.lookup(t)
}

// Relocate records a reference to t whose relocation is anchored at the
// current offset.
func (a *Assembler) Relocate(t Target, addend int64, rel Relocation) error {
	return a.Append(nil, Ref{Target: t, Addend: addend, Rel: rel})
}

// GlobalReloc references a global label.
func (a *Assembler) GlobalReloc(name string, addend int64, rel Relocation) error {
	return a.Relocate(Global(name), addend, rel)
}

// ForwardReloc references the next definition of a local label.
func (a *Assembler) ForwardReloc(name string, addend int64, rel Relocation) error {
	return a.Relocate(Forward(name), addend, rel)
}

// BackwardReloc references the current definition of a local label.
func (a *Assembler) BackwardReloc(name string, addend int64, rel Relocation) error {
	return a.Relocate(Backward(name), addend, rel)
}

// DynamicReloc references a dynamic label.
func (a *Assembler) DynamicReloc(id DynamicLabel, addend int64, rel Relocation) error {
	return a.Relocate(Dynamic(id), addend, rel)
}

// BareReloc references an absolute address outside the buffer.
func (a *Assembler) BareReloc(addr uintptr, rel Relocation) error {
	return a.Relocate(Extern(addr), 0, rel)
}

// fieldWrite is a validated relocation patch, positioned by assembly offset.
type fieldWrite struct {
	at   AssemblyOffset
	data []byte
}

// read copies size bytes at off from the uncommitted bytes followed by code.
func (a *Assembler) read(code []byte, off AssemblyOffset, size int) []byte {
	buf := make([]byte, size)
	start := int(off) - a.mem.committed()
	for i := range buf {
		p := start + i
		if p < len(a.ops) {
			buf[i] = a.ops[p]
		} else {
			buf[i] = code[p-len(a.ops)]
		}
	}
	return buf
}

func (a *Assembler) stage(code []byte, ref reference, value int64) (fieldWrite, error) {
	at := ref.fieldStart()
	buf := a.read(code, at, ref.rel.Size())
	if err := ref.rel.Write(buf, value); err != nil {
		return fieldWrite{}, errors.Wrapf(err, "reference to %s at offset %d", ref.target, at)
	}
	return fieldWrite{at: at, data: buf}, nil
}

func (a *Assembler) apply(writes []fieldWrite) {
	committed := a.mem.committed()
	for _, w := range writes {
		copy(a.ops[int(w.at)-committed:], w.data)
	}
}

// Append adds encoded code and its references. Backward references must
// already be bound; they are patched immediately when their value does not
// depend on the buffer's base address. On any failure nothing is appended.
func (a *Assembler) Append(code []byte, refs ...Ref) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	anchor := a.Offset() + AssemblyOffset(len(code))
	committed := AssemblyOffset(a.mem.committed())

	var (
		writes  []fieldWrite
		forward []reference
		pending []reference
	)
	for _, r := range refs {
		if !r.Target.IsValid() || r.Rel == nil {
			return errors.Errorf("invalid reference to %s", r.Target)
		}
		ref := reference{anchor: anchor, target: r.Target, addend: r.Addend, rel: r.Rel}
		if start := ref.fieldStart(); start < committed || start+AssemblyOffset(r.Rel.Size()) > anchor {
			return errors.Wrapf(ErrOutOfBounds, "relocation field at %d outside uncommitted code [%d, %d)", start, committed, anchor)
		}
		switch r.Target.kind {
		case targetForward:
			forward = append(forward, ref)
		case targetBackward:
			off, ok := a.labels.lookup(r.Target)
			if !ok {
				return r.Target.unknown()
			}
			ref.resolved, ref.offset = true, off
			if ref.baseDependent() {
				pending = append(pending, ref)
				continue
			}
			w, err := a.stage(code, ref, ref.value(0))
			if err != nil {
				return err
			}
			writes = append(writes, w)
		default:
			pending = append(pending, ref)
		}
	}

	a.ops = append(a.ops, code...)
	a.apply(writes)
	for _, ref := range forward {
		a.labels.queueForward(ref)
	}
	a.pending = append(a.pending, pending...)
	return nil
}

// Emit encodes one instruction through the bound encoder and appends it.
func (a *Assembler) Emit(mnemonic string, operands ...Operand) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	if a.enc == nil {
		return errors.Wrapf(ErrUnknownMnemonic, "%s: no encoder", mnemonic)
	}
	return a.enc.Encode(a, mnemonic, operands)
}

// EmitAt is Emit with errors annotated by a caller-supplied source span.
func (a *Assembler) EmitAt(span Span, mnemonic string, operands ...Operand) error {
	if err := a.Emit(mnemonic, operands...); err != nil {
		return &SpanError{Span: span, Err: err}
	}
	return nil
}

// resolve binds every pending global and dynamic reference. The references
// are not modified on failure.
func (a *Assembler) resolve() ([]reference, error) {
	var errs *multierror.Error
	for _, ref := range a.labels.pendingForward() {
		errs = multierror.Append(errs, ref.target.unknown())
	}
	refs := make([]reference, len(a.pending))
	copy(refs, a.pending)
	for i := range refs {
		ref := &refs[i]
		if ref.resolved || ref.target.kind == targetExtern {
			continue
		}
		off, ok := a.labels.lookup(ref.target)
		if !ok {
			errs = multierror.Append(errs, ref.target.unknown())
			continue
		}
		ref.resolved, ref.offset = true, off
	}
	return refs, errs.ErrorOrNil()
}

// Commit moves the scratch buffer into executable memory and resolves every
// pending reference. On failure the assembler and the executable memory are
// left unchanged and all failures are returned together.
func (a *Assembler) Commit() error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	if len(a.ops) == 0 && len(a.pending) == 0 && len(a.labels.forward) == 0 {
		return nil
	}
	refs, err := a.resolve()
	if err != nil {
		return err
	}

	prev := a.mem.committed()
	patch := func(base uintptr, moved bool, dst []byte) error {
		var errs *multierror.Error
		var writes []fieldWrite
		stage := func(ref reference) {
			at := int(ref.fieldStart())
			buf := make([]byte, ref.rel.Size())
			copy(buf, dst[at:])
			if err := ref.rel.Write(buf, ref.value(base)); err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "reference to %s at offset %d", ref.target, at))
				return
			}
			writes = append(writes, fieldWrite{at: AssemblyOffset(at), data: buf})
		}
		if moved {
			for _, ref := range a.managed {
				stage(ref)
			}
		}
		for _, ref := range refs {
			stage(ref)
		}
		if err := errs.ErrorOrNil(); err != nil {
			return err
		}
		for _, w := range writes {
			copy(dst[w.at:], w.data)
		}
		return nil
	}
	if err := a.mem.commit(a.ops, patch); err != nil {
		return err
	}

	for _, ref := range refs {
		if ref.baseDependent() {
			a.managed = append(a.managed, ref)
		}
	}
	a.log.WithFields(logrus.Fields{
		"offset":     prev,
		"size":       len(a.ops),
		"references": len(refs),
	}).Debug("Committed code")
	a.ops = a.ops[:0]
	a.pending = a.pending[:0]
	return nil
}

// Finalize commits outstanding code and returns the executable buffer. The
// assembler can not be used afterwards; readers obtained from Reader keep
// working until the buffer is closed.
func (a *Assembler) Finalize() (*ExecutableBuffer, error) {
	if err := a.Commit(); err != nil {
		return nil, err
	}
	a.finalized = true
	buf := &ExecutableBuffer{m: a.mem.current(), mem: a.mem}
	a.log.WithField("size", buf.Len()).Debug("Finalized executable buffer")
	return buf, nil
}

// Close releases the assembler's executable memory without finalizing it.
// Outstanding guards keep the memory mapped until they are unlocked.
func (a *Assembler) Close() error {
	if a.finalized {
		return nil
	}
	a.finalized = true
	a.mem.current().release(a.log)
	return nil
}

// Reader returns the shared executor for the committed code.
func (a *Assembler) Reader() *Executor { return a.exec }

// Alter commits outstanding code, then calls fn with a modifier over the
// executable memory. The memory is writable only for the duration of fn and
// readers are excluded until it returns.
func (a *Assembler) Alter(fn func(m *Modifier) error) error {
	if err := a.Commit(); err != nil {
		return err
	}
	if err := a.mem.recover(); err != nil {
		return err
	}
	return a.mem.alter(func(base uintptr, dst []byte) (int, int, error) {
		m := &Modifier{a: a, base: base, buf: dst, lo: len(dst)}
		err := fn(m)
		m.finish()
		return m.lo, m.hi, err
	})
}

// AlterUncommitted calls fn with a modifier over the bytes not yet committed.
func (a *Assembler) AlterUncommitted(fn func(m *UncommittedModifier) error) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	m := &UncommittedModifier{a: a, start: AssemblyOffset(a.mem.committed())}
	err := fn(m)
	m.a = nil
	return err
}

func (a *Assembler) String() string {
	arch := "data"
	if a.enc != nil {
		arch = a.enc.Arch().String()
	}
	return fmt.Sprintf("dynasm.Assembler{arch: %s, committed: %d, pending: %d}", arch, a.mem.committed(), len(a.ops))
}
