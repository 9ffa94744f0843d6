package dynasm

// reference is a recorded use of a Target. anchor is the assembly offset the
// relocation's offsets are counted back from.
type reference struct {
	anchor AssemblyOffset
	target Target
	addend int64
	rel    Relocation

	// set once a local target has been looked up
	resolved bool
	offset   AssemblyOffset
}

func (r *reference) fieldStart() AssemblyOffset {
	return r.anchor - AssemblyOffset(r.rel.FieldOffset())
}

func (r *reference) pc() AssemblyOffset {
	return r.anchor - AssemblyOffset(r.rel.StartOffset())
}

// baseDependent reports whether the field value changes when the executable
// buffer moves to a new base address.
func (r *reference) baseDependent() bool {
	if isPageRelative(r.rel) {
		return true
	}
	if r.target.kind == targetExtern {
		return r.rel.Kind() != AbsToRel
	}
	return r.rel.Kind() == AbsToRel
}

// value computes the field value for the reference given the buffer's base
// address. Label targets must be resolved.
func (r *reference) value(base uintptr) int64 {
	pc := int64(base) + int64(r.pc())
	var abs int64
	if r.target.kind == targetExtern {
		abs = int64(r.target.addr) + r.addend
	} else {
		abs = int64(base) + int64(r.offset) + r.addend
	}
	switch {
	case r.rel.Kind() == AbsToRel:
		return abs
	case isPageRelative(r.rel):
		return (abs &^ 4095) - (pc &^ 4095)
	}
	return abs - pc
}

type labelRegistry struct {
	globals  map[string]AssemblyOffset
	locals   map[string]AssemblyOffset
	dynamics []AssemblyOffset // -1 while undefined
	forward  map[string][]reference
}

func newLabelRegistry() *labelRegistry {
	return &labelRegistry{
		globals: make(map[string]AssemblyOffset),
		locals:  make(map[string]AssemblyOffset),
		forward: make(map[string][]reference),
	}
}

func (l *labelRegistry) newDynamic() DynamicLabel {
	l.dynamics = append(l.dynamics, -1)
	return DynamicLabel(len(l.dynamics) - 1)
}

func (l *labelRegistry) defineGlobal(name string, off AssemblyOffset) error {
	if _, ok := l.globals[name]; ok {
		return &DuplicateLabelError{Kind: KindGlobal, Name: name}
	}
	l.globals[name] = off
	return nil
}

func (l *labelRegistry) defineDynamic(id DynamicLabel, off AssemblyOffset) error {
	if int(id) >= len(l.dynamics) {
		return &UnknownLabelError{Kind: KindDynamic, ID: id}
	}
	if l.dynamics[id] >= 0 {
		return &DuplicateLabelError{Kind: KindDynamic, ID: id}
	}
	l.dynamics[id] = off
	return nil
}

func (l *labelRegistry) defineLocal(name string, off AssemblyOffset) {
	l.locals[name] = off
	delete(l.forward, name)
}

func (l *labelRegistry) queueForward(ref reference) {
	l.forward[ref.target.name] = append(l.forward[ref.target.name], ref)
}

// lookup resolves a target against the current bindings. Forward targets
// never resolve here; they are drained by defineLocal.
func (l *labelRegistry) lookup(t Target) (AssemblyOffset, bool) {
	switch t.kind {
	case targetGlobal:
		off, ok := l.globals[t.name]
		return off, ok
	case targetBackward:
		off, ok := l.locals[t.name]
		return off, ok
	case targetDynamic:
		if int(t.id) < len(l.dynamics) && l.dynamics[t.id] >= 0 {
			return l.dynamics[t.id], true
		}
	}
	return 0, false
}

func (l *labelRegistry) pendingForward() []reference {
	var refs []reference
	for _, rs := range l.forward {
		refs = append(refs, rs...)
	}
	return refs
}
