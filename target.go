package dynasm

import "fmt"

// AssemblyOffset is the byte index from the start of an assembler's buffer.
type AssemblyOffset int

// DynamicLabel is an anonymous label issued by Assembler.NewDynamicLabel.
type DynamicLabel uint32

// Target returns a selector referencing the dynamic label.
func (id DynamicLabel) Target() Target { return Dynamic(id) }

type targetKind uint8

const (
	targetGlobal targetKind = iota + 1
	targetForward
	targetBackward
	targetDynamic
	targetExtern
)

// Target selects the label (or absolute address) a reference resolves to.
// The zero Target is invalid.
type Target struct {
	kind targetKind
	name string
	id   DynamicLabel
	addr uintptr
}

// Global references a named global label, resolved at commit.
func Global(name string) Target { return Target{kind: targetGlobal, name: name} }

// Forward references the next definition of a local label.
func Forward(name string) Target { return Target{kind: targetForward, name: name} }

// Backward references the current definition of a local label. The label must
// already be defined when the reference is recorded.
func Backward(name string) Target { return Target{kind: targetBackward, name: name} }

// Dynamic references a dynamic label, resolved at commit.
func Dynamic(id DynamicLabel) Target { return Target{kind: targetDynamic, id: id} }

// Extern references an absolute address outside the buffer, resolved at commit
// against the buffer's base address.
func Extern(addr uintptr) Target { return Target{kind: targetExtern, addr: addr} }

// IsValid reports whether t was built by one of the Target constructors.
func (t Target) IsValid() bool { return t.kind != 0 }

// Name returns the label name for global and local targets.
func (t Target) Name() string { return t.name }

// Kind returns the namespace the target resolves in.
func (t Target) Kind() LabelKind {
	switch t.kind {
	case targetGlobal:
		return KindGlobal
	case targetDynamic:
		return KindDynamic
	case targetExtern:
		return KindExtern
	}
	return KindLocal
}

func (t Target) String() string {
	switch t.kind {
	case targetGlobal:
		return "->" + t.name
	case targetForward:
		return ">" + t.name
	case targetBackward:
		return "<" + t.name
	case targetDynamic:
		return fmt.Sprintf("=>%d", t.id)
	case targetExtern:
		return fmt.Sprintf("extern %#x", t.addr)
	}
	return "invalid target"
}

func (t Target) unknown() error {
	return &UnknownLabelError{Kind: t.Kind(), Name: t.name, ID: t.id}
}
