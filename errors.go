package dynasm

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Encoder failures. Architecture packages wrap these with context, so callers
// should test with errors.Is.
var (
	ErrUnknownMnemonic     = errors.New("unknown mnemonic")
	ErrOperandMismatch     = errors.New("no matching instruction encoding")
	ErrImmediateOutOfRange = errors.New("immediate out of range")
	ErrInvalidRegister     = errors.New("invalid register")
	ErrMisalignedTarget    = errors.New("misaligned target")
)

// Buffer and relocation failures.
var (
	ErrImpossibleRelocation = errors.New("impossible relocation")
	ErrAllocationFailure    = errors.New("allocation failure")
	ErrFinalized            = errors.New("assembler has been finalized")
	ErrOutOfBounds          = errors.New("offset out of bounds")
)

// LabelKind identifies a label namespace.
type LabelKind uint8

const (
	KindLocal LabelKind = iota
	KindGlobal
	KindDynamic
	KindExtern
)

func (k LabelKind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindGlobal:
		return "global"
	case KindDynamic:
		return "dynamic"
	case KindExtern:
		return "extern"
	}
	return fmt.Sprintf("LabelKind(%d)", uint8(k))
}

// DuplicateLabelError is returned when a global or dynamic label is defined twice.
type DuplicateLabelError struct {
	Kind LabelKind
	Name string
	ID   DynamicLabel
}

func (e *DuplicateLabelError) Error() string {
	if e.Kind == KindDynamic {
		return fmt.Sprintf("duplicate dynamic label %d", e.ID)
	}
	return fmt.Sprintf("duplicate %s label %q", e.Kind, e.Name)
}

// UnknownLabelError is returned when a reference names a label which was never defined.
type UnknownLabelError struct {
	Kind LabelKind
	Name string
	ID   DynamicLabel
}

func (e *UnknownLabelError) Error() string {
	if e.Kind == KindDynamic {
		return fmt.Sprintf("unknown dynamic label %d", e.ID)
	}
	return fmt.Sprintf("unknown %s label %q", e.Kind, e.Name)
}

// ImpossibleRelocationError is returned by Relocation.Write when a displacement
// does not fit its field.
type ImpossibleRelocationError struct {
	Value  int64
	Reason string
}

func (e *ImpossibleRelocationError) Error() string {
	return fmt.Sprintf("impossible relocation: %s (value %#x)", e.Reason, e.Value)
}

func (e *ImpossibleRelocationError) Is(target error) bool { return target == ErrImpossibleRelocation }

// OperandMismatchError lists the forms accepted by a mnemonic when none of its
// encodings matched the supplied operands.
type OperandMismatchError struct {
	Mnemonic string
	Forms    []string
}

func (e *OperandMismatchError) Error() string {
	if len(e.Forms) == 0 {
		return fmt.Sprintf("%s: %v", e.Mnemonic, ErrOperandMismatch)
	}
	return fmt.Sprintf("%s: %v; expected one of:\n\t%s", e.Mnemonic, ErrOperandMismatch, strings.Join(e.Forms, "\n\t"))
}

func (e *OperandMismatchError) Unwrap() error { return ErrOperandMismatch }

// Span locates an instruction in caller-owned source text.
type Span struct {
	File   string
	Line   int
	Column int
}

func (s Span) String() string {
	if s.File == "" {
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// SpanError attaches a source span to an error returned by EmitAt.
type SpanError struct {
	Span Span
	Err  error
}

func (e *SpanError) Error() string { return e.Span.String() + ": " + e.Err.Error() }
func (e *SpanError) Unwrap() error { return e.Err }
func (e *SpanError) Cause() error  { return e.Err }
