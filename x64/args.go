package x64

import (
	"github.com/wdamron/dynasm"
)

// Arg represents an instruction argument.
type Arg interface {
	isArg()
	width() uint8
}

// Mem is a memory-reference argument. Base (or Index) may be RIP for RIP-relative addressing.
//
// Width is the size of the referenced data in bytes; zero leaves it to the instruction,
// which is only allowed where the size is implied. Seg selects a segment override prefix.
// NoSplit keeps an index scaled by 2, 3, 5 or 9 from being rewritten as base+index when
// no base is given.
//
// Mem implements Arg.
type Mem struct {
	Disp    DispArg
	Base    Reg
	Index   Reg
	Seg     Reg
	Scale   uint8
	Width   uint8
	NoSplit bool
}

func (m Mem) isArg()       {}
func (m Mem) width() uint8 { return m.Width }

func (m Mem) hasVSIB() bool {
	return (m.Index != 0 && m.Index.isVector()) || (m.Base != 0 && m.Base.isVector())
}

// ImmArg represents an immediate argument.
//
// Any Imm, Imm8, Imm16, Imm32, or Imm64 value implements ImmArg.
type ImmArg interface {
	Arg
	isImm()
	Int64() int64
}

func isImm(arg Arg) bool {
	_, ok := arg.(ImmArg)
	return ok
}

// Imm is an immediate argument without an explicit size. The smallest form of the
// instruction able to hold the value is not chosen automatically: Imm matches the
// first encoding whose immediate field holds the value, skipping byte forms of
// instructions which require explicit sizes.
//
// Imm implements ImmArg.
type Imm int64

// Imm8 is an 8-bit immediate argument.
//
// Imm8 implements ImmArg.
type Imm8 int8

// Imm16 is a 16-bit immediate argument.
//
// Imm16 implements ImmArg.
type Imm16 int16

// Imm32 is a 32-bit immediate argument.
//
// Imm32 implements ImmArg.
type Imm32 int32

// Imm64 is a 64-bit immediate argument.
//
// Imm64 implements ImmArg.
type Imm64 int64

func (i Imm) isArg()   {}
func (i Imm8) isArg()  {}
func (i Imm16) isArg() {}
func (i Imm32) isArg() {}
func (i Imm64) isArg() {}

func (i Imm) isImm()   {}
func (i Imm8) isImm()  {}
func (i Imm16) isImm() {}
func (i Imm32) isImm() {}
func (i Imm64) isImm() {}

func (i Imm) width() uint8   { return 0 }
func (i Imm8) width() uint8  { return 1 }
func (i Imm16) width() uint8 { return 2 }
func (i Imm32) width() uint8 { return 4 }
func (i Imm64) width() uint8 { return 8 }

func (i Imm) Int64() int64   { return int64(i) }
func (i Imm8) Int64() int64  { return int64(i) }
func (i Imm16) Int64() int64 { return int64(i) }
func (i Imm32) Int64() int64 { return int64(i) }
func (i Imm64) Int64() int64 { return int64(i) }

// immFits reports whether v can be stored in an immediate field of size bytes.
// Fields narrower than 64 bits accept both signed and unsigned values.
func immFits(v int64, size uint8) bool {
	switch size {
	case 1:
		return v >= -1<<7 && v < 1<<8
	case 2:
		return v >= -1<<15 && v < 1<<16
	case 4:
		return v >= -1<<31 && v < 1<<32
	}
	return size == 8
}

// immFitsSigned reports whether v survives sign extension from a field of size bytes.
func immFitsSigned(v int64, size uint8) bool {
	switch size {
	case 1:
		return v >= -1<<7 && v < 1<<7
	case 2:
		return v >= -1<<15 && v < 1<<15
	case 4:
		return v >= -1<<31 && v < 1<<31
	}
	return size == 8
}

// DispArg represents a label reference (with or without additional displacement) or a relative displacement.
//
// Any Rel, Rel8, Rel16, Rel32 or Label value implements DispArg.
type DispArg interface {
	Arg
	isDisp()
	Int32() int32
}

func isDisp(arg Arg) bool {
	_, ok := arg.(DispArg)
	return ok
}

// RelArg represents a relative displacement.
type RelArg interface {
	DispArg
	isRel()
}

func isRel(arg Arg) bool {
	_, ok := arg.(RelArg)
	return ok
}

// Rel is a displacement without an explicit size. As a memory displacement it is
// encoded in 8 bits when it fits and in 32 bits otherwise.
//
// Rel implements DispArg.
type Rel int32

// Rel8 is an 8-bit displacement argument.
//
// Rel8 implements DispArg.
type Rel8 int8

// Rel16 is a 16-bit displacement argument.
//
// Rel16 implements DispArg.
type Rel16 int16

// Rel32 is a 32-bit displacement argument.
//
// Rel32 implements DispArg.
type Rel32 int32

func (r Rel) isArg()   {}
func (r Rel8) isArg()  {}
func (r Rel16) isArg() {}
func (r Rel32) isArg() {}

func (r Rel) isDisp()   {}
func (r Rel8) isDisp()  {}
func (r Rel16) isDisp() {}
func (r Rel32) isDisp() {}

func (r Rel) isRel()   {}
func (r Rel8) isRel()  {}
func (r Rel16) isRel() {}
func (r Rel32) isRel() {}

func (r Rel) width() uint8   { return 0 }
func (r Rel8) width() uint8  { return 1 }
func (r Rel16) width() uint8 { return 2 }
func (r Rel32) width() uint8 { return 4 }

func (r Rel) Int32() int32   { return int32(r) }
func (r Rel8) Int32() int32  { return int32(r) }
func (r Rel16) Int32() int32 { return int32(r) }
func (r Rel32) Int32() int32 { return int32(r) }

func relOfSize(v int32, size uint8) RelArg {
	switch size {
	case 1:
		return Rel8(v)
	case 2:
		return Rel16(v)
	}
	return Rel32(v)
}

// LabelArg represents a label reference, with or without additional displacement.
//
// Label implements LabelArg and DispArg.
type LabelArg interface {
	DispArg
	isLabel()
	label() Label
}

var _ LabelArg = Label{}

func isLabel(arg Arg) bool {
	_, ok := arg.(LabelArg)
	return ok
}

// Label is a reference to a jump target or a RIP-relative memory location. The
// displacement is patched once the target is known.
type Label struct {
	target dynasm.Target
	disp   int32
	size   uint8
}

// To references a label target. The displacement width is left to the instruction;
// use Rel8 or Rel32 to select one.
func To(t dynasm.Target) Label { return Label{target: t} }

// Get the target of the reference.
func (l Label) Target() dynasm.Target { return l.target }

// Reference the label as an 8-bit relative displacement from the current instruction pointer.
func (l Label) Rel8() Label { l.size = 1; return l }

// Reference the label as a 16-bit relative displacement from the current instruction pointer.
func (l Label) Rel16() Label { l.size = 2; return l }

// Reference the label as a 32-bit relative displacement from the current instruction pointer.
func (l Label) Rel32() Label { l.size = 4; return l }

// Reference the label as an 8-bit relative displacement from the current instruction pointer.
func (l Label) Disp8(d int8) Label { return Label{target: l.target, disp: int32(d), size: 1} }

// Reference the label as a 16-bit relative displacement from the current instruction pointer.
func (l Label) Disp16(d int16) Label { return Label{target: l.target, disp: int32(d), size: 2} }

// Reference the label as a 32-bit relative displacement from the current instruction pointer.
func (l Label) Disp32(d int32) Label { return Label{target: l.target, disp: d, size: 4} }

// Add an additional displacement to the reference, keeping its width.
func (l Label) Add(d int32) Label { l.disp += d; return l }

func (l Label) isArg()       {}
func (l Label) isLabel()     {}
func (l Label) isDisp()      {}
func (l Label) width() uint8 { return l.size }
func (l Label) label() Label { return l }
func (l Label) Int32() int32 { return l.disp }

// kind selects the relocation for a displacement to the label.
func (l Label) kind() dynasm.RelocationKind {
	if l.target.Kind() == dynasm.KindExtern {
		return dynasm.RelToAbs
	}
	return dynasm.Relative
}

// AddrArg is an immediate or absolute displacement holding the address of a label.
// The field is rewritten when the code moves.
//
// AddrArg implements ImmArg.
type AddrArg struct {
	target dynasm.Target
	addend int64
	size   uint8
}

// Addr references the absolute address of a label target as a 64-bit immediate.
func Addr(t dynasm.Target) AddrArg { return AddrArg{target: t, size: 8} }

// Get the target of the reference.
func (a AddrArg) Target() dynasm.Target { return a.target }

// Reference the address as a 32-bit immediate, for 32-bit code or 32-bit addresses.
func (a AddrArg) Addr32() AddrArg { a.size = 4; return a }

// Add an additional offset to the address.
func (a AddrArg) Add(d int64) AddrArg { a.addend += d; return a }

func (a AddrArg) isArg()       {}
func (a AddrArg) isImm()       {}
func (a AddrArg) width() uint8 { return a.size }

// Int64 returns 0; the value is written when the target is resolved.
func (a AddrArg) Int64() int64 { return 0 }

// RegArg represents any register.
type RegArg interface {
	Arg
	isReg()
}

func isReg(arg Arg) bool {
	_, ok := arg.(RegArg)
	return ok
}

// TypeMap describes an array of records addressed through registers, so fields can be
// referenced by offset: Field(off, width) addresses [Base + Index*ElemSize + off].
// Index may be zero to address a single record.
type TypeMap struct {
	Base     Reg
	Index    Reg
	ElemSize uint8
}

// Field returns the memory operand for the field at byte offset off, of width bytes.
func (t TypeMap) Field(off int32, width uint8) Mem {
	m := Mem{Base: t.Base, Width: width}
	if t.Index != 0 {
		m.Index, m.Scale = t.Index, t.ElemSize
	}
	if off != 0 {
		m.Disp = Rel(off)
	}
	return m
}

// Elem returns the memory operand for a field of the record at constant index i.
// The index register is ignored.
func (t TypeMap) Elem(i int32, off int32, width uint8) Mem {
	m := Mem{Base: t.Base, Width: width}
	if d := i*int32(t.ElemSize) + off; d != 0 {
		m.Disp = Rel(d)
	}
	return m
}
