package aarch64

import "strings"

// Cond is a condition code, tested against the NZCV flags.
//
// Cond implements Arg.
type Cond uint8

func (c Cond) isArg() {}

const (
	EQ Cond = iota // equal
	NE             // not equal
	CS             // carry set, unsigned higher or same
	CC             // carry clear, unsigned lower
	MI             // negative
	PL             // positive or zero
	VS             // overflow
	VC             // no overflow
	HI             // unsigned higher
	LS             // unsigned lower or same
	GE             // signed greater or equal
	LT             // signed less
	GT             // signed greater
	LE             // signed less or equal
	AL             // always
	NV             // always, encoded as never

	HS = CS
	LO = CC
)

var condNames = [...]string{"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc", "hi", "ls", "ge", "lt", "gt", "le", "al", "nv"}

var condByName = map[string]Cond{"hs": HS, "lo": LO}

func init() {
	for c, name := range condNames {
		condByName[name] = Cond(c)
	}
}

func (c Cond) String() string { return condNames[c&15] }

// Invert returns the condition which holds when c does not. AL and NV have no inverse
// and are returned unchanged.
func (c Cond) Invert() Cond {
	if c >= AL {
		return c
	}
	return c ^ 1
}

// ParseCond looks up a condition code by name, case-insensitively.
func ParseCond(name string) (Cond, bool) {
	c, ok := condByName[strings.ToLower(name)]
	return c, ok
}
