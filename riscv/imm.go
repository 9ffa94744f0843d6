package riscv

// piece places width bits of a value, starting at bit from, at bit at of an instruction.
type piece struct{ from, width, at uint8 }

// field is an immediate scattered over an instruction. Values must fit bits bits, signed
// or unsigned, and be a multiple of 1<<scale.
type field struct {
	pieces  []piece
	bits    uint8
	signed  bool
	scale   uint8
	nonzero bool
}

func (f *field) mask() uint32 {
	var m uint32
	for _, p := range f.pieces {
		m |= (1<<p.width - 1) << p.at
	}
	return m
}

// place scatters v into the field's positions.
func (f *field) place(v uint32) uint32 {
	var w uint32
	for _, p := range f.pieces {
		w |= (v >> p.from & (1<<p.width - 1)) << p.at
	}
	return w
}

// gather collects the field from word, sign-extending signed fields.
func (f *field) gather(word uint32) int64 {
	var v uint64
	for _, p := range f.pieces {
		v |= uint64(word>>p.at&(1<<p.width-1)) << p.from
	}
	if f.signed {
		return signExtend(v, uint(f.bits))
	}
	return int64(v)
}

func signExtend(v uint64, bits uint) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

// 32-bit formats
var (
	fieldI = field{pieces: []piece{{0, 12, 20}}, bits: 12, signed: true}
	fieldS = field{pieces: []piece{{0, 5, 7}, {5, 7, 25}}, bits: 12, signed: true}
	fieldB = field{pieces: []piece{{1, 4, 8}, {5, 6, 25}, {11, 1, 7}, {12, 1, 31}}, bits: 13, signed: true, scale: 1}
	fieldU = field{pieces: []piece{{12, 20, 12}}, bits: 32, signed: true, scale: 12}
	fieldJ = field{pieces: []piece{{1, 10, 21}, {11, 1, 20}, {12, 8, 12}, {20, 1, 31}}, bits: 21, signed: true, scale: 1}

	fieldShamt5 = field{pieces: []piece{{0, 5, 20}}, bits: 5}
	fieldShamt6 = field{pieces: []piece{{0, 6, 20}}, bits: 6}
	fieldZimm   = field{pieces: []piece{{0, 5, 15}}, bits: 5}
	fieldCSR    = field{pieces: []piece{{0, 12, 20}}, bits: 12}
)

// compressed formats
var (
	fieldCI      = field{pieces: []piece{{5, 1, 12}, {0, 5, 2}}, bits: 6, signed: true}
	fieldCINZ    = field{pieces: []piece{{5, 1, 12}, {0, 5, 2}}, bits: 6, signed: true, nonzero: true}
	fieldCShamt5 = field{pieces: []piece{{5, 1, 12}, {0, 5, 2}}, bits: 5, nonzero: true}
	fieldCShamt6 = field{pieces: []piece{{5, 1, 12}, {0, 5, 2}}, bits: 6, nonzero: true}
	fieldCLUI    = field{pieces: []piece{{17, 1, 12}, {12, 5, 2}}, bits: 18, signed: true, scale: 12, nonzero: true}
	fieldC16SP   = field{pieces: []piece{{9, 1, 12}, {4, 1, 6}, {6, 1, 5}, {7, 2, 3}, {5, 1, 2}}, bits: 10, signed: true, scale: 4, nonzero: true}
	fieldC4SPN   = field{pieces: []piece{{4, 2, 11}, {6, 4, 7}, {2, 1, 6}, {3, 1, 5}}, bits: 10, scale: 2, nonzero: true}
	fieldCLW     = field{pieces: []piece{{3, 3, 10}, {2, 1, 6}, {6, 1, 5}}, bits: 7, scale: 2}
	fieldCLD     = field{pieces: []piece{{3, 3, 10}, {6, 2, 5}}, bits: 8, scale: 3}
	fieldCLWSP   = field{pieces: []piece{{5, 1, 12}, {2, 3, 4}, {6, 2, 2}}, bits: 8, scale: 2}
	fieldCLDSP   = field{pieces: []piece{{5, 1, 12}, {3, 2, 5}, {6, 3, 2}}, bits: 9, scale: 3}
	fieldCSWSP   = field{pieces: []piece{{2, 4, 9}, {6, 2, 7}}, bits: 8, scale: 2}
	fieldCSDSP   = field{pieces: []piece{{3, 3, 10}, {6, 3, 7}}, bits: 9, scale: 3}
	fieldCB      = field{pieces: []piece{{8, 1, 12}, {3, 2, 10}, {6, 2, 5}, {1, 2, 3}, {5, 1, 2}}, bits: 9, signed: true, scale: 1}
	fieldCJ      = field{pieces: []piece{{11, 1, 12}, {4, 1, 11}, {8, 2, 9}, {10, 1, 8}, {6, 1, 7}, {7, 1, 6}, {1, 3, 3}, {5, 1, 2}}, bits: 12, signed: true, scale: 1}
	fieldCLBU    = field{pieces: []piece{{0, 1, 6}, {1, 1, 5}}, bits: 2}
	fieldCLH     = field{pieces: []piece{{1, 1, 5}}, bits: 2, scale: 1}
)
