// Package feats lists the CPU features gating x86 instruction templates.
package feats

import (
	"strings"

	"github.com/pkg/errors"
)

type Feature uint32

// CPU Features
const (
	X64_IMPLICIT Feature = 0
	FPU          Feature = 1 << iota
	MMX
	TDNOW
	SSE
	SSE2
	SSE3
	VMX
	SSSE3
	SSE4A
	SSE41
	SSE42
	SSE5
	AVX
	AVX2
	FMA
	BMI1
	BMI2
	TBM
	RTM
	INVPCID
	MPX
	SHA
	PREFETCHWT1
	// Cyrix instructions are omitted
	CYRIX
	AMD
)

const AllFeatures Feature = 0xffffffff

func FeatName(f Feature) string { return featNames[f] }

// Has reports whether every feature in want is present in f.
func (f Feature) Has(want Feature) bool { return f&want == want }

func (f Feature) String() string {
	if f == X64_IMPLICIT {
		return featNames[X64_IMPLICIT]
	}
	if f == AllFeatures {
		return "ALL"
	}
	var names []string
	for bit := Feature(1); bit != 0; bit <<= 1 {
		if f&bit == 0 {
			continue
		}
		if name, ok := featNames[bit]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Parse reads a feature set written as names separated by "|" or ",", as
// produced by String. Names are case-insensitive.
func Parse(s string) (Feature, error) {
	var f Feature
	for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' || r == ' ' }) {
		name = strings.ToUpper(name)
		if name == "ALL" {
			f |= AllFeatures
			continue
		}
		feat, ok := featValues[name]
		if !ok {
			return 0, errors.Errorf("unknown CPU feature %q", name)
		}
		f |= feat
	}
	return f, nil
}

var featNames = map[Feature]string{
	X64_IMPLICIT: "X64_IMPLICIT",
	FPU:          "FPU",
	MMX:          "MMX",
	TDNOW:        "TDNOW",
	SSE:          "SSE",
	SSE2:         "SSE2",
	SSE3:         "SSE3",
	VMX:          "VMX",
	SSSE3:        "SSSE3",
	SSE4A:        "SSE4A",
	SSE41:        "SSE41",
	SSE42:        "SSE42",
	SSE5:         "SSE5",
	AVX:          "AVX",
	AVX2:         "AVX2",
	FMA:          "FMA",
	BMI1:         "BMI1",
	BMI2:         "BMI2",
	TBM:          "TBM",
	RTM:          "RTM",
	INVPCID:      "INVPCID",
	MPX:          "MPX",
	SHA:          "SHA",
	PREFETCHWT1:  "PREFETCHWT1",
	CYRIX:        "CYRIX",
	AMD:          "AMD",
}

var featValues = func() map[string]Feature {
	m := make(map[string]Feature, len(featNames))
	for f, name := range featNames {
		m[name] = f
	}
	return m
}()
