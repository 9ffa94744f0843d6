package mmap

import (
	"sync"
	"unsafe"
)

var (
	lineOnce sync.Once
	dline    uintptr
	iline    uintptr
)

func lineSizes() (uintptr, uintptr) {
	lineOnce.Do(func() {
		ctr := readCTR()
		// CTR_EL0.DminLine and IminLine are log2 of the line size in words.
		dline = 4 << ((ctr >> 16) & 0xf)
		iline = 4 << (ctr & 0xf)
	})
	return dline, iline
}

// SyncInstructionCache cleans the data cache to the point of unification and
// invalidates the instruction cache for every line touching b.
func SyncInstructionCache(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	d, i := lineSizes()
	start := uintptr(unsafe.Pointer(&b[0]))
	syncRange(start, start+uintptr(len(b)), d, i)
	return nil
}

// PipelineFlush discards prefetched instructions on the calling thread.
func PipelineFlush() { isb() }

//go:noescape
func readCTR() uint64

//go:noescape
func syncRange(start, end, dline, iline uintptr)

//go:noescape
func isb()
