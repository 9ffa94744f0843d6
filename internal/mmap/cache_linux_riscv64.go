package mmap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// riscv_flush_icache(start, end, flags); flags == 0 synchronizes all harts.
const sysRiscvFlushIcache = 259

// SyncInstructionCache asks the kernel to make b fetchable on every hart.
func SyncInstructionCache(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	start := uintptr(unsafe.Pointer(&b[0]))
	if _, _, errno := unix.Syscall(sysRiscvFlushIcache, start, start+uintptr(len(b)), 0); errno != 0 {
		return errno
	}
	return nil
}

// PipelineFlush is covered by the kernel's fence.i on every hart.
func PipelineFlush() {}
