//go:build !arm64 && !(riscv64 && linux)

package mmap

// SyncInstructionCache is a no-op: the instruction stream is coherent with data writes.
func SyncInstructionCache(b []byte) error { return nil }

// PipelineFlush is a no-op on this architecture.
func PipelineFlush() {}
