package dynasm

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/wdamron/dynasm/internal/mmap"
)

// ErrReleased is returned when locking an executor whose executable buffer has
// been closed.
var ErrReleased = errors.New("executable buffer has been released")

// Executor is a shared read handle on an assembler's committed code. It may be
// used from any goroutine.
type Executor struct {
	mem *memory
}

// Lock acquires a read lock on the current executable region. The region is
// kept mapped until the guard is unlocked, even if the assembler moves its
// code to a new region in the meantime. In-place commits and alterations wait
// for outstanding guards.
func (e *Executor) Lock() (*ExecutorGuard, error) {
	for {
		m := e.mem.current()
		if !m.acquire() {
			if e.mem.current() == m {
				return nil, ErrReleased
			}
			continue
		}
		m.mu.RLock()
		mmap.PipelineFlush()
		return &ExecutorGuard{m: m, log: e.mem}, nil
	}
}

// ExecutorGuard is a held read lock on an executable region.
type ExecutorGuard struct {
	m    *mapping
	log  *memory
	once sync.Once
}

// Bytes returns the committed code. The slice must not be used after Unlock.
func (g *ExecutorGuard) Bytes() []byte { return g.m.buf[:g.m.size] }

// Len returns the number of committed bytes visible through the guard.
func (g *ExecutorGuard) Len() int { return g.m.size }

// Ptr returns the address of the committed byte at off.
func (g *ExecutorGuard) Ptr(off AssemblyOffset) uintptr { return ptr(g.m, off) }

// Unlock releases the read lock. Calling Unlock more than once has no effect.
func (g *ExecutorGuard) Unlock() {
	g.once.Do(func() {
		g.m.mu.RUnlock()
		g.m.release(g.log.log)
	})
}

// ExecutableBuffer is the finalized code of an assembler.
type ExecutableBuffer struct {
	m    *mapping
	mem  *memory
	once sync.Once
}

// Bytes returns the executable code.
func (b *ExecutableBuffer) Bytes() []byte { return b.m.buf[:b.m.size] }

// Len returns the size of the code in bytes.
func (b *ExecutableBuffer) Len() int { return b.m.size }

// Ptr returns the address of the byte at off, suitable for SetFunctionCode
// or for handing to foreign code.
func (b *ExecutableBuffer) Ptr(off AssemblyOffset) uintptr { return ptr(b.m, off) }

// Close releases the buffer's reference on the executable region. The region
// is unmapped once outstanding guards are unlocked.
func (b *ExecutableBuffer) Close() error {
	b.once.Do(func() { b.m.release(b.mem.log) })
	return nil
}

func ptr(m *mapping, off AssemblyOffset) uintptr {
	if off < 0 || int(off) > m.size || m.buf == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(&m.buf[0])) + uintptr(off)
}
