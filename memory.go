package dynasm

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wdamron/dynasm/internal/mmap"
)

// mapping is one executable region. The owning memory holds one reference
// while the mapping is current; every ExecutorGuard and ExecutableBuffer
// holds another. The region is unmapped when the count drops to zero.
type mapping struct {
	mu   sync.RWMutex
	refs atomic.Int32
	buf  []byte
	size int  // committed bytes, written under mu
	exec bool // current protection
}

func newMapping(buf []byte, size int) *mapping {
	m := &mapping{buf: buf, size: size}
	m.refs.Store(1)
	return m
}

func (m *mapping) base() uintptr {
	if len(m.buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&m.buf[0]))
}

// acquire fails once the mapping has been released by its last holder.
func (m *mapping) acquire() bool {
	for {
		n := m.refs.Load()
		if n <= 0 {
			return false
		}
		if m.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (m *mapping) release(log logrus.FieldLogger) {
	if m.refs.Add(-1) != 0 || m.buf == nil {
		return
	}
	if err := mmap.Unmap(m.buf); err != nil {
		log.WithError(err).Warn("Failed to unmap executable buffer")
		return
	}
	log.WithField("base", fmt.Sprintf("%#x", m.base())).Debug("Released executable buffer")
}

// RelocateHook is called after the executable buffer moved to a new base
// address and before the new region becomes executable.
type RelocateHook func(oldBase, newBase uintptr)

type memory struct {
	cur    atomic.Pointer[mapping]
	log    logrus.FieldLogger
	hook   RelocateHook
	minCap int
}

func newMemory(cfg *Config) *memory {
	m := &memory{log: cfg.logger, hook: cfg.relocateHook, minCap: cfg.initialCapacity}
	m.cur.Store(newMapping(nil, 0))
	return m
}

func (m *memory) current() *mapping { return m.cur.Load() }

func (m *memory) committed() int { return m.current().size }

// patchFunc receives the base address the committed region will execute at,
// whether previously committed bytes moved there, and a writable view of the
// whole committed region including the bytes being committed.
type patchFunc func(base uintptr, moved bool, dst []byte) error

func (m *memory) commit(ops []byte, patch patchFunc) error {
	cur := m.current()
	if cur.size+len(ops) > len(cur.buf) {
		return m.grow(cur, ops, patch)
	}
	return m.appendInPlace(cur, ops, patch)
}

func (m *memory) grow(old *mapping, ops []byte, patch patchFunc) error {
	size := old.size + len(ops)
	capacity := len(old.buf) * 2
	if capacity < m.minCap {
		capacity = m.minCap
	}
	if capacity < mmap.PageSize {
		capacity = mmap.PageSize
	}
	for capacity < size {
		capacity *= 2
	}
	capacity = mmap.RoundUp(capacity)

	buf, err := mmap.Map(capacity)
	if err != nil {
		return errors.Wrapf(ErrAllocationFailure, "map %d bytes: %v", capacity, err)
	}
	copy(buf, old.buf[:old.size])
	copy(buf[old.size:], ops)

	next := newMapping(buf, size)
	moved := old.size > 0
	if err := patch(next.base(), moved, buf[:size]); err != nil {
		_ = mmap.Unmap(buf)
		return err
	}
	if moved && m.hook != nil {
		m.hook(old.base(), next.base())
	}
	if err := mmap.Protect(buf, true); err != nil {
		_ = mmap.Unmap(buf)
		return errors.Wrapf(ErrAllocationFailure, "protect %d bytes: %v", capacity, err)
	}
	next.exec = true
	if err := mmap.SyncInstructionCache(buf[:size]); err != nil {
		m.log.WithError(err).Warn("Failed to synchronize instruction cache")
		_ = mmap.Unmap(buf)
		return errors.Wrapf(ErrAllocationFailure, "synchronize instruction cache for %d bytes: %v", size, err)
	}

	m.cur.Store(next)
	m.log.WithFields(logrus.Fields{
		"capacity": capacity,
		"size":     size,
		"old_base": fmt.Sprintf("%#x", old.base()),
		"new_base": fmt.Sprintf("%#x", next.base()),
	}).Debug("Grew executable buffer")
	old.release(m.log)
	return nil
}

func (m *memory) appendInPlace(cur *mapping, ops []byte, patch patchFunc) error {
	cur.mu.Lock()
	defer cur.mu.Unlock()

	if err := m.makeWritable(cur); err != nil {
		return err
	}
	size := cur.size + len(ops)
	copy(cur.buf[cur.size:], ops)
	perr := patch(cur.base(), false, cur.buf[:size])
	if err := m.makeExecutable(cur, cur.buf[cur.size:size]); err != nil {
		return err
	}
	if perr != nil {
		return perr
	}
	cur.size = size
	return nil
}

// alter hands fn a writable view of the committed region. fn returns the
// touched byte range, which is synchronized once the region is executable
// again.
func (m *memory) alter(fn func(base uintptr, dst []byte) (lo, hi int, err error)) error {
	cur := m.current()
	cur.mu.Lock()
	defer cur.mu.Unlock()

	if err := m.makeWritable(cur); err != nil {
		return err
	}
	lo, hi, ferr := fn(cur.base(), cur.buf[:cur.size])
	if lo > hi {
		lo, hi = 0, 0
	}
	if err := m.makeExecutable(cur, cur.buf[lo:hi]); err != nil {
		return err
	}
	return ferr
}

func (m *memory) makeWritable(cur *mapping) error {
	if !cur.exec || cur.buf == nil {
		return nil
	}
	if err := mmap.Protect(cur.buf, false); err != nil {
		return errors.Wrapf(ErrAllocationFailure, "protect %d bytes writable: %v", len(cur.buf), err)
	}
	cur.exec = false
	return nil
}

// makeExecutable flips the mapping back to read-execute. On failure the
// mapping stays writable and the flip is retried by the next mutation.
func (m *memory) makeExecutable(cur *mapping, touched []byte) error {
	if cur.buf == nil {
		return nil
	}
	if err := mmap.Protect(cur.buf, true); err != nil {
		m.log.WithError(err).Warn("Failed to make executable buffer executable")
		return errors.Wrapf(ErrAllocationFailure, "protect %d bytes executable: %v", len(cur.buf), err)
	}
	cur.exec = true
	if err := mmap.SyncInstructionCache(touched); err != nil {
		m.log.WithError(err).Warn("Failed to synchronize instruction cache")
		return errors.Wrapf(ErrAllocationFailure, "synchronize instruction cache for %d bytes: %v", len(touched), err)
	}
	return nil
}

// recover retries a failed flip to read-execute.
func (m *memory) recover() error {
	cur := m.current()
	if cur.exec || cur.buf == nil {
		return nil
	}
	cur.mu.Lock()
	defer cur.mu.Unlock()
	return m.makeExecutable(cur, cur.buf[:cur.size])
}
