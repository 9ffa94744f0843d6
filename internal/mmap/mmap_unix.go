//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

// Map returns a private anonymous read-write mapping of size bytes.
func Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap releases a mapping returned by Map.
func Unmap(b []byte) error {
	return unix.Munmap(b)
}

// Protect switches b between read-write and read-execute.
func Protect(b []byte, exec bool) error {
	if exec {
		return unix.Mprotect(b, unix.PROT_READ|unix.PROT_EXEC)
	}
	return unix.Mprotect(b, unix.PROT_READ|unix.PROT_WRITE)
}
