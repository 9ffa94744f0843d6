// Package mmap maps anonymous memory for generated code, flips it between
// writable and executable protections, and keeps the instruction stream
// coherent with data writes on architectures that need it.
package mmap

import "os"

// PageSize is the granularity of mappings.
var PageSize = os.Getpagesize()

// RoundUp rounds size up to a multiple of PageSize. Sizes below one page
// round to one page.
func RoundUp(size int) int {
	if size <= 0 {
		return PageSize
	}
	return (size + PageSize - 1) &^ (PageSize - 1)
}
