//go:build !unix

package mmap

import (
	"fmt"
	"runtime"
)

var errUnsupported = fmt.Errorf("executable memory is unsupported on GOOS=%s", runtime.GOOS)

func Map(size int) ([]byte, error) { return nil, errUnsupported }

func Unmap(b []byte) error { return errUnsupported }

func Protect(b []byte, exec bool) error { return errUnsupported }
