package dynasm

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// SetFunctionCode points the function value at dstAddr to executable code at
// entry. This function is entirely unsafe.
//
// dstAddr must be a pointer to a function value. The code is called with the
// Go internal register ABI of runtime.GOARCH and must stay mapped for as long
// as the function value is used, for example by holding an ExecutorGuard or by
// not closing the ExecutableBuffer.
func SetFunctionCode(dstAddr interface{}, entry uintptr) error {
	// A func value points at a closure record whose first word is the code
	// pointer.
	type interfaceHeader struct {
		typ  uintptr
		addr **uintptr
	}
	v := reflect.ValueOf(dstAddr)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || !v.Elem().CanSet() || v.Elem().Kind() != reflect.Func {
		return errors.New("destination for SetFunctionCode must be a pointer to a function value")
	}
	if entry == 0 {
		return errors.New("SetFunctionCode: nil entry point")
	}
	closure := new(uintptr)
	*closure = entry
	header := *(*interfaceHeader)(unsafe.Pointer(&dstAddr))
	*header.addr = closure
	return nil
}
