// Package symbol reinterprets addresses resolved by a dl.Library as typed Go
// values: function values, read-only data references, mutable data
// references, or plain pointers.
//
// None of the conversions check that the bytes at the address match the
// requested type. That is the caller's responsibility, exactly as with a
// cast in C.
//
// Every value returned here borrows its library. Accessors panic with
// ErrUseAfterClose once the library has been closed. Values already taken
// out of a symbol (a func returned by Func.Get, a pointer returned by
// Ref.Pointer) are not tracked and must not be used after Close.
package symbol

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/amikos-tech/pure-dl/dl"
)

// ErrUseAfterClose is the panic value raised by accessors of a symbol whose
// library has been closed.
var ErrUseAfterClose = errors.New("symbol used after its library was closed")

type borrow struct {
	lib  *dl.Library
	name string
}

func (b borrow) check() {
	if b.lib == nil || !b.lib.IsOpen() {
		panic(fmt.Errorf("%w: %q", ErrUseAfterClose, b.name))
	}
}

// Name returns the symbol name the value was resolved from.
func (b borrow) Name() string {
	return b.name
}

// Func is a native function bound to a Go func value of type T.
type Func[T any] struct {
	borrow
	fn T
}

// Get returns the bound function. It must not be called after the library
// is closed.
func (f Func[T]) Get() T {
	f.check()
	return f.fn
}

// Ref is a read-only view of a data symbol of type T.
type Ref[T any] struct {
	borrow
	ptr *T
}

// Get copies the current value out of the module.
func (r Ref[T]) Get() T {
	r.check()
	return *r.ptr
}

// Pointer returns the address as *T. Writing through it is undefined
// behaviour if the module maps the symbol read-only.
func (r Ref[T]) Pointer() *T {
	r.check()
	return r.ptr
}

// RefMut is a writable view of a data symbol of type T.
type RefMut[T any] struct {
	Ref[T]
}

// Set stores v into the module's copy of the symbol.
func (r RefMut[T]) Set(v T) {
	r.check()
	*r.ptr = v
}

// Ptr is a resolved address whose dereferencing is left to the caller.
type Ptr struct {
	borrow
	addr uintptr
}

// Addr returns the raw address.
func (p Ptr) Addr() uintptr {
	p.check()
	return p.addr
}

// Unsafe returns the raw address as an unsafe.Pointer.
func (p Ptr) Unsafe() unsafe.Pointer {
	p.check()
	return unsafe.Pointer(p.addr)
}

// LoadFunc resolves name and binds it to a function value of type T, which
// must be a func type whose signature matches the native function.
// A non-func T panics.
func LoadFunc[T any](lib *dl.Library, name string) (Func[T], error) {
	addr, err := lib.Symbol(name)
	if err != nil {
		return Func[T]{}, err
	}

	var fn T
	bindFunc(&fn, addr)
	return Func[T]{borrow: borrow{lib: lib, name: name}, fn: fn}, nil
}

// LoadRef resolves name as a data symbol of type T.
func LoadRef[T any](lib *dl.Library, name string) (Ref[T], error) {
	addr, err := lib.Symbol(name)
	if err != nil {
		return Ref[T]{}, err
	}
	return Ref[T]{borrow: borrow{lib: lib, name: name}, ptr: (*T)(unsafe.Pointer(addr))}, nil
}

// LoadRefMut resolves name as a writable data symbol of type T.
func LoadRefMut[T any](lib *dl.Library, name string) (RefMut[T], error) {
	ref, err := LoadRef[T](lib, name)
	if err != nil {
		return RefMut[T]{}, err
	}
	return RefMut[T]{Ref: ref}, nil
}

// LoadPtr resolves name and returns its raw address.
func LoadPtr(lib *dl.Library, name string) (Ptr, error) {
	addr, err := lib.Symbol(name)
	if err != nil {
		return Ptr{}, err
	}
	return Ptr{borrow: borrow{lib: lib, name: name}, addr: addr}, nil
}
