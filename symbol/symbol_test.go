//go:build darwin || freebsd || linux || windows

package symbol

import (
	"errors"
	"testing"

	"github.com/amikos-tech/pure-dl/dl"
)

func openExisting(t *testing.T) *dl.Library {
	t.Helper()
	lib, err := dl.Open(existingLib)
	if err != nil {
		t.Fatalf("failed to open %s: %v", existingLib, err)
	}
	return lib
}

func expectUseAfterClose(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic after close", name)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUseAfterClose) {
			t.Fatalf("%s: expected ErrUseAfterClose panic, got %v", name, r)
		}
	}()
	fn()
}

func TestLoadPtr(t *testing.T) {
	lib := openExisting(t)
	defer lib.Close()

	want, err := lib.Symbol(existingFunc)
	if err != nil {
		t.Fatal(err)
	}

	ptr, err := LoadPtr(lib, existingFunc)
	if err != nil {
		t.Fatalf("failed to load %s: %v", existingFunc, err)
	}
	if ptr.Addr() != want {
		t.Errorf("expected address %#x, got %#x", want, ptr.Addr())
	}
	if uintptr(ptr.Unsafe()) != want {
		t.Errorf("expected unsafe pointer %#x, got %#x", want, uintptr(ptr.Unsafe()))
	}
	if ptr.Name() != existingFunc {
		t.Errorf("expected name %q, got %q", existingFunc, ptr.Name())
	}
}

func TestLoadErrorsPropagate(t *testing.T) {
	lib := openExisting(t)
	defer lib.Close()

	tests := []struct {
		name string
		load func() error
	}{
		{"func", func() error { _, err := LoadFunc[func()](lib, "notexisting"); return err }},
		{"ref", func() error { _, err := LoadRef[int32](lib, "notexisting"); return err }},
		{"ref mut", func() error { _, err := LoadRefMut[int32](lib, "notexisting"); return err }},
		{"ptr", func() error { _, err := LoadPtr(lib, "notexisting"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load()
			if !errors.Is(err, dl.ErrSymbolGetting) {
				t.Fatalf("expected ErrSymbolGetting, got %v", err)
			}
			var symErr *dl.SymbolGettingError
			if !errors.As(err, &symErr) {
				t.Fatalf("expected *dl.SymbolGettingError, got %T", err)
			}
		})
	}
}

func TestAccessorsPanicAfterClose(t *testing.T) {
	lib := openExisting(t)

	fn, err := LoadFunc[func() uintptr](lib, existingFunc)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := LoadRef[byte](lib, existingFunc)
	if err != nil {
		t.Fatal(err)
	}
	refMut, err := LoadRefMut[byte](lib, existingFunc)
	if err != nil {
		t.Fatal(err)
	}
	ptr, err := LoadPtr(lib, existingFunc)
	if err != nil {
		t.Fatal(err)
	}

	if err := lib.Close(); err != nil {
		t.Fatal(err)
	}

	expectUseAfterClose(t, "Func.Get", func() { fn.Get() })
	expectUseAfterClose(t, "Ref.Get", func() { ref.Get() })
	expectUseAfterClose(t, "Ref.Pointer", func() { ref.Pointer() })
	expectUseAfterClose(t, "RefMut.Set", func() { refMut.Set(0) })
	expectUseAfterClose(t, "Ptr.Addr", func() { ptr.Addr() })
	expectUseAfterClose(t, "Ptr.Unsafe", func() { ptr.Unsafe() })
}

func TestZeroValuePanics(t *testing.T) {
	var ref Ref[int32]
	expectUseAfterClose(t, "zero Ref.Get", func() { ref.Get() })
}
