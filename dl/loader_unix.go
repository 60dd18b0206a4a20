//go:build darwin || freebsd || linux

package dl

import (
	"github.com/ebitengine/purego"
)

const (
	// Lazy resolves function references on first call (RTLD_LAZY).
	Lazy Flags = purego.RTLD_LAZY
	// Now resolves every reference before Open returns (RTLD_NOW).
	Now Flags = purego.RTLD_NOW
	// Global makes the module's symbols available to later loads (RTLD_GLOBAL).
	Global Flags = purego.RTLD_GLOBAL
	// Local keeps the module's symbols private to its handle (RTLD_LOCAL).
	Local Flags = purego.RTLD_LOCAL

	// DefaultFlags is used when Open is called without WithFlags.
	DefaultFlags = Lazy | Local
)

func openLibrary(path string, flags Flags) (uintptr, error) {
	libHandle, err := purego.Dlopen(path, int(flags))
	if err != nil || libHandle == 0 {
		return 0, err
	}
	return libHandle, nil
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}
