//go:build !darwin && !freebsd && !linux && !windows

package dl

import (
	"fmt"
	"runtime"
)

// DefaultFlags is used when Open is called without WithFlags.
const DefaultFlags Flags = 0

var errUnsupported = fmt.Errorf("dynamic loading is not supported on %s", runtime.GOOS)

func openLibrary(path string, flags Flags) (uintptr, error) {
	return 0, errUnsupported
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	return 0, errUnsupported
}

func closeLibrary(handle uintptr) error {
	return nil
}
