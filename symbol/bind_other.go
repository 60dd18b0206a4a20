//go:build !darwin && !freebsd && !linux && !windows

package symbol

import (
	"fmt"
	"runtime"
)

func bindFunc(fptr any, addr uintptr) {
	// dl.Open never succeeds here, so no address can reach this point.
	panic(fmt.Sprintf("symbol: binding native functions is not supported on %s", runtime.GOOS))
}
