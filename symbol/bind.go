//go:build darwin || freebsd || linux || windows

package symbol

import "github.com/ebitengine/purego"

func bindFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
