package dl

import (
	"bytes"
	"fmt"
	"unsafe"
)

// CStringToGo copies the NUL-terminated string at ptr into a Go string.
// It returns "" when ptr is 0. ptr must point at readable memory containing
// a terminator, such as a const char* exported by a loaded module.
func CStringToGo(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}

	// Scan byte by byte; the bound only guards against a missing terminator.
	const maxStringLen = 1 << 20
	var length int
	for length < maxStringLen {
		if *(*byte)(unsafe.Add(unsafe.Pointer(ptr), length)) == 0 {
			break
		}
		length++
	}

	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

// GoToCString returns s as a NUL-terminated byte slice together with the
// address of its first byte. The slice must be kept alive for as long as
// native code may read the address.
func GoToCString(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}

// cstringName strips the terminator from a NUL-terminated symbol name.
func cstringName(name []byte) (string, error) {
	end := bytes.IndexByte(name, 0)
	switch {
	case end < 0:
		return "", fmt.Errorf("symbol name is not NUL-terminated")
	case end != len(name)-1:
		return "", fmt.Errorf("symbol name contains a NUL byte before its end")
	case end == 0:
		return "", fmt.Errorf("symbol name is empty")
	}
	return string(name[:end]), nil
}
