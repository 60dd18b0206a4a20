//go:build windows

package dl

import (
	"golang.org/x/sys/windows"
)

const (
	// AsDataFile maps the module for resource access only (LOAD_LIBRARY_AS_DATAFILE).
	AsDataFile Flags = windows.LOAD_LIBRARY_AS_DATAFILE
	// WithAlteredSearchPath resolves dependencies relative to the module (LOAD_WITH_ALTERED_SEARCH_PATH).
	WithAlteredSearchPath Flags = windows.LOAD_WITH_ALTERED_SEARCH_PATH
	// SearchSystem32 restricts the search to the system directory (LOAD_LIBRARY_SEARCH_SYSTEM32).
	SearchSystem32 Flags = windows.LOAD_LIBRARY_SEARCH_SYSTEM32
	// SearchDefaultDirs uses the application, system and user directories (LOAD_LIBRARY_SEARCH_DEFAULT_DIRS).
	SearchDefaultDirs Flags = windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS

	// DefaultFlags is used when Open is called without WithFlags.
	DefaultFlags Flags = 0
)

func openLibrary(path string, flags Flags) (uintptr, error) {
	handle, err := windows.LoadLibraryEx(path, 0, uintptr(flags))
	if err != nil || handle == 0 {
		return 0, err
	}
	return uintptr(handle), nil
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}
