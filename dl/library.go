// Package dl opens shared libraries and resolves their exported symbols
// through the operating system loader, without cgo.
//
// On POSIX systems the loader is dlopen/dlsym/dlclose (via purego); on
// Windows it is LoadLibraryEx/GetProcAddress/FreeLibrary. The platform is
// chosen at build time.
//
// Addresses returned by Symbol are only meaningful while the Library that
// produced them is open. Using one after Close is undefined behaviour: the
// loader may already have unmapped the module.
package dl

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

// Flags are platform-specific load options passed verbatim to the OS loader.
type Flags uint32

// OpenOption configures Open.
type OpenOption func(*openConfig) error

type openConfig struct {
	flags Flags
}

// WithFlags overrides DefaultFlags for a single Open call.
func WithFlags(flags Flags) OpenOption {
	return func(cfg *openConfig) error {
		cfg.flags = flags
		return nil
	}
}

// Library is an open handle to a loaded module. It is safe for concurrent use.
type Library struct {
	mu     sync.RWMutex
	handle uintptr
	path   string
	flags  Flags
}

// Open asks the OS loader to map the module at path into the process.
// path may be absolute, relative, or a bare name resolved through the
// loader's search path.
func Open(path string, opts ...OpenOption) (*Library, error) {
	cfg := openConfig{flags: DefaultFlags}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, &OpeningLibraryError{Path: path, Err: err}
		}
	}

	if path == "" {
		return nil, &OpeningLibraryError{Path: path, Err: fmt.Errorf("library path is empty")}
	}
	if strings.IndexByte(path, 0) >= 0 {
		return nil, &OpeningLibraryError{Path: path, Err: fmt.Errorf("library path contains a NUL byte")}
	}

	handle, err := openLibrary(path, cfg.flags)
	if err != nil {
		return nil, &OpeningLibraryError{Path: path, Err: err}
	}
	if handle == 0 {
		return nil, &OpeningLibraryError{Path: path, Err: fmt.Errorf("loader returned a nil handle")}
	}

	return &Library{
		handle: handle,
		path:   path,
		flags:  cfg.flags,
	}, nil
}

// Symbol returns the address the loader binds to name. The address is never 0.
func (l *Library) Symbol(name string) (uintptr, error) {
	if err := validateSymbolName(name); err != nil {
		return 0, &SymbolGettingError{Name: name, Err: err}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.handle == 0 {
		return 0, &SymbolGettingError{Name: name, Err: errLibraryClosed}
	}

	addr, err := getSymbol(l.handle, name)
	if err != nil {
		return 0, &SymbolGettingError{Name: name, Err: err}
	}
	if addr == 0 {
		return 0, &SymbolGettingError{Name: name, Err: fmt.Errorf("symbol resolved to a nil address")}
	}
	return addr, nil
}

// SymbolCString is Symbol for a NUL-terminated name, as found in export
// tables and C headers.
func (l *Library) SymbolCString(name []byte) (uintptr, error) {
	goName, err := cstringName(name)
	if err != nil {
		return 0, &SymbolGettingError{Name: string(name), Err: err}
	}
	return l.Symbol(goName)
}

// Close unmaps the module. It always returns nil: a failure reported by the
// OS loader is logged and otherwise ignored. Calling Close more than once is
// a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == 0 {
		return nil
	}

	if err := closeLibrary(l.handle); err != nil {
		log.Printf("WARNING: failed to close library %q: %v", l.path, err)
	}
	l.handle = 0
	return nil
}

// IsOpen reports whether Close has not yet been called.
func (l *Library) IsOpen() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handle != 0
}

// Path returns the path the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Flags returns the flags the library was opened with.
func (l *Library) Flags() Flags {
	return l.flags
}

func validateSymbolName(name string) error {
	if name == "" {
		return fmt.Errorf("symbol name is empty")
	}
	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("symbol name contains a NUL byte")
	}
	return nil
}
