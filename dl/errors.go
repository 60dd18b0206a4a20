package dl

import (
	"errors"
	"fmt"
)

var (
	// ErrOpeningLibrary matches every *OpeningLibraryError via errors.Is.
	ErrOpeningLibrary = errors.New("could not open library")
	// ErrSymbolGetting matches every *SymbolGettingError via errors.Is.
	ErrSymbolGetting = errors.New("could not get symbol")

	errLibraryClosed = errors.New("library is closed")
)

// OpeningLibraryError is returned when the OS loader refuses to map a module.
type OpeningLibraryError struct {
	Path string
	Err  error
}

func (e *OpeningLibraryError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrOpeningLibrary, e.Path, e.Message())
}

// Message returns the loader's diagnostic text.
func (e *OpeningLibraryError) Message() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

func (e *OpeningLibraryError) Unwrap() error { return e.Err }

func (e *OpeningLibraryError) Is(target error) bool { return target == ErrOpeningLibrary }

// SymbolGettingError is returned when a name cannot be resolved in an open module.
type SymbolGettingError struct {
	Name string
	Err  error
}

func (e *SymbolGettingError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrSymbolGetting, e.Name, e.Message())
}

// Message returns the loader's diagnostic text.
func (e *SymbolGettingError) Message() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

func (e *SymbolGettingError) Unwrap() error { return e.Err }

func (e *SymbolGettingError) Is(target error) bool { return target == ErrSymbolGetting }
