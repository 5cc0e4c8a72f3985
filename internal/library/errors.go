package library

import "errors"

// Error kinds surfaced at the CLI boundary. Storage backends and the metadata
// client wrap these sentinels so callers can classify failures with errors.Is.
var (
	// ErrNotFound indicates a lookup or mutation target is absent.
	ErrNotFound = errors.New("movie not found")
	// ErrDuplicate indicates an add collided with an existing title.
	ErrDuplicate = errors.New("movie already exists")
	// ErrValidation indicates a value outside its declared bounds.
	ErrValidation = errors.New("invalid value")
	// ErrFormat indicates a corrupt or malformed library file.
	ErrFormat = errors.New("malformed library data")
	// ErrNetwork indicates the metadata service could not be reached.
	ErrNetwork = errors.New("metadata service unreachable")
)
