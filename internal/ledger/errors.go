package ledger

import "fmt"

// ValidationError reports a draft field that cannot be stored.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageDecodeError wraps stored content that could not be decoded.
// It never leaves the package: Load falls back to defaults instead.
type StorageDecodeError struct {
	Key string
	Err error
}

func (e *StorageDecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Key, e.Err)
}

func (e *StorageDecodeError) Unwrap() error {
	return e.Err
}
