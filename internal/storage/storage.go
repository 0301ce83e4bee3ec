// Package storage holds what the key-value backends share.
package storage

import "errors"

// ErrNotFound is returned by backends when a key has no value.
var ErrNotFound = errors.New("key not found")
