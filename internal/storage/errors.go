// Package storage provides blob storage for gallery image files. It defines a
// System interface and two implementations: an S3-compatible object store for
// hosted backends, and a local filesystem store for development.
package storage

import "errors"

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrConflict indicates an upload targeted a key that already exists.
	ErrConflict = errors.New("storage: key already exists")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the key is malformed or contains invalid characters.
	// This includes empty keys and path traversal attempts.
	ErrInvalidKey = errors.New("storage: invalid key")
)
