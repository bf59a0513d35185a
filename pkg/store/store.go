// Package store provides string-list key-value storage for user data
// such as favorite profiles and search history.
//
// Three backends are available:
//   - memory: in-process storage for development and tests
//   - file: JSON files under the user config directory for CLI usage
//   - mongo: MongoDB-backed storage for server deployments
//
// All backends share the same small contract: a named key maps to an
// ordered list of strings. Callers own list semantics (deduplication,
// ordering, caps); the store only persists what it is given.
package store

import "context"

// Store is the interface for string-list storage backends.
type Store interface {
	// GetStringList retrieves the list stored under key.
	// A missing key returns an empty list, not an error.
	GetStringList(ctx context.Context, key string) ([]string, error)

	// SetStringList stores value under key, replacing any previous list.
	SetStringList(ctx context.Context, key string, value []string) error

	// Remove deletes the list stored under key.
	// Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close(ctx context.Context) error
}
