// Package cache provides byte-level result caching for CLI and server use.
//
// The GitHub data-access layer never caches; callers that want to avoid
// repeated API calls wrap results with one of the backends here:
//   - FileCache: file-based storage for CLI usage
//   - RedisCache: Redis-backed storage for server deployments
//   - NullCache: no-op backend used when caching is disabled
//
// Keys are arbitrary strings; use [Key] to build collision-safe keys from
// operation parameters.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache is the interface implemented by all caching backends.
type Cache interface {
	// Get retrieves a value by key. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Key builds a namespaced cache key from operation parameters.
// The parts are hashed so arbitrary user input (queries, usernames)
// cannot produce unsafe or colliding keys.
func Key(namespace string, parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return namespace + ":" + hex.EncodeToString(h[:])
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
