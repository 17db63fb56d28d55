// Package cache stores rendered preview images between invocations.
//
// Rendering is deterministic, so a preview keyed by the hash of its render
// parameters never goes stale: entries have no expiry and are evicted only
// by an explicit clear. The file cache backs the browser output (the opened
// PNG must outlive the process) and provides ETag values for the HTTP
// preview server.
package cache

import "context"

// Cache is the interface for preview storage backends.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
