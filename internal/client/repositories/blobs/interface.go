// Package blobs stores whole serialized collections keyed by identity
// namespace, the local equivalent of per-key browser storage. Every write
// replaces the full payload for its namespace, so the last full write wins
// and readers never observe partial merges.
package blobs

import "context"

// Repository describes namespaced blob storage backed by the local database.
type Repository interface {
	// Get returns the payload stored under the namespace, or (nil, nil) when
	// nothing has been stored yet.
	Get(ctx context.Context, namespace string) ([]byte, error)

	// Put replaces the full payload for the namespace.
	Put(ctx context.Context, namespace string, payload []byte) error

	// Delete removes the namespace and its payload. Deleting a namespace
	// that does not exist is not an error.
	Delete(ctx context.Context, namespace string) error
}
