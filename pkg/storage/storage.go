// Package storage defines the object-storage abstraction used for uploaded
// media. Backends (local filesystem, S3-compatible object storage) take a
// fully buffered payload and return a durable URL that can be persisted in
// a database record.
package storage

import "context"

// Storage is the upload adapter implemented by all backends.
type Storage interface {
	// Upload stores a buffered payload and returns its durable URL.
	// folder is a logical namespace hint ("banners", "services", "blogs");
	// fileName is the client-supplied name, used only to derive the object
	// key's extension. data must be non-empty.
	Upload(ctx context.Context, folder, fileName, contentType string, data []byte) (string, error)

	// Type returns the storage backend identifier ("local" or "s3").
	Type() string
}
