// Package docstore defines the document database boundary used by the seed
// tool: collections that accept documents with generated identities,
// sub-collections scoped to a parent document, and a server-assigned
// timestamp value.
//
// Backends live in sub-packages; Memory is the in-process implementation.
package docstore

import (
	"context"
	"strings"
)

// Store is an open session against a document database.
type Store interface {
	// Collection returns a top-level collection handle.
	Collection(name string) Collection
	// ServerTimestamp returns a field value the store replaces with its own
	// write time.
	ServerTimestamp() any
	Close() error
}

// Collection accepts new documents.
type Collection interface {
	// Path is the slash-separated path relative to the database root.
	Path() string
	// Add writes fields as a new document with a store-generated identity.
	Add(ctx context.Context, fields map[string]any) (Document, error)
}

// Document is a handle on a written document.
type Document interface {
	ID() string
	Path() string
	// Collection returns a sub-collection owned by this document.
	Collection(name string) Collection
}

// JoinPath joins path segments with slashes.
func JoinPath(segments ...string) string {
	return strings.Join(segments, "/")
}
