package store

import (
	"context"
	"errors"
	"maps"
)

// IDField is the document key holding its identifier.
const IDField = "id"

var (
	ErrNotFound          = errors.New("store: document not found")
	ErrMissingCollection = errors.New("store: collection is required")
)

// Document is a collection entry as decoded from JSON.
type Document map[string]any

// ID returns the document identifier, or "" if unset.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// withoutID returns a copy of d with IDField removed.
func (d Document) withoutID() Document {
	c := make(Document, len(d))
	for k, v := range d {
		if k != IDField {
			c[k] = v
		}
	}
	return c
}

// ListOptions pages through a collection in creation order.
type ListOptions struct {
	// Limit caps the number of documents returned. Zero means no limit.
	Limit int
	// Offset skips that many documents.
	Offset int
}

// Store is the database binding the hub is configured with.
// Implementations must be safe for concurrent use.
type Store interface {
	// List returns a page of documents and the collection's total count.
	List(ctx context.Context, collection string, opts ListOptions) ([]Document, int, error)
	// Get returns ErrNotFound for unknown ids.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Create assigns a new id, ignoring any id in doc, and returns the stored document.
	Create(ctx context.Context, collection string, doc Document) (Document, error)
	// Update replaces the document's fields and returns the stored document.
	Update(ctx context.Context, collection, id string, doc Document) (Document, error)
	// Delete returns ErrNotFound for unknown ids.
	Delete(ctx context.Context, collection, id string) error
}
