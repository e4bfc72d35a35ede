package repository

import (
	"context"
	"encoding/json"
	"time"
)

// Collection names used by the site.
const (
	CollectionTrips              = "trips"
	CollectionLegalPages         = "legalPages"
	CollectionContactSubmissions = "contactSubmissions"
	CollectionVisitors           = "visitors"
	CollectionAdmins             = "admins"
)

// Document is a schemaless record stored under a collection with an opaque id.
type Document struct {
	ID        string
	Data      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentStore defines the generic document operations every typed repository is built on.
// Values passed as data or patch are marshalled to JSON objects.
type DocumentStore interface {
	// ListAll returns every document of the collection in insertion order.
	ListAll(ctx context.Context, collection string) ([]Document, error)

	// ListOrdered returns every document ordered by a top-level field of the data.
	ListOrdered(ctx context.Context, collection, field string, desc bool) ([]Document, error)

	// GetByID returns ErrNotFound when no document has the id.
	GetByID(ctx context.Context, collection, id string) (*Document, error)

	// Create stores data under a newly assigned id and returns it.
	Create(ctx context.Context, collection string, data any) (string, error)

	// Put creates or replaces the document with the given id.
	Put(ctx context.Context, collection, id string, data any) error

	// Update merges patch into the existing document. Returns ErrNotFound for unknown ids.
	Update(ctx context.Context, collection, id string, patch any) error

	// Delete removes the document. Returns ErrNotFound for unknown ids.
	Delete(ctx context.Context, collection, id string) error

	// SubscribeOrdered streams the ordered collection: once immediately, then after every change.
	// The channel is closed when ctx is done.
	SubscribeOrdered(ctx context.Context, collection, field string, desc bool) (<-chan []Document, error)
}
