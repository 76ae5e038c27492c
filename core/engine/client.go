package engine

import (
	"context"
	"errors"
)

var (
	// ErrTaskFailed is returned when the engine finished a task without success.
	ErrTaskFailed = errors.New("search engine task failed")
	// ErrIndexNotFound is returned when an operation targets a missing index.
	ErrIndexNotFound = errors.New("search index not found")
)

// Client defines the management operations on the search engine.
type Client interface {
	// Index returns a handle for the index with the given uid. It performs no I/O.
	Index(uid string) Index
	// IndexExists reports whether the index exists.
	IndexExists(ctx context.Context, uid string) (bool, error)
	// CreateIndex creates the index and waits until the engine has done so.
	CreateIndex(ctx context.Context, uid, primaryKey string) error
	// Health returns an error if the engine is not available.
	Health(ctx context.Context) error
}

// Index defines the settings operations on a single index.
type Index interface {
	// UID returns the engine uid of the index.
	UID() string
	// GetSearchableAttributes returns the searchable attributes in engine order.
	GetSearchableAttributes(ctx context.Context) ([]string, error)
	// UpdateSearchableAttributes replaces the searchable attributes.
	UpdateSearchableAttributes(ctx context.Context, attrs []string) error
	// GetFilterableAttributes returns the filterable attributes in engine order.
	GetFilterableAttributes(ctx context.Context) ([]string, error)
	// UpdateFilterableAttributes replaces the filterable attributes.
	UpdateFilterableAttributes(ctx context.Context, attrs []string) error
}
