package docstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrInvalidPath = errors.New("invalid document path")
	ErrClosed      = errors.New("document store closed")
)

// raw, schemaless document body; decode with the Decode* helpers before use
type Document map[string]any

// state of a document at a point in time
type Snapshot struct {
	Path   string
	Exists bool
	Data   Document
}

// called for the initial snapshot and after every change; err is set when
// the document could not be read
type Listener func(snap Snapshot, err error)

// handle for a live subscription; Cancel is idempotent. A callback already
// in flight when Cancel is called may still complete.
type Subscription interface {
	Cancel()
}

type Store interface {
	// returns ErrNotFound when the document does not exist
	Get(ctx context.Context, path string) (Document, error)

	// creates the document or merges data into it (nested maps are merged)
	Set(ctx context.Context, path string, data Document) error

	// removes fields addressed by dotted paths, e.g. "billing.status"
	DeleteFields(ctx context.Context, path string, fields ...string) error

	Delete(ctx context.Context, path string) error

	// returns the documents directly under a collection path
	List(ctx context.Context, collection string) ([]Snapshot, error)

	// delivers the current snapshot, then one snapshot per change until
	// the subscription is cancelled or ctx is done
	Subscribe(ctx context.Context, path string, fn Listener) (Subscription, error)

	Close() error
}
