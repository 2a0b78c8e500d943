package simplestrings

import "context"

// Repository defines the interface for string record persistence.
// Implementations must make Create atomic with its existence check.
type Repository interface {
	// Create stores record, failing with ErrAlreadyExists if its ID is taken
	Create(ctx context.Context, record *StringRecord) error

	// Get returns the record with the given digest or ErrNotFound
	Get(ctx context.Context, id string) (*StringRecord, error)

	// Delete removes the record and reports whether it existed
	Delete(ctx context.Context, id string) (bool, error)

	// List returns every record matching filters
	List(ctx context.Context, filters FilterSet) ([]*StringRecord, error)
}

// EventSink defines the interface for event handling
type EventSink interface {
	// RecordCreated is fired when a string is stored
	RecordCreated(ctx context.Context, record *StringRecord) error

	// RecordDeleted is fired when a string is removed
	RecordDeleted(ctx context.Context, id string) error
}
