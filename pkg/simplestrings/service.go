package simplestrings

import "context"

// Service defines the main interface for the simple-strings library
type Service interface {
	// CreateString analyzes and stores value
	CreateString(ctx context.Context, value string) (*StringRecord, error)

	// GetString returns the record for value, looked up by its digest
	GetString(ctx context.Context, value string) (*StringRecord, error)

	// DeleteString removes the record for value
	DeleteString(ctx context.Context, value string) error

	// ListStrings returns all records matching filters
	ListStrings(ctx context.Context, filters FilterSet) (*ListResult, error)

	// QueryNaturalLanguage interprets query and lists the matching records
	QueryNaturalLanguage(ctx context.Context, query string) (*NaturalLanguageResult, error)
}
