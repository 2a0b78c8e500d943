package simplestrings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// service implements the Service interface
type service struct {
	repository Repository
	eventSinks []EventSink
	now        func() time.Time
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithEventSink adds an event sink. Sinks are notified in the order added.
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		if sink != nil {
			s.eventSinks = append(s.eventSinks, sink)
		}
	}
}

// WithClock sets the time source used for created_at
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		now: time.Now,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

func (s *service) CreateString(ctx context.Context, value string) (*StringRecord, error) {
	if value == "" {
		return nil, invalidInput("value must be a non-empty string")
	}

	props := ComputeProperties(value)
	record := &StringRecord{
		ID:         props.SHA256Hash,
		Value:      value,
		Properties: props,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repository.Create(ctx, record); err != nil {
		return nil, &RecordError{ID: record.ID, Op: "create", Err: err}
	}

	for _, sink := range s.eventSinks {
		if err := sink.RecordCreated(ctx, record); err != nil {
			slog.Warn("Event sink failed", "event", "record_created", "id", record.ID, "error", err)
		}
	}

	return record, nil
}

func (s *service) GetString(ctx context.Context, value string) (*StringRecord, error) {
	id := Digest(value)
	record, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, &RecordError{ID: id, Op: "get", Err: err}
	}
	return record, nil
}

func (s *service) DeleteString(ctx context.Context, value string) error {
	id := Digest(value)
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return &RecordError{ID: id, Op: "delete", Err: err}
	}
	if !deleted {
		return &RecordError{ID: id, Op: "delete", Err: ErrNotFound}
	}

	for _, sink := range s.eventSinks {
		if err := sink.RecordDeleted(ctx, id); err != nil {
			slog.Warn("Event sink failed", "event", "record_deleted", "id", id, "error", err)
		}
	}

	return nil
}

func (s *service) ListStrings(ctx context.Context, filters FilterSet) (*ListResult, error) {
	records, err := s.repository.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list strings: %w", err)
	}
	if records == nil {
		records = []*StringRecord{}
	}

	return &ListResult{
		Data:           records,
		Count:          len(records),
		FiltersApplied: filters,
	}, nil
}

func (s *service) QueryNaturalLanguage(ctx context.Context, query string) (*NaturalLanguageResult, error) {
	if query == "" {
		return nil, invalidInput("query must not be empty")
	}

	filters, err := InterpretQuery(query)
	if err != nil {
		if errors.Is(err, ErrConflictingFilters) {
			slog.Info("Conflicting filters from query", "query", query, "min_length", *filters.MinLength, "max_length", *filters.MaxLength)
		}
		return nil, err
	}

	list, err := s.ListStrings(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &NaturalLanguageResult{
		ListResult: *list,
		InterpretedQuery: InterpretedQuery{
			Original:      query,
			ParsedFilters: filters,
		},
	}, nil
}
