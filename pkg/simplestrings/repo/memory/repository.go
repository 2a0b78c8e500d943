package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tendant/simple-strings/pkg/simplestrings"
)

// Repository implements simplestrings.Repository using in-memory storage
type Repository struct {
	mu      sync.RWMutex
	records map[string]*simplestrings.StringRecord
}

// New creates a new in-memory repository
func New() simplestrings.Repository {
	return &Repository{
		records: make(map[string]*simplestrings.StringRecord),
	}
}

func (r *Repository) Create(ctx context.Context, record *simplestrings.StringRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return simplestrings.ErrAlreadyExists
	}

	r.records[record.ID] = copyRecord(record)
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (*simplestrings.StringRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, simplestrings.ErrNotFound
	}

	return copyRecord(record), nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return false, nil
	}

	delete(r.records, id)
	return true, nil
}

func (r *Repository) List(ctx context.Context, filters simplestrings.FilterSet) ([]*simplestrings.StringRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simplestrings.StringRecord, 0, len(r.records))
	for _, record := range r.records {
		if filters.Matches(record) {
			result = append(result, copyRecord(record))
		}
	}

	// Sort by created_at ascending, then id
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// copyRecord returns a deep copy so callers can never mutate stored state.
func copyRecord(record *simplestrings.StringRecord) *simplestrings.StringRecord {
	recordCopy := *record
	freq := make(map[string]int, len(record.Properties.CharacterFrequencyMap))
	for k, v := range record.Properties.CharacterFrequencyMap {
		freq[k] = v
	}
	recordCopy.Properties.CharacterFrequencyMap = freq
	return &recordCopy
}
