package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-strings/pkg/simplestrings"
	"github.com/tendant/simple-strings/pkg/simplestrings/repo/memory"
)

func newRecord(value string, createdAt time.Time) *simplestrings.StringRecord {
	props := simplestrings.ComputeProperties(value)
	return &simplestrings.StringRecord{
		ID:         props.SHA256Hash,
		Value:      value,
		Properties: props,
		CreatedAt:  createdAt,
	}
}

func TestMemoryRepository_RecordOperations(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Create", func(t *testing.T) {
		err := repo.Create(ctx, newRecord("create me", now))
		assert.NoError(t, err)
	})

	t.Run("Create_Duplicate", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newRecord("twice", now)))

		err := repo.Create(ctx, newRecord("twice", now.Add(time.Second)))
		assert.Equal(t, simplestrings.ErrAlreadyExists, err)

		// The original record is untouched
		got, err := repo.Get(ctx, simplestrings.Digest("twice"))
		require.NoError(t, err)
		assert.Equal(t, now, got.CreatedAt)
	})

	t.Run("Get", func(t *testing.T) {
		record := newRecord("get me", now)
		require.NoError(t, repo.Create(ctx, record))

		retrieved, err := repo.Get(ctx, record.ID)
		assert.NoError(t, err)
		assert.Equal(t, record, retrieved)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		record, err := repo.Get(ctx, simplestrings.Digest("never stored"))
		assert.Error(t, err)
		assert.Nil(t, record)
		assert.Equal(t, simplestrings.ErrNotFound, err)
	})

	t.Run("Delete", func(t *testing.T) {
		record := newRecord("delete me", now)
		require.NoError(t, repo.Create(ctx, record))

		deleted, err := repo.Delete(ctx, record.ID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, record.ID)
		assert.NoError(t, err)
		assert.False(t, deleted)

		_, err = repo.Get(ctx, record.ID)
		assert.Equal(t, simplestrings.ErrNotFound, err)
	})
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	record := newRecord("aabb", time.Now())
	require.NoError(t, repo.Create(ctx, record))

	// Mutating the input after Create does not affect the stored record
	record.Properties.CharacterFrequencyMap["z"] = 9

	got, err := repo.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "b": 2}, got.Properties.CharacterFrequencyMap)

	// Nor does mutating a returned record
	got.Properties.CharacterFrequencyMap["a"] = 100
	got.Value = "changed"

	again, err := repo.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Properties.CharacterFrequencyMap["a"])
	assert.Equal(t, "aabb", again.Value)
}

func TestMemoryRepository_List(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	values := []string{"racecar", "hello world", "noon", "abc"}
	for i, v := range values {
		require.NoError(t, repo.Create(ctx, newRecord(v, base.Add(time.Duration(i)*time.Minute))))
	}

	all, err := repo.List(ctx, simplestrings.FilterSet{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, v := range values {
		assert.Equal(t, v, all[i].Value, "records are ordered by creation time")
	}

	palindrome := true
	filtered, err := repo.List(ctx, simplestrings.FilterSet{IsPalindrome: &palindrome})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "racecar", filtered[0].Value)
	assert.Equal(t, "noon", filtered[1].Value)

	lo, hi := 5, 3
	none, err := repo.List(ctx, simplestrings.FilterSet{MinLength: &lo, MaxLength: &hi})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryRepository_ListSameTimestampOrderedByID(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, v := range []string{"x", "y", "z"} {
		require.NoError(t, repo.Create(ctx, newRecord(v, at)))
	}

	list, err := repo.List(ctx, simplestrings.FilterSet{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, newRecord(fmt.Sprintf("value-%d", i%10), time.Now()))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx, simplestrings.FilterSet{})
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx, simplestrings.FilterSet{})
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
