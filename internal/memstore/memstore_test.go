package memstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/billing/internal/memstore"
)

type item struct {
	ID   int
	Name string
}

func add(t *testing.T, s *memstore.Store[item], name string) item {
	t.Helper()

	got, err := s.Append(context.Background(), func(id int) item {
		return item{ID: id, Name: name}
	})
	require.NoError(t, err)

	return got
}

func TestStore_SequentialIDs(t *testing.T) {
	s := memstore.New[item]()

	assert.Equal(t, 1, add(t, s, "a").ID)
	assert.Equal(t, 2, add(t, s, "b").ID)
	assert.Equal(t, 3, add(t, s, "c").ID)

	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_AllKeepsInsertionOrder(t *testing.T) {
	s := memstore.New[item]()

	for _, name := range []string{"first", "second", "third"} {
		add(t, s, name)
	}

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "second", all[1].Name)
	assert.Equal(t, "third", all[2].Name)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := memstore.New[item]()
	add(t, s, "a")

	all, err := s.All(context.Background())
	require.NoError(t, err)

	all[0].Name = "mutated"

	again, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Name)
}

func TestStore_EmptyAll(t *testing.T) {
	s := memstore.New[item]()

	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_CancelledContext(t *testing.T) {
	s := memstore.New[item]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Append(ctx, func(id int) item { return item{ID: id} })
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.All(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_ConcurrentAppendsGetDistinctIDs(t *testing.T) {
	s := memstore.New[item]()

	const n = 200

	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			_, _ = s.Append(context.Background(), func(id int) item { return item{ID: id} })
		})
	}

	wg.Wait()

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, n)

	seen := make(map[int]bool, n)
	for _, it := range all {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}

	for id := 1; id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}
