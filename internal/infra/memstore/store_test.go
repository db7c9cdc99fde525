package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/recordsort/internal/domain"
)

func rec(last string) domain.Record {
	return domain.NewRecord(last, "x", domain.GenderMale, "blue", domain.Date(2000, 1, 1))
}

func TestStore_AppendAndListPreservesOrder(t *testing.T) {
	s := New(rec("seed"))
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, rec("a"), rec("b")))
	require.NoError(t, s.Append(ctx, rec("c")))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "seed", got[0].LastName)
	assert.Equal(t, "c", got[3].LastName)
}

func TestStore_ListIsSnapshot(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, rec("a")))

	got, err := s.List(ctx)
	require.NoError(t, err)
	got[0].LastName = "mutated"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].LastName)
}

func TestStore_EmptyListIsNotNil(t *testing.T) {
	got, err := New().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Append(ctx, rec("r"))
			_, _ = s.List(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	assert.ErrorIs(t, s.Append(ctx, rec("a")), context.Canceled)
	_, err := s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
