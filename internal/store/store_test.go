package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/grbpwr-community/internal/entity"
)

func newTestStore(t *testing.T) *RecordStore {
	rs, err := New(&Config{Path: filepath.Join(t.TempDir(), "subscribers.csv")})
	require.NoError(t, err)
	return rs.(*RecordStore)
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New(&Config{})
	assert.Error(t, err)
}

func TestRecordStore_AddAndList(t *testing.T) {
	rs := newTestStore(t)
	ctx := context.Background()

	sub := entity.Subscriber{
		Name:      "test",
		Email:     "test@mail.test",
		Phone:     "+4915112345678",
		Timestamp: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
	}
	require.NoError(t, rs.AddSubscriber(ctx, sub))

	subs, err := rs.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.Name, subs[0].Name)
	assert.Equal(t, sub.Email, subs[0].Email)
	assert.Equal(t, sub.Phone, subs[0].Phone)
	assert.True(t, sub.Timestamp.Equal(subs[0].Timestamp))
}

func TestRecordStore_QuotedFields(t *testing.T) {
	rs := newTestStore(t)
	ctx := context.Background()

	sub := entity.Subscriber{
		Name:  `O'Brien, "Bob"`,
		Email: "bob@mail.test",
		Phone: "+4915112345678",
	}
	require.NoError(t, rs.AddSubscriber(ctx, sub))

	subs, err := rs.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.Name, subs[0].Name)
}

func TestRecordStore_ZeroTimestamp(t *testing.T) {
	rs := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, rs.AddSubscriber(ctx, entity.Subscriber{
		Name:  "test",
		Email: "test@mail.test",
		Phone: "+4915112345678",
	}))

	subs, err := rs.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.False(t, subs[0].Timestamp.IsZero())
}

func TestRecordStore_DuplicatesKept(t *testing.T) {
	rs := newTestStore(t)
	ctx := context.Background()

	sub := entity.Subscriber{Name: "test", Email: "test@mail.test", Phone: "+4915112345678"}
	require.NoError(t, rs.AddSubscriber(ctx, sub))
	require.NoError(t, rs.AddSubscriber(ctx, sub))

	subs, err := rs.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestRecordStore_ConcurrentAppend(t *testing.T) {
	rs := newTestStore(t)
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := rs.AddSubscriber(ctx, entity.Subscriber{
				Name:  "test",
				Email: "test@mail.test",
				Phone: "+4915112345678",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// every line must come back intact, in some order
	subs, err := rs.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, n)
	for _, s := range subs {
		assert.Equal(t, "test@mail.test", s.Email)
	}
}

func TestRecordStore_ListMissingFile(t *testing.T) {
	rs := newTestStore(t)

	subs, err := rs.ListSubscribers(context.Background())
	require.NoError(t, err)
	assert.Len(t, subs, 0)
}
