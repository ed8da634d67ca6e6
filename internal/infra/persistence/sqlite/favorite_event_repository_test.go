package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wander/config"
	"wander/internal/domain/entity"
	"wander/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFavoriteEventRepository(t *testing.T) repository.FavoriteEventRepository {
	t.Helper()

	cfg := &config.Config{Store: &config.StoreConfig{DSN: ":memory:"}}
	db, sqlDB, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewFavoriteEventRepository(db)
}

func newFavoriteEventRecord(messageID string, favorite bool, receivedAt time.Time) *repository.FavoriteEventRecord {
	return &repository.FavoriteEventRecord{
		MessageID: messageID,
		Event: entity.FavoriteEvent{
			RequestID:  "req-" + messageID,
			ActivityID: "2b7c3f0e-8d0a-5b1e-9a3c-1f1d2e3c4b5a",
			Name:       "history museum",
			City:       "Cupertino",
			State:      "CA",
			Favorite:   favorite,
			OccurredAt: receivedAt.Add(-time.Second),
		},
		ReceivedAt: receivedAt,
	}
}

func TestFavoriteEventRepository_RecordIsIdempotent(t *testing.T) {
	repo := newTestFavoriteEventRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	recorded, err := repo.RecordFavoriteEvent(ctx, newFavoriteEventRecord("m-1", true, now))
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = repo.RecordFavoriteEvent(ctx, newFavoriteEventRecord("m-1", false, now))
	require.NoError(t, err)
	assert.False(t, recorded, "redelivery is ignored")

	records, err := repo.FetchRecentFavoriteEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Event.Favorite, "first delivery wins")
	assert.Equal(t, "req-m-1", records[0].Event.RequestID)
	assert.Equal(t, now, records[0].ReceivedAt)
	assert.Equal(t, now.Add(-time.Second), records[0].Event.OccurredAt)
}

func TestFavoriteEventRepository_FetchRecent(t *testing.T) {
	repo := newTestFavoriteEventRepository(t)
	ctx := context.Background()
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"m-1", "m-2", "m-3"} {
		_, err := repo.RecordFavoriteEvent(ctx, newFavoriteEventRecord(id, i%2 == 0, start.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	records, err := repo.FetchRecentFavoriteEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "m-3", records[0].MessageID)
	assert.Equal(t, "m-2", records[1].MessageID)

	records, err = repo.FetchRecentFavoriteEvents(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 3, "non-positive limit falls back to the cap")
}

func TestFavoriteEventRepository_RequiresMessageID(t *testing.T) {
	repo := newTestFavoriteEventRepository(t)

	_, err := repo.RecordFavoriteEvent(context.Background(), newFavoriteEventRecord(" ", true, time.Now()))
	assert.Error(t, err)

	_, err = repo.RecordFavoriteEvent(context.Background(), nil)
	assert.Error(t, err)
}
