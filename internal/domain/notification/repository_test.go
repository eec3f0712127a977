package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbershop/internal/database/dbtest"
)

func newTestRepo(t *testing.T) *GormRepository {
	t.Helper()
	repo := NewRepository(dbtest.Open(t))
	require.NoError(t, repo.Migrate())
	return repo
}

func TestGormRepository_CreateListCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		n := &Notification{UserID: 5, Type: TypeBookingReceived, Title: "t", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, n))
		assert.NotZero(t, n.ID)
	}
	require.NoError(t, repo.Create(ctx, &Notification{UserID: 6, Type: TypeNewBooking, Title: "other"}))

	items, err := repo.ListByUser(ctx, 5, 2, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].CreatedAt.After(items[1].CreatedAt))

	total, unread, err := repo.CountByUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(3), unread)
}

func TestGormRepository_MarkAsRead(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	n := &Notification{UserID: 5, Type: TypeNewBooking, Title: "New booking", Message: "Booking #1"}
	require.NoError(t, repo.Create(ctx, n))

	assert.ErrorIs(t, repo.MarkAsRead(ctx, n.ID, 6), ErrNotFound)
	require.NoError(t, repo.MarkAsRead(ctx, n.ID, 5))

	items, err := repo.ListByUser(ctx, 5, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsRead)
	assert.NotNil(t, items[0].ReadAt)
	assert.Equal(t, "Booking #1", items[0].Message)
}

func TestGormRepository_MarkAllAsRead(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, &Notification{UserID: 5, Type: TypeNewBooking, Title: "x"}))
	}

	updated, err := repo.MarkAllAsRead(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	_, unread, err := repo.CountByUser(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestGormRepository_DeleteReadBefore(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	old := time.Now().Add(-48 * time.Hour)

	readOld := &Notification{UserID: 5, Type: TypeNewBooking, Title: "old read", IsRead: true, CreatedAt: old}
	unreadOld := &Notification{UserID: 5, Type: TypeNewBooking, Title: "old unread", CreatedAt: old}
	readNew := &Notification{UserID: 5, Type: TypeNewBooking, Title: "new read", IsRead: true}
	for _, n := range []*Notification{readOld, unreadOld, readNew} {
		require.NoError(t, repo.Create(ctx, n))
	}

	deleted, err := repo.DeleteReadBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	total, _, err := repo.CountByUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
