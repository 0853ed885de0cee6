package task

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(NewMemoryRepository(), nil)
	svc.WithNow(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) })
	return svc
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "  buy groceries  ")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "buy groceries", created.Description)
	require.False(t, created.IsComplete)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestServiceCreateValidation(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "   ")
	require.ErrorIs(t, err, ErrEmptyDescription)

	_, err = svc.Create(ctx, 1, strings.Repeat("x", MaxDescriptionLength+1))
	require.ErrorIs(t, err, ErrDescriptionTooLong)
}

func TestServiceListFilters(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, "first")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, "second")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "someone else's")
	require.NoError(t, err)

	_, err = svc.SetComplete(ctx, 1, first.ID, true)
	require.NoError(t, err)

	all, err := svc.List(ctx, 1, StatusAll)
	require.NoError(t, err)
	require.Len(t, all, 2)

	pending, err := svc.List(ctx, 1, StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "second", pending[0].Description)

	completed, err := svc.List(ctx, 1, StatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	require.Equal(t, "first", completed[0].Description)
}

func TestServiceUpdateDescription(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "old title")
	require.NoError(t, err)

	updated, err := svc.UpdateDescription(ctx, 1, created.ID, "new title")
	require.NoError(t, err)
	require.Equal(t, "new title", updated.Description)

	_, err = svc.UpdateDescription(ctx, 1, 99, "whatever")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceToggle(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "flip me")
	require.NoError(t, err)

	toggled, err := svc.Toggle(ctx, 1, created.ID)
	require.NoError(t, err)
	require.True(t, toggled.IsComplete)

	toggled, err = svc.Toggle(ctx, 1, created.ID)
	require.NoError(t, err)
	require.False(t, toggled.IsComplete)
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "to delete")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 1, created.ID))
	require.ErrorIs(t, svc.Delete(ctx, 1, created.ID), ErrNotFound)
}

// Tasks are scoped per user: user 2 cannot see or touch user 1's tasks.
func TestServiceUserIsolation(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "private")
	require.NoError(t, err)

	_, err = svc.Get(ctx, 2, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, 2, created.ID), ErrNotFound)
}
