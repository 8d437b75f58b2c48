package local

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Marjona6/sproutish/internal/domain"
)

// memoryKV is an in-memory KV used to exercise the store without Redis.
type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memoryKV) Keys(_ context.Context, pattern string) ([]string, error) {
	var keys []string
	for key := range m.data {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (m *memoryKV) MGet(_ context.Context, keys ...string) ([]*string, error) {
	out := make([]*string, len(keys))
	for i, key := range keys {
		if value, ok := m.data[key]; ok {
			copied := value
			out[i] = &copied
		}
	}
	return out, nil
}

func testAssignment(id, date string) domain.DailyAssignment {
	return domain.DailyAssignment{
		ID:      id,
		HabitID: "health-001",
		Date:    date,
		UserID:  "user-1",
	}
}

func TestInsertAndFindByUserDate(t *testing.T) {
	store := NewStore(newMemoryKV())
	ctx := context.Background()

	stored, err := store.Insert(ctx, testAssignment("a-1", "2026-03-10"))
	require.NoError(t, err)
	require.Equal(t, "a-1", stored.ID)

	found, err := store.FindByUserDate(ctx, "user-1", "2026-03-10")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "a-1", found.ID)
	require.Equal(t, "health-001", found.HabitID)
}

func TestFindByUserDateMiss(t *testing.T) {
	store := NewStore(newMemoryKV())

	found, err := store.FindByUserDate(context.Background(), "user-1", "2026-03-10")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestInsertExistingRecordWins(t *testing.T) {
	store := NewStore(newMemoryKV())
	ctx := context.Background()

	_, err := store.Insert(ctx, testAssignment("a-1", "2026-03-10"))
	require.NoError(t, err)

	second := testAssignment("a-2", "2026-03-10")
	second.HabitID = "learning-001"
	stored, err := store.Insert(ctx, second)
	require.NoError(t, err)
	require.Equal(t, "a-1", stored.ID)
	require.Equal(t, "health-001", stored.HabitID)
}

func TestInsertGeneratesLocalID(t *testing.T) {
	store := NewStore(newMemoryKV())

	stored, err := store.Insert(context.Background(), testAssignment("", "2026-03-10"))
	require.NoError(t, err)
	require.Regexp(t, `^local_\d+$`, stored.ID)
}

func TestStoredRecordLayout(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv)

	_, err := store.Insert(context.Background(), testAssignment("a-1", "2026-03-10"))
	require.NoError(t, err)

	raw, ok := kv.data["dailyHabit_user-1_2026-03-10"]
	require.True(t, ok)
	require.JSONEq(t, `{"id":"a-1","habitId":"health-001","date":"2026-03-10","userId":"user-1","completed":false}`, raw)
}

func TestListByUserScopesToUser(t *testing.T) {
	store := NewStore(newMemoryKV())
	ctx := context.Background()

	_, err := store.Insert(ctx, testAssignment("a-1", "2026-03-09"))
	require.NoError(t, err)
	_, err = store.Insert(ctx, testAssignment("a-2", "2026-03-10"))
	require.NoError(t, err)

	other := testAssignment("b-1", "2026-03-10")
	other.UserID = "user-2"
	_, err = store.Insert(ctx, other)
	require.NoError(t, err)

	list, err := store.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, a := range list {
		require.Equal(t, "user-1", a.UserID)
	}
}

func TestGetByID(t *testing.T) {
	store := NewStore(newMemoryKV())
	ctx := context.Background()

	_, err := store.Insert(ctx, testAssignment("a-1", "2026-03-09"))
	require.NoError(t, err)
	_, err = store.Insert(ctx, testAssignment("a-2", "2026-03-10"))
	require.NoError(t, err)

	found, err := store.Get(ctx, "a-2", "user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "2026-03-10", found.Date)

	missing, err := store.Get(ctx, "a-9", "user-1")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestMarkCompletedOverwritesTimestamp(t *testing.T) {
	store := NewStore(newMemoryKV())
	ctx := context.Background()

	_, err := store.Insert(ctx, testAssignment("a-1", "2026-03-10"))
	require.NoError(t, err)

	first := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, store.MarkCompleted(ctx, "a-1", "user-1", first))

	second := time.Date(2026, time.March, 10, 21, 0, 0, 0, time.UTC)
	require.NoError(t, store.MarkCompleted(ctx, "a-1", "user-1", second))

	found, err := store.Get(ctx, "a-1", "user-1")
	require.NoError(t, err)
	require.True(t, found.Completed)
	require.Equal(t, second, found.CompletedAt.UTC())
}

func TestMarkCompletedUnknownAssignment(t *testing.T) {
	store := NewStore(newMemoryKV())

	err := store.MarkCompleted(context.Background(), "a-9", "user-1", time.Now())
	require.ErrorIs(t, err, domain.ErrAssignmentNotFound)
}

func TestMarkSkipped(t *testing.T) {
	store := NewStore(newMemoryKV())
	ctx := context.Background()

	_, err := store.Insert(ctx, testAssignment("a-1", "2026-03-10"))
	require.NoError(t, err)

	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.MarkSkipped(ctx, "a-1", "user-1", at))

	found, err := store.Get(ctx, "a-1", "user-1")
	require.NoError(t, err)
	require.True(t, found.Skipped)
	require.False(t, found.Completed)
	require.Equal(t, at, found.SkippedAt.UTC())
}

func TestBlockIsIdempotent(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv)
	ctx := context.Background()

	require.NoError(t, store.Block(ctx, "user-1", "health-001"))
	require.NoError(t, store.Block(ctx, "user-1", "health-001"))
	require.NoError(t, store.Block(ctx, "user-1", "learning-001"))

	require.JSONEq(t, `["health-001","learning-001"]`, kv.data["blockedHabits_user-1"])

	blocked, err := store.Blocked(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, blocked, 2)
	require.Contains(t, blocked, "health-001")
}

func TestBlockedEmptyForNewUser(t *testing.T) {
	store := NewStore(newMemoryKV())

	blocked, err := store.Blocked(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, blocked)
}
