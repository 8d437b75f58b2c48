package consumer

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Marjona6/sproutish/internal/catalog"
	"github.com/Marjona6/sproutish/internal/events"
)

func statsMessage(t *testing.T, eventType string, payload interface{}) Message {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return Message{
		Topic:     "habit_events",
		EventType: eventType,
		Payload:   body,
	}
}

func newStatsHandler() *StatsHandler {
	return NewStatsHandler(catalog.New(rand.New(rand.NewSource(1))))
}

func TestStatsHandlerCountsAssignments(t *testing.T) {
	handler := newStatsHandler()

	msg := statsMessage(t, "habit.assigned", events.HabitAssigned{
		AssignmentID: "a-1",
		UserID:       "user-1",
		HabitID:      "learning-002",
		Date:         "2026-03-10",
		AssignedAt:   time.Now().UTC(),
	})

	before := testutil.ToFloat64(assignmentsCounter.WithLabelValues("learning"))
	require.NoError(t, handler.Handle(context.Background(), msg))
	after := testutil.ToFloat64(assignmentsCounter.WithLabelValues("learning"))

	require.InDelta(t, before+1, after, 0.0001)
}

func TestStatsHandlerCountsCompletions(t *testing.T) {
	handler := newStatsHandler()

	msg := statsMessage(t, "habit.completed", events.HabitCompleted{
		AssignmentID: "a-1",
		UserID:       "user-1",
		HabitID:      "health-001",
		Date:         "2026-03-10",
		CompletedAt:  time.Now().UTC(),
	})

	before := testutil.ToFloat64(completionsCounter.WithLabelValues("health", "easy"))
	require.NoError(t, handler.Handle(context.Background(), msg))
	after := testutil.ToFloat64(completionsCounter.WithLabelValues("health", "easy"))

	require.InDelta(t, before+1, after, 0.0001)
}

func TestStatsHandlerUnknownHabit(t *testing.T) {
	handler := newStatsHandler()

	msg := statsMessage(t, "habit.completed", events.HabitCompleted{HabitID: "health-999"})
	require.Error(t, handler.Handle(context.Background(), msg))
}

func TestStatsHandlerSkipsUnknownEventType(t *testing.T) {
	handler := newStatsHandler()

	msg := Message{Topic: "habit_events", EventType: "habit.archived", Payload: []byte(`{}`)}
	require.NoError(t, handler.Handle(context.Background(), msg))
}
