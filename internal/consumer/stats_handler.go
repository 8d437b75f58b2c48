package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Marjona6/sproutish/internal/domain"
	"github.com/Marjona6/sproutish/internal/events"
)

// StatsHandler feeds the ops dashboards: it resolves each event's habit
// against the catalog and exports per-category counters. It keeps no state
// of its own, so replays are harmless.
type StatsHandler struct {
	catalog domain.Catalog
}

// NewStatsHandler constructs a StatsHandler over the given catalog.
func NewStatsHandler(catalog domain.Catalog) *StatsHandler {
	return &StatsHandler{catalog: catalog}
}

// Handle decodes the event payload and updates the stats counters. Unknown
// event types are skipped without error so new producers can roll out first.
func (h *StatsHandler) Handle(ctx context.Context, msg Message) error {
	switch msg.EventType {
	case "habit.assigned":
		var event events.HabitAssigned
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			return fmt.Errorf("decode habit.assigned: %w", err)
		}
		habit, ok := h.catalog.ByID(event.HabitID)
		if !ok {
			return fmt.Errorf("habit.assigned references unknown habit %s", event.HabitID)
		}
		assignmentsCounter.WithLabelValues(string(habit.Category)).Inc()
	case "habit.completed":
		var event events.HabitCompleted
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			return fmt.Errorf("decode habit.completed: %w", err)
		}
		habit, ok := h.catalog.ByID(event.HabitID)
		if !ok {
			return fmt.Errorf("habit.completed references unknown habit %s", event.HabitID)
		}
		completionsCounter.WithLabelValues(string(habit.Category), string(habit.Difficulty)).Inc()
	}
	return nil
}
