// Package local provides the key-value persistence path for anonymous
// users. The key scheme and record layout match the data the mobile app
// wrote to on-device storage, so records survive a device-to-account sync.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Marjona6/sproutish/internal/domain"
)

// Store implements the assignment and blocklist stores over a KV backend.
// One key per (user, date) structurally prevents duplicate assignments.
type Store struct {
	kv KV
}

// NewStore constructs a Store.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func assignmentKey(userID, date string) string {
	return fmt.Sprintf("dailyHabit_%s_%s", userID, date)
}

func assignmentPattern(userID string) string {
	return fmt.Sprintf("dailyHabit_%s_*", userID)
}

func blocklistKey(userID string) string {
	return fmt.Sprintf("blockedHabits_%s", userID)
}

// FindByUserDate returns the assignment stored under (userID, date), or
// (nil, nil) when the key is absent.
func (s *Store) FindByUserDate(ctx context.Context, userID, date string) (*domain.DailyAssignment, error) {
	value, ok, err := s.kv.Get(ctx, assignmentKey(userID, date))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var a domain.DailyAssignment
	if err := json.Unmarshal([]byte(value), &a); err != nil {
		return nil, fmt.Errorf("decode assignment %s: %w", assignmentKey(userID, date), err)
	}
	return &a, nil
}

// Insert writes the assignment under its (user, date) key. If a record
// already exists for the date it wins and is returned unchanged.
func (s *Store) Insert(ctx context.Context, assignment domain.DailyAssignment) (*domain.DailyAssignment, error) {
	existing, err := s.FindByUserDate(ctx, assignment.UserID, assignment.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if assignment.ID == "" {
		assignment.ID = domain.LocalID(time.Now())
	}

	body, err := json.Marshal(assignment)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, assignmentKey(assignment.UserID, assignment.Date), string(body)); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Get locates an assignment by id. The KV layout is keyed by date, so this
// scans the user's history.
func (s *Store) Get(ctx context.Context, assignmentID, userID string) (*domain.DailyAssignment, error) {
	assignments, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		if assignments[i].ID == assignmentID {
			return &assignments[i], nil
		}
	}
	return nil, nil
}

// ListByUser returns every assignment stored for the user.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]domain.DailyAssignment, error) {
	keys, err := s.kv.Keys(ctx, assignmentPattern(userID))
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.kv.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	assignments := make([]domain.DailyAssignment, 0, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}
		var a domain.DailyAssignment
		if err := json.Unmarshal([]byte(*value), &a); err != nil {
			return nil, fmt.Errorf("decode assignment %s: %w", keys[i], err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

// MarkCompleted sets the assignment completed, overwriting completedAt on
// repeat calls.
func (s *Store) MarkCompleted(ctx context.Context, assignmentID, userID string, at time.Time) error {
	return s.update(ctx, assignmentID, userID, func(a *domain.DailyAssignment) {
		at := at.UTC()
		a.Completed = true
		a.CompletedAt = &at
	})
}

// MarkSkipped records the skip marker without touching completion state.
func (s *Store) MarkSkipped(ctx context.Context, assignmentID, userID string, at time.Time) error {
	return s.update(ctx, assignmentID, userID, func(a *domain.DailyAssignment) {
		at := at.UTC()
		a.Skipped = true
		a.SkippedAt = &at
	})
}

func (s *Store) update(ctx context.Context, assignmentID, userID string, mutate func(*domain.DailyAssignment)) error {
	assignment, err := s.Get(ctx, assignmentID, userID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return domain.ErrAssignmentNotFound
	}

	mutate(assignment)

	body, err := json.Marshal(assignment)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, assignmentKey(userID, assignment.Date), string(body))
}

// Block adds the habit to the user's exclusion list. Blocking twice is a
// no-op.
func (s *Store) Block(ctx context.Context, userID, habitID string) error {
	blocked, err := s.blockedList(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range blocked {
		if id == habitID {
			return nil
		}
	}
	blocked = append(blocked, habitID)

	body, err := json.Marshal(blocked)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, blocklistKey(userID), string(body))
}

// Blocked returns the user's excluded habit ids.
func (s *Store) Blocked(ctx context.Context, userID string) (map[string]struct{}, error) {
	blocked, err := s.blockedList(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(blocked))
	for _, id := range blocked {
		set[id] = struct{}{}
	}
	return set, nil
}

func (s *Store) blockedList(ctx context.Context, userID string) ([]string, error) {
	value, ok, err := s.kv.Get(ctx, blocklistKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var blocked []string
	if err := json.Unmarshal([]byte(value), &blocked); err != nil {
		return nil, fmt.Errorf("decode blocklist %s: %w", blocklistKey(userID), err)
	}
	return blocked, nil
}
