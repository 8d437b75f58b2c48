// Package domain defines the business logic for the daily habit service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Marjona6/sproutish/internal/observability"
)

var (
	// ErrHabitNotFound indicates a stored assignment references an id that is
	// no longer in the catalog. Data integrity failure, surfaced to callers.
	ErrHabitNotFound = errors.New("habit not found in catalog")
	// ErrNoMatchingHabit is returned when no catalog entries remain after
	// category and blocklist filtering.
	ErrNoMatchingHabit = errors.New("no habit matches the selected categories")
	// ErrAssignmentNotFound is returned when a mutation targets an
	// assignment that does not exist for the user.
	ErrAssignmentNotFound = errors.New("daily assignment not found")
)

// Catalog is the read-only habit catalog consulted by the resolver.
type Catalog interface {
	ByID(id string) (Habit, bool)
	Random(categories []Category, blocked map[string]struct{}) (Habit, error)
}

// AssignmentStore captures persistence operations for daily assignments.
// FindByUserDate and Get return (nil, nil) when no record exists.
type AssignmentStore interface {
	FindByUserDate(ctx context.Context, userID, date string) (*DailyAssignment, error)
	// Insert persists a new assignment. An empty ID is filled in by the
	// store. If a record already exists for (userID, date) the stored
	// record wins and is returned.
	Insert(ctx context.Context, assignment DailyAssignment) (*DailyAssignment, error)
	Get(ctx context.Context, assignmentID, userID string) (*DailyAssignment, error)
	ListByUser(ctx context.Context, userID string) ([]DailyAssignment, error)
	MarkCompleted(ctx context.Context, assignmentID, userID string, at time.Time) error
	MarkSkipped(ctx context.Context, assignmentID, userID string, at time.Time) error
}

// BlocklistStore persists the per-user set of permanently excluded habits.
type BlocklistStore interface {
	Block(ctx context.Context, userID, habitID string) error
	Blocked(ctx context.Context, userID string) (map[string]struct{}, error)
}

// ProfileStore resolves user profiles for persistence-mode selection.
// Find returns (nil, nil) when no profile exists.
type ProfileStore interface {
	Find(ctx context.Context, userID string) (*UserProfile, error)
}

// Backend bundles the stores of one persistence mode.
type Backend struct {
	Assignments AssignmentStore
	Blocklist   BlocklistStore
}

// Mode names which backend served a request.
type Mode string

const (
	// ModeCloud is used for signed-in users with durable server-side records.
	ModeCloud Mode = "cloud"
	// ModeLocal is used for anonymous users and as the outage fallback.
	ModeLocal Mode = "local"
)

// TodaysHabit pairs the resolved assignment with its catalog definition.
type TodaysHabit struct {
	Assignment DailyAssignment
	Habit      Habit
	Mode       Mode
	// Ephemeral marks an assignment that could not be persisted because
	// the backend was unreachable. A retry during the same outage may draw
	// a different habit; callers should treat the result as display-only.
	Ephemeral bool
}

// Service orchestrates daily assignment, completion, and progress workflows.
type Service struct {
	catalog  Catalog
	profiles ProfileStore
	cloud    Backend
	local    Backend
	now      func() time.Time
	logger   *zap.SugaredLogger
}

// Option configures optional Service behaviour.
type Option func(*Service)

// WithClock overrides the time source. Tests pin "today" with this.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger overrides the logger used for swallowed backend failures.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService constructs a Service over both persistence backends.
func NewService(catalog Catalog, profiles ProfileStore, cloud, local Backend, opts ...Option) *Service {
	s := &Service{
		catalog:  catalog,
		profiles: profiles,
		cloud:    cloud,
		local:    local,
		now:      time.Now,
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today returns the current calendar date in the resolver's local zone.
func (s *Service) today() string {
	return s.now().Format(DateFormat)
}

// backendFor picks the persistence mode for a user: cloud when a profile
// with a linked email exists, local otherwise. A profile-store failure is
// treated as anonymous, not an error.
func (s *Service) backendFor(ctx context.Context, userID string) (Backend, Mode) {
	profile, err := s.profiles.Find(ctx, userID)
	if err != nil {
		s.logger.Warnw("profile lookup failed, using local store", "user_id", userID, "error", err)
		return s.local, ModeLocal
	}
	if profile.SignedIn() {
		return s.cloud, ModeCloud
	}
	return s.local, ModeLocal
}

// GetTodaysHabit resolves (creating if necessary) the single habit assigned
// to the user for the current date.
//
// Persistence failures never propagate: the caller always gets a habit to
// show, falling back to an ephemeral unpersisted assignment during outages.
// Only ErrHabitNotFound (stale stored id) and ErrNoMatchingHabit (filter
// exhausted) are returned as errors.
func (s *Service) GetTodaysHabit(ctx context.Context, userID string, categories []Category) (*TodaysHabit, error) {
	today := s.today()
	backend, mode := s.backendFor(ctx, userID)

	existing, err := backend.Assignments.FindByUserDate(ctx, userID, today)
	if err != nil {
		s.logger.Warnw("assignment lookup failed, returning ephemeral habit", "user_id", userID, "error", err)
		return s.ephemeral(ctx, backend, userID, today, categories)
	}

	if existing != nil {
		habit, ok := s.catalog.ByID(existing.HabitID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrHabitNotFound, existing.HabitID)
		}
		return &TodaysHabit{Assignment: *existing, Habit: habit, Mode: mode}, nil
	}

	habit, err := s.draw(ctx, backend, userID, categories)
	if err != nil {
		return nil, err
	}

	assignment := DailyAssignment{
		HabitID: habit.ID,
		Date:    today,
		UserID:  userID,
	}

	stored, err := backend.Assignments.Insert(ctx, assignment)
	if err != nil {
		s.logger.Warnw("assignment insert failed, returning ephemeral habit", "user_id", userID, "error", err)
		return s.ephemeral(ctx, backend, userID, today, categories)
	}

	// The insert may have lost a race to a concurrent first call; the
	// stored record is authoritative either way.
	if stored.HabitID != habit.ID {
		if winner, ok := s.catalog.ByID(stored.HabitID); ok {
			habit = winner
		}
	}

	return &TodaysHabit{Assignment: *stored, Habit: habit, Mode: mode}, nil
}

// draw picks a random habit from the user's categories minus their blocklist.
// A blocklist read failure degrades to an unfiltered draw.
func (s *Service) draw(ctx context.Context, backend Backend, userID string, categories []Category) (Habit, error) {
	blocked, err := backend.Blocklist.Blocked(ctx, userID)
	if err != nil {
		s.logger.Warnw("blocklist lookup failed, drawing unfiltered", "user_id", userID, "error", err)
		blocked = nil
	}
	return s.catalog.Random(categories, blocked)
}

// ephemeral builds an unpersisted assignment so the caller still has a habit
// to show during a backend outage.
func (s *Service) ephemeral(ctx context.Context, backend Backend, userID, today string, categories []Category) (*TodaysHabit, error) {
	habit, err := s.draw(ctx, backend, userID, categories)
	if err != nil {
		return nil, err
	}
	assignment := DailyAssignment{
		ID:      LocalID(s.now()),
		HabitID: habit.ID,
		Date:    today,
		UserID:  userID,
	}
	observability.RecordEphemeralFallback()
	return &TodaysHabit{Assignment: assignment, Habit: habit, Mode: ModeLocal, Ephemeral: true}, nil
}

// MarkComplete sets the assignment completed. Repeat calls succeed and move
// completedAt forward (last write wins).
func (s *Service) MarkComplete(ctx context.Context, assignmentID, userID string) error {
	backend, _ := s.backendFor(ctx, userID)
	if err := backend.Assignments.MarkCompleted(ctx, assignmentID, userID, s.now()); err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			return err
		}
		return fmt.Errorf("mark complete: %w", err)
	}
	return nil
}

// SkipToday records a skip marker on the assignment without completing it.
// A skipped day still counts toward total assignments in progress math.
func (s *Service) SkipToday(ctx context.Context, assignmentID, userID string) error {
	backend, _ := s.backendFor(ctx, userID)
	if err := backend.Assignments.MarkSkipped(ctx, assignmentID, userID, s.now()); err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			return err
		}
		return fmt.Errorf("skip today: %w", err)
	}
	return nil
}

// BlockHabit permanently excludes the habit from the user's future draws and
// completes today's assignment if it references the blocked habit, so it is
// not re-surfaced the same day.
func (s *Service) BlockHabit(ctx context.Context, habitID, userID string) error {
	if _, ok := s.catalog.ByID(habitID); !ok {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}

	backend, _ := s.backendFor(ctx, userID)
	if err := backend.Blocklist.Block(ctx, userID, habitID); err != nil {
		return fmt.Errorf("block habit: %w", err)
	}

	today, err := backend.Assignments.FindByUserDate(ctx, userID, s.today())
	if err != nil || today == nil || today.HabitID != habitID || today.Completed {
		return nil
	}
	if err := backend.Assignments.MarkCompleted(ctx, today.ID, userID, s.now()); err != nil {
		return fmt.Errorf("block habit: complete current assignment: %w", err)
	}
	return nil
}

// GetProgress computes the user's completion statistics from their full
// assignment history. Aggregation is advisory: any read failure yields the
// zero value rather than an error.
func (s *Service) GetProgress(ctx context.Context, userID string) HabitProgress {
	backend, _ := s.backendFor(ctx, userID)
	assignments, err := backend.Assignments.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warnw("assignment history read failed, reporting zero progress", "user_id", userID, "error", err)
		return HabitProgress{}
	}
	return ComputeProgress(assignments, s.now())
}

// LocalID synthesizes the timestamp-derived token used for offline records.
func LocalID(now time.Time) string {
	return fmt.Sprintf("local_%d", now.UnixMilli())
}
