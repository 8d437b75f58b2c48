// Package postgres provides the cloud-backed persistence path for signed-in
// users.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Marjona6/sproutish/internal/domain"
	"github.com/Marjona6/sproutish/internal/events"
	"github.com/Marjona6/sproutish/internal/observability"
)

// Repository provides Postgres-backed persistence for daily assignments,
// blocklists, user profiles, and outbox events.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const assignmentColumns = `id, user_id, habit_id, date, completed, completed_at, skipped, skipped_at`

func scanAssignment(row pgx.Row) (*domain.DailyAssignment, error) {
	var a domain.DailyAssignment
	if err := row.Scan(&a.ID, &a.UserID, &a.HabitID, &a.Date, &a.Completed, &a.CompletedAt, &a.Skipped, &a.SkippedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Find returns the user profile, or (nil, nil) when none exists.
func (r *Repository) Find(ctx context.Context, userID string) (*domain.UserProfile, error) {
	const query = `SELECT user_id, COALESCE(email, ''), created_at FROM user_profiles WHERE user_id=$1`

	var p domain.UserProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.Email, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByUserDate returns the assignment for (userID, date), or (nil, nil).
func (r *Repository) FindByUserDate(ctx context.Context, userID, date string) (*domain.DailyAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_habits WHERE user_id=$1 AND date=$2`, assignmentColumns)

	a, err := scanAssignment(r.pool.QueryRow(ctx, query, userID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Insert persists a new assignment and records the habit.assigned outbox
// event in the same transaction. The unique (user_id, date) index makes
// concurrent first calls converge: the loser re-reads and returns the
// winning row.
func (r *Repository) Insert(ctx context.Context, assignment domain.DailyAssignment) (*domain.DailyAssignment, error) {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insert = `INSERT INTO daily_habits (id, user_id, habit_id, date, completed, created_at)
        VALUES ($1,$2,$3,$4,FALSE,$5)
        ON CONFLICT (user_id, date) DO NOTHING`

	tag, err := tx.Exec(ctx, insert, assignment.ID, assignment.UserID, assignment.HabitID, assignment.Date, now)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		// Lost the race: someone else assigned today's habit first.
		query := fmt.Sprintf(`SELECT %s FROM daily_habits WHERE user_id=$1 AND date=$2`, assignmentColumns)
		existing, err := scanAssignment(tx.QueryRow(ctx, query, assignment.UserID, assignment.Date))
		if err != nil {
			return nil, err
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	}

	if err := insertOutbox(ctx, tx, "habit.assigned", assignment.UserID, assignment.ID, events.HabitAssigned{
		AssignmentID: assignment.ID,
		UserID:       assignment.UserID,
		HabitID:      assignment.HabitID,
		Date:         assignment.Date,
		AssignedAt:   now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	observability.RecordAssignmentPersisted(now)
	return &assignment, nil
}

// Get retrieves an assignment by id, scoped to the owning user.
func (r *Repository) Get(ctx context.Context, assignmentID, userID string) (*domain.DailyAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_habits WHERE id=$1 AND user_id=$2`, assignmentColumns)

	a, err := scanAssignment(r.pool.QueryRow(ctx, query, assignmentID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByUser returns the user's full assignment history, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.DailyAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_habits WHERE user_id=$1 ORDER BY date DESC`, assignmentColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.DailyAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *a)
	}
	return results, rows.Err()
}

// MarkCompleted sets the assignment completed and records the
// habit.completed outbox event transactionally. Completing an already
// completed assignment succeeds and overwrites completed_at.
func (r *Repository) MarkCompleted(ctx context.Context, assignmentID, userID string, at time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const update = `UPDATE daily_habits SET completed=TRUE, completed_at=$3
        WHERE id=$1 AND user_id=$2
        RETURNING habit_id, date`

	var habitID, date string
	if err := tx.QueryRow(ctx, update, assignmentID, userID, at.UTC()).Scan(&habitID, &date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAssignmentNotFound
		}
		return err
	}

	if err := insertOutbox(ctx, tx, "habit.completed", userID, assignmentID, events.HabitCompleted{
		AssignmentID: assignmentID,
		UserID:       userID,
		HabitID:      habitID,
		Date:         date,
		CompletedAt:  at.UTC(),
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	observability.RecordCompletionPersisted(at.UTC())
	return nil
}

// MarkSkipped records the skip marker without touching completion state.
func (r *Repository) MarkSkipped(ctx context.Context, assignmentID, userID string, at time.Time) error {
	const update = `UPDATE daily_habits SET skipped=TRUE, skipped_at=$3 WHERE id=$1 AND user_id=$2`

	tag, err := r.pool.Exec(ctx, update, assignmentID, userID, at.UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}

// Block adds the habit to the user's exclusion set. Blocking twice is a
// no-op.
func (r *Repository) Block(ctx context.Context, userID, habitID string) error {
	const insert = `INSERT INTO blocked_habits (user_id, habit_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`
	_, err := r.pool.Exec(ctx, insert, userID, habitID)
	return err
}

// Blocked returns the user's excluded habit ids.
func (r *Repository) Blocked(ctx context.Context, userID string) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx, `SELECT habit_id FROM blocked_habits WHERE user_id=$1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocked := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		blocked[id] = struct{}{}
	}
	return blocked, rows.Err()
}

func insertOutbox(ctx context.Context, tx pgx.Tx, eventType, userID, assignmentID string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	meta, ok := eventCatalog[eventType]
	if !ok {
		return fmt.Errorf("unknown event type: %s", eventType)
	}

	dedupeKey := fmt.Sprintf("%s:%s", assignmentID, eventType)

	const stmt = `INSERT INTO outbox (aggregate_type, aggregate_id, event_type, topic, partition_key, payload, dedupe_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (dedupe_key) DO NOTHING`

	_, err = tx.Exec(ctx, stmt,
		"daily_habit",
		assignmentID,
		eventType,
		meta.Topic,
		userID,
		body,
		dedupeKey,
	)
	return err
}

// EventMetadata describes how to route an outbox event.
type EventMetadata struct {
	Topic string
}

var eventCatalog = map[string]EventMetadata{
	"habit.assigned":  {Topic: "habit_events"},
	"habit.completed": {Topic: "habit_events"},
}
