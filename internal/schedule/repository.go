package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Repository defines persistence operations for scheduled workouts, scoped by owner.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]ScheduledWorkout, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*ScheduledWorkout, error)
	Create(ctx context.Context, sw ScheduledWorkout) error
	Update(ctx context.Context, sw ScheduledWorkout) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	WorkoutOwned(ctx context.Context, userID, workoutID uuid.UUID) (bool, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]ScheduledWorkout, error) {
	const query = `
		SELECT id, user_id, workout_id, scheduled_for, completed, created_at, updated_at
		FROM scheduled_workouts
		WHERE user_id = $1
		ORDER BY scheduled_for DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("schedule: list: %w", err)
	}
	defer rows.Close()

	scheduled := []ScheduledWorkout{}
	for rows.Next() {
		var sw ScheduledWorkout
		if err := rows.Scan(&sw.ID, &sw.UserID, &sw.WorkoutID, &sw.ScheduledFor, &sw.Completed, &sw.CreatedAt, &sw.UpdatedAt); err != nil {
			return nil, fmt.Errorf("schedule: scan: %w", err)
		}
		scheduled = append(scheduled, sw)
	}
	return scheduled, rows.Err()
}

func (r *repository) Get(ctx context.Context, userID, id uuid.UUID) (*ScheduledWorkout, error) {
	const query = `
		SELECT id, user_id, workout_id, scheduled_for, completed, created_at, updated_at
		FROM scheduled_workouts
		WHERE id = $1 AND user_id = $2
	`
	var sw ScheduledWorkout
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&sw.ID, &sw.UserID, &sw.WorkoutID, &sw.ScheduledFor, &sw.Completed, &sw.CreatedAt, &sw.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: scheduled workout not found", httpx.ErrNotFound)
		}
		return nil, fmt.Errorf("schedule: get: %w", err)
	}
	return &sw, nil
}

func (r *repository) Create(ctx context.Context, sw ScheduledWorkout) error {
	const query = `
		INSERT INTO scheduled_workouts (id, user_id, workout_id, scheduled_for, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	if _, err := r.pool.Exec(ctx, query, sw.ID, sw.UserID, sw.WorkoutID, sw.ScheduledFor, sw.Completed); err != nil {
		return fmt.Errorf("schedule: create: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, sw ScheduledWorkout) error {
	const query = `
		UPDATE scheduled_workouts
		SET workout_id = $3, scheduled_for = $4, completed = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, sw.ID, sw.UserID, sw.WorkoutID, sw.ScheduledFor, sw.Completed)
	if err != nil {
		return fmt.Errorf("schedule: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: scheduled workout not found", httpx.ErrNotFound)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const query = `DELETE FROM scheduled_workouts WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("schedule: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: scheduled workout not found", httpx.ErrNotFound)
	}
	return nil
}

// WorkoutOwned reports whether the referenced workout belongs to the user.
func (r *repository) WorkoutOwned(ctx context.Context, userID, workoutID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM workouts WHERE id = $1 AND user_id = $2)`
	var owned bool
	if err := r.pool.QueryRow(ctx, query, workoutID, userID).Scan(&owned); err != nil {
		return false, fmt.Errorf("schedule: workout owned: %w", err)
	}
	return owned, nil
}
