package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsefit/pulsefit/internal/platform/db"
	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Repository defines persistence operations for the user profile and its
// embedded collections.
type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, passwordHash *string) (*Profile, error)
	ListLog(ctx context.Context, userID uuid.UUID) ([]LogEntry, error)
	AppendLog(ctx context.Context, entry LogEntry) (*LogEntry, error)
	ListExerciseWeights(ctx context.Context, userID uuid.UUID) ([]ExerciseWeight, error)
	SetExerciseWeight(ctx context.Context, userID uuid.UUID, exerciseID string, weight float64) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	const query = `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var p Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(&p.ID, &p.Email, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user not found", httpx.ErrNotFound)
		}
		return nil, fmt.Errorf("users: get profile: %w", err)
	}
	return &p, nil
}

// UpdateProfile sets only the columns that were supplied, so the password
// hash stays untouched on name-only updates.
func (r *repository) UpdateProfile(ctx context.Context, userID uuid.UUID, name, passwordHash *string) (*Profile, error) {
	query := "UPDATE users SET updated_at = NOW()"
	args := []any{}
	argPos := 1

	if name != nil {
		query += fmt.Sprintf(", name = $%d", argPos)
		args = append(args, *name)
		argPos++
	}
	if passwordHash != nil {
		query += fmt.Sprintf(", password_hash = $%d", argPos)
		args = append(args, *passwordHash)
		argPos++
	}
	query += fmt.Sprintf(" WHERE id = $%d", argPos)
	args = append(args, userID)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("users: update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: user not found", httpx.ErrNotFound)
	}
	return r.GetProfile(ctx, userID)
}

func (r *repository) ListLog(ctx context.Context, userID uuid.UUID) ([]LogEntry, error) {
	const query = `
		SELECT id, user_id, date, name, completed, summary, workout_id, created_at
		FROM workout_log_entries
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("users: list log: %w", err)
	}
	defer rows.Close()

	entries := []LogEntry{}
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Name, &e.Completed, &e.Summary, &e.WorkoutID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("users: scan log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *repository) AppendLog(ctx context.Context, entry LogEntry) (*LogEntry, error) {
	const query = `
		INSERT INTO workout_log_entries (user_id, date, name, completed, summary, workout_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, entry.UserID, entry.Date, entry.Name, entry.Completed, entry.Summary, entry.WorkoutID).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("users: append log: %w", err)
	}
	return &entry, nil
}

func (r *repository) ListExerciseWeights(ctx context.Context, userID uuid.UUID) ([]ExerciseWeight, error) {
	const query = `
		SELECT exercise_id, weight, updated_at
		FROM user_exercise_weights
		WHERE user_id = $1
		ORDER BY exercise_id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("users: list exercise weights: %w", err)
	}
	defer rows.Close()

	weights := []ExerciseWeight{}
	for rows.Next() {
		var w ExerciseWeight
		if err := rows.Scan(&w.ExerciseID, &w.Weight, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("users: scan exercise weight: %w", err)
		}
		weights = append(weights, w)
	}
	return weights, rows.Err()
}

// SetExerciseWeight upserts the user's default weight for an exercise and
// propagates it to the matching rows of the user's workouts. Both writes
// happen in a single transaction; the returned count is the number of
// workout exercise rows touched.
func (r *repository) SetExerciseWeight(ctx context.Context, userID uuid.UUID, exerciseID string, weight float64) (int64, error) {
	var propagated int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const upsert = `
			INSERT INTO user_exercise_weights (user_id, exercise_id, weight, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (user_id, exercise_id)
			DO UPDATE SET weight = EXCLUDED.weight, updated_at = NOW()
		`
		if _, err := tx.Exec(ctx, upsert, userID, exerciseID, weight); err != nil {
			return fmt.Errorf("users: upsert exercise weight: %w", err)
		}

		const propagate = `
			UPDATE workout_exercises we
			SET weight = $3
			FROM workouts w
			WHERE w.id = we.workout_id AND w.user_id = $1 AND we.exercise_id = $2
		`
		tag, err := tx.Exec(ctx, propagate, userID, exerciseID, weight)
		if err != nil {
			return fmt.Errorf("users: propagate exercise weight: %w", err)
		}
		propagated = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return propagated, nil
}
