package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Repository defines persistence operations for progress entries, scoped by owner.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]Entry, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Entry, error)
	Create(ctx context.Context, entry Entry) error
	Update(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	const query = `
		SELECT id, user_id, workout_date, body_weight, notes, measurements, created_at, updated_at
		FROM progress_entries
		WHERE user_id = $1
		ORDER BY workout_date DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("progress: list: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *repository) Get(ctx context.Context, userID, id uuid.UUID) (*Entry, error) {
	const query = `
		SELECT id, user_id, workout_date, body_weight, notes, measurements, created_at, updated_at
		FROM progress_entries
		WHERE id = $1 AND user_id = $2
	`
	rows, err := r.pool.Query(ctx, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("progress: get: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("progress: get: %w", err)
		}
		return nil, fmt.Errorf("%w: progress entry not found", httpx.ErrNotFound)
	}
	return scanEntry(rows)
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	var measurements []byte
	if err := row.Scan(&e.ID, &e.UserID, &e.WorkoutDate, &e.BodyWeight, &e.Notes, &measurements, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("progress: scan: %w", err)
	}
	e.Measurements = map[string]float64{}
	if len(measurements) > 0 {
		if err := json.Unmarshal(measurements, &e.Measurements); err != nil {
			return nil, fmt.Errorf("progress: decode measurements: %w", err)
		}
	}
	return &e, nil
}

func (r *repository) Create(ctx context.Context, entry Entry) error {
	measurements, err := json.Marshal(entry.Measurements)
	if err != nil {
		return fmt.Errorf("progress: encode measurements: %w", err)
	}
	const query = `
		INSERT INTO progress_entries (id, user_id, workout_date, body_weight, notes, measurements, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	if _, err := r.pool.Exec(ctx, query, entry.ID, entry.UserID, entry.WorkoutDate, entry.BodyWeight, entry.Notes, measurements); err != nil {
		return fmt.Errorf("progress: create: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, entry Entry) error {
	measurements, err := json.Marshal(entry.Measurements)
	if err != nil {
		return fmt.Errorf("progress: encode measurements: %w", err)
	}
	const query = `
		UPDATE progress_entries
		SET workout_date = $3, body_weight = $4, notes = $5, measurements = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, entry.ID, entry.UserID, entry.WorkoutDate, entry.BodyWeight, entry.Notes, measurements)
	if err != nil {
		return fmt.Errorf("progress: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: progress entry not found", httpx.ErrNotFound)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const query = `DELETE FROM progress_entries WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("progress: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: progress entry not found", httpx.ErrNotFound)
	}
	return nil
}
