package programs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Repository defines persistence operations for programs, scoped by owner.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]Program, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Program, error)
	Create(ctx context.Context, program Program) error
	Update(ctx context.Context, program Program) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]Program, error) {
	const query = `
		SELECT id, user_id, name, description, duration_weeks, days, created_at, updated_at
		FROM programs
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("programs: list: %w", err)
	}
	defer rows.Close()

	programs := []Program{}
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, *program)
	}
	return programs, rows.Err()
}

func (r *repository) Get(ctx context.Context, userID, id uuid.UUID) (*Program, error) {
	const query = `
		SELECT id, user_id, name, description, duration_weeks, days, created_at, updated_at
		FROM programs
		WHERE id = $1 AND user_id = $2
	`
	rows, err := r.pool.Query(ctx, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("programs: get: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("programs: get: %w", err)
		}
		return nil, fmt.Errorf("%w: program not found", httpx.ErrNotFound)
	}
	return scanProgram(rows)
}

func scanProgram(row pgx.Row) (*Program, error) {
	var p Program
	var days []byte
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.DurationWeeks, &days, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("programs: scan: %w", err)
	}
	p.Days = []ProgramDay{}
	if len(days) > 0 {
		if err := json.Unmarshal(days, &p.Days); err != nil {
			return nil, fmt.Errorf("programs: decode days: %w", err)
		}
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, program Program) error {
	days, err := json.Marshal(program.Days)
	if err != nil {
		return fmt.Errorf("programs: encode days: %w", err)
	}
	const query = `
		INSERT INTO programs (id, user_id, name, description, duration_weeks, days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	if _, err := r.pool.Exec(ctx, query, program.ID, program.UserID, program.Name, program.Description, program.DurationWeeks, days); err != nil {
		return fmt.Errorf("programs: create: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, program Program) error {
	days, err := json.Marshal(program.Days)
	if err != nil {
		return fmt.Errorf("programs: encode days: %w", err)
	}
	const query = `
		UPDATE programs
		SET name = $3, description = $4, duration_weeks = $5, days = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, program.ID, program.UserID, program.Name, program.Description, program.DurationWeeks, days)
	if err != nil {
		return fmt.Errorf("programs: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: program not found", httpx.ErrNotFound)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const query = `DELETE FROM programs WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("programs: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: program not found", httpx.ErrNotFound)
	}
	return nil
}
