package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Repository defines read access to the exercise catalog.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Exercise, error) {
	query := `
		SELECT id, name, muscle_group, equipment, description
		FROM exercises
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.MuscleGroup != "" {
		query += fmt.Sprintf(" AND muscle_group = $%d", argPos)
		args = append(args, filter.MuscleGroup)
		argPos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	query += " ORDER BY name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exercises: list: %w", err)
	}
	defer rows.Close()

	list := []Exercise{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.Description); err != nil {
			return nil, fmt.Errorf("exercises: scan: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Exercise, error) {
	const query = `
		SELECT id, name, muscle_group, equipment, description
		FROM exercises
		WHERE id = $1
	`
	var e Exercise
	err := r.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: exercise not found", httpx.ErrNotFound)
		}
		return nil, fmt.Errorf("exercises: get: %w", err)
	}
	return &e, nil
}
