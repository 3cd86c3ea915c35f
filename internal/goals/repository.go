package goals

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

// Repository defines persistence operations for goals, scoped by owner.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]Goal, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Goal, error)
	Create(ctx context.Context, goal Goal) error
	Update(ctx context.Context, goal Goal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	AppendProgress(ctx context.Context, userID, id uuid.UUID, point ProgressPoint) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	const query = `
		SELECT id, user_id, name, target_value, current_value, unit, target_date, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("goals: list: %w", err)
	}
	defer rows.Close()

	goals := []Goal{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("goals: scan: %w", err)
		}
		g.ProgressHistory = []ProgressPoint{}
		index[g.ID] = len(goals)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goals: list: %w", err)
	}

	const histQuery = `
		SELECT gp.goal_id, gp.value, gp.notes, gp.recorded_at
		FROM goal_progress gp
		JOIN goals g ON g.id = gp.goal_id
		WHERE g.user_id = $1
		ORDER BY gp.goal_id, gp.id
	`
	histRows, err := r.pool.Query(ctx, histQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("goals: list history: %w", err)
	}
	defer histRows.Close()

	for histRows.Next() {
		var goalID uuid.UUID
		var p ProgressPoint
		if err := histRows.Scan(&goalID, &p.Value, &p.Notes, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("goals: scan history: %w", err)
		}
		if i, ok := index[goalID]; ok {
			goals[i].ProgressHistory = append(goals[i].ProgressHistory, p)
		}
	}
	return goals, histRows.Err()
}

func (r *repository) Get(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	const query = `
		SELECT id, user_id, name, target_value, current_value, unit, target_date, created_at, updated_at
		FROM goals
		WHERE id = $1 AND user_id = $2
	`
	var g Goal
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&g.ID, &g.UserID, &g.Name, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: goal not found", httpx.ErrNotFound)
		}
		return nil, fmt.Errorf("goals: get: %w", err)
	}

	const histQuery = `
		SELECT value, notes, recorded_at
		FROM goal_progress
		WHERE goal_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, histQuery, g.ID)
	if err != nil {
		return nil, fmt.Errorf("goals: history: %w", err)
	}
	defer rows.Close()

	g.ProgressHistory = []ProgressPoint{}
	for rows.Next() {
		var p ProgressPoint
		if err := rows.Scan(&p.Value, &p.Notes, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("goals: scan history: %w", err)
		}
		g.ProgressHistory = append(g.ProgressHistory, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goals: history: %w", err)
	}
	return &g, nil
}

func (r *repository) Create(ctx context.Context, goal Goal) error {
	const query = `
		INSERT INTO goals (id, user_id, name, target_value, current_value, unit, target_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	if _, err := r.pool.Exec(ctx, query, goal.ID, goal.UserID, goal.Name, goal.TargetValue, goal.CurrentValue, goal.Unit, goal.TargetDate); err != nil {
		return fmt.Errorf("goals: create: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, goal Goal) error {
	const query = `
		UPDATE goals
		SET name = $3, target_value = $4, current_value = $5, unit = $6, target_date = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, goal.ID, goal.UserID, goal.Name, goal.TargetValue, goal.CurrentValue, goal.Unit, goal.TargetDate)
	if err != nil {
		return fmt.Errorf("goals: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: goal not found", httpx.ErrNotFound)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const query = `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("goals: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: goal not found", httpx.ErrNotFound)
	}
	return nil
}

// AppendProgress records a history point and moves current_value in one
// transaction, scoped to the owner.
func (r *repository) AppendProgress(ctx context.Context, userID, id uuid.UUID, point ProgressPoint) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const update = `
			UPDATE goals
			SET current_value = $3, updated_at = NOW()
			WHERE id = $1 AND user_id = $2
		`
		tag, err := tx.Exec(ctx, update, id, userID, point.Value)
		if err != nil {
			return fmt.Errorf("goals: update progress: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: goal not found", httpx.ErrNotFound)
		}
		const insert = `
			INSERT INTO goal_progress (goal_id, value, notes, recorded_at)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, insert, id, point.Value, point.Notes, point.RecordedAt); err != nil {
			return fmt.Errorf("goals: append progress: %w", err)
		}
		return nil
	})
}
