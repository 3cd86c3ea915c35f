package workouts

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

// Repository defines persistence operations for workouts. Every read and
// write is scoped by both the record id and the owning user id.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]Workout, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Workout, error)
	Create(ctx context.Context, workout Workout) error
	Update(ctx context.Context, workout Workout) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]Workout, error) {
	const query = `
		SELECT id, user_id, name, notes, created_at, updated_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("workouts: list: %w", err)
	}
	defer rows.Close()

	workouts := []Workout{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Notes, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("workouts: scan: %w", err)
		}
		w.Exercises = []Exercise{}
		index[w.ID] = len(workouts)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts: list: %w", err)
	}

	const exQuery = `
		SELECT we.workout_id, we.exercise_id, we.sets, we.reps, we.weight
		FROM workout_exercises we
		JOIN workouts w ON w.id = we.workout_id
		WHERE w.user_id = $1
		ORDER BY we.workout_id, we.position
	`
	exRows, err := r.pool.Query(ctx, exQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("workouts: list exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var workoutID uuid.UUID
		var e Exercise
		if err := exRows.Scan(&workoutID, &e.ExerciseID, &e.Sets, &e.Reps, &e.Weight); err != nil {
			return nil, fmt.Errorf("workouts: scan exercise: %w", err)
		}
		if i, ok := index[workoutID]; ok {
			workouts[i].Exercises = append(workouts[i].Exercises, e)
		}
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("workouts: list exercises: %w", err)
	}
	return workouts, nil
}

func (r *repository) Get(ctx context.Context, userID, id uuid.UUID) (*Workout, error) {
	const query = `
		SELECT id, user_id, name, notes, created_at, updated_at
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`
	var w Workout
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&w.ID, &w.UserID, &w.Name, &w.Notes, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: workout not found", httpx.ErrNotFound)
		}
		return nil, fmt.Errorf("workouts: get: %w", err)
	}

	exercises, err := r.exercisesFor(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Exercises = exercises
	return &w, nil
}

func (r *repository) exercisesFor(ctx context.Context, workoutID uuid.UUID) ([]Exercise, error) {
	const query = `
		SELECT exercise_id, sets, reps, weight
		FROM workout_exercises
		WHERE workout_id = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("workouts: exercises: %w", err)
	}
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ExerciseID, &e.Sets, &e.Reps, &e.Weight); err != nil {
			return nil, fmt.Errorf("workouts: scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (r *repository) Create(ctx context.Context, workout Workout) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const query = `
			INSERT INTO workouts (id, user_id, name, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`
		if _, err := tx.Exec(ctx, query, workout.ID, workout.UserID, workout.Name, workout.Notes); err != nil {
			return fmt.Errorf("workouts: create: %w", err)
		}
		return insertExercises(ctx, tx, workout.ID, workout.Exercises)
	})
}

func (r *repository) Update(ctx context.Context, workout Workout) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const query = `
			UPDATE workouts
			SET name = $3, notes = $4, updated_at = NOW()
			WHERE id = $1 AND user_id = $2
		`
		tag, err := tx.Exec(ctx, query, workout.ID, workout.UserID, workout.Name, workout.Notes)
		if err != nil {
			return fmt.Errorf("workouts: update: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: workout not found", httpx.ErrNotFound)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1`, workout.ID); err != nil {
			return fmt.Errorf("workouts: clear exercises: %w", err)
		}
		return insertExercises(ctx, tx, workout.ID, workout.Exercises)
	})
}

func insertExercises(ctx context.Context, tx pgx.Tx, workoutID uuid.UUID, exercises []Exercise) error {
	const query = `
		INSERT INTO workout_exercises (workout_id, position, exercise_id, sets, reps, weight)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, e := range exercises {
		if _, err := tx.Exec(ctx, query, workoutID, i, e.ExerciseID, e.Sets, e.Reps, e.Weight); err != nil {
			return fmt.Errorf("workouts: insert exercise: %w", err)
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const query = `DELETE FROM workouts WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("workouts: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: workout not found", httpx.ErrNotFound)
	}
	return nil
}
