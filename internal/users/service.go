package users

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/pulsefit/pulsefit/internal/goals"
	"github.com/pulsefit/pulsefit/internal/programs"
	"github.com/pulsefit/pulsefit/internal/progress"
	"github.com/pulsefit/pulsefit/internal/schedule"
	"github.com/pulsefit/pulsefit/internal/workouts"
)

// WorkoutLister provides the workout slice of the initial-data payload.
type WorkoutLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]workouts.Workout, error)
}

// ProgramLister provides the program slice of the initial-data payload.
type ProgramLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]programs.Program, error)
}

// GoalLister provides the goal slice of the initial-data payload.
type GoalLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]goals.Goal, error)
}

// ProgressLister provides the progress slice of the initial-data payload.
type ProgressLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]progress.Entry, error)
}

// ScheduleLister provides the schedule slice of the initial-data payload.
type ScheduleLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]schedule.ScheduledWorkout, error)
}

// Service handles profile, workout log, and exercise weight operations.
type Service struct {
	repo       Repository
	bcryptCost int

	workouts WorkoutLister
	programs ProgramLister
	goals    GoalLister
	progress ProgressLister
	schedule ScheduleLister
}

// NewService builds a Service instance.
func NewService(repo Repository, bcryptCost int, w WorkoutLister, p ProgramLister, g GoalLister, pr ProgressLister, s ScheduleLister) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		workouts:   w,
		programs:   p,
		goals:      g,
		progress:   pr,
		schedule:   s,
	}
}

// Profile returns the user's profile.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// UpdateProfile applies a partial profile update. The password hash is
// recomputed only when a new password is supplied.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*Profile, error) {
	var passwordHash *string
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		passwordHash = &hashed
	}
	return s.repo.UpdateProfile(ctx, userID, req.Name, passwordHash)
}

// Log returns the user's workout log in insertion order.
func (s *Service) Log(ctx context.Context, userID uuid.UUID) ([]LogEntry, error) {
	return s.repo.ListLog(ctx, userID)
}

// AppendLog appends a workout-completion entry to the user's log.
func (s *Service) AppendLog(ctx context.Context, userID uuid.UUID, req AppendLogEntryRequest) (*LogEntry, error) {
	entry := LogEntry{
		UserID:    userID,
		Date:      req.Date,
		Name:      req.Name,
		Completed: req.Completed,
		Summary:   req.Summary,
		WorkoutID: req.WorkoutID,
	}
	return s.repo.AppendLog(ctx, entry)
}

// SetExerciseWeight stores the default weight for an exercise and pushes
// it into the user's workouts atomically. Returns how many workout
// exercise rows were updated.
func (s *Service) SetExerciseWeight(ctx context.Context, userID uuid.UUID, req UpdateExerciseWeightRequest) (int64, error) {
	return s.repo.SetExerciseWeight(ctx, userID, req.ExerciseID, req.Weight)
}

// InitialData assembles the post-login payload, fetching each collection
// concurrently.
func (s *Service) InitialData(ctx context.Context, userID uuid.UUID) (*InitialData, error) {
	data := &InitialData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := s.repo.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		data.Profile = profile
		return nil
	})
	g.Go(func() error {
		log, err := s.repo.ListLog(ctx, userID)
		if err != nil {
			return err
		}
		data.Log = log
		return nil
	})
	g.Go(func() error {
		weights, err := s.repo.ListExerciseWeights(ctx, userID)
		if err != nil {
			return err
		}
		data.ExerciseWeights = weights
		return nil
	})
	g.Go(func() error {
		ws, err := s.workouts.List(ctx, userID)
		if err != nil {
			return err
		}
		data.Workouts = ws
		return nil
	})
	g.Go(func() error {
		ps, err := s.programs.List(ctx, userID)
		if err != nil {
			return err
		}
		data.Programs = ps
		return nil
	})
	g.Go(func() error {
		gs, err := s.goals.List(ctx, userID)
		if err != nil {
			return err
		}
		data.Goals = gs
		return nil
	})
	g.Go(func() error {
		entries, err := s.progress.List(ctx, userID)
		if err != nil {
			return err
		}
		data.ProgressEntries = entries
		return nil
	})
	g.Go(func() error {
		scheduled, err := s.schedule.List(ctx, userID)
		if err != nil {
			return err
		}
		data.Scheduled = scheduled
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
