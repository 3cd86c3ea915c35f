package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pulsefit/pulsefit/internal/app"
	"github.com/pulsefit/pulsefit/internal/auth"
	"github.com/pulsefit/pulsefit/internal/exercises"
	"github.com/pulsefit/pulsefit/internal/goals"
	"github.com/pulsefit/pulsefit/internal/platform/cache"
	"github.com/pulsefit/pulsefit/internal/platform/db"
	"github.com/pulsefit/pulsefit/internal/programs"
	"github.com/pulsefit/pulsefit/internal/progress"
	"github.com/pulsefit/pulsefit/internal/schedule"
	"github.com/pulsefit/pulsefit/internal/users"
	"github.com/pulsefit/pulsefit/internal/workouts"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	// A cache outage must not block startup; the catalog falls back to
	// Postgres when Redis is unreachable.
	var redisClient *redis.Client
	if client, err := cache.New(ctx, cfg.RedisAddr); err != nil {
		logger.Warn("redis unavailable, catalog cache disabled", slog.Any("error", err))
	} else {
		redisClient = client
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo, tokens, cfg.BcryptCost)
	authHandler := auth.NewHandler(logger, authService)
	authMiddleware := auth.Middleware{Logger: logger, Tokens: tokens, Service: authService}

	workoutRepo := workouts.NewRepository(pool)
	workoutService := workouts.NewService(workoutRepo)
	workoutHandler := workouts.NewHandler(logger, workoutService)

	programRepo := programs.NewRepository(pool)
	programService := programs.NewService(programRepo)
	programHandler := programs.NewHandler(logger, programService)

	goalRepo := goals.NewRepository(pool)
	goalService := goals.NewService(goalRepo)
	goalHandler := goals.NewHandler(logger, goalService)

	progressRepo := progress.NewRepository(pool)
	progressService := progress.NewService(progressRepo)
	progressHandler := progress.NewHandler(logger, progressService)

	scheduleRepo := schedule.NewRepository(pool)
	scheduleService := schedule.NewService(scheduleRepo)
	scheduleHandler := schedule.NewHandler(logger, scheduleService)

	exerciseRepo := exercises.NewRepository(pool)
	exerciseCache := exercises.NewCache(redisClient, logger, 10*time.Minute)
	exerciseService := exercises.NewService(exerciseRepo, exerciseCache)
	exerciseHandler := exercises.NewHandler(logger, exerciseService)

	userRepo := users.NewRepository(pool)
	userService := users.NewService(userRepo, cfg.BcryptCost,
		workoutService, programService, goalService, progressService, scheduleService)
	userHandler := users.NewHandler(logger, userService)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		AuthMiddleware:  authMiddleware,
		AuthHandler:     authHandler,
		ExerciseHandler: exerciseHandler,
		WorkoutHandler:  workoutHandler,
		ProgramHandler:  programHandler,
		GoalHandler:     goalHandler,
		ProgressHandler: progressHandler,
		ScheduleHandler: scheduleHandler,
		UserHandler:     userHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
