package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/robfig/cron/v3"

	"taskmanager/config"
	"taskmanager/internal/init/cache"
	"taskmanager/internal/init/database"

	authC "taskmanager/internal/modules/user/auth/controller"
	authRp "taskmanager/internal/modules/user/auth/repo"
	authDb "taskmanager/internal/modules/user/auth/repo/database"
	authUC "taskmanager/internal/modules/user/auth/usecase"

	taskC "taskmanager/internal/modules/task/controller"
	taskRp "taskmanager/internal/modules/task/repo"
	taskDbRepo "taskmanager/internal/modules/task/repo/database"
	taskUC "taskmanager/internal/modules/task/usecase"

	noteC "taskmanager/internal/modules/note/controller"
	noteRp "taskmanager/internal/modules/note/repo"
	noteDbRepo "taskmanager/internal/modules/note/repo/database"
	noteUC "taskmanager/internal/modules/note/usecase"

	commentC "taskmanager/internal/modules/comment/controller"
	commentRp "taskmanager/internal/modules/comment/repo"
	commentDbRepo "taskmanager/internal/modules/comment/repo/database"
	commentUC "taskmanager/internal/modules/comment/usecase"

	documentC "taskmanager/internal/modules/document/controller"
	documentRp "taskmanager/internal/modules/document/repo"
	documentDbRepo "taskmanager/internal/modules/document/repo/database"
	documentUC "taskmanager/internal/modules/document/usecase"

	scheduleC "taskmanager/internal/modules/schedule/controller"
	scheduleRp "taskmanager/internal/modules/schedule/repo"
	scheduleDbRepo "taskmanager/internal/modules/schedule/repo/database"
	scheduleUC "taskmanager/internal/modules/schedule/usecase"

	statsC "taskmanager/internal/modules/statistics/controller"
	statsRp "taskmanager/internal/modules/statistics/repo"
	statsCacheRepo "taskmanager/internal/modules/statistics/repo/cache"
	statsDbRepo "taskmanager/internal/modules/statistics/repo/database"
	statsUC "taskmanager/internal/modules/statistics/usecase"

	"taskmanager/pkg/lib/emailsender"
	"taskmanager/pkg/lib/filestore"
	"taskmanager/pkg/lib/statsnapshot"
	"taskmanager/pkg/middleware/identity"
	"taskmanager/pkg/middleware/logger"
)

type App struct {
	Storage     *database.Storage
	Cache       *cache.Cache
	EmailSender *emailsender.EmailSender
	Files       *filestore.Store
	AudioFiles  *filestore.Store
	Stats       *statsUC.StatisticsUseCase
	Router      chi.Router
	Log         *slog.Logger
	Cfg         *config.Config
	Cron        *cron.Cron
}

func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	storage, err := database.NewStorage(cfg.DbConfig)
	if err != nil {
		return nil, fmt.Errorf("db init failed: %w", err)
	}

	appCache, err := cache.NewCache(cfg.CacheConfig)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}

	eSender, err := emailsender.New(cfg.SMTPConfig)
	if err != nil {
		return nil, fmt.Errorf("email sender init failed: %w", err)
	}

	files, err := filestore.New(cfg.UploadConfig.Dir)
	if err != nil {
		return nil, fmt.Errorf("file store init failed: %w", err)
	}
	audioFiles, err := files.Sub(cfg.UploadConfig.AudioDir)
	if err != nil {
		return nil, fmt.Errorf("audio store init failed: %w", err)
	}

	statsDBImpl := statsDbRepo.NewStatisticsDatabase(storage.Db, log)
	statsCacheImpl := statsCacheRepo.NewStatisticsCache(appCache.Client, cfg.CacheConfig.DashboardTtl, log)
	statsRepoImpl := statsRp.NewStatisticsRepo(statsDBImpl, statsCacheImpl)
	statsUseCaseImpl := statsUC.NewStatisticsUseCase(log, statsRepoImpl)

	snapshotJob := statsnapshot.New(log, statsUseCaseImpl)
	cronScheduler := cron.New()
	if _, err := cronScheduler.AddFunc("5 0 * * *", snapshotJob.Run); err != nil {
		return nil, fmt.Errorf("cron init failed: %w", err)
	}
	cronScheduler.Start()

	return &App{
		Storage:     storage,
		Cache:       appCache,
		EmailSender: eSender,
		Files:       files,
		AudioFiles:  audioFiles,
		Stats:       statsUseCaseImpl,
		Router:      chi.NewRouter(),
		Log:         log,
		Cfg:         cfg,
		Cron:        cronScheduler,
	}, nil
}

func (app *App) Start() error {
	srv := &http.Server{
		Addr:         app.Cfg.HttpServerConfig.Address,
		Handler:      app.Router,
		ReadTimeout:  app.Cfg.HttpServerConfig.Timeout,
		WriteTimeout: app.Cfg.HttpServerConfig.Timeout,
		IdleTimeout:  app.Cfg.HttpServerConfig.IdleTimeout,
	}

	serverShutdown := make(chan error, 1)
	go func() {
		app.Log.Info("HTTP server starting", slog.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Error("HTTP server run failed", slog.String("error", err.Error()))
			serverShutdown <- err
			return
		}
		serverShutdown <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			app.Cron.Stop()
			return fmt.Errorf("server runtime error: %w", err)
		}
		app.Log.Info("server shutdown initiated by server itself")
	case sig := <-quit:
		app.Log.Info("received OS signal, initiating graceful shutdown", slog.String("signal", sig.String()))
	}

	cronCtx := app.Cron.Stop()
	select {
	case <-cronCtx.Done():
		app.Log.Info("cron scheduler stopped")
	case <-time.After(3 * time.Second):
		app.Log.Warn("cron scheduler stop timed out")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		app.Log.Error("server graceful shutdown failed", slog.String("error", err.Error()))
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.Log.Info("server stopped gracefully")
	return nil
}

func (app *App) SetupRoutes() {
	app.Router.Use(
		middleware.Recoverer,
		middleware.RequestID,
		logger.New(app.Log),
		cors.Handler(cors.Options{
			AllowedOrigins:   app.Cfg.HttpServerConfig.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-Id"},
			ExposedHeaders:   []string{"Link", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	requireIdentity := identity.Require(app.Log)

	// --- Auth Module ---
	authDBImpl := authDb.NewAuthDatabase(app.Storage.Db, app.Log)
	authRepoImpl := authRp.NewRepo(authDBImpl)
	authUseCaseImpl := authUC.NewAuthUseCase(app.Log, authRepoImpl, app.EmailSender)
	authCtrl := authC.NewAuthController(app.Log, authUseCaseImpl)

	app.Router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authCtrl.Register)
		r.Post("/login", authCtrl.Login)
		r.Group(func(r chi.Router) {
			r.Use(httprate.Limit(3, 1*time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
			r.Post("/forgot-password", authCtrl.ForgotPassword)
		})
		r.Post("/verify-code", authCtrl.VerifyCode)
		r.Post("/reset-password", authCtrl.ResetPassword)
	})

	// --- Task Module ---
	taskDBImpl := taskDbRepo.NewTaskDatabase(app.Storage.Db, app.Log)
	taskRepoImpl := taskRp.NewTaskRepo(taskDBImpl)
	taskUseCaseImpl := taskUC.NewTaskUseCase(app.Log, taskRepoImpl)
	taskCtrl := taskC.NewTaskController(app.Log, taskUseCaseImpl)

	app.Router.Route("/api/tasks", func(r chi.Router) {
		r.Use(requireIdentity)
		r.Post("/", taskCtrl.CreateTask)
		r.Get("/", taskCtrl.GetTasks)
		r.Get("/status/{status}", taskCtrl.GetTasksByStatus)
		r.Get("/{id}", taskCtrl.GetTask)
		r.Put("/{id}", taskCtrl.UpdateTask)
		r.Patch("/{id}/status", taskCtrl.UpdateTaskStatus)
		r.Delete("/{id}", taskCtrl.DeleteTask)
	})

	// --- Note Module ---
	noteDBImpl := noteDbRepo.NewNoteDatabase(app.Storage.Db, app.Log)
	noteRepoImpl := noteRp.NewNoteRepo(noteDBImpl, app.AudioFiles)
	noteUseCaseImpl := noteUC.NewNoteUseCase(app.Log, noteRepoImpl)
	noteCtrl := noteC.NewNoteController(app.Log, noteUseCaseImpl)

	app.Router.Route("/api/notes", func(r chi.Router) {
		r.Get("/audio/{filename}", noteCtrl.ServeAudio)
		r.Group(func(r chi.Router) {
			r.Use(requireIdentity)
			r.Post("/", noteCtrl.CreateNote)
			r.Post("/with-audio", noteCtrl.CreateNoteWithAudio)
			r.Get("/", noteCtrl.GetNotes)
			r.Get("/pinned", noteCtrl.GetPinnedNotes)
			r.Get("/type/{type}", noteCtrl.GetNotesByType)
			r.Get("/{id}", noteCtrl.GetNote)
			r.Put("/{id}", noteCtrl.UpdateNote)
			r.Post("/{id}/toggle-pin", noteCtrl.TogglePin)
			r.Delete("/{id}", noteCtrl.DeleteNote)
		})
	})

	// --- Comment Module ---
	commentDBImpl := commentDbRepo.NewCommentDatabase(app.Storage.Db, app.Log)
	commentRepoImpl := commentRp.NewCommentRepo(commentDBImpl)
	commentUseCaseImpl := commentUC.NewCommentUseCase(app.Log, commentRepoImpl)
	commentCtrl := commentC.NewCommentController(app.Log, commentUseCaseImpl)

	app.Router.Route("/api/comments", func(r chi.Router) {
		r.Get("/task/{taskId}", commentCtrl.GetCommentsByTask)
		r.Post("/", commentCtrl.CreateComment)
		r.Delete("/{id}", commentCtrl.DeleteComment)
	})

	// --- Document Module ---
	documentDBImpl := documentDbRepo.NewDocumentDatabase(app.Storage.Db, app.Log)
	documentRepoImpl := documentRp.NewDocumentRepo(documentDBImpl, app.Files)
	documentUseCaseImpl := documentUC.NewDocumentUseCase(app.Log, documentRepoImpl)
	documentCtrl := documentC.NewDocumentController(app.Log, documentUseCaseImpl)

	app.Router.Route("/api/documents", func(r chi.Router) {
		r.Get("/user/{userId}", documentCtrl.GetDocumentsByUser)
		r.Get("/user/{userId}/root", documentCtrl.GetRootDocuments)
		r.Get("/user/{userId}/parent/{parentId}", documentCtrl.GetDocumentsByParent)
		r.Get("/files/{filename}", documentCtrl.ServeFile)
		r.Get("/{id}", documentCtrl.GetDocument)
		r.Group(func(r chi.Router) {
			r.Use(requireIdentity)
			r.Post("/", documentCtrl.CreateDocument)
			r.Post("/upload", documentCtrl.UploadFile)
			r.Put("/{id}", documentCtrl.UpdateDocument)
			r.Delete("/{id}", documentCtrl.DeleteDocument)
		})
	})

	// --- Schedule Module ---
	scheduleDBImpl := scheduleDbRepo.NewScheduleDatabase(app.Storage.Db, app.Log)
	scheduleRepoImpl := scheduleRp.NewScheduleRepo(scheduleDBImpl)
	scheduleUseCaseImpl := scheduleUC.NewScheduleUseCase(app.Log, scheduleRepoImpl)
	scheduleCtrl := scheduleC.NewScheduleController(app.Log, scheduleUseCaseImpl)

	app.Router.Route("/api/schedules", func(r chi.Router) {
		r.Use(requireIdentity)
		r.Post("/", scheduleCtrl.CreateSchedule)
		r.Get("/", scheduleCtrl.GetSchedules)
		r.Get("/day/{dayOfWeek}", scheduleCtrl.GetSchedulesByDay)
		r.Get("/work/{flag}", scheduleCtrl.GetSchedulesByWorkFlag)
		r.Get("/{id}", scheduleCtrl.GetSchedule)
		r.Put("/{id}", scheduleCtrl.UpdateSchedule)
		r.Delete("/{id}", scheduleCtrl.DeleteSchedule)
	})

	// --- Statistics Module ---
	statsCtrl := statsC.NewStatisticsController(app.Log, app.Stats)

	app.Router.Route("/api/statistics", func(r chi.Router) {
		r.Get("/date/{date}", statsCtrl.GetByDate)
		r.Get("/range", statsCtrl.GetRange)
		r.Get("/dashboard", statsCtrl.GetDashboard)
		r.Post("/", statsCtrl.CreateStatistics)
		r.Put("/{id}", statsCtrl.UpdateStatistics)
		r.Delete("/{id}", statsCtrl.DeleteStatistics)
	})
}

func main() {
	cfg := config.MustLoad()
	log := SetupLogger(cfg.Env)
	slog.SetDefault(log)

	app, err := NewApp(cfg, log)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app.SetupRoutes()

	if err := app.Start(); err != nil {
		log.Error("application terminated with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger
	level := slog.LevelInfo
	switch strings.ToLower(env) {
	case "local", "dev", "development":
		level = slog.LevelDebug
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
	case "prod", "production":
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
	default:
		level = slog.LevelDebug
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
	}
	return log
}
