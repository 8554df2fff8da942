package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/averra-labs/trainhub/api/swagger"
	"github.com/averra-labs/trainhub/internal/handler"
	"github.com/averra-labs/trainhub/internal/repository"
	"github.com/averra-labs/trainhub/internal/service"
	"github.com/averra-labs/trainhub/pkg/config"
	"github.com/averra-labs/trainhub/pkg/idgen"
	"github.com/averra-labs/trainhub/pkg/jobs"
	"github.com/averra-labs/trainhub/pkg/logger"
	"github.com/averra-labs/trainhub/pkg/storage"
)

// @title TrainHub API
// @version 0.1.0
// @description In-memory course management: students, courses, trainers, enrollments
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// The warning hook closes over metricsSvc, which is built right after the
	// allocator. RecordCapacityWarning tolerates a nil receiver, so a warning
	// fired in between is dropped rather than panicking.
	var metricsSvc *service.MetricsService
	alloc, err := idgen.New(idgen.Config{
		Ranges:        allocatorRanges(cfg),
		WarnThreshold: cfg.Allocator.WarnThreshold,
		Logger:        logr,
		OnCapacityWarning: func(kind idgen.Kind, usage float64, remaining int64) {
			metricsSvc.RecordCapacityWarning(kind, usage, remaining)
		},
	})
	if err != nil {
		logr.Sugar().Fatalw("invalid id range layout", "error", err)
	}

	students := repository.NewStudentRepository()
	courses := repository.NewCourseRepository()
	trainers := repository.NewTrainerRepository()
	enrollments := repository.NewEnrollmentRepository()
	exportJobs := repository.NewExportJobRepository()

	metricsSvc = service.NewMetricsService(alloc, students, courses, trainers, enrollments)

	studentSvc := service.NewStudentService(students, alloc, nil, logr)
	courseSvc := service.NewCourseService(courses, alloc, nil, logr)
	trainerSvc := service.NewTrainerService(trainers, alloc, nil, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollments, students, courses, alloc, nil, logr)
	capacitySvc := service.NewCapacityService(alloc, logr)
	importSvc := service.NewImportService(students, courses, alloc, nil, logr)

	store, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "dir", cfg.Exports.StorageDir, "error", err)
	}
	exporter := service.NewExportService(students, courses, enrollments, alloc, store,
		service.ExportConfig{ResultTTL: cfg.Exports.ResultTTL}, logr, nil, nil)
	worker := service.NewExportWorker(exportJobs, exporter, metricsSvc, cfg.Exports.WorkerRetries, logr)
	queue := jobs.NewQueue("exports", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Exports.WorkerConcurrency,
		BufferSize: cfg.Exports.QueueSize,
		MaxRetries: cfg.Exports.WorkerRetries,
		Logger:     logr,
	})
	exportJobSvc := service.NewExportJobService(exportJobs, courses, queue, exporter, nil, logr, service.ExportJobConfig{
		ResultTTL:       cfg.Exports.ResultTTL,
		CleanupInterval: cfg.Exports.CleanupInterval,
		MaxRetries:      cfg.Exports.WorkerRetries,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue.Start(ctx)
	defer queue.Stop()
	exportJobSvc.StartCleanup(ctx)

	if cfg.Seed.Enabled {
		seedDemoData(logr, studentSvc, courseSvc, trainerSvc, enrollmentSvc)
	}

	router := handler.NewRouter(cfg, logr, metricsSvc, handler.Handlers{
		Students:    handler.NewStudentHandler(studentSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
		Trainers:    handler.NewTrainerHandler(trainerSvc),
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc),
		Capacity:    handler.NewCapacityHandler(capacitySvc),
		Imports:     handler.NewImportHandler(importSvc, cfg.Imports.MaxBatchSize),
		Exports:     handler.NewExportHandler(exportJobSvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("server shutdown incomplete", "error", err)
	}
}

func allocatorRanges(cfg *config.Config) map[idgen.Kind]idgen.Range {
	return map[idgen.Kind]idgen.Range{
		idgen.KindPerson:     {Start: cfg.Allocator.PersonRange.Start, End: cfg.Allocator.PersonRange.End},
		idgen.KindStudent:    {Start: cfg.Allocator.StudentRange.Start, End: cfg.Allocator.StudentRange.End},
		idgen.KindCourse:     {Start: cfg.Allocator.CourseRange.Start, End: cfg.Allocator.CourseRange.End},
		idgen.KindEnrollment: {Start: cfg.Allocator.EnrollmentRange.Start, End: cfg.Allocator.EnrollmentRange.End},
		idgen.KindTrainer:    {Start: cfg.Allocator.TrainerRange.Start, End: cfg.Allocator.TrainerRange.End},
	}
}

// seedDemoData loads a small fixture set so a fresh instance has something to
// serve. Failures are logged and skipped; the process still starts.
func seedDemoData(logr *zap.Logger, students *service.StudentService, courses *service.CourseService, trainers *service.TrainerService, enrollments *service.EnrollmentService) {
	sugar := logr.Sugar()

	student, err := students.Create(service.CreateStudentRequest{
		FirstName: "Ana", LastName: "Petrova", Email: "ana.petrova@example.com", Batch: "2026A",
	})
	if err != nil {
		sugar.Warnw("seed student failed", "error", err)
		return
	}
	course, err := courses.Create(service.CreateCourseRequest{
		Name: "Go Fundamentals", Description: "Syntax, tooling and the standard library", DurationWeeks: 6,
	})
	if err != nil {
		sugar.Warnw("seed course failed", "error", err)
		return
	}
	if _, err := trainers.Create(service.CreateTrainerRequest{
		FirstName: "Mira", LastName: "Kovac", Email: "mira.kovac@example.com", Specialization: "Go", YearsExperience: 8,
	}); err != nil {
		sugar.Warnw("seed trainer failed", "error", err)
	}
	if _, err := enrollments.Enroll(service.EnrollRequest{StudentID: student.ID, CourseID: course.ID}); err != nil {
		sugar.Warnw("seed enrollment failed", "error", err)
	}
	sugar.Infow("demo data seeded", "student_id", student.ID, "course_id", course.ID)
}
