package main

import (
	"log"
	"os"

	"github.com/averra-labs/trainhub/internal/console"
	"github.com/averra-labs/trainhub/internal/repository"
	"github.com/averra-labs/trainhub/internal/service"
	"github.com/averra-labs/trainhub/pkg/config"
	"github.com/averra-labs/trainhub/pkg/idgen"
	"github.com/averra-labs/trainhub/pkg/logger"
	"github.com/averra-labs/trainhub/pkg/storage"
)

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

	alloc, err := idgen.New(idgen.Config{
		Ranges: map[idgen.Kind]idgen.Range{
			idgen.KindPerson:     {Start: cfg.Allocator.PersonRange.Start, End: cfg.Allocator.PersonRange.End},
			idgen.KindStudent:    {Start: cfg.Allocator.StudentRange.Start, End: cfg.Allocator.StudentRange.End},
			idgen.KindCourse:     {Start: cfg.Allocator.CourseRange.Start, End: cfg.Allocator.CourseRange.End},
			idgen.KindEnrollment: {Start: cfg.Allocator.EnrollmentRange.Start, End: cfg.Allocator.EnrollmentRange.End},
			idgen.KindTrainer:    {Start: cfg.Allocator.TrainerRange.Start, End: cfg.Allocator.TrainerRange.End},
		},
		WarnThreshold: cfg.Allocator.WarnThreshold,
		Logger:        logr,
	})
	if err != nil {
		logr.Sugar().Fatalw("invalid id range layout", "error", err)
	}

	students := repository.NewStudentRepository()
	courses := repository.NewCourseRepository()
	trainers := repository.NewTrainerRepository()
	enrollments := repository.NewEnrollmentRepository()

	store, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "dir", cfg.Exports.StorageDir, "error", err)
	}
	exporter := service.NewExportService(students, courses, enrollments, alloc, store,
		service.ExportConfig{ResultTTL: cfg.Exports.ResultTTL}, logr, nil, nil)

	app := console.NewApp(
		console.NewPrompter(os.Stdin, os.Stdout),
		service.NewStudentService(students, alloc, nil, logr),
		service.NewCourseService(courses, alloc, nil, logr),
		service.NewTrainerService(trainers, alloc, nil, logr),
		service.NewEnrollmentService(enrollments, students, courses, alloc, nil, logr),
		service.NewCapacityService(alloc, logr),
		exporter,
		service.NewImportService(students, courses, alloc, nil, logr),
	)
	if err := app.Run(); err != nil {
		logr.Sugar().Fatalw("console session failed", "error", err)
	}
}
